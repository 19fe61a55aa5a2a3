package sections

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
)

func setCategory(m models.FacultyMember, c string) models.FacultyMember {
	m.Category = c
	return m
}

func categoriesOf(items []models.FacultyMember) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.Category
	}
	return out
}

func TestRenameCategory_Cascades(t *testing.T) {
	items := []models.FacultyMember{{ID: 1, Category: "X"}, {ID: 2, Category: "Y"}}

	cats, renamed, err := RenameCategory([]string{"X", "Y"}, items, "X", "Z", setCategory)
	require.NoError(t, err)

	assert.Equal(t, []string{"Z", "Y"}, cats)
	assert.Equal(t, []string{"Z", "Y"}, categoriesOf(renamed))
	assert.Equal(t, "X", items[0].Category, "the input is not modified")
}

func TestRenameCategory_Errors(t *testing.T) {
	items := []models.FacultyMember{{ID: 1, Category: "X"}}
	cats := []string{"X", "Y"}

	_, _, err := RenameCategory(cats, items, "Q", "Z", setCategory)
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	_, _, err = RenameCategory(cats, items, "X", "Y", setCategory)
	assert.ErrorIs(t, err, apperrors.ErrCategoryExists)

	_, _, err = RenameCategory(cats, items, "X", "  ", setCategory)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, _, err = RenameCategory(cats, items, "X", FilterAll, setCategory)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteCategory_FallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	items := []models.FacultyMember{{ID: 1, Category: "X"}}

	cats, moved, deleted, err := DeleteCategory(ctx, []string{"X"}, items, "X", models.DefaultFacultyCategory, setCategory, confirm.Always)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{models.DefaultFacultyCategory}, categoriesOf(moved))
	assert.Equal(t, []string{models.DefaultFacultyCategory}, cats, "the fallback joins the list when it was missing")
}

func TestDeleteCategory_DeclinedAndGuarded(t *testing.T) {
	ctx := context.Background()
	items := []models.FacultyMember{{ID: 1, Category: "X"}}
	cats := []string{"X", models.DefaultFacultyCategory}

	gotCats, gotItems, deleted, err := DeleteCategory(ctx, cats, items, "X", models.DefaultFacultyCategory, setCategory, confirm.Never)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, cats, gotCats)
	assert.Equal(t, items, gotItems)

	_, _, _, err = DeleteCategory(ctx, cats, items, models.DefaultFacultyCategory, models.DefaultFacultyCategory, setCategory, confirm.Always)
	assert.ErrorIs(t, err, apperrors.ErrDefaultCategory)

	_, _, _, err = DeleteCategory(ctx, cats, items, "Missing", models.DefaultFacultyCategory, setCategory, confirm.Always)
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
}

func TestAddCategory(t *testing.T) {
	cats, err := AddCategory([]string{"X"}, " Y ")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, cats)

	_, err = AddCategory(cats, "X")
	assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
	_, err = AddCategory(cats, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSelectFilter(t *testing.T) {
	active, err := SelectFilter("", []string{"X"})
	require.NoError(t, err)
	assert.Equal(t, FilterAll, active)

	active, err = SelectFilter("X", []string{"X"})
	require.NoError(t, err)
	assert.Equal(t, "X", active)

	_, err = SelectFilter("Q", []string{"X"})
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	assert.Equal(t, "Z", FilterAfterRename("X", "X", "Z"))
	assert.Equal(t, "Y", FilterAfterRename("Y", "X", "Z"))
	assert.Equal(t, FilterAll, FilterAfterRename("", "X", "Z"))

	items := []models.FacultyMember{{ID: 1, Category: "X"}, {ID: 2, Category: "Y"}}
	assert.Len(t, FilterItems(items, FilterAll), 2)
	assert.Equal(t, []models.FacultyMember{{ID: 2, Category: "Y"}}, FilterItems(items, "Y"))
}
