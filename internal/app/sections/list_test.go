package sections

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
)

func members() []models.FacultyMember {
	return []models.FacultyMember{
		{ID: 1, Name: "Iyer", Category: "X"},
		{ID: 3, Name: "Rao", Category: "Y"},
	}
}

func TestNextID(t *testing.T) {
	assert.Equal(t, int64(1), NextID([]models.FacultyMember{}))
	assert.Equal(t, int64(4), NextID(members()))
}

func TestAddThenDeleteRestoresList(t *testing.T) {
	ctx := context.Background()
	original := members()

	added, item := AddItem(original, func(id int64) models.FacultyMember {
		return models.FacultyMember{ID: id, Name: "New member", Category: "X"}
	})
	assert.Equal(t, int64(4), item.ID)
	assert.Len(t, added, 3)
	assert.Equal(t, item, added[2], "new entries are appended")

	restored, ok := DeleteItem(ctx, added, item.ID, confirm.Always, "Delete?")
	assert.True(t, ok)
	assert.Equal(t, original, restored)
	assert.Len(t, original, 2, "the input list is never modified")
}

func TestDeleteItem_DeclinedOrMissing(t *testing.T) {
	ctx := context.Background()
	list := members()

	out, ok := DeleteItem(ctx, list, 1, confirm.Never, "Delete?")
	assert.False(t, ok)
	assert.Equal(t, list, out)

	asked := false
	out, ok = DeleteItem(ctx, list, 99, confirm.Func(func(context.Context, string) bool {
		asked = true
		return true
	}), "Delete?")
	assert.False(t, ok)
	assert.False(t, asked, "nothing to delete means nothing to confirm")
	assert.Equal(t, list, out)
}

func TestUpdateItem(t *testing.T) {
	list := members()

	out, ok := UpdateItem(list, 3, func(m models.FacultyMember) models.FacultyMember {
		m.Name = "Dr. Rao"
		return m
	})
	assert.True(t, ok)
	assert.Equal(t, "Dr. Rao", out[1].Name)
	assert.Equal(t, "Rao", list[1].Name)
	assert.Equal(t, list[0], out[0])

	_, ok = UpdateItem(list, 42, func(m models.FacultyMember) models.FacultyMember { return m })
	assert.False(t, ok)
}
