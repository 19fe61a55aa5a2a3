package sections

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
)

// FilterAll is the filter tab that shows every category.
const FilterAll = "All"

// AddCategory appends name to the category list.
func AddCategory(categories []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == FilterAll {
		return categories, fmt.Errorf("%w: category name %q is not allowed", apperrors.ErrValidationFailed, name)
	}
	if slices.Contains(categories, name) {
		return categories, fmt.Errorf("%w: %s", apperrors.ErrCategoryExists, name)
	}
	return append(slices.Clone(categories), name), nil
}

// RenameCategory renames a category and moves every item in it, in one step.
func RenameCategory[E models.Categorized](categories []string, items []E, from, to string, set func(E, string) E) ([]string, []E, error) {
	to = strings.TrimSpace(to)
	idx := slices.Index(categories, from)
	if idx < 0 {
		return categories, items, fmt.Errorf("%w: %s", apperrors.ErrCategoryNotFound, from)
	}
	if to == "" || to == FilterAll {
		return categories, items, fmt.Errorf("%w: category name %q is not allowed", apperrors.ErrValidationFailed, to)
	}
	if to == from {
		return categories, items, nil
	}
	if slices.Contains(categories, to) {
		return categories, items, fmt.Errorf("%w: %s", apperrors.ErrCategoryExists, to)
	}

	nextCategories := slices.Clone(categories)
	nextCategories[idx] = to

	nextItems := make([]E, len(items))
	for i, item := range items {
		if item.GetCategory() == from {
			item = set(item, to)
		}
		nextItems[i] = item
	}
	return nextCategories, nextItems, nil
}

// DeleteCategory removes a category once c agrees and moves its items to fallback,
// adding fallback to the list if it is missing. The fallback itself cannot be deleted.
func DeleteCategory[E models.Categorized](ctx context.Context, categories []string, items []E, name, fallback string, set func(E, string) E, c confirm.Confirmer) ([]string, []E, bool, error) {
	if name == fallback {
		return categories, items, false, fmt.Errorf("%w: %s", apperrors.ErrDefaultCategory, name)
	}
	if !slices.Contains(categories, name) {
		return categories, items, false, fmt.Errorf("%w: %s", apperrors.ErrCategoryNotFound, name)
	}
	if c == nil || !c.Confirm(ctx, fmt.Sprintf("Delete the category %q? Its entries move to %q.", name, fallback)) {
		return categories, items, false, nil
	}

	nextCategories := make([]string, 0, len(categories))
	for _, cat := range categories {
		if cat != name {
			nextCategories = append(nextCategories, cat)
		}
	}

	moved := false
	nextItems := make([]E, len(items))
	for i, item := range items {
		if item.GetCategory() == name {
			item = set(item, fallback)
			moved = true
		}
		nextItems[i] = item
	}
	if moved && !slices.Contains(nextCategories, fallback) {
		nextCategories = append(nextCategories, fallback)
	}
	return nextCategories, nextItems, true, nil
}

// FilterItems returns the items shown under the active filter tab.
func FilterItems[E models.Categorized](items []E, active string) []E {
	if active == "" || active == FilterAll {
		return items
	}
	out := make([]E, 0, len(items))
	for _, item := range items {
		if item.GetCategory() == active {
			out = append(out, item)
		}
	}
	return out
}

// SelectFilter resolves a requested tab against the category list. Empty means FilterAll.
func SelectFilter(name string, categories []string) (string, error) {
	if name == "" || name == FilterAll {
		return FilterAll, nil
	}
	if !slices.Contains(categories, name) {
		return "", fmt.Errorf("%w: %s", apperrors.ErrCategoryNotFound, name)
	}
	return name, nil
}

// FilterAfterRename is the tab a caller on active should switch to after from became to.
func FilterAfterRename(active, from, to string) string {
	switch active {
	case "":
		return FilterAll
	case from:
		return strings.TrimSpace(to)
	}
	return active
}
