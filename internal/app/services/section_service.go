package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/app/sections"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
)

// SectionService edits list entries and categories of loaded realms.
type SectionService struct {
	registry *content.Registry
	editors  *sections.Editors
	logger   zerolog.Logger
}

// NewSectionService creates a new SectionService
func NewSectionService(registry *content.Registry, editors *sections.Editors, logger zerolog.Logger) *SectionService {
	return &SectionService{
		registry: registry,
		editors:  editors,
		logger:   logger,
	}
}

func (s *SectionService) warning(realm string, change sections.Change) string {
	if !change.Applied {
		return ""
	}
	page, err := s.registry.Page(realm)
	if err != nil {
		return ""
	}
	return persistWarning(page, change.Persisted)
}

func (s *SectionService) items(ctx context.Context, realm, section string) (sections.ItemEditor, error) {
	if err := s.load(ctx, realm); err != nil {
		return nil, err
	}
	return s.editors.Items(realm, section)
}

func (s *SectionService) categories(ctx context.Context, realm string) (sections.CategoryEditor, error) {
	if err := s.load(ctx, realm); err != nil {
		return nil, err
	}
	return s.editors.Categories(realm)
}

func (s *SectionService) load(ctx context.Context, realm string) error {
	page, err := s.registry.Page(realm)
	if err != nil {
		return err
	}
	if !page.IsLoaded() {
		page.Load(ctx)
	}
	return nil
}

// ListItems returns the entries of a list section
func (s *SectionService) ListItems(ctx context.Context, realm, section string) (json.RawMessage, error) {
	ed, err := s.items(ctx, realm, section)
	if err != nil {
		return nil, err
	}
	return ed.Items()
}

// AddItem appends an entry built from fields under a fresh id
func (s *SectionService) AddItem(ctx context.Context, realm, section string, fields json.RawMessage) (*dto.ItemResponse, error) {
	ed, err := s.items(ctx, realm, section)
	if err != nil {
		return nil, err
	}
	item, change, err := ed.Add(ctx, fields)
	if err != nil {
		return nil, err
	}
	return s.itemResponse(realm, section, item, change), nil
}

// UpdateItem shallow-merges fields onto the entry with id
func (s *SectionService) UpdateItem(ctx context.Context, realm, section string, id int64, fields json.RawMessage) (*dto.ItemResponse, error) {
	ed, err := s.items(ctx, realm, section)
	if err != nil {
		return nil, err
	}
	item, change, err := ed.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return s.itemResponse(realm, section, item, change), nil
}

// DeleteItem removes the entry with id. Without confirmation nothing changes.
func (s *SectionService) DeleteItem(ctx context.Context, realm, section string, id int64, confirmed bool) (*dto.ItemResponse, error) {
	ed, err := s.items(ctx, realm, section)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, apperrors.NewCustomError(apperrors.ErrConfirmationRequired,
			fmt.Sprintf("Deleting item %d from %s needs confirm=true", id, section))
	}
	change, err := ed.Delete(ctx, id, confirm.FromBool(confirmed))
	if err != nil {
		return nil, err
	}
	return s.itemResponse(realm, section, nil, change), nil
}

func (s *SectionService) itemResponse(realm, section string, item json.RawMessage, change sections.Change) *dto.ItemResponse {
	return &dto.ItemResponse{
		Realm:     realm,
		Section:   section,
		Item:      item,
		Applied:   change.Applied,
		Persisted: change.Persisted,
		Warning:   s.warning(realm, change),
	}
}

// Categories returns the category list of a realm
func (s *SectionService) Categories(ctx context.Context, realm string) (*dto.CategoryResponse, error) {
	ed, err := s.categories(ctx, realm)
	if err != nil {
		return nil, err
	}
	return s.categoryResponse(ed, sections.Change{}, ""), nil
}

// AddCategory appends a category
func (s *SectionService) AddCategory(ctx context.Context, realm, name string) (*dto.CategoryResponse, error) {
	ed, err := s.categories(ctx, realm)
	if err != nil {
		return nil, err
	}
	change, err := ed.Add(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.categoryResponse(ed, change, ""), nil
}

// RenameCategory renames a category and every entry filed under it. active is the
// caller's tab; the response names the tab to show next.
func (s *SectionService) RenameCategory(ctx context.Context, realm, from, to, active string) (*dto.CategoryResponse, error) {
	ed, err := s.categories(ctx, realm)
	if err != nil {
		return nil, err
	}
	change, err := ed.Rename(ctx, from, to)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("realm", realm).Str("from", from).Str("to", to).Msg("Category renamed")
	return s.categoryResponse(ed, change, sections.FilterAfterRename(active, from, to)), nil
}

// DeleteCategory removes a category, moving its entries to the realm's fallback category
func (s *SectionService) DeleteCategory(ctx context.Context, realm, name string, confirmed bool) (*dto.CategoryResponse, error) {
	ed, err := s.categories(ctx, realm)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, apperrors.NewCustomError(apperrors.ErrConfirmationRequired,
			fmt.Sprintf("Deleting %q moves its entries to %q; send confirm=true to proceed", name, ed.Fallback()))
	}
	change, err := ed.Delete(ctx, name, confirm.FromBool(confirmed))
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("realm", realm).Str("category", name).Msg("Category deleted")
	next := ""
	if change.Applied {
		next = sections.FilterAll
	}
	return s.categoryResponse(ed, change, next), nil
}

func (s *SectionService) categoryResponse(ed sections.CategoryEditor, change sections.Change, next string) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Realm:        ed.Realm(),
		Categories:   ed.Categories(),
		ActiveFilter: next,
		Applied:      change.Applied,
		Persisted:    change.Persisted,
		Warning:      s.warning(ed.Realm(), change),
	}
}

// Filtered returns the entries shown under the category tab the caller asks for.
// The tab is never stored.
func (s *SectionService) Filtered(ctx context.Context, realm, category string) (*dto.FilteredItemsResponse, error) {
	ed, err := s.categories(ctx, realm)
	if err != nil {
		return nil, err
	}
	items, active, err := ed.VisibleItems(category)
	if err != nil {
		return nil, err
	}
	return &dto.FilteredItemsResponse{
		Realm:        ed.Realm(),
		ActiveFilter: active,
		Categories:   ed.Categories(),
		Items:        items,
	}, nil
}
