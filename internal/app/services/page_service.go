package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/confirm"
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

// PageService reads and writes whole realm documents and their top-level sections.
type PageService struct {
	registry *content.Registry
	logger   zerolog.Logger
}

// NewPageService creates a new PageService
func NewPageService(registry *content.Registry, logger zerolog.Logger) *PageService {
	return &PageService{
		registry: registry,
		logger:   logger,
	}
}

// Page returns the hook of a realm, loading it on first use.
func (s *PageService) Page(ctx context.Context, realm string) (pagedata.Page, error) {
	page, err := s.registry.Page(realm)
	if err != nil {
		return nil, err
	}
	if !page.IsLoaded() {
		page.Load(ctx)
	}
	return page, nil
}

// ListRealms describes every realm in display order
func (s *PageService) ListRealms() []dto.RealmSummary {
	pages := s.registry.Pages()
	out := make([]dto.RealmSummary, 0, len(pages))
	for _, page := range pages {
		info := page.Info()
		out = append(out, dto.RealmSummary{
			Name:       info.Name,
			StorageKey: info.StorageKey,
			Version:    info.Version,
			Sections:   info.Sections,
			Status:     string(page.Status()),
			EditMode:   page.EditMode(),
		})
	}
	return out
}

// GetPage returns the whole document of a realm
func (s *PageService) GetPage(ctx context.Context, realm string) (*dto.PageResponse, error) {
	page, err := s.Page(ctx, realm)
	if err != nil {
		return nil, err
	}
	doc, err := page.Document()
	if err != nil {
		return nil, err
	}
	return &dto.PageResponse{
		Realm:    page.Name(),
		Status:   string(page.Status()),
		EditMode: page.EditMode(),
		Data:     doc,
	}, nil
}

// GetSection returns one top-level section of a realm
func (s *PageService) GetSection(ctx context.Context, realm, section string) (*dto.SectionResponse, error) {
	page, err := s.Page(ctx, realm)
	if err != nil {
		return nil, err
	}
	data, err := page.Section(section)
	if err != nil {
		return nil, err
	}
	return &dto.SectionResponse{Realm: realm, Section: section, Data: data}, nil
}

// UpdateSection replaces a section while the page is in edit mode. A failed write still
// applies the change in memory; the response then carries persisted=false and a warning.
func (s *PageService) UpdateSection(ctx context.Context, realm, section string, value json.RawMessage) (*dto.SectionUpdateResponse, error) {
	page, err := s.Page(ctx, realm)
	if err != nil {
		return nil, err
	}
	if !page.EditMode() {
		return nil, apperrors.ErrNotEditing
	}

	persisted, err := page.UpdateSection(ctx, section, value)
	if err != nil {
		return nil, err
	}
	data, err := page.Section(section)
	if err != nil {
		return nil, err
	}

	return &dto.SectionUpdateResponse{
		Realm:     realm,
		Section:   section,
		Persisted: persisted,
		Warning:   persistWarning(page, persisted),
		Data:      data,
	}, nil
}

// Reset restores the defaults of a realm once confirmed
func (s *PageService) Reset(ctx context.Context, realm string, confirmed bool) (*dto.ResetResponse, error) {
	page, err := s.Page(ctx, realm)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, apperrors.NewCustomError(apperrors.ErrConfirmationRequired,
			fmt.Sprintf("Resetting %s discards every edit; send confirm=true to proceed", realm))
	}

	reset, persisted := page.ResetToDefault(ctx, confirm.FromBool(true))
	s.logger.Info().Str("realm", realm).Bool("persisted", persisted).Msg("Page reset to defaults")
	return &dto.ResetResponse{
		Realm:     realm,
		Reset:     reset,
		Persisted: persisted,
		Warning:   persistWarning(page, persisted),
	}, nil
}

// Export returns the stored document of a realm
func (s *PageService) Export(ctx context.Context, realm string) (json.RawMessage, error) {
	page, err := s.Page(ctx, realm)
	if err != nil {
		return nil, err
	}
	return page.Document()
}

// Import merges raw onto the realm defaults and persists the result
func (s *PageService) Import(ctx context.Context, realm string, raw json.RawMessage) (*dto.SectionUpdateResponse, error) {
	page, err := s.Page(ctx, realm)
	if err != nil {
		return nil, err
	}
	persisted, err := page.Import(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	doc, err := page.Document()
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("realm", realm).Bool("persisted", persisted).Msg("Page document imported")
	return &dto.SectionUpdateResponse{
		Realm:     realm,
		Persisted: persisted,
		Warning:   persistWarning(page, persisted),
		Data:      doc,
	}, nil
}
