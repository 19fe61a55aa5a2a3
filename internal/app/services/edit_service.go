package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/app/editsession"
	"github.com/yigit/forensicsite/internal/app/models/dto"
)

// EditService drives the edit/save flow of a page.
type EditService struct {
	registry *content.Registry
	sessions *editsession.Manager
	logger   zerolog.Logger
}

// NewEditService creates a new EditService
func NewEditService(registry *content.Registry, sessions *editsession.Manager, logger zerolog.Logger) *EditService {
	return &EditService{
		registry: registry,
		sessions: sessions,
		logger:   logger,
	}
}

func sessionResponse(s *editsession.Session) *dto.EditSessionResponse {
	return &dto.EditSessionResponse{
		SessionID: s.ID(),
		Realm:     s.Realm(),
		State:     s.State().String(),
	}
}

// Begin opens a session for username and puts the page into edit mode once the edit
// delay has played.
func (s *EditService) Begin(ctx context.Context, username, realm string) (*dto.EditSessionResponse, error) {
	page, err := s.registry.Page(realm)
	if err != nil {
		return nil, err
	}
	if !page.IsLoaded() {
		page.Load(ctx)
	}

	session := s.sessions.Open(username, page)
	if err := session.BeginEdit(ctx); err != nil {
		s.sessions.Close(session.ID())
		return nil, err
	}
	return sessionResponse(session), nil
}

// Status describes a session
func (s *EditService) Status(session *editsession.Session) *dto.EditSessionResponse {
	return sessionResponse(session)
}

// RequestSave opens the password confirmation
func (s *EditService) RequestSave(session *editsession.Session) (*dto.EditSessionResponse, error) {
	if err := session.RequestSave(); err != nil {
		return nil, err
	}
	return sessionResponse(session), nil
}

// CancelSave closes the password confirmation and keeps editing
func (s *EditService) CancelSave(session *editsession.Session) (*dto.EditSessionResponse, error) {
	if err := session.CancelSave(); err != nil {
		return nil, err
	}
	return sessionResponse(session), nil
}

// ConfirmSave checks the password, writes the page and ends the session. A wrong
// password leaves the confirmation open so the editor can retry.
func (s *EditService) ConfirmSave(ctx context.Context, session *editsession.Session, password string) (*dto.SaveResponse, error) {
	result, err := session.ConfirmSave(ctx, password)
	if err != nil {
		return nil, err
	}
	s.sessions.Close(session.ID())

	resp := &dto.SaveResponse{
		Realm:     session.Realm(),
		State:     session.State().String(),
		Persisted: result.Persisted,
		Message:   "Changes saved",
	}
	if !result.Persisted {
		resp.Message = "Changes kept for now but could not be stored"
		resp.Warning = "Storage rejected the write"
		if result.Err != nil {
			resp.Warning = result.Err.Error()
		}
	}
	return resp, nil
}

// Discard ends a session without saving
func (s *EditService) Discard(session *editsession.Session) *dto.EditSessionResponse {
	s.sessions.Close(session.ID())
	return sessionResponse(session)
}
