package dto

import "encoding/json"

// RealmSummary describes one editable page
type RealmSummary struct {
	Name       string   `json:"name" example:"faculty"`
	StorageKey string   `json:"storageKey" example:"forensic:faculty"`
	Version    int      `json:"version" example:"2"`
	Sections   []string `json:"sections"`
	Status     string   `json:"status" example:"merged"`
	EditMode   bool     `json:"editMode"`
}

// PageResponse is a whole page document
type PageResponse struct {
	Realm    string          `json:"realm" example:"faculty"`
	Status   string          `json:"status" example:"merged"`
	EditMode bool            `json:"editMode"`
	Data     json.RawMessage `json:"data" swaggertype:"object"`
}

// SectionResponse is one top-level section of a page document
type SectionResponse struct {
	Realm   string          `json:"realm" example:"faculty"`
	Section string          `json:"section" example:"hero"`
	Data    json.RawMessage `json:"data" swaggertype:"object"`
}

// UpdateSectionRequest replaces a section with Value. The whole section must be sent.
type UpdateSectionRequest struct {
	Value json.RawMessage `json:"value" binding:"required" swaggertype:"object"`
}

// SectionUpdateResponse reports an applied change. Persisted is false when the change
// lives in memory only; Warning then says why.
type SectionUpdateResponse struct {
	Realm     string          `json:"realm" example:"faculty"`
	Section   string          `json:"section" example:"hero"`
	Persisted bool            `json:"persisted"`
	Warning   string          `json:"warning,omitempty"`
	Data      json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// ResetRequest must carry confirm=true
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// ResetResponse reports a reset to defaults
type ResetResponse struct {
	Realm     string `json:"realm" example:"faculty"`
	Reset     bool   `json:"reset"`
	Persisted bool   `json:"persisted"`
	Warning   string `json:"warning,omitempty"`
}

// EditSessionResponse describes an edit session
type EditSessionResponse struct {
	SessionID string `json:"sessionId" example:"4f6c2b8e-3a61-4f1e-9d3b-0a6f3c1e2d7a"`
	Realm     string `json:"realm" example:"faculty"`
	State     string `json:"state" example:"editing"`
}

// ConfirmSaveRequest carries the password typed into the save dialog
type ConfirmSaveRequest struct {
	Password string `json:"password" binding:"required" example:"secret"`
}

// SaveResponse reports a completed save
type SaveResponse struct {
	Realm     string `json:"realm" example:"faculty"`
	State     string `json:"state" example:"viewing"`
	Persisted bool   `json:"persisted"`
	Warning   string `json:"warning,omitempty"`
	Message   string `json:"message" example:"Changes saved"`
}
