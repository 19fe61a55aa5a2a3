package dto

import "encoding/json"

// ItemResponse is a list entry after an add or update
type ItemResponse struct {
	Realm     string          `json:"realm" example:"faculty"`
	Section   string          `json:"section" example:"members"`
	Item      json.RawMessage `json:"item,omitempty" swaggertype:"object"`
	Applied   bool            `json:"applied"`
	Persisted bool            `json:"persisted"`
	Warning   string          `json:"warning,omitempty"`
}

// CategoryRequest names a category to add, or the new name in a rename
type CategoryRequest struct {
	Name string `json:"name" binding:"required,categoryname" example:"Guest Lecturers"`
}

// CategoryResponse is the category list after a change. ActiveFilter is the tab the
// caller should switch to after a rename or delete.
type CategoryResponse struct {
	Realm        string   `json:"realm" example:"faculty"`
	Categories   []string `json:"categories"`
	ActiveFilter string   `json:"activeFilter,omitempty" example:"All"`
	Applied      bool     `json:"applied"`
	Persisted    bool     `json:"persisted"`
	Warning      string   `json:"warning,omitempty"`
}

// FilteredItemsResponse lists the entries shown under the active tab
type FilteredItemsResponse struct {
	Realm        string      `json:"realm" example:"faculty"`
	ActiveFilter string      `json:"activeFilter" example:"All"`
	Categories   []string    `json:"categories"`
	Items        interface{} `json:"items"`
}
