package dto

// ImageUploadResponse carries the displayable URI of an uploaded image
type ImageUploadResponse struct {
	URI      string `json:"uri" example:"data:image/png;base64,iVBORw0KGgo..."`
	MimeType string `json:"mimeType" example:"image/png"`
	Size     int64  `json:"size" example:"48213"`
	Filename string `json:"filename" example:"portrait.png"`
}

// FormatRequest applies one toolbar command to a rich-text value
type FormatRequest struct {
	HTML    string  `json:"html" example:"<p>Hello</p>"`
	Command string  `json:"command" binding:"required" example:"bold"`
	Block   int     `json:"block" example:"0"`
	Align   string  `json:"align,omitempty" example:"center"`
	URL     *string `json:"url,omitempty" example:"https://example.org"`
	Value   string  `json:"value,omitempty"`
}

// FormatResponse is the sanitized HTML after a toolbar command
type FormatResponse struct {
	HTML string `json:"html" example:"<p><strong>Hello</strong></p>"`
}
