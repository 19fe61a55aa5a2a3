package models

// CatalogCourse is a course listing served by the upstream API.
type CatalogCourse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Level       string  `json:"level"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// CatalogEvent is an upcoming event served by the upstream API.
type CatalogEvent struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
	Image    string `json:"image"`
}

// CatalogPost is a blog article served by the upstream API. Body is markdown.
type CatalogPost struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	Author      string `json:"author"`
	PublishedAt string `json:"publishedAt"`
	Image       string `json:"image"`
}
