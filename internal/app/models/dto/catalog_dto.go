package dto

// CatalogPostResponse is a blog article with its markdown body rendered
type CatalogPostResponse struct {
	ID          int64  `json:"id" example:"7"`
	Title       string `json:"title" example:"Reading blood spatter"`
	Slug        string `json:"slug" example:"reading-blood-spatter"`
	Author      string `json:"author" example:"Dr. Meera Iyer"`
	PublishedAt string `json:"publishedAt" example:"2024-02-11"`
	Image       string `json:"image"`
	HTML        string `json:"html" example:"<p>Spatter patterns tell...</p>"`
}
