package models

// DefaultBlogCategory receives posts whose category is deleted.
const DefaultBlogCategory = "General"

// BlogPageData is the editable content of the blog landing page.
type BlogPageData struct {
	Hero       Hero         `json:"hero"`
	Intro      SectionIntro `json:"intro"`
	Categories []string     `json:"categories"`
	Featured   []BlogPost   `json:"featured"`
	Newsletter CallToAction `json:"newsletter"`
}

// BlogPost is a featured article written on the site itself.
type BlogPost struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
}

func (b BlogPost) GetID() int64        { return b.ID }
func (b BlogPost) GetCategory() string { return b.Category }
