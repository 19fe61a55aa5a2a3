package models

// DefaultFacultyCategory receives members whose category is deleted.
const DefaultFacultyCategory = "Adjunct Faculty"

// FacultyPageData is the editable content of the faculty page.
type FacultyPageData struct {
	Hero       Hero            `json:"hero"`
	Intro      SectionIntro    `json:"intro"`
	Categories []string        `json:"categories"`
	Members    []FacultyMember `json:"members"`
	Join       CallToAction    `json:"join"`
}

// FacultyMember is one person on the faculty page.
type FacultyMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Email     string `json:"email"`
	Expertise string `json:"expertise"`
}

func (m FacultyMember) GetID() int64        { return m.ID }
func (m FacultyMember) GetCategory() string { return m.Category }
