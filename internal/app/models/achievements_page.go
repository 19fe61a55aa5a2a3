package models

// DefaultAchievementCategory receives achievements whose category is deleted.
const DefaultAchievementCategory = "General"

// AchievementsPageData is the editable content of the achievements page.
type AchievementsPageData struct {
	Hero         Hero          `json:"hero"`
	Stats        []Stat        `json:"stats"`
	Intro        SectionIntro  `json:"intro"`
	Categories   []string      `json:"categories"`
	Achievements []Achievement `json:"achievements"`
	Partners     []Partner     `json:"partners"`
}

// Achievement is one award, accreditation or milestone.
type Achievement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Year        string `json:"year"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (a Achievement) GetID() int64        { return a.ID }
func (a Achievement) GetCategory() string { return a.Category }
