package models

// Identifiable is a list entry with a stable id assigned at creation.
type Identifiable interface {
	GetID() int64
}

// Categorized is a list entry grouped under a category name.
type Categorized interface {
	Identifiable
	GetCategory() string
}

// Hero is the banner at the top of every page.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

// SectionIntro is a heading with a rich-text body.
type SectionIntro struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// CallToAction is a short block ending in a button.
type CallToAction struct {
	Heading     string `json:"heading"`
	Text        string `json:"text"`
	ButtonLabel string `json:"buttonLabel"`
	ButtonURL   string `json:"buttonUrl"`
}

// Stat is one headline number.
type Stat struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (s Stat) GetID() int64 { return s.ID }

// Partner is a logo in a partners strip.
type Partner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
	URL  string `json:"url"`
}

func (p Partner) GetID() int64 { return p.ID }

// EnquiryItem is a question and answer pair.
type EnquiryItem struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (e EnquiryItem) GetID() int64 { return e.ID }
