package models

// EventsPageData is the editable content of the events page.
type EventsPageData struct {
	Hero       Hero             `json:"hero"`
	Stats      []Stat           `json:"stats"`
	Upcoming   SectionIntro     `json:"upcoming"`
	Highlights []EventHighlight `json:"highlights"`
	Partners   []Partner        `json:"partners"`
	Enquiries  []EnquiryItem    `json:"enquiries"`
	Contact    CallToAction     `json:"contact"`
}

// EventHighlight is a past event shown on the events page.
type EventHighlight struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (e EventHighlight) GetID() int64 { return e.ID }
