package models

// CoursesPageData is the editable content of the courses page. The course grid itself
// comes from the upstream catalog; the rest is edited in place.
type CoursesPageData struct {
	Hero        Hero          `json:"hero"`
	Courses     SectionIntro  `json:"courses"`
	Internships []Program     `json:"internships"`
	Training    []Program     `json:"training"`
	Books       []Book        `json:"books"`
	Enquiries   []EnquiryItem `json:"enquiries"`
}

// Program is an internship or training programme.
type Program struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Mode        string `json:"mode"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (p Program) GetID() int64 { return p.ID }

// Book is a publication recommended on the courses page.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url"`
}

func (b Book) GetID() int64 { return b.ID }
