package content

import "github.com/yigit/forensicsite/internal/app/models"

// DefaultCourses is the seed document of the courses page.
func DefaultCourses() models.CoursesPageData {
	return models.CoursesPageData{
		Hero: models.Hero{
			Title:    "Courses &amp; Training",
			Subtitle: "<p>Certificate, diploma and hands-on programmes in forensic science.</p>",
			Image:    "/static/img/courses-hero.svg",
		},
		Courses: models.SectionIntro{
			Heading: "Our courses",
			Body:    "<p>All courses combine lectures with laboratory practicals.</p>",
		},
		Internships: []models.Program{
			{
				ID:          1,
				Title:       "Crime scene internship",
				Duration:    "4 weeks",
				Mode:        "On campus",
				Description: "<p>Document, collect and preserve evidence under supervision.</p>",
				Image:       "/static/img/courses/internship.svg",
			},
		},
		Training: []models.Program{
			{
				ID:          1,
				Title:       "Fingerprint examination",
				Duration:    "5 days",
				Mode:        "Hybrid",
				Description: "<p>Ridge characteristics, lifting techniques and comparison.</p>",
				Image:       "/static/img/courses/fingerprint.svg",
			},
			{
				ID:          2,
				Title:       "Questioned documents",
				Duration:    "3 days",
				Mode:        "Online",
				Description: "<p>Handwriting, ink and paper examination fundamentals.</p>",
				Image:       "/static/img/courses/documents.svg",
			},
		},
		Books: []models.Book{
			{
				ID:          1,
				Title:       "Principles of Forensic Science",
				Author:      "Institute Faculty",
				Description: "<p>The companion text for the foundation course.</p>",
				Image:       "/static/img/books/principles.svg",
				URL:         "",
			},
		},
		Enquiries: []models.EnquiryItem{
			{ID: 1, Question: "Do I need a science degree?", Answer: "<p>Not for certificate courses; diplomas require a science background.</p>"},
			{ID: 2, Question: "Are classes recorded?", Answer: "<p>Online sessions are recorded and shared with enrolled students.</p>"},
		},
	}
}
