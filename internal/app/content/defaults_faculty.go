package content

import "github.com/yigit/forensicsite/internal/app/models"

// DefaultFaculty is the seed document of the faculty page.
func DefaultFaculty() models.FacultyPageData {
	return models.FacultyPageData{
		Hero: models.Hero{
			Title:    "Our Faculty",
			Subtitle: "<p>Scientists, examiners and investigators who teach from casework.</p>",
			Image:    "/static/img/faculty-hero.svg",
		},
		Intro: models.SectionIntro{
			Heading: "Meet the team",
			Body:    "<p>Every course is taught by people who have given evidence in court.</p>",
		},
		Categories: []string{"Core Faculty", "Visiting Faculty", models.DefaultFacultyCategory},
		Members: []models.FacultyMember{
			{
				ID:        1,
				Name:      "Dr. Meera Iyer",
				Title:     "Director, Forensic Biology",
				Category:  "Core Faculty",
				Bio:       "<p>Twenty years in DNA analysis and serology.</p>",
				Image:     "/static/img/faculty/iyer.svg",
				Email:     "meera.iyer@example.org",
				Expertise: "DNA profiling",
			},
			{
				ID:        2,
				Name:      "Arjun Rao",
				Title:     "Digital Forensics Lead",
				Category:  "Core Faculty",
				Bio:       "<p>Former examiner with a state cyber crime unit.</p>",
				Image:     "/static/img/faculty/rao.svg",
				Email:     "arjun.rao@example.org",
				Expertise: "Mobile and disk forensics",
			},
			{
				ID:        3,
				Name:      "Dr. Sana Qureshi",
				Title:     "Forensic Odontologist",
				Category:  "Visiting Faculty",
				Bio:       "<p>Consults on identification in mass disaster response.</p>",
				Image:     "/static/img/faculty/qureshi.svg",
				Email:     "sana.qureshi@example.org",
				Expertise: "Dental identification",
			},
		},
		Join: models.CallToAction{
			Heading:     "Teach with us",
			Text:        "<p>We welcome practitioners who want to share their casework.</p>",
			ButtonLabel: "Apply",
			ButtonURL:   "/careers",
		},
	}
}
