package content

import "github.com/yigit/forensicsite/internal/app/models"

// DefaultEvents is the seed document of the events page.
func DefaultEvents() models.EventsPageData {
	return models.EventsPageData{
		Hero: models.Hero{
			Title:    "Events &amp; Conferences",
			Subtitle: "<p>Workshops, symposia and mock trials for forensic practitioners and students.</p>",
			Image:    "/static/img/events-hero.svg",
		},
		Stats: []models.Stat{
			{ID: 1, Label: "Events hosted", Value: "120+"},
			{ID: 2, Label: "Participants", Value: "8,500"},
			{ID: 3, Label: "Partner institutions", Value: "35"},
		},
		Upcoming: models.SectionIntro{
			Heading: "Upcoming events",
			Body:    "<p>Register early: seats for hands-on workshops are limited.</p>",
		},
		Highlights: []models.EventHighlight{
			{
				ID:          1,
				Title:       "National Forensic Science Symposium",
				Date:        "2024-02-17",
				Location:    "New Delhi",
				Description: "<p>Two days of talks on DNA profiling, digital evidence and courtroom testimony.</p>",
				Image:       "/static/img/events/symposium.svg",
			},
			{
				ID:          2,
				Title:       "Crime Scene Reconstruction Workshop",
				Date:        "2024-06-08",
				Location:    "Institute campus",
				Description: "<p>Participants processed a staged scene from first response to final report.</p>",
				Image:       "/static/img/events/workshop.svg",
			},
		},
		Partners: []models.Partner{
			{ID: 1, Name: "State Forensic Science Laboratory", Logo: "/static/img/partners/sfsl.svg", URL: ""},
			{ID: 2, Name: "Cyber Crime Cell", Logo: "/static/img/partners/cyber.svg", URL: ""},
		},
		Enquiries: []models.EnquiryItem{
			{ID: 1, Question: "Who can attend?", Answer: "<p>Students, practitioners and law enforcement officers.</p>"},
			{ID: 2, Question: "Are certificates issued?", Answer: "<p>Yes, every participant receives a certificate of attendance.</p>"},
		},
		Contact: models.CallToAction{
			Heading:     "Host an event with us",
			Text:        "<p>We co-organise seminars with universities and agencies.</p>",
			ButtonLabel: "Contact us",
			ButtonURL:   "/contact",
		},
	}
}
