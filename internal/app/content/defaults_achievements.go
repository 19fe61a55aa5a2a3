package content

import "github.com/yigit/forensicsite/internal/app/models"

// DefaultAchievements is the seed document of the achievements page.
func DefaultAchievements() models.AchievementsPageData {
	return models.AchievementsPageData{
		Hero: models.Hero{
			Title:    "Achievements",
			Subtitle: "<p>Recognition earned by our students, faculty and laboratory.</p>",
			Image:    "/static/img/achievements-hero.svg",
		},
		Stats: []models.Stat{
			{ID: 1, Label: "Students trained", Value: "4,000+"},
			{ID: 2, Label: "Awards", Value: "27"},
			{ID: 3, Label: "Years of teaching", Value: "15"},
		},
		Intro: models.SectionIntro{
			Heading: "Milestones",
			Body:    "<p>A selection of the moments we are proudest of.</p>",
		},
		Categories: []string{"Accreditation", "Awards", models.DefaultAchievementCategory},
		Achievements: []models.Achievement{
			{
				ID:          1,
				Title:       "Laboratory accreditation",
				Year:        "2021",
				Category:    "Accreditation",
				Description: "<p>Our teaching laboratory met ISO/IEC 17025 requirements.</p>",
				Image:       "/static/img/achievements/accreditation.svg",
			},
			{
				ID:          2,
				Title:       "Best training institute",
				Year:        "2023",
				Category:    "Awards",
				Description: "<p>Awarded at the national forensic education summit.</p>",
				Image:       "/static/img/achievements/award.svg",
			},
		},
		Partners: []models.Partner{
			{ID: 1, Name: "National Law University", Logo: "/static/img/partners/nlu.svg", URL: ""},
		},
	}
}
