package content

import "github.com/yigit/forensicsite/internal/app/models"

// DefaultBlog is the seed document of the blog landing page.
func DefaultBlog() models.BlogPageData {
	return models.BlogPageData{
		Hero: models.Hero{
			Title:    "Forensic Insights",
			Subtitle: "<p>Casework notes, research summaries and career advice from our faculty.</p>",
			Image:    "/static/img/blog-hero.svg",
		},
		Intro: models.SectionIntro{
			Heading: "From the lab",
			Body:    "<p>Articles are reviewed by practising forensic scientists before publication.</p>",
		},
		Categories: []string{"Case Studies", "Research", "Careers"},
		Featured: []models.BlogPost{
			{
				ID:       1,
				Title:    "Reading bloodstain patterns",
				Slug:     "reading-bloodstain-patterns",
				Category: "Case Studies",
				Author:   "Dr. Meera Iyer",
				Date:     "2024-03-02",
				Excerpt:  "<p>What spatter geometry can and cannot tell an investigator.</p>",
				Image:    "/static/img/blog/bloodstain.svg",
			},
			{
				ID:       2,
				Title:    "Starting a career in digital forensics",
				Slug:     "career-digital-forensics",
				Category: "Careers",
				Author:   "Arjun Rao",
				Date:     "2024-04-19",
				Excerpt:  "<p>Certifications, tooling and the first year on the job.</p>",
				Image:    "/static/img/blog/digital.svg",
			},
		},
		Newsletter: models.CallToAction{
			Heading:     "Stay informed",
			Text:        "<p>A monthly digest of new articles and upcoming events.</p>",
			ButtonLabel: "Subscribe",
			ButtonURL:   "/newsletter",
		},
	}
}
