package sections

import (
	"fmt"

	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
)

// Editors indexes the list and category editors of every realm.
type Editors struct {
	items      map[string]map[string]ItemEditor
	categories map[string]CategoryEditor

	Faculty           *CategorySection[models.FacultyPageData, models.FacultyMember]
	FacultyMembers    *ListSection[models.FacultyPageData, models.FacultyMember]
	AchievementGroups *CategorySection[models.AchievementsPageData, models.Achievement]
	BlogCategories    *CategorySection[models.BlogPageData, models.BlogPost]
}

// NewEditors binds editors to the hooks in reg.
func NewEditors(reg *content.Registry) *Editors {
	e := &Editors{
		items:      make(map[string]map[string]ItemEditor),
		categories: make(map[string]CategoryEditor),
	}

	events := reg.Events()
	e.addItems(
		NewListSection(events, "stats", "statistic",
			func(d models.EventsPageData) []models.Stat { return d.Stats }, statWithID),
		NewListSection(events, "highlights", "event",
			func(d models.EventsPageData) []models.EventHighlight { return d.Highlights },
			func(h models.EventHighlight, id int64) models.EventHighlight { h.ID = id; return h }),
		NewListSection(events, "partners", "partner",
			func(d models.EventsPageData) []models.Partner { return d.Partners }, partnerWithID),
		NewListSection(events, "enquiries", "enquiry",
			func(d models.EventsPageData) []models.EnquiryItem { return d.Enquiries }, enquiryWithID),
	)

	blog := reg.Blog()
	e.addItems(NewListSection(blog, "featured", "post",
		func(d models.BlogPageData) []models.BlogPost { return d.Featured },
		func(p models.BlogPost, id int64) models.BlogPost { p.ID = id; return p }))
	e.BlogCategories = NewCategorySection(blog, "categories", "featured", models.DefaultBlogCategory,
		func(d models.BlogPageData) []string { return d.Categories },
		func(d models.BlogPageData) []models.BlogPost { return d.Featured },
		func(p models.BlogPost, c string) models.BlogPost { p.Category = c; return p })
	e.categories[content.RealmBlog] = e.BlogCategories

	faculty := reg.Faculty()
	e.FacultyMembers = NewListSection(faculty, "members", "faculty member",
		func(d models.FacultyPageData) []models.FacultyMember { return d.Members },
		func(m models.FacultyMember, id int64) models.FacultyMember { m.ID = id; return m })
	e.addItems(e.FacultyMembers)
	e.Faculty = NewCategorySection(faculty, "categories", "members", models.DefaultFacultyCategory,
		func(d models.FacultyPageData) []string { return d.Categories },
		func(d models.FacultyPageData) []models.FacultyMember { return d.Members },
		func(m models.FacultyMember, c string) models.FacultyMember { m.Category = c; return m })
	e.categories[content.RealmFaculty] = e.Faculty

	achievements := reg.Achievements()
	e.addItems(
		NewListSection(achievements, "stats", "statistic",
			func(d models.AchievementsPageData) []models.Stat { return d.Stats }, statWithID),
		NewListSection(achievements, "achievements", "achievement",
			func(d models.AchievementsPageData) []models.Achievement { return d.Achievements },
			func(a models.Achievement, id int64) models.Achievement { a.ID = id; return a }),
		NewListSection(achievements, "partners", "partner",
			func(d models.AchievementsPageData) []models.Partner { return d.Partners }, partnerWithID),
	)
	e.AchievementGroups = NewCategorySection(achievements, "categories", "achievements", models.DefaultAchievementCategory,
		func(d models.AchievementsPageData) []string { return d.Categories },
		func(d models.AchievementsPageData) []models.Achievement { return d.Achievements },
		func(a models.Achievement, c string) models.Achievement { a.Category = c; return a })
	e.categories[content.RealmAchievements] = e.AchievementGroups

	courses := reg.Courses()
	e.addItems(
		NewListSection(courses, "internships", "internship",
			func(d models.CoursesPageData) []models.Program { return d.Internships }, programWithID),
		NewListSection(courses, "training", "training programme",
			func(d models.CoursesPageData) []models.Program { return d.Training }, programWithID),
		NewListSection(courses, "books", "book",
			func(d models.CoursesPageData) []models.Book { return d.Books },
			func(b models.Book, id int64) models.Book { b.ID = id; return b }),
		NewListSection(courses, "enquiries", "enquiry",
			func(d models.CoursesPageData) []models.EnquiryItem { return d.Enquiries }, enquiryWithID),
	)

	return e
}

func (e *Editors) addItems(editors ...ItemEditor) {
	for _, ed := range editors {
		if e.items[ed.Realm()] == nil {
			e.items[ed.Realm()] = make(map[string]ItemEditor)
		}
		e.items[ed.Realm()][ed.Section()] = ed
	}
}

// Items returns the editor for a list section.
func (e *Editors) Items(realm, section string) (ItemEditor, error) {
	ed, ok := e.items[realm][section]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s is not a list section", apperrors.ErrSectionNotFound, realm, section)
	}
	return ed, nil
}

// Categories returns the category editor of a realm.
func (e *Editors) Categories(realm string) (CategoryEditor, error) {
	ed, ok := e.categories[realm]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no categories", apperrors.ErrSectionNotFound, realm)
	}
	return ed, nil
}

func statWithID(s models.Stat, id int64) models.Stat                  { s.ID = id; return s }
func partnerWithID(p models.Partner, id int64) models.Partner         { p.ID = id; return p }
func enquiryWithID(q models.EnquiryItem, id int64) models.EnquiryItem { q.ID = id; return q }
func programWithID(p models.Program, id int64) models.Program         { p.ID = id; return p }
