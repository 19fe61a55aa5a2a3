// Package content defines the site's realms: their default documents, storage keys and
// migrations, and a registry holding one page hook per realm.
package content

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

// Realm names.
const (
	RealmEvents       = "events"
	RealmBlog         = "blog"
	RealmFaculty      = "faculty"
	RealmAchievements = "achievements"
	RealmCourses      = "courses"
)

// DefaultKeyPrefix is prepended to realm names to form storage keys.
const DefaultKeyPrefix = "forensic:"

// schemaVersion 1 documents identified some list entries by position; 2 gives every
// entry an id.
const schemaVersion = 2

// StorageKey returns the key a realm is persisted under.
func StorageKey(prefix, realm string) string {
	return prefix + realm
}

func EventsRealm(prefix string) pagedata.Realm[models.EventsPageData] {
	return pagedata.Realm[models.EventsPageData]{
		Name:       RealmEvents,
		StorageKey: StorageKey(prefix, RealmEvents),
		Version:    schemaVersion,
		Defaults:   DefaultEvents,
		Migrate:    ensureIDs("stats", "highlights", "partners", "enquiries"),
	}
}

func BlogRealm(prefix string) pagedata.Realm[models.BlogPageData] {
	return pagedata.Realm[models.BlogPageData]{
		Name:       RealmBlog,
		StorageKey: StorageKey(prefix, RealmBlog),
		Version:    schemaVersion,
		Defaults:   DefaultBlog,
		Migrate:    ensureIDs("featured"),
	}
}

func FacultyRealm(prefix string) pagedata.Realm[models.FacultyPageData] {
	return pagedata.Realm[models.FacultyPageData]{
		Name:       RealmFaculty,
		StorageKey: StorageKey(prefix, RealmFaculty),
		Version:    schemaVersion,
		Defaults:   DefaultFaculty,
		Migrate:    ensureIDs("members"),
	}
}

func AchievementsRealm(prefix string) pagedata.Realm[models.AchievementsPageData] {
	return pagedata.Realm[models.AchievementsPageData]{
		Name:       RealmAchievements,
		StorageKey: StorageKey(prefix, RealmAchievements),
		Version:    schemaVersion,
		Defaults:   DefaultAchievements,
		Migrate:    ensureIDs("stats", "achievements", "partners"),
	}
}

func CoursesRealm(prefix string) pagedata.Realm[models.CoursesPageData] {
	return pagedata.Realm[models.CoursesPageData]{
		Name:       RealmCourses,
		StorageKey: StorageKey(prefix, RealmCourses),
		Version:    schemaVersion,
		Defaults:   DefaultCourses,
		Migrate:    ensureIDs("internships", "training", "books", "enquiries"),
	}
}

// Registry holds one hook per realm, in display order.
type Registry struct {
	events       *pagedata.Hook[models.EventsPageData]
	blog         *pagedata.Hook[models.BlogPageData]
	faculty      *pagedata.Hook[models.FacultyPageData]
	achievements *pagedata.Hook[models.AchievementsPageData]
	courses      *pagedata.Hook[models.CoursesPageData]

	order []pagedata.Page
	byKey map[string]pagedata.Page
}

// NewRegistry creates unloaded hooks for every realm over store.
func NewRegistry(store pagedata.Store, prefix string, logger zerolog.Logger) *Registry {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	opt := pagedata.WithLogger(logger)

	r := &Registry{
		events:       pagedata.New(EventsRealm(prefix), store, opt),
		blog:         pagedata.New(BlogRealm(prefix), store, opt),
		faculty:      pagedata.New(FacultyRealm(prefix), store, opt),
		achievements: pagedata.New(AchievementsRealm(prefix), store, opt),
		courses:      pagedata.New(CoursesRealm(prefix), store, opt),
	}
	r.order = []pagedata.Page{r.events, r.blog, r.faculty, r.achievements, r.courses}
	r.byKey = make(map[string]pagedata.Page, len(r.order))
	for _, p := range r.order {
		r.byKey[p.Name()] = p
	}
	return r
}

// Page returns the hook for a realm name.
func (r *Registry) Page(name string) (pagedata.Page, error) {
	p, ok := r.byKey[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRealmNotFound, name)
	}
	return p, nil
}

// Pages returns every hook in display order.
func (r *Registry) Pages() []pagedata.Page {
	out := make([]pagedata.Page, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the realm names in display order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, p := range r.order {
		names[i] = p.Name()
	}
	return names
}

// LoadAll loads every realm and reports each outcome.
func (r *Registry) LoadAll(ctx context.Context) map[string]pagedata.LoadStatus {
	out := make(map[string]pagedata.LoadStatus, len(r.order))
	for _, p := range r.order {
		out[p.Name()] = p.Load(ctx)
	}
	return out
}

func (r *Registry) Events() *pagedata.Hook[models.EventsPageData]             { return r.events }
func (r *Registry) Blog() *pagedata.Hook[models.BlogPageData]                 { return r.blog }
func (r *Registry) Faculty() *pagedata.Hook[models.FacultyPageData]           { return r.faculty }
func (r *Registry) Achievements() *pagedata.Hook[models.AchievementsPageData] { return r.achievements }
func (r *Registry) Courses() *pagedata.Hook[models.CoursesPageData]           { return r.courses }
