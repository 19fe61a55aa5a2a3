package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/app/sections"
	"github.com/yigit/forensicsite/internal/app/services"
	"github.com/yigit/forensicsite/internal/app/views"
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

var siteNav = []views.NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Events", Href: "/events"},
	{Label: "Courses", Href: "/courses"},
	{Label: "Faculty", Href: "/faculty"},
	{Label: "Achievements", Href: "/achievements"},
	{Label: "Blog", Href: "/blog"},
}

// SiteController renders the public HTML pages
type SiteController struct {
	registry *content.Registry
	catalog  *services.CatalogService
	renderer *views.Renderer
	logger   zerolog.Logger
}

// NewSiteController creates a new SiteController
func NewSiteController(registry *content.Registry, catalog *services.CatalogService, renderer *views.Renderer, logger zerolog.Logger) *SiteController {
	return &SiteController{
		registry: registry,
		catalog:  catalog,
		renderer: renderer,
		logger:   logger,
	}
}

func navFor(href string) []views.NavLink {
	nav := make([]views.NavLink, len(siteNav))
	for i, link := range siteNav {
		link.Active = link.Href == href
		nav[i] = link
	}
	return nav
}

func (c *SiteController) render(ctx *gin.Context, name string, page views.Page) {
	if page.Nav == nil {
		page.Nav = navFor("/" + page.Realm)
	}
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Header("Cache-Control", "no-store")
	if err := c.renderer.Render(ctx.Writer, name, page); err != nil {
		c.logger.Error().Err(err).Str("page", name).Msg("Failed to render page")
		ctx.String(http.StatusInternalServerError, "The page could not be displayed")
	}
}

func loaded(ctx *gin.Context, page pagedata.Page) {
	if !page.IsLoaded() {
		page.Load(ctx.Request.Context())
	}
}

// activeCategory returns the requested tab when it exists and All otherwise
func activeCategory(ctx *gin.Context, categories []string) string {
	active, err := sections.SelectFilter(ctx.Query("category"), categories)
	if err != nil {
		return sections.FilterAll
	}
	return active
}

// Home renders the landing page
func (c *SiteController) Home(ctx *gin.Context) {
	c.render(ctx, "home", views.Page{Title: "Home", Nav: navFor("/")})
}

// Events renders the events page with upcoming events from the catalog
func (c *SiteController) Events(ctx *gin.Context) {
	hook := c.registry.Events()
	loaded(ctx, hook)
	c.render(ctx, "events", views.Page{
		Title:    "Events",
		Realm:    content.RealmEvents,
		EditMode: hook.EditMode(),
		Data:     hook.Data(),
		Extra:    c.catalog.AllEvents(ctx.Request.Context()),
	})
}

// Courses renders the courses page. The course grid shows "No courses available" when
// the catalog is empty or unreachable.
func (c *SiteController) Courses(ctx *gin.Context) {
	hook := c.registry.Courses()
	loaded(ctx, hook)
	c.render(ctx, "courses", views.Page{
		Title:    "Courses",
		Realm:    content.RealmCourses,
		EditMode: hook.EditMode(),
		Data:     hook.Data(),
		Extra:    c.catalog.AllCourses(ctx.Request.Context()),
	})
}

// Faculty renders the faculty page filtered by the category query
func (c *SiteController) Faculty(ctx *gin.Context) {
	hook := c.registry.Faculty()
	loaded(ctx, hook)
	data := hook.Data()
	active := activeCategory(ctx, data.Categories)
	c.render(ctx, "faculty", views.Page{
		Title:        "Faculty",
		Realm:        content.RealmFaculty,
		EditMode:     hook.EditMode(),
		Data:         data,
		Extra:        sections.FilterItems(data.Members, active),
		Categories:   data.Categories,
		ActiveFilter: active,
	})
}

// Achievements renders the achievements page filtered by the category query
func (c *SiteController) Achievements(ctx *gin.Context) {
	hook := c.registry.Achievements()
	loaded(ctx, hook)
	data := hook.Data()
	active := activeCategory(ctx, data.Categories)
	c.render(ctx, "achievements", views.Page{
		Title:        "Achievements",
		Realm:        content.RealmAchievements,
		EditMode:     hook.EditMode(),
		Data:         data,
		Extra:        sections.FilterItems(data.Achievements, active),
		Categories:   data.Categories,
		ActiveFilter: active,
	})
}

// Blog renders the blog landing page filtered by the category query
func (c *SiteController) Blog(ctx *gin.Context) {
	hook := c.registry.Blog()
	loaded(ctx, hook)
	data := hook.Data()
	active := activeCategory(ctx, data.Categories)
	c.render(ctx, "blog", views.Page{
		Title:        "Blog",
		Realm:        content.RealmBlog,
		EditMode:     hook.EditMode(),
		Data:         data,
		Extra:        sections.FilterItems(data.Featured, active),
		Categories:   data.Categories,
		ActiveFilter: active,
	})
}

// Post renders one upstream blog article
func (c *SiteController) Post(ctx *gin.Context) {
	page := views.Page{Title: "Blog", Nav: navFor("/blog")}
	post, err := c.catalog.Post(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		ctx.Status(http.StatusNotFound)
	} else {
		page.Title = post.Title
		page.Extra = post
	}
	c.render(ctx, "post", page)
}
