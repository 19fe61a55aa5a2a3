package services

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/models"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/helpers"
	"github.com/yigit/forensicsite/internal/pkg/richtext"
	"github.com/yigit/forensicsite/internal/pkg/upstream"
)

// Upstream resource paths
const (
	CoursesPath = "courses"
	EventsPath  = "events"
	BlogPath    = "blog"
)

// CatalogService reads listings from the upstream API. Failures never reach the caller:
// lists come back empty and single items as not found.
type CatalogService struct {
	client *upstream.Client
	logger zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(client *upstream.Client, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		logger: logger,
	}
}

// AllCourses returns every course listing
func (s *CatalogService) AllCourses(ctx context.Context) []models.CatalogCourse {
	return upstream.FetchList[models.CatalogCourse](ctx, s.client, CoursesPath, nil)
}

// Courses returns one page of course listings
func (s *CatalogService) Courses(ctx context.Context, page, size int) dto.PaginatedResponse {
	return helpers.Paginate(s.AllCourses(ctx), page, size)
}

// AllEvents returns every upcoming event
func (s *CatalogService) AllEvents(ctx context.Context) []models.CatalogEvent {
	return upstream.FetchList[models.CatalogEvent](ctx, s.client, EventsPath, nil)
}

// Events returns one page of upcoming events
func (s *CatalogService) Events(ctx context.Context, page, size int) dto.PaginatedResponse {
	return helpers.Paginate(s.AllEvents(ctx), page, size)
}

// AllPosts returns every blog article with its body rendered, optionally narrowed to a
// category
func (s *CatalogService) AllPosts(ctx context.Context, category string) []dto.CatalogPostResponse {
	var query url.Values
	if category != "" {
		query = url.Values{"category": []string{category}}
	}
	posts := upstream.FetchList[models.CatalogPost](ctx, s.client, BlogPath, query)

	out := make([]dto.CatalogPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.render(p))
	}
	return out
}

// Posts returns one page of blog articles
func (s *CatalogService) Posts(ctx context.Context, category string, page, size int) dto.PaginatedResponse {
	return helpers.Paginate(s.AllPosts(ctx, category), page, size)
}

// Post returns a single blog article by slug
func (s *CatalogService) Post(ctx context.Context, slug string) (*dto.CatalogPostResponse, error) {
	post := upstream.FetchOne[models.CatalogPost](ctx, s.client, BlogPath+"/"+url.PathEscape(slug))
	if post == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrResourceNotFound, "Blog post not found")
	}
	resp := s.render(*post)
	return &resp, nil
}

func (s *CatalogService) render(p models.CatalogPost) dto.CatalogPostResponse {
	html, err := richtext.MarkdownToHTML(p.Body)
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", p.Slug).Msg("Failed to render blog post body")
		html = ""
	}
	return dto.CatalogPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
		Image:       p.Image,
		HTML:        string(html),
	}
}
