package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/app/services"
	"github.com/yigit/forensicsite/internal/middleware"
	"github.com/yigit/forensicsite/internal/pkg/helpers"
)

// CatalogController serves listings read from the upstream API
type CatalogController struct {
	catalogService *services.CatalogService
	logger         zerolog.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService, logger zerolog.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Courses lists courses
// @Summary List courses
// @Description Lists courses from the upstream API. An unavailable upstream yields an empty list.
// @Tags catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Courses"
// @Router /catalog/courses [get]
func (c *CatalogController) Courses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalogService.Courses(ctx.Request.Context(), page, size)))
}

// Events lists upcoming events
// @Summary List events
// @Tags catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Events"
// @Router /catalog/events [get]
func (c *CatalogController) Events(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.catalogService.Events(ctx.Request.Context(), page, size)))
}

// Posts lists blog articles
// @Summary List blog articles
// @Tags catalog
// @Produce json
// @Param category query string false "Category"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Articles"
// @Router /catalog/blog [get]
func (c *CatalogController) Posts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	resp := c.catalogService.Posts(ctx.Request.Context(), ctx.Query("category"), page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Post returns one blog article
// @Summary Get a blog article
// @Tags catalog
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} dto.APIResponse{data=dto.CatalogPostResponse} "Article"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /catalog/blog/{slug} [get]
func (c *CatalogController) Post(ctx *gin.Context) {
	post, err := c.catalogService.Post(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(post))
}
