package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/app/services"
	"github.com/yigit/forensicsite/internal/middleware"
)

// PageController serves realm documents and their sections
type PageController struct {
	pageService *services.PageService
	logger      zerolog.Logger
}

// NewPageController creates a new PageController
func NewPageController(pageService *services.PageService, logger zerolog.Logger) *PageController {
	return &PageController{
		pageService: pageService,
		logger:      logger,
	}
}

// ListRealms lists the editable pages
// @Summary List pages
// @Description Lists every editable page with its sections and load status
// @Tags pages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.RealmSummary} "Pages"
// @Router /pages [get]
func (c *PageController) ListRealms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.pageService.ListRealms()))
}

// GetPage returns a page document
// @Summary Get a page
// @Description Returns the whole document of a page: defaults with stored edits merged on top
// @Tags pages
// @Produce json
// @Param realm path string true "Page name" Enums(events, blog, faculty, achievements, courses)
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse} "Page document"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Router /pages/{realm} [get]
func (c *PageController) GetPage(ctx *gin.Context) {
	resp, err := c.pageService.GetPage(ctx.Request.Context(), ctx.Param("realm"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetSection returns one section of a page
// @Summary Get a section
// @Tags pages
// @Produce json
// @Param realm path string true "Page name"
// @Param section path string true "Section key" example(hero)
// @Success 200 {object} dto.APIResponse{data=dto.SectionResponse} "Section"
// @Failure 404 {object} dto.ErrorResponse "Page or section not found"
// @Router /pages/{realm}/sections/{section} [get]
func (c *PageController) GetSection(ctx *gin.Context) {
	resp, err := c.pageService.GetSection(ctx.Request.Context(), ctx.Param("realm"), ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateSection replaces one section of a page
// @Summary Update a section
// @Description Replaces a whole section while editing. The page document is re-persisted on every update; when storage fails the change is kept in memory and persisted=false is returned with a warning.
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param section path string true "Section key"
// @Param request body dto.UpdateSectionRequest true "New section value"
// @Success 200 {object} dto.APIResponse{data=dto.SectionUpdateResponse} "Section updated"
// @Failure 400 {object} dto.ErrorResponse "Value does not fit the section"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Page or section not found"
// @Failure 409 {object} dto.ErrorResponse "Not editing"
// @Router /pages/{realm}/sections/{section} [put]
func (c *PageController) UpdateSection(ctx *gin.Context) {
	if _, ok := editingSession(ctx); !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.pageService.UpdateSection(ctx.Request.Context(), ctx.Param("realm"), ctx.Param("section"), req.Value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Reset restores a page's default content
// @Summary Reset a page
// @Description Discards every edit of a page and stores its defaults. Requires confirm=true.
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param realm path string true "Page name"
// @Param request body dto.ResetRequest true "Confirmation"
// @Success 200 {object} dto.APIResponse{data=dto.ResetResponse} "Page reset"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Confirmation required"
// @Router /pages/{realm}/reset [post]
func (c *PageController) Reset(ctx *gin.Context) {
	var req dto.ResetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.pageService.Reset(ctx.Request.Context(), ctx.Param("realm"), req.Confirm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Str("realm", resp.Realm).Str("username", ctx.GetString(middleware.ContextUsername)).Msg("Page reset")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Export downloads the stored document of a page
// @Summary Export a page
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Param realm path string true "Page name"
// @Success 200 {object} object "Page document"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Router /pages/{realm}/export [get]
func (c *PageController) Export(ctx *gin.Context) {
	realm := ctx.Param("realm")
	doc, err := c.pageService.Export(ctx.Request.Context(), realm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+realm+`.json"`)
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

// Import replaces a page document
// @Summary Import a page
// @Description Merges the uploaded document onto the page defaults and stores it
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param request body object true "Page document"
// @Success 200 {object} dto.APIResponse{data=dto.SectionUpdateResponse} "Page imported"
// @Failure 400 {object} dto.ErrorResponse "Not a JSON object"
// @Failure 409 {object} dto.ErrorResponse "Not editing"
// @Router /pages/{realm} [put]
func (c *PageController) Import(ctx *gin.Context) {
	if _, ok := editingSession(ctx); !ok {
		return
	}

	var raw json.RawMessage
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.pageService.Import(ctx.Request.Context(), ctx.Param("realm"), raw)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
