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

// SectionController edits list entries and categories
type SectionController struct {
	sectionService *services.SectionService
	logger         zerolog.Logger
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService *services.SectionService, logger zerolog.Logger) *SectionController {
	return &SectionController{
		sectionService: sectionService,
		logger:         logger,
	}
}

// ListItems returns the entries of a list section
// @Summary List entries
// @Tags sections
// @Produce json
// @Param realm path string true "Page name"
// @Param section path string true "List section" example(members)
// @Success 200 {object} dto.APIResponse{data=[]object} "Entries"
// @Failure 404 {object} dto.ErrorResponse "Not a list section"
// @Router /pages/{realm}/items/{section} [get]
func (c *SectionController) ListItems(ctx *gin.Context) {
	items, err := c.sectionService.ListItems(ctx.Request.Context(), ctx.Param("realm"), ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// AddItem appends an entry to a list section
// @Summary Add an entry
// @Description Appends an entry under a fresh id. Any id in the body is ignored.
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param section path string true "List section"
// @Param request body object true "Entry fields"
// @Success 201 {object} dto.APIResponse{data=dto.ItemResponse} "Entry added"
// @Failure 400 {object} dto.ErrorResponse "Invalid entry"
// @Failure 409 {object} dto.ErrorResponse "Not editing"
// @Router /pages/{realm}/items/{section} [post]
func (c *SectionController) AddItem(ctx *gin.Context) {
	if _, ok := editingSession(ctx); !ok {
		return
	}
	var fields json.RawMessage
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.sectionService.AddItem(ctx.Request.Context(), ctx.Param("realm"), ctx.Param("section"), fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateItem patches an entry
// @Summary Update an entry
// @Description Overwrites the given top-level fields of an entry. The id cannot change.
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param section path string true "List section"
// @Param id path int true "Entry id"
// @Param request body object true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Entry updated"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Not editing"
// @Router /pages/{realm}/items/{section}/{id} [patch]
func (c *SectionController) UpdateItem(ctx *gin.Context) {
	if _, ok := editingSession(ctx); !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var fields json.RawMessage
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.sectionService.UpdateItem(ctx.Request.Context(), ctx.Param("realm"), ctx.Param("section"), id, fields)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteItem removes an entry
// @Summary Delete an entry
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param section path string true "List section"
// @Param id path int true "Entry id"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse} "Entry deleted"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Confirmation required or not editing"
// @Router /pages/{realm}/items/{section}/{id} [delete]
func (c *SectionController) DeleteItem(ctx *gin.Context) {
	if _, ok := editingSession(ctx); !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.sectionService.DeleteItem(ctx.Request.Context(), ctx.Param("realm"), ctx.Param("section"), id, confirmed(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Categories lists the categories of a page
// @Summary List categories
// @Tags sections
// @Produce json
// @Param realm path string true "Page name" Enums(faculty, achievements, blog)
// @Success 200 {object} dto.APIResponse{data=dto.CategoryResponse} "Categories"
// @Failure 404 {object} dto.ErrorResponse "Page has no categories"
// @Router /pages/{realm}/categories [get]
func (c *SectionController) Categories(ctx *gin.Context) {
	resp, err := c.sectionService.Categories(ctx.Request.Context(), ctx.Param("realm"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// AddCategory adds a category
// @Summary Add a category
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param request body dto.CategoryRequest true "Category name"
// @Success 201 {object} dto.APIResponse{data=dto.CategoryResponse} "Category added"
// @Failure 400 {object} dto.ErrorResponse "Invalid name"
// @Failure 409 {object} dto.ErrorResponse "Category exists or not editing"
// @Router /pages/{realm}/categories [post]
func (c *SectionController) AddCategory(ctx *gin.Context) {
	if _, ok := editingSession(ctx); !ok {
		return
	}
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.sectionService.AddCategory(ctx.Request.Context(), ctx.Param("realm"), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// RenameCategory renames a category and every entry in it
// @Summary Rename a category
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param name path string true "Current name"
// @Param filter query string false "Tab the caller is showing"
// @Param request body dto.CategoryRequest true "New name"
// @Success 200 {object} dto.APIResponse{data=dto.CategoryResponse} "Category renamed"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 409 {object} dto.ErrorResponse "Name taken, default category or not editing"
// @Router /pages/{realm}/categories/{name} [put]
func (c *SectionController) RenameCategory(ctx *gin.Context) {
	if _, ok := editingSession(ctx); !ok {
		return
	}
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.sectionService.RenameCategory(ctx.Request.Context(), ctx.Param("realm"), ctx.Param("name"), req.Name, ctx.Query("filter"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteCategory removes a category
// @Summary Delete a category
// @Description Removes a category and moves its entries to the page's default category. The response tells the caller to switch its filter to All.
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param name path string true "Category name"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.CategoryResponse} "Category deleted"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 409 {object} dto.ErrorResponse "Confirmation required, default category or not editing"
// @Router /pages/{realm}/categories/{name} [delete]
func (c *SectionController) DeleteCategory(ctx *gin.Context) {
	if _, ok := editingSession(ctx); !ok {
		return
	}

	resp, err := c.sectionService.DeleteCategory(ctx.Request.Context(), ctx.Param("realm"), ctx.Param("name"), confirmed(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Filtered returns the entries under a category tab
// @Summary Filtered entries
// @Tags sections
// @Produce json
// @Param realm path string true "Page name"
// @Param category query string false "Category, empty for All"
// @Success 200 {object} dto.APIResponse{data=dto.FilteredItemsResponse} "Entries"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /pages/{realm}/filter [get]
func (c *SectionController) Filtered(ctx *gin.Context) {
	resp, err := c.sectionService.Filtered(ctx.Request.Context(), ctx.Param("realm"), ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
