package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/app/services"
	"github.com/yigit/forensicsite/internal/middleware"
)

// EditController handles the Edit and Save buttons of a page
type EditController struct {
	editService *services.EditService
	logger      zerolog.Logger
}

// NewEditController creates a new EditController
func NewEditController(editService *services.EditService, logger zerolog.Logger) *EditController {
	return &EditController{
		editService: editService,
		logger:      logger,
	}
}

// Begin puts a page into edit mode
// @Summary Start editing
// @Description Opens an edit session and puts the page into edit mode once a short delay has played. Send the returned session id in the X-Edit-Session header of later edit calls.
// @Tags edit
// @Produce json
// @Security BearerAuth
// @Param realm path string true "Page name"
// @Success 201 {object} dto.APIResponse{data=dto.EditSessionResponse} "Editing"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Page not found"
// @Router /pages/{realm}/edit [post]
func (c *EditController) Begin(ctx *gin.Context) {
	resp, err := c.editService.Begin(ctx.Request.Context(), ctx.GetString(middleware.ContextUsername), ctx.Param("realm"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// Status describes the caller's edit session
// @Summary Edit session status
// @Tags edit
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Success 200 {object} dto.APIResponse{data=dto.EditSessionResponse} "Session"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /pages/{realm}/edit [get]
func (c *EditController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.editService.Status(middleware.EditSessionFrom(ctx))))
}

// Discard leaves edit mode without saving
// @Summary Stop editing
// @Description Ends the edit session. Changes already applied stay in place; nothing extra is written.
// @Tags edit
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Success 200 {object} dto.APIResponse{data=dto.EditSessionResponse} "Session closed"
// @Router /pages/{realm}/edit [delete]
func (c *EditController) Discard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.editService.Discard(middleware.EditSessionFrom(ctx))))
}

// RequestSave opens the password confirmation
// @Summary Request a save
// @Tags edit
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Success 200 {object} dto.APIResponse{data=dto.EditSessionResponse} "Confirmation open"
// @Failure 409 {object} dto.ErrorResponse "Not editing"
// @Router /pages/{realm}/save/request [post]
func (c *EditController) RequestSave(ctx *gin.Context) {
	resp, err := c.editService.RequestSave(middleware.EditSessionFrom(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CancelSave closes the password confirmation
// @Summary Cancel a save
// @Tags edit
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Success 200 {object} dto.APIResponse{data=dto.EditSessionResponse} "Back to editing"
// @Failure 409 {object} dto.ErrorResponse "No confirmation open"
// @Router /pages/{realm}/save/cancel [post]
func (c *EditController) CancelSave(ctx *gin.Context) {
	resp, err := c.editService.CancelSave(middleware.EditSessionFrom(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ConfirmSave checks the password and saves the page
// @Summary Confirm a save
// @Description Checks the editor password, stores the page and leaves edit mode. A wrong password keeps the confirmation open.
// @Tags edit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Edit-Session header string true "Edit session id"
// @Param realm path string true "Page name"
// @Param request body dto.ConfirmSaveRequest true "Password"
// @Success 200 {object} dto.APIResponse{data=dto.SaveResponse} "Saved"
// @Failure 401 {object} dto.ErrorResponse "Incorrect password"
// @Failure 409 {object} dto.ErrorResponse "No confirmation open"
// @Router /pages/{realm}/save/confirm [post]
func (c *EditController) ConfirmSave(ctx *gin.Context) {
	var req dto.ConfirmSaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.editService.ConfirmSave(ctx.Request.Context(), middleware.EditSessionFrom(ctx), req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
