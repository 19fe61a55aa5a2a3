package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/app/services"
	"github.com/yigit/forensicsite/internal/middleware"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
)

// MediaController handles image uploads and text formatting
type MediaController struct {
	mediaService *services.MediaService
	logger       zerolog.Logger
}

// NewMediaController creates a new MediaController
func NewMediaController(mediaService *services.MediaService, logger zerolog.Logger) *MediaController {
	return &MediaController{
		mediaService: mediaService,
		logger:       logger,
	}
}

// UploadImage turns an uploaded file into a displayable image URI
// @Summary Upload an image
// @Description Accepts one image file and returns the URI to store in a page section
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse{data=dto.ImageUploadResponse} "Image accepted"
// @Failure 400 {object} dto.ErrorResponse "No file"
// @Failure 413 {object} dto.ErrorResponse "Image too large"
// @Failure 415 {object} dto.ErrorResponse "Not an image"
// @Router /media/images [post]
func (c *MediaController) UploadImage(ctx *gin.Context) {
	// Leave room for the multipart envelope around the file
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.mediaService.MaxImageBytes()+1<<20)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		c.logger.Warn().Err(err).Msg("Image upload without a file")
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrImageRejected, "Upload one image file in the 'file' field"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	resp, err := c.mediaService.UploadImage(ctx.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// Format applies a toolbar command to rich text
// @Summary Format rich text
// @Description Applies bold, italic, underline, align, bullet-list, numbered-list, link or set-html to one block and returns the sanitized HTML
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FormatRequest true "Command"
// @Success 200 {object} dto.APIResponse{data=dto.FormatResponse} "Formatted HTML"
// @Failure 400 {object} dto.ErrorResponse "Unknown command or block"
// @Router /media/format [post]
func (c *MediaController) Format(ctx *gin.Context) {
	var req dto.FormatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.mediaService.Format(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
