package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/imageupload"
	"github.com/yigit/forensicsite/internal/pkg/logger"
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
	"github.com/yigit/forensicsite/internal/pkg/richtext"
	"github.com/yigit/forensicsite/internal/pkg/upstream"
)

// errorMapping is one row of the error table HandleAPIError walks in order.
type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

var errorMappings = []errorMapping{
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrPasswordMismatch, http.StatusUnauthorized, dto.ErrorCodePasswordMismatch, "Incorrect password"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},

	{apperrors.ErrRealmNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Page not found"},
	{apperrors.ErrSectionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Section not found"},
	{pagedata.ErrUnknownSection, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Section not found"},
	{apperrors.ErrItemNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Item not found"},
	{apperrors.ErrCategoryNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Category not found"},
	{apperrors.ErrEditSessionNotFound, http.StatusNotFound, dto.ErrorCodeSessionNotFound, "Edit session not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},

	{apperrors.ErrCategoryExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Category already exists"},
	{apperrors.ErrDefaultCategory, http.StatusConflict, dto.ErrorCodeDefaultCategory, "The default category cannot be renamed or removed"},
	{apperrors.ErrConfirmationRequired, http.StatusConflict, dto.ErrorCodeConfirmationRequired, "Confirmation required"},
	{apperrors.ErrNotEditing, http.StatusConflict, dto.ErrorCodeNotEditing, "The page is not in edit mode"},
	{apperrors.ErrInvalidTransition, http.StatusConflict, dto.ErrorCodeInvalidTransition, "That action is not available right now"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},

	{imageupload.ErrReadOnly, http.StatusConflict, dto.ErrorCodeNotEditing, "The image is read-only"},
	{imageupload.ErrTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodeImageRejected, "Image is too large"},
	{imageupload.ErrNotImage, http.StatusUnsupportedMediaType, dto.ErrorCodeImageRejected, "File is not an image"},
	{imageupload.ErrEmpty, http.StatusBadRequest, dto.ErrorCodeImageRejected, "File is empty"},
	{apperrors.ErrImageRejected, http.StatusBadRequest, dto.ErrorCodeImageRejected, "Image rejected"},

	{pagedata.ErrInvalidSection, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Value does not fit the section"},
	{richtext.ErrNoSuchBlock, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "No such block"},
	{richtext.ErrUnknownCommand, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Unknown formatting command"},
	{richtext.ErrBadAlignment, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Unsupported alignment"},
	{richtext.ErrReadOnly, http.StatusConflict, dto.ErrorCodeNotEditing, "The text is read-only"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrInvalidFormat, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid format"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"},

	{upstream.ErrNotConfigured, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Upstream service not configured"},
	{upstream.ErrUnsuccessful, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Upstream request unsuccessful"},
	{upstream.ErrBadEnvelope, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Upstream response malformed"},
	{upstream.ErrStatus, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Upstream service unavailable"},
	{apperrors.ErrUpstreamUnavailable, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Upstream service unavailable"},
	{pagedata.ErrPersistFailed, http.StatusServiceUnavailable, dto.ErrorCodeStorageError, "Content could not be saved"},
	{apperrors.ErrStorageUnavailable, http.StatusServiceUnavailable, dto.ErrorCodeStorageError, "Content storage unavailable"},
}

// --- Central Error Handling ---

// HandleAPIError maps an error onto a status code and an error response. A CustomError
// message, when present, replaces the default message of its row.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorDetailFor(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
	}
	c.JSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// ErrorDetailFor returns the status code and detail HandleAPIError would send for err.
func ErrorDetailFor(err error) (int, *dto.ErrorDetail) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		detail := dto.NewErrorDetail(m.code, m.message)
		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if custom.Message != "" {
				detail.Message = custom.Message
			}
			if custom.Details != nil {
				detail = detail.WithDetails(custom.Details)
			}
		} else if err.Error() != m.target.Error() {
			detail = detail.WithDetails(err.Error())
		}
		if m.status < http.StatusInternalServerError {
			detail = detail.WithSeverity(dto.ErrorSeverityWarning)
		}
		return m.status, detail
	}
	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
}
