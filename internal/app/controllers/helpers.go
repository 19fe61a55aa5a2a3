package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/forensicsite/internal/app/editsession"
	"github.com/yigit/forensicsite/internal/middleware"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
)

// editingSession returns the caller's edit session when it is in the Editing state and
// writes an error response otherwise.
func editingSession(ctx *gin.Context) (*editsession.Session, bool) {
	session := middleware.EditSessionFrom(ctx)
	if session == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrEditSessionNotFound)
		return nil, false
	}
	if session.State() != editsession.Editing {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrNotEditing,
			"Changes can only be made while editing; the session is "+session.State().String()))
		return nil, false
	}
	return session, true
}

// confirmed reads the confirm query flag
func confirmed(ctx *gin.Context) bool {
	ok, _ := strconv.ParseBool(ctx.Query("confirm"))
	return ok
}

// parseID reads a positive integer path parameter
func parseID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrBadRequest, "Invalid "+name))
		return 0, false
	}
	return id, true
}
