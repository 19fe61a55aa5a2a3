package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/forensicsite/internal/app/editsession"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUsername    = "username"
	ContextRole        = "role"
	ContextEditSession = "editSession"
)

// EditSessionHeader carries the id of the caller's edit session.
const EditSessionHeader = "X-Edit-Session"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	sessions   *editsession.Manager
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, sessions *editsession.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

// tokenFromRequest finds the access token in the Authorization header or, for Swagger UI
// and websocket clients that cannot set headers, the token query parameter.
func tokenFromRequest(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		authHeader = c.Query("token")
	}
	if authHeader == "" {
		return "", false
	}

	// Some clients wrap the value in quotes
	authHeader = strings.Trim(authHeader, "\"'")
	token, err := auth.ExtractBearerToken(authHeader)
	if err != nil || strings.Count(token, ".") != 2 {
		return "", false
	}
	return token, true
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := tokenFromRequest(c)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// OptionalAuth sets the username when a valid token is present and never rejects.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := tokenFromRequest(c); ok {
			if claims, err := m.jwtService.ValidateAndExtractClaims(tokenString); err == nil {
				c.Set(ContextUsername, claims.Username)
				c.Set(ContextRole, claims.Role)
			}
		}
		c.Next()
	}
}

// RequireEditSession resolves the X-Edit-Session header to a session of the signed-in
// editor on the realm in the path. Must run after JWTAuth.
func (m *AuthMiddleware) RequireEditSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(EditSessionHeader)
		if id == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Edit session required").
				WithDetails("Start editing the page first and send the session id in the " + EditSessionHeader + " header")
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponse(errorDetail))
			return
		}

		session, err := m.sessions.Get(id, c.GetString(ContextUsername))
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		if realm := c.Param("realm"); realm != "" && session.Realm() != realm {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Edit session belongs to another page")
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextEditSession, session)
		c.Next()
	}
}

// EditSessionFrom returns the session stored by RequireEditSession.
func EditSessionFrom(c *gin.Context) *editsession.Session {
	if v, ok := c.Get(ContextEditSession); ok {
		if s, ok := v.(*editsession.Session); ok {
			return s
		}
	}
	return nil
}
