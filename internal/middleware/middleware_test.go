package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/pkg/apperrors"
	"github.com/yigit/forensicsite/internal/pkg/auth"
	"github.com/yigit/forensicsite/internal/pkg/imageupload"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorDetailFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     dto.ErrorCode
		message  string
		severity dto.ErrorSeverity
	}{
		{"password mismatch", apperrors.ErrPasswordMismatch, http.StatusUnauthorized, dto.ErrorCodePasswordMismatch, "Incorrect password", dto.ErrorSeverityWarning},
		{"wrapped realm", fmt.Errorf("load: %w", apperrors.ErrRealmNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Page not found", dto.ErrorSeverityWarning},
		{"custom message", apperrors.NewCustomError(apperrors.ErrCategoryExists, "Category \"Staff\" already exists"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Category \"Staff\" already exists", dto.ErrorSeverityWarning},
		{"image too large", imageupload.ErrTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodeImageRejected, "Image is too large", dto.ErrorSeverityWarning},
		{"storage", apperrors.ErrStorageUnavailable, http.StatusServiceUnavailable, dto.ErrorCodeStorageError, "Content storage unavailable", dto.ErrorSeverityError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", dto.ErrorSeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := ErrorDetailFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, detail.Code)
			assert.Equal(t, tt.message, detail.Message)
			assert.Equal(t, tt.severity, detail.Severity)
		})
	}
}

func TestErrorDetailFor_WrappedErrorKeepsContext(t *testing.T) {
	_, detail := ErrorDetailFor(fmt.Errorf("item 7: %w", apperrors.ErrItemNotFound))
	assert.Equal(t, "item 7: item not found", detail.Details)

	_, detail = ErrorDetailFor(apperrors.ErrItemNotFound)
	assert.Nil(t, detail.Details)
}

func TestHandleAPIError_WritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/v1/pages/nope", nil)

	HandleAPIError(ctx, apperrors.ErrRealmNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	m := NewAuthMiddleware(jwtService, nil)

	r := gin.New()
	r.GET("/private", m.JWTAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUsername))
	})
	r.GET("/public", m.OptionalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "user=%s", c.GetString(ContextUsername))
	})
	return r, jwtService
}

func TestJWTAuth(t *testing.T) {
	r, jwtService := newAuthRouter(t)
	token, _, err := jwtService.GenerateToken("admin", auth.RoleEditor)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		query  string
		status int
		code   dto.ErrorCode
	}{
		{"missing", "", "", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"not bearer", "Basic abc", "", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"garbage token", "Bearer a.b.c", "", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"valid header", "Bearer " + token, "", http.StatusOK, ""},
		{"quoted header", `"Bearer ` + token + `"`, "", http.StatusOK, ""},
		{"query token", "", "Bearer " + token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.query != "" {
				q := req.URL.Query()
				q.Set("token", tt.query)
				req.URL.RawQuery = q.Encode()
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "admin", w.Body.String())
				return
			}
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestOptionalAuth_NeverRejects(t *testing.T) {
	r, jwtService := newAuthRouter(t)
	token, _, err := jwtService.GenerateToken("admin", auth.RoleEditor)
	require.NoError(t, err)

	for header, want := range map[string]string{
		"":                "user=",
		"Bearer a.b.c":    "user=",
		"Bearer " + token: "user=admin",
	} {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, want, w.Body.String())
	}
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for path, level := range map[string]string{"/ok": "info", "/missing": "warn", "/broken": "error"} {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, level, entry["level"], path)
		assert.Equal(t, path, entry["path"])
		assert.Equal(t, "Request handled", entry["message"])
	}
}

func TestCategoryNameRule(t *testing.T) {
	v := validator.New()
	registerRules(v)

	type req struct {
		Name string `validate:"required,categoryname"`
	}
	assert.NoError(t, v.Struct(req{Name: "Guest Lecturers"}))
	assert.Error(t, v.Struct(req{Name: "All"}))
	assert.Error(t, v.Struct(req{Name: "   "}))
}

func TestValidatePathParams(t *testing.T) {
	router := gin.New()
	pages := router.Group("/pages", ValidatePathParams())
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	pages.GET("", ok)
	pages.GET("/:realm", ok)
	pages.GET("/:realm/sections/:section", ok)

	tests := []struct {
		path   string
		status int
		code   dto.ErrorCode
	}{
		{"/pages", http.StatusNoContent, ""},
		{"/pages/faculty", http.StatusNoContent, ""},
		{"/pages/faculty/sections/upcomingEvents", http.StatusNoContent, ""},
		{"/pages/Faculty", http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"/pages/fac%2E%2E", http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"/pages/faculty/sections/Hero", http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"/pages/faculty/sections/hero-image", http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, rec.Code)
			if tt.code == "" {
				return
			}
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}
