package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/pkg/validation"
)

// RegisterValidators adds the content rules to gin's binding validator.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerRules(v)
	}
}

func registerRules(v *validator.Validate) {
	_ = v.RegisterValidation("categoryname", func(fl validator.FieldLevel) bool {
		return validation.IsCategoryName(fl.Field().String())
	})
}

// ValidatePathParams rejects malformed :realm and :section path parameters before
// any handler or session lookup sees them.
func ValidatePathParams() gin.HandlerFunc {
	return func(c *gin.Context) {
		if realm, ok := c.Params.Get("realm"); ok && !validation.IsRealmName(realm) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Page not found").WithField("realm")
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}
		if section, ok := c.Params.Get("section"); ok && !validation.IsSectionKey(section) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section key").
				WithField("section").
				WithDetails("Section keys start with a lower-case letter and contain only letters and digits")
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}
