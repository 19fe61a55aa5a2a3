package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// Realm names are lower-case words
	RealmPattern = `^[a-z]+$`

	// Section keys are the JSON member names of a page document
	SectionKeyPattern = `^[a-z][A-Za-z0-9]*$`

	// Category names are shown as filter tabs
	CategoryNameMinLength = 1
	CategoryNameMaxLength = 60

	// ReservedCategory is the filter tab that shows every category
	ReservedCategory = "All"
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Realm      *regexp.Regexp
	SectionKey *regexp.Regexp
}{
	Realm:      regexp.MustCompile(RealmPattern),
	SectionKey: regexp.MustCompile(SectionKeyPattern),
}

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
	Reserved []string
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// WithReserved rejects the given values
func (v *StringValidation) WithReserved(values ...string) *StringValidation {
	v.Reserved = append(v.Reserved, values...)
	return v
}

// Validate performs validation. Lengths count runes.
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	length := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	for _, reserved := range v.Reserved {
		if strings.EqualFold(v.Value, reserved) {
			return false
		}
	}

	return true
}

// Numeric validation
type NumericValidation struct {
	Value    int
	Min      int
	Max      int
	Required bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{
		Value:    value,
		Required: true,
	}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if v.Min != 0 && v.Value < v.Min {
		return false
	}
	if v.Max != 0 && v.Value > v.Max {
		return false
	}
	return true
}

// IsCategoryName reports whether name can be used as a category.
func IsCategoryName(name string) bool {
	return NewStringValidation(strings.TrimSpace(name)).
		WithMinLength(CategoryNameMinLength).
		WithMaxLength(CategoryNameMaxLength).
		WithReserved(ReservedCategory).
		Validate()
}

// IsRealmName reports whether name is shaped like a realm name.
func IsRealmName(name string) bool {
	return NewStringValidation(name).WithMaxLength(32).WithPattern(CompiledPatterns.Realm).Validate()
}

// IsSectionKey reports whether key is shaped like a section key.
func IsSectionKey(key string) bool {
	return NewStringValidation(key).WithMaxLength(64).WithPattern(CompiledPatterns.SectionKey).Validate()
}
