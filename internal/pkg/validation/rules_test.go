package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCategoryName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain", "Core Faculty", true},
		{"unicode", "Médecine légale", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"reserved", "All", false},
		{"reserved any case", "all", false},
		{"too long", strings.Repeat("x", 61), false},
		{"max length", strings.Repeat("é", 60), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCategoryName(tt.input))
		})
	}
}

func TestIsRealmAndSection(t *testing.T) {
	assert.True(t, IsRealmName("faculty"))
	assert.False(t, IsRealmName("Faculty"))
	assert.False(t, IsRealmName("../etc"))

	assert.True(t, IsSectionKey("hero"))
	assert.True(t, IsSectionKey("upcomingEvents"))
	assert.False(t, IsSectionKey("Hero"))
	assert.False(t, IsSectionKey(""))
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(5).WithMin(1).WithMax(10).Validate())
	assert.False(t, NewNumericValidation(0).WithMin(1).Validate())
	assert.False(t, NewNumericValidation(11).WithMax(10).Validate())
}
