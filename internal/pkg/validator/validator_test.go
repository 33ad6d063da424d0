package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDate(t *testing.T) {
	valid := []string{"2025-01-10", "1999-12-31", "0000-00-00", "2025-02-30"}
	for _, s := range valid {
		assert.True(t, IsDate(s), s)
	}

	invalid := []string{"", "2025-1-10", "10-01-2025", "2025/01/10", "2025-01-10T00:00", "20250110"}
	for _, s := range invalid {
		assert.False(t, IsDate(s), s)
	}
}

func TestValidateRequiredTags(t *testing.T) {
	type form struct {
		Name  string  `validate:"required"`
		Title *string `validate:"required"`
	}

	title := "x"
	assert.Nil(t, Validate(form{Name: "a", Title: &title}))

	fields := Validate(form{Title: &title})
	assert.Equal(t, "required", fields["Name"])

	fields = Validate(form{Name: "a"})
	assert.Equal(t, "required", fields["Title"])
}

func TestValidateDateTag(t *testing.T) {
	type form struct {
		StartDate string `validate:"date"`
	}

	assert.Nil(t, Validate(form{StartDate: "2025-01-10"}))

	fields := Validate(form{StartDate: "not-a-date"})
	assert.Equal(t, "date", fields["StartDate"])
}
