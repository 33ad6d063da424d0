package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// dateRE matches the listing date token: four digits, two digits, two digits,
// literal hyphens. Calendar validity is intentionally not checked.
var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		return dateRE.MatchString(fl.Field().String())
	})
}

// Validate struct fields; returns field name -> failed tag, nil when valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// IsDate reports whether s is a YYYY-MM-DD token.
func IsDate(s string) bool {
	return dateRE.MatchString(s)
}
