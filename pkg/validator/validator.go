package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field rules mirror the form checks the old front-end ran before submitting:
// required fields, numeric parsing, simple regexes on phone and name.
var (
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s-]{6,14}$`)
	nameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z\s'.-]*$`)
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(strings.TrimSpace(fl.Field().String()))
	})
}

// ErrorResponse describes one failed field validation.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

// ValidateStruct validates data against its validate tags.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Message flattens validation failures into a single user-facing message.
func Message(errs []*ErrorResponse) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", e.FailedField, e.Tag))
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}
