package validation

import (
	"fmt"
	"polblog-api/models"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation errors: " + strings.Join(e.Errors, ", ")
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateBlog checks that the required fields of a blog entry are present.
func ValidateBlog(blog models.Blog) error {
	var validationErrors []string

	err := validate.Struct(blog)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %s", err.Field(), err.Tag()))
		}
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
