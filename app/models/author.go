package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks if the author meets all validation requirements
func (a *Author) Validate() error {
	return validate.Struct(a)
}

// FullName derives the author's display name from first and last name.
// It is recomputed on every read and never stored. A nil author yields
// the empty string, which covers dangling post references.
func FullName(a *Author) string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
