package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ValidationDetails flattens ozzo validation errors into the details map
// carried by the error response envelope.
func ValidationDetails(err error) map[string]any {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]any, len(verrs))
	for field, fieldErr := range verrs {
		details[field] = fieldErr.Error()
	}
	return details
}
