package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromBindingError converts a gin binding error into a validation problem.
// Validator failures become one FieldError per field; JSON syntax and type
// errors become a bad request.
func FromBindingError(requestID string, err error) *ProblemDetails {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field:   jsonFieldName(fe),
				Message: validationMessage(fe),
				Code:    fe.Tag(),
			})
		}
		return NewValidationError(requestID, fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewValidationError(requestID, []FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
			Code:    "type",
		}})
	}

	return NewBadRequestError(requestID, "Request body could not be parsed", "Please check your input and try again")
}

// jsonFieldName lowercases the first letter of the struct field so the
// name matches the request's JSON key.
func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
