package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Errors maps a lowercased field name to a human-readable message.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, ", ")
}

// Struct validates s against its `validate` tags. It returns nil when valid,
// or an Errors value so callers can echo field-level messages back.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	out := Errors{}
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "min":
			out[field] = field + " must be at least " + fe.Param() + " characters"
		case "max":
			out[field] = field + " must be at most " + fe.Param() + " characters"
		case "email":
			out[field] = field + " must be a valid email"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
