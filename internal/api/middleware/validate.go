package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/inkwell/inkwell-api/internal/api/shared"
)

// Normalizable is implemented by request bodies that coerce themselves
// (trimming strings, applying defaults) after decoding and before
// validation.
type Normalizable interface {
	Normalize()
}

// NewValidator creates the validator used by the body gate, reporting
// fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateBody decodes the request body into T and validates it. Unknown
// fields are rejected rather than silently dropped, and validation is not
// fail-fast: every violated constraint contributes one message to the 422
// response's errors sequence. On success the validated, normalized value
// is attached to the request context for the wrapped handler.
func ValidateBody[T any](v *validator.Validate, next Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		var body T

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil {
			return shared.UnprocessableEntity("Validation errors", []string{decodeMessage(err)})
		}

		if n, ok := any(&body).(Normalizable); ok {
			n.Normalize()
		}

		if err := v.Struct(&body); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				msgs := make([]string, 0, len(fieldErrs))
				for _, fe := range fieldErrs {
					msgs = append(msgs, fieldMessage(fe))
				}
				return shared.UnprocessableEntity("Validation errors", msgs)
			}
			return err
		}

		return next(w, r.WithContext(shared.WithBody(r.Context(), &body)))
	}
}

// decodeMessage turns a JSON decode failure into a human-readable message.
func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type)
	}

	// encoding/json exposes unknown-field rejections as plain errors only.
	msg := err.Error()
	if name, ok := strings.CutPrefix(msg, `json: unknown field `); ok {
		return fmt.Sprintf("%s is not an allowed field", strings.Trim(name, `"`))
	}

	return "request body must be valid JSON"
}

// fieldMessage turns a single violated constraint into a human-readable
// message attributed to the field's json name.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is a required field", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
	case "dive":
		return fmt.Sprintf("%s contains an invalid item", field)
	}

	return fmt.Sprintf("%s is invalid", field)
}
