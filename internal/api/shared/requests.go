package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes bounds the size of a decoded JSON request body.
const MaxRequestBodyBytes = 1 << 20

// Global validator instance for reuse. Field names in errors are the JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
// An empty body decodes as {} and leaves v untouched, so missing fields are
// reported by validation rather than as a malformed request.
// A body of the wrong JSON type for a field yields a *json.UnmarshalTypeError,
// which FieldErrors turns into a field message.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	body := http.MaxBytesReader(nil, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Error implements the error interface.
func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, messages := range f {
		parts = append(parts, messages...)
	}
	return "validation failed: " + strings.Join(parts, " ")
}

// AsFieldErrors converts validator errors and JSON type errors into
// FieldErrors. It reports false for any other error.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		out := FieldErrors{}
		for _, fe := range validationErrs {
			out.Add(fe.Field(), FieldMessage(fe.Field(), fe.Tag(), fe.Param(), fe.Kind()))
		}
		return out, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		// genre_ids.0 reports against the array itself
		if i := strings.IndexByte(field, '.'); i > 0 {
			field = field[:i]
		}
		out := FieldErrors{}
		out.Add(field, typeMessage(field, typeErr.Type))
		return out, true
	}

	return nil, false
}

// FieldMessage renders the message for a failed validation tag.
func FieldMessage(field, tag, param string, kind reflect.Kind) string {
	name := Attribute(field)
	switch tag {
	case "required":
		return "The " + name + " field is required."
	case "min":
		if kind == reflect.String {
			return "The " + name + " must be at least " + param + " characters."
		}
		if kind == reflect.Slice {
			return "The " + name + " must have at least " + param + " items."
		}
		return "The " + name + " must be at least " + param + "."
	case "max":
		if kind == reflect.String {
			return "The " + name + " may not be greater than " + param + " characters."
		}
		return "The " + name + " may not be greater than " + param + "."
	case "gt":
		return "The " + name + " must be greater than " + param + "."
	case "gte":
		return "The " + name + " must be greater than or equal " + param + "."
	default:
		return "The " + name + " is invalid."
	}
}

// Attribute turns a field name such as country_id into "country id".
func Attribute(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func typeMessage(field string, t reflect.Type) string {
	name := Attribute(field)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "The " + name + " is invalid."
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "The " + name + " must be an integer."
	case reflect.String:
		return "The " + name + " must be a string."
	case reflect.Slice, reflect.Array:
		return "The " + name + " must be an array."
	default:
		return "The " + name + " is invalid."
	}
}
