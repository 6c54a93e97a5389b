// Package validator turns binding failures into per-field messages the
// dialogs and the JSON API show next to each input.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Messages per validation tag. Only field types are checked, so the list is
// short.
var messages = map[string]string{
	"email":    "must be a valid email address",
	"min":      "must not be negative",
	"datetime": "must be a date in YYYY-MM-DD format",
	"numeric":  "must be a number",
}

// FieldName resolves the name reported for a struct field: its json name,
// else its form name, else the Go name.
func FieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Register installs FieldName on v so that validation errors carry the
// wire names of the fields.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(FieldName)
}

// Translate converts a binding error into field errors. It returns nil for
// a nil error.
func Translate(err error) []FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, e := range verrs {
			msg, ok := messages[e.Tag()]
			if !ok {
				msg = fmt.Sprintf("failed %q check", e.Tag())
			}
			out = append(out, FieldError{Field: e.Field(), Message: msg})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{Field: typeErr.Field, Message: "must be a " + typeErr.Type.String()}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []FieldError{{Field: "", Message: "malformed JSON body"}}
	}

	// Form decoding reports conversion failures without the field name.
	return []FieldError{{Field: "", Message: err.Error()}}
}

// ByField indexes errs by field name for template lookups.
func ByField(errs []FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}
