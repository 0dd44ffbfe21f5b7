package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "pingdash/pkg/errors"
)

// Validator wraps a validator instance that names fields by a struct tag
// (json or yaml) so errors read like the document they came from.
type Validator struct {
	v *validator.Validate
}

// New creates a validator that reports field names from tagKey.
func New(tagKey string) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(tagKey), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s and returns detailed errors
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", pkgerrors.ErrInvalidPayload, err)
	}

	validationErrs := &pkgerrors.ValidationErrors{}
	for _, e := range fieldErrs {
		validationErrs.Errors = append(validationErrs.Errors, pkgerrors.ValidationError{
			Field:   fieldPath(e),
			Message: formatValidationMessage(e),
		})
	}
	return validationErrs
}

// fieldPath drops the root type name: "PingResultSet.successfulPings[0].ip"
// becomes "successfulPings[0].ip".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// formatValidationMessage creates human-readable error messages
func formatValidationMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, e.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}
