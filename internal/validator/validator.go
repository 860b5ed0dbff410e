// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *playground.Validate
}

// FieldError is returned by Validate for the first field that failed. Field
// is the name used on the wire (query, param or json tag).
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	if e.Tag == "required" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s failed on the '%s' rule", e.Field, e.Tag)
}

func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)
	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs playground.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: verrs[0].Field(), Tag: verrs[0].Tag()}
	}
	return err
}

func wireName(f reflect.StructField) string {
	for _, tag := range []string{"query", "param", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
