// Package validation reproduces the legacy per-entity validation modules:
// shape checks on the request body plus database-backed uniqueness and
// existence checks, reported as the []string error lists the old API
// returned. Relation checks (favorites, catalog links) use status-coded
// errors instead, matching their legacy routes.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors is the list of human-readable validation problems for one request.
// It implements error so services and handlers can pass it around; an empty
// list means valid.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

var validate = newValidator()

// newValidator builds the shared validator. Field errors report the json
// wire name, which is what the legacy messages referenced.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct runs the validator tags on a request DTO and translates failures
// into legacy-style messages.
func Struct(s interface{}) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{err.Error()}
	}

	var errs Errors
	for _, fe := range invalid {
		errs = append(errs, fieldMessage(fe))
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo '%s' é obrigatório.", field)
	case "email":
		return fmt.Sprintf("O campo '%s' deve ser um e-mail válido.", field)
	case "min":
		return fmt.Sprintf("O campo '%s' deve ter no mínimo %s caracteres.", field, fe.Param())
	case "max":
		return fmt.Sprintf("O campo '%s' deve ter no máximo %s caracteres.", field, fe.Param())
	default:
		return fmt.Sprintf("O campo '%s' é inválido.", field)
	}
}
