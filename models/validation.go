package models

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors collects validation messages keyed by field name. Model
// hooks return it as the error so handlers can render a field-keyed response.
type ValidationErrors map[string][]string

func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, messages := range e {
		parts = append(parts, field+" "+strings.Join(messages, ", "))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// The built-in email rule is looser than what accounts may register with, so
// addresses are checked against this grammar instead: word characters, plus,
// hyphen and dot in the local part, hyphenated alphanumeric labels and a
// letter-only last label in the domain.
var emailRegex = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-]+(\.[a-z\d\-]+)*\.[a-z]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	if err := v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// checkStruct validates s and appends a message per failed rule into errs.
func checkStruct(s interface{}, errs ValidationErrors) {
	err := validate.Struct(s)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("base", err.Error())
		return
	}

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			errs.Add(fe.Field(), "can't be blank")
		case "address":
			errs.Add(fe.Field(), "is not a valid email address")
		case "oneof":
			errs.Add(fe.Field(), "must be one of "+fe.Param())
		default:
			errs.Add(fe.Field(), "is invalid")
		}
	}
}
