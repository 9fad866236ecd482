// Package forms holds the rule sets for the forms submitted to the bookshelf.
//
// Rules are declared as validate struct tags and checked by go-playground/validator
// before anything is written to the store.
package forms

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	bookshelf "github.com/Suiper34/virtual-bookshelf-web"
	"github.com/go-playground/validator/v10"
)

const (
	MessageRequired    = "This field is required."
	MessageTooLong     = "Field cannot be longer than 250 characters."
	MessageNotANumber  = "Not a valid float value."
	MessageRatingRange = "Number must be between 0 and 10."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report the form field name rather than the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("rating_number", isNumber); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("rating_range", isRating); err != nil {
		panic(err)
	}
	return v
}

func parseRating(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

func isNumber(fl validator.FieldLevel) bool {
	_, err := parseRating(fl.Field().String())
	return err == nil
}

func isRating(fl validator.FieldLevel) bool {
	f, err := parseRating(fl.Field().String())
	return err == nil && f >= bookshelf.MinRating && f <= bookshelf.MaxRating
}

// Errors maps a form field name to the message describing why it was rejected.
type Errors map[string]string

// Get returns the message for the field, or an empty string.
func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Any() bool {
	return len(e) > 0
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MessageRequired
	case "max":
		return MessageTooLong
	case "rating_number":
		return MessageNotANumber
	case "rating_range":
		return MessageRatingRange
	}
	return "Invalid value."
}

// check validates the form and returns the first failing rule of each field.
func check(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return Errors{"": err.Error()}
	}
	errs := make(Errors, len(ves))
	for _, fe := range ves {
		if _, ok := errs[fe.Field()]; ok {
			continue
		}
		errs[fe.Field()] = message(fe)
	}
	return errs
}
