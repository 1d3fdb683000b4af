package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/daviddao/persiancal/pkg/persian"
)

// ErrInvalid matches every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid occasion")

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks o's fields and that its month and day exist in the
// calendar. A recurring occasion may use Esfand 30; a dated one must name
// a real day of its year.
func Validate(o Occasion) error {
	if err := defaultValidator.Struct(o); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, errorMessage(err))
	}
	year := o.Year
	if o.Recurring() {
		year = leapYear
	}
	if _, err := persian.New(year, o.Month, o.Day); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// leapYear stands in for "any year" when checking recurring occasions.
const leapYear = 1399

func errorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	fe := validationErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
