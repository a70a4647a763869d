package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validate "github.com/go-playground/validator/v10"

	"github.com/dosahouse/pos-order-service/backend/internal/models"
)

var phoneRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

type Validator struct {
	v *validate.Validate
}

func New() *Validator {
	v := validate.New(validate.WithRequiredStructEnabled())

	err := v.RegisterValidation("phone", func(fl validate.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	err = v.RegisterValidation("price", func(fl validate.FieldLevel) bool {
		p, ok := fl.Field().Interface().(models.Price)
		return ok && !p.Decimal().IsNegative()
	})
	if err != nil {
		panic(err)
	}

	return &Validator{v: v}
}

// Struct validates s and flattens field errors into one readable message.
func (va *Validator) Struct(s interface{}) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validate.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fieldErrorMessage(fe))
	}

	return errors.New(strings.Join(details, "; "))
}

func fieldErrorMessage(fe validate.FieldError) string {
	switch fe.Tag() {
	case "phone":
		return "Phone number must be entered in the following format: 111-111-1111"
	case "price":
		return "Price must be a non-negative number"
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte", "gt":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on %s", fe.Field(), fe.Tag())
	}
}
