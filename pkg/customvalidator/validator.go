// Package customvalidator wires go-playground/validator into echo and adds
// the domain rules request DTOs rely on.
package customvalidator

import (
	"time"

	apperrors "equipment-system/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator satisfies echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New()

	// "2006-01-02" calendar dates; the stores compare them as strings.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})

	return &CustomValidator{validate: v}
}

// Validate maps the first rule violation into the failure taxonomy.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	if violations, ok := err.(validator.ValidationErrors); ok && len(violations) > 0 {
		first := violations[0]
		return apperrors.NewValidationError(
			first.Field()+" failed validation on rule '"+first.Tag()+"'",
			first.Field(),
		)
	}
	return apperrors.NewValidationError(err.Error(), "")
}
