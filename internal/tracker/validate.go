package tracker

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/nhle/assignment-tracker/internal/dateutil"
)

const canonicalDateTag = "canonicaldate"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(canonicalDateTag, func(fl validator.FieldLevel) bool {
		return dateutil.IsValid(fl.Field().String())
	})
	return v
}

// validateInput maps struct validation failures to the tracker's error
// values. Title is checked before the due date.
func validateInput(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Title" {
			return ErrTitleRequired
		}
	}
	for _, fe := range fieldErrs {
		if fe.Field() != "DueDate" {
			continue
		}
		if fe.Tag() == "required" {
			return ErrDueDateRequired
		}
		_, perr := dateutil.Parse(in.DueDate)
		return perr
	}
	return err
}
