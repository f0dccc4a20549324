package calculator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"entropy/model"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// report fields under their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput enforces the basic numeric bounds of the input form before
// the per-process preconditions run.
func validateInput(in model.ProcessInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &InvalidInputError{Field: fe.Field(), Reason: "violates bound " + fe.Tag()}
	}
	return err
}
