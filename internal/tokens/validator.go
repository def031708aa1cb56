package tokens

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	styleboxerrors "github.com/alexisbeaulieu97/stylebox/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssLengthPattern = regexp.MustCompile(`^(?:0|-?\d+(?:\.\d+)?(?:px|rem|em|%|vh|vw|ch)|auto)$`)
	cssTimePattern   = regexp.MustCompile(`^\d+(?:\.\d+)?(?:ms|s)$`)
	swatchPattern    = regexp.MustCompile(`^[A-Za-z]+(?:--[1-7]00(?:--(?:[1-9]0|100))?)?$`)
)

// validatorInstance configures and returns the shared validator used for token overrides.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			return cssLengthPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_time", func(fl validator.FieldLevel) bool {
			return cssTimePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("swatch", func(fl validator.FieldLevel) bool {
			return swatchPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks an overrides document against the token schema.
func Validate(o *Overrides) error {
	if o == nil {
		return styleboxerrors.NewValidationError("tokens", "overrides are nil", nil)
	}
	if err := validatorInstance().Struct(o); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(o.Breakpoints))
	for i, bp := range o.Breakpoints {
		if _, dup := seen[bp.Name]; dup {
			return styleboxerrors.NewValidationError(fmt.Sprintf("breakpoints[%d].name", i), fmt.Sprintf("duplicate breakpoint %q", bp.Name), nil)
		}
		seen[bp.Name] = struct{}{}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := tokenFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return styleboxerrors.NewValidationError(field, msg, err)
	}

	return styleboxerrors.NewValidationError("tokens", err.Error(), err)
}

func tokenFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
