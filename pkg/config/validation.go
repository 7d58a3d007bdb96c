package config

import (
	"errors"
	"fmt"

	"github.com/filetug/kupo/pkg/chroma2tcell"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags first, then rules tags cannot express.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return validateCustomRules(cfg)
}

func validateCustomRules(cfg *Config) error {
	if !chroma2tcell.StyleExists(cfg.Preview.Style) {
		return fmt.Errorf("preview.style: unknown chroma style %q", cfg.Preview.Style)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value())
	}
	return err
}
