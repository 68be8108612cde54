// Package validation wraps go-playground/validator behind a small API
// for validating request commands before they reach domain systems.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates the exported fields of cmd against their `validate`
// tags. The returned error lists every failing field in a single
// message suitable for API responses.
func Struct(cmd any) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
	}

	return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
}
