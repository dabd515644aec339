package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shrimpsizemoose/registrar/internal/dates"
	"github.com/shrimpsizemoose/registrar/internal/validation"
)

// Fields are written without any escaping, so a comma inside a name or a
// teacher splits the value on the next load.
const fieldSep = ","

var ErrMalformedLine = errors.New("malformed line")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	rules := map[string]validator.Func{
		"namepart": func(fl validator.FieldLevel) bool {
			return validation.IsValidNamePart(fl.Field().String(), false)
		},
		"calendardate": func(fl validator.FieldLevel) bool {
			_, err := dates.Parse(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func joinFields(fields ...string) string {
	return strings.Join(fields, fieldSep)
}

func splitFields(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return strings.Split(line, fieldSep)
}
