package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lansen/driveadmin/internal/pkg/dates"
)

// RegisterValidators installs the custom binding validations on gin's
// validator engine. Must run before the router serves requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("dateformat", validDateFormat)
}

// validDateFormat accepts strings in YYYY-MM-DD form
func validDateFormat(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	_, err := dates.ParseDate(&s)
	return err == nil
}

// FormatBindingError turns a binding failure into a message that names the
// offending fields instead of leaking struct internals
func FormatBindingError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "dateformat":
		return e.Field() + " must be in YYYY-MM-DD format"
	default:
		return e.Field() + " failed on " + e.Tag()
	}
}
