package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/glamsuite/salon-scheduler/internal/apperr"
)

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// hhmm: zero-padded 24h wall-clock string ("09:00", "23:59").
	if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return clockRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	// caldate: calendar date in YYYY-MM-DD form.
	if err := v.RegisterValidation("caldate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct validates input structs by their validate tags and folds the
// failures into a single InvalidInput error the edge can render.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.InvalidInput(err.Error())
	}

	var messages []string
	for _, fe := range verrs {
		messages = append(messages, describe(fe))
	}
	return apperr.InvalidInput(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "hhmm":
		return fmt.Sprintf("%s must be a HH:MM time", fe.Field())
	case "caldate":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
