package entities

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Record is the flat serialized form of an entity.
type Record map[string]any

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkInput validates a create input. A missing field wins over any other
// violation so callers always learn about absent data first.
func checkInput(entity string, in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return InvalidField(entity, err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return MissingField(entity, fe.Field())
		}
	}
	fe := verrs[0]
	return InvalidField(fe.Field(), fmt.Errorf("must satisfy %s=%s", fe.Tag(), fe.Param()))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func parseTimestamp(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, InvalidField(field, fmt.Errorf("%q is not an RFC 3339 timestamp or YYYY-MM-DD date", value))
}
