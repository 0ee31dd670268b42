package kernel

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

const tagPositiveInteger = "posint"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(tagPositiveInteger, isPositiveInteger); err != nil {
		panic(err)
	}
	return v
}

// Satisfies reports whether value passes the validator tag expression,
// e.g. "required" or "required,posint".
func Satisfies(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}

// IsPresent reports whether s is a non-empty string.
func IsPresent(s string) bool {
	return Satisfies(s, "required")
}

// PositiveInteger converts a loosely typed number (as decoded from JSON) to an
// int. It fails for nil, non-numbers, fractions, zero and negatives.
func PositiveInteger(value any) (int, bool) {
	if !Satisfies(value, "required,"+tagPositiveInteger) {
		return 0, false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int(v.Float()), true
	default:
		return 0, false
	}
}

func isPositiveInteger(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint() > 0 && field.Uint() <= math.MaxInt64
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return f > 0 && f < math.MaxInt64 && f == math.Trunc(f)
	default:
		return false
	}
}
