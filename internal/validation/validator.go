package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// Get returns the shared validator instance
func Get() *Validator {
	once.Do(func() {
		instance = &Validator{validate: validator.New()}
	})
	return instance
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateStruct validates a struct with the shared validator
func ValidateStruct(s interface{}) error {
	return Get().ValidateStruct(s)
}

// FormatValidationError flattens validation errors into "field: problem" pairs
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "is required"
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		case "max", "lte":
			errs[field] = fmt.Sprintf("must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("must be greater than %s", e.Param())
		case "ltefield":
			errs[field] = fmt.Sprintf("must not exceed %s", e.Param())
		default:
			errs[field] = "is invalid"
		}
	}

	return errs
}

// Summary renders a validation error as a single sorted line
func Summary(err error) string {
	fields := FormatValidationError(err)
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+fields[k])
	}
	return strings.Join(parts, "; ")
}
