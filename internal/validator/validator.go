package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the service's custom rules
type Validator struct {
	validate *validator.Validate
	business *BusinessValidator
}

// ValidationError represents one failed field rule
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	parts := make([]string, len(ve))
	for i, e := range ve {
		parts[i] = e.Field + " " + e.Message
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// IsValidationError reports whether err carries field validation failures
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	v := &Validator{validate: validate}
	v.business = newBusinessValidator(validate)
	return v
}

// Validate runs struct tag validation only
func (v *Validator) Validate(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) GetBusinessValidator() *BusinessValidator {
	return v.business
}

// ToValidationErrors converts validator errors to ValidationErrors
func ToValidationErrors(err error) ValidationErrors {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return result
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "date_only":
		return "must be a date (YYYY-MM-DD)"
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
