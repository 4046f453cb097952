// Package validation wraps go-playground/validator with the account rules
// and exposes it both to the use cases and to echo.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/service"
	"qkart/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	// TagPassword requires at least one letter and one digit.
	TagPassword = "password"
	// TagNotBlank rejects strings made only of whitespace.
	TagNotBlank = "notblank"
	// TagMaxBytes bounds the UTF-8 encoded length, e.g. maxbytes=72.
	TagMaxBytes = "maxbytes"
)

// Validator implements service.InputValidator and echo.Validator.
type Validator struct {
	validate *validator.Validate
}

var _ service.InputValidator = (*Validator)(nil)

// New builds a validator with the custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Register never fails for a non-empty tag and a non-nil func.
	_ = v.RegisterValidation(TagPassword, validatePassword)
	_ = v.RegisterValidation(TagNotBlank, validateNotBlank)
	_ = v.RegisterValidation(TagMaxBytes, validateMaxBytes)

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// NewInputValidator exposes the validator through the domain interface for fx.
func NewInputValidator(v *Validator) service.InputValidator {
	return v
}

// Struct validates input and turns field failures into a single ErrValidationFailed.
func (v *Validator) Struct(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "validate input")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

// Validate satisfies echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s: must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
	case TagNotBlank:
		return fmt.Sprintf("%s: must not be blank", fe.Field())
	case TagMaxBytes:
		return fmt.Sprintf("%s: must be at most %s bytes", fe.Field(), fe.Param())
	case TagPassword:
		return fmt.Sprintf("%s: must contain at least one letter and one digit", fe.Field())
	default:
		return fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag())
	}
}

func validatePassword(fl validator.FieldLevel) bool {
	var hasLetter, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}
