package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError is a pre-flight form rejection. It never reaches the
// network; the shell surfaces Msg directly to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// checkStruct runs the struct tags through the validator and converts the
// first failure into a user-facing message.
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		return &ValidationError{Msg: formatValidationError(ve[0])}
	}
	return &ValidationError{Msg: "Invalid input"}
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Please fill in all required fields"
	case "email":
		return "Please enter a valid email address"
	case "min":
		if fe.Field() == "Password" {
			return fmt.Sprintf("Password must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "eqfield":
		if fe.Field() == "ConfirmPassword" {
			return "Passwords do not match"
		}
		return fmt.Sprintf("%s must match %s", fe.Field(), fe.Param())
	case "eq":
		if fe.Field() == "AgreeToTerms" {
			return "Please agree to the terms and conditions"
		}
		return fmt.Sprintf("%s has an invalid value", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
	}
}
