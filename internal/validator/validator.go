package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Confirmation codes skip lookalike characters (0/O, 1/I/L).
	confirmationCodeRgx = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{8}$`)
	discountCodeRgx     = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{2,19}$`)
	hasSpecialRgx       = regexp.MustCompile(`[!@#$%^&*]`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("confirmation_code", validateConfirmationCode)
	validator.RegisterValidation("discount_code", validateDiscountCode)
	validator.RegisterValidation("password", validatePassword)

	return validator
}

func validateConfirmationCode(fl validator.FieldLevel) bool {
	return confirmationCodeRgx.MatchString(fl.Field().String())
}

func validateDiscountCode(fl validator.FieldLevel) bool {
	return discountCodeRgx.MatchString(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "gtfield":
		return fmt.Sprintf("must be after %s", err.Param())
	case "confirmation_code":
		return "must be a valid 8-character confirmation code"
	case "discount_code":
		return "must be 3-20 uppercase letters, digits, hyphens or underscores"
	case "password":
		return "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
			"one number, and one special character (!@#$%^&*)."
	default:
		return "is invalid"
	}
}
