package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{5,19}$`)
)

// ValidateUsername checks the login username shape
func ValidateUsername(username string) (bool, string) {
	if len(username) < 3 {
		return false, "Username must be at least 3 characters long"
	}
	if len(username) > 20 {
		return false, "Username must not exceed 20 characters"
	}
	if !usernameRegex.MatchString(username) {
		return false, "Username can only contain letters, numbers, and underscores"
	}
	return true, ""
}

// ValidatePassword checks the login password shape. Correctness of the
// credential itself is the auth layer's concern.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if len(password) > 72 {
		return false, "Password must not exceed 72 characters"
	}
	return true, ""
}

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidateName checks if the name is valid. Names are optional.
func ValidateName(name string) (bool, string) {
	if name == "" {
		return true, ""
	}
	if len(strings.TrimSpace(name)) < 2 {
		return false, "Name must be at least 2 characters long"
	}
	if matched, _ := regexp.MatchString(`[0-9!@#$%^&*(),?":{}|<>]`, name); matched {
		return false, "Name cannot contain numbers or special characters"
	}
	return true, ""
}

// ValidatePhone checks if the phone number is valid. Phone is optional.
func ValidatePhone(phone string) (bool, string) {
	if phone == "" {
		return true, ""
	}
	if !phoneRegex.MatchString(phone) {
		return false, "Invalid phone number format"
	}
	return true, ""
}

// ValidateAmount validates a monetary amount
func ValidateAmount(amount float64) (bool, string) {
	if amount < 0 {
		return false, "Amount cannot be negative"
	}
	return true, ""
}
