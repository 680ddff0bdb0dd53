package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// CPF validation (Brazilian individual taxpayer ID): 11 digits, with or
// without the ###.###.###-## punctuation. Check digits are not verified.
func IsValidCPF(cpf string) bool {
	cpf = strings.ReplaceAll(cpf, ".", "")
	cpf = strings.ReplaceAll(cpf, "-", "")
	return len(cpf) == 11 && IsNumeric(cpf)
}

// Phone number validation: 10-13 digits after stripping spaces, dashes and
// parentheses, optionally prefixed with +55.
func IsValidPhoneNumber(phone string) bool {
	for _, cut := range []string{" ", "-", "(", ")"} {
		phone = strings.ReplaceAll(phone, cut, "")
	}
	phone = strings.TrimPrefix(phone, "+")
	phone = strings.TrimPrefix(phone, "55")

	if len(phone) < 10 || len(phone) > 13 {
		return false
	}
	return IsNumeric(phone)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Data URL validation, for avatars and resumes carried inline.
func IsValidDataURL(s string) bool {
	return strings.HasPrefix(s, "data:") && strings.Contains(s, ",")
}

// Rating validation: reviews are scored on a 1..5 scale.
func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// Login validation: 3-50 chars, A-Z, a-z, 0-9, ., _, -
var loginRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)

func IsValidLogin(login string) bool {
	return loginRegex.MatchString(login)
}
