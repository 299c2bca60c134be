package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// InjectionPatterns is the shared deny-list of SQL/script-injection payload
// shapes. Both request-time validation and the offline cleanup tool consume
// this table so the two can never drift apart. This is a defense-in-depth
// heuristic on top of parameterized queries, not a substitute for them.
var InjectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(SELECT|UNION|DROP|INSERT|UPDATE|DELETE|EXEC|EXECUTE|SCRIPT|JAVASCRIPT)`),
	regexp.MustCompile(`(?i)(PG_SLEEP|WAITFOR\s+DELAY|BENCHMARK)`),
	regexp.MustCompile(`(?i)(--|;--|'\s*OR|"\s*OR)`),
	regexp.MustCompile(`(?i)(XOR|0x[0-9A-F]+)`),
	regexp.MustCompile(`(?i)(<script|javascript:)`),
}

var (
	// Standard local@domain shape; detailed RFC parsing is not the goal here
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Letters, digits, whitespace and common business punctuation
	companyNameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\.\,\-\&\'\(\)]+$`)

	phoneSeparatorRegex = regexp.MustCompile(`[\s\-\(\)\+]`)
	digitsRegex         = regexp.MustCompile(`^[0-9]+$`)
)

// ValidationError is a user-correctable input problem. The Reason is safe to
// surface verbatim on the form.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func failf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// CheckInjection fails when the value matches any deny-listed pattern,
// regardless of otherwise-valid shape.
func CheckInjection(value string) error {
	if value == "" {
		return nil
	}
	for _, pattern := range InjectionPatterns {
		if pattern.MatchString(value) {
			return failf("Invalid input detected. Please enter valid data without special characters or SQL commands.")
		}
	}
	return nil
}

// MatchesInjectionPattern reports whether any field value trips the deny-list.
// Used by the offline cleanup tool.
func MatchesInjectionPattern(values ...string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}
		for _, pattern := range InjectionPatterns {
			if pattern.MatchString(v) {
				return true
			}
		}
	}
	return false
}

// TextInput validates that the trimmed value length lies in [minLen, maxLen]
// and passes the injection guard. Lengths count characters, not bytes, so
// multibyte names are measured the way the user typed them.
func TextInput(value string, minLen, maxLen int) error {
	trimmed := strings.TrimSpace(value)
	if utf8.RuneCountInString(trimmed) < minLen {
		return failf("Input must be at least %d characters.", minLen)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return failf("Input is too long (max %d characters).", maxLen)
	}
	return CheckInjection(value)
}

// SafeEmail validates email shape (single @, standard local@domain form,
// RFC 5321 length cap) plus the injection guard.
func SafeEmail(value string) error {
	if strings.Count(value, "@") != 1 {
		return failf("Invalid email format.")
	}
	if !emailRegex.MatchString(value) {
		return failf("Enter a valid email address.")
	}
	if utf8.RuneCountInString(value) > 254 {
		return failf("Email address is too long.")
	}
	return CheckInjection(value)
}

// PhoneNumber validates a phone number: after stripping common separators
// it must be all digits, 7 to 15 of them.
func PhoneNumber(value string) error {
	if value == "" {
		return failf("Phone number is required.")
	}
	cleaned := phoneSeparatorRegex.ReplaceAllString(value, "")
	if !digitsRegex.MatchString(cleaned) || len(cleaned) < 7 || len(cleaned) > 15 {
		return failf("Please enter a valid phone number (7-15 digits).")
	}
	return nil
}

// CompanyName validates a company name: trimmed length in [2,200], restricted
// character set, injection guard.
func CompanyName(value string) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < 2 {
		return failf("Company name must be at least 2 characters long.")
	}
	if utf8.RuneCountInString(value) > 200 {
		return failf("Company name is too long (max 200 characters).")
	}
	if err := CheckInjection(value); err != nil {
		return err
	}
	if !companyNameRegex.MatchString(value) {
		return failf("Company name contains invalid characters. Only letters, numbers, and basic punctuation allowed.")
	}
	return nil
}

// RegisterValidators registers custom rules on a validator instance so struct
// tags can reuse the same deny-list as the pure validators.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("safe_text", SafeText)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// SafeText is the struct-tag form of the injection guard.
func SafeText(fl validator.FieldLevel) bool {
	return CheckInjection(fl.Field().String()) == nil
}

// ValidPhone is the struct-tag form of PhoneNumber.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // optional, combine with required where needed
	}
	return PhoneNumber(val) == nil
}
