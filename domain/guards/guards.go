// Package guards contains stateless validators for the domain-critical
// string formats. They run at construction time so an aggregate holding
// a malformed CPF or email can never exist in memory.
package guards

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gfsouzaTI/SnackTech/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AgainstInvalidEmail fails with a validation error when the string does
// not have a local-part@domain shape with at least one domain separator.
func AgainstInvalidEmail(value, field string) error {
	email := strings.TrimSpace(strings.ToLower(value))
	if !emailRegex.MatchString(email) {
		return shared.NewValidationError("cliente", field, fmt.Sprintf("%s não é um e-mail válido", value))
	}
	return nil
}

// AgainstInvalidCpf fails with a validation error when the string is not
// a well-formed CPF. Formatting characters (dots and dash) are accepted;
// after stripping them the value must be 11 digits, must not be a single
// repeated digit, and both check digits must match the standard
// algorithm computed over the first nine digits.
func AgainstInvalidCpf(value, field string) error {
	digits, ok := cpfDigits(value)
	if !ok {
		return invalidCpf(value, field)
	}

	// Repeated-digit strings satisfy the checksum arithmetic but are
	// not assignable CPFs.
	if allEqual(digits) {
		return invalidCpf(value, field)
	}

	if digits[9] != checkDigit(digits[:9]) || digits[10] != checkDigit(digits[:10]) {
		return invalidCpf(value, field)
	}
	return nil
}

func invalidCpf(value, field string) error {
	return shared.NewValidationError("cliente", field, fmt.Sprintf("%s não é um CPF válido", value))
}

// cpfDigits strips "." and "-" and returns the 11 digits of the CPF.
func cpfDigits(value string) ([]int, bool) {
	digits := make([]int, 0, 11)
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-':
			// formatting only
		default:
			return nil, false
		}
	}
	if len(digits) != 11 {
		return nil, false
	}
	return digits, true
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// checkDigit computes a CPF verifier digit over the given prefix.
// Digits are weighted from len(prefix)+1 down to 2; the digit is
// (sum*10) mod 11, with 10 mapped to 0.
func checkDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, d := range prefix {
		sum += d * weight
		weight--
	}
	digit := (sum * 10) % 11
	if digit == 10 {
		digit = 0
	}
	return digit
}
