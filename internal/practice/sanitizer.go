package practice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinValue = 0.0001
	MaxValue = 1e12
)

var (
	// Optional digits, an optional decimal point and up to 2 fractional digits.
	valuePattern = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

	ErrIncompleteValue = errors.New("incomplete value")
	ErrOutOfRange      = errors.New("value out of range")
	ErrMalformedValue  = errors.New("malformed value")
)

// Accepts reports whether a field may hold s.
// Strings in the middle of being typed ("", ".", "12.") are always accepted.
func Accepts(s string) bool {
	if !valuePattern.MatchString(s) {
		return false
	}
	if isTransient(s) {
		return true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return v >= MinValue && v <= MaxValue
}

// Apply returns proposed when the field may hold it, otherwise current.
func Apply(current, proposed string) string {
	if Accepts(proposed) {
		return proposed
	}
	return current
}

// Type feeds input to a field one keystroke at a time.
func Type(current, input string) string {
	for _, r := range input {
		current = Apply(current, current+string(r))
	}
	return current
}

// ParseValue converts a completed field into a number.
func ParseValue(s string) (float64, error) {
	if s == "" || s == "." {
		return 0, ErrIncompleteValue
	}
	if !valuePattern.MatchString(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrMalformedValue)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "."), 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat(%q) > %w", s, err)
	}
	if v < MinValue || v > MaxValue {
		return 0, fmt.Errorf("%q must be between %v and %v: %w", s, MinValue, MaxValue, ErrOutOfRange)
	}
	return v, nil
}

func isTransient(s string) bool {
	return s == "" || strings.HasSuffix(s, ".")
}
