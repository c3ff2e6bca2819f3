package valueobject

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("email format is not valid")

// Email is an immutable value object holding a normalized address.
// Two emails differing only by case or surrounding whitespace are equal.
type Email struct {
	value string
}

// NewEmail validates and normalizes a raw address. The raw input must be
// non-empty after trimming and contain an "@"; the stored value is trimmed
// and lower-cased so uniqueness checks are case-insensitive.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.Contains(trimmed, "@") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

func (e Email) Value() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }

func (e Email) String() string { return e.value }
