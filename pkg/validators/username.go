package validators

import (
	"errors"
	"strings"
)

var (
	ErrUsernameEmpty    = errors.New("no username provided")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	ErrUsernameTooLong  = errors.New("username is too long")
)

// UsernameValidator trims surrounding whitespace and returns the cleaned
// value alongside any violation.
func UsernameValidator(u string) (string, error) {
	trimmed := strings.TrimSpace(u)

	if trimmed == "" {
		return "", ErrUsernameEmpty
	}

	if len([]rune(trimmed)) < 3 {
		return "", ErrUsernameTooShort
	}

	if len(trimmed) > 100 {
		return "", ErrUsernameTooLong
	}

	return trimmed, nil
}
