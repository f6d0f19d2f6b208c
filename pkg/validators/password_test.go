package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValidator(t *testing.T) {
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 200)), ErrPasswordTooLong)
	assert.NoError(t, PasswordValidator("secret1"))
}

func TestUsernameValidator(t *testing.T) {
	_, err := UsernameValidator("  ")
	assert.Error(t, err)

	_, err = UsernameValidator("ab")
	assert.Error(t, err)

	got, err := UsernameValidator("  admin  ")
	assert.NoError(t, err)
	assert.Equal(t, "admin", got)
}
