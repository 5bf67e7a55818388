package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("user@example.com"))
	assert.NoError(t, Email("first.last+tag@sub.domain.org"))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("missing@tld"))
	assert.Error(t, Email(""))
}

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("alice_01"))
	assert.Error(t, Username("ab"), "too short")
	assert.Error(t, Username("a_very_long_username_over_limit"), "too long")
	assert.Error(t, Username("bad name"), "space not allowed")
	assert.Error(t, Username("bad-name"), "dash not allowed")
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("Secret1"))
	assert.Error(t, Password("Sh0rt"), "too short")
	assert.Error(t, Password("lowercase1"), "no uppercase")
	assert.Error(t, Password("UPPERCASE1"), "no lowercase")
	assert.Error(t, Password("NoDigits"), "no number")
}
