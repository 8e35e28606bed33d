package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"valid", "admin_01", true},
		{"too short", "ab", false},
		{"too long", "abcdefghijklmnopqrstu", false},
		{"bad charset", "admin!", false},
		{"spaces", "ad min", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidateUsername(tt.username)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("short")
	assert.False(t, ok)

	ok, _ = ValidatePassword("LongEnough123!")
	assert.True(t, ok)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"first.last+tag@example.co.uk", true},
		{"", false},
		{"not-an-email", false},
		{"missing@tld", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			ok, _ := ValidateEmail(tt.email)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestValidateNameOptional(t *testing.T) {
	ok, _ := ValidateName("")
	assert.True(t, ok)

	ok, _ = ValidateName("Priya")
	assert.True(t, ok)

	ok, _ = ValidateName("x")
	assert.False(t, ok)

	ok, _ = ValidateName("Pr1ya")
	assert.False(t, ok)
}

func TestValidatePhoneOptional(t *testing.T) {
	ok, _ := ValidatePhone("")
	assert.True(t, ok)

	ok, _ = ValidatePhone("+91 98765 43210")
	assert.True(t, ok)

	ok, _ = ValidatePhone("abc")
	assert.False(t, ok)
}

func TestValidateAmount(t *testing.T) {
	ok, _ := ValidateAmount(399)
	assert.True(t, ok)

	ok, _ = ValidateAmount(0)
	assert.True(t, ok)

	ok, _ = ValidateAmount(-1)
	assert.False(t, ok)
}
