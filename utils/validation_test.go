// utils/validation_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTcNo(t *testing.T) {
	assert.True(t, ValidateTcNo("12345678950"))
	// formatting characters are stripped before checking
	assert.True(t, ValidateTcNo("123 456 789 50"))

	assert.False(t, ValidateTcNo(""))
	assert.False(t, ValidateTcNo("1234567895"))   // too short
	assert.False(t, ValidateTcNo("02345678950"))  // leading zero
	assert.False(t, ValidateTcNo("12345678940"))  // tenth digit wrong
	assert.False(t, ValidateTcNo("12345678951"))  // eleventh digit wrong
	assert.False(t, ValidateTcNo("123456789501")) // too long
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("5551234567"))

	assert.False(t, ValidatePhone("555123456"))    // 9 digits
	assert.False(t, ValidatePhone("05551234567"))  // 11 digits
	assert.False(t, ValidatePhone("555 123 4567")) // formatting not accepted
	assert.False(t, ValidatePhone(""))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("info@servispro.com"))
	assert.True(t, ValidateEmail("a.b+c@example.co"))

	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@domain"))
	assert.False(t, ValidateEmail("spaces in@example.com"))
}

func TestValidateSerialNumber(t *testing.T) {
	assert.True(t, ValidateSerialNumber("SN12345"))

	assert.False(t, ValidateSerialNumber("SN12"))      // too short
	assert.False(t, ValidateSerialNumber("SN 12345"))  // whitespace
	assert.False(t, ValidateSerialNumber("SN-12345!")) // symbols
}

func TestValidateRequired(t *testing.T) {
	assert.True(t, ValidateRequired("x"))
	assert.False(t, ValidateRequired(""))
	assert.False(t, ValidateRequired("   "))
}
