package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("manager@aiwa.com"))
	assert.True(t, IsValidEmail("first.last+tag@example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+966501234567"))
	assert.True(t, IsValidPhoneNumber("0501234567"))
	assert.True(t, IsValidPhoneNumber("050-123-4567"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("phone"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("10-03-2025")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "a valid email is required"},
		{Field: "password", Message: "too short"},
	}
	assert.Equal(t, "email: a valid email is required; password: too short", errs.Error())
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "too short", m["password"])
}
