package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty("  a  "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"a+b@company.com.br",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local-part.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-08-07")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 8, int(date.Month()))
	assert.Equal(t, 7, date.Day())

	_, ok = IsValidDate("07/08/2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)
}

func TestIsValidCPF(t *testing.T) {
	assert.True(t, IsValidCPF("12345678901"))
	assert.True(t, IsValidCPF("123.456.789-01"))
	assert.False(t, IsValidCPF("1234567890"))
	assert.False(t, IsValidCPF("123456789012"))
	assert.False(t, IsValidCPF("12345678a01"))
	assert.False(t, IsValidCPF(""))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("11 98765-4321"))
	assert.True(t, IsValidPhoneNumber("(11) 98765-4321"))
	assert.True(t, IsValidPhoneNumber("+55 11 98765-4321"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("abc-def-ghij"))
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"Pending", "Approved", "Rejected"}
	assert.True(t, IsInSlice("Approved", statuses))
	assert.False(t, IsInSlice("Cancelled", statuses))
	assert.False(t, IsInSlice("approved", statuses))
}

func TestIsValidDataURL(t *testing.T) {
	assert.True(t, IsValidDataURL("data:image/png;base64,iVBORw0KGgo="))
	assert.False(t, IsValidDataURL("https://example.com/avatar.png"))
	assert.False(t, IsValidDataURL("data:image/png;base64"))
}

func TestIsValidRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.True(t, IsValidRating(rating))
	}
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
	assert.False(t, IsValidRating(-1))
}

func TestIsValidLogin(t *testing.T) {
	assert.True(t, IsValidLogin("admin"))
	assert.True(t, IsValidLogin("maria.silva_01"))
	assert.False(t, IsValidLogin("ab"))
	assert.False(t, IsValidLogin("has space"))
	assert.False(t, IsValidLogin("acentuação"))
}
