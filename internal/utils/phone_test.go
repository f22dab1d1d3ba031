package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "plain e164", input: "+15551234567", expected: "+15551234567"},
		{name: "with dashes", input: "+1-555-123-4567", expected: "+15551234567"},
		{name: "with spaces", input: "+1 555 123 4567", expected: "+15551234567"},
		{name: "with parens", input: "+1(555)1234567", expected: "+15551234567"},
		{name: "surrounding whitespace", input: "  +15551234567 ", expected: "+15551234567"},
		{name: "missing plus", input: "15551234567", expectError: true},
		{name: "leading zero country code", input: "+05551234567", expectError: true},
		{name: "too short", input: "+1555", expectError: true},
		{name: "too long", input: "+1555123456789012", expectError: true},
		{name: "letters", input: "+1555CALLNOW", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+628123456789"))
	assert.False(t, IsValidPhoneNumber("0812345"))
}
