package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "simple", email: "doctor@example.com", valid: true},
		{name: "subdomain", email: "admin@portal.clinic.org", valid: true},
		{name: "plus tag", email: "patient+test@example.com", valid: true},
		{name: "missing at", email: "patient.example.com", valid: false},
		{name: "missing tld", email: "patient@example", valid: false},
		{name: "leading dot", email: ".patient@example.com", valid: false},
		{name: "empty", email: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "code must be numeric, got %q", code)
	}
}

func TestGenerateNumericCode_Varies(t *testing.T) {
	// Two consecutive codes colliding is possible but vanishingly unlikely
	// to happen repeatedly.
	collisions := 0
	for i := 0; i < 5; i++ {
		a, err := GenerateNumericCode(6)
		require.NoError(t, err)
		b, err := GenerateNumericCode(6)
		require.NoError(t, err)
		if a == b {
			collisions++
		}
	}
	assert.Less(t, collisions, 2)
}
