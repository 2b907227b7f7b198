package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizePhone("98765 43210"))
	assert.Equal(t, "9876543210", NormalizePhone("98765-43210"))
	assert.Equal(t, "919876543210", NormalizePhone("+91 98765 43210"))
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"98765 43210", true},
		{"5876543210", false}, // leading digit below 6
		{"987654321", false},  // too short
		{"98765432100", false},
		{"", false},
		{"abcdefghij", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestAdult(t *testing.T) {
	exactlyEighteen := time.Now().AddDate(-18, 0, 0).Format(DOBLayout)
	justUnder := time.Now().AddDate(-18, 0, 1).Format(DOBLayout)

	assert.True(t, Adult("1990-05-10"))
	assert.True(t, Adult(exactlyEighteen))
	assert.False(t, Adult(justUnder))
	assert.False(t, Adult("2020-01-01"))
	assert.False(t, Adult("not-a-date"))
	assert.False(t, Adult(""))
}

func TestValidator_ProfileRules(t *testing.T) {
	type probe struct {
		Phone string `json:"phone" validate:"required,profilephone"`
		DOB   string `json:"dob" validate:"required,adult"`
	}

	v := New()

	assert.NoError(t, v.Validate(&probe{Phone: "9876543210", DOB: "1990-05-10"}))

	err := v.Validate(&probe{Phone: "12345", DOB: "2020-01-01"})
	vErr, ok := err.(*ValidationError)
	if assert.True(t, ok, "expected *ValidationError, got %T", err) {
		// Errors are keyed by JSON field name.
		assert.Contains(t, vErr.Errors, "phone")
		assert.Contains(t, vErr.Errors, "dob")
	}
}
