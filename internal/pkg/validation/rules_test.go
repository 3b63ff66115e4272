package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@campus.edu"))
	assert.True(t, IsValidEmail("j+tag@mail.co"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("UPPER@campus.edu"))
}

func TestIsValidRollNumber(t *testing.T) {
	assert.True(t, IsValidRollNumber("2024CS0042"))
	assert.False(t, IsValidRollNumber("24CS0042"))
	assert.False(t, IsValidRollNumber("2024cs0042"))
}

func TestIsValidAcademicYear(t *testing.T) {
	assert.True(t, IsValidAcademicYear("2024-2025"))
	assert.True(t, IsValidAcademicYear("1999-2000"))
	assert.False(t, IsValidAcademicYear("2024-2026"))
	assert.False(t, IsValidAcademicYear("2024/2025"))
	assert.False(t, IsValidAcademicYear("2024-25"))
}
