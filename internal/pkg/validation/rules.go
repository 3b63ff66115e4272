package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// EmailPattern matches plain lowercase addresses
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// RollNumberPattern - admission year, program code, serial (e.g. 2024CS0042)
	RollNumberPattern = `^\d{4}[A-Z]{2}\d{4}$`

	// EmployeeIDPattern - e.g. EMP-0419
	EmployeeIDPattern = `^EMP-\d{4}$`

	// AcademicYearPattern - e.g. 2024-2025
	AcademicYearPattern = `^\d{4}-\d{4}$`

	// PasswordMinLength applies to user-chosen passwords
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	RollNumber   *regexp.Regexp
	EmployeeID   *regexp.Regexp
	AcademicYear *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	RollNumber:   regexp.MustCompile(RollNumberPattern),
	EmployeeID:   regexp.MustCompile(EmployeeIDPattern),
	AcademicYear: regexp.MustCompile(AcademicYearPattern),
}

// IsValidEmail reports whether the address matches EmailPattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidRollNumber reports whether the roll number matches RollNumberPattern
func IsValidRollNumber(rollNumber string) bool {
	return CompiledPatterns.RollNumber.MatchString(rollNumber)
}

// IsValidAcademicYear checks the label format and that the second year
// follows the first.
func IsValidAcademicYear(label string) bool {
	if !CompiledPatterns.AcademicYear.MatchString(label) {
		return false
	}
	// "2024-2025": years must be consecutive
	first := label[:4]
	second := label[5:]
	return yearAfter(first) == second
}

func yearAfter(year string) string {
	next := make([]byte, 4)
	copy(next, year)
	for i := 3; i >= 0; i-- {
		if next[i] < '9' {
			next[i]++
			break
		}
		next[i] = '0'
	}
	return string(next)
}
