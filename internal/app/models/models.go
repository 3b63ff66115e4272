package models

// Role defines the user role type
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
)

// AcademicYear labels look like "2024-2025". They are plain strings in the
// schema; ordering relies on the lexicographic order of the label, which
// holds for this format.
