package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"userId" db:"user_id"`
	RollNumber    string    `json:"rollNumber" db:"roll_number"`
	Program       string    `json:"program" db:"program"`
	Semester      int       `json:"semester" db:"semester"`
	AdmissionYear int       `json:"admissionYear" db:"admission_year"`
	GuardianName  *string   `json:"guardianName,omitempty" db:"guardian_name"`
	GuardianPhone *string   `json:"guardianPhone,omitempty" db:"guardian_phone"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Relation, populated when needed
	User *User `json:"user,omitempty"`
}

// FacultyMember defines the faculty model based on the 'faculty_members'
// table. Named to avoid clashing with the academic-unit sense of "faculty".
type FacultyMember struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	EmployeeID  string    `json:"employeeId" db:"employee_id"`
	Designation string    `json:"designation" db:"designation"`
	Department  string    `json:"department" db:"department"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	User *User `json:"user,omitempty"`
}
