package models

import "time"

// FeeStructure defines the amount due for a program/semester in an
// academic year. Amounts are stored in the smallest currency unit.
type FeeStructure struct {
	ID           int64     `json:"id" db:"id"`
	Program      string    `json:"program" db:"program"`
	Semester     int       `json:"semester" db:"semester"`
	AcademicYear string    `json:"academicYear" db:"academic_year"`
	Amount       int64     `json:"amount" db:"amount"`
	DueDate      time.Time `json:"dueDate" db:"due_date"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// FeePayment records a payment a student made against a fee structure.
type FeePayment struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	FeeStructureID int64     `json:"feeStructureId" db:"fee_structure_id"`
	Amount         int64     `json:"amount" db:"amount"`
	Reference      string    `json:"reference" db:"reference"`
	RecordedBy     int64     `json:"recordedBy" db:"recorded_by"`
	PaidAt         time.Time `json:"paidAt" db:"paid_at"`
}
