package dto

import "github.com/okanserdaroglu/campushub/internal/app/models"

// CreateFeeStructureRequest defines dues for a program/semester/year
type CreateFeeStructureRequest struct {
	Program      string `json:"program" binding:"required"`
	Semester     int    `json:"semester" binding:"required,min=1,max=8"`
	AcademicYear string `json:"academicYear" binding:"required,academic_year"`
	Amount       int64  `json:"amount" binding:"required,min=1"`
	DueDate      string `json:"dueDate" binding:"required" example:"2024-08-31"`
}

// RecordPaymentRequest records a student's payment against a structure
type RecordPaymentRequest struct {
	StudentID      int64  `json:"studentId" binding:"required,min=1"`
	FeeStructureID int64  `json:"feeStructureId" binding:"required,min=1"`
	Amount         int64  `json:"amount" binding:"required,min=1"`
	Reference      string `json:"reference" binding:"required"`
}

// FeeStatusResponse is a student's dues and payment history
type FeeStatusResponse struct {
	Structures  []models.FeeStructure `json:"structures"`
	Payments    []models.FeePayment   `json:"payments"`
	TotalDue    int64                 `json:"totalDue"`
	TotalPaid   int64                 `json:"totalPaid"`
	Outstanding int64                 `json:"outstanding"`
}
