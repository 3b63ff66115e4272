package dto

import "github.com/okanserdaroglu/campushub/internal/app/models"

// CreateStudentRequest provisions a student together with their user
// account (admin action).
type CreateStudentRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	FirstName     string  `json:"firstName" binding:"required,min=2,max=100"`
	LastName      string  `json:"lastName" binding:"required,min=2,max=100"`
	Password      string  `json:"password" binding:"required,min=8"`
	RollNumber    string  `json:"rollNumber" binding:"required,roll_number"`
	Program       string  `json:"program" binding:"required"`
	Semester      int     `json:"semester" binding:"required,min=1,max=8"`
	AdmissionYear int     `json:"admissionYear" binding:"required,min=2000"`
	GuardianName  *string `json:"guardianName,omitempty"`
	GuardianPhone *string `json:"guardianPhone,omitempty"`
}

// UpdateStudentRequest edits the mutable parts of a student record
type UpdateStudentRequest struct {
	Program       string  `json:"program" binding:"required"`
	Semester      int     `json:"semester" binding:"required,min=1,max=8"`
	GuardianName  *string `json:"guardianName,omitempty"`
	GuardianPhone *string `json:"guardianPhone,omitempty"`
}

// StudentFilterRequest filters the student list
type StudentFilterRequest struct {
	Program  string `form:"program"`
	Semester int    `form:"semester"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
}

// StudentListResponse is a paginated student list
type StudentListResponse struct {
	Students       []models.Student `json:"students"`
	PaginationInfo PaginationInfo   `json:"pagination"`
}

// CreateFacultyMemberRequest provisions a faculty member with their user
// account (admin action).
type CreateFacultyMemberRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"firstName" binding:"required,min=2,max=100"`
	LastName    string `json:"lastName" binding:"required,min=2,max=100"`
	Password    string `json:"password" binding:"required,min=8"`
	EmployeeID  string `json:"employeeId" binding:"required,employee_id"`
	Designation string `json:"designation" binding:"required"`
	Department  string `json:"department" binding:"required"`
}

// UpdateFacultyMemberRequest edits a faculty member record
type UpdateFacultyMemberRequest struct {
	Designation string `json:"designation" binding:"required"`
	Department  string `json:"department" binding:"required"`
}
