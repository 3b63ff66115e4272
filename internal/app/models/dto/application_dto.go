package dto

// SubmitApplicationRequest is the public admission application form
type SubmitApplicationRequest struct {
	FirstName   string   `json:"firstName" binding:"required,min=2,max=100"`
	LastName    string   `json:"lastName" binding:"required,min=2,max=100"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required,min=7,max=20"`
	Program     string   `json:"program" binding:"required"`
	PrevSchool  *string  `json:"prevSchool,omitempty"`
	PrevPercent *float64 `json:"prevPercent,omitempty" binding:"omitempty,min=0,max=100"`
}

// ApplicationFilterRequest filters the admin application list
type ApplicationFilterRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
	Program  string `form:"program"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
}

// ApprovalResponse reports the side effects of approving an application
type ApprovalResponse struct {
	ApplicationID int64  `json:"applicationId"`
	StudentID     int64  `json:"studentId"`
	UserID        int64  `json:"userId"`
	RollNumber    string `json:"rollNumber"`
	Email         string `json:"email"`
}
