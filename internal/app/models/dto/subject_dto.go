package dto

// CreateSubjectRequest creates a course offering
type CreateSubjectRequest struct {
	Code     string `json:"code" binding:"required,min=2,max=16"`
	Name     string `json:"name" binding:"required,min=2,max=200"`
	Credits  int    `json:"credits" binding:"required,min=1,max=6"`
	Semester int    `json:"semester" binding:"required,min=1,max=8"`
	Program  string `json:"program" binding:"required"`
}

// UpdateSubjectRequest edits a subject. Credits changes are rejected by
// the repository once results reference the subject.
type UpdateSubjectRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=200"`
	Credits  int    `json:"credits" binding:"required,min=1,max=6"`
	Semester int    `json:"semester" binding:"required,min=1,max=8"`
	Program  string `json:"program" binding:"required"`
}

// SubjectFilterRequest filters the subject list
type SubjectFilterRequest struct {
	Program  string `form:"program"`
	Semester int    `form:"semester"`
}
