package models

import "time"

// ApplicationStatus is the admission application state
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// Application is an admission application submitted by a prospective
// student. Only Pending applications can be approved or rejected.
type Application struct {
	ID          int64             `json:"id" db:"id"`
	FirstName   string            `json:"firstName" db:"first_name"`
	LastName    string            `json:"lastName" db:"last_name"`
	Email       string            `json:"email" db:"email"`
	Phone       string            `json:"phone" db:"phone"`
	Program     string            `json:"program" db:"program"`
	PrevSchool  *string           `json:"prevSchool,omitempty" db:"prev_school"`
	PrevPercent *float64          `json:"prevPercent,omitempty" db:"prev_percent"`
	Status      ApplicationStatus `json:"status" db:"status"`
	DecidedBy   *int64            `json:"decidedBy,omitempty" db:"decided_by"`
	DecidedAt   *time.Time        `json:"decidedAt,omitempty" db:"decided_at"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
}
