package models

import "time"

// Audience restricts who an announcement is shown to
type Audience string

const (
	AudienceAll      Audience = "ALL"
	AudienceStudents Audience = "STUDENTS"
	AudienceFaculty  Audience = "FACULTY"
)

// Valid reports whether a is a known audience
func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudienceStudents, AudienceFaculty:
		return true
	}
	return false
}

// Announcement is a notice posted by an admin or faculty member
type Announcement struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Audience  Audience  `json:"audience" db:"audience"`
	PostedBy  int64     `json:"postedBy" db:"posted_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Event is a campus event with a schedule and venue
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Venue       string    `json:"venue" db:"venue"`
	StartsAt    time.Time `json:"startsAt" db:"starts_at"`
	EndsAt      time.Time `json:"endsAt" db:"ends_at"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
