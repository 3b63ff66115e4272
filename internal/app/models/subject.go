package models

import "time"

// Subject represents a course offering.
//
// Credits are immutable once a marks entry references the subject;
// allowing them to change would silently rewrite every SGPA/CGPA already
// computed against them. The repository refuses such updates.
type Subject struct {
	ID        int64     `json:"id" db:"id"`
	Code      string    `json:"code" db:"code" example:"CS301"`
	Name      string    `json:"name" db:"name" example:"Operating Systems"`
	Credits   int       `json:"credits" db:"credits" example:"4"`
	Semester  int       `json:"semester" db:"semester" example:"5"`
	Program   string    `json:"program" db:"program" example:"B.Tech CSE"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
