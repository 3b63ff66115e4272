package models

import "time"

// AttendanceStatus is the per-day attendance state
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
)

// Valid reports whether s is one of the three known statuses
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// AttendanceMark is one student's attendance in one subject on one
// calendar day. The (student, subject, date) tuple is unique; marking the
// same tuple again replaces the earlier mark instead of duplicating it,
// so a faculty member can correct a mistaken roll call.
type AttendanceMark struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	SubjectID int64            `json:"subjectId" db:"subject_id"`
	Date      time.Time        `json:"date" db:"mark_date"` // calendar day, time part ignored
	Status    AttendanceStatus `json:"status" db:"status"`
	MarkedBy  int64            `json:"markedBy" db:"marked_by"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`
}
