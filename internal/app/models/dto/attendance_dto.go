package dto

import "github.com/okanserdaroglu/campushub/internal/app/attendance"

// AttendanceEntry is one student's status for the marked day
type AttendanceEntry struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	Status    string `json:"status" binding:"required,oneof=Present Absent Late"`
}

// RecordAttendanceRequest marks a whole class for one subject and day.
// Re-submitting the same day replaces the earlier marks (upsert).
type RecordAttendanceRequest struct {
	SubjectID int64             `json:"subjectId" binding:"required,min=1"`
	Date      string            `json:"date" binding:"required" example:"2024-01-10"`
	Entries   []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

// AttendanceQueryRequest filters an attendance summary
type AttendanceQueryRequest struct {
	SubjectID int64  `form:"subjectId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// AttendanceSummaryResponse is a student's aggregated attendance
type AttendanceSummaryResponse struct {
	Overall   attendance.Summary           `json:"overall"`
	BySubject map[int64]attendance.Summary `json:"bySubject,omitempty"`
}
