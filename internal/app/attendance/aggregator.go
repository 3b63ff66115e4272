// Package attendance rolls daily attendance marks up into presence
// percentages. Like the grading package it is pure computation; the
// (student, subject, date) uniqueness is additionally enforced by the
// repository's unique index so concurrent writers resolve to
// last-write-wins at the database.
package attendance

import (
	"errors"
	"math"
	"time"

	"github.com/okanserdaroglu/campushub/internal/app/models"
)

// ErrInvalidStatus means a status outside Present/Absent/Late was
// supplied.
var ErrInvalidStatus = errors.New("unknown attendance status")

// GoodStandingThreshold is the conventional minimum attendance
// percentage, inclusive.
const GoodStandingThreshold = 75

// Summary is the aggregated view over a set of marks
type Summary struct {
	PresentCount int  `json:"presentCount"`
	LateCount    int  `json:"lateCount"`
	AbsentCount  int  `json:"absentCount"`
	TotalMarks   int  `json:"totalMarks"`
	Percentage   int  `json:"percentage"`
	GoodStanding bool `json:"goodStanding"`
}

// Summarize tallies a set of marks. Late counts toward presence: a late
// arrival is still attendance, and treating it as absence would shift
// every percentage downstream. No marks means 0%, never an error.
func Summarize(marks []models.AttendanceMark) Summary {
	var s Summary
	for _, m := range marks {
		switch m.Status {
		case models.AttendancePresent:
			s.PresentCount++
		case models.AttendanceLate:
			s.LateCount++
		case models.AttendanceAbsent:
			s.AbsentCount++
		}
	}
	s.TotalMarks = len(marks)
	if s.TotalMarks > 0 {
		attended := s.PresentCount + s.LateCount
		s.Percentage = int(math.Round(100 * float64(attended) / float64(s.TotalMarks)))
	}
	s.GoodStanding = s.Percentage >= GoodStandingThreshold
	return s
}

// SummarizeBySubject groups marks by subject and summarizes each group
func SummarizeBySubject(marks []models.AttendanceMark) map[int64]Summary {
	grouped := make(map[int64][]models.AttendanceMark)
	for _, m := range marks {
		grouped[m.SubjectID] = append(grouped[m.SubjectID], m)
	}
	out := make(map[int64]Summary, len(grouped))
	for subjectID, group := range grouped {
		out[subjectID] = Summarize(group)
	}
	return out
}

// FilterByDateRange keeps marks with start <= date <= end, comparing
// calendar days only.
func FilterByDateRange(marks []models.AttendanceMark, start, end time.Time) []models.AttendanceMark {
	startDay := DayOf(start)
	endDay := DayOf(end)
	out := make([]models.AttendanceMark, 0, len(marks))
	for _, m := range marks {
		day := DayOf(m.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FilterBySubject keeps marks for one subject
func FilterBySubject(marks []models.AttendanceMark, subjectID int64) []models.AttendanceMark {
	out := make([]models.AttendanceMark, 0, len(marks))
	for _, m := range marks {
		if m.SubjectID == subjectID {
			out = append(out, m)
		}
	}
	return out
}

// DayOf truncates a timestamp to its calendar day in UTC. Marks carry a
// day, not a time-of-day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type markKey struct {
	studentID int64
	subjectID int64
	day       time.Time
}

// MarkSet is an in-memory collection of marks with the at-most-one-per
// (student, subject, day) invariant. Recording an existing tuple
// replaces the earlier mark, so a corrected roll call never double
// counts the day.
type MarkSet struct {
	marks []models.AttendanceMark
	index map[markKey]int
}

// NewMarkSet builds a set from existing marks, applying upsert semantics
// to any duplicates in the input (the later mark wins).
func NewMarkSet(marks ...models.AttendanceMark) (*MarkSet, error) {
	s := &MarkSet{index: make(map[markKey]int, len(marks))}
	for _, m := range marks {
		if _, err := s.Record(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Record upserts a mark and returns the stored value
func (s *MarkSet) Record(mark models.AttendanceMark) (models.AttendanceMark, error) {
	if !mark.Status.Valid() {
		return models.AttendanceMark{}, ErrInvalidStatus
	}
	mark.Date = DayOf(mark.Date)

	k := markKey{mark.StudentID, mark.SubjectID, mark.Date}
	if i, ok := s.index[k]; ok {
		s.marks[i] = mark
		return mark, nil
	}
	s.index[k] = len(s.marks)
	s.marks = append(s.marks, mark)
	return mark, nil
}

// Marks returns the current marks in insertion order
func (s *MarkSet) Marks() []models.AttendanceMark {
	out := make([]models.AttendanceMark, len(s.marks))
	copy(out, s.marks)
	return out
}

// Len returns the number of distinct (student, subject, day) marks
func (s *MarkSet) Len() int {
	return len(s.marks)
}
