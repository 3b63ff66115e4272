// Package grading turns raw marks into grades and aggregates them into
// semester (SGPA) and cumulative (CGPA) averages. Everything here is a
// pure computation over records the caller supplies; persistence stays
// in the repositories.
package grading

import (
	"errors"
	"math"

	"github.com/okanserdaroglu/campushub/internal/app/models"
)

// Validation errors
var (
	// ErrInvalidMarks means a mark was outside its declared range.
	// Marks are never clamped; silently fixing them would hide
	// data-entry mistakes that affect real academic outcomes.
	ErrInvalidMarks = errors.New("marks out of range")

	// ErrInconsistentCredits means a non-positive credits value reached
	// a weighted average. Substituting a default would corrupt the GPA
	// without a visible signal, so it is rejected instead.
	ErrInconsistentCredits = errors.New("credits must be a positive integer")
)

// Status is the pass/fail outcome of one subject
type Status string

const (
	StatusPass Status = "Pass"
	StatusFail Status = "Fail"
)

// Result is the derived view of one marks entry. It is recomputed from
// the raw marks on every read and never stored.
type Result struct {
	StudentID     int64  `json:"studentId"`
	SubjectID     int64  `json:"subjectId"`
	SubjectCode   string `json:"subjectCode"`
	SubjectName   string `json:"subjectName"`
	Semester      int    `json:"semester"`
	AcademicYear  string `json:"academicYear"`
	Credits       int    `json:"credits"`
	InternalMarks int    `json:"internalMarks"`
	ExternalMarks int    `json:"externalMarks"`
	TotalMarks    int    `json:"totalMarks"`
	Grade         string `json:"grade"`
	GradePoint    int    `json:"gradePoint"`
	Status        Status `json:"status"`
}

// SemesterSummary aggregates one semester's results
type SemesterSummary struct {
	Semester      int     `json:"semester"`
	AcademicYear  string  `json:"academicYear"`
	SGPA          float64 `json:"sgpa"`
	TotalCredits  int     `json:"totalCredits"`
	EarnedCredits int     `json:"earnedCredits"`
}

// TranscriptSummary aggregates the full graded history
type TranscriptSummary struct {
	CGPA          float64 `json:"cgpa"`
	TotalCredits  int     `json:"totalCredits"`
	EarnedCredits int     `json:"earnedCredits"`
}

// RetakePolicy decides how repeated attempts at the same subject count
// toward the CGPA.
type RetakePolicy int

const (
	// AllAttempts includes every attempt in the weighted average.
	AllAttempts RetakePolicy = iota
	// LatestAttemptOnly keeps only the most recent academic year's
	// attempt per (student, subject).
	LatestAttemptOnly
)

// ComputeGrade converts raw marks into a Result. Only the mark-derived
// fields are filled; the caller attaches subject identity and credits.
func ComputeGrade(internalMarks, externalMarks int) (Result, error) {
	if internalMarks < 0 || internalMarks > MaxInternalMarks {
		return Result{}, ErrInvalidMarks
	}
	if externalMarks < 0 || externalMarks > MaxExternalMarks {
		return Result{}, ErrInvalidMarks
	}

	total := internalMarks + externalMarks
	grade, point := GradeFor(total)

	status := StatusFail
	if total >= PassMark {
		status = StatusPass
	}

	return Result{
		InternalMarks: internalMarks,
		ExternalMarks: externalMarks,
		TotalMarks:    total,
		Grade:         grade,
		GradePoint:    point,
		Status:        status,
	}, nil
}

// ResultFromEntry derives the full Result for a stored marks entry and
// its subject.
func ResultFromEntry(entry *models.MarksEntry, subject *models.Subject) (Result, error) {
	res, err := ComputeGrade(entry.InternalMarks, entry.ExternalMarks)
	if err != nil {
		return Result{}, err
	}
	res.StudentID = entry.StudentID
	res.SubjectID = entry.SubjectID
	res.Semester = entry.Semester
	res.AcademicYear = entry.AcademicYear
	if subject != nil {
		res.SubjectCode = subject.Code
		res.SubjectName = subject.Name
		res.Credits = subject.Credits
	}
	return res, nil
}

// ComputeSemesterSummary aggregates results that share a semester and
// academic year. An empty slice is a valid not-yet-graded semester, not
// an error.
func ComputeSemesterSummary(results []Result) (SemesterSummary, error) {
	gpa, total, earned, err := weightedGradePoints(results)
	if err != nil {
		return SemesterSummary{}, err
	}
	summary := SemesterSummary{
		SGPA:          gpa,
		TotalCredits:  total,
		EarnedCredits: earned,
	}
	if len(results) > 0 {
		summary.Semester = results[0].Semester
		summary.AcademicYear = results[0].AcademicYear
	}
	return summary, nil
}

// ComputeTranscriptSummary aggregates results across all semesters. The
// CGPA uses the same weighted mean as the SGPA, only over a wider set,
// so the two can never diverge in method.
func ComputeTranscriptSummary(results []Result, policy RetakePolicy) (TranscriptSummary, error) {
	if policy == LatestAttemptOnly {
		results = latestAttempts(results)
	}
	gpa, total, earned, err := weightedGradePoints(results)
	if err != nil {
		return TranscriptSummary{}, err
	}
	return TranscriptSummary{
		CGPA:          gpa,
		TotalCredits:  total,
		EarnedCredits: earned,
	}, nil
}

// Publish returns the entries with IsPublished set. Persisting the flag
// is the caller's job; flipping it twice is a no-op.
func Publish(entries []models.MarksEntry) []models.MarksEntry {
	out := make([]models.MarksEntry, len(entries))
	for i, e := range entries {
		e.IsPublished = true
		out[i] = e
	}
	return out
}

// weightedGradePoints computes the credit-weighted mean grade point,
// rounded to two decimals. A zero credit sum yields 0, not an error.
func weightedGradePoints(results []Result) (gpa float64, totalCredits, earnedCredits int, err error) {
	weighted := 0
	for _, r := range results {
		if r.Credits <= 0 {
			return 0, 0, 0, ErrInconsistentCredits
		}
		weighted += r.GradePoint * r.Credits
		totalCredits += r.Credits
		if r.Status == StatusPass {
			earnedCredits += r.Credits
		}
	}
	if totalCredits == 0 {
		return 0, 0, 0, nil
	}
	gpa = round2(float64(weighted) / float64(totalCredits))
	return gpa, totalCredits, earnedCredits, nil
}

// latestAttempts keeps the newest academic year's attempt per
// (student, subject), preserving the input order of the survivors.
func latestAttempts(results []Result) []Result {
	type key struct {
		studentID int64
		subjectID int64
	}
	best := make(map[key]int, len(results))
	for i, r := range results {
		k := key{r.StudentID, r.SubjectID}
		if j, ok := best[k]; !ok || r.AcademicYear > results[j].AcademicYear {
			best[k] = i
		}
	}
	out := make([]Result, 0, len(best))
	for i, r := range results {
		k := key{r.StudentID, r.SubjectID}
		if best[k] == i {
			out = append(out, r)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
