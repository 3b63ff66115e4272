package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanserdaroglu/campushub/internal/app/models"
)

func TestComputeGrade(t *testing.T) {
	tests := []struct {
		name       string
		internal   int
		external   int
		wantTotal  int
		wantGrade  string
		wantPoint  int
		wantStatus Status
	}{
		{"top band", 30, 60, 90, "A+", 10, StatusPass},
		{"A band", 25, 58, 83, "A", 9, StatusPass},
		{"B+ band", 20, 50, 70, "B+", 8, StatusPass},
		{"B band", 20, 45, 65, "B", 7, StatusPass},
		{"C band", 15, 40, 55, "C", 6, StatusPass},
		{"pass boundary at 40 is a D", 10, 30, 40, "D", 5, StatusPass},
		{"just below pass boundary", 10, 29, 39, "F", 0, StatusFail},
		{"zero marks", 0, 0, 0, "F", 0, StatusFail},
		{"full marks", 30, 70, 100, "A+", 10, StatusPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeGrade(tt.internal, tt.external)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalMarks)
			assert.Equal(t, tt.wantGrade, res.Grade)
			assert.Equal(t, tt.wantPoint, res.GradePoint)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestComputeGradeRejectsOutOfRangeMarks(t *testing.T) {
	tests := []struct {
		name     string
		internal int
		external int
	}{
		{"negative internal", -1, 50},
		{"internal above 30", 31, 50},
		{"negative external", 10, -1},
		{"external above 70", 10, 71},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeGrade(tt.internal, tt.external)
			assert.ErrorIs(t, err, ErrInvalidMarks)
		})
	}
}

func TestComputeSemesterSummaryWeighting(t *testing.T) {
	results := []Result{
		{Semester: 3, AcademicYear: "2024-2025", Credits: 4, GradePoint: 10, Status: StatusPass},
		{Semester: 3, AcademicYear: "2024-2025", Credits: 2, GradePoint: 6, Status: StatusPass},
	}

	summary, err := ComputeSemesterSummary(results)
	require.NoError(t, err)

	// (10*4 + 6*2) / 6 = 8.666... rounded to two decimals
	assert.Equal(t, 8.67, summary.SGPA)
	assert.Equal(t, 6, summary.TotalCredits)
	assert.Equal(t, 6, summary.EarnedCredits)
	assert.Equal(t, 3, summary.Semester)
	assert.Equal(t, "2024-2025", summary.AcademicYear)
}

func TestComputeSemesterSummaryFailedSubjectCredits(t *testing.T) {
	results := []Result{
		{Credits: 4, GradePoint: 8, Status: StatusPass},
		{Credits: 3, GradePoint: 0, Status: StatusFail},
	}

	summary, err := ComputeSemesterSummary(results)
	require.NoError(t, err)

	// A failed subject still counts toward attempted credits but not
	// earned ones.
	assert.Equal(t, 7, summary.TotalCredits)
	assert.Equal(t, 4, summary.EarnedCredits)
	assert.Equal(t, 4.57, summary.SGPA)
}

func TestComputeSemesterSummaryEmptyInput(t *testing.T) {
	summary, err := ComputeSemesterSummary(nil)
	require.NoError(t, err)
	assert.Zero(t, summary.SGPA)
	assert.Zero(t, summary.TotalCredits)
	assert.Zero(t, summary.EarnedCredits)
}

func TestComputeSemesterSummaryRejectsBadCredits(t *testing.T) {
	_, err := ComputeSemesterSummary([]Result{{Credits: 0, GradePoint: 9, Status: StatusPass}})
	assert.ErrorIs(t, err, ErrInconsistentCredits)

	_, err = ComputeSemesterSummary([]Result{{Credits: -2, GradePoint: 9, Status: StatusPass}})
	assert.ErrorIs(t, err, ErrInconsistentCredits)
}

func TestComputeTranscriptSummaryMatchesSemesterMethod(t *testing.T) {
	results := []Result{
		{StudentID: 1, SubjectID: 1, AcademicYear: "2023-2024", Credits: 4, GradePoint: 10, Status: StatusPass},
		{StudentID: 1, SubjectID: 2, AcademicYear: "2023-2024", Credits: 2, GradePoint: 6, Status: StatusPass},
	}

	transcript, err := ComputeTranscriptSummary(results, AllAttempts)
	require.NoError(t, err)
	semester, err := ComputeSemesterSummary(results)
	require.NoError(t, err)

	assert.Equal(t, semester.SGPA, transcript.CGPA)
	assert.Equal(t, semester.TotalCredits, transcript.TotalCredits)
	assert.Equal(t, semester.EarnedCredits, transcript.EarnedCredits)
}

func TestComputeTranscriptSummaryRetakePolicies(t *testing.T) {
	results := []Result{
		{StudentID: 1, SubjectID: 7, AcademicYear: "2022-2023", Credits: 4, GradePoint: 0, Status: StatusFail},
		{StudentID: 1, SubjectID: 8, AcademicYear: "2022-2023", Credits: 4, GradePoint: 8, Status: StatusPass},
		{StudentID: 1, SubjectID: 7, AcademicYear: "2023-2024", Credits: 4, GradePoint: 7, Status: StatusPass},
	}

	all, err := ComputeTranscriptSummary(results, AllAttempts)
	require.NoError(t, err)
	assert.Equal(t, 12, all.TotalCredits)
	assert.Equal(t, 8, all.EarnedCredits)
	assert.Equal(t, 5.0, all.CGPA) // (0+32+28)/12

	latest, err := ComputeTranscriptSummary(results, LatestAttemptOnly)
	require.NoError(t, err)
	assert.Equal(t, 8, latest.TotalCredits)
	assert.Equal(t, 8, latest.EarnedCredits)
	assert.Equal(t, 7.5, latest.CGPA) // (32+28)/8
}

func TestResultFromEntry(t *testing.T) {
	remarks := "good attempt"
	entry := &models.MarksEntry{
		StudentID:     11,
		SubjectID:     5,
		Semester:      2,
		AcademicYear:  "2024-2025",
		InternalMarks: 24,
		ExternalMarks: 61,
		Remarks:       &remarks,
	}
	subject := &models.Subject{ID: 5, Code: "MA201", Name: "Linear Algebra", Credits: 3}

	res, err := ResultFromEntry(entry, subject)
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.StudentID)
	assert.Equal(t, "MA201", res.SubjectCode)
	assert.Equal(t, 3, res.Credits)
	assert.Equal(t, 85, res.TotalMarks)
	assert.Equal(t, "A", res.Grade)
	assert.Equal(t, StatusPass, res.Status)
}

func TestPublishFlipsFlagAndIsIdempotent(t *testing.T) {
	entries := []models.MarksEntry{
		{ID: 1, IsPublished: false},
		{ID: 2, IsPublished: true},
	}

	published := Publish(entries)
	require.Len(t, published, 2)
	assert.True(t, published[0].IsPublished)
	assert.True(t, published[1].IsPublished)

	// Input slice is untouched
	assert.False(t, entries[0].IsPublished)

	again := Publish(published)
	assert.Equal(t, published, again)
}
