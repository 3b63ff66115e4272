package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanserdaroglu/campushub/internal/app/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mark(studentID, subjectID int64, date string, status models.AttendanceStatus) models.AttendanceMark {
	return models.AttendanceMark{
		StudentID: studentID,
		SubjectID: subjectID,
		Date:      day(date),
		Status:    status,
	}
}

func TestSummarizeCountsLateAsPresence(t *testing.T) {
	marks := []models.AttendanceMark{
		mark(1, 1, "2024-01-08", models.AttendancePresent),
		mark(1, 1, "2024-01-09", models.AttendancePresent),
		mark(1, 1, "2024-01-10", models.AttendanceLate),
		mark(1, 1, "2024-01-11", models.AttendanceAbsent),
	}

	s := Summarize(marks)
	assert.Equal(t, 2, s.PresentCount)
	assert.Equal(t, 1, s.LateCount)
	assert.Equal(t, 1, s.AbsentCount)
	assert.Equal(t, 4, s.TotalMarks)
	// 3 of 4 attended; 75 sits exactly on the inclusive threshold
	assert.Equal(t, 75, s.Percentage)
	assert.True(t, s.GoodStanding)
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalMarks)
	assert.Zero(t, s.Percentage)
	assert.False(t, s.GoodStanding)
}

func TestSummarizePercentageRounding(t *testing.T) {
	marks := []models.AttendanceMark{
		mark(1, 1, "2024-01-08", models.AttendancePresent),
		mark(1, 1, "2024-01-09", models.AttendancePresent),
		mark(1, 1, "2024-01-10", models.AttendanceAbsent),
	}

	s := Summarize(marks)
	// 2/3 = 66.67 rounds to 67
	assert.Equal(t, 67, s.Percentage)
	assert.False(t, s.GoodStanding)
}

func TestSummarizeBySubject(t *testing.T) {
	marks := []models.AttendanceMark{
		mark(1, 10, "2024-01-08", models.AttendancePresent),
		mark(1, 10, "2024-01-09", models.AttendanceAbsent),
		mark(1, 20, "2024-01-08", models.AttendancePresent),
	}

	grouped := SummarizeBySubject(marks)
	require.Len(t, grouped, 2)
	assert.Equal(t, 50, grouped[10].Percentage)
	assert.Equal(t, 100, grouped[20].Percentage)
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	marks := []models.AttendanceMark{
		mark(1, 1, "2024-01-07", models.AttendancePresent),
		mark(1, 1, "2024-01-08", models.AttendancePresent),
		mark(1, 1, "2024-01-10", models.AttendancePresent),
		mark(1, 1, "2024-01-11", models.AttendancePresent),
	}

	got := FilterByDateRange(marks, day("2024-01-08"), day("2024-01-10"))
	require.Len(t, got, 2)
	assert.Equal(t, day("2024-01-08"), got[0].Date)
	assert.Equal(t, day("2024-01-10"), got[1].Date)
}

func TestFilterBySubject(t *testing.T) {
	marks := []models.AttendanceMark{
		mark(1, 10, "2024-01-08", models.AttendancePresent),
		mark(1, 20, "2024-01-08", models.AttendanceLate),
	}

	got := FilterBySubject(marks, 20)
	require.Len(t, got, 1)
	assert.Equal(t, int64(20), got[0].SubjectID)
}

func TestMarkSetRecordUpserts(t *testing.T) {
	set, err := NewMarkSet()
	require.NoError(t, err)

	_, err = set.Record(mark(1, 1, "2024-01-10", models.AttendancePresent))
	require.NoError(t, err)
	stored, err := set.Record(mark(1, 1, "2024-01-10", models.AttendanceAbsent))
	require.NoError(t, err)

	// Exactly one mark for the tuple, second write wins
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, models.AttendanceAbsent, stored.Status)
	assert.Equal(t, models.AttendanceAbsent, set.Marks()[0].Status)
}

func TestMarkSetNormalizesToCalendarDay(t *testing.T) {
	set, err := NewMarkSet()
	require.NoError(t, err)

	morning := models.AttendanceMark{StudentID: 1, SubjectID: 1, Status: models.AttendancePresent,
		Date: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)}
	evening := models.AttendanceMark{StudentID: 1, SubjectID: 1, Status: models.AttendanceLate,
		Date: time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC)}

	_, err = set.Record(morning)
	require.NoError(t, err)
	_, err = set.Record(evening)
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, models.AttendanceLate, set.Marks()[0].Status)
}

func TestMarkSetRejectsUnknownStatus(t *testing.T) {
	set, err := NewMarkSet()
	require.NoError(t, err)

	_, err = set.Record(models.AttendanceMark{StudentID: 1, SubjectID: 1, Date: day("2024-01-10"), Status: "Excused"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewMarkSetDeduplicatesInput(t *testing.T) {
	set, err := NewMarkSet(
		mark(1, 1, "2024-01-10", models.AttendancePresent),
		mark(1, 1, "2024-01-10", models.AttendanceLate),
		mark(2, 1, "2024-01-10", models.AttendancePresent),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, models.AttendanceLate, set.Marks()[0].Status)
}
