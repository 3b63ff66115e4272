package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeForBandBoundaries(t *testing.T) {
	tests := []struct {
		total     int
		wantGrade string
		wantPoint int
	}{
		{100, "A+", 10},
		{90, "A+", 10},
		{89, "A", 9},
		{80, "A", 9},
		{79, "B+", 8},
		{70, "B+", 8},
		{69, "B", 7},
		{60, "B", 7},
		{59, "C", 6},
		{50, "C", 6},
		{49, "D", 5},
		{40, "D", 5},
		{39, "F", 0},
		{0, "F", 0},
	}
	for _, tt := range tests {
		grade, point := GradeFor(tt.total)
		assert.Equal(t, tt.wantGrade, grade, "total=%d", tt.total)
		assert.Equal(t, tt.wantPoint, point, "total=%d", tt.total)
	}
}

func TestGradePointsAreMonotonic(t *testing.T) {
	prev := -1
	for total := 0; total <= 100; total++ {
		_, point := GradeFor(total)
		assert.GreaterOrEqual(t, point, prev, "grade point dropped at total=%d", total)
		prev = point
	}
}

func TestBandsReturnsACopy(t *testing.T) {
	b := Bands()
	b[0].Point = 0

	grade, point := GradeFor(95)
	assert.Equal(t, "A+", grade)
	assert.Equal(t, 10, point)
}
