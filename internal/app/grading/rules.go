package grading

// Marks ranges. Internal assessment is out of 30, the external exam out
// of 70, so totals always land in [0,100].
const (
	MaxInternalMarks = 30
	MaxExternalMarks = 70
)

// PassMark is the minimum total for a passing result. It coincides with
// the D band on purpose: a total of exactly 40 earns a D and passes.
const PassMark = 40

// Band maps a minimum total to a letter grade and grade point
type Band struct {
	MinTotal int
	Grade    string
	Point    int
}

// bands is evaluated top-down, first match wins. Lower bounds are
// inclusive.
var bands = []Band{
	{90, "A+", 10},
	{80, "A", 9},
	{70, "B+", 8},
	{60, "B", 7},
	{50, "C", 6},
	{40, "D", 5},
	{0, "F", 0},
}

// GradeFor returns the letter grade and grade point for a total mark
func GradeFor(total int) (grade string, point int) {
	for _, b := range bands {
		if total >= b.MinTotal {
			return b.Grade, b.Point
		}
	}
	// total < 0 never reaches here through ComputeGrade; keep the F
	// fallback for direct callers.
	return "F", 0
}

// Bands returns a copy of the grade table, lowest bound last
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}
