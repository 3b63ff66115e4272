package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
)

func TestProgramCode(t *testing.T) {
	tests := []struct {
		program string
		want    string
	}{
		{"Computer Science", "CS"},
		{"B.Tech CSE", "BC"},
		{"Mathematics", "MA"},
		{"Electrical and Electronics Engineering", "EA"},
		{"Z", "ZX"},
		{"", "XX"},
	}
	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			assert.Equal(t, tt.want, programCode(tt.program))
		})
	}
}

func TestShouldRetryRollNumber(t *testing.T) {
	collision := fmt.Errorf("error inserting student: %w", apperrors.ErrRollNumberAlreadyExists)

	// A roll number collision retries until the attempt budget runs out
	for attempt := 0; attempt < rollNumberAllocationRetries; attempt++ {
		assert.True(t, shouldRetryRollNumber(collision, attempt), "attempt %d", attempt)
	}
	assert.False(t, shouldRetryRollNumber(collision, rollNumberAllocationRetries))

	// Other failures never retry
	assert.False(t, shouldRetryRollNumber(errors.New("connection reset"), 0))
	assert.False(t, shouldRetryRollNumber(apperrors.ErrApplicationNotPending, 0))
}
