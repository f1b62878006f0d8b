package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	tests := []struct {
		changes  []int
		expected int
	}{
		{[]int{+1, -2, +3, +1}, 3},
		{[]int{+1, +1, +1}, 3},
		{[]int{+1, +1, -2}, 0},
		{[]int{-1, -2, -3}, -6},
		{nil, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Sum(tt.changes), "changes %v", tt.changes)
	}
}

func TestFirstRepeat(t *testing.T) {
	tests := []struct {
		changes  []int
		expected int
	}{
		{[]int{+1, -2, +3, +1}, 2},
		{[]int{+1, -1}, 0},
		{[]int{+3, +3, +4, -2, -4}, 10},
		{[]int{-6, +3, +8, +5, -6}, 5},
		{[]int{+7, +7, -2, -7, -4}, 14},
	}

	for _, tt := range tests {
		got, err := FirstRepeat(tt.changes, 0)
		require.NoError(t, err, "changes %v", tt.changes)
		assert.Equal(t, tt.expected, got, "changes %v", tt.changes)
	}
}

func TestFirstRepeatNeverRepeats(t *testing.T) {
	_, err := FirstRepeat([]int{+1}, 50)
	assert.ErrorIs(t, err, ErrNoRepeat)

	_, err = FirstRepeat(nil, 0)
	assert.ErrorIs(t, err, ErrNoRepeat)
}
