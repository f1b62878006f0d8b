package intcode

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// searchTape computes tape[noun] + tape[verb]; addresses past 7 fault.
var searchTape = Tape{1, 0, 0, 0, 99, 10, 20, 30}

func TestSearchFindsUniquePair(t *testing.T) {
	defer goleak.VerifyNone(t)

	noun, verb, err := Search(context.Background(), searchTape, 60, SearchOptions{Workers: 4})
	require.NoError(t, err)
	assert.Equal(t, 7, noun)
	assert.Equal(t, 7, verb)

	// the candidate tape is untouched
	assert.Equal(t, Tape{1, 0, 0, 0, 99, 10, 20, 30}, searchTape)
}

func TestSearchMatchesRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	noun, verb, err := Search(context.Background(), searchTape, 50, SearchOptions{Max: 10})
	require.NoError(t, err)

	final, err := Run(searchTape, Patch{1: noun, 2: verb})
	require.NoError(t, err)
	assert.Equal(t, 50, final[0])
}

func TestSearchNoSolution(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, _, err := Search(context.Background(), searchTape, 1000, SearchOptions{Max: 20, MaxSteps: 10})
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSearchCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Search(ctx, searchTape, 60, SearchOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchShortTape(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, _, err := Search(context.Background(), Tape{99, 0}, 0, SearchOptions{Max: 3})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
