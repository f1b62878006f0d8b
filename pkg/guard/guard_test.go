package guard

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, stamp string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", stamp)
	require.NoError(t, err)
	return ts
}

func sampleLog(t *testing.T) []Event {
	return []Event{
		{Time: at(t, "1518-11-01 00:00"), Action: BeginShift, Guard: 10},
		{Time: at(t, "1518-11-01 00:05"), Action: FallAsleep},
		{Time: at(t, "1518-11-01 00:25"), Action: WakeUp},
		{Time: at(t, "1518-11-01 00:30"), Action: FallAsleep},
		{Time: at(t, "1518-11-01 00:55"), Action: WakeUp},
		{Time: at(t, "1518-11-01 23:58"), Action: BeginShift, Guard: 99},
		{Time: at(t, "1518-11-02 00:40"), Action: FallAsleep},
		{Time: at(t, "1518-11-02 00:50"), Action: WakeUp},
		{Time: at(t, "1518-11-03 00:05"), Action: BeginShift, Guard: 10},
		{Time: at(t, "1518-11-03 00:24"), Action: FallAsleep},
		{Time: at(t, "1518-11-03 00:29"), Action: WakeUp},
		{Time: at(t, "1518-11-04 00:02"), Action: BeginShift, Guard: 99},
		{Time: at(t, "1518-11-04 00:36"), Action: FallAsleep},
		{Time: at(t, "1518-11-04 00:46"), Action: WakeUp},
		{Time: at(t, "1518-11-05 00:03"), Action: BeginShift, Guard: 99},
		{Time: at(t, "1518-11-05 00:45"), Action: FallAsleep},
		{Time: at(t, "1518-11-05 00:55"), Action: WakeUp},
	}
}

func TestAnalyzeSample(t *testing.T) {
	r, err := Analyze(sampleLog(t))
	require.NoError(t, err)

	assert.Equal(t, []int{10, 99}, r.Guards())
	assert.Equal(t, 50, r.Sleep[10].Total())
	assert.Equal(t, 30, r.Sleep[99].Total())

	guard, minute, err := r.Strategy1()
	require.NoError(t, err)
	assert.Equal(t, 10, guard)
	assert.Equal(t, 24, minute)

	guard, minute, err = r.Strategy2()
	require.NoError(t, err)
	assert.Equal(t, 99, guard)
	assert.Equal(t, 45, minute)
}

func TestAnalyzeUnsortedInput(t *testing.T) {
	events := sampleLog(t)
	rand.New(rand.NewSource(42)).Shuffle(len(events), func(i, j int) {
		events[i], events[j] = events[j], events[i]
	})

	r, err := Analyze(events)
	require.NoError(t, err)
	guard, minute, err := r.Strategy1()
	require.NoError(t, err)
	assert.Equal(t, 240, guard*minute)
}

func TestAnalyzeMalformed(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
	}{
		{"sleep before any shift", []Event{
			{Time: at(t, "1518-11-01 00:05"), Action: FallAsleep},
		}},
		{"wake without sleep", []Event{
			{Time: at(t, "1518-11-01 00:00"), Action: BeginShift, Guard: 1},
			{Time: at(t, "1518-11-01 00:05"), Action: WakeUp},
		}},
		{"asleep twice", []Event{
			{Time: at(t, "1518-11-01 00:00"), Action: BeginShift, Guard: 1},
			{Time: at(t, "1518-11-01 00:05"), Action: FallAsleep},
			{Time: at(t, "1518-11-01 00:06"), Action: FallAsleep},
		}},
		{"ends asleep", []Event{
			{Time: at(t, "1518-11-01 00:00"), Action: BeginShift, Guard: 1},
			{Time: at(t, "1518-11-01 00:05"), Action: FallAsleep},
		}},
		{"shift change while asleep", []Event{
			{Time: at(t, "1518-11-01 00:00"), Action: BeginShift, Guard: 1},
			{Time: at(t, "1518-11-01 00:05"), Action: FallAsleep},
			{Time: at(t, "1518-11-01 00:10"), Action: BeginShift, Guard: 2},
		}},
		{"sleep outside midnight hour", []Event{
			{Time: at(t, "1518-11-01 00:00"), Action: BeginShift, Guard: 1},
			{Time: at(t, "1518-11-01 01:05"), Action: FallAsleep},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.events)
			assert.ErrorIs(t, err, ErrMalformedLog)
		})
	}
}

func TestNobodySleeps(t *testing.T) {
	r, err := Analyze([]Event{{Time: at(t, "1518-11-01 00:00"), Action: BeginShift, Guard: 7}})
	require.NoError(t, err)

	_, _, err = r.Strategy1()
	assert.ErrorIs(t, err, ErrNoSleep)
	_, _, err = r.Strategy2()
	assert.ErrorIs(t, err, ErrNoSleep)
}

func TestEventString(t *testing.T) {
	e := Event{Time: at(t, "1518-11-01 00:00"), Action: BeginShift, Guard: 10}
	assert.Equal(t, "[1518-11-01 00:00] Guard #10 begins shift", e.String())
	e = Event{Time: at(t, "1518-11-01 00:25"), Action: WakeUp}
	assert.Equal(t, "[1518-11-01 00:25] wakes up", e.String())
}
