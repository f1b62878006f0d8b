// Package guard analyzes the guard post log: who sleeps, and on which minute
// of the midnight hour.
package guard

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrMalformedLog = errors.New("guard: malformed log")
	ErrNoSleep      = errors.New("guard: no guard ever fell asleep")
)

// Action is what happened at an Event.
type Action int

const (
	BeginShift Action = iota
	FallAsleep
	WakeUp
)

func (a Action) String() string {
	switch a {
	case BeginShift:
		return "begins shift"
	case FallAsleep:
		return "falls asleep"
	case WakeUp:
		return "wakes up"
	}
	return "?"
}

// Event is one log record. Guard is set only for BeginShift.
type Event struct {
	Time   time.Time
	Action Action
	Guard  int
}

func (e Event) String() string {
	ts := e.Time.Format("[2006-01-02 15:04]")
	if e.Action == BeginShift {
		return fmt.Sprintf("%s Guard #%d begins shift", ts, e.Guard)
	}
	return ts + " " + e.Action.String()
}

// Minutes counts, per minute of the midnight hour, the nights a guard was asleep.
type Minutes [60]int

// Total is the number of minutes asleep across all nights.
func (m *Minutes) Total() int {
	sum := 0
	for _, n := range m {
		sum += n
	}
	return sum
}

// Sleepiest returns the minute most often slept and how often. Ties go to
// the earlier minute.
func (m *Minutes) Sleepiest() (minute, count int) {
	for i, n := range m {
		if n > count {
			minute, count = i, n
		}
	}
	return minute, count
}

// Report holds the sleep histogram of every guard seen on shift.
type Report struct {
	Sleep map[int]*Minutes
}

// Guards returns the guard IDs in ascending order.
func (r *Report) Guards() []int {
	ids := make([]int, 0, len(r.Sleep))
	for id := range r.Sleep {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Analyze orders events by time and attributes each sleep interval to the
// guard on shift. Sleep and wake events must fall in the midnight hour.
func Analyze(events []Event) (*Report, error) {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		return a.Time.Compare(b.Time)
	})

	r := &Report{Sleep: make(map[int]*Minutes)}
	current := -1
	asleepAt := -1

	for _, e := range sorted {
		switch e.Action {
		case BeginShift:
			if asleepAt >= 0 {
				return nil, fmt.Errorf("%w: guard #%d still asleep at %s", ErrMalformedLog, current, e)
			}
			current = e.Guard
			if _, ok := r.Sleep[current]; !ok {
				r.Sleep[current] = &Minutes{}
			}

		case FallAsleep:
			if current < 0 {
				return nil, fmt.Errorf("%w: no guard on shift at %s", ErrMalformedLog, e)
			}
			if asleepAt >= 0 {
				return nil, fmt.Errorf("%w: guard #%d already asleep at %s", ErrMalformedLog, current, e)
			}
			if e.Time.Hour() != 0 {
				return nil, fmt.Errorf("%w: sleep outside midnight hour at %s", ErrMalformedLog, e)
			}
			asleepAt = e.Time.Minute()

		case WakeUp:
			if asleepAt < 0 {
				return nil, fmt.Errorf("%w: wake without sleep at %s", ErrMalformedLog, e)
			}
			if e.Time.Hour() != 0 || e.Time.Minute() < asleepAt {
				return nil, fmt.Errorf("%w: wake outside midnight hour at %s", ErrMalformedLog, e)
			}
			m := r.Sleep[current]
			for i := asleepAt; i < e.Time.Minute(); i++ {
				m[i]++
			}
			asleepAt = -1

		default:
			return nil, fmt.Errorf("%w: unknown action %d", ErrMalformedLog, e.Action)
		}
	}

	if asleepAt >= 0 {
		return nil, fmt.Errorf("%w: log ends with guard #%d asleep", ErrMalformedLog, current)
	}
	return r, nil
}

// Strategy1 picks the guard with the most minutes asleep and the minute that
// guard was asleep most often.
func (r *Report) Strategy1() (guard, minute int, err error) {
	best := -1
	for _, id := range r.Guards() {
		if t := r.Sleep[id].Total(); t > best {
			guard, best = id, t
		}
	}
	if best <= 0 {
		return 0, 0, ErrNoSleep
	}
	minute, _ = r.Sleep[guard].Sleepiest()
	return guard, minute, nil
}

// Strategy2 picks the guard most frequently asleep on the same minute.
func (r *Report) Strategy2() (guard, minute int, err error) {
	best := 0
	for _, id := range r.Guards() {
		if m, n := r.Sleep[id].Sleepiest(); n > best {
			guard, minute, best = id, m, n
		}
	}
	if best == 0 {
		return 0, 0, ErrNoSleep
	}
	return guard, minute, nil
}
