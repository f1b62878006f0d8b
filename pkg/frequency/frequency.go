// Package frequency calibrates the device by applying frequency changes.
package frequency

import "errors"

// ErrNoRepeat is returned when no frequency is reached twice.
var ErrNoRepeat = errors.New("frequency: no repeated frequency")

// DefaultMaxPasses bounds FirstRepeat when no limit is given.
const DefaultMaxPasses = 1000

// Sum applies every change once, starting from zero.
func Sum(changes []int) int {
	f := 0
	for _, c := range changes {
		f += c
	}
	return f
}

// FirstRepeat cycles through changes and returns the first frequency reached
// twice. The starting frequency 0 counts as reached. maxPasses <= 0 means
// DefaultMaxPasses.
func FirstRepeat(changes []int, maxPasses int) (int, error) {
	if len(changes) == 0 {
		return 0, ErrNoRepeat
	}
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	f := 0
	seen := map[int]struct{}{0: {}}
	for pass := 0; pass < maxPasses; pass++ {
		for _, c := range changes {
			f += c
			if _, ok := seen[f]; ok {
				return f, nil
			}
			seen[f] = struct{}{}
		}
	}
	return 0, ErrNoRepeat
}
