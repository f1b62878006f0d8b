// Package fabric counts overlapping rectangular claims on a sheet of fabric.
package fabric

import (
	"errors"
	"fmt"
)

// ErrNoIntactClaim is returned when every claim overlaps another.
var ErrNoIntactClaim = errors.New("fabric: no claim is free of overlaps")

// Claim is a rectangle of W by H square inches whose top-left corner is X
// inches from the left edge and Y inches from the top.
type Claim struct {
	ID int
	X  int
	Y  int
	W  int
	H  int
}

func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.X, c.Y, c.W, c.H)
}

type point struct{ x, y int }

// Fabric maps each square inch to the number of claims covering it.
// Only covered inches are stored.
type Fabric struct {
	cells map[point]int
}

// New creates an empty fabric.
func New() *Fabric {
	return &Fabric{cells: make(map[point]int)}
}

// Build populates a fabric with every claim.
func Build(claims []Claim) *Fabric {
	f := New()
	for _, c := range claims {
		f.Populate(c)
	}
	return f
}

// Populate marks every square inch covered by c.
func (f *Fabric) Populate(c Claim) {
	for dx := 0; dx < c.W; dx++ {
		for dy := 0; dy < c.H; dy++ {
			f.cells[point{c.X + dx, c.Y + dy}]++
		}
	}
}

// Get returns how many claims cover (x, y).
func (f *Fabric) Get(x, y int) int {
	return f.cells[point{x, y}]
}

// Overlapping counts square inches covered by two or more claims.
func (f *Fabric) Overlapping() int {
	n := 0
	for _, v := range f.cells {
		if v > 1 {
			n++
		}
	}
	return n
}

// Count returns the number of square inches in use.
func (f *Fabric) Count() int {
	return len(f.cells)
}

// Uncontended reports whether no other claim covers any inch of c.
// c must already be populated.
func (f *Fabric) Uncontended(c Claim) bool {
	for dx := 0; dx < c.W; dx++ {
		for dy := 0; dy < c.H; dy++ {
			if f.cells[point{c.X + dx, c.Y + dy}] > 1 {
				return false
			}
		}
	}
	return true
}

// Intact returns the first claim that overlaps no other.
func Intact(claims []Claim) (Claim, error) {
	f := Build(claims)
	for _, c := range claims {
		if f.Uncontended(c) {
			return c, nil
		}
	}
	return Claim{}, ErrNoIntactClaim
}
