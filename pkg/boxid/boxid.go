// Package boxid checksums warehouse box IDs and finds the two prototype boxes.
package boxid

import (
	"errors"
	"strings"
)

// ErrNoPrototype is returned when no two IDs differ by exactly one character.
var ErrNoPrototype = errors.New("boxid: no pair differs by one character")

// Class records whether some letter appears exactly twice or exactly three times.
type Class struct {
	Twice  bool
	Thrice bool
}

// Classify builds a letter histogram of id.
func Classify(id string) Class {
	counts := make(map[rune]int)
	for _, r := range id {
		counts[r]++
	}
	var c Class
	for _, n := range counts {
		switch n {
		case 2:
			c.Twice = true
		case 3:
			c.Thrice = true
		}
	}
	return c
}

// Checksum multiplies the number of IDs with a doubled letter by the number
// with a tripled letter.
func Checksum(ids []string) int {
	twice, thrice := 0, 0
	for _, id := range ids {
		c := Classify(id)
		if c.Twice {
			twice++
		}
		if c.Thrice {
			thrice++
		}
	}
	return twice * thrice
}

// Diff counts positions where a and b differ, up to the shorter length.
func Diff(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] != rb[i] {
			n++
		}
	}
	return n
}

// Common returns the characters a and b share at the same positions.
func Common(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	var sb strings.Builder
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] == rb[i] {
			sb.WriteRune(ra[i])
		}
	}
	return sb.String()
}

// FindPrototype returns the first pair, in input order, of IDs that differ in
// exactly one position, along with their common letters. IDs of unequal
// length are compared up to the shorter one.
func FindPrototype(ids []string) (a, b, common string, err error) {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if Diff(ids[i], ids[j]) == 1 {
				return ids[i], ids[j], Common(ids[i], ids[j]), nil
			}
		}
	}
	return "", "", "", ErrNoPrototype
}
