// Package fuel computes launch fuel for spacecraft modules.
package fuel

// Required returns the fuel for a module of the given mass: mass divided by
// three, rounded down, minus two. Results below zero are clamped to zero.
func Required(mass int) int {
	f := mass/3 - 2
	if f < 0 {
		return 0
	}
	return f
}

// Total sums Required over masses.
func Total(masses []int) int {
	sum := 0
	for _, m := range masses {
		sum += Required(m)
	}
	return sum
}

// RequiredRecursive also accounts for the mass of the fuel itself, adding
// fuel for fuel until the increment drops to zero.
func RequiredRecursive(mass int) int {
	sum := 0
	for f := Required(mass); f > 0; f = Required(f) {
		sum += f
	}
	return sum
}

// TotalRecursive sums RequiredRecursive over masses.
func TotalRecursive(masses []int) int {
	sum := 0
	for _, m := range masses {
		sum += RequiredRecursive(m)
	}
	return sum
}
