package fuel

import "testing"

func TestRequired(t *testing.T) {
	tests := []struct {
		mass     int
		expected int
	}{
		{12, 2},
		{14, 2},
		{1969, 654},
		{100756, 33583},
		{2, 0},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Required(tt.mass); got != tt.expected {
			t.Errorf("Required(%d): expected %d, got %d", tt.mass, tt.expected, got)
		}
	}
}

func TestRequiredRecursive(t *testing.T) {
	tests := []struct {
		mass     int
		expected int
	}{
		{14, 2},
		{1969, 966},
		{100756, 50346},
	}

	for _, tt := range tests {
		if got := RequiredRecursive(tt.mass); got != tt.expected {
			t.Errorf("RequiredRecursive(%d): expected %d, got %d", tt.mass, tt.expected, got)
		}
	}
}

func TestTotals(t *testing.T) {
	masses := []int{12, 14, 1969, 100756}
	if got := Total(masses); got != 2+2+654+33583 {
		t.Errorf("Total: got %d", got)
	}
	if got := TotalRecursive(masses); got != 2+2+966+50346 {
		t.Errorf("TotalRecursive: got %d", got)
	}
	if got := Total(nil); got != 0 {
		t.Errorf("Total(nil): expected 0, got %d", got)
	}
}
