package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectFromBounds(t *testing.T) {
	r := RectFromBounds(1, 3, 20, 15)

	if r.W != 20 || r.H != 13 {
		t.Errorf("RectFromBounds size = %dx%d, expected 20x13", r.W, r.H)
	}
	if !r.Contains(20, 15) {
		t.Error("inclusive max corner should be contained")
	}
	if r.Contains(21, 15) || r.Contains(20, 16) {
		t.Error("cells past the max corner should not be contained")
	}
	if r.Empty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !RectFromBounds(5, 5, 4, 9).Empty() {
		t.Error("inverted bounds should be empty")
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by int
		tol            int
		expected       bool
	}{
		{"same point", 35, 70, 35, 70, 0, true},
		{"inside on both axes", 35, 70, 50, 80, 17, true},
		{"exactly at tolerance", 0, 0, 17, 17, 17, true},
		{"one axis outside", 0, 0, 18, 0, 17, false},
		{"adjacent grid cell", 0, 0, 35, 0, 27, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Within(tc.ax, tc.ay, tc.bx, tc.by, tc.tol); got != tc.expected {
				t.Errorf("Within() = %v, expected %v", got, tc.expected)
			}
			if got := Within(tc.bx, tc.by, tc.ax, tc.ay, tc.tol); got != tc.expected {
				t.Errorf("Within() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
