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
		{"right edge (exclusive)", 30, 15, false},
		{"bottom edge (exclusive)", 15, 25, false},
		{"left of rect", 5, 15, false},
		{"above rect", 15, 5, false},
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

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)

	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 8 || cy != 7 {
		t.Errorf("Center() = (%d, %d), expected (8, 7)", cx, cy)
	}
}

func TestIntHelpers(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs() returned wrong value")
	}
	if Min(2, 3) != 2 || Min(3, 2) != 2 {
		t.Error("Min() returned wrong value")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Error("Max() returned wrong value")
	}
}
