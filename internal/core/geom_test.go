package core

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal (no overlap)",
			a:        NewRect(0, 0, 1.5, 1),
			b:        NewRect(1.5, 0, 1, 1),
			expected: false,
		},
		{
			name:     "touching vertical (no overlap)",
			a:        NewRect(0, 0, 1, 2.5),
			b:        NewRect(0, 2.5, 1, 1),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(0.99, 0.99, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 2, 1)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 11, 10.5, true},
		{"bottom-left corner", 10, 10, true},
		{"top-right corner", 12, 11, true},
		{"outside left", 9.9, 10.5, false},
		{"outside right", 12.1, 10.5, false},
		{"outside below", 11, 9.9, false},
		{"outside above", 11, 11.1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 2, 4)

	if r.Right() != 7 {
		t.Errorf("Right() = %v, expected 7", r.Right())
	}
	if r.Top() != 14 {
		t.Errorf("Top() = %v, expected 14", r.Top())
	}
	if c := r.Center(); c.X != 6 || c.Y != 12 {
		t.Errorf("Center() = %+v, expected (6, 12)", c)
	}
}

func TestCellRectContains(t *testing.T) {
	r := NewCellRect(10, 10, 20, 15)

	if !r.Contains(10, 10) {
		t.Error("top-left cell should be inside")
	}
	if r.Contains(30, 25) {
		t.Error("bottom-right edge should be exclusive")
	}
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
