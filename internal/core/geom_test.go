package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "separate horizontally",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "separate vertically",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained",
			a:        RectF{X: 0, Y: 0, W: 20, H: 20},
			b:        RectF{X: 5, Y: 5, W: 2.5, H: 2.5},
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	b := CircleBounds(320, 300, 8)
	if b.X != 312 || b.Y != 292 || b.W != 16 || b.H != 16 {
		t.Errorf("CircleBounds() = %+v, expected {312 292 16 16}", b)
	}

	brick := RectF{X: 320, Y: 280, W: 75, H: 20}
	if !CircleBounds(324, 296, 8).Intersects(brick) {
		t.Error("ball at (324, 296) should overlap brick at (320, 280)")
	}
	if CircleBounds(300, 296, 8).Intersects(brick) {
		t.Error("ball at (300, 296) should not overlap brick at (320, 280)")
	}
}

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
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0, 540, 5.5},
		{-5.5, 0, 540, 0},
		{600, 0, 540, 540},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbsF(t *testing.T) {
	if AbsF(-4) != 4 || AbsF(4) != 4 || AbsF(0) != 0 {
		t.Error("AbsF should return the magnitude")
	}
}
