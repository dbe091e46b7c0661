package core

import "testing"

func TestOverlaps(t *testing.T) {
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
			name:     "adjacent horizontal (inclusive)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "adjacent vertical (inclusive)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "corner touch (inclusive)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: true,
		},
		{
			name:     "just past the edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10.5, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "obstacle above playfield",
			a:        NewRect(180, 500, 40, 80),
			b:        NewRect(180, -80, 50, 80),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Symmetry
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Rect.Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapsUnitAdjacent(t *testing.T) {
	a := NewRect(3, 7, 1, 1)
	b := NewRect(a.X+a.W, 7, 1, 1)
	if !Overlaps(a, b) {
		t.Error("unit rects sharing an edge should overlap")
	}
}

func TestRectClampTo(t *testing.T) {
	tests := []struct {
		name  string
		in    Rect
		wantX float64
		wantY float64
	}{
		{"inside", NewRect(10, 10, 40, 80), 10, 10},
		{"left of bounds", NewRect(-6, 10, 40, 80), 0, 10},
		{"right of bounds", NewRect(395, 10, 40, 80), 360, 10},
		{"above bounds", NewRect(10, -3, 40, 80), 10, 0},
		{"below bounds", NewRect(10, 590, 40, 80), 10, 520},
		{"wider than bounds", NewRect(50, 0, 500, 80), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.ClampTo(400, 600)
			if got.X != tc.wantX || got.Y != tc.wantY {
				t.Errorf("ClampTo() = (%v, %v), expected (%v, %v)", got.X, got.Y, tc.wantX, tc.wantY)
			}
			if got.W != tc.in.W || got.H != tc.in.H {
				t.Errorf("ClampTo() changed size to %vx%v", got.W, got.H)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %v, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, expected 60", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 25 || cy != 40 {
		t.Errorf("Center() = (%v, %v), expected (25, 40)", cx, cy)
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
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %v, expected 0.25", got)
	}
}
