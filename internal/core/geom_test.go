package core

import (
	"math"
	"testing"
)

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
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 30, 10)
	if r.X != 25 || r.Y != 7 || r.Right() != 55 || r.Bottom() != 17 {
		t.Errorf("CenteredRect = %+v", r)
	}
}

func TestViewportToCell(t *testing.T) {
	v := Viewport{HalfW: 640, HalfH: 360, Cols: 128, Rows: 36}

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"top-left corner", -640, 360, 0, 0},
		{"bottom-right corner", 640, -360, 127, 35},
		{"origin", 0, 0, 64, 18},
		{"just left of origin", -0.1, 0.1, 63, 17},
		{"ground row", 0, -296, 64, 32},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := v.ToCell(tc.x, tc.y)
			if col != tc.col || row != tc.row {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{HalfW: 640, HalfH: 360, Cols: 100, Rows: 30}

	for _, p := range [][2]int{{0, 0}, {99, 29}, {50, 15}, {13, 7}} {
		x, y := v.ToWorld(p[0], p[1])
		col, row := v.ToCell(x, y)
		if col != p[0] || row != p[1] {
			t.Errorf("cell %v -> world (%f, %f) -> cell (%d, %d)", p, x, y, col, row)
		}
	}
}

func TestViewportScale(t *testing.T) {
	v := Viewport{HalfW: 640, HalfH: 360, Cols: 128, Rows: 36}

	cw, ch := v.CellSize()
	if cw != 10 || ch != 20 {
		t.Errorf("CellSize() = (%f, %f), expected (10, 20)", cw, ch)
	}
	if got := v.Cells(32); got != 3.2 {
		t.Errorf("Cells(32) = %f, expected 3.2", got)
	}
	if got := v.Aspect(); math.Abs(got-2) > 1e-12 {
		t.Errorf("Aspect() = %f, expected 2", got)
	}

	var empty Viewport
	if col, row := empty.ToCell(10, 10); col != 0 || row != 0 {
		t.Error("empty viewport should project to the origin cell")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if ClampF(-5.5, 0, 10) != 0 || ClampF(15.5, 0, 10) != 10 {
		t.Error("ClampF should clamp to bounds")
	}
	if Abs(-5) != 5 || Abs(5) != 5 {
		t.Error("Abs should drop the sign")
	}
}

func TestParseNames(t *testing.T) {
	if c, ok := ParseColor(" Bright-Red "); !ok || c != ColorBrightRed {
		t.Errorf("ParseColor = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("unknown color should not parse")
	}
	if ColorOrange.String() != "orange" {
		t.Errorf("ColorOrange.String() = %q", ColorOrange.String())
	}

	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("none"); ok {
		t.Error("none is not bindable")
	}
}
