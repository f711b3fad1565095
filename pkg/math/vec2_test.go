package math

import (
	"math"
	"testing"
)

const epsilon = 1e-6

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); !almostEqual(got, -5) {
		t.Errorf("Dot: got %v", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); !almostEqual(got, 5) {
		t.Errorf("Length: got %v", got)
	}
	if got := v.Distance(Vec2{3, 4}); !almostEqual(got, 0) {
		t.Errorf("Distance to self: got %v", got)
	}
	if got := (Vec2{0, 0}).Distance(Vec2{0, 7}); !almostEqual(got, 7) {
		t.Errorf("Distance: got %v", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{10, 0}.Normalize()
	if !almostEqual(v.X, 1) || !almostEqual(v.Y, 0) {
		t.Errorf("Normalize: got %v", v)
	}

	// Zero vector stays zero instead of producing NaN.
	z := Vec2{}.Normalize()
	if z != (Vec2{}) {
		t.Errorf("Normalize zero: got %v", z)
	}
}
