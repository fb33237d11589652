package vec

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestAddScale(t *testing.T) {
	v := V{X: 1, Y: 2}.Add(V{X: 3, Y: -1}).Scale(2)
	if !almostEqual(v.X, 8) || !almostEqual(v.Y, 2) {
		t.Fatalf("got %+v, want {8 2}", v)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	v := V{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Fatalf("rotating (1,0) by 90° = %+v, want (0,1)", v)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V{X: 3, Y: 4}
	for _, angle := range []float64{0.1, 1.0, math.Pi, 5.5} {
		r := v.Rotate(angle)
		if !almostEqual(r.Len(), 5) {
			t.Errorf("rotate by %v changed length: got %v, want 5", angle, r.Len())
		}
	}
}

func TestNormalize(t *testing.T) {
	v := V{X: 0, Y: -7}.Normalize()
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, -1) {
		t.Fatalf("got %+v, want (0,-1)", v)
	}
	if !almostEqual(v.Len(), 1) {
		t.Fatalf("normalized length = %v, want 1", v.Len())
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	v := V{}.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Fatalf("zero vector normalized to %+v, want zero vector", v)
	}
}

func TestFromAngleMatchesAngle(t *testing.T) {
	for _, a := range []float64{0, 0.7, math.Pi / 2, 3.0} {
		v := FromAngle(a)
		if !almostEqual(v.Angle(), a) {
			t.Errorf("FromAngle(%v).Angle() = %v", a, v.Angle())
		}
		if !almostEqual(v.Len(), 1) {
			t.Errorf("FromAngle(%v) is not a unit vector", a)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); !almostEqual(got, c.want) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
