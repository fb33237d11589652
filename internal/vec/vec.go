// Package vec provides 2D vector math for the simulation.
package vec

import "math"

// V is a 2D vector (or point) in world units.
type V struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing in the direction of angle (radians).
func FromAngle(angle float64) V {
	return V{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o.
func (v V) Add(o V) V {
	return V{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v V) Sub(o V) V {
	return V{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v V) Scale(s float64) V {
	return V{X: v.X * s, Y: v.Y * s}
}

// Rotate returns v rotated by angle radians.
func (v V) Rotate(angle float64) V {
	sin, cos := math.Sincos(angle)
	return V{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Len returns the magnitude of v.
func (v V) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared magnitude of v.
// Use this when comparing distances to avoid the sqrt cost.
func (v V) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v V) Normalize() V {
	l := v.Len()
	if l == 0 {
		return V{}
	}
	return V{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of v in radians.
func (v V) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// NormalizeAngle maps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
