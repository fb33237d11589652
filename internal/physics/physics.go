// Package physics provides collision tests and broad-phase lookup for a
// toroidal (wrap-around) play field.
package physics

import "math"

// WrapDelta returns the shortest signed separation between two coordinates
// on an axis of the given span. Entities near opposite edges of a wrapping
// field are effectively adjacent, so the wrapped separation is used whenever
// it is shorter than the direct one.
func WrapDelta(a, b, span float64) float64 {
	d := b - a
	if span <= 0 {
		return d
	}
	switch {
	case d > span/2:
		d -= span
	case d < -span/2:
		d += span
	}
	return d
}

// TorusDistanceSq returns the squared shortest distance between two points
// on a torus of dimensions w x h.
func TorusDistanceSq(x1, y1, x2, y2, w, h float64) float64 {
	dx := WrapDelta(x1, x2, w)
	dy := WrapDelta(y1, y2, h)
	return dx*dx + dy*dy
}

// TorusDistance returns the shortest distance between two points on a torus.
func TorusDistance(x1, y1, x2, y2, w, h float64) float64 {
	return math.Sqrt(TorusDistanceSq(x1, y1, x2, y2, w, h))
}

// CirclesOverlap reports whether two circles intersect on a torus of
// dimensions w x h: shortest center distance <= sum of radii.
func CirclesOverlap(x1, y1, r1, x2, y2, r2, w, h float64) bool {
	minDist := r1 + r2
	return TorusDistanceSq(x1, y1, x2, y2, w, h) <= minDist*minDist
}

// Wrap maps a coordinate into [0, span) by toroidal wrap-around. An
// overshoot past either edge re-enters from the opposite edge offset by
// the overshoot; nothing is clamped or reflected.
func Wrap(v, span float64) float64 {
	if span <= 0 {
		return v
	}
	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v
}
