// Package object defines the entities of the simulation: the player Ship,
// Asteroids and Bullets. Entities are plain structs mutated by the game
// step; there is no open-ended entity hierarchy.
package object

import (
	"github.com/vhrabal/planetoids/internal/physics"
	"github.com/vhrabal/planetoids/internal/vec"
)

// ID identifies an asteroid or bullet within one game session.
type ID uint64

// Field is the toroidal play area. Positions live in [0, Width) x [0, Height).
type Field struct {
	Width  float64
	Height float64
}

// Center returns the middle of the field.
func (f Field) Center() vec.V {
	return vec.V{X: f.Width / 2, Y: f.Height / 2}
}

// WrapPoint maps a point back into the field by toroidal wrap-around.
func (f Field) WrapPoint(p vec.V) vec.V {
	return vec.V{
		X: physics.Wrap(p.X, f.Width),
		Y: physics.Wrap(p.Y, f.Height),
	}
}
