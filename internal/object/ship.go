package object

import (
	"math"

	"github.com/vhrabal/planetoids/internal/vec"
)

// Ship tuning constants.
const (
	ShipRadius       = 1.5  // Collision circle
	ShipThrustAccel  = 40.0 // Acceleration while thrusting, units/s²
	ShipRotationRate = 5.0  // Radians per second
	ShipMaxSpeed     = 25.0 // Velocity magnitude cap
	ShipDrag         = 0.5  // Fraction of speed kept per second while coasting
	ShipNoseOffset   = 2.0  // Distance from center to the nose, where bullets spawn
)

// Ship is the player-controlled vessel. Exactly one exists per session.
type Ship struct {
	Pos   vec.V
	Vel   vec.V
	Rot   float64 // Facing angle in radians, normalized to [0, 2π)
	Alive bool

	Invulnerable int // Frames of spawn protection remaining
	Cooldown     int // Frames until the next shot is allowed
}

// NewShip creates a live ship at rest at the given position, pointing up,
// with the given invulnerability window in frames.
func NewShip(pos vec.V, invulnFrames int) *Ship {
	return &Ship{
		Pos:          pos,
		Rot:          vec.NormalizeAngle(-math.Pi / 2),
		Alive:        true,
		Invulnerable: invulnFrames,
	}
}

// Steer rotates the ship. dir is -1 for left, +1 for right, 0 for none.
func (s *Ship) Steer(dir float64, dt float64) {
	s.Rot = vec.NormalizeAngle(s.Rot + dir*ShipRotationRate*dt)
}

// Thrust accelerates the ship along its facing, clamped to the max speed.
func (s *Ship) Thrust(dt float64) {
	s.Vel = s.Vel.Add(vec.FromAngle(s.Rot).Scale(ShipThrustAccel * dt))
	if speed := s.Vel.Len(); speed > ShipMaxSpeed {
		s.Vel = s.Vel.Scale(ShipMaxSpeed / speed)
	}
}

// Coast applies drag while the thruster is off: the velocity decays
// multiplicatively so the ship glides to a near stop instead of drifting
// forever.
func (s *Ship) Coast(dt float64) {
	s.Vel = s.Vel.Scale(math.Pow(ShipDrag, dt))
}

// Advance integrates one frame of motion and wraps the position.
func (s *Ship) Advance(dt float64, field Field) {
	s.Pos = field.WrapPoint(s.Pos.Add(s.Vel.Scale(dt)))
}

// Tick counts down the per-frame timers.
func (s *Ship) Tick() {
	if s.Invulnerable > 0 {
		s.Invulnerable--
	}
	if s.Cooldown > 0 {
		s.Cooldown--
	}
}

// CanFire reports whether the fire cooldown has elapsed.
func (s *Ship) CanFire() bool {
	return s.Alive && s.Cooldown == 0
}

// Nose returns the position of the ship's tip, where bullets spawn.
func (s *Ship) Nose() vec.V {
	return s.Pos.Add(vec.FromAngle(s.Rot).Scale(ShipNoseOffset))
}
