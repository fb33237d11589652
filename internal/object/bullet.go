package object

import (
	"github.com/vhrabal/planetoids/internal/vec"
)

// Bullet tuning constants.
const (
	BulletSpeed  = 50.0 // Added to the ship's velocity along its facing
	BulletTTL    = 60   // Frames before a bullet expires on its own
	BulletRadius = 0.5  // Collision radius
)

// Bullet is a projectile fired by the ship. Only the ship fires, so no
// owner reference is kept.
type Bullet struct {
	ID  ID
	Pos vec.V
	Vel vec.V
	TTL int // Frames remaining; the bullet expires when it reaches zero
}

// NewBullet creates a bullet at the ship's nose. It inherits the ship's
// velocity plus the bullet speed along the ship's facing.
func NewBullet(id ID, ship *Ship) *Bullet {
	return &Bullet{
		ID:  id,
		Pos: ship.Nose(),
		Vel: ship.Vel.Add(vec.FromAngle(ship.Rot).Scale(BulletSpeed)),
		TTL: BulletTTL,
	}
}

// Advance integrates one frame of motion, wraps the position and counts
// down the TTL. It returns true once the bullet has expired.
func (b *Bullet) Advance(dt float64, field Field) (expired bool) {
	b.Pos = field.WrapPoint(b.Pos.Add(b.Vel.Scale(dt)))
	b.TTL--
	return b.TTL <= 0
}
