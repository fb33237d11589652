package object

import (
	"math"
	"math/rand"

	"github.com/vhrabal/planetoids/internal/vec"
)

// Tier is the asteroid size class. Splitting strictly decreases the tier;
// small asteroids vanish instead of splitting.
type Tier int

const (
	TierSmall Tier = iota + 1
	TierMedium
	TierLarge
)

// Split returns the tier of this tier's fragments, or 0 if it has none.
func (t Tier) Split() Tier {
	if t <= TierSmall {
		return 0
	}
	return t - 1
}

func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

var tierRadii = map[Tier]float64{
	TierSmall:  1.5,
	TierMedium: 3.0,
	TierLarge:  5.0,
}

// Smaller rocks drift faster.
var tierSpeeds = map[Tier]float64{
	TierSmall:  15.0,
	TierMedium: 10.0,
	TierLarge:  6.0,
}

// Radius returns the collision radius for the tier.
func (t Tier) Radius() float64 {
	return tierRadii[t]
}

// Speed returns the drift speed for the tier.
func (t Tier) Speed() float64 {
	return tierSpeeds[t]
}

// Asteroid is a drifting, destructible rock. Its rotation and outline are
// cosmetic; collisions use the circle of Radius around Pos.
type Asteroid struct {
	ID      ID
	Pos     vec.V
	Vel     vec.V
	Rot     float64 // Cosmetic rotation angle
	Spin    float64 // Rotation speed, radians/s
	Tier    Tier
	Radius  float64
	Outline []float64 // Per-vertex distances from center, for rendering
}

// NewAsteroid creates an asteroid of the given tier heading in the given
// direction at the tier's drift speed. Randomness (spin, outline) comes
// from rng so that seeded sessions replay identically.
func NewAsteroid(rng *rand.Rand, id ID, pos vec.V, tier Tier, heading float64) *Asteroid {
	radius := tier.Radius()
	return &Asteroid{
		ID:      id,
		Pos:     pos,
		Vel:     vec.FromAngle(heading).Scale(tier.Speed()),
		Rot:     rng.Float64() * 2 * math.Pi,
		Spin:    (rng.Float64() - 0.5) * 2.0,
		Tier:    tier,
		Radius:  radius,
		Outline: randomOutline(rng, radius),
	}
}

// NewFragment creates a split offspring at the parent's position. The
// fragment keeps the parent's speed character: its velocity is the parent's
// rotated by the divergence angle and rescaled to the child tier's speed.
func NewFragment(rng *rand.Rand, id ID, parent *Asteroid, divergence float64) *Asteroid {
	tier := parent.Tier.Split()
	radius := tier.Radius()

	dir := parent.Vel.Rotate(divergence).Normalize()
	if dir == (vec.V{}) {
		dir = vec.FromAngle(rng.Float64() * 2 * math.Pi)
	}

	return &Asteroid{
		ID:      id,
		Pos:     parent.Pos,
		Vel:     dir.Scale(tier.Speed()),
		Rot:     rng.Float64() * 2 * math.Pi,
		Spin:    (rng.Float64() - 0.5) * 2.0,
		Tier:    tier,
		Radius:  radius,
		Outline: randomOutline(rng, radius),
	}
}

// randomOutline generates 8-12 vertex distances varied by ±30% so each
// rock renders as a distinct irregular polygon.
func randomOutline(rng *rand.Rand, radius float64) []float64 {
	n := 8 + rng.Intn(5)
	outline := make([]float64, n)
	for i := range outline {
		outline[i] = radius * (0.7 + rng.Float64()*0.6)
	}
	return outline
}

// Advance integrates one frame of drift and spin and wraps the position.
func (a *Asteroid) Advance(dt float64, field Field) {
	a.Pos = field.WrapPoint(a.Pos.Add(a.Vel.Scale(dt)))
	a.Rot = vec.NormalizeAngle(a.Rot + a.Spin*dt)
}
