package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vhrabal/planetoids/internal/vec"
)

const dt = 1.0 / 60.0

var testField = Field{Width: 120, Height: 80}

func TestShipThrustAcceleratesAlongFacing(t *testing.T) {
	s := NewShip(testField.Center(), 0)
	s.Rot = 0 // Facing +X

	s.Thrust(dt)
	if s.Vel.X <= 0 {
		t.Fatalf("thrust along +X gave velocity %+v", s.Vel)
	}
	if math.Abs(s.Vel.Y) > 1e-9 {
		t.Fatalf("thrust along +X leaked into Y: %+v", s.Vel)
	}
}

func TestShipSpeedClamped(t *testing.T) {
	s := NewShip(testField.Center(), 0)
	s.Rot = 0
	for i := 0; i < 600; i++ {
		s.Thrust(dt)
	}
	if speed := s.Vel.Len(); speed > ShipMaxSpeed+1e-9 {
		t.Fatalf("speed %v exceeds cap %v", speed, ShipMaxSpeed)
	}
}

func TestShipCoastDecaysVelocity(t *testing.T) {
	s := NewShip(testField.Center(), 0)
	s.Vel = vec.V{X: 10, Y: -4}
	before := s.Vel.Len()

	s.Coast(dt)
	after := s.Vel.Len()
	if after >= before {
		t.Fatalf("coasting did not slow the ship: %v -> %v", before, after)
	}

	// One full second of coasting keeps the ShipDrag fraction of speed.
	s.Vel = vec.V{X: 10}
	for i := 0; i < 60; i++ {
		s.Coast(1.0 / 60.0)
	}
	want := 10 * ShipDrag
	if math.Abs(s.Vel.X-want) > 0.05 {
		t.Fatalf("after 1s of coasting speed = %v, want ~%v", s.Vel.X, want)
	}
}

func TestShipSteerNormalizesRotation(t *testing.T) {
	s := NewShip(testField.Center(), 0)
	for i := 0; i < 600; i++ {
		s.Steer(1, dt)
	}
	if s.Rot < 0 || s.Rot >= 2*math.Pi {
		t.Fatalf("rotation %v outside [0, 2π)", s.Rot)
	}
}

func TestShipTickCountersNeverNegative(t *testing.T) {
	s := NewShip(testField.Center(), 2)
	s.Cooldown = 1
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.Invulnerable != 0 || s.Cooldown != 0 {
		t.Fatalf("counters after ticking: invuln=%d cooldown=%d, want 0/0", s.Invulnerable, s.Cooldown)
	}
	if !s.CanFire() {
		t.Fatal("ship with zero cooldown should be able to fire")
	}
}

func TestAdvanceWrapsAllEntities(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	s := NewShip(vec.V{X: 119.9, Y: 0.1}, 0)
	s.Vel = vec.V{X: 30, Y: -30}
	a := NewAsteroid(rng, 1, vec.V{X: 0.1, Y: 79.9}, TierLarge, math.Pi+math.Pi/4)
	b := NewBullet(2, s)

	for i := 0; i < 240; i++ {
		s.Advance(dt, testField)
		a.Advance(dt, testField)
		b.Advance(dt, testField)
	}

	for name, p := range map[string]vec.V{"ship": s.Pos, "asteroid": a.Pos, "bullet": b.Pos} {
		if p.X < 0 || p.X >= testField.Width || p.Y < 0 || p.Y >= testField.Height {
			t.Errorf("%s position %+v outside field", name, p)
		}
	}
}

func TestBulletExpiresAfterTTL(t *testing.T) {
	s := NewShip(testField.Center(), 0)
	b := NewBullet(1, s)

	for i := 0; i < BulletTTL-1; i++ {
		if b.Advance(dt, testField) {
			t.Fatalf("bullet expired early at frame %d", i+1)
		}
	}
	if !b.Advance(dt, testField) {
		t.Fatal("bullet did not expire after TTL frames")
	}
}

func TestBulletSpawnsAtNoseWithShipMomentum(t *testing.T) {
	s := NewShip(testField.Center(), 0)
	s.Rot = 0
	s.Vel = vec.V{X: 5}

	b := NewBullet(1, s)
	if got, want := b.Pos, s.Nose(); got != want {
		t.Fatalf("bullet spawned at %+v, want nose %+v", got, want)
	}
	if math.Abs(b.Vel.X-(5+BulletSpeed)) > 1e-9 {
		t.Fatalf("bullet velocity %+v, want ship velocity + %v along facing", b.Vel, BulletSpeed)
	}
}

func TestTierSplitChain(t *testing.T) {
	if TierLarge.Split() != TierMedium {
		t.Error("large should split into medium")
	}
	if TierMedium.Split() != TierSmall {
		t.Error("medium should split into small")
	}
	if TierSmall.Split() != 0 {
		t.Error("small should not split")
	}
}

func TestFragmentMatchesChildTier(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	parent := NewAsteroid(rng, 1, testField.Center(), TierLarge, 0.3)

	f := NewFragment(rng, 2, parent, 0.5)
	if f.Tier != TierMedium {
		t.Fatalf("fragment tier = %v, want medium", f.Tier)
	}
	if f.Pos != parent.Pos {
		t.Fatalf("fragment position %+v, want parent position %+v", f.Pos, parent.Pos)
	}
	if f.Radius != TierMedium.Radius() {
		t.Fatalf("fragment radius = %v, want %v", f.Radius, TierMedium.Radius())
	}
	if math.Abs(f.Vel.Len()-TierMedium.Speed()) > 1e-9 {
		t.Fatalf("fragment speed = %v, want %v", f.Vel.Len(), TierMedium.Speed())
	}
}

func TestAsteroidRadiusPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, tier := range []Tier{TierSmall, TierMedium, TierLarge} {
		a := NewAsteroid(rng, 1, testField.Center(), tier, 0)
		if a.Radius <= 0 {
			t.Errorf("%v asteroid has radius %v", tier, a.Radius)
		}
		for _, d := range a.Outline {
			if d <= 0 {
				t.Errorf("%v asteroid has non-positive outline vertex", tier)
			}
		}
	}
}
