package game

import (
	"math"
	"testing"

	"github.com/vhrabal/planetoids/internal/object"
	"github.com/vhrabal/planetoids/internal/physics"
	"github.com/vhrabal/planetoids/internal/vec"
)

func TestEmptyFieldSpawnsNextWave(t *testing.T) {
	w := newTestWorld(t, nil)

	w.asteroids = w.asteroids[:0]
	w.Step(Control{})

	if got := countTier(w, object.TierLarge); got != 4+WaveIncrement {
		t.Fatalf("next wave has %d large asteroids, want %d", got, 4+WaveIncrement)
	}
	if w.Wave() != 2 {
		t.Fatalf("wave = %d, want 2", w.Wave())
	}

	started := false
	for _, e := range w.Events() {
		if e.Kind == EventWaveStarted && e.Wave == 2 {
			started = true
		}
	}
	if !started {
		t.Fatal("no wave-started event emitted")
	}

	for _, a := range w.asteroids {
		d := physics.TorusDistance(a.Pos.X, a.Pos.Y, w.ship.Pos.X, w.ship.Pos.Y,
			w.field.Width, w.field.Height)
		if d < MinSafeDistance-1e-9 {
			t.Errorf("wave asteroid spawned %.1f units from the ship", d)
		}
	}
}

func TestWaveSpawnsSafelyOnSmallField(t *testing.T) {
	// On a field barely larger than the spawn ring, the ring must shrink
	// to half the span; without the cap the wrapped distance to the ship
	// drops below the safe minimum.
	for seed := int64(0); seed < 50; seed++ {
		w := newTestWorld(t, func(c *Config) {
			c.Width = 60
			c.Height = 60
			c.Seed = seed
		})

		checkSafe := func(wave string) {
			for _, a := range w.asteroids {
				d := physics.TorusDistance(a.Pos.X, a.Pos.Y, w.ship.Pos.X, w.ship.Pos.Y,
					w.field.Width, w.field.Height)
				if d < MinSafeDistance-1e-9 {
					t.Fatalf("seed %d: %s asteroid spawned %.2f units from ship, want >= %v",
						seed, wave, d, MinSafeDistance)
				}
			}
		}
		checkSafe("first-wave")

		// A mid-game wave spawned with the ship off-center, near a corner.
		w.ship.Pos = vec.V{X: 5, Y: 55}
		w.asteroids = w.asteroids[:0]
		w.Step(Control{})
		checkSafe("mid-game")
	}
}

func TestWaveSizeIsCapped(t *testing.T) {
	w := newTestWorld(t, nil)

	for i := 0; i < 20; i++ {
		w.asteroids = w.asteroids[:0]
		w.Step(Control{})
	}

	if got := len(w.asteroids); got != MaxWaveSize {
		t.Fatalf("wave size after many waves = %d, want capped at %d", got, MaxWaveSize)
	}
	if w.waveSize != MaxWaveSize {
		t.Fatalf("waveSize = %d, want %d", w.waveSize, MaxWaveSize)
	}
}

func TestSplitFragmentsDiverge(t *testing.T) {
	w := newTestWorld(t, nil)
	parent := object.NewAsteroid(w.rng, w.allocID(), w.field.Center(), object.TierLarge, 1.0)

	frags := w.split(parent)
	if len(frags) != 2 {
		t.Fatalf("large split into %d fragments, want 2", len(frags))
	}
	for _, f := range frags {
		if f.Tier != object.TierMedium {
			t.Errorf("fragment tier = %v, want medium", f.Tier)
		}
		if f.Pos != parent.Pos {
			t.Errorf("fragment did not inherit parent position")
		}
	}

	// The two fragments leave in visibly different directions.
	angle := math.Abs(frags[0].Vel.Angle() - frags[1].Vel.Angle())
	if angle > math.Pi {
		angle = 2*math.Pi - angle
	}
	if angle < 2*divergenceMin-1e-9 {
		t.Fatalf("fragments diverge by only %.2f rad", angle)
	}
}

func TestSmallSplitsIntoNothing(t *testing.T) {
	w := newTestWorld(t, nil)
	small := object.NewAsteroid(w.rng, w.allocID(), w.field.Center(), object.TierSmall, 0)
	if frags := w.split(small); frags != nil {
		t.Fatalf("small asteroid split into %d fragments, want none", len(frags))
	}
}
