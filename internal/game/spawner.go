package game

import (
	"math"

	"github.com/vhrabal/planetoids/internal/object"
	"github.com/vhrabal/planetoids/internal/vec"
)

// spawnWave places n large asteroids on a ring around the ship, evenly
// spread with a random base angle, each at a randomized distance of at
// least MinSafeDistance. Headings are uniformly random.
func (w *World) spawnWave(n int) {
	w.wave++

	base := w.rng.Float64() * 2 * math.Pi
	step := 2 * math.Pi / float64(n)

	// The ring must stay within half the smaller field span, otherwise the
	// wrapped distance to the ship falls below the ring distance.
	maxDist := 1.5 * MinSafeDistance
	if half := math.Min(w.field.Width, w.field.Height) / 2; half < maxDist {
		maxDist = half
	}

	for i := 0; i < n; i++ {
		angle := base + float64(i)*step
		dist := MinSafeDistance + (maxDist-MinSafeDistance)*w.rng.Float64()
		pos := w.field.WrapPoint(w.ship.Pos.Add(vec.FromAngle(angle).Scale(dist)))
		heading := w.rng.Float64() * 2 * math.Pi

		w.asteroids = append(w.asteroids,
			object.NewAsteroid(w.rng, w.allocID(), pos, object.TierLarge, heading))
	}

	w.emit(Event{Kind: EventWaveStarted, Wave: w.wave})
}

// nextWave grows the wave size by the fixed increment, capped, and spawns
// it. Called when the field runs out of asteroids.
func (w *World) nextWave() {
	w.waveSize += WaveIncrement
	if w.waveSize > MaxWaveSize {
		w.waveSize = MaxWaveSize
	}
	w.spawnWave(w.waveSize)
}

// split produces a destroyed asteroid's offspring: two fragments one tier
// down, diverging from the parent's heading by a random angle to each
// side. Small asteroids produce nothing.
func (w *World) split(parent *object.Asteroid) []*object.Asteroid {
	if parent.Tier.Split() == 0 {
		return nil
	}
	div := divergenceMin + w.rng.Float64()*(divergenceMax-divergenceMin)
	return []*object.Asteroid{
		object.NewFragment(w.rng, w.allocID(), parent, div),
		object.NewFragment(w.rng, w.allocID(), parent, -div),
	}
}
