// Package game implements the simulation core: a deterministic
// fixed-timestep state transformer driven by one Control signal per frame.
// Rendering, input devices and transport live outside this package.
package game

import (
	"math/rand"

	"github.com/vhrabal/planetoids/internal/object"
	"github.com/vhrabal/planetoids/internal/physics"
	"github.com/vhrabal/planetoids/internal/vec"
)

// Phase is the session state. GameOver is terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// World is one game session. It is not safe for concurrent use; the frame
// step is the single writer, and readers observe it between completed
// frames via Snapshot.
type World struct {
	field object.Field
	rng   *rand.Rand

	phase Phase
	frame uint64
	score int
	lives int

	wave     int // 1-based wave counter
	waveSize int // Large asteroids in the current wave

	ship      *object.Ship
	asteroids []*object.Asteroid
	bullets   []*object.Bullet
	nextID    object.ID

	grid   *physics.Grid
	events []Event

	// Scratch buffers reused across frames by the collision pass.
	asteroidHits []hitMark
	bulletHits   []bool
}

// NewWorld validates the configuration and creates a session in the
// Playing phase with the ship at the field center and the first wave
// already spawned.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		field:    object.Field{Width: cfg.Width, Height: cfg.Height},
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		lives:    cfg.Lives,
		waveSize: cfg.WaveSize,
		grid:     physics.NewGrid(cfg.Width, cfg.Height, gridCellSize),
	}
	w.ship = object.NewShip(w.field.Center(), InvulnFrames)
	w.spawnWave(w.waveSize)
	return w, nil
}

func (w *World) allocID() object.ID {
	w.nextID++
	return w.nextID
}

// Field returns the play-field bounds.
func (w *World) Field() object.Field { return w.field }

// Phase returns the current session phase.
func (w *World) Phase() Phase { return w.phase }

// Frame returns the number of completed frames.
func (w *World) Frame() uint64 { return w.frame }

// Score returns the session score. It never decreases.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Wave returns the 1-based number of the current wave.
func (w *World) Wave() int { return w.wave }

// Events returns the lifecycle events emitted by the most recent Step.
// The slice is reused; it is valid until the next Step call.
func (w *World) Events() []Event { return w.events }

// ShipView is the read-only render view of the ship.
type ShipView struct {
	Pos          vec.V
	Rot          float64
	Alive        bool
	Invulnerable bool
}

// AsteroidView is the read-only render view of one asteroid.
type AsteroidView struct {
	Pos     vec.V
	Rot     float64
	Tier    object.Tier
	Radius  float64
	Outline []float64 // Shared with the live asteroid; do not mutate
}

// BulletView is the read-only render view of one bullet.
type BulletView struct {
	Pos vec.V
}

// Snapshot is a read-only view of the world for render adapters, taken
// between completed frames.
type Snapshot struct {
	Field     object.Field
	Ship      ShipView
	Asteroids []AsteroidView
	Bullets   []BulletView
	Score     int
	Lives     int
	Wave      int
	Frame     uint64
	Phase     Phase
}

// Snapshot captures the current world state for rendering.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Field: w.field,
		Ship: ShipView{
			Pos:          w.ship.Pos,
			Rot:          w.ship.Rot,
			Alive:        w.ship.Alive,
			Invulnerable: w.ship.Invulnerable > 0,
		},
		Asteroids: make([]AsteroidView, 0, len(w.asteroids)),
		Bullets:   make([]BulletView, 0, len(w.bullets)),
		Score:     w.score,
		Lives:     w.lives,
		Wave:      w.wave,
		Frame:     w.frame,
		Phase:     w.phase,
	}
	for _, a := range w.asteroids {
		snap.Asteroids = append(snap.Asteroids, AsteroidView{
			Pos:     a.Pos,
			Rot:     a.Rot,
			Tier:    a.Tier,
			Radius:  a.Radius,
			Outline: a.Outline,
		})
	}
	for _, b := range w.bullets {
		snap.Bullets = append(snap.Bullets, BulletView{Pos: b.Pos})
	}
	return snap
}
