package game

import (
	"errors"
	"fmt"

	"github.com/vhrabal/planetoids/internal/object"
)

// Fixed simulation timestep. One Step call advances exactly one frame.
const (
	FrameRate = 60
	FrameDT   = 1.0 / FrameRate
)

// Score per destroyed tier. Smaller rocks are harder to hit and worth more.
var tierScores = map[object.Tier]int{
	object.TierLarge:  20,
	object.TierMedium: 50,
	object.TierSmall:  100,
}

// Tunables for the session.
const (
	InvulnFrames       = 180 // 3s of spawn protection
	FireCooldownFrames = 9   // ~6-7 shots per second

	WaveIncrement = 1  // Extra asteroids per wave
	MaxWaveSize   = 11 // Waves never grow past this

	// New-wave asteroids spawn on a ring around the ship, never closer
	// than the safe distance. Validate rejects fields too small to hold
	// such a ring; the spawner additionally caps the ring at half the
	// smaller field span so the wrapped distance equals the ring distance.
	MinSafeDistance = 25.0

	// Split fragments diverge from the parent heading by a random angle
	// in this band, one fragment to each side.
	divergenceMin = 0.3
	divergenceMax = 0.9

	// Broad-phase cell size; must cover the largest pair interaction
	// distance (two large asteroids).
	gridCellSize = 10.0
)

// Control is the per-frame input signal applied to the ship. How the
// booleans are derived from raw devices is the input adapter's business.
type Control struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
}

// ErrInvalidConfig is returned by NewWorld for configurations the
// simulation cannot run with. It is never produced mid-session.
var ErrInvalidConfig = errors.New("invalid game configuration")

// Config is everything the host supplies to start a session.
type Config struct {
	Width    float64 // Field width in world units
	Height   float64 // Field height in world units
	Lives    int     // Starting lives
	WaveSize int     // Large asteroids in the first wave
	Seed     int64   // Seed for the session's random generator
}

// DefaultConfig returns the standard session setup. Callers normally
// override Seed.
func DefaultConfig() Config {
	return Config{
		Width:    120,
		Height:   80,
		Lives:    3,
		WaveSize: 4,
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: field bounds %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width < 2*MinSafeDistance || c.Height < 2*MinSafeDistance {
		return fmt.Errorf("%w: field bounds %gx%g cannot hold a spawn ring %g units from the ship",
			ErrInvalidConfig, c.Width, c.Height, MinSafeDistance)
	}
	if c.Lives <= 0 {
		return fmt.Errorf("%w: starting lives %d must be positive", ErrInvalidConfig, c.Lives)
	}
	if c.WaveSize <= 0 {
		return fmt.Errorf("%w: wave size %d must be positive", ErrInvalidConfig, c.WaveSize)
	}
	if c.WaveSize > MaxWaveSize {
		return fmt.Errorf("%w: wave size %d exceeds maximum %d", ErrInvalidConfig, c.WaveSize, MaxWaveSize)
	}
	return nil
}
