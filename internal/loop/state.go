// Package loop runs one interactive game session: it polls input, steps
// the simulation, and renders frames to a terminal at a fixed rate.
package loop

import (
	"time"

	"github.com/vhrabal/planetoids/internal/draw"
	"github.com/vhrabal/planetoids/internal/game"
	"github.com/vhrabal/planetoids/internal/input"
)

// screen is the presentation state. The engine only knows Playing and
// GameOver; the title screen is purely client-side.
type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenGameOver
)

const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// Logical render resolution. The simulation field uses the same units, so
// world coordinates map straight onto the canvas.
const (
	viewWidth  = 120
	viewHeight = 80 // Sub-pixels: two per terminal row
)

// Options configures a session.
type Options struct {
	// TermSize reports the terminal dimensions each frame. Defaults to
	// the controlling terminal.
	TermSize draw.TermSizeFunc

	// Seed for the game world. Zero means derive from the clock.
	Seed int64

	// InactivityWarn and InactivityLimit control idle handling for
	// remote sessions: after Warn with no input a notice is shown, after
	// Limit the session ends. Zero disables both.
	InactivityWarn  time.Duration
	InactivityLimit time.Duration
}

// session holds everything one player's loop needs.
type session struct {
	stream    *input.Stream
	canvas    *draw.Canvas
	world     *game.World
	screen    screen
	particles particleSet
	seed      int64
	lastSeen  time.Time // Last frame with any key held
	running   bool
}

func (s *session) anyKey(k input.Keys) bool {
	return k.Left || k.Right || k.Thrust || k.Fire || k.Enter || k.Escape || k.Quit
}
