package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/vhrabal/planetoids/internal/draw"
	"github.com/vhrabal/planetoids/internal/game"
	"github.com/vhrabal/planetoids/internal/input"
)

// Run drives one game session over the given reader/writer until the
// player quits, the reader closes, or the inactivity limit passes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.StdoutTermSize
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	termW, termH, err := opts.TermSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	s := &session{
		stream:   input.Start(r),
		canvas:   draw.NewCanvas(termW, termH, viewWidth, viewHeight),
		screen:   screenTitle,
		seed:     seed,
		lastSeen: time.Now(),
		running:  true,
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for s.running {
		frameStart := time.Now()

		keys := s.stream.Poll()
		if keys.Quit {
			break
		}
		if s.anyKey(keys) {
			s.lastSeen = frameStart
		}
		if opts.InactivityLimit > 0 && frameStart.Sub(s.lastSeen) > opts.InactivityLimit {
			break
		}

		if err := s.fitCanvas(opts.TermSize); err != nil {
			return err
		}

		switch s.screen {
		case screenTitle:
			if keys.Enter || keys.Fire {
				s.startGame()
			}
		case screenPlaying:
			s.stepPlaying(keys)
		case screenGameOver:
			s.particles.update(game.FrameDT)
			if keys.Enter || keys.Fire {
				s.startGame()
			}
		}

		if err := s.drawFrame(w, opts, frameStart); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// startGame creates a fresh world. Successive games in one session get
// distinct seeds so restarts do not replay the same field.
func (s *session) startGame() {
	cfg := game.DefaultConfig()
	cfg.Seed = s.seed
	s.seed++

	// DefaultConfig is known-valid; a failure here is a programming error.
	world, err := game.NewWorld(cfg)
	if err != nil {
		panic(err)
	}
	s.world = world
	s.particles.reset()
	s.stream.Reset()
	s.screen = screenPlaying
}

// stepPlaying advances the simulation one frame and feeds its events to
// the effect layer.
func (s *session) stepPlaying(keys input.Keys) {
	ctrl := game.Control{
		Left:   keys.Left,
		Right:  keys.Right,
		Thrust: keys.Thrust,
		Fire:   keys.Fire,
	}
	s.world.Step(ctrl)

	snap := s.world.Snapshot()
	if ctrl.Thrust && snap.Ship.Alive {
		s.particles.spawnThrust(snap.Ship.Pos, snap.Ship.Rot)
	}
	for _, e := range s.world.Events() {
		switch e.Kind {
		case game.EventAsteroidDestroyed:
			s.particles.spawnExplosion(e.Pos, int(e.Tier)*4, 20.0, 0.5)
		case game.EventShipHit:
			s.particles.spawnExplosion(e.Pos, 20, 25.0, 1.0)
		}
	}
	s.particles.update(game.FrameDT)

	if s.world.Phase() == game.PhaseGameOver {
		s.screen = screenGameOver
		s.stream.Reset()
	}
}

// fitCanvas resizes the render area to the terminal, capping it at the
// logical resolution and centering it in larger terminals.
func (s *session) fitCanvas(size draw.TermSizeFunc) error {
	termW, termH, err := size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	cols := min(termW, viewWidth)
	rows := min(termH, viewHeight/2)
	s.canvas.Resize(cols, rows)
	s.canvas.SetOffset((termW-cols)/2, (termH-rows)/2)
	return nil
}

// drawFrame renders the world, effects and overlay text for this frame.
func (s *session) drawFrame(w io.Writer, opts Options, now time.Time) error {
	draw.ClearScreen(w)
	s.canvas.Clear()

	if s.world != nil {
		snap := s.world.Snapshot()
		renderWorld(s.canvas, snap)
		s.particles.render(s.canvas)
		s.canvas.Render(w)
		drawHUD(w, s.canvas, snap)
	}

	switch s.screen {
	case screenTitle:
		drawTitleScreen(w, s.canvas)
	case screenGameOver:
		drawGameOverScreen(w, s.canvas, s.world.Snapshot())
	}

	if opts.InactivityWarn > 0 && now.Sub(s.lastSeen) > opts.InactivityWarn {
		drawIdleWarning(w, s.canvas)
	}
	return nil
}
