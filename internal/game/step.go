package game

import (
	"github.com/vhrabal/planetoids/internal/object"
)

// Step advances the simulation by one frame: input application, physics
// integration, collision resolution, wave spawning, then lifecycle
// bookkeeping. Once the session is over, Step is a no-op and no entity is
// mutated again.
func (w *World) Step(ctrl Control) {
	if w.phase != PhasePlaying {
		return
	}
	w.frame++
	w.events = w.events[:0]

	w.applyControl(ctrl)
	w.advance()
	shipDied := w.resolveCollisions()

	if len(w.asteroids) == 0 {
		w.nextWave()
	}

	if shipDied {
		w.lives--
		if w.lives > 0 {
			w.ship = object.NewShip(w.field.Center(), InvulnFrames)
			w.emit(Event{Kind: EventShipRespawned, Pos: w.ship.Pos})
		} else {
			w.phase = PhaseGameOver
			w.emit(Event{Kind: EventGameOver})
		}
	}
}

// applyControl steers, thrusts and fires according to this frame's input.
func (w *World) applyControl(ctrl Control) {
	ship := w.ship
	if !ship.Alive {
		return
	}

	dir := 0.0
	if ctrl.Left {
		dir--
	}
	if ctrl.Right {
		dir++
	}
	if dir != 0 {
		ship.Steer(dir, FrameDT)
	}

	if ctrl.Thrust {
		ship.Thrust(FrameDT)
	} else {
		ship.Coast(FrameDT)
	}

	if ctrl.Fire && ship.CanFire() {
		w.bullets = append(w.bullets, object.NewBullet(w.allocID(), ship))
		ship.Cooldown = FireCooldownFrames
	}
}

// advance integrates every entity by one frame and expires bullets whose
// TTL ran out. No entity is created or destroyed here beyond expiry.
func (w *World) advance() {
	w.ship.Tick()
	w.ship.Advance(FrameDT, w.field)

	for _, a := range w.asteroids {
		a.Advance(FrameDT, w.field)
	}

	kept := w.bullets[:0]
	for _, b := range w.bullets {
		if !b.Advance(FrameDT, w.field) {
			kept = append(kept, b)
		}
	}
	w.bullets = kept
}
