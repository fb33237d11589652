package game

import (
	"github.com/vhrabal/planetoids/internal/object"
	"github.com/vhrabal/planetoids/internal/vec"
)

// EventKind identifies a lifecycle event produced during a frame step.
type EventKind int

const (
	// EventAsteroidDestroyed fires once per destroyed asteroid; Tier and
	// Pos describe the destroyed rock.
	EventAsteroidDestroyed EventKind = iota
	// EventShipHit fires when the ship is destroyed for this life.
	EventShipHit
	// EventShipRespawned fires when a remaining life puts the ship back
	// at the field center.
	EventShipRespawned
	// EventWaveStarted fires when a new wave spawns; Wave carries the
	// wave number.
	EventWaveStarted
	// EventGameOver fires once, when the last life is lost.
	EventGameOver
)

// Event is a frame lifecycle notification for the presentation layer
// (particles, screens, sound). Events never feed back into the simulation.
type Event struct {
	Kind EventKind
	Pos  vec.V
	Tier object.Tier // Set for EventAsteroidDestroyed
	Wave int         // Set for EventWaveStarted
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}
