package game

import (
	"github.com/vhrabal/planetoids/internal/object"
	"github.com/vhrabal/planetoids/internal/physics"
	"github.com/vhrabal/planetoids/internal/vec"
)

// hitMark records what destroyed an asteroid during the detection pass.
type hitMark struct {
	byBullet bool
	byShip   bool
}

func (h hitMark) destroyed() bool { return h.byBullet || h.byShip }

// resolveCollisions runs collision detection for the frame and applies the
// outcomes. Detection works against a consistent snapshot of positions:
// every pair outcome for the frame is recorded in the mark buffers before
// any entity is removed or created, so iteration order cannot bias the
// result. Returns whether the ship was destroyed this frame.
func (w *World) resolveCollisions() (shipDied bool) {
	w.resetMarks()
	w.populateGrid()

	w.detectBulletHits()
	shipDied = w.detectShipHits()
	w.bounceAsteroids()

	w.applyMarks(shipDied)
	return shipDied
}

func (w *World) resetMarks() {
	w.asteroidHits = w.asteroidHits[:0]
	for range w.asteroids {
		w.asteroidHits = append(w.asteroidHits, hitMark{})
	}
	w.bulletHits = w.bulletHits[:0]
	for range w.bullets {
		w.bulletHits = append(w.bulletHits, false)
	}
}

// populateGrid re-inserts every asteroid into the broad-phase grid.
func (w *World) populateGrid() {
	w.grid.Reset()
	for i, a := range w.asteroids {
		w.grid.Insert(a.Pos.X, a.Pos.Y, i)
	}
}

// detectBulletHits matches each bullet against nearby asteroids. A bullet
// destroys at most one asteroid per frame; with overlapping asteroids it
// resolves against the first one in collection order.
func (w *World) detectBulletHits() {
	fw, fh := w.field.Width, w.field.Height

	for bi, b := range w.bullets {
		best := -1
		w.grid.Nearby(b.Pos.X, b.Pos.Y, func(ai int) bool {
			a := w.asteroids[ai]
			if physics.CirclesOverlap(b.Pos.X, b.Pos.Y, object.BulletRadius,
				a.Pos.X, a.Pos.Y, a.Radius, fw, fh) {
				if best == -1 || ai < best {
					best = ai
				}
			}
			return false
		})
		if best >= 0 {
			w.bulletHits[bi] = true
			w.asteroidHits[best].byBullet = true
		}
	}
}

// detectShipHits checks the ship against every asteroid. Outside the
// invulnerability window a hit is mutual destruction: the ship dies and
// each intersecting asteroid is marked for removal (and still splits).
func (w *World) detectShipHits() (died bool) {
	ship := w.ship
	if !ship.Alive || ship.Invulnerable > 0 {
		return false
	}

	fw, fh := w.field.Width, w.field.Height
	w.grid.Nearby(ship.Pos.X, ship.Pos.Y, func(ai int) bool {
		a := w.asteroids[ai]
		if physics.CirclesOverlap(ship.Pos.X, ship.Pos.Y, object.ShipRadius,
			a.Pos.X, a.Pos.Y, a.Radius, fw, fh) {
			w.asteroidHits[ai].byShip = true
			died = true
		}
		return false
	})
	return died
}

// bounceAsteroids applies elastic collisions between surviving asteroids
// so rocks deflect off each other instead of overlapping. Mass is taken as
// radius squared. Purely cosmetic for scoring: nothing is destroyed here.
func (w *World) bounceAsteroids() {
	fw, fh := w.field.Width, w.field.Height

	for i, a1 := range w.asteroids {
		if w.asteroidHits[i].destroyed() {
			continue
		}
		w.grid.Nearby(a1.Pos.X, a1.Pos.Y, func(j int) bool {
			if j <= i || w.asteroidHits[j].destroyed() {
				return false
			}
			a2 := w.asteroids[j]
			dist := physics.TorusDistance(a1.Pos.X, a1.Pos.Y, a2.Pos.X, a2.Pos.Y, fw, fh)
			if dist > 0 && dist < a1.Radius+a2.Radius {
				w.bounce(a1, a2, dist)
			}
			return false
		})
	}
}

// bounce resolves one elastic collision, pushing the pair apart along the
// wrapped collision normal.
func (w *World) bounce(a1, a2 *object.Asteroid, dist float64) {
	fw, fh := w.field.Width, w.field.Height

	// Collision normal from a1 to a2 along the shortest (wrapped) path.
	nx := physics.WrapDelta(a1.Pos.X, a2.Pos.X, fw) / dist
	ny := physics.WrapDelta(a1.Pos.Y, a2.Pos.Y, fh) / dist

	dvx := a1.Vel.X - a2.Vel.X
	dvy := a1.Vel.Y - a2.Vel.Y
	dvn := dvx*nx + dvy*ny
	if dvn < 0 {
		// Already separating.
		return
	}

	m1 := a1.Radius * a1.Radius
	m2 := a2.Radius * a2.Radius
	total := m1 + m2

	impulse := 2 * dvn / total
	a1.Vel.X -= impulse * m2 * nx
	a1.Vel.Y -= impulse * m2 * ny
	a2.Vel.X += impulse * m1 * nx
	a2.Vel.Y += impulse * m1 * ny

	// Separate the pair so they stop overlapping next frame.
	overlap := (a1.Radius + a2.Radius) - dist
	if overlap > 0 {
		normal := vec.V{X: nx, Y: ny}
		a1.Pos = w.field.WrapPoint(a1.Pos.Add(normal.Scale(-overlap * m2 / total)))
		a2.Pos = w.field.WrapPoint(a2.Pos.Add(normal.Scale(overlap * m1 / total)))
	}
}

// applyMarks removes destroyed entities, awards score, splits destroyed
// asteroids and updates the ship, all in one pass after detection.
func (w *World) applyMarks(shipDied bool) {
	var fragments []*object.Asteroid

	keptAsteroids := w.asteroids[:0]
	for i, a := range w.asteroids {
		hit := w.asteroidHits[i]
		if !hit.destroyed() {
			keptAsteroids = append(keptAsteroids, a)
			continue
		}
		if hit.byBullet {
			w.score += tierScores[a.Tier]
		}
		w.emit(Event{Kind: EventAsteroidDestroyed, Pos: a.Pos, Tier: a.Tier})
		fragments = append(fragments, w.split(a)...)
	}
	w.asteroids = append(keptAsteroids, fragments...)

	keptBullets := w.bullets[:0]
	for i, b := range w.bullets {
		if !w.bulletHits[i] {
			keptBullets = append(keptBullets, b)
		}
	}
	w.bullets = keptBullets

	if shipDied {
		w.ship.Alive = false
		w.emit(Event{Kind: EventShipHit, Pos: w.ship.Pos})
	}
}
