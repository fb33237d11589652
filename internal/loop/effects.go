package loop

import (
	"math"
	"math/rand"
	"sync"

	"github.com/vhrabal/planetoids/internal/draw"
	"github.com/vhrabal/planetoids/internal/vec"
)

// particlePool reuses particle structs across explosions to keep the
// render path allocation-free.
var particlePool = sync.Pool{
	New: func() any { return &particle{} },
}

// particle is a short-lived visual spark. Purely cosmetic: particles live
// in the presentation layer and never touch the simulation.
type particle struct {
	pos      vec.V
	vel      vec.V
	lifetime float64 // Seconds remaining
	maxLife  float64
	drag     float64
}

// particleSet is the live particle collection for one session.
//
// Effects are presentation-only randomness, so they use the shared
// math/rand source rather than the world's seeded generator.
type particleSet struct {
	items []*particle
}

func (ps *particleSet) reset() {
	for _, p := range ps.items {
		particlePool.Put(p)
	}
	ps.items = ps.items[:0]
}

func (ps *particleSet) add(pos, vel vec.V, lifetime, drag float64) {
	p := particlePool.Get().(*particle)
	p.pos = pos
	p.vel = vel
	p.lifetime = lifetime
	p.maxLife = lifetime
	p.drag = drag
	ps.items = append(ps.items, p)
}

// spawnExplosion bursts count particles outward from pos.
func (ps *particleSet) spawnExplosion(pos vec.V, count int, speed, lifetime float64) {
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)
		ps.add(pos, vec.FromAngle(angle).Scale(spd), life, 0.95)
	}
}

// spawnThrust emits exhaust sparks behind a thrusting ship.
func (ps *particleSet) spawnThrust(shipPos vec.V, shipRot float64) {
	back := shipPos.Sub(vec.FromAngle(shipRot).Scale(1.5))
	count := 1 + rand.Intn(2)
	for i := 0; i < count; i++ {
		angle := shipRot + math.Pi + (rand.Float64()-0.5)*0.5
		speed := 8.0 + rand.Float64()*4.0
		life := 0.1 + rand.Float64()*0.15
		ps.add(back, vec.FromAngle(angle).Scale(speed), life, 0.85)
	}
}

// update ages, drags and moves every particle, releasing the dead ones.
func (ps *particleSet) update(dt float64) {
	kept := ps.items[:0]
	for _, p := range ps.items {
		p.lifetime -= dt
		if p.lifetime <= 0 {
			particlePool.Put(p)
			continue
		}
		p.vel = p.vel.Scale(math.Pow(p.drag, dt*targetFPS))
		p.pos = p.pos.Add(p.vel.Scale(dt))
		kept = append(kept, p)
	}
	ps.items = kept
}

// render plots the live particles, fading out the last quarter of each
// particle's life.
func (ps *particleSet) render(c *draw.Canvas) {
	for _, p := range ps.items {
		if p.maxLife > 0 && p.lifetime/p.maxLife < 0.25 {
			continue
		}
		c.Plot(p.pos.X, p.pos.Y)
	}
}
