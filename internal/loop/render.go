package loop

import (
	"math"

	"github.com/vhrabal/planetoids/internal/draw"
	"github.com/vhrabal/planetoids/internal/game"
	"github.com/vhrabal/planetoids/internal/vec"
)

// wrapMargin is how close to a field edge an entity must be before its
// wrapped copy is also drawn, so shapes straddling the seam render whole.
const wrapMargin = 6.0

// blinkPeriod controls the invulnerability blink, in frames per phase.
const blinkPeriod = 6

// renderWorld draws a snapshot onto the canvas.
func renderWorld(c *draw.Canvas, snap game.Snapshot) {
	if snap.Ship.Alive && shipVisible(snap) {
		forEachWrapCopy(snap.Ship.Pos, snap.Field.Width, snap.Field.Height, func(p vec.V) {
			drawShip(c, p, snap.Ship.Rot)
		})
	}

	for _, a := range snap.Asteroids {
		a := a
		forEachWrapCopy(a.Pos, snap.Field.Width, snap.Field.Height, func(p vec.V) {
			drawAsteroid(c, p, a)
		})
	}

	for _, b := range snap.Bullets {
		c.Plot(b.Pos.X, b.Pos.Y)
	}
}

// shipVisible implements the spawn-protection blink: the ship skips every
// other blink phase while invulnerable.
func shipVisible(snap game.Snapshot) bool {
	if !snap.Ship.Invulnerable {
		return true
	}
	return (snap.Frame/blinkPeriod)%2 == 0
}

// forEachWrapCopy calls fn for the entity position and for its wrapped
// copies when it sits within the margin of a field edge.
func forEachWrapCopy(pos vec.V, fieldW, fieldH float64, fn func(vec.V)) {
	xs := [2]float64{pos.X, math.NaN()}
	ys := [2]float64{pos.Y, math.NaN()}

	if pos.X < wrapMargin {
		xs[1] = pos.X + fieldW
	} else if pos.X > fieldW-wrapMargin {
		xs[1] = pos.X - fieldW
	}
	if pos.Y < wrapMargin {
		ys[1] = pos.Y + fieldH
	} else if pos.Y > fieldH-wrapMargin {
		ys[1] = pos.Y - fieldH
	}

	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		for _, y := range ys {
			if math.IsNaN(y) {
				continue
			}
			fn(vec.V{X: x, Y: y})
		}
	}
}

// drawShip renders the ship as a triangle pointing along its facing.
func drawShip(c *draw.Canvas, pos vec.V, rot float64) {
	const size = 2.0
	nose := rot
	left := rot + 2.5
	right := rot - 2.5

	tri := c.BorrowPoints(3)
	tri[0] = draw.Point{X: pos.X + math.Cos(nose)*size, Y: pos.Y + math.Sin(nose)*size}
	tri[1] = draw.Point{X: pos.X + math.Cos(left)*size*0.7, Y: pos.Y + math.Sin(left)*size*0.7}
	tri[2] = draw.Point{X: pos.X + math.Cos(right)*size*0.7, Y: pos.Y + math.Sin(right)*size*0.7}
	c.Polygon(tri, true)
}

// drawAsteroid renders an asteroid's irregular outline rotated to its
// current angle.
func drawAsteroid(c *draw.Canvas, pos vec.V, a game.AsteroidView) {
	n := len(a.Outline)
	if n < 3 {
		return
	}
	points := c.BorrowPoints(n)
	for i, dist := range a.Outline {
		angle := a.Rot + float64(i)*2*math.Pi/float64(n)
		points[i] = draw.Point{
			X: pos.X + math.Cos(angle)*dist,
			Y: pos.Y + math.Sin(angle)*dist,
		}
	}
	c.Polygon(points, false)
}
