package physics

import "math"

// Grid is a uniform spatial hash used as a collision broad phase on a
// wrapping field. Entities are inserted by position under a small integer
// handle, and candidates near a position are found by scanning the 3x3
// cell neighborhood, which wraps at the field edges.
//
// The cell size must be at least the largest interaction distance between
// any two inserted entities, otherwise pairs can be missed.
type Grid struct {
	cellSize float64
	invCell  float64
	cols     int
	rows     int
	cells    [][]int
}

// NewGrid creates a grid covering a field of the given dimensions.
func NewGrid(width, height, cellSize float64) *Grid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cellSize: cellSize,
		invCell:  1 / cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]int, cols*rows),
	}
}

// Reset empties every cell, keeping the backing storage for reuse.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert records a handle at the given position.
func (g *Grid) Insert(x, y float64, handle int) {
	col, row := g.cellAt(x, y)
	i := row*g.cols + col
	g.cells[i] = append(g.cells[i], handle)
}

// Nearby calls fn for every handle in the 3x3 neighborhood around (x, y),
// wrapping across the field edges. Iteration stops early when fn returns
// true.
func (g *Grid) Nearby(x, y float64, fn func(handle int) bool) {
	col, row := g.cellAt(x, y)

	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 {
			r += g.rows
		} else if r >= g.rows {
			r -= g.rows
		}

		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 {
				c += g.cols
			} else if c >= g.cols {
				c -= g.cols
			}

			for _, h := range g.cells[r*g.cols+c] {
				if fn(h) {
					return
				}
			}
		}
	}
}

// cellAt converts a position to cell coordinates, clamped so that
// floating-point edge cases stay in range.
func (g *Grid) cellAt(x, y float64) (col, row int) {
	col = int(x * g.invCell)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	row = int(y * g.invCell)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
