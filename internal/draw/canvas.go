package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Canvas is a pixel buffer rendered with half-block characters, giving 2x
// vertical resolution per terminal row. Game code draws in a fixed logical
// coordinate space; the canvas scales to whatever terminal it renders to
// and centers itself when the terminal is larger than needed.
type Canvas struct {
	termWidth  int
	termHeight int
	subHeight  int    // termHeight * 2
	pixels     []bool // [y*termWidth + x]

	logicalW float64
	logicalH float64 // In sub-pixels: two per terminal row
	scaleX   float64
	scaleY   float64

	offsetCol int
	offsetRow int

	// Buffers reused across frames.
	renderBuf   strings.Builder
	scanlineBuf []float64
	pointBuf    []Point
}

// NewCanvas creates a canvas mapping the logical coordinate space onto a
// terminal of the given size.
func NewCanvas(termWidth, termHeight int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{logicalW: logicalW, logicalH: logicalH}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions, keeping the logical
// coordinate space fixed.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subHeight = subHeight
	}
	c.scaleX = float64(termWidth) / c.logicalW
	c.scaleY = float64(subHeight) / c.logicalH
}

// SetOffset sets the 0-based terminal offset used to center the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// TerminalWidth returns the terminal column count the canvas renders to.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count the canvas renders to.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear empties the pixel buffer.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Plot sets the pixel at a logical coordinate.
func (c *Canvas) Plot(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// Line draws a line between two logical points (Bresenham in pixel space).
func (c *Canvas) Line(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed polygon; when filled, the interior is filled with
// a scanline pass before the outline.
func (c *Canvas) Polygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	for i := range points {
		c.Line(points[i], points[(i+1)%len(points)])
	}
}

func (c *Canvas) fill(points []Point) {
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := int(math.Floor(minY * c.scaleY))
	yEnd := int(math.Ceil(maxY * c.scaleY))

	for y := yStart; y <= yEnd; y++ {
		scanY := (float64(y) + 0.5) / c.scaleY

		hits := c.scanlineBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				hits = append(hits, (p1.X+t*(p2.X-p1.X))*c.scaleX)
			}
		}
		c.scanlineBuf = hits

		sort.Float64s(hits)
		for i := 0; i+1 < len(hits); i += 2 {
			for x := int(math.Ceil(hits[i])); x <= int(math.Floor(hits[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// BorrowPoints returns a reusable point slice of length n, valid until the
// next call. Avoids per-frame polygon allocations.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]Point, n)
	}
	return c.pointBuf[:n]
}

// maxChunkSize keeps individual writes near MTU size so frames flow
// smoothly over SSH.
const maxChunkSize = 1400

// Render writes the canvas to w as cursor-addressed half-block characters,
// skipping empty cells.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight / 2)

	for row := 0; row < c.termHeight; row++ {
		topOff := row * 2 * c.termWidth
		botOff := topOff + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOff+col]
			bottom := c.pixels[botOff+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
