// Package draw renders to the terminal through a half-block canvas with
// 2x vertical sub-pixel resolution, plus the ANSI plumbing around it.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point is a 2D canvas coordinate in logical units.
type Point struct {
	X, Y float64
}

// Half-block characters used by the canvas renderer.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// TermSizeFunc reports the terminal dimensions. Local play reads stdout;
// SSH sessions track PTY window-change events instead.
type TermSizeFunc func() (width, height int, err error)

// StdoutTermSize returns the controlling terminal's size.
var StdoutTermSize TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves the cursor to the top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor restores the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor positions the cursor (1-based terminal coordinates).
func MoveCursor(w io.Writer, col, row int) {
	fmt.Fprintf(w, "\033[%d;%dH", row, col)
}
