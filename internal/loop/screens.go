package loop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vhrabal/planetoids/internal/draw"
	"github.com/vhrabal/planetoids/internal/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	promptStyle = lipgloss.NewStyle().Faint(true)
	hudStyle    = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// writeCentered writes text centered horizontally at the given row.
func writeCentered(w io.Writer, c *draw.Canvas, row int, style lipgloss.Style, text string) {
	col := c.TerminalWidth()/2 - len(text)/2
	if col < 1 {
		col = 1
	}
	draw.MoveCursor(w, col, row)
	fmt.Fprint(w, style.Render(text))
}

func drawTitleScreen(w io.Writer, c *draw.Canvas) {
	centerY := c.TerminalHeight() / 2
	writeCentered(w, c, centerY-2, titleStyle, "P L A N E T O I D S")
	writeCentered(w, c, centerY+1, promptStyle, "Press SPACE to start")
	writeCentered(w, c, centerY+4, promptStyle,
		"A/D or arrows rotate · W thrusts · SPACE shoots · Q quits")
}

func drawHUD(w io.Writer, c *draw.Canvas, snap game.Snapshot) {
	score := fmt.Sprintf("Score: %d", snap.Score)
	draw.MoveCursor(w, 2, 1)
	fmt.Fprint(w, hudStyle.Render(score))

	wave := fmt.Sprintf("Wave %d", snap.Wave)
	draw.MoveCursor(w, c.TerminalWidth()/2-len(wave)/2, 1)
	fmt.Fprint(w, hudStyle.Render(wave))

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	draw.MoveCursor(w, c.TerminalWidth()-len(lives)-1, 1)
	fmt.Fprint(w, hudStyle.Render(lives))
}

func drawGameOverScreen(w io.Writer, c *draw.Canvas, snap game.Snapshot) {
	centerY := c.TerminalHeight() / 2
	writeCentered(w, c, centerY-2, titleStyle, "GAME OVER")
	writeCentered(w, c, centerY, hudStyle, fmt.Sprintf("Final score: %d", snap.Score))
	writeCentered(w, c, centerY+2, promptStyle, "Press SPACE to play again, Q to quit")
}

func drawIdleWarning(w io.Writer, c *draw.Canvas) {
	writeCentered(w, c, c.TerminalHeight()-1, warnStyle,
		"Still there? The session will close soon.")
}
