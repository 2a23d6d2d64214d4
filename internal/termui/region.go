package termui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	altScreenOn  = "\x1b[?1049h"
	altScreenOff = "\x1b[?1049l"
	cursorHide   = "\x1b[?25l"
	cursorShow   = "\x1b[?25h"
	clearScreen  = "\x1b[2J\x1b[H"
	attrReset    = "\x1b[0m"
)

// Region is one rectangular display area of the session. Regions carry no
// cell storage of their own; they only scope where lines may be drawn.
// All regions are recreated wholesale on every resize.
type Region struct {
	top   int
	left  int
	rows  int
	cols  int
	order int
}

func newRegion(top, left, rows, cols, order int) *Region {
	return &Region{top: top, left: left, rows: rows, cols: cols, order: order}
}

func (r *Region) Rows() int { return r.rows }
func (r *Region) Cols() int { return r.cols }

// moveTo positions the cursor at the 0-based cell of the region.
func (r *Region) moveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", r.top+row+1, r.left+col+1)
}

// fitLine truncates styled text to the region width and pads the remainder
// with spaces so stale cells are overwritten.
func (r *Region) fitLine(text string) string {
	clipped := lipgloss.NewStyle().MaxWidth(r.cols).Render(text)
	if pad := r.cols - lipgloss.Width(clipped); pad > 0 {
		clipped += strings.Repeat(" ", pad)
	}
	return clipped
}

// drawLine renders one full region row. Callers hold the display lock.
func (s *Session) drawLine(r *Region, row int, text string) {
	if r == nil || row < 0 || row >= r.rows {
		return
	}
	fmt.Fprint(s.out, r.moveTo(row, 0), r.fitLine(text), attrReset)
}

// drawCell overwrites a short marker at a region cell without clearing the
// rest of the row.
func (s *Session) drawCell(r *Region, row, col int, text string) {
	if r == nil || row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return
	}
	fmt.Fprint(s.out, r.moveTo(row, col), text, attrReset)
}

// clearRegion blanks every row of the region. Callers hold the display lock.
func (s *Session) clearRegion(r *Region) {
	if r == nil {
		return
	}
	for row := 0; row < r.rows; row++ {
		s.drawLine(r, row, "")
	}
}
