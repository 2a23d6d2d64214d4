package selector

import (
	"strconv"
	"strings"

	"github.com/ytgrab/ytgrab/internal/app"
)

// audioExts are extensions typical for audio-only streams.
var audioExts = map[string]struct{}{
	"m4a":  {},
	"webm": {},
	"opus": {},
}

// Cursor is the navigation state over a catalog. Every operation keeps
// 0 <= selected < total and visibleStart <= selected < visibleStart+visibleLines.
type Cursor struct {
	total        int
	selected     int
	visibleStart int
	visibleLines int
}

// NewCursor positions a cursor at the first entry. total must be positive;
// visibleLines below 1 is raised to 1.
func NewCursor(total, visibleLines int) *Cursor {
	c := &Cursor{total: total}
	c.Resize(visibleLines)
	return c
}

// Resize adjusts the viewport height, e.g. after a terminal resize, and
// re-establishes the visibility invariant.
func (c *Cursor) Resize(visibleLines int) {
	if visibleLines < 1 {
		visibleLines = 1
	}
	c.visibleLines = visibleLines
	c.ensureVisible()
}

func (c *Cursor) Total() int        { return c.total }
func (c *Cursor) Selected() int     { return c.selected }
func (c *Cursor) VisibleStart() int { return c.visibleStart }
func (c *Cursor) VisibleLines() int { return c.visibleLines }

func (c *Cursor) Up()       { c.selected--; c.ensureVisible() }
func (c *Cursor) Down()     { c.selected++; c.ensureVisible() }
func (c *Cursor) PageUp()   { c.selected -= c.visibleLines; c.ensureVisible() }
func (c *Cursor) PageDown() { c.selected += c.visibleLines; c.ensureVisible() }
func (c *Cursor) First()    { c.selected = 0; c.ensureVisible() }
func (c *Cursor) Last()     { c.selected = c.total - 1; c.ensureVisible() }

// Best selects the first catalog entry, which the tool reports ordered
// best-first.
func (c *Cursor) Best() { c.First() }

// Worst selects the last catalog entry.
func (c *Cursor) Worst() { c.Last() }

// JumpDigit maps a digit key '1'..'9' to the catalog index digit-1.
// Reports whether the digit addressed an existing entry.
func (c *Cursor) JumpDigit(digit byte) bool {
	if digit < '1' || digit > '9' {
		return false
	}
	idx := int(digit - '1')
	if idx >= c.total {
		return false
	}
	c.selected = idx
	c.ensureVisible()
	return true
}

// FirstAudioOnly selects the first audio-only entry of cat, if any.
func (c *Cursor) FirstAudioOnly(cat app.Catalog) bool {
	for i, f := range cat {
		if IsAudioOnly(f) {
			c.selected = i
			c.ensureVisible()
			return true
		}
	}
	return false
}

func (c *Cursor) ensureVisible() {
	if c.selected < 0 {
		c.selected = 0
	}
	if c.selected >= c.total {
		c.selected = c.total - 1
	}
	if c.selected < c.visibleStart {
		c.visibleStart = c.selected
	}
	if c.selected >= c.visibleStart+c.visibleLines {
		c.visibleStart = c.selected - c.visibleLines + 1
	}
	if c.visibleStart < 0 {
		c.visibleStart = 0
	}
}

// IsAudioOnly reports whether the format carries no video stream: no
// resolution and an audio-typical extension.
func IsAudioOnly(f app.Format) bool {
	return resolutionAbsent(f.Resolution) && hasAudioExt(f.Ext)
}

func hasAudioExt(ext string) bool {
	_, ok := audioExts[ext]
	return ok
}

func resolutionAbsent(resolution string) bool {
	return resolution == "" || strings.Contains(resolution, "audio")
}

// QualityLabel derives a display label from the resolution height and the
// extension. It is a pure function; unknown shapes yield "".
func QualityLabel(resolution, ext string) string {
	if resolutionAbsent(resolution) {
		if hasAudioExt(ext) {
			return "Audio Only"
		}
		return ""
	}
	_, after, ok := strings.Cut(resolution, "x")
	if !ok {
		return ""
	}
	height, err := strconv.Atoi(after)
	if err != nil {
		return ""
	}
	switch {
	case height >= 2160:
		return "4K UHD"
	case height >= 1440:
		return "2K QHD"
	case height >= 1080:
		return "Full HD"
	case height >= 720:
		return "HD"
	case height >= 480:
		return "SD"
	default:
		return ""
	}
}
