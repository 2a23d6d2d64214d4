package termui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ytgrab/ytgrab/internal/app"
	"github.com/ytgrab/ytgrab/internal/progress"
	"github.com/ytgrab/ytgrab/internal/selector"
)

const (
	titleBar      = " ytgrab - YouTube Video Downloader "
	statusHints   = "[Up/Down] Navigate [Enter] Select [B] Best [Esc] Cancel"
	catalogChrome = 3 // title, column header, separator
)

// ShowVideoInfo renders the video title, channel and duration into the
// header region.
func (s *Session) ShowVideoInfo(info app.VideoInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drawLine(s.header, 0, s.style(styleTitleBar, titleBar))
	s.drawLine(s.header, 1, fmt.Sprintf(" Video: %s", orNA(info.Title)))
	s.drawLine(s.header, 2, fmt.Sprintf(" Channel: %-30s Duration: %s",
		orNA(info.Channel), progress.FormatDuration(int(info.DurationSeconds))))
	s.drawLine(s.header, 3, "")
}

// ShowStatus renders a single-line message into the status region with the
// keyboard hints right-aligned when they fit.
func (s *Session) ShowStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawLine(s.status, 0, s.statusLine(text))
}

// statusLine pads the message so the hint block lands at the right edge.
// Widths are display cells, not bytes.
func (s *Session) statusLine(text string) string {
	line := " " + text
	if gap := s.status.cols - lipgloss.Width(line) - lipgloss.Width(statusHints) - 2; gap > 0 {
		line += strings.Repeat(" ", gap) + s.style(styleChrome, statusHints)
	}
	return line
}

// ShowError renders an error into the status region, or falls back to
// stderr once the session has been torn down.
func (s *Session) ShowError(text string) {
	if s.closed.Load() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", text)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawLine(s.status, 0, s.style(styleError, " ERROR: "+text))
}

// listRows is how many catalog entries fit in the content region.
func (s *Session) listRows() int {
	rows := s.content.rows - catalogChrome
	if rows < 1 {
		rows = 1
	}
	return rows
}

// drawCatalog renders the visible window of the catalog with the cursor's
// entry highlighted and scroll markers at the right edge.
func (s *Session) drawCatalog(cat app.Catalog, cur *selector.Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := fmt.Sprintf(" Available Formats (%d total) ", len(cat))
	s.drawLine(s.content, 0, s.style(styleChrome, title))
	header := fmt.Sprintf(" %-4s %-6s %-12s %-6s %-10s %-12s",
		"#", "Format", "Resolution", "Type", "Size", "Quality")
	s.drawLine(s.content, 1, s.style(styleChrome, header))
	s.drawLine(s.content, 2, s.style(styleChrome, strings.Repeat("-", s.content.cols)))

	for i := 0; i < cur.VisibleLines(); i++ {
		idx := cur.VisibleStart() + i
		row := catalogChrome + i
		if idx >= len(cat) {
			s.drawLine(s.content, row, "")
			continue
		}
		s.drawLine(s.content, row, s.formatEntry(cat[idx], idx, idx == cur.Selected()))
	}

	if cur.VisibleStart() > 0 {
		s.drawCell(s.content, catalogChrome, s.content.cols-2, "^")
	}
	if cur.VisibleStart()+cur.VisibleLines() < len(cat) {
		s.drawCell(s.content, s.content.rows-1, s.content.cols-2, "v")
	}
}

func (s *Session) formatEntry(f app.Format, idx int, selected bool) string {
	size := "N/A"
	if f.Filesize > 0 {
		size = progress.FormatBytes(f.Filesize)
	}
	quality := selector.QualityLabel(f.Resolution, f.Ext)
	line := fmt.Sprintf(" %-4d %-6s %-12s %-6s %-10s %-12s",
		idx+1, orNA(f.ID), orNA(f.Resolution), orNA(f.Ext), size, quality)
	if selected {
		return s.style(styleSelected, line)
	}
	switch {
	case strings.Contains(quality, "4K"), strings.Contains(quality, "Full HD"):
		return s.style(styleSuccess, line)
	case strings.Contains(quality, "Audio"):
		return s.style(styleWarning, line)
	default:
		return line
	}
}

// ShowProgress renders the download progress view into the content region.
func (s *Session) ShowProgress(snap progress.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearRegion(s.content)
	s.drawLine(s.content, 0, s.style(styleChrome, " Download Progress "))

	row := 2
	if snap.Stage != "" {
		s.drawLine(s.content, row, " Stage: "+snap.Stage)
		row += 2
	}
	s.drawLine(s.content, row, fmt.Sprintf(" Downloaded: %s / %s",
		progress.FormatBytes(snap.Downloaded), progress.FormatBytes(snap.Total)))
	row += 2

	s.drawLine(s.content, row, " "+s.progressBar(snap))
	row += 2

	if snap.Speed > 0 {
		s.drawLine(s.content, row, fmt.Sprintf(" Speed: %s/s", progress.FormatBytes(int64(snap.Speed))))
		row++
		if snap.HasETA {
			if left := int(time.Until(snap.ETA).Seconds()); left > 0 {
				s.drawLine(s.content, row, " ETA: "+progress.FormatDuration(left))
			}
			row++
		}
	}
	if !snap.Start.IsZero() {
		row++
		s.drawLine(s.content, row, " Elapsed: "+progress.FormatDuration(int(time.Since(snap.Start).Seconds())))
	}
}

func (s *Session) progressBar(snap progress.Snapshot) string {
	width := s.content.cols - 12
	if width < 1 {
		width = 1
	}
	percent := snap.Percent()
	filled, empty := progress.Bar(percent, width)
	return fmt.Sprintf("[%s%s] %3.0f%%",
		s.style(styleBarFill, strings.Repeat("#", filled)),
		strings.Repeat(" ", empty), percent)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
