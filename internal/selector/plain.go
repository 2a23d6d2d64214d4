package selector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ytgrab/ytgrab/internal/app"
	"github.com/ytgrab/ytgrab/internal/progress"
)

// maxFormatCodeLen bounds a manually entered format code.
const maxFormatCodeLen = 63

// PlainPresenter is the non-interactive fallback used when the terminal
// session cannot be initialized: a printed table plus a line-oriented
// format-code prompt.
type PlainPresenter struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func NewPlainPresenter(in io.Reader, out, errOut io.Writer) *PlainPresenter {
	return &PlainPresenter{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

func (p *PlainPresenter) ShowStatus(text string) {
	fmt.Fprintln(p.out, text)
}

func (p *PlainPresenter) ShowError(text string) {
	fmt.Fprintf(p.errOut, "Error: %s\n", text)
}

func (p *PlainPresenter) ShowVideoInfo(info app.VideoInfo) {
	fmt.Fprintf(p.out, "Video: %s\n", orNA(info.Title))
	fmt.Fprintf(p.out, "Channel: %s  Duration: %s\n",
		orNA(info.Channel), progress.FormatDuration(int(info.DurationSeconds)))
}

func (p *PlainPresenter) ShowProgress(snap progress.Snapshot) {
	if snap.Stage != "" {
		fmt.Fprintln(p.out, snap.Stage)
	}
}

// SelectFormat prints the catalog and prompts for a format code. A blank
// answer returns an empty ID, letting the caller fall back to its default
// format expression.
func (p *PlainPresenter) SelectFormat(ctx context.Context, cat app.Catalog) (string, error) {
	if len(cat) == 0 {
		return "", app.ErrEmptyCatalog
	}

	fmt.Fprintln(p.out, "Available formats:")
	for i, f := range cat {
		size := "N/A"
		if f.Filesize > 0 {
			size = progress.FormatBytes(f.Filesize)
		}
		fmt.Fprintf(p.out, "%3d) %-8s %-12s %-6s %-10s %s\n",
			i+1, orNA(f.ID), orNA(f.Resolution), orNA(f.Ext), size, QualityLabel(f.Resolution, f.Ext))
	}

	fmt.Fprint(p.out, "Enter the format code (leave blank for best quality): ")
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: %v", app.ErrInputRead, err)
	}
	code := strings.TrimSpace(line)
	if err := validateFormatCode(code); err != nil {
		return "", err
	}
	return code, nil
}

// Suspend has nothing to release in plain mode; fn runs directly.
func (p *PlainPresenter) Suspend(fn func() error) error {
	return fn()
}

func (p *PlainPresenter) Close() {}

// validateFormatCode accepts the characters yt-dlp uses in format IDs and
// expressions entered by hand: alphanumerics plus "-", "_" and ".".
func validateFormatCode(code string) error {
	if len(code) > maxFormatCodeLen {
		return fmt.Errorf("format code too long (max %d characters)", maxFormatCodeLen)
	}
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return fmt.Errorf("format code contains invalid character %q", r)
		}
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
