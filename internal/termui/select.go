package termui

import (
	"context"

	"github.com/ytgrab/ytgrab/internal/app"
	"github.com/ytgrab/ytgrab/internal/selector"
)

// SelectFormat runs the interactive selection loop over the catalog and
// returns the chosen format ID. Cancellation is observed once per
// input-read cycle: the cancel key, the session's shutdown flag, or the
// context ending all map to app.ErrSelectionCancelled.
func (s *Session) SelectFormat(ctx context.Context, cat app.Catalog) (string, error) {
	if len(cat) == 0 {
		return "", app.ErrEmptyCatalog
	}

	cur := selector.NewCursor(len(cat), s.listRows())
	s.drawCatalog(cat, cur)
	s.ShowStatus("Select a format to download")

	for {
		if s.ShutdownRequested() || ctx.Err() != nil {
			return "", app.ErrSelectionCancelled
		}
		resized, err := s.HandleResize()
		if err != nil {
			return "", err
		}
		if resized {
			cur.Resize(s.listRows())
			s.drawCatalog(cat, cur)
			s.ShowStatus("Select a format to download")
		}

		ev, err := s.keys.next(inputPollInterval)
		if err != nil {
			return "", err
		}
		switch ev.Key {
		case KeyNone:
			continue
		case KeyEnter:
			return cat[cur.Selected()].ID, nil
		case KeyCancel:
			return "", app.ErrSelectionCancelled
		case KeyUp:
			cur.Up()
		case KeyDown:
			cur.Down()
		case KeyPageUp:
			cur.PageUp()
		case KeyPageDown:
			cur.PageDown()
		case KeyHome:
			cur.First()
		case KeyEnd:
			cur.Last()
		case KeyRune:
			if !s.handleShortcut(ev.Rune, cat, cur) {
				continue
			}
		}
		s.drawCatalog(cat, cur)
	}
}

// handleShortcut maps single-key shortcuts onto cursor operations and
// reports whether the key changed anything worth redrawing.
func (s *Session) handleShortcut(r byte, cat app.Catalog, cur *selector.Cursor) bool {
	switch r {
	case 'b', 'B':
		cur.Best()
		return true
	case 'w', 'W':
		cur.Worst()
		return true
	case 'a', 'A':
		return cur.FirstAudioOnly(cat)
	default:
		return cur.JumpDigit(r)
	}
}
