package app

import (
	"context"
	"errors"

	"github.com/ytgrab/ytgrab/internal/progress"
)

var (
	// ErrEmptyCatalog is returned when a selection is requested over a
	// catalog with no entries.
	ErrEmptyCatalog = errors.New("no downloadable formats available")
	// ErrSelectionCancelled is returned when the user cancels the format
	// selection or an interrupt was requested.
	ErrSelectionCancelled = errors.New("format selection cancelled")
	// ErrInputRead is wrapped by failures to read user input.
	ErrInputRead = errors.New("failed to read user input")
)

// Presenter is the user-facing surface of the application. There are two
// implementations chosen once at startup: the interactive terminal session
// (termui) and the plain stdin/stdout fallback (selector.PlainPresenter).
type Presenter interface {
	ShowStatus(text string)
	ShowError(text string)
	ShowVideoInfo(info VideoInfo)
	ShowProgress(snap progress.Snapshot)

	// SelectFormat lets the user pick one format out of the catalog. It
	// returns the chosen format ID, which may be empty to request the
	// caller's default format expression. Returns ErrEmptyCatalog or
	// ErrSelectionCancelled without entering a selection loop when
	// appropriate.
	SelectFormat(ctx context.Context, cat Catalog) (formatID string, err error)

	// Suspend runs fn with the presenter's display released, so a child
	// process may write to the inherited stdout without corrupting it.
	// The display is reacquired before Suspend returns.
	Suspend(fn func() error) error

	// Close releases the presenter. Safe to call more than once.
	Close()
}
