package termui

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/ytgrab/ytgrab/internal/app"
)

const (
	headerRows = 4
	statusRows = 1

	// inputPollInterval bounds a selection-loop read so the resize and
	// shutdown flags are observed between keypresses.
	inputPollInterval = 100 * time.Millisecond
)

// ErrSessionInit is wrapped by failures to bring up the terminal session.
var ErrSessionInit = errors.New("failed to initialize terminal session")

// Session owns the terminal for the lifetime of one interactive run: raw
// input mode, the alternate screen, and the header/content/status regions.
// A single lock serializes region drawing; it is never held across a
// blocking input read or while waiting on a child process.
type Session struct {
	in  *os.File
	out *os.File

	mu      sync.Mutex
	width   int
	height  int
	colorOK bool
	header  *Region
	content *Region
	status  *Region

	resizePending   atomic.Bool
	shutdownPending atomic.Bool
	closed          atomic.Bool

	savedState *term.State
	sigCh      chan os.Signal
	keys       *keyDecoder
}

// Init switches the terminal into raw, no-echo, hidden-cursor mode on the
// alternate screen, allocates the three regions and registers the resize
// and interrupt signals. Any partial setup is undone before an error is
// returned.
func Init() (*Session, error) {
	s := &Session{in: os.Stdin, out: os.Stdout}
	inFd := int(s.in.Fd())
	outFd := int(s.out.Fd())

	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return nil, fmt.Errorf("%w: not attached to a terminal", ErrSessionInit)
	}

	saved, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionInit, err)
	}
	s.savedState = saved

	// Reopen stdin in non-blocking mode so reads can carry a deadline.
	if err := syscall.SetNonblock(inFd, true); err != nil {
		_ = term.Restore(inFd, saved)
		return nil, fmt.Errorf("%w: %v", ErrSessionInit, err)
	}
	s.in = os.NewFile(uintptr(inFd), "/dev/stdin")

	s.width, s.height, err = term.GetSize(outFd)
	if err != nil {
		s.restoreInput(inFd)
		return nil, fmt.Errorf("%w: %v", ErrSessionInit, err)
	}
	if err := s.allocRegions(); err != nil {
		s.restoreInput(inFd)
		return nil, err
	}

	termEnv := os.Getenv("TERM")
	s.colorOK = termEnv != "" && termEnv != "dumb"
	s.keys = newKeyDecoder(s)

	fmt.Fprint(s.out, altScreenOn, cursorHide, clearScreen)

	s.sigCh = make(chan os.Signal, 4)
	signal.Notify(s.sigCh, syscall.SIGWINCH, os.Interrupt, syscall.SIGTERM)
	go s.watchSignals()

	return s, nil
}

// watchSignals only stores the atomic flags; all consequential work runs
// in the main loop when it polls them.
func (s *Session) watchSignals() {
	for sig := range s.sigCh {
		if sig == syscall.SIGWINCH {
			s.resizePending.Store(true)
		} else {
			s.shutdownPending.Store(true)
		}
	}
}

func (s *Session) restoreInput(inFd int) {
	_ = syscall.SetNonblock(inFd, false)
	if s.savedState != nil {
		_ = term.Restore(inFd, s.savedState)
	}
}

// allocRegions creates the header, content and status regions in stacking
// order. Fails when the terminal is too small to hold all three.
func (s *Session) allocRegions() error {
	contentRows := s.height - headerRows - statusRows
	if contentRows < 1 || s.width < 1 {
		return fmt.Errorf("%w: terminal too small (%dx%d)", ErrSessionInit, s.width, s.height)
	}
	s.header = newRegion(0, 0, headerRows, s.width, 0)
	s.content = newRegion(headerRows, 0, contentRows, s.width, 1)
	s.status = newRegion(s.height-statusRows, 0, statusRows, s.width, 2)
	return nil
}

// releaseRegions drops the regions in reverse creation order.
func (s *Session) releaseRegions() {
	s.status = nil
	s.content = nil
	s.header = nil
}

// HandleResize recreates all regions at the new terminal size when a
// SIGWINCH was flagged. Must be called from the main loop, never from
// signal context. Reports whether a resize was applied; the caller
// repaints afterwards.
func (s *Session) HandleResize() (bool, error) {
	if !s.resizePending.Load() {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return false, fmt.Errorf("failed to query terminal size: %w", err)
	}
	s.width, s.height = w, h
	s.releaseRegions()
	if err := s.allocRegions(); err != nil {
		return false, err
	}
	fmt.Fprint(s.out, clearScreen)
	s.resizePending.Store(false)
	return true, nil
}

// ShutdownRequested reports whether an interrupt or termination signal was
// observed.
func (s *Session) ShutdownRequested() bool {
	return s.shutdownPending.Load()
}

// Teardown releases the regions in reverse creation order, restores the
// saved terminal settings and unregisters the signal handlers. Calling it
// again is a no-op; every exit path may (and should) call it.
func (s *Session) Teardown() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	if s.sigCh != nil {
		signal.Stop(s.sigCh)
		close(s.sigCh)
	}
	s.mu.Lock()
	s.releaseRegions()
	s.mu.Unlock()

	fmt.Fprint(s.out, attrReset, cursorShow, altScreenOff)
	s.restoreInput(int(s.in.Fd()))
}

// Close implements app.Presenter.
func (s *Session) Close() { s.Teardown() }

// Suspend releases the terminal (cooked mode, primary screen) around fn so
// a child process may own stdout, then reacquires it. The display lock is
// not held while fn runs.
func (s *Session) Suspend(fn func() error) error {
	inFd := int(s.in.Fd())

	s.mu.Lock()
	fmt.Fprint(s.out, attrReset, cursorShow, altScreenOff)
	_ = syscall.SetNonblock(inFd, false)
	if s.savedState != nil {
		_ = term.Restore(inFd, s.savedState)
	}
	s.mu.Unlock()

	err := fn()

	s.mu.Lock()
	if _, rawErr := term.MakeRaw(inFd); rawErr != nil && err == nil {
		err = fmt.Errorf("failed to reacquire terminal: %w", rawErr)
	}
	_ = syscall.SetNonblock(inFd, true)
	fmt.Fprint(s.out, altScreenOn, cursorHide, clearScreen)
	s.mu.Unlock()

	return err
}

// readByte implements byteSource over the raw terminal with a read
// deadline, outside the display lock.
func (s *Session) readByte(wait time.Duration) (byte, bool, error) {
	if err := s.in.SetReadDeadline(time.Now().Add(wait)); err != nil {
		return 0, false, fmt.Errorf("%w: %v", app.ErrInputRead, err)
	}
	var buf [1]byte
	n, err := s.in.Read(buf[:])
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %v", app.ErrInputRead, err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}
