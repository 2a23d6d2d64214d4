package execute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ytgrab/ytgrab/internal/logging"
)

var (
	// ErrSpawn is wrapped by failures to start the child process.
	ErrSpawn = errors.New("failed to spawn child process")
	// ErrPipe is wrapped by failures to set up the stdout pipe.
	ErrPipe = errors.New("failed to create stdout pipe")
	// ErrAbnormalExit is returned when the child was terminated by a signal
	// instead of exiting on its own.
	ErrAbnormalExit = errors.New("child process did not exit normally")
)

// ExitCodeError reports a child that exited with a nonzero status.
type ExitCodeError int

func (err ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with status %d", int(err))
}

// ToolRunner runs external programs, implementing app.Runner. The zero
// value is usable.
type ToolRunner struct {
	// captureCeiling overrides the capture buffer ceiling when positive.
	captureCeiling int
}

func NewToolRunner() *ToolRunner {
	return &ToolRunner{}
}

// RunCapturing executes the program with stdout redirected into a pipe and
// drains it into a capture buffer until end-of-stream, then validates the
// exit status. On any failure the partially captured output is discarded.
func (r *ToolRunner) RunCapturing(ctx context.Context, program string, args ...string) ([]byte, error) {
	log := logging.FromContextS(ctx)
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPipe, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSpawn, program, err)
	}
	log.Debugf("Capturing output of %q (pid %d)", program, cmd.Process.Pid)

	buf := newCaptureBuffer()
	if r.captureCeiling > 0 {
		buf.ceiling = r.captureCeiling
	}
	chunk := make([]byte, baselineCapacity)
	var readErr error
	for {
		n, err := stdout.Read(chunk)
		if n > 0 {
			if aerr := buf.append(chunk[:n]); aerr != nil {
				readErr = aerr
				break
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = fmt.Errorf("failed to drain child output: %w", err)
			}
			break
		}
	}

	if readErr != nil {
		// The child may still be blocked writing into the pipe; close the
		// read end so it sees EPIPE and exits, otherwise Wait never returns.
		_ = stdout.Close()
	}
	waitErr := validateExit(cmd.Wait())
	if readErr != nil {
		return nil, readErr
	}
	if waitErr != nil {
		return nil, waitErr
	}
	log.Debugf("Captured %d bytes from %q", buf.length, program)
	return buf.bytes(), nil
}

// RunStreaming executes the program with the caller's stdout and stderr
// inherited and waits for it to finish.
func (r *ToolRunner) RunStreaming(ctx context.Context, program string, args ...string) (int, error) {
	log := logging.FromContextS(ctx)
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("%w: %s: %v", ErrSpawn, program, err)
	}
	log.Debugf("Streaming %q (pid %d)", program, cmd.Process.Pid)

	if err := validateExit(cmd.Wait()); err != nil {
		return -1, err
	}
	return 0, nil
}

// validateExit maps the wait result onto the error taxonomy: success needs
// a normal termination with code 0.
func validateExit(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return ExitCodeError(code)
		}
		return fmt.Errorf("%w: %v", ErrAbnormalExit, exitErr)
	}
	return fmt.Errorf("failed to wait for child process: %w", err)
}
