package app

import "context"

// Runner executes external programs. Implementations live in the 'execute'
// package; consumers depend on this interface so tests can substitute fakes.
type Runner interface {
	// RunCapturing runs the program with its stdout redirected into a pipe
	// and returns everything it wrote. Output of a failed run is discarded.
	RunCapturing(ctx context.Context, program string, args ...string) ([]byte, error)
	// RunStreaming runs the program with the caller's stdout and stderr
	// inherited and returns its exit code.
	RunStreaming(ctx context.Context, program string, args ...string) (int, error)
}
