package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ytgrab/ytgrab/internal/app"
	"github.com/ytgrab/ytgrab/internal/logging"
)

// DefaultFormatExpr is the tool's selection expression used when the user
// did not pick a concrete format.
const DefaultFormatExpr = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// Service runs the external tool to perform the actual download, streaming
// its output to the inherited stdout.
type Service struct {
	runner app.Runner
	tool   string
}

func New(runner app.Runner, tool string) *Service {
	return &Service{runner: runner, tool: tool}
}

// Args assembles the tool's download argument list. An empty formatID
// selects DefaultFormatExpr.
func Args(formatID, outputDir, link string) []string {
	if formatID == "" {
		formatID = DefaultFormatExpr
	}
	template := filepath.Join(outputDir, "%(title)s.%(ext)s")
	return []string{"-f", formatID, "-o", template, link}
}

// Download runs the tool and validates its exit status. The download's
// lifetime is the child's own; no timeout is imposed here.
func (s *Service) Download(ctx context.Context, formatID, outputDir, link string) error {
	log := logging.FromContextS(ctx)
	args := Args(formatID, outputDir, link)
	log.Infof("Starting download of %q into %q", link, outputDir)

	code, err := s.runner.RunStreaming(ctx, s.tool, args...)
	if err != nil {
		return fmt.Errorf("download command failed: %w", err)
	}
	log.Infof("Download finished with exit code %d", code)
	return nil
}

// EnsureOutputDir resolves and prepares the download target directory:
// empty means the current working directory; a missing directory is
// created; an existing non-directory is rejected.
func EnsureOutputDir(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current working directory: %w", err)
		}
		return cwd, nil
	}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("output path %q exists but is not a directory", path)
		}
		return path, nil
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory %q: %w", path, err)
		}
		return path, nil
	default:
		return "", fmt.Errorf("failed to stat output path %q: %w", path, err)
	}
}
