package grab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ytgrab/ytgrab/internal/app"
	"github.com/ytgrab/ytgrab/internal/logging"
	"github.com/ytgrab/ytgrab/internal/progress"
)

const (
	// errorExposure keeps an error visible in the status region before the
	// caller tears the session down.
	errorExposure = 2 * time.Second
	completePause = 1 * time.Second
)

// MetadataService fetches video info and the format catalog.
type MetadataService interface {
	FetchVideoInfo(ctx context.Context, link string) (app.VideoInfo, app.Catalog, error)
}

// DownloadService performs the actual download via the external tool.
type DownloadService interface {
	Download(ctx context.Context, formatID, outputDir, link string) error
}

// Controller sequences one run: metadata fetch, interactive selection,
// download. It owns no state beyond its collaborators.
type Controller struct {
	meta  MetadataService
	dl    DownloadService
	pause func(time.Duration)
}

func NewController(meta MetadataService, dl DownloadService) *Controller {
	return &Controller{
		meta:  meta,
		dl:    dl,
		pause: time.Sleep,
	}
}

// Run drives the whole flow against the chosen presenter. A cancelled
// selection surfaces as app.ErrSelectionCancelled after a short status
// notice.
func (c *Controller) Run(ctx context.Context, p app.Presenter, link, outputDir string) error {
	log := logging.FromContextS(ctx)

	p.ShowStatus("Fetching video information...")
	info, cat, err := c.meta.FetchVideoInfo(ctx, link)
	if err != nil {
		c.fail(p, "Failed to retrieve video information")
		return fmt.Errorf("failed to fetch metadata for %q: %w", link, err)
	}
	p.ShowVideoInfo(info)

	formatID, err := p.SelectFormat(ctx, cat)
	if err != nil {
		if errors.Is(err, app.ErrSelectionCancelled) {
			p.ShowStatus("Download cancelled")
			c.pause(completePause)
			return err
		}
		c.fail(p, "Format selection failed")
		return err
	}
	log.Infof("Selected format %q for %q", formatID, link)

	tracker := progress.NewTracker()
	tracker.SetStage("Starting download...")
	p.ShowProgress(tracker.Snapshot())

	err = p.Suspend(func() error {
		return c.dl.Download(ctx, formatID, outputDir, link)
	})
	if err != nil {
		c.fail(p, "Video download failed")
		return err
	}

	tracker.SetStage("Download complete!")
	p.ShowProgress(tracker.Snapshot())
	p.ShowStatus("Download complete!")
	c.pause(completePause)
	return nil
}

func (c *Controller) fail(p app.Presenter, msg string) {
	p.ShowError(msg)
	c.pause(errorExposure)
}
