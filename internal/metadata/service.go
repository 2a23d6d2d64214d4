package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ytgrab/ytgrab/internal/app"
	"github.com/ytgrab/ytgrab/internal/logging"
)

// maxPayloadSize caps the metadata document the tool may hand us.
const maxPayloadSize = 1 << 20

var (
	// ErrNoFormats is returned when the video reports no download options.
	ErrNoFormats = errors.New("video has no downloadable formats")
	// ErrBadPayload is wrapped by metadata documents we cannot decode.
	ErrBadPayload = errors.New("failed to decode video metadata")
)

// Service fetches video metadata by running the external tool with the
// single-line JSON flag and decoding its captured output into a catalog.
type Service struct {
	runner app.Runner
	tool   string
}

func New(runner app.Runner, tool string) *Service {
	return &Service{runner: runner, tool: tool}
}

// videoDocument mirrors the fields of the tool's JSON dump we care about.
type videoDocument struct {
	Title    string  `json:"title"`
	Channel  string  `json:"channel"`
	Duration float64 `json:"duration"`
	Formats  []struct {
		FormatID   string `json:"format_id"`
		Resolution string `json:"resolution"`
		Ext        string `json:"ext"`
		Filesize   *int64 `json:"filesize"`
	} `json:"formats"`
}

// FetchVideoInfo validates the link, runs the metadata fetch and decodes
// the result. The catalog order is the tool's own (best candidates first).
func (s *Service) FetchVideoInfo(ctx context.Context, link string) (app.VideoInfo, app.Catalog, error) {
	log := logging.FromContextS(ctx)
	if err := ValidateLink(link); err != nil {
		return app.VideoInfo{}, nil, fmt.Errorf("invalid video link: %w", err)
	}

	raw, err := s.runner.RunCapturing(ctx, s.tool, "-j", link)
	if err != nil {
		return app.VideoInfo{}, nil, fmt.Errorf("failed to fetch video metadata: %w", err)
	}
	if len(raw) == 0 {
		return app.VideoInfo{}, nil, fmt.Errorf("%w: empty document", ErrBadPayload)
	}
	if len(raw) > maxPayloadSize {
		return app.VideoInfo{}, nil, fmt.Errorf("%w: document too large (%d bytes)", ErrBadPayload, len(raw))
	}

	var doc videoDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return app.VideoInfo{}, nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if len(doc.Formats) == 0 {
		return app.VideoInfo{}, nil, ErrNoFormats
	}
	log.Infof("Got video metadata with %d formats", len(doc.Formats))

	cat := make(app.Catalog, 0, len(doc.Formats))
	for _, f := range doc.Formats {
		entry := app.Format{
			ID:         f.FormatID,
			Resolution: normalizeResolution(f.Resolution),
			Ext:        f.Ext,
		}
		if f.Filesize != nil && *f.Filesize > 0 {
			entry.Filesize = *f.Filesize
		}
		cat = append(cat, entry)
	}
	info := app.VideoInfo{
		Title:           doc.Title,
		Channel:         doc.Channel,
		DurationSeconds: int64(doc.Duration),
	}
	return info, cat, nil
}

// normalizeResolution maps the tool's audio-only markers onto the empty
// string so the rest of the code has one notion of "no resolution".
func normalizeResolution(res string) string {
	if res == "audio only" || res == "N/A" {
		return ""
	}
	return res
}
