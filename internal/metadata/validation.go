package metadata

import (
	"fmt"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// ValidateLink checks that link points at a YouTube video before it is
// handed to the external tool.
func ValidateLink(link string) error {
	if !strings.Contains(link, "youtu.be/") && !strings.Contains(link, "youtube.com/") {
		return fmt.Errorf("string %q doesn't contain youtube host", link)
	}
	if _, err := youtube.ExtractVideoID(link); err != nil {
		return fmt.Errorf("failed to extract video id from link: %w", err)
	}
	return nil
}
