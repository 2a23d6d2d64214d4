package app

// Format is one selectable download option of a video. Resolution is empty
// for audio-only streams; Filesize is 0 when the tool does not report one.
type Format struct {
	ID         string
	Resolution string
	Ext        string
	Filesize   int64
}

// Catalog is the ordered list of formats for a single video, best first,
// as reported by the metadata fetch. It is immutable once built.
type Catalog []Format

// VideoInfo is the header-line metadata of a video.
type VideoInfo struct {
	Title           string
	Channel         string
	DurationSeconds int64
}
