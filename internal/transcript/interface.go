package transcript

import (
	"context"

	"github.com/meetingmind/meetingmind/internal/storage"
)

// Record is the transcript of one video. FullText is the space-joined
// segment text; Segments preserves recognizer order on a fresh
// transcription and is re-derived from sentence boundaries on a cache hit.
type Record struct {
	VideoKey string
	FullText string
	Segments []string
}

// Manager returns the transcript for a video, transcribing at most once per
// distinct cache key
type Manager interface {
	Get(ctx context.Context, locator storage.Locator) (Record, error)
}
