package audio

import "context"

// Extractor converts a local video file into a mono PCM WAV suitable for
// speech recognition
type Extractor interface {
	Extract(ctx context.Context, videoPath string, sampleRateHz int) (string, error)
}
