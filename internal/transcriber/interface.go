package transcriber

import "context"

// Request carries the recognizer parameters for one audio object
type Request struct {
	AudioURI     string
	SampleRateHz int
	LanguageCode string
	Encoding     string
	Model        string
	TimeoutSec   int
}

// Transcriber converts stored audio into ordered transcript segments
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) ([]string, error)
}
