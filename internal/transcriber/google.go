package transcriber

import (
	"context"
	"errors"
	"fmt"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/logger"
)

type implTranscriber struct {
	client *speech.Client
	logger logger.Logger
}

// New creates a Transcriber backed by the Google Speech-to-Text
// long-running recognizer
func New(ctx context.Context, log logger.Logger) (Transcriber, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	return &implTranscriber{client: client, logger: log}, nil
}

// Transcribe runs a long-running recognition bounded by req.TimeoutSec and
// returns the top-alternative text of each result in order
func (t *implTranscriber) Transcribe(ctx context.Context, req Request) ([]string, error) {
	encoding, ok := speechpb.RecognitionConfig_AudioEncoding_value[req.Encoding]
	if !ok {
		return nil, fmt.Errorf("unknown audio encoding %q: %w", req.Encoding, apperrors.ErrInput)
	}

	t.logger.Info(ctx, "Transcribing %s (lang=%s model=%s rate=%d)",
		req.AudioURI, req.LanguageCode, req.Model, req.SampleRateHz)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(req.TimeoutSec)*time.Second)
	defer cancel()

	op, err := t.client.LongRunningRecognize(ctx, &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_AudioEncoding(encoding),
			SampleRateHertz: int32(req.SampleRateHz),
			LanguageCode:    req.LanguageCode,
			Model:           req.Model,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Uri{Uri: req.AudioURI},
		},
	})
	if err != nil {
		return nil, wrapRecognizeErr(err)
	}

	resp, err := op.Wait(ctx)
	if err != nil {
		return nil, wrapRecognizeErr(err)
	}

	segments := make([]string, 0, len(resp.Results))
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		segments = append(segments, result.Alternatives[0].Transcript)
	}

	t.logger.Info(ctx, "Transcription returned %d segments", len(segments))
	return segments, nil
}

func wrapRecognizeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("long-running recognize: %v: %w", err, apperrors.ErrTranscriptionTimeout)
	}
	return fmt.Errorf("long-running recognize: %v: %w", err, apperrors.ErrCapability)
}
