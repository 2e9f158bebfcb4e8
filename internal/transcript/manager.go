// Package transcript caches meeting transcripts in the object store, keyed
// by the video's base file name. The cached blob at
// <transcript_prefix>/<key>.txt is the source of truth: a hit never touches
// the recognizer, and the blob is written only after a transcription fully
// succeeds, so a crash mid-pipeline leaves no stale entry behind.
//
// The key deliberately ignores the video's directory and content, so two
// different videos named standup.mp4 collide on one cache entry. Concurrent
// first-time runs for one key are not locked against each other; both
// transcribe and the last write wins.
package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meetingmind/meetingmind/internal/storage"
	"github.com/meetingmind/meetingmind/internal/transcriber"
)

// Get returns the transcript for the video, using the cached blob when one
// exists and running the full download-extract-transcribe pipeline otherwise
func (m *implManager) Get(ctx context.Context, locator storage.Locator) (Record, error) {
	key := locator.BaseName()
	transcriptKey := fmt.Sprintf("%s/%s.txt", m.cfg.GCS.TranscriptPrefix, key)

	hit, err := m.store.Exists(ctx, locator.Bucket, transcriptKey)
	if err != nil {
		return Record{}, fmt.Errorf("check transcript cache: %w", err)
	}

	if hit {
		m.logger.Info(ctx, "Transcript cache hit: gs://%s/%s", locator.Bucket, transcriptKey)
		text, err := m.store.ReadText(ctx, locator.Bucket, transcriptKey)
		if err != nil {
			return Record{}, fmt.Errorf("read cached transcript: %w", err)
		}
		return Record{
			VideoKey: key,
			FullText: text,
			Segments: splitSentences(text),
		}, nil
	}

	m.logger.Info(ctx, "Transcript cache miss for %s, transcribing", locator.URI())
	return m.transcribe(ctx, locator, key, transcriptKey)
}

func (m *implManager) transcribe(ctx context.Context, locator storage.Locator, key, transcriptKey string) (Record, error) {
	videoPath := filepath.Join(m.cfg.Paths.Temp, filepath.Base(locator.Key))
	if err := m.store.Download(ctx, locator.Bucket, locator.Key, videoPath); err != nil {
		return Record{}, fmt.Errorf("download video: %w", err)
	}
	defer m.removeTemp(ctx, videoPath)

	audioPath, err := m.extractor.Extract(ctx, videoPath, m.cfg.Transcription.SampleRateHz)
	if err != nil {
		return Record{}, fmt.Errorf("extract audio: %w", err)
	}
	defer m.removeTemp(ctx, audioPath)

	audioKey := fmt.Sprintf("%s/%s.wav", m.cfg.GCS.AudioPrefix, key)
	audioURI, err := m.store.Upload(ctx, audioPath, locator.Bucket, audioKey)
	if err != nil {
		return Record{}, fmt.Errorf("upload audio: %w", err)
	}

	segments, err := m.transcriber.Transcribe(ctx, transcriber.Request{
		AudioURI:     audioURI,
		SampleRateHz: m.cfg.Transcription.SampleRateHz,
		LanguageCode: m.cfg.Transcription.LanguageCode,
		Encoding:     m.cfg.Transcription.Encoding,
		Model:        m.cfg.Transcription.Model,
		TimeoutSec:   m.cfg.Transcription.TimeoutSeconds,
	})
	if err != nil {
		return Record{}, err
	}

	fullText := strings.Join(segments, " ")

	// Cache write happens only after a fully successful transcription
	if err := m.store.WriteText(ctx, locator.Bucket, transcriptKey, fullText); err != nil {
		return Record{}, fmt.Errorf("cache transcript: %w", err)
	}
	m.logger.Info(ctx, "Transcript cached: gs://%s/%s", locator.Bucket, transcriptKey)

	return Record{
		VideoKey: key,
		FullText: fullText,
		Segments: segments,
	}, nil
}

func (m *implManager) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		m.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}

// splitSentences re-derives segment boundaries from cached text. Lossy but
// deterministic; the recognizer's original boundaries are not stored.
func splitSentences(text string) []string {
	parts := strings.Split(text, ". ")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
