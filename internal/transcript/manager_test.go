package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/config"
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/internal/storage"
	"github.com/meetingmind/meetingmind/internal/transcriber"
)

// fakeStore keeps text blobs in memory and records operation order
type fakeStore struct {
	texts map[string]string
	calls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{texts: map[string]string{}}
}

func (f *fakeStore) blobKey(bucket, key string) string { return bucket + "/" + key }

func (f *fakeStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	f.calls = append(f.calls, "exists:"+key)
	_, ok := f.texts[f.blobKey(bucket, key)]
	return ok, nil
}

func (f *fakeStore) ReadText(ctx context.Context, bucket, key string) (string, error) {
	f.calls = append(f.calls, "read:"+key)
	text, ok := f.texts[f.blobKey(bucket, key)]
	if !ok {
		return "", fmt.Errorf("no blob %s: %w", key, apperrors.ErrStorage)
	}
	return text, nil
}

func (f *fakeStore) WriteText(ctx context.Context, bucket, key, text string) error {
	f.calls = append(f.calls, "write:"+key)
	f.texts[f.blobKey(bucket, key)] = text
	return nil
}

func (f *fakeStore) Download(ctx context.Context, bucket, key, localPath string) error {
	f.calls = append(f.calls, "download:"+key)
	return os.WriteFile(localPath, []byte("video-bytes"), 0644)
}

func (f *fakeStore) Upload(ctx context.Context, localPath, bucket, key string) (string, error) {
	f.calls = append(f.calls, "upload:"+key)
	return storage.Locator{Bucket: bucket, Key: key}.URI(), nil
}

type fakeExtractor struct {
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, videoPath string, sampleRateHz int) (string, error) {
	f.calls++
	audioPath := videoPath[:len(videoPath)-len(filepath.Ext(videoPath))] + ".wav"
	if err := os.WriteFile(audioPath, []byte("wav-bytes"), 0644); err != nil {
		return "", err
	}
	return audioPath, nil
}

type fakeTranscriber struct {
	segments []string
	err      error
	calls    int
	lastReq  transcriber.Request
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, req transcriber.Request) ([]string, error) {
	f.calls++
	f.lastReq = req
	return f.segments, f.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		GCS:    config.GCSConfig{Bucket: "bucket"},
		Gemini: config.GeminiConfig{APIKeys: []string{"k"}},
		SMTP: config.SMTPConfig{
			Host:            "mail.example.com",
			Sender:          "a@example.com",
			FixedRecipients: []string{"b@example.com"},
		},
		Paths: config.PathsConfig{Temp: t.TempDir()},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestGetCacheMiss(t *testing.T) {
	store := newFakeStore()
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{segments: []string{"Hello everyone.", "Let's start the standup."}}
	m := New(testConfig(t), store, ext, tr, logger.New("error", "text"))

	loc, _ := storage.ParseLocator("gs://bucket/video/standup.mp4")
	rec, err := m.Get(context.Background(), loc)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	want := "Hello everyone. Let's start the standup."
	if rec.FullText != want {
		t.Errorf("FullText = %q, want %q", rec.FullText, want)
	}
	if rec.VideoKey != "standup" {
		t.Errorf("VideoKey = %q, want standup", rec.VideoKey)
	}
	if len(rec.Segments) != 2 {
		t.Errorf("len(Segments) = %d, want 2", len(rec.Segments))
	}
	if ext.calls != 1 || tr.calls != 1 {
		t.Errorf("extractor calls = %d, transcriber calls = %d, want 1 each", ext.calls, tr.calls)
	}
	if tr.lastReq.AudioURI != "gs://bucket/audio/standup.wav" {
		t.Errorf("AudioURI = %q", tr.lastReq.AudioURI)
	}

	// extraction and audio upload happen before transcription, transcript write last
	wantOrder := []string{
		"exists:transcription/standup.txt",
		"download:video/standup.mp4",
		"upload:audio/standup.wav",
		"write:transcription/standup.txt",
	}
	i := 0
	for _, call := range store.calls {
		if i < len(wantOrder) && call == wantOrder[i] {
			i++
		}
	}
	if i != len(wantOrder) {
		t.Errorf("store calls out of order: %v", store.calls)
	}
}

func TestGetIdempotent(t *testing.T) {
	store := newFakeStore()
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{segments: []string{"First point.", "Second point."}}
	m := New(testConfig(t), store, ext, tr, logger.New("error", "text"))

	loc, _ := storage.ParseLocator("gs://bucket/video/standup.mp4")
	ctx := context.Background()

	first, err := m.Get(ctx, loc)
	if err != nil {
		t.Fatalf("first Get() error = %v", err)
	}
	second, err := m.Get(ctx, loc)
	if err != nil {
		t.Fatalf("second Get() error = %v", err)
	}

	if first.FullText != second.FullText {
		t.Errorf("second FullText = %q, want %q", second.FullText, first.FullText)
	}
	if tr.calls != 1 {
		t.Errorf("transcriber calls = %d, want 1 across both gets", tr.calls)
	}
	if ext.calls != 1 {
		t.Errorf("extractor calls = %d, want 1 across both gets", ext.calls)
	}
}

func TestGetSegmentsRederivedOnHit(t *testing.T) {
	store := newFakeStore()
	store.texts["bucket/transcription/standup.txt"] = "First point. Second point. Third point."
	m := New(testConfig(t), store, &fakeExtractor{}, &fakeTranscriber{}, logger.New("error", "text"))

	loc, _ := storage.ParseLocator("gs://bucket/video/standup.mp4")
	rec, err := m.Get(context.Background(), loc)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if len(rec.Segments) != 3 {
		t.Errorf("len(Segments) = %d, want 3: %v", len(rec.Segments), rec.Segments)
	}
}

func TestGetNoPartialCacheOnTimeout(t *testing.T) {
	store := newFakeStore()
	ext := &fakeExtractor{}
	tr := &fakeTranscriber{err: fmt.Errorf("recognize: %w", apperrors.ErrTranscriptionTimeout)}
	m := New(testConfig(t), store, ext, tr, logger.New("error", "text"))

	loc, _ := storage.ParseLocator("gs://bucket/video/standup.mp4")
	_, err := m.Get(context.Background(), loc)
	if !apperrors.IsTranscriptionTimeout(err) {
		t.Fatalf("Get() error = %v, want transcription timeout", err)
	}

	if _, ok := store.texts["bucket/transcription/standup.txt"]; ok {
		t.Error("transcript blob written despite transcription failure")
	}

	// a later run must see a miss and transcribe again
	tr.err = nil
	tr.segments = []string{"Recovered."}
	if _, err := m.Get(context.Background(), loc); err != nil {
		t.Fatalf("retry Get() error = %v", err)
	}
	if tr.calls != 2 {
		t.Errorf("transcriber calls = %d, want 2", tr.calls)
	}
}

func TestGetBaseNameCollision(t *testing.T) {
	store := newFakeStore()
	tr := &fakeTranscriber{segments: []string{"From the first video."}}
	m := New(testConfig(t), store, &fakeExtractor{}, tr, logger.New("error", "text"))
	ctx := context.Background()

	locA, _ := storage.ParseLocator("gs://bucket/video/standup.mp4")
	if _, err := m.Get(ctx, locA); err != nil {
		t.Fatal(err)
	}

	// same base name under a different prefix hits the same cache entry
	locB, _ := storage.ParseLocator("gs://bucket/archive/standup.mov")
	rec, err := m.Get(ctx, locB)
	if err != nil {
		t.Fatal(err)
	}
	if rec.FullText != "From the first video." {
		t.Errorf("FullText = %q, want collision with first video", rec.FullText)
	}
	if tr.calls != 1 {
		t.Errorf("transcriber calls = %d, want 1", tr.calls)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"One. Two. Three.", 3},
		{"Single sentence", 1},
		{"", 0},
	}

	for _, tt := range tests {
		if got := splitSentences(tt.text); len(got) != tt.want {
			t.Errorf("splitSentences(%q) = %v, want %d parts", tt.text, got, tt.want)
		}
	}
}
