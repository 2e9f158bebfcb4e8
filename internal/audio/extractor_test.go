package audio

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/logger"
)

type fakeExecutor struct {
	name string
	args []string
	err  error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return "", f.err
}

func TestExtract(t *testing.T) {
	exec := &fakeExecutor{}
	e := New(exec, logger.New("error", "text"))

	audioPath, err := e.Extract(context.Background(), "/tmp/standup.mp4", 16000)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if audioPath != "/tmp/standup.wav" {
		t.Errorf("audioPath = %s, want /tmp/standup.wav", audioPath)
	}
	if exec.name != "ffmpeg" {
		t.Errorf("command = %s, want ffmpeg", exec.name)
	}

	joined := strings.Join(exec.args, " ")
	for _, want := range []string{"-vn", "-ac 1", "-ar 16000", "-f wav"} {
		if !strings.Contains(joined, want) {
			t.Errorf("ffmpeg args missing %q: %s", want, joined)
		}
	}
}

func TestExtractCorruptInput(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("moov atom not found")}
	e := New(exec, logger.New("error", "text"))

	_, err := e.Extract(context.Background(), "/tmp/broken.mp4", 16000)
	if err == nil {
		t.Fatal("Extract() expected error for corrupt input")
	}
	if !apperrors.IsInput(err) {
		t.Errorf("error %v is not an input error", err)
	}
}
