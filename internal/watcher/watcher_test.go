package watcher

import "testing"

func TestIsRecording(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/inbox/standup.mp4", true},
		{"/inbox/Standup.MOV", true},
		{"/inbox/retro.webm", true},
		{"/inbox/notes.txt", false},
		{"/inbox/transcript.wav", false},
		{"/inbox/noext", false},
	}

	for _, tt := range tests {
		if got := isRecording(tt.path); got != tt.want {
			t.Errorf("isRecording(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
