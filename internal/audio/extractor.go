package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/pkg/executor"
)

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates an ffmpeg-backed Extractor
func New(exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{executor: exec, logger: log}
}

// Extract strips the video track and resamples the audio to a mono 16-bit
// PCM WAV at the requested rate. The output lands next to the input file.
func (e *implExtractor) Extract(ctx context.Context, videoPath string, sampleRateHz int) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".wav"

	e.logger.Info(ctx, "Extracting audio: %s (%d Hz mono)", videoPath, sampleRateHz)

	// -vn: no video
	// -ac 1: mono channel
	// -ar: target sample rate
	// -f wav: PCM 16-bit container
	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(sampleRateHz),
		"-f", "wav",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %v: %w", err, apperrors.ErrInput)
	}

	e.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
