// Package roles implements the specialized analysis workers that turn a raw
// meeting transcript into typed contributions, and the composition worker
// that renders the merged document into an outbound email.
//
// Workers share no mutable state. Each one holds a bounded budget against
// the reasoning capability: up to maxAttempts calls per prompt and up to
// maxIterations prompt refinements when a response fails to parse. A worker
// that exhausts its budget reports the error to its caller, which records
// the kind as degraded and substitutes the empty contribution.
package roles

import (
	"context"
	"fmt"
	"time"

	"github.com/meetingmind/meetingmind/internal/llm"
	"github.com/meetingmind/meetingmind/internal/logger"
)

const (
	// maxAttempts bounds calls to the reasoning capability per prompt
	maxAttempts = 3
	// maxIterations bounds prompt refinements after malformed responses
	maxIterations = 2

	retryDelay = 2 * time.Second

	// transcriptLimit truncates pathological transcripts before prompting
	transcriptLimit = 120_000
)

// generate calls the reasoning capability with bounded retries
func generate(ctx context.Context, client llm.Client, log logger.Logger, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		response, err := client.Generate(ctx, prompt)
		if err == nil {
			return response, nil
		}
		lastErr = err
		log.Warn(ctx, "Generation attempt %d/%d failed: %v", attempt, maxAttempts, err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return "", fmt.Errorf("generation budget exhausted: %w", lastErr)
}

// generateInto prompts for JSON and decodes it into v, refining the prompt
// once with the parse error before giving up
func generateInto(ctx context.Context, client llm.Client, log logger.Logger, prompt string, v interface{}) error {
	current := prompt
	var lastErr error

	for iteration := 1; iteration <= maxIterations; iteration++ {
		response, err := generate(ctx, client, log, current)
		if err != nil {
			return err
		}

		if err := decodeJSON(response, v); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn(ctx, "Response parse failed on iteration %d/%d: %v", iteration, maxIterations, err)
			current = fmt.Sprintf("%s\n\nYour previous response could not be parsed (%v). Respond with valid JSON only, no prose.", prompt, err)
		}
	}

	return fmt.Errorf("response never parsed: %w", lastErr)
}

func truncateTranscript(transcript string) string {
	if len(transcript) <= transcriptLimit {
		return transcript
	}
	return transcript[:transcriptLimit]
}
