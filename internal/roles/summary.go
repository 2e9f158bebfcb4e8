package roles

import (
	"context"
	"fmt"

	"github.com/meetingmind/meetingmind/internal/llm"
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/internal/meeting"
)

// SummaryWorker produces the meeting overview and best-effort metadata
type SummaryWorker struct {
	client llm.Client
	logger logger.Logger
}

// NewSummaryWorker creates a summary worker
func NewSummaryWorker(client llm.Client, log logger.Logger) *SummaryWorker {
	return &SummaryWorker{client: client, logger: log}
}

// Run summarizes the transcript
func (w *SummaryWorker) Run(ctx context.Context, transcript string) (meeting.SummaryResult, error) {
	prompt := fmt.Sprintf(summaryPrompt, truncateTranscript(transcript))

	var result meeting.SummaryResult
	if err := generateInto(ctx, w.client, w.logger, prompt, &result); err != nil {
		return meeting.EmptySummary(), fmt.Errorf("summary worker: %w", err)
	}

	if result.Attendees == nil {
		result.Attendees = []string{}
	}
	if result.KeyTakeaways == nil {
		result.KeyTakeaways = []string{}
	}

	w.logger.Info(ctx, "Summary worker done: %d takeaways, %d attendees",
		len(result.KeyTakeaways), len(result.Attendees))
	return result, nil
}
