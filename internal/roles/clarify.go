package roles

import (
	"context"
	"fmt"

	"github.com/meetingmind/meetingmind/internal/llm"
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/internal/meeting"
	"github.com/meetingmind/meetingmind/internal/search"
)

// ClarifyWorker surfaces ambiguous statements and researches them with the
// web search capability
type ClarifyWorker struct {
	client   llm.Client
	searcher search.Searcher
	logger   logger.Logger
}

// NewClarifyWorker creates a clarification worker
func NewClarifyWorker(client llm.Client, searcher search.Searcher, log logger.Logger) *ClarifyWorker {
	return &ClarifyWorker{client: client, searcher: searcher, logger: log}
}

// Run extracts unclear statements and attaches source links found by
// searching for each one. Search failures degrade that item's links only.
func (w *ClarifyWorker) Run(ctx context.Context, transcript string) (meeting.ClarifyResult, error) {
	prompt := fmt.Sprintf(clarifyPrompt, truncateTranscript(transcript))

	var result meeting.ClarifyResult
	if err := generateInto(ctx, w.client, w.logger, prompt, &result); err != nil {
		return meeting.EmptyClarifications(), fmt.Errorf("clarify worker: %w", err)
	}
	if result.Items == nil {
		result.Items = []meeting.Clarification{}
	}

	for i, item := range result.Items {
		hits, err := w.searcher.Search(ctx, item.Statement)
		if err != nil {
			w.logger.Warn(ctx, "Search failed for %q: %v", item.Statement, err)
			continue
		}
		links := make([]string, 0, len(hits))
		for _, hit := range hits {
			links = append(links, hit.Link)
		}
		result.Items[i].SourceLinks = links
	}

	w.logger.Info(ctx, "Clarify worker done: %d items", len(result.Items))
	return result, nil
}
