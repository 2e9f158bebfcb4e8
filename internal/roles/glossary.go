package roles

import (
	"context"
	"fmt"
	"sort"

	"github.com/meetingmind/meetingmind/internal/llm"
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/internal/meeting"
	"github.com/meetingmind/meetingmind/internal/search"
)

// glossaryLinkBudget caps how many terms get a web reference; the rest keep
// their definition only
const glossaryLinkBudget = 5

// GlossaryWorker extracts domain terminology and researches references for
// the most prominent terms
type GlossaryWorker struct {
	client   llm.Client
	searcher search.Searcher
	logger   logger.Logger
}

// NewGlossaryWorker creates a terminology worker
func NewGlossaryWorker(client llm.Client, searcher search.Searcher, log logger.Logger) *GlossaryWorker {
	return &GlossaryWorker{client: client, searcher: searcher, logger: log}
}

// Run extracts the glossary and collects one reference link per researched
// term. Search failures leave the definitions intact.
func (w *GlossaryWorker) Run(ctx context.Context, transcript string) (meeting.GlossaryResult, error) {
	prompt := fmt.Sprintf(glossaryPrompt, truncateTranscript(transcript))

	var result meeting.GlossaryResult
	if err := generateInto(ctx, w.client, w.logger, prompt, &result); err != nil {
		return meeting.EmptyGlossary(), fmt.Errorf("glossary worker: %w", err)
	}
	if result.Terms == nil {
		result.Terms = map[string]string{}
	}
	result.Links = []meeting.Link{}

	terms := make([]string, 0, len(result.Terms))
	for term := range result.Terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) > glossaryLinkBudget {
		terms = terms[:glossaryLinkBudget]
	}

	for _, term := range terms {
		hits, err := w.searcher.Search(ctx, term+" definition")
		if err != nil {
			w.logger.Warn(ctx, "Search failed for term %q: %v", term, err)
			continue
		}
		if len(hits) == 0 {
			continue
		}
		result.Links = append(result.Links, meeting.Link{
			Title:       hits[0].Title,
			URL:         hits[0].Link,
			Description: hits[0].Snippet,
		})
	}

	w.logger.Info(ctx, "Glossary worker done: %d terms, %d links", len(result.Terms), len(result.Links))
	return result, nil
}
