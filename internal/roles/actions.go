package roles

import (
	"context"
	"fmt"

	"github.com/meetingmind/meetingmind/internal/directory"
	"github.com/meetingmind/meetingmind/internal/llm"
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/internal/meeting"
)

// ActionsWorker extracts action items and resolves owner contacts through
// the employee directory
type ActionsWorker struct {
	client    llm.Client
	directory directory.Directory
	logger    logger.Logger
}

// NewActionsWorker creates an action-item worker
func NewActionsWorker(client llm.Client, dir directory.Directory, log logger.Logger) *ActionsWorker {
	return &ActionsWorker{client: client, directory: dir, logger: log}
}

// Run extracts action items from the transcript. An owner the directory
// cannot resolve keeps the item with OwnerEmail empty; items are never
// dropped over a failed lookup.
func (w *ActionsWorker) Run(ctx context.Context, transcript string) (meeting.ActionsResult, error) {
	prompt := fmt.Sprintf(actionsPrompt, truncateTranscript(transcript))

	var result meeting.ActionsResult
	if err := generateInto(ctx, w.client, w.logger, prompt, &result); err != nil {
		return meeting.EmptyActions(), fmt.Errorf("actions worker: %w", err)
	}
	if result.Items == nil {
		result.Items = []meeting.ActionItem{}
	}

	for i, item := range result.Items {
		if item.Owner == "" {
			continue
		}
		profile, found := w.directory.Lookup(ctx, item.Owner)
		if !found {
			w.logger.Debug(ctx, "No directory match for owner %q", item.Owner)
			continue
		}
		result.Items[i].Owner = profile.Name
		result.Items[i].OwnerEmail = profile.Email
	}

	w.logger.Info(ctx, "Actions worker done: %d items", len(result.Items))
	return result, nil
}
