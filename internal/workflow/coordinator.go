// Package workflow sequences one meeting-intelligence run: transcript
// acquisition, the concurrent analysis stage, the merge barrier, and the
// composition stage with its single-fire send guard.
package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/meeting"
)

// run carries the mutable state of one workflow execution. The coordinator
// itself is stateless across runs.
type run struct {
	*implCoordinator

	id  string
	cc  []string
	bcc []string

	mu    sync.Mutex
	state State
	sent  bool
}

// Run executes the full workflow for one video and reports the outcome.
// Exactly one email is sent on success; a Failed outcome sends nothing.
func (c *implCoordinator) Run(ctx context.Context, req Request) Outcome {
	r := &run{
		implCoordinator: c,
		id:              uuid.NewString(),
		cc:              req.CC,
		bcc:             req.BCC,
		state:           StateIdle,
	}
	return r.execute(ctx, req)
}

func (r *run) execute(ctx context.Context, req Request) Outcome {
	r.logger.Info(ctx, "Run %s started for %s", r.id, req.Locator.URI())

	rec, err := r.transcripts.Get(ctx, req.Locator)
	if err != nil {
		return r.fail(ctx, fmt.Errorf("get transcript: %w", err))
	}
	r.logger.Info(ctx, "Transcript ready for %s: %d segments, preview: %s",
		rec.VideoKey, len(rec.Segments), preview(rec.FullText))
	r.transition(ctx, StateAnalysisRunning)

	doc := r.analyze(ctx, rec.FullText)
	if err := validateDocument(doc); err != nil {
		return r.fail(ctx, err)
	}
	r.transition(ctx, StateMerged)

	if err := r.composeAndSend(ctx, doc); err != nil {
		return r.fail(ctx, err)
	}
	r.transition(ctx, StateDone)

	outcome := Outcome{RunID: r.id, Status: StatusSent, EmptyKinds: doc.DegradedKinds}
	if len(doc.DegradedKinds) > 0 {
		outcome.Status = StatusDegradedButSent
	}
	r.logger.Info(ctx, "Run %s finished: %s", r.id, outcome.Status)
	return outcome
}

// analyze fans the four analysis workers out concurrently and joins on all
// of them before merging. Merge order is irrelevant: each kind owns one
// document field, and a failed worker contributes its empty value.
func (r *run) analyze(ctx context.Context, transcriptText string) meeting.Document {
	var (
		wg sync.WaitGroup

		summaryRes  meeting.SummaryResult
		actionsRes  meeting.ActionsResult
		clarifyRes  meeting.ClarifyResult
		glossaryRes meeting.GlossaryResult

		summaryErr, actionsErr, clarifyErr, glossaryErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		summaryRes, summaryErr = r.summary.Run(ctx, transcriptText)
	}()
	go func() {
		defer wg.Done()
		actionsRes, actionsErr = r.actions.Run(ctx, transcriptText)
	}()
	go func() {
		defer wg.Done()
		clarifyRes, clarifyErr = r.clarify.Run(ctx, transcriptText)
	}()
	go func() {
		defer wg.Done()
		glossaryRes, glossaryErr = r.glossary.Run(ctx, transcriptText)
	}()
	wg.Wait()

	doc := meeting.NewDocument()

	if summaryErr != nil {
		r.logger.Warn(ctx, "Summary worker degraded: %v", summaryErr)
		doc.DegradedKinds = append(doc.DegradedKinds, meeting.KindSummary)
		summaryRes = meeting.EmptySummary()
	}
	doc.Title = summaryRes.Title
	doc.Date = summaryRes.Date
	doc.Attendees = summaryRes.Attendees
	doc.Summary = summaryRes.Overview
	doc.KeyTakeaways = summaryRes.KeyTakeaways

	if actionsErr != nil {
		r.logger.Warn(ctx, "Actions worker degraded: %v", actionsErr)
		doc.DegradedKinds = append(doc.DegradedKinds, meeting.KindActionItems)
		actionsRes = meeting.EmptyActions()
	}
	doc.ActionItems = actionsRes.Items

	if clarifyErr != nil {
		r.logger.Warn(ctx, "Clarify worker degraded: %v", clarifyErr)
		doc.DegradedKinds = append(doc.DegradedKinds, meeting.KindClarifications)
		clarifyRes = meeting.EmptyClarifications()
	}
	doc.Clarifications = clarifyRes.Items

	if glossaryErr != nil {
		r.logger.Warn(ctx, "Glossary worker degraded: %v", glossaryErr)
		doc.DegradedKinds = append(doc.DegradedKinds, meeting.KindGlossary)
		glossaryRes = meeting.EmptyGlossary()
	}
	doc.Glossary = glossaryRes.Terms
	doc.Links = glossaryRes.Links

	return doc
}

// composeAndSend runs the composition stage. The sent flag makes the send
// one-shot: reentrant invocation within a run can never deliver twice.
func (r *run) composeAndSend(ctx context.Context, doc meeting.Document) error {
	r.mu.Lock()
	if r.sent {
		r.mu.Unlock()
		r.logger.Warn(ctx, "Run %s composition re-entered after send, ignoring", r.id)
		return nil
	}
	r.mu.Unlock()

	r.transition(ctx, StateComposingMessage)
	msg := r.composer.Compose(ctx, doc, r.cc, r.bcc)

	r.mu.Lock()
	if r.sent {
		r.mu.Unlock()
		return nil
	}
	r.sent = true
	r.mu.Unlock()

	if err := r.composer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	r.transition(ctx, StateSent)
	return nil
}

func (r *run) transition(ctx context.Context, to State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.terminal() {
		return
	}
	if next, ok := validNext[r.state]; !ok || next != to {
		r.logger.Warn(ctx, "Run %s ignoring invalid transition %s -> %s", r.id, r.state, to)
		return
	}
	r.logger.Debug(ctx, "Run %s transition %s -> %s", r.id, r.state, to)
	r.state = to
}

func (r *run) fail(ctx context.Context, err error) Outcome {
	r.mu.Lock()
	r.state = StateFailed
	r.mu.Unlock()

	r.logger.Error(ctx, "Run %s failed: %v", r.id, err)
	return Outcome{RunID: r.id, Status: StatusFailed, EmptyKinds: []meeting.Kind{}, Err: err}
}

// previewLimit bounds the transcript excerpt written to the log
const previewLimit = 160

func preview(text string) string {
	if len(text) <= previewLimit {
		return text
	}
	return text[:previewLimit] + "..."
}

// validateDocument enforces the merge invariant: every contribution kind is
// present as a container, possibly empty, never nil
func validateDocument(doc meeting.Document) error {
	if doc.Attendees == nil || doc.KeyTakeaways == nil || doc.ActionItems == nil ||
		doc.Clarifications == nil || doc.Glossary == nil || doc.Links == nil {
		return fmt.Errorf("merged document has a missing contribution container: %w", apperrors.ErrAggregation)
	}
	return nil
}
