package workflow

import (
	"context"

	"github.com/meetingmind/meetingmind/internal/mailer"
	"github.com/meetingmind/meetingmind/internal/meeting"
	"github.com/meetingmind/meetingmind/internal/storage"
)

// Request describes one workflow run. CC and BCC are run-supplied extras on
// top of the configured fixed recipients.
type Request struct {
	Locator storage.Locator
	CC      []string
	BCC     []string
}

// Status is the user-visible terminal result of a run
type Status string

const (
	StatusSent            Status = "sent"
	StatusDegradedButSent Status = "degraded-but-sent"
	StatusFailed          Status = "failed"
)

// Outcome reports how a run ended. EmptyKinds lists the contribution slots
// whose worker degraded to an empty result.
type Outcome struct {
	RunID      string
	Status     Status
	EmptyKinds []meeting.Kind
	Err        error
}

// Coordinator drives one workflow run end to end
type Coordinator interface {
	Run(ctx context.Context, req Request) Outcome
}

// Analysis-stage worker contracts. Each returns its typed contribution; an
// error marks the kind degraded and substitutes the empty contribution.
type (
	SummaryWorker interface {
		Run(ctx context.Context, transcript string) (meeting.SummaryResult, error)
	}
	ActionsWorker interface {
		Run(ctx context.Context, transcript string) (meeting.ActionsResult, error)
	}
	ClarifyWorker interface {
		Run(ctx context.Context, transcript string) (meeting.ClarifyResult, error)
	}
	GlossaryWorker interface {
		Run(ctx context.Context, transcript string) (meeting.GlossaryResult, error)
	}
)

// ComposerWorker is the composition-stage contract: build the outbound
// message, then deliver it. Only the coordinator may invoke Send, at most
// once per run.
type ComposerWorker interface {
	Compose(ctx context.Context, doc meeting.Document, cc, bcc []string) mailer.Message
	Send(ctx context.Context, msg mailer.Message) error
}
