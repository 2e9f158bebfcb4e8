package workflow

import (
	"github.com/meetingmind/meetingmind/internal/logger"
	"github.com/meetingmind/meetingmind/internal/transcript"
)

type implCoordinator struct {
	transcripts transcript.Manager
	summary     SummaryWorker
	actions     ActionsWorker
	clarify     ClarifyWorker
	glossary    GlossaryWorker
	composer    ComposerWorker
	logger      logger.Logger
}

// New creates a Coordinator over the transcript manager and the five role
// workers
func New(
	transcripts transcript.Manager,
	summary SummaryWorker,
	actions ActionsWorker,
	clarify ClarifyWorker,
	glossary GlossaryWorker,
	composer ComposerWorker,
	log logger.Logger,
) Coordinator {
	return &implCoordinator{
		transcripts: transcripts,
		summary:     summary,
		actions:     actions,
		clarify:     clarify,
		glossary:    glossary,
		composer:    composer,
		logger:      log,
	}
}
