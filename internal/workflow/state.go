package workflow

// State tracks a run through the coordinator's state machine
type State string

const (
	StateIdle             State = "idle"
	StateAnalysisRunning  State = "analysis-running"
	StateMerged           State = "merged"
	StateComposingMessage State = "composing-message"
	StateSent             State = "sent"
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// validNext enumerates the allowed forward transitions. Failed is reachable
// from any non-terminal state and handled separately.
var validNext = map[State]State{
	StateIdle:             StateAnalysisRunning,
	StateAnalysisRunning:  StateMerged,
	StateMerged:           StateComposingMessage,
	StateComposingMessage: StateSent,
	StateSent:             StateDone,
}

func (s State) terminal() bool {
	return s == StateDone || s == StateFailed
}
