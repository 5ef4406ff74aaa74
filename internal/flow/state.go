package flow

// State is the engine's explicit lifecycle state. It is derived after
// every mutation rather than scattered across boolean flags, so guards
// read one value.
type State int

const (
	// StateIdle: no question answered yet, cursor at the start.
	StateIdle State = iota
	// StateInProgress: at least one answer recorded, path unfinished.
	StateInProgress
	// StateAwaitingCompletion: cursor moved past the last rendered
	// question but the path is not fully answered (an earlier answer
	// was edited away).
	StateAwaitingCompletion
	// StateCompleted: every question on the active path is answered;
	// final submission not yet confirmed.
	StateCompleted
	// StateSubmitted: terminal. No further transitions.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in_progress"
	case StateAwaitingCompletion:
		return "awaiting_completion"
	case StateCompleted:
		return "completed"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}
