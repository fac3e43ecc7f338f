package generator

// State describes the lifecycle of a single generation run.
// StateSkipped, StateCompleted and StateFailed are terminal.
type State int

// Generation run states.
const (
	StateNotStarted State = iota
	StateWriting
	StateSkipped
	StateCompleted
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateWriting:
		return "writing"
	case StateSkipped:
		return "skipped"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}
