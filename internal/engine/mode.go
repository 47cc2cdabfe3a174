package engine

import "errors"

// Mode selects how command failures steer a run.
type Mode int

const (
	// RunAll executes every command in order regardless of failures.
	RunAll Mode = iota
	// StopOnFail chains the commands with && so the shell stops at the
	// first failure.
	StopOnFail
	// StopOnSuccess chains the commands with || so the shell stops at the
	// first success.
	StopOnSuccess
)

// ErrModeConflict is returned when both stop modes are requested at once.
var ErrModeConflict = errors.New("--stop-on-fail and --stop-on-success are mutually exclusive")

// SelectMode maps the two stop flags onto a Mode. Requesting both fails
// before any workflow is loaded or process spawned.
func SelectMode(stopOnFail, stopOnSuccess bool) (Mode, error) {
	switch {
	case stopOnFail && stopOnSuccess:
		return RunAll, ErrModeConflict
	case stopOnFail:
		return StopOnFail, nil
	case stopOnSuccess:
		return StopOnSuccess, nil
	default:
		return RunAll, nil
	}
}

func (m Mode) String() string {
	switch m {
	case StopOnFail:
		return "stop-on-fail"
	case StopOnSuccess:
		return "stop-on-success"
	default:
		return "run-all"
	}
}

// Operator returns the shell chaining operator for the mode, or the empty
// string for RunAll.
func (m Mode) Operator() string {
	switch m {
	case StopOnFail:
		return "&&"
	case StopOnSuccess:
		return "||"
	default:
		return ""
	}
}
