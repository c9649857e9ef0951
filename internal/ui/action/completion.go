package action

import "sync/atomic"

// Outcome is what the controller learned when a command finished.
type Outcome struct {
	Liked bool  // Flag value the backend reports after the operation
	Err   error // Non-nil if the operation failed or was cancelled
}

// Completion is a callback bundled with a command.
type Completion func(Outcome)

// Once wraps fn so that only the first invocation runs.
func Once(fn func(Outcome)) Completion {
	if fn == nil {
		return nil
	}
	var fired atomic.Bool
	return func(o Outcome) {
		if !fired.CompareAndSwap(false, true) {
			return
		}
		fn(o)
	}
}

// Invoke runs the completion if there is one.
func (c Completion) Invoke(o Outcome) {
	if c != nil {
		c(o)
	}
}
