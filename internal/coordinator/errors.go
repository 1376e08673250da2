package coordinator

import "fmt"

// CommitFailedError reports an event that exhausted its retry budget.
// The event was never partially applied; the caller may resubmit with
// the same event ID once the store recovers.
type CommitFailedError struct {
	EventID  string
	Attempts int
	Err      error
}

func (e *CommitFailedError) Error() string {
	return fmt.Sprintf("commit failed for event %s after %d attempts: %v", e.EventID, e.Attempts, e.Err)
}

func (e *CommitFailedError) Unwrap() error { return e.Err }
