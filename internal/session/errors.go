package session

import "fmt"

// ClosedError reports an operation against a session that has ended or
// never existed. No partial writes happen after closure.
type ClosedError struct {
	SessionID string
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("session closed: %s", e.SessionID)
}
