package store

import "fmt"

// ConflictError reports an optimistic-concurrency version mismatch on
// PutRecord. The coordinator retries these; they only persist past the
// retry budget when an external writer is racing the engine.
type ConflictError struct {
	LearnerID string
	UnitID    string
	Expected  int64
	Actual    int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("concurrent write conflict on (%s, %s): expected version %d, found %d",
		e.LearnerID, e.UnitID, e.Expected, e.Actual)
}

// UnavailableError wraps a backend failure (connection loss, disk error).
// Treated as transient by the coordinator's retry policy.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
