package progress

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed update: unknown unit, fraction
// outside [0,1], negative time. Rejected synchronously, nothing applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PrerequisiteUnmetError reports a section update blocked by incomplete
// prerequisites. Recoverable: complete the prerequisites and resubmit,
// or resubmit with the administrative override flag.
type PrerequisiteUnmetError struct {
	UnitID  string
	Missing []string
}

func (e *PrerequisiteUnmetError) Error() string {
	return fmt.Sprintf("prerequisites unmet for %s: %s", e.UnitID, strings.Join(e.Missing, ", "))
}
