// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdaptationEvent is the predicate function for adaptationevent builders.
type AdaptationEvent func(*sql.Selector)

// AssessmentEvidence is the predicate function for assessmentevidence builders.
type AssessmentEvidence func(*sql.Selector)

// CommitRecord is the predicate function for commitrecord builders.
type CommitRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryDecision is the predicate function for masterydecision builders.
type MasteryDecision func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
