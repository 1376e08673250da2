// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldElapsedSecs holds the string denoting the elapsed_secs field in the database.
	FieldElapsedSecs = "elapsed_secs"
	// FieldActiveSecs holds the string denoting the active_secs field in the database.
	FieldActiveSecs = "active_secs"
	// FieldEventCount holds the string denoting the event_count field in the database.
	FieldEventCount = "event_count"
	// FieldFinalDifficulty holds the string denoting the final_difficulty field in the database.
	FieldFinalDifficulty = "final_difficulty"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLearnerID,
	FieldAction,
	FieldElapsedSecs,
	FieldActiveSecs,
	FieldEventCount,
	FieldFinalDifficulty,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultElapsedSecs holds the default value on creation for the "elapsed_secs" field.
	DefaultElapsedSecs int64
	// DefaultActiveSecs holds the default value on creation for the "active_secs" field.
	DefaultActiveSecs int64
	// DefaultEventCount holds the default value on creation for the "event_count" field.
	DefaultEventCount int
	// DefaultFinalDifficulty holds the default value on creation for the "final_difficulty" field.
	DefaultFinalDifficulty int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByElapsedSecs orders the results by the elapsed_secs field.
func ByElapsedSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedSecs, opts...).ToFunc()
}

// ByActiveSecs orders the results by the active_secs field.
func ByActiveSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveSecs, opts...).ToFunc()
}

// ByEventCount orders the results by the event_count field.
func ByEventCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventCount, opts...).ToFunc()
}

// ByFinalDifficulty orders the results by the final_difficulty field.
func ByFinalDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalDifficulty, opts...).ToFunc()
}
