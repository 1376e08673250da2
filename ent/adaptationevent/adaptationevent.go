// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the adaptationevent type in the database.
	Label = "adaptation_event"
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
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldFromDifficulty holds the string denoting the from_difficulty field in the database.
	FieldFromDifficulty = "from_difficulty"
	// FieldToDifficulty holds the string denoting the to_difficulty field in the database.
	FieldToDifficulty = "to_difficulty"
	// FieldRecommendedUnitID holds the string denoting the recommended_unit_id field in the database.
	FieldRecommendedUnitID = "recommended_unit_id"
	// Table holds the table name of the adaptationevent in the database.
	Table = "adaptation_events"
)

// Columns holds all SQL columns for adaptationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLearnerID,
	FieldUnitID,
	FieldReason,
	FieldFromDifficulty,
	FieldToDifficulty,
	FieldRecommendedUnitID,
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
	// UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	UnitIDValidator func(string) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
)

// OrderOption defines the ordering options for the AdaptationEvent queries.
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

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByFromDifficulty orders the results by the from_difficulty field.
func ByFromDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromDifficulty, opts...).ToFunc()
}

// ByToDifficulty orders the results by the to_difficulty field.
func ByToDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToDifficulty, opts...).ToFunc()
}

// ByRecommendedUnitID orders the results by the recommended_unit_id field.
func ByRecommendedUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedUnitID, opts...).ToFunc()
}
