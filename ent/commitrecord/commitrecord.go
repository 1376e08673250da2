// Code generated by ent, DO NOT EDIT.

package commitrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the commitrecord type in the database.
	Label = "commit_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldCommittedAt holds the string denoting the committed_at field in the database.
	FieldCommittedAt = "committed_at"
	// Table holds the table name of the commitrecord in the database.
	Table = "commit_records"
)

// Columns holds all SQL columns for commitrecord fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldLearnerID,
	FieldResult,
	FieldCommittedAt,
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
	// EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	EventIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultCommittedAt holds the default value on creation for the "committed_at" field.
	DefaultCommittedAt func() time.Time
)

// OrderOption defines the ordering options for the CommitRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByCommittedAt orders the results by the committed_at field.
func ByCommittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommittedAt, opts...).ToFunc()
}
