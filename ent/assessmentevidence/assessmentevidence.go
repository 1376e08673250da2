// Code generated by ent, DO NOT EDIT.

package assessmentevidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevidence type in the database.
	Label = "assessment_evidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldObjectiveID holds the string denoting the objective_id field in the database.
	FieldObjectiveID = "objective_id"
	// FieldSubSkillID holds the string denoting the sub_skill_id field in the database.
	FieldSubSkillID = "sub_skill_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldSourceEventID holds the string denoting the source_event_id field in the database.
	FieldSourceEventID = "source_event_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// Table holds the table name of the assessmentevidence in the database.
	Table = "assessment_evidences"
)

// Columns holds all SQL columns for assessmentevidence fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldObjectiveID,
	FieldSubSkillID,
	FieldScore,
	FieldSourceEventID,
	FieldTimestamp,
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
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	ObjectiveIDValidator func(string) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the AssessmentEvidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByObjectiveID orders the results by the objective_id field.
func ByObjectiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveID, opts...).ToFunc()
}

// BySubSkillID orders the results by the sub_skill_id field.
func BySubSkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubSkillID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// BySourceEventID orders the results by the source_event_id field.
func BySourceEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEventID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
