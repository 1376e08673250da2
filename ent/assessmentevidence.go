// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptic/ent/assessmentevidence"
)

// AssessmentEvidence is the model entity for the AssessmentEvidence schema.
type AssessmentEvidence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// ObjectiveID holds the value of the "objective_id" field.
	ObjectiveID string `json:"objective_id,omitempty"`
	// SubSkillID holds the value of the "sub_skill_id" field.
	SubSkillID string `json:"sub_skill_id,omitempty"`
	// Raw score in [0,1]
	Score float64 `json:"score,omitempty"`
	// Interaction event that produced this evidence
	SourceEventID string `json:"source_event_id,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentEvidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentevidence.FieldScore:
			values[i] = new(sql.NullFloat64)
		case assessmentevidence.FieldID:
			values[i] = new(sql.NullInt64)
		case assessmentevidence.FieldLearnerID, assessmentevidence.FieldObjectiveID, assessmentevidence.FieldSubSkillID, assessmentevidence.FieldSourceEventID:
			values[i] = new(sql.NullString)
		case assessmentevidence.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentEvidence fields.
func (_m *AssessmentEvidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentevidence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentevidence.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case assessmentevidence.FieldObjectiveID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field objective_id", values[i])
			} else if value.Valid {
				_m.ObjectiveID = value.String
			}
		case assessmentevidence.FieldSubSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_skill_id", values[i])
			} else if value.Valid {
				_m.SubSkillID = value.String
			}
		case assessmentevidence.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case assessmentevidence.FieldSourceEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_event_id", values[i])
			} else if value.Valid {
				_m.SourceEventID = value.String
			}
		case assessmentevidence.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentEvidence.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentEvidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentEvidence.
// Note that you need to call AssessmentEvidence.Unwrap() before calling this method if this AssessmentEvidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentEvidence) Update() *AssessmentEvidenceUpdateOne {
	return NewAssessmentEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentEvidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentEvidence) Unwrap() *AssessmentEvidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentEvidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentEvidence) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentEvidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("objective_id=")
	builder.WriteString(_m.ObjectiveID)
	builder.WriteString(", ")
	builder.WriteString("sub_skill_id=")
	builder.WriteString(_m.SubSkillID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("source_event_id=")
	builder.WriteString(_m.SourceEventID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentEvidences is a parsable slice of AssessmentEvidence.
type AssessmentEvidences []*AssessmentEvidence
