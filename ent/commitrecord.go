// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptic/ent/commitrecord"
)

// CommitRecord is the model entity for the CommitRecord schema.
type CommitRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Serialized CommitResult returned on resubmission
	Result map[string]interface{} `json:"result,omitempty"`
	// CommittedAt holds the value of the "committed_at" field.
	CommittedAt  time.Time `json:"committed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CommitRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case commitrecord.FieldResult:
			values[i] = new([]byte)
		case commitrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case commitrecord.FieldEventID, commitrecord.FieldLearnerID:
			values[i] = new(sql.NullString)
		case commitrecord.FieldCommittedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CommitRecord fields.
func (_m *CommitRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case commitrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case commitrecord.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case commitrecord.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case commitrecord.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case commitrecord.FieldCommittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field committed_at", values[i])
			} else if value.Valid {
				_m.CommittedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CommitRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CommitRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CommitRecord.
// Note that you need to call CommitRecord.Unwrap() before calling this method if this CommitRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CommitRecord) Update() *CommitRecordUpdateOne {
	return NewCommitRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CommitRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CommitRecord) Unwrap() *CommitRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CommitRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CommitRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CommitRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("committed_at=")
	builder.WriteString(_m.CommittedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CommitRecords is a parsable slice of CommitRecord.
type CommitRecords []*CommitRecord
