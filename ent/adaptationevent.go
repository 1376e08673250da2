// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptic/ent/adaptationevent"
)

// AdaptationEvent is the model entity for the AdaptationEvent schema.
type AdaptationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID string `json:"unit_id,omitempty"`
	// struggling_pattern or mastery_pattern
	Reason string `json:"reason,omitempty"`
	// FromDifficulty holds the value of the "from_difficulty" field.
	FromDifficulty int `json:"from_difficulty,omitempty"`
	// ToDifficulty holds the value of the "to_difficulty" field.
	ToDifficulty int `json:"to_difficulty,omitempty"`
	// Empty when the content collaborator had no match
	RecommendedUnitID string `json:"recommended_unit_id,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdaptationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID, adaptationevent.FieldSequence, adaptationevent.FieldFromDifficulty, adaptationevent.FieldToDifficulty:
			values[i] = new(sql.NullInt64)
		case adaptationevent.FieldSessionID, adaptationevent.FieldLearnerID, adaptationevent.FieldUnitID, adaptationevent.FieldReason, adaptationevent.FieldRecommendedUnitID:
			values[i] = new(sql.NullString)
		case adaptationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdaptationEvent fields.
func (_m *AdaptationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case adaptationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case adaptationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case adaptationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case adaptationevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case adaptationevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case adaptationevent.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case adaptationevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case adaptationevent.FieldFromDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_difficulty", values[i])
			} else if value.Valid {
				_m.FromDifficulty = int(value.Int64)
			}
		case adaptationevent.FieldToDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_difficulty", values[i])
			} else if value.Valid {
				_m.ToDifficulty = int(value.Int64)
			}
		case adaptationevent.FieldRecommendedUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_unit_id", values[i])
			} else if value.Valid {
				_m.RecommendedUnitID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdaptationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AdaptationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdaptationEvent.
// Note that you need to call AdaptationEvent.Unwrap() before calling this method if this AdaptationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdaptationEvent) Update() *AdaptationEventUpdateOne {
	return NewAdaptationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdaptationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdaptationEvent) Unwrap() *AdaptationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdaptationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdaptationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AdaptationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("from_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromDifficulty))
	builder.WriteString(", ")
	builder.WriteString("to_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToDifficulty))
	builder.WriteString(", ")
	builder.WriteString("recommended_unit_id=")
	builder.WriteString(_m.RecommendedUnitID)
	builder.WriteByte(')')
	return builder.String()
}

// AdaptationEvents is a parsable slice of AdaptationEvent.
type AdaptationEvents []*AdaptationEvent
