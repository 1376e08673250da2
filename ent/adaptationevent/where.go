// Code generated by ent, DO NOT EDIT.

package adaptationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldLearnerID, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUnitID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// FromDifficulty applies equality check predicate on the "from_difficulty" field. It's identical to FromDifficultyEQ.
func FromDifficulty(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldFromDifficulty, v))
}

// ToDifficulty applies equality check predicate on the "to_difficulty" field. It's identical to ToDifficultyEQ.
func ToDifficulty(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldToDifficulty, v))
}

// RecommendedUnitID applies equality check predicate on the "recommended_unit_id" field. It's identical to RecommendedUnitIDEQ.
func RecommendedUnitID(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldRecommendedUnitID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldUnitID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldReason, v))
}

// FromDifficultyEQ applies the EQ predicate on the "from_difficulty" field.
func FromDifficultyEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldFromDifficulty, v))
}

// FromDifficultyNEQ applies the NEQ predicate on the "from_difficulty" field.
func FromDifficultyNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldFromDifficulty, v))
}

// FromDifficultyIn applies the In predicate on the "from_difficulty" field.
func FromDifficultyIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldFromDifficulty, vs...))
}

// FromDifficultyNotIn applies the NotIn predicate on the "from_difficulty" field.
func FromDifficultyNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldFromDifficulty, vs...))
}

// FromDifficultyGT applies the GT predicate on the "from_difficulty" field.
func FromDifficultyGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldFromDifficulty, v))
}

// FromDifficultyGTE applies the GTE predicate on the "from_difficulty" field.
func FromDifficultyGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldFromDifficulty, v))
}

// FromDifficultyLT applies the LT predicate on the "from_difficulty" field.
func FromDifficultyLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldFromDifficulty, v))
}

// FromDifficultyLTE applies the LTE predicate on the "from_difficulty" field.
func FromDifficultyLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldFromDifficulty, v))
}

// ToDifficultyEQ applies the EQ predicate on the "to_difficulty" field.
func ToDifficultyEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldToDifficulty, v))
}

// ToDifficultyNEQ applies the NEQ predicate on the "to_difficulty" field.
func ToDifficultyNEQ(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldToDifficulty, v))
}

// ToDifficultyIn applies the In predicate on the "to_difficulty" field.
func ToDifficultyIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldToDifficulty, vs...))
}

// ToDifficultyNotIn applies the NotIn predicate on the "to_difficulty" field.
func ToDifficultyNotIn(vs ...int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldToDifficulty, vs...))
}

// ToDifficultyGT applies the GT predicate on the "to_difficulty" field.
func ToDifficultyGT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldToDifficulty, v))
}

// ToDifficultyGTE applies the GTE predicate on the "to_difficulty" field.
func ToDifficultyGTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldToDifficulty, v))
}

// ToDifficultyLT applies the LT predicate on the "to_difficulty" field.
func ToDifficultyLT(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldToDifficulty, v))
}

// ToDifficultyLTE applies the LTE predicate on the "to_difficulty" field.
func ToDifficultyLTE(v int) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldToDifficulty, v))
}

// RecommendedUnitIDEQ applies the EQ predicate on the "recommended_unit_id" field.
func RecommendedUnitIDEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEQ(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDNEQ applies the NEQ predicate on the "recommended_unit_id" field.
func RecommendedUnitIDNEQ(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNEQ(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDIn applies the In predicate on the "recommended_unit_id" field.
func RecommendedUnitIDIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIn(FieldRecommendedUnitID, vs...))
}

// RecommendedUnitIDNotIn applies the NotIn predicate on the "recommended_unit_id" field.
func RecommendedUnitIDNotIn(vs ...string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotIn(FieldRecommendedUnitID, vs...))
}

// RecommendedUnitIDGT applies the GT predicate on the "recommended_unit_id" field.
func RecommendedUnitIDGT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGT(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDGTE applies the GTE predicate on the "recommended_unit_id" field.
func RecommendedUnitIDGTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldGTE(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDLT applies the LT predicate on the "recommended_unit_id" field.
func RecommendedUnitIDLT(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLT(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDLTE applies the LTE predicate on the "recommended_unit_id" field.
func RecommendedUnitIDLTE(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldLTE(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDContains applies the Contains predicate on the "recommended_unit_id" field.
func RecommendedUnitIDContains(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContains(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDHasPrefix applies the HasPrefix predicate on the "recommended_unit_id" field.
func RecommendedUnitIDHasPrefix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasPrefix(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDHasSuffix applies the HasSuffix predicate on the "recommended_unit_id" field.
func RecommendedUnitIDHasSuffix(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldHasSuffix(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDIsNil applies the IsNil predicate on the "recommended_unit_id" field.
func RecommendedUnitIDIsNil() predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldIsNull(FieldRecommendedUnitID))
}

// RecommendedUnitIDNotNil applies the NotNil predicate on the "recommended_unit_id" field.
func RecommendedUnitIDNotNil() predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldNotNull(FieldRecommendedUnitID))
}

// RecommendedUnitIDEqualFold applies the EqualFold predicate on the "recommended_unit_id" field.
func RecommendedUnitIDEqualFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldEqualFold(FieldRecommendedUnitID, v))
}

// RecommendedUnitIDContainsFold applies the ContainsFold predicate on the "recommended_unit_id" field.
func RecommendedUnitIDContainsFold(v string) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.FieldContainsFold(FieldRecommendedUnitID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdaptationEvent) predicate.AdaptationEvent {
	return predicate.AdaptationEvent(sql.NotPredicates(p))
}
