// Code generated by ent, DO NOT EDIT.

package assessmentevidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldLearnerID, v))
}

// ObjectiveID applies equality check predicate on the "objective_id" field. It's identical to ObjectiveIDEQ.
func ObjectiveID(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldObjectiveID, v))
}

// SubSkillID applies equality check predicate on the "sub_skill_id" field. It's identical to SubSkillIDEQ.
func SubSkillID(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldSubSkillID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldScore, v))
}

// SourceEventID applies equality check predicate on the "source_event_id" field. It's identical to SourceEventIDEQ.
func SourceEventID(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldSourceEventID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldContainsFold(FieldLearnerID, v))
}

// ObjectiveIDEQ applies the EQ predicate on the "objective_id" field.
func ObjectiveIDEQ(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldObjectiveID, v))
}

// ObjectiveIDNEQ applies the NEQ predicate on the "objective_id" field.
func ObjectiveIDNEQ(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNEQ(FieldObjectiveID, v))
}

// ObjectiveIDIn applies the In predicate on the "objective_id" field.
func ObjectiveIDIn(vs ...string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldIn(FieldObjectiveID, vs...))
}

// ObjectiveIDNotIn applies the NotIn predicate on the "objective_id" field.
func ObjectiveIDNotIn(vs ...string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNotIn(FieldObjectiveID, vs...))
}

// ObjectiveIDGT applies the GT predicate on the "objective_id" field.
func ObjectiveIDGT(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGT(FieldObjectiveID, v))
}

// ObjectiveIDGTE applies the GTE predicate on the "objective_id" field.
func ObjectiveIDGTE(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGTE(FieldObjectiveID, v))
}

// ObjectiveIDLT applies the LT predicate on the "objective_id" field.
func ObjectiveIDLT(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLT(FieldObjectiveID, v))
}

// ObjectiveIDLTE applies the LTE predicate on the "objective_id" field.
func ObjectiveIDLTE(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLTE(FieldObjectiveID, v))
}

// ObjectiveIDContains applies the Contains predicate on the "objective_id" field.
func ObjectiveIDContains(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldContains(FieldObjectiveID, v))
}

// ObjectiveIDHasPrefix applies the HasPrefix predicate on the "objective_id" field.
func ObjectiveIDHasPrefix(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldHasPrefix(FieldObjectiveID, v))
}

// ObjectiveIDHasSuffix applies the HasSuffix predicate on the "objective_id" field.
func ObjectiveIDHasSuffix(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldHasSuffix(FieldObjectiveID, v))
}

// ObjectiveIDEqualFold applies the EqualFold predicate on the "objective_id" field.
func ObjectiveIDEqualFold(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEqualFold(FieldObjectiveID, v))
}

// ObjectiveIDContainsFold applies the ContainsFold predicate on the "objective_id" field.
func ObjectiveIDContainsFold(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldContainsFold(FieldObjectiveID, v))
}

// SubSkillIDEQ applies the EQ predicate on the "sub_skill_id" field.
func SubSkillIDEQ(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldSubSkillID, v))
}

// SubSkillIDNEQ applies the NEQ predicate on the "sub_skill_id" field.
func SubSkillIDNEQ(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNEQ(FieldSubSkillID, v))
}

// SubSkillIDIn applies the In predicate on the "sub_skill_id" field.
func SubSkillIDIn(vs ...string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldIn(FieldSubSkillID, vs...))
}

// SubSkillIDNotIn applies the NotIn predicate on the "sub_skill_id" field.
func SubSkillIDNotIn(vs ...string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNotIn(FieldSubSkillID, vs...))
}

// SubSkillIDGT applies the GT predicate on the "sub_skill_id" field.
func SubSkillIDGT(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGT(FieldSubSkillID, v))
}

// SubSkillIDGTE applies the GTE predicate on the "sub_skill_id" field.
func SubSkillIDGTE(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGTE(FieldSubSkillID, v))
}

// SubSkillIDLT applies the LT predicate on the "sub_skill_id" field.
func SubSkillIDLT(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLT(FieldSubSkillID, v))
}

// SubSkillIDLTE applies the LTE predicate on the "sub_skill_id" field.
func SubSkillIDLTE(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLTE(FieldSubSkillID, v))
}

// SubSkillIDContains applies the Contains predicate on the "sub_skill_id" field.
func SubSkillIDContains(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldContains(FieldSubSkillID, v))
}

// SubSkillIDHasPrefix applies the HasPrefix predicate on the "sub_skill_id" field.
func SubSkillIDHasPrefix(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldHasPrefix(FieldSubSkillID, v))
}

// SubSkillIDHasSuffix applies the HasSuffix predicate on the "sub_skill_id" field.
func SubSkillIDHasSuffix(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldHasSuffix(FieldSubSkillID, v))
}

// SubSkillIDIsNil applies the IsNil predicate on the "sub_skill_id" field.
func SubSkillIDIsNil() predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldIsNull(FieldSubSkillID))
}

// SubSkillIDNotNil applies the NotNil predicate on the "sub_skill_id" field.
func SubSkillIDNotNil() predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNotNull(FieldSubSkillID))
}

// SubSkillIDEqualFold applies the EqualFold predicate on the "sub_skill_id" field.
func SubSkillIDEqualFold(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEqualFold(FieldSubSkillID, v))
}

// SubSkillIDContainsFold applies the ContainsFold predicate on the "sub_skill_id" field.
func SubSkillIDContainsFold(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldContainsFold(FieldSubSkillID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLTE(FieldScore, v))
}

// SourceEventIDEQ applies the EQ predicate on the "source_event_id" field.
func SourceEventIDEQ(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldSourceEventID, v))
}

// SourceEventIDNEQ applies the NEQ predicate on the "source_event_id" field.
func SourceEventIDNEQ(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNEQ(FieldSourceEventID, v))
}

// SourceEventIDIn applies the In predicate on the "source_event_id" field.
func SourceEventIDIn(vs ...string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldIn(FieldSourceEventID, vs...))
}

// SourceEventIDNotIn applies the NotIn predicate on the "source_event_id" field.
func SourceEventIDNotIn(vs ...string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNotIn(FieldSourceEventID, vs...))
}

// SourceEventIDGT applies the GT predicate on the "source_event_id" field.
func SourceEventIDGT(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGT(FieldSourceEventID, v))
}

// SourceEventIDGTE applies the GTE predicate on the "source_event_id" field.
func SourceEventIDGTE(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGTE(FieldSourceEventID, v))
}

// SourceEventIDLT applies the LT predicate on the "source_event_id" field.
func SourceEventIDLT(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLT(FieldSourceEventID, v))
}

// SourceEventIDLTE applies the LTE predicate on the "source_event_id" field.
func SourceEventIDLTE(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLTE(FieldSourceEventID, v))
}

// SourceEventIDContains applies the Contains predicate on the "source_event_id" field.
func SourceEventIDContains(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldContains(FieldSourceEventID, v))
}

// SourceEventIDHasPrefix applies the HasPrefix predicate on the "source_event_id" field.
func SourceEventIDHasPrefix(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldHasPrefix(FieldSourceEventID, v))
}

// SourceEventIDHasSuffix applies the HasSuffix predicate on the "source_event_id" field.
func SourceEventIDHasSuffix(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldHasSuffix(FieldSourceEventID, v))
}

// SourceEventIDEqualFold applies the EqualFold predicate on the "source_event_id" field.
func SourceEventIDEqualFold(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEqualFold(FieldSourceEventID, v))
}

// SourceEventIDContainsFold applies the ContainsFold predicate on the "source_event_id" field.
func SourceEventIDContainsFold(v string) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldContainsFold(FieldSourceEventID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvidence) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvidence) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvidence) predicate.AssessmentEvidence {
	return predicate.AssessmentEvidence(sql.NotPredicates(p))
}
