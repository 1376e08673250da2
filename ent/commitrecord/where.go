// Code generated by ent, DO NOT EDIT.

package commitrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptic/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEQ(FieldEventID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEQ(FieldLearnerID, v))
}

// CommittedAt applies equality check predicate on the "committed_at" field. It's identical to CommittedAtEQ.
func CommittedAt(v time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEQ(FieldCommittedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldContainsFold(FieldEventID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldContainsFold(FieldLearnerID, v))
}

// CommittedAtEQ applies the EQ predicate on the "committed_at" field.
func CommittedAtEQ(v time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldEQ(FieldCommittedAt, v))
}

// CommittedAtNEQ applies the NEQ predicate on the "committed_at" field.
func CommittedAtNEQ(v time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldNEQ(FieldCommittedAt, v))
}

// CommittedAtIn applies the In predicate on the "committed_at" field.
func CommittedAtIn(vs ...time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldIn(FieldCommittedAt, vs...))
}

// CommittedAtNotIn applies the NotIn predicate on the "committed_at" field.
func CommittedAtNotIn(vs ...time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldNotIn(FieldCommittedAt, vs...))
}

// CommittedAtGT applies the GT predicate on the "committed_at" field.
func CommittedAtGT(v time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldGT(FieldCommittedAt, v))
}

// CommittedAtGTE applies the GTE predicate on the "committed_at" field.
func CommittedAtGTE(v time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldGTE(FieldCommittedAt, v))
}

// CommittedAtLT applies the LT predicate on the "committed_at" field.
func CommittedAtLT(v time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldLT(FieldCommittedAt, v))
}

// CommittedAtLTE applies the LTE predicate on the "committed_at" field.
func CommittedAtLTE(v time.Time) predicate.CommitRecord {
	return predicate.CommitRecord(sql.FieldLTE(FieldCommittedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommitRecord) predicate.CommitRecord {
	return predicate.CommitRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommitRecord) predicate.CommitRecord {
	return predicate.CommitRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommitRecord) predicate.CommitRecord {
	return predicate.CommitRecord(sql.NotPredicates(p))
}
