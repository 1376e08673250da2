package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryDecision is one entry in the append-only decision log for a
// (learner, objective) pair. Rows are never updated; the latest
// sequence wins for reads.
type MasteryDecision struct {
	ent.Schema
}

func (MasteryDecision) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("objective_id").NotEmpty(),
		field.String("decision").
			NotEmpty().
			Comment("achieved or in_progress"),
		field.Float("mastery_level"),
		field.Float("confidence"),
		field.Strings("gaps").
			Optional().
			Comment("Sub-skill IDs below threshold"),
		field.Int("evidence_count").Default(0),
	}
}

func (MasteryDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "objective_id"),
	}
}
