package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvidence is one observed assessment result for an objective.
// The evaluator recency-weights these at evaluation time, so only the
// raw score and timestamp are stored.
type AssessmentEvidence struct {
	ent.Schema
}

func (AssessmentEvidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("objective_id").NotEmpty(),
		field.String("sub_skill_id").Optional(),
		field.Float("score").
			Comment("Raw score in [0,1]"),
		field.String("source_event_id").
			Comment("Interaction event that produced this evidence"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (AssessmentEvidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "objective_id"),
	}
}
