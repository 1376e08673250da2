package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdaptationEvent records a difficulty adjustment for audit and
// explainability.
type AdaptationEvent struct {
	ent.Schema
}

func (AdaptationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AdaptationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("learner_id").NotEmpty(),
		field.String("unit_id").NotEmpty(),
		field.String("reason").
			NotEmpty().
			Comment("struggling_pattern or mastery_pattern"),
		field.Int("from_difficulty"),
		field.Int("to_difficulty"),
		field.String("recommended_unit_id").
			Optional().
			Comment("Empty when the content collaborator had no match"),
	}
}

func (AdaptationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id"),
	}
}
