package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle transitions (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("learner_id").NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int64("elapsed_secs").
			Default(0).
			Comment("Total wall time (on end only)"),
		field.Int64("active_secs").
			Default(0).
			Comment("Time with recent interaction (on end only)"),
		field.Int("event_count").Default(0),
		field.Int("final_difficulty").Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id"),
	}
}
