package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord is the authoritative completion state for one
// (learner, unit) pair. Unlike the event tables it is mutable, guarded
// by an optimistic version column.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("unit_id").NotEmpty(),
		field.String("status").
			Default("not_started").
			Comment("not_started, in_progress or completed; only moves forward"),
		field.Float("fraction").
			Default(0).
			Comment("Completion fraction in [0,1], non-decreasing"),
		field.Int64("time_spent_secs").Default(0),
		field.Int("attempts").Default(0),
		field.Float("best_score").
			Optional().
			Nillable().
			Comment("Best evidence score seen for this unit"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency version, incremented on every write"),
		field.Time("updated_at"),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "unit_id").Unique(),
		index.Fields("learner_id"),
	}
}
