package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CommitRecord maps a committed interaction event ID to its serialized
// result, making duplicate submissions idempotent no-ops.
type CommitRecord struct {
	ent.Schema
}

func (CommitRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			NotEmpty().
			Unique(),
		field.String("learner_id").NotEmpty(),
		field.JSON("result", map[string]any{}).
			Comment("Serialized CommitResult returned on resubmission"),
		field.Time("committed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (CommitRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("committed_at"),
		index.Fields("learner_id"),
	}
}
