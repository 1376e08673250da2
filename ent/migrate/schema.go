// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdaptationEventsColumns holds the columns for the "adaptation_events" table.
	AdaptationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "from_difficulty", Type: field.TypeInt},
		{Name: "to_difficulty", Type: field.TypeInt},
		{Name: "recommended_unit_id", Type: field.TypeString, Nullable: true},
	}
	// AdaptationEventsTable holds the schema information for the "adaptation_events" table.
	AdaptationEventsTable = &schema.Table{
		Name:       "adaptation_events",
		Columns:    AdaptationEventsColumns,
		PrimaryKey: []*schema.Column{AdaptationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adaptationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[1]},
			},
			{
				Name:    "adaptationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[2]},
			},
			{
				Name:    "adaptationevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[3]},
			},
			{
				Name:    "adaptationevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AdaptationEventsColumns[4]},
			},
		},
	}
	// AssessmentEvidencesColumns holds the columns for the "assessment_evidences" table.
	AssessmentEvidencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "sub_skill_id", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "source_event_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AssessmentEvidencesTable holds the schema information for the "assessment_evidences" table.
	AssessmentEvidencesTable = &schema.Table{
		Name:       "assessment_evidences",
		Columns:    AssessmentEvidencesColumns,
		PrimaryKey: []*schema.Column{AssessmentEvidencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevidence_learner_id_objective_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEvidencesColumns[1], AssessmentEvidencesColumns[2]},
			},
		},
	}
	// CommitRecordsColumns holds the columns for the "commit_records" table.
	CommitRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "result", Type: field.TypeJSON},
		{Name: "committed_at", Type: field.TypeTime},
	}
	// CommitRecordsTable holds the schema information for the "commit_records" table.
	CommitRecordsTable = &schema.Table{
		Name:       "commit_records",
		Columns:    CommitRecordsColumns,
		PrimaryKey: []*schema.Column{CommitRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "commitrecord_committed_at",
				Unique:  false,
				Columns: []*schema.Column{CommitRecordsColumns[4]},
			},
			{
				Name:    "commitrecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{CommitRecordsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
		},
	}
	// MasteryDecisionsColumns holds the columns for the "mastery_decisions" table.
	MasteryDecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "decision", Type: field.TypeString},
		{Name: "mastery_level", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "gaps", Type: field.TypeJSON, Nullable: true},
		{Name: "evidence_count", Type: field.TypeInt, Default: 0},
	}
	// MasteryDecisionsTable holds the schema information for the "mastery_decisions" table.
	MasteryDecisionsTable = &schema.Table{
		Name:       "mastery_decisions",
		Columns:    MasteryDecisionsColumns,
		PrimaryKey: []*schema.Column{MasteryDecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masterydecision_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryDecisionsColumns[1]},
			},
			{
				Name:    "masterydecision_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryDecisionsColumns[2]},
			},
			{
				Name:    "masterydecision_learner_id_objective_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryDecisionsColumns[3], MasteryDecisionsColumns[4]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "not_started"},
		{Name: "fraction", Type: field.TypeFloat64, Default: 0},
		{Name: "time_spent_secs", Type: field.TypeInt64, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "best_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_learner_id_unit_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
			{
				Name:    "progressrecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "elapsed_secs", Type: field.TypeInt64, Default: 0},
		{Name: "active_secs", Type: field.TypeInt64, Default: 0},
		{Name: "event_count", Type: field.TypeInt, Default: 0},
		{Name: "final_difficulty", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdaptationEventsTable,
		AssessmentEvidencesTable,
		CommitRecordsTable,
		LlmRequestEventsTable,
		MasteryDecisionsTable,
		ProgressRecordsTable,
		SessionEventsTable,
	}
)

func init() {
}
