// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/adaptic/ent/adaptationevent"
	"github.com/abhisek/adaptic/ent/assessmentevidence"
	"github.com/abhisek/adaptic/ent/commitrecord"
	"github.com/abhisek/adaptic/ent/llmrequestevent"
	"github.com/abhisek/adaptic/ent/masterydecision"
	"github.com/abhisek/adaptic/ent/progressrecord"
	"github.com/abhisek/adaptic/ent/schema"
	"github.com/abhisek/adaptic/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescTimestamp is the schema descriptor for timestamp field.
	adaptationeventDescTimestamp := adaptationeventMixinFields0[1].Descriptor()
	// adaptationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adaptationevent.DefaultTimestamp = adaptationeventDescTimestamp.Default.(func() time.Time)
	// adaptationeventDescSessionID is the schema descriptor for session_id field.
	adaptationeventDescSessionID := adaptationeventFields[0].Descriptor()
	// adaptationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	adaptationevent.SessionIDValidator = adaptationeventDescSessionID.Validators[0].(func(string) error)
	// adaptationeventDescLearnerID is the schema descriptor for learner_id field.
	adaptationeventDescLearnerID := adaptationeventFields[1].Descriptor()
	// adaptationevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	adaptationevent.LearnerIDValidator = adaptationeventDescLearnerID.Validators[0].(func(string) error)
	// adaptationeventDescUnitID is the schema descriptor for unit_id field.
	adaptationeventDescUnitID := adaptationeventFields[2].Descriptor()
	// adaptationevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	adaptationevent.UnitIDValidator = adaptationeventDescUnitID.Validators[0].(func(string) error)
	// adaptationeventDescReason is the schema descriptor for reason field.
	adaptationeventDescReason := adaptationeventFields[3].Descriptor()
	// adaptationevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	adaptationevent.ReasonValidator = adaptationeventDescReason.Validators[0].(func(string) error)
	assessmentevidenceFields := schema.AssessmentEvidence{}.Fields()
	_ = assessmentevidenceFields
	// assessmentevidenceDescLearnerID is the schema descriptor for learner_id field.
	assessmentevidenceDescLearnerID := assessmentevidenceFields[0].Descriptor()
	// assessmentevidence.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	assessmentevidence.LearnerIDValidator = assessmentevidenceDescLearnerID.Validators[0].(func(string) error)
	// assessmentevidenceDescObjectiveID is the schema descriptor for objective_id field.
	assessmentevidenceDescObjectiveID := assessmentevidenceFields[1].Descriptor()
	// assessmentevidence.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	assessmentevidence.ObjectiveIDValidator = assessmentevidenceDescObjectiveID.Validators[0].(func(string) error)
	// assessmentevidenceDescTimestamp is the schema descriptor for timestamp field.
	assessmentevidenceDescTimestamp := assessmentevidenceFields[5].Descriptor()
	// assessmentevidence.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevidence.DefaultTimestamp = assessmentevidenceDescTimestamp.Default.(func() time.Time)
	commitrecordFields := schema.CommitRecord{}.Fields()
	_ = commitrecordFields
	// commitrecordDescEventID is the schema descriptor for event_id field.
	commitrecordDescEventID := commitrecordFields[0].Descriptor()
	// commitrecord.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	commitrecord.EventIDValidator = commitrecordDescEventID.Validators[0].(func(string) error)
	// commitrecordDescLearnerID is the schema descriptor for learner_id field.
	commitrecordDescLearnerID := commitrecordFields[1].Descriptor()
	// commitrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	commitrecord.LearnerIDValidator = commitrecordDescLearnerID.Validators[0].(func(string) error)
	// commitrecordDescCommittedAt is the schema descriptor for committed_at field.
	commitrecordDescCommittedAt := commitrecordFields[3].Descriptor()
	// commitrecord.DefaultCommittedAt holds the default value on creation for the committed_at field.
	commitrecord.DefaultCommittedAt = commitrecordDescCommittedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	masterydecisionMixin := schema.MasteryDecision{}.Mixin()
	masterydecisionMixinFields0 := masterydecisionMixin[0].Fields()
	_ = masterydecisionMixinFields0
	masterydecisionFields := schema.MasteryDecision{}.Fields()
	_ = masterydecisionFields
	// masterydecisionDescTimestamp is the schema descriptor for timestamp field.
	masterydecisionDescTimestamp := masterydecisionMixinFields0[1].Descriptor()
	// masterydecision.DefaultTimestamp holds the default value on creation for the timestamp field.
	masterydecision.DefaultTimestamp = masterydecisionDescTimestamp.Default.(func() time.Time)
	// masterydecisionDescLearnerID is the schema descriptor for learner_id field.
	masterydecisionDescLearnerID := masterydecisionFields[0].Descriptor()
	// masterydecision.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masterydecision.LearnerIDValidator = masterydecisionDescLearnerID.Validators[0].(func(string) error)
	// masterydecisionDescObjectiveID is the schema descriptor for objective_id field.
	masterydecisionDescObjectiveID := masterydecisionFields[1].Descriptor()
	// masterydecision.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	masterydecision.ObjectiveIDValidator = masterydecisionDescObjectiveID.Validators[0].(func(string) error)
	// masterydecisionDescDecision is the schema descriptor for decision field.
	masterydecisionDescDecision := masterydecisionFields[2].Descriptor()
	// masterydecision.DecisionValidator is a validator for the "decision" field. It is called by the builders before save.
	masterydecision.DecisionValidator = masterydecisionDescDecision.Validators[0].(func(string) error)
	// masterydecisionDescEvidenceCount is the schema descriptor for evidence_count field.
	masterydecisionDescEvidenceCount := masterydecisionFields[6].Descriptor()
	// masterydecision.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	masterydecision.DefaultEvidenceCount = masterydecisionDescEvidenceCount.Default.(int)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescLearnerID is the schema descriptor for learner_id field.
	progressrecordDescLearnerID := progressrecordFields[0].Descriptor()
	// progressrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	progressrecord.LearnerIDValidator = progressrecordDescLearnerID.Validators[0].(func(string) error)
	// progressrecordDescUnitID is the schema descriptor for unit_id field.
	progressrecordDescUnitID := progressrecordFields[1].Descriptor()
	// progressrecord.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	progressrecord.UnitIDValidator = progressrecordDescUnitID.Validators[0].(func(string) error)
	// progressrecordDescStatus is the schema descriptor for status field.
	progressrecordDescStatus := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultStatus holds the default value on creation for the status field.
	progressrecord.DefaultStatus = progressrecordDescStatus.Default.(string)
	// progressrecordDescFraction is the schema descriptor for fraction field.
	progressrecordDescFraction := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultFraction holds the default value on creation for the fraction field.
	progressrecord.DefaultFraction = progressrecordDescFraction.Default.(float64)
	// progressrecordDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	progressrecordDescTimeSpentSecs := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	progressrecord.DefaultTimeSpentSecs = progressrecordDescTimeSpentSecs.Default.(int64)
	// progressrecordDescAttempts is the schema descriptor for attempts field.
	progressrecordDescAttempts := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultAttempts holds the default value on creation for the attempts field.
	progressrecord.DefaultAttempts = progressrecordDescAttempts.Default.(int)
	// progressrecordDescVersion is the schema descriptor for version field.
	progressrecordDescVersion := progressrecordFields[7].Descriptor()
	// progressrecord.DefaultVersion holds the default value on creation for the version field.
	progressrecord.DefaultVersion = progressrecordDescVersion.Default.(int64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescElapsedSecs is the schema descriptor for elapsed_secs field.
	sessioneventDescElapsedSecs := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultElapsedSecs holds the default value on creation for the elapsed_secs field.
	sessionevent.DefaultElapsedSecs = sessioneventDescElapsedSecs.Default.(int64)
	// sessioneventDescActiveSecs is the schema descriptor for active_secs field.
	sessioneventDescActiveSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultActiveSecs holds the default value on creation for the active_secs field.
	sessionevent.DefaultActiveSecs = sessioneventDescActiveSecs.Default.(int64)
	// sessioneventDescEventCount is the schema descriptor for event_count field.
	sessioneventDescEventCount := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultEventCount holds the default value on creation for the event_count field.
	sessionevent.DefaultEventCount = sessioneventDescEventCount.Default.(int)
	// sessioneventDescFinalDifficulty is the schema descriptor for final_difficulty field.
	sessioneventDescFinalDifficulty := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultFinalDifficulty holds the default value on creation for the final_difficulty field.
	sessionevent.DefaultFinalDifficulty = sessioneventDescFinalDifficulty.Default.(int)
}
