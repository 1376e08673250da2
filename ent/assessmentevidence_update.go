// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/assessmentevidence"
	"github.com/abhisek/adaptic/ent/predicate"
)

// AssessmentEvidenceUpdate is the builder for updating AssessmentEvidence entities.
type AssessmentEvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEvidenceMutation
}

// Where appends a list predicates to the AssessmentEvidenceUpdate builder.
func (_u *AssessmentEvidenceUpdate) Where(ps ...predicate.AssessmentEvidence) *AssessmentEvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AssessmentEvidenceUpdate) SetLearnerID(v string) *AssessmentEvidenceUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdate) SetNillableLearnerID(v *string) *AssessmentEvidenceUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *AssessmentEvidenceUpdate) SetObjectiveID(v string) *AssessmentEvidenceUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdate) SetNillableObjectiveID(v *string) *AssessmentEvidenceUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetSubSkillID sets the "sub_skill_id" field.
func (_u *AssessmentEvidenceUpdate) SetSubSkillID(v string) *AssessmentEvidenceUpdate {
	_u.mutation.SetSubSkillID(v)
	return _u
}

// SetNillableSubSkillID sets the "sub_skill_id" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdate) SetNillableSubSkillID(v *string) *AssessmentEvidenceUpdate {
	if v != nil {
		_u.SetSubSkillID(*v)
	}
	return _u
}

// ClearSubSkillID clears the value of the "sub_skill_id" field.
func (_u *AssessmentEvidenceUpdate) ClearSubSkillID() *AssessmentEvidenceUpdate {
	_u.mutation.ClearSubSkillID()
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEvidenceUpdate) SetScore(v float64) *AssessmentEvidenceUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdate) SetNillableScore(v *float64) *AssessmentEvidenceUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEvidenceUpdate) AddScore(v float64) *AssessmentEvidenceUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetSourceEventID sets the "source_event_id" field.
func (_u *AssessmentEvidenceUpdate) SetSourceEventID(v string) *AssessmentEvidenceUpdate {
	_u.mutation.SetSourceEventID(v)
	return _u
}

// SetNillableSourceEventID sets the "source_event_id" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdate) SetNillableSourceEventID(v *string) *AssessmentEvidenceUpdate {
	if v != nil {
		_u.SetSourceEventID(*v)
	}
	return _u
}

// Mutation returns the AssessmentEvidenceMutation object of the builder.
func (_u *AssessmentEvidenceUpdate) Mutation() *AssessmentEvidenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEvidenceUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := assessmentevidence.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvidence.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := assessmentevidence.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvidence.objective_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevidence.Table, assessmentevidence.Columns, sqlgraph.NewFieldSpec(assessmentevidence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(assessmentevidence.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(assessmentevidence.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubSkillID(); ok {
		_spec.SetField(assessmentevidence.FieldSubSkillID, field.TypeString, value)
	}
	if _u.mutation.SubSkillIDCleared() {
		_spec.ClearField(assessmentevidence.FieldSubSkillID, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevidence.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevidence.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceEventID(); ok {
		_spec.SetField(assessmentevidence.FieldSourceEventID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEvidenceUpdateOne is the builder for updating a single AssessmentEvidence entity.
type AssessmentEvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEvidenceMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *AssessmentEvidenceUpdateOne) SetLearnerID(v string) *AssessmentEvidenceUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdateOne) SetNillableLearnerID(v *string) *AssessmentEvidenceUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *AssessmentEvidenceUpdateOne) SetObjectiveID(v string) *AssessmentEvidenceUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdateOne) SetNillableObjectiveID(v *string) *AssessmentEvidenceUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetSubSkillID sets the "sub_skill_id" field.
func (_u *AssessmentEvidenceUpdateOne) SetSubSkillID(v string) *AssessmentEvidenceUpdateOne {
	_u.mutation.SetSubSkillID(v)
	return _u
}

// SetNillableSubSkillID sets the "sub_skill_id" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdateOne) SetNillableSubSkillID(v *string) *AssessmentEvidenceUpdateOne {
	if v != nil {
		_u.SetSubSkillID(*v)
	}
	return _u
}

// ClearSubSkillID clears the value of the "sub_skill_id" field.
func (_u *AssessmentEvidenceUpdateOne) ClearSubSkillID() *AssessmentEvidenceUpdateOne {
	_u.mutation.ClearSubSkillID()
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEvidenceUpdateOne) SetScore(v float64) *AssessmentEvidenceUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdateOne) SetNillableScore(v *float64) *AssessmentEvidenceUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEvidenceUpdateOne) AddScore(v float64) *AssessmentEvidenceUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetSourceEventID sets the "source_event_id" field.
func (_u *AssessmentEvidenceUpdateOne) SetSourceEventID(v string) *AssessmentEvidenceUpdateOne {
	_u.mutation.SetSourceEventID(v)
	return _u
}

// SetNillableSourceEventID sets the "source_event_id" field if the given value is not nil.
func (_u *AssessmentEvidenceUpdateOne) SetNillableSourceEventID(v *string) *AssessmentEvidenceUpdateOne {
	if v != nil {
		_u.SetSourceEventID(*v)
	}
	return _u
}

// Mutation returns the AssessmentEvidenceMutation object of the builder.
func (_u *AssessmentEvidenceUpdateOne) Mutation() *AssessmentEvidenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEvidenceUpdate builder.
func (_u *AssessmentEvidenceUpdateOne) Where(ps ...predicate.AssessmentEvidence) *AssessmentEvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEvidenceUpdateOne) Select(field string, fields ...string) *AssessmentEvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvidence entity.
func (_u *AssessmentEvidenceUpdateOne) Save(ctx context.Context) (*AssessmentEvidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEvidenceUpdateOne) SaveX(ctx context.Context) *AssessmentEvidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEvidenceUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := assessmentevidence.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvidence.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := assessmentevidence.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvidence.objective_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEvidenceUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevidence.Table, assessmentevidence.Columns, sqlgraph.NewFieldSpec(assessmentevidence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevidence.FieldID)
		for _, f := range fields {
			if !assessmentevidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevidence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(assessmentevidence.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(assessmentevidence.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubSkillID(); ok {
		_spec.SetField(assessmentevidence.FieldSubSkillID, field.TypeString, value)
	}
	if _u.mutation.SubSkillIDCleared() {
		_spec.ClearField(assessmentevidence.FieldSubSkillID, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevidence.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevidence.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceEventID(); ok {
		_spec.SetField(assessmentevidence.FieldSourceEventID, field.TypeString, value)
	}
	_node = &AssessmentEvidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
