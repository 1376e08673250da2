// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/masterydecision"
	"github.com/abhisek/adaptic/ent/predicate"
)

// MasteryDecisionUpdate is the builder for updating MasteryDecision entities.
type MasteryDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryDecisionMutation
}

// Where appends a list predicates to the MasteryDecisionUpdate builder.
func (_u *MasteryDecisionUpdate) Where(ps ...predicate.MasteryDecision) *MasteryDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryDecisionUpdate) SetLearnerID(v string) *MasteryDecisionUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryDecisionUpdate) SetNillableLearnerID(v *string) *MasteryDecisionUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *MasteryDecisionUpdate) SetObjectiveID(v string) *MasteryDecisionUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *MasteryDecisionUpdate) SetNillableObjectiveID(v *string) *MasteryDecisionUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *MasteryDecisionUpdate) SetDecision(v string) *MasteryDecisionUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *MasteryDecisionUpdate) SetNillableDecision(v *string) *MasteryDecisionUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *MasteryDecisionUpdate) SetMasteryLevel(v float64) *MasteryDecisionUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *MasteryDecisionUpdate) SetNillableMasteryLevel(v *float64) *MasteryDecisionUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *MasteryDecisionUpdate) AddMasteryLevel(v float64) *MasteryDecisionUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MasteryDecisionUpdate) SetConfidence(v float64) *MasteryDecisionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MasteryDecisionUpdate) SetNillableConfidence(v *float64) *MasteryDecisionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MasteryDecisionUpdate) AddConfidence(v float64) *MasteryDecisionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetGaps sets the "gaps" field.
func (_u *MasteryDecisionUpdate) SetGaps(v []string) *MasteryDecisionUpdate {
	_u.mutation.SetGaps(v)
	return _u
}

// AppendGaps appends value to the "gaps" field.
func (_u *MasteryDecisionUpdate) AppendGaps(v []string) *MasteryDecisionUpdate {
	_u.mutation.AppendGaps(v)
	return _u
}

// ClearGaps clears the value of the "gaps" field.
func (_u *MasteryDecisionUpdate) ClearGaps() *MasteryDecisionUpdate {
	_u.mutation.ClearGaps()
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *MasteryDecisionUpdate) SetEvidenceCount(v int) *MasteryDecisionUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *MasteryDecisionUpdate) SetNillableEvidenceCount(v *int) *MasteryDecisionUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *MasteryDecisionUpdate) AddEvidenceCount(v int) *MasteryDecisionUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// Mutation returns the MasteryDecisionMutation object of the builder.
func (_u *MasteryDecisionUpdate) Mutation() *MasteryDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryDecisionUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masterydecision.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := masterydecision.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := masterydecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterydecision.Table, masterydecision.Columns, sqlgraph.NewFieldSpec(masterydecision.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(masterydecision.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(masterydecision.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(masterydecision.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(masterydecision.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(masterydecision.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(masterydecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(masterydecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Gaps(); ok {
		_spec.SetField(masterydecision.FieldGaps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, masterydecision.FieldGaps, value)
		})
	}
	if _u.mutation.GapsCleared() {
		_spec.ClearField(masterydecision.FieldGaps, field.TypeJSON)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(masterydecision.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(masterydecision.FieldEvidenceCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterydecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryDecisionUpdateOne is the builder for updating a single MasteryDecision entity.
type MasteryDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryDecisionMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryDecisionUpdateOne) SetLearnerID(v string) *MasteryDecisionUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryDecisionUpdateOne) SetNillableLearnerID(v *string) *MasteryDecisionUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *MasteryDecisionUpdateOne) SetObjectiveID(v string) *MasteryDecisionUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *MasteryDecisionUpdateOne) SetNillableObjectiveID(v *string) *MasteryDecisionUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetDecision sets the "decision" field.
func (_u *MasteryDecisionUpdateOne) SetDecision(v string) *MasteryDecisionUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *MasteryDecisionUpdateOne) SetNillableDecision(v *string) *MasteryDecisionUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *MasteryDecisionUpdateOne) SetMasteryLevel(v float64) *MasteryDecisionUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *MasteryDecisionUpdateOne) SetNillableMasteryLevel(v *float64) *MasteryDecisionUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *MasteryDecisionUpdateOne) AddMasteryLevel(v float64) *MasteryDecisionUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MasteryDecisionUpdateOne) SetConfidence(v float64) *MasteryDecisionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MasteryDecisionUpdateOne) SetNillableConfidence(v *float64) *MasteryDecisionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MasteryDecisionUpdateOne) AddConfidence(v float64) *MasteryDecisionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetGaps sets the "gaps" field.
func (_u *MasteryDecisionUpdateOne) SetGaps(v []string) *MasteryDecisionUpdateOne {
	_u.mutation.SetGaps(v)
	return _u
}

// AppendGaps appends value to the "gaps" field.
func (_u *MasteryDecisionUpdateOne) AppendGaps(v []string) *MasteryDecisionUpdateOne {
	_u.mutation.AppendGaps(v)
	return _u
}

// ClearGaps clears the value of the "gaps" field.
func (_u *MasteryDecisionUpdateOne) ClearGaps() *MasteryDecisionUpdateOne {
	_u.mutation.ClearGaps()
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *MasteryDecisionUpdateOne) SetEvidenceCount(v int) *MasteryDecisionUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *MasteryDecisionUpdateOne) SetNillableEvidenceCount(v *int) *MasteryDecisionUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *MasteryDecisionUpdateOne) AddEvidenceCount(v int) *MasteryDecisionUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// Mutation returns the MasteryDecisionMutation object of the builder.
func (_u *MasteryDecisionUpdateOne) Mutation() *MasteryDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryDecisionUpdate builder.
func (_u *MasteryDecisionUpdateOne) Where(ps ...predicate.MasteryDecision) *MasteryDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryDecisionUpdateOne) Select(field string, fields ...string) *MasteryDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryDecision entity.
func (_u *MasteryDecisionUpdateOne) Save(ctx context.Context) (*MasteryDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryDecisionUpdateOne) SaveX(ctx context.Context) *MasteryDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masterydecision.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectiveID(); ok {
		if err := masterydecision.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.objective_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := masterydecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.decision": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryDecisionUpdateOne) sqlSave(ctx context.Context) (_node *MasteryDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterydecision.Table, masterydecision.Columns, sqlgraph.NewFieldSpec(masterydecision.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masterydecision.FieldID)
		for _, f := range fields {
			if !masterydecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masterydecision.FieldID {
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
		_spec.SetField(masterydecision.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(masterydecision.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(masterydecision.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(masterydecision.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(masterydecision.FieldMasteryLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(masterydecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(masterydecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Gaps(); ok {
		_spec.SetField(masterydecision.FieldGaps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, masterydecision.FieldGaps, value)
		})
	}
	if _u.mutation.GapsCleared() {
		_spec.ClearField(masterydecision.FieldGaps, field.TypeJSON)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(masterydecision.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(masterydecision.FieldEvidenceCount, field.TypeInt, value)
	}
	_node = &MasteryDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterydecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
