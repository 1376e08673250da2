// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/masterydecision"
)

// MasteryDecisionCreate is the builder for creating a MasteryDecision entity.
type MasteryDecisionCreate struct {
	config
	mutation *MasteryDecisionMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MasteryDecisionCreate) SetSequence(v int64) *MasteryDecisionCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MasteryDecisionCreate) SetTimestamp(v time.Time) *MasteryDecisionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MasteryDecisionCreate) SetNillableTimestamp(v *time.Time) *MasteryDecisionCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *MasteryDecisionCreate) SetLearnerID(v string) *MasteryDecisionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetObjectiveID sets the "objective_id" field.
func (_c *MasteryDecisionCreate) SetObjectiveID(v string) *MasteryDecisionCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *MasteryDecisionCreate) SetDecision(v string) *MasteryDecisionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *MasteryDecisionCreate) SetMasteryLevel(v float64) *MasteryDecisionCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MasteryDecisionCreate) SetConfidence(v float64) *MasteryDecisionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetGaps sets the "gaps" field.
func (_c *MasteryDecisionCreate) SetGaps(v []string) *MasteryDecisionCreate {
	_c.mutation.SetGaps(v)
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *MasteryDecisionCreate) SetEvidenceCount(v int) *MasteryDecisionCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *MasteryDecisionCreate) SetNillableEvidenceCount(v *int) *MasteryDecisionCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// Mutation returns the MasteryDecisionMutation object of the builder.
func (_c *MasteryDecisionCreate) Mutation() *MasteryDecisionMutation {
	return _c.mutation
}

// Save creates the MasteryDecision in the database.
func (_c *MasteryDecisionCreate) Save(ctx context.Context) (*MasteryDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryDecisionCreate) SaveX(ctx context.Context) *MasteryDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryDecisionCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := masterydecision.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := masterydecision.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryDecisionCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MasteryDecision.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MasteryDecision.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MasteryDecision.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := masterydecision.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "MasteryDecision.objective_id"`)}
	}
	if v, ok := _c.mutation.ObjectiveID(); ok {
		if err := masterydecision.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.objective_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "MasteryDecision.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := masterydecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "MasteryDecision.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "MasteryDecision.mastery_level"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MasteryDecision.confidence"`)}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "MasteryDecision.evidence_count"`)}
	}
	return nil
}

func (_c *MasteryDecisionCreate) sqlSave(ctx context.Context) (*MasteryDecision, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryDecisionCreate) createSpec() (*MasteryDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masterydecision.Table, sqlgraph.NewFieldSpec(masterydecision.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(masterydecision.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(masterydecision.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(masterydecision.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(masterydecision.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(masterydecision.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(masterydecision.FieldMasteryLevel, field.TypeFloat64, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(masterydecision.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Gaps(); ok {
		_spec.SetField(masterydecision.FieldGaps, field.TypeJSON, value)
		_node.Gaps = value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(masterydecision.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	return _node, _spec
}

// MasteryDecisionCreateBulk is the builder for creating many MasteryDecision entities in bulk.
type MasteryDecisionCreateBulk struct {
	config
	err      error
	builders []*MasteryDecisionCreate
}

// Save creates the MasteryDecision entities in the database.
func (_c *MasteryDecisionCreateBulk) Save(ctx context.Context) ([]*MasteryDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryDecisionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MasteryDecisionCreateBulk) SaveX(ctx context.Context) []*MasteryDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
