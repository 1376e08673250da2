// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/assessmentevidence"
)

// AssessmentEvidenceCreate is the builder for creating a AssessmentEvidence entity.
type AssessmentEvidenceCreate struct {
	config
	mutation *AssessmentEvidenceMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *AssessmentEvidenceCreate) SetLearnerID(v string) *AssessmentEvidenceCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetObjectiveID sets the "objective_id" field.
func (_c *AssessmentEvidenceCreate) SetObjectiveID(v string) *AssessmentEvidenceCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetSubSkillID sets the "sub_skill_id" field.
func (_c *AssessmentEvidenceCreate) SetSubSkillID(v string) *AssessmentEvidenceCreate {
	_c.mutation.SetSubSkillID(v)
	return _c
}

// SetNillableSubSkillID sets the "sub_skill_id" field if the given value is not nil.
func (_c *AssessmentEvidenceCreate) SetNillableSubSkillID(v *string) *AssessmentEvidenceCreate {
	if v != nil {
		_c.SetSubSkillID(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentEvidenceCreate) SetScore(v float64) *AssessmentEvidenceCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetSourceEventID sets the "source_event_id" field.
func (_c *AssessmentEvidenceCreate) SetSourceEventID(v string) *AssessmentEvidenceCreate {
	_c.mutation.SetSourceEventID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEvidenceCreate) SetTimestamp(v time.Time) *AssessmentEvidenceCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEvidenceCreate) SetNillableTimestamp(v *time.Time) *AssessmentEvidenceCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the AssessmentEvidenceMutation object of the builder.
func (_c *AssessmentEvidenceCreate) Mutation() *AssessmentEvidenceMutation {
	return _c.mutation
}

// Save creates the AssessmentEvidence in the database.
func (_c *AssessmentEvidenceCreate) Save(ctx context.Context) (*AssessmentEvidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEvidenceCreate) SaveX(ctx context.Context) *AssessmentEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEvidenceCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevidence.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEvidenceCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "AssessmentEvidence.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := assessmentevidence.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvidence.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "AssessmentEvidence.objective_id"`)}
	}
	if v, ok := _c.mutation.ObjectiveID(); ok {
		if err := assessmentevidence.ObjectiveIDValidator(v); err != nil {
			return &ValidationError{Name: "objective_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvidence.objective_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentEvidence.score"`)}
	}
	if _, ok := _c.mutation.SourceEventID(); !ok {
		return &ValidationError{Name: "source_event_id", err: errors.New(`ent: missing required field "AssessmentEvidence.source_event_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvidence.timestamp"`)}
	}
	return nil
}

func (_c *AssessmentEvidenceCreate) sqlSave(ctx context.Context) (*AssessmentEvidence, error) {
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

func (_c *AssessmentEvidenceCreate) createSpec() (*AssessmentEvidence, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevidence.Table, sqlgraph.NewFieldSpec(assessmentevidence.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(assessmentevidence.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(assessmentevidence.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.SubSkillID(); ok {
		_spec.SetField(assessmentevidence.FieldSubSkillID, field.TypeString, value)
		_node.SubSkillID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentevidence.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.SourceEventID(); ok {
		_spec.SetField(assessmentevidence.FieldSourceEventID, field.TypeString, value)
		_node.SourceEventID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevidence.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// AssessmentEvidenceCreateBulk is the builder for creating many AssessmentEvidence entities in bulk.
type AssessmentEvidenceCreateBulk struct {
	config
	err      error
	builders []*AssessmentEvidenceCreate
}

// Save creates the AssessmentEvidence entities in the database.
func (_c *AssessmentEvidenceCreateBulk) Save(ctx context.Context) ([]*AssessmentEvidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEvidenceMutation)
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
func (_c *AssessmentEvidenceCreateBulk) SaveX(ctx context.Context) []*AssessmentEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
