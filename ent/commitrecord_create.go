// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/commitrecord"
)

// CommitRecordCreate is the builder for creating a CommitRecord entity.
type CommitRecordCreate struct {
	config
	mutation *CommitRecordMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *CommitRecordCreate) SetEventID(v string) *CommitRecordCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *CommitRecordCreate) SetLearnerID(v string) *CommitRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *CommitRecordCreate) SetResult(v map[string]interface{}) *CommitRecordCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCommittedAt sets the "committed_at" field.
func (_c *CommitRecordCreate) SetCommittedAt(v time.Time) *CommitRecordCreate {
	_c.mutation.SetCommittedAt(v)
	return _c
}

// SetNillableCommittedAt sets the "committed_at" field if the given value is not nil.
func (_c *CommitRecordCreate) SetNillableCommittedAt(v *time.Time) *CommitRecordCreate {
	if v != nil {
		_c.SetCommittedAt(*v)
	}
	return _c
}

// Mutation returns the CommitRecordMutation object of the builder.
func (_c *CommitRecordCreate) Mutation() *CommitRecordMutation {
	return _c.mutation
}

// Save creates the CommitRecord in the database.
func (_c *CommitRecordCreate) Save(ctx context.Context) (*CommitRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommitRecordCreate) SaveX(ctx context.Context) *CommitRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommitRecordCreate) defaults() {
	if _, ok := _c.mutation.CommittedAt(); !ok {
		v := commitrecord.DefaultCommittedAt()
		_c.mutation.SetCommittedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommitRecordCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "CommitRecord.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := commitrecord.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "CommitRecord.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "CommitRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := commitrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CommitRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "CommitRecord.result"`)}
	}
	if _, ok := _c.mutation.CommittedAt(); !ok {
		return &ValidationError{Name: "committed_at", err: errors.New(`ent: missing required field "CommitRecord.committed_at"`)}
	}
	return nil
}

func (_c *CommitRecordCreate) sqlSave(ctx context.Context) (*CommitRecord, error) {
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

func (_c *CommitRecordCreate) createSpec() (*CommitRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CommitRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commitrecord.Table, sqlgraph.NewFieldSpec(commitrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(commitrecord.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(commitrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(commitrecord.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CommittedAt(); ok {
		_spec.SetField(commitrecord.FieldCommittedAt, field.TypeTime, value)
		_node.CommittedAt = value
	}
	return _node, _spec
}

// CommitRecordCreateBulk is the builder for creating many CommitRecord entities in bulk.
type CommitRecordCreateBulk struct {
	config
	err      error
	builders []*CommitRecordCreate
}

// Save creates the CommitRecord entities in the database.
func (_c *CommitRecordCreateBulk) Save(ctx context.Context) ([]*CommitRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommitRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommitRecordMutation)
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
func (_c *CommitRecordCreateBulk) SaveX(ctx context.Context) []*CommitRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommitRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommitRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
