// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/commitrecord"
	"github.com/abhisek/adaptic/ent/predicate"
)

// CommitRecordUpdate is the builder for updating CommitRecord entities.
type CommitRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CommitRecordMutation
}

// Where appends a list predicates to the CommitRecordUpdate builder.
func (_u *CommitRecordUpdate) Where(ps ...predicate.CommitRecord) *CommitRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *CommitRecordUpdate) SetEventID(v string) *CommitRecordUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *CommitRecordUpdate) SetNillableEventID(v *string) *CommitRecordUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *CommitRecordUpdate) SetLearnerID(v string) *CommitRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *CommitRecordUpdate) SetNillableLearnerID(v *string) *CommitRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *CommitRecordUpdate) SetResult(v map[string]interface{}) *CommitRecordUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// Mutation returns the CommitRecordMutation object of the builder.
func (_u *CommitRecordUpdate) Mutation() *CommitRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommitRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommitRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitRecordUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := commitrecord.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "CommitRecord.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := commitrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CommitRecord.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CommitRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commitrecord.Table, commitrecord.Columns, sqlgraph.NewFieldSpec(commitrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(commitrecord.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(commitrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(commitrecord.FieldResult, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commitrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommitRecordUpdateOne is the builder for updating a single CommitRecord entity.
type CommitRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommitRecordMutation
}

// SetEventID sets the "event_id" field.
func (_u *CommitRecordUpdateOne) SetEventID(v string) *CommitRecordUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *CommitRecordUpdateOne) SetNillableEventID(v *string) *CommitRecordUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *CommitRecordUpdateOne) SetLearnerID(v string) *CommitRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *CommitRecordUpdateOne) SetNillableLearnerID(v *string) *CommitRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *CommitRecordUpdateOne) SetResult(v map[string]interface{}) *CommitRecordUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// Mutation returns the CommitRecordMutation object of the builder.
func (_u *CommitRecordUpdateOne) Mutation() *CommitRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommitRecordUpdate builder.
func (_u *CommitRecordUpdateOne) Where(ps ...predicate.CommitRecord) *CommitRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommitRecordUpdateOne) Select(field string, fields ...string) *CommitRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommitRecord entity.
func (_u *CommitRecordUpdateOne) Save(ctx context.Context) (*CommitRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommitRecordUpdateOne) SaveX(ctx context.Context) *CommitRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommitRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommitRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommitRecordUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := commitrecord.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "CommitRecord.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := commitrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CommitRecord.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CommitRecordUpdateOne) sqlSave(ctx context.Context) (_node *CommitRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(commitrecord.Table, commitrecord.Columns, sqlgraph.NewFieldSpec(commitrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommitRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commitrecord.FieldID)
		for _, f := range fields {
			if !commitrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commitrecord.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(commitrecord.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(commitrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(commitrecord.FieldResult, field.TypeJSON, value)
	}
	_node = &CommitRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commitrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
