// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/predicate"
	"github.com/abhisek/adaptic/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionEventUpdate) SetLearnerID(v string) *SessionEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLearnerID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *SessionEventUpdate) SetElapsedSecs(v int64) *SessionEventUpdate {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableElapsedSecs(v *int64) *SessionEventUpdate {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *SessionEventUpdate) AddElapsedSecs(v int64) *SessionEventUpdate {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// SetActiveSecs sets the "active_secs" field.
func (_u *SessionEventUpdate) SetActiveSecs(v int64) *SessionEventUpdate {
	_u.mutation.ResetActiveSecs()
	_u.mutation.SetActiveSecs(v)
	return _u
}

// SetNillableActiveSecs sets the "active_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableActiveSecs(v *int64) *SessionEventUpdate {
	if v != nil {
		_u.SetActiveSecs(*v)
	}
	return _u
}

// AddActiveSecs adds value to the "active_secs" field.
func (_u *SessionEventUpdate) AddActiveSecs(v int64) *SessionEventUpdate {
	_u.mutation.AddActiveSecs(v)
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *SessionEventUpdate) SetEventCount(v int) *SessionEventUpdate {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableEventCount(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *SessionEventUpdate) AddEventCount(v int) *SessionEventUpdate {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *SessionEventUpdate) SetFinalDifficulty(v int) *SessionEventUpdate {
	_u.mutation.ResetFinalDifficulty()
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableFinalDifficulty(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// AddFinalDifficulty adds value to the "final_difficulty" field.
func (_u *SessionEventUpdate) AddFinalDifficulty(v int) *SessionEventUpdate {
	_u.mutation.AddFinalDifficulty(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(sessionevent.FieldElapsedSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(sessionevent.FieldElapsedSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActiveSecs(); ok {
		_spec.SetField(sessionevent.FieldActiveSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActiveSecs(); ok {
		_spec.AddField(sessionevent.FieldActiveSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(sessionevent.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(sessionevent.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionevent.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalDifficulty(); ok {
		_spec.AddField(sessionevent.FieldFinalDifficulty, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionEventUpdateOne) SetLearnerID(v string) *SessionEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLearnerID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *SessionEventUpdateOne) SetElapsedSecs(v int64) *SessionEventUpdateOne {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableElapsedSecs(v *int64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *SessionEventUpdateOne) AddElapsedSecs(v int64) *SessionEventUpdateOne {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// SetActiveSecs sets the "active_secs" field.
func (_u *SessionEventUpdateOne) SetActiveSecs(v int64) *SessionEventUpdateOne {
	_u.mutation.ResetActiveSecs()
	_u.mutation.SetActiveSecs(v)
	return _u
}

// SetNillableActiveSecs sets the "active_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableActiveSecs(v *int64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetActiveSecs(*v)
	}
	return _u
}

// AddActiveSecs adds value to the "active_secs" field.
func (_u *SessionEventUpdateOne) AddActiveSecs(v int64) *SessionEventUpdateOne {
	_u.mutation.AddActiveSecs(v)
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *SessionEventUpdateOne) SetEventCount(v int) *SessionEventUpdateOne {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableEventCount(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *SessionEventUpdateOne) AddEventCount(v int) *SessionEventUpdateOne {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *SessionEventUpdateOne) SetFinalDifficulty(v int) *SessionEventUpdateOne {
	_u.mutation.ResetFinalDifficulty()
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableFinalDifficulty(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// AddFinalDifficulty adds value to the "final_difficulty" field.
func (_u *SessionEventUpdateOne) AddFinalDifficulty(v int) *SessionEventUpdateOne {
	_u.mutation.AddFinalDifficulty(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(sessionevent.FieldElapsedSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(sessionevent.FieldElapsedSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ActiveSecs(); ok {
		_spec.SetField(sessionevent.FieldActiveSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedActiveSecs(); ok {
		_spec.AddField(sessionevent.FieldActiveSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(sessionevent.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(sessionevent.FieldEventCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionevent.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalDifficulty(); ok {
		_spec.AddField(sessionevent.FieldFinalDifficulty, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
