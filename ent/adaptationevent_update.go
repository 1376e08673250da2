// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/adaptationevent"
	"github.com/abhisek/adaptic/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AdaptationEventUpdate) SetSessionID(v string) *AdaptationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableSessionID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AdaptationEventUpdate) SetLearnerID(v string) *AdaptationEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableLearnerID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *AdaptationEventUpdate) SetUnitID(v string) *AdaptationEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableUnitID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdate) SetReason(v string) *AdaptationEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableReason(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFromDifficulty sets the "from_difficulty" field.
func (_u *AdaptationEventUpdate) SetFromDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.ResetFromDifficulty()
	_u.mutation.SetFromDifficulty(v)
	return _u
}

// SetNillableFromDifficulty sets the "from_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableFromDifficulty(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetFromDifficulty(*v)
	}
	return _u
}

// AddFromDifficulty adds value to the "from_difficulty" field.
func (_u *AdaptationEventUpdate) AddFromDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.AddFromDifficulty(v)
	return _u
}

// SetToDifficulty sets the "to_difficulty" field.
func (_u *AdaptationEventUpdate) SetToDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.ResetToDifficulty()
	_u.mutation.SetToDifficulty(v)
	return _u
}

// SetNillableToDifficulty sets the "to_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableToDifficulty(v *int) *AdaptationEventUpdate {
	if v != nil {
		_u.SetToDifficulty(*v)
	}
	return _u
}

// AddToDifficulty adds value to the "to_difficulty" field.
func (_u *AdaptationEventUpdate) AddToDifficulty(v int) *AdaptationEventUpdate {
	_u.mutation.AddToDifficulty(v)
	return _u
}

// SetRecommendedUnitID sets the "recommended_unit_id" field.
func (_u *AdaptationEventUpdate) SetRecommendedUnitID(v string) *AdaptationEventUpdate {
	_u.mutation.SetRecommendedUnitID(v)
	return _u
}

// SetNillableRecommendedUnitID sets the "recommended_unit_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableRecommendedUnitID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetRecommendedUnitID(*v)
	}
	return _u
}

// ClearRecommendedUnitID clears the value of the "recommended_unit_id" field.
func (_u *AdaptationEventUpdate) ClearRecommendedUnitID() *AdaptationEventUpdate {
	_u.mutation.ClearRecommendedUnitID()
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := adaptationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := adaptationevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := adaptationevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := adaptationevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(adaptationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(adaptationevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(adaptationevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldFromDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldFromDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldToDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldToDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendedUnitID(); ok {
		_spec.SetField(adaptationevent.FieldRecommendedUnitID, field.TypeString, value)
	}
	if _u.mutation.RecommendedUnitIDCleared() {
		_spec.ClearField(adaptationevent.FieldRecommendedUnitID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AdaptationEventUpdateOne) SetSessionID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableSessionID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AdaptationEventUpdateOne) SetLearnerID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableLearnerID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *AdaptationEventUpdateOne) SetUnitID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableUnitID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AdaptationEventUpdateOne) SetReason(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableReason(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFromDifficulty sets the "from_difficulty" field.
func (_u *AdaptationEventUpdateOne) SetFromDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetFromDifficulty()
	_u.mutation.SetFromDifficulty(v)
	return _u
}

// SetNillableFromDifficulty sets the "from_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableFromDifficulty(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetFromDifficulty(*v)
	}
	return _u
}

// AddFromDifficulty adds value to the "from_difficulty" field.
func (_u *AdaptationEventUpdateOne) AddFromDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddFromDifficulty(v)
	return _u
}

// SetToDifficulty sets the "to_difficulty" field.
func (_u *AdaptationEventUpdateOne) SetToDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.ResetToDifficulty()
	_u.mutation.SetToDifficulty(v)
	return _u
}

// SetNillableToDifficulty sets the "to_difficulty" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableToDifficulty(v *int) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetToDifficulty(*v)
	}
	return _u
}

// AddToDifficulty adds value to the "to_difficulty" field.
func (_u *AdaptationEventUpdateOne) AddToDifficulty(v int) *AdaptationEventUpdateOne {
	_u.mutation.AddToDifficulty(v)
	return _u
}

// SetRecommendedUnitID sets the "recommended_unit_id" field.
func (_u *AdaptationEventUpdateOne) SetRecommendedUnitID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetRecommendedUnitID(v)
	return _u
}

// SetNillableRecommendedUnitID sets the "recommended_unit_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableRecommendedUnitID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetRecommendedUnitID(*v)
	}
	return _u
}

// ClearRecommendedUnitID clears the value of the "recommended_unit_id" field.
func (_u *AdaptationEventUpdateOne) ClearRecommendedUnitID() *AdaptationEventUpdateOne {
	_u.mutation.ClearRecommendedUnitID()
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (_u *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := adaptationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := adaptationevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := adaptationevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := adaptationevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
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
		_spec.SetField(adaptationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(adaptationevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(adaptationevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(adaptationevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldFromDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldFromDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToDifficulty(); ok {
		_spec.SetField(adaptationevent.FieldToDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToDifficulty(); ok {
		_spec.AddField(adaptationevent.FieldToDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendedUnitID(); ok {
		_spec.SetField(adaptationevent.FieldRecommendedUnitID, field.TypeString, value)
	}
	if _u.mutation.RecommendedUnitIDCleared() {
		_spec.ClearField(adaptationevent.FieldRecommendedUnitID, field.TypeString)
	}
	_node = &AdaptationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
