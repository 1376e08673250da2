// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/predicate"
	"github.com/abhisek/adaptic/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProgressRecordUpdate) SetLearnerID(v string) *ProgressRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLearnerID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ProgressRecordUpdate) SetUnitID(v string) *ProgressRecordUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUnitID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgressRecordUpdate) SetStatus(v string) *ProgressRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableStatus(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFraction sets the "fraction" field.
func (_u *ProgressRecordUpdate) SetFraction(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetFraction()
	_u.mutation.SetFraction(v)
	return _u
}

// SetNillableFraction sets the "fraction" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFraction(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFraction(*v)
	}
	return _u
}

// AddFraction adds value to the "fraction" field.
func (_u *ProgressRecordUpdate) AddFraction(v float64) *ProgressRecordUpdate {
	_u.mutation.AddFraction(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ProgressRecordUpdate) SetTimeSpentSecs(v int64) *ProgressRecordUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTimeSpentSecs(v *int64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ProgressRecordUpdate) AddTimeSpentSecs(v int64) *ProgressRecordUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressRecordUpdate) SetAttempts(v int) *ProgressRecordUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableAttempts(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressRecordUpdate) AddAttempts(v int) *ProgressRecordUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *ProgressRecordUpdate) SetBestScore(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableBestScore(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *ProgressRecordUpdate) AddBestScore(v float64) *ProgressRecordUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// ClearBestScore clears the value of the "best_score" field.
func (_u *ProgressRecordUpdate) ClearBestScore() *ProgressRecordUpdate {
	_u.mutation.ClearBestScore()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdate) SetVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableVersion(v *int64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdate) AddVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdate) SetUpdatedAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUpdatedAt(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := progressrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := progressrecord.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.unit_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(progressrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(progressrecord.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(progressrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fraction(); ok {
		_spec.SetField(progressrecord.FieldFraction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFraction(); ok {
		_spec.AddField(progressrecord.FieldFraction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(progressrecord.FieldTimeSpentSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(progressrecord.FieldTimeSpentSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if _u.mutation.BestScoreCleared() {
		_spec.ClearField(progressrecord.FieldBestScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProgressRecordUpdateOne) SetLearnerID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLearnerID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ProgressRecordUpdateOne) SetUnitID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUnitID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProgressRecordUpdateOne) SetStatus(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableStatus(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFraction sets the "fraction" field.
func (_u *ProgressRecordUpdateOne) SetFraction(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetFraction()
	_u.mutation.SetFraction(v)
	return _u
}

// SetNillableFraction sets the "fraction" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFraction(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFraction(*v)
	}
	return _u
}

// AddFraction adds value to the "fraction" field.
func (_u *ProgressRecordUpdateOne) AddFraction(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddFraction(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ProgressRecordUpdateOne) SetTimeSpentSecs(v int64) *ProgressRecordUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTimeSpentSecs(v *int64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ProgressRecordUpdateOne) AddTimeSpentSecs(v int64) *ProgressRecordUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressRecordUpdateOne) SetAttempts(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableAttempts(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressRecordUpdateOne) AddAttempts(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *ProgressRecordUpdateOne) SetBestScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableBestScore(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *ProgressRecordUpdateOne) AddBestScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// ClearBestScore clears the value of the "best_score" field.
func (_u *ProgressRecordUpdateOne) ClearBestScore() *ProgressRecordUpdateOne {
	_u.mutation.ClearBestScore()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdateOne) SetVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableVersion(v *int64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdateOne) AddVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdateOne) SetUpdatedAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUpdatedAt(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := progressrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := progressrecord.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.unit_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
		_spec.SetField(progressrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(progressrecord.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(progressrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fraction(); ok {
		_spec.SetField(progressrecord.FieldFraction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFraction(); ok {
		_spec.AddField(progressrecord.FieldFraction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(progressrecord.FieldTimeSpentSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(progressrecord.FieldTimeSpentSecs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if _u.mutation.BestScoreCleared() {
		_spec.ClearField(progressrecord.FieldBestScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
