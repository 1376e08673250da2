// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptic/ent/assessmentevidence"
	"github.com/abhisek/adaptic/ent/predicate"
)

// AssessmentEvidenceDelete is the builder for deleting a AssessmentEvidence entity.
type AssessmentEvidenceDelete struct {
	config
	hooks    []Hook
	mutation *AssessmentEvidenceMutation
}

// Where appends a list predicates to the AssessmentEvidenceDelete builder.
func (_d *AssessmentEvidenceDelete) Where(ps ...predicate.AssessmentEvidence) *AssessmentEvidenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssessmentEvidenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentEvidenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssessmentEvidenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assessmentevidence.Table, sqlgraph.NewFieldSpec(assessmentevidence.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AssessmentEvidenceDeleteOne is the builder for deleting a single AssessmentEvidence entity.
type AssessmentEvidenceDeleteOne struct {
	_d *AssessmentEvidenceDelete
}

// Where appends a list predicates to the AssessmentEvidenceDelete builder.
func (_d *AssessmentEvidenceDeleteOne) Where(ps ...predicate.AssessmentEvidence) *AssessmentEvidenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssessmentEvidenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assessmentevidence.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentEvidenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
