// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// CheckupAnalyzeDelete is the builder for deleting a CheckupAnalyze entity.
type CheckupAnalyzeDelete struct {
	config
	hooks    []Hook
	mutation *CheckupAnalyzeMutation
}

// Where appends a list predicates to the CheckupAnalyzeDelete builder.
func (_d *CheckupAnalyzeDelete) Where(ps ...predicate.CheckupAnalyze) *CheckupAnalyzeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CheckupAnalyzeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CheckupAnalyzeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CheckupAnalyzeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(checkupanalyze.Table, sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID))
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

// CheckupAnalyzeDeleteOne is the builder for deleting a single CheckupAnalyze entity.
type CheckupAnalyzeDeleteOne struct {
	_d *CheckupAnalyzeDelete
}

// Where appends a list predicates to the CheckupAnalyzeDelete builder.
func (_d *CheckupAnalyzeDeleteOne) Where(ps ...predicate.CheckupAnalyze) *CheckupAnalyzeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CheckupAnalyzeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{checkupanalyze.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CheckupAnalyzeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
