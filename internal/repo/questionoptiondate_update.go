// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptiondate"
)

// QuestionOptionDateUpdate is the builder for updating QuestionOptionDate entities.
type QuestionOptionDateUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionOptionDateMutation
}

// Where appends a list predicates to the QuestionOptionDateUpdate builder.
func (_u *QuestionOptionDateUpdate) Where(ps ...predicate.QuestionOptionDate) *QuestionOptionDateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *QuestionOptionDateUpdate) SetOptionID(v uuid.UUID) *QuestionOptionDateUpdate {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *QuestionOptionDateUpdate) SetNillableOptionID(v *uuid.UUID) *QuestionOptionDateUpdate {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// SetLowerBand sets the "lower_band" field.
func (_u *QuestionOptionDateUpdate) SetLowerBand(v float64) *QuestionOptionDateUpdate {
	_u.mutation.ResetLowerBand()
	_u.mutation.SetLowerBand(v)
	return _u
}

// SetNillableLowerBand sets the "lower_band" field if the given value is not nil.
func (_u *QuestionOptionDateUpdate) SetNillableLowerBand(v *float64) *QuestionOptionDateUpdate {
	if v != nil {
		_u.SetLowerBand(*v)
	}
	return _u
}

// AddLowerBand adds value to the "lower_band" field.
func (_u *QuestionOptionDateUpdate) AddLowerBand(v float64) *QuestionOptionDateUpdate {
	_u.mutation.AddLowerBand(v)
	return _u
}

// SetUpperBand sets the "upper_band" field.
func (_u *QuestionOptionDateUpdate) SetUpperBand(v float64) *QuestionOptionDateUpdate {
	_u.mutation.ResetUpperBand()
	_u.mutation.SetUpperBand(v)
	return _u
}

// SetNillableUpperBand sets the "upper_band" field if the given value is not nil.
func (_u *QuestionOptionDateUpdate) SetNillableUpperBand(v *float64) *QuestionOptionDateUpdate {
	if v != nil {
		_u.SetUpperBand(*v)
	}
	return _u
}

// AddUpperBand adds value to the "upper_band" field.
func (_u *QuestionOptionDateUpdate) AddUpperBand(v float64) *QuestionOptionDateUpdate {
	_u.mutation.AddUpperBand(v)
	return _u
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionDateUpdate) SetOption(v *QuestionOption) *QuestionOptionDateUpdate {
	return _u.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionDateMutation object of the builder.
func (_u *QuestionOptionDateUpdate) Mutation() *QuestionOptionDateMutation {
	return _u.mutation
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionDateUpdate) ClearOption() *QuestionOptionDateUpdate {
	_u.mutation.ClearOption()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionOptionDateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionDateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionOptionDateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionDateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionDateUpdate) check() error {
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionOptionDate.option"`)
	}
	return nil
}

func (_u *QuestionOptionDateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoptiondate.Table, questionoptiondate.Columns, sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LowerBand(); ok {
		_spec.SetField(questionoptiondate.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowerBand(); ok {
		_spec.AddField(questionoptiondate.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpperBand(); ok {
		_spec.SetField(questionoptiondate.FieldUpperBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUpperBand(); ok {
		_spec.AddField(questionoptiondate.FieldUpperBand, field.TypeFloat64, value)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptiondate.OptionTable,
			Columns: []string{questionoptiondate.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptiondate.OptionTable,
			Columns: []string{questionoptiondate.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoptiondate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionOptionDateUpdateOne is the builder for updating a single QuestionOptionDate entity.
type QuestionOptionDateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionOptionDateMutation
}

// SetOptionID sets the "option_id" field.
func (_u *QuestionOptionDateUpdateOne) SetOptionID(v uuid.UUID) *QuestionOptionDateUpdateOne {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *QuestionOptionDateUpdateOne) SetNillableOptionID(v *uuid.UUID) *QuestionOptionDateUpdateOne {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// SetLowerBand sets the "lower_band" field.
func (_u *QuestionOptionDateUpdateOne) SetLowerBand(v float64) *QuestionOptionDateUpdateOne {
	_u.mutation.ResetLowerBand()
	_u.mutation.SetLowerBand(v)
	return _u
}

// SetNillableLowerBand sets the "lower_band" field if the given value is not nil.
func (_u *QuestionOptionDateUpdateOne) SetNillableLowerBand(v *float64) *QuestionOptionDateUpdateOne {
	if v != nil {
		_u.SetLowerBand(*v)
	}
	return _u
}

// AddLowerBand adds value to the "lower_band" field.
func (_u *QuestionOptionDateUpdateOne) AddLowerBand(v float64) *QuestionOptionDateUpdateOne {
	_u.mutation.AddLowerBand(v)
	return _u
}

// SetUpperBand sets the "upper_band" field.
func (_u *QuestionOptionDateUpdateOne) SetUpperBand(v float64) *QuestionOptionDateUpdateOne {
	_u.mutation.ResetUpperBand()
	_u.mutation.SetUpperBand(v)
	return _u
}

// SetNillableUpperBand sets the "upper_band" field if the given value is not nil.
func (_u *QuestionOptionDateUpdateOne) SetNillableUpperBand(v *float64) *QuestionOptionDateUpdateOne {
	if v != nil {
		_u.SetUpperBand(*v)
	}
	return _u
}

// AddUpperBand adds value to the "upper_band" field.
func (_u *QuestionOptionDateUpdateOne) AddUpperBand(v float64) *QuestionOptionDateUpdateOne {
	_u.mutation.AddUpperBand(v)
	return _u
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionDateUpdateOne) SetOption(v *QuestionOption) *QuestionOptionDateUpdateOne {
	return _u.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionDateMutation object of the builder.
func (_u *QuestionOptionDateUpdateOne) Mutation() *QuestionOptionDateMutation {
	return _u.mutation
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionDateUpdateOne) ClearOption() *QuestionOptionDateUpdateOne {
	_u.mutation.ClearOption()
	return _u
}

// Where appends a list predicates to the QuestionOptionDateUpdate builder.
func (_u *QuestionOptionDateUpdateOne) Where(ps ...predicate.QuestionOptionDate) *QuestionOptionDateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionOptionDateUpdateOne) Select(field string, fields ...string) *QuestionOptionDateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionOptionDate entity.
func (_u *QuestionOptionDateUpdateOne) Save(ctx context.Context) (*QuestionOptionDate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionDateUpdateOne) SaveX(ctx context.Context) *QuestionOptionDate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionOptionDateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionDateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionDateUpdateOne) check() error {
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionOptionDate.option"`)
	}
	return nil
}

func (_u *QuestionOptionDateUpdateOne) sqlSave(ctx context.Context) (_node *QuestionOptionDate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoptiondate.Table, questionoptiondate.Columns, sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "QuestionOptionDate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionoptiondate.FieldID)
		for _, f := range fields {
			if !questionoptiondate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != questionoptiondate.FieldID {
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
	if value, ok := _u.mutation.LowerBand(); ok {
		_spec.SetField(questionoptiondate.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowerBand(); ok {
		_spec.AddField(questionoptiondate.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpperBand(); ok {
		_spec.SetField(questionoptiondate.FieldUpperBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUpperBand(); ok {
		_spec.AddField(questionoptiondate.FieldUpperBand, field.TypeFloat64, value)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptiondate.OptionTable,
			Columns: []string{questionoptiondate.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptiondate.OptionTable,
			Columns: []string{questionoptiondate.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuestionOptionDate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoptiondate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
