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
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
)

// QuestionOptionNumberUpdate is the builder for updating QuestionOptionNumber entities.
type QuestionOptionNumberUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionOptionNumberMutation
}

// Where appends a list predicates to the QuestionOptionNumberUpdate builder.
func (_u *QuestionOptionNumberUpdate) Where(ps ...predicate.QuestionOptionNumber) *QuestionOptionNumberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *QuestionOptionNumberUpdate) SetOptionID(v uuid.UUID) *QuestionOptionNumberUpdate {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *QuestionOptionNumberUpdate) SetNillableOptionID(v *uuid.UUID) *QuestionOptionNumberUpdate {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// SetLowerBand sets the "lower_band" field.
func (_u *QuestionOptionNumberUpdate) SetLowerBand(v float64) *QuestionOptionNumberUpdate {
	_u.mutation.ResetLowerBand()
	_u.mutation.SetLowerBand(v)
	return _u
}

// SetNillableLowerBand sets the "lower_band" field if the given value is not nil.
func (_u *QuestionOptionNumberUpdate) SetNillableLowerBand(v *float64) *QuestionOptionNumberUpdate {
	if v != nil {
		_u.SetLowerBand(*v)
	}
	return _u
}

// AddLowerBand adds value to the "lower_band" field.
func (_u *QuestionOptionNumberUpdate) AddLowerBand(v float64) *QuestionOptionNumberUpdate {
	_u.mutation.AddLowerBand(v)
	return _u
}

// SetUpperBand sets the "upper_band" field.
func (_u *QuestionOptionNumberUpdate) SetUpperBand(v float64) *QuestionOptionNumberUpdate {
	_u.mutation.ResetUpperBand()
	_u.mutation.SetUpperBand(v)
	return _u
}

// SetNillableUpperBand sets the "upper_band" field if the given value is not nil.
func (_u *QuestionOptionNumberUpdate) SetNillableUpperBand(v *float64) *QuestionOptionNumberUpdate {
	if v != nil {
		_u.SetUpperBand(*v)
	}
	return _u
}

// AddUpperBand adds value to the "upper_band" field.
func (_u *QuestionOptionNumberUpdate) AddUpperBand(v float64) *QuestionOptionNumberUpdate {
	_u.mutation.AddUpperBand(v)
	return _u
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionNumberUpdate) SetOption(v *QuestionOption) *QuestionOptionNumberUpdate {
	return _u.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionNumberMutation object of the builder.
func (_u *QuestionOptionNumberUpdate) Mutation() *QuestionOptionNumberMutation {
	return _u.mutation
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionNumberUpdate) ClearOption() *QuestionOptionNumberUpdate {
	_u.mutation.ClearOption()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionOptionNumberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionNumberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionOptionNumberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionNumberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionNumberUpdate) check() error {
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionOptionNumber.option"`)
	}
	return nil
}

func (_u *QuestionOptionNumberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoptionnumber.Table, questionoptionnumber.Columns, sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LowerBand(); ok {
		_spec.SetField(questionoptionnumber.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowerBand(); ok {
		_spec.AddField(questionoptionnumber.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpperBand(); ok {
		_spec.SetField(questionoptionnumber.FieldUpperBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUpperBand(); ok {
		_spec.AddField(questionoptionnumber.FieldUpperBand, field.TypeFloat64, value)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptionnumber.OptionTable,
			Columns: []string{questionoptionnumber.OptionColumn},
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
			Table:   questionoptionnumber.OptionTable,
			Columns: []string{questionoptionnumber.OptionColumn},
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
			err = &NotFoundError{questionoptionnumber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionOptionNumberUpdateOne is the builder for updating a single QuestionOptionNumber entity.
type QuestionOptionNumberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionOptionNumberMutation
}

// SetOptionID sets the "option_id" field.
func (_u *QuestionOptionNumberUpdateOne) SetOptionID(v uuid.UUID) *QuestionOptionNumberUpdateOne {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *QuestionOptionNumberUpdateOne) SetNillableOptionID(v *uuid.UUID) *QuestionOptionNumberUpdateOne {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// SetLowerBand sets the "lower_band" field.
func (_u *QuestionOptionNumberUpdateOne) SetLowerBand(v float64) *QuestionOptionNumberUpdateOne {
	_u.mutation.ResetLowerBand()
	_u.mutation.SetLowerBand(v)
	return _u
}

// SetNillableLowerBand sets the "lower_band" field if the given value is not nil.
func (_u *QuestionOptionNumberUpdateOne) SetNillableLowerBand(v *float64) *QuestionOptionNumberUpdateOne {
	if v != nil {
		_u.SetLowerBand(*v)
	}
	return _u
}

// AddLowerBand adds value to the "lower_band" field.
func (_u *QuestionOptionNumberUpdateOne) AddLowerBand(v float64) *QuestionOptionNumberUpdateOne {
	_u.mutation.AddLowerBand(v)
	return _u
}

// SetUpperBand sets the "upper_band" field.
func (_u *QuestionOptionNumberUpdateOne) SetUpperBand(v float64) *QuestionOptionNumberUpdateOne {
	_u.mutation.ResetUpperBand()
	_u.mutation.SetUpperBand(v)
	return _u
}

// SetNillableUpperBand sets the "upper_band" field if the given value is not nil.
func (_u *QuestionOptionNumberUpdateOne) SetNillableUpperBand(v *float64) *QuestionOptionNumberUpdateOne {
	if v != nil {
		_u.SetUpperBand(*v)
	}
	return _u
}

// AddUpperBand adds value to the "upper_band" field.
func (_u *QuestionOptionNumberUpdateOne) AddUpperBand(v float64) *QuestionOptionNumberUpdateOne {
	_u.mutation.AddUpperBand(v)
	return _u
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionNumberUpdateOne) SetOption(v *QuestionOption) *QuestionOptionNumberUpdateOne {
	return _u.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionNumberMutation object of the builder.
func (_u *QuestionOptionNumberUpdateOne) Mutation() *QuestionOptionNumberMutation {
	return _u.mutation
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionNumberUpdateOne) ClearOption() *QuestionOptionNumberUpdateOne {
	_u.mutation.ClearOption()
	return _u
}

// Where appends a list predicates to the QuestionOptionNumberUpdate builder.
func (_u *QuestionOptionNumberUpdateOne) Where(ps ...predicate.QuestionOptionNumber) *QuestionOptionNumberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionOptionNumberUpdateOne) Select(field string, fields ...string) *QuestionOptionNumberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionOptionNumber entity.
func (_u *QuestionOptionNumberUpdateOne) Save(ctx context.Context) (*QuestionOptionNumber, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionNumberUpdateOne) SaveX(ctx context.Context) *QuestionOptionNumber {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionOptionNumberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionNumberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionNumberUpdateOne) check() error {
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionOptionNumber.option"`)
	}
	return nil
}

func (_u *QuestionOptionNumberUpdateOne) sqlSave(ctx context.Context) (_node *QuestionOptionNumber, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoptionnumber.Table, questionoptionnumber.Columns, sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "QuestionOptionNumber.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionoptionnumber.FieldID)
		for _, f := range fields {
			if !questionoptionnumber.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != questionoptionnumber.FieldID {
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
		_spec.SetField(questionoptionnumber.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowerBand(); ok {
		_spec.AddField(questionoptionnumber.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpperBand(); ok {
		_spec.SetField(questionoptionnumber.FieldUpperBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUpperBand(); ok {
		_spec.AddField(questionoptionnumber.FieldUpperBand, field.TypeFloat64, value)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptionnumber.OptionTable,
			Columns: []string{questionoptionnumber.OptionColumn},
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
			Table:   questionoptionnumber.OptionTable,
			Columns: []string{questionoptionnumber.OptionColumn},
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
	_node = &QuestionOptionNumber{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoptionnumber.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
