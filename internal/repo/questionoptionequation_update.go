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
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionequation"
)

// QuestionOptionEquationUpdate is the builder for updating QuestionOptionEquation entities.
type QuestionOptionEquationUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionOptionEquationMutation
}

// Where appends a list predicates to the QuestionOptionEquationUpdate builder.
func (_u *QuestionOptionEquationUpdate) Where(ps ...predicate.QuestionOptionEquation) *QuestionOptionEquationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOptionID sets the "option_id" field.
func (_u *QuestionOptionEquationUpdate) SetOptionID(v uuid.UUID) *QuestionOptionEquationUpdate {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *QuestionOptionEquationUpdate) SetNillableOptionID(v *uuid.UUID) *QuestionOptionEquationUpdate {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// SetLowerBand sets the "lower_band" field.
func (_u *QuestionOptionEquationUpdate) SetLowerBand(v float64) *QuestionOptionEquationUpdate {
	_u.mutation.ResetLowerBand()
	_u.mutation.SetLowerBand(v)
	return _u
}

// SetNillableLowerBand sets the "lower_band" field if the given value is not nil.
func (_u *QuestionOptionEquationUpdate) SetNillableLowerBand(v *float64) *QuestionOptionEquationUpdate {
	if v != nil {
		_u.SetLowerBand(*v)
	}
	return _u
}

// AddLowerBand adds value to the "lower_band" field.
func (_u *QuestionOptionEquationUpdate) AddLowerBand(v float64) *QuestionOptionEquationUpdate {
	_u.mutation.AddLowerBand(v)
	return _u
}

// SetUpperBand sets the "upper_band" field.
func (_u *QuestionOptionEquationUpdate) SetUpperBand(v float64) *QuestionOptionEquationUpdate {
	_u.mutation.ResetUpperBand()
	_u.mutation.SetUpperBand(v)
	return _u
}

// SetNillableUpperBand sets the "upper_band" field if the given value is not nil.
func (_u *QuestionOptionEquationUpdate) SetNillableUpperBand(v *float64) *QuestionOptionEquationUpdate {
	if v != nil {
		_u.SetUpperBand(*v)
	}
	return _u
}

// AddUpperBand adds value to the "upper_band" field.
func (_u *QuestionOptionEquationUpdate) AddUpperBand(v float64) *QuestionOptionEquationUpdate {
	_u.mutation.AddUpperBand(v)
	return _u
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionEquationUpdate) SetOption(v *QuestionOption) *QuestionOptionEquationUpdate {
	return _u.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionEquationMutation object of the builder.
func (_u *QuestionOptionEquationUpdate) Mutation() *QuestionOptionEquationMutation {
	return _u.mutation
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionEquationUpdate) ClearOption() *QuestionOptionEquationUpdate {
	_u.mutation.ClearOption()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionOptionEquationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionEquationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionOptionEquationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionEquationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionEquationUpdate) check() error {
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionOptionEquation.option"`)
	}
	return nil
}

func (_u *QuestionOptionEquationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoptionequation.Table, questionoptionequation.Columns, sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LowerBand(); ok {
		_spec.SetField(questionoptionequation.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowerBand(); ok {
		_spec.AddField(questionoptionequation.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpperBand(); ok {
		_spec.SetField(questionoptionequation.FieldUpperBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUpperBand(); ok {
		_spec.AddField(questionoptionequation.FieldUpperBand, field.TypeFloat64, value)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptionequation.OptionTable,
			Columns: []string{questionoptionequation.OptionColumn},
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
			Table:   questionoptionequation.OptionTable,
			Columns: []string{questionoptionequation.OptionColumn},
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
			err = &NotFoundError{questionoptionequation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionOptionEquationUpdateOne is the builder for updating a single QuestionOptionEquation entity.
type QuestionOptionEquationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionOptionEquationMutation
}

// SetOptionID sets the "option_id" field.
func (_u *QuestionOptionEquationUpdateOne) SetOptionID(v uuid.UUID) *QuestionOptionEquationUpdateOne {
	_u.mutation.SetOptionID(v)
	return _u
}

// SetNillableOptionID sets the "option_id" field if the given value is not nil.
func (_u *QuestionOptionEquationUpdateOne) SetNillableOptionID(v *uuid.UUID) *QuestionOptionEquationUpdateOne {
	if v != nil {
		_u.SetOptionID(*v)
	}
	return _u
}

// SetLowerBand sets the "lower_band" field.
func (_u *QuestionOptionEquationUpdateOne) SetLowerBand(v float64) *QuestionOptionEquationUpdateOne {
	_u.mutation.ResetLowerBand()
	_u.mutation.SetLowerBand(v)
	return _u
}

// SetNillableLowerBand sets the "lower_band" field if the given value is not nil.
func (_u *QuestionOptionEquationUpdateOne) SetNillableLowerBand(v *float64) *QuestionOptionEquationUpdateOne {
	if v != nil {
		_u.SetLowerBand(*v)
	}
	return _u
}

// AddLowerBand adds value to the "lower_band" field.
func (_u *QuestionOptionEquationUpdateOne) AddLowerBand(v float64) *QuestionOptionEquationUpdateOne {
	_u.mutation.AddLowerBand(v)
	return _u
}

// SetUpperBand sets the "upper_band" field.
func (_u *QuestionOptionEquationUpdateOne) SetUpperBand(v float64) *QuestionOptionEquationUpdateOne {
	_u.mutation.ResetUpperBand()
	_u.mutation.SetUpperBand(v)
	return _u
}

// SetNillableUpperBand sets the "upper_band" field if the given value is not nil.
func (_u *QuestionOptionEquationUpdateOne) SetNillableUpperBand(v *float64) *QuestionOptionEquationUpdateOne {
	if v != nil {
		_u.SetUpperBand(*v)
	}
	return _u
}

// AddUpperBand adds value to the "upper_band" field.
func (_u *QuestionOptionEquationUpdateOne) AddUpperBand(v float64) *QuestionOptionEquationUpdateOne {
	_u.mutation.AddUpperBand(v)
	return _u
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionEquationUpdateOne) SetOption(v *QuestionOption) *QuestionOptionEquationUpdateOne {
	return _u.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionEquationMutation object of the builder.
func (_u *QuestionOptionEquationUpdateOne) Mutation() *QuestionOptionEquationMutation {
	return _u.mutation
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (_u *QuestionOptionEquationUpdateOne) ClearOption() *QuestionOptionEquationUpdateOne {
	_u.mutation.ClearOption()
	return _u
}

// Where appends a list predicates to the QuestionOptionEquationUpdate builder.
func (_u *QuestionOptionEquationUpdateOne) Where(ps ...predicate.QuestionOptionEquation) *QuestionOptionEquationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionOptionEquationUpdateOne) Select(field string, fields ...string) *QuestionOptionEquationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionOptionEquation entity.
func (_u *QuestionOptionEquationUpdateOne) Save(ctx context.Context) (*QuestionOptionEquation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionEquationUpdateOne) SaveX(ctx context.Context) *QuestionOptionEquation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionOptionEquationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionEquationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionEquationUpdateOne) check() error {
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionOptionEquation.option"`)
	}
	return nil
}

func (_u *QuestionOptionEquationUpdateOne) sqlSave(ctx context.Context) (_node *QuestionOptionEquation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoptionequation.Table, questionoptionequation.Columns, sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "QuestionOptionEquation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionoptionequation.FieldID)
		for _, f := range fields {
			if !questionoptionequation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != questionoptionequation.FieldID {
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
		_spec.SetField(questionoptionequation.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowerBand(); ok {
		_spec.AddField(questionoptionequation.FieldLowerBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpperBand(); ok {
		_spec.SetField(questionoptionequation.FieldUpperBand, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUpperBand(); ok {
		_spec.AddField(questionoptionequation.FieldUpperBand, field.TypeFloat64, value)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptionequation.OptionTable,
			Columns: []string{questionoptionequation.OptionColumn},
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
			Table:   questionoptionequation.OptionTable,
			Columns: []string{questionoptionequation.OptionColumn},
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
	_node = &QuestionOptionEquation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoptionequation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
