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
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionAnswerUpdate is the builder for updating QuestionAnswer entities.
type QuestionAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionAnswerMutation
}

// Where appends a list predicates to the QuestionAnswerUpdate builder.
func (_u *QuestionAnswerUpdate) Where(ps ...predicate.QuestionAnswer) *QuestionAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCheckupID sets the "checkup_id" field.
func (_u *QuestionAnswerUpdate) SetCheckupID(v uuid.UUID) *QuestionAnswerUpdate {
	_u.mutation.SetCheckupID(v)
	return _u
}

// SetNillableCheckupID sets the "checkup_id" field if the given value is not nil.
func (_u *QuestionAnswerUpdate) SetNillableCheckupID(v *uuid.UUID) *QuestionAnswerUpdate {
	if v != nil {
		_u.SetCheckupID(*v)
	}
	return _u
}

// SetQuestionShareID sets the "question_share_id" field.
func (_u *QuestionAnswerUpdate) SetQuestionShareID(v uuid.UUID) *QuestionAnswerUpdate {
	_u.mutation.SetQuestionShareID(v)
	return _u
}

// SetNillableQuestionShareID sets the "question_share_id" field if the given value is not nil.
func (_u *QuestionAnswerUpdate) SetNillableQuestionShareID(v *uuid.UUID) *QuestionAnswerUpdate {
	if v != nil {
		_u.SetQuestionShareID(*v)
	}
	return _u
}

// SetQuestionOptionID sets the "question_option_id" field.
func (_u *QuestionAnswerUpdate) SetQuestionOptionID(v uuid.UUID) *QuestionAnswerUpdate {
	_u.mutation.SetQuestionOptionID(v)
	return _u
}

// SetNillableQuestionOptionID sets the "question_option_id" field if the given value is not nil.
func (_u *QuestionAnswerUpdate) SetNillableQuestionOptionID(v *uuid.UUID) *QuestionAnswerUpdate {
	if v != nil {
		_u.SetQuestionOptionID(*v)
	}
	return _u
}

// SetRawValue sets the "raw_value" field.
func (_u *QuestionAnswerUpdate) SetRawValue(v string) *QuestionAnswerUpdate {
	_u.mutation.SetRawValue(v)
	return _u
}

// SetNillableRawValue sets the "raw_value" field if the given value is not nil.
func (_u *QuestionAnswerUpdate) SetNillableRawValue(v *string) *QuestionAnswerUpdate {
	if v != nil {
		_u.SetRawValue(*v)
	}
	return _u
}

// ClearRawValue clears the value of the "raw_value" field.
func (_u *QuestionAnswerUpdate) ClearRawValue() *QuestionAnswerUpdate {
	_u.mutation.ClearRawValue()
	return _u
}

// SetCheckup sets the "checkup" edge to the Checkup entity.
func (_u *QuestionAnswerUpdate) SetCheckup(v *Checkup) *QuestionAnswerUpdate {
	return _u.SetCheckupID(v.ID)
}

// SetQuestionID sets the "question" edge to the QuestionShare entity by ID.
func (_u *QuestionAnswerUpdate) SetQuestionID(id uuid.UUID) *QuestionAnswerUpdate {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the QuestionShare entity.
func (_u *QuestionAnswerUpdate) SetQuestion(v *QuestionShare) *QuestionAnswerUpdate {
	return _u.SetQuestionID(v.ID)
}

// SetOptionID sets the "option" edge to the QuestionOption entity by ID.
func (_u *QuestionAnswerUpdate) SetOptionID(id uuid.UUID) *QuestionAnswerUpdate {
	_u.mutation.SetOptionID(id)
	return _u
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_u *QuestionAnswerUpdate) SetOption(v *QuestionOption) *QuestionAnswerUpdate {
	return _u.SetOptionID(v.ID)
}

// Mutation returns the QuestionAnswerMutation object of the builder.
func (_u *QuestionAnswerUpdate) Mutation() *QuestionAnswerMutation {
	return _u.mutation
}

// ClearCheckup clears the "checkup" edge to the Checkup entity.
func (_u *QuestionAnswerUpdate) ClearCheckup() *QuestionAnswerUpdate {
	_u.mutation.ClearCheckup()
	return _u
}

// ClearQuestion clears the "question" edge to the QuestionShare entity.
func (_u *QuestionAnswerUpdate) ClearQuestion() *QuestionAnswerUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (_u *QuestionAnswerUpdate) ClearOption() *QuestionAnswerUpdate {
	_u.mutation.ClearOption()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionAnswerUpdate) check() error {
	if _u.mutation.CheckupCleared() && len(_u.mutation.CheckupIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionAnswer.checkup"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionAnswer.question"`)
	}
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionAnswer.option"`)
	}
	return nil
}

func (_u *QuestionAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionanswer.Table, questionanswer.Columns, sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawValue(); ok {
		_spec.SetField(questionanswer.FieldRawValue, field.TypeString, value)
	}
	if _u.mutation.RawValueCleared() {
		_spec.ClearField(questionanswer.FieldRawValue, field.TypeString)
	}
	if _u.mutation.CheckupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionanswer.CheckupTable,
			Columns: []string{questionanswer.CheckupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionanswer.CheckupTable,
			Columns: []string{questionanswer.CheckupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionanswer.QuestionTable,
			Columns: []string{questionanswer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionanswer.QuestionTable,
			Columns: []string{questionanswer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionanswer.OptionTable,
			Columns: []string{questionanswer.OptionColumn},
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
			Inverse: false,
			Table:   questionanswer.OptionTable,
			Columns: []string{questionanswer.OptionColumn},
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
			err = &NotFoundError{questionanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionAnswerUpdateOne is the builder for updating a single QuestionAnswer entity.
type QuestionAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionAnswerMutation
}

// SetCheckupID sets the "checkup_id" field.
func (_u *QuestionAnswerUpdateOne) SetCheckupID(v uuid.UUID) *QuestionAnswerUpdateOne {
	_u.mutation.SetCheckupID(v)
	return _u
}

// SetNillableCheckupID sets the "checkup_id" field if the given value is not nil.
func (_u *QuestionAnswerUpdateOne) SetNillableCheckupID(v *uuid.UUID) *QuestionAnswerUpdateOne {
	if v != nil {
		_u.SetCheckupID(*v)
	}
	return _u
}

// SetQuestionShareID sets the "question_share_id" field.
func (_u *QuestionAnswerUpdateOne) SetQuestionShareID(v uuid.UUID) *QuestionAnswerUpdateOne {
	_u.mutation.SetQuestionShareID(v)
	return _u
}

// SetNillableQuestionShareID sets the "question_share_id" field if the given value is not nil.
func (_u *QuestionAnswerUpdateOne) SetNillableQuestionShareID(v *uuid.UUID) *QuestionAnswerUpdateOne {
	if v != nil {
		_u.SetQuestionShareID(*v)
	}
	return _u
}

// SetQuestionOptionID sets the "question_option_id" field.
func (_u *QuestionAnswerUpdateOne) SetQuestionOptionID(v uuid.UUID) *QuestionAnswerUpdateOne {
	_u.mutation.SetQuestionOptionID(v)
	return _u
}

// SetNillableQuestionOptionID sets the "question_option_id" field if the given value is not nil.
func (_u *QuestionAnswerUpdateOne) SetNillableQuestionOptionID(v *uuid.UUID) *QuestionAnswerUpdateOne {
	if v != nil {
		_u.SetQuestionOptionID(*v)
	}
	return _u
}

// SetRawValue sets the "raw_value" field.
func (_u *QuestionAnswerUpdateOne) SetRawValue(v string) *QuestionAnswerUpdateOne {
	_u.mutation.SetRawValue(v)
	return _u
}

// SetNillableRawValue sets the "raw_value" field if the given value is not nil.
func (_u *QuestionAnswerUpdateOne) SetNillableRawValue(v *string) *QuestionAnswerUpdateOne {
	if v != nil {
		_u.SetRawValue(*v)
	}
	return _u
}

// ClearRawValue clears the value of the "raw_value" field.
func (_u *QuestionAnswerUpdateOne) ClearRawValue() *QuestionAnswerUpdateOne {
	_u.mutation.ClearRawValue()
	return _u
}

// SetCheckup sets the "checkup" edge to the Checkup entity.
func (_u *QuestionAnswerUpdateOne) SetCheckup(v *Checkup) *QuestionAnswerUpdateOne {
	return _u.SetCheckupID(v.ID)
}

// SetQuestionID sets the "question" edge to the QuestionShare entity by ID.
func (_u *QuestionAnswerUpdateOne) SetQuestionID(id uuid.UUID) *QuestionAnswerUpdateOne {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the QuestionShare entity.
func (_u *QuestionAnswerUpdateOne) SetQuestion(v *QuestionShare) *QuestionAnswerUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// SetOptionID sets the "option" edge to the QuestionOption entity by ID.
func (_u *QuestionAnswerUpdateOne) SetOptionID(id uuid.UUID) *QuestionAnswerUpdateOne {
	_u.mutation.SetOptionID(id)
	return _u
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_u *QuestionAnswerUpdateOne) SetOption(v *QuestionOption) *QuestionAnswerUpdateOne {
	return _u.SetOptionID(v.ID)
}

// Mutation returns the QuestionAnswerMutation object of the builder.
func (_u *QuestionAnswerUpdateOne) Mutation() *QuestionAnswerMutation {
	return _u.mutation
}

// ClearCheckup clears the "checkup" edge to the Checkup entity.
func (_u *QuestionAnswerUpdateOne) ClearCheckup() *QuestionAnswerUpdateOne {
	_u.mutation.ClearCheckup()
	return _u
}

// ClearQuestion clears the "question" edge to the QuestionShare entity.
func (_u *QuestionAnswerUpdateOne) ClearQuestion() *QuestionAnswerUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (_u *QuestionAnswerUpdateOne) ClearOption() *QuestionAnswerUpdateOne {
	_u.mutation.ClearOption()
	return _u
}

// Where appends a list predicates to the QuestionAnswerUpdate builder.
func (_u *QuestionAnswerUpdateOne) Where(ps ...predicate.QuestionAnswer) *QuestionAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionAnswerUpdateOne) Select(field string, fields ...string) *QuestionAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionAnswer entity.
func (_u *QuestionAnswerUpdateOne) Save(ctx context.Context) (*QuestionAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionAnswerUpdateOne) SaveX(ctx context.Context) *QuestionAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionAnswerUpdateOne) check() error {
	if _u.mutation.CheckupCleared() && len(_u.mutation.CheckupIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionAnswer.checkup"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionAnswer.question"`)
	}
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionAnswer.option"`)
	}
	return nil
}

func (_u *QuestionAnswerUpdateOne) sqlSave(ctx context.Context) (_node *QuestionAnswer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionanswer.Table, questionanswer.Columns, sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "QuestionAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionanswer.FieldID)
		for _, f := range fields {
			if !questionanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != questionanswer.FieldID {
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
	if value, ok := _u.mutation.RawValue(); ok {
		_spec.SetField(questionanswer.FieldRawValue, field.TypeString, value)
	}
	if _u.mutation.RawValueCleared() {
		_spec.ClearField(questionanswer.FieldRawValue, field.TypeString)
	}
	if _u.mutation.CheckupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionanswer.CheckupTable,
			Columns: []string{questionanswer.CheckupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionanswer.CheckupTable,
			Columns: []string{questionanswer.CheckupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionanswer.QuestionTable,
			Columns: []string{questionanswer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionanswer.QuestionTable,
			Columns: []string{questionanswer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionanswer.OptionTable,
			Columns: []string{questionanswer.OptionColumn},
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
			Inverse: false,
			Table:   questionanswer.OptionTable,
			Columns: []string{questionanswer.OptionColumn},
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
	_node = &QuestionAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
