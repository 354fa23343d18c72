// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
)

// InterpretationUpdate is the builder for updating Interpretation entities.
type InterpretationUpdate struct {
	config
	hooks    []Hook
	mutation *InterpretationMutation
}

// Where appends a list predicates to the InterpretationUpdate builder.
func (_u *InterpretationUpdate) Where(ps ...predicate.Interpretation) *InterpretationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterpretationUpdate) SetUpdatedAt(v time.Time) *InterpretationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InterpretationUpdate) SetDeletedAt(v time.Time) *InterpretationUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InterpretationUpdate) SetNillableDeletedAt(v *time.Time) *InterpretationUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InterpretationUpdate) ClearDeletedAt() *InterpretationUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetAnalyzeID sets the "analyze_id" field.
func (_u *InterpretationUpdate) SetAnalyzeID(v uuid.UUID) *InterpretationUpdate {
	_u.mutation.SetAnalyzeID(v)
	return _u
}

// SetNillableAnalyzeID sets the "analyze_id" field if the given value is not nil.
func (_u *InterpretationUpdate) SetNillableAnalyzeID(v *uuid.UUID) *InterpretationUpdate {
	if v != nil {
		_u.SetAnalyzeID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InterpretationUpdate) SetTitle(v string) *InterpretationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InterpretationUpdate) SetNillableTitle(v *string) *InterpretationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *InterpretationUpdate) SetContent(v string) *InterpretationUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *InterpretationUpdate) SetNillableContent(v *string) *InterpretationUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *InterpretationUpdate) ClearContent() *InterpretationUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetAnalyze sets the "analyze" edge to the CheckupAnalyze entity.
func (_u *InterpretationUpdate) SetAnalyze(v *CheckupAnalyze) *InterpretationUpdate {
	return _u.SetAnalyzeID(v.ID)
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_u *InterpretationUpdate) AddSuggestionIDs(ids ...uuid.UUID) *InterpretationUpdate {
	_u.mutation.AddSuggestionIDs(ids...)
	return _u
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_u *InterpretationUpdate) AddSuggestions(v ...*Suggestion) *InterpretationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuggestionIDs(ids...)
}

// Mutation returns the InterpretationMutation object of the builder.
func (_u *InterpretationUpdate) Mutation() *InterpretationMutation {
	return _u.mutation
}

// ClearAnalyze clears the "analyze" edge to the CheckupAnalyze entity.
func (_u *InterpretationUpdate) ClearAnalyze() *InterpretationUpdate {
	_u.mutation.ClearAnalyze()
	return _u
}

// ClearSuggestions clears all "suggestions" edges to the Suggestion entity.
func (_u *InterpretationUpdate) ClearSuggestions() *InterpretationUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// RemoveSuggestionIDs removes the "suggestions" edge to Suggestion entities by IDs.
func (_u *InterpretationUpdate) RemoveSuggestionIDs(ids ...uuid.UUID) *InterpretationUpdate {
	_u.mutation.RemoveSuggestionIDs(ids...)
	return _u
}

// RemoveSuggestions removes "suggestions" edges to Suggestion entities.
func (_u *InterpretationUpdate) RemoveSuggestions(v ...*Suggestion) *InterpretationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuggestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterpretationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterpretationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterpretationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterpretationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterpretationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interpretation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterpretationUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := interpretation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Interpretation.title": %w`, err)}
		}
	}
	if _u.mutation.AnalyzeCleared() && len(_u.mutation.AnalyzeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Interpretation.analyze"`)
	}
	return nil
}

func (_u *InterpretationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interpretation.Table, interpretation.Columns, sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interpretation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(interpretation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(interpretation.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(interpretation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(interpretation.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(interpretation.FieldContent, field.TypeString)
	}
	if _u.mutation.AnalyzeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interpretation.AnalyzeTable,
			Columns: []string{interpretation.AnalyzeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyzeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interpretation.AnalyzeTable,
			Columns: []string{interpretation.AnalyzeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interpretation.SuggestionsTable,
			Columns: []string{interpretation.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.SuggestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interpretation.SuggestionsTable,
			Columns: []string{interpretation.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interpretation.SuggestionsTable,
			Columns: []string{interpretation.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interpretation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterpretationUpdateOne is the builder for updating a single Interpretation entity.
type InterpretationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterpretationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InterpretationUpdateOne) SetUpdatedAt(v time.Time) *InterpretationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InterpretationUpdateOne) SetDeletedAt(v time.Time) *InterpretationUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InterpretationUpdateOne) SetNillableDeletedAt(v *time.Time) *InterpretationUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InterpretationUpdateOne) ClearDeletedAt() *InterpretationUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetAnalyzeID sets the "analyze_id" field.
func (_u *InterpretationUpdateOne) SetAnalyzeID(v uuid.UUID) *InterpretationUpdateOne {
	_u.mutation.SetAnalyzeID(v)
	return _u
}

// SetNillableAnalyzeID sets the "analyze_id" field if the given value is not nil.
func (_u *InterpretationUpdateOne) SetNillableAnalyzeID(v *uuid.UUID) *InterpretationUpdateOne {
	if v != nil {
		_u.SetAnalyzeID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InterpretationUpdateOne) SetTitle(v string) *InterpretationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InterpretationUpdateOne) SetNillableTitle(v *string) *InterpretationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *InterpretationUpdateOne) SetContent(v string) *InterpretationUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *InterpretationUpdateOne) SetNillableContent(v *string) *InterpretationUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *InterpretationUpdateOne) ClearContent() *InterpretationUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetAnalyze sets the "analyze" edge to the CheckupAnalyze entity.
func (_u *InterpretationUpdateOne) SetAnalyze(v *CheckupAnalyze) *InterpretationUpdateOne {
	return _u.SetAnalyzeID(v.ID)
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_u *InterpretationUpdateOne) AddSuggestionIDs(ids ...uuid.UUID) *InterpretationUpdateOne {
	_u.mutation.AddSuggestionIDs(ids...)
	return _u
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_u *InterpretationUpdateOne) AddSuggestions(v ...*Suggestion) *InterpretationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuggestionIDs(ids...)
}

// Mutation returns the InterpretationMutation object of the builder.
func (_u *InterpretationUpdateOne) Mutation() *InterpretationMutation {
	return _u.mutation
}

// ClearAnalyze clears the "analyze" edge to the CheckupAnalyze entity.
func (_u *InterpretationUpdateOne) ClearAnalyze() *InterpretationUpdateOne {
	_u.mutation.ClearAnalyze()
	return _u
}

// ClearSuggestions clears all "suggestions" edges to the Suggestion entity.
func (_u *InterpretationUpdateOne) ClearSuggestions() *InterpretationUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// RemoveSuggestionIDs removes the "suggestions" edge to Suggestion entities by IDs.
func (_u *InterpretationUpdateOne) RemoveSuggestionIDs(ids ...uuid.UUID) *InterpretationUpdateOne {
	_u.mutation.RemoveSuggestionIDs(ids...)
	return _u
}

// RemoveSuggestions removes "suggestions" edges to Suggestion entities.
func (_u *InterpretationUpdateOne) RemoveSuggestions(v ...*Suggestion) *InterpretationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuggestionIDs(ids...)
}

// Where appends a list predicates to the InterpretationUpdate builder.
func (_u *InterpretationUpdateOne) Where(ps ...predicate.Interpretation) *InterpretationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterpretationUpdateOne) Select(field string, fields ...string) *InterpretationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interpretation entity.
func (_u *InterpretationUpdateOne) Save(ctx context.Context) (*Interpretation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterpretationUpdateOne) SaveX(ctx context.Context) *Interpretation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterpretationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterpretationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InterpretationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interpretation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterpretationUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := interpretation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Interpretation.title": %w`, err)}
		}
	}
	if _u.mutation.AnalyzeCleared() && len(_u.mutation.AnalyzeIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Interpretation.analyze"`)
	}
	return nil
}

func (_u *InterpretationUpdateOne) sqlSave(ctx context.Context) (_node *Interpretation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interpretation.Table, interpretation.Columns, sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Interpretation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interpretation.FieldID)
		for _, f := range fields {
			if !interpretation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != interpretation.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interpretation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(interpretation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(interpretation.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(interpretation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(interpretation.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(interpretation.FieldContent, field.TypeString)
	}
	if _u.mutation.AnalyzeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interpretation.AnalyzeTable,
			Columns: []string{interpretation.AnalyzeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyzeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interpretation.AnalyzeTable,
			Columns: []string{interpretation.AnalyzeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interpretation.SuggestionsTable,
			Columns: []string{interpretation.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.SuggestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interpretation.SuggestionsTable,
			Columns: []string{interpretation.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interpretation.SuggestionsTable,
			Columns: []string{interpretation.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Interpretation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interpretation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
