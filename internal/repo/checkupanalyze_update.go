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
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// CheckupAnalyzeUpdate is the builder for updating CheckupAnalyze entities.
type CheckupAnalyzeUpdate struct {
	config
	hooks    []Hook
	mutation *CheckupAnalyzeMutation
}

// Where appends a list predicates to the CheckupAnalyzeUpdate builder.
func (_u *CheckupAnalyzeUpdate) Where(ps ...predicate.CheckupAnalyze) *CheckupAnalyzeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckupAnalyzeUpdate) SetUpdatedAt(v time.Time) *CheckupAnalyzeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CheckupAnalyzeUpdate) SetDeletedAt(v time.Time) *CheckupAnalyzeUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CheckupAnalyzeUpdate) SetNillableDeletedAt(v *time.Time) *CheckupAnalyzeUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CheckupAnalyzeUpdate) ClearDeletedAt() *CheckupAnalyzeUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (_u *CheckupAnalyzeUpdate) SetClinicCheckupID(v uuid.UUID) *CheckupAnalyzeUpdate {
	_u.mutation.SetClinicCheckupID(v)
	return _u
}

// SetNillableClinicCheckupID sets the "clinic_checkup_id" field if the given value is not nil.
func (_u *CheckupAnalyzeUpdate) SetNillableClinicCheckupID(v *uuid.UUID) *CheckupAnalyzeUpdate {
	if v != nil {
		_u.SetClinicCheckupID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CheckupAnalyzeUpdate) SetTitle(v string) *CheckupAnalyzeUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CheckupAnalyzeUpdate) SetNillableTitle(v *string) *CheckupAnalyzeUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CheckupAnalyzeUpdate) SetDescription(v string) *CheckupAnalyzeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CheckupAnalyzeUpdate) SetNillableDescription(v *string) *CheckupAnalyzeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CheckupAnalyzeUpdate) ClearDescription() *CheckupAnalyzeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTemplateID sets the "template" edge to the ClinicCheckup entity by ID.
func (_u *CheckupAnalyzeUpdate) SetTemplateID(id uuid.UUID) *CheckupAnalyzeUpdate {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetTemplate sets the "template" edge to the ClinicCheckup entity.
func (_u *CheckupAnalyzeUpdate) SetTemplate(v *ClinicCheckup) *CheckupAnalyzeUpdate {
	return _u.SetTemplateID(v.ID)
}

// AddInterpretationIDs adds the "interpretations" edge to the Interpretation entity by IDs.
func (_u *CheckupAnalyzeUpdate) AddInterpretationIDs(ids ...uuid.UUID) *CheckupAnalyzeUpdate {
	_u.mutation.AddInterpretationIDs(ids...)
	return _u
}

// AddInterpretations adds the "interpretations" edges to the Interpretation entity.
func (_u *CheckupAnalyzeUpdate) AddInterpretations(v ...*Interpretation) *CheckupAnalyzeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterpretationIDs(ids...)
}

// Mutation returns the CheckupAnalyzeMutation object of the builder.
func (_u *CheckupAnalyzeUpdate) Mutation() *CheckupAnalyzeMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the ClinicCheckup entity.
func (_u *CheckupAnalyzeUpdate) ClearTemplate() *CheckupAnalyzeUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearInterpretations clears all "interpretations" edges to the Interpretation entity.
func (_u *CheckupAnalyzeUpdate) ClearInterpretations() *CheckupAnalyzeUpdate {
	_u.mutation.ClearInterpretations()
	return _u
}

// RemoveInterpretationIDs removes the "interpretations" edge to Interpretation entities by IDs.
func (_u *CheckupAnalyzeUpdate) RemoveInterpretationIDs(ids ...uuid.UUID) *CheckupAnalyzeUpdate {
	_u.mutation.RemoveInterpretationIDs(ids...)
	return _u
}

// RemoveInterpretations removes "interpretations" edges to Interpretation entities.
func (_u *CheckupAnalyzeUpdate) RemoveInterpretations(v ...*Interpretation) *CheckupAnalyzeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterpretationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckupAnalyzeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckupAnalyzeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckupAnalyzeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckupAnalyzeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckupAnalyzeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkupanalyze.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckupAnalyzeUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := checkupanalyze.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "CheckupAnalyze.title": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CheckupAnalyze.template"`)
	}
	return nil
}

func (_u *CheckupAnalyzeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkupanalyze.Table, checkupanalyze.Columns, sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkupanalyze.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(checkupanalyze.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(checkupanalyze.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(checkupanalyze.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(checkupanalyze.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(checkupanalyze.FieldDescription, field.TypeString)
	}
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkupanalyze.TemplateTable,
			Columns: []string{checkupanalyze.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkupanalyze.TemplateTable,
			Columns: []string{checkupanalyze.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InterpretationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkupanalyze.InterpretationsTable,
			Columns: []string{checkupanalyze.InterpretationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterpretationsIDs(); len(nodes) > 0 && !_u.mutation.InterpretationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkupanalyze.InterpretationsTable,
			Columns: []string{checkupanalyze.InterpretationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterpretationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkupanalyze.InterpretationsTable,
			Columns: []string{checkupanalyze.InterpretationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkupanalyze.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckupAnalyzeUpdateOne is the builder for updating a single CheckupAnalyze entity.
type CheckupAnalyzeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckupAnalyzeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckupAnalyzeUpdateOne) SetUpdatedAt(v time.Time) *CheckupAnalyzeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CheckupAnalyzeUpdateOne) SetDeletedAt(v time.Time) *CheckupAnalyzeUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CheckupAnalyzeUpdateOne) SetNillableDeletedAt(v *time.Time) *CheckupAnalyzeUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CheckupAnalyzeUpdateOne) ClearDeletedAt() *CheckupAnalyzeUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (_u *CheckupAnalyzeUpdateOne) SetClinicCheckupID(v uuid.UUID) *CheckupAnalyzeUpdateOne {
	_u.mutation.SetClinicCheckupID(v)
	return _u
}

// SetNillableClinicCheckupID sets the "clinic_checkup_id" field if the given value is not nil.
func (_u *CheckupAnalyzeUpdateOne) SetNillableClinicCheckupID(v *uuid.UUID) *CheckupAnalyzeUpdateOne {
	if v != nil {
		_u.SetClinicCheckupID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CheckupAnalyzeUpdateOne) SetTitle(v string) *CheckupAnalyzeUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CheckupAnalyzeUpdateOne) SetNillableTitle(v *string) *CheckupAnalyzeUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CheckupAnalyzeUpdateOne) SetDescription(v string) *CheckupAnalyzeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CheckupAnalyzeUpdateOne) SetNillableDescription(v *string) *CheckupAnalyzeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CheckupAnalyzeUpdateOne) ClearDescription() *CheckupAnalyzeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTemplateID sets the "template" edge to the ClinicCheckup entity by ID.
func (_u *CheckupAnalyzeUpdateOne) SetTemplateID(id uuid.UUID) *CheckupAnalyzeUpdateOne {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetTemplate sets the "template" edge to the ClinicCheckup entity.
func (_u *CheckupAnalyzeUpdateOne) SetTemplate(v *ClinicCheckup) *CheckupAnalyzeUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// AddInterpretationIDs adds the "interpretations" edge to the Interpretation entity by IDs.
func (_u *CheckupAnalyzeUpdateOne) AddInterpretationIDs(ids ...uuid.UUID) *CheckupAnalyzeUpdateOne {
	_u.mutation.AddInterpretationIDs(ids...)
	return _u
}

// AddInterpretations adds the "interpretations" edges to the Interpretation entity.
func (_u *CheckupAnalyzeUpdateOne) AddInterpretations(v ...*Interpretation) *CheckupAnalyzeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInterpretationIDs(ids...)
}

// Mutation returns the CheckupAnalyzeMutation object of the builder.
func (_u *CheckupAnalyzeUpdateOne) Mutation() *CheckupAnalyzeMutation {
	return _u.mutation
}

// ClearTemplate clears the "template" edge to the ClinicCheckup entity.
func (_u *CheckupAnalyzeUpdateOne) ClearTemplate() *CheckupAnalyzeUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearInterpretations clears all "interpretations" edges to the Interpretation entity.
func (_u *CheckupAnalyzeUpdateOne) ClearInterpretations() *CheckupAnalyzeUpdateOne {
	_u.mutation.ClearInterpretations()
	return _u
}

// RemoveInterpretationIDs removes the "interpretations" edge to Interpretation entities by IDs.
func (_u *CheckupAnalyzeUpdateOne) RemoveInterpretationIDs(ids ...uuid.UUID) *CheckupAnalyzeUpdateOne {
	_u.mutation.RemoveInterpretationIDs(ids...)
	return _u
}

// RemoveInterpretations removes "interpretations" edges to Interpretation entities.
func (_u *CheckupAnalyzeUpdateOne) RemoveInterpretations(v ...*Interpretation) *CheckupAnalyzeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInterpretationIDs(ids...)
}

// Where appends a list predicates to the CheckupAnalyzeUpdate builder.
func (_u *CheckupAnalyzeUpdateOne) Where(ps ...predicate.CheckupAnalyze) *CheckupAnalyzeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckupAnalyzeUpdateOne) Select(field string, fields ...string) *CheckupAnalyzeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckupAnalyze entity.
func (_u *CheckupAnalyzeUpdateOne) Save(ctx context.Context) (*CheckupAnalyze, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckupAnalyzeUpdateOne) SaveX(ctx context.Context) *CheckupAnalyze {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckupAnalyzeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckupAnalyzeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckupAnalyzeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkupanalyze.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckupAnalyzeUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := checkupanalyze.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "CheckupAnalyze.title": %w`, err)}
		}
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "CheckupAnalyze.template"`)
	}
	return nil
}

func (_u *CheckupAnalyzeUpdateOne) sqlSave(ctx context.Context) (_node *CheckupAnalyze, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkupanalyze.Table, checkupanalyze.Columns, sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CheckupAnalyze.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkupanalyze.FieldID)
		for _, f := range fields {
			if !checkupanalyze.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != checkupanalyze.FieldID {
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
		_spec.SetField(checkupanalyze.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(checkupanalyze.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(checkupanalyze.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(checkupanalyze.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(checkupanalyze.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(checkupanalyze.FieldDescription, field.TypeString)
	}
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkupanalyze.TemplateTable,
			Columns: []string{checkupanalyze.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkupanalyze.TemplateTable,
			Columns: []string{checkupanalyze.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InterpretationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkupanalyze.InterpretationsTable,
			Columns: []string{checkupanalyze.InterpretationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInterpretationsIDs(); len(nodes) > 0 && !_u.mutation.InterpretationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkupanalyze.InterpretationsTable,
			Columns: []string{checkupanalyze.InterpretationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterpretationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkupanalyze.InterpretationsTable,
			Columns: []string{checkupanalyze.InterpretationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CheckupAnalyze{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkupanalyze.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
