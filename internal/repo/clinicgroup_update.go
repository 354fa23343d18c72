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
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicgroup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ClinicGroupUpdate is the builder for updating ClinicGroup entities.
type ClinicGroupUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicGroupMutation
}

// Where appends a list predicates to the ClinicGroupUpdate builder.
func (_u *ClinicGroupUpdate) Where(ps ...predicate.ClinicGroup) *ClinicGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicGroupUpdate) SetUpdatedAt(v time.Time) *ClinicGroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicGroupUpdate) SetDeletedAt(v time.Time) *ClinicGroupUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicGroupUpdate) SetNillableDeletedAt(v *time.Time) *ClinicGroupUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicGroupUpdate) ClearDeletedAt() *ClinicGroupUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ClinicGroupUpdate) SetTitle(v string) *ClinicGroupUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ClinicGroupUpdate) SetNillableTitle(v *string) *ClinicGroupUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicGroupUpdate) SetDescription(v string) *ClinicGroupUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicGroupUpdate) SetNillableDescription(v *string) *ClinicGroupUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicGroupUpdate) ClearDescription() *ClinicGroupUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// AddClinicIDs adds the "clinics" edge to the Clinic entity by IDs.
func (_u *ClinicGroupUpdate) AddClinicIDs(ids ...uuid.UUID) *ClinicGroupUpdate {
	_u.mutation.AddClinicIDs(ids...)
	return _u
}

// AddClinics adds the "clinics" edges to the Clinic entity.
func (_u *ClinicGroupUpdate) AddClinics(v ...*Clinic) *ClinicGroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClinicIDs(ids...)
}

// Mutation returns the ClinicGroupMutation object of the builder.
func (_u *ClinicGroupUpdate) Mutation() *ClinicGroupMutation {
	return _u.mutation
}

// ClearClinics clears all "clinics" edges to the Clinic entity.
func (_u *ClinicGroupUpdate) ClearClinics() *ClinicGroupUpdate {
	_u.mutation.ClearClinics()
	return _u
}

// RemoveClinicIDs removes the "clinics" edge to Clinic entities by IDs.
func (_u *ClinicGroupUpdate) RemoveClinicIDs(ids ...uuid.UUID) *ClinicGroupUpdate {
	_u.mutation.RemoveClinicIDs(ids...)
	return _u
}

// RemoveClinics removes "clinics" edges to Clinic entities.
func (_u *ClinicGroupUpdate) RemoveClinics(v ...*Clinic) *ClinicGroupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClinicIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicGroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicGroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinicgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicGroupUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := clinicgroup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicGroup.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicgroup.Table, clinicgroup.Columns, sqlgraph.NewFieldSpec(clinicgroup.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinicgroup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinicgroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(clinicgroup.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinicgroup.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinicgroup.FieldDescription, field.TypeString)
	}
	if _u.mutation.ClinicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinicgroup.ClinicsTable,
			Columns: []string{clinicgroup.ClinicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClinicsIDs(); len(nodes) > 0 && !_u.mutation.ClinicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinicgroup.ClinicsTable,
			Columns: []string{clinicgroup.ClinicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinicgroup.ClinicsTable,
			Columns: []string{clinicgroup.ClinicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicGroupUpdateOne is the builder for updating a single ClinicGroup entity.
type ClinicGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicGroupMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicGroupUpdateOne) SetUpdatedAt(v time.Time) *ClinicGroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicGroupUpdateOne) SetDeletedAt(v time.Time) *ClinicGroupUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicGroupUpdateOne) SetNillableDeletedAt(v *time.Time) *ClinicGroupUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicGroupUpdateOne) ClearDeletedAt() *ClinicGroupUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ClinicGroupUpdateOne) SetTitle(v string) *ClinicGroupUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ClinicGroupUpdateOne) SetNillableTitle(v *string) *ClinicGroupUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicGroupUpdateOne) SetDescription(v string) *ClinicGroupUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicGroupUpdateOne) SetNillableDescription(v *string) *ClinicGroupUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicGroupUpdateOne) ClearDescription() *ClinicGroupUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// AddClinicIDs adds the "clinics" edge to the Clinic entity by IDs.
func (_u *ClinicGroupUpdateOne) AddClinicIDs(ids ...uuid.UUID) *ClinicGroupUpdateOne {
	_u.mutation.AddClinicIDs(ids...)
	return _u
}

// AddClinics adds the "clinics" edges to the Clinic entity.
func (_u *ClinicGroupUpdateOne) AddClinics(v ...*Clinic) *ClinicGroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClinicIDs(ids...)
}

// Mutation returns the ClinicGroupMutation object of the builder.
func (_u *ClinicGroupUpdateOne) Mutation() *ClinicGroupMutation {
	return _u.mutation
}

// ClearClinics clears all "clinics" edges to the Clinic entity.
func (_u *ClinicGroupUpdateOne) ClearClinics() *ClinicGroupUpdateOne {
	_u.mutation.ClearClinics()
	return _u
}

// RemoveClinicIDs removes the "clinics" edge to Clinic entities by IDs.
func (_u *ClinicGroupUpdateOne) RemoveClinicIDs(ids ...uuid.UUID) *ClinicGroupUpdateOne {
	_u.mutation.RemoveClinicIDs(ids...)
	return _u
}

// RemoveClinics removes "clinics" edges to Clinic entities.
func (_u *ClinicGroupUpdateOne) RemoveClinics(v ...*Clinic) *ClinicGroupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClinicIDs(ids...)
}

// Where appends a list predicates to the ClinicGroupUpdate builder.
func (_u *ClinicGroupUpdateOne) Where(ps ...predicate.ClinicGroup) *ClinicGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicGroupUpdateOne) Select(field string, fields ...string) *ClinicGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClinicGroup entity.
func (_u *ClinicGroupUpdateOne) Save(ctx context.Context) (*ClinicGroup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicGroupUpdateOne) SaveX(ctx context.Context) *ClinicGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicGroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinicgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := clinicgroup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicGroup.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicGroupUpdateOne) sqlSave(ctx context.Context) (_node *ClinicGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicgroup.Table, clinicgroup.Columns, sqlgraph.NewFieldSpec(clinicgroup.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClinicGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinicgroup.FieldID)
		for _, f := range fields {
			if !clinicgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinicgroup.FieldID {
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
		_spec.SetField(clinicgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinicgroup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinicgroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(clinicgroup.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinicgroup.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinicgroup.FieldDescription, field.TypeString)
	}
	if _u.mutation.ClinicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinicgroup.ClinicsTable,
			Columns: []string{clinicgroup.ClinicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClinicsIDs(); len(nodes) > 0 && !_u.mutation.ClinicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinicgroup.ClinicsTable,
			Columns: []string{clinicgroup.ClinicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinicgroup.ClinicsTable,
			Columns: []string{clinicgroup.ClinicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClinicGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
