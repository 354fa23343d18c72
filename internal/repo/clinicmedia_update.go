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
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicmedia"
	"github.com/pezeshkyar/checkup_backend/internal/repo/media"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ClinicMediaUpdate is the builder for updating ClinicMedia entities.
type ClinicMediaUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicMediaMutation
}

// Where appends a list predicates to the ClinicMediaUpdate builder.
func (_u *ClinicMediaUpdate) Where(ps ...predicate.ClinicMedia) *ClinicMediaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicMediaUpdate) SetUpdatedAt(v time.Time) *ClinicMediaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicMediaUpdate) SetDeletedAt(v time.Time) *ClinicMediaUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicMediaUpdate) SetNillableDeletedAt(v *time.Time) *ClinicMediaUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicMediaUpdate) ClearDeletedAt() *ClinicMediaUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ClinicMediaUpdate) SetClinicID(v uuid.UUID) *ClinicMediaUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ClinicMediaUpdate) SetNillableClinicID(v *uuid.UUID) *ClinicMediaUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetMediaID sets the "media_id" field.
func (_u *ClinicMediaUpdate) SetMediaID(v uuid.UUID) *ClinicMediaUpdate {
	_u.mutation.SetMediaID(v)
	return _u
}

// SetNillableMediaID sets the "media_id" field if the given value is not nil.
func (_u *ClinicMediaUpdate) SetNillableMediaID(v *uuid.UUID) *ClinicMediaUpdate {
	if v != nil {
		_u.SetMediaID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ClinicMediaUpdate) SetTitle(v string) *ClinicMediaUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ClinicMediaUpdate) SetNillableTitle(v *string) *ClinicMediaUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicMediaUpdate) SetDescription(v string) *ClinicMediaUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicMediaUpdate) SetNillableDescription(v *string) *ClinicMediaUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicMediaUpdate) ClearDescription() *ClinicMediaUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ClinicMediaUpdate) SetClinic(v *Clinic) *ClinicMediaUpdate {
	return _u.SetClinicID(v.ID)
}

// SetMedia sets the "media" edge to the Media entity.
func (_u *ClinicMediaUpdate) SetMedia(v *Media) *ClinicMediaUpdate {
	return _u.SetMediaID(v.ID)
}

// Mutation returns the ClinicMediaMutation object of the builder.
func (_u *ClinicMediaUpdate) Mutation() *ClinicMediaMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ClinicMediaUpdate) ClearClinic() *ClinicMediaUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// ClearMedia clears the "media" edge to the Media entity.
func (_u *ClinicMediaUpdate) ClearMedia() *ClinicMediaUpdate {
	_u.mutation.ClearMedia()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicMediaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicMediaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicMediaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicMediaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicMediaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinicmedia.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicMediaUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := clinicmedia.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicMedia.title": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClinicMedia.clinic"`)
	}
	if _u.mutation.MediaCleared() && len(_u.mutation.MediaIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClinicMedia.media"`)
	}
	return nil
}

func (_u *ClinicMediaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicmedia.Table, clinicmedia.Columns, sqlgraph.NewFieldSpec(clinicmedia.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicmedia.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinicmedia.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinicmedia.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(clinicmedia.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinicmedia.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinicmedia.FieldDescription, field.TypeString)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicmedia.ClinicTable,
			Columns: []string{clinicmedia.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicmedia.ClinicTable,
			Columns: []string{clinicmedia.ClinicColumn},
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
	if _u.mutation.MediaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicmedia.MediaTable,
			Columns: []string{clinicmedia.MediaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MediaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicmedia.MediaTable,
			Columns: []string{clinicmedia.MediaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicmedia.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicMediaUpdateOne is the builder for updating a single ClinicMedia entity.
type ClinicMediaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicMediaMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicMediaUpdateOne) SetUpdatedAt(v time.Time) *ClinicMediaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicMediaUpdateOne) SetDeletedAt(v time.Time) *ClinicMediaUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicMediaUpdateOne) SetNillableDeletedAt(v *time.Time) *ClinicMediaUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicMediaUpdateOne) ClearDeletedAt() *ClinicMediaUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ClinicMediaUpdateOne) SetClinicID(v uuid.UUID) *ClinicMediaUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ClinicMediaUpdateOne) SetNillableClinicID(v *uuid.UUID) *ClinicMediaUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetMediaID sets the "media_id" field.
func (_u *ClinicMediaUpdateOne) SetMediaID(v uuid.UUID) *ClinicMediaUpdateOne {
	_u.mutation.SetMediaID(v)
	return _u
}

// SetNillableMediaID sets the "media_id" field if the given value is not nil.
func (_u *ClinicMediaUpdateOne) SetNillableMediaID(v *uuid.UUID) *ClinicMediaUpdateOne {
	if v != nil {
		_u.SetMediaID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ClinicMediaUpdateOne) SetTitle(v string) *ClinicMediaUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ClinicMediaUpdateOne) SetNillableTitle(v *string) *ClinicMediaUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicMediaUpdateOne) SetDescription(v string) *ClinicMediaUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicMediaUpdateOne) SetNillableDescription(v *string) *ClinicMediaUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicMediaUpdateOne) ClearDescription() *ClinicMediaUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ClinicMediaUpdateOne) SetClinic(v *Clinic) *ClinicMediaUpdateOne {
	return _u.SetClinicID(v.ID)
}

// SetMedia sets the "media" edge to the Media entity.
func (_u *ClinicMediaUpdateOne) SetMedia(v *Media) *ClinicMediaUpdateOne {
	return _u.SetMediaID(v.ID)
}

// Mutation returns the ClinicMediaMutation object of the builder.
func (_u *ClinicMediaUpdateOne) Mutation() *ClinicMediaMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ClinicMediaUpdateOne) ClearClinic() *ClinicMediaUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// ClearMedia clears the "media" edge to the Media entity.
func (_u *ClinicMediaUpdateOne) ClearMedia() *ClinicMediaUpdateOne {
	_u.mutation.ClearMedia()
	return _u
}

// Where appends a list predicates to the ClinicMediaUpdate builder.
func (_u *ClinicMediaUpdateOne) Where(ps ...predicate.ClinicMedia) *ClinicMediaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicMediaUpdateOne) Select(field string, fields ...string) *ClinicMediaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClinicMedia entity.
func (_u *ClinicMediaUpdateOne) Save(ctx context.Context) (*ClinicMedia, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicMediaUpdateOne) SaveX(ctx context.Context) *ClinicMedia {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicMediaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicMediaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicMediaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinicmedia.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicMediaUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := clinicmedia.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicMedia.title": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClinicMedia.clinic"`)
	}
	if _u.mutation.MediaCleared() && len(_u.mutation.MediaIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClinicMedia.media"`)
	}
	return nil
}

func (_u *ClinicMediaUpdateOne) sqlSave(ctx context.Context) (_node *ClinicMedia, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicmedia.Table, clinicmedia.Columns, sqlgraph.NewFieldSpec(clinicmedia.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClinicMedia.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinicmedia.FieldID)
		for _, f := range fields {
			if !clinicmedia.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinicmedia.FieldID {
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
		_spec.SetField(clinicmedia.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinicmedia.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinicmedia.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(clinicmedia.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinicmedia.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinicmedia.FieldDescription, field.TypeString)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicmedia.ClinicTable,
			Columns: []string{clinicmedia.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicmedia.ClinicTable,
			Columns: []string{clinicmedia.ClinicColumn},
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
	if _u.mutation.MediaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicmedia.MediaTable,
			Columns: []string{clinicmedia.MediaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MediaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicmedia.MediaTable,
			Columns: []string{clinicmedia.MediaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(media.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClinicMedia{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicmedia.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
