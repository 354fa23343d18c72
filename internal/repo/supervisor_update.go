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
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
)

// SupervisorUpdate is the builder for updating Supervisor entities.
type SupervisorUpdate struct {
	config
	hooks    []Hook
	mutation *SupervisorMutation
}

// Where appends a list predicates to the SupervisorUpdate builder.
func (_u *SupervisorUpdate) Where(ps ...predicate.Supervisor) *SupervisorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupervisorUpdate) SetUpdatedAt(v time.Time) *SupervisorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SupervisorUpdate) SetUserID(v uuid.UUID) *SupervisorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SupervisorUpdate) SetNillableUserID(v *uuid.UUID) *SupervisorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (_u *SupervisorUpdate) SetPatientProfileID(v uuid.UUID) *SupervisorUpdate {
	_u.mutation.SetPatientProfileID(v)
	return _u
}

// SetNillablePatientProfileID sets the "patient_profile_id" field if the given value is not nil.
func (_u *SupervisorUpdate) SetNillablePatientProfileID(v *uuid.UUID) *SupervisorUpdate {
	if v != nil {
		_u.SetPatientProfileID(*v)
	}
	return _u
}

// SetRelativeType sets the "relative_type" field.
func (_u *SupervisorUpdate) SetRelativeType(v supervisor.RelativeType) *SupervisorUpdate {
	_u.mutation.SetRelativeType(v)
	return _u
}

// SetNillableRelativeType sets the "relative_type" field if the given value is not nil.
func (_u *SupervisorUpdate) SetNillableRelativeType(v *supervisor.RelativeType) *SupervisorUpdate {
	if v != nil {
		_u.SetRelativeType(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SupervisorUpdate) SetUser(v *User) *SupervisorUpdate {
	return _u.SetUserID(v.ID)
}

// SetPatientID sets the "patient" edge to the PatientProfile entity by ID.
func (_u *SupervisorUpdate) SetPatientID(id uuid.UUID) *SupervisorUpdate {
	_u.mutation.SetPatientID(id)
	return _u
}

// SetPatient sets the "patient" edge to the PatientProfile entity.
func (_u *SupervisorUpdate) SetPatient(v *PatientProfile) *SupervisorUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the SupervisorMutation object of the builder.
func (_u *SupervisorUpdate) Mutation() *SupervisorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SupervisorUpdate) ClearUser() *SupervisorUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearPatient clears the "patient" edge to the PatientProfile entity.
func (_u *SupervisorUpdate) ClearPatient() *SupervisorUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupervisorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupervisorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupervisorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupervisorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupervisorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supervisor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupervisorUpdate) check() error {
	if v, ok := _u.mutation.RelativeType(); ok {
		if err := supervisor.RelativeTypeValidator(v); err != nil {
			return &ValidationError{Name: "relative_type", err: fmt.Errorf(`repo: validator failed for field "Supervisor.relative_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Supervisor.user"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Supervisor.patient"`)
	}
	return nil
}

func (_u *SupervisorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supervisor.Table, supervisor.Columns, sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supervisor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RelativeType(); ok {
		_spec.SetField(supervisor.FieldRelativeType, field.TypeEnum, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   supervisor.UserTable,
			Columns: []string{supervisor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   supervisor.UserTable,
			Columns: []string{supervisor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supervisor.PatientTable,
			Columns: []string{supervisor.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supervisor.PatientTable,
			Columns: []string{supervisor.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supervisor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupervisorUpdateOne is the builder for updating a single Supervisor entity.
type SupervisorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupervisorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupervisorUpdateOne) SetUpdatedAt(v time.Time) *SupervisorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SupervisorUpdateOne) SetUserID(v uuid.UUID) *SupervisorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SupervisorUpdateOne) SetNillableUserID(v *uuid.UUID) *SupervisorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (_u *SupervisorUpdateOne) SetPatientProfileID(v uuid.UUID) *SupervisorUpdateOne {
	_u.mutation.SetPatientProfileID(v)
	return _u
}

// SetNillablePatientProfileID sets the "patient_profile_id" field if the given value is not nil.
func (_u *SupervisorUpdateOne) SetNillablePatientProfileID(v *uuid.UUID) *SupervisorUpdateOne {
	if v != nil {
		_u.SetPatientProfileID(*v)
	}
	return _u
}

// SetRelativeType sets the "relative_type" field.
func (_u *SupervisorUpdateOne) SetRelativeType(v supervisor.RelativeType) *SupervisorUpdateOne {
	_u.mutation.SetRelativeType(v)
	return _u
}

// SetNillableRelativeType sets the "relative_type" field if the given value is not nil.
func (_u *SupervisorUpdateOne) SetNillableRelativeType(v *supervisor.RelativeType) *SupervisorUpdateOne {
	if v != nil {
		_u.SetRelativeType(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SupervisorUpdateOne) SetUser(v *User) *SupervisorUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetPatientID sets the "patient" edge to the PatientProfile entity by ID.
func (_u *SupervisorUpdateOne) SetPatientID(id uuid.UUID) *SupervisorUpdateOne {
	_u.mutation.SetPatientID(id)
	return _u
}

// SetPatient sets the "patient" edge to the PatientProfile entity.
func (_u *SupervisorUpdateOne) SetPatient(v *PatientProfile) *SupervisorUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the SupervisorMutation object of the builder.
func (_u *SupervisorUpdateOne) Mutation() *SupervisorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SupervisorUpdateOne) ClearUser() *SupervisorUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearPatient clears the "patient" edge to the PatientProfile entity.
func (_u *SupervisorUpdateOne) ClearPatient() *SupervisorUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the SupervisorUpdate builder.
func (_u *SupervisorUpdateOne) Where(ps ...predicate.Supervisor) *SupervisorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupervisorUpdateOne) Select(field string, fields ...string) *SupervisorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Supervisor entity.
func (_u *SupervisorUpdateOne) Save(ctx context.Context) (*Supervisor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupervisorUpdateOne) SaveX(ctx context.Context) *Supervisor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupervisorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupervisorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupervisorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supervisor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupervisorUpdateOne) check() error {
	if v, ok := _u.mutation.RelativeType(); ok {
		if err := supervisor.RelativeTypeValidator(v); err != nil {
			return &ValidationError{Name: "relative_type", err: fmt.Errorf(`repo: validator failed for field "Supervisor.relative_type": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Supervisor.user"`)
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Supervisor.patient"`)
	}
	return nil
}

func (_u *SupervisorUpdateOne) sqlSave(ctx context.Context) (_node *Supervisor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supervisor.Table, supervisor.Columns, sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Supervisor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supervisor.FieldID)
		for _, f := range fields {
			if !supervisor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != supervisor.FieldID {
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
		_spec.SetField(supervisor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RelativeType(); ok {
		_spec.SetField(supervisor.FieldRelativeType, field.TypeEnum, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   supervisor.UserTable,
			Columns: []string{supervisor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   supervisor.UserTable,
			Columns: []string{supervisor.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supervisor.PatientTable,
			Columns: []string{supervisor.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supervisor.PatientTable,
			Columns: []string{supervisor.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Supervisor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supervisor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
