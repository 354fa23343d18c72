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
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
)

// RealDoctorUpdate is the builder for updating RealDoctor entities.
type RealDoctorUpdate struct {
	config
	hooks    []Hook
	mutation *RealDoctorMutation
}

// Where appends a list predicates to the RealDoctorUpdate builder.
func (_u *RealDoctorUpdate) Where(ps ...predicate.RealDoctor) *RealDoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RealDoctorUpdate) SetUpdatedAt(v time.Time) *RealDoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RealDoctorUpdate) SetDeletedAt(v time.Time) *RealDoctorUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RealDoctorUpdate) SetNillableDeletedAt(v *time.Time) *RealDoctorUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RealDoctorUpdate) ClearDeletedAt() *RealDoctorUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *RealDoctorUpdate) SetFullName(v string) *RealDoctorUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *RealDoctorUpdate) SetNillableFullName(v *string) *RealDoctorUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *RealDoctorUpdate) SetSpecialty(v string) *RealDoctorUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *RealDoctorUpdate) SetNillableSpecialty(v *string) *RealDoctorUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *RealDoctorUpdate) ClearSpecialty() *RealDoctorUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *RealDoctorUpdate) SetPhone(v string) *RealDoctorUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *RealDoctorUpdate) SetNillablePhone(v *string) *RealDoctorUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *RealDoctorUpdate) ClearPhone() *RealDoctorUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *RealDoctorUpdate) SetAddress(v string) *RealDoctorUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *RealDoctorUpdate) SetNillableAddress(v *string) *RealDoctorUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *RealDoctorUpdate) ClearAddress() *RealDoctorUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *RealDoctorUpdate) SetCity(v string) *RealDoctorUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *RealDoctorUpdate) SetNillableCity(v *string) *RealDoctorUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *RealDoctorUpdate) ClearCity() *RealDoctorUpdate {
	_u.mutation.ClearCity()
	return _u
}

// Mutation returns the RealDoctorMutation object of the builder.
func (_u *RealDoctorUpdate) Mutation() *RealDoctorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RealDoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RealDoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RealDoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RealDoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RealDoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := realdoctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RealDoctorUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := realdoctor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := realdoctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := realdoctor.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := realdoctor.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.city": %w`, err)}
		}
	}
	return nil
}

func (_u *RealDoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(realdoctor.Table, realdoctor.Columns, sqlgraph.NewFieldSpec(realdoctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(realdoctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(realdoctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(realdoctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(realdoctor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(realdoctor.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(realdoctor.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(realdoctor.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(realdoctor.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(realdoctor.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(realdoctor.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(realdoctor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(realdoctor.FieldCity, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{realdoctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RealDoctorUpdateOne is the builder for updating a single RealDoctor entity.
type RealDoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RealDoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RealDoctorUpdateOne) SetUpdatedAt(v time.Time) *RealDoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RealDoctorUpdateOne) SetDeletedAt(v time.Time) *RealDoctorUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RealDoctorUpdateOne) SetNillableDeletedAt(v *time.Time) *RealDoctorUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RealDoctorUpdateOne) ClearDeletedAt() *RealDoctorUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *RealDoctorUpdateOne) SetFullName(v string) *RealDoctorUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *RealDoctorUpdateOne) SetNillableFullName(v *string) *RealDoctorUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *RealDoctorUpdateOne) SetSpecialty(v string) *RealDoctorUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *RealDoctorUpdateOne) SetNillableSpecialty(v *string) *RealDoctorUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *RealDoctorUpdateOne) ClearSpecialty() *RealDoctorUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *RealDoctorUpdateOne) SetPhone(v string) *RealDoctorUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *RealDoctorUpdateOne) SetNillablePhone(v *string) *RealDoctorUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *RealDoctorUpdateOne) ClearPhone() *RealDoctorUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *RealDoctorUpdateOne) SetAddress(v string) *RealDoctorUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *RealDoctorUpdateOne) SetNillableAddress(v *string) *RealDoctorUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *RealDoctorUpdateOne) ClearAddress() *RealDoctorUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *RealDoctorUpdateOne) SetCity(v string) *RealDoctorUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *RealDoctorUpdateOne) SetNillableCity(v *string) *RealDoctorUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *RealDoctorUpdateOne) ClearCity() *RealDoctorUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// Mutation returns the RealDoctorMutation object of the builder.
func (_u *RealDoctorUpdateOne) Mutation() *RealDoctorMutation {
	return _u.mutation
}

// Where appends a list predicates to the RealDoctorUpdate builder.
func (_u *RealDoctorUpdateOne) Where(ps ...predicate.RealDoctor) *RealDoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RealDoctorUpdateOne) Select(field string, fields ...string) *RealDoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RealDoctor entity.
func (_u *RealDoctorUpdateOne) Save(ctx context.Context) (*RealDoctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RealDoctorUpdateOne) SaveX(ctx context.Context) *RealDoctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RealDoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RealDoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RealDoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := realdoctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RealDoctorUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := realdoctor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := realdoctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := realdoctor.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := realdoctor.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.city": %w`, err)}
		}
	}
	return nil
}

func (_u *RealDoctorUpdateOne) sqlSave(ctx context.Context) (_node *RealDoctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(realdoctor.Table, realdoctor.Columns, sqlgraph.NewFieldSpec(realdoctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RealDoctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, realdoctor.FieldID)
		for _, f := range fields {
			if !realdoctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != realdoctor.FieldID {
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
		_spec.SetField(realdoctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(realdoctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(realdoctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(realdoctor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(realdoctor.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(realdoctor.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(realdoctor.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(realdoctor.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(realdoctor.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(realdoctor.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(realdoctor.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(realdoctor.FieldCity, field.TypeString)
	}
	_node = &RealDoctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{realdoctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
