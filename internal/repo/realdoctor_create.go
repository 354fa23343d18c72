// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
)

// RealDoctorCreate is the builder for creating a RealDoctor entity.
type RealDoctorCreate struct {
	config
	mutation *RealDoctorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RealDoctorCreate) SetCreatedAt(v time.Time) *RealDoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RealDoctorCreate) SetNillableCreatedAt(v *time.Time) *RealDoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RealDoctorCreate) SetUpdatedAt(v time.Time) *RealDoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RealDoctorCreate) SetNillableUpdatedAt(v *time.Time) *RealDoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *RealDoctorCreate) SetDeletedAt(v time.Time) *RealDoctorCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *RealDoctorCreate) SetNillableDeletedAt(v *time.Time) *RealDoctorCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *RealDoctorCreate) SetFullName(v string) *RealDoctorCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *RealDoctorCreate) SetSpecialty(v string) *RealDoctorCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *RealDoctorCreate) SetNillableSpecialty(v *string) *RealDoctorCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *RealDoctorCreate) SetPhone(v string) *RealDoctorCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *RealDoctorCreate) SetNillablePhone(v *string) *RealDoctorCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *RealDoctorCreate) SetAddress(v string) *RealDoctorCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *RealDoctorCreate) SetNillableAddress(v *string) *RealDoctorCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *RealDoctorCreate) SetCity(v string) *RealDoctorCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *RealDoctorCreate) SetNillableCity(v *string) *RealDoctorCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RealDoctorCreate) SetID(v uuid.UUID) *RealDoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RealDoctorCreate) SetNillableID(v *uuid.UUID) *RealDoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RealDoctorMutation object of the builder.
func (_c *RealDoctorCreate) Mutation() *RealDoctorMutation {
	return _c.mutation
}

// Save creates the RealDoctor in the database.
func (_c *RealDoctorCreate) Save(ctx context.Context) (*RealDoctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RealDoctorCreate) SaveX(ctx context.Context) *RealDoctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RealDoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RealDoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RealDoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := realdoctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := realdoctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := realdoctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RealDoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RealDoctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RealDoctor.updated_at"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "RealDoctor.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := realdoctor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.full_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Specialty(); ok {
		if err := realdoctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.specialty": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := realdoctor.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := realdoctor.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "RealDoctor.city": %w`, err)}
		}
	}
	return nil
}

func (_c *RealDoctorCreate) sqlSave(ctx context.Context) (*RealDoctor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RealDoctorCreate) createSpec() (*RealDoctor, *sqlgraph.CreateSpec) {
	var (
		_node = &RealDoctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(realdoctor.Table, sqlgraph.NewFieldSpec(realdoctor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(realdoctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(realdoctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(realdoctor.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(realdoctor.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(realdoctor.FieldSpecialty, field.TypeString, value)
		_node.Specialty = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(realdoctor.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(realdoctor.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(realdoctor.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RealDoctor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RealDoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RealDoctorCreate) OnConflict(opts ...sql.ConflictOption) *RealDoctorUpsertOne {
	_c.conflict = opts
	return &RealDoctorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RealDoctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RealDoctorCreate) OnConflictColumns(columns ...string) *RealDoctorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RealDoctorUpsertOne{
		create: _c,
	}
}

type (
	// RealDoctorUpsertOne is the builder for "upsert"-ing
	//  one RealDoctor node.
	RealDoctorUpsertOne struct {
		create *RealDoctorCreate
	}

	// RealDoctorUpsert is the "OnConflict" setter.
	RealDoctorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RealDoctorUpsert) SetUpdatedAt(v time.Time) *RealDoctorUpsert {
	u.Set(realdoctor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RealDoctorUpsert) UpdateUpdatedAt() *RealDoctorUpsert {
	u.SetExcluded(realdoctor.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RealDoctorUpsert) SetDeletedAt(v time.Time) *RealDoctorUpsert {
	u.Set(realdoctor.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RealDoctorUpsert) UpdateDeletedAt() *RealDoctorUpsert {
	u.SetExcluded(realdoctor.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RealDoctorUpsert) ClearDeletedAt() *RealDoctorUpsert {
	u.SetNull(realdoctor.FieldDeletedAt)
	return u
}

// SetFullName sets the "full_name" field.
func (u *RealDoctorUpsert) SetFullName(v string) *RealDoctorUpsert {
	u.Set(realdoctor.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *RealDoctorUpsert) UpdateFullName() *RealDoctorUpsert {
	u.SetExcluded(realdoctor.FieldFullName)
	return u
}

// SetSpecialty sets the "specialty" field.
func (u *RealDoctorUpsert) SetSpecialty(v string) *RealDoctorUpsert {
	u.Set(realdoctor.FieldSpecialty, v)
	return u
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *RealDoctorUpsert) UpdateSpecialty() *RealDoctorUpsert {
	u.SetExcluded(realdoctor.FieldSpecialty)
	return u
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *RealDoctorUpsert) ClearSpecialty() *RealDoctorUpsert {
	u.SetNull(realdoctor.FieldSpecialty)
	return u
}

// SetPhone sets the "phone" field.
func (u *RealDoctorUpsert) SetPhone(v string) *RealDoctorUpsert {
	u.Set(realdoctor.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *RealDoctorUpsert) UpdatePhone() *RealDoctorUpsert {
	u.SetExcluded(realdoctor.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *RealDoctorUpsert) ClearPhone() *RealDoctorUpsert {
	u.SetNull(realdoctor.FieldPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *RealDoctorUpsert) SetAddress(v string) *RealDoctorUpsert {
	u.Set(realdoctor.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *RealDoctorUpsert) UpdateAddress() *RealDoctorUpsert {
	u.SetExcluded(realdoctor.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *RealDoctorUpsert) ClearAddress() *RealDoctorUpsert {
	u.SetNull(realdoctor.FieldAddress)
	return u
}

// SetCity sets the "city" field.
func (u *RealDoctorUpsert) SetCity(v string) *RealDoctorUpsert {
	u.Set(realdoctor.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *RealDoctorUpsert) UpdateCity() *RealDoctorUpsert {
	u.SetExcluded(realdoctor.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *RealDoctorUpsert) ClearCity() *RealDoctorUpsert {
	u.SetNull(realdoctor.FieldCity)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RealDoctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(realdoctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RealDoctorUpsertOne) UpdateNewValues() *RealDoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(realdoctor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(realdoctor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RealDoctor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RealDoctorUpsertOne) Ignore() *RealDoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RealDoctorUpsertOne) DoNothing() *RealDoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RealDoctorCreate.OnConflict
// documentation for more info.
func (u *RealDoctorUpsertOne) Update(set func(*RealDoctorUpsert)) *RealDoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RealDoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RealDoctorUpsertOne) SetUpdatedAt(v time.Time) *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RealDoctorUpsertOne) UpdateUpdatedAt() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RealDoctorUpsertOne) SetDeletedAt(v time.Time) *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RealDoctorUpsertOne) UpdateDeletedAt() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RealDoctorUpsertOne) ClearDeletedAt() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFullName sets the "full_name" field.
func (u *RealDoctorUpsertOne) SetFullName(v string) *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *RealDoctorUpsertOne) UpdateFullName() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateFullName()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *RealDoctorUpsertOne) SetSpecialty(v string) *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *RealDoctorUpsertOne) UpdateSpecialty() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *RealDoctorUpsertOne) ClearSpecialty() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearSpecialty()
	})
}

// SetPhone sets the "phone" field.
func (u *RealDoctorUpsertOne) SetPhone(v string) *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *RealDoctorUpsertOne) UpdatePhone() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *RealDoctorUpsertOne) ClearPhone() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *RealDoctorUpsertOne) SetAddress(v string) *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *RealDoctorUpsertOne) UpdateAddress() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *RealDoctorUpsertOne) ClearAddress() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *RealDoctorUpsertOne) SetCity(v string) *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *RealDoctorUpsertOne) UpdateCity() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *RealDoctorUpsertOne) ClearCity() *RealDoctorUpsertOne {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearCity()
	})
}

// Exec executes the query.
func (u *RealDoctorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RealDoctorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RealDoctorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RealDoctorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RealDoctorUpsertOne.ID is not supported by MySQL driver. Use RealDoctorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RealDoctorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RealDoctorCreateBulk is the builder for creating many RealDoctor entities in bulk.
type RealDoctorCreateBulk struct {
	config
	err      error
	builders []*RealDoctorCreate
	conflict []sql.ConflictOption
}

// Save creates the RealDoctor entities in the database.
func (_c *RealDoctorCreateBulk) Save(ctx context.Context) ([]*RealDoctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RealDoctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RealDoctorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RealDoctorCreateBulk) SaveX(ctx context.Context) []*RealDoctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RealDoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RealDoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RealDoctor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RealDoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RealDoctorCreateBulk) OnConflict(opts ...sql.ConflictOption) *RealDoctorUpsertBulk {
	_c.conflict = opts
	return &RealDoctorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RealDoctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RealDoctorCreateBulk) OnConflictColumns(columns ...string) *RealDoctorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RealDoctorUpsertBulk{
		create: _c,
	}
}

// RealDoctorUpsertBulk is the builder for "upsert"-ing
// a bulk of RealDoctor nodes.
type RealDoctorUpsertBulk struct {
	create *RealDoctorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RealDoctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(realdoctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RealDoctorUpsertBulk) UpdateNewValues() *RealDoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(realdoctor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(realdoctor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RealDoctor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RealDoctorUpsertBulk) Ignore() *RealDoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RealDoctorUpsertBulk) DoNothing() *RealDoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RealDoctorCreateBulk.OnConflict
// documentation for more info.
func (u *RealDoctorUpsertBulk) Update(set func(*RealDoctorUpsert)) *RealDoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RealDoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RealDoctorUpsertBulk) SetUpdatedAt(v time.Time) *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RealDoctorUpsertBulk) UpdateUpdatedAt() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RealDoctorUpsertBulk) SetDeletedAt(v time.Time) *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RealDoctorUpsertBulk) UpdateDeletedAt() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RealDoctorUpsertBulk) ClearDeletedAt() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFullName sets the "full_name" field.
func (u *RealDoctorUpsertBulk) SetFullName(v string) *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *RealDoctorUpsertBulk) UpdateFullName() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateFullName()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *RealDoctorUpsertBulk) SetSpecialty(v string) *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *RealDoctorUpsertBulk) UpdateSpecialty() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *RealDoctorUpsertBulk) ClearSpecialty() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearSpecialty()
	})
}

// SetPhone sets the "phone" field.
func (u *RealDoctorUpsertBulk) SetPhone(v string) *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *RealDoctorUpsertBulk) UpdatePhone() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *RealDoctorUpsertBulk) ClearPhone() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *RealDoctorUpsertBulk) SetAddress(v string) *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *RealDoctorUpsertBulk) UpdateAddress() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *RealDoctorUpsertBulk) ClearAddress() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *RealDoctorUpsertBulk) SetCity(v string) *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *RealDoctorUpsertBulk) UpdateCity() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *RealDoctorUpsertBulk) ClearCity() *RealDoctorUpsertBulk {
	return u.Update(func(s *RealDoctorUpsert) {
		s.ClearCity()
	})
}

// Exec executes the query.
func (u *RealDoctorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RealDoctorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RealDoctorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RealDoctorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
