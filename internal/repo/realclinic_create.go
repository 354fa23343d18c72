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
	"github.com/pezeshkyar/checkup_backend/internal/repo/realclinic"
)

// RealClinicCreate is the builder for creating a RealClinic entity.
type RealClinicCreate struct {
	config
	mutation *RealClinicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RealClinicCreate) SetCreatedAt(v time.Time) *RealClinicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RealClinicCreate) SetNillableCreatedAt(v *time.Time) *RealClinicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RealClinicCreate) SetUpdatedAt(v time.Time) *RealClinicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RealClinicCreate) SetNillableUpdatedAt(v *time.Time) *RealClinicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *RealClinicCreate) SetDeletedAt(v time.Time) *RealClinicCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *RealClinicCreate) SetNillableDeletedAt(v *time.Time) *RealClinicCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RealClinicCreate) SetTitle(v string) *RealClinicCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *RealClinicCreate) SetPhone(v string) *RealClinicCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *RealClinicCreate) SetNillablePhone(v *string) *RealClinicCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *RealClinicCreate) SetAddress(v string) *RealClinicCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *RealClinicCreate) SetNillableAddress(v *string) *RealClinicCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *RealClinicCreate) SetCity(v string) *RealClinicCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *RealClinicCreate) SetNillableCity(v *string) *RealClinicCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RealClinicCreate) SetID(v uuid.UUID) *RealClinicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RealClinicCreate) SetNillableID(v *uuid.UUID) *RealClinicCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RealClinicMutation object of the builder.
func (_c *RealClinicCreate) Mutation() *RealClinicMutation {
	return _c.mutation
}

// Save creates the RealClinic in the database.
func (_c *RealClinicCreate) Save(ctx context.Context) (*RealClinic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RealClinicCreate) SaveX(ctx context.Context) *RealClinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RealClinicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RealClinicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RealClinicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := realclinic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := realclinic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := realclinic.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RealClinicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RealClinic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RealClinic.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "RealClinic.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := realclinic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "RealClinic.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := realclinic.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "RealClinic.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := realclinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "RealClinic.city": %w`, err)}
		}
	}
	return nil
}

func (_c *RealClinicCreate) sqlSave(ctx context.Context) (*RealClinic, error) {
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

func (_c *RealClinicCreate) createSpec() (*RealClinic, *sqlgraph.CreateSpec) {
	var (
		_node = &RealClinic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(realclinic.Table, sqlgraph.NewFieldSpec(realclinic.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(realclinic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(realclinic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(realclinic.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(realclinic.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(realclinic.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(realclinic.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(realclinic.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RealClinic.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RealClinicUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RealClinicCreate) OnConflict(opts ...sql.ConflictOption) *RealClinicUpsertOne {
	_c.conflict = opts
	return &RealClinicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RealClinic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RealClinicCreate) OnConflictColumns(columns ...string) *RealClinicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RealClinicUpsertOne{
		create: _c,
	}
}

type (
	// RealClinicUpsertOne is the builder for "upsert"-ing
	//  one RealClinic node.
	RealClinicUpsertOne struct {
		create *RealClinicCreate
	}

	// RealClinicUpsert is the "OnConflict" setter.
	RealClinicUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RealClinicUpsert) SetUpdatedAt(v time.Time) *RealClinicUpsert {
	u.Set(realclinic.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RealClinicUpsert) UpdateUpdatedAt() *RealClinicUpsert {
	u.SetExcluded(realclinic.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RealClinicUpsert) SetDeletedAt(v time.Time) *RealClinicUpsert {
	u.Set(realclinic.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RealClinicUpsert) UpdateDeletedAt() *RealClinicUpsert {
	u.SetExcluded(realclinic.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RealClinicUpsert) ClearDeletedAt() *RealClinicUpsert {
	u.SetNull(realclinic.FieldDeletedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *RealClinicUpsert) SetTitle(v string) *RealClinicUpsert {
	u.Set(realclinic.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RealClinicUpsert) UpdateTitle() *RealClinicUpsert {
	u.SetExcluded(realclinic.FieldTitle)
	return u
}

// SetPhone sets the "phone" field.
func (u *RealClinicUpsert) SetPhone(v string) *RealClinicUpsert {
	u.Set(realclinic.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *RealClinicUpsert) UpdatePhone() *RealClinicUpsert {
	u.SetExcluded(realclinic.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *RealClinicUpsert) ClearPhone() *RealClinicUpsert {
	u.SetNull(realclinic.FieldPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *RealClinicUpsert) SetAddress(v string) *RealClinicUpsert {
	u.Set(realclinic.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *RealClinicUpsert) UpdateAddress() *RealClinicUpsert {
	u.SetExcluded(realclinic.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *RealClinicUpsert) ClearAddress() *RealClinicUpsert {
	u.SetNull(realclinic.FieldAddress)
	return u
}

// SetCity sets the "city" field.
func (u *RealClinicUpsert) SetCity(v string) *RealClinicUpsert {
	u.Set(realclinic.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *RealClinicUpsert) UpdateCity() *RealClinicUpsert {
	u.SetExcluded(realclinic.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *RealClinicUpsert) ClearCity() *RealClinicUpsert {
	u.SetNull(realclinic.FieldCity)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RealClinic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(realclinic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RealClinicUpsertOne) UpdateNewValues() *RealClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(realclinic.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(realclinic.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RealClinic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RealClinicUpsertOne) Ignore() *RealClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RealClinicUpsertOne) DoNothing() *RealClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RealClinicCreate.OnConflict
// documentation for more info.
func (u *RealClinicUpsertOne) Update(set func(*RealClinicUpsert)) *RealClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RealClinicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RealClinicUpsertOne) SetUpdatedAt(v time.Time) *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RealClinicUpsertOne) UpdateUpdatedAt() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RealClinicUpsertOne) SetDeletedAt(v time.Time) *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RealClinicUpsertOne) UpdateDeletedAt() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RealClinicUpsertOne) ClearDeletedAt() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *RealClinicUpsertOne) SetTitle(v string) *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RealClinicUpsertOne) UpdateTitle() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateTitle()
	})
}

// SetPhone sets the "phone" field.
func (u *RealClinicUpsertOne) SetPhone(v string) *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *RealClinicUpsertOne) UpdatePhone() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *RealClinicUpsertOne) ClearPhone() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *RealClinicUpsertOne) SetAddress(v string) *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *RealClinicUpsertOne) UpdateAddress() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *RealClinicUpsertOne) ClearAddress() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *RealClinicUpsertOne) SetCity(v string) *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *RealClinicUpsertOne) UpdateCity() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *RealClinicUpsertOne) ClearCity() *RealClinicUpsertOne {
	return u.Update(func(s *RealClinicUpsert) {
		s.ClearCity()
	})
}

// Exec executes the query.
func (u *RealClinicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RealClinicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RealClinicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RealClinicUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RealClinicUpsertOne.ID is not supported by MySQL driver. Use RealClinicUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RealClinicUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RealClinicCreateBulk is the builder for creating many RealClinic entities in bulk.
type RealClinicCreateBulk struct {
	config
	err      error
	builders []*RealClinicCreate
	conflict []sql.ConflictOption
}

// Save creates the RealClinic entities in the database.
func (_c *RealClinicCreateBulk) Save(ctx context.Context) ([]*RealClinic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RealClinic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RealClinicMutation)
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
func (_c *RealClinicCreateBulk) SaveX(ctx context.Context) []*RealClinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RealClinicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RealClinicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RealClinic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RealClinicUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RealClinicCreateBulk) OnConflict(opts ...sql.ConflictOption) *RealClinicUpsertBulk {
	_c.conflict = opts
	return &RealClinicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RealClinic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RealClinicCreateBulk) OnConflictColumns(columns ...string) *RealClinicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RealClinicUpsertBulk{
		create: _c,
	}
}

// RealClinicUpsertBulk is the builder for "upsert"-ing
// a bulk of RealClinic nodes.
type RealClinicUpsertBulk struct {
	create *RealClinicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RealClinic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(realclinic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RealClinicUpsertBulk) UpdateNewValues() *RealClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(realclinic.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(realclinic.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RealClinic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RealClinicUpsertBulk) Ignore() *RealClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RealClinicUpsertBulk) DoNothing() *RealClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RealClinicCreateBulk.OnConflict
// documentation for more info.
func (u *RealClinicUpsertBulk) Update(set func(*RealClinicUpsert)) *RealClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RealClinicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RealClinicUpsertBulk) SetUpdatedAt(v time.Time) *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RealClinicUpsertBulk) UpdateUpdatedAt() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *RealClinicUpsertBulk) SetDeletedAt(v time.Time) *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *RealClinicUpsertBulk) UpdateDeletedAt() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *RealClinicUpsertBulk) ClearDeletedAt() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *RealClinicUpsertBulk) SetTitle(v string) *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RealClinicUpsertBulk) UpdateTitle() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateTitle()
	})
}

// SetPhone sets the "phone" field.
func (u *RealClinicUpsertBulk) SetPhone(v string) *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *RealClinicUpsertBulk) UpdatePhone() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *RealClinicUpsertBulk) ClearPhone() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *RealClinicUpsertBulk) SetAddress(v string) *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *RealClinicUpsertBulk) UpdateAddress() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *RealClinicUpsertBulk) ClearAddress() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *RealClinicUpsertBulk) SetCity(v string) *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *RealClinicUpsertBulk) UpdateCity() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *RealClinicUpsertBulk) ClearCity() *RealClinicUpsertBulk {
	return u.Update(func(s *RealClinicUpsert) {
		s.ClearCity()
	})
}

// Exec executes the query.
func (u *RealClinicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RealClinicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RealClinicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RealClinicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
