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
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
)

// SupervisorCreate is the builder for creating a Supervisor entity.
type SupervisorCreate struct {
	config
	mutation *SupervisorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupervisorCreate) SetCreatedAt(v time.Time) *SupervisorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupervisorCreate) SetNillableCreatedAt(v *time.Time) *SupervisorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupervisorCreate) SetUpdatedAt(v time.Time) *SupervisorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupervisorCreate) SetNillableUpdatedAt(v *time.Time) *SupervisorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SupervisorCreate) SetUserID(v uuid.UUID) *SupervisorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (_c *SupervisorCreate) SetPatientProfileID(v uuid.UUID) *SupervisorCreate {
	_c.mutation.SetPatientProfileID(v)
	return _c
}

// SetRelativeType sets the "relative_type" field.
func (_c *SupervisorCreate) SetRelativeType(v supervisor.RelativeType) *SupervisorCreate {
	_c.mutation.SetRelativeType(v)
	return _c
}

// SetNillableRelativeType sets the "relative_type" field if the given value is not nil.
func (_c *SupervisorCreate) SetNillableRelativeType(v *supervisor.RelativeType) *SupervisorCreate {
	if v != nil {
		_c.SetRelativeType(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupervisorCreate) SetID(v uuid.UUID) *SupervisorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SupervisorCreate) SetNillableID(v *uuid.UUID) *SupervisorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *SupervisorCreate) SetUser(v *User) *SupervisorCreate {
	return _c.SetUserID(v.ID)
}

// SetPatientID sets the "patient" edge to the PatientProfile entity by ID.
func (_c *SupervisorCreate) SetPatientID(id uuid.UUID) *SupervisorCreate {
	_c.mutation.SetPatientID(id)
	return _c
}

// SetPatient sets the "patient" edge to the PatientProfile entity.
func (_c *SupervisorCreate) SetPatient(v *PatientProfile) *SupervisorCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the SupervisorMutation object of the builder.
func (_c *SupervisorCreate) Mutation() *SupervisorMutation {
	return _c.mutation
}

// Save creates the Supervisor in the database.
func (_c *SupervisorCreate) Save(ctx context.Context) (*Supervisor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupervisorCreate) SaveX(ctx context.Context) *Supervisor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupervisorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupervisorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupervisorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supervisor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supervisor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RelativeType(); !ok {
		v := supervisor.DefaultRelativeType
		_c.mutation.SetRelativeType(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := supervisor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupervisorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Supervisor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Supervisor.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Supervisor.user_id"`)}
	}
	if _, ok := _c.mutation.PatientProfileID(); !ok {
		return &ValidationError{Name: "patient_profile_id", err: errors.New(`repo: missing required field "Supervisor.patient_profile_id"`)}
	}
	if _, ok := _c.mutation.RelativeType(); !ok {
		return &ValidationError{Name: "relative_type", err: errors.New(`repo: missing required field "Supervisor.relative_type"`)}
	}
	if v, ok := _c.mutation.RelativeType(); ok {
		if err := supervisor.RelativeTypeValidator(v); err != nil {
			return &ValidationError{Name: "relative_type", err: fmt.Errorf(`repo: validator failed for field "Supervisor.relative_type": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Supervisor.user"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Supervisor.patient"`)}
	}
	return nil
}

func (_c *SupervisorCreate) sqlSave(ctx context.Context) (*Supervisor, error) {
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

func (_c *SupervisorCreate) createSpec() (*Supervisor, *sqlgraph.CreateSpec) {
	var (
		_node = &Supervisor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supervisor.Table, sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supervisor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supervisor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RelativeType(); ok {
		_spec.SetField(supervisor.FieldRelativeType, field.TypeEnum, value)
		_node.RelativeType = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Supervisor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SupervisorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SupervisorCreate) OnConflict(opts ...sql.ConflictOption) *SupervisorUpsertOne {
	_c.conflict = opts
	return &SupervisorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Supervisor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SupervisorCreate) OnConflictColumns(columns ...string) *SupervisorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SupervisorUpsertOne{
		create: _c,
	}
}

type (
	// SupervisorUpsertOne is the builder for "upsert"-ing
	//  one Supervisor node.
	SupervisorUpsertOne struct {
		create *SupervisorCreate
	}

	// SupervisorUpsert is the "OnConflict" setter.
	SupervisorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SupervisorUpsert) SetUpdatedAt(v time.Time) *SupervisorUpsert {
	u.Set(supervisor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupervisorUpsert) UpdateUpdatedAt() *SupervisorUpsert {
	u.SetExcluded(supervisor.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SupervisorUpsert) SetUserID(v uuid.UUID) *SupervisorUpsert {
	u.Set(supervisor.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SupervisorUpsert) UpdateUserID() *SupervisorUpsert {
	u.SetExcluded(supervisor.FieldUserID)
	return u
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (u *SupervisorUpsert) SetPatientProfileID(v uuid.UUID) *SupervisorUpsert {
	u.Set(supervisor.FieldPatientProfileID, v)
	return u
}

// UpdatePatientProfileID sets the "patient_profile_id" field to the value that was provided on create.
func (u *SupervisorUpsert) UpdatePatientProfileID() *SupervisorUpsert {
	u.SetExcluded(supervisor.FieldPatientProfileID)
	return u
}

// SetRelativeType sets the "relative_type" field.
func (u *SupervisorUpsert) SetRelativeType(v supervisor.RelativeType) *SupervisorUpsert {
	u.Set(supervisor.FieldRelativeType, v)
	return u
}

// UpdateRelativeType sets the "relative_type" field to the value that was provided on create.
func (u *SupervisorUpsert) UpdateRelativeType() *SupervisorUpsert {
	u.SetExcluded(supervisor.FieldRelativeType)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Supervisor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(supervisor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SupervisorUpsertOne) UpdateNewValues() *SupervisorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(supervisor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(supervisor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Supervisor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SupervisorUpsertOne) Ignore() *SupervisorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SupervisorUpsertOne) DoNothing() *SupervisorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SupervisorCreate.OnConflict
// documentation for more info.
func (u *SupervisorUpsertOne) Update(set func(*SupervisorUpsert)) *SupervisorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SupervisorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SupervisorUpsertOne) SetUpdatedAt(v time.Time) *SupervisorUpsertOne {
	return u.Update(func(s *SupervisorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupervisorUpsertOne) UpdateUpdatedAt() *SupervisorUpsertOne {
	return u.Update(func(s *SupervisorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *SupervisorUpsertOne) SetUserID(v uuid.UUID) *SupervisorUpsertOne {
	return u.Update(func(s *SupervisorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SupervisorUpsertOne) UpdateUserID() *SupervisorUpsertOne {
	return u.Update(func(s *SupervisorUpsert) {
		s.UpdateUserID()
	})
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (u *SupervisorUpsertOne) SetPatientProfileID(v uuid.UUID) *SupervisorUpsertOne {
	return u.Update(func(s *SupervisorUpsert) {
		s.SetPatientProfileID(v)
	})
}

// UpdatePatientProfileID sets the "patient_profile_id" field to the value that was provided on create.
func (u *SupervisorUpsertOne) UpdatePatientProfileID() *SupervisorUpsertOne {
	return u.Update(func(s *SupervisorUpsert) {
		s.UpdatePatientProfileID()
	})
}

// SetRelativeType sets the "relative_type" field.
func (u *SupervisorUpsertOne) SetRelativeType(v supervisor.RelativeType) *SupervisorUpsertOne {
	return u.Update(func(s *SupervisorUpsert) {
		s.SetRelativeType(v)
	})
}

// UpdateRelativeType sets the "relative_type" field to the value that was provided on create.
func (u *SupervisorUpsertOne) UpdateRelativeType() *SupervisorUpsertOne {
	return u.Update(func(s *SupervisorUpsert) {
		s.UpdateRelativeType()
	})
}

// Exec executes the query.
func (u *SupervisorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SupervisorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SupervisorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SupervisorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SupervisorUpsertOne.ID is not supported by MySQL driver. Use SupervisorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SupervisorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SupervisorCreateBulk is the builder for creating many Supervisor entities in bulk.
type SupervisorCreateBulk struct {
	config
	err      error
	builders []*SupervisorCreate
	conflict []sql.ConflictOption
}

// Save creates the Supervisor entities in the database.
func (_c *SupervisorCreateBulk) Save(ctx context.Context) ([]*Supervisor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Supervisor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupervisorMutation)
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
func (_c *SupervisorCreateBulk) SaveX(ctx context.Context) []*Supervisor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupervisorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupervisorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Supervisor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SupervisorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SupervisorCreateBulk) OnConflict(opts ...sql.ConflictOption) *SupervisorUpsertBulk {
	_c.conflict = opts
	return &SupervisorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Supervisor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SupervisorCreateBulk) OnConflictColumns(columns ...string) *SupervisorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SupervisorUpsertBulk{
		create: _c,
	}
}

// SupervisorUpsertBulk is the builder for "upsert"-ing
// a bulk of Supervisor nodes.
type SupervisorUpsertBulk struct {
	create *SupervisorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Supervisor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(supervisor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SupervisorUpsertBulk) UpdateNewValues() *SupervisorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(supervisor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(supervisor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Supervisor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SupervisorUpsertBulk) Ignore() *SupervisorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SupervisorUpsertBulk) DoNothing() *SupervisorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SupervisorCreateBulk.OnConflict
// documentation for more info.
func (u *SupervisorUpsertBulk) Update(set func(*SupervisorUpsert)) *SupervisorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SupervisorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SupervisorUpsertBulk) SetUpdatedAt(v time.Time) *SupervisorUpsertBulk {
	return u.Update(func(s *SupervisorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupervisorUpsertBulk) UpdateUpdatedAt() *SupervisorUpsertBulk {
	return u.Update(func(s *SupervisorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *SupervisorUpsertBulk) SetUserID(v uuid.UUID) *SupervisorUpsertBulk {
	return u.Update(func(s *SupervisorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SupervisorUpsertBulk) UpdateUserID() *SupervisorUpsertBulk {
	return u.Update(func(s *SupervisorUpsert) {
		s.UpdateUserID()
	})
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (u *SupervisorUpsertBulk) SetPatientProfileID(v uuid.UUID) *SupervisorUpsertBulk {
	return u.Update(func(s *SupervisorUpsert) {
		s.SetPatientProfileID(v)
	})
}

// UpdatePatientProfileID sets the "patient_profile_id" field to the value that was provided on create.
func (u *SupervisorUpsertBulk) UpdatePatientProfileID() *SupervisorUpsertBulk {
	return u.Update(func(s *SupervisorUpsert) {
		s.UpdatePatientProfileID()
	})
}

// SetRelativeType sets the "relative_type" field.
func (u *SupervisorUpsertBulk) SetRelativeType(v supervisor.RelativeType) *SupervisorUpsertBulk {
	return u.Update(func(s *SupervisorUpsert) {
		s.SetRelativeType(v)
	})
}

// UpdateRelativeType sets the "relative_type" field to the value that was provided on create.
func (u *SupervisorUpsertBulk) UpdateRelativeType() *SupervisorUpsertBulk {
	return u.Update(func(s *SupervisorUpsert) {
		s.UpdateRelativeType()
	})
}

// Exec executes the query.
func (u *SupervisorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SupervisorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SupervisorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SupervisorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
