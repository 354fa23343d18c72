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
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicgroup"
)

// ClinicGroupCreate is the builder for creating a ClinicGroup entity.
type ClinicGroupCreate struct {
	config
	mutation *ClinicGroupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicGroupCreate) SetCreatedAt(v time.Time) *ClinicGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicGroupCreate) SetNillableCreatedAt(v *time.Time) *ClinicGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicGroupCreate) SetUpdatedAt(v time.Time) *ClinicGroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicGroupCreate) SetNillableUpdatedAt(v *time.Time) *ClinicGroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ClinicGroupCreate) SetDeletedAt(v time.Time) *ClinicGroupCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ClinicGroupCreate) SetNillableDeletedAt(v *time.Time) *ClinicGroupCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ClinicGroupCreate) SetTitle(v string) *ClinicGroupCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClinicGroupCreate) SetDescription(v string) *ClinicGroupCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ClinicGroupCreate) SetNillableDescription(v *string) *ClinicGroupCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicGroupCreate) SetID(v uuid.UUID) *ClinicGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicGroupCreate) SetNillableID(v *uuid.UUID) *ClinicGroupCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddClinicIDs adds the "clinics" edge to the Clinic entity by IDs.
func (_c *ClinicGroupCreate) AddClinicIDs(ids ...uuid.UUID) *ClinicGroupCreate {
	_c.mutation.AddClinicIDs(ids...)
	return _c
}

// AddClinics adds the "clinics" edges to the Clinic entity.
func (_c *ClinicGroupCreate) AddClinics(v ...*Clinic) *ClinicGroupCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddClinicIDs(ids...)
}

// Mutation returns the ClinicGroupMutation object of the builder.
func (_c *ClinicGroupCreate) Mutation() *ClinicGroupMutation {
	return _c.mutation
}

// Save creates the ClinicGroup in the database.
func (_c *ClinicGroupCreate) Save(ctx context.Context) (*ClinicGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicGroupCreate) SaveX(ctx context.Context) *ClinicGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicGroupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinicgroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinicgroup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinicgroup.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicGroupCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClinicGroup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClinicGroup.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "ClinicGroup.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := clinicgroup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicGroup.title": %w`, err)}
		}
	}
	return nil
}

func (_c *ClinicGroupCreate) sqlSave(ctx context.Context) (*ClinicGroup, error) {
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

func (_c *ClinicGroupCreate) createSpec() (*ClinicGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &ClinicGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinicgroup.Table, sqlgraph.NewFieldSpec(clinicgroup.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinicgroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicgroup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(clinicgroup.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(clinicgroup.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(clinicgroup.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if nodes := _c.mutation.ClinicsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicGroup.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicGroupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicGroupCreate) OnConflict(opts ...sql.ConflictOption) *ClinicGroupUpsertOne {
	_c.conflict = opts
	return &ClinicGroupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicGroupCreate) OnConflictColumns(columns ...string) *ClinicGroupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicGroupUpsertOne{
		create: _c,
	}
}

type (
	// ClinicGroupUpsertOne is the builder for "upsert"-ing
	//  one ClinicGroup node.
	ClinicGroupUpsertOne struct {
		create *ClinicGroupCreate
	}

	// ClinicGroupUpsert is the "OnConflict" setter.
	ClinicGroupUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicGroupUpsert) SetUpdatedAt(v time.Time) *ClinicGroupUpsert {
	u.Set(clinicgroup.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicGroupUpsert) UpdateUpdatedAt() *ClinicGroupUpsert {
	u.SetExcluded(clinicgroup.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicGroupUpsert) SetDeletedAt(v time.Time) *ClinicGroupUpsert {
	u.Set(clinicgroup.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicGroupUpsert) UpdateDeletedAt() *ClinicGroupUpsert {
	u.SetExcluded(clinicgroup.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicGroupUpsert) ClearDeletedAt() *ClinicGroupUpsert {
	u.SetNull(clinicgroup.FieldDeletedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *ClinicGroupUpsert) SetTitle(v string) *ClinicGroupUpsert {
	u.Set(clinicgroup.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicGroupUpsert) UpdateTitle() *ClinicGroupUpsert {
	u.SetExcluded(clinicgroup.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ClinicGroupUpsert) SetDescription(v string) *ClinicGroupUpsert {
	u.Set(clinicgroup.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicGroupUpsert) UpdateDescription() *ClinicGroupUpsert {
	u.SetExcluded(clinicgroup.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicGroupUpsert) ClearDescription() *ClinicGroupUpsert {
	u.SetNull(clinicgroup.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClinicGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicgroup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicGroupUpsertOne) UpdateNewValues() *ClinicGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clinicgroup.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clinicgroup.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicGroup.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicGroupUpsertOne) Ignore() *ClinicGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicGroupUpsertOne) DoNothing() *ClinicGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicGroupCreate.OnConflict
// documentation for more info.
func (u *ClinicGroupUpsertOne) Update(set func(*ClinicGroupUpsert)) *ClinicGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicGroupUpsertOne) SetUpdatedAt(v time.Time) *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicGroupUpsertOne) UpdateUpdatedAt() *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicGroupUpsertOne) SetDeletedAt(v time.Time) *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicGroupUpsertOne) UpdateDeletedAt() *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicGroupUpsertOne) ClearDeletedAt() *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *ClinicGroupUpsertOne) SetTitle(v string) *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicGroupUpsertOne) UpdateTitle() *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicGroupUpsertOne) SetDescription(v string) *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicGroupUpsertOne) UpdateDescription() *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicGroupUpsertOne) ClearDescription() *ClinicGroupUpsertOne {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *ClinicGroupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicGroupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicGroupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicGroupUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicGroupUpsertOne.ID is not supported by MySQL driver. Use ClinicGroupUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicGroupUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicGroupCreateBulk is the builder for creating many ClinicGroup entities in bulk.
type ClinicGroupCreateBulk struct {
	config
	err      error
	builders []*ClinicGroupCreate
	conflict []sql.ConflictOption
}

// Save creates the ClinicGroup entities in the database.
func (_c *ClinicGroupCreateBulk) Save(ctx context.Context) ([]*ClinicGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClinicGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicGroupMutation)
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
func (_c *ClinicGroupCreateBulk) SaveX(ctx context.Context) []*ClinicGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicGroup.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicGroupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicGroupCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicGroupUpsertBulk {
	_c.conflict = opts
	return &ClinicGroupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicGroupCreateBulk) OnConflictColumns(columns ...string) *ClinicGroupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicGroupUpsertBulk{
		create: _c,
	}
}

// ClinicGroupUpsertBulk is the builder for "upsert"-ing
// a bulk of ClinicGroup nodes.
type ClinicGroupUpsertBulk struct {
	create *ClinicGroupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClinicGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicgroup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicGroupUpsertBulk) UpdateNewValues() *ClinicGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clinicgroup.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clinicgroup.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicGroup.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicGroupUpsertBulk) Ignore() *ClinicGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicGroupUpsertBulk) DoNothing() *ClinicGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicGroupCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicGroupUpsertBulk) Update(set func(*ClinicGroupUpsert)) *ClinicGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicGroupUpsertBulk) SetUpdatedAt(v time.Time) *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicGroupUpsertBulk) UpdateUpdatedAt() *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicGroupUpsertBulk) SetDeletedAt(v time.Time) *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicGroupUpsertBulk) UpdateDeletedAt() *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicGroupUpsertBulk) ClearDeletedAt() *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *ClinicGroupUpsertBulk) SetTitle(v string) *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicGroupUpsertBulk) UpdateTitle() *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicGroupUpsertBulk) SetDescription(v string) *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicGroupUpsertBulk) UpdateDescription() *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicGroupUpsertBulk) ClearDescription() *ClinicGroupUpsertBulk {
	return u.Update(func(s *ClinicGroupUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *ClinicGroupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicGroupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicGroupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicGroupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
