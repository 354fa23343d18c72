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
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicmedia"
	"github.com/pezeshkyar/checkup_backend/internal/repo/media"
)

// ClinicMediaCreate is the builder for creating a ClinicMedia entity.
type ClinicMediaCreate struct {
	config
	mutation *ClinicMediaMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicMediaCreate) SetCreatedAt(v time.Time) *ClinicMediaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicMediaCreate) SetNillableCreatedAt(v *time.Time) *ClinicMediaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicMediaCreate) SetUpdatedAt(v time.Time) *ClinicMediaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicMediaCreate) SetNillableUpdatedAt(v *time.Time) *ClinicMediaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ClinicMediaCreate) SetDeletedAt(v time.Time) *ClinicMediaCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ClinicMediaCreate) SetNillableDeletedAt(v *time.Time) *ClinicMediaCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ClinicMediaCreate) SetClinicID(v uuid.UUID) *ClinicMediaCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetMediaID sets the "media_id" field.
func (_c *ClinicMediaCreate) SetMediaID(v uuid.UUID) *ClinicMediaCreate {
	_c.mutation.SetMediaID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ClinicMediaCreate) SetTitle(v string) *ClinicMediaCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClinicMediaCreate) SetDescription(v string) *ClinicMediaCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ClinicMediaCreate) SetNillableDescription(v *string) *ClinicMediaCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicMediaCreate) SetID(v uuid.UUID) *ClinicMediaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicMediaCreate) SetNillableID(v *uuid.UUID) *ClinicMediaCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *ClinicMediaCreate) SetClinic(v *Clinic) *ClinicMediaCreate {
	return _c.SetClinicID(v.ID)
}

// SetMedia sets the "media" edge to the Media entity.
func (_c *ClinicMediaCreate) SetMedia(v *Media) *ClinicMediaCreate {
	return _c.SetMediaID(v.ID)
}

// Mutation returns the ClinicMediaMutation object of the builder.
func (_c *ClinicMediaCreate) Mutation() *ClinicMediaMutation {
	return _c.mutation
}

// Save creates the ClinicMedia in the database.
func (_c *ClinicMediaCreate) Save(ctx context.Context) (*ClinicMedia, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicMediaCreate) SaveX(ctx context.Context) *ClinicMedia {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicMediaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicMediaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicMediaCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinicmedia.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinicmedia.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinicmedia.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicMediaCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClinicMedia.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClinicMedia.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "ClinicMedia.clinic_id"`)}
	}
	if _, ok := _c.mutation.MediaID(); !ok {
		return &ValidationError{Name: "media_id", err: errors.New(`repo: missing required field "ClinicMedia.media_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "ClinicMedia.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := clinicmedia.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicMedia.title": %w`, err)}
		}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "ClinicMedia.clinic"`)}
	}
	if len(_c.mutation.MediaIDs()) == 0 {
		return &ValidationError{Name: "media", err: errors.New(`repo: missing required edge "ClinicMedia.media"`)}
	}
	return nil
}

func (_c *ClinicMediaCreate) sqlSave(ctx context.Context) (*ClinicMedia, error) {
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

func (_c *ClinicMediaCreate) createSpec() (*ClinicMedia, *sqlgraph.CreateSpec) {
	var (
		_node = &ClinicMedia{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinicmedia.Table, sqlgraph.NewFieldSpec(clinicmedia.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinicmedia.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicmedia.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(clinicmedia.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(clinicmedia.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(clinicmedia.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_node.ClinicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MediaIDs(); len(nodes) > 0 {
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
		_node.MediaID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicMedia.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicMediaUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicMediaCreate) OnConflict(opts ...sql.ConflictOption) *ClinicMediaUpsertOne {
	_c.conflict = opts
	return &ClinicMediaUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicMedia.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicMediaCreate) OnConflictColumns(columns ...string) *ClinicMediaUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicMediaUpsertOne{
		create: _c,
	}
}

type (
	// ClinicMediaUpsertOne is the builder for "upsert"-ing
	//  one ClinicMedia node.
	ClinicMediaUpsertOne struct {
		create *ClinicMediaCreate
	}

	// ClinicMediaUpsert is the "OnConflict" setter.
	ClinicMediaUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicMediaUpsert) SetUpdatedAt(v time.Time) *ClinicMediaUpsert {
	u.Set(clinicmedia.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicMediaUpsert) UpdateUpdatedAt() *ClinicMediaUpsert {
	u.SetExcluded(clinicmedia.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicMediaUpsert) SetDeletedAt(v time.Time) *ClinicMediaUpsert {
	u.Set(clinicmedia.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicMediaUpsert) UpdateDeletedAt() *ClinicMediaUpsert {
	u.SetExcluded(clinicmedia.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicMediaUpsert) ClearDeletedAt() *ClinicMediaUpsert {
	u.SetNull(clinicmedia.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicMediaUpsert) SetClinicID(v uuid.UUID) *ClinicMediaUpsert {
	u.Set(clinicmedia.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicMediaUpsert) UpdateClinicID() *ClinicMediaUpsert {
	u.SetExcluded(clinicmedia.FieldClinicID)
	return u
}

// SetMediaID sets the "media_id" field.
func (u *ClinicMediaUpsert) SetMediaID(v uuid.UUID) *ClinicMediaUpsert {
	u.Set(clinicmedia.FieldMediaID, v)
	return u
}

// UpdateMediaID sets the "media_id" field to the value that was provided on create.
func (u *ClinicMediaUpsert) UpdateMediaID() *ClinicMediaUpsert {
	u.SetExcluded(clinicmedia.FieldMediaID)
	return u
}

// SetTitle sets the "title" field.
func (u *ClinicMediaUpsert) SetTitle(v string) *ClinicMediaUpsert {
	u.Set(clinicmedia.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicMediaUpsert) UpdateTitle() *ClinicMediaUpsert {
	u.SetExcluded(clinicmedia.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ClinicMediaUpsert) SetDescription(v string) *ClinicMediaUpsert {
	u.Set(clinicmedia.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicMediaUpsert) UpdateDescription() *ClinicMediaUpsert {
	u.SetExcluded(clinicmedia.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicMediaUpsert) ClearDescription() *ClinicMediaUpsert {
	u.SetNull(clinicmedia.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClinicMedia.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicmedia.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicMediaUpsertOne) UpdateNewValues() *ClinicMediaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clinicmedia.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clinicmedia.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicMedia.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicMediaUpsertOne) Ignore() *ClinicMediaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicMediaUpsertOne) DoNothing() *ClinicMediaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicMediaCreate.OnConflict
// documentation for more info.
func (u *ClinicMediaUpsertOne) Update(set func(*ClinicMediaUpsert)) *ClinicMediaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicMediaUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicMediaUpsertOne) SetUpdatedAt(v time.Time) *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicMediaUpsertOne) UpdateUpdatedAt() *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicMediaUpsertOne) SetDeletedAt(v time.Time) *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicMediaUpsertOne) UpdateDeletedAt() *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicMediaUpsertOne) ClearDeletedAt() *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicMediaUpsertOne) SetClinicID(v uuid.UUID) *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicMediaUpsertOne) UpdateClinicID() *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateClinicID()
	})
}

// SetMediaID sets the "media_id" field.
func (u *ClinicMediaUpsertOne) SetMediaID(v uuid.UUID) *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetMediaID(v)
	})
}

// UpdateMediaID sets the "media_id" field to the value that was provided on create.
func (u *ClinicMediaUpsertOne) UpdateMediaID() *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateMediaID()
	})
}

// SetTitle sets the "title" field.
func (u *ClinicMediaUpsertOne) SetTitle(v string) *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicMediaUpsertOne) UpdateTitle() *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicMediaUpsertOne) SetDescription(v string) *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicMediaUpsertOne) UpdateDescription() *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicMediaUpsertOne) ClearDescription() *ClinicMediaUpsertOne {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *ClinicMediaUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicMediaCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicMediaUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicMediaUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicMediaUpsertOne.ID is not supported by MySQL driver. Use ClinicMediaUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicMediaUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicMediaCreateBulk is the builder for creating many ClinicMedia entities in bulk.
type ClinicMediaCreateBulk struct {
	config
	err      error
	builders []*ClinicMediaCreate
	conflict []sql.ConflictOption
}

// Save creates the ClinicMedia entities in the database.
func (_c *ClinicMediaCreateBulk) Save(ctx context.Context) ([]*ClinicMedia, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClinicMedia, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicMediaMutation)
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
func (_c *ClinicMediaCreateBulk) SaveX(ctx context.Context) []*ClinicMedia {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicMediaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicMediaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicMedia.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicMediaUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicMediaCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicMediaUpsertBulk {
	_c.conflict = opts
	return &ClinicMediaUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicMedia.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicMediaCreateBulk) OnConflictColumns(columns ...string) *ClinicMediaUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicMediaUpsertBulk{
		create: _c,
	}
}

// ClinicMediaUpsertBulk is the builder for "upsert"-ing
// a bulk of ClinicMedia nodes.
type ClinicMediaUpsertBulk struct {
	create *ClinicMediaCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClinicMedia.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicmedia.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicMediaUpsertBulk) UpdateNewValues() *ClinicMediaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clinicmedia.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clinicmedia.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicMedia.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicMediaUpsertBulk) Ignore() *ClinicMediaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicMediaUpsertBulk) DoNothing() *ClinicMediaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicMediaCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicMediaUpsertBulk) Update(set func(*ClinicMediaUpsert)) *ClinicMediaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicMediaUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicMediaUpsertBulk) SetUpdatedAt(v time.Time) *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicMediaUpsertBulk) UpdateUpdatedAt() *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicMediaUpsertBulk) SetDeletedAt(v time.Time) *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicMediaUpsertBulk) UpdateDeletedAt() *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicMediaUpsertBulk) ClearDeletedAt() *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicMediaUpsertBulk) SetClinicID(v uuid.UUID) *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicMediaUpsertBulk) UpdateClinicID() *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateClinicID()
	})
}

// SetMediaID sets the "media_id" field.
func (u *ClinicMediaUpsertBulk) SetMediaID(v uuid.UUID) *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetMediaID(v)
	})
}

// UpdateMediaID sets the "media_id" field to the value that was provided on create.
func (u *ClinicMediaUpsertBulk) UpdateMediaID() *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateMediaID()
	})
}

// SetTitle sets the "title" field.
func (u *ClinicMediaUpsertBulk) SetTitle(v string) *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicMediaUpsertBulk) UpdateTitle() *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicMediaUpsertBulk) SetDescription(v string) *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicMediaUpsertBulk) UpdateDescription() *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicMediaUpsertBulk) ClearDescription() *ClinicMediaUpsertBulk {
	return u.Update(func(s *ClinicMediaUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *ClinicMediaUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicMediaCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicMediaCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicMediaUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
