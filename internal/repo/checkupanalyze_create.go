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
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
)

// CheckupAnalyzeCreate is the builder for creating a CheckupAnalyze entity.
type CheckupAnalyzeCreate struct {
	config
	mutation *CheckupAnalyzeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckupAnalyzeCreate) SetCreatedAt(v time.Time) *CheckupAnalyzeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckupAnalyzeCreate) SetNillableCreatedAt(v *time.Time) *CheckupAnalyzeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CheckupAnalyzeCreate) SetUpdatedAt(v time.Time) *CheckupAnalyzeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CheckupAnalyzeCreate) SetNillableUpdatedAt(v *time.Time) *CheckupAnalyzeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CheckupAnalyzeCreate) SetDeletedAt(v time.Time) *CheckupAnalyzeCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CheckupAnalyzeCreate) SetNillableDeletedAt(v *time.Time) *CheckupAnalyzeCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (_c *CheckupAnalyzeCreate) SetClinicCheckupID(v uuid.UUID) *CheckupAnalyzeCreate {
	_c.mutation.SetClinicCheckupID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CheckupAnalyzeCreate) SetTitle(v string) *CheckupAnalyzeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CheckupAnalyzeCreate) SetDescription(v string) *CheckupAnalyzeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CheckupAnalyzeCreate) SetNillableDescription(v *string) *CheckupAnalyzeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckupAnalyzeCreate) SetID(v uuid.UUID) *CheckupAnalyzeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CheckupAnalyzeCreate) SetNillableID(v *uuid.UUID) *CheckupAnalyzeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTemplateID sets the "template" edge to the ClinicCheckup entity by ID.
func (_c *CheckupAnalyzeCreate) SetTemplateID(id uuid.UUID) *CheckupAnalyzeCreate {
	_c.mutation.SetTemplateID(id)
	return _c
}

// SetTemplate sets the "template" edge to the ClinicCheckup entity.
func (_c *CheckupAnalyzeCreate) SetTemplate(v *ClinicCheckup) *CheckupAnalyzeCreate {
	return _c.SetTemplateID(v.ID)
}

// AddInterpretationIDs adds the "interpretations" edge to the Interpretation entity by IDs.
func (_c *CheckupAnalyzeCreate) AddInterpretationIDs(ids ...uuid.UUID) *CheckupAnalyzeCreate {
	_c.mutation.AddInterpretationIDs(ids...)
	return _c
}

// AddInterpretations adds the "interpretations" edges to the Interpretation entity.
func (_c *CheckupAnalyzeCreate) AddInterpretations(v ...*Interpretation) *CheckupAnalyzeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInterpretationIDs(ids...)
}

// Mutation returns the CheckupAnalyzeMutation object of the builder.
func (_c *CheckupAnalyzeCreate) Mutation() *CheckupAnalyzeMutation {
	return _c.mutation
}

// Save creates the CheckupAnalyze in the database.
func (_c *CheckupAnalyzeCreate) Save(ctx context.Context) (*CheckupAnalyze, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckupAnalyzeCreate) SaveX(ctx context.Context) *CheckupAnalyze {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckupAnalyzeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckupAnalyzeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckupAnalyzeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkupanalyze.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := checkupanalyze.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := checkupanalyze.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckupAnalyzeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CheckupAnalyze.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CheckupAnalyze.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicCheckupID(); !ok {
		return &ValidationError{Name: "clinic_checkup_id", err: errors.New(`repo: missing required field "CheckupAnalyze.clinic_checkup_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "CheckupAnalyze.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := checkupanalyze.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "CheckupAnalyze.title": %w`, err)}
		}
	}
	if len(_c.mutation.TemplateIDs()) == 0 {
		return &ValidationError{Name: "template", err: errors.New(`repo: missing required edge "CheckupAnalyze.template"`)}
	}
	return nil
}

func (_c *CheckupAnalyzeCreate) sqlSave(ctx context.Context) (*CheckupAnalyze, error) {
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

func (_c *CheckupAnalyzeCreate) createSpec() (*CheckupAnalyze, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckupAnalyze{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkupanalyze.Table, sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkupanalyze.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(checkupanalyze.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(checkupanalyze.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(checkupanalyze.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(checkupanalyze.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_node.ClinicCheckupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InterpretationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CheckupAnalyze.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckupAnalyzeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckupAnalyzeCreate) OnConflict(opts ...sql.ConflictOption) *CheckupAnalyzeUpsertOne {
	_c.conflict = opts
	return &CheckupAnalyzeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CheckupAnalyze.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckupAnalyzeCreate) OnConflictColumns(columns ...string) *CheckupAnalyzeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckupAnalyzeUpsertOne{
		create: _c,
	}
}

type (
	// CheckupAnalyzeUpsertOne is the builder for "upsert"-ing
	//  one CheckupAnalyze node.
	CheckupAnalyzeUpsertOne struct {
		create *CheckupAnalyzeCreate
	}

	// CheckupAnalyzeUpsert is the "OnConflict" setter.
	CheckupAnalyzeUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckupAnalyzeUpsert) SetUpdatedAt(v time.Time) *CheckupAnalyzeUpsert {
	u.Set(checkupanalyze.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsert) UpdateUpdatedAt() *CheckupAnalyzeUpsert {
	u.SetExcluded(checkupanalyze.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CheckupAnalyzeUpsert) SetDeletedAt(v time.Time) *CheckupAnalyzeUpsert {
	u.Set(checkupanalyze.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsert) UpdateDeletedAt() *CheckupAnalyzeUpsert {
	u.SetExcluded(checkupanalyze.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CheckupAnalyzeUpsert) ClearDeletedAt() *CheckupAnalyzeUpsert {
	u.SetNull(checkupanalyze.FieldDeletedAt)
	return u
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (u *CheckupAnalyzeUpsert) SetClinicCheckupID(v uuid.UUID) *CheckupAnalyzeUpsert {
	u.Set(checkupanalyze.FieldClinicCheckupID, v)
	return u
}

// UpdateClinicCheckupID sets the "clinic_checkup_id" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsert) UpdateClinicCheckupID() *CheckupAnalyzeUpsert {
	u.SetExcluded(checkupanalyze.FieldClinicCheckupID)
	return u
}

// SetTitle sets the "title" field.
func (u *CheckupAnalyzeUpsert) SetTitle(v string) *CheckupAnalyzeUpsert {
	u.Set(checkupanalyze.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsert) UpdateTitle() *CheckupAnalyzeUpsert {
	u.SetExcluded(checkupanalyze.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *CheckupAnalyzeUpsert) SetDescription(v string) *CheckupAnalyzeUpsert {
	u.Set(checkupanalyze.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsert) UpdateDescription() *CheckupAnalyzeUpsert {
	u.SetExcluded(checkupanalyze.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CheckupAnalyzeUpsert) ClearDescription() *CheckupAnalyzeUpsert {
	u.SetNull(checkupanalyze.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CheckupAnalyze.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkupanalyze.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckupAnalyzeUpsertOne) UpdateNewValues() *CheckupAnalyzeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(checkupanalyze.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(checkupanalyze.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CheckupAnalyze.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CheckupAnalyzeUpsertOne) Ignore() *CheckupAnalyzeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckupAnalyzeUpsertOne) DoNothing() *CheckupAnalyzeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckupAnalyzeCreate.OnConflict
// documentation for more info.
func (u *CheckupAnalyzeUpsertOne) Update(set func(*CheckupAnalyzeUpsert)) *CheckupAnalyzeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckupAnalyzeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckupAnalyzeUpsertOne) SetUpdatedAt(v time.Time) *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertOne) UpdateUpdatedAt() *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CheckupAnalyzeUpsertOne) SetDeletedAt(v time.Time) *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertOne) UpdateDeletedAt() *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CheckupAnalyzeUpsertOne) ClearDeletedAt() *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (u *CheckupAnalyzeUpsertOne) SetClinicCheckupID(v uuid.UUID) *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetClinicCheckupID(v)
	})
}

// UpdateClinicCheckupID sets the "clinic_checkup_id" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertOne) UpdateClinicCheckupID() *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateClinicCheckupID()
	})
}

// SetTitle sets the "title" field.
func (u *CheckupAnalyzeUpsertOne) SetTitle(v string) *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertOne) UpdateTitle() *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CheckupAnalyzeUpsertOne) SetDescription(v string) *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertOne) UpdateDescription() *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CheckupAnalyzeUpsertOne) ClearDescription() *CheckupAnalyzeUpsertOne {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *CheckupAnalyzeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CheckupAnalyzeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckupAnalyzeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CheckupAnalyzeUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CheckupAnalyzeUpsertOne.ID is not supported by MySQL driver. Use CheckupAnalyzeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CheckupAnalyzeUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckupAnalyzeCreateBulk is the builder for creating many CheckupAnalyze entities in bulk.
type CheckupAnalyzeCreateBulk struct {
	config
	err      error
	builders []*CheckupAnalyzeCreate
	conflict []sql.ConflictOption
}

// Save creates the CheckupAnalyze entities in the database.
func (_c *CheckupAnalyzeCreateBulk) Save(ctx context.Context) ([]*CheckupAnalyze, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckupAnalyze, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckupAnalyzeMutation)
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
func (_c *CheckupAnalyzeCreateBulk) SaveX(ctx context.Context) []*CheckupAnalyze {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckupAnalyzeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckupAnalyzeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CheckupAnalyze.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckupAnalyzeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckupAnalyzeCreateBulk) OnConflict(opts ...sql.ConflictOption) *CheckupAnalyzeUpsertBulk {
	_c.conflict = opts
	return &CheckupAnalyzeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CheckupAnalyze.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckupAnalyzeCreateBulk) OnConflictColumns(columns ...string) *CheckupAnalyzeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckupAnalyzeUpsertBulk{
		create: _c,
	}
}

// CheckupAnalyzeUpsertBulk is the builder for "upsert"-ing
// a bulk of CheckupAnalyze nodes.
type CheckupAnalyzeUpsertBulk struct {
	create *CheckupAnalyzeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CheckupAnalyze.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkupanalyze.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckupAnalyzeUpsertBulk) UpdateNewValues() *CheckupAnalyzeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(checkupanalyze.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(checkupanalyze.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CheckupAnalyze.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CheckupAnalyzeUpsertBulk) Ignore() *CheckupAnalyzeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckupAnalyzeUpsertBulk) DoNothing() *CheckupAnalyzeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckupAnalyzeCreateBulk.OnConflict
// documentation for more info.
func (u *CheckupAnalyzeUpsertBulk) Update(set func(*CheckupAnalyzeUpsert)) *CheckupAnalyzeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckupAnalyzeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckupAnalyzeUpsertBulk) SetUpdatedAt(v time.Time) *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertBulk) UpdateUpdatedAt() *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CheckupAnalyzeUpsertBulk) SetDeletedAt(v time.Time) *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertBulk) UpdateDeletedAt() *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CheckupAnalyzeUpsertBulk) ClearDeletedAt() *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (u *CheckupAnalyzeUpsertBulk) SetClinicCheckupID(v uuid.UUID) *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetClinicCheckupID(v)
	})
}

// UpdateClinicCheckupID sets the "clinic_checkup_id" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertBulk) UpdateClinicCheckupID() *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateClinicCheckupID()
	})
}

// SetTitle sets the "title" field.
func (u *CheckupAnalyzeUpsertBulk) SetTitle(v string) *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertBulk) UpdateTitle() *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CheckupAnalyzeUpsertBulk) SetDescription(v string) *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CheckupAnalyzeUpsertBulk) UpdateDescription() *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CheckupAnalyzeUpsertBulk) ClearDescription() *CheckupAnalyzeUpsertBulk {
	return u.Update(func(s *CheckupAnalyzeUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *CheckupAnalyzeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CheckupAnalyzeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CheckupAnalyzeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckupAnalyzeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
