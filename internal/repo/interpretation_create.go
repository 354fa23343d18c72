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
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
)

// InterpretationCreate is the builder for creating a Interpretation entity.
type InterpretationCreate struct {
	config
	mutation *InterpretationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InterpretationCreate) SetCreatedAt(v time.Time) *InterpretationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableCreatedAt(v *time.Time) *InterpretationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InterpretationCreate) SetUpdatedAt(v time.Time) *InterpretationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableUpdatedAt(v *time.Time) *InterpretationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *InterpretationCreate) SetDeletedAt(v time.Time) *InterpretationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableDeletedAt(v *time.Time) *InterpretationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetAnalyzeID sets the "analyze_id" field.
func (_c *InterpretationCreate) SetAnalyzeID(v uuid.UUID) *InterpretationCreate {
	_c.mutation.SetAnalyzeID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *InterpretationCreate) SetTitle(v string) *InterpretationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *InterpretationCreate) SetContent(v string) *InterpretationCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableContent(v *string) *InterpretationCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterpretationCreate) SetID(v uuid.UUID) *InterpretationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InterpretationCreate) SetNillableID(v *uuid.UUID) *InterpretationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAnalyze sets the "analyze" edge to the CheckupAnalyze entity.
func (_c *InterpretationCreate) SetAnalyze(v *CheckupAnalyze) *InterpretationCreate {
	return _c.SetAnalyzeID(v.ID)
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by IDs.
func (_c *InterpretationCreate) AddSuggestionIDs(ids ...uuid.UUID) *InterpretationCreate {
	_c.mutation.AddSuggestionIDs(ids...)
	return _c
}

// AddSuggestions adds the "suggestions" edges to the Suggestion entity.
func (_c *InterpretationCreate) AddSuggestions(v ...*Suggestion) *InterpretationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSuggestionIDs(ids...)
}

// Mutation returns the InterpretationMutation object of the builder.
func (_c *InterpretationCreate) Mutation() *InterpretationMutation {
	return _c.mutation
}

// Save creates the Interpretation in the database.
func (_c *InterpretationCreate) Save(ctx context.Context) (*Interpretation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterpretationCreate) SaveX(ctx context.Context) *Interpretation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterpretationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterpretationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterpretationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interpretation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interpretation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := interpretation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterpretationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Interpretation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Interpretation.updated_at"`)}
	}
	if _, ok := _c.mutation.AnalyzeID(); !ok {
		return &ValidationError{Name: "analyze_id", err: errors.New(`repo: missing required field "Interpretation.analyze_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Interpretation.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := interpretation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Interpretation.title": %w`, err)}
		}
	}
	if len(_c.mutation.AnalyzeIDs()) == 0 {
		return &ValidationError{Name: "analyze", err: errors.New(`repo: missing required edge "Interpretation.analyze"`)}
	}
	return nil
}

func (_c *InterpretationCreate) sqlSave(ctx context.Context) (*Interpretation, error) {
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

func (_c *InterpretationCreate) createSpec() (*Interpretation, *sqlgraph.CreateSpec) {
	var (
		_node = &Interpretation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interpretation.Table, sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interpretation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interpretation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(interpretation.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(interpretation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(interpretation.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if nodes := _c.mutation.AnalyzeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interpretation.AnalyzeTable,
			Columns: []string{interpretation.AnalyzeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AnalyzeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SuggestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interpretation.SuggestionsTable,
			Columns: []string{interpretation.SuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID),
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
//	client.Interpretation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InterpretationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InterpretationCreate) OnConflict(opts ...sql.ConflictOption) *InterpretationUpsertOne {
	_c.conflict = opts
	return &InterpretationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Interpretation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InterpretationCreate) OnConflictColumns(columns ...string) *InterpretationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InterpretationUpsertOne{
		create: _c,
	}
}

type (
	// InterpretationUpsertOne is the builder for "upsert"-ing
	//  one Interpretation node.
	InterpretationUpsertOne struct {
		create *InterpretationCreate
	}

	// InterpretationUpsert is the "OnConflict" setter.
	InterpretationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InterpretationUpsert) SetUpdatedAt(v time.Time) *InterpretationUpsert {
	u.Set(interpretation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterpretationUpsert) UpdateUpdatedAt() *InterpretationUpsert {
	u.SetExcluded(interpretation.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InterpretationUpsert) SetDeletedAt(v time.Time) *InterpretationUpsert {
	u.Set(interpretation.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InterpretationUpsert) UpdateDeletedAt() *InterpretationUpsert {
	u.SetExcluded(interpretation.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InterpretationUpsert) ClearDeletedAt() *InterpretationUpsert {
	u.SetNull(interpretation.FieldDeletedAt)
	return u
}

// SetAnalyzeID sets the "analyze_id" field.
func (u *InterpretationUpsert) SetAnalyzeID(v uuid.UUID) *InterpretationUpsert {
	u.Set(interpretation.FieldAnalyzeID, v)
	return u
}

// UpdateAnalyzeID sets the "analyze_id" field to the value that was provided on create.
func (u *InterpretationUpsert) UpdateAnalyzeID() *InterpretationUpsert {
	u.SetExcluded(interpretation.FieldAnalyzeID)
	return u
}

// SetTitle sets the "title" field.
func (u *InterpretationUpsert) SetTitle(v string) *InterpretationUpsert {
	u.Set(interpretation.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InterpretationUpsert) UpdateTitle() *InterpretationUpsert {
	u.SetExcluded(interpretation.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *InterpretationUpsert) SetContent(v string) *InterpretationUpsert {
	u.Set(interpretation.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *InterpretationUpsert) UpdateContent() *InterpretationUpsert {
	u.SetExcluded(interpretation.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *InterpretationUpsert) ClearContent() *InterpretationUpsert {
	u.SetNull(interpretation.FieldContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Interpretation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interpretation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InterpretationUpsertOne) UpdateNewValues() *InterpretationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(interpretation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(interpretation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Interpretation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InterpretationUpsertOne) Ignore() *InterpretationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InterpretationUpsertOne) DoNothing() *InterpretationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InterpretationCreate.OnConflict
// documentation for more info.
func (u *InterpretationUpsertOne) Update(set func(*InterpretationUpsert)) *InterpretationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InterpretationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InterpretationUpsertOne) SetUpdatedAt(v time.Time) *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterpretationUpsertOne) UpdateUpdatedAt() *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InterpretationUpsertOne) SetDeletedAt(v time.Time) *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InterpretationUpsertOne) UpdateDeletedAt() *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InterpretationUpsertOne) ClearDeletedAt() *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.ClearDeletedAt()
	})
}

// SetAnalyzeID sets the "analyze_id" field.
func (u *InterpretationUpsertOne) SetAnalyzeID(v uuid.UUID) *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetAnalyzeID(v)
	})
}

// UpdateAnalyzeID sets the "analyze_id" field to the value that was provided on create.
func (u *InterpretationUpsertOne) UpdateAnalyzeID() *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateAnalyzeID()
	})
}

// SetTitle sets the "title" field.
func (u *InterpretationUpsertOne) SetTitle(v string) *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InterpretationUpsertOne) UpdateTitle() *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *InterpretationUpsertOne) SetContent(v string) *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *InterpretationUpsertOne) UpdateContent() *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *InterpretationUpsertOne) ClearContent() *InterpretationUpsertOne {
	return u.Update(func(s *InterpretationUpsert) {
		s.ClearContent()
	})
}

// Exec executes the query.
func (u *InterpretationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InterpretationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InterpretationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InterpretationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InterpretationUpsertOne.ID is not supported by MySQL driver. Use InterpretationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InterpretationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InterpretationCreateBulk is the builder for creating many Interpretation entities in bulk.
type InterpretationCreateBulk struct {
	config
	err      error
	builders []*InterpretationCreate
	conflict []sql.ConflictOption
}

// Save creates the Interpretation entities in the database.
func (_c *InterpretationCreateBulk) Save(ctx context.Context) ([]*Interpretation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interpretation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterpretationMutation)
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
func (_c *InterpretationCreateBulk) SaveX(ctx context.Context) []*Interpretation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterpretationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterpretationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Interpretation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InterpretationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InterpretationCreateBulk) OnConflict(opts ...sql.ConflictOption) *InterpretationUpsertBulk {
	_c.conflict = opts
	return &InterpretationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Interpretation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InterpretationCreateBulk) OnConflictColumns(columns ...string) *InterpretationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InterpretationUpsertBulk{
		create: _c,
	}
}

// InterpretationUpsertBulk is the builder for "upsert"-ing
// a bulk of Interpretation nodes.
type InterpretationUpsertBulk struct {
	create *InterpretationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Interpretation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interpretation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InterpretationUpsertBulk) UpdateNewValues() *InterpretationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(interpretation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(interpretation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Interpretation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InterpretationUpsertBulk) Ignore() *InterpretationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InterpretationUpsertBulk) DoNothing() *InterpretationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InterpretationCreateBulk.OnConflict
// documentation for more info.
func (u *InterpretationUpsertBulk) Update(set func(*InterpretationUpsert)) *InterpretationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InterpretationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InterpretationUpsertBulk) SetUpdatedAt(v time.Time) *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InterpretationUpsertBulk) UpdateUpdatedAt() *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InterpretationUpsertBulk) SetDeletedAt(v time.Time) *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InterpretationUpsertBulk) UpdateDeletedAt() *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InterpretationUpsertBulk) ClearDeletedAt() *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.ClearDeletedAt()
	})
}

// SetAnalyzeID sets the "analyze_id" field.
func (u *InterpretationUpsertBulk) SetAnalyzeID(v uuid.UUID) *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetAnalyzeID(v)
	})
}

// UpdateAnalyzeID sets the "analyze_id" field to the value that was provided on create.
func (u *InterpretationUpsertBulk) UpdateAnalyzeID() *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateAnalyzeID()
	})
}

// SetTitle sets the "title" field.
func (u *InterpretationUpsertBulk) SetTitle(v string) *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InterpretationUpsertBulk) UpdateTitle() *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *InterpretationUpsertBulk) SetContent(v string) *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *InterpretationUpsertBulk) UpdateContent() *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *InterpretationUpsertBulk) ClearContent() *InterpretationUpsertBulk {
	return u.Update(func(s *InterpretationUpsert) {
		s.ClearContent()
	})
}

// Exec executes the query.
func (u *InterpretationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InterpretationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InterpretationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InterpretationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
