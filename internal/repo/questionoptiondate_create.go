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
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptiondate"
)

// QuestionOptionDateCreate is the builder for creating a QuestionOptionDate entity.
type QuestionOptionDateCreate struct {
	config
	mutation *QuestionOptionDateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionOptionDateCreate) SetCreatedAt(v time.Time) *QuestionOptionDateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionOptionDateCreate) SetNillableCreatedAt(v *time.Time) *QuestionOptionDateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOptionID sets the "option_id" field.
func (_c *QuestionOptionDateCreate) SetOptionID(v uuid.UUID) *QuestionOptionDateCreate {
	_c.mutation.SetOptionID(v)
	return _c
}

// SetLowerBand sets the "lower_band" field.
func (_c *QuestionOptionDateCreate) SetLowerBand(v float64) *QuestionOptionDateCreate {
	_c.mutation.SetLowerBand(v)
	return _c
}

// SetUpperBand sets the "upper_band" field.
func (_c *QuestionOptionDateCreate) SetUpperBand(v float64) *QuestionOptionDateCreate {
	_c.mutation.SetUpperBand(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionOptionDateCreate) SetID(v uuid.UUID) *QuestionOptionDateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionOptionDateCreate) SetNillableID(v *uuid.UUID) *QuestionOptionDateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_c *QuestionOptionDateCreate) SetOption(v *QuestionOption) *QuestionOptionDateCreate {
	return _c.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionDateMutation object of the builder.
func (_c *QuestionOptionDateCreate) Mutation() *QuestionOptionDateMutation {
	return _c.mutation
}

// Save creates the QuestionOptionDate in the database.
func (_c *QuestionOptionDateCreate) Save(ctx context.Context) (*QuestionOptionDate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionOptionDateCreate) SaveX(ctx context.Context) *QuestionOptionDate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionDateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionDateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionOptionDateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionoptiondate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionoptiondate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionOptionDateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "QuestionOptionDate.created_at"`)}
	}
	if _, ok := _c.mutation.OptionID(); !ok {
		return &ValidationError{Name: "option_id", err: errors.New(`repo: missing required field "QuestionOptionDate.option_id"`)}
	}
	if _, ok := _c.mutation.LowerBand(); !ok {
		return &ValidationError{Name: "lower_band", err: errors.New(`repo: missing required field "QuestionOptionDate.lower_band"`)}
	}
	if _, ok := _c.mutation.UpperBand(); !ok {
		return &ValidationError{Name: "upper_band", err: errors.New(`repo: missing required field "QuestionOptionDate.upper_band"`)}
	}
	if len(_c.mutation.OptionIDs()) == 0 {
		return &ValidationError{Name: "option", err: errors.New(`repo: missing required edge "QuestionOptionDate.option"`)}
	}
	return nil
}

func (_c *QuestionOptionDateCreate) sqlSave(ctx context.Context) (*QuestionOptionDate, error) {
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

func (_c *QuestionOptionDateCreate) createSpec() (*QuestionOptionDate, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionOptionDate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionoptiondate.Table, sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionoptiondate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LowerBand(); ok {
		_spec.SetField(questionoptiondate.FieldLowerBand, field.TypeFloat64, value)
		_node.LowerBand = value
	}
	if value, ok := _c.mutation.UpperBand(); ok {
		_spec.SetField(questionoptiondate.FieldUpperBand, field.TypeFloat64, value)
		_node.UpperBand = value
	}
	if nodes := _c.mutation.OptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptiondate.OptionTable,
			Columns: []string{questionoptiondate.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionOptionDate.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionOptionDateUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionOptionDateCreate) OnConflict(opts ...sql.ConflictOption) *QuestionOptionDateUpsertOne {
	_c.conflict = opts
	return &QuestionOptionDateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionOptionDate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionOptionDateCreate) OnConflictColumns(columns ...string) *QuestionOptionDateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionOptionDateUpsertOne{
		create: _c,
	}
}

type (
	// QuestionOptionDateUpsertOne is the builder for "upsert"-ing
	//  one QuestionOptionDate node.
	QuestionOptionDateUpsertOne struct {
		create *QuestionOptionDateCreate
	}

	// QuestionOptionDateUpsert is the "OnConflict" setter.
	QuestionOptionDateUpsert struct {
		*sql.UpdateSet
	}
)

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionDateUpsert) SetOptionID(v uuid.UUID) *QuestionOptionDateUpsert {
	u.Set(questionoptiondate.FieldOptionID, v)
	return u
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionDateUpsert) UpdateOptionID() *QuestionOptionDateUpsert {
	u.SetExcluded(questionoptiondate.FieldOptionID)
	return u
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionDateUpsert) SetLowerBand(v float64) *QuestionOptionDateUpsert {
	u.Set(questionoptiondate.FieldLowerBand, v)
	return u
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionDateUpsert) UpdateLowerBand() *QuestionOptionDateUpsert {
	u.SetExcluded(questionoptiondate.FieldLowerBand)
	return u
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionDateUpsert) AddLowerBand(v float64) *QuestionOptionDateUpsert {
	u.Add(questionoptiondate.FieldLowerBand, v)
	return u
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionDateUpsert) SetUpperBand(v float64) *QuestionOptionDateUpsert {
	u.Set(questionoptiondate.FieldUpperBand, v)
	return u
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionDateUpsert) UpdateUpperBand() *QuestionOptionDateUpsert {
	u.SetExcluded(questionoptiondate.FieldUpperBand)
	return u
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionDateUpsert) AddUpperBand(v float64) *QuestionOptionDateUpsert {
	u.Add(questionoptiondate.FieldUpperBand, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuestionOptionDate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionoptiondate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionOptionDateUpsertOne) UpdateNewValues() *QuestionOptionDateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(questionoptiondate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(questionoptiondate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionOptionDate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionOptionDateUpsertOne) Ignore() *QuestionOptionDateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionOptionDateUpsertOne) DoNothing() *QuestionOptionDateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionOptionDateCreate.OnConflict
// documentation for more info.
func (u *QuestionOptionDateUpsertOne) Update(set func(*QuestionOptionDateUpsert)) *QuestionOptionDateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionOptionDateUpsert{UpdateSet: update})
	}))
	return u
}

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionDateUpsertOne) SetOptionID(v uuid.UUID) *QuestionOptionDateUpsertOne {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionDateUpsertOne) UpdateOptionID() *QuestionOptionDateUpsertOne {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.UpdateOptionID()
	})
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionDateUpsertOne) SetLowerBand(v float64) *QuestionOptionDateUpsertOne {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.SetLowerBand(v)
	})
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionDateUpsertOne) AddLowerBand(v float64) *QuestionOptionDateUpsertOne {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.AddLowerBand(v)
	})
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionDateUpsertOne) UpdateLowerBand() *QuestionOptionDateUpsertOne {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.UpdateLowerBand()
	})
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionDateUpsertOne) SetUpperBand(v float64) *QuestionOptionDateUpsertOne {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.SetUpperBand(v)
	})
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionDateUpsertOne) AddUpperBand(v float64) *QuestionOptionDateUpsertOne {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.AddUpperBand(v)
	})
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionDateUpsertOne) UpdateUpperBand() *QuestionOptionDateUpsertOne {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.UpdateUpperBand()
	})
}

// Exec executes the query.
func (u *QuestionOptionDateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionOptionDateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionOptionDateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionOptionDateUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionOptionDateUpsertOne.ID is not supported by MySQL driver. Use QuestionOptionDateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionOptionDateUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionOptionDateCreateBulk is the builder for creating many QuestionOptionDate entities in bulk.
type QuestionOptionDateCreateBulk struct {
	config
	err      error
	builders []*QuestionOptionDateCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionOptionDate entities in the database.
func (_c *QuestionOptionDateCreateBulk) Save(ctx context.Context) ([]*QuestionOptionDate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionOptionDate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionOptionDateMutation)
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
func (_c *QuestionOptionDateCreateBulk) SaveX(ctx context.Context) []*QuestionOptionDate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionDateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionDateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionOptionDate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionOptionDateUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionOptionDateCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionOptionDateUpsertBulk {
	_c.conflict = opts
	return &QuestionOptionDateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionOptionDate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionOptionDateCreateBulk) OnConflictColumns(columns ...string) *QuestionOptionDateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionOptionDateUpsertBulk{
		create: _c,
	}
}

// QuestionOptionDateUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionOptionDate nodes.
type QuestionOptionDateUpsertBulk struct {
	create *QuestionOptionDateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionOptionDate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionoptiondate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionOptionDateUpsertBulk) UpdateNewValues() *QuestionOptionDateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(questionoptiondate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(questionoptiondate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionOptionDate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionOptionDateUpsertBulk) Ignore() *QuestionOptionDateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionOptionDateUpsertBulk) DoNothing() *QuestionOptionDateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionOptionDateCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionOptionDateUpsertBulk) Update(set func(*QuestionOptionDateUpsert)) *QuestionOptionDateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionOptionDateUpsert{UpdateSet: update})
	}))
	return u
}

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionDateUpsertBulk) SetOptionID(v uuid.UUID) *QuestionOptionDateUpsertBulk {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionDateUpsertBulk) UpdateOptionID() *QuestionOptionDateUpsertBulk {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.UpdateOptionID()
	})
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionDateUpsertBulk) SetLowerBand(v float64) *QuestionOptionDateUpsertBulk {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.SetLowerBand(v)
	})
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionDateUpsertBulk) AddLowerBand(v float64) *QuestionOptionDateUpsertBulk {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.AddLowerBand(v)
	})
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionDateUpsertBulk) UpdateLowerBand() *QuestionOptionDateUpsertBulk {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.UpdateLowerBand()
	})
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionDateUpsertBulk) SetUpperBand(v float64) *QuestionOptionDateUpsertBulk {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.SetUpperBand(v)
	})
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionDateUpsertBulk) AddUpperBand(v float64) *QuestionOptionDateUpsertBulk {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.AddUpperBand(v)
	})
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionDateUpsertBulk) UpdateUpperBand() *QuestionOptionDateUpsertBulk {
	return u.Update(func(s *QuestionOptionDateUpsert) {
		s.UpdateUpperBand()
	})
}

// Exec executes the query.
func (u *QuestionOptionDateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionOptionDateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionOptionDateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionOptionDateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
