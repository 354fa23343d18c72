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
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
)

// QuestionOptionNumberCreate is the builder for creating a QuestionOptionNumber entity.
type QuestionOptionNumberCreate struct {
	config
	mutation *QuestionOptionNumberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionOptionNumberCreate) SetCreatedAt(v time.Time) *QuestionOptionNumberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionOptionNumberCreate) SetNillableCreatedAt(v *time.Time) *QuestionOptionNumberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOptionID sets the "option_id" field.
func (_c *QuestionOptionNumberCreate) SetOptionID(v uuid.UUID) *QuestionOptionNumberCreate {
	_c.mutation.SetOptionID(v)
	return _c
}

// SetLowerBand sets the "lower_band" field.
func (_c *QuestionOptionNumberCreate) SetLowerBand(v float64) *QuestionOptionNumberCreate {
	_c.mutation.SetLowerBand(v)
	return _c
}

// SetUpperBand sets the "upper_band" field.
func (_c *QuestionOptionNumberCreate) SetUpperBand(v float64) *QuestionOptionNumberCreate {
	_c.mutation.SetUpperBand(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionOptionNumberCreate) SetID(v uuid.UUID) *QuestionOptionNumberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionOptionNumberCreate) SetNillableID(v *uuid.UUID) *QuestionOptionNumberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_c *QuestionOptionNumberCreate) SetOption(v *QuestionOption) *QuestionOptionNumberCreate {
	return _c.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionNumberMutation object of the builder.
func (_c *QuestionOptionNumberCreate) Mutation() *QuestionOptionNumberMutation {
	return _c.mutation
}

// Save creates the QuestionOptionNumber in the database.
func (_c *QuestionOptionNumberCreate) Save(ctx context.Context) (*QuestionOptionNumber, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionOptionNumberCreate) SaveX(ctx context.Context) *QuestionOptionNumber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionNumberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionNumberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionOptionNumberCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionoptionnumber.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionoptionnumber.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionOptionNumberCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "QuestionOptionNumber.created_at"`)}
	}
	if _, ok := _c.mutation.OptionID(); !ok {
		return &ValidationError{Name: "option_id", err: errors.New(`repo: missing required field "QuestionOptionNumber.option_id"`)}
	}
	if _, ok := _c.mutation.LowerBand(); !ok {
		return &ValidationError{Name: "lower_band", err: errors.New(`repo: missing required field "QuestionOptionNumber.lower_band"`)}
	}
	if _, ok := _c.mutation.UpperBand(); !ok {
		return &ValidationError{Name: "upper_band", err: errors.New(`repo: missing required field "QuestionOptionNumber.upper_band"`)}
	}
	if len(_c.mutation.OptionIDs()) == 0 {
		return &ValidationError{Name: "option", err: errors.New(`repo: missing required edge "QuestionOptionNumber.option"`)}
	}
	return nil
}

func (_c *QuestionOptionNumberCreate) sqlSave(ctx context.Context) (*QuestionOptionNumber, error) {
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

func (_c *QuestionOptionNumberCreate) createSpec() (*QuestionOptionNumber, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionOptionNumber{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionoptionnumber.Table, sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionoptionnumber.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LowerBand(); ok {
		_spec.SetField(questionoptionnumber.FieldLowerBand, field.TypeFloat64, value)
		_node.LowerBand = value
	}
	if value, ok := _c.mutation.UpperBand(); ok {
		_spec.SetField(questionoptionnumber.FieldUpperBand, field.TypeFloat64, value)
		_node.UpperBand = value
	}
	if nodes := _c.mutation.OptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptionnumber.OptionTable,
			Columns: []string{questionoptionnumber.OptionColumn},
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
//	client.QuestionOptionNumber.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionOptionNumberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionOptionNumberCreate) OnConflict(opts ...sql.ConflictOption) *QuestionOptionNumberUpsertOne {
	_c.conflict = opts
	return &QuestionOptionNumberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionOptionNumber.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionOptionNumberCreate) OnConflictColumns(columns ...string) *QuestionOptionNumberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionOptionNumberUpsertOne{
		create: _c,
	}
}

type (
	// QuestionOptionNumberUpsertOne is the builder for "upsert"-ing
	//  one QuestionOptionNumber node.
	QuestionOptionNumberUpsertOne struct {
		create *QuestionOptionNumberCreate
	}

	// QuestionOptionNumberUpsert is the "OnConflict" setter.
	QuestionOptionNumberUpsert struct {
		*sql.UpdateSet
	}
)

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionNumberUpsert) SetOptionID(v uuid.UUID) *QuestionOptionNumberUpsert {
	u.Set(questionoptionnumber.FieldOptionID, v)
	return u
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsert) UpdateOptionID() *QuestionOptionNumberUpsert {
	u.SetExcluded(questionoptionnumber.FieldOptionID)
	return u
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionNumberUpsert) SetLowerBand(v float64) *QuestionOptionNumberUpsert {
	u.Set(questionoptionnumber.FieldLowerBand, v)
	return u
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsert) UpdateLowerBand() *QuestionOptionNumberUpsert {
	u.SetExcluded(questionoptionnumber.FieldLowerBand)
	return u
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionNumberUpsert) AddLowerBand(v float64) *QuestionOptionNumberUpsert {
	u.Add(questionoptionnumber.FieldLowerBand, v)
	return u
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionNumberUpsert) SetUpperBand(v float64) *QuestionOptionNumberUpsert {
	u.Set(questionoptionnumber.FieldUpperBand, v)
	return u
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsert) UpdateUpperBand() *QuestionOptionNumberUpsert {
	u.SetExcluded(questionoptionnumber.FieldUpperBand)
	return u
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionNumberUpsert) AddUpperBand(v float64) *QuestionOptionNumberUpsert {
	u.Add(questionoptionnumber.FieldUpperBand, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuestionOptionNumber.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionoptionnumber.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionOptionNumberUpsertOne) UpdateNewValues() *QuestionOptionNumberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(questionoptionnumber.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(questionoptionnumber.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionOptionNumber.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionOptionNumberUpsertOne) Ignore() *QuestionOptionNumberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionOptionNumberUpsertOne) DoNothing() *QuestionOptionNumberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionOptionNumberCreate.OnConflict
// documentation for more info.
func (u *QuestionOptionNumberUpsertOne) Update(set func(*QuestionOptionNumberUpsert)) *QuestionOptionNumberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionOptionNumberUpsert{UpdateSet: update})
	}))
	return u
}

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionNumberUpsertOne) SetOptionID(v uuid.UUID) *QuestionOptionNumberUpsertOne {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsertOne) UpdateOptionID() *QuestionOptionNumberUpsertOne {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.UpdateOptionID()
	})
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionNumberUpsertOne) SetLowerBand(v float64) *QuestionOptionNumberUpsertOne {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.SetLowerBand(v)
	})
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionNumberUpsertOne) AddLowerBand(v float64) *QuestionOptionNumberUpsertOne {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.AddLowerBand(v)
	})
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsertOne) UpdateLowerBand() *QuestionOptionNumberUpsertOne {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.UpdateLowerBand()
	})
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionNumberUpsertOne) SetUpperBand(v float64) *QuestionOptionNumberUpsertOne {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.SetUpperBand(v)
	})
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionNumberUpsertOne) AddUpperBand(v float64) *QuestionOptionNumberUpsertOne {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.AddUpperBand(v)
	})
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsertOne) UpdateUpperBand() *QuestionOptionNumberUpsertOne {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.UpdateUpperBand()
	})
}

// Exec executes the query.
func (u *QuestionOptionNumberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionOptionNumberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionOptionNumberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionOptionNumberUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionOptionNumberUpsertOne.ID is not supported by MySQL driver. Use QuestionOptionNumberUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionOptionNumberUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionOptionNumberCreateBulk is the builder for creating many QuestionOptionNumber entities in bulk.
type QuestionOptionNumberCreateBulk struct {
	config
	err      error
	builders []*QuestionOptionNumberCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionOptionNumber entities in the database.
func (_c *QuestionOptionNumberCreateBulk) Save(ctx context.Context) ([]*QuestionOptionNumber, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionOptionNumber, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionOptionNumberMutation)
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
func (_c *QuestionOptionNumberCreateBulk) SaveX(ctx context.Context) []*QuestionOptionNumber {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionNumberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionNumberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionOptionNumber.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionOptionNumberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionOptionNumberCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionOptionNumberUpsertBulk {
	_c.conflict = opts
	return &QuestionOptionNumberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionOptionNumber.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionOptionNumberCreateBulk) OnConflictColumns(columns ...string) *QuestionOptionNumberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionOptionNumberUpsertBulk{
		create: _c,
	}
}

// QuestionOptionNumberUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionOptionNumber nodes.
type QuestionOptionNumberUpsertBulk struct {
	create *QuestionOptionNumberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionOptionNumber.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionoptionnumber.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionOptionNumberUpsertBulk) UpdateNewValues() *QuestionOptionNumberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(questionoptionnumber.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(questionoptionnumber.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionOptionNumber.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionOptionNumberUpsertBulk) Ignore() *QuestionOptionNumberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionOptionNumberUpsertBulk) DoNothing() *QuestionOptionNumberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionOptionNumberCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionOptionNumberUpsertBulk) Update(set func(*QuestionOptionNumberUpsert)) *QuestionOptionNumberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionOptionNumberUpsert{UpdateSet: update})
	}))
	return u
}

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionNumberUpsertBulk) SetOptionID(v uuid.UUID) *QuestionOptionNumberUpsertBulk {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsertBulk) UpdateOptionID() *QuestionOptionNumberUpsertBulk {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.UpdateOptionID()
	})
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionNumberUpsertBulk) SetLowerBand(v float64) *QuestionOptionNumberUpsertBulk {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.SetLowerBand(v)
	})
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionNumberUpsertBulk) AddLowerBand(v float64) *QuestionOptionNumberUpsertBulk {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.AddLowerBand(v)
	})
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsertBulk) UpdateLowerBand() *QuestionOptionNumberUpsertBulk {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.UpdateLowerBand()
	})
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionNumberUpsertBulk) SetUpperBand(v float64) *QuestionOptionNumberUpsertBulk {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.SetUpperBand(v)
	})
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionNumberUpsertBulk) AddUpperBand(v float64) *QuestionOptionNumberUpsertBulk {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.AddUpperBand(v)
	})
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionNumberUpsertBulk) UpdateUpperBand() *QuestionOptionNumberUpsertBulk {
	return u.Update(func(s *QuestionOptionNumberUpsert) {
		s.UpdateUpperBand()
	})
}

// Exec executes the query.
func (u *QuestionOptionNumberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionOptionNumberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionOptionNumberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionOptionNumberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
