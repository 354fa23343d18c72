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
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionequation"
)

// QuestionOptionEquationCreate is the builder for creating a QuestionOptionEquation entity.
type QuestionOptionEquationCreate struct {
	config
	mutation *QuestionOptionEquationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionOptionEquationCreate) SetCreatedAt(v time.Time) *QuestionOptionEquationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionOptionEquationCreate) SetNillableCreatedAt(v *time.Time) *QuestionOptionEquationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOptionID sets the "option_id" field.
func (_c *QuestionOptionEquationCreate) SetOptionID(v uuid.UUID) *QuestionOptionEquationCreate {
	_c.mutation.SetOptionID(v)
	return _c
}

// SetLowerBand sets the "lower_band" field.
func (_c *QuestionOptionEquationCreate) SetLowerBand(v float64) *QuestionOptionEquationCreate {
	_c.mutation.SetLowerBand(v)
	return _c
}

// SetUpperBand sets the "upper_band" field.
func (_c *QuestionOptionEquationCreate) SetUpperBand(v float64) *QuestionOptionEquationCreate {
	_c.mutation.SetUpperBand(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionOptionEquationCreate) SetID(v uuid.UUID) *QuestionOptionEquationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionOptionEquationCreate) SetNillableID(v *uuid.UUID) *QuestionOptionEquationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_c *QuestionOptionEquationCreate) SetOption(v *QuestionOption) *QuestionOptionEquationCreate {
	return _c.SetOptionID(v.ID)
}

// Mutation returns the QuestionOptionEquationMutation object of the builder.
func (_c *QuestionOptionEquationCreate) Mutation() *QuestionOptionEquationMutation {
	return _c.mutation
}

// Save creates the QuestionOptionEquation in the database.
func (_c *QuestionOptionEquationCreate) Save(ctx context.Context) (*QuestionOptionEquation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionOptionEquationCreate) SaveX(ctx context.Context) *QuestionOptionEquation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionEquationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionEquationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionOptionEquationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionoptionequation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionoptionequation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionOptionEquationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "QuestionOptionEquation.created_at"`)}
	}
	if _, ok := _c.mutation.OptionID(); !ok {
		return &ValidationError{Name: "option_id", err: errors.New(`repo: missing required field "QuestionOptionEquation.option_id"`)}
	}
	if _, ok := _c.mutation.LowerBand(); !ok {
		return &ValidationError{Name: "lower_band", err: errors.New(`repo: missing required field "QuestionOptionEquation.lower_band"`)}
	}
	if _, ok := _c.mutation.UpperBand(); !ok {
		return &ValidationError{Name: "upper_band", err: errors.New(`repo: missing required field "QuestionOptionEquation.upper_band"`)}
	}
	if len(_c.mutation.OptionIDs()) == 0 {
		return &ValidationError{Name: "option", err: errors.New(`repo: missing required edge "QuestionOptionEquation.option"`)}
	}
	return nil
}

func (_c *QuestionOptionEquationCreate) sqlSave(ctx context.Context) (*QuestionOptionEquation, error) {
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

func (_c *QuestionOptionEquationCreate) createSpec() (*QuestionOptionEquation, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionOptionEquation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionoptionequation.Table, sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionoptionequation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LowerBand(); ok {
		_spec.SetField(questionoptionequation.FieldLowerBand, field.TypeFloat64, value)
		_node.LowerBand = value
	}
	if value, ok := _c.mutation.UpperBand(); ok {
		_spec.SetField(questionoptionequation.FieldUpperBand, field.TypeFloat64, value)
		_node.UpperBand = value
	}
	if nodes := _c.mutation.OptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoptionequation.OptionTable,
			Columns: []string{questionoptionequation.OptionColumn},
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
//	client.QuestionOptionEquation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionOptionEquationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionOptionEquationCreate) OnConflict(opts ...sql.ConflictOption) *QuestionOptionEquationUpsertOne {
	_c.conflict = opts
	return &QuestionOptionEquationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionOptionEquation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionOptionEquationCreate) OnConflictColumns(columns ...string) *QuestionOptionEquationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionOptionEquationUpsertOne{
		create: _c,
	}
}

type (
	// QuestionOptionEquationUpsertOne is the builder for "upsert"-ing
	//  one QuestionOptionEquation node.
	QuestionOptionEquationUpsertOne struct {
		create *QuestionOptionEquationCreate
	}

	// QuestionOptionEquationUpsert is the "OnConflict" setter.
	QuestionOptionEquationUpsert struct {
		*sql.UpdateSet
	}
)

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionEquationUpsert) SetOptionID(v uuid.UUID) *QuestionOptionEquationUpsert {
	u.Set(questionoptionequation.FieldOptionID, v)
	return u
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsert) UpdateOptionID() *QuestionOptionEquationUpsert {
	u.SetExcluded(questionoptionequation.FieldOptionID)
	return u
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionEquationUpsert) SetLowerBand(v float64) *QuestionOptionEquationUpsert {
	u.Set(questionoptionequation.FieldLowerBand, v)
	return u
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsert) UpdateLowerBand() *QuestionOptionEquationUpsert {
	u.SetExcluded(questionoptionequation.FieldLowerBand)
	return u
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionEquationUpsert) AddLowerBand(v float64) *QuestionOptionEquationUpsert {
	u.Add(questionoptionequation.FieldLowerBand, v)
	return u
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionEquationUpsert) SetUpperBand(v float64) *QuestionOptionEquationUpsert {
	u.Set(questionoptionequation.FieldUpperBand, v)
	return u
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsert) UpdateUpperBand() *QuestionOptionEquationUpsert {
	u.SetExcluded(questionoptionequation.FieldUpperBand)
	return u
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionEquationUpsert) AddUpperBand(v float64) *QuestionOptionEquationUpsert {
	u.Add(questionoptionequation.FieldUpperBand, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuestionOptionEquation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionoptionequation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionOptionEquationUpsertOne) UpdateNewValues() *QuestionOptionEquationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(questionoptionequation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(questionoptionequation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionOptionEquation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionOptionEquationUpsertOne) Ignore() *QuestionOptionEquationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionOptionEquationUpsertOne) DoNothing() *QuestionOptionEquationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionOptionEquationCreate.OnConflict
// documentation for more info.
func (u *QuestionOptionEquationUpsertOne) Update(set func(*QuestionOptionEquationUpsert)) *QuestionOptionEquationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionOptionEquationUpsert{UpdateSet: update})
	}))
	return u
}

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionEquationUpsertOne) SetOptionID(v uuid.UUID) *QuestionOptionEquationUpsertOne {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsertOne) UpdateOptionID() *QuestionOptionEquationUpsertOne {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.UpdateOptionID()
	})
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionEquationUpsertOne) SetLowerBand(v float64) *QuestionOptionEquationUpsertOne {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.SetLowerBand(v)
	})
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionEquationUpsertOne) AddLowerBand(v float64) *QuestionOptionEquationUpsertOne {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.AddLowerBand(v)
	})
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsertOne) UpdateLowerBand() *QuestionOptionEquationUpsertOne {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.UpdateLowerBand()
	})
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionEquationUpsertOne) SetUpperBand(v float64) *QuestionOptionEquationUpsertOne {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.SetUpperBand(v)
	})
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionEquationUpsertOne) AddUpperBand(v float64) *QuestionOptionEquationUpsertOne {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.AddUpperBand(v)
	})
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsertOne) UpdateUpperBand() *QuestionOptionEquationUpsertOne {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.UpdateUpperBand()
	})
}

// Exec executes the query.
func (u *QuestionOptionEquationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionOptionEquationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionOptionEquationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionOptionEquationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionOptionEquationUpsertOne.ID is not supported by MySQL driver. Use QuestionOptionEquationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionOptionEquationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionOptionEquationCreateBulk is the builder for creating many QuestionOptionEquation entities in bulk.
type QuestionOptionEquationCreateBulk struct {
	config
	err      error
	builders []*QuestionOptionEquationCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionOptionEquation entities in the database.
func (_c *QuestionOptionEquationCreateBulk) Save(ctx context.Context) ([]*QuestionOptionEquation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionOptionEquation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionOptionEquationMutation)
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
func (_c *QuestionOptionEquationCreateBulk) SaveX(ctx context.Context) []*QuestionOptionEquation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionEquationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionEquationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionOptionEquation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionOptionEquationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionOptionEquationCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionOptionEquationUpsertBulk {
	_c.conflict = opts
	return &QuestionOptionEquationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionOptionEquation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionOptionEquationCreateBulk) OnConflictColumns(columns ...string) *QuestionOptionEquationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionOptionEquationUpsertBulk{
		create: _c,
	}
}

// QuestionOptionEquationUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionOptionEquation nodes.
type QuestionOptionEquationUpsertBulk struct {
	create *QuestionOptionEquationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionOptionEquation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionoptionequation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionOptionEquationUpsertBulk) UpdateNewValues() *QuestionOptionEquationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(questionoptionequation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(questionoptionequation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionOptionEquation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionOptionEquationUpsertBulk) Ignore() *QuestionOptionEquationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionOptionEquationUpsertBulk) DoNothing() *QuestionOptionEquationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionOptionEquationCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionOptionEquationUpsertBulk) Update(set func(*QuestionOptionEquationUpsert)) *QuestionOptionEquationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionOptionEquationUpsert{UpdateSet: update})
	}))
	return u
}

// SetOptionID sets the "option_id" field.
func (u *QuestionOptionEquationUpsertBulk) SetOptionID(v uuid.UUID) *QuestionOptionEquationUpsertBulk {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.SetOptionID(v)
	})
}

// UpdateOptionID sets the "option_id" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsertBulk) UpdateOptionID() *QuestionOptionEquationUpsertBulk {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.UpdateOptionID()
	})
}

// SetLowerBand sets the "lower_band" field.
func (u *QuestionOptionEquationUpsertBulk) SetLowerBand(v float64) *QuestionOptionEquationUpsertBulk {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.SetLowerBand(v)
	})
}

// AddLowerBand adds v to the "lower_band" field.
func (u *QuestionOptionEquationUpsertBulk) AddLowerBand(v float64) *QuestionOptionEquationUpsertBulk {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.AddLowerBand(v)
	})
}

// UpdateLowerBand sets the "lower_band" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsertBulk) UpdateLowerBand() *QuestionOptionEquationUpsertBulk {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.UpdateLowerBand()
	})
}

// SetUpperBand sets the "upper_band" field.
func (u *QuestionOptionEquationUpsertBulk) SetUpperBand(v float64) *QuestionOptionEquationUpsertBulk {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.SetUpperBand(v)
	})
}

// AddUpperBand adds v to the "upper_band" field.
func (u *QuestionOptionEquationUpsertBulk) AddUpperBand(v float64) *QuestionOptionEquationUpsertBulk {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.AddUpperBand(v)
	})
}

// UpdateUpperBand sets the "upper_band" field to the value that was provided on create.
func (u *QuestionOptionEquationUpsertBulk) UpdateUpperBand() *QuestionOptionEquationUpsertBulk {
	return u.Update(func(s *QuestionOptionEquationUpsert) {
		s.UpdateUpperBand()
	})
}

// Exec executes the query.
func (u *QuestionOptionEquationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionOptionEquationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionOptionEquationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionOptionEquationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
