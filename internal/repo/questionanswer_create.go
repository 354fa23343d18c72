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
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionAnswerCreate is the builder for creating a QuestionAnswer entity.
type QuestionAnswerCreate struct {
	config
	mutation *QuestionAnswerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionAnswerCreate) SetCreatedAt(v time.Time) *QuestionAnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionAnswerCreate) SetNillableCreatedAt(v *time.Time) *QuestionAnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCheckupID sets the "checkup_id" field.
func (_c *QuestionAnswerCreate) SetCheckupID(v uuid.UUID) *QuestionAnswerCreate {
	_c.mutation.SetCheckupID(v)
	return _c
}

// SetQuestionShareID sets the "question_share_id" field.
func (_c *QuestionAnswerCreate) SetQuestionShareID(v uuid.UUID) *QuestionAnswerCreate {
	_c.mutation.SetQuestionShareID(v)
	return _c
}

// SetQuestionOptionID sets the "question_option_id" field.
func (_c *QuestionAnswerCreate) SetQuestionOptionID(v uuid.UUID) *QuestionAnswerCreate {
	_c.mutation.SetQuestionOptionID(v)
	return _c
}

// SetRawValue sets the "raw_value" field.
func (_c *QuestionAnswerCreate) SetRawValue(v string) *QuestionAnswerCreate {
	_c.mutation.SetRawValue(v)
	return _c
}

// SetNillableRawValue sets the "raw_value" field if the given value is not nil.
func (_c *QuestionAnswerCreate) SetNillableRawValue(v *string) *QuestionAnswerCreate {
	if v != nil {
		_c.SetRawValue(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionAnswerCreate) SetID(v uuid.UUID) *QuestionAnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionAnswerCreate) SetNillableID(v *uuid.UUID) *QuestionAnswerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCheckup sets the "checkup" edge to the Checkup entity.
func (_c *QuestionAnswerCreate) SetCheckup(v *Checkup) *QuestionAnswerCreate {
	return _c.SetCheckupID(v.ID)
}

// SetQuestionID sets the "question" edge to the QuestionShare entity by ID.
func (_c *QuestionAnswerCreate) SetQuestionID(id uuid.UUID) *QuestionAnswerCreate {
	_c.mutation.SetQuestionID(id)
	return _c
}

// SetQuestion sets the "question" edge to the QuestionShare entity.
func (_c *QuestionAnswerCreate) SetQuestion(v *QuestionShare) *QuestionAnswerCreate {
	return _c.SetQuestionID(v.ID)
}

// SetOptionID sets the "option" edge to the QuestionOption entity by ID.
func (_c *QuestionAnswerCreate) SetOptionID(id uuid.UUID) *QuestionAnswerCreate {
	_c.mutation.SetOptionID(id)
	return _c
}

// SetOption sets the "option" edge to the QuestionOption entity.
func (_c *QuestionAnswerCreate) SetOption(v *QuestionOption) *QuestionAnswerCreate {
	return _c.SetOptionID(v.ID)
}

// Mutation returns the QuestionAnswerMutation object of the builder.
func (_c *QuestionAnswerCreate) Mutation() *QuestionAnswerMutation {
	return _c.mutation
}

// Save creates the QuestionAnswer in the database.
func (_c *QuestionAnswerCreate) Save(ctx context.Context) (*QuestionAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionAnswerCreate) SaveX(ctx context.Context) *QuestionAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionAnswerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionanswer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionanswer.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionAnswerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "QuestionAnswer.created_at"`)}
	}
	if _, ok := _c.mutation.CheckupID(); !ok {
		return &ValidationError{Name: "checkup_id", err: errors.New(`repo: missing required field "QuestionAnswer.checkup_id"`)}
	}
	if _, ok := _c.mutation.QuestionShareID(); !ok {
		return &ValidationError{Name: "question_share_id", err: errors.New(`repo: missing required field "QuestionAnswer.question_share_id"`)}
	}
	if _, ok := _c.mutation.QuestionOptionID(); !ok {
		return &ValidationError{Name: "question_option_id", err: errors.New(`repo: missing required field "QuestionAnswer.question_option_id"`)}
	}
	if len(_c.mutation.CheckupIDs()) == 0 {
		return &ValidationError{Name: "checkup", err: errors.New(`repo: missing required edge "QuestionAnswer.checkup"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`repo: missing required edge "QuestionAnswer.question"`)}
	}
	if len(_c.mutation.OptionIDs()) == 0 {
		return &ValidationError{Name: "option", err: errors.New(`repo: missing required edge "QuestionAnswer.option"`)}
	}
	return nil
}

func (_c *QuestionAnswerCreate) sqlSave(ctx context.Context) (*QuestionAnswer, error) {
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

func (_c *QuestionAnswerCreate) createSpec() (*QuestionAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionanswer.Table, sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionanswer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RawValue(); ok {
		_spec.SetField(questionanswer.FieldRawValue, field.TypeString, value)
		_node.RawValue = &value
	}
	if nodes := _c.mutation.CheckupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionanswer.CheckupTable,
			Columns: []string{questionanswer.CheckupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CheckupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionanswer.QuestionTable,
			Columns: []string{questionanswer.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionShareID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionanswer.OptionTable,
			Columns: []string{questionanswer.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionOptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionAnswer.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionAnswerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionAnswerCreate) OnConflict(opts ...sql.ConflictOption) *QuestionAnswerUpsertOne {
	_c.conflict = opts
	return &QuestionAnswerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionAnswer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionAnswerCreate) OnConflictColumns(columns ...string) *QuestionAnswerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionAnswerUpsertOne{
		create: _c,
	}
}

type (
	// QuestionAnswerUpsertOne is the builder for "upsert"-ing
	//  one QuestionAnswer node.
	QuestionAnswerUpsertOne struct {
		create *QuestionAnswerCreate
	}

	// QuestionAnswerUpsert is the "OnConflict" setter.
	QuestionAnswerUpsert struct {
		*sql.UpdateSet
	}
)

// SetCheckupID sets the "checkup_id" field.
func (u *QuestionAnswerUpsert) SetCheckupID(v uuid.UUID) *QuestionAnswerUpsert {
	u.Set(questionanswer.FieldCheckupID, v)
	return u
}

// UpdateCheckupID sets the "checkup_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsert) UpdateCheckupID() *QuestionAnswerUpsert {
	u.SetExcluded(questionanswer.FieldCheckupID)
	return u
}

// SetQuestionShareID sets the "question_share_id" field.
func (u *QuestionAnswerUpsert) SetQuestionShareID(v uuid.UUID) *QuestionAnswerUpsert {
	u.Set(questionanswer.FieldQuestionShareID, v)
	return u
}

// UpdateQuestionShareID sets the "question_share_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsert) UpdateQuestionShareID() *QuestionAnswerUpsert {
	u.SetExcluded(questionanswer.FieldQuestionShareID)
	return u
}

// SetQuestionOptionID sets the "question_option_id" field.
func (u *QuestionAnswerUpsert) SetQuestionOptionID(v uuid.UUID) *QuestionAnswerUpsert {
	u.Set(questionanswer.FieldQuestionOptionID, v)
	return u
}

// UpdateQuestionOptionID sets the "question_option_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsert) UpdateQuestionOptionID() *QuestionAnswerUpsert {
	u.SetExcluded(questionanswer.FieldQuestionOptionID)
	return u
}

// SetRawValue sets the "raw_value" field.
func (u *QuestionAnswerUpsert) SetRawValue(v string) *QuestionAnswerUpsert {
	u.Set(questionanswer.FieldRawValue, v)
	return u
}

// UpdateRawValue sets the "raw_value" field to the value that was provided on create.
func (u *QuestionAnswerUpsert) UpdateRawValue() *QuestionAnswerUpsert {
	u.SetExcluded(questionanswer.FieldRawValue)
	return u
}

// ClearRawValue clears the value of the "raw_value" field.
func (u *QuestionAnswerUpsert) ClearRawValue() *QuestionAnswerUpsert {
	u.SetNull(questionanswer.FieldRawValue)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuestionAnswer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionanswer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionAnswerUpsertOne) UpdateNewValues() *QuestionAnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(questionanswer.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(questionanswer.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionAnswer.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionAnswerUpsertOne) Ignore() *QuestionAnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionAnswerUpsertOne) DoNothing() *QuestionAnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionAnswerCreate.OnConflict
// documentation for more info.
func (u *QuestionAnswerUpsertOne) Update(set func(*QuestionAnswerUpsert)) *QuestionAnswerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionAnswerUpsert{UpdateSet: update})
	}))
	return u
}

// SetCheckupID sets the "checkup_id" field.
func (u *QuestionAnswerUpsertOne) SetCheckupID(v uuid.UUID) *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.SetCheckupID(v)
	})
}

// UpdateCheckupID sets the "checkup_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsertOne) UpdateCheckupID() *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.UpdateCheckupID()
	})
}

// SetQuestionShareID sets the "question_share_id" field.
func (u *QuestionAnswerUpsertOne) SetQuestionShareID(v uuid.UUID) *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.SetQuestionShareID(v)
	})
}

// UpdateQuestionShareID sets the "question_share_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsertOne) UpdateQuestionShareID() *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.UpdateQuestionShareID()
	})
}

// SetQuestionOptionID sets the "question_option_id" field.
func (u *QuestionAnswerUpsertOne) SetQuestionOptionID(v uuid.UUID) *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.SetQuestionOptionID(v)
	})
}

// UpdateQuestionOptionID sets the "question_option_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsertOne) UpdateQuestionOptionID() *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.UpdateQuestionOptionID()
	})
}

// SetRawValue sets the "raw_value" field.
func (u *QuestionAnswerUpsertOne) SetRawValue(v string) *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.SetRawValue(v)
	})
}

// UpdateRawValue sets the "raw_value" field to the value that was provided on create.
func (u *QuestionAnswerUpsertOne) UpdateRawValue() *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.UpdateRawValue()
	})
}

// ClearRawValue clears the value of the "raw_value" field.
func (u *QuestionAnswerUpsertOne) ClearRawValue() *QuestionAnswerUpsertOne {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.ClearRawValue()
	})
}

// Exec executes the query.
func (u *QuestionAnswerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionAnswerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionAnswerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionAnswerUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionAnswerUpsertOne.ID is not supported by MySQL driver. Use QuestionAnswerUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionAnswerUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionAnswerCreateBulk is the builder for creating many QuestionAnswer entities in bulk.
type QuestionAnswerCreateBulk struct {
	config
	err      error
	builders []*QuestionAnswerCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionAnswer entities in the database.
func (_c *QuestionAnswerCreateBulk) Save(ctx context.Context) ([]*QuestionAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionAnswerMutation)
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
func (_c *QuestionAnswerCreateBulk) SaveX(ctx context.Context) []*QuestionAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionAnswer.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionAnswerUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionAnswerCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionAnswerUpsertBulk {
	_c.conflict = opts
	return &QuestionAnswerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionAnswer.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionAnswerCreateBulk) OnConflictColumns(columns ...string) *QuestionAnswerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionAnswerUpsertBulk{
		create: _c,
	}
}

// QuestionAnswerUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionAnswer nodes.
type QuestionAnswerUpsertBulk struct {
	create *QuestionAnswerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionAnswer.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionanswer.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionAnswerUpsertBulk) UpdateNewValues() *QuestionAnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(questionanswer.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(questionanswer.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionAnswer.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionAnswerUpsertBulk) Ignore() *QuestionAnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionAnswerUpsertBulk) DoNothing() *QuestionAnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionAnswerCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionAnswerUpsertBulk) Update(set func(*QuestionAnswerUpsert)) *QuestionAnswerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionAnswerUpsert{UpdateSet: update})
	}))
	return u
}

// SetCheckupID sets the "checkup_id" field.
func (u *QuestionAnswerUpsertBulk) SetCheckupID(v uuid.UUID) *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.SetCheckupID(v)
	})
}

// UpdateCheckupID sets the "checkup_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsertBulk) UpdateCheckupID() *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.UpdateCheckupID()
	})
}

// SetQuestionShareID sets the "question_share_id" field.
func (u *QuestionAnswerUpsertBulk) SetQuestionShareID(v uuid.UUID) *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.SetQuestionShareID(v)
	})
}

// UpdateQuestionShareID sets the "question_share_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsertBulk) UpdateQuestionShareID() *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.UpdateQuestionShareID()
	})
}

// SetQuestionOptionID sets the "question_option_id" field.
func (u *QuestionAnswerUpsertBulk) SetQuestionOptionID(v uuid.UUID) *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.SetQuestionOptionID(v)
	})
}

// UpdateQuestionOptionID sets the "question_option_id" field to the value that was provided on create.
func (u *QuestionAnswerUpsertBulk) UpdateQuestionOptionID() *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.UpdateQuestionOptionID()
	})
}

// SetRawValue sets the "raw_value" field.
func (u *QuestionAnswerUpsertBulk) SetRawValue(v string) *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.SetRawValue(v)
	})
}

// UpdateRawValue sets the "raw_value" field to the value that was provided on create.
func (u *QuestionAnswerUpsertBulk) UpdateRawValue() *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.UpdateRawValue()
	})
}

// ClearRawValue clears the value of the "raw_value" field.
func (u *QuestionAnswerUpsertBulk) ClearRawValue() *QuestionAnswerUpsertBulk {
	return u.Update(func(s *QuestionAnswerUpsert) {
		s.ClearRawValue()
	})
}

// Exec executes the query.
func (u *QuestionAnswerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionAnswerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionAnswerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionAnswerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
