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
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// ClinicCheckupCreate is the builder for creating a ClinicCheckup entity.
type ClinicCheckupCreate struct {
	config
	mutation *ClinicCheckupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicCheckupCreate) SetCreatedAt(v time.Time) *ClinicCheckupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableCreatedAt(v *time.Time) *ClinicCheckupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicCheckupCreate) SetUpdatedAt(v time.Time) *ClinicCheckupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableUpdatedAt(v *time.Time) *ClinicCheckupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ClinicCheckupCreate) SetDeletedAt(v time.Time) *ClinicCheckupCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableDeletedAt(v *time.Time) *ClinicCheckupCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ClinicCheckupCreate) SetClinicID(v uuid.UUID) *ClinicCheckupCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ClinicCheckupCreate) SetTitle(v string) *ClinicCheckupCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClinicCheckupCreate) SetDescription(v string) *ClinicCheckupCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableDescription(v *string) *ClinicCheckupCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRequiredTimeMinutes sets the "required_time_minutes" field.
func (_c *ClinicCheckupCreate) SetRequiredTimeMinutes(v int) *ClinicCheckupCreate {
	_c.mutation.SetRequiredTimeMinutes(v)
	return _c
}

// SetNillableRequiredTimeMinutes sets the "required_time_minutes" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableRequiredTimeMinutes(v *int) *ClinicCheckupCreate {
	if v != nil {
		_c.SetRequiredTimeMinutes(*v)
	}
	return _c
}

// SetRequiredAuth sets the "required_auth" field.
func (_c *ClinicCheckupCreate) SetRequiredAuth(v bool) *ClinicCheckupCreate {
	_c.mutation.SetRequiredAuth(v)
	return _c
}

// SetNillableRequiredAuth sets the "required_auth" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableRequiredAuth(v *bool) *ClinicCheckupCreate {
	if v != nil {
		_c.SetRequiredAuth(*v)
	}
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *ClinicCheckupCreate) SetQuestionCount(v int) *ClinicCheckupCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableQuestionCount(v *int) *ClinicCheckupCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetApprovers sets the "approvers" field.
func (_c *ClinicCheckupCreate) SetApprovers(v string) *ClinicCheckupCreate {
	_c.mutation.SetApprovers(v)
	return _c
}

// SetNillableApprovers sets the "approvers" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableApprovers(v *string) *ClinicCheckupCreate {
	if v != nil {
		_c.SetApprovers(*v)
	}
	return _c
}

// SetStartingQuestionID sets the "starting_question_id" field.
func (_c *ClinicCheckupCreate) SetStartingQuestionID(v uuid.UUID) *ClinicCheckupCreate {
	_c.mutation.SetStartingQuestionID(v)
	return _c
}

// SetNillableStartingQuestionID sets the "starting_question_id" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableStartingQuestionID(v *uuid.UUID) *ClinicCheckupCreate {
	if v != nil {
		_c.SetStartingQuestionID(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ClinicCheckupCreate) SetIsActive(v bool) *ClinicCheckupCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableIsActive(v *bool) *ClinicCheckupCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicCheckupCreate) SetID(v uuid.UUID) *ClinicCheckupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicCheckupCreate) SetNillableID(v *uuid.UUID) *ClinicCheckupCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *ClinicCheckupCreate) SetClinic(v *Clinic) *ClinicCheckupCreate {
	return _c.SetClinicID(v.ID)
}

// SetStartingQuestion sets the "starting_question" edge to the QuestionShare entity.
func (_c *ClinicCheckupCreate) SetStartingQuestion(v *QuestionShare) *ClinicCheckupCreate {
	return _c.SetStartingQuestionID(v.ID)
}

// AddAnalyzeIDs adds the "analyzes" edge to the CheckupAnalyze entity by IDs.
func (_c *ClinicCheckupCreate) AddAnalyzeIDs(ids ...uuid.UUID) *ClinicCheckupCreate {
	_c.mutation.AddAnalyzeIDs(ids...)
	return _c
}

// AddAnalyzes adds the "analyzes" edges to the CheckupAnalyze entity.
func (_c *ClinicCheckupCreate) AddAnalyzes(v ...*CheckupAnalyze) *ClinicCheckupCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalyzeIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Checkup entity by IDs.
func (_c *ClinicCheckupCreate) AddSessionIDs(ids ...uuid.UUID) *ClinicCheckupCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Checkup entity.
func (_c *ClinicCheckupCreate) AddSessions(v ...*Checkup) *ClinicCheckupCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the ClinicCheckupMutation object of the builder.
func (_c *ClinicCheckupCreate) Mutation() *ClinicCheckupMutation {
	return _c.mutation
}

// Save creates the ClinicCheckup in the database.
func (_c *ClinicCheckupCreate) Save(ctx context.Context) (*ClinicCheckup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicCheckupCreate) SaveX(ctx context.Context) *ClinicCheckup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCheckupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCheckupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicCheckupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cliniccheckup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cliniccheckup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RequiredTimeMinutes(); !ok {
		v := cliniccheckup.DefaultRequiredTimeMinutes
		_c.mutation.SetRequiredTimeMinutes(v)
	}
	if _, ok := _c.mutation.RequiredAuth(); !ok {
		v := cliniccheckup.DefaultRequiredAuth
		_c.mutation.SetRequiredAuth(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := cliniccheckup.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := cliniccheckup.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cliniccheckup.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicCheckupCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClinicCheckup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClinicCheckup.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "ClinicCheckup.clinic_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "ClinicCheckup.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := cliniccheckup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiredTimeMinutes(); !ok {
		return &ValidationError{Name: "required_time_minutes", err: errors.New(`repo: missing required field "ClinicCheckup.required_time_minutes"`)}
	}
	if v, ok := _c.mutation.RequiredTimeMinutes(); ok {
		if err := cliniccheckup.RequiredTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "required_time_minutes", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.required_time_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiredAuth(); !ok {
		return &ValidationError{Name: "required_auth", err: errors.New(`repo: missing required field "ClinicCheckup.required_auth"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`repo: missing required field "ClinicCheckup.question_count"`)}
	}
	if v, ok := _c.mutation.QuestionCount(); ok {
		if err := cliniccheckup.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.question_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ClinicCheckup.is_active"`)}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "ClinicCheckup.clinic"`)}
	}
	return nil
}

func (_c *ClinicCheckupCreate) sqlSave(ctx context.Context) (*ClinicCheckup, error) {
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

func (_c *ClinicCheckupCreate) createSpec() (*ClinicCheckup, *sqlgraph.CreateSpec) {
	var (
		_node = &ClinicCheckup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cliniccheckup.Table, sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cliniccheckup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cliniccheckup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(cliniccheckup.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(cliniccheckup.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(cliniccheckup.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.RequiredTimeMinutes(); ok {
		_spec.SetField(cliniccheckup.FieldRequiredTimeMinutes, field.TypeInt, value)
		_node.RequiredTimeMinutes = value
	}
	if value, ok := _c.mutation.RequiredAuth(); ok {
		_spec.SetField(cliniccheckup.FieldRequiredAuth, field.TypeBool, value)
		_node.RequiredAuth = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(cliniccheckup.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.Approvers(); ok {
		_spec.SetField(cliniccheckup.FieldApprovers, field.TypeString, value)
		_node.Approvers = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(cliniccheckup.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cliniccheckup.ClinicTable,
			Columns: []string{cliniccheckup.ClinicColumn},
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
	if nodes := _c.mutation.StartingQuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   cliniccheckup.StartingQuestionTable,
			Columns: []string{cliniccheckup.StartingQuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StartingQuestionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalyzesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.AnalyzesTable,
			Columns: []string{cliniccheckup.AnalyzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.SessionsTable,
			Columns: []string{cliniccheckup.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
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
//	client.ClinicCheckup.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicCheckupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicCheckupCreate) OnConflict(opts ...sql.ConflictOption) *ClinicCheckupUpsertOne {
	_c.conflict = opts
	return &ClinicCheckupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicCheckup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicCheckupCreate) OnConflictColumns(columns ...string) *ClinicCheckupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicCheckupUpsertOne{
		create: _c,
	}
}

type (
	// ClinicCheckupUpsertOne is the builder for "upsert"-ing
	//  one ClinicCheckup node.
	ClinicCheckupUpsertOne struct {
		create *ClinicCheckupCreate
	}

	// ClinicCheckupUpsert is the "OnConflict" setter.
	ClinicCheckupUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicCheckupUpsert) SetUpdatedAt(v time.Time) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateUpdatedAt() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicCheckupUpsert) SetDeletedAt(v time.Time) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateDeletedAt() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicCheckupUpsert) ClearDeletedAt() *ClinicCheckupUpsert {
	u.SetNull(cliniccheckup.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicCheckupUpsert) SetClinicID(v uuid.UUID) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateClinicID() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldClinicID)
	return u
}

// SetTitle sets the "title" field.
func (u *ClinicCheckupUpsert) SetTitle(v string) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateTitle() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ClinicCheckupUpsert) SetDescription(v string) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateDescription() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicCheckupUpsert) ClearDescription() *ClinicCheckupUpsert {
	u.SetNull(cliniccheckup.FieldDescription)
	return u
}

// SetRequiredTimeMinutes sets the "required_time_minutes" field.
func (u *ClinicCheckupUpsert) SetRequiredTimeMinutes(v int) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldRequiredTimeMinutes, v)
	return u
}

// UpdateRequiredTimeMinutes sets the "required_time_minutes" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateRequiredTimeMinutes() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldRequiredTimeMinutes)
	return u
}

// AddRequiredTimeMinutes adds v to the "required_time_minutes" field.
func (u *ClinicCheckupUpsert) AddRequiredTimeMinutes(v int) *ClinicCheckupUpsert {
	u.Add(cliniccheckup.FieldRequiredTimeMinutes, v)
	return u
}

// SetRequiredAuth sets the "required_auth" field.
func (u *ClinicCheckupUpsert) SetRequiredAuth(v bool) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldRequiredAuth, v)
	return u
}

// UpdateRequiredAuth sets the "required_auth" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateRequiredAuth() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldRequiredAuth)
	return u
}

// SetQuestionCount sets the "question_count" field.
func (u *ClinicCheckupUpsert) SetQuestionCount(v int) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldQuestionCount, v)
	return u
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateQuestionCount() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldQuestionCount)
	return u
}

// AddQuestionCount adds v to the "question_count" field.
func (u *ClinicCheckupUpsert) AddQuestionCount(v int) *ClinicCheckupUpsert {
	u.Add(cliniccheckup.FieldQuestionCount, v)
	return u
}

// SetApprovers sets the "approvers" field.
func (u *ClinicCheckupUpsert) SetApprovers(v string) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldApprovers, v)
	return u
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateApprovers() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldApprovers)
	return u
}

// ClearApprovers clears the value of the "approvers" field.
func (u *ClinicCheckupUpsert) ClearApprovers() *ClinicCheckupUpsert {
	u.SetNull(cliniccheckup.FieldApprovers)
	return u
}

// SetStartingQuestionID sets the "starting_question_id" field.
func (u *ClinicCheckupUpsert) SetStartingQuestionID(v uuid.UUID) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldStartingQuestionID, v)
	return u
}

// UpdateStartingQuestionID sets the "starting_question_id" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateStartingQuestionID() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldStartingQuestionID)
	return u
}

// ClearStartingQuestionID clears the value of the "starting_question_id" field.
func (u *ClinicCheckupUpsert) ClearStartingQuestionID() *ClinicCheckupUpsert {
	u.SetNull(cliniccheckup.FieldStartingQuestionID)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ClinicCheckupUpsert) SetIsActive(v bool) *ClinicCheckupUpsert {
	u.Set(cliniccheckup.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicCheckupUpsert) UpdateIsActive() *ClinicCheckupUpsert {
	u.SetExcluded(cliniccheckup.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClinicCheckup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cliniccheckup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicCheckupUpsertOne) UpdateNewValues() *ClinicCheckupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cliniccheckup.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(cliniccheckup.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicCheckup.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicCheckupUpsertOne) Ignore() *ClinicCheckupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicCheckupUpsertOne) DoNothing() *ClinicCheckupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicCheckupCreate.OnConflict
// documentation for more info.
func (u *ClinicCheckupUpsertOne) Update(set func(*ClinicCheckupUpsert)) *ClinicCheckupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicCheckupUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicCheckupUpsertOne) SetUpdatedAt(v time.Time) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateUpdatedAt() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicCheckupUpsertOne) SetDeletedAt(v time.Time) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateDeletedAt() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicCheckupUpsertOne) ClearDeletedAt() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicCheckupUpsertOne) SetClinicID(v uuid.UUID) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateClinicID() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateClinicID()
	})
}

// SetTitle sets the "title" field.
func (u *ClinicCheckupUpsertOne) SetTitle(v string) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateTitle() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicCheckupUpsertOne) SetDescription(v string) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateDescription() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicCheckupUpsertOne) ClearDescription() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.ClearDescription()
	})
}

// SetRequiredTimeMinutes sets the "required_time_minutes" field.
func (u *ClinicCheckupUpsertOne) SetRequiredTimeMinutes(v int) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetRequiredTimeMinutes(v)
	})
}

// AddRequiredTimeMinutes adds v to the "required_time_minutes" field.
func (u *ClinicCheckupUpsertOne) AddRequiredTimeMinutes(v int) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.AddRequiredTimeMinutes(v)
	})
}

// UpdateRequiredTimeMinutes sets the "required_time_minutes" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateRequiredTimeMinutes() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateRequiredTimeMinutes()
	})
}

// SetRequiredAuth sets the "required_auth" field.
func (u *ClinicCheckupUpsertOne) SetRequiredAuth(v bool) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetRequiredAuth(v)
	})
}

// UpdateRequiredAuth sets the "required_auth" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateRequiredAuth() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateRequiredAuth()
	})
}

// SetQuestionCount sets the "question_count" field.
func (u *ClinicCheckupUpsertOne) SetQuestionCount(v int) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetQuestionCount(v)
	})
}

// AddQuestionCount adds v to the "question_count" field.
func (u *ClinicCheckupUpsertOne) AddQuestionCount(v int) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.AddQuestionCount(v)
	})
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateQuestionCount() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateQuestionCount()
	})
}

// SetApprovers sets the "approvers" field.
func (u *ClinicCheckupUpsertOne) SetApprovers(v string) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetApprovers(v)
	})
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateApprovers() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateApprovers()
	})
}

// ClearApprovers clears the value of the "approvers" field.
func (u *ClinicCheckupUpsertOne) ClearApprovers() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.ClearApprovers()
	})
}

// SetStartingQuestionID sets the "starting_question_id" field.
func (u *ClinicCheckupUpsertOne) SetStartingQuestionID(v uuid.UUID) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetStartingQuestionID(v)
	})
}

// UpdateStartingQuestionID sets the "starting_question_id" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateStartingQuestionID() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateStartingQuestionID()
	})
}

// ClearStartingQuestionID clears the value of the "starting_question_id" field.
func (u *ClinicCheckupUpsertOne) ClearStartingQuestionID() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.ClearStartingQuestionID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ClinicCheckupUpsertOne) SetIsActive(v bool) *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicCheckupUpsertOne) UpdateIsActive() *ClinicCheckupUpsertOne {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ClinicCheckupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicCheckupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicCheckupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicCheckupUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicCheckupUpsertOne.ID is not supported by MySQL driver. Use ClinicCheckupUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicCheckupUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicCheckupCreateBulk is the builder for creating many ClinicCheckup entities in bulk.
type ClinicCheckupCreateBulk struct {
	config
	err      error
	builders []*ClinicCheckupCreate
	conflict []sql.ConflictOption
}

// Save creates the ClinicCheckup entities in the database.
func (_c *ClinicCheckupCreateBulk) Save(ctx context.Context) ([]*ClinicCheckup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClinicCheckup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicCheckupMutation)
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
func (_c *ClinicCheckupCreateBulk) SaveX(ctx context.Context) []*ClinicCheckup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCheckupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCheckupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicCheckup.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicCheckupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicCheckupCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicCheckupUpsertBulk {
	_c.conflict = opts
	return &ClinicCheckupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicCheckup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicCheckupCreateBulk) OnConflictColumns(columns ...string) *ClinicCheckupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicCheckupUpsertBulk{
		create: _c,
	}
}

// ClinicCheckupUpsertBulk is the builder for "upsert"-ing
// a bulk of ClinicCheckup nodes.
type ClinicCheckupUpsertBulk struct {
	create *ClinicCheckupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClinicCheckup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cliniccheckup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicCheckupUpsertBulk) UpdateNewValues() *ClinicCheckupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cliniccheckup.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(cliniccheckup.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicCheckup.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicCheckupUpsertBulk) Ignore() *ClinicCheckupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicCheckupUpsertBulk) DoNothing() *ClinicCheckupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicCheckupCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicCheckupUpsertBulk) Update(set func(*ClinicCheckupUpsert)) *ClinicCheckupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicCheckupUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicCheckupUpsertBulk) SetUpdatedAt(v time.Time) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateUpdatedAt() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicCheckupUpsertBulk) SetDeletedAt(v time.Time) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateDeletedAt() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicCheckupUpsertBulk) ClearDeletedAt() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicCheckupUpsertBulk) SetClinicID(v uuid.UUID) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateClinicID() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateClinicID()
	})
}

// SetTitle sets the "title" field.
func (u *ClinicCheckupUpsertBulk) SetTitle(v string) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateTitle() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicCheckupUpsertBulk) SetDescription(v string) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateDescription() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicCheckupUpsertBulk) ClearDescription() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.ClearDescription()
	})
}

// SetRequiredTimeMinutes sets the "required_time_minutes" field.
func (u *ClinicCheckupUpsertBulk) SetRequiredTimeMinutes(v int) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetRequiredTimeMinutes(v)
	})
}

// AddRequiredTimeMinutes adds v to the "required_time_minutes" field.
func (u *ClinicCheckupUpsertBulk) AddRequiredTimeMinutes(v int) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.AddRequiredTimeMinutes(v)
	})
}

// UpdateRequiredTimeMinutes sets the "required_time_minutes" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateRequiredTimeMinutes() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateRequiredTimeMinutes()
	})
}

// SetRequiredAuth sets the "required_auth" field.
func (u *ClinicCheckupUpsertBulk) SetRequiredAuth(v bool) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetRequiredAuth(v)
	})
}

// UpdateRequiredAuth sets the "required_auth" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateRequiredAuth() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateRequiredAuth()
	})
}

// SetQuestionCount sets the "question_count" field.
func (u *ClinicCheckupUpsertBulk) SetQuestionCount(v int) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetQuestionCount(v)
	})
}

// AddQuestionCount adds v to the "question_count" field.
func (u *ClinicCheckupUpsertBulk) AddQuestionCount(v int) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.AddQuestionCount(v)
	})
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateQuestionCount() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateQuestionCount()
	})
}

// SetApprovers sets the "approvers" field.
func (u *ClinicCheckupUpsertBulk) SetApprovers(v string) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetApprovers(v)
	})
}

// UpdateApprovers sets the "approvers" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateApprovers() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateApprovers()
	})
}

// ClearApprovers clears the value of the "approvers" field.
func (u *ClinicCheckupUpsertBulk) ClearApprovers() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.ClearApprovers()
	})
}

// SetStartingQuestionID sets the "starting_question_id" field.
func (u *ClinicCheckupUpsertBulk) SetStartingQuestionID(v uuid.UUID) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetStartingQuestionID(v)
	})
}

// UpdateStartingQuestionID sets the "starting_question_id" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateStartingQuestionID() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateStartingQuestionID()
	})
}

// ClearStartingQuestionID clears the value of the "starting_question_id" field.
func (u *ClinicCheckupUpsertBulk) ClearStartingQuestionID() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.ClearStartingQuestionID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ClinicCheckupUpsertBulk) SetIsActive(v bool) *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicCheckupUpsertBulk) UpdateIsActive() *ClinicCheckupUpsertBulk {
	return u.Update(func(s *ClinicCheckupUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ClinicCheckupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicCheckupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicCheckupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicCheckupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
