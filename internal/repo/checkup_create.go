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
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
)

// CheckupCreate is the builder for creating a Checkup entity.
type CheckupCreate struct {
	config
	mutation *CheckupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CheckupCreate) SetCreatedAt(v time.Time) *CheckupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableCreatedAt(v *time.Time) *CheckupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CheckupCreate) SetUpdatedAt(v time.Time) *CheckupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableUpdatedAt(v *time.Time) *CheckupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CheckupCreate) SetDeletedAt(v time.Time) *CheckupCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableDeletedAt(v *time.Time) *CheckupCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (_c *CheckupCreate) SetPatientProfileID(v uuid.UUID) *CheckupCreate {
	_c.mutation.SetPatientProfileID(v)
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *CheckupCreate) SetClinicID(v uuid.UUID) *CheckupCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableClinicID(v *uuid.UUID) *CheckupCreate {
	if v != nil {
		_c.SetClinicID(*v)
	}
	return _c
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (_c *CheckupCreate) SetClinicCheckupID(v uuid.UUID) *CheckupCreate {
	_c.mutation.SetClinicCheckupID(v)
	return _c
}

// SetNillableClinicCheckupID sets the "clinic_checkup_id" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableClinicCheckupID(v *uuid.UUID) *CheckupCreate {
	if v != nil {
		_c.SetClinicCheckupID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *CheckupCreate) SetTitle(v string) *CheckupCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CheckupCreate) SetDescription(v string) *CheckupCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableDescription(v *string) *CheckupCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *CheckupCreate) SetExecutedAt(v time.Time) *CheckupCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableExecutedAt(v *time.Time) *CheckupCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetIsCompleted sets the "is_completed" field.
func (_c *CheckupCreate) SetIsCompleted(v bool) *CheckupCreate {
	_c.mutation.SetIsCompleted(v)
	return _c
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableIsCompleted(v *bool) *CheckupCreate {
	if v != nil {
		_c.SetIsCompleted(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CheckupCreate) SetID(v uuid.UUID) *CheckupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CheckupCreate) SetNillableID(v *uuid.UUID) *CheckupCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatientID sets the "patient" edge to the PatientProfile entity by ID.
func (_c *CheckupCreate) SetPatientID(id uuid.UUID) *CheckupCreate {
	_c.mutation.SetPatientID(id)
	return _c
}

// SetPatient sets the "patient" edge to the PatientProfile entity.
func (_c *CheckupCreate) SetPatient(v *PatientProfile) *CheckupCreate {
	return _c.SetPatientID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *CheckupCreate) SetClinic(v *Clinic) *CheckupCreate {
	return _c.SetClinicID(v.ID)
}

// SetTemplateID sets the "template" edge to the ClinicCheckup entity by ID.
func (_c *CheckupCreate) SetTemplateID(id uuid.UUID) *CheckupCreate {
	_c.mutation.SetTemplateID(id)
	return _c
}

// SetNillableTemplateID sets the "template" edge to the ClinicCheckup entity by ID if the given value is not nil.
func (_c *CheckupCreate) SetNillableTemplateID(id *uuid.UUID) *CheckupCreate {
	if id != nil {
		_c = _c.SetTemplateID(*id)
	}
	return _c
}

// SetTemplate sets the "template" edge to the ClinicCheckup entity.
func (_c *CheckupCreate) SetTemplate(v *ClinicCheckup) *CheckupCreate {
	return _c.SetTemplateID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuestionAnswer entity by IDs.
func (_c *CheckupCreate) AddAnswerIDs(ids ...uuid.UUID) *CheckupCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the QuestionAnswer entity.
func (_c *CheckupCreate) AddAnswers(v ...*QuestionAnswer) *CheckupCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the CheckupMutation object of the builder.
func (_c *CheckupCreate) Mutation() *CheckupMutation {
	return _c.mutation
}

// Save creates the Checkup in the database.
func (_c *CheckupCreate) Save(ctx context.Context) (*Checkup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckupCreate) SaveX(ctx context.Context) *Checkup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checkup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := checkup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		v := checkup.DefaultExecutedAt()
		_c.mutation.SetExecutedAt(v)
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		v := checkup.DefaultIsCompleted
		_c.mutation.SetIsCompleted(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := checkup.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckupCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Checkup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Checkup.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientProfileID(); !ok {
		return &ValidationError{Name: "patient_profile_id", err: errors.New(`repo: missing required field "Checkup.patient_profile_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Checkup.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := checkup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Checkup.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		return &ValidationError{Name: "executed_at", err: errors.New(`repo: missing required field "Checkup.executed_at"`)}
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		return &ValidationError{Name: "is_completed", err: errors.New(`repo: missing required field "Checkup.is_completed"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "Checkup.patient"`)}
	}
	return nil
}

func (_c *CheckupCreate) sqlSave(ctx context.Context) (*Checkup, error) {
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

func (_c *CheckupCreate) createSpec() (*Checkup, *sqlgraph.CreateSpec) {
	var (
		_node = &Checkup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkup.Table, sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checkup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(checkup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(checkup.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(checkup.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(checkup.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(checkup.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = value
	}
	if value, ok := _c.mutation.IsCompleted(); ok {
		_spec.SetField(checkup.FieldIsCompleted, field.TypeBool, value)
		_node.IsCompleted = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.PatientTable,
			Columns: []string{checkup.PatientColumn},
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
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   checkup.ClinicTable,
			Columns: []string{checkup.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClinicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.TemplateTable,
			Columns: []string{checkup.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClinicCheckupID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkup.AnswersTable,
			Columns: []string{checkup.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID),
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
//	client.Checkup.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckupCreate) OnConflict(opts ...sql.ConflictOption) *CheckupUpsertOne {
	_c.conflict = opts
	return &CheckupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckupCreate) OnConflictColumns(columns ...string) *CheckupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckupUpsertOne{
		create: _c,
	}
}

type (
	// CheckupUpsertOne is the builder for "upsert"-ing
	//  one Checkup node.
	CheckupUpsertOne struct {
		create *CheckupCreate
	}

	// CheckupUpsert is the "OnConflict" setter.
	CheckupUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckupUpsert) SetUpdatedAt(v time.Time) *CheckupUpsert {
	u.Set(checkup.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckupUpsert) UpdateUpdatedAt() *CheckupUpsert {
	u.SetExcluded(checkup.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CheckupUpsert) SetDeletedAt(v time.Time) *CheckupUpsert {
	u.Set(checkup.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CheckupUpsert) UpdateDeletedAt() *CheckupUpsert {
	u.SetExcluded(checkup.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CheckupUpsert) ClearDeletedAt() *CheckupUpsert {
	u.SetNull(checkup.FieldDeletedAt)
	return u
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (u *CheckupUpsert) SetPatientProfileID(v uuid.UUID) *CheckupUpsert {
	u.Set(checkup.FieldPatientProfileID, v)
	return u
}

// UpdatePatientProfileID sets the "patient_profile_id" field to the value that was provided on create.
func (u *CheckupUpsert) UpdatePatientProfileID() *CheckupUpsert {
	u.SetExcluded(checkup.FieldPatientProfileID)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *CheckupUpsert) SetClinicID(v uuid.UUID) *CheckupUpsert {
	u.Set(checkup.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *CheckupUpsert) UpdateClinicID() *CheckupUpsert {
	u.SetExcluded(checkup.FieldClinicID)
	return u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *CheckupUpsert) ClearClinicID() *CheckupUpsert {
	u.SetNull(checkup.FieldClinicID)
	return u
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (u *CheckupUpsert) SetClinicCheckupID(v uuid.UUID) *CheckupUpsert {
	u.Set(checkup.FieldClinicCheckupID, v)
	return u
}

// UpdateClinicCheckupID sets the "clinic_checkup_id" field to the value that was provided on create.
func (u *CheckupUpsert) UpdateClinicCheckupID() *CheckupUpsert {
	u.SetExcluded(checkup.FieldClinicCheckupID)
	return u
}

// ClearClinicCheckupID clears the value of the "clinic_checkup_id" field.
func (u *CheckupUpsert) ClearClinicCheckupID() *CheckupUpsert {
	u.SetNull(checkup.FieldClinicCheckupID)
	return u
}

// SetTitle sets the "title" field.
func (u *CheckupUpsert) SetTitle(v string) *CheckupUpsert {
	u.Set(checkup.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CheckupUpsert) UpdateTitle() *CheckupUpsert {
	u.SetExcluded(checkup.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *CheckupUpsert) SetDescription(v string) *CheckupUpsert {
	u.Set(checkup.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CheckupUpsert) UpdateDescription() *CheckupUpsert {
	u.SetExcluded(checkup.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CheckupUpsert) ClearDescription() *CheckupUpsert {
	u.SetNull(checkup.FieldDescription)
	return u
}

// SetExecutedAt sets the "executed_at" field.
func (u *CheckupUpsert) SetExecutedAt(v time.Time) *CheckupUpsert {
	u.Set(checkup.FieldExecutedAt, v)
	return u
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *CheckupUpsert) UpdateExecutedAt() *CheckupUpsert {
	u.SetExcluded(checkup.FieldExecutedAt)
	return u
}

// SetIsCompleted sets the "is_completed" field.
func (u *CheckupUpsert) SetIsCompleted(v bool) *CheckupUpsert {
	u.Set(checkup.FieldIsCompleted, v)
	return u
}

// UpdateIsCompleted sets the "is_completed" field to the value that was provided on create.
func (u *CheckupUpsert) UpdateIsCompleted() *CheckupUpsert {
	u.SetExcluded(checkup.FieldIsCompleted)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Checkup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckupUpsertOne) UpdateNewValues() *CheckupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(checkup.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(checkup.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkup.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CheckupUpsertOne) Ignore() *CheckupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckupUpsertOne) DoNothing() *CheckupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckupCreate.OnConflict
// documentation for more info.
func (u *CheckupUpsertOne) Update(set func(*CheckupUpsert)) *CheckupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckupUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckupUpsertOne) SetUpdatedAt(v time.Time) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdateUpdatedAt() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CheckupUpsertOne) SetDeletedAt(v time.Time) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdateDeletedAt() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CheckupUpsertOne) ClearDeletedAt() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (u *CheckupUpsertOne) SetPatientProfileID(v uuid.UUID) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetPatientProfileID(v)
	})
}

// UpdatePatientProfileID sets the "patient_profile_id" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdatePatientProfileID() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdatePatientProfileID()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *CheckupUpsertOne) SetClinicID(v uuid.UUID) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdateClinicID() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateClinicID()
	})
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *CheckupUpsertOne) ClearClinicID() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.ClearClinicID()
	})
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (u *CheckupUpsertOne) SetClinicCheckupID(v uuid.UUID) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetClinicCheckupID(v)
	})
}

// UpdateClinicCheckupID sets the "clinic_checkup_id" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdateClinicCheckupID() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateClinicCheckupID()
	})
}

// ClearClinicCheckupID clears the value of the "clinic_checkup_id" field.
func (u *CheckupUpsertOne) ClearClinicCheckupID() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.ClearClinicCheckupID()
	})
}

// SetTitle sets the "title" field.
func (u *CheckupUpsertOne) SetTitle(v string) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdateTitle() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CheckupUpsertOne) SetDescription(v string) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdateDescription() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CheckupUpsertOne) ClearDescription() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.ClearDescription()
	})
}

// SetExecutedAt sets the "executed_at" field.
func (u *CheckupUpsertOne) SetExecutedAt(v time.Time) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetExecutedAt(v)
	})
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdateExecutedAt() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateExecutedAt()
	})
}

// SetIsCompleted sets the "is_completed" field.
func (u *CheckupUpsertOne) SetIsCompleted(v bool) *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.SetIsCompleted(v)
	})
}

// UpdateIsCompleted sets the "is_completed" field to the value that was provided on create.
func (u *CheckupUpsertOne) UpdateIsCompleted() *CheckupUpsertOne {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateIsCompleted()
	})
}

// Exec executes the query.
func (u *CheckupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CheckupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CheckupUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CheckupUpsertOne.ID is not supported by MySQL driver. Use CheckupUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CheckupUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CheckupCreateBulk is the builder for creating many Checkup entities in bulk.
type CheckupCreateBulk struct {
	config
	err      error
	builders []*CheckupCreate
	conflict []sql.ConflictOption
}

// Save creates the Checkup entities in the database.
func (_c *CheckupCreateBulk) Save(ctx context.Context) ([]*Checkup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Checkup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckupMutation)
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
func (_c *CheckupCreateBulk) SaveX(ctx context.Context) []*Checkup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Checkup.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CheckupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CheckupCreateBulk) OnConflict(opts ...sql.ConflictOption) *CheckupUpsertBulk {
	_c.conflict = opts
	return &CheckupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Checkup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CheckupCreateBulk) OnConflictColumns(columns ...string) *CheckupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CheckupUpsertBulk{
		create: _c,
	}
}

// CheckupUpsertBulk is the builder for "upsert"-ing
// a bulk of Checkup nodes.
type CheckupUpsertBulk struct {
	create *CheckupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Checkup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(checkup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CheckupUpsertBulk) UpdateNewValues() *CheckupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(checkup.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(checkup.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Checkup.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CheckupUpsertBulk) Ignore() *CheckupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CheckupUpsertBulk) DoNothing() *CheckupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CheckupCreateBulk.OnConflict
// documentation for more info.
func (u *CheckupUpsertBulk) Update(set func(*CheckupUpsert)) *CheckupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CheckupUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CheckupUpsertBulk) SetUpdatedAt(v time.Time) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdateUpdatedAt() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *CheckupUpsertBulk) SetDeletedAt(v time.Time) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdateDeletedAt() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *CheckupUpsertBulk) ClearDeletedAt() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (u *CheckupUpsertBulk) SetPatientProfileID(v uuid.UUID) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetPatientProfileID(v)
	})
}

// UpdatePatientProfileID sets the "patient_profile_id" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdatePatientProfileID() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdatePatientProfileID()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *CheckupUpsertBulk) SetClinicID(v uuid.UUID) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdateClinicID() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateClinicID()
	})
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *CheckupUpsertBulk) ClearClinicID() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.ClearClinicID()
	})
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (u *CheckupUpsertBulk) SetClinicCheckupID(v uuid.UUID) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetClinicCheckupID(v)
	})
}

// UpdateClinicCheckupID sets the "clinic_checkup_id" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdateClinicCheckupID() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateClinicCheckupID()
	})
}

// ClearClinicCheckupID clears the value of the "clinic_checkup_id" field.
func (u *CheckupUpsertBulk) ClearClinicCheckupID() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.ClearClinicCheckupID()
	})
}

// SetTitle sets the "title" field.
func (u *CheckupUpsertBulk) SetTitle(v string) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdateTitle() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CheckupUpsertBulk) SetDescription(v string) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdateDescription() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CheckupUpsertBulk) ClearDescription() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.ClearDescription()
	})
}

// SetExecutedAt sets the "executed_at" field.
func (u *CheckupUpsertBulk) SetExecutedAt(v time.Time) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetExecutedAt(v)
	})
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdateExecutedAt() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateExecutedAt()
	})
}

// SetIsCompleted sets the "is_completed" field.
func (u *CheckupUpsertBulk) SetIsCompleted(v bool) *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.SetIsCompleted(v)
	})
}

// UpdateIsCompleted sets the "is_completed" field to the value that was provided on create.
func (u *CheckupUpsertBulk) UpdateIsCompleted() *CheckupUpsertBulk {
	return u.Update(func(s *CheckupUpsert) {
		s.UpdateIsCompleted()
	})
}

// Exec executes the query.
func (u *CheckupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CheckupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CheckupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CheckupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
