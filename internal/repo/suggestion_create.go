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
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realclinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
)

// SuggestionCreate is the builder for creating a Suggestion entity.
type SuggestionCreate struct {
	config
	mutation *SuggestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SuggestionCreate) SetCreatedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableCreatedAt(v *time.Time) *SuggestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SuggestionCreate) SetUpdatedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableUpdatedAt(v *time.Time) *SuggestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SuggestionCreate) SetDeletedAt(v time.Time) *SuggestionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableDeletedAt(v *time.Time) *SuggestionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetInterpretationID sets the "interpretation_id" field.
func (_c *SuggestionCreate) SetInterpretationID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetInterpretationID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *SuggestionCreate) SetDoctorID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableDoctorID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetDoctorID(*v)
	}
	return _c
}

// SetRealDoctorID sets the "real_doctor_id" field.
func (_c *SuggestionCreate) SetRealDoctorID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetRealDoctorID(v)
	return _c
}

// SetNillableRealDoctorID sets the "real_doctor_id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableRealDoctorID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetRealDoctorID(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *SuggestionCreate) SetClinicID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableClinicID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetClinicID(*v)
	}
	return _c
}

// SetRealClinicID sets the "real_clinic_id" field.
func (_c *SuggestionCreate) SetRealClinicID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetRealClinicID(v)
	return _c
}

// SetNillableRealClinicID sets the "real_clinic_id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableRealClinicID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetRealClinicID(*v)
	}
	return _c
}

// SetClinicMediaID sets the "clinic_media_id" field.
func (_c *SuggestionCreate) SetClinicMediaID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetClinicMediaID(v)
	return _c
}

// SetNillableClinicMediaID sets the "clinic_media_id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableClinicMediaID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetClinicMediaID(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *SuggestionCreate) SetNote(v string) *SuggestionCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableNote(v *string) *SuggestionCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SuggestionCreate) SetID(v uuid.UUID) *SuggestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SuggestionCreate) SetNillableID(v *uuid.UUID) *SuggestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInterpretation sets the "interpretation" edge to the Interpretation entity.
func (_c *SuggestionCreate) SetInterpretation(v *Interpretation) *SuggestionCreate {
	return _c.SetInterpretationID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *SuggestionCreate) SetDoctor(v *Doctor) *SuggestionCreate {
	return _c.SetDoctorID(v.ID)
}

// SetRealDoctor sets the "real_doctor" edge to the RealDoctor entity.
func (_c *SuggestionCreate) SetRealDoctor(v *RealDoctor) *SuggestionCreate {
	return _c.SetRealDoctorID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *SuggestionCreate) SetClinic(v *Clinic) *SuggestionCreate {
	return _c.SetClinicID(v.ID)
}

// SetRealClinic sets the "real_clinic" edge to the RealClinic entity.
func (_c *SuggestionCreate) SetRealClinic(v *RealClinic) *SuggestionCreate {
	return _c.SetRealClinicID(v.ID)
}

// SetClinicMedia sets the "clinic_media" edge to the ClinicMedia entity.
func (_c *SuggestionCreate) SetClinicMedia(v *ClinicMedia) *SuggestionCreate {
	return _c.SetClinicMediaID(v.ID)
}

// Mutation returns the SuggestionMutation object of the builder.
func (_c *SuggestionCreate) Mutation() *SuggestionMutation {
	return _c.mutation
}

// Save creates the Suggestion in the database.
func (_c *SuggestionCreate) Save(ctx context.Context) (*Suggestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuggestionCreate) SaveX(ctx context.Context) *Suggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuggestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := suggestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := suggestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := suggestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuggestionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Suggestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Suggestion.updated_at"`)}
	}
	if _, ok := _c.mutation.InterpretationID(); !ok {
		return &ValidationError{Name: "interpretation_id", err: errors.New(`repo: missing required field "Suggestion.interpretation_id"`)}
	}
	if len(_c.mutation.InterpretationIDs()) == 0 {
		return &ValidationError{Name: "interpretation", err: errors.New(`repo: missing required edge "Suggestion.interpretation"`)}
	}
	return nil
}

func (_c *SuggestionCreate) sqlSave(ctx context.Context) (*Suggestion, error) {
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

func (_c *SuggestionCreate) createSpec() (*Suggestion, *sqlgraph.CreateSpec) {
	var (
		_node = &Suggestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suggestion.Table, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(suggestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(suggestion.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(suggestion.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	if nodes := _c.mutation.InterpretationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   suggestion.InterpretationTable,
			Columns: []string{suggestion.InterpretationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interpretation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InterpretationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   suggestion.DoctorTable,
			Columns: []string{suggestion.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DoctorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RealDoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   suggestion.RealDoctorTable,
			Columns: []string{suggestion.RealDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(realdoctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RealDoctorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   suggestion.ClinicTable,
			Columns: []string{suggestion.ClinicColumn},
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
	if nodes := _c.mutation.RealClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   suggestion.RealClinicTable,
			Columns: []string{suggestion.RealClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(realclinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RealClinicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClinicMediaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   suggestion.ClinicMediaTable,
			Columns: []string{suggestion.ClinicMediaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicmedia.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClinicMediaID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Suggestion.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SuggestionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SuggestionCreate) OnConflict(opts ...sql.ConflictOption) *SuggestionUpsertOne {
	_c.conflict = opts
	return &SuggestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Suggestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SuggestionCreate) OnConflictColumns(columns ...string) *SuggestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SuggestionUpsertOne{
		create: _c,
	}
}

type (
	// SuggestionUpsertOne is the builder for "upsert"-ing
	//  one Suggestion node.
	SuggestionUpsertOne struct {
		create *SuggestionCreate
	}

	// SuggestionUpsert is the "OnConflict" setter.
	SuggestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SuggestionUpsert) SetUpdatedAt(v time.Time) *SuggestionUpsert {
	u.Set(suggestion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateUpdatedAt() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *SuggestionUpsert) SetDeletedAt(v time.Time) *SuggestionUpsert {
	u.Set(suggestion.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateDeletedAt() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SuggestionUpsert) ClearDeletedAt() *SuggestionUpsert {
	u.SetNull(suggestion.FieldDeletedAt)
	return u
}

// SetInterpretationID sets the "interpretation_id" field.
func (u *SuggestionUpsert) SetInterpretationID(v uuid.UUID) *SuggestionUpsert {
	u.Set(suggestion.FieldInterpretationID, v)
	return u
}

// UpdateInterpretationID sets the "interpretation_id" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateInterpretationID() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldInterpretationID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *SuggestionUpsert) SetDoctorID(v uuid.UUID) *SuggestionUpsert {
	u.Set(suggestion.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateDoctorID() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldDoctorID)
	return u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (u *SuggestionUpsert) ClearDoctorID() *SuggestionUpsert {
	u.SetNull(suggestion.FieldDoctorID)
	return u
}

// SetRealDoctorID sets the "real_doctor_id" field.
func (u *SuggestionUpsert) SetRealDoctorID(v uuid.UUID) *SuggestionUpsert {
	u.Set(suggestion.FieldRealDoctorID, v)
	return u
}

// UpdateRealDoctorID sets the "real_doctor_id" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateRealDoctorID() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldRealDoctorID)
	return u
}

// ClearRealDoctorID clears the value of the "real_doctor_id" field.
func (u *SuggestionUpsert) ClearRealDoctorID() *SuggestionUpsert {
	u.SetNull(suggestion.FieldRealDoctorID)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *SuggestionUpsert) SetClinicID(v uuid.UUID) *SuggestionUpsert {
	u.Set(suggestion.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateClinicID() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldClinicID)
	return u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *SuggestionUpsert) ClearClinicID() *SuggestionUpsert {
	u.SetNull(suggestion.FieldClinicID)
	return u
}

// SetRealClinicID sets the "real_clinic_id" field.
func (u *SuggestionUpsert) SetRealClinicID(v uuid.UUID) *SuggestionUpsert {
	u.Set(suggestion.FieldRealClinicID, v)
	return u
}

// UpdateRealClinicID sets the "real_clinic_id" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateRealClinicID() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldRealClinicID)
	return u
}

// ClearRealClinicID clears the value of the "real_clinic_id" field.
func (u *SuggestionUpsert) ClearRealClinicID() *SuggestionUpsert {
	u.SetNull(suggestion.FieldRealClinicID)
	return u
}

// SetClinicMediaID sets the "clinic_media_id" field.
func (u *SuggestionUpsert) SetClinicMediaID(v uuid.UUID) *SuggestionUpsert {
	u.Set(suggestion.FieldClinicMediaID, v)
	return u
}

// UpdateClinicMediaID sets the "clinic_media_id" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateClinicMediaID() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldClinicMediaID)
	return u
}

// ClearClinicMediaID clears the value of the "clinic_media_id" field.
func (u *SuggestionUpsert) ClearClinicMediaID() *SuggestionUpsert {
	u.SetNull(suggestion.FieldClinicMediaID)
	return u
}

// SetNote sets the "note" field.
func (u *SuggestionUpsert) SetNote(v string) *SuggestionUpsert {
	u.Set(suggestion.FieldNote, v)
	return u
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *SuggestionUpsert) UpdateNote() *SuggestionUpsert {
	u.SetExcluded(suggestion.FieldNote)
	return u
}

// ClearNote clears the value of the "note" field.
func (u *SuggestionUpsert) ClearNote() *SuggestionUpsert {
	u.SetNull(suggestion.FieldNote)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Suggestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(suggestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SuggestionUpsertOne) UpdateNewValues() *SuggestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(suggestion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(suggestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Suggestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SuggestionUpsertOne) Ignore() *SuggestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SuggestionUpsertOne) DoNothing() *SuggestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SuggestionCreate.OnConflict
// documentation for more info.
func (u *SuggestionUpsertOne) Update(set func(*SuggestionUpsert)) *SuggestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SuggestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SuggestionUpsertOne) SetUpdatedAt(v time.Time) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateUpdatedAt() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *SuggestionUpsertOne) SetDeletedAt(v time.Time) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateDeletedAt() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SuggestionUpsertOne) ClearDeletedAt() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetInterpretationID sets the "interpretation_id" field.
func (u *SuggestionUpsertOne) SetInterpretationID(v uuid.UUID) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetInterpretationID(v)
	})
}

// UpdateInterpretationID sets the "interpretation_id" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateInterpretationID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateInterpretationID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *SuggestionUpsertOne) SetDoctorID(v uuid.UUID) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateDoctorID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateDoctorID()
	})
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (u *SuggestionUpsertOne) ClearDoctorID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearDoctorID()
	})
}

// SetRealDoctorID sets the "real_doctor_id" field.
func (u *SuggestionUpsertOne) SetRealDoctorID(v uuid.UUID) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetRealDoctorID(v)
	})
}

// UpdateRealDoctorID sets the "real_doctor_id" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateRealDoctorID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateRealDoctorID()
	})
}

// ClearRealDoctorID clears the value of the "real_doctor_id" field.
func (u *SuggestionUpsertOne) ClearRealDoctorID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearRealDoctorID()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *SuggestionUpsertOne) SetClinicID(v uuid.UUID) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateClinicID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateClinicID()
	})
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *SuggestionUpsertOne) ClearClinicID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearClinicID()
	})
}

// SetRealClinicID sets the "real_clinic_id" field.
func (u *SuggestionUpsertOne) SetRealClinicID(v uuid.UUID) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetRealClinicID(v)
	})
}

// UpdateRealClinicID sets the "real_clinic_id" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateRealClinicID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateRealClinicID()
	})
}

// ClearRealClinicID clears the value of the "real_clinic_id" field.
func (u *SuggestionUpsertOne) ClearRealClinicID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearRealClinicID()
	})
}

// SetClinicMediaID sets the "clinic_media_id" field.
func (u *SuggestionUpsertOne) SetClinicMediaID(v uuid.UUID) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetClinicMediaID(v)
	})
}

// UpdateClinicMediaID sets the "clinic_media_id" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateClinicMediaID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateClinicMediaID()
	})
}

// ClearClinicMediaID clears the value of the "clinic_media_id" field.
func (u *SuggestionUpsertOne) ClearClinicMediaID() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearClinicMediaID()
	})
}

// SetNote sets the "note" field.
func (u *SuggestionUpsertOne) SetNote(v string) *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *SuggestionUpsertOne) UpdateNote() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *SuggestionUpsertOne) ClearNote() *SuggestionUpsertOne {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearNote()
	})
}

// Exec executes the query.
func (u *SuggestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SuggestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SuggestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SuggestionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SuggestionUpsertOne.ID is not supported by MySQL driver. Use SuggestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SuggestionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SuggestionCreateBulk is the builder for creating many Suggestion entities in bulk.
type SuggestionCreateBulk struct {
	config
	err      error
	builders []*SuggestionCreate
	conflict []sql.ConflictOption
}

// Save creates the Suggestion entities in the database.
func (_c *SuggestionCreateBulk) Save(ctx context.Context) ([]*Suggestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Suggestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuggestionMutation)
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
func (_c *SuggestionCreateBulk) SaveX(ctx context.Context) []*Suggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Suggestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SuggestionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SuggestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SuggestionUpsertBulk {
	_c.conflict = opts
	return &SuggestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Suggestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SuggestionCreateBulk) OnConflictColumns(columns ...string) *SuggestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SuggestionUpsertBulk{
		create: _c,
	}
}

// SuggestionUpsertBulk is the builder for "upsert"-ing
// a bulk of Suggestion nodes.
type SuggestionUpsertBulk struct {
	create *SuggestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Suggestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(suggestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SuggestionUpsertBulk) UpdateNewValues() *SuggestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(suggestion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(suggestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Suggestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SuggestionUpsertBulk) Ignore() *SuggestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SuggestionUpsertBulk) DoNothing() *SuggestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SuggestionCreateBulk.OnConflict
// documentation for more info.
func (u *SuggestionUpsertBulk) Update(set func(*SuggestionUpsert)) *SuggestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SuggestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SuggestionUpsertBulk) SetUpdatedAt(v time.Time) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateUpdatedAt() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *SuggestionUpsertBulk) SetDeletedAt(v time.Time) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateDeletedAt() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *SuggestionUpsertBulk) ClearDeletedAt() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetInterpretationID sets the "interpretation_id" field.
func (u *SuggestionUpsertBulk) SetInterpretationID(v uuid.UUID) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetInterpretationID(v)
	})
}

// UpdateInterpretationID sets the "interpretation_id" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateInterpretationID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateInterpretationID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *SuggestionUpsertBulk) SetDoctorID(v uuid.UUID) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateDoctorID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateDoctorID()
	})
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (u *SuggestionUpsertBulk) ClearDoctorID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearDoctorID()
	})
}

// SetRealDoctorID sets the "real_doctor_id" field.
func (u *SuggestionUpsertBulk) SetRealDoctorID(v uuid.UUID) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetRealDoctorID(v)
	})
}

// UpdateRealDoctorID sets the "real_doctor_id" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateRealDoctorID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateRealDoctorID()
	})
}

// ClearRealDoctorID clears the value of the "real_doctor_id" field.
func (u *SuggestionUpsertBulk) ClearRealDoctorID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearRealDoctorID()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *SuggestionUpsertBulk) SetClinicID(v uuid.UUID) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateClinicID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateClinicID()
	})
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *SuggestionUpsertBulk) ClearClinicID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearClinicID()
	})
}

// SetRealClinicID sets the "real_clinic_id" field.
func (u *SuggestionUpsertBulk) SetRealClinicID(v uuid.UUID) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetRealClinicID(v)
	})
}

// UpdateRealClinicID sets the "real_clinic_id" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateRealClinicID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateRealClinicID()
	})
}

// ClearRealClinicID clears the value of the "real_clinic_id" field.
func (u *SuggestionUpsertBulk) ClearRealClinicID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearRealClinicID()
	})
}

// SetClinicMediaID sets the "clinic_media_id" field.
func (u *SuggestionUpsertBulk) SetClinicMediaID(v uuid.UUID) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetClinicMediaID(v)
	})
}

// UpdateClinicMediaID sets the "clinic_media_id" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateClinicMediaID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateClinicMediaID()
	})
}

// ClearClinicMediaID clears the value of the "clinic_media_id" field.
func (u *SuggestionUpsertBulk) ClearClinicMediaID() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearClinicMediaID()
	})
}

// SetNote sets the "note" field.
func (u *SuggestionUpsertBulk) SetNote(v string) *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *SuggestionUpsertBulk) UpdateNote() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *SuggestionUpsertBulk) ClearNote() *SuggestionUpsertBulk {
	return u.Update(func(s *SuggestionUpsert) {
		s.ClearNote()
	})
}

// Exec executes the query.
func (u *SuggestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SuggestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SuggestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SuggestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
