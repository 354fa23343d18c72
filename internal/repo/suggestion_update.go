// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicmedia"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realclinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
)

// SuggestionUpdate is the builder for updating Suggestion entities.
type SuggestionUpdate struct {
	config
	hooks    []Hook
	mutation *SuggestionMutation
}

// Where appends a list predicates to the SuggestionUpdate builder.
func (_u *SuggestionUpdate) Where(ps ...predicate.Suggestion) *SuggestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuggestionUpdate) SetUpdatedAt(v time.Time) *SuggestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SuggestionUpdate) SetDeletedAt(v time.Time) *SuggestionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableDeletedAt(v *time.Time) *SuggestionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SuggestionUpdate) ClearDeletedAt() *SuggestionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetInterpretationID sets the "interpretation_id" field.
func (_u *SuggestionUpdate) SetInterpretationID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetInterpretationID(v)
	return _u
}

// SetNillableInterpretationID sets the "interpretation_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableInterpretationID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetInterpretationID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *SuggestionUpdate) SetDoctorID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableDoctorID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (_u *SuggestionUpdate) ClearDoctorID() *SuggestionUpdate {
	_u.mutation.ClearDoctorID()
	return _u
}

// SetRealDoctorID sets the "real_doctor_id" field.
func (_u *SuggestionUpdate) SetRealDoctorID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetRealDoctorID(v)
	return _u
}

// SetNillableRealDoctorID sets the "real_doctor_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableRealDoctorID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetRealDoctorID(*v)
	}
	return _u
}

// ClearRealDoctorID clears the value of the "real_doctor_id" field.
func (_u *SuggestionUpdate) ClearRealDoctorID() *SuggestionUpdate {
	_u.mutation.ClearRealDoctorID()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *SuggestionUpdate) SetClinicID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableClinicID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *SuggestionUpdate) ClearClinicID() *SuggestionUpdate {
	_u.mutation.ClearClinicID()
	return _u
}

// SetRealClinicID sets the "real_clinic_id" field.
func (_u *SuggestionUpdate) SetRealClinicID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetRealClinicID(v)
	return _u
}

// SetNillableRealClinicID sets the "real_clinic_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableRealClinicID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetRealClinicID(*v)
	}
	return _u
}

// ClearRealClinicID clears the value of the "real_clinic_id" field.
func (_u *SuggestionUpdate) ClearRealClinicID() *SuggestionUpdate {
	_u.mutation.ClearRealClinicID()
	return _u
}

// SetClinicMediaID sets the "clinic_media_id" field.
func (_u *SuggestionUpdate) SetClinicMediaID(v uuid.UUID) *SuggestionUpdate {
	_u.mutation.SetClinicMediaID(v)
	return _u
}

// SetNillableClinicMediaID sets the "clinic_media_id" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableClinicMediaID(v *uuid.UUID) *SuggestionUpdate {
	if v != nil {
		_u.SetClinicMediaID(*v)
	}
	return _u
}

// ClearClinicMediaID clears the value of the "clinic_media_id" field.
func (_u *SuggestionUpdate) ClearClinicMediaID() *SuggestionUpdate {
	_u.mutation.ClearClinicMediaID()
	return _u
}

// SetNote sets the "note" field.
func (_u *SuggestionUpdate) SetNote(v string) *SuggestionUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *SuggestionUpdate) SetNillableNote(v *string) *SuggestionUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *SuggestionUpdate) ClearNote() *SuggestionUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetInterpretation sets the "interpretation" edge to the Interpretation entity.
func (_u *SuggestionUpdate) SetInterpretation(v *Interpretation) *SuggestionUpdate {
	return _u.SetInterpretationID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *SuggestionUpdate) SetDoctor(v *Doctor) *SuggestionUpdate {
	return _u.SetDoctorID(v.ID)
}

// SetRealDoctor sets the "real_doctor" edge to the RealDoctor entity.
func (_u *SuggestionUpdate) SetRealDoctor(v *RealDoctor) *SuggestionUpdate {
	return _u.SetRealDoctorID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *SuggestionUpdate) SetClinic(v *Clinic) *SuggestionUpdate {
	return _u.SetClinicID(v.ID)
}

// SetRealClinic sets the "real_clinic" edge to the RealClinic entity.
func (_u *SuggestionUpdate) SetRealClinic(v *RealClinic) *SuggestionUpdate {
	return _u.SetRealClinicID(v.ID)
}

// SetClinicMedia sets the "clinic_media" edge to the ClinicMedia entity.
func (_u *SuggestionUpdate) SetClinicMedia(v *ClinicMedia) *SuggestionUpdate {
	return _u.SetClinicMediaID(v.ID)
}

// Mutation returns the SuggestionMutation object of the builder.
func (_u *SuggestionUpdate) Mutation() *SuggestionMutation {
	return _u.mutation
}

// ClearInterpretation clears the "interpretation" edge to the Interpretation entity.
func (_u *SuggestionUpdate) ClearInterpretation() *SuggestionUpdate {
	_u.mutation.ClearInterpretation()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *SuggestionUpdate) ClearDoctor() *SuggestionUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearRealDoctor clears the "real_doctor" edge to the RealDoctor entity.
func (_u *SuggestionUpdate) ClearRealDoctor() *SuggestionUpdate {
	_u.mutation.ClearRealDoctor()
	return _u
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *SuggestionUpdate) ClearClinic() *SuggestionUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// ClearRealClinic clears the "real_clinic" edge to the RealClinic entity.
func (_u *SuggestionUpdate) ClearRealClinic() *SuggestionUpdate {
	_u.mutation.ClearRealClinic()
	return _u
}

// ClearClinicMedia clears the "clinic_media" edge to the ClinicMedia entity.
func (_u *SuggestionUpdate) ClearClinicMedia() *SuggestionUpdate {
	_u.mutation.ClearClinicMedia()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuggestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuggestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuggestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := suggestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuggestionUpdate) check() error {
	if _u.mutation.InterpretationCleared() && len(_u.mutation.InterpretationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Suggestion.interpretation"`)
	}
	return nil
}

func (_u *SuggestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(suggestion.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(suggestion.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(suggestion.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(suggestion.FieldNote, field.TypeString)
	}
	if _u.mutation.InterpretationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterpretationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RealDoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RealDoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RealClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RealClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClinicMediaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicMediaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuggestionUpdateOne is the builder for updating a single Suggestion entity.
type SuggestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuggestionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuggestionUpdateOne) SetUpdatedAt(v time.Time) *SuggestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SuggestionUpdateOne) SetDeletedAt(v time.Time) *SuggestionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableDeletedAt(v *time.Time) *SuggestionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SuggestionUpdateOne) ClearDeletedAt() *SuggestionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetInterpretationID sets the "interpretation_id" field.
func (_u *SuggestionUpdateOne) SetInterpretationID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetInterpretationID(v)
	return _u
}

// SetNillableInterpretationID sets the "interpretation_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableInterpretationID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetInterpretationID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *SuggestionUpdateOne) SetDoctorID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableDoctorID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (_u *SuggestionUpdateOne) ClearDoctorID() *SuggestionUpdateOne {
	_u.mutation.ClearDoctorID()
	return _u
}

// SetRealDoctorID sets the "real_doctor_id" field.
func (_u *SuggestionUpdateOne) SetRealDoctorID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetRealDoctorID(v)
	return _u
}

// SetNillableRealDoctorID sets the "real_doctor_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableRealDoctorID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetRealDoctorID(*v)
	}
	return _u
}

// ClearRealDoctorID clears the value of the "real_doctor_id" field.
func (_u *SuggestionUpdateOne) ClearRealDoctorID() *SuggestionUpdateOne {
	_u.mutation.ClearRealDoctorID()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *SuggestionUpdateOne) SetClinicID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableClinicID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *SuggestionUpdateOne) ClearClinicID() *SuggestionUpdateOne {
	_u.mutation.ClearClinicID()
	return _u
}

// SetRealClinicID sets the "real_clinic_id" field.
func (_u *SuggestionUpdateOne) SetRealClinicID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetRealClinicID(v)
	return _u
}

// SetNillableRealClinicID sets the "real_clinic_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableRealClinicID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetRealClinicID(*v)
	}
	return _u
}

// ClearRealClinicID clears the value of the "real_clinic_id" field.
func (_u *SuggestionUpdateOne) ClearRealClinicID() *SuggestionUpdateOne {
	_u.mutation.ClearRealClinicID()
	return _u
}

// SetClinicMediaID sets the "clinic_media_id" field.
func (_u *SuggestionUpdateOne) SetClinicMediaID(v uuid.UUID) *SuggestionUpdateOne {
	_u.mutation.SetClinicMediaID(v)
	return _u
}

// SetNillableClinicMediaID sets the "clinic_media_id" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableClinicMediaID(v *uuid.UUID) *SuggestionUpdateOne {
	if v != nil {
		_u.SetClinicMediaID(*v)
	}
	return _u
}

// ClearClinicMediaID clears the value of the "clinic_media_id" field.
func (_u *SuggestionUpdateOne) ClearClinicMediaID() *SuggestionUpdateOne {
	_u.mutation.ClearClinicMediaID()
	return _u
}

// SetNote sets the "note" field.
func (_u *SuggestionUpdateOne) SetNote(v string) *SuggestionUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *SuggestionUpdateOne) SetNillableNote(v *string) *SuggestionUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *SuggestionUpdateOne) ClearNote() *SuggestionUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetInterpretation sets the "interpretation" edge to the Interpretation entity.
func (_u *SuggestionUpdateOne) SetInterpretation(v *Interpretation) *SuggestionUpdateOne {
	return _u.SetInterpretationID(v.ID)
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *SuggestionUpdateOne) SetDoctor(v *Doctor) *SuggestionUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// SetRealDoctor sets the "real_doctor" edge to the RealDoctor entity.
func (_u *SuggestionUpdateOne) SetRealDoctor(v *RealDoctor) *SuggestionUpdateOne {
	return _u.SetRealDoctorID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *SuggestionUpdateOne) SetClinic(v *Clinic) *SuggestionUpdateOne {
	return _u.SetClinicID(v.ID)
}

// SetRealClinic sets the "real_clinic" edge to the RealClinic entity.
func (_u *SuggestionUpdateOne) SetRealClinic(v *RealClinic) *SuggestionUpdateOne {
	return _u.SetRealClinicID(v.ID)
}

// SetClinicMedia sets the "clinic_media" edge to the ClinicMedia entity.
func (_u *SuggestionUpdateOne) SetClinicMedia(v *ClinicMedia) *SuggestionUpdateOne {
	return _u.SetClinicMediaID(v.ID)
}

// Mutation returns the SuggestionMutation object of the builder.
func (_u *SuggestionUpdateOne) Mutation() *SuggestionMutation {
	return _u.mutation
}

// ClearInterpretation clears the "interpretation" edge to the Interpretation entity.
func (_u *SuggestionUpdateOne) ClearInterpretation() *SuggestionUpdateOne {
	_u.mutation.ClearInterpretation()
	return _u
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *SuggestionUpdateOne) ClearDoctor() *SuggestionUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearRealDoctor clears the "real_doctor" edge to the RealDoctor entity.
func (_u *SuggestionUpdateOne) ClearRealDoctor() *SuggestionUpdateOne {
	_u.mutation.ClearRealDoctor()
	return _u
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *SuggestionUpdateOne) ClearClinic() *SuggestionUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// ClearRealClinic clears the "real_clinic" edge to the RealClinic entity.
func (_u *SuggestionUpdateOne) ClearRealClinic() *SuggestionUpdateOne {
	_u.mutation.ClearRealClinic()
	return _u
}

// ClearClinicMedia clears the "clinic_media" edge to the ClinicMedia entity.
func (_u *SuggestionUpdateOne) ClearClinicMedia() *SuggestionUpdateOne {
	_u.mutation.ClearClinicMedia()
	return _u
}

// Where appends a list predicates to the SuggestionUpdate builder.
func (_u *SuggestionUpdateOne) Where(ps ...predicate.Suggestion) *SuggestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuggestionUpdateOne) Select(field string, fields ...string) *SuggestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Suggestion entity.
func (_u *SuggestionUpdateOne) Save(ctx context.Context) (*Suggestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionUpdateOne) SaveX(ctx context.Context) *Suggestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuggestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SuggestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := suggestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SuggestionUpdateOne) check() error {
	if _u.mutation.InterpretationCleared() && len(_u.mutation.InterpretationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Suggestion.interpretation"`)
	}
	return nil
}

func (_u *SuggestionUpdateOne) sqlSave(ctx context.Context) (_node *Suggestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(suggestion.Table, suggestion.Columns, sqlgraph.NewFieldSpec(suggestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Suggestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suggestion.FieldID)
		for _, f := range fields {
			if !suggestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != suggestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(suggestion.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(suggestion.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(suggestion.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(suggestion.FieldNote, field.TypeString)
	}
	if _u.mutation.InterpretationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InterpretationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RealDoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RealDoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RealClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RealClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClinicMediaCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicMediaIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Suggestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
