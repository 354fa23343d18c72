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
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
)

// PatientProfileUpdate is the builder for updating PatientProfile entities.
type PatientProfileUpdate struct {
	config
	hooks    []Hook
	mutation *PatientProfileMutation
}

// Where appends a list predicates to the PatientProfileUpdate builder.
func (_u *PatientProfileUpdate) Where(ps ...predicate.PatientProfile) *PatientProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientProfileUpdate) SetUpdatedAt(v time.Time) *PatientProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientProfileUpdate) SetDeletedAt(v time.Time) *PatientProfileUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableDeletedAt(v *time.Time) *PatientProfileUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientProfileUpdate) ClearDeletedAt() *PatientProfileUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientProfileUpdate) SetUserID(v uuid.UUID) *PatientProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableUserID(v *uuid.UUID) *PatientProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *PatientProfileUpdate) SetGender(v patientprofile.Gender) *PatientProfileUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableGender(v *patientprofile.Gender) *PatientProfileUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PatientProfileUpdate) ClearGender() *PatientProfileUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientProfileUpdate) SetBirthDate(v time.Time) *PatientProfileUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableBirthDate(v *time.Time) *PatientProfileUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PatientProfileUpdate) ClearBirthDate() *PatientProfileUpdate {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetHeightCm sets the "height_cm" field.
func (_u *PatientProfileUpdate) SetHeightCm(v float64) *PatientProfileUpdate {
	_u.mutation.ResetHeightCm()
	_u.mutation.SetHeightCm(v)
	return _u
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableHeightCm(v *float64) *PatientProfileUpdate {
	if v != nil {
		_u.SetHeightCm(*v)
	}
	return _u
}

// AddHeightCm adds value to the "height_cm" field.
func (_u *PatientProfileUpdate) AddHeightCm(v float64) *PatientProfileUpdate {
	_u.mutation.AddHeightCm(v)
	return _u
}

// ClearHeightCm clears the value of the "height_cm" field.
func (_u *PatientProfileUpdate) ClearHeightCm() *PatientProfileUpdate {
	_u.mutation.ClearHeightCm()
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *PatientProfileUpdate) SetWeightKg(v float64) *PatientProfileUpdate {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableWeightKg(v *float64) *PatientProfileUpdate {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *PatientProfileUpdate) AddWeightKg(v float64) *PatientProfileUpdate {
	_u.mutation.AddWeightKg(v)
	return _u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (_u *PatientProfileUpdate) ClearWeightKg() *PatientProfileUpdate {
	_u.mutation.ClearWeightKg()
	return _u
}

// SetMedicalHistory sets the "medical_history" field.
func (_u *PatientProfileUpdate) SetMedicalHistory(v string) *PatientProfileUpdate {
	_u.mutation.SetMedicalHistory(v)
	return _u
}

// SetNillableMedicalHistory sets the "medical_history" field if the given value is not nil.
func (_u *PatientProfileUpdate) SetNillableMedicalHistory(v *string) *PatientProfileUpdate {
	if v != nil {
		_u.SetMedicalHistory(*v)
	}
	return _u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (_u *PatientProfileUpdate) ClearMedicalHistory() *PatientProfileUpdate {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientProfileUpdate) SetUser(v *User) *PatientProfileUpdate {
	return _u.SetUserID(v.ID)
}

// AddSupervisorIDs adds the "supervisors" edge to the Supervisor entity by IDs.
func (_u *PatientProfileUpdate) AddSupervisorIDs(ids ...uuid.UUID) *PatientProfileUpdate {
	_u.mutation.AddSupervisorIDs(ids...)
	return _u
}

// AddSupervisors adds the "supervisors" edges to the Supervisor entity.
func (_u *PatientProfileUpdate) AddSupervisors(v ...*Supervisor) *PatientProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSupervisorIDs(ids...)
}

// AddCheckupIDs adds the "checkups" edge to the Checkup entity by IDs.
func (_u *PatientProfileUpdate) AddCheckupIDs(ids ...uuid.UUID) *PatientProfileUpdate {
	_u.mutation.AddCheckupIDs(ids...)
	return _u
}

// AddCheckups adds the "checkups" edges to the Checkup entity.
func (_u *PatientProfileUpdate) AddCheckups(v ...*Checkup) *PatientProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckupIDs(ids...)
}

// Mutation returns the PatientProfileMutation object of the builder.
func (_u *PatientProfileUpdate) Mutation() *PatientProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientProfileUpdate) ClearUser() *PatientProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearSupervisors clears all "supervisors" edges to the Supervisor entity.
func (_u *PatientProfileUpdate) ClearSupervisors() *PatientProfileUpdate {
	_u.mutation.ClearSupervisors()
	return _u
}

// RemoveSupervisorIDs removes the "supervisors" edge to Supervisor entities by IDs.
func (_u *PatientProfileUpdate) RemoveSupervisorIDs(ids ...uuid.UUID) *PatientProfileUpdate {
	_u.mutation.RemoveSupervisorIDs(ids...)
	return _u
}

// RemoveSupervisors removes "supervisors" edges to Supervisor entities.
func (_u *PatientProfileUpdate) RemoveSupervisors(v ...*Supervisor) *PatientProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSupervisorIDs(ids...)
}

// ClearCheckups clears all "checkups" edges to the Checkup entity.
func (_u *PatientProfileUpdate) ClearCheckups() *PatientProfileUpdate {
	_u.mutation.ClearCheckups()
	return _u
}

// RemoveCheckupIDs removes the "checkups" edge to Checkup entities by IDs.
func (_u *PatientProfileUpdate) RemoveCheckupIDs(ids ...uuid.UUID) *PatientProfileUpdate {
	_u.mutation.RemoveCheckupIDs(ids...)
	return _u
}

// RemoveCheckups removes "checkups" edges to Checkup entities.
func (_u *PatientProfileUpdate) RemoveCheckups(v ...*Checkup) *PatientProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckupIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientProfileUpdate) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := patientprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "PatientProfile.gender": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientProfile.user"`)
	}
	return nil
}

func (_u *PatientProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientprofile.Table, patientprofile.Columns, sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patientprofile.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patientprofile.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(patientprofile.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(patientprofile.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patientprofile.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(patientprofile.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.HeightCm(); ok {
		_spec.SetField(patientprofile.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeightCm(); ok {
		_spec.AddField(patientprofile.FieldHeightCm, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCmCleared() {
		_spec.ClearField(patientprofile.FieldHeightCm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(patientprofile.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(patientprofile.FieldWeightKg, field.TypeFloat64, value)
	}
	if _u.mutation.WeightKgCleared() {
		_spec.ClearField(patientprofile.FieldWeightKg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MedicalHistory(); ok {
		_spec.SetField(patientprofile.FieldMedicalHistory, field.TypeString, value)
	}
	if _u.mutation.MedicalHistoryCleared() {
		_spec.ClearField(patientprofile.FieldMedicalHistory, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patientprofile.UserTable,
			Columns: []string{patientprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patientprofile.UserTable,
			Columns: []string{patientprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SupervisorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.SupervisorsTable,
			Columns: []string{patientprofile.SupervisorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSupervisorsIDs(); len(nodes) > 0 && !_u.mutation.SupervisorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.SupervisorsTable,
			Columns: []string{patientprofile.SupervisorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupervisorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.SupervisorsTable,
			Columns: []string{patientprofile.SupervisorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.CheckupsTable,
			Columns: []string{patientprofile.CheckupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckupsIDs(); len(nodes) > 0 && !_u.mutation.CheckupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.CheckupsTable,
			Columns: []string{patientprofile.CheckupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.CheckupsTable,
			Columns: []string{patientprofile.CheckupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientProfileUpdateOne is the builder for updating a single PatientProfile entity.
type PatientProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientProfileUpdateOne) SetUpdatedAt(v time.Time) *PatientProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientProfileUpdateOne) SetDeletedAt(v time.Time) *PatientProfileUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientProfileUpdateOne) ClearDeletedAt() *PatientProfileUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientProfileUpdateOne) SetUserID(v uuid.UUID) *PatientProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *PatientProfileUpdateOne) SetGender(v patientprofile.Gender) *PatientProfileUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableGender(v *patientprofile.Gender) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PatientProfileUpdateOne) ClearGender() *PatientProfileUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientProfileUpdateOne) SetBirthDate(v time.Time) *PatientProfileUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableBirthDate(v *time.Time) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PatientProfileUpdateOne) ClearBirthDate() *PatientProfileUpdateOne {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetHeightCm sets the "height_cm" field.
func (_u *PatientProfileUpdateOne) SetHeightCm(v float64) *PatientProfileUpdateOne {
	_u.mutation.ResetHeightCm()
	_u.mutation.SetHeightCm(v)
	return _u
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableHeightCm(v *float64) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetHeightCm(*v)
	}
	return _u
}

// AddHeightCm adds value to the "height_cm" field.
func (_u *PatientProfileUpdateOne) AddHeightCm(v float64) *PatientProfileUpdateOne {
	_u.mutation.AddHeightCm(v)
	return _u
}

// ClearHeightCm clears the value of the "height_cm" field.
func (_u *PatientProfileUpdateOne) ClearHeightCm() *PatientProfileUpdateOne {
	_u.mutation.ClearHeightCm()
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *PatientProfileUpdateOne) SetWeightKg(v float64) *PatientProfileUpdateOne {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableWeightKg(v *float64) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *PatientProfileUpdateOne) AddWeightKg(v float64) *PatientProfileUpdateOne {
	_u.mutation.AddWeightKg(v)
	return _u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (_u *PatientProfileUpdateOne) ClearWeightKg() *PatientProfileUpdateOne {
	_u.mutation.ClearWeightKg()
	return _u
}

// SetMedicalHistory sets the "medical_history" field.
func (_u *PatientProfileUpdateOne) SetMedicalHistory(v string) *PatientProfileUpdateOne {
	_u.mutation.SetMedicalHistory(v)
	return _u
}

// SetNillableMedicalHistory sets the "medical_history" field if the given value is not nil.
func (_u *PatientProfileUpdateOne) SetNillableMedicalHistory(v *string) *PatientProfileUpdateOne {
	if v != nil {
		_u.SetMedicalHistory(*v)
	}
	return _u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (_u *PatientProfileUpdateOne) ClearMedicalHistory() *PatientProfileUpdateOne {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientProfileUpdateOne) SetUser(v *User) *PatientProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddSupervisorIDs adds the "supervisors" edge to the Supervisor entity by IDs.
func (_u *PatientProfileUpdateOne) AddSupervisorIDs(ids ...uuid.UUID) *PatientProfileUpdateOne {
	_u.mutation.AddSupervisorIDs(ids...)
	return _u
}

// AddSupervisors adds the "supervisors" edges to the Supervisor entity.
func (_u *PatientProfileUpdateOne) AddSupervisors(v ...*Supervisor) *PatientProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSupervisorIDs(ids...)
}

// AddCheckupIDs adds the "checkups" edge to the Checkup entity by IDs.
func (_u *PatientProfileUpdateOne) AddCheckupIDs(ids ...uuid.UUID) *PatientProfileUpdateOne {
	_u.mutation.AddCheckupIDs(ids...)
	return _u
}

// AddCheckups adds the "checkups" edges to the Checkup entity.
func (_u *PatientProfileUpdateOne) AddCheckups(v ...*Checkup) *PatientProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckupIDs(ids...)
}

// Mutation returns the PatientProfileMutation object of the builder.
func (_u *PatientProfileUpdateOne) Mutation() *PatientProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientProfileUpdateOne) ClearUser() *PatientProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearSupervisors clears all "supervisors" edges to the Supervisor entity.
func (_u *PatientProfileUpdateOne) ClearSupervisors() *PatientProfileUpdateOne {
	_u.mutation.ClearSupervisors()
	return _u
}

// RemoveSupervisorIDs removes the "supervisors" edge to Supervisor entities by IDs.
func (_u *PatientProfileUpdateOne) RemoveSupervisorIDs(ids ...uuid.UUID) *PatientProfileUpdateOne {
	_u.mutation.RemoveSupervisorIDs(ids...)
	return _u
}

// RemoveSupervisors removes "supervisors" edges to Supervisor entities.
func (_u *PatientProfileUpdateOne) RemoveSupervisors(v ...*Supervisor) *PatientProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSupervisorIDs(ids...)
}

// ClearCheckups clears all "checkups" edges to the Checkup entity.
func (_u *PatientProfileUpdateOne) ClearCheckups() *PatientProfileUpdateOne {
	_u.mutation.ClearCheckups()
	return _u
}

// RemoveCheckupIDs removes the "checkups" edge to Checkup entities by IDs.
func (_u *PatientProfileUpdateOne) RemoveCheckupIDs(ids ...uuid.UUID) *PatientProfileUpdateOne {
	_u.mutation.RemoveCheckupIDs(ids...)
	return _u
}

// RemoveCheckups removes "checkups" edges to Checkup entities.
func (_u *PatientProfileUpdateOne) RemoveCheckups(v ...*Checkup) *PatientProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckupIDs(ids...)
}

// Where appends a list predicates to the PatientProfileUpdate builder.
func (_u *PatientProfileUpdateOne) Where(ps ...predicate.PatientProfile) *PatientProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientProfileUpdateOne) Select(field string, fields ...string) *PatientProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientProfile entity.
func (_u *PatientProfileUpdateOne) Save(ctx context.Context) (*PatientProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientProfileUpdateOne) SaveX(ctx context.Context) *PatientProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := patientprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "PatientProfile.gender": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientProfile.user"`)
	}
	return nil
}

func (_u *PatientProfileUpdateOne) sqlSave(ctx context.Context) (_node *PatientProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientprofile.Table, patientprofile.Columns, sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientprofile.FieldID)
		for _, f := range fields {
			if !patientprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientprofile.FieldID {
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
		_spec.SetField(patientprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patientprofile.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patientprofile.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(patientprofile.FieldGender, field.TypeEnum, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(patientprofile.FieldGender, field.TypeEnum)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patientprofile.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(patientprofile.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.HeightCm(); ok {
		_spec.SetField(patientprofile.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeightCm(); ok {
		_spec.AddField(patientprofile.FieldHeightCm, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCmCleared() {
		_spec.ClearField(patientprofile.FieldHeightCm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(patientprofile.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(patientprofile.FieldWeightKg, field.TypeFloat64, value)
	}
	if _u.mutation.WeightKgCleared() {
		_spec.ClearField(patientprofile.FieldWeightKg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MedicalHistory(); ok {
		_spec.SetField(patientprofile.FieldMedicalHistory, field.TypeString, value)
	}
	if _u.mutation.MedicalHistoryCleared() {
		_spec.ClearField(patientprofile.FieldMedicalHistory, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patientprofile.UserTable,
			Columns: []string{patientprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patientprofile.UserTable,
			Columns: []string{patientprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SupervisorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.SupervisorsTable,
			Columns: []string{patientprofile.SupervisorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSupervisorsIDs(); len(nodes) > 0 && !_u.mutation.SupervisorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.SupervisorsTable,
			Columns: []string{patientprofile.SupervisorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SupervisorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.SupervisorsTable,
			Columns: []string{patientprofile.SupervisorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supervisor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.CheckupsTable,
			Columns: []string{patientprofile.CheckupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckupsIDs(); len(nodes) > 0 && !_u.mutation.CheckupsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.CheckupsTable,
			Columns: []string{patientprofile.CheckupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patientprofile.CheckupsTable,
			Columns: []string{patientprofile.CheckupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PatientProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
