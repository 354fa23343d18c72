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
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
)

// PatientProfileCreate is the builder for creating a PatientProfile entity.
type PatientProfileCreate struct {
	config
	mutation *PatientProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientProfileCreate) SetCreatedAt(v time.Time) *PatientProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableCreatedAt(v *time.Time) *PatientProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientProfileCreate) SetUpdatedAt(v time.Time) *PatientProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableUpdatedAt(v *time.Time) *PatientProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientProfileCreate) SetDeletedAt(v time.Time) *PatientProfileCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableDeletedAt(v *time.Time) *PatientProfileCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientProfileCreate) SetUserID(v uuid.UUID) *PatientProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *PatientProfileCreate) SetGender(v patientprofile.Gender) *PatientProfileCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableGender(v *patientprofile.Gender) *PatientProfileCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PatientProfileCreate) SetBirthDate(v time.Time) *PatientProfileCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableBirthDate(v *time.Time) *PatientProfileCreate {
	if v != nil {
		_c.SetBirthDate(*v)
	}
	return _c
}

// SetHeightCm sets the "height_cm" field.
func (_c *PatientProfileCreate) SetHeightCm(v float64) *PatientProfileCreate {
	_c.mutation.SetHeightCm(v)
	return _c
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableHeightCm(v *float64) *PatientProfileCreate {
	if v != nil {
		_c.SetHeightCm(*v)
	}
	return _c
}

// SetWeightKg sets the "weight_kg" field.
func (_c *PatientProfileCreate) SetWeightKg(v float64) *PatientProfileCreate {
	_c.mutation.SetWeightKg(v)
	return _c
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableWeightKg(v *float64) *PatientProfileCreate {
	if v != nil {
		_c.SetWeightKg(*v)
	}
	return _c
}

// SetMedicalHistory sets the "medical_history" field.
func (_c *PatientProfileCreate) SetMedicalHistory(v string) *PatientProfileCreate {
	_c.mutation.SetMedicalHistory(v)
	return _c
}

// SetNillableMedicalHistory sets the "medical_history" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableMedicalHistory(v *string) *PatientProfileCreate {
	if v != nil {
		_c.SetMedicalHistory(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientProfileCreate) SetID(v uuid.UUID) *PatientProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientProfileCreate) SetNillableID(v *uuid.UUID) *PatientProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PatientProfileCreate) SetUser(v *User) *PatientProfileCreate {
	return _c.SetUserID(v.ID)
}

// AddSupervisorIDs adds the "supervisors" edge to the Supervisor entity by IDs.
func (_c *PatientProfileCreate) AddSupervisorIDs(ids ...uuid.UUID) *PatientProfileCreate {
	_c.mutation.AddSupervisorIDs(ids...)
	return _c
}

// AddSupervisors adds the "supervisors" edges to the Supervisor entity.
func (_c *PatientProfileCreate) AddSupervisors(v ...*Supervisor) *PatientProfileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSupervisorIDs(ids...)
}

// AddCheckupIDs adds the "checkups" edge to the Checkup entity by IDs.
func (_c *PatientProfileCreate) AddCheckupIDs(ids ...uuid.UUID) *PatientProfileCreate {
	_c.mutation.AddCheckupIDs(ids...)
	return _c
}

// AddCheckups adds the "checkups" edges to the Checkup entity.
func (_c *PatientProfileCreate) AddCheckups(v ...*Checkup) *PatientProfileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckupIDs(ids...)
}

// Mutation returns the PatientProfileMutation object of the builder.
func (_c *PatientProfileCreate) Mutation() *PatientProfileMutation {
	return _c.mutation
}

// Save creates the PatientProfile in the database.
func (_c *PatientProfileCreate) Save(ctx context.Context) (*PatientProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientProfileCreate) SaveX(ctx context.Context) *PatientProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PatientProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "PatientProfile.user_id"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := patientprofile.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "PatientProfile.gender": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "PatientProfile.user"`)}
	}
	return nil
}

func (_c *PatientProfileCreate) sqlSave(ctx context.Context) (*PatientProfile, error) {
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

func (_c *PatientProfileCreate) createSpec() (*PatientProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientprofile.Table, sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patientprofile.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(patientprofile.FieldGender, field.TypeEnum, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(patientprofile.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = &value
	}
	if value, ok := _c.mutation.HeightCm(); ok {
		_spec.SetField(patientprofile.FieldHeightCm, field.TypeFloat64, value)
		_node.HeightCm = &value
	}
	if value, ok := _c.mutation.WeightKg(); ok {
		_spec.SetField(patientprofile.FieldWeightKg, field.TypeFloat64, value)
		_node.WeightKg = &value
	}
	if value, ok := _c.mutation.MedicalHistory(); ok {
		_spec.SetField(patientprofile.FieldMedicalHistory, field.TypeString, value)
		_node.MedicalHistory = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SupervisorsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckupsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientProfileCreate) OnConflict(opts ...sql.ConflictOption) *PatientProfileUpsertOne {
	_c.conflict = opts
	return &PatientProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientProfileCreate) OnConflictColumns(columns ...string) *PatientProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientProfileUpsertOne{
		create: _c,
	}
}

type (
	// PatientProfileUpsertOne is the builder for "upsert"-ing
	//  one PatientProfile node.
	PatientProfileUpsertOne struct {
		create *PatientProfileCreate
	}

	// PatientProfileUpsert is the "OnConflict" setter.
	PatientProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientProfileUpsert) SetUpdatedAt(v time.Time) *PatientProfileUpsert {
	u.Set(patientprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientProfileUpsert) UpdateUpdatedAt() *PatientProfileUpsert {
	u.SetExcluded(patientprofile.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientProfileUpsert) SetDeletedAt(v time.Time) *PatientProfileUpsert {
	u.Set(patientprofile.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientProfileUpsert) UpdateDeletedAt() *PatientProfileUpsert {
	u.SetExcluded(patientprofile.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientProfileUpsert) ClearDeletedAt() *PatientProfileUpsert {
	u.SetNull(patientprofile.FieldDeletedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientProfileUpsert) SetUserID(v uuid.UUID) *PatientProfileUpsert {
	u.Set(patientprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientProfileUpsert) UpdateUserID() *PatientProfileUpsert {
	u.SetExcluded(patientprofile.FieldUserID)
	return u
}

// SetGender sets the "gender" field.
func (u *PatientProfileUpsert) SetGender(v patientprofile.Gender) *PatientProfileUpsert {
	u.Set(patientprofile.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientProfileUpsert) UpdateGender() *PatientProfileUpsert {
	u.SetExcluded(patientprofile.FieldGender)
	return u
}

// ClearGender clears the value of the "gender" field.
func (u *PatientProfileUpsert) ClearGender() *PatientProfileUpsert {
	u.SetNull(patientprofile.FieldGender)
	return u
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientProfileUpsert) SetBirthDate(v time.Time) *PatientProfileUpsert {
	u.Set(patientprofile.FieldBirthDate, v)
	return u
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientProfileUpsert) UpdateBirthDate() *PatientProfileUpsert {
	u.SetExcluded(patientprofile.FieldBirthDate)
	return u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientProfileUpsert) ClearBirthDate() *PatientProfileUpsert {
	u.SetNull(patientprofile.FieldBirthDate)
	return u
}

// SetHeightCm sets the "height_cm" field.
func (u *PatientProfileUpsert) SetHeightCm(v float64) *PatientProfileUpsert {
	u.Set(patientprofile.FieldHeightCm, v)
	return u
}

// UpdateHeightCm sets the "height_cm" field to the value that was provided on create.
func (u *PatientProfileUpsert) UpdateHeightCm() *PatientProfileUpsert {
	u.SetExcluded(patientprofile.FieldHeightCm)
	return u
}

// AddHeightCm adds v to the "height_cm" field.
func (u *PatientProfileUpsert) AddHeightCm(v float64) *PatientProfileUpsert {
	u.Add(patientprofile.FieldHeightCm, v)
	return u
}

// ClearHeightCm clears the value of the "height_cm" field.
func (u *PatientProfileUpsert) ClearHeightCm() *PatientProfileUpsert {
	u.SetNull(patientprofile.FieldHeightCm)
	return u
}

// SetWeightKg sets the "weight_kg" field.
func (u *PatientProfileUpsert) SetWeightKg(v float64) *PatientProfileUpsert {
	u.Set(patientprofile.FieldWeightKg, v)
	return u
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *PatientProfileUpsert) UpdateWeightKg() *PatientProfileUpsert {
	u.SetExcluded(patientprofile.FieldWeightKg)
	return u
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *PatientProfileUpsert) AddWeightKg(v float64) *PatientProfileUpsert {
	u.Add(patientprofile.FieldWeightKg, v)
	return u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *PatientProfileUpsert) ClearWeightKg() *PatientProfileUpsert {
	u.SetNull(patientprofile.FieldWeightKg)
	return u
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientProfileUpsert) SetMedicalHistory(v string) *PatientProfileUpsert {
	u.Set(patientprofile.FieldMedicalHistory, v)
	return u
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientProfileUpsert) UpdateMedicalHistory() *PatientProfileUpsert {
	u.SetExcluded(patientprofile.FieldMedicalHistory)
	return u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientProfileUpsert) ClearMedicalHistory() *PatientProfileUpsert {
	u.SetNull(patientprofile.FieldMedicalHistory)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientProfileUpsertOne) UpdateNewValues() *PatientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientProfileUpsertOne) Ignore() *PatientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientProfileUpsertOne) DoNothing() *PatientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientProfileCreate.OnConflict
// documentation for more info.
func (u *PatientProfileUpsertOne) Update(set func(*PatientProfileUpsert)) *PatientProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientProfileUpsertOne) SetUpdatedAt(v time.Time) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientProfileUpsertOne) UpdateUpdatedAt() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientProfileUpsertOne) SetDeletedAt(v time.Time) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientProfileUpsertOne) UpdateDeletedAt() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientProfileUpsertOne) ClearDeletedAt() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientProfileUpsertOne) SetUserID(v uuid.UUID) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientProfileUpsertOne) UpdateUserID() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetGender sets the "gender" field.
func (u *PatientProfileUpsertOne) SetGender(v patientprofile.Gender) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientProfileUpsertOne) UpdateGender() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *PatientProfileUpsertOne) ClearGender() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearGender()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientProfileUpsertOne) SetBirthDate(v time.Time) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientProfileUpsertOne) UpdateBirthDate() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateBirthDate()
	})
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientProfileUpsertOne) ClearBirthDate() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearBirthDate()
	})
}

// SetHeightCm sets the "height_cm" field.
func (u *PatientProfileUpsertOne) SetHeightCm(v float64) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetHeightCm(v)
	})
}

// AddHeightCm adds v to the "height_cm" field.
func (u *PatientProfileUpsertOne) AddHeightCm(v float64) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.AddHeightCm(v)
	})
}

// UpdateHeightCm sets the "height_cm" field to the value that was provided on create.
func (u *PatientProfileUpsertOne) UpdateHeightCm() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateHeightCm()
	})
}

// ClearHeightCm clears the value of the "height_cm" field.
func (u *PatientProfileUpsertOne) ClearHeightCm() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearHeightCm()
	})
}

// SetWeightKg sets the "weight_kg" field.
func (u *PatientProfileUpsertOne) SetWeightKg(v float64) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetWeightKg(v)
	})
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *PatientProfileUpsertOne) AddWeightKg(v float64) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.AddWeightKg(v)
	})
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *PatientProfileUpsertOne) UpdateWeightKg() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateWeightKg()
	})
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *PatientProfileUpsertOne) ClearWeightKg() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearWeightKg()
	})
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientProfileUpsertOne) SetMedicalHistory(v string) *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetMedicalHistory(v)
	})
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientProfileUpsertOne) UpdateMedicalHistory() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateMedicalHistory()
	})
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientProfileUpsertOne) ClearMedicalHistory() *PatientProfileUpsertOne {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearMedicalHistory()
	})
}

// Exec executes the query.
func (u *PatientProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientProfileUpsertOne.ID is not supported by MySQL driver. Use PatientProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientProfileCreateBulk is the builder for creating many PatientProfile entities in bulk.
type PatientProfileCreateBulk struct {
	config
	err      error
	builders []*PatientProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientProfile entities in the database.
func (_c *PatientProfileCreateBulk) Save(ctx context.Context) ([]*PatientProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientProfileMutation)
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
func (_c *PatientProfileCreateBulk) SaveX(ctx context.Context) []*PatientProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientProfileUpsertBulk {
	_c.conflict = opts
	return &PatientProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientProfileCreateBulk) OnConflictColumns(columns ...string) *PatientProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientProfileUpsertBulk{
		create: _c,
	}
}

// PatientProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientProfile nodes.
type PatientProfileUpsertBulk struct {
	create *PatientProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientProfileUpsertBulk) UpdateNewValues() *PatientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientProfileUpsertBulk) Ignore() *PatientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientProfileUpsertBulk) DoNothing() *PatientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientProfileCreateBulk.OnConflict
// documentation for more info.
func (u *PatientProfileUpsertBulk) Update(set func(*PatientProfileUpsert)) *PatientProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientProfileUpsertBulk) SetUpdatedAt(v time.Time) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientProfileUpsertBulk) UpdateUpdatedAt() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientProfileUpsertBulk) SetDeletedAt(v time.Time) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientProfileUpsertBulk) UpdateDeletedAt() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientProfileUpsertBulk) ClearDeletedAt() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientProfileUpsertBulk) SetUserID(v uuid.UUID) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientProfileUpsertBulk) UpdateUserID() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetGender sets the "gender" field.
func (u *PatientProfileUpsertBulk) SetGender(v patientprofile.Gender) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *PatientProfileUpsertBulk) UpdateGender() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *PatientProfileUpsertBulk) ClearGender() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearGender()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientProfileUpsertBulk) SetBirthDate(v time.Time) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientProfileUpsertBulk) UpdateBirthDate() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateBirthDate()
	})
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientProfileUpsertBulk) ClearBirthDate() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearBirthDate()
	})
}

// SetHeightCm sets the "height_cm" field.
func (u *PatientProfileUpsertBulk) SetHeightCm(v float64) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetHeightCm(v)
	})
}

// AddHeightCm adds v to the "height_cm" field.
func (u *PatientProfileUpsertBulk) AddHeightCm(v float64) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.AddHeightCm(v)
	})
}

// UpdateHeightCm sets the "height_cm" field to the value that was provided on create.
func (u *PatientProfileUpsertBulk) UpdateHeightCm() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateHeightCm()
	})
}

// ClearHeightCm clears the value of the "height_cm" field.
func (u *PatientProfileUpsertBulk) ClearHeightCm() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearHeightCm()
	})
}

// SetWeightKg sets the "weight_kg" field.
func (u *PatientProfileUpsertBulk) SetWeightKg(v float64) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetWeightKg(v)
	})
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *PatientProfileUpsertBulk) AddWeightKg(v float64) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.AddWeightKg(v)
	})
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *PatientProfileUpsertBulk) UpdateWeightKg() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateWeightKg()
	})
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *PatientProfileUpsertBulk) ClearWeightKg() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearWeightKg()
	})
}

// SetMedicalHistory sets the "medical_history" field.
func (u *PatientProfileUpsertBulk) SetMedicalHistory(v string) *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.SetMedicalHistory(v)
	})
}

// UpdateMedicalHistory sets the "medical_history" field to the value that was provided on create.
func (u *PatientProfileUpsertBulk) UpdateMedicalHistory() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.UpdateMedicalHistory()
	})
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (u *PatientProfileUpsertBulk) ClearMedicalHistory() *PatientProfileUpsertBulk {
	return u.Update(func(s *PatientProfileUpsert) {
		s.ClearMedicalHistory()
	})
}

// Exec executes the query.
func (u *PatientProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
