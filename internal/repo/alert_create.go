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
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
)

// AlertCreate is the builder for creating a Alert entity.
type AlertCreate struct {
	config
	mutation *AlertMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertCreate) SetCreatedAt(v time.Time) *AlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableCreatedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AlertCreate) SetUpdatedAt(v time.Time) *AlertCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableUpdatedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AlertCreate) SetDeletedAt(v time.Time) *AlertCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AlertCreate) SetNillableDeletedAt(v *time.Time) *AlertCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *AlertCreate) SetClinicID(v uuid.UUID) *AlertCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AlertCreate) SetTitle(v string) *AlertCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AlertCreate) SetDescription(v string) *AlertCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AlertCreate) SetNillableDescription(v *string) *AlertCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *AlertCreate) SetSeverity(v alert.Severity) *AlertCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *AlertCreate) SetNillableSeverity(v *alert.Severity) *AlertCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetReminderCount sets the "reminder_count" field.
func (_c *AlertCreate) SetReminderCount(v int) *AlertCreate {
	_c.mutation.SetReminderCount(v)
	return _c
}

// SetNillableReminderCount sets the "reminder_count" field if the given value is not nil.
func (_c *AlertCreate) SetNillableReminderCount(v *int) *AlertCreate {
	if v != nil {
		_c.SetReminderCount(*v)
	}
	return _c
}

// SetReminderUnit sets the "reminder_unit" field.
func (_c *AlertCreate) SetReminderUnit(v alert.ReminderUnit) *AlertCreate {
	_c.mutation.SetReminderUnit(v)
	return _c
}

// SetNillableReminderUnit sets the "reminder_unit" field if the given value is not nil.
func (_c *AlertCreate) SetNillableReminderUnit(v *alert.ReminderUnit) *AlertCreate {
	if v != nil {
		_c.SetReminderUnit(*v)
	}
	return _c
}

// SetChannel sets the "channel" field.
func (_c *AlertCreate) SetChannel(v alert.Channel) *AlertCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_c *AlertCreate) SetNillableChannel(v *alert.Channel) *AlertCreate {
	if v != nil {
		_c.SetChannel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertCreate) SetID(v uuid.UUID) *AlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AlertCreate) SetNillableID(v *uuid.UUID) *AlertCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *AlertCreate) SetClinic(v *Clinic) *AlertCreate {
	return _c.SetClinicID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_c *AlertCreate) Mutation() *AlertMutation {
	return _c.mutation
}

// Save creates the Alert in the database.
func (_c *AlertCreate) Save(ctx context.Context) (*Alert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertCreate) SaveX(ctx context.Context) *Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := alert.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Severity(); !ok {
		v := alert.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.ReminderCount(); !ok {
		v := alert.DefaultReminderCount
		_c.mutation.SetReminderCount(v)
	}
	if _, ok := _c.mutation.ReminderUnit(); !ok {
		v := alert.DefaultReminderUnit
		_c.mutation.SetReminderUnit(v)
	}
	if _, ok := _c.mutation.Channel(); !ok {
		v := alert.DefaultChannel
		_c.mutation.SetChannel(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := alert.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Alert.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Alert.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Alert.clinic_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Alert.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := alert.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Alert.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`repo: missing required field "Alert.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReminderCount(); !ok {
		return &ValidationError{Name: "reminder_count", err: errors.New(`repo: missing required field "Alert.reminder_count"`)}
	}
	if v, ok := _c.mutation.ReminderCount(); ok {
		if err := alert.ReminderCountValidator(v); err != nil {
			return &ValidationError{Name: "reminder_count", err: fmt.Errorf(`repo: validator failed for field "Alert.reminder_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReminderUnit(); !ok {
		return &ValidationError{Name: "reminder_unit", err: errors.New(`repo: missing required field "Alert.reminder_unit"`)}
	}
	if v, ok := _c.mutation.ReminderUnit(); ok {
		if err := alert.ReminderUnitValidator(v); err != nil {
			return &ValidationError{Name: "reminder_unit", err: fmt.Errorf(`repo: validator failed for field "Alert.reminder_unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`repo: missing required field "Alert.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := alert.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Alert.channel": %w`, err)}
		}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "Alert.clinic"`)}
	}
	return nil
}

func (_c *AlertCreate) sqlSave(ctx context.Context) (*Alert, error) {
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

func (_c *AlertCreate) createSpec() (*Alert, *sqlgraph.CreateSpec) {
	var (
		_node = &Alert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alert.Table, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(alert.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(alert.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(alert.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.ReminderCount(); ok {
		_spec.SetField(alert.FieldReminderCount, field.TypeInt, value)
		_node.ReminderCount = value
	}
	if value, ok := _c.mutation.ReminderUnit(); ok {
		_spec.SetField(alert.FieldReminderUnit, field.TypeEnum, value)
		_node.ReminderUnit = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(alert.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alert.ClinicTable,
			Columns: []string{alert.ClinicColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreate) OnConflict(opts ...sql.ConflictOption) *AlertUpsertOne {
	_c.conflict = opts
	return &AlertUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreate) OnConflictColumns(columns ...string) *AlertUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertOne{
		create: _c,
	}
}

type (
	// AlertUpsertOne is the builder for "upsert"-ing
	//  one Alert node.
	AlertUpsertOne struct {
		create *AlertCreate
	}

	// AlertUpsert is the "OnConflict" setter.
	AlertUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AlertUpsert) SetUpdatedAt(v time.Time) *AlertUpsert {
	u.Set(alert.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlertUpsert) UpdateUpdatedAt() *AlertUpsert {
	u.SetExcluded(alert.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AlertUpsert) SetDeletedAt(v time.Time) *AlertUpsert {
	u.Set(alert.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AlertUpsert) UpdateDeletedAt() *AlertUpsert {
	u.SetExcluded(alert.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AlertUpsert) ClearDeletedAt() *AlertUpsert {
	u.SetNull(alert.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *AlertUpsert) SetClinicID(v uuid.UUID) *AlertUpsert {
	u.Set(alert.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AlertUpsert) UpdateClinicID() *AlertUpsert {
	u.SetExcluded(alert.FieldClinicID)
	return u
}

// SetTitle sets the "title" field.
func (u *AlertUpsert) SetTitle(v string) *AlertUpsert {
	u.Set(alert.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AlertUpsert) UpdateTitle() *AlertUpsert {
	u.SetExcluded(alert.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *AlertUpsert) SetDescription(v string) *AlertUpsert {
	u.Set(alert.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlertUpsert) UpdateDescription() *AlertUpsert {
	u.SetExcluded(alert.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *AlertUpsert) ClearDescription() *AlertUpsert {
	u.SetNull(alert.FieldDescription)
	return u
}

// SetSeverity sets the "severity" field.
func (u *AlertUpsert) SetSeverity(v alert.Severity) *AlertUpsert {
	u.Set(alert.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AlertUpsert) UpdateSeverity() *AlertUpsert {
	u.SetExcluded(alert.FieldSeverity)
	return u
}

// SetReminderCount sets the "reminder_count" field.
func (u *AlertUpsert) SetReminderCount(v int) *AlertUpsert {
	u.Set(alert.FieldReminderCount, v)
	return u
}

// UpdateReminderCount sets the "reminder_count" field to the value that was provided on create.
func (u *AlertUpsert) UpdateReminderCount() *AlertUpsert {
	u.SetExcluded(alert.FieldReminderCount)
	return u
}

// AddReminderCount adds v to the "reminder_count" field.
func (u *AlertUpsert) AddReminderCount(v int) *AlertUpsert {
	u.Add(alert.FieldReminderCount, v)
	return u
}

// SetReminderUnit sets the "reminder_unit" field.
func (u *AlertUpsert) SetReminderUnit(v alert.ReminderUnit) *AlertUpsert {
	u.Set(alert.FieldReminderUnit, v)
	return u
}

// UpdateReminderUnit sets the "reminder_unit" field to the value that was provided on create.
func (u *AlertUpsert) UpdateReminderUnit() *AlertUpsert {
	u.SetExcluded(alert.FieldReminderUnit)
	return u
}

// SetChannel sets the "channel" field.
func (u *AlertUpsert) SetChannel(v alert.Channel) *AlertUpsert {
	u.Set(alert.FieldChannel, v)
	return u
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AlertUpsert) UpdateChannel() *AlertUpsert {
	u.SetExcluded(alert.FieldChannel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertUpsertOne) UpdateNewValues() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(alert.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(alert.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlertUpsertOne) Ignore() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertOne) DoNothing() *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreate.OnConflict
// documentation for more info.
func (u *AlertUpsertOne) Update(set func(*AlertUpsert)) *AlertUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlertUpsertOne) SetUpdatedAt(v time.Time) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateUpdatedAt() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AlertUpsertOne) SetDeletedAt(v time.Time) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateDeletedAt() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AlertUpsertOne) ClearDeletedAt() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AlertUpsertOne) SetClinicID(v uuid.UUID) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateClinicID() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateClinicID()
	})
}

// SetTitle sets the "title" field.
func (u *AlertUpsertOne) SetTitle(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateTitle() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *AlertUpsertOne) SetDescription(v string) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateDescription() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AlertUpsertOne) ClearDescription() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.ClearDescription()
	})
}

// SetSeverity sets the "severity" field.
func (u *AlertUpsertOne) SetSeverity(v alert.Severity) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateSeverity() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSeverity()
	})
}

// SetReminderCount sets the "reminder_count" field.
func (u *AlertUpsertOne) SetReminderCount(v int) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetReminderCount(v)
	})
}

// AddReminderCount adds v to the "reminder_count" field.
func (u *AlertUpsertOne) AddReminderCount(v int) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.AddReminderCount(v)
	})
}

// UpdateReminderCount sets the "reminder_count" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateReminderCount() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateReminderCount()
	})
}

// SetReminderUnit sets the "reminder_unit" field.
func (u *AlertUpsertOne) SetReminderUnit(v alert.ReminderUnit) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetReminderUnit(v)
	})
}

// UpdateReminderUnit sets the "reminder_unit" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateReminderUnit() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateReminderUnit()
	})
}

// SetChannel sets the "channel" field.
func (u *AlertUpsertOne) SetChannel(v alert.Channel) *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AlertUpsertOne) UpdateChannel() *AlertUpsertOne {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateChannel()
	})
}

// Exec executes the query.
func (u *AlertUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AlertCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlertUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AlertUpsertOne.ID is not supported by MySQL driver. Use AlertUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlertUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlertCreateBulk is the builder for creating many Alert entities in bulk.
type AlertCreateBulk struct {
	config
	err      error
	builders []*AlertCreate
	conflict []sql.ConflictOption
}

// Save creates the Alert entities in the database.
func (_c *AlertCreateBulk) Save(ctx context.Context) ([]*Alert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Alert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertMutation)
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
func (_c *AlertCreateBulk) SaveX(ctx context.Context) []*Alert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alert.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlertUpsertBulk {
	_c.conflict = opts
	return &AlertUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertCreateBulk) OnConflictColumns(columns ...string) *AlertUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertUpsertBulk{
		create: _c,
	}
}

// AlertUpsertBulk is the builder for "upsert"-ing
// a bulk of Alert nodes.
type AlertUpsertBulk struct {
	create *AlertCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alert.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertUpsertBulk) UpdateNewValues() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(alert.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(alert.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alert.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlertUpsertBulk) Ignore() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertUpsertBulk) DoNothing() *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertCreateBulk.OnConflict
// documentation for more info.
func (u *AlertUpsertBulk) Update(set func(*AlertUpsert)) *AlertUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AlertUpsertBulk) SetUpdatedAt(v time.Time) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateUpdatedAt() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AlertUpsertBulk) SetDeletedAt(v time.Time) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateDeletedAt() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AlertUpsertBulk) ClearDeletedAt() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AlertUpsertBulk) SetClinicID(v uuid.UUID) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateClinicID() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateClinicID()
	})
}

// SetTitle sets the "title" field.
func (u *AlertUpsertBulk) SetTitle(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateTitle() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *AlertUpsertBulk) SetDescription(v string) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateDescription() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *AlertUpsertBulk) ClearDescription() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.ClearDescription()
	})
}

// SetSeverity sets the "severity" field.
func (u *AlertUpsertBulk) SetSeverity(v alert.Severity) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateSeverity() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateSeverity()
	})
}

// SetReminderCount sets the "reminder_count" field.
func (u *AlertUpsertBulk) SetReminderCount(v int) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetReminderCount(v)
	})
}

// AddReminderCount adds v to the "reminder_count" field.
func (u *AlertUpsertBulk) AddReminderCount(v int) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.AddReminderCount(v)
	})
}

// UpdateReminderCount sets the "reminder_count" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateReminderCount() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateReminderCount()
	})
}

// SetReminderUnit sets the "reminder_unit" field.
func (u *AlertUpsertBulk) SetReminderUnit(v alert.ReminderUnit) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetReminderUnit(v)
	})
}

// UpdateReminderUnit sets the "reminder_unit" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateReminderUnit() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateReminderUnit()
	})
}

// SetChannel sets the "channel" field.
func (u *AlertUpsertBulk) SetChannel(v alert.Channel) *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.SetChannel(v)
	})
}

// UpdateChannel sets the "channel" field to the value that was provided on create.
func (u *AlertUpsertBulk) UpdateChannel() *AlertUpsertBulk {
	return u.Update(func(s *AlertUpsert) {
		s.UpdateChannel()
	})
}

// Exec executes the query.
func (u *AlertUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AlertCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AlertCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
