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
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// AlertUpdate is the builder for updating Alert entities.
type AlertUpdate struct {
	config
	hooks    []Hook
	mutation *AlertMutation
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdate) Where(ps ...predicate.Alert) *AlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlertUpdate) SetUpdatedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AlertUpdate) SetDeletedAt(v time.Time) *AlertUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableDeletedAt(v *time.Time) *AlertUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AlertUpdate) ClearDeletedAt() *AlertUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AlertUpdate) SetClinicID(v uuid.UUID) *AlertUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableClinicID(v *uuid.UUID) *AlertUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AlertUpdate) SetTitle(v string) *AlertUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableTitle(v *string) *AlertUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlertUpdate) SetDescription(v string) *AlertUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableDescription(v *string) *AlertUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AlertUpdate) ClearDescription() *AlertUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdate) SetSeverity(v alert.Severity) *AlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableSeverity(v *alert.Severity) *AlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetReminderCount sets the "reminder_count" field.
func (_u *AlertUpdate) SetReminderCount(v int) *AlertUpdate {
	_u.mutation.ResetReminderCount()
	_u.mutation.SetReminderCount(v)
	return _u
}

// SetNillableReminderCount sets the "reminder_count" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableReminderCount(v *int) *AlertUpdate {
	if v != nil {
		_u.SetReminderCount(*v)
	}
	return _u
}

// AddReminderCount adds value to the "reminder_count" field.
func (_u *AlertUpdate) AddReminderCount(v int) *AlertUpdate {
	_u.mutation.AddReminderCount(v)
	return _u
}

// SetReminderUnit sets the "reminder_unit" field.
func (_u *AlertUpdate) SetReminderUnit(v alert.ReminderUnit) *AlertUpdate {
	_u.mutation.SetReminderUnit(v)
	return _u
}

// SetNillableReminderUnit sets the "reminder_unit" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableReminderUnit(v *alert.ReminderUnit) *AlertUpdate {
	if v != nil {
		_u.SetReminderUnit(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *AlertUpdate) SetChannel(v alert.Channel) *AlertUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AlertUpdate) SetNillableChannel(v *alert.Channel) *AlertUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *AlertUpdate) SetClinic(v *Clinic) *AlertUpdate {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdate) Mutation() *AlertMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *AlertUpdate) ClearClinic() *AlertUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlertUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := alert.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Alert.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReminderCount(); ok {
		if err := alert.ReminderCountValidator(v); err != nil {
			return &ValidationError{Name: "reminder_count", err: fmt.Errorf(`repo: validator failed for field "Alert.reminder_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReminderUnit(); ok {
		if err := alert.ReminderUnitValidator(v); err != nil {
			return &ValidationError{Name: "reminder_unit", err: fmt.Errorf(`repo: validator failed for field "Alert.reminder_unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := alert.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Alert.channel": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Alert.clinic"`)
	}
	return nil
}

func (_u *AlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alert.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(alert.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(alert.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(alert.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(alert.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReminderCount(); ok {
		_spec.SetField(alert.FieldReminderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderCount(); ok {
		_spec.AddField(alert.FieldReminderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReminderUnit(); ok {
		_spec.SetField(alert.FieldReminderUnit, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(alert.FieldChannel, field.TypeEnum, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertUpdateOne is the builder for updating a single Alert entity.
type AlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AlertUpdateOne) SetUpdatedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AlertUpdateOne) SetDeletedAt(v time.Time) *AlertUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableDeletedAt(v *time.Time) *AlertUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AlertUpdateOne) ClearDeletedAt() *AlertUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AlertUpdateOne) SetClinicID(v uuid.UUID) *AlertUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableClinicID(v *uuid.UUID) *AlertUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AlertUpdateOne) SetTitle(v string) *AlertUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableTitle(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AlertUpdateOne) SetDescription(v string) *AlertUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableDescription(v *string) *AlertUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AlertUpdateOne) ClearDescription() *AlertUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AlertUpdateOne) SetSeverity(v alert.Severity) *AlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableSeverity(v *alert.Severity) *AlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetReminderCount sets the "reminder_count" field.
func (_u *AlertUpdateOne) SetReminderCount(v int) *AlertUpdateOne {
	_u.mutation.ResetReminderCount()
	_u.mutation.SetReminderCount(v)
	return _u
}

// SetNillableReminderCount sets the "reminder_count" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableReminderCount(v *int) *AlertUpdateOne {
	if v != nil {
		_u.SetReminderCount(*v)
	}
	return _u
}

// AddReminderCount adds value to the "reminder_count" field.
func (_u *AlertUpdateOne) AddReminderCount(v int) *AlertUpdateOne {
	_u.mutation.AddReminderCount(v)
	return _u
}

// SetReminderUnit sets the "reminder_unit" field.
func (_u *AlertUpdateOne) SetReminderUnit(v alert.ReminderUnit) *AlertUpdateOne {
	_u.mutation.SetReminderUnit(v)
	return _u
}

// SetNillableReminderUnit sets the "reminder_unit" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableReminderUnit(v *alert.ReminderUnit) *AlertUpdateOne {
	if v != nil {
		_u.SetReminderUnit(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *AlertUpdateOne) SetChannel(v alert.Channel) *AlertUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *AlertUpdateOne) SetNillableChannel(v *alert.Channel) *AlertUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *AlertUpdateOne) SetClinic(v *Clinic) *AlertUpdateOne {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the AlertMutation object of the builder.
func (_u *AlertUpdateOne) Mutation() *AlertMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *AlertUpdateOne) ClearClinic() *AlertUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// Where appends a list predicates to the AlertUpdate builder.
func (_u *AlertUpdateOne) Where(ps ...predicate.Alert) *AlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertUpdateOne) Select(field string, fields ...string) *AlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alert entity.
func (_u *AlertUpdateOne) Save(ctx context.Context) (*Alert, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertUpdateOne) SaveX(ctx context.Context) *Alert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AlertUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alert.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := alert.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Alert.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := alert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`repo: validator failed for field "Alert.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReminderCount(); ok {
		if err := alert.ReminderCountValidator(v); err != nil {
			return &ValidationError{Name: "reminder_count", err: fmt.Errorf(`repo: validator failed for field "Alert.reminder_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReminderUnit(); ok {
		if err := alert.ReminderUnitValidator(v); err != nil {
			return &ValidationError{Name: "reminder_unit", err: fmt.Errorf(`repo: validator failed for field "Alert.reminder_unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := alert.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Alert.channel": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Alert.clinic"`)
	}
	return nil
}

func (_u *AlertUpdateOne) sqlSave(ctx context.Context) (_node *Alert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alert.Table, alert.Columns, sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Alert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alert.FieldID)
		for _, f := range fields {
			if !alert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != alert.FieldID {
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
		_spec.SetField(alert.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(alert.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(alert.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(alert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(alert.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(alert.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(alert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReminderCount(); ok {
		_spec.SetField(alert.FieldReminderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderCount(); ok {
		_spec.AddField(alert.FieldReminderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReminderUnit(); ok {
		_spec.SetField(alert.FieldReminderUnit, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(alert.FieldChannel, field.TypeEnum, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Alert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
