// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicgroup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicmedia"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/media"
	"github.com/pezeshkyar/checkup_backend/internal/repo/organ"
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptiondate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionequation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realclinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
	"github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
	"github.com/pezeshkyar/checkup_backend/internal/repo/usersession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlert                  = "Alert"
	TypeCheckup                = "Checkup"
	TypeCheckupAnalyze         = "CheckupAnalyze"
	TypeClinic                 = "Clinic"
	TypeClinicCheckup          = "ClinicCheckup"
	TypeClinicGroup            = "ClinicGroup"
	TypeClinicMedia            = "ClinicMedia"
	TypeDoctor                 = "Doctor"
	TypeInterpretation         = "Interpretation"
	TypeMedia                  = "Media"
	TypeOrgan                  = "Organ"
	TypePatientProfile         = "PatientProfile"
	TypeQuestionAnswer         = "QuestionAnswer"
	TypeQuestionOption         = "QuestionOption"
	TypeQuestionOptionDate     = "QuestionOptionDate"
	TypeQuestionOptionEquation = "QuestionOptionEquation"
	TypeQuestionOptionNumber   = "QuestionOptionNumber"
	TypeQuestionShare          = "QuestionShare"
	TypeRealClinic             = "RealClinic"
	TypeRealDoctor             = "RealDoctor"
	TypeSuggestion             = "Suggestion"
	TypeSupervisor             = "Supervisor"
	TypeUser                   = "User"
	TypeUserSession            = "UserSession"
)

// AlertMutation represents an operation that mutates the Alert nodes in the graph.
type AlertMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	deleted_at        *time.Time
	title             *string
	description       *string
	severity          *alert.Severity
	reminder_count    *int
	addreminder_count *int
	reminder_unit     *alert.ReminderUnit
	channel           *alert.Channel
	clearedFields     map[string]struct{}
	clinic            *uuid.UUID
	clearedclinic     bool
	done              bool
	oldValue          func(context.Context) (*Alert, error)
	predicates        []predicate.Alert
}

var _ ent.Mutation = (*AlertMutation)(nil)

// alertOption allows management of the mutation configuration using functional options.
type alertOption func(*AlertMutation)

// newAlertMutation creates new mutation for the Alert entity.
func newAlertMutation(c config, op Op, opts ...alertOption) *AlertMutation {
	m := &AlertMutation{
		config:        c,
		op:            op,
		typ:           TypeAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertID sets the ID field of the mutation.
func withAlertID(id uuid.UUID) alertOption {
	return func(m *AlertMutation) {
		var (
			err   error
			once  sync.Once
			value *Alert
		)
		m.oldValue = func(ctx context.Context) (*Alert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlert sets the old Alert of the mutation.
func withAlert(node *Alert) alertOption {
	return func(m *AlertMutation) {
		m.oldValue = func(context.Context) (*Alert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Alert entities.
func (m *AlertMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AlertMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AlertMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AlertMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AlertMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AlertMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AlertMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[alert.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AlertMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[alert.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AlertMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, alert.FieldDeletedAt)
}

// SetClinicID sets the "clinic_id" field.
func (m *AlertMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *AlertMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *AlertMutation) ResetClinicID() {
	m.clinic = nil
}

// SetTitle sets the "title" field.
func (m *AlertMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AlertMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *AlertMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *AlertMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AlertMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AlertMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[alert.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AlertMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[alert.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AlertMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, alert.FieldDescription)
}

// SetSeverity sets the "severity" field.
func (m *AlertMutation) SetSeverity(a alert.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AlertMutation) Severity() (r alert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldSeverity(ctx context.Context) (v alert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetReminderCount sets the "reminder_count" field.
func (m *AlertMutation) SetReminderCount(i int) {
	m.reminder_count = &i
	m.addreminder_count = nil
}

// ReminderCount returns the value of the "reminder_count" field in the mutation.
func (m *AlertMutation) ReminderCount() (r int, exists bool) {
	v := m.reminder_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderCount returns the old "reminder_count" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldReminderCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderCount: %w", err)
	}
	return oldValue.ReminderCount, nil
}

// AddReminderCount adds i to the "reminder_count" field.
func (m *AlertMutation) AddReminderCount(i int) {
	if m.addreminder_count != nil {
		*m.addreminder_count += i
	} else {
		m.addreminder_count = &i
	}
}

// AddedReminderCount returns the value that was added to the "reminder_count" field in this mutation.
func (m *AlertMutation) AddedReminderCount() (r int, exists bool) {
	v := m.addreminder_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReminderCount resets all changes to the "reminder_count" field.
func (m *AlertMutation) ResetReminderCount() {
	m.reminder_count = nil
	m.addreminder_count = nil
}

// SetReminderUnit sets the "reminder_unit" field.
func (m *AlertMutation) SetReminderUnit(au alert.ReminderUnit) {
	m.reminder_unit = &au
}

// ReminderUnit returns the value of the "reminder_unit" field in the mutation.
func (m *AlertMutation) ReminderUnit() (r alert.ReminderUnit, exists bool) {
	v := m.reminder_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderUnit returns the old "reminder_unit" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldReminderUnit(ctx context.Context) (v alert.ReminderUnit, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderUnit: %w", err)
	}
	return oldValue.ReminderUnit, nil
}

// ResetReminderUnit resets all changes to the "reminder_unit" field.
func (m *AlertMutation) ResetReminderUnit() {
	m.reminder_unit = nil
}

// SetChannel sets the "channel" field.
func (m *AlertMutation) SetChannel(a alert.Channel) {
	m.channel = &a
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AlertMutation) Channel() (r alert.Channel, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Alert entity.
// If the Alert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertMutation) OldChannel(ctx context.Context) (v alert.Channel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AlertMutation) ResetChannel() {
	m.channel = nil
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *AlertMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[alert.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *AlertMutation) ClinicCleared() bool {
	return m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *AlertMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *AlertMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// Where appends a list predicates to the AlertMutation builder.
func (m *AlertMutation) Where(ps ...predicate.Alert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alert).
func (m *AlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, alert.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, alert.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, alert.FieldDeletedAt)
	}
	if m.clinic != nil {
		fields = append(fields, alert.FieldClinicID)
	}
	if m.title != nil {
		fields = append(fields, alert.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, alert.FieldDescription)
	}
	if m.severity != nil {
		fields = append(fields, alert.FieldSeverity)
	}
	if m.reminder_count != nil {
		fields = append(fields, alert.FieldReminderCount)
	}
	if m.reminder_unit != nil {
		fields = append(fields, alert.FieldReminderUnit)
	}
	if m.channel != nil {
		fields = append(fields, alert.FieldChannel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldCreatedAt:
		return m.CreatedAt()
	case alert.FieldUpdatedAt:
		return m.UpdatedAt()
	case alert.FieldDeletedAt:
		return m.DeletedAt()
	case alert.FieldClinicID:
		return m.ClinicID()
	case alert.FieldTitle:
		return m.Title()
	case alert.FieldDescription:
		return m.Description()
	case alert.FieldSeverity:
		return m.Severity()
	case alert.FieldReminderCount:
		return m.ReminderCount()
	case alert.FieldReminderUnit:
		return m.ReminderUnit()
	case alert.FieldChannel:
		return m.Channel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case alert.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case alert.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case alert.FieldClinicID:
		return m.OldClinicID(ctx)
	case alert.FieldTitle:
		return m.OldTitle(ctx)
	case alert.FieldDescription:
		return m.OldDescription(ctx)
	case alert.FieldSeverity:
		return m.OldSeverity(ctx)
	case alert.FieldReminderCount:
		return m.OldReminderCount(ctx)
	case alert.FieldReminderUnit:
		return m.OldReminderUnit(ctx)
	case alert.FieldChannel:
		return m.OldChannel(ctx)
	}
	return nil, fmt.Errorf("unknown Alert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case alert.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case alert.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case alert.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case alert.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case alert.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case alert.FieldSeverity:
		v, ok := value.(alert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case alert.FieldReminderCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderCount(v)
		return nil
	case alert.FieldReminderUnit:
		v, ok := value.(alert.ReminderUnit)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderUnit(v)
		return nil
	case alert.FieldChannel:
		v, ok := value.(alert.Channel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertMutation) AddedFields() []string {
	var fields []string
	if m.addreminder_count != nil {
		fields = append(fields, alert.FieldReminderCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alert.FieldReminderCount:
		return m.AddedReminderCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alert.FieldReminderCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReminderCount(v)
		return nil
	}
	return fmt.Errorf("unknown Alert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alert.FieldDeletedAt) {
		fields = append(fields, alert.FieldDeletedAt)
	}
	if m.FieldCleared(alert.FieldDescription) {
		fields = append(fields, alert.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertMutation) ClearField(name string) error {
	switch name {
	case alert.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case alert.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Alert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertMutation) ResetField(name string) error {
	switch name {
	case alert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case alert.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case alert.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case alert.FieldClinicID:
		m.ResetClinicID()
		return nil
	case alert.FieldTitle:
		m.ResetTitle()
		return nil
	case alert.FieldDescription:
		m.ResetDescription()
		return nil
	case alert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case alert.FieldReminderCount:
		m.ResetReminderCount()
		return nil
	case alert.FieldReminderUnit:
		m.ResetReminderUnit()
		return nil
	case alert.FieldChannel:
		m.ResetChannel()
		return nil
	}
	return fmt.Errorf("unknown Alert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clinic != nil {
		edges = append(edges, alert.EdgeClinic)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alert.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclinic {
		edges = append(edges, alert.EdgeClinic)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertMutation) EdgeCleared(name string) bool {
	switch name {
	case alert.EdgeClinic:
		return m.clearedclinic
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertMutation) ClearEdge(name string) error {
	switch name {
	case alert.EdgeClinic:
		m.ClearClinic()
		return nil
	}
	return fmt.Errorf("unknown Alert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertMutation) ResetEdge(name string) error {
	switch name {
	case alert.EdgeClinic:
		m.ResetClinic()
		return nil
	}
	return fmt.Errorf("unknown Alert edge %s", name)
}

// CheckupMutation represents an operation that mutates the Checkup nodes in the graph.
type CheckupMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	title           *string
	description     *string
	executed_at     *time.Time
	is_completed    *bool
	clearedFields   map[string]struct{}
	patient         *uuid.UUID
	clearedpatient  bool
	clinic          *uuid.UUID
	clearedclinic   bool
	template        *uuid.UUID
	clearedtemplate bool
	answers         map[uuid.UUID]struct{}
	removedanswers  map[uuid.UUID]struct{}
	clearedanswers  bool
	done            bool
	oldValue        func(context.Context) (*Checkup, error)
	predicates      []predicate.Checkup
}

var _ ent.Mutation = (*CheckupMutation)(nil)

// checkupOption allows management of the mutation configuration using functional options.
type checkupOption func(*CheckupMutation)

// newCheckupMutation creates new mutation for the Checkup entity.
func newCheckupMutation(c config, op Op, opts ...checkupOption) *CheckupMutation {
	m := &CheckupMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckupID sets the ID field of the mutation.
func withCheckupID(id uuid.UUID) checkupOption {
	return func(m *CheckupMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkup
		)
		m.oldValue = func(ctx context.Context) (*Checkup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckup sets the old Checkup of the mutation.
func withCheckup(node *Checkup) checkupOption {
	return func(m *CheckupMutation) {
		m.oldValue = func(context.Context) (*Checkup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkup entities.
func (m *CheckupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CheckupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CheckupMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CheckupMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CheckupMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[checkup.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CheckupMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[checkup.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CheckupMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, checkup.FieldDeletedAt)
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (m *CheckupMutation) SetPatientProfileID(u uuid.UUID) {
	m.patient = &u
}

// PatientProfileID returns the value of the "patient_profile_id" field in the mutation.
func (m *CheckupMutation) PatientProfileID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientProfileID returns the old "patient_profile_id" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldPatientProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientProfileID: %w", err)
	}
	return oldValue.PatientProfileID, nil
}

// ResetPatientProfileID resets all changes to the "patient_profile_id" field.
func (m *CheckupMutation) ResetPatientProfileID() {
	m.patient = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *CheckupMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *CheckupMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldClinicID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ClearClinicID clears the value of the "clinic_id" field.
func (m *CheckupMutation) ClearClinicID() {
	m.clinic = nil
	m.clearedFields[checkup.FieldClinicID] = struct{}{}
}

// ClinicIDCleared returns if the "clinic_id" field was cleared in this mutation.
func (m *CheckupMutation) ClinicIDCleared() bool {
	_, ok := m.clearedFields[checkup.FieldClinicID]
	return ok
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *CheckupMutation) ResetClinicID() {
	m.clinic = nil
	delete(m.clearedFields, checkup.FieldClinicID)
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (m *CheckupMutation) SetClinicCheckupID(u uuid.UUID) {
	m.template = &u
}

// ClinicCheckupID returns the value of the "clinic_checkup_id" field in the mutation.
func (m *CheckupMutation) ClinicCheckupID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicCheckupID returns the old "clinic_checkup_id" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldClinicCheckupID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicCheckupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicCheckupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicCheckupID: %w", err)
	}
	return oldValue.ClinicCheckupID, nil
}

// ClearClinicCheckupID clears the value of the "clinic_checkup_id" field.
func (m *CheckupMutation) ClearClinicCheckupID() {
	m.template = nil
	m.clearedFields[checkup.FieldClinicCheckupID] = struct{}{}
}

// ClinicCheckupIDCleared returns if the "clinic_checkup_id" field was cleared in this mutation.
func (m *CheckupMutation) ClinicCheckupIDCleared() bool {
	_, ok := m.clearedFields[checkup.FieldClinicCheckupID]
	return ok
}

// ResetClinicCheckupID resets all changes to the "clinic_checkup_id" field.
func (m *CheckupMutation) ResetClinicCheckupID() {
	m.template = nil
	delete(m.clearedFields, checkup.FieldClinicCheckupID)
}

// SetTitle sets the "title" field.
func (m *CheckupMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CheckupMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CheckupMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CheckupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CheckupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CheckupMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[checkup.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CheckupMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[checkup.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CheckupMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, checkup.FieldDescription)
}

// SetExecutedAt sets the "executed_at" field.
func (m *CheckupMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *CheckupMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldExecutedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *CheckupMutation) ResetExecutedAt() {
	m.executed_at = nil
}

// SetIsCompleted sets the "is_completed" field.
func (m *CheckupMutation) SetIsCompleted(b bool) {
	m.is_completed = &b
}

// IsCompleted returns the value of the "is_completed" field in the mutation.
func (m *CheckupMutation) IsCompleted() (r bool, exists bool) {
	v := m.is_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCompleted returns the old "is_completed" field's value of the Checkup entity.
// If the Checkup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupMutation) OldIsCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCompleted: %w", err)
	}
	return oldValue.IsCompleted, nil
}

// ResetIsCompleted resets all changes to the "is_completed" field.
func (m *CheckupMutation) ResetIsCompleted() {
	m.is_completed = nil
}

// SetPatientID sets the "patient" edge to the PatientProfile entity by id.
func (m *CheckupMutation) SetPatientID(id uuid.UUID) {
	m.patient = &id
}

// ClearPatient clears the "patient" edge to the PatientProfile entity.
func (m *CheckupMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[checkup.FieldPatientProfileID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the PatientProfile entity was cleared.
func (m *CheckupMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientID returns the "patient" edge ID in the mutation.
func (m *CheckupMutation) PatientID() (id uuid.UUID, exists bool) {
	if m.patient != nil {
		return *m.patient, true
	}
	return
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *CheckupMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *CheckupMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *CheckupMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[checkup.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *CheckupMutation) ClinicCleared() bool {
	return m.ClinicIDCleared() || m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *CheckupMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *CheckupMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// SetTemplateID sets the "template" edge to the ClinicCheckup entity by id.
func (m *CheckupMutation) SetTemplateID(id uuid.UUID) {
	m.template = &id
}

// ClearTemplate clears the "template" edge to the ClinicCheckup entity.
func (m *CheckupMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[checkup.FieldClinicCheckupID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the ClinicCheckup entity was cleared.
func (m *CheckupMutation) TemplateCleared() bool {
	return m.ClinicCheckupIDCleared() || m.clearedtemplate
}

// TemplateID returns the "template" edge ID in the mutation.
func (m *CheckupMutation) TemplateID() (id uuid.UUID, exists bool) {
	if m.template != nil {
		return *m.template, true
	}
	return
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *CheckupMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *CheckupMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// AddAnswerIDs adds the "answers" edge to the QuestionAnswer entity by ids.
func (m *CheckupMutation) AddAnswerIDs(ids ...uuid.UUID) {
	if m.answers == nil {
		m.answers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the QuestionAnswer entity.
func (m *CheckupMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the QuestionAnswer entity was cleared.
func (m *CheckupMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the QuestionAnswer entity by IDs.
func (m *CheckupMutation) RemoveAnswerIDs(ids ...uuid.UUID) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the QuestionAnswer entity.
func (m *CheckupMutation) RemovedAnswersIDs() (ids []uuid.UUID) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *CheckupMutation) AnswersIDs() (ids []uuid.UUID) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *CheckupMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the CheckupMutation builder.
func (m *CheckupMutation) Where(ps ...predicate.Checkup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkup).
func (m *CheckupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckupMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, checkup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, checkup.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, checkup.FieldDeletedAt)
	}
	if m.patient != nil {
		fields = append(fields, checkup.FieldPatientProfileID)
	}
	if m.clinic != nil {
		fields = append(fields, checkup.FieldClinicID)
	}
	if m.template != nil {
		fields = append(fields, checkup.FieldClinicCheckupID)
	}
	if m.title != nil {
		fields = append(fields, checkup.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, checkup.FieldDescription)
	}
	if m.executed_at != nil {
		fields = append(fields, checkup.FieldExecutedAt)
	}
	if m.is_completed != nil {
		fields = append(fields, checkup.FieldIsCompleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkup.FieldCreatedAt:
		return m.CreatedAt()
	case checkup.FieldUpdatedAt:
		return m.UpdatedAt()
	case checkup.FieldDeletedAt:
		return m.DeletedAt()
	case checkup.FieldPatientProfileID:
		return m.PatientProfileID()
	case checkup.FieldClinicID:
		return m.ClinicID()
	case checkup.FieldClinicCheckupID:
		return m.ClinicCheckupID()
	case checkup.FieldTitle:
		return m.Title()
	case checkup.FieldDescription:
		return m.Description()
	case checkup.FieldExecutedAt:
		return m.ExecutedAt()
	case checkup.FieldIsCompleted:
		return m.IsCompleted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case checkup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case checkup.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case checkup.FieldPatientProfileID:
		return m.OldPatientProfileID(ctx)
	case checkup.FieldClinicID:
		return m.OldClinicID(ctx)
	case checkup.FieldClinicCheckupID:
		return m.OldClinicCheckupID(ctx)
	case checkup.FieldTitle:
		return m.OldTitle(ctx)
	case checkup.FieldDescription:
		return m.OldDescription(ctx)
	case checkup.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	case checkup.FieldIsCompleted:
		return m.OldIsCompleted(ctx)
	}
	return nil, fmt.Errorf("unknown Checkup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case checkup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case checkup.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case checkup.FieldPatientProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientProfileID(v)
		return nil
	case checkup.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case checkup.FieldClinicCheckupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicCheckupID(v)
		return nil
	case checkup.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case checkup.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case checkup.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	case checkup.FieldIsCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown Checkup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkup.FieldDeletedAt) {
		fields = append(fields, checkup.FieldDeletedAt)
	}
	if m.FieldCleared(checkup.FieldClinicID) {
		fields = append(fields, checkup.FieldClinicID)
	}
	if m.FieldCleared(checkup.FieldClinicCheckupID) {
		fields = append(fields, checkup.FieldClinicCheckupID)
	}
	if m.FieldCleared(checkup.FieldDescription) {
		fields = append(fields, checkup.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckupMutation) ClearField(name string) error {
	switch name {
	case checkup.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case checkup.FieldClinicID:
		m.ClearClinicID()
		return nil
	case checkup.FieldClinicCheckupID:
		m.ClearClinicCheckupID()
		return nil
	case checkup.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Checkup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckupMutation) ResetField(name string) error {
	switch name {
	case checkup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case checkup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case checkup.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case checkup.FieldPatientProfileID:
		m.ResetPatientProfileID()
		return nil
	case checkup.FieldClinicID:
		m.ResetClinicID()
		return nil
	case checkup.FieldClinicCheckupID:
		m.ResetClinicCheckupID()
		return nil
	case checkup.FieldTitle:
		m.ResetTitle()
		return nil
	case checkup.FieldDescription:
		m.ResetDescription()
		return nil
	case checkup.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	case checkup.FieldIsCompleted:
		m.ResetIsCompleted()
		return nil
	}
	return fmt.Errorf("unknown Checkup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckupMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.patient != nil {
		edges = append(edges, checkup.EdgePatient)
	}
	if m.clinic != nil {
		edges = append(edges, checkup.EdgeClinic)
	}
	if m.template != nil {
		edges = append(edges, checkup.EdgeTemplate)
	}
	if m.answers != nil {
		edges = append(edges, checkup.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkup.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case checkup.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case checkup.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case checkup.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedanswers != nil {
		edges = append(edges, checkup.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case checkup.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedpatient {
		edges = append(edges, checkup.EdgePatient)
	}
	if m.clearedclinic {
		edges = append(edges, checkup.EdgeClinic)
	}
	if m.clearedtemplate {
		edges = append(edges, checkup.EdgeTemplate)
	}
	if m.clearedanswers {
		edges = append(edges, checkup.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckupMutation) EdgeCleared(name string) bool {
	switch name {
	case checkup.EdgePatient:
		return m.clearedpatient
	case checkup.EdgeClinic:
		return m.clearedclinic
	case checkup.EdgeTemplate:
		return m.clearedtemplate
	case checkup.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckupMutation) ClearEdge(name string) error {
	switch name {
	case checkup.EdgePatient:
		m.ClearPatient()
		return nil
	case checkup.EdgeClinic:
		m.ClearClinic()
		return nil
	case checkup.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown Checkup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckupMutation) ResetEdge(name string) error {
	switch name {
	case checkup.EdgePatient:
		m.ResetPatient()
		return nil
	case checkup.EdgeClinic:
		m.ResetClinic()
		return nil
	case checkup.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case checkup.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown Checkup edge %s", name)
}

// CheckupAnalyzeMutation represents an operation that mutates the CheckupAnalyze nodes in the graph.
type CheckupAnalyzeMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	deleted_at             *time.Time
	title                  *string
	description            *string
	clearedFields          map[string]struct{}
	template               *uuid.UUID
	clearedtemplate        bool
	interpretations        map[uuid.UUID]struct{}
	removedinterpretations map[uuid.UUID]struct{}
	clearedinterpretations bool
	done                   bool
	oldValue               func(context.Context) (*CheckupAnalyze, error)
	predicates             []predicate.CheckupAnalyze
}

var _ ent.Mutation = (*CheckupAnalyzeMutation)(nil)

// checkupanalyzeOption allows management of the mutation configuration using functional options.
type checkupanalyzeOption func(*CheckupAnalyzeMutation)

// newCheckupAnalyzeMutation creates new mutation for the CheckupAnalyze entity.
func newCheckupAnalyzeMutation(c config, op Op, opts ...checkupanalyzeOption) *CheckupAnalyzeMutation {
	m := &CheckupAnalyzeMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckupAnalyze,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckupAnalyzeID sets the ID field of the mutation.
func withCheckupAnalyzeID(id uuid.UUID) checkupanalyzeOption {
	return func(m *CheckupAnalyzeMutation) {
		var (
			err   error
			once  sync.Once
			value *CheckupAnalyze
		)
		m.oldValue = func(ctx context.Context) (*CheckupAnalyze, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CheckupAnalyze.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckupAnalyze sets the old CheckupAnalyze of the mutation.
func withCheckupAnalyze(node *CheckupAnalyze) checkupanalyzeOption {
	return func(m *CheckupAnalyzeMutation) {
		m.oldValue = func(context.Context) (*CheckupAnalyze, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckupAnalyzeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckupAnalyzeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CheckupAnalyze entities.
func (m *CheckupAnalyzeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckupAnalyzeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckupAnalyzeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CheckupAnalyze.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckupAnalyzeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckupAnalyzeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CheckupAnalyze entity.
// If the CheckupAnalyze object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupAnalyzeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckupAnalyzeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckupAnalyzeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckupAnalyzeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CheckupAnalyze entity.
// If the CheckupAnalyze object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupAnalyzeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CheckupAnalyzeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CheckupAnalyzeMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CheckupAnalyzeMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the CheckupAnalyze entity.
// If the CheckupAnalyze object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupAnalyzeMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CheckupAnalyzeMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[checkupanalyze.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CheckupAnalyzeMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[checkupanalyze.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CheckupAnalyzeMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, checkupanalyze.FieldDeletedAt)
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (m *CheckupAnalyzeMutation) SetClinicCheckupID(u uuid.UUID) {
	m.template = &u
}

// ClinicCheckupID returns the value of the "clinic_checkup_id" field in the mutation.
func (m *CheckupAnalyzeMutation) ClinicCheckupID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicCheckupID returns the old "clinic_checkup_id" field's value of the CheckupAnalyze entity.
// If the CheckupAnalyze object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupAnalyzeMutation) OldClinicCheckupID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicCheckupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicCheckupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicCheckupID: %w", err)
	}
	return oldValue.ClinicCheckupID, nil
}

// ResetClinicCheckupID resets all changes to the "clinic_checkup_id" field.
func (m *CheckupAnalyzeMutation) ResetClinicCheckupID() {
	m.template = nil
}

// SetTitle sets the "title" field.
func (m *CheckupAnalyzeMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CheckupAnalyzeMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CheckupAnalyze entity.
// If the CheckupAnalyze object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupAnalyzeMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CheckupAnalyzeMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CheckupAnalyzeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CheckupAnalyzeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CheckupAnalyze entity.
// If the CheckupAnalyze object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckupAnalyzeMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CheckupAnalyzeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[checkupanalyze.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CheckupAnalyzeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[checkupanalyze.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CheckupAnalyzeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, checkupanalyze.FieldDescription)
}

// SetTemplateID sets the "template" edge to the ClinicCheckup entity by id.
func (m *CheckupAnalyzeMutation) SetTemplateID(id uuid.UUID) {
	m.template = &id
}

// ClearTemplate clears the "template" edge to the ClinicCheckup entity.
func (m *CheckupAnalyzeMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[checkupanalyze.FieldClinicCheckupID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the ClinicCheckup entity was cleared.
func (m *CheckupAnalyzeMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateID returns the "template" edge ID in the mutation.
func (m *CheckupAnalyzeMutation) TemplateID() (id uuid.UUID, exists bool) {
	if m.template != nil {
		return *m.template, true
	}
	return
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *CheckupAnalyzeMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *CheckupAnalyzeMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// AddInterpretationIDs adds the "interpretations" edge to the Interpretation entity by ids.
func (m *CheckupAnalyzeMutation) AddInterpretationIDs(ids ...uuid.UUID) {
	if m.interpretations == nil {
		m.interpretations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.interpretations[ids[i]] = struct{}{}
	}
}

// ClearInterpretations clears the "interpretations" edge to the Interpretation entity.
func (m *CheckupAnalyzeMutation) ClearInterpretations() {
	m.clearedinterpretations = true
}

// InterpretationsCleared reports if the "interpretations" edge to the Interpretation entity was cleared.
func (m *CheckupAnalyzeMutation) InterpretationsCleared() bool {
	return m.clearedinterpretations
}

// RemoveInterpretationIDs removes the "interpretations" edge to the Interpretation entity by IDs.
func (m *CheckupAnalyzeMutation) RemoveInterpretationIDs(ids ...uuid.UUID) {
	if m.removedinterpretations == nil {
		m.removedinterpretations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.interpretations, ids[i])
		m.removedinterpretations[ids[i]] = struct{}{}
	}
}

// RemovedInterpretations returns the removed IDs of the "interpretations" edge to the Interpretation entity.
func (m *CheckupAnalyzeMutation) RemovedInterpretationsIDs() (ids []uuid.UUID) {
	for id := range m.removedinterpretations {
		ids = append(ids, id)
	}
	return
}

// InterpretationsIDs returns the "interpretations" edge IDs in the mutation.
func (m *CheckupAnalyzeMutation) InterpretationsIDs() (ids []uuid.UUID) {
	for id := range m.interpretations {
		ids = append(ids, id)
	}
	return
}

// ResetInterpretations resets all changes to the "interpretations" edge.
func (m *CheckupAnalyzeMutation) ResetInterpretations() {
	m.interpretations = nil
	m.clearedinterpretations = false
	m.removedinterpretations = nil
}

// Where appends a list predicates to the CheckupAnalyzeMutation builder.
func (m *CheckupAnalyzeMutation) Where(ps ...predicate.CheckupAnalyze) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckupAnalyzeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckupAnalyzeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CheckupAnalyze, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckupAnalyzeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckupAnalyzeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CheckupAnalyze).
func (m *CheckupAnalyzeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckupAnalyzeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, checkupanalyze.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, checkupanalyze.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, checkupanalyze.FieldDeletedAt)
	}
	if m.template != nil {
		fields = append(fields, checkupanalyze.FieldClinicCheckupID)
	}
	if m.title != nil {
		fields = append(fields, checkupanalyze.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, checkupanalyze.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckupAnalyzeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkupanalyze.FieldCreatedAt:
		return m.CreatedAt()
	case checkupanalyze.FieldUpdatedAt:
		return m.UpdatedAt()
	case checkupanalyze.FieldDeletedAt:
		return m.DeletedAt()
	case checkupanalyze.FieldClinicCheckupID:
		return m.ClinicCheckupID()
	case checkupanalyze.FieldTitle:
		return m.Title()
	case checkupanalyze.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckupAnalyzeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkupanalyze.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case checkupanalyze.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case checkupanalyze.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case checkupanalyze.FieldClinicCheckupID:
		return m.OldClinicCheckupID(ctx)
	case checkupanalyze.FieldTitle:
		return m.OldTitle(ctx)
	case checkupanalyze.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown CheckupAnalyze field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckupAnalyzeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkupanalyze.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case checkupanalyze.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case checkupanalyze.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case checkupanalyze.FieldClinicCheckupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicCheckupID(v)
		return nil
	case checkupanalyze.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case checkupanalyze.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown CheckupAnalyze field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckupAnalyzeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckupAnalyzeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckupAnalyzeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CheckupAnalyze numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckupAnalyzeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkupanalyze.FieldDeletedAt) {
		fields = append(fields, checkupanalyze.FieldDeletedAt)
	}
	if m.FieldCleared(checkupanalyze.FieldDescription) {
		fields = append(fields, checkupanalyze.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckupAnalyzeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckupAnalyzeMutation) ClearField(name string) error {
	switch name {
	case checkupanalyze.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case checkupanalyze.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown CheckupAnalyze nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckupAnalyzeMutation) ResetField(name string) error {
	switch name {
	case checkupanalyze.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case checkupanalyze.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case checkupanalyze.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case checkupanalyze.FieldClinicCheckupID:
		m.ResetClinicCheckupID()
		return nil
	case checkupanalyze.FieldTitle:
		m.ResetTitle()
		return nil
	case checkupanalyze.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown CheckupAnalyze field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckupAnalyzeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.template != nil {
		edges = append(edges, checkupanalyze.EdgeTemplate)
	}
	if m.interpretations != nil {
		edges = append(edges, checkupanalyze.EdgeInterpretations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckupAnalyzeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkupanalyze.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case checkupanalyze.EdgeInterpretations:
		ids := make([]ent.Value, 0, len(m.interpretations))
		for id := range m.interpretations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckupAnalyzeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedinterpretations != nil {
		edges = append(edges, checkupanalyze.EdgeInterpretations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckupAnalyzeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case checkupanalyze.EdgeInterpretations:
		ids := make([]ent.Value, 0, len(m.removedinterpretations))
		for id := range m.removedinterpretations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckupAnalyzeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtemplate {
		edges = append(edges, checkupanalyze.EdgeTemplate)
	}
	if m.clearedinterpretations {
		edges = append(edges, checkupanalyze.EdgeInterpretations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckupAnalyzeMutation) EdgeCleared(name string) bool {
	switch name {
	case checkupanalyze.EdgeTemplate:
		return m.clearedtemplate
	case checkupanalyze.EdgeInterpretations:
		return m.clearedinterpretations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckupAnalyzeMutation) ClearEdge(name string) error {
	switch name {
	case checkupanalyze.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown CheckupAnalyze unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckupAnalyzeMutation) ResetEdge(name string) error {
	switch name {
	case checkupanalyze.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case checkupanalyze.EdgeInterpretations:
		m.ResetInterpretations()
		return nil
	}
	return fmt.Errorf("unknown CheckupAnalyze edge %s", name)
}

// ClinicMutation represents an operation that mutates the Clinic nodes in the graph.
type ClinicMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	title                    *string
	slug                     *string
	description              *string
	logo_key                 *string
	phone                    *string
	address                  *string
	city                     *string
	province                 *string
	is_active                *bool
	is_verified              *bool
	clearedFields            map[string]struct{}
	group                    *uuid.UUID
	clearedgroup             bool
	doctors                  map[uuid.UUID]struct{}
	removeddoctors           map[uuid.UUID]struct{}
	cleareddoctors           bool
	alerts                   map[uuid.UUID]struct{}
	removedalerts            map[uuid.UUID]struct{}
	clearedalerts            bool
	media                    map[uuid.UUID]struct{}
	removedmedia             map[uuid.UUID]struct{}
	clearedmedia             bool
	checkup_templates        map[uuid.UUID]struct{}
	removedcheckup_templates map[uuid.UUID]struct{}
	clearedcheckup_templates bool
	done                     bool
	oldValue                 func(context.Context) (*Clinic, error)
	predicates               []predicate.Clinic
}

var _ ent.Mutation = (*ClinicMutation)(nil)

// clinicOption allows management of the mutation configuration using functional options.
type clinicOption func(*ClinicMutation)

// newClinicMutation creates new mutation for the Clinic entity.
func newClinicMutation(c config, op Op, opts ...clinicOption) *ClinicMutation {
	m := &ClinicMutation{
		config:        c,
		op:            op,
		typ:           TypeClinic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicID sets the ID field of the mutation.
func withClinicID(id uuid.UUID) clinicOption {
	return func(m *ClinicMutation) {
		var (
			err   error
			once  sync.Once
			value *Clinic
		)
		m.oldValue = func(ctx context.Context) (*Clinic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Clinic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinic sets the old Clinic of the mutation.
func withClinic(node *Clinic) clinicOption {
	return func(m *ClinicMutation) {
		m.oldValue = func(context.Context) (*Clinic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Clinic entities.
func (m *ClinicMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Clinic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ClinicMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ClinicMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ClinicMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[clinic.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ClinicMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[clinic.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ClinicMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, clinic.FieldDeletedAt)
}

// SetGroupID sets the "group_id" field.
func (m *ClinicMutation) SetGroupID(u uuid.UUID) {
	m.group = &u
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ClinicMutation) GroupID() (r uuid.UUID, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldGroupID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *ClinicMutation) ClearGroupID() {
	m.group = nil
	m.clearedFields[clinic.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *ClinicMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[clinic.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ClinicMutation) ResetGroupID() {
	m.group = nil
	delete(m.clearedFields, clinic.FieldGroupID)
}

// SetTitle sets the "title" field.
func (m *ClinicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ClinicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ClinicMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *ClinicMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ClinicMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ClinicMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *ClinicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ClinicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ClinicMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[clinic.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ClinicMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[clinic.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ClinicMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, clinic.FieldDescription)
}

// SetLogoKey sets the "logo_key" field.
func (m *ClinicMutation) SetLogoKey(s string) {
	m.logo_key = &s
}

// LogoKey returns the value of the "logo_key" field in the mutation.
func (m *ClinicMutation) LogoKey() (r string, exists bool) {
	v := m.logo_key
	if v == nil {
		return
	}
	return *v, true
}

// OldLogoKey returns the old "logo_key" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldLogoKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogoKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogoKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogoKey: %w", err)
	}
	return oldValue.LogoKey, nil
}

// ClearLogoKey clears the value of the "logo_key" field.
func (m *ClinicMutation) ClearLogoKey() {
	m.logo_key = nil
	m.clearedFields[clinic.FieldLogoKey] = struct{}{}
}

// LogoKeyCleared returns if the "logo_key" field was cleared in this mutation.
func (m *ClinicMutation) LogoKeyCleared() bool {
	_, ok := m.clearedFields[clinic.FieldLogoKey]
	return ok
}

// ResetLogoKey resets all changes to the "logo_key" field.
func (m *ClinicMutation) ResetLogoKey() {
	m.logo_key = nil
	delete(m.clearedFields, clinic.FieldLogoKey)
}

// SetPhone sets the "phone" field.
func (m *ClinicMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ClinicMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ClinicMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[clinic.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ClinicMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[clinic.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ClinicMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, clinic.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *ClinicMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ClinicMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ClinicMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[clinic.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ClinicMutation) AddressCleared() bool {
	_, ok := m.clearedFields[clinic.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ClinicMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, clinic.FieldAddress)
}

// SetCity sets the "city" field.
func (m *ClinicMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ClinicMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ClinicMutation) ClearCity() {
	m.city = nil
	m.clearedFields[clinic.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ClinicMutation) CityCleared() bool {
	_, ok := m.clearedFields[clinic.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ClinicMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, clinic.FieldCity)
}

// SetProvince sets the "province" field.
func (m *ClinicMutation) SetProvince(s string) {
	m.province = &s
}

// Province returns the value of the "province" field in the mutation.
func (m *ClinicMutation) Province() (r string, exists bool) {
	v := m.province
	if v == nil {
		return
	}
	return *v, true
}

// OldProvince returns the old "province" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldProvince(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvince is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvince requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvince: %w", err)
	}
	return oldValue.Province, nil
}

// ClearProvince clears the value of the "province" field.
func (m *ClinicMutation) ClearProvince() {
	m.province = nil
	m.clearedFields[clinic.FieldProvince] = struct{}{}
}

// ProvinceCleared returns if the "province" field was cleared in this mutation.
func (m *ClinicMutation) ProvinceCleared() bool {
	_, ok := m.clearedFields[clinic.FieldProvince]
	return ok
}

// ResetProvince resets all changes to the "province" field.
func (m *ClinicMutation) ResetProvince() {
	m.province = nil
	delete(m.clearedFields, clinic.FieldProvince)
}

// SetIsActive sets the "is_active" field.
func (m *ClinicMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ClinicMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ClinicMutation) ResetIsActive() {
	m.is_active = nil
}

// SetIsVerified sets the "is_verified" field.
func (m *ClinicMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *ClinicMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *ClinicMutation) ResetIsVerified() {
	m.is_verified = nil
}

// ClearGroup clears the "group" edge to the ClinicGroup entity.
func (m *ClinicMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[clinic.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the ClinicGroup entity was cleared.
func (m *ClinicMutation) GroupCleared() bool {
	return m.GroupIDCleared() || m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *ClinicMutation) GroupIDs() (ids []uuid.UUID) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *ClinicMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// AddDoctorIDs adds the "doctors" edge to the Doctor entity by ids.
func (m *ClinicMutation) AddDoctorIDs(ids ...uuid.UUID) {
	if m.doctors == nil {
		m.doctors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.doctors[ids[i]] = struct{}{}
	}
}

// ClearDoctors clears the "doctors" edge to the Doctor entity.
func (m *ClinicMutation) ClearDoctors() {
	m.cleareddoctors = true
}

// DoctorsCleared reports if the "doctors" edge to the Doctor entity was cleared.
func (m *ClinicMutation) DoctorsCleared() bool {
	return m.cleareddoctors
}

// RemoveDoctorIDs removes the "doctors" edge to the Doctor entity by IDs.
func (m *ClinicMutation) RemoveDoctorIDs(ids ...uuid.UUID) {
	if m.removeddoctors == nil {
		m.removeddoctors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.doctors, ids[i])
		m.removeddoctors[ids[i]] = struct{}{}
	}
}

// RemovedDoctors returns the removed IDs of the "doctors" edge to the Doctor entity.
func (m *ClinicMutation) RemovedDoctorsIDs() (ids []uuid.UUID) {
	for id := range m.removeddoctors {
		ids = append(ids, id)
	}
	return
}

// DoctorsIDs returns the "doctors" edge IDs in the mutation.
func (m *ClinicMutation) DoctorsIDs() (ids []uuid.UUID) {
	for id := range m.doctors {
		ids = append(ids, id)
	}
	return
}

// ResetDoctors resets all changes to the "doctors" edge.
func (m *ClinicMutation) ResetDoctors() {
	m.doctors = nil
	m.cleareddoctors = false
	m.removeddoctors = nil
}

// AddAlertIDs adds the "alerts" edge to the Alert entity by ids.
func (m *ClinicMutation) AddAlertIDs(ids ...uuid.UUID) {
	if m.alerts == nil {
		m.alerts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.alerts[ids[i]] = struct{}{}
	}
}

// ClearAlerts clears the "alerts" edge to the Alert entity.
func (m *ClinicMutation) ClearAlerts() {
	m.clearedalerts = true
}

// AlertsCleared reports if the "alerts" edge to the Alert entity was cleared.
func (m *ClinicMutation) AlertsCleared() bool {
	return m.clearedalerts
}

// RemoveAlertIDs removes the "alerts" edge to the Alert entity by IDs.
func (m *ClinicMutation) RemoveAlertIDs(ids ...uuid.UUID) {
	if m.removedalerts == nil {
		m.removedalerts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.alerts, ids[i])
		m.removedalerts[ids[i]] = struct{}{}
	}
}

// RemovedAlerts returns the removed IDs of the "alerts" edge to the Alert entity.
func (m *ClinicMutation) RemovedAlertsIDs() (ids []uuid.UUID) {
	for id := range m.removedalerts {
		ids = append(ids, id)
	}
	return
}

// AlertsIDs returns the "alerts" edge IDs in the mutation.
func (m *ClinicMutation) AlertsIDs() (ids []uuid.UUID) {
	for id := range m.alerts {
		ids = append(ids, id)
	}
	return
}

// ResetAlerts resets all changes to the "alerts" edge.
func (m *ClinicMutation) ResetAlerts() {
	m.alerts = nil
	m.clearedalerts = false
	m.removedalerts = nil
}

// AddMediumIDs adds the "media" edge to the Media entity by ids.
func (m *ClinicMutation) AddMediumIDs(ids ...uuid.UUID) {
	if m.media == nil {
		m.media = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.media[ids[i]] = struct{}{}
	}
}

// ClearMedia clears the "media" edge to the Media entity.
func (m *ClinicMutation) ClearMedia() {
	m.clearedmedia = true
}

// MediaCleared reports if the "media" edge to the Media entity was cleared.
func (m *ClinicMutation) MediaCleared() bool {
	return m.clearedmedia
}

// RemoveMediumIDs removes the "media" edge to the Media entity by IDs.
func (m *ClinicMutation) RemoveMediumIDs(ids ...uuid.UUID) {
	if m.removedmedia == nil {
		m.removedmedia = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.media, ids[i])
		m.removedmedia[ids[i]] = struct{}{}
	}
}

// RemovedMedia returns the removed IDs of the "media" edge to the Media entity.
func (m *ClinicMutation) RemovedMediaIDs() (ids []uuid.UUID) {
	for id := range m.removedmedia {
		ids = append(ids, id)
	}
	return
}

// MediaIDs returns the "media" edge IDs in the mutation.
func (m *ClinicMutation) MediaIDs() (ids []uuid.UUID) {
	for id := range m.media {
		ids = append(ids, id)
	}
	return
}

// ResetMedia resets all changes to the "media" edge.
func (m *ClinicMutation) ResetMedia() {
	m.media = nil
	m.clearedmedia = false
	m.removedmedia = nil
}

// AddCheckupTemplateIDs adds the "checkup_templates" edge to the ClinicCheckup entity by ids.
func (m *ClinicMutation) AddCheckupTemplateIDs(ids ...uuid.UUID) {
	if m.checkup_templates == nil {
		m.checkup_templates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.checkup_templates[ids[i]] = struct{}{}
	}
}

// ClearCheckupTemplates clears the "checkup_templates" edge to the ClinicCheckup entity.
func (m *ClinicMutation) ClearCheckupTemplates() {
	m.clearedcheckup_templates = true
}

// CheckupTemplatesCleared reports if the "checkup_templates" edge to the ClinicCheckup entity was cleared.
func (m *ClinicMutation) CheckupTemplatesCleared() bool {
	return m.clearedcheckup_templates
}

// RemoveCheckupTemplateIDs removes the "checkup_templates" edge to the ClinicCheckup entity by IDs.
func (m *ClinicMutation) RemoveCheckupTemplateIDs(ids ...uuid.UUID) {
	if m.removedcheckup_templates == nil {
		m.removedcheckup_templates = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.checkup_templates, ids[i])
		m.removedcheckup_templates[ids[i]] = struct{}{}
	}
}

// RemovedCheckupTemplates returns the removed IDs of the "checkup_templates" edge to the ClinicCheckup entity.
func (m *ClinicMutation) RemovedCheckupTemplatesIDs() (ids []uuid.UUID) {
	for id := range m.removedcheckup_templates {
		ids = append(ids, id)
	}
	return
}

// CheckupTemplatesIDs returns the "checkup_templates" edge IDs in the mutation.
func (m *ClinicMutation) CheckupTemplatesIDs() (ids []uuid.UUID) {
	for id := range m.checkup_templates {
		ids = append(ids, id)
	}
	return
}

// ResetCheckupTemplates resets all changes to the "checkup_templates" edge.
func (m *ClinicMutation) ResetCheckupTemplates() {
	m.checkup_templates = nil
	m.clearedcheckup_templates = false
	m.removedcheckup_templates = nil
}

// Where appends a list predicates to the ClinicMutation builder.
func (m *ClinicMutation) Where(ps ...predicate.Clinic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Clinic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Clinic).
func (m *ClinicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, clinic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinic.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, clinic.FieldDeletedAt)
	}
	if m.group != nil {
		fields = append(fields, clinic.FieldGroupID)
	}
	if m.title != nil {
		fields = append(fields, clinic.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, clinic.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, clinic.FieldDescription)
	}
	if m.logo_key != nil {
		fields = append(fields, clinic.FieldLogoKey)
	}
	if m.phone != nil {
		fields = append(fields, clinic.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, clinic.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, clinic.FieldCity)
	}
	if m.province != nil {
		fields = append(fields, clinic.FieldProvince)
	}
	if m.is_active != nil {
		fields = append(fields, clinic.FieldIsActive)
	}
	if m.is_verified != nil {
		fields = append(fields, clinic.FieldIsVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.CreatedAt()
	case clinic.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinic.FieldDeletedAt:
		return m.DeletedAt()
	case clinic.FieldGroupID:
		return m.GroupID()
	case clinic.FieldTitle:
		return m.Title()
	case clinic.FieldSlug:
		return m.Slug()
	case clinic.FieldDescription:
		return m.Description()
	case clinic.FieldLogoKey:
		return m.LogoKey()
	case clinic.FieldPhone:
		return m.Phone()
	case clinic.FieldAddress:
		return m.Address()
	case clinic.FieldCity:
		return m.City()
	case clinic.FieldProvince:
		return m.Province()
	case clinic.FieldIsActive:
		return m.IsActive()
	case clinic.FieldIsVerified:
		return m.IsVerified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinic.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case clinic.FieldGroupID:
		return m.OldGroupID(ctx)
	case clinic.FieldTitle:
		return m.OldTitle(ctx)
	case clinic.FieldSlug:
		return m.OldSlug(ctx)
	case clinic.FieldDescription:
		return m.OldDescription(ctx)
	case clinic.FieldLogoKey:
		return m.OldLogoKey(ctx)
	case clinic.FieldPhone:
		return m.OldPhone(ctx)
	case clinic.FieldAddress:
		return m.OldAddress(ctx)
	case clinic.FieldCity:
		return m.OldCity(ctx)
	case clinic.FieldProvince:
		return m.OldProvince(ctx)
	case clinic.FieldIsActive:
		return m.OldIsActive(ctx)
	case clinic.FieldIsVerified:
		return m.OldIsVerified(ctx)
	}
	return nil, fmt.Errorf("unknown Clinic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinic.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case clinic.FieldGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case clinic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case clinic.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case clinic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case clinic.FieldLogoKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogoKey(v)
		return nil
	case clinic.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case clinic.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case clinic.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case clinic.FieldProvince:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvince(v)
		return nil
	case clinic.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case clinic.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Clinic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinic.FieldDeletedAt) {
		fields = append(fields, clinic.FieldDeletedAt)
	}
	if m.FieldCleared(clinic.FieldGroupID) {
		fields = append(fields, clinic.FieldGroupID)
	}
	if m.FieldCleared(clinic.FieldDescription) {
		fields = append(fields, clinic.FieldDescription)
	}
	if m.FieldCleared(clinic.FieldLogoKey) {
		fields = append(fields, clinic.FieldLogoKey)
	}
	if m.FieldCleared(clinic.FieldPhone) {
		fields = append(fields, clinic.FieldPhone)
	}
	if m.FieldCleared(clinic.FieldAddress) {
		fields = append(fields, clinic.FieldAddress)
	}
	if m.FieldCleared(clinic.FieldCity) {
		fields = append(fields, clinic.FieldCity)
	}
	if m.FieldCleared(clinic.FieldProvince) {
		fields = append(fields, clinic.FieldProvince)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMutation) ClearField(name string) error {
	switch name {
	case clinic.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case clinic.FieldGroupID:
		m.ClearGroupID()
		return nil
	case clinic.FieldDescription:
		m.ClearDescription()
		return nil
	case clinic.FieldLogoKey:
		m.ClearLogoKey()
		return nil
	case clinic.FieldPhone:
		m.ClearPhone()
		return nil
	case clinic.FieldAddress:
		m.ClearAddress()
		return nil
	case clinic.FieldCity:
		m.ClearCity()
		return nil
	case clinic.FieldProvince:
		m.ClearProvince()
		return nil
	}
	return fmt.Errorf("unknown Clinic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMutation) ResetField(name string) error {
	switch name {
	case clinic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinic.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case clinic.FieldGroupID:
		m.ResetGroupID()
		return nil
	case clinic.FieldTitle:
		m.ResetTitle()
		return nil
	case clinic.FieldSlug:
		m.ResetSlug()
		return nil
	case clinic.FieldDescription:
		m.ResetDescription()
		return nil
	case clinic.FieldLogoKey:
		m.ResetLogoKey()
		return nil
	case clinic.FieldPhone:
		m.ResetPhone()
		return nil
	case clinic.FieldAddress:
		m.ResetAddress()
		return nil
	case clinic.FieldCity:
		m.ResetCity()
		return nil
	case clinic.FieldProvince:
		m.ResetProvince()
		return nil
	case clinic.FieldIsActive:
		m.ResetIsActive()
		return nil
	case clinic.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.group != nil {
		edges = append(edges, clinic.EdgeGroup)
	}
	if m.doctors != nil {
		edges = append(edges, clinic.EdgeDoctors)
	}
	if m.alerts != nil {
		edges = append(edges, clinic.EdgeAlerts)
	}
	if m.media != nil {
		edges = append(edges, clinic.EdgeMedia)
	}
	if m.checkup_templates != nil {
		edges = append(edges, clinic.EdgeCheckupTemplates)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clinic.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case clinic.EdgeDoctors:
		ids := make([]ent.Value, 0, len(m.doctors))
		for id := range m.doctors {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.alerts))
		for id := range m.alerts {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgeMedia:
		ids := make([]ent.Value, 0, len(m.media))
		for id := range m.media {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgeCheckupTemplates:
		ids := make([]ent.Value, 0, len(m.checkup_templates))
		for id := range m.checkup_templates {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removeddoctors != nil {
		edges = append(edges, clinic.EdgeDoctors)
	}
	if m.removedalerts != nil {
		edges = append(edges, clinic.EdgeAlerts)
	}
	if m.removedmedia != nil {
		edges = append(edges, clinic.EdgeMedia)
	}
	if m.removedcheckup_templates != nil {
		edges = append(edges, clinic.EdgeCheckupTemplates)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case clinic.EdgeDoctors:
		ids := make([]ent.Value, 0, len(m.removeddoctors))
		for id := range m.removeddoctors {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgeAlerts:
		ids := make([]ent.Value, 0, len(m.removedalerts))
		for id := range m.removedalerts {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgeMedia:
		ids := make([]ent.Value, 0, len(m.removedmedia))
		for id := range m.removedmedia {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgeCheckupTemplates:
		ids := make([]ent.Value, 0, len(m.removedcheckup_templates))
		for id := range m.removedcheckup_templates {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedgroup {
		edges = append(edges, clinic.EdgeGroup)
	}
	if m.cleareddoctors {
		edges = append(edges, clinic.EdgeDoctors)
	}
	if m.clearedalerts {
		edges = append(edges, clinic.EdgeAlerts)
	}
	if m.clearedmedia {
		edges = append(edges, clinic.EdgeMedia)
	}
	if m.clearedcheckup_templates {
		edges = append(edges, clinic.EdgeCheckupTemplates)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMutation) EdgeCleared(name string) bool {
	switch name {
	case clinic.EdgeGroup:
		return m.clearedgroup
	case clinic.EdgeDoctors:
		return m.cleareddoctors
	case clinic.EdgeAlerts:
		return m.clearedalerts
	case clinic.EdgeMedia:
		return m.clearedmedia
	case clinic.EdgeCheckupTemplates:
		return m.clearedcheckup_templates
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMutation) ClearEdge(name string) error {
	switch name {
	case clinic.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown Clinic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMutation) ResetEdge(name string) error {
	switch name {
	case clinic.EdgeGroup:
		m.ResetGroup()
		return nil
	case clinic.EdgeDoctors:
		m.ResetDoctors()
		return nil
	case clinic.EdgeAlerts:
		m.ResetAlerts()
		return nil
	case clinic.EdgeMedia:
		m.ResetMedia()
		return nil
	case clinic.EdgeCheckupTemplates:
		m.ResetCheckupTemplates()
		return nil
	}
	return fmt.Errorf("unknown Clinic edge %s", name)
}

// ClinicCheckupMutation represents an operation that mutates the ClinicCheckup nodes in the graph.
type ClinicCheckupMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	title                    *string
	description              *string
	required_time_minutes    *int
	addrequired_time_minutes *int
	required_auth            *bool
	question_count           *int
	addquestion_count        *int
	approvers                *string
	is_active                *bool
	clearedFields            map[string]struct{}
	clinic                   *uuid.UUID
	clearedclinic            bool
	starting_question        *uuid.UUID
	clearedstarting_question bool
	analyzes                 map[uuid.UUID]struct{}
	removedanalyzes          map[uuid.UUID]struct{}
	clearedanalyzes          bool
	sessions                 map[uuid.UUID]struct{}
	removedsessions          map[uuid.UUID]struct{}
	clearedsessions          bool
	done                     bool
	oldValue                 func(context.Context) (*ClinicCheckup, error)
	predicates               []predicate.ClinicCheckup
}

var _ ent.Mutation = (*ClinicCheckupMutation)(nil)

// cliniccheckupOption allows management of the mutation configuration using functional options.
type cliniccheckupOption func(*ClinicCheckupMutation)

// newClinicCheckupMutation creates new mutation for the ClinicCheckup entity.
func newClinicCheckupMutation(c config, op Op, opts ...cliniccheckupOption) *ClinicCheckupMutation {
	m := &ClinicCheckupMutation{
		config:        c,
		op:            op,
		typ:           TypeClinicCheckup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicCheckupID sets the ID field of the mutation.
func withClinicCheckupID(id uuid.UUID) cliniccheckupOption {
	return func(m *ClinicCheckupMutation) {
		var (
			err   error
			once  sync.Once
			value *ClinicCheckup
		)
		m.oldValue = func(ctx context.Context) (*ClinicCheckup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClinicCheckup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinicCheckup sets the old ClinicCheckup of the mutation.
func withClinicCheckup(node *ClinicCheckup) cliniccheckupOption {
	return func(m *ClinicCheckupMutation) {
		m.oldValue = func(context.Context) (*ClinicCheckup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicCheckupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicCheckupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClinicCheckup entities.
func (m *ClinicCheckupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicCheckupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicCheckupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClinicCheckup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicCheckupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicCheckupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicCheckupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicCheckupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicCheckupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicCheckupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ClinicCheckupMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ClinicCheckupMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ClinicCheckupMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[cliniccheckup.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ClinicCheckupMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[cliniccheckup.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ClinicCheckupMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, cliniccheckup.FieldDeletedAt)
}

// SetClinicID sets the "clinic_id" field.
func (m *ClinicCheckupMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *ClinicCheckupMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *ClinicCheckupMutation) ResetClinicID() {
	m.clinic = nil
}

// SetTitle sets the "title" field.
func (m *ClinicCheckupMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ClinicCheckupMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ClinicCheckupMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ClinicCheckupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ClinicCheckupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ClinicCheckupMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[cliniccheckup.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ClinicCheckupMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[cliniccheckup.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ClinicCheckupMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, cliniccheckup.FieldDescription)
}

// SetRequiredTimeMinutes sets the "required_time_minutes" field.
func (m *ClinicCheckupMutation) SetRequiredTimeMinutes(i int) {
	m.required_time_minutes = &i
	m.addrequired_time_minutes = nil
}

// RequiredTimeMinutes returns the value of the "required_time_minutes" field in the mutation.
func (m *ClinicCheckupMutation) RequiredTimeMinutes() (r int, exists bool) {
	v := m.required_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredTimeMinutes returns the old "required_time_minutes" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldRequiredTimeMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredTimeMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredTimeMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredTimeMinutes: %w", err)
	}
	return oldValue.RequiredTimeMinutes, nil
}

// AddRequiredTimeMinutes adds i to the "required_time_minutes" field.
func (m *ClinicCheckupMutation) AddRequiredTimeMinutes(i int) {
	if m.addrequired_time_minutes != nil {
		*m.addrequired_time_minutes += i
	} else {
		m.addrequired_time_minutes = &i
	}
}

// AddedRequiredTimeMinutes returns the value that was added to the "required_time_minutes" field in this mutation.
func (m *ClinicCheckupMutation) AddedRequiredTimeMinutes() (r int, exists bool) {
	v := m.addrequired_time_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequiredTimeMinutes resets all changes to the "required_time_minutes" field.
func (m *ClinicCheckupMutation) ResetRequiredTimeMinutes() {
	m.required_time_minutes = nil
	m.addrequired_time_minutes = nil
}

// SetRequiredAuth sets the "required_auth" field.
func (m *ClinicCheckupMutation) SetRequiredAuth(b bool) {
	m.required_auth = &b
}

// RequiredAuth returns the value of the "required_auth" field in the mutation.
func (m *ClinicCheckupMutation) RequiredAuth() (r bool, exists bool) {
	v := m.required_auth
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredAuth returns the old "required_auth" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldRequiredAuth(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredAuth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredAuth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredAuth: %w", err)
	}
	return oldValue.RequiredAuth, nil
}

// ResetRequiredAuth resets all changes to the "required_auth" field.
func (m *ClinicCheckupMutation) ResetRequiredAuth() {
	m.required_auth = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *ClinicCheckupMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *ClinicCheckupMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *ClinicCheckupMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *ClinicCheckupMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *ClinicCheckupMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetApprovers sets the "approvers" field.
func (m *ClinicCheckupMutation) SetApprovers(s string) {
	m.approvers = &s
}

// Approvers returns the value of the "approvers" field in the mutation.
func (m *ClinicCheckupMutation) Approvers() (r string, exists bool) {
	v := m.approvers
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovers returns the old "approvers" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldApprovers(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovers: %w", err)
	}
	return oldValue.Approvers, nil
}

// ClearApprovers clears the value of the "approvers" field.
func (m *ClinicCheckupMutation) ClearApprovers() {
	m.approvers = nil
	m.clearedFields[cliniccheckup.FieldApprovers] = struct{}{}
}

// ApproversCleared returns if the "approvers" field was cleared in this mutation.
func (m *ClinicCheckupMutation) ApproversCleared() bool {
	_, ok := m.clearedFields[cliniccheckup.FieldApprovers]
	return ok
}

// ResetApprovers resets all changes to the "approvers" field.
func (m *ClinicCheckupMutation) ResetApprovers() {
	m.approvers = nil
	delete(m.clearedFields, cliniccheckup.FieldApprovers)
}

// SetStartingQuestionID sets the "starting_question_id" field.
func (m *ClinicCheckupMutation) SetStartingQuestionID(u uuid.UUID) {
	m.starting_question = &u
}

// StartingQuestionID returns the value of the "starting_question_id" field in the mutation.
func (m *ClinicCheckupMutation) StartingQuestionID() (r uuid.UUID, exists bool) {
	v := m.starting_question
	if v == nil {
		return
	}
	return *v, true
}

// OldStartingQuestionID returns the old "starting_question_id" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldStartingQuestionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartingQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartingQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartingQuestionID: %w", err)
	}
	return oldValue.StartingQuestionID, nil
}

// ClearStartingQuestionID clears the value of the "starting_question_id" field.
func (m *ClinicCheckupMutation) ClearStartingQuestionID() {
	m.starting_question = nil
	m.clearedFields[cliniccheckup.FieldStartingQuestionID] = struct{}{}
}

// StartingQuestionIDCleared returns if the "starting_question_id" field was cleared in this mutation.
func (m *ClinicCheckupMutation) StartingQuestionIDCleared() bool {
	_, ok := m.clearedFields[cliniccheckup.FieldStartingQuestionID]
	return ok
}

// ResetStartingQuestionID resets all changes to the "starting_question_id" field.
func (m *ClinicCheckupMutation) ResetStartingQuestionID() {
	m.starting_question = nil
	delete(m.clearedFields, cliniccheckup.FieldStartingQuestionID)
}

// SetIsActive sets the "is_active" field.
func (m *ClinicCheckupMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ClinicCheckupMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ClinicCheckup entity.
// If the ClinicCheckup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicCheckupMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ClinicCheckupMutation) ResetIsActive() {
	m.is_active = nil
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *ClinicCheckupMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[cliniccheckup.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *ClinicCheckupMutation) ClinicCleared() bool {
	return m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *ClinicCheckupMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *ClinicCheckupMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// ClearStartingQuestion clears the "starting_question" edge to the QuestionShare entity.
func (m *ClinicCheckupMutation) ClearStartingQuestion() {
	m.clearedstarting_question = true
	m.clearedFields[cliniccheckup.FieldStartingQuestionID] = struct{}{}
}

// StartingQuestionCleared reports if the "starting_question" edge to the QuestionShare entity was cleared.
func (m *ClinicCheckupMutation) StartingQuestionCleared() bool {
	return m.StartingQuestionIDCleared() || m.clearedstarting_question
}

// StartingQuestionIDs returns the "starting_question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StartingQuestionID instead. It exists only for internal usage by the builders.
func (m *ClinicCheckupMutation) StartingQuestionIDs() (ids []uuid.UUID) {
	if id := m.starting_question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStartingQuestion resets all changes to the "starting_question" edge.
func (m *ClinicCheckupMutation) ResetStartingQuestion() {
	m.starting_question = nil
	m.clearedstarting_question = false
}

// AddAnalyzeIDs adds the "analyzes" edge to the CheckupAnalyze entity by ids.
func (m *ClinicCheckupMutation) AddAnalyzeIDs(ids ...uuid.UUID) {
	if m.analyzes == nil {
		m.analyzes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.analyzes[ids[i]] = struct{}{}
	}
}

// ClearAnalyzes clears the "analyzes" edge to the CheckupAnalyze entity.
func (m *ClinicCheckupMutation) ClearAnalyzes() {
	m.clearedanalyzes = true
}

// AnalyzesCleared reports if the "analyzes" edge to the CheckupAnalyze entity was cleared.
func (m *ClinicCheckupMutation) AnalyzesCleared() bool {
	return m.clearedanalyzes
}

// RemoveAnalyzeIDs removes the "analyzes" edge to the CheckupAnalyze entity by IDs.
func (m *ClinicCheckupMutation) RemoveAnalyzeIDs(ids ...uuid.UUID) {
	if m.removedanalyzes == nil {
		m.removedanalyzes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.analyzes, ids[i])
		m.removedanalyzes[ids[i]] = struct{}{}
	}
}

// RemovedAnalyzes returns the removed IDs of the "analyzes" edge to the CheckupAnalyze entity.
func (m *ClinicCheckupMutation) RemovedAnalyzesIDs() (ids []uuid.UUID) {
	for id := range m.removedanalyzes {
		ids = append(ids, id)
	}
	return
}

// AnalyzesIDs returns the "analyzes" edge IDs in the mutation.
func (m *ClinicCheckupMutation) AnalyzesIDs() (ids []uuid.UUID) {
	for id := range m.analyzes {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyzes resets all changes to the "analyzes" edge.
func (m *ClinicCheckupMutation) ResetAnalyzes() {
	m.analyzes = nil
	m.clearedanalyzes = false
	m.removedanalyzes = nil
}

// AddSessionIDs adds the "sessions" edge to the Checkup entity by ids.
func (m *ClinicCheckupMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Checkup entity.
func (m *ClinicCheckupMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Checkup entity was cleared.
func (m *ClinicCheckupMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Checkup entity by IDs.
func (m *ClinicCheckupMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Checkup entity.
func (m *ClinicCheckupMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ClinicCheckupMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ClinicCheckupMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the ClinicCheckupMutation builder.
func (m *ClinicCheckupMutation) Where(ps ...predicate.ClinicCheckup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicCheckupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicCheckupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClinicCheckup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicCheckupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicCheckupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClinicCheckup).
func (m *ClinicCheckupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicCheckupMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, cliniccheckup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cliniccheckup.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, cliniccheckup.FieldDeletedAt)
	}
	if m.clinic != nil {
		fields = append(fields, cliniccheckup.FieldClinicID)
	}
	if m.title != nil {
		fields = append(fields, cliniccheckup.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, cliniccheckup.FieldDescription)
	}
	if m.required_time_minutes != nil {
		fields = append(fields, cliniccheckup.FieldRequiredTimeMinutes)
	}
	if m.required_auth != nil {
		fields = append(fields, cliniccheckup.FieldRequiredAuth)
	}
	if m.question_count != nil {
		fields = append(fields, cliniccheckup.FieldQuestionCount)
	}
	if m.approvers != nil {
		fields = append(fields, cliniccheckup.FieldApprovers)
	}
	if m.starting_question != nil {
		fields = append(fields, cliniccheckup.FieldStartingQuestionID)
	}
	if m.is_active != nil {
		fields = append(fields, cliniccheckup.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicCheckupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cliniccheckup.FieldCreatedAt:
		return m.CreatedAt()
	case cliniccheckup.FieldUpdatedAt:
		return m.UpdatedAt()
	case cliniccheckup.FieldDeletedAt:
		return m.DeletedAt()
	case cliniccheckup.FieldClinicID:
		return m.ClinicID()
	case cliniccheckup.FieldTitle:
		return m.Title()
	case cliniccheckup.FieldDescription:
		return m.Description()
	case cliniccheckup.FieldRequiredTimeMinutes:
		return m.RequiredTimeMinutes()
	case cliniccheckup.FieldRequiredAuth:
		return m.RequiredAuth()
	case cliniccheckup.FieldQuestionCount:
		return m.QuestionCount()
	case cliniccheckup.FieldApprovers:
		return m.Approvers()
	case cliniccheckup.FieldStartingQuestionID:
		return m.StartingQuestionID()
	case cliniccheckup.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicCheckupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cliniccheckup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cliniccheckup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case cliniccheckup.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case cliniccheckup.FieldClinicID:
		return m.OldClinicID(ctx)
	case cliniccheckup.FieldTitle:
		return m.OldTitle(ctx)
	case cliniccheckup.FieldDescription:
		return m.OldDescription(ctx)
	case cliniccheckup.FieldRequiredTimeMinutes:
		return m.OldRequiredTimeMinutes(ctx)
	case cliniccheckup.FieldRequiredAuth:
		return m.OldRequiredAuth(ctx)
	case cliniccheckup.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case cliniccheckup.FieldApprovers:
		return m.OldApprovers(ctx)
	case cliniccheckup.FieldStartingQuestionID:
		return m.OldStartingQuestionID(ctx)
	case cliniccheckup.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown ClinicCheckup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicCheckupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cliniccheckup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cliniccheckup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case cliniccheckup.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case cliniccheckup.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case cliniccheckup.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case cliniccheckup.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case cliniccheckup.FieldRequiredTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredTimeMinutes(v)
		return nil
	case cliniccheckup.FieldRequiredAuth:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredAuth(v)
		return nil
	case cliniccheckup.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case cliniccheckup.FieldApprovers:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovers(v)
		return nil
	case cliniccheckup.FieldStartingQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartingQuestionID(v)
		return nil
	case cliniccheckup.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicCheckup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicCheckupMutation) AddedFields() []string {
	var fields []string
	if m.addrequired_time_minutes != nil {
		fields = append(fields, cliniccheckup.FieldRequiredTimeMinutes)
	}
	if m.addquestion_count != nil {
		fields = append(fields, cliniccheckup.FieldQuestionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicCheckupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cliniccheckup.FieldRequiredTimeMinutes:
		return m.AddedRequiredTimeMinutes()
	case cliniccheckup.FieldQuestionCount:
		return m.AddedQuestionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicCheckupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cliniccheckup.FieldRequiredTimeMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequiredTimeMinutes(v)
		return nil
	case cliniccheckup.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicCheckup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicCheckupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cliniccheckup.FieldDeletedAt) {
		fields = append(fields, cliniccheckup.FieldDeletedAt)
	}
	if m.FieldCleared(cliniccheckup.FieldDescription) {
		fields = append(fields, cliniccheckup.FieldDescription)
	}
	if m.FieldCleared(cliniccheckup.FieldApprovers) {
		fields = append(fields, cliniccheckup.FieldApprovers)
	}
	if m.FieldCleared(cliniccheckup.FieldStartingQuestionID) {
		fields = append(fields, cliniccheckup.FieldStartingQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicCheckupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicCheckupMutation) ClearField(name string) error {
	switch name {
	case cliniccheckup.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case cliniccheckup.FieldDescription:
		m.ClearDescription()
		return nil
	case cliniccheckup.FieldApprovers:
		m.ClearApprovers()
		return nil
	case cliniccheckup.FieldStartingQuestionID:
		m.ClearStartingQuestionID()
		return nil
	}
	return fmt.Errorf("unknown ClinicCheckup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicCheckupMutation) ResetField(name string) error {
	switch name {
	case cliniccheckup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cliniccheckup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case cliniccheckup.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case cliniccheckup.FieldClinicID:
		m.ResetClinicID()
		return nil
	case cliniccheckup.FieldTitle:
		m.ResetTitle()
		return nil
	case cliniccheckup.FieldDescription:
		m.ResetDescription()
		return nil
	case cliniccheckup.FieldRequiredTimeMinutes:
		m.ResetRequiredTimeMinutes()
		return nil
	case cliniccheckup.FieldRequiredAuth:
		m.ResetRequiredAuth()
		return nil
	case cliniccheckup.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case cliniccheckup.FieldApprovers:
		m.ResetApprovers()
		return nil
	case cliniccheckup.FieldStartingQuestionID:
		m.ResetStartingQuestionID()
		return nil
	case cliniccheckup.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown ClinicCheckup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicCheckupMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clinic != nil {
		edges = append(edges, cliniccheckup.EdgeClinic)
	}
	if m.starting_question != nil {
		edges = append(edges, cliniccheckup.EdgeStartingQuestion)
	}
	if m.analyzes != nil {
		edges = append(edges, cliniccheckup.EdgeAnalyzes)
	}
	if m.sessions != nil {
		edges = append(edges, cliniccheckup.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicCheckupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cliniccheckup.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case cliniccheckup.EdgeStartingQuestion:
		if id := m.starting_question; id != nil {
			return []ent.Value{*id}
		}
	case cliniccheckup.EdgeAnalyzes:
		ids := make([]ent.Value, 0, len(m.analyzes))
		for id := range m.analyzes {
			ids = append(ids, id)
		}
		return ids
	case cliniccheckup.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicCheckupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedanalyzes != nil {
		edges = append(edges, cliniccheckup.EdgeAnalyzes)
	}
	if m.removedsessions != nil {
		edges = append(edges, cliniccheckup.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicCheckupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cliniccheckup.EdgeAnalyzes:
		ids := make([]ent.Value, 0, len(m.removedanalyzes))
		for id := range m.removedanalyzes {
			ids = append(ids, id)
		}
		return ids
	case cliniccheckup.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicCheckupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedclinic {
		edges = append(edges, cliniccheckup.EdgeClinic)
	}
	if m.clearedstarting_question {
		edges = append(edges, cliniccheckup.EdgeStartingQuestion)
	}
	if m.clearedanalyzes {
		edges = append(edges, cliniccheckup.EdgeAnalyzes)
	}
	if m.clearedsessions {
		edges = append(edges, cliniccheckup.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicCheckupMutation) EdgeCleared(name string) bool {
	switch name {
	case cliniccheckup.EdgeClinic:
		return m.clearedclinic
	case cliniccheckup.EdgeStartingQuestion:
		return m.clearedstarting_question
	case cliniccheckup.EdgeAnalyzes:
		return m.clearedanalyzes
	case cliniccheckup.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicCheckupMutation) ClearEdge(name string) error {
	switch name {
	case cliniccheckup.EdgeClinic:
		m.ClearClinic()
		return nil
	case cliniccheckup.EdgeStartingQuestion:
		m.ClearStartingQuestion()
		return nil
	}
	return fmt.Errorf("unknown ClinicCheckup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicCheckupMutation) ResetEdge(name string) error {
	switch name {
	case cliniccheckup.EdgeClinic:
		m.ResetClinic()
		return nil
	case cliniccheckup.EdgeStartingQuestion:
		m.ResetStartingQuestion()
		return nil
	case cliniccheckup.EdgeAnalyzes:
		m.ResetAnalyzes()
		return nil
	case cliniccheckup.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown ClinicCheckup edge %s", name)
}

// ClinicGroupMutation represents an operation that mutates the ClinicGroup nodes in the graph.
type ClinicGroupMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	deleted_at     *time.Time
	title          *string
	description    *string
	clearedFields  map[string]struct{}
	clinics        map[uuid.UUID]struct{}
	removedclinics map[uuid.UUID]struct{}
	clearedclinics bool
	done           bool
	oldValue       func(context.Context) (*ClinicGroup, error)
	predicates     []predicate.ClinicGroup
}

var _ ent.Mutation = (*ClinicGroupMutation)(nil)

// clinicgroupOption allows management of the mutation configuration using functional options.
type clinicgroupOption func(*ClinicGroupMutation)

// newClinicGroupMutation creates new mutation for the ClinicGroup entity.
func newClinicGroupMutation(c config, op Op, opts ...clinicgroupOption) *ClinicGroupMutation {
	m := &ClinicGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeClinicGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicGroupID sets the ID field of the mutation.
func withClinicGroupID(id uuid.UUID) clinicgroupOption {
	return func(m *ClinicGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *ClinicGroup
		)
		m.oldValue = func(ctx context.Context) (*ClinicGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClinicGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinicGroup sets the old ClinicGroup of the mutation.
func withClinicGroup(node *ClinicGroup) clinicgroupOption {
	return func(m *ClinicGroupMutation) {
		m.oldValue = func(context.Context) (*ClinicGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClinicGroup entities.
func (m *ClinicGroupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicGroupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicGroupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClinicGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClinicGroup entity.
// If the ClinicGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClinicGroup entity.
// If the ClinicGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ClinicGroupMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ClinicGroupMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ClinicGroup entity.
// If the ClinicGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicGroupMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ClinicGroupMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[clinicgroup.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ClinicGroupMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[clinicgroup.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ClinicGroupMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, clinicgroup.FieldDeletedAt)
}

// SetTitle sets the "title" field.
func (m *ClinicGroupMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ClinicGroupMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ClinicGroup entity.
// If the ClinicGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicGroupMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ClinicGroupMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ClinicGroupMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ClinicGroupMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ClinicGroup entity.
// If the ClinicGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicGroupMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ClinicGroupMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[clinicgroup.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ClinicGroupMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[clinicgroup.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ClinicGroupMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, clinicgroup.FieldDescription)
}

// AddClinicIDs adds the "clinics" edge to the Clinic entity by ids.
func (m *ClinicGroupMutation) AddClinicIDs(ids ...uuid.UUID) {
	if m.clinics == nil {
		m.clinics = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.clinics[ids[i]] = struct{}{}
	}
}

// ClearClinics clears the "clinics" edge to the Clinic entity.
func (m *ClinicGroupMutation) ClearClinics() {
	m.clearedclinics = true
}

// ClinicsCleared reports if the "clinics" edge to the Clinic entity was cleared.
func (m *ClinicGroupMutation) ClinicsCleared() bool {
	return m.clearedclinics
}

// RemoveClinicIDs removes the "clinics" edge to the Clinic entity by IDs.
func (m *ClinicGroupMutation) RemoveClinicIDs(ids ...uuid.UUID) {
	if m.removedclinics == nil {
		m.removedclinics = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.clinics, ids[i])
		m.removedclinics[ids[i]] = struct{}{}
	}
}

// RemovedClinics returns the removed IDs of the "clinics" edge to the Clinic entity.
func (m *ClinicGroupMutation) RemovedClinicsIDs() (ids []uuid.UUID) {
	for id := range m.removedclinics {
		ids = append(ids, id)
	}
	return
}

// ClinicsIDs returns the "clinics" edge IDs in the mutation.
func (m *ClinicGroupMutation) ClinicsIDs() (ids []uuid.UUID) {
	for id := range m.clinics {
		ids = append(ids, id)
	}
	return
}

// ResetClinics resets all changes to the "clinics" edge.
func (m *ClinicGroupMutation) ResetClinics() {
	m.clinics = nil
	m.clearedclinics = false
	m.removedclinics = nil
}

// Where appends a list predicates to the ClinicGroupMutation builder.
func (m *ClinicGroupMutation) Where(ps ...predicate.ClinicGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClinicGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClinicGroup).
func (m *ClinicGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicGroupMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, clinicgroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinicgroup.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, clinicgroup.FieldDeletedAt)
	}
	if m.title != nil {
		fields = append(fields, clinicgroup.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, clinicgroup.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinicgroup.FieldCreatedAt:
		return m.CreatedAt()
	case clinicgroup.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinicgroup.FieldDeletedAt:
		return m.DeletedAt()
	case clinicgroup.FieldTitle:
		return m.Title()
	case clinicgroup.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinicgroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinicgroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinicgroup.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case clinicgroup.FieldTitle:
		return m.OldTitle(ctx)
	case clinicgroup.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown ClinicGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinicgroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinicgroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinicgroup.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case clinicgroup.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case clinicgroup.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClinicGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinicgroup.FieldDeletedAt) {
		fields = append(fields, clinicgroup.FieldDeletedAt)
	}
	if m.FieldCleared(clinicgroup.FieldDescription) {
		fields = append(fields, clinicgroup.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicGroupMutation) ClearField(name string) error {
	switch name {
	case clinicgroup.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case clinicgroup.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ClinicGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicGroupMutation) ResetField(name string) error {
	switch name {
	case clinicgroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinicgroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinicgroup.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case clinicgroup.FieldTitle:
		m.ResetTitle()
		return nil
	case clinicgroup.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown ClinicGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clinics != nil {
		edges = append(edges, clinicgroup.EdgeClinics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clinicgroup.EdgeClinics:
		ids := make([]ent.Value, 0, len(m.clinics))
		for id := range m.clinics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedclinics != nil {
		edges = append(edges, clinicgroup.EdgeClinics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case clinicgroup.EdgeClinics:
		ids := make([]ent.Value, 0, len(m.removedclinics))
		for id := range m.removedclinics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclinics {
		edges = append(edges, clinicgroup.EdgeClinics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case clinicgroup.EdgeClinics:
		return m.clearedclinics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicGroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ClinicGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicGroupMutation) ResetEdge(name string) error {
	switch name {
	case clinicgroup.EdgeClinics:
		m.ResetClinics()
		return nil
	}
	return fmt.Errorf("unknown ClinicGroup edge %s", name)
}

// ClinicMediaMutation represents an operation that mutates the ClinicMedia nodes in the graph.
type ClinicMediaMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	title         *string
	description   *string
	clearedFields map[string]struct{}
	clinic        *uuid.UUID
	clearedclinic bool
	media         *uuid.UUID
	clearedmedia  bool
	done          bool
	oldValue      func(context.Context) (*ClinicMedia, error)
	predicates    []predicate.ClinicMedia
}

var _ ent.Mutation = (*ClinicMediaMutation)(nil)

// clinicmediaOption allows management of the mutation configuration using functional options.
type clinicmediaOption func(*ClinicMediaMutation)

// newClinicMediaMutation creates new mutation for the ClinicMedia entity.
func newClinicMediaMutation(c config, op Op, opts ...clinicmediaOption) *ClinicMediaMutation {
	m := &ClinicMediaMutation{
		config:        c,
		op:            op,
		typ:           TypeClinicMedia,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicMediaID sets the ID field of the mutation.
func withClinicMediaID(id uuid.UUID) clinicmediaOption {
	return func(m *ClinicMediaMutation) {
		var (
			err   error
			once  sync.Once
			value *ClinicMedia
		)
		m.oldValue = func(ctx context.Context) (*ClinicMedia, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClinicMedia.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinicMedia sets the old ClinicMedia of the mutation.
func withClinicMedia(node *ClinicMedia) clinicmediaOption {
	return func(m *ClinicMediaMutation) {
		m.oldValue = func(context.Context) (*ClinicMedia, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMediaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMediaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClinicMedia entities.
func (m *ClinicMediaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMediaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMediaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClinicMedia.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicMediaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicMediaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClinicMedia entity.
// If the ClinicMedia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMediaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicMediaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicMediaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicMediaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClinicMedia entity.
// If the ClinicMedia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMediaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicMediaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ClinicMediaMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ClinicMediaMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ClinicMedia entity.
// If the ClinicMedia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMediaMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ClinicMediaMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[clinicmedia.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ClinicMediaMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[clinicmedia.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ClinicMediaMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, clinicmedia.FieldDeletedAt)
}

// SetClinicID sets the "clinic_id" field.
func (m *ClinicMediaMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *ClinicMediaMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the ClinicMedia entity.
// If the ClinicMedia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMediaMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *ClinicMediaMutation) ResetClinicID() {
	m.clinic = nil
}

// SetMediaID sets the "media_id" field.
func (m *ClinicMediaMutation) SetMediaID(u uuid.UUID) {
	m.media = &u
}

// MediaID returns the value of the "media_id" field in the mutation.
func (m *ClinicMediaMutation) MediaID() (r uuid.UUID, exists bool) {
	v := m.media
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaID returns the old "media_id" field's value of the ClinicMedia entity.
// If the ClinicMedia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMediaMutation) OldMediaID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaID: %w", err)
	}
	return oldValue.MediaID, nil
}

// ResetMediaID resets all changes to the "media_id" field.
func (m *ClinicMediaMutation) ResetMediaID() {
	m.media = nil
}

// SetTitle sets the "title" field.
func (m *ClinicMediaMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ClinicMediaMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ClinicMedia entity.
// If the ClinicMedia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMediaMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ClinicMediaMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ClinicMediaMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ClinicMediaMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ClinicMedia entity.
// If the ClinicMedia object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMediaMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ClinicMediaMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[clinicmedia.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ClinicMediaMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[clinicmedia.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ClinicMediaMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, clinicmedia.FieldDescription)
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *ClinicMediaMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[clinicmedia.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *ClinicMediaMutation) ClinicCleared() bool {
	return m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *ClinicMediaMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *ClinicMediaMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// ClearMedia clears the "media" edge to the Media entity.
func (m *ClinicMediaMutation) ClearMedia() {
	m.clearedmedia = true
	m.clearedFields[clinicmedia.FieldMediaID] = struct{}{}
}

// MediaCleared reports if the "media" edge to the Media entity was cleared.
func (m *ClinicMediaMutation) MediaCleared() bool {
	return m.clearedmedia
}

// MediaIDs returns the "media" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MediaID instead. It exists only for internal usage by the builders.
func (m *ClinicMediaMutation) MediaIDs() (ids []uuid.UUID) {
	if id := m.media; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMedia resets all changes to the "media" edge.
func (m *ClinicMediaMutation) ResetMedia() {
	m.media = nil
	m.clearedmedia = false
}

// Where appends a list predicates to the ClinicMediaMutation builder.
func (m *ClinicMediaMutation) Where(ps ...predicate.ClinicMedia) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMediaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMediaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClinicMedia, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMediaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMediaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClinicMedia).
func (m *ClinicMediaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMediaMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, clinicmedia.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinicmedia.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, clinicmedia.FieldDeletedAt)
	}
	if m.clinic != nil {
		fields = append(fields, clinicmedia.FieldClinicID)
	}
	if m.media != nil {
		fields = append(fields, clinicmedia.FieldMediaID)
	}
	if m.title != nil {
		fields = append(fields, clinicmedia.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, clinicmedia.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMediaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinicmedia.FieldCreatedAt:
		return m.CreatedAt()
	case clinicmedia.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinicmedia.FieldDeletedAt:
		return m.DeletedAt()
	case clinicmedia.FieldClinicID:
		return m.ClinicID()
	case clinicmedia.FieldMediaID:
		return m.MediaID()
	case clinicmedia.FieldTitle:
		return m.Title()
	case clinicmedia.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMediaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinicmedia.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinicmedia.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinicmedia.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case clinicmedia.FieldClinicID:
		return m.OldClinicID(ctx)
	case clinicmedia.FieldMediaID:
		return m.OldMediaID(ctx)
	case clinicmedia.FieldTitle:
		return m.OldTitle(ctx)
	case clinicmedia.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown ClinicMedia field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMediaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinicmedia.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinicmedia.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinicmedia.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case clinicmedia.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case clinicmedia.FieldMediaID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaID(v)
		return nil
	case clinicmedia.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case clinicmedia.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicMedia field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMediaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMediaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMediaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClinicMedia numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMediaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinicmedia.FieldDeletedAt) {
		fields = append(fields, clinicmedia.FieldDeletedAt)
	}
	if m.FieldCleared(clinicmedia.FieldDescription) {
		fields = append(fields, clinicmedia.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMediaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMediaMutation) ClearField(name string) error {
	switch name {
	case clinicmedia.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case clinicmedia.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ClinicMedia nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMediaMutation) ResetField(name string) error {
	switch name {
	case clinicmedia.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinicmedia.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinicmedia.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case clinicmedia.FieldClinicID:
		m.ResetClinicID()
		return nil
	case clinicmedia.FieldMediaID:
		m.ResetMediaID()
		return nil
	case clinicmedia.FieldTitle:
		m.ResetTitle()
		return nil
	case clinicmedia.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown ClinicMedia field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMediaMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clinic != nil {
		edges = append(edges, clinicmedia.EdgeClinic)
	}
	if m.media != nil {
		edges = append(edges, clinicmedia.EdgeMedia)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMediaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clinicmedia.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case clinicmedia.EdgeMedia:
		if id := m.media; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMediaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMediaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMediaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclinic {
		edges = append(edges, clinicmedia.EdgeClinic)
	}
	if m.clearedmedia {
		edges = append(edges, clinicmedia.EdgeMedia)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMediaMutation) EdgeCleared(name string) bool {
	switch name {
	case clinicmedia.EdgeClinic:
		return m.clearedclinic
	case clinicmedia.EdgeMedia:
		return m.clearedmedia
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMediaMutation) ClearEdge(name string) error {
	switch name {
	case clinicmedia.EdgeClinic:
		m.ClearClinic()
		return nil
	case clinicmedia.EdgeMedia:
		m.ClearMedia()
		return nil
	}
	return fmt.Errorf("unknown ClinicMedia unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMediaMutation) ResetEdge(name string) error {
	switch name {
	case clinicmedia.EdgeClinic:
		m.ResetClinic()
		return nil
	case clinicmedia.EdgeMedia:
		m.ResetMedia()
		return nil
	}
	return fmt.Errorf("unknown ClinicMedia edge %s", name)
}

// DoctorMutation represents an operation that mutates the Doctor nodes in the graph.
type DoctorMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	deleted_at       *time.Time
	specialty        *string
	medical_code     *string
	bio              *string
	is_verified      *bool
	clearedFields    map[string]struct{}
	user             *uuid.UUID
	cleareduser      bool
	clinic           *uuid.UUID
	clearedclinic    bool
	questions        map[uuid.UUID]struct{}
	removedquestions map[uuid.UUID]struct{}
	clearedquestions bool
	done             bool
	oldValue         func(context.Context) (*Doctor, error)
	predicates       []predicate.Doctor
}

var _ ent.Mutation = (*DoctorMutation)(nil)

// doctorOption allows management of the mutation configuration using functional options.
type doctorOption func(*DoctorMutation)

// newDoctorMutation creates new mutation for the Doctor entity.
func newDoctorMutation(c config, op Op, opts ...doctorOption) *DoctorMutation {
	m := &DoctorMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorID sets the ID field of the mutation.
func withDoctorID(id uuid.UUID) doctorOption {
	return func(m *DoctorMutation) {
		var (
			err   error
			once  sync.Once
			value *Doctor
		)
		m.oldValue = func(ctx context.Context) (*Doctor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Doctor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctor sets the old Doctor of the mutation.
func withDoctor(node *Doctor) doctorOption {
	return func(m *DoctorMutation) {
		m.oldValue = func(context.Context) (*Doctor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Doctor entities.
func (m *DoctorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Doctor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DoctorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DoctorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DoctorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DoctorMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DoctorMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DoctorMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[doctor.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DoctorMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[doctor.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DoctorMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, doctor.FieldDeletedAt)
}

// SetUserID sets the "user_id" field.
func (m *DoctorMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DoctorMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DoctorMutation) ResetUserID() {
	m.user = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *DoctorMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *DoctorMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldClinicID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ClearClinicID clears the value of the "clinic_id" field.
func (m *DoctorMutation) ClearClinicID() {
	m.clinic = nil
	m.clearedFields[doctor.FieldClinicID] = struct{}{}
}

// ClinicIDCleared returns if the "clinic_id" field was cleared in this mutation.
func (m *DoctorMutation) ClinicIDCleared() bool {
	_, ok := m.clearedFields[doctor.FieldClinicID]
	return ok
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *DoctorMutation) ResetClinicID() {
	m.clinic = nil
	delete(m.clearedFields, doctor.FieldClinicID)
}

// SetSpecialty sets the "specialty" field.
func (m *DoctorMutation) SetSpecialty(s string) {
	m.specialty = &s
}

// Specialty returns the value of the "specialty" field in the mutation.
func (m *DoctorMutation) Specialty() (r string, exists bool) {
	v := m.specialty
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialty returns the old "specialty" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldSpecialty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialty: %w", err)
	}
	return oldValue.Specialty, nil
}

// ClearSpecialty clears the value of the "specialty" field.
func (m *DoctorMutation) ClearSpecialty() {
	m.specialty = nil
	m.clearedFields[doctor.FieldSpecialty] = struct{}{}
}

// SpecialtyCleared returns if the "specialty" field was cleared in this mutation.
func (m *DoctorMutation) SpecialtyCleared() bool {
	_, ok := m.clearedFields[doctor.FieldSpecialty]
	return ok
}

// ResetSpecialty resets all changes to the "specialty" field.
func (m *DoctorMutation) ResetSpecialty() {
	m.specialty = nil
	delete(m.clearedFields, doctor.FieldSpecialty)
}

// SetMedicalCode sets the "medical_code" field.
func (m *DoctorMutation) SetMedicalCode(s string) {
	m.medical_code = &s
}

// MedicalCode returns the value of the "medical_code" field in the mutation.
func (m *DoctorMutation) MedicalCode() (r string, exists bool) {
	v := m.medical_code
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalCode returns the old "medical_code" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldMedicalCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalCode: %w", err)
	}
	return oldValue.MedicalCode, nil
}

// ClearMedicalCode clears the value of the "medical_code" field.
func (m *DoctorMutation) ClearMedicalCode() {
	m.medical_code = nil
	m.clearedFields[doctor.FieldMedicalCode] = struct{}{}
}

// MedicalCodeCleared returns if the "medical_code" field was cleared in this mutation.
func (m *DoctorMutation) MedicalCodeCleared() bool {
	_, ok := m.clearedFields[doctor.FieldMedicalCode]
	return ok
}

// ResetMedicalCode resets all changes to the "medical_code" field.
func (m *DoctorMutation) ResetMedicalCode() {
	m.medical_code = nil
	delete(m.clearedFields, doctor.FieldMedicalCode)
}

// SetBio sets the "bio" field.
func (m *DoctorMutation) SetBio(s string) {
	m.bio = &s
}

// Bio returns the value of the "bio" field in the mutation.
func (m *DoctorMutation) Bio() (r string, exists bool) {
	v := m.bio
	if v == nil {
		return
	}
	return *v, true
}

// OldBio returns the old "bio" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldBio(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBio: %w", err)
	}
	return oldValue.Bio, nil
}

// ClearBio clears the value of the "bio" field.
func (m *DoctorMutation) ClearBio() {
	m.bio = nil
	m.clearedFields[doctor.FieldBio] = struct{}{}
}

// BioCleared returns if the "bio" field was cleared in this mutation.
func (m *DoctorMutation) BioCleared() bool {
	_, ok := m.clearedFields[doctor.FieldBio]
	return ok
}

// ResetBio resets all changes to the "bio" field.
func (m *DoctorMutation) ResetBio() {
	m.bio = nil
	delete(m.clearedFields, doctor.FieldBio)
}

// SetIsVerified sets the "is_verified" field.
func (m *DoctorMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *DoctorMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *DoctorMutation) ResetIsVerified() {
	m.is_verified = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *DoctorMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[doctor.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DoctorMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DoctorMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DoctorMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *DoctorMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[doctor.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *DoctorMutation) ClinicCleared() bool {
	return m.ClinicIDCleared() || m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *DoctorMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *DoctorMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// AddQuestionIDs adds the "questions" edge to the QuestionShare entity by ids.
func (m *DoctorMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the QuestionShare entity.
func (m *DoctorMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the QuestionShare entity was cleared.
func (m *DoctorMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the QuestionShare entity by IDs.
func (m *DoctorMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the QuestionShare entity.
func (m *DoctorMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *DoctorMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *DoctorMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the DoctorMutation builder.
func (m *DoctorMutation) Where(ps ...predicate.Doctor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Doctor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Doctor).
func (m *DoctorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, doctor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, doctor.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, doctor.FieldDeletedAt)
	}
	if m.user != nil {
		fields = append(fields, doctor.FieldUserID)
	}
	if m.clinic != nil {
		fields = append(fields, doctor.FieldClinicID)
	}
	if m.specialty != nil {
		fields = append(fields, doctor.FieldSpecialty)
	}
	if m.medical_code != nil {
		fields = append(fields, doctor.FieldMedicalCode)
	}
	if m.bio != nil {
		fields = append(fields, doctor.FieldBio)
	}
	if m.is_verified != nil {
		fields = append(fields, doctor.FieldIsVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.CreatedAt()
	case doctor.FieldUpdatedAt:
		return m.UpdatedAt()
	case doctor.FieldDeletedAt:
		return m.DeletedAt()
	case doctor.FieldUserID:
		return m.UserID()
	case doctor.FieldClinicID:
		return m.ClinicID()
	case doctor.FieldSpecialty:
		return m.Specialty()
	case doctor.FieldMedicalCode:
		return m.MedicalCode()
	case doctor.FieldBio:
		return m.Bio()
	case doctor.FieldIsVerified:
		return m.IsVerified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case doctor.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case doctor.FieldUserID:
		return m.OldUserID(ctx)
	case doctor.FieldClinicID:
		return m.OldClinicID(ctx)
	case doctor.FieldSpecialty:
		return m.OldSpecialty(ctx)
	case doctor.FieldMedicalCode:
		return m.OldMedicalCode(ctx)
	case doctor.FieldBio:
		return m.OldBio(ctx)
	case doctor.FieldIsVerified:
		return m.OldIsVerified(ctx)
	}
	return nil, fmt.Errorf("unknown Doctor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case doctor.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case doctor.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case doctor.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case doctor.FieldSpecialty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialty(v)
		return nil
	case doctor.FieldMedicalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalCode(v)
		return nil
	case doctor.FieldBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBio(v)
		return nil
	case doctor.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Doctor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctor.FieldDeletedAt) {
		fields = append(fields, doctor.FieldDeletedAt)
	}
	if m.FieldCleared(doctor.FieldClinicID) {
		fields = append(fields, doctor.FieldClinicID)
	}
	if m.FieldCleared(doctor.FieldSpecialty) {
		fields = append(fields, doctor.FieldSpecialty)
	}
	if m.FieldCleared(doctor.FieldMedicalCode) {
		fields = append(fields, doctor.FieldMedicalCode)
	}
	if m.FieldCleared(doctor.FieldBio) {
		fields = append(fields, doctor.FieldBio)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorMutation) ClearField(name string) error {
	switch name {
	case doctor.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case doctor.FieldClinicID:
		m.ClearClinicID()
		return nil
	case doctor.FieldSpecialty:
		m.ClearSpecialty()
		return nil
	case doctor.FieldMedicalCode:
		m.ClearMedicalCode()
		return nil
	case doctor.FieldBio:
		m.ClearBio()
		return nil
	}
	return fmt.Errorf("unknown Doctor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorMutation) ResetField(name string) error {
	switch name {
	case doctor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case doctor.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case doctor.FieldUserID:
		m.ResetUserID()
		return nil
	case doctor.FieldClinicID:
		m.ResetClinicID()
		return nil
	case doctor.FieldSpecialty:
		m.ResetSpecialty()
		return nil
	case doctor.FieldMedicalCode:
		m.ResetMedicalCode()
		return nil
	case doctor.FieldBio:
		m.ResetBio()
		return nil
	case doctor.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, doctor.EdgeUser)
	}
	if m.clinic != nil {
		edges = append(edges, doctor.EdgeClinic)
	}
	if m.questions != nil {
		edges = append(edges, doctor.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case doctor.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case doctor.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case doctor.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedquestions != nil {
		edges = append(edges, doctor.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case doctor.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, doctor.EdgeUser)
	}
	if m.clearedclinic {
		edges = append(edges, doctor.EdgeClinic)
	}
	if m.clearedquestions {
		edges = append(edges, doctor.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorMutation) EdgeCleared(name string) bool {
	switch name {
	case doctor.EdgeUser:
		return m.cleareduser
	case doctor.EdgeClinic:
		return m.clearedclinic
	case doctor.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorMutation) ClearEdge(name string) error {
	switch name {
	case doctor.EdgeUser:
		m.ClearUser()
		return nil
	case doctor.EdgeClinic:
		m.ClearClinic()
		return nil
	}
	return fmt.Errorf("unknown Doctor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorMutation) ResetEdge(name string) error {
	switch name {
	case doctor.EdgeUser:
		m.ResetUser()
		return nil
	case doctor.EdgeClinic:
		m.ResetClinic()
		return nil
	case doctor.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Doctor edge %s", name)
}

// InterpretationMutation represents an operation that mutates the Interpretation nodes in the graph.
type InterpretationMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	deleted_at         *time.Time
	title              *string
	content            *string
	clearedFields      map[string]struct{}
	analyze            *uuid.UUID
	clearedanalyze     bool
	suggestions        map[uuid.UUID]struct{}
	removedsuggestions map[uuid.UUID]struct{}
	clearedsuggestions bool
	done               bool
	oldValue           func(context.Context) (*Interpretation, error)
	predicates         []predicate.Interpretation
}

var _ ent.Mutation = (*InterpretationMutation)(nil)

// interpretationOption allows management of the mutation configuration using functional options.
type interpretationOption func(*InterpretationMutation)

// newInterpretationMutation creates new mutation for the Interpretation entity.
func newInterpretationMutation(c config, op Op, opts ...interpretationOption) *InterpretationMutation {
	m := &InterpretationMutation{
		config:        c,
		op:            op,
		typ:           TypeInterpretation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterpretationID sets the ID field of the mutation.
func withInterpretationID(id uuid.UUID) interpretationOption {
	return func(m *InterpretationMutation) {
		var (
			err   error
			once  sync.Once
			value *Interpretation
		)
		m.oldValue = func(ctx context.Context) (*Interpretation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Interpretation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterpretation sets the old Interpretation of the mutation.
func withInterpretation(node *Interpretation) interpretationOption {
	return func(m *InterpretationMutation) {
		m.oldValue = func(context.Context) (*Interpretation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterpretationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterpretationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Interpretation entities.
func (m *InterpretationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterpretationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterpretationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Interpretation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *InterpretationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InterpretationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InterpretationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InterpretationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InterpretationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InterpretationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *InterpretationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *InterpretationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *InterpretationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[interpretation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *InterpretationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[interpretation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *InterpretationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, interpretation.FieldDeletedAt)
}

// SetAnalyzeID sets the "analyze_id" field.
func (m *InterpretationMutation) SetAnalyzeID(u uuid.UUID) {
	m.analyze = &u
}

// AnalyzeID returns the value of the "analyze_id" field in the mutation.
func (m *InterpretationMutation) AnalyzeID() (r uuid.UUID, exists bool) {
	v := m.analyze
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzeID returns the old "analyze_id" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldAnalyzeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzeID: %w", err)
	}
	return oldValue.AnalyzeID, nil
}

// ResetAnalyzeID resets all changes to the "analyze_id" field.
func (m *InterpretationMutation) ResetAnalyzeID() {
	m.analyze = nil
}

// SetTitle sets the "title" field.
func (m *InterpretationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *InterpretationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *InterpretationMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *InterpretationMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *InterpretationMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Interpretation entity.
// If the Interpretation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterpretationMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *InterpretationMutation) ClearContent() {
	m.content = nil
	m.clearedFields[interpretation.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *InterpretationMutation) ContentCleared() bool {
	_, ok := m.clearedFields[interpretation.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *InterpretationMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, interpretation.FieldContent)
}

// ClearAnalyze clears the "analyze" edge to the CheckupAnalyze entity.
func (m *InterpretationMutation) ClearAnalyze() {
	m.clearedanalyze = true
	m.clearedFields[interpretation.FieldAnalyzeID] = struct{}{}
}

// AnalyzeCleared reports if the "analyze" edge to the CheckupAnalyze entity was cleared.
func (m *InterpretationMutation) AnalyzeCleared() bool {
	return m.clearedanalyze
}

// AnalyzeIDs returns the "analyze" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalyzeID instead. It exists only for internal usage by the builders.
func (m *InterpretationMutation) AnalyzeIDs() (ids []uuid.UUID) {
	if id := m.analyze; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalyze resets all changes to the "analyze" edge.
func (m *InterpretationMutation) ResetAnalyze() {
	m.analyze = nil
	m.clearedanalyze = false
}

// AddSuggestionIDs adds the "suggestions" edge to the Suggestion entity by ids.
func (m *InterpretationMutation) AddSuggestionIDs(ids ...uuid.UUID) {
	if m.suggestions == nil {
		m.suggestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.suggestions[ids[i]] = struct{}{}
	}
}

// ClearSuggestions clears the "suggestions" edge to the Suggestion entity.
func (m *InterpretationMutation) ClearSuggestions() {
	m.clearedsuggestions = true
}

// SuggestionsCleared reports if the "suggestions" edge to the Suggestion entity was cleared.
func (m *InterpretationMutation) SuggestionsCleared() bool {
	return m.clearedsuggestions
}

// RemoveSuggestionIDs removes the "suggestions" edge to the Suggestion entity by IDs.
func (m *InterpretationMutation) RemoveSuggestionIDs(ids ...uuid.UUID) {
	if m.removedsuggestions == nil {
		m.removedsuggestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.suggestions, ids[i])
		m.removedsuggestions[ids[i]] = struct{}{}
	}
}

// RemovedSuggestions returns the removed IDs of the "suggestions" edge to the Suggestion entity.
func (m *InterpretationMutation) RemovedSuggestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsuggestions {
		ids = append(ids, id)
	}
	return
}

// SuggestionsIDs returns the "suggestions" edge IDs in the mutation.
func (m *InterpretationMutation) SuggestionsIDs() (ids []uuid.UUID) {
	for id := range m.suggestions {
		ids = append(ids, id)
	}
	return
}

// ResetSuggestions resets all changes to the "suggestions" edge.
func (m *InterpretationMutation) ResetSuggestions() {
	m.suggestions = nil
	m.clearedsuggestions = false
	m.removedsuggestions = nil
}

// Where appends a list predicates to the InterpretationMutation builder.
func (m *InterpretationMutation) Where(ps ...predicate.Interpretation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterpretationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterpretationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Interpretation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterpretationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterpretationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Interpretation).
func (m *InterpretationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterpretationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, interpretation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, interpretation.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, interpretation.FieldDeletedAt)
	}
	if m.analyze != nil {
		fields = append(fields, interpretation.FieldAnalyzeID)
	}
	if m.title != nil {
		fields = append(fields, interpretation.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, interpretation.FieldContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterpretationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interpretation.FieldCreatedAt:
		return m.CreatedAt()
	case interpretation.FieldUpdatedAt:
		return m.UpdatedAt()
	case interpretation.FieldDeletedAt:
		return m.DeletedAt()
	case interpretation.FieldAnalyzeID:
		return m.AnalyzeID()
	case interpretation.FieldTitle:
		return m.Title()
	case interpretation.FieldContent:
		return m.Content()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterpretationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interpretation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case interpretation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case interpretation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case interpretation.FieldAnalyzeID:
		return m.OldAnalyzeID(ctx)
	case interpretation.FieldTitle:
		return m.OldTitle(ctx)
	case interpretation.FieldContent:
		return m.OldContent(ctx)
	}
	return nil, fmt.Errorf("unknown Interpretation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterpretationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interpretation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case interpretation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case interpretation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case interpretation.FieldAnalyzeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzeID(v)
		return nil
	case interpretation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case interpretation.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	}
	return fmt.Errorf("unknown Interpretation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterpretationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterpretationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterpretationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Interpretation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterpretationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interpretation.FieldDeletedAt) {
		fields = append(fields, interpretation.FieldDeletedAt)
	}
	if m.FieldCleared(interpretation.FieldContent) {
		fields = append(fields, interpretation.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterpretationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterpretationMutation) ClearField(name string) error {
	switch name {
	case interpretation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case interpretation.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown Interpretation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterpretationMutation) ResetField(name string) error {
	switch name {
	case interpretation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case interpretation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case interpretation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case interpretation.FieldAnalyzeID:
		m.ResetAnalyzeID()
		return nil
	case interpretation.FieldTitle:
		m.ResetTitle()
		return nil
	case interpretation.FieldContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown Interpretation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterpretationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.analyze != nil {
		edges = append(edges, interpretation.EdgeAnalyze)
	}
	if m.suggestions != nil {
		edges = append(edges, interpretation.EdgeSuggestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterpretationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case interpretation.EdgeAnalyze:
		if id := m.analyze; id != nil {
			return []ent.Value{*id}
		}
	case interpretation.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.suggestions))
		for id := range m.suggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterpretationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsuggestions != nil {
		edges = append(edges, interpretation.EdgeSuggestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterpretationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case interpretation.EdgeSuggestions:
		ids := make([]ent.Value, 0, len(m.removedsuggestions))
		for id := range m.removedsuggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterpretationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanalyze {
		edges = append(edges, interpretation.EdgeAnalyze)
	}
	if m.clearedsuggestions {
		edges = append(edges, interpretation.EdgeSuggestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterpretationMutation) EdgeCleared(name string) bool {
	switch name {
	case interpretation.EdgeAnalyze:
		return m.clearedanalyze
	case interpretation.EdgeSuggestions:
		return m.clearedsuggestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterpretationMutation) ClearEdge(name string) error {
	switch name {
	case interpretation.EdgeAnalyze:
		m.ClearAnalyze()
		return nil
	}
	return fmt.Errorf("unknown Interpretation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterpretationMutation) ResetEdge(name string) error {
	switch name {
	case interpretation.EdgeAnalyze:
		m.ResetAnalyze()
		return nil
	case interpretation.EdgeSuggestions:
		m.ResetSuggestions()
		return nil
	}
	return fmt.Errorf("unknown Interpretation edge %s", name)
}

// MediaMutation represents an operation that mutates the Media nodes in the graph.
type MediaMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	file_key      *string
	file_name     *string
	mime_type     *string
	size_bytes    *int64
	addsize_bytes *int64
	category      *media.Category
	clearedFields map[string]struct{}
	clinic        *uuid.UUID
	clearedclinic bool
	done          bool
	oldValue      func(context.Context) (*Media, error)
	predicates    []predicate.Media
}

var _ ent.Mutation = (*MediaMutation)(nil)

// mediaOption allows management of the mutation configuration using functional options.
type mediaOption func(*MediaMutation)

// newMediaMutation creates new mutation for the Media entity.
func newMediaMutation(c config, op Op, opts ...mediaOption) *MediaMutation {
	m := &MediaMutation{
		config:        c,
		op:            op,
		typ:           TypeMedia,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMediaID sets the ID field of the mutation.
func withMediaID(id uuid.UUID) mediaOption {
	return func(m *MediaMutation) {
		var (
			err   error
			once  sync.Once
			value *Media
		)
		m.oldValue = func(ctx context.Context) (*Media, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Media.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedia sets the old Media of the mutation.
func withMedia(node *Media) mediaOption {
	return func(m *MediaMutation) {
		m.oldValue = func(context.Context) (*Media, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MediaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MediaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Media entities.
func (m *MediaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MediaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MediaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Media.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MediaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MediaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MediaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MediaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MediaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MediaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MediaMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MediaMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MediaMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[media.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MediaMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[media.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MediaMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, media.FieldDeletedAt)
}

// SetClinicID sets the "clinic_id" field.
func (m *MediaMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *MediaMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *MediaMutation) ResetClinicID() {
	m.clinic = nil
}

// SetFileKey sets the "file_key" field.
func (m *MediaMutation) SetFileKey(s string) {
	m.file_key = &s
}

// FileKey returns the value of the "file_key" field in the mutation.
func (m *MediaMutation) FileKey() (r string, exists bool) {
	v := m.file_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFileKey returns the old "file_key" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldFileKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileKey: %w", err)
	}
	return oldValue.FileKey, nil
}

// ResetFileKey resets all changes to the "file_key" field.
func (m *MediaMutation) ResetFileKey() {
	m.file_key = nil
}

// SetFileName sets the "file_name" field.
func (m *MediaMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *MediaMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *MediaMutation) ResetFileName() {
	m.file_name = nil
}

// SetMimeType sets the "mime_type" field.
func (m *MediaMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *MediaMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *MediaMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[media.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *MediaMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[media.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *MediaMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, media.FieldMimeType)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *MediaMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *MediaMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *MediaMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *MediaMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *MediaMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetCategory sets the "category" field.
func (m *MediaMutation) SetCategory(value media.Category) {
	m.category = &value
}

// Category returns the value of the "category" field in the mutation.
func (m *MediaMutation) Category() (r media.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Media entity.
// If the Media object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaMutation) OldCategory(ctx context.Context) (v media.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *MediaMutation) ResetCategory() {
	m.category = nil
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *MediaMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[media.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *MediaMutation) ClinicCleared() bool {
	return m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *MediaMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *MediaMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// Where appends a list predicates to the MediaMutation builder.
func (m *MediaMutation) Where(ps ...predicate.Media) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MediaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MediaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Media, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MediaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MediaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Media).
func (m *MediaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MediaMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, media.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, media.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, media.FieldDeletedAt)
	}
	if m.clinic != nil {
		fields = append(fields, media.FieldClinicID)
	}
	if m.file_key != nil {
		fields = append(fields, media.FieldFileKey)
	}
	if m.file_name != nil {
		fields = append(fields, media.FieldFileName)
	}
	if m.mime_type != nil {
		fields = append(fields, media.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, media.FieldSizeBytes)
	}
	if m.category != nil {
		fields = append(fields, media.FieldCategory)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MediaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case media.FieldCreatedAt:
		return m.CreatedAt()
	case media.FieldUpdatedAt:
		return m.UpdatedAt()
	case media.FieldDeletedAt:
		return m.DeletedAt()
	case media.FieldClinicID:
		return m.ClinicID()
	case media.FieldFileKey:
		return m.FileKey()
	case media.FieldFileName:
		return m.FileName()
	case media.FieldMimeType:
		return m.MimeType()
	case media.FieldSizeBytes:
		return m.SizeBytes()
	case media.FieldCategory:
		return m.Category()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MediaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case media.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case media.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case media.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case media.FieldClinicID:
		return m.OldClinicID(ctx)
	case media.FieldFileKey:
		return m.OldFileKey(ctx)
	case media.FieldFileName:
		return m.OldFileName(ctx)
	case media.FieldMimeType:
		return m.OldMimeType(ctx)
	case media.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case media.FieldCategory:
		return m.OldCategory(ctx)
	}
	return nil, fmt.Errorf("unknown Media field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case media.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case media.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case media.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case media.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case media.FieldFileKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileKey(v)
		return nil
	case media.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case media.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case media.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case media.FieldCategory:
		v, ok := value.(media.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	}
	return fmt.Errorf("unknown Media field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MediaMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, media.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MediaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case media.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case media.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Media numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MediaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(media.FieldDeletedAt) {
		fields = append(fields, media.FieldDeletedAt)
	}
	if m.FieldCleared(media.FieldMimeType) {
		fields = append(fields, media.FieldMimeType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MediaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MediaMutation) ClearField(name string) error {
	switch name {
	case media.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case media.FieldMimeType:
		m.ClearMimeType()
		return nil
	}
	return fmt.Errorf("unknown Media nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MediaMutation) ResetField(name string) error {
	switch name {
	case media.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case media.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case media.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case media.FieldClinicID:
		m.ResetClinicID()
		return nil
	case media.FieldFileKey:
		m.ResetFileKey()
		return nil
	case media.FieldFileName:
		m.ResetFileName()
		return nil
	case media.FieldMimeType:
		m.ResetMimeType()
		return nil
	case media.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case media.FieldCategory:
		m.ResetCategory()
		return nil
	}
	return fmt.Errorf("unknown Media field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MediaMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clinic != nil {
		edges = append(edges, media.EdgeClinic)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MediaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case media.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MediaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MediaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MediaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclinic {
		edges = append(edges, media.EdgeClinic)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MediaMutation) EdgeCleared(name string) bool {
	switch name {
	case media.EdgeClinic:
		return m.clearedclinic
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MediaMutation) ClearEdge(name string) error {
	switch name {
	case media.EdgeClinic:
		m.ClearClinic()
		return nil
	}
	return fmt.Errorf("unknown Media unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MediaMutation) ResetEdge(name string) error {
	switch name {
	case media.EdgeClinic:
		m.ResetClinic()
		return nil
	}
	return fmt.Errorf("unknown Media edge %s", name)
}

// OrganMutation represents an operation that mutates the Organ nodes in the graph.
type OrganMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	name             *string
	clearedFields    map[string]struct{}
	parent           *uuid.UUID
	clearedparent    bool
	children         map[uuid.UUID]struct{}
	removedchildren  map[uuid.UUID]struct{}
	clearedchildren  bool
	questions        map[uuid.UUID]struct{}
	removedquestions map[uuid.UUID]struct{}
	clearedquestions bool
	done             bool
	oldValue         func(context.Context) (*Organ, error)
	predicates       []predicate.Organ
}

var _ ent.Mutation = (*OrganMutation)(nil)

// organOption allows management of the mutation configuration using functional options.
type organOption func(*OrganMutation)

// newOrganMutation creates new mutation for the Organ entity.
func newOrganMutation(c config, op Op, opts ...organOption) *OrganMutation {
	m := &OrganMutation{
		config:        c,
		op:            op,
		typ:           TypeOrgan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganID sets the ID field of the mutation.
func withOrganID(id uuid.UUID) organOption {
	return func(m *OrganMutation) {
		var (
			err   error
			once  sync.Once
			value *Organ
		)
		m.oldValue = func(ctx context.Context) (*Organ, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Organ.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrgan sets the old Organ of the mutation.
func withOrgan(node *Organ) organOption {
	return func(m *OrganMutation) {
		m.oldValue = func(context.Context) (*Organ, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Organ entities.
func (m *OrganMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Organ.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *OrganMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrganMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Organ entity.
// If the Organ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrganMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrganMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrganMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Organ entity.
// If the Organ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrganMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *OrganMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrganMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Organ entity.
// If the Organ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrganMutation) ResetName() {
	m.name = nil
}

// SetParentID sets the "parent_id" field.
func (m *OrganMutation) SetParentID(u uuid.UUID) {
	m.parent = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *OrganMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Organ entity.
// If the Organ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganMutation) OldParentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *OrganMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[organ.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *OrganMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[organ.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *OrganMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, organ.FieldParentID)
}

// ClearParent clears the "parent" edge to the Organ entity.
func (m *OrganMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[organ.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Organ entity was cleared.
func (m *OrganMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *OrganMutation) ParentIDs() (ids []uuid.UUID) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *OrganMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Organ entity by ids.
func (m *OrganMutation) AddChildIDs(ids ...uuid.UUID) {
	if m.children == nil {
		m.children = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Organ entity.
func (m *OrganMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Organ entity was cleared.
func (m *OrganMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Organ entity by IDs.
func (m *OrganMutation) RemoveChildIDs(ids ...uuid.UUID) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Organ entity.
func (m *OrganMutation) RemovedChildrenIDs() (ids []uuid.UUID) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *OrganMutation) ChildrenIDs() (ids []uuid.UUID) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *OrganMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddQuestionIDs adds the "questions" edge to the QuestionShare entity by ids.
func (m *OrganMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the QuestionShare entity.
func (m *OrganMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the QuestionShare entity was cleared.
func (m *OrganMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the QuestionShare entity by IDs.
func (m *OrganMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the QuestionShare entity.
func (m *OrganMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *OrganMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *OrganMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the OrganMutation builder.
func (m *OrganMutation) Where(ps ...predicate.Organ) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Organ, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Organ).
func (m *OrganMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, organ.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, organ.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, organ.FieldName)
	}
	if m.parent != nil {
		fields = append(fields, organ.FieldParentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organ.FieldCreatedAt:
		return m.CreatedAt()
	case organ.FieldUpdatedAt:
		return m.UpdatedAt()
	case organ.FieldName:
		return m.Name()
	case organ.FieldParentID:
		return m.ParentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organ.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case organ.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case organ.FieldName:
		return m.OldName(ctx)
	case organ.FieldParentID:
		return m.OldParentID(ctx)
	}
	return nil, fmt.Errorf("unknown Organ field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organ.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case organ.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case organ.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case organ.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	}
	return fmt.Errorf("unknown Organ field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Organ numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(organ.FieldParentID) {
		fields = append(fields, organ.FieldParentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganMutation) ClearField(name string) error {
	switch name {
	case organ.FieldParentID:
		m.ClearParentID()
		return nil
	}
	return fmt.Errorf("unknown Organ nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganMutation) ResetField(name string) error {
	switch name {
	case organ.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case organ.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case organ.FieldName:
		m.ResetName()
		return nil
	case organ.FieldParentID:
		m.ResetParentID()
		return nil
	}
	return fmt.Errorf("unknown Organ field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.parent != nil {
		edges = append(edges, organ.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, organ.EdgeChildren)
	}
	if m.questions != nil {
		edges = append(edges, organ.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organ.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case organ.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case organ.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedchildren != nil {
		edges = append(edges, organ.EdgeChildren)
	}
	if m.removedquestions != nil {
		edges = append(edges, organ.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case organ.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case organ.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedparent {
		edges = append(edges, organ.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, organ.EdgeChildren)
	}
	if m.clearedquestions {
		edges = append(edges, organ.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganMutation) EdgeCleared(name string) bool {
	switch name {
	case organ.EdgeParent:
		return m.clearedparent
	case organ.EdgeChildren:
		return m.clearedchildren
	case organ.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganMutation) ClearEdge(name string) error {
	switch name {
	case organ.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Organ unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganMutation) ResetEdge(name string) error {
	switch name {
	case organ.EdgeParent:
		m.ResetParent()
		return nil
	case organ.EdgeChildren:
		m.ResetChildren()
		return nil
	case organ.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Organ edge %s", name)
}

// PatientProfileMutation represents an operation that mutates the PatientProfile nodes in the graph.
type PatientProfileMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	deleted_at         *time.Time
	gender             *patientprofile.Gender
	birth_date         *time.Time
	height_cm          *float64
	addheight_cm       *float64
	weight_kg          *float64
	addweight_kg       *float64
	medical_history    *string
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	supervisors        map[uuid.UUID]struct{}
	removedsupervisors map[uuid.UUID]struct{}
	clearedsupervisors bool
	checkups           map[uuid.UUID]struct{}
	removedcheckups    map[uuid.UUID]struct{}
	clearedcheckups    bool
	done               bool
	oldValue           func(context.Context) (*PatientProfile, error)
	predicates         []predicate.PatientProfile
}

var _ ent.Mutation = (*PatientProfileMutation)(nil)

// patientprofileOption allows management of the mutation configuration using functional options.
type patientprofileOption func(*PatientProfileMutation)

// newPatientProfileMutation creates new mutation for the PatientProfile entity.
func newPatientProfileMutation(c config, op Op, opts ...patientprofileOption) *PatientProfileMutation {
	m := &PatientProfileMutation{
		config:        c,
		op:            op,
		typ:           TypePatientProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientProfileID sets the ID field of the mutation.
func withPatientProfileID(id uuid.UUID) patientprofileOption {
	return func(m *PatientProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *PatientProfile
		)
		m.oldValue = func(ctx context.Context) (*PatientProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PatientProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatientProfile sets the old PatientProfile of the mutation.
func withPatientProfile(node *PatientProfile) patientprofileOption {
	return func(m *PatientProfileMutation) {
		m.oldValue = func(context.Context) (*PatientProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PatientProfile entities.
func (m *PatientProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PatientProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PatientProfileMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PatientProfileMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PatientProfileMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[patientprofile.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PatientProfileMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[patientprofile.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PatientProfileMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, patientprofile.FieldDeletedAt)
}

// SetUserID sets the "user_id" field.
func (m *PatientProfileMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientProfileMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientProfileMutation) ResetUserID() {
	m.user = nil
}

// SetGender sets the "gender" field.
func (m *PatientProfileMutation) SetGender(pa patientprofile.Gender) {
	m.gender = &pa
}

// Gender returns the value of the "gender" field in the mutation.
func (m *PatientProfileMutation) Gender() (r patientprofile.Gender, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldGender(ctx context.Context) (v *patientprofile.Gender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *PatientProfileMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[patientprofile.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *PatientProfileMutation) GenderCleared() bool {
	_, ok := m.clearedFields[patientprofile.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *PatientProfileMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, patientprofile.FieldGender)
}

// SetBirthDate sets the "birth_date" field.
func (m *PatientProfileMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *PatientProfileMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldBirthDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ClearBirthDate clears the value of the "birth_date" field.
func (m *PatientProfileMutation) ClearBirthDate() {
	m.birth_date = nil
	m.clearedFields[patientprofile.FieldBirthDate] = struct{}{}
}

// BirthDateCleared returns if the "birth_date" field was cleared in this mutation.
func (m *PatientProfileMutation) BirthDateCleared() bool {
	_, ok := m.clearedFields[patientprofile.FieldBirthDate]
	return ok
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *PatientProfileMutation) ResetBirthDate() {
	m.birth_date = nil
	delete(m.clearedFields, patientprofile.FieldBirthDate)
}

// SetHeightCm sets the "height_cm" field.
func (m *PatientProfileMutation) SetHeightCm(f float64) {
	m.height_cm = &f
	m.addheight_cm = nil
}

// HeightCm returns the value of the "height_cm" field in the mutation.
func (m *PatientProfileMutation) HeightCm() (r float64, exists bool) {
	v := m.height_cm
	if v == nil {
		return
	}
	return *v, true
}

// OldHeightCm returns the old "height_cm" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldHeightCm(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeightCm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeightCm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeightCm: %w", err)
	}
	return oldValue.HeightCm, nil
}

// AddHeightCm adds f to the "height_cm" field.
func (m *PatientProfileMutation) AddHeightCm(f float64) {
	if m.addheight_cm != nil {
		*m.addheight_cm += f
	} else {
		m.addheight_cm = &f
	}
}

// AddedHeightCm returns the value that was added to the "height_cm" field in this mutation.
func (m *PatientProfileMutation) AddedHeightCm() (r float64, exists bool) {
	v := m.addheight_cm
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeightCm clears the value of the "height_cm" field.
func (m *PatientProfileMutation) ClearHeightCm() {
	m.height_cm = nil
	m.addheight_cm = nil
	m.clearedFields[patientprofile.FieldHeightCm] = struct{}{}
}

// HeightCmCleared returns if the "height_cm" field was cleared in this mutation.
func (m *PatientProfileMutation) HeightCmCleared() bool {
	_, ok := m.clearedFields[patientprofile.FieldHeightCm]
	return ok
}

// ResetHeightCm resets all changes to the "height_cm" field.
func (m *PatientProfileMutation) ResetHeightCm() {
	m.height_cm = nil
	m.addheight_cm = nil
	delete(m.clearedFields, patientprofile.FieldHeightCm)
}

// SetWeightKg sets the "weight_kg" field.
func (m *PatientProfileMutation) SetWeightKg(f float64) {
	m.weight_kg = &f
	m.addweight_kg = nil
}

// WeightKg returns the value of the "weight_kg" field in the mutation.
func (m *PatientProfileMutation) WeightKg() (r float64, exists bool) {
	v := m.weight_kg
	if v == nil {
		return
	}
	return *v, true
}

// OldWeightKg returns the old "weight_kg" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldWeightKg(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeightKg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeightKg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeightKg: %w", err)
	}
	return oldValue.WeightKg, nil
}

// AddWeightKg adds f to the "weight_kg" field.
func (m *PatientProfileMutation) AddWeightKg(f float64) {
	if m.addweight_kg != nil {
		*m.addweight_kg += f
	} else {
		m.addweight_kg = &f
	}
}

// AddedWeightKg returns the value that was added to the "weight_kg" field in this mutation.
func (m *PatientProfileMutation) AddedWeightKg() (r float64, exists bool) {
	v := m.addweight_kg
	if v == nil {
		return
	}
	return *v, true
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (m *PatientProfileMutation) ClearWeightKg() {
	m.weight_kg = nil
	m.addweight_kg = nil
	m.clearedFields[patientprofile.FieldWeightKg] = struct{}{}
}

// WeightKgCleared returns if the "weight_kg" field was cleared in this mutation.
func (m *PatientProfileMutation) WeightKgCleared() bool {
	_, ok := m.clearedFields[patientprofile.FieldWeightKg]
	return ok
}

// ResetWeightKg resets all changes to the "weight_kg" field.
func (m *PatientProfileMutation) ResetWeightKg() {
	m.weight_kg = nil
	m.addweight_kg = nil
	delete(m.clearedFields, patientprofile.FieldWeightKg)
}

// SetMedicalHistory sets the "medical_history" field.
func (m *PatientProfileMutation) SetMedicalHistory(s string) {
	m.medical_history = &s
}

// MedicalHistory returns the value of the "medical_history" field in the mutation.
func (m *PatientProfileMutation) MedicalHistory() (r string, exists bool) {
	v := m.medical_history
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicalHistory returns the old "medical_history" field's value of the PatientProfile entity.
// If the PatientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientProfileMutation) OldMedicalHistory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicalHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicalHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicalHistory: %w", err)
	}
	return oldValue.MedicalHistory, nil
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (m *PatientProfileMutation) ClearMedicalHistory() {
	m.medical_history = nil
	m.clearedFields[patientprofile.FieldMedicalHistory] = struct{}{}
}

// MedicalHistoryCleared returns if the "medical_history" field was cleared in this mutation.
func (m *PatientProfileMutation) MedicalHistoryCleared() bool {
	_, ok := m.clearedFields[patientprofile.FieldMedicalHistory]
	return ok
}

// ResetMedicalHistory resets all changes to the "medical_history" field.
func (m *PatientProfileMutation) ResetMedicalHistory() {
	m.medical_history = nil
	delete(m.clearedFields, patientprofile.FieldMedicalHistory)
}

// ClearUser clears the "user" edge to the User entity.
func (m *PatientProfileMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[patientprofile.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PatientProfileMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PatientProfileMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PatientProfileMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddSupervisorIDs adds the "supervisors" edge to the Supervisor entity by ids.
func (m *PatientProfileMutation) AddSupervisorIDs(ids ...uuid.UUID) {
	if m.supervisors == nil {
		m.supervisors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.supervisors[ids[i]] = struct{}{}
	}
}

// ClearSupervisors clears the "supervisors" edge to the Supervisor entity.
func (m *PatientProfileMutation) ClearSupervisors() {
	m.clearedsupervisors = true
}

// SupervisorsCleared reports if the "supervisors" edge to the Supervisor entity was cleared.
func (m *PatientProfileMutation) SupervisorsCleared() bool {
	return m.clearedsupervisors
}

// RemoveSupervisorIDs removes the "supervisors" edge to the Supervisor entity by IDs.
func (m *PatientProfileMutation) RemoveSupervisorIDs(ids ...uuid.UUID) {
	if m.removedsupervisors == nil {
		m.removedsupervisors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.supervisors, ids[i])
		m.removedsupervisors[ids[i]] = struct{}{}
	}
}

// RemovedSupervisors returns the removed IDs of the "supervisors" edge to the Supervisor entity.
func (m *PatientProfileMutation) RemovedSupervisorsIDs() (ids []uuid.UUID) {
	for id := range m.removedsupervisors {
		ids = append(ids, id)
	}
	return
}

// SupervisorsIDs returns the "supervisors" edge IDs in the mutation.
func (m *PatientProfileMutation) SupervisorsIDs() (ids []uuid.UUID) {
	for id := range m.supervisors {
		ids = append(ids, id)
	}
	return
}

// ResetSupervisors resets all changes to the "supervisors" edge.
func (m *PatientProfileMutation) ResetSupervisors() {
	m.supervisors = nil
	m.clearedsupervisors = false
	m.removedsupervisors = nil
}

// AddCheckupIDs adds the "checkups" edge to the Checkup entity by ids.
func (m *PatientProfileMutation) AddCheckupIDs(ids ...uuid.UUID) {
	if m.checkups == nil {
		m.checkups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.checkups[ids[i]] = struct{}{}
	}
}

// ClearCheckups clears the "checkups" edge to the Checkup entity.
func (m *PatientProfileMutation) ClearCheckups() {
	m.clearedcheckups = true
}

// CheckupsCleared reports if the "checkups" edge to the Checkup entity was cleared.
func (m *PatientProfileMutation) CheckupsCleared() bool {
	return m.clearedcheckups
}

// RemoveCheckupIDs removes the "checkups" edge to the Checkup entity by IDs.
func (m *PatientProfileMutation) RemoveCheckupIDs(ids ...uuid.UUID) {
	if m.removedcheckups == nil {
		m.removedcheckups = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.checkups, ids[i])
		m.removedcheckups[ids[i]] = struct{}{}
	}
}

// RemovedCheckups returns the removed IDs of the "checkups" edge to the Checkup entity.
func (m *PatientProfileMutation) RemovedCheckupsIDs() (ids []uuid.UUID) {
	for id := range m.removedcheckups {
		ids = append(ids, id)
	}
	return
}

// CheckupsIDs returns the "checkups" edge IDs in the mutation.
func (m *PatientProfileMutation) CheckupsIDs() (ids []uuid.UUID) {
	for id := range m.checkups {
		ids = append(ids, id)
	}
	return
}

// ResetCheckups resets all changes to the "checkups" edge.
func (m *PatientProfileMutation) ResetCheckups() {
	m.checkups = nil
	m.clearedcheckups = false
	m.removedcheckups = nil
}

// Where appends a list predicates to the PatientProfileMutation builder.
func (m *PatientProfileMutation) Where(ps ...predicate.PatientProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PatientProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PatientProfile).
func (m *PatientProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientProfileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, patientprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patientprofile.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, patientprofile.FieldDeletedAt)
	}
	if m.user != nil {
		fields = append(fields, patientprofile.FieldUserID)
	}
	if m.gender != nil {
		fields = append(fields, patientprofile.FieldGender)
	}
	if m.birth_date != nil {
		fields = append(fields, patientprofile.FieldBirthDate)
	}
	if m.height_cm != nil {
		fields = append(fields, patientprofile.FieldHeightCm)
	}
	if m.weight_kg != nil {
		fields = append(fields, patientprofile.FieldWeightKg)
	}
	if m.medical_history != nil {
		fields = append(fields, patientprofile.FieldMedicalHistory)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patientprofile.FieldCreatedAt:
		return m.CreatedAt()
	case patientprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case patientprofile.FieldDeletedAt:
		return m.DeletedAt()
	case patientprofile.FieldUserID:
		return m.UserID()
	case patientprofile.FieldGender:
		return m.Gender()
	case patientprofile.FieldBirthDate:
		return m.BirthDate()
	case patientprofile.FieldHeightCm:
		return m.HeightCm()
	case patientprofile.FieldWeightKg:
		return m.WeightKg()
	case patientprofile.FieldMedicalHistory:
		return m.MedicalHistory()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patientprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patientprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patientprofile.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case patientprofile.FieldUserID:
		return m.OldUserID(ctx)
	case patientprofile.FieldGender:
		return m.OldGender(ctx)
	case patientprofile.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case patientprofile.FieldHeightCm:
		return m.OldHeightCm(ctx)
	case patientprofile.FieldWeightKg:
		return m.OldWeightKg(ctx)
	case patientprofile.FieldMedicalHistory:
		return m.OldMedicalHistory(ctx)
	}
	return nil, fmt.Errorf("unknown PatientProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patientprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patientprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patientprofile.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case patientprofile.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patientprofile.FieldGender:
		v, ok := value.(patientprofile.Gender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case patientprofile.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case patientprofile.FieldHeightCm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeightCm(v)
		return nil
	case patientprofile.FieldWeightKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeightKg(v)
		return nil
	case patientprofile.FieldMedicalHistory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicalHistory(v)
		return nil
	}
	return fmt.Errorf("unknown PatientProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientProfileMutation) AddedFields() []string {
	var fields []string
	if m.addheight_cm != nil {
		fields = append(fields, patientprofile.FieldHeightCm)
	}
	if m.addweight_kg != nil {
		fields = append(fields, patientprofile.FieldWeightKg)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patientprofile.FieldHeightCm:
		return m.AddedHeightCm()
	case patientprofile.FieldWeightKg:
		return m.AddedWeightKg()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patientprofile.FieldHeightCm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeightCm(v)
		return nil
	case patientprofile.FieldWeightKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeightKg(v)
		return nil
	}
	return fmt.Errorf("unknown PatientProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patientprofile.FieldDeletedAt) {
		fields = append(fields, patientprofile.FieldDeletedAt)
	}
	if m.FieldCleared(patientprofile.FieldGender) {
		fields = append(fields, patientprofile.FieldGender)
	}
	if m.FieldCleared(patientprofile.FieldBirthDate) {
		fields = append(fields, patientprofile.FieldBirthDate)
	}
	if m.FieldCleared(patientprofile.FieldHeightCm) {
		fields = append(fields, patientprofile.FieldHeightCm)
	}
	if m.FieldCleared(patientprofile.FieldWeightKg) {
		fields = append(fields, patientprofile.FieldWeightKg)
	}
	if m.FieldCleared(patientprofile.FieldMedicalHistory) {
		fields = append(fields, patientprofile.FieldMedicalHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientProfileMutation) ClearField(name string) error {
	switch name {
	case patientprofile.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case patientprofile.FieldGender:
		m.ClearGender()
		return nil
	case patientprofile.FieldBirthDate:
		m.ClearBirthDate()
		return nil
	case patientprofile.FieldHeightCm:
		m.ClearHeightCm()
		return nil
	case patientprofile.FieldWeightKg:
		m.ClearWeightKg()
		return nil
	case patientprofile.FieldMedicalHistory:
		m.ClearMedicalHistory()
		return nil
	}
	return fmt.Errorf("unknown PatientProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientProfileMutation) ResetField(name string) error {
	switch name {
	case patientprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patientprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patientprofile.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case patientprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case patientprofile.FieldGender:
		m.ResetGender()
		return nil
	case patientprofile.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case patientprofile.FieldHeightCm:
		m.ResetHeightCm()
		return nil
	case patientprofile.FieldWeightKg:
		m.ResetWeightKg()
		return nil
	case patientprofile.FieldMedicalHistory:
		m.ResetMedicalHistory()
		return nil
	}
	return fmt.Errorf("unknown PatientProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, patientprofile.EdgeUser)
	}
	if m.supervisors != nil {
		edges = append(edges, patientprofile.EdgeSupervisors)
	}
	if m.checkups != nil {
		edges = append(edges, patientprofile.EdgeCheckups)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patientprofile.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case patientprofile.EdgeSupervisors:
		ids := make([]ent.Value, 0, len(m.supervisors))
		for id := range m.supervisors {
			ids = append(ids, id)
		}
		return ids
	case patientprofile.EdgeCheckups:
		ids := make([]ent.Value, 0, len(m.checkups))
		for id := range m.checkups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsupervisors != nil {
		edges = append(edges, patientprofile.EdgeSupervisors)
	}
	if m.removedcheckups != nil {
		edges = append(edges, patientprofile.EdgeCheckups)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patientprofile.EdgeSupervisors:
		ids := make([]ent.Value, 0, len(m.removedsupervisors))
		for id := range m.removedsupervisors {
			ids = append(ids, id)
		}
		return ids
	case patientprofile.EdgeCheckups:
		ids := make([]ent.Value, 0, len(m.removedcheckups))
		for id := range m.removedcheckups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, patientprofile.EdgeUser)
	}
	if m.clearedsupervisors {
		edges = append(edges, patientprofile.EdgeSupervisors)
	}
	if m.clearedcheckups {
		edges = append(edges, patientprofile.EdgeCheckups)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case patientprofile.EdgeUser:
		return m.cleareduser
	case patientprofile.EdgeSupervisors:
		return m.clearedsupervisors
	case patientprofile.EdgeCheckups:
		return m.clearedcheckups
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientProfileMutation) ClearEdge(name string) error {
	switch name {
	case patientprofile.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown PatientProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientProfileMutation) ResetEdge(name string) error {
	switch name {
	case patientprofile.EdgeUser:
		m.ResetUser()
		return nil
	case patientprofile.EdgeSupervisors:
		m.ResetSupervisors()
		return nil
	case patientprofile.EdgeCheckups:
		m.ResetCheckups()
		return nil
	}
	return fmt.Errorf("unknown PatientProfile edge %s", name)
}

// QuestionAnswerMutation represents an operation that mutates the QuestionAnswer nodes in the graph.
type QuestionAnswerMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	raw_value       *string
	clearedFields   map[string]struct{}
	checkup         *uuid.UUID
	clearedcheckup  bool
	question        *uuid.UUID
	clearedquestion bool
	option          *uuid.UUID
	clearedoption   bool
	done            bool
	oldValue        func(context.Context) (*QuestionAnswer, error)
	predicates      []predicate.QuestionAnswer
}

var _ ent.Mutation = (*QuestionAnswerMutation)(nil)

// questionanswerOption allows management of the mutation configuration using functional options.
type questionanswerOption func(*QuestionAnswerMutation)

// newQuestionAnswerMutation creates new mutation for the QuestionAnswer entity.
func newQuestionAnswerMutation(c config, op Op, opts ...questionanswerOption) *QuestionAnswerMutation {
	m := &QuestionAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionAnswerID sets the ID field of the mutation.
func withQuestionAnswerID(id uuid.UUID) questionanswerOption {
	return func(m *QuestionAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionAnswer
		)
		m.oldValue = func(ctx context.Context) (*QuestionAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionAnswer sets the old QuestionAnswer of the mutation.
func withQuestionAnswer(node *QuestionAnswer) questionanswerOption {
	return func(m *QuestionAnswerMutation) {
		m.oldValue = func(context.Context) (*QuestionAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestionAnswer entities.
func (m *QuestionAnswerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionAnswerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionAnswerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionAnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionAnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionAnswer entity.
// If the QuestionAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionAnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCheckupID sets the "checkup_id" field.
func (m *QuestionAnswerMutation) SetCheckupID(u uuid.UUID) {
	m.checkup = &u
}

// CheckupID returns the value of the "checkup_id" field in the mutation.
func (m *QuestionAnswerMutation) CheckupID() (r uuid.UUID, exists bool) {
	v := m.checkup
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckupID returns the old "checkup_id" field's value of the QuestionAnswer entity.
// If the QuestionAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAnswerMutation) OldCheckupID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckupID: %w", err)
	}
	return oldValue.CheckupID, nil
}

// ResetCheckupID resets all changes to the "checkup_id" field.
func (m *QuestionAnswerMutation) ResetCheckupID() {
	m.checkup = nil
}

// SetQuestionShareID sets the "question_share_id" field.
func (m *QuestionAnswerMutation) SetQuestionShareID(u uuid.UUID) {
	m.question = &u
}

// QuestionShareID returns the value of the "question_share_id" field in the mutation.
func (m *QuestionAnswerMutation) QuestionShareID() (r uuid.UUID, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionShareID returns the old "question_share_id" field's value of the QuestionAnswer entity.
// If the QuestionAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAnswerMutation) OldQuestionShareID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionShareID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionShareID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionShareID: %w", err)
	}
	return oldValue.QuestionShareID, nil
}

// ResetQuestionShareID resets all changes to the "question_share_id" field.
func (m *QuestionAnswerMutation) ResetQuestionShareID() {
	m.question = nil
}

// SetQuestionOptionID sets the "question_option_id" field.
func (m *QuestionAnswerMutation) SetQuestionOptionID(u uuid.UUID) {
	m.option = &u
}

// QuestionOptionID returns the value of the "question_option_id" field in the mutation.
func (m *QuestionAnswerMutation) QuestionOptionID() (r uuid.UUID, exists bool) {
	v := m.option
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionOptionID returns the old "question_option_id" field's value of the QuestionAnswer entity.
// If the QuestionAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAnswerMutation) OldQuestionOptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionOptionID: %w", err)
	}
	return oldValue.QuestionOptionID, nil
}

// ResetQuestionOptionID resets all changes to the "question_option_id" field.
func (m *QuestionAnswerMutation) ResetQuestionOptionID() {
	m.option = nil
}

// SetRawValue sets the "raw_value" field.
func (m *QuestionAnswerMutation) SetRawValue(s string) {
	m.raw_value = &s
}

// RawValue returns the value of the "raw_value" field in the mutation.
func (m *QuestionAnswerMutation) RawValue() (r string, exists bool) {
	v := m.raw_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRawValue returns the old "raw_value" field's value of the QuestionAnswer entity.
// If the QuestionAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionAnswerMutation) OldRawValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawValue: %w", err)
	}
	return oldValue.RawValue, nil
}

// ClearRawValue clears the value of the "raw_value" field.
func (m *QuestionAnswerMutation) ClearRawValue() {
	m.raw_value = nil
	m.clearedFields[questionanswer.FieldRawValue] = struct{}{}
}

// RawValueCleared returns if the "raw_value" field was cleared in this mutation.
func (m *QuestionAnswerMutation) RawValueCleared() bool {
	_, ok := m.clearedFields[questionanswer.FieldRawValue]
	return ok
}

// ResetRawValue resets all changes to the "raw_value" field.
func (m *QuestionAnswerMutation) ResetRawValue() {
	m.raw_value = nil
	delete(m.clearedFields, questionanswer.FieldRawValue)
}

// ClearCheckup clears the "checkup" edge to the Checkup entity.
func (m *QuestionAnswerMutation) ClearCheckup() {
	m.clearedcheckup = true
	m.clearedFields[questionanswer.FieldCheckupID] = struct{}{}
}

// CheckupCleared reports if the "checkup" edge to the Checkup entity was cleared.
func (m *QuestionAnswerMutation) CheckupCleared() bool {
	return m.clearedcheckup
}

// CheckupIDs returns the "checkup" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CheckupID instead. It exists only for internal usage by the builders.
func (m *QuestionAnswerMutation) CheckupIDs() (ids []uuid.UUID) {
	if id := m.checkup; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCheckup resets all changes to the "checkup" edge.
func (m *QuestionAnswerMutation) ResetCheckup() {
	m.checkup = nil
	m.clearedcheckup = false
}

// SetQuestionID sets the "question" edge to the QuestionShare entity by id.
func (m *QuestionAnswerMutation) SetQuestionID(id uuid.UUID) {
	m.question = &id
}

// ClearQuestion clears the "question" edge to the QuestionShare entity.
func (m *QuestionAnswerMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[questionanswer.FieldQuestionShareID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the QuestionShare entity was cleared.
func (m *QuestionAnswerMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionID returns the "question" edge ID in the mutation.
func (m *QuestionAnswerMutation) QuestionID() (id uuid.UUID, exists bool) {
	if m.question != nil {
		return *m.question, true
	}
	return
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *QuestionAnswerMutation) QuestionIDs() (ids []uuid.UUID) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *QuestionAnswerMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// SetOptionID sets the "option" edge to the QuestionOption entity by id.
func (m *QuestionAnswerMutation) SetOptionID(id uuid.UUID) {
	m.option = &id
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (m *QuestionAnswerMutation) ClearOption() {
	m.clearedoption = true
	m.clearedFields[questionanswer.FieldQuestionOptionID] = struct{}{}
}

// OptionCleared reports if the "option" edge to the QuestionOption entity was cleared.
func (m *QuestionAnswerMutation) OptionCleared() bool {
	return m.clearedoption
}

// OptionID returns the "option" edge ID in the mutation.
func (m *QuestionAnswerMutation) OptionID() (id uuid.UUID, exists bool) {
	if m.option != nil {
		return *m.option, true
	}
	return
}

// OptionIDs returns the "option" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OptionID instead. It exists only for internal usage by the builders.
func (m *QuestionAnswerMutation) OptionIDs() (ids []uuid.UUID) {
	if id := m.option; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOption resets all changes to the "option" edge.
func (m *QuestionAnswerMutation) ResetOption() {
	m.option = nil
	m.clearedoption = false
}

// Where appends a list predicates to the QuestionAnswerMutation builder.
func (m *QuestionAnswerMutation) Where(ps ...predicate.QuestionAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionAnswer).
func (m *QuestionAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionAnswerMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, questionanswer.FieldCreatedAt)
	}
	if m.checkup != nil {
		fields = append(fields, questionanswer.FieldCheckupID)
	}
	if m.question != nil {
		fields = append(fields, questionanswer.FieldQuestionShareID)
	}
	if m.option != nil {
		fields = append(fields, questionanswer.FieldQuestionOptionID)
	}
	if m.raw_value != nil {
		fields = append(fields, questionanswer.FieldRawValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionanswer.FieldCreatedAt:
		return m.CreatedAt()
	case questionanswer.FieldCheckupID:
		return m.CheckupID()
	case questionanswer.FieldQuestionShareID:
		return m.QuestionShareID()
	case questionanswer.FieldQuestionOptionID:
		return m.QuestionOptionID()
	case questionanswer.FieldRawValue:
		return m.RawValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionanswer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionanswer.FieldCheckupID:
		return m.OldCheckupID(ctx)
	case questionanswer.FieldQuestionShareID:
		return m.OldQuestionShareID(ctx)
	case questionanswer.FieldQuestionOptionID:
		return m.OldQuestionOptionID(ctx)
	case questionanswer.FieldRawValue:
		return m.OldRawValue(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionanswer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionanswer.FieldCheckupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckupID(v)
		return nil
	case questionanswer.FieldQuestionShareID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionShareID(v)
		return nil
	case questionanswer.FieldQuestionOptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionOptionID(v)
		return nil
	case questionanswer.FieldRawValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawValue(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionAnswerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionAnswerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QuestionAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionAnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionanswer.FieldRawValue) {
		fields = append(fields, questionanswer.FieldRawValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionAnswerMutation) ClearField(name string) error {
	switch name {
	case questionanswer.FieldRawValue:
		m.ClearRawValue()
		return nil
	}
	return fmt.Errorf("unknown QuestionAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionAnswerMutation) ResetField(name string) error {
	switch name {
	case questionanswer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionanswer.FieldCheckupID:
		m.ResetCheckupID()
		return nil
	case questionanswer.FieldQuestionShareID:
		m.ResetQuestionShareID()
		return nil
	case questionanswer.FieldQuestionOptionID:
		m.ResetQuestionOptionID()
		return nil
	case questionanswer.FieldRawValue:
		m.ResetRawValue()
		return nil
	}
	return fmt.Errorf("unknown QuestionAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.checkup != nil {
		edges = append(edges, questionanswer.EdgeCheckup)
	}
	if m.question != nil {
		edges = append(edges, questionanswer.EdgeQuestion)
	}
	if m.option != nil {
		edges = append(edges, questionanswer.EdgeOption)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionAnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionanswer.EdgeCheckup:
		if id := m.checkup; id != nil {
			return []ent.Value{*id}
		}
	case questionanswer.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	case questionanswer.EdgeOption:
		if id := m.option; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcheckup {
		edges = append(edges, questionanswer.EdgeCheckup)
	}
	if m.clearedquestion {
		edges = append(edges, questionanswer.EdgeQuestion)
	}
	if m.clearedoption {
		edges = append(edges, questionanswer.EdgeOption)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionAnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case questionanswer.EdgeCheckup:
		return m.clearedcheckup
	case questionanswer.EdgeQuestion:
		return m.clearedquestion
	case questionanswer.EdgeOption:
		return m.clearedoption
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionAnswerMutation) ClearEdge(name string) error {
	switch name {
	case questionanswer.EdgeCheckup:
		m.ClearCheckup()
		return nil
	case questionanswer.EdgeQuestion:
		m.ClearQuestion()
		return nil
	case questionanswer.EdgeOption:
		m.ClearOption()
		return nil
	}
	return fmt.Errorf("unknown QuestionAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionAnswerMutation) ResetEdge(name string) error {
	switch name {
	case questionanswer.EdgeCheckup:
		m.ResetCheckup()
		return nil
	case questionanswer.EdgeQuestion:
		m.ResetQuestion()
		return nil
	case questionanswer.EdgeOption:
		m.ResetOption()
		return nil
	}
	return fmt.Errorf("unknown QuestionAnswer edge %s", name)
}

// QuestionOptionMutation represents an operation that mutates the QuestionOption nodes in the graph.
type QuestionOptionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	deleted_at              *time.Time
	title                   *string
	weight                  *int
	addweight               *int
	interpretation          *string
	tutorial                *string
	is_branch               *bool
	chart_x                 *float64
	addchart_x              *float64
	chart_y                 *float64
	addchart_y              *float64
	clearedFields           map[string]struct{}
	question                *uuid.UUID
	clearedquestion         bool
	alert                   *uuid.UUID
	clearedalert            bool
	suggested_doctor        *uuid.UUID
	clearedsuggested_doctor bool
	suggested_clinic        *uuid.UUID
	clearedsuggested_clinic bool
	chart_connect           *uuid.UUID
	clearedchart_connect    bool
	number_ranges           map[uuid.UUID]struct{}
	removednumber_ranges    map[uuid.UUID]struct{}
	clearednumber_ranges    bool
	date_ranges             map[uuid.UUID]struct{}
	removeddate_ranges      map[uuid.UUID]struct{}
	cleareddate_ranges      bool
	equation_ranges         map[uuid.UUID]struct{}
	removedequation_ranges  map[uuid.UUID]struct{}
	clearedequation_ranges  bool
	done                    bool
	oldValue                func(context.Context) (*QuestionOption, error)
	predicates              []predicate.QuestionOption
}

var _ ent.Mutation = (*QuestionOptionMutation)(nil)

// questionoptionOption allows management of the mutation configuration using functional options.
type questionoptionOption func(*QuestionOptionMutation)

// newQuestionOptionMutation creates new mutation for the QuestionOption entity.
func newQuestionOptionMutation(c config, op Op, opts ...questionoptionOption) *QuestionOptionMutation {
	m := &QuestionOptionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionOption,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionOptionID sets the ID field of the mutation.
func withQuestionOptionID(id uuid.UUID) questionoptionOption {
	return func(m *QuestionOptionMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionOption
		)
		m.oldValue = func(ctx context.Context) (*QuestionOption, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionOption.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionOption sets the old QuestionOption of the mutation.
func withQuestionOption(node *QuestionOption) questionoptionOption {
	return func(m *QuestionOptionMutation) {
		m.oldValue = func(context.Context) (*QuestionOption, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionOptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionOptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestionOption entities.
func (m *QuestionOptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionOptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionOptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionOption.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionOptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionOptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionOptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionOptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionOptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionOptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *QuestionOptionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *QuestionOptionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *QuestionOptionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[questionoption.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *QuestionOptionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[questionoption.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *QuestionOptionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, questionoption.FieldDeletedAt)
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionOptionMutation) SetQuestionID(u uuid.UUID) {
	m.question = &u
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionOptionMutation) QuestionID() (r uuid.UUID, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldQuestionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionOptionMutation) ResetQuestionID() {
	m.question = nil
}

// SetTitle sets the "title" field.
func (m *QuestionOptionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *QuestionOptionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *QuestionOptionMutation) ResetTitle() {
	m.title = nil
}

// SetWeight sets the "weight" field.
func (m *QuestionOptionMutation) SetWeight(i int) {
	m.weight = &i
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *QuestionOptionMutation) Weight() (r int, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldWeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds i to the "weight" field.
func (m *QuestionOptionMutation) AddWeight(i int) {
	if m.addweight != nil {
		*m.addweight += i
	} else {
		m.addweight = &i
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *QuestionOptionMutation) AddedWeight() (r int, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *QuestionOptionMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetInterpretation sets the "interpretation" field.
func (m *QuestionOptionMutation) SetInterpretation(s string) {
	m.interpretation = &s
}

// Interpretation returns the value of the "interpretation" field in the mutation.
func (m *QuestionOptionMutation) Interpretation() (r string, exists bool) {
	v := m.interpretation
	if v == nil {
		return
	}
	return *v, true
}

// OldInterpretation returns the old "interpretation" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldInterpretation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterpretation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterpretation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterpretation: %w", err)
	}
	return oldValue.Interpretation, nil
}

// ClearInterpretation clears the value of the "interpretation" field.
func (m *QuestionOptionMutation) ClearInterpretation() {
	m.interpretation = nil
	m.clearedFields[questionoption.FieldInterpretation] = struct{}{}
}

// InterpretationCleared returns if the "interpretation" field was cleared in this mutation.
func (m *QuestionOptionMutation) InterpretationCleared() bool {
	_, ok := m.clearedFields[questionoption.FieldInterpretation]
	return ok
}

// ResetInterpretation resets all changes to the "interpretation" field.
func (m *QuestionOptionMutation) ResetInterpretation() {
	m.interpretation = nil
	delete(m.clearedFields, questionoption.FieldInterpretation)
}

// SetTutorial sets the "tutorial" field.
func (m *QuestionOptionMutation) SetTutorial(s string) {
	m.tutorial = &s
}

// Tutorial returns the value of the "tutorial" field in the mutation.
func (m *QuestionOptionMutation) Tutorial() (r string, exists bool) {
	v := m.tutorial
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorial returns the old "tutorial" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldTutorial(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorial: %w", err)
	}
	return oldValue.Tutorial, nil
}

// ClearTutorial clears the value of the "tutorial" field.
func (m *QuestionOptionMutation) ClearTutorial() {
	m.tutorial = nil
	m.clearedFields[questionoption.FieldTutorial] = struct{}{}
}

// TutorialCleared returns if the "tutorial" field was cleared in this mutation.
func (m *QuestionOptionMutation) TutorialCleared() bool {
	_, ok := m.clearedFields[questionoption.FieldTutorial]
	return ok
}

// ResetTutorial resets all changes to the "tutorial" field.
func (m *QuestionOptionMutation) ResetTutorial() {
	m.tutorial = nil
	delete(m.clearedFields, questionoption.FieldTutorial)
}

// SetAlertID sets the "alert_id" field.
func (m *QuestionOptionMutation) SetAlertID(u uuid.UUID) {
	m.alert = &u
}

// AlertID returns the value of the "alert_id" field in the mutation.
func (m *QuestionOptionMutation) AlertID() (r uuid.UUID, exists bool) {
	v := m.alert
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertID returns the old "alert_id" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldAlertID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertID: %w", err)
	}
	return oldValue.AlertID, nil
}

// ClearAlertID clears the value of the "alert_id" field.
func (m *QuestionOptionMutation) ClearAlertID() {
	m.alert = nil
	m.clearedFields[questionoption.FieldAlertID] = struct{}{}
}

// AlertIDCleared returns if the "alert_id" field was cleared in this mutation.
func (m *QuestionOptionMutation) AlertIDCleared() bool {
	_, ok := m.clearedFields[questionoption.FieldAlertID]
	return ok
}

// ResetAlertID resets all changes to the "alert_id" field.
func (m *QuestionOptionMutation) ResetAlertID() {
	m.alert = nil
	delete(m.clearedFields, questionoption.FieldAlertID)
}

// SetSuggestedDoctorID sets the "suggested_doctor_id" field.
func (m *QuestionOptionMutation) SetSuggestedDoctorID(u uuid.UUID) {
	m.suggested_doctor = &u
}

// SuggestedDoctorID returns the value of the "suggested_doctor_id" field in the mutation.
func (m *QuestionOptionMutation) SuggestedDoctorID() (r uuid.UUID, exists bool) {
	v := m.suggested_doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedDoctorID returns the old "suggested_doctor_id" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldSuggestedDoctorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedDoctorID: %w", err)
	}
	return oldValue.SuggestedDoctorID, nil
}

// ClearSuggestedDoctorID clears the value of the "suggested_doctor_id" field.
func (m *QuestionOptionMutation) ClearSuggestedDoctorID() {
	m.suggested_doctor = nil
	m.clearedFields[questionoption.FieldSuggestedDoctorID] = struct{}{}
}

// SuggestedDoctorIDCleared returns if the "suggested_doctor_id" field was cleared in this mutation.
func (m *QuestionOptionMutation) SuggestedDoctorIDCleared() bool {
	_, ok := m.clearedFields[questionoption.FieldSuggestedDoctorID]
	return ok
}

// ResetSuggestedDoctorID resets all changes to the "suggested_doctor_id" field.
func (m *QuestionOptionMutation) ResetSuggestedDoctorID() {
	m.suggested_doctor = nil
	delete(m.clearedFields, questionoption.FieldSuggestedDoctorID)
}

// SetSuggestedClinicID sets the "suggested_clinic_id" field.
func (m *QuestionOptionMutation) SetSuggestedClinicID(u uuid.UUID) {
	m.suggested_clinic = &u
}

// SuggestedClinicID returns the value of the "suggested_clinic_id" field in the mutation.
func (m *QuestionOptionMutation) SuggestedClinicID() (r uuid.UUID, exists bool) {
	v := m.suggested_clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedClinicID returns the old "suggested_clinic_id" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldSuggestedClinicID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedClinicID: %w", err)
	}
	return oldValue.SuggestedClinicID, nil
}

// ClearSuggestedClinicID clears the value of the "suggested_clinic_id" field.
func (m *QuestionOptionMutation) ClearSuggestedClinicID() {
	m.suggested_clinic = nil
	m.clearedFields[questionoption.FieldSuggestedClinicID] = struct{}{}
}

// SuggestedClinicIDCleared returns if the "suggested_clinic_id" field was cleared in this mutation.
func (m *QuestionOptionMutation) SuggestedClinicIDCleared() bool {
	_, ok := m.clearedFields[questionoption.FieldSuggestedClinicID]
	return ok
}

// ResetSuggestedClinicID resets all changes to the "suggested_clinic_id" field.
func (m *QuestionOptionMutation) ResetSuggestedClinicID() {
	m.suggested_clinic = nil
	delete(m.clearedFields, questionoption.FieldSuggestedClinicID)
}

// SetIsBranch sets the "is_branch" field.
func (m *QuestionOptionMutation) SetIsBranch(b bool) {
	m.is_branch = &b
}

// IsBranch returns the value of the "is_branch" field in the mutation.
func (m *QuestionOptionMutation) IsBranch() (r bool, exists bool) {
	v := m.is_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBranch returns the old "is_branch" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldIsBranch(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBranch: %w", err)
	}
	return oldValue.IsBranch, nil
}

// ResetIsBranch resets all changes to the "is_branch" field.
func (m *QuestionOptionMutation) ResetIsBranch() {
	m.is_branch = nil
}

// SetChartX sets the "chart_x" field.
func (m *QuestionOptionMutation) SetChartX(f float64) {
	m.chart_x = &f
	m.addchart_x = nil
}

// ChartX returns the value of the "chart_x" field in the mutation.
func (m *QuestionOptionMutation) ChartX() (r float64, exists bool) {
	v := m.chart_x
	if v == nil {
		return
	}
	return *v, true
}

// OldChartX returns the old "chart_x" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldChartX(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartX: %w", err)
	}
	return oldValue.ChartX, nil
}

// AddChartX adds f to the "chart_x" field.
func (m *QuestionOptionMutation) AddChartX(f float64) {
	if m.addchart_x != nil {
		*m.addchart_x += f
	} else {
		m.addchart_x = &f
	}
}

// AddedChartX returns the value that was added to the "chart_x" field in this mutation.
func (m *QuestionOptionMutation) AddedChartX() (r float64, exists bool) {
	v := m.addchart_x
	if v == nil {
		return
	}
	return *v, true
}

// ResetChartX resets all changes to the "chart_x" field.
func (m *QuestionOptionMutation) ResetChartX() {
	m.chart_x = nil
	m.addchart_x = nil
}

// SetChartY sets the "chart_y" field.
func (m *QuestionOptionMutation) SetChartY(f float64) {
	m.chart_y = &f
	m.addchart_y = nil
}

// ChartY returns the value of the "chart_y" field in the mutation.
func (m *QuestionOptionMutation) ChartY() (r float64, exists bool) {
	v := m.chart_y
	if v == nil {
		return
	}
	return *v, true
}

// OldChartY returns the old "chart_y" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldChartY(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartY: %w", err)
	}
	return oldValue.ChartY, nil
}

// AddChartY adds f to the "chart_y" field.
func (m *QuestionOptionMutation) AddChartY(f float64) {
	if m.addchart_y != nil {
		*m.addchart_y += f
	} else {
		m.addchart_y = &f
	}
}

// AddedChartY returns the value that was added to the "chart_y" field in this mutation.
func (m *QuestionOptionMutation) AddedChartY() (r float64, exists bool) {
	v := m.addchart_y
	if v == nil {
		return
	}
	return *v, true
}

// ResetChartY resets all changes to the "chart_y" field.
func (m *QuestionOptionMutation) ResetChartY() {
	m.chart_y = nil
	m.addchart_y = nil
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (m *QuestionOptionMutation) SetChartConnectQuestionID(u uuid.UUID) {
	m.chart_connect = &u
}

// ChartConnectQuestionID returns the value of the "chart_connect_question_id" field in the mutation.
func (m *QuestionOptionMutation) ChartConnectQuestionID() (r uuid.UUID, exists bool) {
	v := m.chart_connect
	if v == nil {
		return
	}
	return *v, true
}

// OldChartConnectQuestionID returns the old "chart_connect_question_id" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldChartConnectQuestionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartConnectQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartConnectQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartConnectQuestionID: %w", err)
	}
	return oldValue.ChartConnectQuestionID, nil
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (m *QuestionOptionMutation) ClearChartConnectQuestionID() {
	m.chart_connect = nil
	m.clearedFields[questionoption.FieldChartConnectQuestionID] = struct{}{}
}

// ChartConnectQuestionIDCleared returns if the "chart_connect_question_id" field was cleared in this mutation.
func (m *QuestionOptionMutation) ChartConnectQuestionIDCleared() bool {
	_, ok := m.clearedFields[questionoption.FieldChartConnectQuestionID]
	return ok
}

// ResetChartConnectQuestionID resets all changes to the "chart_connect_question_id" field.
func (m *QuestionOptionMutation) ResetChartConnectQuestionID() {
	m.chart_connect = nil
	delete(m.clearedFields, questionoption.FieldChartConnectQuestionID)
}

// ClearQuestion clears the "question" edge to the QuestionShare entity.
func (m *QuestionOptionMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[questionoption.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the QuestionShare entity was cleared.
func (m *QuestionOptionMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionMutation) QuestionIDs() (ids []uuid.UUID) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *QuestionOptionMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// ClearAlert clears the "alert" edge to the Alert entity.
func (m *QuestionOptionMutation) ClearAlert() {
	m.clearedalert = true
	m.clearedFields[questionoption.FieldAlertID] = struct{}{}
}

// AlertCleared reports if the "alert" edge to the Alert entity was cleared.
func (m *QuestionOptionMutation) AlertCleared() bool {
	return m.AlertIDCleared() || m.clearedalert
}

// AlertIDs returns the "alert" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AlertID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionMutation) AlertIDs() (ids []uuid.UUID) {
	if id := m.alert; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAlert resets all changes to the "alert" edge.
func (m *QuestionOptionMutation) ResetAlert() {
	m.alert = nil
	m.clearedalert = false
}

// ClearSuggestedDoctor clears the "suggested_doctor" edge to the Doctor entity.
func (m *QuestionOptionMutation) ClearSuggestedDoctor() {
	m.clearedsuggested_doctor = true
	m.clearedFields[questionoption.FieldSuggestedDoctorID] = struct{}{}
}

// SuggestedDoctorCleared reports if the "suggested_doctor" edge to the Doctor entity was cleared.
func (m *QuestionOptionMutation) SuggestedDoctorCleared() bool {
	return m.SuggestedDoctorIDCleared() || m.clearedsuggested_doctor
}

// SuggestedDoctorIDs returns the "suggested_doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SuggestedDoctorID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionMutation) SuggestedDoctorIDs() (ids []uuid.UUID) {
	if id := m.suggested_doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSuggestedDoctor resets all changes to the "suggested_doctor" edge.
func (m *QuestionOptionMutation) ResetSuggestedDoctor() {
	m.suggested_doctor = nil
	m.clearedsuggested_doctor = false
}

// ClearSuggestedClinic clears the "suggested_clinic" edge to the Clinic entity.
func (m *QuestionOptionMutation) ClearSuggestedClinic() {
	m.clearedsuggested_clinic = true
	m.clearedFields[questionoption.FieldSuggestedClinicID] = struct{}{}
}

// SuggestedClinicCleared reports if the "suggested_clinic" edge to the Clinic entity was cleared.
func (m *QuestionOptionMutation) SuggestedClinicCleared() bool {
	return m.SuggestedClinicIDCleared() || m.clearedsuggested_clinic
}

// SuggestedClinicIDs returns the "suggested_clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SuggestedClinicID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionMutation) SuggestedClinicIDs() (ids []uuid.UUID) {
	if id := m.suggested_clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSuggestedClinic resets all changes to the "suggested_clinic" edge.
func (m *QuestionOptionMutation) ResetSuggestedClinic() {
	m.suggested_clinic = nil
	m.clearedsuggested_clinic = false
}

// SetChartConnectID sets the "chart_connect" edge to the QuestionShare entity by id.
func (m *QuestionOptionMutation) SetChartConnectID(id uuid.UUID) {
	m.chart_connect = &id
}

// ClearChartConnect clears the "chart_connect" edge to the QuestionShare entity.
func (m *QuestionOptionMutation) ClearChartConnect() {
	m.clearedchart_connect = true
	m.clearedFields[questionoption.FieldChartConnectQuestionID] = struct{}{}
}

// ChartConnectCleared reports if the "chart_connect" edge to the QuestionShare entity was cleared.
func (m *QuestionOptionMutation) ChartConnectCleared() bool {
	return m.ChartConnectQuestionIDCleared() || m.clearedchart_connect
}

// ChartConnectID returns the "chart_connect" edge ID in the mutation.
func (m *QuestionOptionMutation) ChartConnectID() (id uuid.UUID, exists bool) {
	if m.chart_connect != nil {
		return *m.chart_connect, true
	}
	return
}

// ChartConnectIDs returns the "chart_connect" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChartConnectID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionMutation) ChartConnectIDs() (ids []uuid.UUID) {
	if id := m.chart_connect; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChartConnect resets all changes to the "chart_connect" edge.
func (m *QuestionOptionMutation) ResetChartConnect() {
	m.chart_connect = nil
	m.clearedchart_connect = false
}

// AddNumberRangeIDs adds the "number_ranges" edge to the QuestionOptionNumber entity by ids.
func (m *QuestionOptionMutation) AddNumberRangeIDs(ids ...uuid.UUID) {
	if m.number_ranges == nil {
		m.number_ranges = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.number_ranges[ids[i]] = struct{}{}
	}
}

// ClearNumberRanges clears the "number_ranges" edge to the QuestionOptionNumber entity.
func (m *QuestionOptionMutation) ClearNumberRanges() {
	m.clearednumber_ranges = true
}

// NumberRangesCleared reports if the "number_ranges" edge to the QuestionOptionNumber entity was cleared.
func (m *QuestionOptionMutation) NumberRangesCleared() bool {
	return m.clearednumber_ranges
}

// RemoveNumberRangeIDs removes the "number_ranges" edge to the QuestionOptionNumber entity by IDs.
func (m *QuestionOptionMutation) RemoveNumberRangeIDs(ids ...uuid.UUID) {
	if m.removednumber_ranges == nil {
		m.removednumber_ranges = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.number_ranges, ids[i])
		m.removednumber_ranges[ids[i]] = struct{}{}
	}
}

// RemovedNumberRanges returns the removed IDs of the "number_ranges" edge to the QuestionOptionNumber entity.
func (m *QuestionOptionMutation) RemovedNumberRangesIDs() (ids []uuid.UUID) {
	for id := range m.removednumber_ranges {
		ids = append(ids, id)
	}
	return
}

// NumberRangesIDs returns the "number_ranges" edge IDs in the mutation.
func (m *QuestionOptionMutation) NumberRangesIDs() (ids []uuid.UUID) {
	for id := range m.number_ranges {
		ids = append(ids, id)
	}
	return
}

// ResetNumberRanges resets all changes to the "number_ranges" edge.
func (m *QuestionOptionMutation) ResetNumberRanges() {
	m.number_ranges = nil
	m.clearednumber_ranges = false
	m.removednumber_ranges = nil
}

// AddDateRangeIDs adds the "date_ranges" edge to the QuestionOptionDate entity by ids.
func (m *QuestionOptionMutation) AddDateRangeIDs(ids ...uuid.UUID) {
	if m.date_ranges == nil {
		m.date_ranges = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.date_ranges[ids[i]] = struct{}{}
	}
}

// ClearDateRanges clears the "date_ranges" edge to the QuestionOptionDate entity.
func (m *QuestionOptionMutation) ClearDateRanges() {
	m.cleareddate_ranges = true
}

// DateRangesCleared reports if the "date_ranges" edge to the QuestionOptionDate entity was cleared.
func (m *QuestionOptionMutation) DateRangesCleared() bool {
	return m.cleareddate_ranges
}

// RemoveDateRangeIDs removes the "date_ranges" edge to the QuestionOptionDate entity by IDs.
func (m *QuestionOptionMutation) RemoveDateRangeIDs(ids ...uuid.UUID) {
	if m.removeddate_ranges == nil {
		m.removeddate_ranges = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.date_ranges, ids[i])
		m.removeddate_ranges[ids[i]] = struct{}{}
	}
}

// RemovedDateRanges returns the removed IDs of the "date_ranges" edge to the QuestionOptionDate entity.
func (m *QuestionOptionMutation) RemovedDateRangesIDs() (ids []uuid.UUID) {
	for id := range m.removeddate_ranges {
		ids = append(ids, id)
	}
	return
}

// DateRangesIDs returns the "date_ranges" edge IDs in the mutation.
func (m *QuestionOptionMutation) DateRangesIDs() (ids []uuid.UUID) {
	for id := range m.date_ranges {
		ids = append(ids, id)
	}
	return
}

// ResetDateRanges resets all changes to the "date_ranges" edge.
func (m *QuestionOptionMutation) ResetDateRanges() {
	m.date_ranges = nil
	m.cleareddate_ranges = false
	m.removeddate_ranges = nil
}

// AddEquationRangeIDs adds the "equation_ranges" edge to the QuestionOptionEquation entity by ids.
func (m *QuestionOptionMutation) AddEquationRangeIDs(ids ...uuid.UUID) {
	if m.equation_ranges == nil {
		m.equation_ranges = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.equation_ranges[ids[i]] = struct{}{}
	}
}

// ClearEquationRanges clears the "equation_ranges" edge to the QuestionOptionEquation entity.
func (m *QuestionOptionMutation) ClearEquationRanges() {
	m.clearedequation_ranges = true
}

// EquationRangesCleared reports if the "equation_ranges" edge to the QuestionOptionEquation entity was cleared.
func (m *QuestionOptionMutation) EquationRangesCleared() bool {
	return m.clearedequation_ranges
}

// RemoveEquationRangeIDs removes the "equation_ranges" edge to the QuestionOptionEquation entity by IDs.
func (m *QuestionOptionMutation) RemoveEquationRangeIDs(ids ...uuid.UUID) {
	if m.removedequation_ranges == nil {
		m.removedequation_ranges = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.equation_ranges, ids[i])
		m.removedequation_ranges[ids[i]] = struct{}{}
	}
}

// RemovedEquationRanges returns the removed IDs of the "equation_ranges" edge to the QuestionOptionEquation entity.
func (m *QuestionOptionMutation) RemovedEquationRangesIDs() (ids []uuid.UUID) {
	for id := range m.removedequation_ranges {
		ids = append(ids, id)
	}
	return
}

// EquationRangesIDs returns the "equation_ranges" edge IDs in the mutation.
func (m *QuestionOptionMutation) EquationRangesIDs() (ids []uuid.UUID) {
	for id := range m.equation_ranges {
		ids = append(ids, id)
	}
	return
}

// ResetEquationRanges resets all changes to the "equation_ranges" edge.
func (m *QuestionOptionMutation) ResetEquationRanges() {
	m.equation_ranges = nil
	m.clearedequation_ranges = false
	m.removedequation_ranges = nil
}

// Where appends a list predicates to the QuestionOptionMutation builder.
func (m *QuestionOptionMutation) Where(ps ...predicate.QuestionOption) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionOptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionOptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionOption, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionOptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionOptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionOption).
func (m *QuestionOptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionOptionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, questionoption.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, questionoption.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, questionoption.FieldDeletedAt)
	}
	if m.question != nil {
		fields = append(fields, questionoption.FieldQuestionID)
	}
	if m.title != nil {
		fields = append(fields, questionoption.FieldTitle)
	}
	if m.weight != nil {
		fields = append(fields, questionoption.FieldWeight)
	}
	if m.interpretation != nil {
		fields = append(fields, questionoption.FieldInterpretation)
	}
	if m.tutorial != nil {
		fields = append(fields, questionoption.FieldTutorial)
	}
	if m.alert != nil {
		fields = append(fields, questionoption.FieldAlertID)
	}
	if m.suggested_doctor != nil {
		fields = append(fields, questionoption.FieldSuggestedDoctorID)
	}
	if m.suggested_clinic != nil {
		fields = append(fields, questionoption.FieldSuggestedClinicID)
	}
	if m.is_branch != nil {
		fields = append(fields, questionoption.FieldIsBranch)
	}
	if m.chart_x != nil {
		fields = append(fields, questionoption.FieldChartX)
	}
	if m.chart_y != nil {
		fields = append(fields, questionoption.FieldChartY)
	}
	if m.chart_connect != nil {
		fields = append(fields, questionoption.FieldChartConnectQuestionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionOptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionoption.FieldCreatedAt:
		return m.CreatedAt()
	case questionoption.FieldUpdatedAt:
		return m.UpdatedAt()
	case questionoption.FieldDeletedAt:
		return m.DeletedAt()
	case questionoption.FieldQuestionID:
		return m.QuestionID()
	case questionoption.FieldTitle:
		return m.Title()
	case questionoption.FieldWeight:
		return m.Weight()
	case questionoption.FieldInterpretation:
		return m.Interpretation()
	case questionoption.FieldTutorial:
		return m.Tutorial()
	case questionoption.FieldAlertID:
		return m.AlertID()
	case questionoption.FieldSuggestedDoctorID:
		return m.SuggestedDoctorID()
	case questionoption.FieldSuggestedClinicID:
		return m.SuggestedClinicID()
	case questionoption.FieldIsBranch:
		return m.IsBranch()
	case questionoption.FieldChartX:
		return m.ChartX()
	case questionoption.FieldChartY:
		return m.ChartY()
	case questionoption.FieldChartConnectQuestionID:
		return m.ChartConnectQuestionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionOptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionoption.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionoption.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case questionoption.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case questionoption.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionoption.FieldTitle:
		return m.OldTitle(ctx)
	case questionoption.FieldWeight:
		return m.OldWeight(ctx)
	case questionoption.FieldInterpretation:
		return m.OldInterpretation(ctx)
	case questionoption.FieldTutorial:
		return m.OldTutorial(ctx)
	case questionoption.FieldAlertID:
		return m.OldAlertID(ctx)
	case questionoption.FieldSuggestedDoctorID:
		return m.OldSuggestedDoctorID(ctx)
	case questionoption.FieldSuggestedClinicID:
		return m.OldSuggestedClinicID(ctx)
	case questionoption.FieldIsBranch:
		return m.OldIsBranch(ctx)
	case questionoption.FieldChartX:
		return m.OldChartX(ctx)
	case questionoption.FieldChartY:
		return m.OldChartY(ctx)
	case questionoption.FieldChartConnectQuestionID:
		return m.OldChartConnectQuestionID(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionOption field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionoption.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionoption.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case questionoption.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case questionoption.FieldQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionoption.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case questionoption.FieldWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case questionoption.FieldInterpretation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterpretation(v)
		return nil
	case questionoption.FieldTutorial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorial(v)
		return nil
	case questionoption.FieldAlertID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertID(v)
		return nil
	case questionoption.FieldSuggestedDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedDoctorID(v)
		return nil
	case questionoption.FieldSuggestedClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedClinicID(v)
		return nil
	case questionoption.FieldIsBranch:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBranch(v)
		return nil
	case questionoption.FieldChartX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartX(v)
		return nil
	case questionoption.FieldChartY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartY(v)
		return nil
	case questionoption.FieldChartConnectQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartConnectQuestionID(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOption field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionOptionMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, questionoption.FieldWeight)
	}
	if m.addchart_x != nil {
		fields = append(fields, questionoption.FieldChartX)
	}
	if m.addchart_y != nil {
		fields = append(fields, questionoption.FieldChartY)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionOptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionoption.FieldWeight:
		return m.AddedWeight()
	case questionoption.FieldChartX:
		return m.AddedChartX()
	case questionoption.FieldChartY:
		return m.AddedChartY()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionoption.FieldWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case questionoption.FieldChartX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChartX(v)
		return nil
	case questionoption.FieldChartY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChartY(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOption numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionOptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionoption.FieldDeletedAt) {
		fields = append(fields, questionoption.FieldDeletedAt)
	}
	if m.FieldCleared(questionoption.FieldInterpretation) {
		fields = append(fields, questionoption.FieldInterpretation)
	}
	if m.FieldCleared(questionoption.FieldTutorial) {
		fields = append(fields, questionoption.FieldTutorial)
	}
	if m.FieldCleared(questionoption.FieldAlertID) {
		fields = append(fields, questionoption.FieldAlertID)
	}
	if m.FieldCleared(questionoption.FieldSuggestedDoctorID) {
		fields = append(fields, questionoption.FieldSuggestedDoctorID)
	}
	if m.FieldCleared(questionoption.FieldSuggestedClinicID) {
		fields = append(fields, questionoption.FieldSuggestedClinicID)
	}
	if m.FieldCleared(questionoption.FieldChartConnectQuestionID) {
		fields = append(fields, questionoption.FieldChartConnectQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionOptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionOptionMutation) ClearField(name string) error {
	switch name {
	case questionoption.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case questionoption.FieldInterpretation:
		m.ClearInterpretation()
		return nil
	case questionoption.FieldTutorial:
		m.ClearTutorial()
		return nil
	case questionoption.FieldAlertID:
		m.ClearAlertID()
		return nil
	case questionoption.FieldSuggestedDoctorID:
		m.ClearSuggestedDoctorID()
		return nil
	case questionoption.FieldSuggestedClinicID:
		m.ClearSuggestedClinicID()
		return nil
	case questionoption.FieldChartConnectQuestionID:
		m.ClearChartConnectQuestionID()
		return nil
	}
	return fmt.Errorf("unknown QuestionOption nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionOptionMutation) ResetField(name string) error {
	switch name {
	case questionoption.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionoption.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case questionoption.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case questionoption.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionoption.FieldTitle:
		m.ResetTitle()
		return nil
	case questionoption.FieldWeight:
		m.ResetWeight()
		return nil
	case questionoption.FieldInterpretation:
		m.ResetInterpretation()
		return nil
	case questionoption.FieldTutorial:
		m.ResetTutorial()
		return nil
	case questionoption.FieldAlertID:
		m.ResetAlertID()
		return nil
	case questionoption.FieldSuggestedDoctorID:
		m.ResetSuggestedDoctorID()
		return nil
	case questionoption.FieldSuggestedClinicID:
		m.ResetSuggestedClinicID()
		return nil
	case questionoption.FieldIsBranch:
		m.ResetIsBranch()
		return nil
	case questionoption.FieldChartX:
		m.ResetChartX()
		return nil
	case questionoption.FieldChartY:
		m.ResetChartY()
		return nil
	case questionoption.FieldChartConnectQuestionID:
		m.ResetChartConnectQuestionID()
		return nil
	}
	return fmt.Errorf("unknown QuestionOption field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionOptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.question != nil {
		edges = append(edges, questionoption.EdgeQuestion)
	}
	if m.alert != nil {
		edges = append(edges, questionoption.EdgeAlert)
	}
	if m.suggested_doctor != nil {
		edges = append(edges, questionoption.EdgeSuggestedDoctor)
	}
	if m.suggested_clinic != nil {
		edges = append(edges, questionoption.EdgeSuggestedClinic)
	}
	if m.chart_connect != nil {
		edges = append(edges, questionoption.EdgeChartConnect)
	}
	if m.number_ranges != nil {
		edges = append(edges, questionoption.EdgeNumberRanges)
	}
	if m.date_ranges != nil {
		edges = append(edges, questionoption.EdgeDateRanges)
	}
	if m.equation_ranges != nil {
		edges = append(edges, questionoption.EdgeEquationRanges)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionOptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionoption.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	case questionoption.EdgeAlert:
		if id := m.alert; id != nil {
			return []ent.Value{*id}
		}
	case questionoption.EdgeSuggestedDoctor:
		if id := m.suggested_doctor; id != nil {
			return []ent.Value{*id}
		}
	case questionoption.EdgeSuggestedClinic:
		if id := m.suggested_clinic; id != nil {
			return []ent.Value{*id}
		}
	case questionoption.EdgeChartConnect:
		if id := m.chart_connect; id != nil {
			return []ent.Value{*id}
		}
	case questionoption.EdgeNumberRanges:
		ids := make([]ent.Value, 0, len(m.number_ranges))
		for id := range m.number_ranges {
			ids = append(ids, id)
		}
		return ids
	case questionoption.EdgeDateRanges:
		ids := make([]ent.Value, 0, len(m.date_ranges))
		for id := range m.date_ranges {
			ids = append(ids, id)
		}
		return ids
	case questionoption.EdgeEquationRanges:
		ids := make([]ent.Value, 0, len(m.equation_ranges))
		for id := range m.equation_ranges {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionOptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removednumber_ranges != nil {
		edges = append(edges, questionoption.EdgeNumberRanges)
	}
	if m.removeddate_ranges != nil {
		edges = append(edges, questionoption.EdgeDateRanges)
	}
	if m.removedequation_ranges != nil {
		edges = append(edges, questionoption.EdgeEquationRanges)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionOptionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case questionoption.EdgeNumberRanges:
		ids := make([]ent.Value, 0, len(m.removednumber_ranges))
		for id := range m.removednumber_ranges {
			ids = append(ids, id)
		}
		return ids
	case questionoption.EdgeDateRanges:
		ids := make([]ent.Value, 0, len(m.removeddate_ranges))
		for id := range m.removeddate_ranges {
			ids = append(ids, id)
		}
		return ids
	case questionoption.EdgeEquationRanges:
		ids := make([]ent.Value, 0, len(m.removedequation_ranges))
		for id := range m.removedequation_ranges {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionOptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedquestion {
		edges = append(edges, questionoption.EdgeQuestion)
	}
	if m.clearedalert {
		edges = append(edges, questionoption.EdgeAlert)
	}
	if m.clearedsuggested_doctor {
		edges = append(edges, questionoption.EdgeSuggestedDoctor)
	}
	if m.clearedsuggested_clinic {
		edges = append(edges, questionoption.EdgeSuggestedClinic)
	}
	if m.clearedchart_connect {
		edges = append(edges, questionoption.EdgeChartConnect)
	}
	if m.clearednumber_ranges {
		edges = append(edges, questionoption.EdgeNumberRanges)
	}
	if m.cleareddate_ranges {
		edges = append(edges, questionoption.EdgeDateRanges)
	}
	if m.clearedequation_ranges {
		edges = append(edges, questionoption.EdgeEquationRanges)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionOptionMutation) EdgeCleared(name string) bool {
	switch name {
	case questionoption.EdgeQuestion:
		return m.clearedquestion
	case questionoption.EdgeAlert:
		return m.clearedalert
	case questionoption.EdgeSuggestedDoctor:
		return m.clearedsuggested_doctor
	case questionoption.EdgeSuggestedClinic:
		return m.clearedsuggested_clinic
	case questionoption.EdgeChartConnect:
		return m.clearedchart_connect
	case questionoption.EdgeNumberRanges:
		return m.clearednumber_ranges
	case questionoption.EdgeDateRanges:
		return m.cleareddate_ranges
	case questionoption.EdgeEquationRanges:
		return m.clearedequation_ranges
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionOptionMutation) ClearEdge(name string) error {
	switch name {
	case questionoption.EdgeQuestion:
		m.ClearQuestion()
		return nil
	case questionoption.EdgeAlert:
		m.ClearAlert()
		return nil
	case questionoption.EdgeSuggestedDoctor:
		m.ClearSuggestedDoctor()
		return nil
	case questionoption.EdgeSuggestedClinic:
		m.ClearSuggestedClinic()
		return nil
	case questionoption.EdgeChartConnect:
		m.ClearChartConnect()
		return nil
	}
	return fmt.Errorf("unknown QuestionOption unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionOptionMutation) ResetEdge(name string) error {
	switch name {
	case questionoption.EdgeQuestion:
		m.ResetQuestion()
		return nil
	case questionoption.EdgeAlert:
		m.ResetAlert()
		return nil
	case questionoption.EdgeSuggestedDoctor:
		m.ResetSuggestedDoctor()
		return nil
	case questionoption.EdgeSuggestedClinic:
		m.ResetSuggestedClinic()
		return nil
	case questionoption.EdgeChartConnect:
		m.ResetChartConnect()
		return nil
	case questionoption.EdgeNumberRanges:
		m.ResetNumberRanges()
		return nil
	case questionoption.EdgeDateRanges:
		m.ResetDateRanges()
		return nil
	case questionoption.EdgeEquationRanges:
		m.ResetEquationRanges()
		return nil
	}
	return fmt.Errorf("unknown QuestionOption edge %s", name)
}

// QuestionOptionDateMutation represents an operation that mutates the QuestionOptionDate nodes in the graph.
type QuestionOptionDateMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	lower_band    *float64
	addlower_band *float64
	upper_band    *float64
	addupper_band *float64
	clearedFields map[string]struct{}
	option        *uuid.UUID
	clearedoption bool
	done          bool
	oldValue      func(context.Context) (*QuestionOptionDate, error)
	predicates    []predicate.QuestionOptionDate
}

var _ ent.Mutation = (*QuestionOptionDateMutation)(nil)

// questionoptiondateOption allows management of the mutation configuration using functional options.
type questionoptiondateOption func(*QuestionOptionDateMutation)

// newQuestionOptionDateMutation creates new mutation for the QuestionOptionDate entity.
func newQuestionOptionDateMutation(c config, op Op, opts ...questionoptiondateOption) *QuestionOptionDateMutation {
	m := &QuestionOptionDateMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionOptionDate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionOptionDateID sets the ID field of the mutation.
func withQuestionOptionDateID(id uuid.UUID) questionoptiondateOption {
	return func(m *QuestionOptionDateMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionOptionDate
		)
		m.oldValue = func(ctx context.Context) (*QuestionOptionDate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionOptionDate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionOptionDate sets the old QuestionOptionDate of the mutation.
func withQuestionOptionDate(node *QuestionOptionDate) questionoptiondateOption {
	return func(m *QuestionOptionDateMutation) {
		m.oldValue = func(context.Context) (*QuestionOptionDate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionOptionDateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionOptionDateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestionOptionDate entities.
func (m *QuestionOptionDateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionOptionDateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionOptionDateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionOptionDate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionOptionDateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionOptionDateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionOptionDate entity.
// If the QuestionOptionDate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionDateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionOptionDateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOptionID sets the "option_id" field.
func (m *QuestionOptionDateMutation) SetOptionID(u uuid.UUID) {
	m.option = &u
}

// OptionID returns the value of the "option_id" field in the mutation.
func (m *QuestionOptionDateMutation) OptionID() (r uuid.UUID, exists bool) {
	v := m.option
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionID returns the old "option_id" field's value of the QuestionOptionDate entity.
// If the QuestionOptionDate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionDateMutation) OldOptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionID: %w", err)
	}
	return oldValue.OptionID, nil
}

// ResetOptionID resets all changes to the "option_id" field.
func (m *QuestionOptionDateMutation) ResetOptionID() {
	m.option = nil
}

// SetLowerBand sets the "lower_band" field.
func (m *QuestionOptionDateMutation) SetLowerBand(f float64) {
	m.lower_band = &f
	m.addlower_band = nil
}

// LowerBand returns the value of the "lower_band" field in the mutation.
func (m *QuestionOptionDateMutation) LowerBand() (r float64, exists bool) {
	v := m.lower_band
	if v == nil {
		return
	}
	return *v, true
}

// OldLowerBand returns the old "lower_band" field's value of the QuestionOptionDate entity.
// If the QuestionOptionDate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionDateMutation) OldLowerBand(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowerBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowerBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowerBand: %w", err)
	}
	return oldValue.LowerBand, nil
}

// AddLowerBand adds f to the "lower_band" field.
func (m *QuestionOptionDateMutation) AddLowerBand(f float64) {
	if m.addlower_band != nil {
		*m.addlower_band += f
	} else {
		m.addlower_band = &f
	}
}

// AddedLowerBand returns the value that was added to the "lower_band" field in this mutation.
func (m *QuestionOptionDateMutation) AddedLowerBand() (r float64, exists bool) {
	v := m.addlower_band
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowerBand resets all changes to the "lower_band" field.
func (m *QuestionOptionDateMutation) ResetLowerBand() {
	m.lower_band = nil
	m.addlower_band = nil
}

// SetUpperBand sets the "upper_band" field.
func (m *QuestionOptionDateMutation) SetUpperBand(f float64) {
	m.upper_band = &f
	m.addupper_band = nil
}

// UpperBand returns the value of the "upper_band" field in the mutation.
func (m *QuestionOptionDateMutation) UpperBand() (r float64, exists bool) {
	v := m.upper_band
	if v == nil {
		return
	}
	return *v, true
}

// OldUpperBand returns the old "upper_band" field's value of the QuestionOptionDate entity.
// If the QuestionOptionDate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionDateMutation) OldUpperBand(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpperBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpperBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpperBand: %w", err)
	}
	return oldValue.UpperBand, nil
}

// AddUpperBand adds f to the "upper_band" field.
func (m *QuestionOptionDateMutation) AddUpperBand(f float64) {
	if m.addupper_band != nil {
		*m.addupper_band += f
	} else {
		m.addupper_band = &f
	}
}

// AddedUpperBand returns the value that was added to the "upper_band" field in this mutation.
func (m *QuestionOptionDateMutation) AddedUpperBand() (r float64, exists bool) {
	v := m.addupper_band
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpperBand resets all changes to the "upper_band" field.
func (m *QuestionOptionDateMutation) ResetUpperBand() {
	m.upper_band = nil
	m.addupper_band = nil
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (m *QuestionOptionDateMutation) ClearOption() {
	m.clearedoption = true
	m.clearedFields[questionoptiondate.FieldOptionID] = struct{}{}
}

// OptionCleared reports if the "option" edge to the QuestionOption entity was cleared.
func (m *QuestionOptionDateMutation) OptionCleared() bool {
	return m.clearedoption
}

// OptionIDs returns the "option" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OptionID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionDateMutation) OptionIDs() (ids []uuid.UUID) {
	if id := m.option; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOption resets all changes to the "option" edge.
func (m *QuestionOptionDateMutation) ResetOption() {
	m.option = nil
	m.clearedoption = false
}

// Where appends a list predicates to the QuestionOptionDateMutation builder.
func (m *QuestionOptionDateMutation) Where(ps ...predicate.QuestionOptionDate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionOptionDateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionOptionDateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionOptionDate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionOptionDateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionOptionDateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionOptionDate).
func (m *QuestionOptionDateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionOptionDateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, questionoptiondate.FieldCreatedAt)
	}
	if m.option != nil {
		fields = append(fields, questionoptiondate.FieldOptionID)
	}
	if m.lower_band != nil {
		fields = append(fields, questionoptiondate.FieldLowerBand)
	}
	if m.upper_band != nil {
		fields = append(fields, questionoptiondate.FieldUpperBand)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionOptionDateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionoptiondate.FieldCreatedAt:
		return m.CreatedAt()
	case questionoptiondate.FieldOptionID:
		return m.OptionID()
	case questionoptiondate.FieldLowerBand:
		return m.LowerBand()
	case questionoptiondate.FieldUpperBand:
		return m.UpperBand()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionOptionDateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionoptiondate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionoptiondate.FieldOptionID:
		return m.OldOptionID(ctx)
	case questionoptiondate.FieldLowerBand:
		return m.OldLowerBand(ctx)
	case questionoptiondate.FieldUpperBand:
		return m.OldUpperBand(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionOptionDate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionDateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionoptiondate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionoptiondate.FieldOptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionID(v)
		return nil
	case questionoptiondate.FieldLowerBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowerBand(v)
		return nil
	case questionoptiondate.FieldUpperBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpperBand(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionDate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionOptionDateMutation) AddedFields() []string {
	var fields []string
	if m.addlower_band != nil {
		fields = append(fields, questionoptiondate.FieldLowerBand)
	}
	if m.addupper_band != nil {
		fields = append(fields, questionoptiondate.FieldUpperBand)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionOptionDateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionoptiondate.FieldLowerBand:
		return m.AddedLowerBand()
	case questionoptiondate.FieldUpperBand:
		return m.AddedUpperBand()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionDateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionoptiondate.FieldLowerBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowerBand(v)
		return nil
	case questionoptiondate.FieldUpperBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpperBand(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionDate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionOptionDateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionOptionDateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionOptionDateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuestionOptionDate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionOptionDateMutation) ResetField(name string) error {
	switch name {
	case questionoptiondate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionoptiondate.FieldOptionID:
		m.ResetOptionID()
		return nil
	case questionoptiondate.FieldLowerBand:
		m.ResetLowerBand()
		return nil
	case questionoptiondate.FieldUpperBand:
		m.ResetUpperBand()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionDate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionOptionDateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.option != nil {
		edges = append(edges, questionoptiondate.EdgeOption)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionOptionDateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionoptiondate.EdgeOption:
		if id := m.option; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionOptionDateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionOptionDateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionOptionDateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedoption {
		edges = append(edges, questionoptiondate.EdgeOption)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionOptionDateMutation) EdgeCleared(name string) bool {
	switch name {
	case questionoptiondate.EdgeOption:
		return m.clearedoption
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionOptionDateMutation) ClearEdge(name string) error {
	switch name {
	case questionoptiondate.EdgeOption:
		m.ClearOption()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionDate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionOptionDateMutation) ResetEdge(name string) error {
	switch name {
	case questionoptiondate.EdgeOption:
		m.ResetOption()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionDate edge %s", name)
}

// QuestionOptionEquationMutation represents an operation that mutates the QuestionOptionEquation nodes in the graph.
type QuestionOptionEquationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	lower_band    *float64
	addlower_band *float64
	upper_band    *float64
	addupper_band *float64
	clearedFields map[string]struct{}
	option        *uuid.UUID
	clearedoption bool
	done          bool
	oldValue      func(context.Context) (*QuestionOptionEquation, error)
	predicates    []predicate.QuestionOptionEquation
}

var _ ent.Mutation = (*QuestionOptionEquationMutation)(nil)

// questionoptionequationOption allows management of the mutation configuration using functional options.
type questionoptionequationOption func(*QuestionOptionEquationMutation)

// newQuestionOptionEquationMutation creates new mutation for the QuestionOptionEquation entity.
func newQuestionOptionEquationMutation(c config, op Op, opts ...questionoptionequationOption) *QuestionOptionEquationMutation {
	m := &QuestionOptionEquationMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionOptionEquation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionOptionEquationID sets the ID field of the mutation.
func withQuestionOptionEquationID(id uuid.UUID) questionoptionequationOption {
	return func(m *QuestionOptionEquationMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionOptionEquation
		)
		m.oldValue = func(ctx context.Context) (*QuestionOptionEquation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionOptionEquation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionOptionEquation sets the old QuestionOptionEquation of the mutation.
func withQuestionOptionEquation(node *QuestionOptionEquation) questionoptionequationOption {
	return func(m *QuestionOptionEquationMutation) {
		m.oldValue = func(context.Context) (*QuestionOptionEquation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionOptionEquationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionOptionEquationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestionOptionEquation entities.
func (m *QuestionOptionEquationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionOptionEquationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionOptionEquationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionOptionEquation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionOptionEquationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionOptionEquationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionOptionEquation entity.
// If the QuestionOptionEquation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionEquationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionOptionEquationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOptionID sets the "option_id" field.
func (m *QuestionOptionEquationMutation) SetOptionID(u uuid.UUID) {
	m.option = &u
}

// OptionID returns the value of the "option_id" field in the mutation.
func (m *QuestionOptionEquationMutation) OptionID() (r uuid.UUID, exists bool) {
	v := m.option
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionID returns the old "option_id" field's value of the QuestionOptionEquation entity.
// If the QuestionOptionEquation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionEquationMutation) OldOptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionID: %w", err)
	}
	return oldValue.OptionID, nil
}

// ResetOptionID resets all changes to the "option_id" field.
func (m *QuestionOptionEquationMutation) ResetOptionID() {
	m.option = nil
}

// SetLowerBand sets the "lower_band" field.
func (m *QuestionOptionEquationMutation) SetLowerBand(f float64) {
	m.lower_band = &f
	m.addlower_band = nil
}

// LowerBand returns the value of the "lower_band" field in the mutation.
func (m *QuestionOptionEquationMutation) LowerBand() (r float64, exists bool) {
	v := m.lower_band
	if v == nil {
		return
	}
	return *v, true
}

// OldLowerBand returns the old "lower_band" field's value of the QuestionOptionEquation entity.
// If the QuestionOptionEquation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionEquationMutation) OldLowerBand(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowerBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowerBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowerBand: %w", err)
	}
	return oldValue.LowerBand, nil
}

// AddLowerBand adds f to the "lower_band" field.
func (m *QuestionOptionEquationMutation) AddLowerBand(f float64) {
	if m.addlower_band != nil {
		*m.addlower_band += f
	} else {
		m.addlower_band = &f
	}
}

// AddedLowerBand returns the value that was added to the "lower_band" field in this mutation.
func (m *QuestionOptionEquationMutation) AddedLowerBand() (r float64, exists bool) {
	v := m.addlower_band
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowerBand resets all changes to the "lower_band" field.
func (m *QuestionOptionEquationMutation) ResetLowerBand() {
	m.lower_band = nil
	m.addlower_band = nil
}

// SetUpperBand sets the "upper_band" field.
func (m *QuestionOptionEquationMutation) SetUpperBand(f float64) {
	m.upper_band = &f
	m.addupper_band = nil
}

// UpperBand returns the value of the "upper_band" field in the mutation.
func (m *QuestionOptionEquationMutation) UpperBand() (r float64, exists bool) {
	v := m.upper_band
	if v == nil {
		return
	}
	return *v, true
}

// OldUpperBand returns the old "upper_band" field's value of the QuestionOptionEquation entity.
// If the QuestionOptionEquation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionEquationMutation) OldUpperBand(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpperBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpperBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpperBand: %w", err)
	}
	return oldValue.UpperBand, nil
}

// AddUpperBand adds f to the "upper_band" field.
func (m *QuestionOptionEquationMutation) AddUpperBand(f float64) {
	if m.addupper_band != nil {
		*m.addupper_band += f
	} else {
		m.addupper_band = &f
	}
}

// AddedUpperBand returns the value that was added to the "upper_band" field in this mutation.
func (m *QuestionOptionEquationMutation) AddedUpperBand() (r float64, exists bool) {
	v := m.addupper_band
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpperBand resets all changes to the "upper_band" field.
func (m *QuestionOptionEquationMutation) ResetUpperBand() {
	m.upper_band = nil
	m.addupper_band = nil
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (m *QuestionOptionEquationMutation) ClearOption() {
	m.clearedoption = true
	m.clearedFields[questionoptionequation.FieldOptionID] = struct{}{}
}

// OptionCleared reports if the "option" edge to the QuestionOption entity was cleared.
func (m *QuestionOptionEquationMutation) OptionCleared() bool {
	return m.clearedoption
}

// OptionIDs returns the "option" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OptionID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionEquationMutation) OptionIDs() (ids []uuid.UUID) {
	if id := m.option; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOption resets all changes to the "option" edge.
func (m *QuestionOptionEquationMutation) ResetOption() {
	m.option = nil
	m.clearedoption = false
}

// Where appends a list predicates to the QuestionOptionEquationMutation builder.
func (m *QuestionOptionEquationMutation) Where(ps ...predicate.QuestionOptionEquation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionOptionEquationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionOptionEquationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionOptionEquation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionOptionEquationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionOptionEquationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionOptionEquation).
func (m *QuestionOptionEquationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionOptionEquationMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, questionoptionequation.FieldCreatedAt)
	}
	if m.option != nil {
		fields = append(fields, questionoptionequation.FieldOptionID)
	}
	if m.lower_band != nil {
		fields = append(fields, questionoptionequation.FieldLowerBand)
	}
	if m.upper_band != nil {
		fields = append(fields, questionoptionequation.FieldUpperBand)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionOptionEquationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionoptionequation.FieldCreatedAt:
		return m.CreatedAt()
	case questionoptionequation.FieldOptionID:
		return m.OptionID()
	case questionoptionequation.FieldLowerBand:
		return m.LowerBand()
	case questionoptionequation.FieldUpperBand:
		return m.UpperBand()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionOptionEquationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionoptionequation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionoptionequation.FieldOptionID:
		return m.OldOptionID(ctx)
	case questionoptionequation.FieldLowerBand:
		return m.OldLowerBand(ctx)
	case questionoptionequation.FieldUpperBand:
		return m.OldUpperBand(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionOptionEquation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionEquationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionoptionequation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionoptionequation.FieldOptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionID(v)
		return nil
	case questionoptionequation.FieldLowerBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowerBand(v)
		return nil
	case questionoptionequation.FieldUpperBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpperBand(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionEquation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionOptionEquationMutation) AddedFields() []string {
	var fields []string
	if m.addlower_band != nil {
		fields = append(fields, questionoptionequation.FieldLowerBand)
	}
	if m.addupper_band != nil {
		fields = append(fields, questionoptionequation.FieldUpperBand)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionOptionEquationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionoptionequation.FieldLowerBand:
		return m.AddedLowerBand()
	case questionoptionequation.FieldUpperBand:
		return m.AddedUpperBand()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionEquationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionoptionequation.FieldLowerBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowerBand(v)
		return nil
	case questionoptionequation.FieldUpperBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpperBand(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionEquation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionOptionEquationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionOptionEquationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionOptionEquationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuestionOptionEquation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionOptionEquationMutation) ResetField(name string) error {
	switch name {
	case questionoptionequation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionoptionequation.FieldOptionID:
		m.ResetOptionID()
		return nil
	case questionoptionequation.FieldLowerBand:
		m.ResetLowerBand()
		return nil
	case questionoptionequation.FieldUpperBand:
		m.ResetUpperBand()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionEquation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionOptionEquationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.option != nil {
		edges = append(edges, questionoptionequation.EdgeOption)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionOptionEquationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionoptionequation.EdgeOption:
		if id := m.option; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionOptionEquationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionOptionEquationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionOptionEquationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedoption {
		edges = append(edges, questionoptionequation.EdgeOption)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionOptionEquationMutation) EdgeCleared(name string) bool {
	switch name {
	case questionoptionequation.EdgeOption:
		return m.clearedoption
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionOptionEquationMutation) ClearEdge(name string) error {
	switch name {
	case questionoptionequation.EdgeOption:
		m.ClearOption()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionEquation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionOptionEquationMutation) ResetEdge(name string) error {
	switch name {
	case questionoptionequation.EdgeOption:
		m.ResetOption()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionEquation edge %s", name)
}

// QuestionOptionNumberMutation represents an operation that mutates the QuestionOptionNumber nodes in the graph.
type QuestionOptionNumberMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	lower_band    *float64
	addlower_band *float64
	upper_band    *float64
	addupper_band *float64
	clearedFields map[string]struct{}
	option        *uuid.UUID
	clearedoption bool
	done          bool
	oldValue      func(context.Context) (*QuestionOptionNumber, error)
	predicates    []predicate.QuestionOptionNumber
}

var _ ent.Mutation = (*QuestionOptionNumberMutation)(nil)

// questionoptionnumberOption allows management of the mutation configuration using functional options.
type questionoptionnumberOption func(*QuestionOptionNumberMutation)

// newQuestionOptionNumberMutation creates new mutation for the QuestionOptionNumber entity.
func newQuestionOptionNumberMutation(c config, op Op, opts ...questionoptionnumberOption) *QuestionOptionNumberMutation {
	m := &QuestionOptionNumberMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionOptionNumber,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionOptionNumberID sets the ID field of the mutation.
func withQuestionOptionNumberID(id uuid.UUID) questionoptionnumberOption {
	return func(m *QuestionOptionNumberMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionOptionNumber
		)
		m.oldValue = func(ctx context.Context) (*QuestionOptionNumber, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionOptionNumber.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionOptionNumber sets the old QuestionOptionNumber of the mutation.
func withQuestionOptionNumber(node *QuestionOptionNumber) questionoptionnumberOption {
	return func(m *QuestionOptionNumberMutation) {
		m.oldValue = func(context.Context) (*QuestionOptionNumber, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionOptionNumberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionOptionNumberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestionOptionNumber entities.
func (m *QuestionOptionNumberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionOptionNumberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionOptionNumberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionOptionNumber.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionOptionNumberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionOptionNumberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionOptionNumber entity.
// If the QuestionOptionNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionNumberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionOptionNumberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOptionID sets the "option_id" field.
func (m *QuestionOptionNumberMutation) SetOptionID(u uuid.UUID) {
	m.option = &u
}

// OptionID returns the value of the "option_id" field in the mutation.
func (m *QuestionOptionNumberMutation) OptionID() (r uuid.UUID, exists bool) {
	v := m.option
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionID returns the old "option_id" field's value of the QuestionOptionNumber entity.
// If the QuestionOptionNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionNumberMutation) OldOptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionID: %w", err)
	}
	return oldValue.OptionID, nil
}

// ResetOptionID resets all changes to the "option_id" field.
func (m *QuestionOptionNumberMutation) ResetOptionID() {
	m.option = nil
}

// SetLowerBand sets the "lower_band" field.
func (m *QuestionOptionNumberMutation) SetLowerBand(f float64) {
	m.lower_band = &f
	m.addlower_band = nil
}

// LowerBand returns the value of the "lower_band" field in the mutation.
func (m *QuestionOptionNumberMutation) LowerBand() (r float64, exists bool) {
	v := m.lower_band
	if v == nil {
		return
	}
	return *v, true
}

// OldLowerBand returns the old "lower_band" field's value of the QuestionOptionNumber entity.
// If the QuestionOptionNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionNumberMutation) OldLowerBand(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowerBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowerBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowerBand: %w", err)
	}
	return oldValue.LowerBand, nil
}

// AddLowerBand adds f to the "lower_band" field.
func (m *QuestionOptionNumberMutation) AddLowerBand(f float64) {
	if m.addlower_band != nil {
		*m.addlower_band += f
	} else {
		m.addlower_band = &f
	}
}

// AddedLowerBand returns the value that was added to the "lower_band" field in this mutation.
func (m *QuestionOptionNumberMutation) AddedLowerBand() (r float64, exists bool) {
	v := m.addlower_band
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowerBand resets all changes to the "lower_band" field.
func (m *QuestionOptionNumberMutation) ResetLowerBand() {
	m.lower_band = nil
	m.addlower_band = nil
}

// SetUpperBand sets the "upper_band" field.
func (m *QuestionOptionNumberMutation) SetUpperBand(f float64) {
	m.upper_band = &f
	m.addupper_band = nil
}

// UpperBand returns the value of the "upper_band" field in the mutation.
func (m *QuestionOptionNumberMutation) UpperBand() (r float64, exists bool) {
	v := m.upper_band
	if v == nil {
		return
	}
	return *v, true
}

// OldUpperBand returns the old "upper_band" field's value of the QuestionOptionNumber entity.
// If the QuestionOptionNumber object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionNumberMutation) OldUpperBand(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpperBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpperBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpperBand: %w", err)
	}
	return oldValue.UpperBand, nil
}

// AddUpperBand adds f to the "upper_band" field.
func (m *QuestionOptionNumberMutation) AddUpperBand(f float64) {
	if m.addupper_band != nil {
		*m.addupper_band += f
	} else {
		m.addupper_band = &f
	}
}

// AddedUpperBand returns the value that was added to the "upper_band" field in this mutation.
func (m *QuestionOptionNumberMutation) AddedUpperBand() (r float64, exists bool) {
	v := m.addupper_band
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpperBand resets all changes to the "upper_band" field.
func (m *QuestionOptionNumberMutation) ResetUpperBand() {
	m.upper_band = nil
	m.addupper_band = nil
}

// ClearOption clears the "option" edge to the QuestionOption entity.
func (m *QuestionOptionNumberMutation) ClearOption() {
	m.clearedoption = true
	m.clearedFields[questionoptionnumber.FieldOptionID] = struct{}{}
}

// OptionCleared reports if the "option" edge to the QuestionOption entity was cleared.
func (m *QuestionOptionNumberMutation) OptionCleared() bool {
	return m.clearedoption
}

// OptionIDs returns the "option" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OptionID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionNumberMutation) OptionIDs() (ids []uuid.UUID) {
	if id := m.option; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOption resets all changes to the "option" edge.
func (m *QuestionOptionNumberMutation) ResetOption() {
	m.option = nil
	m.clearedoption = false
}

// Where appends a list predicates to the QuestionOptionNumberMutation builder.
func (m *QuestionOptionNumberMutation) Where(ps ...predicate.QuestionOptionNumber) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionOptionNumberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionOptionNumberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionOptionNumber, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionOptionNumberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionOptionNumberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionOptionNumber).
func (m *QuestionOptionNumberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionOptionNumberMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, questionoptionnumber.FieldCreatedAt)
	}
	if m.option != nil {
		fields = append(fields, questionoptionnumber.FieldOptionID)
	}
	if m.lower_band != nil {
		fields = append(fields, questionoptionnumber.FieldLowerBand)
	}
	if m.upper_band != nil {
		fields = append(fields, questionoptionnumber.FieldUpperBand)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionOptionNumberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionoptionnumber.FieldCreatedAt:
		return m.CreatedAt()
	case questionoptionnumber.FieldOptionID:
		return m.OptionID()
	case questionoptionnumber.FieldLowerBand:
		return m.LowerBand()
	case questionoptionnumber.FieldUpperBand:
		return m.UpperBand()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionOptionNumberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionoptionnumber.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionoptionnumber.FieldOptionID:
		return m.OldOptionID(ctx)
	case questionoptionnumber.FieldLowerBand:
		return m.OldLowerBand(ctx)
	case questionoptionnumber.FieldUpperBand:
		return m.OldUpperBand(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionOptionNumber field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionNumberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionoptionnumber.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionoptionnumber.FieldOptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionID(v)
		return nil
	case questionoptionnumber.FieldLowerBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowerBand(v)
		return nil
	case questionoptionnumber.FieldUpperBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpperBand(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionNumber field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionOptionNumberMutation) AddedFields() []string {
	var fields []string
	if m.addlower_band != nil {
		fields = append(fields, questionoptionnumber.FieldLowerBand)
	}
	if m.addupper_band != nil {
		fields = append(fields, questionoptionnumber.FieldUpperBand)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionOptionNumberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionoptionnumber.FieldLowerBand:
		return m.AddedLowerBand()
	case questionoptionnumber.FieldUpperBand:
		return m.AddedUpperBand()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionNumberMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionoptionnumber.FieldLowerBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowerBand(v)
		return nil
	case questionoptionnumber.FieldUpperBand:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpperBand(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionNumber numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionOptionNumberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionOptionNumberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionOptionNumberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuestionOptionNumber nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionOptionNumberMutation) ResetField(name string) error {
	switch name {
	case questionoptionnumber.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionoptionnumber.FieldOptionID:
		m.ResetOptionID()
		return nil
	case questionoptionnumber.FieldLowerBand:
		m.ResetLowerBand()
		return nil
	case questionoptionnumber.FieldUpperBand:
		m.ResetUpperBand()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionNumber field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionOptionNumberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.option != nil {
		edges = append(edges, questionoptionnumber.EdgeOption)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionOptionNumberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionoptionnumber.EdgeOption:
		if id := m.option; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionOptionNumberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionOptionNumberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionOptionNumberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedoption {
		edges = append(edges, questionoptionnumber.EdgeOption)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionOptionNumberMutation) EdgeCleared(name string) bool {
	switch name {
	case questionoptionnumber.EdgeOption:
		return m.clearedoption
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionOptionNumberMutation) ClearEdge(name string) error {
	switch name {
	case questionoptionnumber.EdgeOption:
		m.ClearOption()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionNumber unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionOptionNumberMutation) ResetEdge(name string) error {
	switch name {
	case questionoptionnumber.EdgeOption:
		m.ResetOption()
		return nil
	}
	return fmt.Errorf("unknown QuestionOptionNumber edge %s", name)
}

// QuestionShareMutation represents an operation that mutates the QuestionShare nodes in the graph.
type QuestionShareMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	deleted_at            *time.Time
	title                 *string
	prompt                *string
	question_type         *questionshare.QuestionType
	expert_level          *questionshare.ExpertLevel
	priority              *questionshare.Priority
	date_type             *questionshare.DateType
	is_starter            *bool
	is_equation           *bool
	equation              *string
	chart_visible         *bool
	chart_src_x           *float64
	addchart_src_x        *float64
	chart_src_y           *float64
	addchart_src_y        *float64
	chart_des_x           *float64
	addchart_des_x        *float64
	chart_des_y           *float64
	addchart_des_y        *float64
	chart_branch_count    *int
	addchart_branch_count *int
	clearedFields         map[string]struct{}
	doctor                *uuid.UUID
	cleareddoctor         bool
	clinic                *uuid.UUID
	clearedclinic         bool
	options               map[uuid.UUID]struct{}
	removedoptions        map[uuid.UUID]struct{}
	clearedoptions        bool
	organs                map[uuid.UUID]struct{}
	removedorgans         map[uuid.UUID]struct{}
	clearedorgans         bool
	chart_connect         *uuid.UUID
	clearedchart_connect  bool
	done                  bool
	oldValue              func(context.Context) (*QuestionShare, error)
	predicates            []predicate.QuestionShare
}

var _ ent.Mutation = (*QuestionShareMutation)(nil)

// questionshareOption allows management of the mutation configuration using functional options.
type questionshareOption func(*QuestionShareMutation)

// newQuestionShareMutation creates new mutation for the QuestionShare entity.
func newQuestionShareMutation(c config, op Op, opts ...questionshareOption) *QuestionShareMutation {
	m := &QuestionShareMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionShare,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionShareID sets the ID field of the mutation.
func withQuestionShareID(id uuid.UUID) questionshareOption {
	return func(m *QuestionShareMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionShare
		)
		m.oldValue = func(ctx context.Context) (*QuestionShare, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionShare.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionShare sets the old QuestionShare of the mutation.
func withQuestionShare(node *QuestionShare) questionshareOption {
	return func(m *QuestionShareMutation) {
		m.oldValue = func(context.Context) (*QuestionShare, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionShareMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionShareMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuestionShare entities.
func (m *QuestionShareMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionShareMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionShareMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionShare.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionShareMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionShareMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionShareMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionShareMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionShareMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionShareMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *QuestionShareMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *QuestionShareMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *QuestionShareMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[questionshare.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *QuestionShareMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[questionshare.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *QuestionShareMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, questionshare.FieldDeletedAt)
}

// SetDoctorID sets the "doctor_id" field.
func (m *QuestionShareMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *QuestionShareMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *QuestionShareMutation) ResetDoctorID() {
	m.doctor = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *QuestionShareMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *QuestionShareMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldClinicID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ClearClinicID clears the value of the "clinic_id" field.
func (m *QuestionShareMutation) ClearClinicID() {
	m.clinic = nil
	m.clearedFields[questionshare.FieldClinicID] = struct{}{}
}

// ClinicIDCleared returns if the "clinic_id" field was cleared in this mutation.
func (m *QuestionShareMutation) ClinicIDCleared() bool {
	_, ok := m.clearedFields[questionshare.FieldClinicID]
	return ok
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *QuestionShareMutation) ResetClinicID() {
	m.clinic = nil
	delete(m.clearedFields, questionshare.FieldClinicID)
}

// SetTitle sets the "title" field.
func (m *QuestionShareMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *QuestionShareMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *QuestionShareMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[questionshare.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *QuestionShareMutation) TitleCleared() bool {
	_, ok := m.clearedFields[questionshare.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *QuestionShareMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, questionshare.FieldTitle)
}

// SetPrompt sets the "prompt" field.
func (m *QuestionShareMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *QuestionShareMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *QuestionShareMutation) ResetPrompt() {
	m.prompt = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionShareMutation) SetQuestionType(qt questionshare.QuestionType) {
	m.question_type = &qt
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionShareMutation) QuestionType() (r questionshare.QuestionType, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldQuestionType(ctx context.Context) (v questionshare.QuestionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionShareMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetExpertLevel sets the "expert_level" field.
func (m *QuestionShareMutation) SetExpertLevel(ql questionshare.ExpertLevel) {
	m.expert_level = &ql
}

// ExpertLevel returns the value of the "expert_level" field in the mutation.
func (m *QuestionShareMutation) ExpertLevel() (r questionshare.ExpertLevel, exists bool) {
	v := m.expert_level
	if v == nil {
		return
	}
	return *v, true
}

// OldExpertLevel returns the old "expert_level" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldExpertLevel(ctx context.Context) (v questionshare.ExpertLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpertLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpertLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpertLevel: %w", err)
	}
	return oldValue.ExpertLevel, nil
}

// ResetExpertLevel resets all changes to the "expert_level" field.
func (m *QuestionShareMutation) ResetExpertLevel() {
	m.expert_level = nil
}

// SetPriority sets the "priority" field.
func (m *QuestionShareMutation) SetPriority(q questionshare.Priority) {
	m.priority = &q
}

// Priority returns the value of the "priority" field in the mutation.
func (m *QuestionShareMutation) Priority() (r questionshare.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldPriority(ctx context.Context) (v questionshare.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *QuestionShareMutation) ResetPriority() {
	m.priority = nil
}

// SetDateType sets the "date_type" field.
func (m *QuestionShareMutation) SetDateType(qt questionshare.DateType) {
	m.date_type = &qt
}

// DateType returns the value of the "date_type" field in the mutation.
func (m *QuestionShareMutation) DateType() (r questionshare.DateType, exists bool) {
	v := m.date_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDateType returns the old "date_type" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldDateType(ctx context.Context) (v questionshare.DateType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateType: %w", err)
	}
	return oldValue.DateType, nil
}

// ResetDateType resets all changes to the "date_type" field.
func (m *QuestionShareMutation) ResetDateType() {
	m.date_type = nil
}

// SetIsStarter sets the "is_starter" field.
func (m *QuestionShareMutation) SetIsStarter(b bool) {
	m.is_starter = &b
}

// IsStarter returns the value of the "is_starter" field in the mutation.
func (m *QuestionShareMutation) IsStarter() (r bool, exists bool) {
	v := m.is_starter
	if v == nil {
		return
	}
	return *v, true
}

// OldIsStarter returns the old "is_starter" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldIsStarter(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsStarter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsStarter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsStarter: %w", err)
	}
	return oldValue.IsStarter, nil
}

// ResetIsStarter resets all changes to the "is_starter" field.
func (m *QuestionShareMutation) ResetIsStarter() {
	m.is_starter = nil
}

// SetIsEquation sets the "is_equation" field.
func (m *QuestionShareMutation) SetIsEquation(b bool) {
	m.is_equation = &b
}

// IsEquation returns the value of the "is_equation" field in the mutation.
func (m *QuestionShareMutation) IsEquation() (r bool, exists bool) {
	v := m.is_equation
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEquation returns the old "is_equation" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldIsEquation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEquation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEquation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEquation: %w", err)
	}
	return oldValue.IsEquation, nil
}

// ResetIsEquation resets all changes to the "is_equation" field.
func (m *QuestionShareMutation) ResetIsEquation() {
	m.is_equation = nil
}

// SetEquation sets the "equation" field.
func (m *QuestionShareMutation) SetEquation(s string) {
	m.equation = &s
}

// Equation returns the value of the "equation" field in the mutation.
func (m *QuestionShareMutation) Equation() (r string, exists bool) {
	v := m.equation
	if v == nil {
		return
	}
	return *v, true
}

// OldEquation returns the old "equation" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldEquation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEquation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEquation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEquation: %w", err)
	}
	return oldValue.Equation, nil
}

// ClearEquation clears the value of the "equation" field.
func (m *QuestionShareMutation) ClearEquation() {
	m.equation = nil
	m.clearedFields[questionshare.FieldEquation] = struct{}{}
}

// EquationCleared returns if the "equation" field was cleared in this mutation.
func (m *QuestionShareMutation) EquationCleared() bool {
	_, ok := m.clearedFields[questionshare.FieldEquation]
	return ok
}

// ResetEquation resets all changes to the "equation" field.
func (m *QuestionShareMutation) ResetEquation() {
	m.equation = nil
	delete(m.clearedFields, questionshare.FieldEquation)
}

// SetChartVisible sets the "chart_visible" field.
func (m *QuestionShareMutation) SetChartVisible(b bool) {
	m.chart_visible = &b
}

// ChartVisible returns the value of the "chart_visible" field in the mutation.
func (m *QuestionShareMutation) ChartVisible() (r bool, exists bool) {
	v := m.chart_visible
	if v == nil {
		return
	}
	return *v, true
}

// OldChartVisible returns the old "chart_visible" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldChartVisible(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartVisible is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartVisible requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartVisible: %w", err)
	}
	return oldValue.ChartVisible, nil
}

// ResetChartVisible resets all changes to the "chart_visible" field.
func (m *QuestionShareMutation) ResetChartVisible() {
	m.chart_visible = nil
}

// SetChartSrcX sets the "chart_src_x" field.
func (m *QuestionShareMutation) SetChartSrcX(f float64) {
	m.chart_src_x = &f
	m.addchart_src_x = nil
}

// ChartSrcX returns the value of the "chart_src_x" field in the mutation.
func (m *QuestionShareMutation) ChartSrcX() (r float64, exists bool) {
	v := m.chart_src_x
	if v == nil {
		return
	}
	return *v, true
}

// OldChartSrcX returns the old "chart_src_x" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldChartSrcX(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartSrcX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartSrcX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartSrcX: %w", err)
	}
	return oldValue.ChartSrcX, nil
}

// AddChartSrcX adds f to the "chart_src_x" field.
func (m *QuestionShareMutation) AddChartSrcX(f float64) {
	if m.addchart_src_x != nil {
		*m.addchart_src_x += f
	} else {
		m.addchart_src_x = &f
	}
}

// AddedChartSrcX returns the value that was added to the "chart_src_x" field in this mutation.
func (m *QuestionShareMutation) AddedChartSrcX() (r float64, exists bool) {
	v := m.addchart_src_x
	if v == nil {
		return
	}
	return *v, true
}

// ResetChartSrcX resets all changes to the "chart_src_x" field.
func (m *QuestionShareMutation) ResetChartSrcX() {
	m.chart_src_x = nil
	m.addchart_src_x = nil
}

// SetChartSrcY sets the "chart_src_y" field.
func (m *QuestionShareMutation) SetChartSrcY(f float64) {
	m.chart_src_y = &f
	m.addchart_src_y = nil
}

// ChartSrcY returns the value of the "chart_src_y" field in the mutation.
func (m *QuestionShareMutation) ChartSrcY() (r float64, exists bool) {
	v := m.chart_src_y
	if v == nil {
		return
	}
	return *v, true
}

// OldChartSrcY returns the old "chart_src_y" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldChartSrcY(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartSrcY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartSrcY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartSrcY: %w", err)
	}
	return oldValue.ChartSrcY, nil
}

// AddChartSrcY adds f to the "chart_src_y" field.
func (m *QuestionShareMutation) AddChartSrcY(f float64) {
	if m.addchart_src_y != nil {
		*m.addchart_src_y += f
	} else {
		m.addchart_src_y = &f
	}
}

// AddedChartSrcY returns the value that was added to the "chart_src_y" field in this mutation.
func (m *QuestionShareMutation) AddedChartSrcY() (r float64, exists bool) {
	v := m.addchart_src_y
	if v == nil {
		return
	}
	return *v, true
}

// ResetChartSrcY resets all changes to the "chart_src_y" field.
func (m *QuestionShareMutation) ResetChartSrcY() {
	m.chart_src_y = nil
	m.addchart_src_y = nil
}

// SetChartDesX sets the "chart_des_x" field.
func (m *QuestionShareMutation) SetChartDesX(f float64) {
	m.chart_des_x = &f
	m.addchart_des_x = nil
}

// ChartDesX returns the value of the "chart_des_x" field in the mutation.
func (m *QuestionShareMutation) ChartDesX() (r float64, exists bool) {
	v := m.chart_des_x
	if v == nil {
		return
	}
	return *v, true
}

// OldChartDesX returns the old "chart_des_x" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldChartDesX(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartDesX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartDesX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartDesX: %w", err)
	}
	return oldValue.ChartDesX, nil
}

// AddChartDesX adds f to the "chart_des_x" field.
func (m *QuestionShareMutation) AddChartDesX(f float64) {
	if m.addchart_des_x != nil {
		*m.addchart_des_x += f
	} else {
		m.addchart_des_x = &f
	}
}

// AddedChartDesX returns the value that was added to the "chart_des_x" field in this mutation.
func (m *QuestionShareMutation) AddedChartDesX() (r float64, exists bool) {
	v := m.addchart_des_x
	if v == nil {
		return
	}
	return *v, true
}

// ResetChartDesX resets all changes to the "chart_des_x" field.
func (m *QuestionShareMutation) ResetChartDesX() {
	m.chart_des_x = nil
	m.addchart_des_x = nil
}

// SetChartDesY sets the "chart_des_y" field.
func (m *QuestionShareMutation) SetChartDesY(f float64) {
	m.chart_des_y = &f
	m.addchart_des_y = nil
}

// ChartDesY returns the value of the "chart_des_y" field in the mutation.
func (m *QuestionShareMutation) ChartDesY() (r float64, exists bool) {
	v := m.chart_des_y
	if v == nil {
		return
	}
	return *v, true
}

// OldChartDesY returns the old "chart_des_y" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldChartDesY(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartDesY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartDesY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartDesY: %w", err)
	}
	return oldValue.ChartDesY, nil
}

// AddChartDesY adds f to the "chart_des_y" field.
func (m *QuestionShareMutation) AddChartDesY(f float64) {
	if m.addchart_des_y != nil {
		*m.addchart_des_y += f
	} else {
		m.addchart_des_y = &f
	}
}

// AddedChartDesY returns the value that was added to the "chart_des_y" field in this mutation.
func (m *QuestionShareMutation) AddedChartDesY() (r float64, exists bool) {
	v := m.addchart_des_y
	if v == nil {
		return
	}
	return *v, true
}

// ResetChartDesY resets all changes to the "chart_des_y" field.
func (m *QuestionShareMutation) ResetChartDesY() {
	m.chart_des_y = nil
	m.addchart_des_y = nil
}

// SetChartBranchCount sets the "chart_branch_count" field.
func (m *QuestionShareMutation) SetChartBranchCount(i int) {
	m.chart_branch_count = &i
	m.addchart_branch_count = nil
}

// ChartBranchCount returns the value of the "chart_branch_count" field in the mutation.
func (m *QuestionShareMutation) ChartBranchCount() (r int, exists bool) {
	v := m.chart_branch_count
	if v == nil {
		return
	}
	return *v, true
}

// OldChartBranchCount returns the old "chart_branch_count" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldChartBranchCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartBranchCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartBranchCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartBranchCount: %w", err)
	}
	return oldValue.ChartBranchCount, nil
}

// AddChartBranchCount adds i to the "chart_branch_count" field.
func (m *QuestionShareMutation) AddChartBranchCount(i int) {
	if m.addchart_branch_count != nil {
		*m.addchart_branch_count += i
	} else {
		m.addchart_branch_count = &i
	}
}

// AddedChartBranchCount returns the value that was added to the "chart_branch_count" field in this mutation.
func (m *QuestionShareMutation) AddedChartBranchCount() (r int, exists bool) {
	v := m.addchart_branch_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetChartBranchCount resets all changes to the "chart_branch_count" field.
func (m *QuestionShareMutation) ResetChartBranchCount() {
	m.chart_branch_count = nil
	m.addchart_branch_count = nil
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (m *QuestionShareMutation) SetChartConnectQuestionID(u uuid.UUID) {
	m.chart_connect = &u
}

// ChartConnectQuestionID returns the value of the "chart_connect_question_id" field in the mutation.
func (m *QuestionShareMutation) ChartConnectQuestionID() (r uuid.UUID, exists bool) {
	v := m.chart_connect
	if v == nil {
		return
	}
	return *v, true
}

// OldChartConnectQuestionID returns the old "chart_connect_question_id" field's value of the QuestionShare entity.
// If the QuestionShare object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionShareMutation) OldChartConnectQuestionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChartConnectQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChartConnectQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChartConnectQuestionID: %w", err)
	}
	return oldValue.ChartConnectQuestionID, nil
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (m *QuestionShareMutation) ClearChartConnectQuestionID() {
	m.chart_connect = nil
	m.clearedFields[questionshare.FieldChartConnectQuestionID] = struct{}{}
}

// ChartConnectQuestionIDCleared returns if the "chart_connect_question_id" field was cleared in this mutation.
func (m *QuestionShareMutation) ChartConnectQuestionIDCleared() bool {
	_, ok := m.clearedFields[questionshare.FieldChartConnectQuestionID]
	return ok
}

// ResetChartConnectQuestionID resets all changes to the "chart_connect_question_id" field.
func (m *QuestionShareMutation) ResetChartConnectQuestionID() {
	m.chart_connect = nil
	delete(m.clearedFields, questionshare.FieldChartConnectQuestionID)
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *QuestionShareMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[questionshare.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *QuestionShareMutation) DoctorCleared() bool {
	return m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *QuestionShareMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *QuestionShareMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *QuestionShareMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[questionshare.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *QuestionShareMutation) ClinicCleared() bool {
	return m.ClinicIDCleared() || m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *QuestionShareMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *QuestionShareMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// AddOptionIDs adds the "options" edge to the QuestionOption entity by ids.
func (m *QuestionShareMutation) AddOptionIDs(ids ...uuid.UUID) {
	if m.options == nil {
		m.options = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.options[ids[i]] = struct{}{}
	}
}

// ClearOptions clears the "options" edge to the QuestionOption entity.
func (m *QuestionShareMutation) ClearOptions() {
	m.clearedoptions = true
}

// OptionsCleared reports if the "options" edge to the QuestionOption entity was cleared.
func (m *QuestionShareMutation) OptionsCleared() bool {
	return m.clearedoptions
}

// RemoveOptionIDs removes the "options" edge to the QuestionOption entity by IDs.
func (m *QuestionShareMutation) RemoveOptionIDs(ids ...uuid.UUID) {
	if m.removedoptions == nil {
		m.removedoptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.options, ids[i])
		m.removedoptions[ids[i]] = struct{}{}
	}
}

// RemovedOptions returns the removed IDs of the "options" edge to the QuestionOption entity.
func (m *QuestionShareMutation) RemovedOptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedoptions {
		ids = append(ids, id)
	}
	return
}

// OptionsIDs returns the "options" edge IDs in the mutation.
func (m *QuestionShareMutation) OptionsIDs() (ids []uuid.UUID) {
	for id := range m.options {
		ids = append(ids, id)
	}
	return
}

// ResetOptions resets all changes to the "options" edge.
func (m *QuestionShareMutation) ResetOptions() {
	m.options = nil
	m.clearedoptions = false
	m.removedoptions = nil
}

// AddOrganIDs adds the "organs" edge to the Organ entity by ids.
func (m *QuestionShareMutation) AddOrganIDs(ids ...uuid.UUID) {
	if m.organs == nil {
		m.organs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.organs[ids[i]] = struct{}{}
	}
}

// ClearOrgans clears the "organs" edge to the Organ entity.
func (m *QuestionShareMutation) ClearOrgans() {
	m.clearedorgans = true
}

// OrgansCleared reports if the "organs" edge to the Organ entity was cleared.
func (m *QuestionShareMutation) OrgansCleared() bool {
	return m.clearedorgans
}

// RemoveOrganIDs removes the "organs" edge to the Organ entity by IDs.
func (m *QuestionShareMutation) RemoveOrganIDs(ids ...uuid.UUID) {
	if m.removedorgans == nil {
		m.removedorgans = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.organs, ids[i])
		m.removedorgans[ids[i]] = struct{}{}
	}
}

// RemovedOrgans returns the removed IDs of the "organs" edge to the Organ entity.
func (m *QuestionShareMutation) RemovedOrgansIDs() (ids []uuid.UUID) {
	for id := range m.removedorgans {
		ids = append(ids, id)
	}
	return
}

// OrgansIDs returns the "organs" edge IDs in the mutation.
func (m *QuestionShareMutation) OrgansIDs() (ids []uuid.UUID) {
	for id := range m.organs {
		ids = append(ids, id)
	}
	return
}

// ResetOrgans resets all changes to the "organs" edge.
func (m *QuestionShareMutation) ResetOrgans() {
	m.organs = nil
	m.clearedorgans = false
	m.removedorgans = nil
}

// SetChartConnectID sets the "chart_connect" edge to the QuestionShare entity by id.
func (m *QuestionShareMutation) SetChartConnectID(id uuid.UUID) {
	m.chart_connect = &id
}

// ClearChartConnect clears the "chart_connect" edge to the QuestionShare entity.
func (m *QuestionShareMutation) ClearChartConnect() {
	m.clearedchart_connect = true
	m.clearedFields[questionshare.FieldChartConnectQuestionID] = struct{}{}
}

// ChartConnectCleared reports if the "chart_connect" edge to the QuestionShare entity was cleared.
func (m *QuestionShareMutation) ChartConnectCleared() bool {
	return m.ChartConnectQuestionIDCleared() || m.clearedchart_connect
}

// ChartConnectID returns the "chart_connect" edge ID in the mutation.
func (m *QuestionShareMutation) ChartConnectID() (id uuid.UUID, exists bool) {
	if m.chart_connect != nil {
		return *m.chart_connect, true
	}
	return
}

// ChartConnectIDs returns the "chart_connect" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChartConnectID instead. It exists only for internal usage by the builders.
func (m *QuestionShareMutation) ChartConnectIDs() (ids []uuid.UUID) {
	if id := m.chart_connect; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChartConnect resets all changes to the "chart_connect" edge.
func (m *QuestionShareMutation) ResetChartConnect() {
	m.chart_connect = nil
	m.clearedchart_connect = false
}

// Where appends a list predicates to the QuestionShareMutation builder.
func (m *QuestionShareMutation) Where(ps ...predicate.QuestionShare) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionShareMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionShareMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionShare, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionShareMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionShareMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionShare).
func (m *QuestionShareMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionShareMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, questionshare.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, questionshare.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, questionshare.FieldDeletedAt)
	}
	if m.doctor != nil {
		fields = append(fields, questionshare.FieldDoctorID)
	}
	if m.clinic != nil {
		fields = append(fields, questionshare.FieldClinicID)
	}
	if m.title != nil {
		fields = append(fields, questionshare.FieldTitle)
	}
	if m.prompt != nil {
		fields = append(fields, questionshare.FieldPrompt)
	}
	if m.question_type != nil {
		fields = append(fields, questionshare.FieldQuestionType)
	}
	if m.expert_level != nil {
		fields = append(fields, questionshare.FieldExpertLevel)
	}
	if m.priority != nil {
		fields = append(fields, questionshare.FieldPriority)
	}
	if m.date_type != nil {
		fields = append(fields, questionshare.FieldDateType)
	}
	if m.is_starter != nil {
		fields = append(fields, questionshare.FieldIsStarter)
	}
	if m.is_equation != nil {
		fields = append(fields, questionshare.FieldIsEquation)
	}
	if m.equation != nil {
		fields = append(fields, questionshare.FieldEquation)
	}
	if m.chart_visible != nil {
		fields = append(fields, questionshare.FieldChartVisible)
	}
	if m.chart_src_x != nil {
		fields = append(fields, questionshare.FieldChartSrcX)
	}
	if m.chart_src_y != nil {
		fields = append(fields, questionshare.FieldChartSrcY)
	}
	if m.chart_des_x != nil {
		fields = append(fields, questionshare.FieldChartDesX)
	}
	if m.chart_des_y != nil {
		fields = append(fields, questionshare.FieldChartDesY)
	}
	if m.chart_branch_count != nil {
		fields = append(fields, questionshare.FieldChartBranchCount)
	}
	if m.chart_connect != nil {
		fields = append(fields, questionshare.FieldChartConnectQuestionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionShareMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionshare.FieldCreatedAt:
		return m.CreatedAt()
	case questionshare.FieldUpdatedAt:
		return m.UpdatedAt()
	case questionshare.FieldDeletedAt:
		return m.DeletedAt()
	case questionshare.FieldDoctorID:
		return m.DoctorID()
	case questionshare.FieldClinicID:
		return m.ClinicID()
	case questionshare.FieldTitle:
		return m.Title()
	case questionshare.FieldPrompt:
		return m.Prompt()
	case questionshare.FieldQuestionType:
		return m.QuestionType()
	case questionshare.FieldExpertLevel:
		return m.ExpertLevel()
	case questionshare.FieldPriority:
		return m.Priority()
	case questionshare.FieldDateType:
		return m.DateType()
	case questionshare.FieldIsStarter:
		return m.IsStarter()
	case questionshare.FieldIsEquation:
		return m.IsEquation()
	case questionshare.FieldEquation:
		return m.Equation()
	case questionshare.FieldChartVisible:
		return m.ChartVisible()
	case questionshare.FieldChartSrcX:
		return m.ChartSrcX()
	case questionshare.FieldChartSrcY:
		return m.ChartSrcY()
	case questionshare.FieldChartDesX:
		return m.ChartDesX()
	case questionshare.FieldChartDesY:
		return m.ChartDesY()
	case questionshare.FieldChartBranchCount:
		return m.ChartBranchCount()
	case questionshare.FieldChartConnectQuestionID:
		return m.ChartConnectQuestionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionShareMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionshare.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case questionshare.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case questionshare.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case questionshare.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case questionshare.FieldClinicID:
		return m.OldClinicID(ctx)
	case questionshare.FieldTitle:
		return m.OldTitle(ctx)
	case questionshare.FieldPrompt:
		return m.OldPrompt(ctx)
	case questionshare.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case questionshare.FieldExpertLevel:
		return m.OldExpertLevel(ctx)
	case questionshare.FieldPriority:
		return m.OldPriority(ctx)
	case questionshare.FieldDateType:
		return m.OldDateType(ctx)
	case questionshare.FieldIsStarter:
		return m.OldIsStarter(ctx)
	case questionshare.FieldIsEquation:
		return m.OldIsEquation(ctx)
	case questionshare.FieldEquation:
		return m.OldEquation(ctx)
	case questionshare.FieldChartVisible:
		return m.OldChartVisible(ctx)
	case questionshare.FieldChartSrcX:
		return m.OldChartSrcX(ctx)
	case questionshare.FieldChartSrcY:
		return m.OldChartSrcY(ctx)
	case questionshare.FieldChartDesX:
		return m.OldChartDesX(ctx)
	case questionshare.FieldChartDesY:
		return m.OldChartDesY(ctx)
	case questionshare.FieldChartBranchCount:
		return m.OldChartBranchCount(ctx)
	case questionshare.FieldChartConnectQuestionID:
		return m.OldChartConnectQuestionID(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionShare field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionShareMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionshare.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case questionshare.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case questionshare.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case questionshare.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case questionshare.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case questionshare.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case questionshare.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case questionshare.FieldQuestionType:
		v, ok := value.(questionshare.QuestionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case questionshare.FieldExpertLevel:
		v, ok := value.(questionshare.ExpertLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpertLevel(v)
		return nil
	case questionshare.FieldPriority:
		v, ok := value.(questionshare.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case questionshare.FieldDateType:
		v, ok := value.(questionshare.DateType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateType(v)
		return nil
	case questionshare.FieldIsStarter:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsStarter(v)
		return nil
	case questionshare.FieldIsEquation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEquation(v)
		return nil
	case questionshare.FieldEquation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEquation(v)
		return nil
	case questionshare.FieldChartVisible:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartVisible(v)
		return nil
	case questionshare.FieldChartSrcX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartSrcX(v)
		return nil
	case questionshare.FieldChartSrcY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartSrcY(v)
		return nil
	case questionshare.FieldChartDesX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartDesX(v)
		return nil
	case questionshare.FieldChartDesY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartDesY(v)
		return nil
	case questionshare.FieldChartBranchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartBranchCount(v)
		return nil
	case questionshare.FieldChartConnectQuestionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChartConnectQuestionID(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionShare field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionShareMutation) AddedFields() []string {
	var fields []string
	if m.addchart_src_x != nil {
		fields = append(fields, questionshare.FieldChartSrcX)
	}
	if m.addchart_src_y != nil {
		fields = append(fields, questionshare.FieldChartSrcY)
	}
	if m.addchart_des_x != nil {
		fields = append(fields, questionshare.FieldChartDesX)
	}
	if m.addchart_des_y != nil {
		fields = append(fields, questionshare.FieldChartDesY)
	}
	if m.addchart_branch_count != nil {
		fields = append(fields, questionshare.FieldChartBranchCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionShareMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionshare.FieldChartSrcX:
		return m.AddedChartSrcX()
	case questionshare.FieldChartSrcY:
		return m.AddedChartSrcY()
	case questionshare.FieldChartDesX:
		return m.AddedChartDesX()
	case questionshare.FieldChartDesY:
		return m.AddedChartDesY()
	case questionshare.FieldChartBranchCount:
		return m.AddedChartBranchCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionShareMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionshare.FieldChartSrcX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChartSrcX(v)
		return nil
	case questionshare.FieldChartSrcY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChartSrcY(v)
		return nil
	case questionshare.FieldChartDesX:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChartDesX(v)
		return nil
	case questionshare.FieldChartDesY:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChartDesY(v)
		return nil
	case questionshare.FieldChartBranchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChartBranchCount(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionShare numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionShareMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(questionshare.FieldDeletedAt) {
		fields = append(fields, questionshare.FieldDeletedAt)
	}
	if m.FieldCleared(questionshare.FieldClinicID) {
		fields = append(fields, questionshare.FieldClinicID)
	}
	if m.FieldCleared(questionshare.FieldTitle) {
		fields = append(fields, questionshare.FieldTitle)
	}
	if m.FieldCleared(questionshare.FieldEquation) {
		fields = append(fields, questionshare.FieldEquation)
	}
	if m.FieldCleared(questionshare.FieldChartConnectQuestionID) {
		fields = append(fields, questionshare.FieldChartConnectQuestionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionShareMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionShareMutation) ClearField(name string) error {
	switch name {
	case questionshare.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case questionshare.FieldClinicID:
		m.ClearClinicID()
		return nil
	case questionshare.FieldTitle:
		m.ClearTitle()
		return nil
	case questionshare.FieldEquation:
		m.ClearEquation()
		return nil
	case questionshare.FieldChartConnectQuestionID:
		m.ClearChartConnectQuestionID()
		return nil
	}
	return fmt.Errorf("unknown QuestionShare nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionShareMutation) ResetField(name string) error {
	switch name {
	case questionshare.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case questionshare.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case questionshare.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case questionshare.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case questionshare.FieldClinicID:
		m.ResetClinicID()
		return nil
	case questionshare.FieldTitle:
		m.ResetTitle()
		return nil
	case questionshare.FieldPrompt:
		m.ResetPrompt()
		return nil
	case questionshare.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case questionshare.FieldExpertLevel:
		m.ResetExpertLevel()
		return nil
	case questionshare.FieldPriority:
		m.ResetPriority()
		return nil
	case questionshare.FieldDateType:
		m.ResetDateType()
		return nil
	case questionshare.FieldIsStarter:
		m.ResetIsStarter()
		return nil
	case questionshare.FieldIsEquation:
		m.ResetIsEquation()
		return nil
	case questionshare.FieldEquation:
		m.ResetEquation()
		return nil
	case questionshare.FieldChartVisible:
		m.ResetChartVisible()
		return nil
	case questionshare.FieldChartSrcX:
		m.ResetChartSrcX()
		return nil
	case questionshare.FieldChartSrcY:
		m.ResetChartSrcY()
		return nil
	case questionshare.FieldChartDesX:
		m.ResetChartDesX()
		return nil
	case questionshare.FieldChartDesY:
		m.ResetChartDesY()
		return nil
	case questionshare.FieldChartBranchCount:
		m.ResetChartBranchCount()
		return nil
	case questionshare.FieldChartConnectQuestionID:
		m.ResetChartConnectQuestionID()
		return nil
	}
	return fmt.Errorf("unknown QuestionShare field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionShareMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.doctor != nil {
		edges = append(edges, questionshare.EdgeDoctor)
	}
	if m.clinic != nil {
		edges = append(edges, questionshare.EdgeClinic)
	}
	if m.options != nil {
		edges = append(edges, questionshare.EdgeOptions)
	}
	if m.organs != nil {
		edges = append(edges, questionshare.EdgeOrgans)
	}
	if m.chart_connect != nil {
		edges = append(edges, questionshare.EdgeChartConnect)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionShareMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionshare.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	case questionshare.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case questionshare.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.options))
		for id := range m.options {
			ids = append(ids, id)
		}
		return ids
	case questionshare.EdgeOrgans:
		ids := make([]ent.Value, 0, len(m.organs))
		for id := range m.organs {
			ids = append(ids, id)
		}
		return ids
	case questionshare.EdgeChartConnect:
		if id := m.chart_connect; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionShareMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedoptions != nil {
		edges = append(edges, questionshare.EdgeOptions)
	}
	if m.removedorgans != nil {
		edges = append(edges, questionshare.EdgeOrgans)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionShareMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case questionshare.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.removedoptions))
		for id := range m.removedoptions {
			ids = append(ids, id)
		}
		return ids
	case questionshare.EdgeOrgans:
		ids := make([]ent.Value, 0, len(m.removedorgans))
		for id := range m.removedorgans {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionShareMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.cleareddoctor {
		edges = append(edges, questionshare.EdgeDoctor)
	}
	if m.clearedclinic {
		edges = append(edges, questionshare.EdgeClinic)
	}
	if m.clearedoptions {
		edges = append(edges, questionshare.EdgeOptions)
	}
	if m.clearedorgans {
		edges = append(edges, questionshare.EdgeOrgans)
	}
	if m.clearedchart_connect {
		edges = append(edges, questionshare.EdgeChartConnect)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionShareMutation) EdgeCleared(name string) bool {
	switch name {
	case questionshare.EdgeDoctor:
		return m.cleareddoctor
	case questionshare.EdgeClinic:
		return m.clearedclinic
	case questionshare.EdgeOptions:
		return m.clearedoptions
	case questionshare.EdgeOrgans:
		return m.clearedorgans
	case questionshare.EdgeChartConnect:
		return m.clearedchart_connect
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionShareMutation) ClearEdge(name string) error {
	switch name {
	case questionshare.EdgeDoctor:
		m.ClearDoctor()
		return nil
	case questionshare.EdgeClinic:
		m.ClearClinic()
		return nil
	case questionshare.EdgeChartConnect:
		m.ClearChartConnect()
		return nil
	}
	return fmt.Errorf("unknown QuestionShare unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionShareMutation) ResetEdge(name string) error {
	switch name {
	case questionshare.EdgeDoctor:
		m.ResetDoctor()
		return nil
	case questionshare.EdgeClinic:
		m.ResetClinic()
		return nil
	case questionshare.EdgeOptions:
		m.ResetOptions()
		return nil
	case questionshare.EdgeOrgans:
		m.ResetOrgans()
		return nil
	case questionshare.EdgeChartConnect:
		m.ResetChartConnect()
		return nil
	}
	return fmt.Errorf("unknown QuestionShare edge %s", name)
}

// RealClinicMutation represents an operation that mutates the RealClinic nodes in the graph.
type RealClinicMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	title         *string
	phone         *string
	address       *string
	city          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RealClinic, error)
	predicates    []predicate.RealClinic
}

var _ ent.Mutation = (*RealClinicMutation)(nil)

// realclinicOption allows management of the mutation configuration using functional options.
type realclinicOption func(*RealClinicMutation)

// newRealClinicMutation creates new mutation for the RealClinic entity.
func newRealClinicMutation(c config, op Op, opts ...realclinicOption) *RealClinicMutation {
	m := &RealClinicMutation{
		config:        c,
		op:            op,
		typ:           TypeRealClinic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRealClinicID sets the ID field of the mutation.
func withRealClinicID(id uuid.UUID) realclinicOption {
	return func(m *RealClinicMutation) {
		var (
			err   error
			once  sync.Once
			value *RealClinic
		)
		m.oldValue = func(ctx context.Context) (*RealClinic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RealClinic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRealClinic sets the old RealClinic of the mutation.
func withRealClinic(node *RealClinic) realclinicOption {
	return func(m *RealClinicMutation) {
		m.oldValue = func(context.Context) (*RealClinic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RealClinicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RealClinicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RealClinic entities.
func (m *RealClinicMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RealClinicMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RealClinicMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RealClinic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RealClinicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RealClinicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RealClinic entity.
// If the RealClinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealClinicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RealClinicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RealClinicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RealClinicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RealClinic entity.
// If the RealClinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealClinicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RealClinicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RealClinicMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RealClinicMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the RealClinic entity.
// If the RealClinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealClinicMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RealClinicMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[realclinic.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RealClinicMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[realclinic.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RealClinicMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, realclinic.FieldDeletedAt)
}

// SetTitle sets the "title" field.
func (m *RealClinicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RealClinicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the RealClinic entity.
// If the RealClinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealClinicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RealClinicMutation) ResetTitle() {
	m.title = nil
}

// SetPhone sets the "phone" field.
func (m *RealClinicMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *RealClinicMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the RealClinic entity.
// If the RealClinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealClinicMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *RealClinicMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[realclinic.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *RealClinicMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[realclinic.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *RealClinicMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, realclinic.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *RealClinicMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *RealClinicMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the RealClinic entity.
// If the RealClinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealClinicMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *RealClinicMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[realclinic.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *RealClinicMutation) AddressCleared() bool {
	_, ok := m.clearedFields[realclinic.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *RealClinicMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, realclinic.FieldAddress)
}

// SetCity sets the "city" field.
func (m *RealClinicMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *RealClinicMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the RealClinic entity.
// If the RealClinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealClinicMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *RealClinicMutation) ClearCity() {
	m.city = nil
	m.clearedFields[realclinic.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *RealClinicMutation) CityCleared() bool {
	_, ok := m.clearedFields[realclinic.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *RealClinicMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, realclinic.FieldCity)
}

// Where appends a list predicates to the RealClinicMutation builder.
func (m *RealClinicMutation) Where(ps ...predicate.RealClinic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RealClinicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RealClinicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RealClinic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RealClinicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RealClinicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RealClinic).
func (m *RealClinicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RealClinicMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, realclinic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, realclinic.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, realclinic.FieldDeletedAt)
	}
	if m.title != nil {
		fields = append(fields, realclinic.FieldTitle)
	}
	if m.phone != nil {
		fields = append(fields, realclinic.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, realclinic.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, realclinic.FieldCity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RealClinicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case realclinic.FieldCreatedAt:
		return m.CreatedAt()
	case realclinic.FieldUpdatedAt:
		return m.UpdatedAt()
	case realclinic.FieldDeletedAt:
		return m.DeletedAt()
	case realclinic.FieldTitle:
		return m.Title()
	case realclinic.FieldPhone:
		return m.Phone()
	case realclinic.FieldAddress:
		return m.Address()
	case realclinic.FieldCity:
		return m.City()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RealClinicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case realclinic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case realclinic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case realclinic.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case realclinic.FieldTitle:
		return m.OldTitle(ctx)
	case realclinic.FieldPhone:
		return m.OldPhone(ctx)
	case realclinic.FieldAddress:
		return m.OldAddress(ctx)
	case realclinic.FieldCity:
		return m.OldCity(ctx)
	}
	return nil, fmt.Errorf("unknown RealClinic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RealClinicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case realclinic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case realclinic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case realclinic.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case realclinic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case realclinic.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case realclinic.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case realclinic.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	}
	return fmt.Errorf("unknown RealClinic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RealClinicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RealClinicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RealClinicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RealClinic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RealClinicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(realclinic.FieldDeletedAt) {
		fields = append(fields, realclinic.FieldDeletedAt)
	}
	if m.FieldCleared(realclinic.FieldPhone) {
		fields = append(fields, realclinic.FieldPhone)
	}
	if m.FieldCleared(realclinic.FieldAddress) {
		fields = append(fields, realclinic.FieldAddress)
	}
	if m.FieldCleared(realclinic.FieldCity) {
		fields = append(fields, realclinic.FieldCity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RealClinicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RealClinicMutation) ClearField(name string) error {
	switch name {
	case realclinic.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case realclinic.FieldPhone:
		m.ClearPhone()
		return nil
	case realclinic.FieldAddress:
		m.ClearAddress()
		return nil
	case realclinic.FieldCity:
		m.ClearCity()
		return nil
	}
	return fmt.Errorf("unknown RealClinic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RealClinicMutation) ResetField(name string) error {
	switch name {
	case realclinic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case realclinic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case realclinic.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case realclinic.FieldTitle:
		m.ResetTitle()
		return nil
	case realclinic.FieldPhone:
		m.ResetPhone()
		return nil
	case realclinic.FieldAddress:
		m.ResetAddress()
		return nil
	case realclinic.FieldCity:
		m.ResetCity()
		return nil
	}
	return fmt.Errorf("unknown RealClinic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RealClinicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RealClinicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RealClinicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RealClinicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RealClinicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RealClinicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RealClinicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RealClinic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RealClinicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RealClinic edge %s", name)
}

// RealDoctorMutation represents an operation that mutates the RealDoctor nodes in the graph.
type RealDoctorMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	full_name     *string
	specialty     *string
	phone         *string
	address       *string
	city          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RealDoctor, error)
	predicates    []predicate.RealDoctor
}

var _ ent.Mutation = (*RealDoctorMutation)(nil)

// realdoctorOption allows management of the mutation configuration using functional options.
type realdoctorOption func(*RealDoctorMutation)

// newRealDoctorMutation creates new mutation for the RealDoctor entity.
func newRealDoctorMutation(c config, op Op, opts ...realdoctorOption) *RealDoctorMutation {
	m := &RealDoctorMutation{
		config:        c,
		op:            op,
		typ:           TypeRealDoctor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRealDoctorID sets the ID field of the mutation.
func withRealDoctorID(id uuid.UUID) realdoctorOption {
	return func(m *RealDoctorMutation) {
		var (
			err   error
			once  sync.Once
			value *RealDoctor
		)
		m.oldValue = func(ctx context.Context) (*RealDoctor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RealDoctor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRealDoctor sets the old RealDoctor of the mutation.
func withRealDoctor(node *RealDoctor) realdoctorOption {
	return func(m *RealDoctorMutation) {
		m.oldValue = func(context.Context) (*RealDoctor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RealDoctorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RealDoctorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RealDoctor entities.
func (m *RealDoctorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RealDoctorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RealDoctorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RealDoctor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RealDoctorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RealDoctorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RealDoctor entity.
// If the RealDoctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealDoctorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RealDoctorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RealDoctorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RealDoctorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RealDoctor entity.
// If the RealDoctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealDoctorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RealDoctorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RealDoctorMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RealDoctorMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the RealDoctor entity.
// If the RealDoctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealDoctorMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RealDoctorMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[realdoctor.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RealDoctorMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[realdoctor.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RealDoctorMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, realdoctor.FieldDeletedAt)
}

// SetFullName sets the "full_name" field.
func (m *RealDoctorMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *RealDoctorMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the RealDoctor entity.
// If the RealDoctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealDoctorMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *RealDoctorMutation) ResetFullName() {
	m.full_name = nil
}

// SetSpecialty sets the "specialty" field.
func (m *RealDoctorMutation) SetSpecialty(s string) {
	m.specialty = &s
}

// Specialty returns the value of the "specialty" field in the mutation.
func (m *RealDoctorMutation) Specialty() (r string, exists bool) {
	v := m.specialty
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialty returns the old "specialty" field's value of the RealDoctor entity.
// If the RealDoctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealDoctorMutation) OldSpecialty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialty: %w", err)
	}
	return oldValue.Specialty, nil
}

// ClearSpecialty clears the value of the "specialty" field.
func (m *RealDoctorMutation) ClearSpecialty() {
	m.specialty = nil
	m.clearedFields[realdoctor.FieldSpecialty] = struct{}{}
}

// SpecialtyCleared returns if the "specialty" field was cleared in this mutation.
func (m *RealDoctorMutation) SpecialtyCleared() bool {
	_, ok := m.clearedFields[realdoctor.FieldSpecialty]
	return ok
}

// ResetSpecialty resets all changes to the "specialty" field.
func (m *RealDoctorMutation) ResetSpecialty() {
	m.specialty = nil
	delete(m.clearedFields, realdoctor.FieldSpecialty)
}

// SetPhone sets the "phone" field.
func (m *RealDoctorMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *RealDoctorMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the RealDoctor entity.
// If the RealDoctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealDoctorMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *RealDoctorMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[realdoctor.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *RealDoctorMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[realdoctor.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *RealDoctorMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, realdoctor.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *RealDoctorMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *RealDoctorMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the RealDoctor entity.
// If the RealDoctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealDoctorMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *RealDoctorMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[realdoctor.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *RealDoctorMutation) AddressCleared() bool {
	_, ok := m.clearedFields[realdoctor.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *RealDoctorMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, realdoctor.FieldAddress)
}

// SetCity sets the "city" field.
func (m *RealDoctorMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *RealDoctorMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the RealDoctor entity.
// If the RealDoctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RealDoctorMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *RealDoctorMutation) ClearCity() {
	m.city = nil
	m.clearedFields[realdoctor.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *RealDoctorMutation) CityCleared() bool {
	_, ok := m.clearedFields[realdoctor.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *RealDoctorMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, realdoctor.FieldCity)
}

// Where appends a list predicates to the RealDoctorMutation builder.
func (m *RealDoctorMutation) Where(ps ...predicate.RealDoctor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RealDoctorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RealDoctorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RealDoctor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RealDoctorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RealDoctorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RealDoctor).
func (m *RealDoctorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RealDoctorMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, realdoctor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, realdoctor.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, realdoctor.FieldDeletedAt)
	}
	if m.full_name != nil {
		fields = append(fields, realdoctor.FieldFullName)
	}
	if m.specialty != nil {
		fields = append(fields, realdoctor.FieldSpecialty)
	}
	if m.phone != nil {
		fields = append(fields, realdoctor.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, realdoctor.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, realdoctor.FieldCity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RealDoctorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case realdoctor.FieldCreatedAt:
		return m.CreatedAt()
	case realdoctor.FieldUpdatedAt:
		return m.UpdatedAt()
	case realdoctor.FieldDeletedAt:
		return m.DeletedAt()
	case realdoctor.FieldFullName:
		return m.FullName()
	case realdoctor.FieldSpecialty:
		return m.Specialty()
	case realdoctor.FieldPhone:
		return m.Phone()
	case realdoctor.FieldAddress:
		return m.Address()
	case realdoctor.FieldCity:
		return m.City()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RealDoctorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case realdoctor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case realdoctor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case realdoctor.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case realdoctor.FieldFullName:
		return m.OldFullName(ctx)
	case realdoctor.FieldSpecialty:
		return m.OldSpecialty(ctx)
	case realdoctor.FieldPhone:
		return m.OldPhone(ctx)
	case realdoctor.FieldAddress:
		return m.OldAddress(ctx)
	case realdoctor.FieldCity:
		return m.OldCity(ctx)
	}
	return nil, fmt.Errorf("unknown RealDoctor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RealDoctorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case realdoctor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case realdoctor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case realdoctor.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case realdoctor.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case realdoctor.FieldSpecialty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialty(v)
		return nil
	case realdoctor.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case realdoctor.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case realdoctor.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	}
	return fmt.Errorf("unknown RealDoctor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RealDoctorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RealDoctorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RealDoctorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RealDoctor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RealDoctorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(realdoctor.FieldDeletedAt) {
		fields = append(fields, realdoctor.FieldDeletedAt)
	}
	if m.FieldCleared(realdoctor.FieldSpecialty) {
		fields = append(fields, realdoctor.FieldSpecialty)
	}
	if m.FieldCleared(realdoctor.FieldPhone) {
		fields = append(fields, realdoctor.FieldPhone)
	}
	if m.FieldCleared(realdoctor.FieldAddress) {
		fields = append(fields, realdoctor.FieldAddress)
	}
	if m.FieldCleared(realdoctor.FieldCity) {
		fields = append(fields, realdoctor.FieldCity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RealDoctorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RealDoctorMutation) ClearField(name string) error {
	switch name {
	case realdoctor.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case realdoctor.FieldSpecialty:
		m.ClearSpecialty()
		return nil
	case realdoctor.FieldPhone:
		m.ClearPhone()
		return nil
	case realdoctor.FieldAddress:
		m.ClearAddress()
		return nil
	case realdoctor.FieldCity:
		m.ClearCity()
		return nil
	}
	return fmt.Errorf("unknown RealDoctor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RealDoctorMutation) ResetField(name string) error {
	switch name {
	case realdoctor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case realdoctor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case realdoctor.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case realdoctor.FieldFullName:
		m.ResetFullName()
		return nil
	case realdoctor.FieldSpecialty:
		m.ResetSpecialty()
		return nil
	case realdoctor.FieldPhone:
		m.ResetPhone()
		return nil
	case realdoctor.FieldAddress:
		m.ResetAddress()
		return nil
	case realdoctor.FieldCity:
		m.ResetCity()
		return nil
	}
	return fmt.Errorf("unknown RealDoctor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RealDoctorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RealDoctorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RealDoctorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RealDoctorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RealDoctorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RealDoctorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RealDoctorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RealDoctor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RealDoctorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RealDoctor edge %s", name)
}

// SuggestionMutation represents an operation that mutates the Suggestion nodes in the graph.
type SuggestionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	deleted_at            *time.Time
	note                  *string
	clearedFields         map[string]struct{}
	interpretation        *uuid.UUID
	clearedinterpretation bool
	doctor                *uuid.UUID
	cleareddoctor         bool
	real_doctor           *uuid.UUID
	clearedreal_doctor    bool
	clinic                *uuid.UUID
	clearedclinic         bool
	real_clinic           *uuid.UUID
	clearedreal_clinic    bool
	clinic_media          *uuid.UUID
	clearedclinic_media   bool
	done                  bool
	oldValue              func(context.Context) (*Suggestion, error)
	predicates            []predicate.Suggestion
}

var _ ent.Mutation = (*SuggestionMutation)(nil)

// suggestionOption allows management of the mutation configuration using functional options.
type suggestionOption func(*SuggestionMutation)

// newSuggestionMutation creates new mutation for the Suggestion entity.
func newSuggestionMutation(c config, op Op, opts ...suggestionOption) *SuggestionMutation {
	m := &SuggestionMutation{
		config:        c,
		op:            op,
		typ:           TypeSuggestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuggestionID sets the ID field of the mutation.
func withSuggestionID(id uuid.UUID) suggestionOption {
	return func(m *SuggestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Suggestion
		)
		m.oldValue = func(ctx context.Context) (*Suggestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Suggestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuggestion sets the old Suggestion of the mutation.
func withSuggestion(node *Suggestion) suggestionOption {
	return func(m *SuggestionMutation) {
		m.oldValue = func(context.Context) (*Suggestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuggestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuggestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Suggestion entities.
func (m *SuggestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuggestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuggestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Suggestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SuggestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SuggestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SuggestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SuggestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SuggestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SuggestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SuggestionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SuggestionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SuggestionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[suggestion.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SuggestionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SuggestionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, suggestion.FieldDeletedAt)
}

// SetInterpretationID sets the "interpretation_id" field.
func (m *SuggestionMutation) SetInterpretationID(u uuid.UUID) {
	m.interpretation = &u
}

// InterpretationID returns the value of the "interpretation_id" field in the mutation.
func (m *SuggestionMutation) InterpretationID() (r uuid.UUID, exists bool) {
	v := m.interpretation
	if v == nil {
		return
	}
	return *v, true
}

// OldInterpretationID returns the old "interpretation_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldInterpretationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterpretationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterpretationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterpretationID: %w", err)
	}
	return oldValue.InterpretationID, nil
}

// ResetInterpretationID resets all changes to the "interpretation_id" field.
func (m *SuggestionMutation) ResetInterpretationID() {
	m.interpretation = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *SuggestionMutation) SetDoctorID(u uuid.UUID) {
	m.doctor = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *SuggestionMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldDoctorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ClearDoctorID clears the value of the "doctor_id" field.
func (m *SuggestionMutation) ClearDoctorID() {
	m.doctor = nil
	m.clearedFields[suggestion.FieldDoctorID] = struct{}{}
}

// DoctorIDCleared returns if the "doctor_id" field was cleared in this mutation.
func (m *SuggestionMutation) DoctorIDCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldDoctorID]
	return ok
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *SuggestionMutation) ResetDoctorID() {
	m.doctor = nil
	delete(m.clearedFields, suggestion.FieldDoctorID)
}

// SetRealDoctorID sets the "real_doctor_id" field.
func (m *SuggestionMutation) SetRealDoctorID(u uuid.UUID) {
	m.real_doctor = &u
}

// RealDoctorID returns the value of the "real_doctor_id" field in the mutation.
func (m *SuggestionMutation) RealDoctorID() (r uuid.UUID, exists bool) {
	v := m.real_doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldRealDoctorID returns the old "real_doctor_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldRealDoctorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealDoctorID: %w", err)
	}
	return oldValue.RealDoctorID, nil
}

// ClearRealDoctorID clears the value of the "real_doctor_id" field.
func (m *SuggestionMutation) ClearRealDoctorID() {
	m.real_doctor = nil
	m.clearedFields[suggestion.FieldRealDoctorID] = struct{}{}
}

// RealDoctorIDCleared returns if the "real_doctor_id" field was cleared in this mutation.
func (m *SuggestionMutation) RealDoctorIDCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldRealDoctorID]
	return ok
}

// ResetRealDoctorID resets all changes to the "real_doctor_id" field.
func (m *SuggestionMutation) ResetRealDoctorID() {
	m.real_doctor = nil
	delete(m.clearedFields, suggestion.FieldRealDoctorID)
}

// SetClinicID sets the "clinic_id" field.
func (m *SuggestionMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *SuggestionMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldClinicID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ClearClinicID clears the value of the "clinic_id" field.
func (m *SuggestionMutation) ClearClinicID() {
	m.clinic = nil
	m.clearedFields[suggestion.FieldClinicID] = struct{}{}
}

// ClinicIDCleared returns if the "clinic_id" field was cleared in this mutation.
func (m *SuggestionMutation) ClinicIDCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldClinicID]
	return ok
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *SuggestionMutation) ResetClinicID() {
	m.clinic = nil
	delete(m.clearedFields, suggestion.FieldClinicID)
}

// SetRealClinicID sets the "real_clinic_id" field.
func (m *SuggestionMutation) SetRealClinicID(u uuid.UUID) {
	m.real_clinic = &u
}

// RealClinicID returns the value of the "real_clinic_id" field in the mutation.
func (m *SuggestionMutation) RealClinicID() (r uuid.UUID, exists bool) {
	v := m.real_clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldRealClinicID returns the old "real_clinic_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldRealClinicID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRealClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRealClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRealClinicID: %w", err)
	}
	return oldValue.RealClinicID, nil
}

// ClearRealClinicID clears the value of the "real_clinic_id" field.
func (m *SuggestionMutation) ClearRealClinicID() {
	m.real_clinic = nil
	m.clearedFields[suggestion.FieldRealClinicID] = struct{}{}
}

// RealClinicIDCleared returns if the "real_clinic_id" field was cleared in this mutation.
func (m *SuggestionMutation) RealClinicIDCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldRealClinicID]
	return ok
}

// ResetRealClinicID resets all changes to the "real_clinic_id" field.
func (m *SuggestionMutation) ResetRealClinicID() {
	m.real_clinic = nil
	delete(m.clearedFields, suggestion.FieldRealClinicID)
}

// SetClinicMediaID sets the "clinic_media_id" field.
func (m *SuggestionMutation) SetClinicMediaID(u uuid.UUID) {
	m.clinic_media = &u
}

// ClinicMediaID returns the value of the "clinic_media_id" field in the mutation.
func (m *SuggestionMutation) ClinicMediaID() (r uuid.UUID, exists bool) {
	v := m.clinic_media
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicMediaID returns the old "clinic_media_id" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldClinicMediaID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicMediaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicMediaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicMediaID: %w", err)
	}
	return oldValue.ClinicMediaID, nil
}

// ClearClinicMediaID clears the value of the "clinic_media_id" field.
func (m *SuggestionMutation) ClearClinicMediaID() {
	m.clinic_media = nil
	m.clearedFields[suggestion.FieldClinicMediaID] = struct{}{}
}

// ClinicMediaIDCleared returns if the "clinic_media_id" field was cleared in this mutation.
func (m *SuggestionMutation) ClinicMediaIDCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldClinicMediaID]
	return ok
}

// ResetClinicMediaID resets all changes to the "clinic_media_id" field.
func (m *SuggestionMutation) ResetClinicMediaID() {
	m.clinic_media = nil
	delete(m.clearedFields, suggestion.FieldClinicMediaID)
}

// SetNote sets the "note" field.
func (m *SuggestionMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *SuggestionMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Suggestion entity.
// If the Suggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *SuggestionMutation) ClearNote() {
	m.note = nil
	m.clearedFields[suggestion.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *SuggestionMutation) NoteCleared() bool {
	_, ok := m.clearedFields[suggestion.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *SuggestionMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, suggestion.FieldNote)
}

// ClearInterpretation clears the "interpretation" edge to the Interpretation entity.
func (m *SuggestionMutation) ClearInterpretation() {
	m.clearedinterpretation = true
	m.clearedFields[suggestion.FieldInterpretationID] = struct{}{}
}

// InterpretationCleared reports if the "interpretation" edge to the Interpretation entity was cleared.
func (m *SuggestionMutation) InterpretationCleared() bool {
	return m.clearedinterpretation
}

// InterpretationIDs returns the "interpretation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InterpretationID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) InterpretationIDs() (ids []uuid.UUID) {
	if id := m.interpretation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInterpretation resets all changes to the "interpretation" edge.
func (m *SuggestionMutation) ResetInterpretation() {
	m.interpretation = nil
	m.clearedinterpretation = false
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *SuggestionMutation) ClearDoctor() {
	m.cleareddoctor = true
	m.clearedFields[suggestion.FieldDoctorID] = struct{}{}
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *SuggestionMutation) DoctorCleared() bool {
	return m.DoctorIDCleared() || m.cleareddoctor
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *SuggestionMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// ClearRealDoctor clears the "real_doctor" edge to the RealDoctor entity.
func (m *SuggestionMutation) ClearRealDoctor() {
	m.clearedreal_doctor = true
	m.clearedFields[suggestion.FieldRealDoctorID] = struct{}{}
}

// RealDoctorCleared reports if the "real_doctor" edge to the RealDoctor entity was cleared.
func (m *SuggestionMutation) RealDoctorCleared() bool {
	return m.RealDoctorIDCleared() || m.clearedreal_doctor
}

// RealDoctorIDs returns the "real_doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RealDoctorID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) RealDoctorIDs() (ids []uuid.UUID) {
	if id := m.real_doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRealDoctor resets all changes to the "real_doctor" edge.
func (m *SuggestionMutation) ResetRealDoctor() {
	m.real_doctor = nil
	m.clearedreal_doctor = false
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *SuggestionMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[suggestion.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *SuggestionMutation) ClinicCleared() bool {
	return m.ClinicIDCleared() || m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *SuggestionMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// ClearRealClinic clears the "real_clinic" edge to the RealClinic entity.
func (m *SuggestionMutation) ClearRealClinic() {
	m.clearedreal_clinic = true
	m.clearedFields[suggestion.FieldRealClinicID] = struct{}{}
}

// RealClinicCleared reports if the "real_clinic" edge to the RealClinic entity was cleared.
func (m *SuggestionMutation) RealClinicCleared() bool {
	return m.RealClinicIDCleared() || m.clearedreal_clinic
}

// RealClinicIDs returns the "real_clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RealClinicID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) RealClinicIDs() (ids []uuid.UUID) {
	if id := m.real_clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRealClinic resets all changes to the "real_clinic" edge.
func (m *SuggestionMutation) ResetRealClinic() {
	m.real_clinic = nil
	m.clearedreal_clinic = false
}

// ClearClinicMedia clears the "clinic_media" edge to the ClinicMedia entity.
func (m *SuggestionMutation) ClearClinicMedia() {
	m.clearedclinic_media = true
	m.clearedFields[suggestion.FieldClinicMediaID] = struct{}{}
}

// ClinicMediaCleared reports if the "clinic_media" edge to the ClinicMedia entity was cleared.
func (m *SuggestionMutation) ClinicMediaCleared() bool {
	return m.ClinicMediaIDCleared() || m.clearedclinic_media
}

// ClinicMediaIDs returns the "clinic_media" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicMediaID instead. It exists only for internal usage by the builders.
func (m *SuggestionMutation) ClinicMediaIDs() (ids []uuid.UUID) {
	if id := m.clinic_media; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinicMedia resets all changes to the "clinic_media" edge.
func (m *SuggestionMutation) ResetClinicMedia() {
	m.clinic_media = nil
	m.clearedclinic_media = false
}

// Where appends a list predicates to the SuggestionMutation builder.
func (m *SuggestionMutation) Where(ps ...predicate.Suggestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuggestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuggestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Suggestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuggestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuggestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Suggestion).
func (m *SuggestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuggestionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, suggestion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, suggestion.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, suggestion.FieldDeletedAt)
	}
	if m.interpretation != nil {
		fields = append(fields, suggestion.FieldInterpretationID)
	}
	if m.doctor != nil {
		fields = append(fields, suggestion.FieldDoctorID)
	}
	if m.real_doctor != nil {
		fields = append(fields, suggestion.FieldRealDoctorID)
	}
	if m.clinic != nil {
		fields = append(fields, suggestion.FieldClinicID)
	}
	if m.real_clinic != nil {
		fields = append(fields, suggestion.FieldRealClinicID)
	}
	if m.clinic_media != nil {
		fields = append(fields, suggestion.FieldClinicMediaID)
	}
	if m.note != nil {
		fields = append(fields, suggestion.FieldNote)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuggestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suggestion.FieldCreatedAt:
		return m.CreatedAt()
	case suggestion.FieldUpdatedAt:
		return m.UpdatedAt()
	case suggestion.FieldDeletedAt:
		return m.DeletedAt()
	case suggestion.FieldInterpretationID:
		return m.InterpretationID()
	case suggestion.FieldDoctorID:
		return m.DoctorID()
	case suggestion.FieldRealDoctorID:
		return m.RealDoctorID()
	case suggestion.FieldClinicID:
		return m.ClinicID()
	case suggestion.FieldRealClinicID:
		return m.RealClinicID()
	case suggestion.FieldClinicMediaID:
		return m.ClinicMediaID()
	case suggestion.FieldNote:
		return m.Note()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuggestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suggestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case suggestion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case suggestion.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case suggestion.FieldInterpretationID:
		return m.OldInterpretationID(ctx)
	case suggestion.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case suggestion.FieldRealDoctorID:
		return m.OldRealDoctorID(ctx)
	case suggestion.FieldClinicID:
		return m.OldClinicID(ctx)
	case suggestion.FieldRealClinicID:
		return m.OldRealClinicID(ctx)
	case suggestion.FieldClinicMediaID:
		return m.OldClinicMediaID(ctx)
	case suggestion.FieldNote:
		return m.OldNote(ctx)
	}
	return nil, fmt.Errorf("unknown Suggestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suggestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case suggestion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case suggestion.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case suggestion.FieldInterpretationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterpretationID(v)
		return nil
	case suggestion.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case suggestion.FieldRealDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealDoctorID(v)
		return nil
	case suggestion.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case suggestion.FieldRealClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRealClinicID(v)
		return nil
	case suggestion.FieldClinicMediaID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicMediaID(v)
		return nil
	case suggestion.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	}
	return fmt.Errorf("unknown Suggestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuggestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuggestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Suggestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuggestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(suggestion.FieldDeletedAt) {
		fields = append(fields, suggestion.FieldDeletedAt)
	}
	if m.FieldCleared(suggestion.FieldDoctorID) {
		fields = append(fields, suggestion.FieldDoctorID)
	}
	if m.FieldCleared(suggestion.FieldRealDoctorID) {
		fields = append(fields, suggestion.FieldRealDoctorID)
	}
	if m.FieldCleared(suggestion.FieldClinicID) {
		fields = append(fields, suggestion.FieldClinicID)
	}
	if m.FieldCleared(suggestion.FieldRealClinicID) {
		fields = append(fields, suggestion.FieldRealClinicID)
	}
	if m.FieldCleared(suggestion.FieldClinicMediaID) {
		fields = append(fields, suggestion.FieldClinicMediaID)
	}
	if m.FieldCleared(suggestion.FieldNote) {
		fields = append(fields, suggestion.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuggestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuggestionMutation) ClearField(name string) error {
	switch name {
	case suggestion.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case suggestion.FieldDoctorID:
		m.ClearDoctorID()
		return nil
	case suggestion.FieldRealDoctorID:
		m.ClearRealDoctorID()
		return nil
	case suggestion.FieldClinicID:
		m.ClearClinicID()
		return nil
	case suggestion.FieldRealClinicID:
		m.ClearRealClinicID()
		return nil
	case suggestion.FieldClinicMediaID:
		m.ClearClinicMediaID()
		return nil
	case suggestion.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown Suggestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuggestionMutation) ResetField(name string) error {
	switch name {
	case suggestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case suggestion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case suggestion.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case suggestion.FieldInterpretationID:
		m.ResetInterpretationID()
		return nil
	case suggestion.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case suggestion.FieldRealDoctorID:
		m.ResetRealDoctorID()
		return nil
	case suggestion.FieldClinicID:
		m.ResetClinicID()
		return nil
	case suggestion.FieldRealClinicID:
		m.ResetRealClinicID()
		return nil
	case suggestion.FieldClinicMediaID:
		m.ResetClinicMediaID()
		return nil
	case suggestion.FieldNote:
		m.ResetNote()
		return nil
	}
	return fmt.Errorf("unknown Suggestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuggestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.interpretation != nil {
		edges = append(edges, suggestion.EdgeInterpretation)
	}
	if m.doctor != nil {
		edges = append(edges, suggestion.EdgeDoctor)
	}
	if m.real_doctor != nil {
		edges = append(edges, suggestion.EdgeRealDoctor)
	}
	if m.clinic != nil {
		edges = append(edges, suggestion.EdgeClinic)
	}
	if m.real_clinic != nil {
		edges = append(edges, suggestion.EdgeRealClinic)
	}
	if m.clinic_media != nil {
		edges = append(edges, suggestion.EdgeClinicMedia)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuggestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case suggestion.EdgeInterpretation:
		if id := m.interpretation; id != nil {
			return []ent.Value{*id}
		}
	case suggestion.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	case suggestion.EdgeRealDoctor:
		if id := m.real_doctor; id != nil {
			return []ent.Value{*id}
		}
	case suggestion.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case suggestion.EdgeRealClinic:
		if id := m.real_clinic; id != nil {
			return []ent.Value{*id}
		}
	case suggestion.EdgeClinicMedia:
		if id := m.clinic_media; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuggestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuggestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuggestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedinterpretation {
		edges = append(edges, suggestion.EdgeInterpretation)
	}
	if m.cleareddoctor {
		edges = append(edges, suggestion.EdgeDoctor)
	}
	if m.clearedreal_doctor {
		edges = append(edges, suggestion.EdgeRealDoctor)
	}
	if m.clearedclinic {
		edges = append(edges, suggestion.EdgeClinic)
	}
	if m.clearedreal_clinic {
		edges = append(edges, suggestion.EdgeRealClinic)
	}
	if m.clearedclinic_media {
		edges = append(edges, suggestion.EdgeClinicMedia)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuggestionMutation) EdgeCleared(name string) bool {
	switch name {
	case suggestion.EdgeInterpretation:
		return m.clearedinterpretation
	case suggestion.EdgeDoctor:
		return m.cleareddoctor
	case suggestion.EdgeRealDoctor:
		return m.clearedreal_doctor
	case suggestion.EdgeClinic:
		return m.clearedclinic
	case suggestion.EdgeRealClinic:
		return m.clearedreal_clinic
	case suggestion.EdgeClinicMedia:
		return m.clearedclinic_media
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuggestionMutation) ClearEdge(name string) error {
	switch name {
	case suggestion.EdgeInterpretation:
		m.ClearInterpretation()
		return nil
	case suggestion.EdgeDoctor:
		m.ClearDoctor()
		return nil
	case suggestion.EdgeRealDoctor:
		m.ClearRealDoctor()
		return nil
	case suggestion.EdgeClinic:
		m.ClearClinic()
		return nil
	case suggestion.EdgeRealClinic:
		m.ClearRealClinic()
		return nil
	case suggestion.EdgeClinicMedia:
		m.ClearClinicMedia()
		return nil
	}
	return fmt.Errorf("unknown Suggestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuggestionMutation) ResetEdge(name string) error {
	switch name {
	case suggestion.EdgeInterpretation:
		m.ResetInterpretation()
		return nil
	case suggestion.EdgeDoctor:
		m.ResetDoctor()
		return nil
	case suggestion.EdgeRealDoctor:
		m.ResetRealDoctor()
		return nil
	case suggestion.EdgeClinic:
		m.ResetClinic()
		return nil
	case suggestion.EdgeRealClinic:
		m.ResetRealClinic()
		return nil
	case suggestion.EdgeClinicMedia:
		m.ResetClinicMedia()
		return nil
	}
	return fmt.Errorf("unknown Suggestion edge %s", name)
}

// SupervisorMutation represents an operation that mutates the Supervisor nodes in the graph.
type SupervisorMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	relative_type  *supervisor.RelativeType
	clearedFields  map[string]struct{}
	user           *uuid.UUID
	cleareduser    bool
	patient        *uuid.UUID
	clearedpatient bool
	done           bool
	oldValue       func(context.Context) (*Supervisor, error)
	predicates     []predicate.Supervisor
}

var _ ent.Mutation = (*SupervisorMutation)(nil)

// supervisorOption allows management of the mutation configuration using functional options.
type supervisorOption func(*SupervisorMutation)

// newSupervisorMutation creates new mutation for the Supervisor entity.
func newSupervisorMutation(c config, op Op, opts ...supervisorOption) *SupervisorMutation {
	m := &SupervisorMutation{
		config:        c,
		op:            op,
		typ:           TypeSupervisor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupervisorID sets the ID field of the mutation.
func withSupervisorID(id uuid.UUID) supervisorOption {
	return func(m *SupervisorMutation) {
		var (
			err   error
			once  sync.Once
			value *Supervisor
		)
		m.oldValue = func(ctx context.Context) (*Supervisor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Supervisor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupervisor sets the old Supervisor of the mutation.
func withSupervisor(node *Supervisor) supervisorOption {
	return func(m *SupervisorMutation) {
		m.oldValue = func(context.Context) (*Supervisor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupervisorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupervisorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Supervisor entities.
func (m *SupervisorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupervisorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupervisorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Supervisor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SupervisorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupervisorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Supervisor entity.
// If the Supervisor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupervisorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupervisorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SupervisorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SupervisorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Supervisor entity.
// If the Supervisor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupervisorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SupervisorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *SupervisorMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SupervisorMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Supervisor entity.
// If the Supervisor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupervisorMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SupervisorMutation) ResetUserID() {
	m.user = nil
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (m *SupervisorMutation) SetPatientProfileID(u uuid.UUID) {
	m.patient = &u
}

// PatientProfileID returns the value of the "patient_profile_id" field in the mutation.
func (m *SupervisorMutation) PatientProfileID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientProfileID returns the old "patient_profile_id" field's value of the Supervisor entity.
// If the Supervisor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupervisorMutation) OldPatientProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientProfileID: %w", err)
	}
	return oldValue.PatientProfileID, nil
}

// ResetPatientProfileID resets all changes to the "patient_profile_id" field.
func (m *SupervisorMutation) ResetPatientProfileID() {
	m.patient = nil
}

// SetRelativeType sets the "relative_type" field.
func (m *SupervisorMutation) SetRelativeType(st supervisor.RelativeType) {
	m.relative_type = &st
}

// RelativeType returns the value of the "relative_type" field in the mutation.
func (m *SupervisorMutation) RelativeType() (r supervisor.RelativeType, exists bool) {
	v := m.relative_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelativeType returns the old "relative_type" field's value of the Supervisor entity.
// If the Supervisor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupervisorMutation) OldRelativeType(ctx context.Context) (v supervisor.RelativeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelativeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelativeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelativeType: %w", err)
	}
	return oldValue.RelativeType, nil
}

// ResetRelativeType resets all changes to the "relative_type" field.
func (m *SupervisorMutation) ResetRelativeType() {
	m.relative_type = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *SupervisorMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[supervisor.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *SupervisorMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *SupervisorMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *SupervisorMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// SetPatientID sets the "patient" edge to the PatientProfile entity by id.
func (m *SupervisorMutation) SetPatientID(id uuid.UUID) {
	m.patient = &id
}

// ClearPatient clears the "patient" edge to the PatientProfile entity.
func (m *SupervisorMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[supervisor.FieldPatientProfileID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the PatientProfile entity was cleared.
func (m *SupervisorMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientID returns the "patient" edge ID in the mutation.
func (m *SupervisorMutation) PatientID() (id uuid.UUID, exists bool) {
	if m.patient != nil {
		return *m.patient, true
	}
	return
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *SupervisorMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *SupervisorMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the SupervisorMutation builder.
func (m *SupervisorMutation) Where(ps ...predicate.Supervisor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupervisorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupervisorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Supervisor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupervisorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupervisorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Supervisor).
func (m *SupervisorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupervisorMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, supervisor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, supervisor.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, supervisor.FieldUserID)
	}
	if m.patient != nil {
		fields = append(fields, supervisor.FieldPatientProfileID)
	}
	if m.relative_type != nil {
		fields = append(fields, supervisor.FieldRelativeType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupervisorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supervisor.FieldCreatedAt:
		return m.CreatedAt()
	case supervisor.FieldUpdatedAt:
		return m.UpdatedAt()
	case supervisor.FieldUserID:
		return m.UserID()
	case supervisor.FieldPatientProfileID:
		return m.PatientProfileID()
	case supervisor.FieldRelativeType:
		return m.RelativeType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupervisorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supervisor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case supervisor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case supervisor.FieldUserID:
		return m.OldUserID(ctx)
	case supervisor.FieldPatientProfileID:
		return m.OldPatientProfileID(ctx)
	case supervisor.FieldRelativeType:
		return m.OldRelativeType(ctx)
	}
	return nil, fmt.Errorf("unknown Supervisor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupervisorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supervisor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case supervisor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case supervisor.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case supervisor.FieldPatientProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientProfileID(v)
		return nil
	case supervisor.FieldRelativeType:
		v, ok := value.(supervisor.RelativeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelativeType(v)
		return nil
	}
	return fmt.Errorf("unknown Supervisor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupervisorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupervisorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupervisorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Supervisor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupervisorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupervisorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupervisorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Supervisor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupervisorMutation) ResetField(name string) error {
	switch name {
	case supervisor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case supervisor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case supervisor.FieldUserID:
		m.ResetUserID()
		return nil
	case supervisor.FieldPatientProfileID:
		m.ResetPatientProfileID()
		return nil
	case supervisor.FieldRelativeType:
		m.ResetRelativeType()
		return nil
	}
	return fmt.Errorf("unknown Supervisor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupervisorMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, supervisor.EdgeUser)
	}
	if m.patient != nil {
		edges = append(edges, supervisor.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupervisorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supervisor.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case supervisor.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupervisorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupervisorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupervisorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, supervisor.EdgeUser)
	}
	if m.clearedpatient {
		edges = append(edges, supervisor.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupervisorMutation) EdgeCleared(name string) bool {
	switch name {
	case supervisor.EdgeUser:
		return m.cleareduser
	case supervisor.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupervisorMutation) ClearEdge(name string) error {
	switch name {
	case supervisor.EdgeUser:
		m.ClearUser()
		return nil
	case supervisor.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown Supervisor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupervisorMutation) ResetEdge(name string) error {
	switch name {
	case supervisor.EdgeUser:
		m.ResetUser()
		return nil
	case supervisor.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown Supervisor edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	first_name           *string
	last_name            *string
	phone                *string
	email                *string
	national_code        *string
	national_code_hash   *string
	identity_approved    *bool
	identity_approved_at *time.Time
	status               *user.Status
	phone_verified       *bool
	last_login_at        *time.Time
	metadata             *map[string]interface{}
	suspended_at         *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetNationalCode sets the "national_code" field.
func (m *UserMutation) SetNationalCode(s string) {
	m.national_code = &s
}

// NationalCode returns the value of the "national_code" field in the mutation.
func (m *UserMutation) NationalCode() (r string, exists bool) {
	v := m.national_code
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalCode returns the old "national_code" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldNationalCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalCode: %w", err)
	}
	return oldValue.NationalCode, nil
}

// ClearNationalCode clears the value of the "national_code" field.
func (m *UserMutation) ClearNationalCode() {
	m.national_code = nil
	m.clearedFields[user.FieldNationalCode] = struct{}{}
}

// NationalCodeCleared returns if the "national_code" field was cleared in this mutation.
func (m *UserMutation) NationalCodeCleared() bool {
	_, ok := m.clearedFields[user.FieldNationalCode]
	return ok
}

// ResetNationalCode resets all changes to the "national_code" field.
func (m *UserMutation) ResetNationalCode() {
	m.national_code = nil
	delete(m.clearedFields, user.FieldNationalCode)
}

// SetNationalCodeHash sets the "national_code_hash" field.
func (m *UserMutation) SetNationalCodeHash(s string) {
	m.national_code_hash = &s
}

// NationalCodeHash returns the value of the "national_code_hash" field in the mutation.
func (m *UserMutation) NationalCodeHash() (r string, exists bool) {
	v := m.national_code_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalCodeHash returns the old "national_code_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldNationalCodeHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalCodeHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalCodeHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalCodeHash: %w", err)
	}
	return oldValue.NationalCodeHash, nil
}

// ClearNationalCodeHash clears the value of the "national_code_hash" field.
func (m *UserMutation) ClearNationalCodeHash() {
	m.national_code_hash = nil
	m.clearedFields[user.FieldNationalCodeHash] = struct{}{}
}

// NationalCodeHashCleared returns if the "national_code_hash" field was cleared in this mutation.
func (m *UserMutation) NationalCodeHashCleared() bool {
	_, ok := m.clearedFields[user.FieldNationalCodeHash]
	return ok
}

// ResetNationalCodeHash resets all changes to the "national_code_hash" field.
func (m *UserMutation) ResetNationalCodeHash() {
	m.national_code_hash = nil
	delete(m.clearedFields, user.FieldNationalCodeHash)
}

// SetIdentityApproved sets the "identity_approved" field.
func (m *UserMutation) SetIdentityApproved(b bool) {
	m.identity_approved = &b
}

// IdentityApproved returns the value of the "identity_approved" field in the mutation.
func (m *UserMutation) IdentityApproved() (r bool, exists bool) {
	v := m.identity_approved
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentityApproved returns the old "identity_approved" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIdentityApproved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentityApproved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentityApproved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentityApproved: %w", err)
	}
	return oldValue.IdentityApproved, nil
}

// ResetIdentityApproved resets all changes to the "identity_approved" field.
func (m *UserMutation) ResetIdentityApproved() {
	m.identity_approved = nil
}

// SetIdentityApprovedAt sets the "identity_approved_at" field.
func (m *UserMutation) SetIdentityApprovedAt(t time.Time) {
	m.identity_approved_at = &t
}

// IdentityApprovedAt returns the value of the "identity_approved_at" field in the mutation.
func (m *UserMutation) IdentityApprovedAt() (r time.Time, exists bool) {
	v := m.identity_approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentityApprovedAt returns the old "identity_approved_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIdentityApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentityApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentityApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentityApprovedAt: %w", err)
	}
	return oldValue.IdentityApprovedAt, nil
}

// ClearIdentityApprovedAt clears the value of the "identity_approved_at" field.
func (m *UserMutation) ClearIdentityApprovedAt() {
	m.identity_approved_at = nil
	m.clearedFields[user.FieldIdentityApprovedAt] = struct{}{}
}

// IdentityApprovedAtCleared returns if the "identity_approved_at" field was cleared in this mutation.
func (m *UserMutation) IdentityApprovedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldIdentityApprovedAt]
	return ok
}

// ResetIdentityApprovedAt resets all changes to the "identity_approved_at" field.
func (m *UserMutation) ResetIdentityApprovedAt() {
	m.identity_approved_at = nil
	delete(m.clearedFields, user.FieldIdentityApprovedAt)
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetPhoneVerified sets the "phone_verified" field.
func (m *UserMutation) SetPhoneVerified(b bool) {
	m.phone_verified = &b
}

// PhoneVerified returns the value of the "phone_verified" field in the mutation.
func (m *UserMutation) PhoneVerified() (r bool, exists bool) {
	v := m.phone_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneVerified returns the old "phone_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhoneVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneVerified: %w", err)
	}
	return oldValue.PhoneVerified, nil
}

// ResetPhoneVerified resets all changes to the "phone_verified" field.
func (m *UserMutation) ResetPhoneVerified() {
	m.phone_verified = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetMetadata sets the "metadata" field.
func (m *UserMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *UserMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *UserMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[user.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *UserMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[user.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *UserMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, user.FieldMetadata)
}

// SetSuspendedAt sets the "suspended_at" field.
func (m *UserMutation) SetSuspendedAt(t time.Time) {
	m.suspended_at = &t
}

// SuspendedAt returns the value of the "suspended_at" field in the mutation.
func (m *UserMutation) SuspendedAt() (r time.Time, exists bool) {
	v := m.suspended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendedAt returns the old "suspended_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSuspendedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendedAt: %w", err)
	}
	return oldValue.SuspendedAt, nil
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (m *UserMutation) ClearSuspendedAt() {
	m.suspended_at = nil
	m.clearedFields[user.FieldSuspendedAt] = struct{}{}
}

// SuspendedAtCleared returns if the "suspended_at" field was cleared in this mutation.
func (m *UserMutation) SuspendedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldSuspendedAt]
	return ok
}

// ResetSuspendedAt resets all changes to the "suspended_at" field.
func (m *UserMutation) ResetSuspendedAt() {
	m.suspended_at = nil
	delete(m.clearedFields, user.FieldSuspendedAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.national_code != nil {
		fields = append(fields, user.FieldNationalCode)
	}
	if m.national_code_hash != nil {
		fields = append(fields, user.FieldNationalCodeHash)
	}
	if m.identity_approved != nil {
		fields = append(fields, user.FieldIdentityApproved)
	}
	if m.identity_approved_at != nil {
		fields = append(fields, user.FieldIdentityApprovedAt)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.phone_verified != nil {
		fields = append(fields, user.FieldPhoneVerified)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.metadata != nil {
		fields = append(fields, user.FieldMetadata)
	}
	if m.suspended_at != nil {
		fields = append(fields, user.FieldSuspendedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldEmail:
		return m.Email()
	case user.FieldNationalCode:
		return m.NationalCode()
	case user.FieldNationalCodeHash:
		return m.NationalCodeHash()
	case user.FieldIdentityApproved:
		return m.IdentityApproved()
	case user.FieldIdentityApprovedAt:
		return m.IdentityApprovedAt()
	case user.FieldStatus:
		return m.Status()
	case user.FieldPhoneVerified:
		return m.PhoneVerified()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldMetadata:
		return m.Metadata()
	case user.FieldSuspendedAt:
		return m.SuspendedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldNationalCode:
		return m.OldNationalCode(ctx)
	case user.FieldNationalCodeHash:
		return m.OldNationalCodeHash(ctx)
	case user.FieldIdentityApproved:
		return m.OldIdentityApproved(ctx)
	case user.FieldIdentityApprovedAt:
		return m.OldIdentityApprovedAt(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldPhoneVerified:
		return m.OldPhoneVerified(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldMetadata:
		return m.OldMetadata(ctx)
	case user.FieldSuspendedAt:
		return m.OldSuspendedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldNationalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalCode(v)
		return nil
	case user.FieldNationalCodeHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalCodeHash(v)
		return nil
	case user.FieldIdentityApproved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentityApproved(v)
		return nil
	case user.FieldIdentityApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentityApprovedAt(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldPhoneVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneVerified(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case user.FieldSuspendedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldNationalCode) {
		fields = append(fields, user.FieldNationalCode)
	}
	if m.FieldCleared(user.FieldNationalCodeHash) {
		fields = append(fields, user.FieldNationalCodeHash)
	}
	if m.FieldCleared(user.FieldIdentityApprovedAt) {
		fields = append(fields, user.FieldIdentityApprovedAt)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldMetadata) {
		fields = append(fields, user.FieldMetadata)
	}
	if m.FieldCleared(user.FieldSuspendedAt) {
		fields = append(fields, user.FieldSuspendedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldNationalCode:
		m.ClearNationalCode()
		return nil
	case user.FieldNationalCodeHash:
		m.ClearNationalCodeHash()
		return nil
	case user.FieldIdentityApprovedAt:
		m.ClearIdentityApprovedAt()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldMetadata:
		m.ClearMetadata()
		return nil
	case user.FieldSuspendedAt:
		m.ClearSuspendedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldNationalCode:
		m.ResetNationalCode()
		return nil
	case user.FieldNationalCodeHash:
		m.ResetNationalCodeHash()
		return nil
	case user.FieldIdentityApproved:
		m.ResetIdentityApproved()
		return nil
	case user.FieldIdentityApprovedAt:
		m.ResetIdentityApprovedAt()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldPhoneVerified:
		m.ResetPhoneVerified()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldMetadata:
		m.ResetMetadata()
		return nil
	case user.FieldSuspendedAt:
		m.ResetSuspendedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	last_used_at       *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *UserSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[usersession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *UserSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, usersession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UserSessionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[usersession.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UserSessionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, usersession.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldLastUsedAt:
		return m.LastUsedAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldRefreshTokenHash) {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldLastUsedAt) {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case usersession.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession edge %s", name)
}
