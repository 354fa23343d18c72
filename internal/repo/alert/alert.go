// Code generated by ent, DO NOT EDIT.

package alert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the alert type in the database.
	Label = "alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldReminderCount holds the string denoting the reminder_count field in the database.
	FieldReminderCount = "reminder_count"
	// FieldReminderUnit holds the string denoting the reminder_unit field in the database.
	FieldReminderUnit = "reminder_unit"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// Table holds the table name of the alert in the database.
	Table = "alerts"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "alerts"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
)

// Columns holds all SQL columns for alert fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldClinicID,
	FieldTitle,
	FieldDescription,
	FieldSeverity,
	FieldReminderCount,
	FieldReminderUnit,
	FieldChannel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultReminderCount holds the default value on creation for the "reminder_count" field.
	DefaultReminderCount int
	// ReminderCountValidator is a validator for the "reminder_count" field. It is called by the builders before save.
	ReminderCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Severity defines the type for the "severity" enum field.
type Severity string

// SeverityLow is the default value of the Severity enum.
const DefaultSeverity = SeverityLow

// Severity values.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for severity field: %q", s)
	}
}

// ReminderUnit defines the type for the "reminder_unit" enum field.
type ReminderUnit string

// ReminderUnitDay is the default value of the ReminderUnit enum.
const DefaultReminderUnit = ReminderUnitDay

// ReminderUnit values.
const (
	ReminderUnitDay   ReminderUnit = "day"
	ReminderUnitWeek  ReminderUnit = "week"
	ReminderUnitMonth ReminderUnit = "month"
	ReminderUnitYear  ReminderUnit = "year"
)

func (ru ReminderUnit) String() string {
	return string(ru)
}

// ReminderUnitValidator is a validator for the "reminder_unit" field enum values. It is called by the builders before save.
func ReminderUnitValidator(ru ReminderUnit) error {
	switch ru {
	case ReminderUnitDay, ReminderUnitWeek, ReminderUnitMonth, ReminderUnitYear:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for reminder_unit field: %q", ru)
	}
}

// Channel defines the type for the "channel" enum field.
type Channel string

// ChannelWeb is the default value of the Channel enum.
const DefaultChannel = ChannelWeb

// Channel values.
const (
	ChannelSms  Channel = "sms"
	ChannelWeb  Channel = "web"
	ChannelCall Channel = "call"
)

func (c Channel) String() string {
	return string(c)
}

// ChannelValidator is a validator for the "channel" field enum values. It is called by the builders before save.
func ChannelValidator(c Channel) error {
	switch c {
	case ChannelSms, ChannelWeb, ChannelCall:
		return nil
	default:
		return fmt.Errorf("alert: invalid enum value for channel field: %q", c)
	}
}

// OrderOption defines the ordering options for the Alert queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByReminderCount orders the results by the reminder_count field.
func ByReminderCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderCount, opts...).ToFunc()
}

// ByReminderUnit orders the results by the reminder_unit field.
func ByReminderUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderUnit, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
	)
}
