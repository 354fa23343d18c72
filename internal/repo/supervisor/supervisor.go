// Code generated by ent, DO NOT EDIT.

package supervisor

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the supervisor type in the database.
	Label = "supervisor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPatientProfileID holds the string denoting the patient_profile_id field in the database.
	FieldPatientProfileID = "patient_profile_id"
	// FieldRelativeType holds the string denoting the relative_type field in the database.
	FieldRelativeType = "relative_type"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// Table holds the table name of the supervisor in the database.
	Table = "supervisors"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "supervisors"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "supervisors"
	// PatientInverseTable is the table name for the PatientProfile entity.
	// It exists in this package in order to avoid circular dependency with the "patientprofile" package.
	PatientInverseTable = "patient_profiles"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_profile_id"
)

// Columns holds all SQL columns for supervisor fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldPatientProfileID,
	FieldRelativeType,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// RelativeType defines the type for the "relative_type" enum field.
type RelativeType string

// RelativeTypeOther is the default value of the RelativeType enum.
const DefaultRelativeType = RelativeTypeOther

// RelativeType values.
const (
	RelativeTypeParent  RelativeType = "parent"
	RelativeTypeChild   RelativeType = "child"
	RelativeTypeSpouse  RelativeType = "spouse"
	RelativeTypeSibling RelativeType = "sibling"
	RelativeTypeOther   RelativeType = "other"
)

func (rt RelativeType) String() string {
	return string(rt)
}

// RelativeTypeValidator is a validator for the "relative_type" field enum values. It is called by the builders before save.
func RelativeTypeValidator(rt RelativeType) error {
	switch rt {
	case RelativeTypeParent, RelativeTypeChild, RelativeTypeSpouse, RelativeTypeSibling, RelativeTypeOther:
		return nil
	default:
		return fmt.Errorf("supervisor: invalid enum value for relative_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the Supervisor queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPatientProfileID orders the results by the patient_profile_id field.
func ByPatientProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientProfileID, opts...).ToFunc()
}

// ByRelativeType orders the results by the relative_type field.
func ByRelativeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelativeType, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
	)
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
