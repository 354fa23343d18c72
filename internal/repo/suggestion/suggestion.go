// Code generated by ent, DO NOT EDIT.

package suggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the suggestion type in the database.
	Label = "suggestion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldInterpretationID holds the string denoting the interpretation_id field in the database.
	FieldInterpretationID = "interpretation_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldRealDoctorID holds the string denoting the real_doctor_id field in the database.
	FieldRealDoctorID = "real_doctor_id"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldRealClinicID holds the string denoting the real_clinic_id field in the database.
	FieldRealClinicID = "real_clinic_id"
	// FieldClinicMediaID holds the string denoting the clinic_media_id field in the database.
	FieldClinicMediaID = "clinic_media_id"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// EdgeInterpretation holds the string denoting the interpretation edge name in mutations.
	EdgeInterpretation = "interpretation"
	// EdgeDoctor holds the string denoting the doctor edge name in mutations.
	EdgeDoctor = "doctor"
	// EdgeRealDoctor holds the string denoting the real_doctor edge name in mutations.
	EdgeRealDoctor = "real_doctor"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// EdgeRealClinic holds the string denoting the real_clinic edge name in mutations.
	EdgeRealClinic = "real_clinic"
	// EdgeClinicMedia holds the string denoting the clinic_media edge name in mutations.
	EdgeClinicMedia = "clinic_media"
	// Table holds the table name of the suggestion in the database.
	Table = "suggestions"
	// InterpretationTable is the table that holds the interpretation relation/edge.
	InterpretationTable = "suggestions"
	// InterpretationInverseTable is the table name for the Interpretation entity.
	// It exists in this package in order to avoid circular dependency with the "interpretation" package.
	InterpretationInverseTable = "interpretations"
	// InterpretationColumn is the table column denoting the interpretation relation/edge.
	InterpretationColumn = "interpretation_id"
	// DoctorTable is the table that holds the doctor relation/edge.
	DoctorTable = "suggestions"
	// DoctorInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	DoctorInverseTable = "doctors"
	// DoctorColumn is the table column denoting the doctor relation/edge.
	DoctorColumn = "doctor_id"
	// RealDoctorTable is the table that holds the real_doctor relation/edge.
	RealDoctorTable = "suggestions"
	// RealDoctorInverseTable is the table name for the RealDoctor entity.
	// It exists in this package in order to avoid circular dependency with the "realdoctor" package.
	RealDoctorInverseTable = "real_doctors"
	// RealDoctorColumn is the table column denoting the real_doctor relation/edge.
	RealDoctorColumn = "real_doctor_id"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "suggestions"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
	// RealClinicTable is the table that holds the real_clinic relation/edge.
	RealClinicTable = "suggestions"
	// RealClinicInverseTable is the table name for the RealClinic entity.
	// It exists in this package in order to avoid circular dependency with the "realclinic" package.
	RealClinicInverseTable = "real_clinics"
	// RealClinicColumn is the table column denoting the real_clinic relation/edge.
	RealClinicColumn = "real_clinic_id"
	// ClinicMediaTable is the table that holds the clinic_media relation/edge.
	ClinicMediaTable = "suggestions"
	// ClinicMediaInverseTable is the table name for the ClinicMedia entity.
	// It exists in this package in order to avoid circular dependency with the "clinicmedia" package.
	ClinicMediaInverseTable = "clinic_media"
	// ClinicMediaColumn is the table column denoting the clinic_media relation/edge.
	ClinicMediaColumn = "clinic_media_id"
)

// Columns holds all SQL columns for suggestion fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldInterpretationID,
	FieldDoctorID,
	FieldRealDoctorID,
	FieldClinicID,
	FieldRealClinicID,
	FieldClinicMediaID,
	FieldNote,
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

// OrderOption defines the ordering options for the Suggestion queries.
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

// ByInterpretationID orders the results by the interpretation_id field.
func ByInterpretationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterpretationID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByRealDoctorID orders the results by the real_doctor_id field.
func ByRealDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealDoctorID, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByRealClinicID orders the results by the real_clinic_id field.
func ByRealClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRealClinicID, opts...).ToFunc()
}

// ByClinicMediaID orders the results by the clinic_media_id field.
func ByClinicMediaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicMediaID, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByInterpretationField orders the results by interpretation field.
func ByInterpretationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInterpretationStep(), sql.OrderByField(field, opts...))
	}
}

// ByDoctorField orders the results by doctor field.
func ByDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoctorStep(), sql.OrderByField(field, opts...))
	}
}

// ByRealDoctorField orders the results by real_doctor field.
func ByRealDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRealDoctorStep(), sql.OrderByField(field, opts...))
	}
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}

// ByRealClinicField orders the results by real_clinic field.
func ByRealClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRealClinicStep(), sql.OrderByField(field, opts...))
	}
}

// ByClinicMediaField orders the results by clinic_media field.
func ByClinicMediaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicMediaStep(), sql.OrderByField(field, opts...))
	}
}
func newInterpretationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InterpretationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InterpretationTable, InterpretationColumn),
	)
}
func newDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
	)
}
func newRealDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RealDoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, RealDoctorTable, RealDoctorColumn),
	)
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ClinicTable, ClinicColumn),
	)
}
func newRealClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RealClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, RealClinicTable, RealClinicColumn),
	)
}
func newClinicMediaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicMediaInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ClinicMediaTable, ClinicMediaColumn),
	)
}
