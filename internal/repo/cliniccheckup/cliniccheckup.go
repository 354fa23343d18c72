// Code generated by ent, DO NOT EDIT.

package cliniccheckup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the cliniccheckup type in the database.
	Label = "clinic_checkup"
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
	// FieldRequiredTimeMinutes holds the string denoting the required_time_minutes field in the database.
	FieldRequiredTimeMinutes = "required_time_minutes"
	// FieldRequiredAuth holds the string denoting the required_auth field in the database.
	FieldRequiredAuth = "required_auth"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldApprovers holds the string denoting the approvers field in the database.
	FieldApprovers = "approvers"
	// FieldStartingQuestionID holds the string denoting the starting_question_id field in the database.
	FieldStartingQuestionID = "starting_question_id"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// EdgeStartingQuestion holds the string denoting the starting_question edge name in mutations.
	EdgeStartingQuestion = "starting_question"
	// EdgeAnalyzes holds the string denoting the analyzes edge name in mutations.
	EdgeAnalyzes = "analyzes"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// Table holds the table name of the cliniccheckup in the database.
	Table = "clinic_checkups"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "clinic_checkups"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
	// StartingQuestionTable is the table that holds the starting_question relation/edge.
	StartingQuestionTable = "clinic_checkups"
	// StartingQuestionInverseTable is the table name for the QuestionShare entity.
	// It exists in this package in order to avoid circular dependency with the "questionshare" package.
	StartingQuestionInverseTable = "question_shares"
	// StartingQuestionColumn is the table column denoting the starting_question relation/edge.
	StartingQuestionColumn = "starting_question_id"
	// AnalyzesTable is the table that holds the analyzes relation/edge.
	AnalyzesTable = "checkup_analyzes"
	// AnalyzesInverseTable is the table name for the CheckupAnalyze entity.
	// It exists in this package in order to avoid circular dependency with the "checkupanalyze" package.
	AnalyzesInverseTable = "checkup_analyzes"
	// AnalyzesColumn is the table column denoting the analyzes relation/edge.
	AnalyzesColumn = "clinic_checkup_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "checkups"
	// SessionsInverseTable is the table name for the Checkup entity.
	// It exists in this package in order to avoid circular dependency with the "checkup" package.
	SessionsInverseTable = "checkups"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "clinic_checkup_id"
)

// Columns holds all SQL columns for cliniccheckup fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldClinicID,
	FieldTitle,
	FieldDescription,
	FieldRequiredTimeMinutes,
	FieldRequiredAuth,
	FieldQuestionCount,
	FieldApprovers,
	FieldStartingQuestionID,
	FieldIsActive,
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
	// DefaultRequiredTimeMinutes holds the default value on creation for the "required_time_minutes" field.
	DefaultRequiredTimeMinutes int
	// RequiredTimeMinutesValidator is a validator for the "required_time_minutes" field. It is called by the builders before save.
	RequiredTimeMinutesValidator func(int) error
	// DefaultRequiredAuth holds the default value on creation for the "required_auth" field.
	DefaultRequiredAuth bool
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
	// QuestionCountValidator is a validator for the "question_count" field. It is called by the builders before save.
	QuestionCountValidator func(int) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ClinicCheckup queries.
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

// ByRequiredTimeMinutes orders the results by the required_time_minutes field.
func ByRequiredTimeMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredTimeMinutes, opts...).ToFunc()
}

// ByRequiredAuth orders the results by the required_auth field.
func ByRequiredAuth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredAuth, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByApprovers orders the results by the approvers field.
func ByApprovers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovers, opts...).ToFunc()
}

// ByStartingQuestionID orders the results by the starting_question_id field.
func ByStartingQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartingQuestionID, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}

// ByStartingQuestionField orders the results by starting_question field.
func ByStartingQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStartingQuestionStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnalyzesCount orders the results by analyzes count.
func ByAnalyzesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalyzesStep(), opts...)
	}
}

// ByAnalyzes orders the results by analyzes terms.
func ByAnalyzes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalyzesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
	)
}
func newStartingQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StartingQuestionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, StartingQuestionTable, StartingQuestionColumn),
	)
}
func newAnalyzesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalyzesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalyzesTable, AnalyzesColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
