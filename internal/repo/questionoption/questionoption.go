// Code generated by ent, DO NOT EDIT.

package questionoption

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the questionoption type in the database.
	Label = "question_option"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldInterpretation holds the string denoting the interpretation field in the database.
	FieldInterpretation = "interpretation"
	// FieldTutorial holds the string denoting the tutorial field in the database.
	FieldTutorial = "tutorial"
	// FieldAlertID holds the string denoting the alert_id field in the database.
	FieldAlertID = "alert_id"
	// FieldSuggestedDoctorID holds the string denoting the suggested_doctor_id field in the database.
	FieldSuggestedDoctorID = "suggested_doctor_id"
	// FieldSuggestedClinicID holds the string denoting the suggested_clinic_id field in the database.
	FieldSuggestedClinicID = "suggested_clinic_id"
	// FieldIsBranch holds the string denoting the is_branch field in the database.
	FieldIsBranch = "is_branch"
	// FieldChartX holds the string denoting the chart_x field in the database.
	FieldChartX = "chart_x"
	// FieldChartY holds the string denoting the chart_y field in the database.
	FieldChartY = "chart_y"
	// FieldChartConnectQuestionID holds the string denoting the chart_connect_question_id field in the database.
	FieldChartConnectQuestionID = "chart_connect_question_id"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// EdgeAlert holds the string denoting the alert edge name in mutations.
	EdgeAlert = "alert"
	// EdgeSuggestedDoctor holds the string denoting the suggested_doctor edge name in mutations.
	EdgeSuggestedDoctor = "suggested_doctor"
	// EdgeSuggestedClinic holds the string denoting the suggested_clinic edge name in mutations.
	EdgeSuggestedClinic = "suggested_clinic"
	// EdgeChartConnect holds the string denoting the chart_connect edge name in mutations.
	EdgeChartConnect = "chart_connect"
	// EdgeNumberRanges holds the string denoting the number_ranges edge name in mutations.
	EdgeNumberRanges = "number_ranges"
	// EdgeDateRanges holds the string denoting the date_ranges edge name in mutations.
	EdgeDateRanges = "date_ranges"
	// EdgeEquationRanges holds the string denoting the equation_ranges edge name in mutations.
	EdgeEquationRanges = "equation_ranges"
	// Table holds the table name of the questionoption in the database.
	Table = "question_options"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "question_options"
	// QuestionInverseTable is the table name for the QuestionShare entity.
	// It exists in this package in order to avoid circular dependency with the "questionshare" package.
	QuestionInverseTable = "question_shares"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "question_id"
	// AlertTable is the table that holds the alert relation/edge.
	AlertTable = "question_options"
	// AlertInverseTable is the table name for the Alert entity.
	// It exists in this package in order to avoid circular dependency with the "alert" package.
	AlertInverseTable = "alerts"
	// AlertColumn is the table column denoting the alert relation/edge.
	AlertColumn = "alert_id"
	// SuggestedDoctorTable is the table that holds the suggested_doctor relation/edge.
	SuggestedDoctorTable = "question_options"
	// SuggestedDoctorInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	SuggestedDoctorInverseTable = "doctors"
	// SuggestedDoctorColumn is the table column denoting the suggested_doctor relation/edge.
	SuggestedDoctorColumn = "suggested_doctor_id"
	// SuggestedClinicTable is the table that holds the suggested_clinic relation/edge.
	SuggestedClinicTable = "question_options"
	// SuggestedClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	SuggestedClinicInverseTable = "clinics"
	// SuggestedClinicColumn is the table column denoting the suggested_clinic relation/edge.
	SuggestedClinicColumn = "suggested_clinic_id"
	// ChartConnectTable is the table that holds the chart_connect relation/edge.
	ChartConnectTable = "question_options"
	// ChartConnectInverseTable is the table name for the QuestionShare entity.
	// It exists in this package in order to avoid circular dependency with the "questionshare" package.
	ChartConnectInverseTable = "question_shares"
	// ChartConnectColumn is the table column denoting the chart_connect relation/edge.
	ChartConnectColumn = "chart_connect_question_id"
	// NumberRangesTable is the table that holds the number_ranges relation/edge.
	NumberRangesTable = "question_option_numbers"
	// NumberRangesInverseTable is the table name for the QuestionOptionNumber entity.
	// It exists in this package in order to avoid circular dependency with the "questionoptionnumber" package.
	NumberRangesInverseTable = "question_option_numbers"
	// NumberRangesColumn is the table column denoting the number_ranges relation/edge.
	NumberRangesColumn = "option_id"
	// DateRangesTable is the table that holds the date_ranges relation/edge.
	DateRangesTable = "question_option_dates"
	// DateRangesInverseTable is the table name for the QuestionOptionDate entity.
	// It exists in this package in order to avoid circular dependency with the "questionoptiondate" package.
	DateRangesInverseTable = "question_option_dates"
	// DateRangesColumn is the table column denoting the date_ranges relation/edge.
	DateRangesColumn = "option_id"
	// EquationRangesTable is the table that holds the equation_ranges relation/edge.
	EquationRangesTable = "question_option_equations"
	// EquationRangesInverseTable is the table name for the QuestionOptionEquation entity.
	// It exists in this package in order to avoid circular dependency with the "questionoptionequation" package.
	EquationRangesInverseTable = "question_option_equations"
	// EquationRangesColumn is the table column denoting the equation_ranges relation/edge.
	EquationRangesColumn = "option_id"
)

// Columns holds all SQL columns for questionoption fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldQuestionID,
	FieldTitle,
	FieldWeight,
	FieldInterpretation,
	FieldTutorial,
	FieldAlertID,
	FieldSuggestedDoctorID,
	FieldSuggestedClinicID,
	FieldIsBranch,
	FieldChartX,
	FieldChartY,
	FieldChartConnectQuestionID,
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
	// DefaultWeight holds the default value on creation for the "weight" field.
	DefaultWeight int
	// DefaultIsBranch holds the default value on creation for the "is_branch" field.
	DefaultIsBranch bool
	// DefaultChartX holds the default value on creation for the "chart_x" field.
	DefaultChartX float64
	// DefaultChartY holds the default value on creation for the "chart_y" field.
	DefaultChartY float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the QuestionOption queries.
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

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByInterpretation orders the results by the interpretation field.
func ByInterpretation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterpretation, opts...).ToFunc()
}

// ByTutorial orders the results by the tutorial field.
func ByTutorial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTutorial, opts...).ToFunc()
}

// ByAlertID orders the results by the alert_id field.
func ByAlertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertID, opts...).ToFunc()
}

// BySuggestedDoctorID orders the results by the suggested_doctor_id field.
func BySuggestedDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedDoctorID, opts...).ToFunc()
}

// BySuggestedClinicID orders the results by the suggested_clinic_id field.
func BySuggestedClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedClinicID, opts...).ToFunc()
}

// ByIsBranch orders the results by the is_branch field.
func ByIsBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBranch, opts...).ToFunc()
}

// ByChartX orders the results by the chart_x field.
func ByChartX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartX, opts...).ToFunc()
}

// ByChartY orders the results by the chart_y field.
func ByChartY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartY, opts...).ToFunc()
}

// ByChartConnectQuestionID orders the results by the chart_connect_question_id field.
func ByChartConnectQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartConnectQuestionID, opts...).ToFunc()
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}

// ByAlertField orders the results by alert field.
func ByAlertField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertStep(), sql.OrderByField(field, opts...))
	}
}

// BySuggestedDoctorField orders the results by suggested_doctor field.
func BySuggestedDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuggestedDoctorStep(), sql.OrderByField(field, opts...))
	}
}

// BySuggestedClinicField orders the results by suggested_clinic field.
func BySuggestedClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSuggestedClinicStep(), sql.OrderByField(field, opts...))
	}
}

// ByChartConnectField orders the results by chart_connect field.
func ByChartConnectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChartConnectStep(), sql.OrderByField(field, opts...))
	}
}

// ByNumberRangesCount orders the results by number_ranges count.
func ByNumberRangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNumberRangesStep(), opts...)
	}
}

// ByNumberRanges orders the results by number_ranges terms.
func ByNumberRanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNumberRangesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDateRangesCount orders the results by date_ranges count.
func ByDateRangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDateRangesStep(), opts...)
	}
}

// ByDateRanges orders the results by date_ranges terms.
func ByDateRanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDateRangesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEquationRangesCount orders the results by equation_ranges count.
func ByEquationRangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEquationRangesStep(), opts...)
	}
}

// ByEquationRanges orders the results by equation_ranges terms.
func ByEquationRanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEquationRangesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
	)
}
func newAlertStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AlertTable, AlertColumn),
	)
}
func newSuggestedDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SuggestedDoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, SuggestedDoctorTable, SuggestedDoctorColumn),
	)
}
func newSuggestedClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SuggestedClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, SuggestedClinicTable, SuggestedClinicColumn),
	)
}
func newChartConnectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChartConnectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ChartConnectTable, ChartConnectColumn),
	)
}
func newNumberRangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NumberRangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NumberRangesTable, NumberRangesColumn),
	)
}
func newDateRangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DateRangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DateRangesTable, DateRangesColumn),
	)
}
func newEquationRangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EquationRangesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EquationRangesTable, EquationRangesColumn),
	)
}
