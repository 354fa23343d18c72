// Code generated by ent, DO NOT EDIT.

package questionshare

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the questionshare type in the database.
	Label = "question_share"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldExpertLevel holds the string denoting the expert_level field in the database.
	FieldExpertLevel = "expert_level"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDateType holds the string denoting the date_type field in the database.
	FieldDateType = "date_type"
	// FieldIsStarter holds the string denoting the is_starter field in the database.
	FieldIsStarter = "is_starter"
	// FieldIsEquation holds the string denoting the is_equation field in the database.
	FieldIsEquation = "is_equation"
	// FieldEquation holds the string denoting the equation field in the database.
	FieldEquation = "equation"
	// FieldChartVisible holds the string denoting the chart_visible field in the database.
	FieldChartVisible = "chart_visible"
	// FieldChartSrcX holds the string denoting the chart_src_x field in the database.
	FieldChartSrcX = "chart_src_x"
	// FieldChartSrcY holds the string denoting the chart_src_y field in the database.
	FieldChartSrcY = "chart_src_y"
	// FieldChartDesX holds the string denoting the chart_des_x field in the database.
	FieldChartDesX = "chart_des_x"
	// FieldChartDesY holds the string denoting the chart_des_y field in the database.
	FieldChartDesY = "chart_des_y"
	// FieldChartBranchCount holds the string denoting the chart_branch_count field in the database.
	FieldChartBranchCount = "chart_branch_count"
	// FieldChartConnectQuestionID holds the string denoting the chart_connect_question_id field in the database.
	FieldChartConnectQuestionID = "chart_connect_question_id"
	// EdgeDoctor holds the string denoting the doctor edge name in mutations.
	EdgeDoctor = "doctor"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// EdgeOptions holds the string denoting the options edge name in mutations.
	EdgeOptions = "options"
	// EdgeOrgans holds the string denoting the organs edge name in mutations.
	EdgeOrgans = "organs"
	// EdgeChartConnect holds the string denoting the chart_connect edge name in mutations.
	EdgeChartConnect = "chart_connect"
	// Table holds the table name of the questionshare in the database.
	Table = "question_shares"
	// DoctorTable is the table that holds the doctor relation/edge.
	DoctorTable = "question_shares"
	// DoctorInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	DoctorInverseTable = "doctors"
	// DoctorColumn is the table column denoting the doctor relation/edge.
	DoctorColumn = "doctor_id"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "question_shares"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
	// OptionsTable is the table that holds the options relation/edge.
	OptionsTable = "question_options"
	// OptionsInverseTable is the table name for the QuestionOption entity.
	// It exists in this package in order to avoid circular dependency with the "questionoption" package.
	OptionsInverseTable = "question_options"
	// OptionsColumn is the table column denoting the options relation/edge.
	OptionsColumn = "question_id"
	// OrgansTable is the table that holds the organs relation/edge. The primary key declared below.
	OrgansTable = "question_share_organs"
	// OrgansInverseTable is the table name for the Organ entity.
	// It exists in this package in order to avoid circular dependency with the "organ" package.
	OrgansInverseTable = "organs"
	// ChartConnectTable is the table that holds the chart_connect relation/edge.
	ChartConnectTable = "question_shares"
	// ChartConnectColumn is the table column denoting the chart_connect relation/edge.
	ChartConnectColumn = "chart_connect_question_id"
)

// Columns holds all SQL columns for questionshare fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldDoctorID,
	FieldClinicID,
	FieldTitle,
	FieldPrompt,
	FieldQuestionType,
	FieldExpertLevel,
	FieldPriority,
	FieldDateType,
	FieldIsStarter,
	FieldIsEquation,
	FieldEquation,
	FieldChartVisible,
	FieldChartSrcX,
	FieldChartSrcY,
	FieldChartDesX,
	FieldChartDesY,
	FieldChartBranchCount,
	FieldChartConnectQuestionID,
}

var (
	// OrgansPrimaryKey and OrgansColumn2 are the table columns denoting the
	// primary key for the organs relation (M2M).
	OrgansPrimaryKey = []string{"question_share_id", "organ_id"}
)

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
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// DefaultIsStarter holds the default value on creation for the "is_starter" field.
	DefaultIsStarter bool
	// DefaultIsEquation holds the default value on creation for the "is_equation" field.
	DefaultIsEquation bool
	// DefaultChartVisible holds the default value on creation for the "chart_visible" field.
	DefaultChartVisible bool
	// DefaultChartSrcX holds the default value on creation for the "chart_src_x" field.
	DefaultChartSrcX float64
	// DefaultChartSrcY holds the default value on creation for the "chart_src_y" field.
	DefaultChartSrcY float64
	// DefaultChartDesX holds the default value on creation for the "chart_des_x" field.
	DefaultChartDesX float64
	// DefaultChartDesY holds the default value on creation for the "chart_des_y" field.
	DefaultChartDesY float64
	// DefaultChartBranchCount holds the default value on creation for the "chart_branch_count" field.
	DefaultChartBranchCount int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// QuestionType defines the type for the "question_type" enum field.
type QuestionType string

// QuestionTypeMultipleChoice is the default value of the QuestionType enum.
const DefaultQuestionType = QuestionTypeMultipleChoice

// QuestionType values.
const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeMultipleDate   QuestionType = "multiple_date"
	QuestionTypeNumber         QuestionType = "number"
	QuestionTypeDate           QuestionType = "date"
	QuestionTypeChart          QuestionType = "chart"
	QuestionTypeWeight         QuestionType = "weight"
	QuestionTypePicture        QuestionType = "picture"
	QuestionTypePlaceholder    QuestionType = "placeholder"
)

func (qt QuestionType) String() string {
	return string(qt)
}

// QuestionTypeValidator is a validator for the "question_type" field enum values. It is called by the builders before save.
func QuestionTypeValidator(qt QuestionType) error {
	switch qt {
	case QuestionTypeMultipleChoice, QuestionTypeMultipleDate, QuestionTypeNumber, QuestionTypeDate, QuestionTypeChart, QuestionTypeWeight, QuestionTypePicture, QuestionTypePlaceholder:
		return nil
	default:
		return fmt.Errorf("questionshare: invalid enum value for question_type field: %q", qt)
	}
}

// ExpertLevel defines the type for the "expert_level" enum field.
type ExpertLevel string

// ExpertLevelPublic is the default value of the ExpertLevel enum.
const DefaultExpertLevel = ExpertLevelPublic

// ExpertLevel values.
const (
	ExpertLevelPublic ExpertLevel = "public"
	ExpertLevelExpert ExpertLevel = "expert"
)

func (el ExpertLevel) String() string {
	return string(el)
}

// ExpertLevelValidator is a validator for the "expert_level" field enum values. It is called by the builders before save.
func ExpertLevelValidator(el ExpertLevel) error {
	switch el {
	case ExpertLevelPublic, ExpertLevelExpert:
		return nil
	default:
		return fmt.Errorf("questionshare: invalid enum value for expert_level field: %q", el)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityNormal is the default value of the Priority enum.
const DefaultPriority = PriorityNormal

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("questionshare: invalid enum value for priority field: %q", pr)
	}
}

// DateType defines the type for the "date_type" enum field.
type DateType string

// DateTypeExact is the default value of the DateType enum.
const DefaultDateType = DateTypeExact

// DateType values.
const (
	DateTypeExact       DateType = "exact"
	DateTypeApproximate DateType = "approximate"
)

func (dt DateType) String() string {
	return string(dt)
}

// DateTypeValidator is a validator for the "date_type" field enum values. It is called by the builders before save.
func DateTypeValidator(dt DateType) error {
	switch dt {
	case DateTypeExact, DateTypeApproximate:
		return nil
	default:
		return fmt.Errorf("questionshare: invalid enum value for date_type field: %q", dt)
	}
}

// OrderOption defines the ordering options for the QuestionShare queries.
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

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByExpertLevel orders the results by the expert_level field.
func ByExpertLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpertLevel, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDateType orders the results by the date_type field.
func ByDateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateType, opts...).ToFunc()
}

// ByIsStarter orders the results by the is_starter field.
func ByIsStarter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsStarter, opts...).ToFunc()
}

// ByIsEquation orders the results by the is_equation field.
func ByIsEquation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEquation, opts...).ToFunc()
}

// ByEquation orders the results by the equation field.
func ByEquation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEquation, opts...).ToFunc()
}

// ByChartVisible orders the results by the chart_visible field.
func ByChartVisible(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartVisible, opts...).ToFunc()
}

// ByChartSrcX orders the results by the chart_src_x field.
func ByChartSrcX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartSrcX, opts...).ToFunc()
}

// ByChartSrcY orders the results by the chart_src_y field.
func ByChartSrcY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartSrcY, opts...).ToFunc()
}

// ByChartDesX orders the results by the chart_des_x field.
func ByChartDesX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartDesX, opts...).ToFunc()
}

// ByChartDesY orders the results by the chart_des_y field.
func ByChartDesY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartDesY, opts...).ToFunc()
}

// ByChartBranchCount orders the results by the chart_branch_count field.
func ByChartBranchCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartBranchCount, opts...).ToFunc()
}

// ByChartConnectQuestionID orders the results by the chart_connect_question_id field.
func ByChartConnectQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChartConnectQuestionID, opts...).ToFunc()
}

// ByDoctorField orders the results by doctor field.
func ByDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDoctorStep(), sql.OrderByField(field, opts...))
	}
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}

// ByOptionsCount orders the results by options count.
func ByOptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOptionsStep(), opts...)
	}
}

// ByOptions orders the results by options terms.
func ByOptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOrgansCount orders the results by organs count.
func ByOrgansCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOrgansStep(), opts...)
	}
}

// ByOrgans orders the results by organs terms.
func ByOrgans(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrgansStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChartConnectField orders the results by chart_connect field.
func ByChartConnectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChartConnectStep(), sql.OrderByField(field, opts...))
	}
}
func newDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DoctorTable, DoctorColumn),
	)
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ClinicTable, ClinicColumn),
	)
}
func newOptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OptionsTable, OptionsColumn),
	)
}
func newOrgansStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrgansInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, OrgansTable, OrgansPrimaryKey...),
	)
}
func newChartConnectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ChartConnectTable, ChartConnectColumn),
	)
}
