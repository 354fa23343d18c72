// Code generated by ent, DO NOT EDIT.

package questionanswer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the questionanswer type in the database.
	Label = "question_answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCheckupID holds the string denoting the checkup_id field in the database.
	FieldCheckupID = "checkup_id"
	// FieldQuestionShareID holds the string denoting the question_share_id field in the database.
	FieldQuestionShareID = "question_share_id"
	// FieldQuestionOptionID holds the string denoting the question_option_id field in the database.
	FieldQuestionOptionID = "question_option_id"
	// FieldRawValue holds the string denoting the raw_value field in the database.
	FieldRawValue = "raw_value"
	// EdgeCheckup holds the string denoting the checkup edge name in mutations.
	EdgeCheckup = "checkup"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// EdgeOption holds the string denoting the option edge name in mutations.
	EdgeOption = "option"
	// Table holds the table name of the questionanswer in the database.
	Table = "question_answers"
	// CheckupTable is the table that holds the checkup relation/edge.
	CheckupTable = "question_answers"
	// CheckupInverseTable is the table name for the Checkup entity.
	// It exists in this package in order to avoid circular dependency with the "checkup" package.
	CheckupInverseTable = "checkups"
	// CheckupColumn is the table column denoting the checkup relation/edge.
	CheckupColumn = "checkup_id"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "question_answers"
	// QuestionInverseTable is the table name for the QuestionShare entity.
	// It exists in this package in order to avoid circular dependency with the "questionshare" package.
	QuestionInverseTable = "question_shares"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "question_share_id"
	// OptionTable is the table that holds the option relation/edge.
	OptionTable = "question_answers"
	// OptionInverseTable is the table name for the QuestionOption entity.
	// It exists in this package in order to avoid circular dependency with the "questionoption" package.
	OptionInverseTable = "question_options"
	// OptionColumn is the table column denoting the option relation/edge.
	OptionColumn = "question_option_id"
)

// Columns holds all SQL columns for questionanswer fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldCheckupID,
	FieldQuestionShareID,
	FieldQuestionOptionID,
	FieldRawValue,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the QuestionAnswer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCheckupID orders the results by the checkup_id field.
func ByCheckupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckupID, opts...).ToFunc()
}

// ByQuestionShareID orders the results by the question_share_id field.
func ByQuestionShareID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionShareID, opts...).ToFunc()
}

// ByQuestionOptionID orders the results by the question_option_id field.
func ByQuestionOptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionOptionID, opts...).ToFunc()
}

// ByRawValue orders the results by the raw_value field.
func ByRawValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawValue, opts...).ToFunc()
}

// ByCheckupField orders the results by checkup field.
func ByCheckupField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckupStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}

// ByOptionField orders the results by option field.
func ByOptionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOptionStep(), sql.OrderByField(field, opts...))
	}
}
func newCheckupStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckupInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CheckupTable, CheckupColumn),
	)
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, QuestionTable, QuestionColumn),
	)
}
func newOptionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OptionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, OptionTable, OptionColumn),
	)
}
