// Code generated by ent, DO NOT EDIT.

package questionoptiondate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the questionoptiondate type in the database.
	Label = "question_option_date"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldOptionID holds the string denoting the option_id field in the database.
	FieldOptionID = "option_id"
	// FieldLowerBand holds the string denoting the lower_band field in the database.
	FieldLowerBand = "lower_band"
	// FieldUpperBand holds the string denoting the upper_band field in the database.
	FieldUpperBand = "upper_band"
	// EdgeOption holds the string denoting the option edge name in mutations.
	EdgeOption = "option"
	// Table holds the table name of the questionoptiondate in the database.
	Table = "question_option_dates"
	// OptionTable is the table that holds the option relation/edge.
	OptionTable = "question_option_dates"
	// OptionInverseTable is the table name for the QuestionOption entity.
	// It exists in this package in order to avoid circular dependency with the "questionoption" package.
	OptionInverseTable = "question_options"
	// OptionColumn is the table column denoting the option relation/edge.
	OptionColumn = "option_id"
)

// Columns holds all SQL columns for questionoptiondate fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldOptionID,
	FieldLowerBand,
	FieldUpperBand,
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

// OrderOption defines the ordering options for the QuestionOptionDate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOptionID orders the results by the option_id field.
func ByOptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptionID, opts...).ToFunc()
}

// ByLowerBand orders the results by the lower_band field.
func ByLowerBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowerBand, opts...).ToFunc()
}

// ByUpperBand orders the results by the upper_band field.
func ByUpperBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpperBand, opts...).ToFunc()
}

// ByOptionField orders the results by option field.
func ByOptionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOptionStep(), sql.OrderByField(field, opts...))
	}
}
func newOptionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OptionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OptionTable, OptionColumn),
	)
}
