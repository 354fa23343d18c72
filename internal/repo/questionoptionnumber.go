// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
)

// QuestionOptionNumber is the model entity for the QuestionOptionNumber schema.
type QuestionOptionNumber struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// OptionID holds the value of the "option_id" field.
	OptionID uuid.UUID `json:"option_id,omitempty"`
	// LowerBand holds the value of the "lower_band" field.
	LowerBand float64 `json:"lower_band,omitempty"`
	// UpperBand holds the value of the "upper_band" field.
	UpperBand float64 `json:"upper_band,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionOptionNumberQuery when eager-loading is set.
	Edges        QuestionOptionNumberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionOptionNumberEdges holds the relations/edges for other nodes in the graph.
type QuestionOptionNumberEdges struct {
	// Option holds the value of the option edge.
	Option *QuestionOption `json:"option,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OptionOrErr returns the Option value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionOptionNumberEdges) OptionOrErr() (*QuestionOption, error) {
	if e.Option != nil {
		return e.Option, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionoption.Label}
	}
	return nil, &NotLoadedError{edge: "option"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionOptionNumber) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionoptionnumber.FieldLowerBand, questionoptionnumber.FieldUpperBand:
			values[i] = new(sql.NullFloat64)
		case questionoptionnumber.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case questionoptionnumber.FieldID, questionoptionnumber.FieldOptionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionOptionNumber fields.
func (_m *QuestionOptionNumber) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionoptionnumber.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case questionoptionnumber.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionoptionnumber.FieldOptionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field option_id", values[i])
			} else if value != nil {
				_m.OptionID = *value
			}
		case questionoptionnumber.FieldLowerBand:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lower_band", values[i])
			} else if value.Valid {
				_m.LowerBand = value.Float64
			}
		case questionoptionnumber.FieldUpperBand:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field upper_band", values[i])
			} else if value.Valid {
				_m.UpperBand = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionOptionNumber.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionOptionNumber) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOption queries the "option" edge of the QuestionOptionNumber entity.
func (_m *QuestionOptionNumber) QueryOption() *QuestionOptionQuery {
	return NewQuestionOptionNumberClient(_m.config).QueryOption(_m)
}

// Update returns a builder for updating this QuestionOptionNumber.
// Note that you need to call QuestionOptionNumber.Unwrap() before calling this method if this QuestionOptionNumber
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionOptionNumber) Update() *QuestionOptionNumberUpdateOne {
	return NewQuestionOptionNumberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionOptionNumber entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionOptionNumber) Unwrap() *QuestionOptionNumber {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: QuestionOptionNumber is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionOptionNumber) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionOptionNumber(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("option_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptionID))
	builder.WriteString(", ")
	builder.WriteString("lower_band=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowerBand))
	builder.WriteString(", ")
	builder.WriteString("upper_band=")
	builder.WriteString(fmt.Sprintf("%v", _m.UpperBand))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionOptionNumbers is a parsable slice of QuestionOptionNumber.
type QuestionOptionNumbers []*QuestionOptionNumber
