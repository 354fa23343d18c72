// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionAnswer is the model entity for the QuestionAnswer schema.
type QuestionAnswer struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CheckupID holds the value of the "checkup_id" field.
	CheckupID uuid.UUID `json:"checkup_id,omitempty"`
	// QuestionShareID holds the value of the "question_share_id" field.
	QuestionShareID uuid.UUID `json:"question_share_id,omitempty"`
	// QuestionOptionID holds the value of the "question_option_id" field.
	QuestionOptionID uuid.UUID `json:"question_option_id,omitempty"`
	// Free-form value for number/date/weight answers
	RawValue *string `json:"raw_value,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionAnswerQuery when eager-loading is set.
	Edges        QuestionAnswerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionAnswerEdges holds the relations/edges for other nodes in the graph.
type QuestionAnswerEdges struct {
	// Checkup holds the value of the checkup edge.
	Checkup *Checkup `json:"checkup,omitempty"`
	// Question holds the value of the question edge.
	Question *QuestionShare `json:"question,omitempty"`
	// Option holds the value of the option edge.
	Option *QuestionOption `json:"option,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CheckupOrErr returns the Checkup value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionAnswerEdges) CheckupOrErr() (*Checkup, error) {
	if e.Checkup != nil {
		return e.Checkup, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: checkup.Label}
	}
	return nil, &NotLoadedError{edge: "checkup"}
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionAnswerEdges) QuestionOrErr() (*QuestionShare, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: questionshare.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// OptionOrErr returns the Option value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionAnswerEdges) OptionOrErr() (*QuestionOption, error) {
	if e.Option != nil {
		return e.Option, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: questionoption.Label}
	}
	return nil, &NotLoadedError{edge: "option"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionAnswer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionanswer.FieldRawValue:
			values[i] = new(sql.NullString)
		case questionanswer.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case questionanswer.FieldID, questionanswer.FieldCheckupID, questionanswer.FieldQuestionShareID, questionanswer.FieldQuestionOptionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionAnswer fields.
func (_m *QuestionAnswer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionanswer.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case questionanswer.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionanswer.FieldCheckupID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field checkup_id", values[i])
			} else if value != nil {
				_m.CheckupID = *value
			}
		case questionanswer.FieldQuestionShareID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field question_share_id", values[i])
			} else if value != nil {
				_m.QuestionShareID = *value
			}
		case questionanswer.FieldQuestionOptionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field question_option_id", values[i])
			} else if value != nil {
				_m.QuestionOptionID = *value
			}
		case questionanswer.FieldRawValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_value", values[i])
			} else if value.Valid {
				_m.RawValue = new(string)
				*_m.RawValue = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionAnswer.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionAnswer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCheckup queries the "checkup" edge of the QuestionAnswer entity.
func (_m *QuestionAnswer) QueryCheckup() *CheckupQuery {
	return NewQuestionAnswerClient(_m.config).QueryCheckup(_m)
}

// QueryQuestion queries the "question" edge of the QuestionAnswer entity.
func (_m *QuestionAnswer) QueryQuestion() *QuestionShareQuery {
	return NewQuestionAnswerClient(_m.config).QueryQuestion(_m)
}

// QueryOption queries the "option" edge of the QuestionAnswer entity.
func (_m *QuestionAnswer) QueryOption() *QuestionOptionQuery {
	return NewQuestionAnswerClient(_m.config).QueryOption(_m)
}

// Update returns a builder for updating this QuestionAnswer.
// Note that you need to call QuestionAnswer.Unwrap() before calling this method if this QuestionAnswer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionAnswer) Update() *QuestionAnswerUpdateOne {
	return NewQuestionAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionAnswer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionAnswer) Unwrap() *QuestionAnswer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: QuestionAnswer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionAnswer) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionAnswer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("checkup_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CheckupID))
	builder.WriteString(", ")
	builder.WriteString("question_share_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionShareID))
	builder.WriteString(", ")
	builder.WriteString("question_option_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionOptionID))
	builder.WriteString(", ")
	if v := _m.RawValue; v != nil {
		builder.WriteString("raw_value=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuestionAnswers is a parsable slice of QuestionAnswer.
type QuestionAnswers []*QuestionAnswer
