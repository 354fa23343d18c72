// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
)

// Interpretation is the model entity for the Interpretation schema.
type Interpretation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → checkup_analyzes.id
	AnalyzeID uuid.UUID `json:"analyze_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Content holds the value of the "content" field.
	Content *string `json:"content,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InterpretationQuery when eager-loading is set.
	Edges        InterpretationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InterpretationEdges holds the relations/edges for other nodes in the graph.
type InterpretationEdges struct {
	// Analyze holds the value of the analyze edge.
	Analyze *CheckupAnalyze `json:"analyze,omitempty"`
	// Suggestions holds the value of the suggestions edge.
	Suggestions []*Suggestion `json:"suggestions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AnalyzeOrErr returns the Analyze value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InterpretationEdges) AnalyzeOrErr() (*CheckupAnalyze, error) {
	if e.Analyze != nil {
		return e.Analyze, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: checkupanalyze.Label}
	}
	return nil, &NotLoadedError{edge: "analyze"}
}

// SuggestionsOrErr returns the Suggestions value or an error if the edge
// was not loaded in eager-loading.
func (e InterpretationEdges) SuggestionsOrErr() ([]*Suggestion, error) {
	if e.loadedTypes[1] {
		return e.Suggestions, nil
	}
	return nil, &NotLoadedError{edge: "suggestions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interpretation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interpretation.FieldTitle, interpretation.FieldContent:
			values[i] = new(sql.NullString)
		case interpretation.FieldCreatedAt, interpretation.FieldUpdatedAt, interpretation.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case interpretation.FieldID, interpretation.FieldAnalyzeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interpretation fields.
func (_m *Interpretation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interpretation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case interpretation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case interpretation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case interpretation.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case interpretation.FieldAnalyzeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field analyze_id", values[i])
			} else if value != nil {
				_m.AnalyzeID = *value
			}
		case interpretation.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case interpretation.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = new(string)
				*_m.Content = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Interpretation.
// This includes values selected through modifiers, order, etc.
func (_m *Interpretation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalyze queries the "analyze" edge of the Interpretation entity.
func (_m *Interpretation) QueryAnalyze() *CheckupAnalyzeQuery {
	return NewInterpretationClient(_m.config).QueryAnalyze(_m)
}

// QuerySuggestions queries the "suggestions" edge of the Interpretation entity.
func (_m *Interpretation) QuerySuggestions() *SuggestionQuery {
	return NewInterpretationClient(_m.config).QuerySuggestions(_m)
}

// Update returns a builder for updating this Interpretation.
// Note that you need to call Interpretation.Unwrap() before calling this method if this Interpretation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interpretation) Update() *InterpretationUpdateOne {
	return NewInterpretationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interpretation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interpretation) Unwrap() *Interpretation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Interpretation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interpretation) String() string {
	var builder strings.Builder
	builder.WriteString("Interpretation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("analyze_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalyzeID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Interpretations is a parsable slice of Interpretation.
type Interpretations []*Interpretation
