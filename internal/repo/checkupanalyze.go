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
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
)

// CheckupAnalyze is the model entity for the CheckupAnalyze schema.
type CheckupAnalyze struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → clinic_checkups.id
	ClinicCheckupID uuid.UUID `json:"clinic_checkup_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckupAnalyzeQuery when eager-loading is set.
	Edges        CheckupAnalyzeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckupAnalyzeEdges holds the relations/edges for other nodes in the graph.
type CheckupAnalyzeEdges struct {
	// Template holds the value of the template edge.
	Template *ClinicCheckup `json:"template,omitempty"`
	// Interpretations holds the value of the interpretations edge.
	Interpretations []*Interpretation `json:"interpretations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckupAnalyzeEdges) TemplateOrErr() (*ClinicCheckup, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cliniccheckup.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// InterpretationsOrErr returns the Interpretations value or an error if the edge
// was not loaded in eager-loading.
func (e CheckupAnalyzeEdges) InterpretationsOrErr() ([]*Interpretation, error) {
	if e.loadedTypes[1] {
		return e.Interpretations, nil
	}
	return nil, &NotLoadedError{edge: "interpretations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckupAnalyze) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkupanalyze.FieldTitle, checkupanalyze.FieldDescription:
			values[i] = new(sql.NullString)
		case checkupanalyze.FieldCreatedAt, checkupanalyze.FieldUpdatedAt, checkupanalyze.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case checkupanalyze.FieldID, checkupanalyze.FieldClinicCheckupID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckupAnalyze fields.
func (_m *CheckupAnalyze) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkupanalyze.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case checkupanalyze.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case checkupanalyze.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case checkupanalyze.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case checkupanalyze.FieldClinicCheckupID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_checkup_id", values[i])
			} else if value != nil {
				_m.ClinicCheckupID = *value
			}
		case checkupanalyze.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case checkupanalyze.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckupAnalyze.
// This includes values selected through modifiers, order, etc.
func (_m *CheckupAnalyze) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTemplate queries the "template" edge of the CheckupAnalyze entity.
func (_m *CheckupAnalyze) QueryTemplate() *ClinicCheckupQuery {
	return NewCheckupAnalyzeClient(_m.config).QueryTemplate(_m)
}

// QueryInterpretations queries the "interpretations" edge of the CheckupAnalyze entity.
func (_m *CheckupAnalyze) QueryInterpretations() *InterpretationQuery {
	return NewCheckupAnalyzeClient(_m.config).QueryInterpretations(_m)
}

// Update returns a builder for updating this CheckupAnalyze.
// Note that you need to call CheckupAnalyze.Unwrap() before calling this method if this CheckupAnalyze
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckupAnalyze) Update() *CheckupAnalyzeUpdateOne {
	return NewCheckupAnalyzeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckupAnalyze entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckupAnalyze) Unwrap() *CheckupAnalyze {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CheckupAnalyze is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckupAnalyze) String() string {
	var builder strings.Builder
	builder.WriteString("CheckupAnalyze(")
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
	builder.WriteString("clinic_checkup_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicCheckupID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CheckupAnalyzes is a parsable slice of CheckupAnalyze.
type CheckupAnalyzes []*CheckupAnalyze
