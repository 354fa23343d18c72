// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/organ"
)

// Organ is the model entity for the Organ schema.
type Organ struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrganQuery when eager-loading is set.
	Edges        OrganEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrganEdges holds the relations/edges for other nodes in the graph.
type OrganEdges struct {
	// Parent holds the value of the parent edge.
	Parent *Organ `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Organ `json:"children,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*QuestionShare `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrganEdges) ParentOrErr() (*Organ, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organ.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e OrganEdges) ChildrenOrErr() ([]*Organ, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e OrganEdges) QuestionsOrErr() ([]*QuestionShare, error) {
	if e.loadedTypes[2] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Organ) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case organ.FieldParentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case organ.FieldName:
			values[i] = new(sql.NullString)
		case organ.FieldCreatedAt, organ.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case organ.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Organ fields.
func (_m *Organ) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case organ.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case organ.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case organ.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case organ.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case organ.FieldParentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(uuid.UUID)
				*_m.ParentID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Organ.
// This includes values selected through modifiers, order, etc.
func (_m *Organ) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the Organ entity.
func (_m *Organ) QueryParent() *OrganQuery {
	return NewOrganClient(_m.config).QueryParent(_m)
}

// QueryChildren queries the "children" edge of the Organ entity.
func (_m *Organ) QueryChildren() *OrganQuery {
	return NewOrganClient(_m.config).QueryChildren(_m)
}

// QueryQuestions queries the "questions" edge of the Organ entity.
func (_m *Organ) QueryQuestions() *QuestionShareQuery {
	return NewOrganClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this Organ.
// Note that you need to call Organ.Unwrap() before calling this method if this Organ
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Organ) Update() *OrganUpdateOne {
	return NewOrganClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Organ entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Organ) Unwrap() *Organ {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Organ is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Organ) String() string {
	var builder strings.Builder
	builder.WriteString("Organ(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Organs is a parsable slice of Organ.
type Organs []*Organ
