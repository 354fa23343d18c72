// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicgroup"
)

// ClinicGroup is the model entity for the ClinicGroup schema.
type ClinicGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClinicGroupQuery when eager-loading is set.
	Edges        ClinicGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClinicGroupEdges holds the relations/edges for other nodes in the graph.
type ClinicGroupEdges struct {
	// Clinics holds the value of the clinics edge.
	Clinics []*Clinic `json:"clinics,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClinicsOrErr returns the Clinics value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicGroupEdges) ClinicsOrErr() ([]*Clinic, error) {
	if e.loadedTypes[0] {
		return e.Clinics, nil
	}
	return nil, &NotLoadedError{edge: "clinics"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClinicGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clinicgroup.FieldTitle, clinicgroup.FieldDescription:
			values[i] = new(sql.NullString)
		case clinicgroup.FieldCreatedAt, clinicgroup.FieldUpdatedAt, clinicgroup.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case clinicgroup.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClinicGroup fields.
func (_m *ClinicGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clinicgroup.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clinicgroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clinicgroup.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case clinicgroup.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case clinicgroup.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case clinicgroup.FieldDescription:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ClinicGroup.
// This includes values selected through modifiers, order, etc.
func (_m *ClinicGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinics queries the "clinics" edge of the ClinicGroup entity.
func (_m *ClinicGroup) QueryClinics() *ClinicQuery {
	return NewClinicGroupClient(_m.config).QueryClinics(_m)
}

// Update returns a builder for updating this ClinicGroup.
// Note that you need to call ClinicGroup.Unwrap() before calling this method if this ClinicGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClinicGroup) Update() *ClinicGroupUpdateOne {
	return NewClinicGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClinicGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClinicGroup) Unwrap() *ClinicGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ClinicGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClinicGroup) String() string {
	var builder strings.Builder
	builder.WriteString("ClinicGroup(")
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

// ClinicGroups is a parsable slice of ClinicGroup.
type ClinicGroups []*ClinicGroup
