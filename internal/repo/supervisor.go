// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/supervisor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
)

// Supervisor is the model entity for the Supervisor schema.
type Supervisor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id (the supervising user)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FK → patient_profiles.id
	PatientProfileID uuid.UUID `json:"patient_profile_id,omitempty"`
	// RelativeType holds the value of the "relative_type" field.
	RelativeType supervisor.RelativeType `json:"relative_type,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupervisorQuery when eager-loading is set.
	Edges        SupervisorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupervisorEdges holds the relations/edges for other nodes in the graph.
type SupervisorEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Patient holds the value of the patient edge.
	Patient *PatientProfile `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SupervisorEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SupervisorEdges) PatientOrErr() (*PatientProfile, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: patientprofile.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Supervisor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supervisor.FieldRelativeType:
			values[i] = new(sql.NullString)
		case supervisor.FieldCreatedAt, supervisor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case supervisor.FieldID, supervisor.FieldUserID, supervisor.FieldPatientProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Supervisor fields.
func (_m *Supervisor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supervisor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case supervisor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case supervisor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case supervisor.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case supervisor.FieldPatientProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_profile_id", values[i])
			} else if value != nil {
				_m.PatientProfileID = *value
			}
		case supervisor.FieldRelativeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relative_type", values[i])
			} else if value.Valid {
				_m.RelativeType = supervisor.RelativeType(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Supervisor.
// This includes values selected through modifiers, order, etc.
func (_m *Supervisor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Supervisor entity.
func (_m *Supervisor) QueryUser() *UserQuery {
	return NewSupervisorClient(_m.config).QueryUser(_m)
}

// QueryPatient queries the "patient" edge of the Supervisor entity.
func (_m *Supervisor) QueryPatient() *PatientProfileQuery {
	return NewSupervisorClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this Supervisor.
// Note that you need to call Supervisor.Unwrap() before calling this method if this Supervisor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Supervisor) Update() *SupervisorUpdateOne {
	return NewSupervisorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Supervisor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Supervisor) Unwrap() *Supervisor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Supervisor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Supervisor) String() string {
	var builder strings.Builder
	builder.WriteString("Supervisor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("patient_profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientProfileID))
	builder.WriteString(", ")
	builder.WriteString("relative_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelativeType))
	builder.WriteByte(')')
	return builder.String()
}

// Supervisors is a parsable slice of Supervisor.
type Supervisors []*Supervisor
