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
	"github.com/pezeshkyar/checkup_backend/internal/repo/user"
)

// PatientProfile is the model entity for the PatientProfile schema.
type PatientProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender *patientprofile.Gender `json:"gender,omitempty"`
	// BirthDate holds the value of the "birth_date" field.
	BirthDate *time.Time `json:"birth_date,omitempty"`
	// HeightCm holds the value of the "height_cm" field.
	HeightCm *float64 `json:"height_cm,omitempty"`
	// WeightKg holds the value of the "weight_kg" field.
	WeightKg *float64 `json:"weight_kg,omitempty"`
	// MedicalHistory holds the value of the "medical_history" field.
	MedicalHistory *string `json:"medical_history,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientProfileQuery when eager-loading is set.
	Edges        PatientProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientProfileEdges holds the relations/edges for other nodes in the graph.
type PatientProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Supervisors holds the value of the supervisors edge.
	Supervisors []*Supervisor `json:"supervisors,omitempty"`
	// Checkups holds the value of the checkups edge.
	Checkups []*Checkup `json:"checkups,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// SupervisorsOrErr returns the Supervisors value or an error if the edge
// was not loaded in eager-loading.
func (e PatientProfileEdges) SupervisorsOrErr() ([]*Supervisor, error) {
	if e.loadedTypes[1] {
		return e.Supervisors, nil
	}
	return nil, &NotLoadedError{edge: "supervisors"}
}

// CheckupsOrErr returns the Checkups value or an error if the edge
// was not loaded in eager-loading.
func (e PatientProfileEdges) CheckupsOrErr() ([]*Checkup, error) {
	if e.loadedTypes[2] {
		return e.Checkups, nil
	}
	return nil, &NotLoadedError{edge: "checkups"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PatientProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patientprofile.FieldHeightCm, patientprofile.FieldWeightKg:
			values[i] = new(sql.NullFloat64)
		case patientprofile.FieldGender, patientprofile.FieldMedicalHistory:
			values[i] = new(sql.NullString)
		case patientprofile.FieldCreatedAt, patientprofile.FieldUpdatedAt, patientprofile.FieldDeletedAt, patientprofile.FieldBirthDate:
			values[i] = new(sql.NullTime)
		case patientprofile.FieldID, patientprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PatientProfile fields.
func (_m *PatientProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patientprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patientprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patientprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patientprofile.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case patientprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patientprofile.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = new(patientprofile.Gender)
				*_m.Gender = patientprofile.Gender(value.String)
			}
		case patientprofile.FieldBirthDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = new(time.Time)
				*_m.BirthDate = value.Time
			}
		case patientprofile.FieldHeightCm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field height_cm", values[i])
			} else if value.Valid {
				_m.HeightCm = new(float64)
				*_m.HeightCm = value.Float64
			}
		case patientprofile.FieldWeightKg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight_kg", values[i])
			} else if value.Valid {
				_m.WeightKg = new(float64)
				*_m.WeightKg = value.Float64
			}
		case patientprofile.FieldMedicalHistory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medical_history", values[i])
			} else if value.Valid {
				_m.MedicalHistory = new(string)
				*_m.MedicalHistory = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PatientProfile.
// This includes values selected through modifiers, order, etc.
func (_m *PatientProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PatientProfile entity.
func (_m *PatientProfile) QueryUser() *UserQuery {
	return NewPatientProfileClient(_m.config).QueryUser(_m)
}

// QuerySupervisors queries the "supervisors" edge of the PatientProfile entity.
func (_m *PatientProfile) QuerySupervisors() *SupervisorQuery {
	return NewPatientProfileClient(_m.config).QuerySupervisors(_m)
}

// QueryCheckups queries the "checkups" edge of the PatientProfile entity.
func (_m *PatientProfile) QueryCheckups() *CheckupQuery {
	return NewPatientProfileClient(_m.config).QueryCheckups(_m)
}

// Update returns a builder for updating this PatientProfile.
// Note that you need to call PatientProfile.Unwrap() before calling this method if this PatientProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PatientProfile) Update() *PatientProfileUpdateOne {
	return NewPatientProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PatientProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PatientProfile) Unwrap() *PatientProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PatientProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PatientProfile) String() string {
	var builder strings.Builder
	builder.WriteString("PatientProfile(")
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
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.Gender; v != nil {
		builder.WriteString("gender=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BirthDate; v != nil {
		builder.WriteString("birth_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.HeightCm; v != nil {
		builder.WriteString("height_cm=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WeightKg; v != nil {
		builder.WriteString("weight_kg=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MedicalHistory; v != nil {
		builder.WriteString("medical_history=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// PatientProfiles is a parsable slice of PatientProfile.
type PatientProfiles []*PatientProfile
