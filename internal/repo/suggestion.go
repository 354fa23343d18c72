// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinicmedia"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/interpretation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realclinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/realdoctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/suggestion"
)

// Suggestion is the model entity for the Suggestion schema.
type Suggestion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → interpretations.id
	InterpretationID uuid.UUID `json:"interpretation_id,omitempty"`
	// DoctorID holds the value of the "doctor_id" field.
	DoctorID *uuid.UUID `json:"doctor_id,omitempty"`
	// RealDoctorID holds the value of the "real_doctor_id" field.
	RealDoctorID *uuid.UUID `json:"real_doctor_id,omitempty"`
	// ClinicID holds the value of the "clinic_id" field.
	ClinicID *uuid.UUID `json:"clinic_id,omitempty"`
	// RealClinicID holds the value of the "real_clinic_id" field.
	RealClinicID *uuid.UUID `json:"real_clinic_id,omitempty"`
	// ClinicMediaID holds the value of the "clinic_media_id" field.
	ClinicMediaID *uuid.UUID `json:"clinic_media_id,omitempty"`
	// Note holds the value of the "note" field.
	Note *string `json:"note,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SuggestionQuery when eager-loading is set.
	Edges        SuggestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SuggestionEdges holds the relations/edges for other nodes in the graph.
type SuggestionEdges struct {
	// Interpretation holds the value of the interpretation edge.
	Interpretation *Interpretation `json:"interpretation,omitempty"`
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// RealDoctor holds the value of the real_doctor edge.
	RealDoctor *RealDoctor `json:"real_doctor,omitempty"`
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// RealClinic holds the value of the real_clinic edge.
	RealClinic *RealClinic `json:"real_clinic,omitempty"`
	// ClinicMedia holds the value of the clinic_media edge.
	ClinicMedia *ClinicMedia `json:"clinic_media,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// InterpretationOrErr returns the Interpretation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) InterpretationOrErr() (*Interpretation, error) {
	if e.Interpretation != nil {
		return e.Interpretation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: interpretation.Label}
	}
	return nil, &NotLoadedError{edge: "interpretation"}
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// RealDoctorOrErr returns the RealDoctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) RealDoctorOrErr() (*RealDoctor, error) {
	if e.RealDoctor != nil {
		return e.RealDoctor, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: realdoctor.Label}
	}
	return nil, &NotLoadedError{edge: "real_doctor"}
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// RealClinicOrErr returns the RealClinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) RealClinicOrErr() (*RealClinic, error) {
	if e.RealClinic != nil {
		return e.RealClinic, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: realclinic.Label}
	}
	return nil, &NotLoadedError{edge: "real_clinic"}
}

// ClinicMediaOrErr returns the ClinicMedia value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) ClinicMediaOrErr() (*ClinicMedia, error) {
	if e.ClinicMedia != nil {
		return e.ClinicMedia, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: clinicmedia.Label}
	}
	return nil, &NotLoadedError{edge: "clinic_media"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Suggestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suggestion.FieldDoctorID, suggestion.FieldRealDoctorID, suggestion.FieldClinicID, suggestion.FieldRealClinicID, suggestion.FieldClinicMediaID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case suggestion.FieldNote:
			values[i] = new(sql.NullString)
		case suggestion.FieldCreatedAt, suggestion.FieldUpdatedAt, suggestion.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case suggestion.FieldID, suggestion.FieldInterpretationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Suggestion fields.
func (_m *Suggestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suggestion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case suggestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case suggestion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case suggestion.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case suggestion.FieldInterpretationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field interpretation_id", values[i])
			} else if value != nil {
				_m.InterpretationID = *value
			}
		case suggestion.FieldDoctorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value.Valid {
				_m.DoctorID = new(uuid.UUID)
				*_m.DoctorID = *value.S.(*uuid.UUID)
			}
		case suggestion.FieldRealDoctorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field real_doctor_id", values[i])
			} else if value.Valid {
				_m.RealDoctorID = new(uuid.UUID)
				*_m.RealDoctorID = *value.S.(*uuid.UUID)
			}
		case suggestion.FieldClinicID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = new(uuid.UUID)
				*_m.ClinicID = *value.S.(*uuid.UUID)
			}
		case suggestion.FieldRealClinicID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field real_clinic_id", values[i])
			} else if value.Valid {
				_m.RealClinicID = new(uuid.UUID)
				*_m.RealClinicID = *value.S.(*uuid.UUID)
			}
		case suggestion.FieldClinicMediaID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_media_id", values[i])
			} else if value.Valid {
				_m.ClinicMediaID = new(uuid.UUID)
				*_m.ClinicMediaID = *value.S.(*uuid.UUID)
			}
		case suggestion.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = new(string)
				*_m.Note = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Suggestion.
// This includes values selected through modifiers, order, etc.
func (_m *Suggestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInterpretation queries the "interpretation" edge of the Suggestion entity.
func (_m *Suggestion) QueryInterpretation() *InterpretationQuery {
	return NewSuggestionClient(_m.config).QueryInterpretation(_m)
}

// QueryDoctor queries the "doctor" edge of the Suggestion entity.
func (_m *Suggestion) QueryDoctor() *DoctorQuery {
	return NewSuggestionClient(_m.config).QueryDoctor(_m)
}

// QueryRealDoctor queries the "real_doctor" edge of the Suggestion entity.
func (_m *Suggestion) QueryRealDoctor() *RealDoctorQuery {
	return NewSuggestionClient(_m.config).QueryRealDoctor(_m)
}

// QueryClinic queries the "clinic" edge of the Suggestion entity.
func (_m *Suggestion) QueryClinic() *ClinicQuery {
	return NewSuggestionClient(_m.config).QueryClinic(_m)
}

// QueryRealClinic queries the "real_clinic" edge of the Suggestion entity.
func (_m *Suggestion) QueryRealClinic() *RealClinicQuery {
	return NewSuggestionClient(_m.config).QueryRealClinic(_m)
}

// QueryClinicMedia queries the "clinic_media" edge of the Suggestion entity.
func (_m *Suggestion) QueryClinicMedia() *ClinicMediaQuery {
	return NewSuggestionClient(_m.config).QueryClinicMedia(_m)
}

// Update returns a builder for updating this Suggestion.
// Note that you need to call Suggestion.Unwrap() before calling this method if this Suggestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Suggestion) Update() *SuggestionUpdateOne {
	return NewSuggestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Suggestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Suggestion) Unwrap() *Suggestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Suggestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Suggestion) String() string {
	var builder strings.Builder
	builder.WriteString("Suggestion(")
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
	builder.WriteString("interpretation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InterpretationID))
	builder.WriteString(", ")
	if v := _m.DoctorID; v != nil {
		builder.WriteString("doctor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RealDoctorID; v != nil {
		builder.WriteString("real_doctor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClinicID; v != nil {
		builder.WriteString("clinic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RealClinicID; v != nil {
		builder.WriteString("real_clinic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClinicMediaID; v != nil {
		builder.WriteString("clinic_media_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Note; v != nil {
		builder.WriteString("note=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Suggestions is a parsable slice of Suggestion.
type Suggestions []*Suggestion
