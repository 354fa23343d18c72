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
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
)

// Checkup is the model entity for the Checkup schema.
type Checkup struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → patient_profiles.id
	PatientProfileID uuid.UUID `json:"patient_profile_id,omitempty"`
	// ClinicID holds the value of the "clinic_id" field.
	ClinicID *uuid.UUID `json:"clinic_id,omitempty"`
	// Template the session was started from
	ClinicCheckupID *uuid.UUID `json:"clinic_checkup_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// ExecutedAt holds the value of the "executed_at" field.
	ExecutedAt time.Time `json:"executed_at,omitempty"`
	// IsCompleted holds the value of the "is_completed" field.
	IsCompleted bool `json:"is_completed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckupQuery when eager-loading is set.
	Edges        CheckupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckupEdges holds the relations/edges for other nodes in the graph.
type CheckupEdges struct {
	// Patient holds the value of the patient edge.
	Patient *PatientProfile `json:"patient,omitempty"`
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// Template holds the value of the template edge.
	Template *ClinicCheckup `json:"template,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*QuestionAnswer `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckupEdges) PatientOrErr() (*PatientProfile, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patientprofile.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckupEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckupEdges) TemplateOrErr() (*ClinicCheckup, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: cliniccheckup.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e CheckupEdges) AnswersOrErr() ([]*QuestionAnswer, error) {
	if e.loadedTypes[3] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkup.FieldClinicID, checkup.FieldClinicCheckupID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case checkup.FieldIsCompleted:
			values[i] = new(sql.NullBool)
		case checkup.FieldTitle, checkup.FieldDescription:
			values[i] = new(sql.NullString)
		case checkup.FieldCreatedAt, checkup.FieldUpdatedAt, checkup.FieldDeletedAt, checkup.FieldExecutedAt:
			values[i] = new(sql.NullTime)
		case checkup.FieldID, checkup.FieldPatientProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkup fields.
func (_m *Checkup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkup.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case checkup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case checkup.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case checkup.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case checkup.FieldPatientProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_profile_id", values[i])
			} else if value != nil {
				_m.PatientProfileID = *value
			}
		case checkup.FieldClinicID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = new(uuid.UUID)
				*_m.ClinicID = *value.S.(*uuid.UUID)
			}
		case checkup.FieldClinicCheckupID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_checkup_id", values[i])
			} else if value.Valid {
				_m.ClinicCheckupID = new(uuid.UUID)
				*_m.ClinicCheckupID = *value.S.(*uuid.UUID)
			}
		case checkup.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case checkup.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case checkup.FieldExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field executed_at", values[i])
			} else if value.Valid {
				_m.ExecutedAt = value.Time
			}
		case checkup.FieldIsCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_completed", values[i])
			} else if value.Valid {
				_m.IsCompleted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkup.
// This includes values selected through modifiers, order, etc.
func (_m *Checkup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the Checkup entity.
func (_m *Checkup) QueryPatient() *PatientProfileQuery {
	return NewCheckupClient(_m.config).QueryPatient(_m)
}

// QueryClinic queries the "clinic" edge of the Checkup entity.
func (_m *Checkup) QueryClinic() *ClinicQuery {
	return NewCheckupClient(_m.config).QueryClinic(_m)
}

// QueryTemplate queries the "template" edge of the Checkup entity.
func (_m *Checkup) QueryTemplate() *ClinicCheckupQuery {
	return NewCheckupClient(_m.config).QueryTemplate(_m)
}

// QueryAnswers queries the "answers" edge of the Checkup entity.
func (_m *Checkup) QueryAnswers() *QuestionAnswerQuery {
	return NewCheckupClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this Checkup.
// Note that you need to call Checkup.Unwrap() before calling this method if this Checkup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkup) Update() *CheckupUpdateOne {
	return NewCheckupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkup) Unwrap() *Checkup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Checkup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkup) String() string {
	var builder strings.Builder
	builder.WriteString("Checkup(")
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
	builder.WriteString("patient_profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientProfileID))
	builder.WriteString(", ")
	if v := _m.ClinicID; v != nil {
		builder.WriteString("clinic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ClinicCheckupID; v != nil {
		builder.WriteString("clinic_checkup_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("executed_at=")
	builder.WriteString(_m.ExecutedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCompleted))
	builder.WriteByte(')')
	return builder.String()
}

// Checkups is a parsable slice of Checkup.
type Checkups []*Checkup
