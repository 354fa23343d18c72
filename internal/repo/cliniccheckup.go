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
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// ClinicCheckup is the model entity for the ClinicCheckup schema.
type ClinicCheckup struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// RequiredTimeMinutes holds the value of the "required_time_minutes" field.
	RequiredTimeMinutes int `json:"required_time_minutes,omitempty"`
	// When set, only identity-approved patients may start it
	RequiredAuth bool `json:"required_auth,omitempty"`
	// QuestionCount holds the value of the "question_count" field.
	QuestionCount int `json:"question_count,omitempty"`
	// Comma separated emails notified when a session completes
	Approvers *string `json:"approvers,omitempty"`
	// StartingQuestionID holds the value of the "starting_question_id" field.
	StartingQuestionID *uuid.UUID `json:"starting_question_id,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClinicCheckupQuery when eager-loading is set.
	Edges        ClinicCheckupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClinicCheckupEdges holds the relations/edges for other nodes in the graph.
type ClinicCheckupEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// StartingQuestion holds the value of the starting_question edge.
	StartingQuestion *QuestionShare `json:"starting_question,omitempty"`
	// Analyzes holds the value of the analyzes edge.
	Analyzes []*CheckupAnalyze `json:"analyzes,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Checkup `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClinicCheckupEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// StartingQuestionOrErr returns the StartingQuestion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClinicCheckupEdges) StartingQuestionOrErr() (*QuestionShare, error) {
	if e.StartingQuestion != nil {
		return e.StartingQuestion, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: questionshare.Label}
	}
	return nil, &NotLoadedError{edge: "starting_question"}
}

// AnalyzesOrErr returns the Analyzes value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicCheckupEdges) AnalyzesOrErr() ([]*CheckupAnalyze, error) {
	if e.loadedTypes[2] {
		return e.Analyzes, nil
	}
	return nil, &NotLoadedError{edge: "analyzes"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicCheckupEdges) SessionsOrErr() ([]*Checkup, error) {
	if e.loadedTypes[3] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClinicCheckup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cliniccheckup.FieldStartingQuestionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case cliniccheckup.FieldRequiredAuth, cliniccheckup.FieldIsActive:
			values[i] = new(sql.NullBool)
		case cliniccheckup.FieldRequiredTimeMinutes, cliniccheckup.FieldQuestionCount:
			values[i] = new(sql.NullInt64)
		case cliniccheckup.FieldTitle, cliniccheckup.FieldDescription, cliniccheckup.FieldApprovers:
			values[i] = new(sql.NullString)
		case cliniccheckup.FieldCreatedAt, cliniccheckup.FieldUpdatedAt, cliniccheckup.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case cliniccheckup.FieldID, cliniccheckup.FieldClinicID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClinicCheckup fields.
func (_m *ClinicCheckup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cliniccheckup.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cliniccheckup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cliniccheckup.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case cliniccheckup.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case cliniccheckup.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case cliniccheckup.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case cliniccheckup.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case cliniccheckup.FieldRequiredTimeMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field required_time_minutes", values[i])
			} else if value.Valid {
				_m.RequiredTimeMinutes = int(value.Int64)
			}
		case cliniccheckup.FieldRequiredAuth:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required_auth", values[i])
			} else if value.Valid {
				_m.RequiredAuth = value.Bool
			}
		case cliniccheckup.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case cliniccheckup.FieldApprovers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approvers", values[i])
			} else if value.Valid {
				_m.Approvers = new(string)
				*_m.Approvers = value.String
			}
		case cliniccheckup.FieldStartingQuestionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field starting_question_id", values[i])
			} else if value.Valid {
				_m.StartingQuestionID = new(uuid.UUID)
				*_m.StartingQuestionID = *value.S.(*uuid.UUID)
			}
		case cliniccheckup.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClinicCheckup.
// This includes values selected through modifiers, order, etc.
func (_m *ClinicCheckup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the ClinicCheckup entity.
func (_m *ClinicCheckup) QueryClinic() *ClinicQuery {
	return NewClinicCheckupClient(_m.config).QueryClinic(_m)
}

// QueryStartingQuestion queries the "starting_question" edge of the ClinicCheckup entity.
func (_m *ClinicCheckup) QueryStartingQuestion() *QuestionShareQuery {
	return NewClinicCheckupClient(_m.config).QueryStartingQuestion(_m)
}

// QueryAnalyzes queries the "analyzes" edge of the ClinicCheckup entity.
func (_m *ClinicCheckup) QueryAnalyzes() *CheckupAnalyzeQuery {
	return NewClinicCheckupClient(_m.config).QueryAnalyzes(_m)
}

// QuerySessions queries the "sessions" edge of the ClinicCheckup entity.
func (_m *ClinicCheckup) QuerySessions() *CheckupQuery {
	return NewClinicCheckupClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this ClinicCheckup.
// Note that you need to call ClinicCheckup.Unwrap() before calling this method if this ClinicCheckup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClinicCheckup) Update() *ClinicCheckupUpdateOne {
	return NewClinicCheckupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClinicCheckup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClinicCheckup) Unwrap() *ClinicCheckup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ClinicCheckup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClinicCheckup) String() string {
	var builder strings.Builder
	builder.WriteString("ClinicCheckup(")
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
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("required_time_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredTimeMinutes))
	builder.WriteString(", ")
	builder.WriteString("required_auth=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredAuth))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	if v := _m.Approvers; v != nil {
		builder.WriteString("approvers=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartingQuestionID; v != nil {
		builder.WriteString("starting_question_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// ClinicCheckups is a parsable slice of ClinicCheckup.
type ClinicCheckups []*ClinicCheckup
