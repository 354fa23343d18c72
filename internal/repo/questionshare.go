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
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionShare is the model entity for the QuestionShare schema.
type QuestionShare struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → doctors.id (author)
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// FK → clinics.id
	ClinicID *uuid.UUID `json:"clinic_id,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// Text shown to the patient
	Prompt string `json:"prompt,omitempty"`
	// QuestionType holds the value of the "question_type" field.
	QuestionType questionshare.QuestionType `json:"question_type,omitempty"`
	// ExpertLevel holds the value of the "expert_level" field.
	ExpertLevel questionshare.ExpertLevel `json:"expert_level,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority questionshare.Priority `json:"priority,omitempty"`
	// Only meaningful for date questions
	DateType questionshare.DateType `json:"date_type,omitempty"`
	// Entry node candidate for a checkup template
	IsStarter bool `json:"is_starter,omitempty"`
	// IsEquation holds the value of the "is_equation" field.
	IsEquation bool `json:"is_equation,omitempty"`
	// Score expression evaluated with w bound to the weight sum
	Equation *string `json:"equation,omitempty"`
	// ChartVisible holds the value of the "chart_visible" field.
	ChartVisible bool `json:"chart_visible,omitempty"`
	// ChartSrcX holds the value of the "chart_src_x" field.
	ChartSrcX float64 `json:"chart_src_x,omitempty"`
	// ChartSrcY holds the value of the "chart_src_y" field.
	ChartSrcY float64 `json:"chart_src_y,omitempty"`
	// ChartDesX holds the value of the "chart_des_x" field.
	ChartDesX float64 `json:"chart_des_x,omitempty"`
	// ChartDesY holds the value of the "chart_des_y" field.
	ChartDesY float64 `json:"chart_des_y,omitempty"`
	// ChartBranchCount holds the value of the "chart_branch_count" field.
	ChartBranchCount int `json:"chart_branch_count,omitempty"`
	// Next question when the node does not branch
	ChartConnectQuestionID *uuid.UUID `json:"chart_connect_question_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionShareQuery when eager-loading is set.
	Edges        QuestionShareEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionShareEdges holds the relations/edges for other nodes in the graph.
type QuestionShareEdges struct {
	// Doctor holds the value of the doctor edge.
	Doctor *Doctor `json:"doctor,omitempty"`
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// Options holds the value of the options edge.
	Options []*QuestionOption `json:"options,omitempty"`
	// Organs holds the value of the organs edge.
	Organs []*Organ `json:"organs,omitempty"`
	// ChartConnect holds the value of the chart_connect edge.
	ChartConnect *QuestionShare `json:"chart_connect,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// DoctorOrErr returns the Doctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionShareEdges) DoctorOrErr() (*Doctor, error) {
	if e.Doctor != nil {
		return e.Doctor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "doctor"}
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionShareEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// OptionsOrErr returns the Options value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionShareEdges) OptionsOrErr() ([]*QuestionOption, error) {
	if e.loadedTypes[2] {
		return e.Options, nil
	}
	return nil, &NotLoadedError{edge: "options"}
}

// OrgansOrErr returns the Organs value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionShareEdges) OrgansOrErr() ([]*Organ, error) {
	if e.loadedTypes[3] {
		return e.Organs, nil
	}
	return nil, &NotLoadedError{edge: "organs"}
}

// ChartConnectOrErr returns the ChartConnect value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionShareEdges) ChartConnectOrErr() (*QuestionShare, error) {
	if e.ChartConnect != nil {
		return e.ChartConnect, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: questionshare.Label}
	}
	return nil, &NotLoadedError{edge: "chart_connect"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionShare) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionshare.FieldClinicID, questionshare.FieldChartConnectQuestionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case questionshare.FieldIsStarter, questionshare.FieldIsEquation, questionshare.FieldChartVisible:
			values[i] = new(sql.NullBool)
		case questionshare.FieldChartSrcX, questionshare.FieldChartSrcY, questionshare.FieldChartDesX, questionshare.FieldChartDesY:
			values[i] = new(sql.NullFloat64)
		case questionshare.FieldChartBranchCount:
			values[i] = new(sql.NullInt64)
		case questionshare.FieldTitle, questionshare.FieldPrompt, questionshare.FieldQuestionType, questionshare.FieldExpertLevel, questionshare.FieldPriority, questionshare.FieldDateType, questionshare.FieldEquation:
			values[i] = new(sql.NullString)
		case questionshare.FieldCreatedAt, questionshare.FieldUpdatedAt, questionshare.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case questionshare.FieldID, questionshare.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionShare fields.
func (_m *QuestionShare) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionshare.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case questionshare.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionshare.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case questionshare.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case questionshare.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case questionshare.FieldClinicID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = new(uuid.UUID)
				*_m.ClinicID = *value.S.(*uuid.UUID)
			}
		case questionshare.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case questionshare.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case questionshare.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = questionshare.QuestionType(value.String)
			}
		case questionshare.FieldExpertLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expert_level", values[i])
			} else if value.Valid {
				_m.ExpertLevel = questionshare.ExpertLevel(value.String)
			}
		case questionshare.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = questionshare.Priority(value.String)
			}
		case questionshare.FieldDateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_type", values[i])
			} else if value.Valid {
				_m.DateType = questionshare.DateType(value.String)
			}
		case questionshare.FieldIsStarter:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_starter", values[i])
			} else if value.Valid {
				_m.IsStarter = value.Bool
			}
		case questionshare.FieldIsEquation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_equation", values[i])
			} else if value.Valid {
				_m.IsEquation = value.Bool
			}
		case questionshare.FieldEquation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field equation", values[i])
			} else if value.Valid {
				_m.Equation = new(string)
				*_m.Equation = value.String
			}
		case questionshare.FieldChartVisible:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field chart_visible", values[i])
			} else if value.Valid {
				_m.ChartVisible = value.Bool
			}
		case questionshare.FieldChartSrcX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field chart_src_x", values[i])
			} else if value.Valid {
				_m.ChartSrcX = value.Float64
			}
		case questionshare.FieldChartSrcY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field chart_src_y", values[i])
			} else if value.Valid {
				_m.ChartSrcY = value.Float64
			}
		case questionshare.FieldChartDesX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field chart_des_x", values[i])
			} else if value.Valid {
				_m.ChartDesX = value.Float64
			}
		case questionshare.FieldChartDesY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field chart_des_y", values[i])
			} else if value.Valid {
				_m.ChartDesY = value.Float64
			}
		case questionshare.FieldChartBranchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chart_branch_count", values[i])
			} else if value.Valid {
				_m.ChartBranchCount = int(value.Int64)
			}
		case questionshare.FieldChartConnectQuestionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field chart_connect_question_id", values[i])
			} else if value.Valid {
				_m.ChartConnectQuestionID = new(uuid.UUID)
				*_m.ChartConnectQuestionID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionShare.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionShare) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDoctor queries the "doctor" edge of the QuestionShare entity.
func (_m *QuestionShare) QueryDoctor() *DoctorQuery {
	return NewQuestionShareClient(_m.config).QueryDoctor(_m)
}

// QueryClinic queries the "clinic" edge of the QuestionShare entity.
func (_m *QuestionShare) QueryClinic() *ClinicQuery {
	return NewQuestionShareClient(_m.config).QueryClinic(_m)
}

// QueryOptions queries the "options" edge of the QuestionShare entity.
func (_m *QuestionShare) QueryOptions() *QuestionOptionQuery {
	return NewQuestionShareClient(_m.config).QueryOptions(_m)
}

// QueryOrgans queries the "organs" edge of the QuestionShare entity.
func (_m *QuestionShare) QueryOrgans() *OrganQuery {
	return NewQuestionShareClient(_m.config).QueryOrgans(_m)
}

// QueryChartConnect queries the "chart_connect" edge of the QuestionShare entity.
func (_m *QuestionShare) QueryChartConnect() *QuestionShareQuery {
	return NewQuestionShareClient(_m.config).QueryChartConnect(_m)
}

// Update returns a builder for updating this QuestionShare.
// Note that you need to call QuestionShare.Unwrap() before calling this method if this QuestionShare
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionShare) Update() *QuestionShareUpdateOne {
	return NewQuestionShareClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionShare entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionShare) Unwrap() *QuestionShare {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: QuestionShare is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionShare) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionShare(")
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
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	if v := _m.ClinicID; v != nil {
		builder.WriteString("clinic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionType))
	builder.WriteString(", ")
	builder.WriteString("expert_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpertLevel))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("date_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DateType))
	builder.WriteString(", ")
	builder.WriteString("is_starter=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsStarter))
	builder.WriteString(", ")
	builder.WriteString("is_equation=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEquation))
	builder.WriteString(", ")
	if v := _m.Equation; v != nil {
		builder.WriteString("equation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("chart_visible=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartVisible))
	builder.WriteString(", ")
	builder.WriteString("chart_src_x=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartSrcX))
	builder.WriteString(", ")
	builder.WriteString("chart_src_y=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartSrcY))
	builder.WriteString(", ")
	builder.WriteString("chart_des_x=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartDesX))
	builder.WriteString(", ")
	builder.WriteString("chart_des_y=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartDesY))
	builder.WriteString(", ")
	builder.WriteString("chart_branch_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartBranchCount))
	builder.WriteString(", ")
	if v := _m.ChartConnectQuestionID; v != nil {
		builder.WriteString("chart_connect_question_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuestionShares is a parsable slice of QuestionShare.
type QuestionShares []*QuestionShare
