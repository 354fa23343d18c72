// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionOption is the model entity for the QuestionOption schema.
type QuestionOption struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → question_shares.id
	QuestionID uuid.UUID `json:"question_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight int `json:"weight,omitempty"`
	// Shown in the aggregated checkup result
	Interpretation *string `json:"interpretation,omitempty"`
	// Tutorial holds the value of the "tutorial" field.
	Tutorial *string `json:"tutorial,omitempty"`
	// AlertID holds the value of the "alert_id" field.
	AlertID *uuid.UUID `json:"alert_id,omitempty"`
	// SuggestedDoctorID holds the value of the "suggested_doctor_id" field.
	SuggestedDoctorID *uuid.UUID `json:"suggested_doctor_id,omitempty"`
	// SuggestedClinicID holds the value of the "suggested_clinic_id" field.
	SuggestedClinicID *uuid.UUID `json:"suggested_clinic_id,omitempty"`
	// When set, chart_connect_question_id overrides the question's link
	IsBranch bool `json:"is_branch,omitempty"`
	// ChartX holds the value of the "chart_x" field.
	ChartX float64 `json:"chart_x,omitempty"`
	// ChartY holds the value of the "chart_y" field.
	ChartY float64 `json:"chart_y,omitempty"`
	// ChartConnectQuestionID holds the value of the "chart_connect_question_id" field.
	ChartConnectQuestionID *uuid.UUID `json:"chart_connect_question_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionOptionQuery when eager-loading is set.
	Edges        QuestionOptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionOptionEdges holds the relations/edges for other nodes in the graph.
type QuestionOptionEdges struct {
	// Question holds the value of the question edge.
	Question *QuestionShare `json:"question,omitempty"`
	// Alert holds the value of the alert edge.
	Alert *Alert `json:"alert,omitempty"`
	// SuggestedDoctor holds the value of the suggested_doctor edge.
	SuggestedDoctor *Doctor `json:"suggested_doctor,omitempty"`
	// SuggestedClinic holds the value of the suggested_clinic edge.
	SuggestedClinic *Clinic `json:"suggested_clinic,omitempty"`
	// ChartConnect holds the value of the chart_connect edge.
	ChartConnect *QuestionShare `json:"chart_connect,omitempty"`
	// NumberRanges holds the value of the number_ranges edge.
	NumberRanges []*QuestionOptionNumber `json:"number_ranges,omitempty"`
	// DateRanges holds the value of the date_ranges edge.
	DateRanges []*QuestionOptionDate `json:"date_ranges,omitempty"`
	// EquationRanges holds the value of the equation_ranges edge.
	EquationRanges []*QuestionOptionEquation `json:"equation_ranges,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionOptionEdges) QuestionOrErr() (*QuestionShare, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: questionshare.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// AlertOrErr returns the Alert value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionOptionEdges) AlertOrErr() (*Alert, error) {
	if e.Alert != nil {
		return e.Alert, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: alert.Label}
	}
	return nil, &NotLoadedError{edge: "alert"}
}

// SuggestedDoctorOrErr returns the SuggestedDoctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionOptionEdges) SuggestedDoctorOrErr() (*Doctor, error) {
	if e.SuggestedDoctor != nil {
		return e.SuggestedDoctor, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "suggested_doctor"}
}

// SuggestedClinicOrErr returns the SuggestedClinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionOptionEdges) SuggestedClinicOrErr() (*Clinic, error) {
	if e.SuggestedClinic != nil {
		return e.SuggestedClinic, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "suggested_clinic"}
}

// ChartConnectOrErr returns the ChartConnect value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionOptionEdges) ChartConnectOrErr() (*QuestionShare, error) {
	if e.ChartConnect != nil {
		return e.ChartConnect, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: questionshare.Label}
	}
	return nil, &NotLoadedError{edge: "chart_connect"}
}

// NumberRangesOrErr returns the NumberRanges value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionOptionEdges) NumberRangesOrErr() ([]*QuestionOptionNumber, error) {
	if e.loadedTypes[5] {
		return e.NumberRanges, nil
	}
	return nil, &NotLoadedError{edge: "number_ranges"}
}

// DateRangesOrErr returns the DateRanges value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionOptionEdges) DateRangesOrErr() ([]*QuestionOptionDate, error) {
	if e.loadedTypes[6] {
		return e.DateRanges, nil
	}
	return nil, &NotLoadedError{edge: "date_ranges"}
}

// EquationRangesOrErr returns the EquationRanges value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionOptionEdges) EquationRangesOrErr() ([]*QuestionOptionEquation, error) {
	if e.loadedTypes[7] {
		return e.EquationRanges, nil
	}
	return nil, &NotLoadedError{edge: "equation_ranges"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionOption) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionoption.FieldAlertID, questionoption.FieldSuggestedDoctorID, questionoption.FieldSuggestedClinicID, questionoption.FieldChartConnectQuestionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case questionoption.FieldIsBranch:
			values[i] = new(sql.NullBool)
		case questionoption.FieldChartX, questionoption.FieldChartY:
			values[i] = new(sql.NullFloat64)
		case questionoption.FieldWeight:
			values[i] = new(sql.NullInt64)
		case questionoption.FieldTitle, questionoption.FieldInterpretation, questionoption.FieldTutorial:
			values[i] = new(sql.NullString)
		case questionoption.FieldCreatedAt, questionoption.FieldUpdatedAt, questionoption.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case questionoption.FieldID, questionoption.FieldQuestionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionOption fields.
func (_m *QuestionOption) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionoption.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case questionoption.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case questionoption.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case questionoption.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case questionoption.FieldQuestionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value != nil {
				_m.QuestionID = *value
			}
		case questionoption.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case questionoption.FieldWeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = int(value.Int64)
			}
		case questionoption.FieldInterpretation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interpretation", values[i])
			} else if value.Valid {
				_m.Interpretation = new(string)
				*_m.Interpretation = value.String
			}
		case questionoption.FieldTutorial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tutorial", values[i])
			} else if value.Valid {
				_m.Tutorial = new(string)
				*_m.Tutorial = value.String
			}
		case questionoption.FieldAlertID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field alert_id", values[i])
			} else if value.Valid {
				_m.AlertID = new(uuid.UUID)
				*_m.AlertID = *value.S.(*uuid.UUID)
			}
		case questionoption.FieldSuggestedDoctorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_doctor_id", values[i])
			} else if value.Valid {
				_m.SuggestedDoctorID = new(uuid.UUID)
				*_m.SuggestedDoctorID = *value.S.(*uuid.UUID)
			}
		case questionoption.FieldSuggestedClinicID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_clinic_id", values[i])
			} else if value.Valid {
				_m.SuggestedClinicID = new(uuid.UUID)
				*_m.SuggestedClinicID = *value.S.(*uuid.UUID)
			}
		case questionoption.FieldIsBranch:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_branch", values[i])
			} else if value.Valid {
				_m.IsBranch = value.Bool
			}
		case questionoption.FieldChartX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field chart_x", values[i])
			} else if value.Valid {
				_m.ChartX = value.Float64
			}
		case questionoption.FieldChartY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field chart_y", values[i])
			} else if value.Valid {
				_m.ChartY = value.Float64
			}
		case questionoption.FieldChartConnectQuestionID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionOption.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionOption) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestion queries the "question" edge of the QuestionOption entity.
func (_m *QuestionOption) QueryQuestion() *QuestionShareQuery {
	return NewQuestionOptionClient(_m.config).QueryQuestion(_m)
}

// QueryAlert queries the "alert" edge of the QuestionOption entity.
func (_m *QuestionOption) QueryAlert() *AlertQuery {
	return NewQuestionOptionClient(_m.config).QueryAlert(_m)
}

// QuerySuggestedDoctor queries the "suggested_doctor" edge of the QuestionOption entity.
func (_m *QuestionOption) QuerySuggestedDoctor() *DoctorQuery {
	return NewQuestionOptionClient(_m.config).QuerySuggestedDoctor(_m)
}

// QuerySuggestedClinic queries the "suggested_clinic" edge of the QuestionOption entity.
func (_m *QuestionOption) QuerySuggestedClinic() *ClinicQuery {
	return NewQuestionOptionClient(_m.config).QuerySuggestedClinic(_m)
}

// QueryChartConnect queries the "chart_connect" edge of the QuestionOption entity.
func (_m *QuestionOption) QueryChartConnect() *QuestionShareQuery {
	return NewQuestionOptionClient(_m.config).QueryChartConnect(_m)
}

// QueryNumberRanges queries the "number_ranges" edge of the QuestionOption entity.
func (_m *QuestionOption) QueryNumberRanges() *QuestionOptionNumberQuery {
	return NewQuestionOptionClient(_m.config).QueryNumberRanges(_m)
}

// QueryDateRanges queries the "date_ranges" edge of the QuestionOption entity.
func (_m *QuestionOption) QueryDateRanges() *QuestionOptionDateQuery {
	return NewQuestionOptionClient(_m.config).QueryDateRanges(_m)
}

// QueryEquationRanges queries the "equation_ranges" edge of the QuestionOption entity.
func (_m *QuestionOption) QueryEquationRanges() *QuestionOptionEquationQuery {
	return NewQuestionOptionClient(_m.config).QueryEquationRanges(_m)
}

// Update returns a builder for updating this QuestionOption.
// Note that you need to call QuestionOption.Unwrap() before calling this method if this QuestionOption
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionOption) Update() *QuestionOptionUpdateOne {
	return NewQuestionOptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionOption entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionOption) Unwrap() *QuestionOption {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: QuestionOption is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionOption) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionOption(")
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
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	if v := _m.Interpretation; v != nil {
		builder.WriteString("interpretation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Tutorial; v != nil {
		builder.WriteString("tutorial=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AlertID; v != nil {
		builder.WriteString("alert_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SuggestedDoctorID; v != nil {
		builder.WriteString("suggested_doctor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SuggestedClinicID; v != nil {
		builder.WriteString("suggested_clinic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_branch=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBranch))
	builder.WriteString(", ")
	builder.WriteString("chart_x=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartX))
	builder.WriteString(", ")
	builder.WriteString("chart_y=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChartY))
	builder.WriteString(", ")
	if v := _m.ChartConnectQuestionID; v != nil {
		builder.WriteString("chart_connect_question_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuestionOptions is a parsable slice of QuestionOption.
type QuestionOptions []*QuestionOption
