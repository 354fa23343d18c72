// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptiondate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionequation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionOptionUpdate is the builder for updating QuestionOption entities.
type QuestionOptionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionOptionMutation
}

// Where appends a list predicates to the QuestionOptionUpdate builder.
func (_u *QuestionOptionUpdate) Where(ps ...predicate.QuestionOption) *QuestionOptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionOptionUpdate) SetUpdatedAt(v time.Time) *QuestionOptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuestionOptionUpdate) SetDeletedAt(v time.Time) *QuestionOptionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableDeletedAt(v *time.Time) *QuestionOptionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuestionOptionUpdate) ClearDeletedAt() *QuestionOptionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionOptionUpdate) SetQuestionID(v uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableQuestionID(v *uuid.UUID) *QuestionOptionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestionOptionUpdate) SetTitle(v string) *QuestionOptionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableTitle(v *string) *QuestionOptionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *QuestionOptionUpdate) SetWeight(v int) *QuestionOptionUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableWeight(v *int) *QuestionOptionUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *QuestionOptionUpdate) AddWeight(v int) *QuestionOptionUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *QuestionOptionUpdate) SetInterpretation(v string) *QuestionOptionUpdate {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableInterpretation(v *string) *QuestionOptionUpdate {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// ClearInterpretation clears the value of the "interpretation" field.
func (_u *QuestionOptionUpdate) ClearInterpretation() *QuestionOptionUpdate {
	_u.mutation.ClearInterpretation()
	return _u
}

// SetTutorial sets the "tutorial" field.
func (_u *QuestionOptionUpdate) SetTutorial(v string) *QuestionOptionUpdate {
	_u.mutation.SetTutorial(v)
	return _u
}

// SetNillableTutorial sets the "tutorial" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableTutorial(v *string) *QuestionOptionUpdate {
	if v != nil {
		_u.SetTutorial(*v)
	}
	return _u
}

// ClearTutorial clears the value of the "tutorial" field.
func (_u *QuestionOptionUpdate) ClearTutorial() *QuestionOptionUpdate {
	_u.mutation.ClearTutorial()
	return _u
}

// SetAlertID sets the "alert_id" field.
func (_u *QuestionOptionUpdate) SetAlertID(v uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.SetAlertID(v)
	return _u
}

// SetNillableAlertID sets the "alert_id" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableAlertID(v *uuid.UUID) *QuestionOptionUpdate {
	if v != nil {
		_u.SetAlertID(*v)
	}
	return _u
}

// ClearAlertID clears the value of the "alert_id" field.
func (_u *QuestionOptionUpdate) ClearAlertID() *QuestionOptionUpdate {
	_u.mutation.ClearAlertID()
	return _u
}

// SetSuggestedDoctorID sets the "suggested_doctor_id" field.
func (_u *QuestionOptionUpdate) SetSuggestedDoctorID(v uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.SetSuggestedDoctorID(v)
	return _u
}

// SetNillableSuggestedDoctorID sets the "suggested_doctor_id" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableSuggestedDoctorID(v *uuid.UUID) *QuestionOptionUpdate {
	if v != nil {
		_u.SetSuggestedDoctorID(*v)
	}
	return _u
}

// ClearSuggestedDoctorID clears the value of the "suggested_doctor_id" field.
func (_u *QuestionOptionUpdate) ClearSuggestedDoctorID() *QuestionOptionUpdate {
	_u.mutation.ClearSuggestedDoctorID()
	return _u
}

// SetSuggestedClinicID sets the "suggested_clinic_id" field.
func (_u *QuestionOptionUpdate) SetSuggestedClinicID(v uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.SetSuggestedClinicID(v)
	return _u
}

// SetNillableSuggestedClinicID sets the "suggested_clinic_id" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableSuggestedClinicID(v *uuid.UUID) *QuestionOptionUpdate {
	if v != nil {
		_u.SetSuggestedClinicID(*v)
	}
	return _u
}

// ClearSuggestedClinicID clears the value of the "suggested_clinic_id" field.
func (_u *QuestionOptionUpdate) ClearSuggestedClinicID() *QuestionOptionUpdate {
	_u.mutation.ClearSuggestedClinicID()
	return _u
}

// SetIsBranch sets the "is_branch" field.
func (_u *QuestionOptionUpdate) SetIsBranch(v bool) *QuestionOptionUpdate {
	_u.mutation.SetIsBranch(v)
	return _u
}

// SetNillableIsBranch sets the "is_branch" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableIsBranch(v *bool) *QuestionOptionUpdate {
	if v != nil {
		_u.SetIsBranch(*v)
	}
	return _u
}

// SetChartX sets the "chart_x" field.
func (_u *QuestionOptionUpdate) SetChartX(v float64) *QuestionOptionUpdate {
	_u.mutation.ResetChartX()
	_u.mutation.SetChartX(v)
	return _u
}

// SetNillableChartX sets the "chart_x" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableChartX(v *float64) *QuestionOptionUpdate {
	if v != nil {
		_u.SetChartX(*v)
	}
	return _u
}

// AddChartX adds value to the "chart_x" field.
func (_u *QuestionOptionUpdate) AddChartX(v float64) *QuestionOptionUpdate {
	_u.mutation.AddChartX(v)
	return _u
}

// SetChartY sets the "chart_y" field.
func (_u *QuestionOptionUpdate) SetChartY(v float64) *QuestionOptionUpdate {
	_u.mutation.ResetChartY()
	_u.mutation.SetChartY(v)
	return _u
}

// SetNillableChartY sets the "chart_y" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableChartY(v *float64) *QuestionOptionUpdate {
	if v != nil {
		_u.SetChartY(*v)
	}
	return _u
}

// AddChartY adds value to the "chart_y" field.
func (_u *QuestionOptionUpdate) AddChartY(v float64) *QuestionOptionUpdate {
	_u.mutation.AddChartY(v)
	return _u
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (_u *QuestionOptionUpdate) SetChartConnectQuestionID(v uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.SetChartConnectQuestionID(v)
	return _u
}

// SetNillableChartConnectQuestionID sets the "chart_connect_question_id" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableChartConnectQuestionID(v *uuid.UUID) *QuestionOptionUpdate {
	if v != nil {
		_u.SetChartConnectQuestionID(*v)
	}
	return _u
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (_u *QuestionOptionUpdate) ClearChartConnectQuestionID() *QuestionOptionUpdate {
	_u.mutation.ClearChartConnectQuestionID()
	return _u
}

// SetQuestion sets the "question" edge to the QuestionShare entity.
func (_u *QuestionOptionUpdate) SetQuestion(v *QuestionShare) *QuestionOptionUpdate {
	return _u.SetQuestionID(v.ID)
}

// SetAlert sets the "alert" edge to the Alert entity.
func (_u *QuestionOptionUpdate) SetAlert(v *Alert) *QuestionOptionUpdate {
	return _u.SetAlertID(v.ID)
}

// SetSuggestedDoctor sets the "suggested_doctor" edge to the Doctor entity.
func (_u *QuestionOptionUpdate) SetSuggestedDoctor(v *Doctor) *QuestionOptionUpdate {
	return _u.SetSuggestedDoctorID(v.ID)
}

// SetSuggestedClinic sets the "suggested_clinic" edge to the Clinic entity.
func (_u *QuestionOptionUpdate) SetSuggestedClinic(v *Clinic) *QuestionOptionUpdate {
	return _u.SetSuggestedClinicID(v.ID)
}

// SetChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID.
func (_u *QuestionOptionUpdate) SetChartConnectID(id uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.SetChartConnectID(id)
	return _u
}

// SetNillableChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableChartConnectID(id *uuid.UUID) *QuestionOptionUpdate {
	if id != nil {
		_u = _u.SetChartConnectID(*id)
	}
	return _u
}

// SetChartConnect sets the "chart_connect" edge to the QuestionShare entity.
func (_u *QuestionOptionUpdate) SetChartConnect(v *QuestionShare) *QuestionOptionUpdate {
	return _u.SetChartConnectID(v.ID)
}

// AddNumberRangeIDs adds the "number_ranges" edge to the QuestionOptionNumber entity by IDs.
func (_u *QuestionOptionUpdate) AddNumberRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.AddNumberRangeIDs(ids...)
	return _u
}

// AddNumberRanges adds the "number_ranges" edges to the QuestionOptionNumber entity.
func (_u *QuestionOptionUpdate) AddNumberRanges(v ...*QuestionOptionNumber) *QuestionOptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNumberRangeIDs(ids...)
}

// AddDateRangeIDs adds the "date_ranges" edge to the QuestionOptionDate entity by IDs.
func (_u *QuestionOptionUpdate) AddDateRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.AddDateRangeIDs(ids...)
	return _u
}

// AddDateRanges adds the "date_ranges" edges to the QuestionOptionDate entity.
func (_u *QuestionOptionUpdate) AddDateRanges(v ...*QuestionOptionDate) *QuestionOptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDateRangeIDs(ids...)
}

// AddEquationRangeIDs adds the "equation_ranges" edge to the QuestionOptionEquation entity by IDs.
func (_u *QuestionOptionUpdate) AddEquationRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.AddEquationRangeIDs(ids...)
	return _u
}

// AddEquationRanges adds the "equation_ranges" edges to the QuestionOptionEquation entity.
func (_u *QuestionOptionUpdate) AddEquationRanges(v ...*QuestionOptionEquation) *QuestionOptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEquationRangeIDs(ids...)
}

// Mutation returns the QuestionOptionMutation object of the builder.
func (_u *QuestionOptionUpdate) Mutation() *QuestionOptionMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the QuestionShare entity.
func (_u *QuestionOptionUpdate) ClearQuestion() *QuestionOptionUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// ClearAlert clears the "alert" edge to the Alert entity.
func (_u *QuestionOptionUpdate) ClearAlert() *QuestionOptionUpdate {
	_u.mutation.ClearAlert()
	return _u
}

// ClearSuggestedDoctor clears the "suggested_doctor" edge to the Doctor entity.
func (_u *QuestionOptionUpdate) ClearSuggestedDoctor() *QuestionOptionUpdate {
	_u.mutation.ClearSuggestedDoctor()
	return _u
}

// ClearSuggestedClinic clears the "suggested_clinic" edge to the Clinic entity.
func (_u *QuestionOptionUpdate) ClearSuggestedClinic() *QuestionOptionUpdate {
	_u.mutation.ClearSuggestedClinic()
	return _u
}

// ClearChartConnect clears the "chart_connect" edge to the QuestionShare entity.
func (_u *QuestionOptionUpdate) ClearChartConnect() *QuestionOptionUpdate {
	_u.mutation.ClearChartConnect()
	return _u
}

// ClearNumberRanges clears all "number_ranges" edges to the QuestionOptionNumber entity.
func (_u *QuestionOptionUpdate) ClearNumberRanges() *QuestionOptionUpdate {
	_u.mutation.ClearNumberRanges()
	return _u
}

// RemoveNumberRangeIDs removes the "number_ranges" edge to QuestionOptionNumber entities by IDs.
func (_u *QuestionOptionUpdate) RemoveNumberRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.RemoveNumberRangeIDs(ids...)
	return _u
}

// RemoveNumberRanges removes "number_ranges" edges to QuestionOptionNumber entities.
func (_u *QuestionOptionUpdate) RemoveNumberRanges(v ...*QuestionOptionNumber) *QuestionOptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNumberRangeIDs(ids...)
}

// ClearDateRanges clears all "date_ranges" edges to the QuestionOptionDate entity.
func (_u *QuestionOptionUpdate) ClearDateRanges() *QuestionOptionUpdate {
	_u.mutation.ClearDateRanges()
	return _u
}

// RemoveDateRangeIDs removes the "date_ranges" edge to QuestionOptionDate entities by IDs.
func (_u *QuestionOptionUpdate) RemoveDateRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.RemoveDateRangeIDs(ids...)
	return _u
}

// RemoveDateRanges removes "date_ranges" edges to QuestionOptionDate entities.
func (_u *QuestionOptionUpdate) RemoveDateRanges(v ...*QuestionOptionDate) *QuestionOptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDateRangeIDs(ids...)
}

// ClearEquationRanges clears all "equation_ranges" edges to the QuestionOptionEquation entity.
func (_u *QuestionOptionUpdate) ClearEquationRanges() *QuestionOptionUpdate {
	_u.mutation.ClearEquationRanges()
	return _u
}

// RemoveEquationRangeIDs removes the "equation_ranges" edge to QuestionOptionEquation entities by IDs.
func (_u *QuestionOptionUpdate) RemoveEquationRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.RemoveEquationRangeIDs(ids...)
	return _u
}

// RemoveEquationRanges removes "equation_ranges" edges to QuestionOptionEquation entities.
func (_u *QuestionOptionUpdate) RemoveEquationRanges(v ...*QuestionOptionEquation) *QuestionOptionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEquationRangeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionOptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionOptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionOptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionoption.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := questionoption.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "QuestionOption.title": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionOption.question"`)
	}
	return nil
}

func (_u *QuestionOptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoption.Table, questionoption.Columns, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(questionoption.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(questionoption.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(questionoption.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(questionoption.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(questionoption.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(questionoption.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(questionoption.FieldInterpretation, field.TypeString, value)
	}
	if _u.mutation.InterpretationCleared() {
		_spec.ClearField(questionoption.FieldInterpretation, field.TypeString)
	}
	if value, ok := _u.mutation.Tutorial(); ok {
		_spec.SetField(questionoption.FieldTutorial, field.TypeString, value)
	}
	if _u.mutation.TutorialCleared() {
		_spec.ClearField(questionoption.FieldTutorial, field.TypeString)
	}
	if value, ok := _u.mutation.IsBranch(); ok {
		_spec.SetField(questionoption.FieldIsBranch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChartX(); ok {
		_spec.SetField(questionoption.FieldChartX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartX(); ok {
		_spec.AddField(questionoption.FieldChartX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartY(); ok {
		_spec.SetField(questionoption.FieldChartY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartY(); ok {
		_spec.AddField(questionoption.FieldChartY, field.TypeFloat64, value)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.AlertTable,
			Columns: []string{questionoption.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.AlertTable,
			Columns: []string{questionoption.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestedDoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.SuggestedDoctorTable,
			Columns: []string{questionoption.SuggestedDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestedDoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.SuggestedDoctorTable,
			Columns: []string{questionoption.SuggestedDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestedClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.SuggestedClinicTable,
			Columns: []string{questionoption.SuggestedClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestedClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.SuggestedClinicTable,
			Columns: []string{questionoption.SuggestedClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChartConnectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.ChartConnectTable,
			Columns: []string{questionoption.ChartConnectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChartConnectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.ChartConnectTable,
			Columns: []string{questionoption.ChartConnectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NumberRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.NumberRangesTable,
			Columns: []string{questionoption.NumberRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNumberRangesIDs(); len(nodes) > 0 && !_u.mutation.NumberRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.NumberRangesTable,
			Columns: []string{questionoption.NumberRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NumberRangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.NumberRangesTable,
			Columns: []string{questionoption.NumberRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DateRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.DateRangesTable,
			Columns: []string{questionoption.DateRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDateRangesIDs(); len(nodes) > 0 && !_u.mutation.DateRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.DateRangesTable,
			Columns: []string{questionoption.DateRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DateRangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.DateRangesTable,
			Columns: []string{questionoption.DateRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EquationRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.EquationRangesTable,
			Columns: []string{questionoption.EquationRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEquationRangesIDs(); len(nodes) > 0 && !_u.mutation.EquationRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.EquationRangesTable,
			Columns: []string{questionoption.EquationRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EquationRangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.EquationRangesTable,
			Columns: []string{questionoption.EquationRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionOptionUpdateOne is the builder for updating a single QuestionOption entity.
type QuestionOptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionOptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionOptionUpdateOne) SetUpdatedAt(v time.Time) *QuestionOptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuestionOptionUpdateOne) SetDeletedAt(v time.Time) *QuestionOptionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableDeletedAt(v *time.Time) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuestionOptionUpdateOne) ClearDeletedAt() *QuestionOptionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionOptionUpdateOne) SetQuestionID(v uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableQuestionID(v *uuid.UUID) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestionOptionUpdateOne) SetTitle(v string) *QuestionOptionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableTitle(v *string) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *QuestionOptionUpdateOne) SetWeight(v int) *QuestionOptionUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableWeight(v *int) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *QuestionOptionUpdateOne) AddWeight(v int) *QuestionOptionUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *QuestionOptionUpdateOne) SetInterpretation(v string) *QuestionOptionUpdateOne {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableInterpretation(v *string) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// ClearInterpretation clears the value of the "interpretation" field.
func (_u *QuestionOptionUpdateOne) ClearInterpretation() *QuestionOptionUpdateOne {
	_u.mutation.ClearInterpretation()
	return _u
}

// SetTutorial sets the "tutorial" field.
func (_u *QuestionOptionUpdateOne) SetTutorial(v string) *QuestionOptionUpdateOne {
	_u.mutation.SetTutorial(v)
	return _u
}

// SetNillableTutorial sets the "tutorial" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableTutorial(v *string) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetTutorial(*v)
	}
	return _u
}

// ClearTutorial clears the value of the "tutorial" field.
func (_u *QuestionOptionUpdateOne) ClearTutorial() *QuestionOptionUpdateOne {
	_u.mutation.ClearTutorial()
	return _u
}

// SetAlertID sets the "alert_id" field.
func (_u *QuestionOptionUpdateOne) SetAlertID(v uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.SetAlertID(v)
	return _u
}

// SetNillableAlertID sets the "alert_id" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableAlertID(v *uuid.UUID) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetAlertID(*v)
	}
	return _u
}

// ClearAlertID clears the value of the "alert_id" field.
func (_u *QuestionOptionUpdateOne) ClearAlertID() *QuestionOptionUpdateOne {
	_u.mutation.ClearAlertID()
	return _u
}

// SetSuggestedDoctorID sets the "suggested_doctor_id" field.
func (_u *QuestionOptionUpdateOne) SetSuggestedDoctorID(v uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.SetSuggestedDoctorID(v)
	return _u
}

// SetNillableSuggestedDoctorID sets the "suggested_doctor_id" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableSuggestedDoctorID(v *uuid.UUID) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetSuggestedDoctorID(*v)
	}
	return _u
}

// ClearSuggestedDoctorID clears the value of the "suggested_doctor_id" field.
func (_u *QuestionOptionUpdateOne) ClearSuggestedDoctorID() *QuestionOptionUpdateOne {
	_u.mutation.ClearSuggestedDoctorID()
	return _u
}

// SetSuggestedClinicID sets the "suggested_clinic_id" field.
func (_u *QuestionOptionUpdateOne) SetSuggestedClinicID(v uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.SetSuggestedClinicID(v)
	return _u
}

// SetNillableSuggestedClinicID sets the "suggested_clinic_id" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableSuggestedClinicID(v *uuid.UUID) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetSuggestedClinicID(*v)
	}
	return _u
}

// ClearSuggestedClinicID clears the value of the "suggested_clinic_id" field.
func (_u *QuestionOptionUpdateOne) ClearSuggestedClinicID() *QuestionOptionUpdateOne {
	_u.mutation.ClearSuggestedClinicID()
	return _u
}

// SetIsBranch sets the "is_branch" field.
func (_u *QuestionOptionUpdateOne) SetIsBranch(v bool) *QuestionOptionUpdateOne {
	_u.mutation.SetIsBranch(v)
	return _u
}

// SetNillableIsBranch sets the "is_branch" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableIsBranch(v *bool) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetIsBranch(*v)
	}
	return _u
}

// SetChartX sets the "chart_x" field.
func (_u *QuestionOptionUpdateOne) SetChartX(v float64) *QuestionOptionUpdateOne {
	_u.mutation.ResetChartX()
	_u.mutation.SetChartX(v)
	return _u
}

// SetNillableChartX sets the "chart_x" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableChartX(v *float64) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetChartX(*v)
	}
	return _u
}

// AddChartX adds value to the "chart_x" field.
func (_u *QuestionOptionUpdateOne) AddChartX(v float64) *QuestionOptionUpdateOne {
	_u.mutation.AddChartX(v)
	return _u
}

// SetChartY sets the "chart_y" field.
func (_u *QuestionOptionUpdateOne) SetChartY(v float64) *QuestionOptionUpdateOne {
	_u.mutation.ResetChartY()
	_u.mutation.SetChartY(v)
	return _u
}

// SetNillableChartY sets the "chart_y" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableChartY(v *float64) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetChartY(*v)
	}
	return _u
}

// AddChartY adds value to the "chart_y" field.
func (_u *QuestionOptionUpdateOne) AddChartY(v float64) *QuestionOptionUpdateOne {
	_u.mutation.AddChartY(v)
	return _u
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (_u *QuestionOptionUpdateOne) SetChartConnectQuestionID(v uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.SetChartConnectQuestionID(v)
	return _u
}

// SetNillableChartConnectQuestionID sets the "chart_connect_question_id" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableChartConnectQuestionID(v *uuid.UUID) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetChartConnectQuestionID(*v)
	}
	return _u
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (_u *QuestionOptionUpdateOne) ClearChartConnectQuestionID() *QuestionOptionUpdateOne {
	_u.mutation.ClearChartConnectQuestionID()
	return _u
}

// SetQuestion sets the "question" edge to the QuestionShare entity.
func (_u *QuestionOptionUpdateOne) SetQuestion(v *QuestionShare) *QuestionOptionUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// SetAlert sets the "alert" edge to the Alert entity.
func (_u *QuestionOptionUpdateOne) SetAlert(v *Alert) *QuestionOptionUpdateOne {
	return _u.SetAlertID(v.ID)
}

// SetSuggestedDoctor sets the "suggested_doctor" edge to the Doctor entity.
func (_u *QuestionOptionUpdateOne) SetSuggestedDoctor(v *Doctor) *QuestionOptionUpdateOne {
	return _u.SetSuggestedDoctorID(v.ID)
}

// SetSuggestedClinic sets the "suggested_clinic" edge to the Clinic entity.
func (_u *QuestionOptionUpdateOne) SetSuggestedClinic(v *Clinic) *QuestionOptionUpdateOne {
	return _u.SetSuggestedClinicID(v.ID)
}

// SetChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID.
func (_u *QuestionOptionUpdateOne) SetChartConnectID(id uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.SetChartConnectID(id)
	return _u
}

// SetNillableChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableChartConnectID(id *uuid.UUID) *QuestionOptionUpdateOne {
	if id != nil {
		_u = _u.SetChartConnectID(*id)
	}
	return _u
}

// SetChartConnect sets the "chart_connect" edge to the QuestionShare entity.
func (_u *QuestionOptionUpdateOne) SetChartConnect(v *QuestionShare) *QuestionOptionUpdateOne {
	return _u.SetChartConnectID(v.ID)
}

// AddNumberRangeIDs adds the "number_ranges" edge to the QuestionOptionNumber entity by IDs.
func (_u *QuestionOptionUpdateOne) AddNumberRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.AddNumberRangeIDs(ids...)
	return _u
}

// AddNumberRanges adds the "number_ranges" edges to the QuestionOptionNumber entity.
func (_u *QuestionOptionUpdateOne) AddNumberRanges(v ...*QuestionOptionNumber) *QuestionOptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNumberRangeIDs(ids...)
}

// AddDateRangeIDs adds the "date_ranges" edge to the QuestionOptionDate entity by IDs.
func (_u *QuestionOptionUpdateOne) AddDateRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.AddDateRangeIDs(ids...)
	return _u
}

// AddDateRanges adds the "date_ranges" edges to the QuestionOptionDate entity.
func (_u *QuestionOptionUpdateOne) AddDateRanges(v ...*QuestionOptionDate) *QuestionOptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDateRangeIDs(ids...)
}

// AddEquationRangeIDs adds the "equation_ranges" edge to the QuestionOptionEquation entity by IDs.
func (_u *QuestionOptionUpdateOne) AddEquationRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.AddEquationRangeIDs(ids...)
	return _u
}

// AddEquationRanges adds the "equation_ranges" edges to the QuestionOptionEquation entity.
func (_u *QuestionOptionUpdateOne) AddEquationRanges(v ...*QuestionOptionEquation) *QuestionOptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEquationRangeIDs(ids...)
}

// Mutation returns the QuestionOptionMutation object of the builder.
func (_u *QuestionOptionUpdateOne) Mutation() *QuestionOptionMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the QuestionShare entity.
func (_u *QuestionOptionUpdateOne) ClearQuestion() *QuestionOptionUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// ClearAlert clears the "alert" edge to the Alert entity.
func (_u *QuestionOptionUpdateOne) ClearAlert() *QuestionOptionUpdateOne {
	_u.mutation.ClearAlert()
	return _u
}

// ClearSuggestedDoctor clears the "suggested_doctor" edge to the Doctor entity.
func (_u *QuestionOptionUpdateOne) ClearSuggestedDoctor() *QuestionOptionUpdateOne {
	_u.mutation.ClearSuggestedDoctor()
	return _u
}

// ClearSuggestedClinic clears the "suggested_clinic" edge to the Clinic entity.
func (_u *QuestionOptionUpdateOne) ClearSuggestedClinic() *QuestionOptionUpdateOne {
	_u.mutation.ClearSuggestedClinic()
	return _u
}

// ClearChartConnect clears the "chart_connect" edge to the QuestionShare entity.
func (_u *QuestionOptionUpdateOne) ClearChartConnect() *QuestionOptionUpdateOne {
	_u.mutation.ClearChartConnect()
	return _u
}

// ClearNumberRanges clears all "number_ranges" edges to the QuestionOptionNumber entity.
func (_u *QuestionOptionUpdateOne) ClearNumberRanges() *QuestionOptionUpdateOne {
	_u.mutation.ClearNumberRanges()
	return _u
}

// RemoveNumberRangeIDs removes the "number_ranges" edge to QuestionOptionNumber entities by IDs.
func (_u *QuestionOptionUpdateOne) RemoveNumberRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.RemoveNumberRangeIDs(ids...)
	return _u
}

// RemoveNumberRanges removes "number_ranges" edges to QuestionOptionNumber entities.
func (_u *QuestionOptionUpdateOne) RemoveNumberRanges(v ...*QuestionOptionNumber) *QuestionOptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNumberRangeIDs(ids...)
}

// ClearDateRanges clears all "date_ranges" edges to the QuestionOptionDate entity.
func (_u *QuestionOptionUpdateOne) ClearDateRanges() *QuestionOptionUpdateOne {
	_u.mutation.ClearDateRanges()
	return _u
}

// RemoveDateRangeIDs removes the "date_ranges" edge to QuestionOptionDate entities by IDs.
func (_u *QuestionOptionUpdateOne) RemoveDateRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.RemoveDateRangeIDs(ids...)
	return _u
}

// RemoveDateRanges removes "date_ranges" edges to QuestionOptionDate entities.
func (_u *QuestionOptionUpdateOne) RemoveDateRanges(v ...*QuestionOptionDate) *QuestionOptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDateRangeIDs(ids...)
}

// ClearEquationRanges clears all "equation_ranges" edges to the QuestionOptionEquation entity.
func (_u *QuestionOptionUpdateOne) ClearEquationRanges() *QuestionOptionUpdateOne {
	_u.mutation.ClearEquationRanges()
	return _u
}

// RemoveEquationRangeIDs removes the "equation_ranges" edge to QuestionOptionEquation entities by IDs.
func (_u *QuestionOptionUpdateOne) RemoveEquationRangeIDs(ids ...uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.RemoveEquationRangeIDs(ids...)
	return _u
}

// RemoveEquationRanges removes "equation_ranges" edges to QuestionOptionEquation entities.
func (_u *QuestionOptionUpdateOne) RemoveEquationRanges(v ...*QuestionOptionEquation) *QuestionOptionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEquationRangeIDs(ids...)
}

// Where appends a list predicates to the QuestionOptionUpdate builder.
func (_u *QuestionOptionUpdateOne) Where(ps ...predicate.QuestionOption) *QuestionOptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionOptionUpdateOne) Select(field string, fields ...string) *QuestionOptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionOption entity.
func (_u *QuestionOptionUpdateOne) Save(ctx context.Context) (*QuestionOption, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionUpdateOne) SaveX(ctx context.Context) *QuestionOption {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionOptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionOptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionoption.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := questionoption.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "QuestionOption.title": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionOption.question"`)
	}
	return nil
}

func (_u *QuestionOptionUpdateOne) sqlSave(ctx context.Context) (_node *QuestionOption, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoption.Table, questionoption.Columns, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "QuestionOption.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionoption.FieldID)
		for _, f := range fields {
			if !questionoption.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != questionoption.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(questionoption.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(questionoption.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(questionoption.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(questionoption.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(questionoption.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(questionoption.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(questionoption.FieldInterpretation, field.TypeString, value)
	}
	if _u.mutation.InterpretationCleared() {
		_spec.ClearField(questionoption.FieldInterpretation, field.TypeString)
	}
	if value, ok := _u.mutation.Tutorial(); ok {
		_spec.SetField(questionoption.FieldTutorial, field.TypeString, value)
	}
	if _u.mutation.TutorialCleared() {
		_spec.ClearField(questionoption.FieldTutorial, field.TypeString)
	}
	if value, ok := _u.mutation.IsBranch(); ok {
		_spec.SetField(questionoption.FieldIsBranch, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChartX(); ok {
		_spec.SetField(questionoption.FieldChartX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartX(); ok {
		_spec.AddField(questionoption.FieldChartX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartY(); ok {
		_spec.SetField(questionoption.FieldChartY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartY(); ok {
		_spec.AddField(questionoption.FieldChartY, field.TypeFloat64, value)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.AlertTable,
			Columns: []string{questionoption.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.AlertTable,
			Columns: []string{questionoption.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestedDoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.SuggestedDoctorTable,
			Columns: []string{questionoption.SuggestedDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestedDoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.SuggestedDoctorTable,
			Columns: []string{questionoption.SuggestedDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuggestedClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.SuggestedClinicTable,
			Columns: []string{questionoption.SuggestedClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuggestedClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.SuggestedClinicTable,
			Columns: []string{questionoption.SuggestedClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChartConnectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.ChartConnectTable,
			Columns: []string{questionoption.ChartConnectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChartConnectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionoption.ChartConnectTable,
			Columns: []string{questionoption.ChartConnectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NumberRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.NumberRangesTable,
			Columns: []string{questionoption.NumberRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNumberRangesIDs(); len(nodes) > 0 && !_u.mutation.NumberRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.NumberRangesTable,
			Columns: []string{questionoption.NumberRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NumberRangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.NumberRangesTable,
			Columns: []string{questionoption.NumberRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionnumber.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DateRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.DateRangesTable,
			Columns: []string{questionoption.DateRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDateRangesIDs(); len(nodes) > 0 && !_u.mutation.DateRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.DateRangesTable,
			Columns: []string{questionoption.DateRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DateRangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.DateRangesTable,
			Columns: []string{questionoption.DateRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptiondate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EquationRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.EquationRangesTable,
			Columns: []string{questionoption.EquationRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEquationRangesIDs(); len(nodes) > 0 && !_u.mutation.EquationRangesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.EquationRangesTable,
			Columns: []string{questionoption.EquationRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EquationRangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionoption.EquationRangesTable,
			Columns: []string{questionoption.EquationRangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoptionequation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuestionOption{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
