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
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/organ"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionShareUpdate is the builder for updating QuestionShare entities.
type QuestionShareUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionShareMutation
}

// Where appends a list predicates to the QuestionShareUpdate builder.
func (_u *QuestionShareUpdate) Where(ps ...predicate.QuestionShare) *QuestionShareUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionShareUpdate) SetUpdatedAt(v time.Time) *QuestionShareUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuestionShareUpdate) SetDeletedAt(v time.Time) *QuestionShareUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableDeletedAt(v *time.Time) *QuestionShareUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuestionShareUpdate) ClearDeletedAt() *QuestionShareUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *QuestionShareUpdate) SetDoctorID(v uuid.UUID) *QuestionShareUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableDoctorID(v *uuid.UUID) *QuestionShareUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *QuestionShareUpdate) SetClinicID(v uuid.UUID) *QuestionShareUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableClinicID(v *uuid.UUID) *QuestionShareUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *QuestionShareUpdate) ClearClinicID() *QuestionShareUpdate {
	_u.mutation.ClearClinicID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestionShareUpdate) SetTitle(v string) *QuestionShareUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableTitle(v *string) *QuestionShareUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *QuestionShareUpdate) ClearTitle() *QuestionShareUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionShareUpdate) SetPrompt(v string) *QuestionShareUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillablePrompt(v *string) *QuestionShareUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionShareUpdate) SetQuestionType(v questionshare.QuestionType) *QuestionShareUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableQuestionType(v *questionshare.QuestionType) *QuestionShareUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetExpertLevel sets the "expert_level" field.
func (_u *QuestionShareUpdate) SetExpertLevel(v questionshare.ExpertLevel) *QuestionShareUpdate {
	_u.mutation.SetExpertLevel(v)
	return _u
}

// SetNillableExpertLevel sets the "expert_level" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableExpertLevel(v *questionshare.ExpertLevel) *QuestionShareUpdate {
	if v != nil {
		_u.SetExpertLevel(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QuestionShareUpdate) SetPriority(v questionshare.Priority) *QuestionShareUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillablePriority(v *questionshare.Priority) *QuestionShareUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetDateType sets the "date_type" field.
func (_u *QuestionShareUpdate) SetDateType(v questionshare.DateType) *QuestionShareUpdate {
	_u.mutation.SetDateType(v)
	return _u
}

// SetNillableDateType sets the "date_type" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableDateType(v *questionshare.DateType) *QuestionShareUpdate {
	if v != nil {
		_u.SetDateType(*v)
	}
	return _u
}

// SetIsStarter sets the "is_starter" field.
func (_u *QuestionShareUpdate) SetIsStarter(v bool) *QuestionShareUpdate {
	_u.mutation.SetIsStarter(v)
	return _u
}

// SetNillableIsStarter sets the "is_starter" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableIsStarter(v *bool) *QuestionShareUpdate {
	if v != nil {
		_u.SetIsStarter(*v)
	}
	return _u
}

// SetIsEquation sets the "is_equation" field.
func (_u *QuestionShareUpdate) SetIsEquation(v bool) *QuestionShareUpdate {
	_u.mutation.SetIsEquation(v)
	return _u
}

// SetNillableIsEquation sets the "is_equation" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableIsEquation(v *bool) *QuestionShareUpdate {
	if v != nil {
		_u.SetIsEquation(*v)
	}
	return _u
}

// SetEquation sets the "equation" field.
func (_u *QuestionShareUpdate) SetEquation(v string) *QuestionShareUpdate {
	_u.mutation.SetEquation(v)
	return _u
}

// SetNillableEquation sets the "equation" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableEquation(v *string) *QuestionShareUpdate {
	if v != nil {
		_u.SetEquation(*v)
	}
	return _u
}

// ClearEquation clears the value of the "equation" field.
func (_u *QuestionShareUpdate) ClearEquation() *QuestionShareUpdate {
	_u.mutation.ClearEquation()
	return _u
}

// SetChartVisible sets the "chart_visible" field.
func (_u *QuestionShareUpdate) SetChartVisible(v bool) *QuestionShareUpdate {
	_u.mutation.SetChartVisible(v)
	return _u
}

// SetNillableChartVisible sets the "chart_visible" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableChartVisible(v *bool) *QuestionShareUpdate {
	if v != nil {
		_u.SetChartVisible(*v)
	}
	return _u
}

// SetChartSrcX sets the "chart_src_x" field.
func (_u *QuestionShareUpdate) SetChartSrcX(v float64) *QuestionShareUpdate {
	_u.mutation.ResetChartSrcX()
	_u.mutation.SetChartSrcX(v)
	return _u
}

// SetNillableChartSrcX sets the "chart_src_x" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableChartSrcX(v *float64) *QuestionShareUpdate {
	if v != nil {
		_u.SetChartSrcX(*v)
	}
	return _u
}

// AddChartSrcX adds value to the "chart_src_x" field.
func (_u *QuestionShareUpdate) AddChartSrcX(v float64) *QuestionShareUpdate {
	_u.mutation.AddChartSrcX(v)
	return _u
}

// SetChartSrcY sets the "chart_src_y" field.
func (_u *QuestionShareUpdate) SetChartSrcY(v float64) *QuestionShareUpdate {
	_u.mutation.ResetChartSrcY()
	_u.mutation.SetChartSrcY(v)
	return _u
}

// SetNillableChartSrcY sets the "chart_src_y" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableChartSrcY(v *float64) *QuestionShareUpdate {
	if v != nil {
		_u.SetChartSrcY(*v)
	}
	return _u
}

// AddChartSrcY adds value to the "chart_src_y" field.
func (_u *QuestionShareUpdate) AddChartSrcY(v float64) *QuestionShareUpdate {
	_u.mutation.AddChartSrcY(v)
	return _u
}

// SetChartDesX sets the "chart_des_x" field.
func (_u *QuestionShareUpdate) SetChartDesX(v float64) *QuestionShareUpdate {
	_u.mutation.ResetChartDesX()
	_u.mutation.SetChartDesX(v)
	return _u
}

// SetNillableChartDesX sets the "chart_des_x" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableChartDesX(v *float64) *QuestionShareUpdate {
	if v != nil {
		_u.SetChartDesX(*v)
	}
	return _u
}

// AddChartDesX adds value to the "chart_des_x" field.
func (_u *QuestionShareUpdate) AddChartDesX(v float64) *QuestionShareUpdate {
	_u.mutation.AddChartDesX(v)
	return _u
}

// SetChartDesY sets the "chart_des_y" field.
func (_u *QuestionShareUpdate) SetChartDesY(v float64) *QuestionShareUpdate {
	_u.mutation.ResetChartDesY()
	_u.mutation.SetChartDesY(v)
	return _u
}

// SetNillableChartDesY sets the "chart_des_y" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableChartDesY(v *float64) *QuestionShareUpdate {
	if v != nil {
		_u.SetChartDesY(*v)
	}
	return _u
}

// AddChartDesY adds value to the "chart_des_y" field.
func (_u *QuestionShareUpdate) AddChartDesY(v float64) *QuestionShareUpdate {
	_u.mutation.AddChartDesY(v)
	return _u
}

// SetChartBranchCount sets the "chart_branch_count" field.
func (_u *QuestionShareUpdate) SetChartBranchCount(v int) *QuestionShareUpdate {
	_u.mutation.ResetChartBranchCount()
	_u.mutation.SetChartBranchCount(v)
	return _u
}

// SetNillableChartBranchCount sets the "chart_branch_count" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableChartBranchCount(v *int) *QuestionShareUpdate {
	if v != nil {
		_u.SetChartBranchCount(*v)
	}
	return _u
}

// AddChartBranchCount adds value to the "chart_branch_count" field.
func (_u *QuestionShareUpdate) AddChartBranchCount(v int) *QuestionShareUpdate {
	_u.mutation.AddChartBranchCount(v)
	return _u
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (_u *QuestionShareUpdate) SetChartConnectQuestionID(v uuid.UUID) *QuestionShareUpdate {
	_u.mutation.SetChartConnectQuestionID(v)
	return _u
}

// SetNillableChartConnectQuestionID sets the "chart_connect_question_id" field if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableChartConnectQuestionID(v *uuid.UUID) *QuestionShareUpdate {
	if v != nil {
		_u.SetChartConnectQuestionID(*v)
	}
	return _u
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (_u *QuestionShareUpdate) ClearChartConnectQuestionID() *QuestionShareUpdate {
	_u.mutation.ClearChartConnectQuestionID()
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *QuestionShareUpdate) SetDoctor(v *Doctor) *QuestionShareUpdate {
	return _u.SetDoctorID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *QuestionShareUpdate) SetClinic(v *Clinic) *QuestionShareUpdate {
	return _u.SetClinicID(v.ID)
}

// AddOptionIDs adds the "options" edge to the QuestionOption entity by IDs.
func (_u *QuestionShareUpdate) AddOptionIDs(ids ...uuid.UUID) *QuestionShareUpdate {
	_u.mutation.AddOptionIDs(ids...)
	return _u
}

// AddOptions adds the "options" edges to the QuestionOption entity.
func (_u *QuestionShareUpdate) AddOptions(v ...*QuestionOption) *QuestionShareUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOptionIDs(ids...)
}

// AddOrganIDs adds the "organs" edge to the Organ entity by IDs.
func (_u *QuestionShareUpdate) AddOrganIDs(ids ...uuid.UUID) *QuestionShareUpdate {
	_u.mutation.AddOrganIDs(ids...)
	return _u
}

// AddOrgans adds the "organs" edges to the Organ entity.
func (_u *QuestionShareUpdate) AddOrgans(v ...*Organ) *QuestionShareUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrganIDs(ids...)
}

// SetChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID.
func (_u *QuestionShareUpdate) SetChartConnectID(id uuid.UUID) *QuestionShareUpdate {
	_u.mutation.SetChartConnectID(id)
	return _u
}

// SetNillableChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID if the given value is not nil.
func (_u *QuestionShareUpdate) SetNillableChartConnectID(id *uuid.UUID) *QuestionShareUpdate {
	if id != nil {
		_u = _u.SetChartConnectID(*id)
	}
	return _u
}

// SetChartConnect sets the "chart_connect" edge to the QuestionShare entity.
func (_u *QuestionShareUpdate) SetChartConnect(v *QuestionShare) *QuestionShareUpdate {
	return _u.SetChartConnectID(v.ID)
}

// Mutation returns the QuestionShareMutation object of the builder.
func (_u *QuestionShareUpdate) Mutation() *QuestionShareMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *QuestionShareUpdate) ClearDoctor() *QuestionShareUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *QuestionShareUpdate) ClearClinic() *QuestionShareUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// ClearOptions clears all "options" edges to the QuestionOption entity.
func (_u *QuestionShareUpdate) ClearOptions() *QuestionShareUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// RemoveOptionIDs removes the "options" edge to QuestionOption entities by IDs.
func (_u *QuestionShareUpdate) RemoveOptionIDs(ids ...uuid.UUID) *QuestionShareUpdate {
	_u.mutation.RemoveOptionIDs(ids...)
	return _u
}

// RemoveOptions removes "options" edges to QuestionOption entities.
func (_u *QuestionShareUpdate) RemoveOptions(v ...*QuestionOption) *QuestionShareUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOptionIDs(ids...)
}

// ClearOrgans clears all "organs" edges to the Organ entity.
func (_u *QuestionShareUpdate) ClearOrgans() *QuestionShareUpdate {
	_u.mutation.ClearOrgans()
	return _u
}

// RemoveOrganIDs removes the "organs" edge to Organ entities by IDs.
func (_u *QuestionShareUpdate) RemoveOrganIDs(ids ...uuid.UUID) *QuestionShareUpdate {
	_u.mutation.RemoveOrganIDs(ids...)
	return _u
}

// RemoveOrgans removes "organs" edges to Organ entities.
func (_u *QuestionShareUpdate) RemoveOrgans(v ...*Organ) *QuestionShareUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrganIDs(ids...)
}

// ClearChartConnect clears the "chart_connect" edge to the QuestionShare entity.
func (_u *QuestionShareUpdate) ClearChartConnect() *QuestionShareUpdate {
	_u.mutation.ClearChartConnect()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionShareUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionShareUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionShareUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionShareUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionShareUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionshare.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionShareUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := questionshare.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := questionshare.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := questionshare.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpertLevel(); ok {
		if err := questionshare.ExpertLevelValidator(v); err != nil {
			return &ValidationError{Name: "expert_level", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.expert_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := questionshare.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DateType(); ok {
		if err := questionshare.DateTypeValidator(v); err != nil {
			return &ValidationError{Name: "date_type", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.date_type": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionShare.doctor"`)
	}
	return nil
}

func (_u *QuestionShareUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionshare.Table, questionshare.Columns, sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(questionshare.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(questionshare.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(questionshare.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(questionshare.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(questionshare.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(questionshare.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(questionshare.FieldQuestionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpertLevel(); ok {
		_spec.SetField(questionshare.FieldExpertLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(questionshare.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DateType(); ok {
		_spec.SetField(questionshare.FieldDateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsStarter(); ok {
		_spec.SetField(questionshare.FieldIsStarter, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEquation(); ok {
		_spec.SetField(questionshare.FieldIsEquation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Equation(); ok {
		_spec.SetField(questionshare.FieldEquation, field.TypeString, value)
	}
	if _u.mutation.EquationCleared() {
		_spec.ClearField(questionshare.FieldEquation, field.TypeString)
	}
	if value, ok := _u.mutation.ChartVisible(); ok {
		_spec.SetField(questionshare.FieldChartVisible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChartSrcX(); ok {
		_spec.SetField(questionshare.FieldChartSrcX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartSrcX(); ok {
		_spec.AddField(questionshare.FieldChartSrcX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartSrcY(); ok {
		_spec.SetField(questionshare.FieldChartSrcY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartSrcY(); ok {
		_spec.AddField(questionshare.FieldChartSrcY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartDesX(); ok {
		_spec.SetField(questionshare.FieldChartDesX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartDesX(); ok {
		_spec.AddField(questionshare.FieldChartDesX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartDesY(); ok {
		_spec.SetField(questionshare.FieldChartDesY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartDesY(); ok {
		_spec.AddField(questionshare.FieldChartDesY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartBranchCount(); ok {
		_spec.SetField(questionshare.FieldChartBranchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChartBranchCount(); ok {
		_spec.AddField(questionshare.FieldChartBranchCount, field.TypeInt, value)
	}
	if _u.mutation.DoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionshare.DoctorTable,
			Columns: []string{questionshare.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionshare.DoctorTable,
			Columns: []string{questionshare.DoctorColumn},
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
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionshare.ClinicTable,
			Columns: []string{questionshare.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionshare.ClinicTable,
			Columns: []string{questionshare.ClinicColumn},
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
	if _u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionshare.OptionsTable,
			Columns: []string{questionshare.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOptionsIDs(); len(nodes) > 0 && !_u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionshare.OptionsTable,
			Columns: []string{questionshare.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionshare.OptionsTable,
			Columns: []string{questionshare.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrgansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   questionshare.OrgansTable,
			Columns: questionshare.OrgansPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organ.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrgansIDs(); len(nodes) > 0 && !_u.mutation.OrgansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   questionshare.OrgansTable,
			Columns: questionshare.OrgansPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organ.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrgansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   questionshare.OrgansTable,
			Columns: questionshare.OrgansPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organ.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChartConnectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   questionshare.ChartConnectTable,
			Columns: []string{questionshare.ChartConnectColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChartConnectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   questionshare.ChartConnectTable,
			Columns: []string{questionshare.ChartConnectColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionshare.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionShareUpdateOne is the builder for updating a single QuestionShare entity.
type QuestionShareUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionShareMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionShareUpdateOne) SetUpdatedAt(v time.Time) *QuestionShareUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuestionShareUpdateOne) SetDeletedAt(v time.Time) *QuestionShareUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableDeletedAt(v *time.Time) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuestionShareUpdateOne) ClearDeletedAt() *QuestionShareUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *QuestionShareUpdateOne) SetDoctorID(v uuid.UUID) *QuestionShareUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableDoctorID(v *uuid.UUID) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *QuestionShareUpdateOne) SetClinicID(v uuid.UUID) *QuestionShareUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableClinicID(v *uuid.UUID) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *QuestionShareUpdateOne) ClearClinicID() *QuestionShareUpdateOne {
	_u.mutation.ClearClinicID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestionShareUpdateOne) SetTitle(v string) *QuestionShareUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableTitle(v *string) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *QuestionShareUpdateOne) ClearTitle() *QuestionShareUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionShareUpdateOne) SetPrompt(v string) *QuestionShareUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillablePrompt(v *string) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionShareUpdateOne) SetQuestionType(v questionshare.QuestionType) *QuestionShareUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableQuestionType(v *questionshare.QuestionType) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetExpertLevel sets the "expert_level" field.
func (_u *QuestionShareUpdateOne) SetExpertLevel(v questionshare.ExpertLevel) *QuestionShareUpdateOne {
	_u.mutation.SetExpertLevel(v)
	return _u
}

// SetNillableExpertLevel sets the "expert_level" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableExpertLevel(v *questionshare.ExpertLevel) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetExpertLevel(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QuestionShareUpdateOne) SetPriority(v questionshare.Priority) *QuestionShareUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillablePriority(v *questionshare.Priority) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetDateType sets the "date_type" field.
func (_u *QuestionShareUpdateOne) SetDateType(v questionshare.DateType) *QuestionShareUpdateOne {
	_u.mutation.SetDateType(v)
	return _u
}

// SetNillableDateType sets the "date_type" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableDateType(v *questionshare.DateType) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetDateType(*v)
	}
	return _u
}

// SetIsStarter sets the "is_starter" field.
func (_u *QuestionShareUpdateOne) SetIsStarter(v bool) *QuestionShareUpdateOne {
	_u.mutation.SetIsStarter(v)
	return _u
}

// SetNillableIsStarter sets the "is_starter" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableIsStarter(v *bool) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetIsStarter(*v)
	}
	return _u
}

// SetIsEquation sets the "is_equation" field.
func (_u *QuestionShareUpdateOne) SetIsEquation(v bool) *QuestionShareUpdateOne {
	_u.mutation.SetIsEquation(v)
	return _u
}

// SetNillableIsEquation sets the "is_equation" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableIsEquation(v *bool) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetIsEquation(*v)
	}
	return _u
}

// SetEquation sets the "equation" field.
func (_u *QuestionShareUpdateOne) SetEquation(v string) *QuestionShareUpdateOne {
	_u.mutation.SetEquation(v)
	return _u
}

// SetNillableEquation sets the "equation" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableEquation(v *string) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetEquation(*v)
	}
	return _u
}

// ClearEquation clears the value of the "equation" field.
func (_u *QuestionShareUpdateOne) ClearEquation() *QuestionShareUpdateOne {
	_u.mutation.ClearEquation()
	return _u
}

// SetChartVisible sets the "chart_visible" field.
func (_u *QuestionShareUpdateOne) SetChartVisible(v bool) *QuestionShareUpdateOne {
	_u.mutation.SetChartVisible(v)
	return _u
}

// SetNillableChartVisible sets the "chart_visible" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableChartVisible(v *bool) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetChartVisible(*v)
	}
	return _u
}

// SetChartSrcX sets the "chart_src_x" field.
func (_u *QuestionShareUpdateOne) SetChartSrcX(v float64) *QuestionShareUpdateOne {
	_u.mutation.ResetChartSrcX()
	_u.mutation.SetChartSrcX(v)
	return _u
}

// SetNillableChartSrcX sets the "chart_src_x" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableChartSrcX(v *float64) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetChartSrcX(*v)
	}
	return _u
}

// AddChartSrcX adds value to the "chart_src_x" field.
func (_u *QuestionShareUpdateOne) AddChartSrcX(v float64) *QuestionShareUpdateOne {
	_u.mutation.AddChartSrcX(v)
	return _u
}

// SetChartSrcY sets the "chart_src_y" field.
func (_u *QuestionShareUpdateOne) SetChartSrcY(v float64) *QuestionShareUpdateOne {
	_u.mutation.ResetChartSrcY()
	_u.mutation.SetChartSrcY(v)
	return _u
}

// SetNillableChartSrcY sets the "chart_src_y" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableChartSrcY(v *float64) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetChartSrcY(*v)
	}
	return _u
}

// AddChartSrcY adds value to the "chart_src_y" field.
func (_u *QuestionShareUpdateOne) AddChartSrcY(v float64) *QuestionShareUpdateOne {
	_u.mutation.AddChartSrcY(v)
	return _u
}

// SetChartDesX sets the "chart_des_x" field.
func (_u *QuestionShareUpdateOne) SetChartDesX(v float64) *QuestionShareUpdateOne {
	_u.mutation.ResetChartDesX()
	_u.mutation.SetChartDesX(v)
	return _u
}

// SetNillableChartDesX sets the "chart_des_x" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableChartDesX(v *float64) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetChartDesX(*v)
	}
	return _u
}

// AddChartDesX adds value to the "chart_des_x" field.
func (_u *QuestionShareUpdateOne) AddChartDesX(v float64) *QuestionShareUpdateOne {
	_u.mutation.AddChartDesX(v)
	return _u
}

// SetChartDesY sets the "chart_des_y" field.
func (_u *QuestionShareUpdateOne) SetChartDesY(v float64) *QuestionShareUpdateOne {
	_u.mutation.ResetChartDesY()
	_u.mutation.SetChartDesY(v)
	return _u
}

// SetNillableChartDesY sets the "chart_des_y" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableChartDesY(v *float64) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetChartDesY(*v)
	}
	return _u
}

// AddChartDesY adds value to the "chart_des_y" field.
func (_u *QuestionShareUpdateOne) AddChartDesY(v float64) *QuestionShareUpdateOne {
	_u.mutation.AddChartDesY(v)
	return _u
}

// SetChartBranchCount sets the "chart_branch_count" field.
func (_u *QuestionShareUpdateOne) SetChartBranchCount(v int) *QuestionShareUpdateOne {
	_u.mutation.ResetChartBranchCount()
	_u.mutation.SetChartBranchCount(v)
	return _u
}

// SetNillableChartBranchCount sets the "chart_branch_count" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableChartBranchCount(v *int) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetChartBranchCount(*v)
	}
	return _u
}

// AddChartBranchCount adds value to the "chart_branch_count" field.
func (_u *QuestionShareUpdateOne) AddChartBranchCount(v int) *QuestionShareUpdateOne {
	_u.mutation.AddChartBranchCount(v)
	return _u
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (_u *QuestionShareUpdateOne) SetChartConnectQuestionID(v uuid.UUID) *QuestionShareUpdateOne {
	_u.mutation.SetChartConnectQuestionID(v)
	return _u
}

// SetNillableChartConnectQuestionID sets the "chart_connect_question_id" field if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableChartConnectQuestionID(v *uuid.UUID) *QuestionShareUpdateOne {
	if v != nil {
		_u.SetChartConnectQuestionID(*v)
	}
	return _u
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (_u *QuestionShareUpdateOne) ClearChartConnectQuestionID() *QuestionShareUpdateOne {
	_u.mutation.ClearChartConnectQuestionID()
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *QuestionShareUpdateOne) SetDoctor(v *Doctor) *QuestionShareUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *QuestionShareUpdateOne) SetClinic(v *Clinic) *QuestionShareUpdateOne {
	return _u.SetClinicID(v.ID)
}

// AddOptionIDs adds the "options" edge to the QuestionOption entity by IDs.
func (_u *QuestionShareUpdateOne) AddOptionIDs(ids ...uuid.UUID) *QuestionShareUpdateOne {
	_u.mutation.AddOptionIDs(ids...)
	return _u
}

// AddOptions adds the "options" edges to the QuestionOption entity.
func (_u *QuestionShareUpdateOne) AddOptions(v ...*QuestionOption) *QuestionShareUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOptionIDs(ids...)
}

// AddOrganIDs adds the "organs" edge to the Organ entity by IDs.
func (_u *QuestionShareUpdateOne) AddOrganIDs(ids ...uuid.UUID) *QuestionShareUpdateOne {
	_u.mutation.AddOrganIDs(ids...)
	return _u
}

// AddOrgans adds the "organs" edges to the Organ entity.
func (_u *QuestionShareUpdateOne) AddOrgans(v ...*Organ) *QuestionShareUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrganIDs(ids...)
}

// SetChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID.
func (_u *QuestionShareUpdateOne) SetChartConnectID(id uuid.UUID) *QuestionShareUpdateOne {
	_u.mutation.SetChartConnectID(id)
	return _u
}

// SetNillableChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID if the given value is not nil.
func (_u *QuestionShareUpdateOne) SetNillableChartConnectID(id *uuid.UUID) *QuestionShareUpdateOne {
	if id != nil {
		_u = _u.SetChartConnectID(*id)
	}
	return _u
}

// SetChartConnect sets the "chart_connect" edge to the QuestionShare entity.
func (_u *QuestionShareUpdateOne) SetChartConnect(v *QuestionShare) *QuestionShareUpdateOne {
	return _u.SetChartConnectID(v.ID)
}

// Mutation returns the QuestionShareMutation object of the builder.
func (_u *QuestionShareUpdateOne) Mutation() *QuestionShareMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *QuestionShareUpdateOne) ClearDoctor() *QuestionShareUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *QuestionShareUpdateOne) ClearClinic() *QuestionShareUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// ClearOptions clears all "options" edges to the QuestionOption entity.
func (_u *QuestionShareUpdateOne) ClearOptions() *QuestionShareUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// RemoveOptionIDs removes the "options" edge to QuestionOption entities by IDs.
func (_u *QuestionShareUpdateOne) RemoveOptionIDs(ids ...uuid.UUID) *QuestionShareUpdateOne {
	_u.mutation.RemoveOptionIDs(ids...)
	return _u
}

// RemoveOptions removes "options" edges to QuestionOption entities.
func (_u *QuestionShareUpdateOne) RemoveOptions(v ...*QuestionOption) *QuestionShareUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOptionIDs(ids...)
}

// ClearOrgans clears all "organs" edges to the Organ entity.
func (_u *QuestionShareUpdateOne) ClearOrgans() *QuestionShareUpdateOne {
	_u.mutation.ClearOrgans()
	return _u
}

// RemoveOrganIDs removes the "organs" edge to Organ entities by IDs.
func (_u *QuestionShareUpdateOne) RemoveOrganIDs(ids ...uuid.UUID) *QuestionShareUpdateOne {
	_u.mutation.RemoveOrganIDs(ids...)
	return _u
}

// RemoveOrgans removes "organs" edges to Organ entities.
func (_u *QuestionShareUpdateOne) RemoveOrgans(v ...*Organ) *QuestionShareUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrganIDs(ids...)
}

// ClearChartConnect clears the "chart_connect" edge to the QuestionShare entity.
func (_u *QuestionShareUpdateOne) ClearChartConnect() *QuestionShareUpdateOne {
	_u.mutation.ClearChartConnect()
	return _u
}

// Where appends a list predicates to the QuestionShareUpdate builder.
func (_u *QuestionShareUpdateOne) Where(ps ...predicate.QuestionShare) *QuestionShareUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionShareUpdateOne) Select(field string, fields ...string) *QuestionShareUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionShare entity.
func (_u *QuestionShareUpdateOne) Save(ctx context.Context) (*QuestionShare, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionShareUpdateOne) SaveX(ctx context.Context) *QuestionShare {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionShareUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionShareUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionShareUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := questionshare.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionShareUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := questionshare.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := questionshare.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := questionshare.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpertLevel(); ok {
		if err := questionshare.ExpertLevelValidator(v); err != nil {
			return &ValidationError{Name: "expert_level", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.expert_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := questionshare.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DateType(); ok {
		if err := questionshare.DateTypeValidator(v); err != nil {
			return &ValidationError{Name: "date_type", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.date_type": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "QuestionShare.doctor"`)
	}
	return nil
}

func (_u *QuestionShareUpdateOne) sqlSave(ctx context.Context) (_node *QuestionShare, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionshare.Table, questionshare.Columns, sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "QuestionShare.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionshare.FieldID)
		for _, f := range fields {
			if !questionshare.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != questionshare.FieldID {
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
		_spec.SetField(questionshare.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(questionshare.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(questionshare.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(questionshare.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(questionshare.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(questionshare.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(questionshare.FieldQuestionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpertLevel(); ok {
		_spec.SetField(questionshare.FieldExpertLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(questionshare.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DateType(); ok {
		_spec.SetField(questionshare.FieldDateType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsStarter(); ok {
		_spec.SetField(questionshare.FieldIsStarter, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEquation(); ok {
		_spec.SetField(questionshare.FieldIsEquation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Equation(); ok {
		_spec.SetField(questionshare.FieldEquation, field.TypeString, value)
	}
	if _u.mutation.EquationCleared() {
		_spec.ClearField(questionshare.FieldEquation, field.TypeString)
	}
	if value, ok := _u.mutation.ChartVisible(); ok {
		_spec.SetField(questionshare.FieldChartVisible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChartSrcX(); ok {
		_spec.SetField(questionshare.FieldChartSrcX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartSrcX(); ok {
		_spec.AddField(questionshare.FieldChartSrcX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartSrcY(); ok {
		_spec.SetField(questionshare.FieldChartSrcY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartSrcY(); ok {
		_spec.AddField(questionshare.FieldChartSrcY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartDesX(); ok {
		_spec.SetField(questionshare.FieldChartDesX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartDesX(); ok {
		_spec.AddField(questionshare.FieldChartDesX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartDesY(); ok {
		_spec.SetField(questionshare.FieldChartDesY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedChartDesY(); ok {
		_spec.AddField(questionshare.FieldChartDesY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ChartBranchCount(); ok {
		_spec.SetField(questionshare.FieldChartBranchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChartBranchCount(); ok {
		_spec.AddField(questionshare.FieldChartBranchCount, field.TypeInt, value)
	}
	if _u.mutation.DoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionshare.DoctorTable,
			Columns: []string{questionshare.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionshare.DoctorTable,
			Columns: []string{questionshare.DoctorColumn},
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
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionshare.ClinicTable,
			Columns: []string{questionshare.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   questionshare.ClinicTable,
			Columns: []string{questionshare.ClinicColumn},
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
	if _u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionshare.OptionsTable,
			Columns: []string{questionshare.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOptionsIDs(); len(nodes) > 0 && !_u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionshare.OptionsTable,
			Columns: []string{questionshare.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   questionshare.OptionsTable,
			Columns: []string{questionshare.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrgansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   questionshare.OrgansTable,
			Columns: questionshare.OrgansPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organ.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrgansIDs(); len(nodes) > 0 && !_u.mutation.OrgansCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   questionshare.OrgansTable,
			Columns: questionshare.OrgansPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organ.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrgansIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   questionshare.OrgansTable,
			Columns: questionshare.OrgansPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organ.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChartConnectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   questionshare.ChartConnectTable,
			Columns: []string{questionshare.ChartConnectColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChartConnectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   questionshare.ChartConnectTable,
			Columns: []string{questionshare.ChartConnectColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuestionShare{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionshare.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
