// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/organ"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionShareCreate is the builder for creating a QuestionShare entity.
type QuestionShareCreate struct {
	config
	mutation *QuestionShareMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionShareCreate) SetCreatedAt(v time.Time) *QuestionShareCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableCreatedAt(v *time.Time) *QuestionShareCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionShareCreate) SetUpdatedAt(v time.Time) *QuestionShareCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableUpdatedAt(v *time.Time) *QuestionShareCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *QuestionShareCreate) SetDeletedAt(v time.Time) *QuestionShareCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableDeletedAt(v *time.Time) *QuestionShareCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *QuestionShareCreate) SetDoctorID(v uuid.UUID) *QuestionShareCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *QuestionShareCreate) SetClinicID(v uuid.UUID) *QuestionShareCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableClinicID(v *uuid.UUID) *QuestionShareCreate {
	if v != nil {
		_c.SetClinicID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *QuestionShareCreate) SetTitle(v string) *QuestionShareCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableTitle(v *string) *QuestionShareCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *QuestionShareCreate) SetPrompt(v string) *QuestionShareCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionShareCreate) SetQuestionType(v questionshare.QuestionType) *QuestionShareCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableQuestionType(v *questionshare.QuestionType) *QuestionShareCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetExpertLevel sets the "expert_level" field.
func (_c *QuestionShareCreate) SetExpertLevel(v questionshare.ExpertLevel) *QuestionShareCreate {
	_c.mutation.SetExpertLevel(v)
	return _c
}

// SetNillableExpertLevel sets the "expert_level" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableExpertLevel(v *questionshare.ExpertLevel) *QuestionShareCreate {
	if v != nil {
		_c.SetExpertLevel(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *QuestionShareCreate) SetPriority(v questionshare.Priority) *QuestionShareCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillablePriority(v *questionshare.Priority) *QuestionShareCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDateType sets the "date_type" field.
func (_c *QuestionShareCreate) SetDateType(v questionshare.DateType) *QuestionShareCreate {
	_c.mutation.SetDateType(v)
	return _c
}

// SetNillableDateType sets the "date_type" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableDateType(v *questionshare.DateType) *QuestionShareCreate {
	if v != nil {
		_c.SetDateType(*v)
	}
	return _c
}

// SetIsStarter sets the "is_starter" field.
func (_c *QuestionShareCreate) SetIsStarter(v bool) *QuestionShareCreate {
	_c.mutation.SetIsStarter(v)
	return _c
}

// SetNillableIsStarter sets the "is_starter" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableIsStarter(v *bool) *QuestionShareCreate {
	if v != nil {
		_c.SetIsStarter(*v)
	}
	return _c
}

// SetIsEquation sets the "is_equation" field.
func (_c *QuestionShareCreate) SetIsEquation(v bool) *QuestionShareCreate {
	_c.mutation.SetIsEquation(v)
	return _c
}

// SetNillableIsEquation sets the "is_equation" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableIsEquation(v *bool) *QuestionShareCreate {
	if v != nil {
		_c.SetIsEquation(*v)
	}
	return _c
}

// SetEquation sets the "equation" field.
func (_c *QuestionShareCreate) SetEquation(v string) *QuestionShareCreate {
	_c.mutation.SetEquation(v)
	return _c
}

// SetNillableEquation sets the "equation" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableEquation(v *string) *QuestionShareCreate {
	if v != nil {
		_c.SetEquation(*v)
	}
	return _c
}

// SetChartVisible sets the "chart_visible" field.
func (_c *QuestionShareCreate) SetChartVisible(v bool) *QuestionShareCreate {
	_c.mutation.SetChartVisible(v)
	return _c
}

// SetNillableChartVisible sets the "chart_visible" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableChartVisible(v *bool) *QuestionShareCreate {
	if v != nil {
		_c.SetChartVisible(*v)
	}
	return _c
}

// SetChartSrcX sets the "chart_src_x" field.
func (_c *QuestionShareCreate) SetChartSrcX(v float64) *QuestionShareCreate {
	_c.mutation.SetChartSrcX(v)
	return _c
}

// SetNillableChartSrcX sets the "chart_src_x" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableChartSrcX(v *float64) *QuestionShareCreate {
	if v != nil {
		_c.SetChartSrcX(*v)
	}
	return _c
}

// SetChartSrcY sets the "chart_src_y" field.
func (_c *QuestionShareCreate) SetChartSrcY(v float64) *QuestionShareCreate {
	_c.mutation.SetChartSrcY(v)
	return _c
}

// SetNillableChartSrcY sets the "chart_src_y" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableChartSrcY(v *float64) *QuestionShareCreate {
	if v != nil {
		_c.SetChartSrcY(*v)
	}
	return _c
}

// SetChartDesX sets the "chart_des_x" field.
func (_c *QuestionShareCreate) SetChartDesX(v float64) *QuestionShareCreate {
	_c.mutation.SetChartDesX(v)
	return _c
}

// SetNillableChartDesX sets the "chart_des_x" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableChartDesX(v *float64) *QuestionShareCreate {
	if v != nil {
		_c.SetChartDesX(*v)
	}
	return _c
}

// SetChartDesY sets the "chart_des_y" field.
func (_c *QuestionShareCreate) SetChartDesY(v float64) *QuestionShareCreate {
	_c.mutation.SetChartDesY(v)
	return _c
}

// SetNillableChartDesY sets the "chart_des_y" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableChartDesY(v *float64) *QuestionShareCreate {
	if v != nil {
		_c.SetChartDesY(*v)
	}
	return _c
}

// SetChartBranchCount sets the "chart_branch_count" field.
func (_c *QuestionShareCreate) SetChartBranchCount(v int) *QuestionShareCreate {
	_c.mutation.SetChartBranchCount(v)
	return _c
}

// SetNillableChartBranchCount sets the "chart_branch_count" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableChartBranchCount(v *int) *QuestionShareCreate {
	if v != nil {
		_c.SetChartBranchCount(*v)
	}
	return _c
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (_c *QuestionShareCreate) SetChartConnectQuestionID(v uuid.UUID) *QuestionShareCreate {
	_c.mutation.SetChartConnectQuestionID(v)
	return _c
}

// SetNillableChartConnectQuestionID sets the "chart_connect_question_id" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableChartConnectQuestionID(v *uuid.UUID) *QuestionShareCreate {
	if v != nil {
		_c.SetChartConnectQuestionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionShareCreate) SetID(v uuid.UUID) *QuestionShareCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableID(v *uuid.UUID) *QuestionShareCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *QuestionShareCreate) SetDoctor(v *Doctor) *QuestionShareCreate {
	return _c.SetDoctorID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *QuestionShareCreate) SetClinic(v *Clinic) *QuestionShareCreate {
	return _c.SetClinicID(v.ID)
}

// AddOptionIDs adds the "options" edge to the QuestionOption entity by IDs.
func (_c *QuestionShareCreate) AddOptionIDs(ids ...uuid.UUID) *QuestionShareCreate {
	_c.mutation.AddOptionIDs(ids...)
	return _c
}

// AddOptions adds the "options" edges to the QuestionOption entity.
func (_c *QuestionShareCreate) AddOptions(v ...*QuestionOption) *QuestionShareCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOptionIDs(ids...)
}

// AddOrganIDs adds the "organs" edge to the Organ entity by IDs.
func (_c *QuestionShareCreate) AddOrganIDs(ids ...uuid.UUID) *QuestionShareCreate {
	_c.mutation.AddOrganIDs(ids...)
	return _c
}

// AddOrgans adds the "organs" edges to the Organ entity.
func (_c *QuestionShareCreate) AddOrgans(v ...*Organ) *QuestionShareCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrganIDs(ids...)
}

// SetChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID.
func (_c *QuestionShareCreate) SetChartConnectID(id uuid.UUID) *QuestionShareCreate {
	_c.mutation.SetChartConnectID(id)
	return _c
}

// SetNillableChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID if the given value is not nil.
func (_c *QuestionShareCreate) SetNillableChartConnectID(id *uuid.UUID) *QuestionShareCreate {
	if id != nil {
		_c = _c.SetChartConnectID(*id)
	}
	return _c
}

// SetChartConnect sets the "chart_connect" edge to the QuestionShare entity.
func (_c *QuestionShareCreate) SetChartConnect(v *QuestionShare) *QuestionShareCreate {
	return _c.SetChartConnectID(v.ID)
}

// Mutation returns the QuestionShareMutation object of the builder.
func (_c *QuestionShareCreate) Mutation() *QuestionShareMutation {
	return _c.mutation
}

// Save creates the QuestionShare in the database.
func (_c *QuestionShareCreate) Save(ctx context.Context) (*QuestionShare, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionShareCreate) SaveX(ctx context.Context) *QuestionShare {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionShareCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionShareCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionShareCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionshare.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := questionshare.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		v := questionshare.DefaultQuestionType
		_c.mutation.SetQuestionType(v)
	}
	if _, ok := _c.mutation.ExpertLevel(); !ok {
		v := questionshare.DefaultExpertLevel
		_c.mutation.SetExpertLevel(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := questionshare.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.DateType(); !ok {
		v := questionshare.DefaultDateType
		_c.mutation.SetDateType(v)
	}
	if _, ok := _c.mutation.IsStarter(); !ok {
		v := questionshare.DefaultIsStarter
		_c.mutation.SetIsStarter(v)
	}
	if _, ok := _c.mutation.IsEquation(); !ok {
		v := questionshare.DefaultIsEquation
		_c.mutation.SetIsEquation(v)
	}
	if _, ok := _c.mutation.ChartVisible(); !ok {
		v := questionshare.DefaultChartVisible
		_c.mutation.SetChartVisible(v)
	}
	if _, ok := _c.mutation.ChartSrcX(); !ok {
		v := questionshare.DefaultChartSrcX
		_c.mutation.SetChartSrcX(v)
	}
	if _, ok := _c.mutation.ChartSrcY(); !ok {
		v := questionshare.DefaultChartSrcY
		_c.mutation.SetChartSrcY(v)
	}
	if _, ok := _c.mutation.ChartDesX(); !ok {
		v := questionshare.DefaultChartDesX
		_c.mutation.SetChartDesX(v)
	}
	if _, ok := _c.mutation.ChartDesY(); !ok {
		v := questionshare.DefaultChartDesY
		_c.mutation.SetChartDesY(v)
	}
	if _, ok := _c.mutation.ChartBranchCount(); !ok {
		v := questionshare.DefaultChartBranchCount
		_c.mutation.SetChartBranchCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionshare.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionShareCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "QuestionShare.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "QuestionShare.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "QuestionShare.doctor_id"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := questionshare.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`repo: missing required field "QuestionShare.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := questionshare.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`repo: missing required field "QuestionShare.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := questionshare.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpertLevel(); !ok {
		return &ValidationError{Name: "expert_level", err: errors.New(`repo: missing required field "QuestionShare.expert_level"`)}
	}
	if v, ok := _c.mutation.ExpertLevel(); ok {
		if err := questionshare.ExpertLevelValidator(v); err != nil {
			return &ValidationError{Name: "expert_level", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.expert_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "QuestionShare.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := questionshare.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DateType(); !ok {
		return &ValidationError{Name: "date_type", err: errors.New(`repo: missing required field "QuestionShare.date_type"`)}
	}
	if v, ok := _c.mutation.DateType(); ok {
		if err := questionshare.DateTypeValidator(v); err != nil {
			return &ValidationError{Name: "date_type", err: fmt.Errorf(`repo: validator failed for field "QuestionShare.date_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsStarter(); !ok {
		return &ValidationError{Name: "is_starter", err: errors.New(`repo: missing required field "QuestionShare.is_starter"`)}
	}
	if _, ok := _c.mutation.IsEquation(); !ok {
		return &ValidationError{Name: "is_equation", err: errors.New(`repo: missing required field "QuestionShare.is_equation"`)}
	}
	if _, ok := _c.mutation.ChartVisible(); !ok {
		return &ValidationError{Name: "chart_visible", err: errors.New(`repo: missing required field "QuestionShare.chart_visible"`)}
	}
	if _, ok := _c.mutation.ChartSrcX(); !ok {
		return &ValidationError{Name: "chart_src_x", err: errors.New(`repo: missing required field "QuestionShare.chart_src_x"`)}
	}
	if _, ok := _c.mutation.ChartSrcY(); !ok {
		return &ValidationError{Name: "chart_src_y", err: errors.New(`repo: missing required field "QuestionShare.chart_src_y"`)}
	}
	if _, ok := _c.mutation.ChartDesX(); !ok {
		return &ValidationError{Name: "chart_des_x", err: errors.New(`repo: missing required field "QuestionShare.chart_des_x"`)}
	}
	if _, ok := _c.mutation.ChartDesY(); !ok {
		return &ValidationError{Name: "chart_des_y", err: errors.New(`repo: missing required field "QuestionShare.chart_des_y"`)}
	}
	if _, ok := _c.mutation.ChartBranchCount(); !ok {
		return &ValidationError{Name: "chart_branch_count", err: errors.New(`repo: missing required field "QuestionShare.chart_branch_count"`)}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "QuestionShare.doctor"`)}
	}
	return nil
}

func (_c *QuestionShareCreate) sqlSave(ctx context.Context) (*QuestionShare, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionShareCreate) createSpec() (*QuestionShare, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionShare{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionshare.Table, sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionshare.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(questionshare.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(questionshare.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(questionshare.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(questionshare.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(questionshare.FieldQuestionType, field.TypeEnum, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.ExpertLevel(); ok {
		_spec.SetField(questionshare.FieldExpertLevel, field.TypeEnum, value)
		_node.ExpertLevel = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(questionshare.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.DateType(); ok {
		_spec.SetField(questionshare.FieldDateType, field.TypeEnum, value)
		_node.DateType = value
	}
	if value, ok := _c.mutation.IsStarter(); ok {
		_spec.SetField(questionshare.FieldIsStarter, field.TypeBool, value)
		_node.IsStarter = value
	}
	if value, ok := _c.mutation.IsEquation(); ok {
		_spec.SetField(questionshare.FieldIsEquation, field.TypeBool, value)
		_node.IsEquation = value
	}
	if value, ok := _c.mutation.Equation(); ok {
		_spec.SetField(questionshare.FieldEquation, field.TypeString, value)
		_node.Equation = &value
	}
	if value, ok := _c.mutation.ChartVisible(); ok {
		_spec.SetField(questionshare.FieldChartVisible, field.TypeBool, value)
		_node.ChartVisible = value
	}
	if value, ok := _c.mutation.ChartSrcX(); ok {
		_spec.SetField(questionshare.FieldChartSrcX, field.TypeFloat64, value)
		_node.ChartSrcX = value
	}
	if value, ok := _c.mutation.ChartSrcY(); ok {
		_spec.SetField(questionshare.FieldChartSrcY, field.TypeFloat64, value)
		_node.ChartSrcY = value
	}
	if value, ok := _c.mutation.ChartDesX(); ok {
		_spec.SetField(questionshare.FieldChartDesX, field.TypeFloat64, value)
		_node.ChartDesX = value
	}
	if value, ok := _c.mutation.ChartDesY(); ok {
		_spec.SetField(questionshare.FieldChartDesY, field.TypeFloat64, value)
		_node.ChartDesY = value
	}
	if value, ok := _c.mutation.ChartBranchCount(); ok {
		_spec.SetField(questionshare.FieldChartBranchCount, field.TypeInt, value)
		_node.ChartBranchCount = value
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_node.DoctorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_node.ClinicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrgansIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChartConnectIDs(); len(nodes) > 0 {
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
		_node.ChartConnectQuestionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionShare.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionShareUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionShareCreate) OnConflict(opts ...sql.ConflictOption) *QuestionShareUpsertOne {
	_c.conflict = opts
	return &QuestionShareUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionShare.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionShareCreate) OnConflictColumns(columns ...string) *QuestionShareUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionShareUpsertOne{
		create: _c,
	}
}

type (
	// QuestionShareUpsertOne is the builder for "upsert"-ing
	//  one QuestionShare node.
	QuestionShareUpsertOne struct {
		create *QuestionShareCreate
	}

	// QuestionShareUpsert is the "OnConflict" setter.
	QuestionShareUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionShareUpsert) SetUpdatedAt(v time.Time) *QuestionShareUpsert {
	u.Set(questionshare.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateUpdatedAt() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionShareUpsert) SetDeletedAt(v time.Time) *QuestionShareUpsert {
	u.Set(questionshare.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateDeletedAt() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionShareUpsert) ClearDeletedAt() *QuestionShareUpsert {
	u.SetNull(questionshare.FieldDeletedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *QuestionShareUpsert) SetDoctorID(v uuid.UUID) *QuestionShareUpsert {
	u.Set(questionshare.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateDoctorID() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldDoctorID)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *QuestionShareUpsert) SetClinicID(v uuid.UUID) *QuestionShareUpsert {
	u.Set(questionshare.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateClinicID() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldClinicID)
	return u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *QuestionShareUpsert) ClearClinicID() *QuestionShareUpsert {
	u.SetNull(questionshare.FieldClinicID)
	return u
}

// SetTitle sets the "title" field.
func (u *QuestionShareUpsert) SetTitle(v string) *QuestionShareUpsert {
	u.Set(questionshare.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateTitle() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *QuestionShareUpsert) ClearTitle() *QuestionShareUpsert {
	u.SetNull(questionshare.FieldTitle)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *QuestionShareUpsert) SetPrompt(v string) *QuestionShareUpsert {
	u.Set(questionshare.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdatePrompt() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldPrompt)
	return u
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionShareUpsert) SetQuestionType(v questionshare.QuestionType) *QuestionShareUpsert {
	u.Set(questionshare.FieldQuestionType, v)
	return u
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateQuestionType() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldQuestionType)
	return u
}

// SetExpertLevel sets the "expert_level" field.
func (u *QuestionShareUpsert) SetExpertLevel(v questionshare.ExpertLevel) *QuestionShareUpsert {
	u.Set(questionshare.FieldExpertLevel, v)
	return u
}

// UpdateExpertLevel sets the "expert_level" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateExpertLevel() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldExpertLevel)
	return u
}

// SetPriority sets the "priority" field.
func (u *QuestionShareUpsert) SetPriority(v questionshare.Priority) *QuestionShareUpsert {
	u.Set(questionshare.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdatePriority() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldPriority)
	return u
}

// SetDateType sets the "date_type" field.
func (u *QuestionShareUpsert) SetDateType(v questionshare.DateType) *QuestionShareUpsert {
	u.Set(questionshare.FieldDateType, v)
	return u
}

// UpdateDateType sets the "date_type" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateDateType() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldDateType)
	return u
}

// SetIsStarter sets the "is_starter" field.
func (u *QuestionShareUpsert) SetIsStarter(v bool) *QuestionShareUpsert {
	u.Set(questionshare.FieldIsStarter, v)
	return u
}

// UpdateIsStarter sets the "is_starter" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateIsStarter() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldIsStarter)
	return u
}

// SetIsEquation sets the "is_equation" field.
func (u *QuestionShareUpsert) SetIsEquation(v bool) *QuestionShareUpsert {
	u.Set(questionshare.FieldIsEquation, v)
	return u
}

// UpdateIsEquation sets the "is_equation" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateIsEquation() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldIsEquation)
	return u
}

// SetEquation sets the "equation" field.
func (u *QuestionShareUpsert) SetEquation(v string) *QuestionShareUpsert {
	u.Set(questionshare.FieldEquation, v)
	return u
}

// UpdateEquation sets the "equation" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateEquation() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldEquation)
	return u
}

// ClearEquation clears the value of the "equation" field.
func (u *QuestionShareUpsert) ClearEquation() *QuestionShareUpsert {
	u.SetNull(questionshare.FieldEquation)
	return u
}

// SetChartVisible sets the "chart_visible" field.
func (u *QuestionShareUpsert) SetChartVisible(v bool) *QuestionShareUpsert {
	u.Set(questionshare.FieldChartVisible, v)
	return u
}

// UpdateChartVisible sets the "chart_visible" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateChartVisible() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldChartVisible)
	return u
}

// SetChartSrcX sets the "chart_src_x" field.
func (u *QuestionShareUpsert) SetChartSrcX(v float64) *QuestionShareUpsert {
	u.Set(questionshare.FieldChartSrcX, v)
	return u
}

// UpdateChartSrcX sets the "chart_src_x" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateChartSrcX() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldChartSrcX)
	return u
}

// AddChartSrcX adds v to the "chart_src_x" field.
func (u *QuestionShareUpsert) AddChartSrcX(v float64) *QuestionShareUpsert {
	u.Add(questionshare.FieldChartSrcX, v)
	return u
}

// SetChartSrcY sets the "chart_src_y" field.
func (u *QuestionShareUpsert) SetChartSrcY(v float64) *QuestionShareUpsert {
	u.Set(questionshare.FieldChartSrcY, v)
	return u
}

// UpdateChartSrcY sets the "chart_src_y" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateChartSrcY() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldChartSrcY)
	return u
}

// AddChartSrcY adds v to the "chart_src_y" field.
func (u *QuestionShareUpsert) AddChartSrcY(v float64) *QuestionShareUpsert {
	u.Add(questionshare.FieldChartSrcY, v)
	return u
}

// SetChartDesX sets the "chart_des_x" field.
func (u *QuestionShareUpsert) SetChartDesX(v float64) *QuestionShareUpsert {
	u.Set(questionshare.FieldChartDesX, v)
	return u
}

// UpdateChartDesX sets the "chart_des_x" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateChartDesX() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldChartDesX)
	return u
}

// AddChartDesX adds v to the "chart_des_x" field.
func (u *QuestionShareUpsert) AddChartDesX(v float64) *QuestionShareUpsert {
	u.Add(questionshare.FieldChartDesX, v)
	return u
}

// SetChartDesY sets the "chart_des_y" field.
func (u *QuestionShareUpsert) SetChartDesY(v float64) *QuestionShareUpsert {
	u.Set(questionshare.FieldChartDesY, v)
	return u
}

// UpdateChartDesY sets the "chart_des_y" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateChartDesY() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldChartDesY)
	return u
}

// AddChartDesY adds v to the "chart_des_y" field.
func (u *QuestionShareUpsert) AddChartDesY(v float64) *QuestionShareUpsert {
	u.Add(questionshare.FieldChartDesY, v)
	return u
}

// SetChartBranchCount sets the "chart_branch_count" field.
func (u *QuestionShareUpsert) SetChartBranchCount(v int) *QuestionShareUpsert {
	u.Set(questionshare.FieldChartBranchCount, v)
	return u
}

// UpdateChartBranchCount sets the "chart_branch_count" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateChartBranchCount() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldChartBranchCount)
	return u
}

// AddChartBranchCount adds v to the "chart_branch_count" field.
func (u *QuestionShareUpsert) AddChartBranchCount(v int) *QuestionShareUpsert {
	u.Add(questionshare.FieldChartBranchCount, v)
	return u
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (u *QuestionShareUpsert) SetChartConnectQuestionID(v uuid.UUID) *QuestionShareUpsert {
	u.Set(questionshare.FieldChartConnectQuestionID, v)
	return u
}

// UpdateChartConnectQuestionID sets the "chart_connect_question_id" field to the value that was provided on create.
func (u *QuestionShareUpsert) UpdateChartConnectQuestionID() *QuestionShareUpsert {
	u.SetExcluded(questionshare.FieldChartConnectQuestionID)
	return u
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (u *QuestionShareUpsert) ClearChartConnectQuestionID() *QuestionShareUpsert {
	u.SetNull(questionshare.FieldChartConnectQuestionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuestionShare.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionshare.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionShareUpsertOne) UpdateNewValues() *QuestionShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(questionshare.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(questionshare.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionShare.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionShareUpsertOne) Ignore() *QuestionShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionShareUpsertOne) DoNothing() *QuestionShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionShareCreate.OnConflict
// documentation for more info.
func (u *QuestionShareUpsertOne) Update(set func(*QuestionShareUpsert)) *QuestionShareUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionShareUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionShareUpsertOne) SetUpdatedAt(v time.Time) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateUpdatedAt() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionShareUpsertOne) SetDeletedAt(v time.Time) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateDeletedAt() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionShareUpsertOne) ClearDeletedAt() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearDeletedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *QuestionShareUpsertOne) SetDoctorID(v uuid.UUID) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateDoctorID() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateDoctorID()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *QuestionShareUpsertOne) SetClinicID(v uuid.UUID) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateClinicID() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateClinicID()
	})
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *QuestionShareUpsertOne) ClearClinicID() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearClinicID()
	})
}

// SetTitle sets the "title" field.
func (u *QuestionShareUpsertOne) SetTitle(v string) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateTitle() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *QuestionShareUpsertOne) ClearTitle() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearTitle()
	})
}

// SetPrompt sets the "prompt" field.
func (u *QuestionShareUpsertOne) SetPrompt(v string) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdatePrompt() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdatePrompt()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionShareUpsertOne) SetQuestionType(v questionshare.QuestionType) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateQuestionType() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateQuestionType()
	})
}

// SetExpertLevel sets the "expert_level" field.
func (u *QuestionShareUpsertOne) SetExpertLevel(v questionshare.ExpertLevel) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetExpertLevel(v)
	})
}

// UpdateExpertLevel sets the "expert_level" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateExpertLevel() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateExpertLevel()
	})
}

// SetPriority sets the "priority" field.
func (u *QuestionShareUpsertOne) SetPriority(v questionshare.Priority) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdatePriority() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdatePriority()
	})
}

// SetDateType sets the "date_type" field.
func (u *QuestionShareUpsertOne) SetDateType(v questionshare.DateType) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetDateType(v)
	})
}

// UpdateDateType sets the "date_type" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateDateType() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateDateType()
	})
}

// SetIsStarter sets the "is_starter" field.
func (u *QuestionShareUpsertOne) SetIsStarter(v bool) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetIsStarter(v)
	})
}

// UpdateIsStarter sets the "is_starter" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateIsStarter() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateIsStarter()
	})
}

// SetIsEquation sets the "is_equation" field.
func (u *QuestionShareUpsertOne) SetIsEquation(v bool) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetIsEquation(v)
	})
}

// UpdateIsEquation sets the "is_equation" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateIsEquation() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateIsEquation()
	})
}

// SetEquation sets the "equation" field.
func (u *QuestionShareUpsertOne) SetEquation(v string) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetEquation(v)
	})
}

// UpdateEquation sets the "equation" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateEquation() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateEquation()
	})
}

// ClearEquation clears the value of the "equation" field.
func (u *QuestionShareUpsertOne) ClearEquation() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearEquation()
	})
}

// SetChartVisible sets the "chart_visible" field.
func (u *QuestionShareUpsertOne) SetChartVisible(v bool) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartVisible(v)
	})
}

// UpdateChartVisible sets the "chart_visible" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateChartVisible() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartVisible()
	})
}

// SetChartSrcX sets the "chart_src_x" field.
func (u *QuestionShareUpsertOne) SetChartSrcX(v float64) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartSrcX(v)
	})
}

// AddChartSrcX adds v to the "chart_src_x" field.
func (u *QuestionShareUpsertOne) AddChartSrcX(v float64) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartSrcX(v)
	})
}

// UpdateChartSrcX sets the "chart_src_x" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateChartSrcX() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartSrcX()
	})
}

// SetChartSrcY sets the "chart_src_y" field.
func (u *QuestionShareUpsertOne) SetChartSrcY(v float64) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartSrcY(v)
	})
}

// AddChartSrcY adds v to the "chart_src_y" field.
func (u *QuestionShareUpsertOne) AddChartSrcY(v float64) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartSrcY(v)
	})
}

// UpdateChartSrcY sets the "chart_src_y" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateChartSrcY() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartSrcY()
	})
}

// SetChartDesX sets the "chart_des_x" field.
func (u *QuestionShareUpsertOne) SetChartDesX(v float64) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartDesX(v)
	})
}

// AddChartDesX adds v to the "chart_des_x" field.
func (u *QuestionShareUpsertOne) AddChartDesX(v float64) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartDesX(v)
	})
}

// UpdateChartDesX sets the "chart_des_x" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateChartDesX() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartDesX()
	})
}

// SetChartDesY sets the "chart_des_y" field.
func (u *QuestionShareUpsertOne) SetChartDesY(v float64) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartDesY(v)
	})
}

// AddChartDesY adds v to the "chart_des_y" field.
func (u *QuestionShareUpsertOne) AddChartDesY(v float64) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartDesY(v)
	})
}

// UpdateChartDesY sets the "chart_des_y" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateChartDesY() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartDesY()
	})
}

// SetChartBranchCount sets the "chart_branch_count" field.
func (u *QuestionShareUpsertOne) SetChartBranchCount(v int) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartBranchCount(v)
	})
}

// AddChartBranchCount adds v to the "chart_branch_count" field.
func (u *QuestionShareUpsertOne) AddChartBranchCount(v int) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartBranchCount(v)
	})
}

// UpdateChartBranchCount sets the "chart_branch_count" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateChartBranchCount() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartBranchCount()
	})
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (u *QuestionShareUpsertOne) SetChartConnectQuestionID(v uuid.UUID) *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartConnectQuestionID(v)
	})
}

// UpdateChartConnectQuestionID sets the "chart_connect_question_id" field to the value that was provided on create.
func (u *QuestionShareUpsertOne) UpdateChartConnectQuestionID() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartConnectQuestionID()
	})
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (u *QuestionShareUpsertOne) ClearChartConnectQuestionID() *QuestionShareUpsertOne {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearChartConnectQuestionID()
	})
}

// Exec executes the query.
func (u *QuestionShareUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionShareCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionShareUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionShareUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionShareUpsertOne.ID is not supported by MySQL driver. Use QuestionShareUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionShareUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionShareCreateBulk is the builder for creating many QuestionShare entities in bulk.
type QuestionShareCreateBulk struct {
	config
	err      error
	builders []*QuestionShareCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionShare entities in the database.
func (_c *QuestionShareCreateBulk) Save(ctx context.Context) ([]*QuestionShare, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionShare, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionShareMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionShareCreateBulk) SaveX(ctx context.Context) []*QuestionShare {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionShareCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionShareCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionShare.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionShareUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionShareCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionShareUpsertBulk {
	_c.conflict = opts
	return &QuestionShareUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionShare.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionShareCreateBulk) OnConflictColumns(columns ...string) *QuestionShareUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionShareUpsertBulk{
		create: _c,
	}
}

// QuestionShareUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionShare nodes.
type QuestionShareUpsertBulk struct {
	create *QuestionShareCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionShare.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionshare.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionShareUpsertBulk) UpdateNewValues() *QuestionShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(questionshare.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(questionshare.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionShare.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionShareUpsertBulk) Ignore() *QuestionShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionShareUpsertBulk) DoNothing() *QuestionShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionShareCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionShareUpsertBulk) Update(set func(*QuestionShareUpsert)) *QuestionShareUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionShareUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionShareUpsertBulk) SetUpdatedAt(v time.Time) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateUpdatedAt() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionShareUpsertBulk) SetDeletedAt(v time.Time) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateDeletedAt() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionShareUpsertBulk) ClearDeletedAt() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearDeletedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *QuestionShareUpsertBulk) SetDoctorID(v uuid.UUID) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateDoctorID() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateDoctorID()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *QuestionShareUpsertBulk) SetClinicID(v uuid.UUID) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateClinicID() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateClinicID()
	})
}

// ClearClinicID clears the value of the "clinic_id" field.
func (u *QuestionShareUpsertBulk) ClearClinicID() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearClinicID()
	})
}

// SetTitle sets the "title" field.
func (u *QuestionShareUpsertBulk) SetTitle(v string) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateTitle() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *QuestionShareUpsertBulk) ClearTitle() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearTitle()
	})
}

// SetPrompt sets the "prompt" field.
func (u *QuestionShareUpsertBulk) SetPrompt(v string) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdatePrompt() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdatePrompt()
	})
}

// SetQuestionType sets the "question_type" field.
func (u *QuestionShareUpsertBulk) SetQuestionType(v questionshare.QuestionType) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetQuestionType(v)
	})
}

// UpdateQuestionType sets the "question_type" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateQuestionType() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateQuestionType()
	})
}

// SetExpertLevel sets the "expert_level" field.
func (u *QuestionShareUpsertBulk) SetExpertLevel(v questionshare.ExpertLevel) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetExpertLevel(v)
	})
}

// UpdateExpertLevel sets the "expert_level" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateExpertLevel() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateExpertLevel()
	})
}

// SetPriority sets the "priority" field.
func (u *QuestionShareUpsertBulk) SetPriority(v questionshare.Priority) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdatePriority() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdatePriority()
	})
}

// SetDateType sets the "date_type" field.
func (u *QuestionShareUpsertBulk) SetDateType(v questionshare.DateType) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetDateType(v)
	})
}

// UpdateDateType sets the "date_type" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateDateType() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateDateType()
	})
}

// SetIsStarter sets the "is_starter" field.
func (u *QuestionShareUpsertBulk) SetIsStarter(v bool) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetIsStarter(v)
	})
}

// UpdateIsStarter sets the "is_starter" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateIsStarter() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateIsStarter()
	})
}

// SetIsEquation sets the "is_equation" field.
func (u *QuestionShareUpsertBulk) SetIsEquation(v bool) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetIsEquation(v)
	})
}

// UpdateIsEquation sets the "is_equation" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateIsEquation() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateIsEquation()
	})
}

// SetEquation sets the "equation" field.
func (u *QuestionShareUpsertBulk) SetEquation(v string) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetEquation(v)
	})
}

// UpdateEquation sets the "equation" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateEquation() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateEquation()
	})
}

// ClearEquation clears the value of the "equation" field.
func (u *QuestionShareUpsertBulk) ClearEquation() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearEquation()
	})
}

// SetChartVisible sets the "chart_visible" field.
func (u *QuestionShareUpsertBulk) SetChartVisible(v bool) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartVisible(v)
	})
}

// UpdateChartVisible sets the "chart_visible" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateChartVisible() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartVisible()
	})
}

// SetChartSrcX sets the "chart_src_x" field.
func (u *QuestionShareUpsertBulk) SetChartSrcX(v float64) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartSrcX(v)
	})
}

// AddChartSrcX adds v to the "chart_src_x" field.
func (u *QuestionShareUpsertBulk) AddChartSrcX(v float64) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartSrcX(v)
	})
}

// UpdateChartSrcX sets the "chart_src_x" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateChartSrcX() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartSrcX()
	})
}

// SetChartSrcY sets the "chart_src_y" field.
func (u *QuestionShareUpsertBulk) SetChartSrcY(v float64) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartSrcY(v)
	})
}

// AddChartSrcY adds v to the "chart_src_y" field.
func (u *QuestionShareUpsertBulk) AddChartSrcY(v float64) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartSrcY(v)
	})
}

// UpdateChartSrcY sets the "chart_src_y" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateChartSrcY() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartSrcY()
	})
}

// SetChartDesX sets the "chart_des_x" field.
func (u *QuestionShareUpsertBulk) SetChartDesX(v float64) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartDesX(v)
	})
}

// AddChartDesX adds v to the "chart_des_x" field.
func (u *QuestionShareUpsertBulk) AddChartDesX(v float64) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartDesX(v)
	})
}

// UpdateChartDesX sets the "chart_des_x" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateChartDesX() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartDesX()
	})
}

// SetChartDesY sets the "chart_des_y" field.
func (u *QuestionShareUpsertBulk) SetChartDesY(v float64) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartDesY(v)
	})
}

// AddChartDesY adds v to the "chart_des_y" field.
func (u *QuestionShareUpsertBulk) AddChartDesY(v float64) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartDesY(v)
	})
}

// UpdateChartDesY sets the "chart_des_y" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateChartDesY() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartDesY()
	})
}

// SetChartBranchCount sets the "chart_branch_count" field.
func (u *QuestionShareUpsertBulk) SetChartBranchCount(v int) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartBranchCount(v)
	})
}

// AddChartBranchCount adds v to the "chart_branch_count" field.
func (u *QuestionShareUpsertBulk) AddChartBranchCount(v int) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.AddChartBranchCount(v)
	})
}

// UpdateChartBranchCount sets the "chart_branch_count" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateChartBranchCount() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartBranchCount()
	})
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (u *QuestionShareUpsertBulk) SetChartConnectQuestionID(v uuid.UUID) *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.SetChartConnectQuestionID(v)
	})
}

// UpdateChartConnectQuestionID sets the "chart_connect_question_id" field to the value that was provided on create.
func (u *QuestionShareUpsertBulk) UpdateChartConnectQuestionID() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.UpdateChartConnectQuestionID()
	})
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (u *QuestionShareUpsertBulk) ClearChartConnectQuestionID() *QuestionShareUpsertBulk {
	return u.Update(func(s *QuestionShareUpsert) {
		s.ClearChartConnectQuestionID()
	})
}

// Exec executes the query.
func (u *QuestionShareUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionShareCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionShareCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionShareUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
