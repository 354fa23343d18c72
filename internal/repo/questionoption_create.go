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
	"github.com/pezeshkyar/checkup_backend/internal/repo/alert"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/doctor"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoption"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptiondate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionequation"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionoptionnumber"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// QuestionOptionCreate is the builder for creating a QuestionOption entity.
type QuestionOptionCreate struct {
	config
	mutation *QuestionOptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionOptionCreate) SetCreatedAt(v time.Time) *QuestionOptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableCreatedAt(v *time.Time) *QuestionOptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionOptionCreate) SetUpdatedAt(v time.Time) *QuestionOptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableUpdatedAt(v *time.Time) *QuestionOptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *QuestionOptionCreate) SetDeletedAt(v time.Time) *QuestionOptionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableDeletedAt(v *time.Time) *QuestionOptionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionOptionCreate) SetQuestionID(v uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *QuestionOptionCreate) SetTitle(v string) *QuestionOptionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *QuestionOptionCreate) SetWeight(v int) *QuestionOptionCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableWeight(v *int) *QuestionOptionCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetInterpretation sets the "interpretation" field.
func (_c *QuestionOptionCreate) SetInterpretation(v string) *QuestionOptionCreate {
	_c.mutation.SetInterpretation(v)
	return _c
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableInterpretation(v *string) *QuestionOptionCreate {
	if v != nil {
		_c.SetInterpretation(*v)
	}
	return _c
}

// SetTutorial sets the "tutorial" field.
func (_c *QuestionOptionCreate) SetTutorial(v string) *QuestionOptionCreate {
	_c.mutation.SetTutorial(v)
	return _c
}

// SetNillableTutorial sets the "tutorial" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableTutorial(v *string) *QuestionOptionCreate {
	if v != nil {
		_c.SetTutorial(*v)
	}
	return _c
}

// SetAlertID sets the "alert_id" field.
func (_c *QuestionOptionCreate) SetAlertID(v uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetAlertID(v)
	return _c
}

// SetNillableAlertID sets the "alert_id" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableAlertID(v *uuid.UUID) *QuestionOptionCreate {
	if v != nil {
		_c.SetAlertID(*v)
	}
	return _c
}

// SetSuggestedDoctorID sets the "suggested_doctor_id" field.
func (_c *QuestionOptionCreate) SetSuggestedDoctorID(v uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetSuggestedDoctorID(v)
	return _c
}

// SetNillableSuggestedDoctorID sets the "suggested_doctor_id" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableSuggestedDoctorID(v *uuid.UUID) *QuestionOptionCreate {
	if v != nil {
		_c.SetSuggestedDoctorID(*v)
	}
	return _c
}

// SetSuggestedClinicID sets the "suggested_clinic_id" field.
func (_c *QuestionOptionCreate) SetSuggestedClinicID(v uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetSuggestedClinicID(v)
	return _c
}

// SetNillableSuggestedClinicID sets the "suggested_clinic_id" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableSuggestedClinicID(v *uuid.UUID) *QuestionOptionCreate {
	if v != nil {
		_c.SetSuggestedClinicID(*v)
	}
	return _c
}

// SetIsBranch sets the "is_branch" field.
func (_c *QuestionOptionCreate) SetIsBranch(v bool) *QuestionOptionCreate {
	_c.mutation.SetIsBranch(v)
	return _c
}

// SetNillableIsBranch sets the "is_branch" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableIsBranch(v *bool) *QuestionOptionCreate {
	if v != nil {
		_c.SetIsBranch(*v)
	}
	return _c
}

// SetChartX sets the "chart_x" field.
func (_c *QuestionOptionCreate) SetChartX(v float64) *QuestionOptionCreate {
	_c.mutation.SetChartX(v)
	return _c
}

// SetNillableChartX sets the "chart_x" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableChartX(v *float64) *QuestionOptionCreate {
	if v != nil {
		_c.SetChartX(*v)
	}
	return _c
}

// SetChartY sets the "chart_y" field.
func (_c *QuestionOptionCreate) SetChartY(v float64) *QuestionOptionCreate {
	_c.mutation.SetChartY(v)
	return _c
}

// SetNillableChartY sets the "chart_y" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableChartY(v *float64) *QuestionOptionCreate {
	if v != nil {
		_c.SetChartY(*v)
	}
	return _c
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (_c *QuestionOptionCreate) SetChartConnectQuestionID(v uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetChartConnectQuestionID(v)
	return _c
}

// SetNillableChartConnectQuestionID sets the "chart_connect_question_id" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableChartConnectQuestionID(v *uuid.UUID) *QuestionOptionCreate {
	if v != nil {
		_c.SetChartConnectQuestionID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionOptionCreate) SetID(v uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableID(v *uuid.UUID) *QuestionOptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestion sets the "question" edge to the QuestionShare entity.
func (_c *QuestionOptionCreate) SetQuestion(v *QuestionShare) *QuestionOptionCreate {
	return _c.SetQuestionID(v.ID)
}

// SetAlert sets the "alert" edge to the Alert entity.
func (_c *QuestionOptionCreate) SetAlert(v *Alert) *QuestionOptionCreate {
	return _c.SetAlertID(v.ID)
}

// SetSuggestedDoctor sets the "suggested_doctor" edge to the Doctor entity.
func (_c *QuestionOptionCreate) SetSuggestedDoctor(v *Doctor) *QuestionOptionCreate {
	return _c.SetSuggestedDoctorID(v.ID)
}

// SetSuggestedClinic sets the "suggested_clinic" edge to the Clinic entity.
func (_c *QuestionOptionCreate) SetSuggestedClinic(v *Clinic) *QuestionOptionCreate {
	return _c.SetSuggestedClinicID(v.ID)
}

// SetChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID.
func (_c *QuestionOptionCreate) SetChartConnectID(id uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetChartConnectID(id)
	return _c
}

// SetNillableChartConnectID sets the "chart_connect" edge to the QuestionShare entity by ID if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableChartConnectID(id *uuid.UUID) *QuestionOptionCreate {
	if id != nil {
		_c = _c.SetChartConnectID(*id)
	}
	return _c
}

// SetChartConnect sets the "chart_connect" edge to the QuestionShare entity.
func (_c *QuestionOptionCreate) SetChartConnect(v *QuestionShare) *QuestionOptionCreate {
	return _c.SetChartConnectID(v.ID)
}

// AddNumberRangeIDs adds the "number_ranges" edge to the QuestionOptionNumber entity by IDs.
func (_c *QuestionOptionCreate) AddNumberRangeIDs(ids ...uuid.UUID) *QuestionOptionCreate {
	_c.mutation.AddNumberRangeIDs(ids...)
	return _c
}

// AddNumberRanges adds the "number_ranges" edges to the QuestionOptionNumber entity.
func (_c *QuestionOptionCreate) AddNumberRanges(v ...*QuestionOptionNumber) *QuestionOptionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNumberRangeIDs(ids...)
}

// AddDateRangeIDs adds the "date_ranges" edge to the QuestionOptionDate entity by IDs.
func (_c *QuestionOptionCreate) AddDateRangeIDs(ids ...uuid.UUID) *QuestionOptionCreate {
	_c.mutation.AddDateRangeIDs(ids...)
	return _c
}

// AddDateRanges adds the "date_ranges" edges to the QuestionOptionDate entity.
func (_c *QuestionOptionCreate) AddDateRanges(v ...*QuestionOptionDate) *QuestionOptionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDateRangeIDs(ids...)
}

// AddEquationRangeIDs adds the "equation_ranges" edge to the QuestionOptionEquation entity by IDs.
func (_c *QuestionOptionCreate) AddEquationRangeIDs(ids ...uuid.UUID) *QuestionOptionCreate {
	_c.mutation.AddEquationRangeIDs(ids...)
	return _c
}

// AddEquationRanges adds the "equation_ranges" edges to the QuestionOptionEquation entity.
func (_c *QuestionOptionCreate) AddEquationRanges(v ...*QuestionOptionEquation) *QuestionOptionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEquationRangeIDs(ids...)
}

// Mutation returns the QuestionOptionMutation object of the builder.
func (_c *QuestionOptionCreate) Mutation() *QuestionOptionMutation {
	return _c.mutation
}

// Save creates the QuestionOption in the database.
func (_c *QuestionOptionCreate) Save(ctx context.Context) (*QuestionOption, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionOptionCreate) SaveX(ctx context.Context) *QuestionOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionOptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionoption.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := questionoption.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Weight(); !ok {
		v := questionoption.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.IsBranch(); !ok {
		v := questionoption.DefaultIsBranch
		_c.mutation.SetIsBranch(v)
	}
	if _, ok := _c.mutation.ChartX(); !ok {
		v := questionoption.DefaultChartX
		_c.mutation.SetChartX(v)
	}
	if _, ok := _c.mutation.ChartY(); !ok {
		v := questionoption.DefaultChartY
		_c.mutation.SetChartY(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionoption.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionOptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "QuestionOption.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "QuestionOption.updated_at"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`repo: missing required field "QuestionOption.question_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "QuestionOption.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := questionoption.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "QuestionOption.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`repo: missing required field "QuestionOption.weight"`)}
	}
	if _, ok := _c.mutation.IsBranch(); !ok {
		return &ValidationError{Name: "is_branch", err: errors.New(`repo: missing required field "QuestionOption.is_branch"`)}
	}
	if _, ok := _c.mutation.ChartX(); !ok {
		return &ValidationError{Name: "chart_x", err: errors.New(`repo: missing required field "QuestionOption.chart_x"`)}
	}
	if _, ok := _c.mutation.ChartY(); !ok {
		return &ValidationError{Name: "chart_y", err: errors.New(`repo: missing required field "QuestionOption.chart_y"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`repo: missing required edge "QuestionOption.question"`)}
	}
	return nil
}

func (_c *QuestionOptionCreate) sqlSave(ctx context.Context) (*QuestionOption, error) {
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

func (_c *QuestionOptionCreate) createSpec() (*QuestionOption, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionOption{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionoption.Table, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionoption.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(questionoption.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(questionoption.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(questionoption.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(questionoption.FieldWeight, field.TypeInt, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Interpretation(); ok {
		_spec.SetField(questionoption.FieldInterpretation, field.TypeString, value)
		_node.Interpretation = &value
	}
	if value, ok := _c.mutation.Tutorial(); ok {
		_spec.SetField(questionoption.FieldTutorial, field.TypeString, value)
		_node.Tutorial = &value
	}
	if value, ok := _c.mutation.IsBranch(); ok {
		_spec.SetField(questionoption.FieldIsBranch, field.TypeBool, value)
		_node.IsBranch = value
	}
	if value, ok := _c.mutation.ChartX(); ok {
		_spec.SetField(questionoption.FieldChartX, field.TypeFloat64, value)
		_node.ChartX = value
	}
	if value, ok := _c.mutation.ChartY(); ok {
		_spec.SetField(questionoption.FieldChartY, field.TypeFloat64, value)
		_node.ChartY = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertIDs(); len(nodes) > 0 {
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
		_node.AlertID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SuggestedDoctorIDs(); len(nodes) > 0 {
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
		_node.SuggestedDoctorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SuggestedClinicIDs(); len(nodes) > 0 {
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
		_node.SuggestedClinicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChartConnectIDs(); len(nodes) > 0 {
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
		_node.ChartConnectQuestionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NumberRangesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DateRangesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EquationRangesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionOption.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionOptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionOptionCreate) OnConflict(opts ...sql.ConflictOption) *QuestionOptionUpsertOne {
	_c.conflict = opts
	return &QuestionOptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionOption.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionOptionCreate) OnConflictColumns(columns ...string) *QuestionOptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionOptionUpsertOne{
		create: _c,
	}
}

type (
	// QuestionOptionUpsertOne is the builder for "upsert"-ing
	//  one QuestionOption node.
	QuestionOptionUpsertOne struct {
		create *QuestionOptionCreate
	}

	// QuestionOptionUpsert is the "OnConflict" setter.
	QuestionOptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionOptionUpsert) SetUpdatedAt(v time.Time) *QuestionOptionUpsert {
	u.Set(questionoption.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateUpdatedAt() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionOptionUpsert) SetDeletedAt(v time.Time) *QuestionOptionUpsert {
	u.Set(questionoption.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateDeletedAt() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionOptionUpsert) ClearDeletedAt() *QuestionOptionUpsert {
	u.SetNull(questionoption.FieldDeletedAt)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionOptionUpsert) SetQuestionID(v uuid.UUID) *QuestionOptionUpsert {
	u.Set(questionoption.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateQuestionID() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldQuestionID)
	return u
}

// SetTitle sets the "title" field.
func (u *QuestionOptionUpsert) SetTitle(v string) *QuestionOptionUpsert {
	u.Set(questionoption.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateTitle() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldTitle)
	return u
}

// SetWeight sets the "weight" field.
func (u *QuestionOptionUpsert) SetWeight(v int) *QuestionOptionUpsert {
	u.Set(questionoption.FieldWeight, v)
	return u
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateWeight() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldWeight)
	return u
}

// AddWeight adds v to the "weight" field.
func (u *QuestionOptionUpsert) AddWeight(v int) *QuestionOptionUpsert {
	u.Add(questionoption.FieldWeight, v)
	return u
}

// SetInterpretation sets the "interpretation" field.
func (u *QuestionOptionUpsert) SetInterpretation(v string) *QuestionOptionUpsert {
	u.Set(questionoption.FieldInterpretation, v)
	return u
}

// UpdateInterpretation sets the "interpretation" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateInterpretation() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldInterpretation)
	return u
}

// ClearInterpretation clears the value of the "interpretation" field.
func (u *QuestionOptionUpsert) ClearInterpretation() *QuestionOptionUpsert {
	u.SetNull(questionoption.FieldInterpretation)
	return u
}

// SetTutorial sets the "tutorial" field.
func (u *QuestionOptionUpsert) SetTutorial(v string) *QuestionOptionUpsert {
	u.Set(questionoption.FieldTutorial, v)
	return u
}

// UpdateTutorial sets the "tutorial" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateTutorial() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldTutorial)
	return u
}

// ClearTutorial clears the value of the "tutorial" field.
func (u *QuestionOptionUpsert) ClearTutorial() *QuestionOptionUpsert {
	u.SetNull(questionoption.FieldTutorial)
	return u
}

// SetAlertID sets the "alert_id" field.
func (u *QuestionOptionUpsert) SetAlertID(v uuid.UUID) *QuestionOptionUpsert {
	u.Set(questionoption.FieldAlertID, v)
	return u
}

// UpdateAlertID sets the "alert_id" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateAlertID() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldAlertID)
	return u
}

// ClearAlertID clears the value of the "alert_id" field.
func (u *QuestionOptionUpsert) ClearAlertID() *QuestionOptionUpsert {
	u.SetNull(questionoption.FieldAlertID)
	return u
}

// SetSuggestedDoctorID sets the "suggested_doctor_id" field.
func (u *QuestionOptionUpsert) SetSuggestedDoctorID(v uuid.UUID) *QuestionOptionUpsert {
	u.Set(questionoption.FieldSuggestedDoctorID, v)
	return u
}

// UpdateSuggestedDoctorID sets the "suggested_doctor_id" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateSuggestedDoctorID() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldSuggestedDoctorID)
	return u
}

// ClearSuggestedDoctorID clears the value of the "suggested_doctor_id" field.
func (u *QuestionOptionUpsert) ClearSuggestedDoctorID() *QuestionOptionUpsert {
	u.SetNull(questionoption.FieldSuggestedDoctorID)
	return u
}

// SetSuggestedClinicID sets the "suggested_clinic_id" field.
func (u *QuestionOptionUpsert) SetSuggestedClinicID(v uuid.UUID) *QuestionOptionUpsert {
	u.Set(questionoption.FieldSuggestedClinicID, v)
	return u
}

// UpdateSuggestedClinicID sets the "suggested_clinic_id" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateSuggestedClinicID() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldSuggestedClinicID)
	return u
}

// ClearSuggestedClinicID clears the value of the "suggested_clinic_id" field.
func (u *QuestionOptionUpsert) ClearSuggestedClinicID() *QuestionOptionUpsert {
	u.SetNull(questionoption.FieldSuggestedClinicID)
	return u
}

// SetIsBranch sets the "is_branch" field.
func (u *QuestionOptionUpsert) SetIsBranch(v bool) *QuestionOptionUpsert {
	u.Set(questionoption.FieldIsBranch, v)
	return u
}

// UpdateIsBranch sets the "is_branch" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateIsBranch() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldIsBranch)
	return u
}

// SetChartX sets the "chart_x" field.
func (u *QuestionOptionUpsert) SetChartX(v float64) *QuestionOptionUpsert {
	u.Set(questionoption.FieldChartX, v)
	return u
}

// UpdateChartX sets the "chart_x" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateChartX() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldChartX)
	return u
}

// AddChartX adds v to the "chart_x" field.
func (u *QuestionOptionUpsert) AddChartX(v float64) *QuestionOptionUpsert {
	u.Add(questionoption.FieldChartX, v)
	return u
}

// SetChartY sets the "chart_y" field.
func (u *QuestionOptionUpsert) SetChartY(v float64) *QuestionOptionUpsert {
	u.Set(questionoption.FieldChartY, v)
	return u
}

// UpdateChartY sets the "chart_y" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateChartY() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldChartY)
	return u
}

// AddChartY adds v to the "chart_y" field.
func (u *QuestionOptionUpsert) AddChartY(v float64) *QuestionOptionUpsert {
	u.Add(questionoption.FieldChartY, v)
	return u
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (u *QuestionOptionUpsert) SetChartConnectQuestionID(v uuid.UUID) *QuestionOptionUpsert {
	u.Set(questionoption.FieldChartConnectQuestionID, v)
	return u
}

// UpdateChartConnectQuestionID sets the "chart_connect_question_id" field to the value that was provided on create.
func (u *QuestionOptionUpsert) UpdateChartConnectQuestionID() *QuestionOptionUpsert {
	u.SetExcluded(questionoption.FieldChartConnectQuestionID)
	return u
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (u *QuestionOptionUpsert) ClearChartConnectQuestionID() *QuestionOptionUpsert {
	u.SetNull(questionoption.FieldChartConnectQuestionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QuestionOption.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionoption.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionOptionUpsertOne) UpdateNewValues() *QuestionOptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(questionoption.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(questionoption.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionOption.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionOptionUpsertOne) Ignore() *QuestionOptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionOptionUpsertOne) DoNothing() *QuestionOptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionOptionCreate.OnConflict
// documentation for more info.
func (u *QuestionOptionUpsertOne) Update(set func(*QuestionOptionUpsert)) *QuestionOptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionOptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionOptionUpsertOne) SetUpdatedAt(v time.Time) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateUpdatedAt() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionOptionUpsertOne) SetDeletedAt(v time.Time) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateDeletedAt() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionOptionUpsertOne) ClearDeletedAt() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionOptionUpsertOne) SetQuestionID(v uuid.UUID) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateQuestionID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateQuestionID()
	})
}

// SetTitle sets the "title" field.
func (u *QuestionOptionUpsertOne) SetTitle(v string) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateTitle() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateTitle()
	})
}

// SetWeight sets the "weight" field.
func (u *QuestionOptionUpsertOne) SetWeight(v int) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *QuestionOptionUpsertOne) AddWeight(v int) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateWeight() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateWeight()
	})
}

// SetInterpretation sets the "interpretation" field.
func (u *QuestionOptionUpsertOne) SetInterpretation(v string) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetInterpretation(v)
	})
}

// UpdateInterpretation sets the "interpretation" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateInterpretation() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateInterpretation()
	})
}

// ClearInterpretation clears the value of the "interpretation" field.
func (u *QuestionOptionUpsertOne) ClearInterpretation() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearInterpretation()
	})
}

// SetTutorial sets the "tutorial" field.
func (u *QuestionOptionUpsertOne) SetTutorial(v string) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetTutorial(v)
	})
}

// UpdateTutorial sets the "tutorial" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateTutorial() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateTutorial()
	})
}

// ClearTutorial clears the value of the "tutorial" field.
func (u *QuestionOptionUpsertOne) ClearTutorial() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearTutorial()
	})
}

// SetAlertID sets the "alert_id" field.
func (u *QuestionOptionUpsertOne) SetAlertID(v uuid.UUID) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetAlertID(v)
	})
}

// UpdateAlertID sets the "alert_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateAlertID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateAlertID()
	})
}

// ClearAlertID clears the value of the "alert_id" field.
func (u *QuestionOptionUpsertOne) ClearAlertID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearAlertID()
	})
}

// SetSuggestedDoctorID sets the "suggested_doctor_id" field.
func (u *QuestionOptionUpsertOne) SetSuggestedDoctorID(v uuid.UUID) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetSuggestedDoctorID(v)
	})
}

// UpdateSuggestedDoctorID sets the "suggested_doctor_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateSuggestedDoctorID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateSuggestedDoctorID()
	})
}

// ClearSuggestedDoctorID clears the value of the "suggested_doctor_id" field.
func (u *QuestionOptionUpsertOne) ClearSuggestedDoctorID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearSuggestedDoctorID()
	})
}

// SetSuggestedClinicID sets the "suggested_clinic_id" field.
func (u *QuestionOptionUpsertOne) SetSuggestedClinicID(v uuid.UUID) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetSuggestedClinicID(v)
	})
}

// UpdateSuggestedClinicID sets the "suggested_clinic_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateSuggestedClinicID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateSuggestedClinicID()
	})
}

// ClearSuggestedClinicID clears the value of the "suggested_clinic_id" field.
func (u *QuestionOptionUpsertOne) ClearSuggestedClinicID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearSuggestedClinicID()
	})
}

// SetIsBranch sets the "is_branch" field.
func (u *QuestionOptionUpsertOne) SetIsBranch(v bool) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetIsBranch(v)
	})
}

// UpdateIsBranch sets the "is_branch" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateIsBranch() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateIsBranch()
	})
}

// SetChartX sets the "chart_x" field.
func (u *QuestionOptionUpsertOne) SetChartX(v float64) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetChartX(v)
	})
}

// AddChartX adds v to the "chart_x" field.
func (u *QuestionOptionUpsertOne) AddChartX(v float64) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.AddChartX(v)
	})
}

// UpdateChartX sets the "chart_x" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateChartX() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateChartX()
	})
}

// SetChartY sets the "chart_y" field.
func (u *QuestionOptionUpsertOne) SetChartY(v float64) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetChartY(v)
	})
}

// AddChartY adds v to the "chart_y" field.
func (u *QuestionOptionUpsertOne) AddChartY(v float64) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.AddChartY(v)
	})
}

// UpdateChartY sets the "chart_y" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateChartY() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateChartY()
	})
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (u *QuestionOptionUpsertOne) SetChartConnectQuestionID(v uuid.UUID) *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetChartConnectQuestionID(v)
	})
}

// UpdateChartConnectQuestionID sets the "chart_connect_question_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertOne) UpdateChartConnectQuestionID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateChartConnectQuestionID()
	})
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (u *QuestionOptionUpsertOne) ClearChartConnectQuestionID() *QuestionOptionUpsertOne {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearChartConnectQuestionID()
	})
}

// Exec executes the query.
func (u *QuestionOptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionOptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionOptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionOptionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: QuestionOptionUpsertOne.ID is not supported by MySQL driver. Use QuestionOptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionOptionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionOptionCreateBulk is the builder for creating many QuestionOption entities in bulk.
type QuestionOptionCreateBulk struct {
	config
	err      error
	builders []*QuestionOptionCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionOption entities in the database.
func (_c *QuestionOptionCreateBulk) Save(ctx context.Context) ([]*QuestionOption, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionOption, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionOptionMutation)
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
func (_c *QuestionOptionCreateBulk) SaveX(ctx context.Context) []*QuestionOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionOption.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionOptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionOptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionOptionUpsertBulk {
	_c.conflict = opts
	return &QuestionOptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionOption.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionOptionCreateBulk) OnConflictColumns(columns ...string) *QuestionOptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionOptionUpsertBulk{
		create: _c,
	}
}

// QuestionOptionUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionOption nodes.
type QuestionOptionUpsertBulk struct {
	create *QuestionOptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionOption.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(questionoption.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QuestionOptionUpsertBulk) UpdateNewValues() *QuestionOptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(questionoption.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(questionoption.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionOption.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionOptionUpsertBulk) Ignore() *QuestionOptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionOptionUpsertBulk) DoNothing() *QuestionOptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionOptionCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionOptionUpsertBulk) Update(set func(*QuestionOptionUpsert)) *QuestionOptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionOptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QuestionOptionUpsertBulk) SetUpdatedAt(v time.Time) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateUpdatedAt() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *QuestionOptionUpsertBulk) SetDeletedAt(v time.Time) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateDeletedAt() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *QuestionOptionUpsertBulk) ClearDeletedAt() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionOptionUpsertBulk) SetQuestionID(v uuid.UUID) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateQuestionID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateQuestionID()
	})
}

// SetTitle sets the "title" field.
func (u *QuestionOptionUpsertBulk) SetTitle(v string) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateTitle() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateTitle()
	})
}

// SetWeight sets the "weight" field.
func (u *QuestionOptionUpsertBulk) SetWeight(v int) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *QuestionOptionUpsertBulk) AddWeight(v int) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateWeight() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateWeight()
	})
}

// SetInterpretation sets the "interpretation" field.
func (u *QuestionOptionUpsertBulk) SetInterpretation(v string) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetInterpretation(v)
	})
}

// UpdateInterpretation sets the "interpretation" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateInterpretation() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateInterpretation()
	})
}

// ClearInterpretation clears the value of the "interpretation" field.
func (u *QuestionOptionUpsertBulk) ClearInterpretation() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearInterpretation()
	})
}

// SetTutorial sets the "tutorial" field.
func (u *QuestionOptionUpsertBulk) SetTutorial(v string) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetTutorial(v)
	})
}

// UpdateTutorial sets the "tutorial" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateTutorial() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateTutorial()
	})
}

// ClearTutorial clears the value of the "tutorial" field.
func (u *QuestionOptionUpsertBulk) ClearTutorial() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearTutorial()
	})
}

// SetAlertID sets the "alert_id" field.
func (u *QuestionOptionUpsertBulk) SetAlertID(v uuid.UUID) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetAlertID(v)
	})
}

// UpdateAlertID sets the "alert_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateAlertID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateAlertID()
	})
}

// ClearAlertID clears the value of the "alert_id" field.
func (u *QuestionOptionUpsertBulk) ClearAlertID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearAlertID()
	})
}

// SetSuggestedDoctorID sets the "suggested_doctor_id" field.
func (u *QuestionOptionUpsertBulk) SetSuggestedDoctorID(v uuid.UUID) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetSuggestedDoctorID(v)
	})
}

// UpdateSuggestedDoctorID sets the "suggested_doctor_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateSuggestedDoctorID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateSuggestedDoctorID()
	})
}

// ClearSuggestedDoctorID clears the value of the "suggested_doctor_id" field.
func (u *QuestionOptionUpsertBulk) ClearSuggestedDoctorID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearSuggestedDoctorID()
	})
}

// SetSuggestedClinicID sets the "suggested_clinic_id" field.
func (u *QuestionOptionUpsertBulk) SetSuggestedClinicID(v uuid.UUID) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetSuggestedClinicID(v)
	})
}

// UpdateSuggestedClinicID sets the "suggested_clinic_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateSuggestedClinicID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateSuggestedClinicID()
	})
}

// ClearSuggestedClinicID clears the value of the "suggested_clinic_id" field.
func (u *QuestionOptionUpsertBulk) ClearSuggestedClinicID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearSuggestedClinicID()
	})
}

// SetIsBranch sets the "is_branch" field.
func (u *QuestionOptionUpsertBulk) SetIsBranch(v bool) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetIsBranch(v)
	})
}

// UpdateIsBranch sets the "is_branch" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateIsBranch() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateIsBranch()
	})
}

// SetChartX sets the "chart_x" field.
func (u *QuestionOptionUpsertBulk) SetChartX(v float64) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetChartX(v)
	})
}

// AddChartX adds v to the "chart_x" field.
func (u *QuestionOptionUpsertBulk) AddChartX(v float64) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.AddChartX(v)
	})
}

// UpdateChartX sets the "chart_x" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateChartX() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateChartX()
	})
}

// SetChartY sets the "chart_y" field.
func (u *QuestionOptionUpsertBulk) SetChartY(v float64) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetChartY(v)
	})
}

// AddChartY adds v to the "chart_y" field.
func (u *QuestionOptionUpsertBulk) AddChartY(v float64) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.AddChartY(v)
	})
}

// UpdateChartY sets the "chart_y" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateChartY() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateChartY()
	})
}

// SetChartConnectQuestionID sets the "chart_connect_question_id" field.
func (u *QuestionOptionUpsertBulk) SetChartConnectQuestionID(v uuid.UUID) *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.SetChartConnectQuestionID(v)
	})
}

// UpdateChartConnectQuestionID sets the "chart_connect_question_id" field to the value that was provided on create.
func (u *QuestionOptionUpsertBulk) UpdateChartConnectQuestionID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.UpdateChartConnectQuestionID()
	})
}

// ClearChartConnectQuestionID clears the value of the "chart_connect_question_id" field.
func (u *QuestionOptionUpsertBulk) ClearChartConnectQuestionID() *QuestionOptionUpsertBulk {
	return u.Update(func(s *QuestionOptionUpsert) {
		s.ClearChartConnectQuestionID()
	})
}

// Exec executes the query.
func (u *QuestionOptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the QuestionOptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for QuestionOptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionOptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
