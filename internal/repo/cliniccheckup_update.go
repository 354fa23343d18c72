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
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/checkupanalyze"
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionshare"
)

// ClinicCheckupUpdate is the builder for updating ClinicCheckup entities.
type ClinicCheckupUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicCheckupMutation
}

// Where appends a list predicates to the ClinicCheckupUpdate builder.
func (_u *ClinicCheckupUpdate) Where(ps ...predicate.ClinicCheckup) *ClinicCheckupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicCheckupUpdate) SetUpdatedAt(v time.Time) *ClinicCheckupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicCheckupUpdate) SetDeletedAt(v time.Time) *ClinicCheckupUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableDeletedAt(v *time.Time) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicCheckupUpdate) ClearDeletedAt() *ClinicCheckupUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ClinicCheckupUpdate) SetClinicID(v uuid.UUID) *ClinicCheckupUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableClinicID(v *uuid.UUID) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ClinicCheckupUpdate) SetTitle(v string) *ClinicCheckupUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableTitle(v *string) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicCheckupUpdate) SetDescription(v string) *ClinicCheckupUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableDescription(v *string) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicCheckupUpdate) ClearDescription() *ClinicCheckupUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequiredTimeMinutes sets the "required_time_minutes" field.
func (_u *ClinicCheckupUpdate) SetRequiredTimeMinutes(v int) *ClinicCheckupUpdate {
	_u.mutation.ResetRequiredTimeMinutes()
	_u.mutation.SetRequiredTimeMinutes(v)
	return _u
}

// SetNillableRequiredTimeMinutes sets the "required_time_minutes" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableRequiredTimeMinutes(v *int) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetRequiredTimeMinutes(*v)
	}
	return _u
}

// AddRequiredTimeMinutes adds value to the "required_time_minutes" field.
func (_u *ClinicCheckupUpdate) AddRequiredTimeMinutes(v int) *ClinicCheckupUpdate {
	_u.mutation.AddRequiredTimeMinutes(v)
	return _u
}

// SetRequiredAuth sets the "required_auth" field.
func (_u *ClinicCheckupUpdate) SetRequiredAuth(v bool) *ClinicCheckupUpdate {
	_u.mutation.SetRequiredAuth(v)
	return _u
}

// SetNillableRequiredAuth sets the "required_auth" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableRequiredAuth(v *bool) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetRequiredAuth(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *ClinicCheckupUpdate) SetQuestionCount(v int) *ClinicCheckupUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableQuestionCount(v *int) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *ClinicCheckupUpdate) AddQuestionCount(v int) *ClinicCheckupUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *ClinicCheckupUpdate) SetApprovers(v string) *ClinicCheckupUpdate {
	_u.mutation.SetApprovers(v)
	return _u
}

// SetNillableApprovers sets the "approvers" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableApprovers(v *string) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetApprovers(*v)
	}
	return _u
}

// ClearApprovers clears the value of the "approvers" field.
func (_u *ClinicCheckupUpdate) ClearApprovers() *ClinicCheckupUpdate {
	_u.mutation.ClearApprovers()
	return _u
}

// SetStartingQuestionID sets the "starting_question_id" field.
func (_u *ClinicCheckupUpdate) SetStartingQuestionID(v uuid.UUID) *ClinicCheckupUpdate {
	_u.mutation.SetStartingQuestionID(v)
	return _u
}

// SetNillableStartingQuestionID sets the "starting_question_id" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableStartingQuestionID(v *uuid.UUID) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetStartingQuestionID(*v)
	}
	return _u
}

// ClearStartingQuestionID clears the value of the "starting_question_id" field.
func (_u *ClinicCheckupUpdate) ClearStartingQuestionID() *ClinicCheckupUpdate {
	_u.mutation.ClearStartingQuestionID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClinicCheckupUpdate) SetIsActive(v bool) *ClinicCheckupUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClinicCheckupUpdate) SetNillableIsActive(v *bool) *ClinicCheckupUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ClinicCheckupUpdate) SetClinic(v *Clinic) *ClinicCheckupUpdate {
	return _u.SetClinicID(v.ID)
}

// SetStartingQuestion sets the "starting_question" edge to the QuestionShare entity.
func (_u *ClinicCheckupUpdate) SetStartingQuestion(v *QuestionShare) *ClinicCheckupUpdate {
	return _u.SetStartingQuestionID(v.ID)
}

// AddAnalyzeIDs adds the "analyzes" edge to the CheckupAnalyze entity by IDs.
func (_u *ClinicCheckupUpdate) AddAnalyzeIDs(ids ...uuid.UUID) *ClinicCheckupUpdate {
	_u.mutation.AddAnalyzeIDs(ids...)
	return _u
}

// AddAnalyzes adds the "analyzes" edges to the CheckupAnalyze entity.
func (_u *ClinicCheckupUpdate) AddAnalyzes(v ...*CheckupAnalyze) *ClinicCheckupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalyzeIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Checkup entity by IDs.
func (_u *ClinicCheckupUpdate) AddSessionIDs(ids ...uuid.UUID) *ClinicCheckupUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Checkup entity.
func (_u *ClinicCheckupUpdate) AddSessions(v ...*Checkup) *ClinicCheckupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ClinicCheckupMutation object of the builder.
func (_u *ClinicCheckupUpdate) Mutation() *ClinicCheckupMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ClinicCheckupUpdate) ClearClinic() *ClinicCheckupUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// ClearStartingQuestion clears the "starting_question" edge to the QuestionShare entity.
func (_u *ClinicCheckupUpdate) ClearStartingQuestion() *ClinicCheckupUpdate {
	_u.mutation.ClearStartingQuestion()
	return _u
}

// ClearAnalyzes clears all "analyzes" edges to the CheckupAnalyze entity.
func (_u *ClinicCheckupUpdate) ClearAnalyzes() *ClinicCheckupUpdate {
	_u.mutation.ClearAnalyzes()
	return _u
}

// RemoveAnalyzeIDs removes the "analyzes" edge to CheckupAnalyze entities by IDs.
func (_u *ClinicCheckupUpdate) RemoveAnalyzeIDs(ids ...uuid.UUID) *ClinicCheckupUpdate {
	_u.mutation.RemoveAnalyzeIDs(ids...)
	return _u
}

// RemoveAnalyzes removes "analyzes" edges to CheckupAnalyze entities.
func (_u *ClinicCheckupUpdate) RemoveAnalyzes(v ...*CheckupAnalyze) *ClinicCheckupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalyzeIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Checkup entity.
func (_u *ClinicCheckupUpdate) ClearSessions() *ClinicCheckupUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Checkup entities by IDs.
func (_u *ClinicCheckupUpdate) RemoveSessionIDs(ids ...uuid.UUID) *ClinicCheckupUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Checkup entities.
func (_u *ClinicCheckupUpdate) RemoveSessions(v ...*Checkup) *ClinicCheckupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicCheckupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicCheckupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicCheckupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicCheckupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicCheckupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cliniccheckup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicCheckupUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := cliniccheckup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredTimeMinutes(); ok {
		if err := cliniccheckup.RequiredTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "required_time_minutes", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.required_time_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionCount(); ok {
		if err := cliniccheckup.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.question_count": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClinicCheckup.clinic"`)
	}
	return nil
}

func (_u *ClinicCheckupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cliniccheckup.Table, cliniccheckup.Columns, sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cliniccheckup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(cliniccheckup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(cliniccheckup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cliniccheckup.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(cliniccheckup.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(cliniccheckup.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredTimeMinutes(); ok {
		_spec.SetField(cliniccheckup.FieldRequiredTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredTimeMinutes(); ok {
		_spec.AddField(cliniccheckup.FieldRequiredTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredAuth(); ok {
		_spec.SetField(cliniccheckup.FieldRequiredAuth, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(cliniccheckup.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(cliniccheckup.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(cliniccheckup.FieldApprovers, field.TypeString, value)
	}
	if _u.mutation.ApproversCleared() {
		_spec.ClearField(cliniccheckup.FieldApprovers, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(cliniccheckup.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cliniccheckup.ClinicTable,
			Columns: []string{cliniccheckup.ClinicColumn},
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
			Inverse: true,
			Table:   cliniccheckup.ClinicTable,
			Columns: []string{cliniccheckup.ClinicColumn},
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
	if _u.mutation.StartingQuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   cliniccheckup.StartingQuestionTable,
			Columns: []string{cliniccheckup.StartingQuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StartingQuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   cliniccheckup.StartingQuestionTable,
			Columns: []string{cliniccheckup.StartingQuestionColumn},
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
	if _u.mutation.AnalyzesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.AnalyzesTable,
			Columns: []string{cliniccheckup.AnalyzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalyzesIDs(); len(nodes) > 0 && !_u.mutation.AnalyzesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.AnalyzesTable,
			Columns: []string{cliniccheckup.AnalyzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyzesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.AnalyzesTable,
			Columns: []string{cliniccheckup.AnalyzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.SessionsTable,
			Columns: []string{cliniccheckup.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.SessionsTable,
			Columns: []string{cliniccheckup.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.SessionsTable,
			Columns: []string{cliniccheckup.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cliniccheckup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicCheckupUpdateOne is the builder for updating a single ClinicCheckup entity.
type ClinicCheckupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicCheckupMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicCheckupUpdateOne) SetUpdatedAt(v time.Time) *ClinicCheckupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicCheckupUpdateOne) SetDeletedAt(v time.Time) *ClinicCheckupUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableDeletedAt(v *time.Time) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicCheckupUpdateOne) ClearDeletedAt() *ClinicCheckupUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ClinicCheckupUpdateOne) SetClinicID(v uuid.UUID) *ClinicCheckupUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableClinicID(v *uuid.UUID) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ClinicCheckupUpdateOne) SetTitle(v string) *ClinicCheckupUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableTitle(v *string) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicCheckupUpdateOne) SetDescription(v string) *ClinicCheckupUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableDescription(v *string) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicCheckupUpdateOne) ClearDescription() *ClinicCheckupUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRequiredTimeMinutes sets the "required_time_minutes" field.
func (_u *ClinicCheckupUpdateOne) SetRequiredTimeMinutes(v int) *ClinicCheckupUpdateOne {
	_u.mutation.ResetRequiredTimeMinutes()
	_u.mutation.SetRequiredTimeMinutes(v)
	return _u
}

// SetNillableRequiredTimeMinutes sets the "required_time_minutes" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableRequiredTimeMinutes(v *int) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetRequiredTimeMinutes(*v)
	}
	return _u
}

// AddRequiredTimeMinutes adds value to the "required_time_minutes" field.
func (_u *ClinicCheckupUpdateOne) AddRequiredTimeMinutes(v int) *ClinicCheckupUpdateOne {
	_u.mutation.AddRequiredTimeMinutes(v)
	return _u
}

// SetRequiredAuth sets the "required_auth" field.
func (_u *ClinicCheckupUpdateOne) SetRequiredAuth(v bool) *ClinicCheckupUpdateOne {
	_u.mutation.SetRequiredAuth(v)
	return _u
}

// SetNillableRequiredAuth sets the "required_auth" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableRequiredAuth(v *bool) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetRequiredAuth(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *ClinicCheckupUpdateOne) SetQuestionCount(v int) *ClinicCheckupUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableQuestionCount(v *int) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *ClinicCheckupUpdateOne) AddQuestionCount(v int) *ClinicCheckupUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetApprovers sets the "approvers" field.
func (_u *ClinicCheckupUpdateOne) SetApprovers(v string) *ClinicCheckupUpdateOne {
	_u.mutation.SetApprovers(v)
	return _u
}

// SetNillableApprovers sets the "approvers" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableApprovers(v *string) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetApprovers(*v)
	}
	return _u
}

// ClearApprovers clears the value of the "approvers" field.
func (_u *ClinicCheckupUpdateOne) ClearApprovers() *ClinicCheckupUpdateOne {
	_u.mutation.ClearApprovers()
	return _u
}

// SetStartingQuestionID sets the "starting_question_id" field.
func (_u *ClinicCheckupUpdateOne) SetStartingQuestionID(v uuid.UUID) *ClinicCheckupUpdateOne {
	_u.mutation.SetStartingQuestionID(v)
	return _u
}

// SetNillableStartingQuestionID sets the "starting_question_id" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableStartingQuestionID(v *uuid.UUID) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetStartingQuestionID(*v)
	}
	return _u
}

// ClearStartingQuestionID clears the value of the "starting_question_id" field.
func (_u *ClinicCheckupUpdateOne) ClearStartingQuestionID() *ClinicCheckupUpdateOne {
	_u.mutation.ClearStartingQuestionID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClinicCheckupUpdateOne) SetIsActive(v bool) *ClinicCheckupUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClinicCheckupUpdateOne) SetNillableIsActive(v *bool) *ClinicCheckupUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ClinicCheckupUpdateOne) SetClinic(v *Clinic) *ClinicCheckupUpdateOne {
	return _u.SetClinicID(v.ID)
}

// SetStartingQuestion sets the "starting_question" edge to the QuestionShare entity.
func (_u *ClinicCheckupUpdateOne) SetStartingQuestion(v *QuestionShare) *ClinicCheckupUpdateOne {
	return _u.SetStartingQuestionID(v.ID)
}

// AddAnalyzeIDs adds the "analyzes" edge to the CheckupAnalyze entity by IDs.
func (_u *ClinicCheckupUpdateOne) AddAnalyzeIDs(ids ...uuid.UUID) *ClinicCheckupUpdateOne {
	_u.mutation.AddAnalyzeIDs(ids...)
	return _u
}

// AddAnalyzes adds the "analyzes" edges to the CheckupAnalyze entity.
func (_u *ClinicCheckupUpdateOne) AddAnalyzes(v ...*CheckupAnalyze) *ClinicCheckupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalyzeIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Checkup entity by IDs.
func (_u *ClinicCheckupUpdateOne) AddSessionIDs(ids ...uuid.UUID) *ClinicCheckupUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Checkup entity.
func (_u *ClinicCheckupUpdateOne) AddSessions(v ...*Checkup) *ClinicCheckupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ClinicCheckupMutation object of the builder.
func (_u *ClinicCheckupUpdateOne) Mutation() *ClinicCheckupMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ClinicCheckupUpdateOne) ClearClinic() *ClinicCheckupUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// ClearStartingQuestion clears the "starting_question" edge to the QuestionShare entity.
func (_u *ClinicCheckupUpdateOne) ClearStartingQuestion() *ClinicCheckupUpdateOne {
	_u.mutation.ClearStartingQuestion()
	return _u
}

// ClearAnalyzes clears all "analyzes" edges to the CheckupAnalyze entity.
func (_u *ClinicCheckupUpdateOne) ClearAnalyzes() *ClinicCheckupUpdateOne {
	_u.mutation.ClearAnalyzes()
	return _u
}

// RemoveAnalyzeIDs removes the "analyzes" edge to CheckupAnalyze entities by IDs.
func (_u *ClinicCheckupUpdateOne) RemoveAnalyzeIDs(ids ...uuid.UUID) *ClinicCheckupUpdateOne {
	_u.mutation.RemoveAnalyzeIDs(ids...)
	return _u
}

// RemoveAnalyzes removes "analyzes" edges to CheckupAnalyze entities.
func (_u *ClinicCheckupUpdateOne) RemoveAnalyzes(v ...*CheckupAnalyze) *ClinicCheckupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalyzeIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Checkup entity.
func (_u *ClinicCheckupUpdateOne) ClearSessions() *ClinicCheckupUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Checkup entities by IDs.
func (_u *ClinicCheckupUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *ClinicCheckupUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Checkup entities.
func (_u *ClinicCheckupUpdateOne) RemoveSessions(v ...*Checkup) *ClinicCheckupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the ClinicCheckupUpdate builder.
func (_u *ClinicCheckupUpdateOne) Where(ps ...predicate.ClinicCheckup) *ClinicCheckupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicCheckupUpdateOne) Select(field string, fields ...string) *ClinicCheckupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClinicCheckup entity.
func (_u *ClinicCheckupUpdateOne) Save(ctx context.Context) (*ClinicCheckup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicCheckupUpdateOne) SaveX(ctx context.Context) *ClinicCheckup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicCheckupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicCheckupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicCheckupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cliniccheckup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicCheckupUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := cliniccheckup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredTimeMinutes(); ok {
		if err := cliniccheckup.RequiredTimeMinutesValidator(v); err != nil {
			return &ValidationError{Name: "required_time_minutes", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.required_time_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionCount(); ok {
		if err := cliniccheckup.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`repo: validator failed for field "ClinicCheckup.question_count": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClinicCheckup.clinic"`)
	}
	return nil
}

func (_u *ClinicCheckupUpdateOne) sqlSave(ctx context.Context) (_node *ClinicCheckup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cliniccheckup.Table, cliniccheckup.Columns, sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClinicCheckup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cliniccheckup.FieldID)
		for _, f := range fields {
			if !cliniccheckup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != cliniccheckup.FieldID {
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
		_spec.SetField(cliniccheckup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(cliniccheckup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(cliniccheckup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(cliniccheckup.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(cliniccheckup.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(cliniccheckup.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.RequiredTimeMinutes(); ok {
		_spec.SetField(cliniccheckup.FieldRequiredTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredTimeMinutes(); ok {
		_spec.AddField(cliniccheckup.FieldRequiredTimeMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredAuth(); ok {
		_spec.SetField(cliniccheckup.FieldRequiredAuth, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(cliniccheckup.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(cliniccheckup.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Approvers(); ok {
		_spec.SetField(cliniccheckup.FieldApprovers, field.TypeString, value)
	}
	if _u.mutation.ApproversCleared() {
		_spec.ClearField(cliniccheckup.FieldApprovers, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(cliniccheckup.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cliniccheckup.ClinicTable,
			Columns: []string{cliniccheckup.ClinicColumn},
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
			Inverse: true,
			Table:   cliniccheckup.ClinicTable,
			Columns: []string{cliniccheckup.ClinicColumn},
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
	if _u.mutation.StartingQuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   cliniccheckup.StartingQuestionTable,
			Columns: []string{cliniccheckup.StartingQuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionshare.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StartingQuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   cliniccheckup.StartingQuestionTable,
			Columns: []string{cliniccheckup.StartingQuestionColumn},
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
	if _u.mutation.AnalyzesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.AnalyzesTable,
			Columns: []string{cliniccheckup.AnalyzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalyzesIDs(); len(nodes) > 0 && !_u.mutation.AnalyzesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.AnalyzesTable,
			Columns: []string{cliniccheckup.AnalyzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyzesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.AnalyzesTable,
			Columns: []string{cliniccheckup.AnalyzesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkupanalyze.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.SessionsTable,
			Columns: []string{cliniccheckup.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.SessionsTable,
			Columns: []string{cliniccheckup.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cliniccheckup.SessionsTable,
			Columns: []string{cliniccheckup.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClinicCheckup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cliniccheckup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
