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
	"github.com/pezeshkyar/checkup_backend/internal/repo/clinic"
	"github.com/pezeshkyar/checkup_backend/internal/repo/cliniccheckup"
	"github.com/pezeshkyar/checkup_backend/internal/repo/patientprofile"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
	"github.com/pezeshkyar/checkup_backend/internal/repo/questionanswer"
)

// CheckupUpdate is the builder for updating Checkup entities.
type CheckupUpdate struct {
	config
	hooks    []Hook
	mutation *CheckupMutation
}

// Where appends a list predicates to the CheckupUpdate builder.
func (_u *CheckupUpdate) Where(ps ...predicate.Checkup) *CheckupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckupUpdate) SetUpdatedAt(v time.Time) *CheckupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CheckupUpdate) SetDeletedAt(v time.Time) *CheckupUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CheckupUpdate) SetNillableDeletedAt(v *time.Time) *CheckupUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CheckupUpdate) ClearDeletedAt() *CheckupUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (_u *CheckupUpdate) SetPatientProfileID(v uuid.UUID) *CheckupUpdate {
	_u.mutation.SetPatientProfileID(v)
	return _u
}

// SetNillablePatientProfileID sets the "patient_profile_id" field if the given value is not nil.
func (_u *CheckupUpdate) SetNillablePatientProfileID(v *uuid.UUID) *CheckupUpdate {
	if v != nil {
		_u.SetPatientProfileID(*v)
	}
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *CheckupUpdate) SetClinicID(v uuid.UUID) *CheckupUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *CheckupUpdate) SetNillableClinicID(v *uuid.UUID) *CheckupUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *CheckupUpdate) ClearClinicID() *CheckupUpdate {
	_u.mutation.ClearClinicID()
	return _u
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (_u *CheckupUpdate) SetClinicCheckupID(v uuid.UUID) *CheckupUpdate {
	_u.mutation.SetClinicCheckupID(v)
	return _u
}

// SetNillableClinicCheckupID sets the "clinic_checkup_id" field if the given value is not nil.
func (_u *CheckupUpdate) SetNillableClinicCheckupID(v *uuid.UUID) *CheckupUpdate {
	if v != nil {
		_u.SetClinicCheckupID(*v)
	}
	return _u
}

// ClearClinicCheckupID clears the value of the "clinic_checkup_id" field.
func (_u *CheckupUpdate) ClearClinicCheckupID() *CheckupUpdate {
	_u.mutation.ClearClinicCheckupID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *CheckupUpdate) SetTitle(v string) *CheckupUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CheckupUpdate) SetNillableTitle(v *string) *CheckupUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CheckupUpdate) SetDescription(v string) *CheckupUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CheckupUpdate) SetNillableDescription(v *string) *CheckupUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CheckupUpdate) ClearDescription() *CheckupUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *CheckupUpdate) SetExecutedAt(v time.Time) *CheckupUpdate {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *CheckupUpdate) SetNillableExecutedAt(v *time.Time) *CheckupUpdate {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *CheckupUpdate) SetIsCompleted(v bool) *CheckupUpdate {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *CheckupUpdate) SetNillableIsCompleted(v *bool) *CheckupUpdate {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetPatientID sets the "patient" edge to the PatientProfile entity by ID.
func (_u *CheckupUpdate) SetPatientID(id uuid.UUID) *CheckupUpdate {
	_u.mutation.SetPatientID(id)
	return _u
}

// SetPatient sets the "patient" edge to the PatientProfile entity.
func (_u *CheckupUpdate) SetPatient(v *PatientProfile) *CheckupUpdate {
	return _u.SetPatientID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *CheckupUpdate) SetClinic(v *Clinic) *CheckupUpdate {
	return _u.SetClinicID(v.ID)
}

// SetTemplateID sets the "template" edge to the ClinicCheckup entity by ID.
func (_u *CheckupUpdate) SetTemplateID(id uuid.UUID) *CheckupUpdate {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetNillableTemplateID sets the "template" edge to the ClinicCheckup entity by ID if the given value is not nil.
func (_u *CheckupUpdate) SetNillableTemplateID(id *uuid.UUID) *CheckupUpdate {
	if id != nil {
		_u = _u.SetTemplateID(*id)
	}
	return _u
}

// SetTemplate sets the "template" edge to the ClinicCheckup entity.
func (_u *CheckupUpdate) SetTemplate(v *ClinicCheckup) *CheckupUpdate {
	return _u.SetTemplateID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuestionAnswer entity by IDs.
func (_u *CheckupUpdate) AddAnswerIDs(ids ...uuid.UUID) *CheckupUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the QuestionAnswer entity.
func (_u *CheckupUpdate) AddAnswers(v ...*QuestionAnswer) *CheckupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the CheckupMutation object of the builder.
func (_u *CheckupUpdate) Mutation() *CheckupMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the PatientProfile entity.
func (_u *CheckupUpdate) ClearPatient() *CheckupUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *CheckupUpdate) ClearClinic() *CheckupUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// ClearTemplate clears the "template" edge to the ClinicCheckup entity.
func (_u *CheckupUpdate) ClearTemplate() *CheckupUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearAnswers clears all "answers" edges to the QuestionAnswer entity.
func (_u *CheckupUpdate) ClearAnswers() *CheckupUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to QuestionAnswer entities by IDs.
func (_u *CheckupUpdate) RemoveAnswerIDs(ids ...uuid.UUID) *CheckupUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to QuestionAnswer entities.
func (_u *CheckupUpdate) RemoveAnswers(v ...*QuestionAnswer) *CheckupUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckupUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := checkup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Checkup.title": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Checkup.patient"`)
	}
	return nil
}

func (_u *CheckupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkup.Table, checkup.Columns, sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checkup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(checkup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(checkup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(checkup.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(checkup.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(checkup.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(checkup.FieldExecutedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(checkup.FieldIsCompleted, field.TypeBool, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.PatientTable,
			Columns: []string{checkup.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.PatientTable,
			Columns: []string{checkup.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID),
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
			Table:   checkup.ClinicTable,
			Columns: []string{checkup.ClinicColumn},
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
			Table:   checkup.ClinicTable,
			Columns: []string{checkup.ClinicColumn},
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
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.TemplateTable,
			Columns: []string{checkup.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.TemplateTable,
			Columns: []string{checkup.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkup.AnswersTable,
			Columns: []string{checkup.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkup.AnswersTable,
			Columns: []string{checkup.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkup.AnswersTable,
			Columns: []string{checkup.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckupUpdateOne is the builder for updating a single Checkup entity.
type CheckupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckupMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CheckupUpdateOne) SetUpdatedAt(v time.Time) *CheckupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CheckupUpdateOne) SetDeletedAt(v time.Time) *CheckupUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillableDeletedAt(v *time.Time) *CheckupUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CheckupUpdateOne) ClearDeletedAt() *CheckupUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPatientProfileID sets the "patient_profile_id" field.
func (_u *CheckupUpdateOne) SetPatientProfileID(v uuid.UUID) *CheckupUpdateOne {
	_u.mutation.SetPatientProfileID(v)
	return _u
}

// SetNillablePatientProfileID sets the "patient_profile_id" field if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillablePatientProfileID(v *uuid.UUID) *CheckupUpdateOne {
	if v != nil {
		_u.SetPatientProfileID(*v)
	}
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *CheckupUpdateOne) SetClinicID(v uuid.UUID) *CheckupUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillableClinicID(v *uuid.UUID) *CheckupUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *CheckupUpdateOne) ClearClinicID() *CheckupUpdateOne {
	_u.mutation.ClearClinicID()
	return _u
}

// SetClinicCheckupID sets the "clinic_checkup_id" field.
func (_u *CheckupUpdateOne) SetClinicCheckupID(v uuid.UUID) *CheckupUpdateOne {
	_u.mutation.SetClinicCheckupID(v)
	return _u
}

// SetNillableClinicCheckupID sets the "clinic_checkup_id" field if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillableClinicCheckupID(v *uuid.UUID) *CheckupUpdateOne {
	if v != nil {
		_u.SetClinicCheckupID(*v)
	}
	return _u
}

// ClearClinicCheckupID clears the value of the "clinic_checkup_id" field.
func (_u *CheckupUpdateOne) ClearClinicCheckupID() *CheckupUpdateOne {
	_u.mutation.ClearClinicCheckupID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *CheckupUpdateOne) SetTitle(v string) *CheckupUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillableTitle(v *string) *CheckupUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CheckupUpdateOne) SetDescription(v string) *CheckupUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillableDescription(v *string) *CheckupUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CheckupUpdateOne) ClearDescription() *CheckupUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *CheckupUpdateOne) SetExecutedAt(v time.Time) *CheckupUpdateOne {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillableExecutedAt(v *time.Time) *CheckupUpdateOne {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *CheckupUpdateOne) SetIsCompleted(v bool) *CheckupUpdateOne {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillableIsCompleted(v *bool) *CheckupUpdateOne {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetPatientID sets the "patient" edge to the PatientProfile entity by ID.
func (_u *CheckupUpdateOne) SetPatientID(id uuid.UUID) *CheckupUpdateOne {
	_u.mutation.SetPatientID(id)
	return _u
}

// SetPatient sets the "patient" edge to the PatientProfile entity.
func (_u *CheckupUpdateOne) SetPatient(v *PatientProfile) *CheckupUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *CheckupUpdateOne) SetClinic(v *Clinic) *CheckupUpdateOne {
	return _u.SetClinicID(v.ID)
}

// SetTemplateID sets the "template" edge to the ClinicCheckup entity by ID.
func (_u *CheckupUpdateOne) SetTemplateID(id uuid.UUID) *CheckupUpdateOne {
	_u.mutation.SetTemplateID(id)
	return _u
}

// SetNillableTemplateID sets the "template" edge to the ClinicCheckup entity by ID if the given value is not nil.
func (_u *CheckupUpdateOne) SetNillableTemplateID(id *uuid.UUID) *CheckupUpdateOne {
	if id != nil {
		_u = _u.SetTemplateID(*id)
	}
	return _u
}

// SetTemplate sets the "template" edge to the ClinicCheckup entity.
func (_u *CheckupUpdateOne) SetTemplate(v *ClinicCheckup) *CheckupUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the QuestionAnswer entity by IDs.
func (_u *CheckupUpdateOne) AddAnswerIDs(ids ...uuid.UUID) *CheckupUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the QuestionAnswer entity.
func (_u *CheckupUpdateOne) AddAnswers(v ...*QuestionAnswer) *CheckupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the CheckupMutation object of the builder.
func (_u *CheckupUpdateOne) Mutation() *CheckupMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the PatientProfile entity.
func (_u *CheckupUpdateOne) ClearPatient() *CheckupUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *CheckupUpdateOne) ClearClinic() *CheckupUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// ClearTemplate clears the "template" edge to the ClinicCheckup entity.
func (_u *CheckupUpdateOne) ClearTemplate() *CheckupUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearAnswers clears all "answers" edges to the QuestionAnswer entity.
func (_u *CheckupUpdateOne) ClearAnswers() *CheckupUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to QuestionAnswer entities by IDs.
func (_u *CheckupUpdateOne) RemoveAnswerIDs(ids ...uuid.UUID) *CheckupUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to QuestionAnswer entities.
func (_u *CheckupUpdateOne) RemoveAnswers(v ...*QuestionAnswer) *CheckupUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the CheckupUpdate builder.
func (_u *CheckupUpdateOne) Where(ps ...predicate.Checkup) *CheckupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckupUpdateOne) Select(field string, fields ...string) *CheckupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkup entity.
func (_u *CheckupUpdateOne) Save(ctx context.Context) (*Checkup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckupUpdateOne) SaveX(ctx context.Context) *Checkup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CheckupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checkup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckupUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := checkup.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Checkup.title": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Checkup.patient"`)
	}
	return nil
}

func (_u *CheckupUpdateOne) sqlSave(ctx context.Context) (_node *Checkup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkup.Table, checkup.Columns, sqlgraph.NewFieldSpec(checkup.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Checkup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkup.FieldID)
		for _, f := range fields {
			if !checkup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != checkup.FieldID {
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
		_spec.SetField(checkup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(checkup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(checkup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(checkup.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(checkup.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(checkup.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(checkup.FieldExecutedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(checkup.FieldIsCompleted, field.TypeBool, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.PatientTable,
			Columns: []string{checkup.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.PatientTable,
			Columns: []string{checkup.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patientprofile.FieldID, field.TypeUUID),
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
			Table:   checkup.ClinicTable,
			Columns: []string{checkup.ClinicColumn},
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
			Table:   checkup.ClinicTable,
			Columns: []string{checkup.ClinicColumn},
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
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.TemplateTable,
			Columns: []string{checkup.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checkup.TemplateTable,
			Columns: []string{checkup.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cliniccheckup.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkup.AnswersTable,
			Columns: []string{checkup.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkup.AnswersTable,
			Columns: []string{checkup.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   checkup.AnswersTable,
			Columns: []string{checkup.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionanswer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Checkup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
