// Code generated by ent, DO NOT EDIT.

package questionshare

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldDeletedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldDoctorID, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldClinicID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldTitle, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldPrompt, v))
}

// IsStarter applies equality check predicate on the "is_starter" field. It's identical to IsStarterEQ.
func IsStarter(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldIsStarter, v))
}

// IsEquation applies equality check predicate on the "is_equation" field. It's identical to IsEquationEQ.
func IsEquation(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldIsEquation, v))
}

// Equation applies equality check predicate on the "equation" field. It's identical to EquationEQ.
func Equation(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldEquation, v))
}

// ChartVisible applies equality check predicate on the "chart_visible" field. It's identical to ChartVisibleEQ.
func ChartVisible(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartVisible, v))
}

// ChartSrcX applies equality check predicate on the "chart_src_x" field. It's identical to ChartSrcXEQ.
func ChartSrcX(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartSrcX, v))
}

// ChartSrcY applies equality check predicate on the "chart_src_y" field. It's identical to ChartSrcYEQ.
func ChartSrcY(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartSrcY, v))
}

// ChartDesX applies equality check predicate on the "chart_des_x" field. It's identical to ChartDesXEQ.
func ChartDesX(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartDesX, v))
}

// ChartDesY applies equality check predicate on the "chart_des_y" field. It's identical to ChartDesYEQ.
func ChartDesY(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartDesY, v))
}

// ChartBranchCount applies equality check predicate on the "chart_branch_count" field. It's identical to ChartBranchCountEQ.
func ChartBranchCount(v int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartBranchCount, v))
}

// ChartConnectQuestionID applies equality check predicate on the "chart_connect_question_id" field. It's identical to ChartConnectQuestionIDEQ.
func ChartConnectQuestionID(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartConnectQuestionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotNull(FieldDeletedAt))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldDoctorID, vs...))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDIsNil applies the IsNil predicate on the "clinic_id" field.
func ClinicIDIsNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIsNull(FieldClinicID))
}

// ClinicIDNotNil applies the NotNil predicate on the "clinic_id" field.
func ClinicIDNotNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotNull(FieldClinicID))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldContainsFold(FieldTitle, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldContainsFold(FieldPrompt, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v QuestionType) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v QuestionType) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...QuestionType) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...QuestionType) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldQuestionType, vs...))
}

// ExpertLevelEQ applies the EQ predicate on the "expert_level" field.
func ExpertLevelEQ(v ExpertLevel) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldExpertLevel, v))
}

// ExpertLevelNEQ applies the NEQ predicate on the "expert_level" field.
func ExpertLevelNEQ(v ExpertLevel) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldExpertLevel, v))
}

// ExpertLevelIn applies the In predicate on the "expert_level" field.
func ExpertLevelIn(vs ...ExpertLevel) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldExpertLevel, vs...))
}

// ExpertLevelNotIn applies the NotIn predicate on the "expert_level" field.
func ExpertLevelNotIn(vs ...ExpertLevel) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldExpertLevel, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldPriority, vs...))
}

// DateTypeEQ applies the EQ predicate on the "date_type" field.
func DateTypeEQ(v DateType) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldDateType, v))
}

// DateTypeNEQ applies the NEQ predicate on the "date_type" field.
func DateTypeNEQ(v DateType) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldDateType, v))
}

// DateTypeIn applies the In predicate on the "date_type" field.
func DateTypeIn(vs ...DateType) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldDateType, vs...))
}

// DateTypeNotIn applies the NotIn predicate on the "date_type" field.
func DateTypeNotIn(vs ...DateType) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldDateType, vs...))
}

// IsStarterEQ applies the EQ predicate on the "is_starter" field.
func IsStarterEQ(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldIsStarter, v))
}

// IsStarterNEQ applies the NEQ predicate on the "is_starter" field.
func IsStarterNEQ(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldIsStarter, v))
}

// IsEquationEQ applies the EQ predicate on the "is_equation" field.
func IsEquationEQ(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldIsEquation, v))
}

// IsEquationNEQ applies the NEQ predicate on the "is_equation" field.
func IsEquationNEQ(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldIsEquation, v))
}

// EquationEQ applies the EQ predicate on the "equation" field.
func EquationEQ(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldEquation, v))
}

// EquationNEQ applies the NEQ predicate on the "equation" field.
func EquationNEQ(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldEquation, v))
}

// EquationIn applies the In predicate on the "equation" field.
func EquationIn(vs ...string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldEquation, vs...))
}

// EquationNotIn applies the NotIn predicate on the "equation" field.
func EquationNotIn(vs ...string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldEquation, vs...))
}

// EquationGT applies the GT predicate on the "equation" field.
func EquationGT(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldEquation, v))
}

// EquationGTE applies the GTE predicate on the "equation" field.
func EquationGTE(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldEquation, v))
}

// EquationLT applies the LT predicate on the "equation" field.
func EquationLT(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldEquation, v))
}

// EquationLTE applies the LTE predicate on the "equation" field.
func EquationLTE(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldEquation, v))
}

// EquationContains applies the Contains predicate on the "equation" field.
func EquationContains(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldContains(FieldEquation, v))
}

// EquationHasPrefix applies the HasPrefix predicate on the "equation" field.
func EquationHasPrefix(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldHasPrefix(FieldEquation, v))
}

// EquationHasSuffix applies the HasSuffix predicate on the "equation" field.
func EquationHasSuffix(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldHasSuffix(FieldEquation, v))
}

// EquationIsNil applies the IsNil predicate on the "equation" field.
func EquationIsNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIsNull(FieldEquation))
}

// EquationNotNil applies the NotNil predicate on the "equation" field.
func EquationNotNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotNull(FieldEquation))
}

// EquationEqualFold applies the EqualFold predicate on the "equation" field.
func EquationEqualFold(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEqualFold(FieldEquation, v))
}

// EquationContainsFold applies the ContainsFold predicate on the "equation" field.
func EquationContainsFold(v string) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldContainsFold(FieldEquation, v))
}

// ChartVisibleEQ applies the EQ predicate on the "chart_visible" field.
func ChartVisibleEQ(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartVisible, v))
}

// ChartVisibleNEQ applies the NEQ predicate on the "chart_visible" field.
func ChartVisibleNEQ(v bool) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldChartVisible, v))
}

// ChartSrcXEQ applies the EQ predicate on the "chart_src_x" field.
func ChartSrcXEQ(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartSrcX, v))
}

// ChartSrcXNEQ applies the NEQ predicate on the "chart_src_x" field.
func ChartSrcXNEQ(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldChartSrcX, v))
}

// ChartSrcXIn applies the In predicate on the "chart_src_x" field.
func ChartSrcXIn(vs ...float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldChartSrcX, vs...))
}

// ChartSrcXNotIn applies the NotIn predicate on the "chart_src_x" field.
func ChartSrcXNotIn(vs ...float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldChartSrcX, vs...))
}

// ChartSrcXGT applies the GT predicate on the "chart_src_x" field.
func ChartSrcXGT(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldChartSrcX, v))
}

// ChartSrcXGTE applies the GTE predicate on the "chart_src_x" field.
func ChartSrcXGTE(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldChartSrcX, v))
}

// ChartSrcXLT applies the LT predicate on the "chart_src_x" field.
func ChartSrcXLT(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldChartSrcX, v))
}

// ChartSrcXLTE applies the LTE predicate on the "chart_src_x" field.
func ChartSrcXLTE(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldChartSrcX, v))
}

// ChartSrcYEQ applies the EQ predicate on the "chart_src_y" field.
func ChartSrcYEQ(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartSrcY, v))
}

// ChartSrcYNEQ applies the NEQ predicate on the "chart_src_y" field.
func ChartSrcYNEQ(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldChartSrcY, v))
}

// ChartSrcYIn applies the In predicate on the "chart_src_y" field.
func ChartSrcYIn(vs ...float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldChartSrcY, vs...))
}

// ChartSrcYNotIn applies the NotIn predicate on the "chart_src_y" field.
func ChartSrcYNotIn(vs ...float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldChartSrcY, vs...))
}

// ChartSrcYGT applies the GT predicate on the "chart_src_y" field.
func ChartSrcYGT(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldChartSrcY, v))
}

// ChartSrcYGTE applies the GTE predicate on the "chart_src_y" field.
func ChartSrcYGTE(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldChartSrcY, v))
}

// ChartSrcYLT applies the LT predicate on the "chart_src_y" field.
func ChartSrcYLT(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldChartSrcY, v))
}

// ChartSrcYLTE applies the LTE predicate on the "chart_src_y" field.
func ChartSrcYLTE(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldChartSrcY, v))
}

// ChartDesXEQ applies the EQ predicate on the "chart_des_x" field.
func ChartDesXEQ(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartDesX, v))
}

// ChartDesXNEQ applies the NEQ predicate on the "chart_des_x" field.
func ChartDesXNEQ(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldChartDesX, v))
}

// ChartDesXIn applies the In predicate on the "chart_des_x" field.
func ChartDesXIn(vs ...float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldChartDesX, vs...))
}

// ChartDesXNotIn applies the NotIn predicate on the "chart_des_x" field.
func ChartDesXNotIn(vs ...float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldChartDesX, vs...))
}

// ChartDesXGT applies the GT predicate on the "chart_des_x" field.
func ChartDesXGT(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldChartDesX, v))
}

// ChartDesXGTE applies the GTE predicate on the "chart_des_x" field.
func ChartDesXGTE(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldChartDesX, v))
}

// ChartDesXLT applies the LT predicate on the "chart_des_x" field.
func ChartDesXLT(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldChartDesX, v))
}

// ChartDesXLTE applies the LTE predicate on the "chart_des_x" field.
func ChartDesXLTE(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldChartDesX, v))
}

// ChartDesYEQ applies the EQ predicate on the "chart_des_y" field.
func ChartDesYEQ(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartDesY, v))
}

// ChartDesYNEQ applies the NEQ predicate on the "chart_des_y" field.
func ChartDesYNEQ(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldChartDesY, v))
}

// ChartDesYIn applies the In predicate on the "chart_des_y" field.
func ChartDesYIn(vs ...float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldChartDesY, vs...))
}

// ChartDesYNotIn applies the NotIn predicate on the "chart_des_y" field.
func ChartDesYNotIn(vs ...float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldChartDesY, vs...))
}

// ChartDesYGT applies the GT predicate on the "chart_des_y" field.
func ChartDesYGT(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldChartDesY, v))
}

// ChartDesYGTE applies the GTE predicate on the "chart_des_y" field.
func ChartDesYGTE(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldChartDesY, v))
}

// ChartDesYLT applies the LT predicate on the "chart_des_y" field.
func ChartDesYLT(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldChartDesY, v))
}

// ChartDesYLTE applies the LTE predicate on the "chart_des_y" field.
func ChartDesYLTE(v float64) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldChartDesY, v))
}

// ChartBranchCountEQ applies the EQ predicate on the "chart_branch_count" field.
func ChartBranchCountEQ(v int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartBranchCount, v))
}

// ChartBranchCountNEQ applies the NEQ predicate on the "chart_branch_count" field.
func ChartBranchCountNEQ(v int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldChartBranchCount, v))
}

// ChartBranchCountIn applies the In predicate on the "chart_branch_count" field.
func ChartBranchCountIn(vs ...int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldChartBranchCount, vs...))
}

// ChartBranchCountNotIn applies the NotIn predicate on the "chart_branch_count" field.
func ChartBranchCountNotIn(vs ...int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldChartBranchCount, vs...))
}

// ChartBranchCountGT applies the GT predicate on the "chart_branch_count" field.
func ChartBranchCountGT(v int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGT(FieldChartBranchCount, v))
}

// ChartBranchCountGTE applies the GTE predicate on the "chart_branch_count" field.
func ChartBranchCountGTE(v int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldGTE(FieldChartBranchCount, v))
}

// ChartBranchCountLT applies the LT predicate on the "chart_branch_count" field.
func ChartBranchCountLT(v int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLT(FieldChartBranchCount, v))
}

// ChartBranchCountLTE applies the LTE predicate on the "chart_branch_count" field.
func ChartBranchCountLTE(v int) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldLTE(FieldChartBranchCount, v))
}

// ChartConnectQuestionIDEQ applies the EQ predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDEQ(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldEQ(FieldChartConnectQuestionID, v))
}

// ChartConnectQuestionIDNEQ applies the NEQ predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDNEQ(v uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNEQ(FieldChartConnectQuestionID, v))
}

// ChartConnectQuestionIDIn applies the In predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDIn(vs ...uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIn(FieldChartConnectQuestionID, vs...))
}

// ChartConnectQuestionIDNotIn applies the NotIn predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDNotIn(vs ...uuid.UUID) predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotIn(FieldChartConnectQuestionID, vs...))
}

// ChartConnectQuestionIDIsNil applies the IsNil predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDIsNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldIsNull(FieldChartConnectQuestionID))
}

// ChartConnectQuestionIDNotNil applies the NotNil predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDNotNil() predicate.QuestionShare {
	return predicate.QuestionShare(sql.FieldNotNull(FieldChartConnectQuestionID))
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOptions applies the HasEdge predicate on the "options" edge.
func HasOptions() predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OptionsTable, OptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOptionsWith applies the HasEdge predicate on the "options" edge with a given conditions (other predicates).
func HasOptionsWith(preds ...predicate.QuestionOption) predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := newOptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrgans applies the HasEdge predicate on the "organs" edge.
func HasOrgans() predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, OrgansTable, OrgansPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrgansWith applies the HasEdge predicate on the "organs" edge with a given conditions (other predicates).
func HasOrgansWith(preds ...predicate.Organ) predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := newOrgansStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChartConnect applies the HasEdge predicate on the "chart_connect" edge.
func HasChartConnect() predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ChartConnectTable, ChartConnectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChartConnectWith applies the HasEdge predicate on the "chart_connect" edge with a given conditions (other predicates).
func HasChartConnectWith(preds ...predicate.QuestionShare) predicate.QuestionShare {
	return predicate.QuestionShare(func(s *sql.Selector) {
		step := newChartConnectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionShare) predicate.QuestionShare {
	return predicate.QuestionShare(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionShare) predicate.QuestionShare {
	return predicate.QuestionShare(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionShare) predicate.QuestionShare {
	return predicate.QuestionShare(sql.NotPredicates(p))
}
