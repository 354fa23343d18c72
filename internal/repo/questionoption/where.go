// Code generated by ent, DO NOT EDIT.

package questionoption

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldDeletedAt, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldQuestionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldTitle, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldWeight, v))
}

// Interpretation applies equality check predicate on the "interpretation" field. It's identical to InterpretationEQ.
func Interpretation(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldInterpretation, v))
}

// Tutorial applies equality check predicate on the "tutorial" field. It's identical to TutorialEQ.
func Tutorial(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldTutorial, v))
}

// AlertID applies equality check predicate on the "alert_id" field. It's identical to AlertIDEQ.
func AlertID(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldAlertID, v))
}

// SuggestedDoctorID applies equality check predicate on the "suggested_doctor_id" field. It's identical to SuggestedDoctorIDEQ.
func SuggestedDoctorID(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldSuggestedDoctorID, v))
}

// SuggestedClinicID applies equality check predicate on the "suggested_clinic_id" field. It's identical to SuggestedClinicIDEQ.
func SuggestedClinicID(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldSuggestedClinicID, v))
}

// IsBranch applies equality check predicate on the "is_branch" field. It's identical to IsBranchEQ.
func IsBranch(v bool) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldIsBranch, v))
}

// ChartX applies equality check predicate on the "chart_x" field. It's identical to ChartXEQ.
func ChartX(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldChartX, v))
}

// ChartY applies equality check predicate on the "chart_y" field. It's identical to ChartYEQ.
func ChartY(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldChartY, v))
}

// ChartConnectQuestionID applies equality check predicate on the "chart_connect_question_id" field. It's identical to ChartConnectQuestionIDEQ.
func ChartConnectQuestionID(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldChartConnectQuestionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotNull(FieldDeletedAt))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldQuestionID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldContainsFold(FieldTitle, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldWeight, v))
}

// InterpretationEQ applies the EQ predicate on the "interpretation" field.
func InterpretationEQ(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldInterpretation, v))
}

// InterpretationNEQ applies the NEQ predicate on the "interpretation" field.
func InterpretationNEQ(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldInterpretation, v))
}

// InterpretationIn applies the In predicate on the "interpretation" field.
func InterpretationIn(vs ...string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldInterpretation, vs...))
}

// InterpretationNotIn applies the NotIn predicate on the "interpretation" field.
func InterpretationNotIn(vs ...string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldInterpretation, vs...))
}

// InterpretationGT applies the GT predicate on the "interpretation" field.
func InterpretationGT(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldInterpretation, v))
}

// InterpretationGTE applies the GTE predicate on the "interpretation" field.
func InterpretationGTE(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldInterpretation, v))
}

// InterpretationLT applies the LT predicate on the "interpretation" field.
func InterpretationLT(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldInterpretation, v))
}

// InterpretationLTE applies the LTE predicate on the "interpretation" field.
func InterpretationLTE(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldInterpretation, v))
}

// InterpretationContains applies the Contains predicate on the "interpretation" field.
func InterpretationContains(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldContains(FieldInterpretation, v))
}

// InterpretationHasPrefix applies the HasPrefix predicate on the "interpretation" field.
func InterpretationHasPrefix(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldHasPrefix(FieldInterpretation, v))
}

// InterpretationHasSuffix applies the HasSuffix predicate on the "interpretation" field.
func InterpretationHasSuffix(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldHasSuffix(FieldInterpretation, v))
}

// InterpretationIsNil applies the IsNil predicate on the "interpretation" field.
func InterpretationIsNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIsNull(FieldInterpretation))
}

// InterpretationNotNil applies the NotNil predicate on the "interpretation" field.
func InterpretationNotNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotNull(FieldInterpretation))
}

// InterpretationEqualFold applies the EqualFold predicate on the "interpretation" field.
func InterpretationEqualFold(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEqualFold(FieldInterpretation, v))
}

// InterpretationContainsFold applies the ContainsFold predicate on the "interpretation" field.
func InterpretationContainsFold(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldContainsFold(FieldInterpretation, v))
}

// TutorialEQ applies the EQ predicate on the "tutorial" field.
func TutorialEQ(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldTutorial, v))
}

// TutorialNEQ applies the NEQ predicate on the "tutorial" field.
func TutorialNEQ(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldTutorial, v))
}

// TutorialIn applies the In predicate on the "tutorial" field.
func TutorialIn(vs ...string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldTutorial, vs...))
}

// TutorialNotIn applies the NotIn predicate on the "tutorial" field.
func TutorialNotIn(vs ...string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldTutorial, vs...))
}

// TutorialGT applies the GT predicate on the "tutorial" field.
func TutorialGT(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldTutorial, v))
}

// TutorialGTE applies the GTE predicate on the "tutorial" field.
func TutorialGTE(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldTutorial, v))
}

// TutorialLT applies the LT predicate on the "tutorial" field.
func TutorialLT(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldTutorial, v))
}

// TutorialLTE applies the LTE predicate on the "tutorial" field.
func TutorialLTE(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldTutorial, v))
}

// TutorialContains applies the Contains predicate on the "tutorial" field.
func TutorialContains(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldContains(FieldTutorial, v))
}

// TutorialHasPrefix applies the HasPrefix predicate on the "tutorial" field.
func TutorialHasPrefix(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldHasPrefix(FieldTutorial, v))
}

// TutorialHasSuffix applies the HasSuffix predicate on the "tutorial" field.
func TutorialHasSuffix(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldHasSuffix(FieldTutorial, v))
}

// TutorialIsNil applies the IsNil predicate on the "tutorial" field.
func TutorialIsNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIsNull(FieldTutorial))
}

// TutorialNotNil applies the NotNil predicate on the "tutorial" field.
func TutorialNotNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotNull(FieldTutorial))
}

// TutorialEqualFold applies the EqualFold predicate on the "tutorial" field.
func TutorialEqualFold(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEqualFold(FieldTutorial, v))
}

// TutorialContainsFold applies the ContainsFold predicate on the "tutorial" field.
func TutorialContainsFold(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldContainsFold(FieldTutorial, v))
}

// AlertIDEQ applies the EQ predicate on the "alert_id" field.
func AlertIDEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldAlertID, v))
}

// AlertIDNEQ applies the NEQ predicate on the "alert_id" field.
func AlertIDNEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldAlertID, v))
}

// AlertIDIn applies the In predicate on the "alert_id" field.
func AlertIDIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldAlertID, vs...))
}

// AlertIDNotIn applies the NotIn predicate on the "alert_id" field.
func AlertIDNotIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldAlertID, vs...))
}

// AlertIDIsNil applies the IsNil predicate on the "alert_id" field.
func AlertIDIsNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIsNull(FieldAlertID))
}

// AlertIDNotNil applies the NotNil predicate on the "alert_id" field.
func AlertIDNotNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotNull(FieldAlertID))
}

// SuggestedDoctorIDEQ applies the EQ predicate on the "suggested_doctor_id" field.
func SuggestedDoctorIDEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldSuggestedDoctorID, v))
}

// SuggestedDoctorIDNEQ applies the NEQ predicate on the "suggested_doctor_id" field.
func SuggestedDoctorIDNEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldSuggestedDoctorID, v))
}

// SuggestedDoctorIDIn applies the In predicate on the "suggested_doctor_id" field.
func SuggestedDoctorIDIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldSuggestedDoctorID, vs...))
}

// SuggestedDoctorIDNotIn applies the NotIn predicate on the "suggested_doctor_id" field.
func SuggestedDoctorIDNotIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldSuggestedDoctorID, vs...))
}

// SuggestedDoctorIDIsNil applies the IsNil predicate on the "suggested_doctor_id" field.
func SuggestedDoctorIDIsNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIsNull(FieldSuggestedDoctorID))
}

// SuggestedDoctorIDNotNil applies the NotNil predicate on the "suggested_doctor_id" field.
func SuggestedDoctorIDNotNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotNull(FieldSuggestedDoctorID))
}

// SuggestedClinicIDEQ applies the EQ predicate on the "suggested_clinic_id" field.
func SuggestedClinicIDEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldSuggestedClinicID, v))
}

// SuggestedClinicIDNEQ applies the NEQ predicate on the "suggested_clinic_id" field.
func SuggestedClinicIDNEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldSuggestedClinicID, v))
}

// SuggestedClinicIDIn applies the In predicate on the "suggested_clinic_id" field.
func SuggestedClinicIDIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldSuggestedClinicID, vs...))
}

// SuggestedClinicIDNotIn applies the NotIn predicate on the "suggested_clinic_id" field.
func SuggestedClinicIDNotIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldSuggestedClinicID, vs...))
}

// SuggestedClinicIDIsNil applies the IsNil predicate on the "suggested_clinic_id" field.
func SuggestedClinicIDIsNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIsNull(FieldSuggestedClinicID))
}

// SuggestedClinicIDNotNil applies the NotNil predicate on the "suggested_clinic_id" field.
func SuggestedClinicIDNotNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotNull(FieldSuggestedClinicID))
}

// IsBranchEQ applies the EQ predicate on the "is_branch" field.
func IsBranchEQ(v bool) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldIsBranch, v))
}

// IsBranchNEQ applies the NEQ predicate on the "is_branch" field.
func IsBranchNEQ(v bool) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldIsBranch, v))
}

// ChartXEQ applies the EQ predicate on the "chart_x" field.
func ChartXEQ(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldChartX, v))
}

// ChartXNEQ applies the NEQ predicate on the "chart_x" field.
func ChartXNEQ(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldChartX, v))
}

// ChartXIn applies the In predicate on the "chart_x" field.
func ChartXIn(vs ...float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldChartX, vs...))
}

// ChartXNotIn applies the NotIn predicate on the "chart_x" field.
func ChartXNotIn(vs ...float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldChartX, vs...))
}

// ChartXGT applies the GT predicate on the "chart_x" field.
func ChartXGT(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldChartX, v))
}

// ChartXGTE applies the GTE predicate on the "chart_x" field.
func ChartXGTE(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldChartX, v))
}

// ChartXLT applies the LT predicate on the "chart_x" field.
func ChartXLT(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldChartX, v))
}

// ChartXLTE applies the LTE predicate on the "chart_x" field.
func ChartXLTE(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldChartX, v))
}

// ChartYEQ applies the EQ predicate on the "chart_y" field.
func ChartYEQ(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldChartY, v))
}

// ChartYNEQ applies the NEQ predicate on the "chart_y" field.
func ChartYNEQ(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldChartY, v))
}

// ChartYIn applies the In predicate on the "chart_y" field.
func ChartYIn(vs ...float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldChartY, vs...))
}

// ChartYNotIn applies the NotIn predicate on the "chart_y" field.
func ChartYNotIn(vs ...float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldChartY, vs...))
}

// ChartYGT applies the GT predicate on the "chart_y" field.
func ChartYGT(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldChartY, v))
}

// ChartYGTE applies the GTE predicate on the "chart_y" field.
func ChartYGTE(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldChartY, v))
}

// ChartYLT applies the LT predicate on the "chart_y" field.
func ChartYLT(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldChartY, v))
}

// ChartYLTE applies the LTE predicate on the "chart_y" field.
func ChartYLTE(v float64) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldChartY, v))
}

// ChartConnectQuestionIDEQ applies the EQ predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldChartConnectQuestionID, v))
}

// ChartConnectQuestionIDNEQ applies the NEQ predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDNEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldChartConnectQuestionID, v))
}

// ChartConnectQuestionIDIn applies the In predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldChartConnectQuestionID, vs...))
}

// ChartConnectQuestionIDNotIn applies the NotIn predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDNotIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldChartConnectQuestionID, vs...))
}

// ChartConnectQuestionIDIsNil applies the IsNil predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDIsNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIsNull(FieldChartConnectQuestionID))
}

// ChartConnectQuestionIDNotNil applies the NotNil predicate on the "chart_connect_question_id" field.
func ChartConnectQuestionIDNotNil() predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotNull(FieldChartConnectQuestionID))
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.QuestionShare) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAlert applies the HasEdge predicate on the "alert" edge.
func HasAlert() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AlertTable, AlertColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertWith applies the HasEdge predicate on the "alert" edge with a given conditions (other predicates).
func HasAlertWith(preds ...predicate.Alert) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newAlertStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuggestedDoctor applies the HasEdge predicate on the "suggested_doctor" edge.
func HasSuggestedDoctor() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, SuggestedDoctorTable, SuggestedDoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuggestedDoctorWith applies the HasEdge predicate on the "suggested_doctor" edge with a given conditions (other predicates).
func HasSuggestedDoctorWith(preds ...predicate.Doctor) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newSuggestedDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSuggestedClinic applies the HasEdge predicate on the "suggested_clinic" edge.
func HasSuggestedClinic() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, SuggestedClinicTable, SuggestedClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSuggestedClinicWith applies the HasEdge predicate on the "suggested_clinic" edge with a given conditions (other predicates).
func HasSuggestedClinicWith(preds ...predicate.Clinic) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newSuggestedClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChartConnect applies the HasEdge predicate on the "chart_connect" edge.
func HasChartConnect() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ChartConnectTable, ChartConnectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChartConnectWith applies the HasEdge predicate on the "chart_connect" edge with a given conditions (other predicates).
func HasChartConnectWith(preds ...predicate.QuestionShare) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newChartConnectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNumberRanges applies the HasEdge predicate on the "number_ranges" edge.
func HasNumberRanges() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NumberRangesTable, NumberRangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNumberRangesWith applies the HasEdge predicate on the "number_ranges" edge with a given conditions (other predicates).
func HasNumberRangesWith(preds ...predicate.QuestionOptionNumber) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newNumberRangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDateRanges applies the HasEdge predicate on the "date_ranges" edge.
func HasDateRanges() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DateRangesTable, DateRangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDateRangesWith applies the HasEdge predicate on the "date_ranges" edge with a given conditions (other predicates).
func HasDateRangesWith(preds ...predicate.QuestionOptionDate) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newDateRangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEquationRanges applies the HasEdge predicate on the "equation_ranges" edge.
func HasEquationRanges() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EquationRangesTable, EquationRangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEquationRangesWith applies the HasEdge predicate on the "equation_ranges" edge with a given conditions (other predicates).
func HasEquationRangesWith(preds ...predicate.QuestionOptionEquation) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newEquationRangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionOption) predicate.QuestionOption {
	return predicate.QuestionOption(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionOption) predicate.QuestionOption {
	return predicate.QuestionOption(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionOption) predicate.QuestionOption {
	return predicate.QuestionOption(sql.NotPredicates(p))
}
