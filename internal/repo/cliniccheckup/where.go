// Code generated by ent, DO NOT EDIT.

package cliniccheckup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldDeletedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldClinicID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldDescription, v))
}

// RequiredTimeMinutes applies equality check predicate on the "required_time_minutes" field. It's identical to RequiredTimeMinutesEQ.
func RequiredTimeMinutes(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldRequiredTimeMinutes, v))
}

// RequiredAuth applies equality check predicate on the "required_auth" field. It's identical to RequiredAuthEQ.
func RequiredAuth(v bool) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldRequiredAuth, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldQuestionCount, v))
}

// Approvers applies equality check predicate on the "approvers" field. It's identical to ApproversEQ.
func Approvers(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldApprovers, v))
}

// StartingQuestionID applies equality check predicate on the "starting_question_id" field. It's identical to StartingQuestionIDEQ.
func StartingQuestionID(v uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldStartingQuestionID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotNull(FieldDeletedAt))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldClinicID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldContainsFold(FieldDescription, v))
}

// RequiredTimeMinutesEQ applies the EQ predicate on the "required_time_minutes" field.
func RequiredTimeMinutesEQ(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldRequiredTimeMinutes, v))
}

// RequiredTimeMinutesNEQ applies the NEQ predicate on the "required_time_minutes" field.
func RequiredTimeMinutesNEQ(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldRequiredTimeMinutes, v))
}

// RequiredTimeMinutesIn applies the In predicate on the "required_time_minutes" field.
func RequiredTimeMinutesIn(vs ...int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldRequiredTimeMinutes, vs...))
}

// RequiredTimeMinutesNotIn applies the NotIn predicate on the "required_time_minutes" field.
func RequiredTimeMinutesNotIn(vs ...int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldRequiredTimeMinutes, vs...))
}

// RequiredTimeMinutesGT applies the GT predicate on the "required_time_minutes" field.
func RequiredTimeMinutesGT(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldRequiredTimeMinutes, v))
}

// RequiredTimeMinutesGTE applies the GTE predicate on the "required_time_minutes" field.
func RequiredTimeMinutesGTE(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldRequiredTimeMinutes, v))
}

// RequiredTimeMinutesLT applies the LT predicate on the "required_time_minutes" field.
func RequiredTimeMinutesLT(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldRequiredTimeMinutes, v))
}

// RequiredTimeMinutesLTE applies the LTE predicate on the "required_time_minutes" field.
func RequiredTimeMinutesLTE(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldRequiredTimeMinutes, v))
}

// RequiredAuthEQ applies the EQ predicate on the "required_auth" field.
func RequiredAuthEQ(v bool) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldRequiredAuth, v))
}

// RequiredAuthNEQ applies the NEQ predicate on the "required_auth" field.
func RequiredAuthNEQ(v bool) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldRequiredAuth, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldQuestionCount, v))
}

// ApproversEQ applies the EQ predicate on the "approvers" field.
func ApproversEQ(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldApprovers, v))
}

// ApproversNEQ applies the NEQ predicate on the "approvers" field.
func ApproversNEQ(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldApprovers, v))
}

// ApproversIn applies the In predicate on the "approvers" field.
func ApproversIn(vs ...string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldApprovers, vs...))
}

// ApproversNotIn applies the NotIn predicate on the "approvers" field.
func ApproversNotIn(vs ...string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldApprovers, vs...))
}

// ApproversGT applies the GT predicate on the "approvers" field.
func ApproversGT(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGT(FieldApprovers, v))
}

// ApproversGTE applies the GTE predicate on the "approvers" field.
func ApproversGTE(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldGTE(FieldApprovers, v))
}

// ApproversLT applies the LT predicate on the "approvers" field.
func ApproversLT(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLT(FieldApprovers, v))
}

// ApproversLTE applies the LTE predicate on the "approvers" field.
func ApproversLTE(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldLTE(FieldApprovers, v))
}

// ApproversContains applies the Contains predicate on the "approvers" field.
func ApproversContains(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldContains(FieldApprovers, v))
}

// ApproversHasPrefix applies the HasPrefix predicate on the "approvers" field.
func ApproversHasPrefix(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldHasPrefix(FieldApprovers, v))
}

// ApproversHasSuffix applies the HasSuffix predicate on the "approvers" field.
func ApproversHasSuffix(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldHasSuffix(FieldApprovers, v))
}

// ApproversIsNil applies the IsNil predicate on the "approvers" field.
func ApproversIsNil() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIsNull(FieldApprovers))
}

// ApproversNotNil applies the NotNil predicate on the "approvers" field.
func ApproversNotNil() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotNull(FieldApprovers))
}

// ApproversEqualFold applies the EqualFold predicate on the "approvers" field.
func ApproversEqualFold(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEqualFold(FieldApprovers, v))
}

// ApproversContainsFold applies the ContainsFold predicate on the "approvers" field.
func ApproversContainsFold(v string) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldContainsFold(FieldApprovers, v))
}

// StartingQuestionIDEQ applies the EQ predicate on the "starting_question_id" field.
func StartingQuestionIDEQ(v uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldStartingQuestionID, v))
}

// StartingQuestionIDNEQ applies the NEQ predicate on the "starting_question_id" field.
func StartingQuestionIDNEQ(v uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldStartingQuestionID, v))
}

// StartingQuestionIDIn applies the In predicate on the "starting_question_id" field.
func StartingQuestionIDIn(vs ...uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIn(FieldStartingQuestionID, vs...))
}

// StartingQuestionIDNotIn applies the NotIn predicate on the "starting_question_id" field.
func StartingQuestionIDNotIn(vs ...uuid.UUID) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotIn(FieldStartingQuestionID, vs...))
}

// StartingQuestionIDIsNil applies the IsNil predicate on the "starting_question_id" field.
func StartingQuestionIDIsNil() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldIsNull(FieldStartingQuestionID))
}

// StartingQuestionIDNotNil applies the NotNil predicate on the "starting_question_id" field.
func StartingQuestionIDNotNil() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNotNull(FieldStartingQuestionID))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.FieldNEQ(FieldIsActive, v))
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStartingQuestion applies the HasEdge predicate on the "starting_question" edge.
func HasStartingQuestion() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, StartingQuestionTable, StartingQuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStartingQuestionWith applies the HasEdge predicate on the "starting_question" edge with a given conditions (other predicates).
func HasStartingQuestionWith(preds ...predicate.QuestionShare) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(func(s *sql.Selector) {
		step := newStartingQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalyzes applies the HasEdge predicate on the "analyzes" edge.
func HasAnalyzes() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnalyzesTable, AnalyzesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalyzesWith applies the HasEdge predicate on the "analyzes" edge with a given conditions (other predicates).
func HasAnalyzesWith(preds ...predicate.CheckupAnalyze) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(func(s *sql.Selector) {
		step := newAnalyzesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.ClinicCheckup {
	return predicate.ClinicCheckup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Checkup) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClinicCheckup) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClinicCheckup) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClinicCheckup) predicate.ClinicCheckup {
	return predicate.ClinicCheckup(sql.NotPredicates(p))
}
