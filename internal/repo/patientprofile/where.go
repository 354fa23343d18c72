// Code generated by ent, DO NOT EDIT.

package patientprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldDeletedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldUserID, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldBirthDate, v))
}

// HeightCm applies equality check predicate on the "height_cm" field. It's identical to HeightCmEQ.
func HeightCm(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldHeightCm, v))
}

// WeightKg applies equality check predicate on the "weight_kg" field. It's identical to WeightKgEQ.
func WeightKg(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldWeightKg, v))
}

// MedicalHistory applies equality check predicate on the "medical_history" field. It's identical to MedicalHistoryEQ.
func MedicalHistory(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldMedicalHistory, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldDeletedAt))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v Gender) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v Gender) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...Gender) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...Gender) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldGender, vs...))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldGender))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v time.Time) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldBirthDate, v))
}

// BirthDateIsNil applies the IsNil predicate on the "birth_date" field.
func BirthDateIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldBirthDate))
}

// BirthDateNotNil applies the NotNil predicate on the "birth_date" field.
func BirthDateNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldBirthDate))
}

// HeightCmEQ applies the EQ predicate on the "height_cm" field.
func HeightCmEQ(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldHeightCm, v))
}

// HeightCmNEQ applies the NEQ predicate on the "height_cm" field.
func HeightCmNEQ(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldHeightCm, v))
}

// HeightCmIn applies the In predicate on the "height_cm" field.
func HeightCmIn(vs ...float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldHeightCm, vs...))
}

// HeightCmNotIn applies the NotIn predicate on the "height_cm" field.
func HeightCmNotIn(vs ...float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldHeightCm, vs...))
}

// HeightCmGT applies the GT predicate on the "height_cm" field.
func HeightCmGT(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldHeightCm, v))
}

// HeightCmGTE applies the GTE predicate on the "height_cm" field.
func HeightCmGTE(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldHeightCm, v))
}

// HeightCmLT applies the LT predicate on the "height_cm" field.
func HeightCmLT(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldHeightCm, v))
}

// HeightCmLTE applies the LTE predicate on the "height_cm" field.
func HeightCmLTE(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldHeightCm, v))
}

// HeightCmIsNil applies the IsNil predicate on the "height_cm" field.
func HeightCmIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldHeightCm))
}

// HeightCmNotNil applies the NotNil predicate on the "height_cm" field.
func HeightCmNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldHeightCm))
}

// WeightKgEQ applies the EQ predicate on the "weight_kg" field.
func WeightKgEQ(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldWeightKg, v))
}

// WeightKgNEQ applies the NEQ predicate on the "weight_kg" field.
func WeightKgNEQ(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldWeightKg, v))
}

// WeightKgIn applies the In predicate on the "weight_kg" field.
func WeightKgIn(vs ...float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldWeightKg, vs...))
}

// WeightKgNotIn applies the NotIn predicate on the "weight_kg" field.
func WeightKgNotIn(vs ...float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldWeightKg, vs...))
}

// WeightKgGT applies the GT predicate on the "weight_kg" field.
func WeightKgGT(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldWeightKg, v))
}

// WeightKgGTE applies the GTE predicate on the "weight_kg" field.
func WeightKgGTE(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldWeightKg, v))
}

// WeightKgLT applies the LT predicate on the "weight_kg" field.
func WeightKgLT(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldWeightKg, v))
}

// WeightKgLTE applies the LTE predicate on the "weight_kg" field.
func WeightKgLTE(v float64) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldWeightKg, v))
}

// WeightKgIsNil applies the IsNil predicate on the "weight_kg" field.
func WeightKgIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldWeightKg))
}

// WeightKgNotNil applies the NotNil predicate on the "weight_kg" field.
func WeightKgNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldWeightKg))
}

// MedicalHistoryEQ applies the EQ predicate on the "medical_history" field.
func MedicalHistoryEQ(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEQ(FieldMedicalHistory, v))
}

// MedicalHistoryNEQ applies the NEQ predicate on the "medical_history" field.
func MedicalHistoryNEQ(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNEQ(FieldMedicalHistory, v))
}

// MedicalHistoryIn applies the In predicate on the "medical_history" field.
func MedicalHistoryIn(vs ...string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIn(FieldMedicalHistory, vs...))
}

// MedicalHistoryNotIn applies the NotIn predicate on the "medical_history" field.
func MedicalHistoryNotIn(vs ...string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotIn(FieldMedicalHistory, vs...))
}

// MedicalHistoryGT applies the GT predicate on the "medical_history" field.
func MedicalHistoryGT(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGT(FieldMedicalHistory, v))
}

// MedicalHistoryGTE applies the GTE predicate on the "medical_history" field.
func MedicalHistoryGTE(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldGTE(FieldMedicalHistory, v))
}

// MedicalHistoryLT applies the LT predicate on the "medical_history" field.
func MedicalHistoryLT(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLT(FieldMedicalHistory, v))
}

// MedicalHistoryLTE applies the LTE predicate on the "medical_history" field.
func MedicalHistoryLTE(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldLTE(FieldMedicalHistory, v))
}

// MedicalHistoryContains applies the Contains predicate on the "medical_history" field.
func MedicalHistoryContains(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldContains(FieldMedicalHistory, v))
}

// MedicalHistoryHasPrefix applies the HasPrefix predicate on the "medical_history" field.
func MedicalHistoryHasPrefix(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldHasPrefix(FieldMedicalHistory, v))
}

// MedicalHistoryHasSuffix applies the HasSuffix predicate on the "medical_history" field.
func MedicalHistoryHasSuffix(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldHasSuffix(FieldMedicalHistory, v))
}

// MedicalHistoryIsNil applies the IsNil predicate on the "medical_history" field.
func MedicalHistoryIsNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldIsNull(FieldMedicalHistory))
}

// MedicalHistoryNotNil applies the NotNil predicate on the "medical_history" field.
func MedicalHistoryNotNil() predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldNotNull(FieldMedicalHistory))
}

// MedicalHistoryEqualFold applies the EqualFold predicate on the "medical_history" field.
func MedicalHistoryEqualFold(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldEqualFold(FieldMedicalHistory, v))
}

// MedicalHistoryContainsFold applies the ContainsFold predicate on the "medical_history" field.
func MedicalHistoryContainsFold(v string) predicate.PatientProfile {
	return predicate.PatientProfile(sql.FieldContainsFold(FieldMedicalHistory, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.PatientProfile {
	return predicate.PatientProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.PatientProfile {
	return predicate.PatientProfile(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSupervisors applies the HasEdge predicate on the "supervisors" edge.
func HasSupervisors() predicate.PatientProfile {
	return predicate.PatientProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SupervisorsTable, SupervisorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupervisorsWith applies the HasEdge predicate on the "supervisors" edge with a given conditions (other predicates).
func HasSupervisorsWith(preds ...predicate.Supervisor) predicate.PatientProfile {
	return predicate.PatientProfile(func(s *sql.Selector) {
		step := newSupervisorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckups applies the HasEdge predicate on the "checkups" edge.
func HasCheckups() predicate.PatientProfile {
	return predicate.PatientProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckupsTable, CheckupsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckupsWith applies the HasEdge predicate on the "checkups" edge with a given conditions (other predicates).
func HasCheckupsWith(preds ...predicate.Checkup) predicate.PatientProfile {
	return predicate.PatientProfile(func(s *sql.Selector) {
		step := newCheckupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PatientProfile) predicate.PatientProfile {
	return predicate.PatientProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PatientProfile) predicate.PatientProfile {
	return predicate.PatientProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PatientProfile) predicate.PatientProfile {
	return predicate.PatientProfile(sql.NotPredicates(p))
}
