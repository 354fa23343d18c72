// Code generated by ent, DO NOT EDIT.

package suggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDeletedAt, v))
}

// InterpretationID applies equality check predicate on the "interpretation_id" field. It's identical to InterpretationIDEQ.
func InterpretationID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldInterpretationID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDoctorID, v))
}

// RealDoctorID applies equality check predicate on the "real_doctor_id" field. It's identical to RealDoctorIDEQ.
func RealDoctorID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldRealDoctorID, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldClinicID, v))
}

// RealClinicID applies equality check predicate on the "real_clinic_id" field. It's identical to RealClinicIDEQ.
func RealClinicID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldRealClinicID, v))
}

// ClinicMediaID applies equality check predicate on the "clinic_media_id" field. It's identical to ClinicMediaIDEQ.
func ClinicMediaID(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldClinicMediaID, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldDeletedAt))
}

// InterpretationIDEQ applies the EQ predicate on the "interpretation_id" field.
func InterpretationIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldInterpretationID, v))
}

// InterpretationIDNEQ applies the NEQ predicate on the "interpretation_id" field.
func InterpretationIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldInterpretationID, v))
}

// InterpretationIDIn applies the In predicate on the "interpretation_id" field.
func InterpretationIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldInterpretationID, vs...))
}

// InterpretationIDNotIn applies the NotIn predicate on the "interpretation_id" field.
func InterpretationIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldInterpretationID, vs...))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDIsNil applies the IsNil predicate on the "doctor_id" field.
func DoctorIDIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldDoctorID))
}

// DoctorIDNotNil applies the NotNil predicate on the "doctor_id" field.
func DoctorIDNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldDoctorID))
}

// RealDoctorIDEQ applies the EQ predicate on the "real_doctor_id" field.
func RealDoctorIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldRealDoctorID, v))
}

// RealDoctorIDNEQ applies the NEQ predicate on the "real_doctor_id" field.
func RealDoctorIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldRealDoctorID, v))
}

// RealDoctorIDIn applies the In predicate on the "real_doctor_id" field.
func RealDoctorIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldRealDoctorID, vs...))
}

// RealDoctorIDNotIn applies the NotIn predicate on the "real_doctor_id" field.
func RealDoctorIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldRealDoctorID, vs...))
}

// RealDoctorIDIsNil applies the IsNil predicate on the "real_doctor_id" field.
func RealDoctorIDIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldRealDoctorID))
}

// RealDoctorIDNotNil applies the NotNil predicate on the "real_doctor_id" field.
func RealDoctorIDNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldRealDoctorID))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDIsNil applies the IsNil predicate on the "clinic_id" field.
func ClinicIDIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldClinicID))
}

// ClinicIDNotNil applies the NotNil predicate on the "clinic_id" field.
func ClinicIDNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldClinicID))
}

// RealClinicIDEQ applies the EQ predicate on the "real_clinic_id" field.
func RealClinicIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldRealClinicID, v))
}

// RealClinicIDNEQ applies the NEQ predicate on the "real_clinic_id" field.
func RealClinicIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldRealClinicID, v))
}

// RealClinicIDIn applies the In predicate on the "real_clinic_id" field.
func RealClinicIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldRealClinicID, vs...))
}

// RealClinicIDNotIn applies the NotIn predicate on the "real_clinic_id" field.
func RealClinicIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldRealClinicID, vs...))
}

// RealClinicIDIsNil applies the IsNil predicate on the "real_clinic_id" field.
func RealClinicIDIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldRealClinicID))
}

// RealClinicIDNotNil applies the NotNil predicate on the "real_clinic_id" field.
func RealClinicIDNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldRealClinicID))
}

// ClinicMediaIDEQ applies the EQ predicate on the "clinic_media_id" field.
func ClinicMediaIDEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldClinicMediaID, v))
}

// ClinicMediaIDNEQ applies the NEQ predicate on the "clinic_media_id" field.
func ClinicMediaIDNEQ(v uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldClinicMediaID, v))
}

// ClinicMediaIDIn applies the In predicate on the "clinic_media_id" field.
func ClinicMediaIDIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldClinicMediaID, vs...))
}

// ClinicMediaIDNotIn applies the NotIn predicate on the "clinic_media_id" field.
func ClinicMediaIDNotIn(vs ...uuid.UUID) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldClinicMediaID, vs...))
}

// ClinicMediaIDIsNil applies the IsNil predicate on the "clinic_media_id" field.
func ClinicMediaIDIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldClinicMediaID))
}

// ClinicMediaIDNotNil applies the NotNil predicate on the "clinic_media_id" field.
func ClinicMediaIDNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldClinicMediaID))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldNote, v))
}

// HasInterpretation applies the HasEdge predicate on the "interpretation" edge.
func HasInterpretation() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InterpretationTable, InterpretationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInterpretationWith applies the HasEdge predicate on the "interpretation" edge with a given conditions (other predicates).
func HasInterpretationWith(preds ...predicate.Interpretation) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newInterpretationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDoctor applies the HasEdge predicate on the "doctor" edge.
func HasDoctor() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, DoctorTable, DoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDoctorWith applies the HasEdge predicate on the "doctor" edge with a given conditions (other predicates).
func HasDoctorWith(preds ...predicate.Doctor) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRealDoctor applies the HasEdge predicate on the "real_doctor" edge.
func HasRealDoctor() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, RealDoctorTable, RealDoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRealDoctorWith applies the HasEdge predicate on the "real_doctor" edge with a given conditions (other predicates).
func HasRealDoctorWith(preds ...predicate.RealDoctor) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newRealDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRealClinic applies the HasEdge predicate on the "real_clinic" edge.
func HasRealClinic() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, RealClinicTable, RealClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRealClinicWith applies the HasEdge predicate on the "real_clinic" edge with a given conditions (other predicates).
func HasRealClinicWith(preds ...predicate.RealClinic) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newRealClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClinicMedia applies the HasEdge predicate on the "clinic_media" edge.
func HasClinicMedia() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ClinicMediaTable, ClinicMediaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicMediaWith applies the HasEdge predicate on the "clinic_media" edge with a given conditions (other predicates).
func HasClinicMediaWith(preds ...predicate.ClinicMedia) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newClinicMediaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.NotPredicates(p))
}
