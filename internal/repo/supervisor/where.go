// Code generated by ent, DO NOT EDIT.

package supervisor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldUserID, v))
}

// PatientProfileID applies equality check predicate on the "patient_profile_id" field. It's identical to PatientProfileIDEQ.
func PatientProfileID(v uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldPatientProfileID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNotIn(FieldUserID, vs...))
}

// PatientProfileIDEQ applies the EQ predicate on the "patient_profile_id" field.
func PatientProfileIDEQ(v uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldPatientProfileID, v))
}

// PatientProfileIDNEQ applies the NEQ predicate on the "patient_profile_id" field.
func PatientProfileIDNEQ(v uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNEQ(FieldPatientProfileID, v))
}

// PatientProfileIDIn applies the In predicate on the "patient_profile_id" field.
func PatientProfileIDIn(vs ...uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldIn(FieldPatientProfileID, vs...))
}

// PatientProfileIDNotIn applies the NotIn predicate on the "patient_profile_id" field.
func PatientProfileIDNotIn(vs ...uuid.UUID) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNotIn(FieldPatientProfileID, vs...))
}

// RelativeTypeEQ applies the EQ predicate on the "relative_type" field.
func RelativeTypeEQ(v RelativeType) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldEQ(FieldRelativeType, v))
}

// RelativeTypeNEQ applies the NEQ predicate on the "relative_type" field.
func RelativeTypeNEQ(v RelativeType) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNEQ(FieldRelativeType, v))
}

// RelativeTypeIn applies the In predicate on the "relative_type" field.
func RelativeTypeIn(vs ...RelativeType) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldIn(FieldRelativeType, vs...))
}

// RelativeTypeNotIn applies the NotIn predicate on the "relative_type" field.
func RelativeTypeNotIn(vs ...RelativeType) predicate.Supervisor {
	return predicate.Supervisor(sql.FieldNotIn(FieldRelativeType, vs...))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Supervisor {
	return predicate.Supervisor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Supervisor {
	return predicate.Supervisor(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Supervisor {
	return predicate.Supervisor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.PatientProfile) predicate.Supervisor {
	return predicate.Supervisor(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Supervisor) predicate.Supervisor {
	return predicate.Supervisor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Supervisor) predicate.Supervisor {
	return predicate.Supervisor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Supervisor) predicate.Supervisor {
	return predicate.Supervisor(sql.NotPredicates(p))
}
