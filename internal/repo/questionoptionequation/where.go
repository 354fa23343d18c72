// Code generated by ent, DO NOT EDIT.

package questionoptionequation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldCreatedAt, v))
}

// OptionID applies equality check predicate on the "option_id" field. It's identical to OptionIDEQ.
func OptionID(v uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldOptionID, v))
}

// LowerBand applies equality check predicate on the "lower_band" field. It's identical to LowerBandEQ.
func LowerBand(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldLowerBand, v))
}

// UpperBand applies equality check predicate on the "upper_band" field. It's identical to UpperBandEQ.
func UpperBand(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldUpperBand, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldLTE(FieldCreatedAt, v))
}

// OptionIDEQ applies the EQ predicate on the "option_id" field.
func OptionIDEQ(v uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldOptionID, v))
}

// OptionIDNEQ applies the NEQ predicate on the "option_id" field.
func OptionIDNEQ(v uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNEQ(FieldOptionID, v))
}

// OptionIDIn applies the In predicate on the "option_id" field.
func OptionIDIn(vs ...uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldIn(FieldOptionID, vs...))
}

// OptionIDNotIn applies the NotIn predicate on the "option_id" field.
func OptionIDNotIn(vs ...uuid.UUID) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNotIn(FieldOptionID, vs...))
}

// LowerBandEQ applies the EQ predicate on the "lower_band" field.
func LowerBandEQ(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldLowerBand, v))
}

// LowerBandNEQ applies the NEQ predicate on the "lower_band" field.
func LowerBandNEQ(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNEQ(FieldLowerBand, v))
}

// LowerBandIn applies the In predicate on the "lower_band" field.
func LowerBandIn(vs ...float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldIn(FieldLowerBand, vs...))
}

// LowerBandNotIn applies the NotIn predicate on the "lower_band" field.
func LowerBandNotIn(vs ...float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNotIn(FieldLowerBand, vs...))
}

// LowerBandGT applies the GT predicate on the "lower_band" field.
func LowerBandGT(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldGT(FieldLowerBand, v))
}

// LowerBandGTE applies the GTE predicate on the "lower_band" field.
func LowerBandGTE(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldGTE(FieldLowerBand, v))
}

// LowerBandLT applies the LT predicate on the "lower_band" field.
func LowerBandLT(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldLT(FieldLowerBand, v))
}

// LowerBandLTE applies the LTE predicate on the "lower_band" field.
func LowerBandLTE(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldLTE(FieldLowerBand, v))
}

// UpperBandEQ applies the EQ predicate on the "upper_band" field.
func UpperBandEQ(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldEQ(FieldUpperBand, v))
}

// UpperBandNEQ applies the NEQ predicate on the "upper_band" field.
func UpperBandNEQ(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNEQ(FieldUpperBand, v))
}

// UpperBandIn applies the In predicate on the "upper_band" field.
func UpperBandIn(vs ...float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldIn(FieldUpperBand, vs...))
}

// UpperBandNotIn applies the NotIn predicate on the "upper_band" field.
func UpperBandNotIn(vs ...float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldNotIn(FieldUpperBand, vs...))
}

// UpperBandGT applies the GT predicate on the "upper_band" field.
func UpperBandGT(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldGT(FieldUpperBand, v))
}

// UpperBandGTE applies the GTE predicate on the "upper_band" field.
func UpperBandGTE(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldGTE(FieldUpperBand, v))
}

// UpperBandLT applies the LT predicate on the "upper_band" field.
func UpperBandLT(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldLT(FieldUpperBand, v))
}

// UpperBandLTE applies the LTE predicate on the "upper_band" field.
func UpperBandLTE(v float64) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.FieldLTE(FieldUpperBand, v))
}

// HasOption applies the HasEdge predicate on the "option" edge.
func HasOption() predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OptionTable, OptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOptionWith applies the HasEdge predicate on the "option" edge with a given conditions (other predicates).
func HasOptionWith(preds ...predicate.QuestionOption) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(func(s *sql.Selector) {
		step := newOptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionOptionEquation) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionOptionEquation) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionOptionEquation) predicate.QuestionOptionEquation {
	return predicate.QuestionOptionEquation(sql.NotPredicates(p))
}
