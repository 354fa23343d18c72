// Code generated by ent, DO NOT EDIT.

package questionanswer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldCreatedAt, v))
}

// CheckupID applies equality check predicate on the "checkup_id" field. It's identical to CheckupIDEQ.
func CheckupID(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldCheckupID, v))
}

// QuestionShareID applies equality check predicate on the "question_share_id" field. It's identical to QuestionShareIDEQ.
func QuestionShareID(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldQuestionShareID, v))
}

// QuestionOptionID applies equality check predicate on the "question_option_id" field. It's identical to QuestionOptionIDEQ.
func QuestionOptionID(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldQuestionOptionID, v))
}

// RawValue applies equality check predicate on the "raw_value" field. It's identical to RawValueEQ.
func RawValue(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldRawValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldLTE(FieldCreatedAt, v))
}

// CheckupIDEQ applies the EQ predicate on the "checkup_id" field.
func CheckupIDEQ(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldCheckupID, v))
}

// CheckupIDNEQ applies the NEQ predicate on the "checkup_id" field.
func CheckupIDNEQ(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNEQ(FieldCheckupID, v))
}

// CheckupIDIn applies the In predicate on the "checkup_id" field.
func CheckupIDIn(vs ...uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldIn(FieldCheckupID, vs...))
}

// CheckupIDNotIn applies the NotIn predicate on the "checkup_id" field.
func CheckupIDNotIn(vs ...uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNotIn(FieldCheckupID, vs...))
}

// QuestionShareIDEQ applies the EQ predicate on the "question_share_id" field.
func QuestionShareIDEQ(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldQuestionShareID, v))
}

// QuestionShareIDNEQ applies the NEQ predicate on the "question_share_id" field.
func QuestionShareIDNEQ(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNEQ(FieldQuestionShareID, v))
}

// QuestionShareIDIn applies the In predicate on the "question_share_id" field.
func QuestionShareIDIn(vs ...uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldIn(FieldQuestionShareID, vs...))
}

// QuestionShareIDNotIn applies the NotIn predicate on the "question_share_id" field.
func QuestionShareIDNotIn(vs ...uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNotIn(FieldQuestionShareID, vs...))
}

// QuestionOptionIDEQ applies the EQ predicate on the "question_option_id" field.
func QuestionOptionIDEQ(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldQuestionOptionID, v))
}

// QuestionOptionIDNEQ applies the NEQ predicate on the "question_option_id" field.
func QuestionOptionIDNEQ(v uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNEQ(FieldQuestionOptionID, v))
}

// QuestionOptionIDIn applies the In predicate on the "question_option_id" field.
func QuestionOptionIDIn(vs ...uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldIn(FieldQuestionOptionID, vs...))
}

// QuestionOptionIDNotIn applies the NotIn predicate on the "question_option_id" field.
func QuestionOptionIDNotIn(vs ...uuid.UUID) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNotIn(FieldQuestionOptionID, vs...))
}

// RawValueEQ applies the EQ predicate on the "raw_value" field.
func RawValueEQ(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEQ(FieldRawValue, v))
}

// RawValueNEQ applies the NEQ predicate on the "raw_value" field.
func RawValueNEQ(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNEQ(FieldRawValue, v))
}

// RawValueIn applies the In predicate on the "raw_value" field.
func RawValueIn(vs ...string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldIn(FieldRawValue, vs...))
}

// RawValueNotIn applies the NotIn predicate on the "raw_value" field.
func RawValueNotIn(vs ...string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNotIn(FieldRawValue, vs...))
}

// RawValueGT applies the GT predicate on the "raw_value" field.
func RawValueGT(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldGT(FieldRawValue, v))
}

// RawValueGTE applies the GTE predicate on the "raw_value" field.
func RawValueGTE(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldGTE(FieldRawValue, v))
}

// RawValueLT applies the LT predicate on the "raw_value" field.
func RawValueLT(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldLT(FieldRawValue, v))
}

// RawValueLTE applies the LTE predicate on the "raw_value" field.
func RawValueLTE(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldLTE(FieldRawValue, v))
}

// RawValueContains applies the Contains predicate on the "raw_value" field.
func RawValueContains(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldContains(FieldRawValue, v))
}

// RawValueHasPrefix applies the HasPrefix predicate on the "raw_value" field.
func RawValueHasPrefix(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldHasPrefix(FieldRawValue, v))
}

// RawValueHasSuffix applies the HasSuffix predicate on the "raw_value" field.
func RawValueHasSuffix(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldHasSuffix(FieldRawValue, v))
}

// RawValueIsNil applies the IsNil predicate on the "raw_value" field.
func RawValueIsNil() predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldIsNull(FieldRawValue))
}

// RawValueNotNil applies the NotNil predicate on the "raw_value" field.
func RawValueNotNil() predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldNotNull(FieldRawValue))
}

// RawValueEqualFold applies the EqualFold predicate on the "raw_value" field.
func RawValueEqualFold(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldEqualFold(FieldRawValue, v))
}

// RawValueContainsFold applies the ContainsFold predicate on the "raw_value" field.
func RawValueContainsFold(v string) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.FieldContainsFold(FieldRawValue, v))
}

// HasCheckup applies the HasEdge predicate on the "checkup" edge.
func HasCheckup() predicate.QuestionAnswer {
	return predicate.QuestionAnswer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CheckupTable, CheckupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckupWith applies the HasEdge predicate on the "checkup" edge with a given conditions (other predicates).
func HasCheckupWith(preds ...predicate.Checkup) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(func(s *sql.Selector) {
		step := newCheckupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.QuestionAnswer {
	return predicate.QuestionAnswer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.QuestionShare) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOption applies the HasEdge predicate on the "option" edge.
func HasOption() predicate.QuestionAnswer {
	return predicate.QuestionAnswer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, OptionTable, OptionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOptionWith applies the HasEdge predicate on the "option" edge with a given conditions (other predicates).
func HasOptionWith(preds ...predicate.QuestionOption) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(func(s *sql.Selector) {
		step := newOptionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionAnswer) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionAnswer) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionAnswer) predicate.QuestionAnswer {
	return predicate.QuestionAnswer(sql.NotPredicates(p))
}
