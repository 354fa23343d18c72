// Code generated by ent, DO NOT EDIT.

package checkupanalyze

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pezeshkyar/checkup_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldDeletedAt, v))
}

// ClinicCheckupID applies equality check predicate on the "clinic_checkup_id" field. It's identical to ClinicCheckupIDEQ.
func ClinicCheckupID(v uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldClinicCheckupID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotNull(FieldDeletedAt))
}

// ClinicCheckupIDEQ applies the EQ predicate on the "clinic_checkup_id" field.
func ClinicCheckupIDEQ(v uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldClinicCheckupID, v))
}

// ClinicCheckupIDNEQ applies the NEQ predicate on the "clinic_checkup_id" field.
func ClinicCheckupIDNEQ(v uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNEQ(FieldClinicCheckupID, v))
}

// ClinicCheckupIDIn applies the In predicate on the "clinic_checkup_id" field.
func ClinicCheckupIDIn(vs ...uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIn(FieldClinicCheckupID, vs...))
}

// ClinicCheckupIDNotIn applies the NotIn predicate on the "clinic_checkup_id" field.
func ClinicCheckupIDNotIn(vs ...uuid.UUID) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotIn(FieldClinicCheckupID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.FieldContainsFold(FieldDescription, v))
}

// HasTemplate applies the HasEdge predicate on the "template" edge.
func HasTemplate() predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemplateWith applies the HasEdge predicate on the "template" edge with a given conditions (other predicates).
func HasTemplateWith(preds ...predicate.ClinicCheckup) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(func(s *sql.Selector) {
		step := newTemplateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInterpretations applies the HasEdge predicate on the "interpretations" edge.
func HasInterpretations() predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InterpretationsTable, InterpretationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInterpretationsWith applies the HasEdge predicate on the "interpretations" edge with a given conditions (other predicates).
func HasInterpretationsWith(preds ...predicate.Interpretation) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(func(s *sql.Selector) {
		step := newInterpretationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckupAnalyze) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckupAnalyze) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckupAnalyze) predicate.CheckupAnalyze {
	return predicate.CheckupAnalyze(sql.NotPredicates(p))
}
