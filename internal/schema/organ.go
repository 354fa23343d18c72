package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Organ is a node in the body-part taxonomy questions are tagged with.
// Organs form a tree through the parent link; removing a parent removes
// its whole subtree.
type Organ struct {
	ent.Schema
}

func (Organ) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Organ) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			MaxLen(300),

		field.UUID("parent_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (Organ) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Organ.Type).
			From("parent").
			Unique().
			Field("parent_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("questions", QuestionShare.Type).
			Ref("organs"),
	}
}
