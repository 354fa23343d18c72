package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Alert is a clinical warning a question option can attach to an answer.
// Aggregated alerts may schedule reminders on the configured channel.
type Alert struct {
	ent.Schema
}

func (Alert) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Alert) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Enum("severity").
			Values("low", "medium", "high").
			Default("low"),

		field.Int("reminder_count").
			Default(1).
			NonNegative(),

		field.Enum("reminder_unit").
			Values("day", "week", "month", "year").
			Default("day"),

		field.Enum("channel").
			Values("sms", "web", "call").
			Default("web"),
	}
}

func (Alert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("alerts").
			Unique().
			Required().
			Field("clinic_id"),
	}
}

func (Alert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
	}
}
