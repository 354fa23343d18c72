package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Doctor is a platform practitioner tied to a user account. Doctors
// author question shares and checkup templates for their clinic.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.UUID("clinic_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → clinics.id (primary clinic)"),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("medical_code").
			Optional().
			Nillable().
			Unique().
			MaxLen(20).
			Comment("نظام پزشکی registration number"),

		field.Text("bio").
			Optional().
			Nillable(),

		field.Bool("is_verified").
			Default(false),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
		edge.From("clinic", Clinic.Type).
			Ref("doctors").
			Unique().
			Field("clinic_id"),
		edge.To("questions", QuestionShare.Type),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
	}
}

// RealDoctor is an external practitioner, referenced only as a referral
// target. Not a platform account.
type RealDoctor struct {
	ent.Schema
}

func (RealDoctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (RealDoctor) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			NotEmpty().
			MaxLen(255),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("address").
			Optional().
			Nillable(),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100),
	}
}
