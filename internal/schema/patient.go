package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientProfile holds the medical profile of a user acting as a patient.
// One profile per user account.
type PatientProfile struct {
	ent.Schema
}

func (PatientProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (PatientProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Enum("gender").
			Values("male", "female").
			Optional().
			Nillable(),

		field.Time("birth_date").
			Optional().
			Nillable(),

		field.Float("height_cm").
			Optional().
			Nillable(),

		field.Float("weight_kg").
			Optional().
			Nillable(),

		field.Text("medical_history").
			Optional().
			Nillable(),
	}
}

func (PatientProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
		edge.To("supervisors", Supervisor.Type),
		edge.To("checkups", Checkup.Type),
	}
}

func (PatientProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

// Supervisor links a user to a patient they act for (e.g. a parent
// answering on behalf of a child).
type Supervisor struct {
	ent.Schema
}

func (Supervisor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Supervisor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (the supervising user)"),

		field.UUID("patient_profile_id", uuid.UUID{}).
			Comment("FK → patient_profiles.id"),

		field.Enum("relative_type").
			Values("parent", "child", "spouse", "sibling", "other").
			Default("other"),
	}
}

func (Supervisor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
		edge.From("patient", PatientProfile.Type).
			Ref("supervisors").
			Unique().
			Required().
			Field("patient_profile_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Supervisor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "patient_profile_id").Unique(),
	}
}
