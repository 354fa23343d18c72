package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// ClinicGroup
// ---------------------------------------------------------------------------

// ClinicGroup bundles related clinics (e.g. branches of one organisation).
type ClinicGroup struct {
	ent.Schema
}

func (ClinicGroup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (ClinicGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.Text("description").
			Optional().
			Nillable(),
	}
}

func (ClinicGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("clinics", Clinic.Type),
	}
}

// ---------------------------------------------------------------------------
// Clinic
// ---------------------------------------------------------------------------

type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("group_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → clinic_groups.id"),

		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("URL-friendly identifier for the clinic"),

		field.Text("description").
			Optional().
			Nillable(),

		field.String("logo_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key for clinic logo"),

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

		field.String("province").
			Optional().
			Nillable().
			MaxLen(100),

		field.Bool("is_active").Default(true),

		field.Bool("is_verified").
			Default(false).
			Comment("Platform-level verification status"),
	}
}

func (Clinic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
		index.Fields("group_id"),
	}
}

func (Clinic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", ClinicGroup.Type).
			Ref("clinics").
			Unique().
			Field("group_id"),
		edge.To("doctors", Doctor.Type),
		edge.To("alerts", Alert.Type),
		edge.To("media", Media.Type),
		edge.To("checkup_templates", ClinicCheckup.Type),
	}
}

// ---------------------------------------------------------------------------
// RealClinic
// ---------------------------------------------------------------------------

// RealClinic is an external clinic referenced only as a referral target.
type RealClinic struct {
	ent.Schema
}

func (RealClinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (RealClinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
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
