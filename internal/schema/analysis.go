package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CheckupAnalyze is a curated analysis band attached to a checkup
// template, grouping the interpretations a clinician wrote for it.
type CheckupAnalyze struct {
	ent.Schema
}

func (CheckupAnalyze) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (CheckupAnalyze) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_checkup_id", uuid.UUID{}).
			Comment("FK → clinic_checkups.id"),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),
	}
}

func (CheckupAnalyze) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("template", ClinicCheckup.Type).
			Ref("analyzes").
			Unique().
			Required().
			Field("clinic_checkup_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("interpretations", Interpretation.Type),
	}
}

func (CheckupAnalyze) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_checkup_id"),
	}
}

// Interpretation is one written finding inside an analysis.
type Interpretation struct {
	ent.Schema
}

func (Interpretation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Interpretation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("analyze_id", uuid.UUID{}).
			Comment("FK → checkup_analyzes.id"),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("content").
			Optional().
			Nillable(),
	}
}

func (Interpretation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("analyze", CheckupAnalyze.Type).
			Ref("interpretations").
			Unique().
			Required().
			Field("analyze_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("suggestions", Suggestion.Type),
	}
}

// Suggestion is a follow-up action attached to an interpretation. It may
// point at a platform doctor or clinic, an external one, or a piece of
// clinic media.
type Suggestion struct {
	ent.Schema
}

func (Suggestion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Suggestion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("interpretation_id", uuid.UUID{}).
			Comment("FK → interpretations.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("real_doctor_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("clinic_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("real_clinic_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("clinic_media_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Text("note").
			Optional().
			Nillable(),
	}
}

func (Suggestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interpretation", Interpretation.Type).
			Ref("suggestions").
			Unique().
			Required().
			Field("interpretation_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("doctor", Doctor.Type).
			Unique().
			Field("doctor_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("real_doctor", RealDoctor.Type).
			Unique().
			Field("real_doctor_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("clinic", Clinic.Type).
			Unique().
			Field("clinic_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("real_clinic", RealClinic.Type).
			Unique().
			Field("real_clinic_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("clinic_media", ClinicMedia.Type).
			Unique().
			Field("clinic_media_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
