package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Media is a file stored in S3 and owned by a clinic.
type Media struct {
	ent.Schema
}

func (Media) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Media) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("file_key").
			NotEmpty().
			MaxLen(500).
			Comment("S3 object key"),

		field.String("file_name").
			NotEmpty().
			MaxLen(255),

		field.String("mime_type").
			Optional().
			Nillable().
			MaxLen(100),

		field.Int64("size_bytes").
			Default(0),

		field.Enum("category").
			Values("image", "video", "document", "audio").
			Default("document"),
	}
}

func (Media) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("media").
			Unique().
			Required().
			Field("clinic_id"),
	}
}

func (Media) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
	}
}

// ClinicMedia is educational material a clinic publishes, backed by a
// Media file. Suggestion records may point patients at it.
type ClinicMedia struct {
	ent.Schema
}

func (ClinicMedia) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (ClinicMedia) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("media_id", uuid.UUID{}).
			Comment("FK → media.id"),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),
	}
}

func (ClinicMedia) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("clinic", Clinic.Type).
			Unique().
			Required().
			Field("clinic_id"),
		edge.To("media", Media.Type).
			Unique().
			Required().
			Field("media_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ClinicMedia) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
	}
}
