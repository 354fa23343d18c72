package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ClinicCheckup is a checkup template a clinic publishes. It fixes the
// entry question of the questionnaire graph and carries the metadata a
// patient sees before starting.
type ClinicCheckup struct {
	ent.Schema
}

func (ClinicCheckup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (ClinicCheckup) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("required_time_minutes").
			Default(0).
			NonNegative(),

		field.Bool("required_auth").
			Default(false).
			Comment("When set, only identity-approved patients may start it"),

		field.Int("question_count").
			Default(0).
			NonNegative(),

		field.Text("approvers").
			Optional().
			Nillable().
			Comment("Comma separated emails notified when a session completes"),

		field.UUID("starting_question_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),
	}
}

func (ClinicCheckup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("checkup_templates").
			Unique().
			Required().
			Field("clinic_id"),
		edge.To("starting_question", QuestionShare.Type).
			Unique().
			Field("starting_question_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("analyzes", CheckupAnalyze.Type),
		edge.To("sessions", Checkup.Type),
	}
}

func (ClinicCheckup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
	}
}

// Checkup is one patient's run of a checkup template.
type Checkup struct {
	ent.Schema
}

func (Checkup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Checkup) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_profile_id", uuid.UUID{}).
			Comment("FK → patient_profiles.id"),

		field.UUID("clinic_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("clinic_checkup_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Template the session was started from"),

		field.String("title").
			NotEmpty().
			MaxLen(500),

		field.Text("description").
			Optional().
			Nillable(),

		field.Time("executed_at").
			Default(time.Now),

		field.Bool("is_completed").
			Default(false),
	}
}

func (Checkup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", PatientProfile.Type).
			Ref("checkups").
			Unique().
			Required().
			Field("patient_profile_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("clinic", Clinic.Type).
			Unique().
			Field("clinic_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.From("template", ClinicCheckup.Type).
			Ref("sessions").
			Unique().
			Field("clinic_checkup_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("answers", QuestionAnswer.Type),
	}
}

func (Checkup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_profile_id"),
		index.Fields("clinic_checkup_id"),
	}
}

// QuestionAnswer is one recorded answer in a checkup session. Multiple
// rows per question are allowed; result aggregation reads them in
// insertion order.
type QuestionAnswer struct {
	ent.Schema
}

func (QuestionAnswer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (QuestionAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("checkup_id", uuid.UUID{}),

		field.UUID("question_share_id", uuid.UUID{}),

		field.UUID("question_option_id", uuid.UUID{}),

		field.Text("raw_value").
			Optional().
			Nillable().
			Comment("Free-form value for number/date/weight answers"),
	}
}

func (QuestionAnswer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("checkup", Checkup.Type).
			Ref("answers").
			Unique().
			Required().
			Field("checkup_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("question", QuestionShare.Type).
			Unique().
			Required().
			Field("question_share_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("option", QuestionOption.Type).
			Unique().
			Required().
			Field("question_option_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (QuestionAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("checkup_id"),
	}
}
