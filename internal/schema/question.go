package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// QuestionShare is a reusable questionnaire node authored by a doctor.
// Questions form a directed graph through chart_connect_question_id and
// the branch links on their options.
type QuestionShare struct {
	ent.Schema
}

func (QuestionShare) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (QuestionShare) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id (author)"),

		field.UUID("clinic_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → clinics.id"),

		field.String("title").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("prompt").
			NotEmpty().
			Comment("Text shown to the patient"),

		field.Enum("question_type").
			Values(
				"multiple_choice",
				"multiple_date",
				"number",
				"date",
				"chart",
				"weight",
				"picture",
				"placeholder",
			).
			Default("multiple_choice"),

		field.Enum("expert_level").
			Values("public", "expert").
			Default("public"),

		field.Enum("priority").
			Values("low", "normal", "high").
			Default("normal"),

		field.Enum("date_type").
			Values("exact", "approximate").
			Default("exact").
			Comment("Only meaningful for date questions"),

		field.Bool("is_starter").
			Default(false).
			Comment("Entry node candidate for a checkup template"),

		field.Bool("is_equation").
			Default(false),

		field.Text("equation").
			Optional().
			Nillable().
			Comment("Score expression evaluated with w bound to the weight sum"),

		// Flowchart presentation state, batch-written by the layout save.
		field.Bool("chart_visible").Default(true),
		field.Float("chart_src_x").Default(0),
		field.Float("chart_src_y").Default(0),
		field.Float("chart_des_x").Default(0),
		field.Float("chart_des_y").Default(0),
		field.Int("chart_branch_count").Default(0),

		field.UUID("chart_connect_question_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Next question when the node does not branch"),
	}
}

func (QuestionShare) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", Doctor.Type).
			Ref("questions").
			Unique().
			Required().
			Field("doctor_id"),
		edge.To("clinic", Clinic.Type).
			Unique().
			Field("clinic_id"),
		edge.To("options", QuestionOption.Type),
		edge.To("organs", Organ.Type),
		edge.To("chart_connect", QuestionShare.Type).
			Unique().
			Field("chart_connect_question_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (QuestionShare) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id"),
		index.Fields("clinic_id"),
	}
}

// QuestionOption is one selectable answer on a question. Options carry
// the clinical outcome of choosing them (weight, interpretation, alert
// and referral targets) plus their own flowchart branch link.
type QuestionOption struct {
	ent.Schema
}

func (QuestionOption) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (QuestionOption) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("question_id", uuid.UUID{}).
			Comment("FK → question_shares.id"),

		field.String("title").
			NotEmpty().
			MaxLen(500),

		field.Int("weight").
			Default(0),

		field.Text("interpretation").
			Optional().
			Nillable().
			Comment("Shown in the aggregated checkup result"),

		field.Text("tutorial").
			Optional().
			Nillable(),

		field.UUID("alert_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("suggested_doctor_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("suggested_clinic_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Bool("is_branch").
			Default(false).
			Comment("When set, chart_connect_question_id overrides the question's link"),

		field.Float("chart_x").Default(0),
		field.Float("chart_y").Default(0),

		field.UUID("chart_connect_question_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (QuestionOption) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", QuestionShare.Type).
			Ref("options").
			Unique().
			Required().
			Field("question_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("alert", Alert.Type).
			Unique().
			Field("alert_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("suggested_doctor", Doctor.Type).
			Unique().
			Field("suggested_doctor_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("suggested_clinic", Clinic.Type).
			Unique().
			Field("suggested_clinic_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("chart_connect", QuestionShare.Type).
			Unique().
			Field("chart_connect_question_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("number_ranges", QuestionOptionNumber.Type),
		edge.To("date_ranges", QuestionOptionDate.Type),
		edge.To("equation_ranges", QuestionOptionEquation.Type),
	}
}

func (QuestionOption) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}

// QuestionOptionNumber binds an option to a numeric answer band. A
// numeric answer matches the option when it falls inside [lower, upper].
type QuestionOptionNumber struct {
	ent.Schema
}

func (QuestionOptionNumber) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (QuestionOptionNumber) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("option_id", uuid.UUID{}),
		field.Float("lower_band"),
		field.Float("upper_band"),
	}
}

func (QuestionOptionNumber) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("option", QuestionOption.Type).
			Ref("number_ranges").
			Unique().
			Required().
			Field("option_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// QuestionOptionDate binds an option to a date answer band, expressed in
// days relative to the answer time.
type QuestionOptionDate struct {
	ent.Schema
}

func (QuestionOptionDate) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (QuestionOptionDate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("option_id", uuid.UUID{}),
		field.Float("lower_band"),
		field.Float("upper_band"),
	}
}

func (QuestionOptionDate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("option", QuestionOption.Type).
			Ref("date_ranges").
			Unique().
			Required().
			Field("option_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// QuestionOptionEquation binds an option to a computed-score band on an
// equation question.
type QuestionOptionEquation struct {
	ent.Schema
}

func (QuestionOptionEquation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (QuestionOptionEquation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("option_id", uuid.UUID{}),
		field.Float("lower_band"),
		field.Float("upper_band"),
	}
}

func (QuestionOptionEquation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("option", QuestionOption.Type).
			Ref("equation_ranges").
			Unique().
			Required().
			Field("option_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
