package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("phone").
			NotEmpty().
			Unique().
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			Unique().
			MaxLen(255),

		// AES-256-GCM ciphertext of the national code
		field.String("national_code").
			Optional().
			Nillable().
			Sensitive(),

		// SHA-256 hex of the raw national code, for lookups without decryption
		field.String("national_code_hash").
			Optional().
			Nillable().
			MaxLen(64),

		field.Bool("identity_approved").
			Default(false).
			Comment("Set after the Jibit national-code/phone match succeeds"),

		field.Time("identity_approved_at").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		field.Bool("phone_verified").Default(false),

		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]any{}).
			Optional().
			Default(map[string]any{}),

		field.Time("suspended_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("national_code_hash"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{}
}
