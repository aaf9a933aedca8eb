package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TokenCounter backs classic sequential numbering. The row is bumped inside
// the same transaction that creates the appointment, so issued numbers are
// gapless per (doctor, day, session).
type TokenCounter struct {
	ent.Schema
}

func (TokenCounter) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TokenCounter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.String("day").
			NotEmpty(),

		field.Int("session_index").
			Min(0),

		field.Int("value").
			Default(0).
			Min(0),
	}
}

func (TokenCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "day", "session_index").Unique(),
	}
}
