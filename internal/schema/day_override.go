package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DayOverride is a one-day deviation from the weekly template: a mid-day
// break, a full-day leave, or a session end-time extension.
type DayOverride struct {
	ent.Schema
}

func (DayOverride) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DayOverride) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.String("day").
			NotEmpty().
			Comment("Clinic-local day, 2006-01-02"),

		field.Enum("kind").
			Values("break", "leave", "extension"),

		// break fields
		field.Time("break_start").
			Optional().
			Nillable(),

		field.Time("break_end").
			Optional().
			Nillable(),

		// extension fields
		field.Int("session_index").
			Optional().
			Nillable().
			Comment("Which session of the day is extended"),

		field.Time("original_end").
			Optional().
			Nillable().
			Comment("End instant the extension was written against; stale value means the template changed and the override is ignored"),

		field.Time("new_end").
			Optional().
			Nillable(),
	}
}

func (DayOverride) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "day"),
	}
}
