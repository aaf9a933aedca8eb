package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Doctor carries both the static slotting profile and the live consultation
// state the delay engine reads and writes.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("name").
			NotEmpty(),

		field.String("specialty").
			Optional(),

		field.String("token_prefix").
			Default("A").
			MaxLen(3).
			Comment("Prefix of issued tokens, e.g. A007"),

		field.Int("consult_minutes").
			Default(15).
			Comment("Slot duration used when cutting sessions into slots"),

		field.Int("avg_consult_minutes").
			Default(15).
			Comment("Historical average; feeds the in-consultation delay formula"),

		field.Bool("active").
			Default(true),

		// Live state below. Mutated by doctorsched ops and the delay engine,
		// never by booking.
		field.Bool("in_consultation").
			Default(false),

		field.Time("consultation_started_at").
			Optional().
			Nillable(),

		field.Int("completed_count").
			Default(0).
			Comment("Visits completed today; reset when a new day starts"),

		field.String("completed_day").
			Optional().
			Comment("Clinic-local day the completed_count belongs to (2006-01-02)"),

		field.Int("delay_minutes").
			Default(0).
			Comment("Last published delay; written only through hysteresis"),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "active"),
	}
}
