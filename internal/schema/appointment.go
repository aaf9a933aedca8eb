package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is one issued token: a patient bound to a doctor's slot on a
// given day. The partial unique index keeps a slot from carrying two live
// visits while letting cancelled or no-show rows free it up.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.String("patient_name").
			NotEmpty(),

		field.String("patient_phone").
			NotEmpty().
			Comment("E.164"),

		field.String("patient_email").
			Optional(),

		field.String("day").
			NotEmpty().
			Comment("Clinic-local day, 2006-01-02"),

		field.Int("slot_index").
			Min(0).
			Comment("Position in the resolved day grid; force-booked rows sit past the last real slot"),

		field.Int("session_index").
			Min(0),

		field.Time("start_time").
			Comment("Planned slot instant, before any delay shift"),

		field.Enum("kind").
			Values("walkin", "advance"),

		field.String("token_number").
			NotEmpty().
			Comment("Display token, e.g. A007"),

		field.Int("numeric_token").
			Min(1),

		field.Enum("status").
			Values("pending", "confirmed", "skipped", "no_show", "completed", "cancelled").
			Default("pending"),

		field.Time("cut_off_time").
			Comment("Delay-adjusted confirm-by instant"),

		field.Time("no_show_time").
			Comment("Delay-adjusted rejoin-by instant"),

		field.Int("delay_minutes").
			Default(0).
			Comment("Delay already folded into cut_off_time/no_show_time"),

		field.Bool("force_booked").
			Default(false),

		field.Bool("rejoined").
			Default(false),

		field.Time("confirmed_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "day", "slot_index").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'confirmed')")),
		index.Fields("doctor_id", "day", "status"),
		index.Fields("clinic_id", "day"),
		index.Fields("patient_phone", "day"),
	}
}
