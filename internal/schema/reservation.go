package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Reservation is a short-lived hold on one slot while the patient finishes
// the booking flow. At most one live hold may exist per slot; the partial
// unique index below is what makes Reserve race-safe.
type Reservation struct {
	ent.Schema
}

func (Reservation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Reservation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.String("day").
			NotEmpty().
			Comment("Clinic-local day, 2006-01-02"),

		field.Int("slot_index").
			Min(0),

		field.Time("slot_time"),

		field.Enum("status").
			Values("held", "booked").
			Default("held"),

		field.Time("expires_at"),

		field.String("patient_name").
			NotEmpty(),

		field.String("patient_phone").
			NotEmpty().
			Comment("E.164"),

		field.Enum("kind").
			Values("walkin", "advance").
			Default("walkin"),
	}
}

func (Reservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "day", "slot_index").
			Unique().
			Annotations(entsql.IndexWhere("status = 'held'")),
		index.Fields("status", "expires_at"),
	}
}
