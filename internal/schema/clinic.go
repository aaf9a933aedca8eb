package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Clinic is the tenant root. Queue policy knobs live here so each clinic
// can tune cut-off and no-show windows without a deploy.
type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),

		field.String("slug").
			NotEmpty().
			Comment("Short identifier used in the X-Clinic header"),

		field.String("timezone").
			Default("Asia/Kolkata").
			Comment("IANA zone; all day math runs in clinic-local time"),

		field.Bool("classic_numbering").
			Default(false).
			Comment("true = sequential per-session token counter, false = slot-index tokens"),

		field.Int("rejoin_after").
			Default(2).
			Comment("A rejoined patient re-enters after this many confirmed visits"),

		field.Int("cut_off_minutes").
			Default(15),

		field.Int("no_show_minutes").
			Default(15),

		field.String("contact_email").
			Optional(),

		field.String("contact_phone").
			Optional(),
	}
}

func (Clinic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
	}
}
