package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ScheduleSession is one row of a doctor's weekly template: a contiguous
// consulting window on a given weekday. A weekday may have several sessions
// (morning and evening OPD), ordered by position.
type ScheduleSession struct {
	ent.Schema
}

func (ScheduleSession) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ScheduleSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Int("weekday").
			Min(0).
			Max(6).
			Comment("0 = Sunday"),

		field.Int("position").
			Min(0).
			Comment("Session index within the day, 0-based"),

		field.Int("start_hour").
			Min(0).
			Max(23),

		field.Int("start_minute").
			Min(0).
			Max(59),

		field.Int("end_hour").
			Min(0).
			Max(23),

		field.Int("end_minute").
			Min(0).
			Max(59),

		field.Bool("active").
			Default(true),
	}
}

func (ScheduleSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "weekday", "position").Unique(),
	}
}
