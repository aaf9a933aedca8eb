// Code generated by ent, DO NOT EDIT.

package schedulesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldDoctorID, v))
}

// Weekday applies equality check predicate on the "weekday" field. It's identical to WeekdayEQ.
func Weekday(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldWeekday, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldPosition, v))
}

// StartHour applies equality check predicate on the "start_hour" field. It's identical to StartHourEQ.
func StartHour(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldStartHour, v))
}

// StartMinute applies equality check predicate on the "start_minute" field. It's identical to StartMinuteEQ.
func StartMinute(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldStartMinute, v))
}

// EndHour applies equality check predicate on the "end_hour" field. It's identical to EndHourEQ.
func EndHour(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldEndHour, v))
}

// EndMinute applies equality check predicate on the "end_minute" field. It's identical to EndMinuteEQ.
func EndMinute(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldEndMinute, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldDoctorID, v))
}

// WeekdayEQ applies the EQ predicate on the "weekday" field.
func WeekdayEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldWeekday, v))
}

// WeekdayNEQ applies the NEQ predicate on the "weekday" field.
func WeekdayNEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldWeekday, v))
}

// WeekdayIn applies the In predicate on the "weekday" field.
func WeekdayIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldWeekday, vs...))
}

// WeekdayNotIn applies the NotIn predicate on the "weekday" field.
func WeekdayNotIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldWeekday, vs...))
}

// WeekdayGT applies the GT predicate on the "weekday" field.
func WeekdayGT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldWeekday, v))
}

// WeekdayGTE applies the GTE predicate on the "weekday" field.
func WeekdayGTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldWeekday, v))
}

// WeekdayLT applies the LT predicate on the "weekday" field.
func WeekdayLT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldWeekday, v))
}

// WeekdayLTE applies the LTE predicate on the "weekday" field.
func WeekdayLTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldWeekday, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldPosition, v))
}

// StartHourEQ applies the EQ predicate on the "start_hour" field.
func StartHourEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldStartHour, v))
}

// StartHourNEQ applies the NEQ predicate on the "start_hour" field.
func StartHourNEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldStartHour, v))
}

// StartHourIn applies the In predicate on the "start_hour" field.
func StartHourIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldStartHour, vs...))
}

// StartHourNotIn applies the NotIn predicate on the "start_hour" field.
func StartHourNotIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldStartHour, vs...))
}

// StartHourGT applies the GT predicate on the "start_hour" field.
func StartHourGT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldStartHour, v))
}

// StartHourGTE applies the GTE predicate on the "start_hour" field.
func StartHourGTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldStartHour, v))
}

// StartHourLT applies the LT predicate on the "start_hour" field.
func StartHourLT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldStartHour, v))
}

// StartHourLTE applies the LTE predicate on the "start_hour" field.
func StartHourLTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldStartHour, v))
}

// StartMinuteEQ applies the EQ predicate on the "start_minute" field.
func StartMinuteEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldStartMinute, v))
}

// StartMinuteNEQ applies the NEQ predicate on the "start_minute" field.
func StartMinuteNEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldStartMinute, v))
}

// StartMinuteIn applies the In predicate on the "start_minute" field.
func StartMinuteIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldStartMinute, vs...))
}

// StartMinuteNotIn applies the NotIn predicate on the "start_minute" field.
func StartMinuteNotIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldStartMinute, vs...))
}

// StartMinuteGT applies the GT predicate on the "start_minute" field.
func StartMinuteGT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldStartMinute, v))
}

// StartMinuteGTE applies the GTE predicate on the "start_minute" field.
func StartMinuteGTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldStartMinute, v))
}

// StartMinuteLT applies the LT predicate on the "start_minute" field.
func StartMinuteLT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldStartMinute, v))
}

// StartMinuteLTE applies the LTE predicate on the "start_minute" field.
func StartMinuteLTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldStartMinute, v))
}

// EndHourEQ applies the EQ predicate on the "end_hour" field.
func EndHourEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldEndHour, v))
}

// EndHourNEQ applies the NEQ predicate on the "end_hour" field.
func EndHourNEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldEndHour, v))
}

// EndHourIn applies the In predicate on the "end_hour" field.
func EndHourIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldEndHour, vs...))
}

// EndHourNotIn applies the NotIn predicate on the "end_hour" field.
func EndHourNotIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldEndHour, vs...))
}

// EndHourGT applies the GT predicate on the "end_hour" field.
func EndHourGT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldEndHour, v))
}

// EndHourGTE applies the GTE predicate on the "end_hour" field.
func EndHourGTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldEndHour, v))
}

// EndHourLT applies the LT predicate on the "end_hour" field.
func EndHourLT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldEndHour, v))
}

// EndHourLTE applies the LTE predicate on the "end_hour" field.
func EndHourLTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldEndHour, v))
}

// EndMinuteEQ applies the EQ predicate on the "end_minute" field.
func EndMinuteEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldEndMinute, v))
}

// EndMinuteNEQ applies the NEQ predicate on the "end_minute" field.
func EndMinuteNEQ(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldEndMinute, v))
}

// EndMinuteIn applies the In predicate on the "end_minute" field.
func EndMinuteIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldIn(FieldEndMinute, vs...))
}

// EndMinuteNotIn applies the NotIn predicate on the "end_minute" field.
func EndMinuteNotIn(vs ...int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNotIn(FieldEndMinute, vs...))
}

// EndMinuteGT applies the GT predicate on the "end_minute" field.
func EndMinuteGT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGT(FieldEndMinute, v))
}

// EndMinuteGTE applies the GTE predicate on the "end_minute" field.
func EndMinuteGTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldGTE(FieldEndMinute, v))
}

// EndMinuteLT applies the LT predicate on the "end_minute" field.
func EndMinuteLT(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLT(FieldEndMinute, v))
}

// EndMinuteLTE applies the LTE predicate on the "end_minute" field.
func EndMinuteLTE(v int) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldLTE(FieldEndMinute, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleSession) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleSession) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleSession) predicate.ScheduleSession {
	return predicate.ScheduleSession(sql.NotPredicates(p))
}
