// Code generated by ent, DO NOT EDIT.

package tokencounter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldClinicID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldDoctorID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldDay, v))
}

// SessionIndex applies equality check predicate on the "session_index" field. It's identical to SessionIndexEQ.
func SessionIndex(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldSessionIndex, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLTE(FieldClinicID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLTE(FieldDoctorID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldContainsFold(FieldDay, v))
}

// SessionIndexEQ applies the EQ predicate on the "session_index" field.
func SessionIndexEQ(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldSessionIndex, v))
}

// SessionIndexNEQ applies the NEQ predicate on the "session_index" field.
func SessionIndexNEQ(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNEQ(FieldSessionIndex, v))
}

// SessionIndexIn applies the In predicate on the "session_index" field.
func SessionIndexIn(vs ...int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldIn(FieldSessionIndex, vs...))
}

// SessionIndexNotIn applies the NotIn predicate on the "session_index" field.
func SessionIndexNotIn(vs ...int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNotIn(FieldSessionIndex, vs...))
}

// SessionIndexGT applies the GT predicate on the "session_index" field.
func SessionIndexGT(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGT(FieldSessionIndex, v))
}

// SessionIndexGTE applies the GTE predicate on the "session_index" field.
func SessionIndexGTE(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGTE(FieldSessionIndex, v))
}

// SessionIndexLT applies the LT predicate on the "session_index" field.
func SessionIndexLT(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLT(FieldSessionIndex, v))
}

// SessionIndexLTE applies the LTE predicate on the "session_index" field.
func SessionIndexLTE(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLTE(FieldSessionIndex, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v int) predicate.TokenCounter {
	return predicate.TokenCounter(sql.FieldLTE(FieldValue, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenCounter) predicate.TokenCounter {
	return predicate.TokenCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenCounter) predicate.TokenCounter {
	return predicate.TokenCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenCounter) predicate.TokenCounter {
	return predicate.TokenCounter(sql.NotPredicates(p))
}
