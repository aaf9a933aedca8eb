// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldClinicID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldName, v))
}

// Specialty applies equality check predicate on the "specialty" field. It's identical to SpecialtyEQ.
func Specialty(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldSpecialty, v))
}

// TokenPrefix applies equality check predicate on the "token_prefix" field. It's identical to TokenPrefixEQ.
func TokenPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTokenPrefix, v))
}

// ConsultMinutes applies equality check predicate on the "consult_minutes" field. It's identical to ConsultMinutesEQ.
func ConsultMinutes(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldConsultMinutes, v))
}

// AvgConsultMinutes applies equality check predicate on the "avg_consult_minutes" field. It's identical to AvgConsultMinutesEQ.
func AvgConsultMinutes(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldAvgConsultMinutes, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldActive, v))
}

// InConsultation applies equality check predicate on the "in_consultation" field. It's identical to InConsultationEQ.
func InConsultation(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldInConsultation, v))
}

// ConsultationStartedAt applies equality check predicate on the "consultation_started_at" field. It's identical to ConsultationStartedAtEQ.
func ConsultationStartedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldConsultationStartedAt, v))
}

// CompletedCount applies equality check predicate on the "completed_count" field. It's identical to CompletedCountEQ.
func CompletedCount(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCompletedCount, v))
}

// CompletedDay applies equality check predicate on the "completed_day" field. It's identical to CompletedDayEQ.
func CompletedDay(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCompletedDay, v))
}

// DelayMinutes applies equality check predicate on the "delay_minutes" field. It's identical to DelayMinutesEQ.
func DelayMinutes(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldDelayMinutes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldClinicID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldName, v))
}

// SpecialtyEQ applies the EQ predicate on the "specialty" field.
func SpecialtyEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldSpecialty, v))
}

// SpecialtyNEQ applies the NEQ predicate on the "specialty" field.
func SpecialtyNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldSpecialty, v))
}

// SpecialtyIn applies the In predicate on the "specialty" field.
func SpecialtyIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldSpecialty, vs...))
}

// SpecialtyNotIn applies the NotIn predicate on the "specialty" field.
func SpecialtyNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldSpecialty, vs...))
}

// SpecialtyGT applies the GT predicate on the "specialty" field.
func SpecialtyGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldSpecialty, v))
}

// SpecialtyGTE applies the GTE predicate on the "specialty" field.
func SpecialtyGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldSpecialty, v))
}

// SpecialtyLT applies the LT predicate on the "specialty" field.
func SpecialtyLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldSpecialty, v))
}

// SpecialtyLTE applies the LTE predicate on the "specialty" field.
func SpecialtyLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldSpecialty, v))
}

// SpecialtyContains applies the Contains predicate on the "specialty" field.
func SpecialtyContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldSpecialty, v))
}

// SpecialtyHasPrefix applies the HasPrefix predicate on the "specialty" field.
func SpecialtyHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldSpecialty, v))
}

// SpecialtyHasSuffix applies the HasSuffix predicate on the "specialty" field.
func SpecialtyHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldSpecialty, v))
}

// SpecialtyIsNil applies the IsNil predicate on the "specialty" field.
func SpecialtyIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldSpecialty))
}

// SpecialtyNotNil applies the NotNil predicate on the "specialty" field.
func SpecialtyNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldSpecialty))
}

// SpecialtyEqualFold applies the EqualFold predicate on the "specialty" field.
func SpecialtyEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldSpecialty, v))
}

// SpecialtyContainsFold applies the ContainsFold predicate on the "specialty" field.
func SpecialtyContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldSpecialty, v))
}

// TokenPrefixEQ applies the EQ predicate on the "token_prefix" field.
func TokenPrefixEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTokenPrefix, v))
}

// TokenPrefixNEQ applies the NEQ predicate on the "token_prefix" field.
func TokenPrefixNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldTokenPrefix, v))
}

// TokenPrefixIn applies the In predicate on the "token_prefix" field.
func TokenPrefixIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldTokenPrefix, vs...))
}

// TokenPrefixNotIn applies the NotIn predicate on the "token_prefix" field.
func TokenPrefixNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldTokenPrefix, vs...))
}

// TokenPrefixGT applies the GT predicate on the "token_prefix" field.
func TokenPrefixGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldTokenPrefix, v))
}

// TokenPrefixGTE applies the GTE predicate on the "token_prefix" field.
func TokenPrefixGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldTokenPrefix, v))
}

// TokenPrefixLT applies the LT predicate on the "token_prefix" field.
func TokenPrefixLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldTokenPrefix, v))
}

// TokenPrefixLTE applies the LTE predicate on the "token_prefix" field.
func TokenPrefixLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldTokenPrefix, v))
}

// TokenPrefixContains applies the Contains predicate on the "token_prefix" field.
func TokenPrefixContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldTokenPrefix, v))
}

// TokenPrefixHasPrefix applies the HasPrefix predicate on the "token_prefix" field.
func TokenPrefixHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldTokenPrefix, v))
}

// TokenPrefixHasSuffix applies the HasSuffix predicate on the "token_prefix" field.
func TokenPrefixHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldTokenPrefix, v))
}

// TokenPrefixEqualFold applies the EqualFold predicate on the "token_prefix" field.
func TokenPrefixEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldTokenPrefix, v))
}

// TokenPrefixContainsFold applies the ContainsFold predicate on the "token_prefix" field.
func TokenPrefixContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldTokenPrefix, v))
}

// ConsultMinutesEQ applies the EQ predicate on the "consult_minutes" field.
func ConsultMinutesEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldConsultMinutes, v))
}

// ConsultMinutesNEQ applies the NEQ predicate on the "consult_minutes" field.
func ConsultMinutesNEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldConsultMinutes, v))
}

// ConsultMinutesIn applies the In predicate on the "consult_minutes" field.
func ConsultMinutesIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldConsultMinutes, vs...))
}

// ConsultMinutesNotIn applies the NotIn predicate on the "consult_minutes" field.
func ConsultMinutesNotIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldConsultMinutes, vs...))
}

// ConsultMinutesGT applies the GT predicate on the "consult_minutes" field.
func ConsultMinutesGT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldConsultMinutes, v))
}

// ConsultMinutesGTE applies the GTE predicate on the "consult_minutes" field.
func ConsultMinutesGTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldConsultMinutes, v))
}

// ConsultMinutesLT applies the LT predicate on the "consult_minutes" field.
func ConsultMinutesLT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldConsultMinutes, v))
}

// ConsultMinutesLTE applies the LTE predicate on the "consult_minutes" field.
func ConsultMinutesLTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldConsultMinutes, v))
}

// AvgConsultMinutesEQ applies the EQ predicate on the "avg_consult_minutes" field.
func AvgConsultMinutesEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldAvgConsultMinutes, v))
}

// AvgConsultMinutesNEQ applies the NEQ predicate on the "avg_consult_minutes" field.
func AvgConsultMinutesNEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldAvgConsultMinutes, v))
}

// AvgConsultMinutesIn applies the In predicate on the "avg_consult_minutes" field.
func AvgConsultMinutesIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldAvgConsultMinutes, vs...))
}

// AvgConsultMinutesNotIn applies the NotIn predicate on the "avg_consult_minutes" field.
func AvgConsultMinutesNotIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldAvgConsultMinutes, vs...))
}

// AvgConsultMinutesGT applies the GT predicate on the "avg_consult_minutes" field.
func AvgConsultMinutesGT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldAvgConsultMinutes, v))
}

// AvgConsultMinutesGTE applies the GTE predicate on the "avg_consult_minutes" field.
func AvgConsultMinutesGTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldAvgConsultMinutes, v))
}

// AvgConsultMinutesLT applies the LT predicate on the "avg_consult_minutes" field.
func AvgConsultMinutesLT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldAvgConsultMinutes, v))
}

// AvgConsultMinutesLTE applies the LTE predicate on the "avg_consult_minutes" field.
func AvgConsultMinutesLTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldAvgConsultMinutes, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldActive, v))
}

// InConsultationEQ applies the EQ predicate on the "in_consultation" field.
func InConsultationEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldInConsultation, v))
}

// InConsultationNEQ applies the NEQ predicate on the "in_consultation" field.
func InConsultationNEQ(v bool) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldInConsultation, v))
}

// ConsultationStartedAtEQ applies the EQ predicate on the "consultation_started_at" field.
func ConsultationStartedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldConsultationStartedAt, v))
}

// ConsultationStartedAtNEQ applies the NEQ predicate on the "consultation_started_at" field.
func ConsultationStartedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldConsultationStartedAt, v))
}

// ConsultationStartedAtIn applies the In predicate on the "consultation_started_at" field.
func ConsultationStartedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldConsultationStartedAt, vs...))
}

// ConsultationStartedAtNotIn applies the NotIn predicate on the "consultation_started_at" field.
func ConsultationStartedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldConsultationStartedAt, vs...))
}

// ConsultationStartedAtGT applies the GT predicate on the "consultation_started_at" field.
func ConsultationStartedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldConsultationStartedAt, v))
}

// ConsultationStartedAtGTE applies the GTE predicate on the "consultation_started_at" field.
func ConsultationStartedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldConsultationStartedAt, v))
}

// ConsultationStartedAtLT applies the LT predicate on the "consultation_started_at" field.
func ConsultationStartedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldConsultationStartedAt, v))
}

// ConsultationStartedAtLTE applies the LTE predicate on the "consultation_started_at" field.
func ConsultationStartedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldConsultationStartedAt, v))
}

// ConsultationStartedAtIsNil applies the IsNil predicate on the "consultation_started_at" field.
func ConsultationStartedAtIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldConsultationStartedAt))
}

// ConsultationStartedAtNotNil applies the NotNil predicate on the "consultation_started_at" field.
func ConsultationStartedAtNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldConsultationStartedAt))
}

// CompletedCountEQ applies the EQ predicate on the "completed_count" field.
func CompletedCountEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCompletedCount, v))
}

// CompletedCountNEQ applies the NEQ predicate on the "completed_count" field.
func CompletedCountNEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldCompletedCount, v))
}

// CompletedCountIn applies the In predicate on the "completed_count" field.
func CompletedCountIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldCompletedCount, vs...))
}

// CompletedCountNotIn applies the NotIn predicate on the "completed_count" field.
func CompletedCountNotIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldCompletedCount, vs...))
}

// CompletedCountGT applies the GT predicate on the "completed_count" field.
func CompletedCountGT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldCompletedCount, v))
}

// CompletedCountGTE applies the GTE predicate on the "completed_count" field.
func CompletedCountGTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldCompletedCount, v))
}

// CompletedCountLT applies the LT predicate on the "completed_count" field.
func CompletedCountLT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldCompletedCount, v))
}

// CompletedCountLTE applies the LTE predicate on the "completed_count" field.
func CompletedCountLTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldCompletedCount, v))
}

// CompletedDayEQ applies the EQ predicate on the "completed_day" field.
func CompletedDayEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCompletedDay, v))
}

// CompletedDayNEQ applies the NEQ predicate on the "completed_day" field.
func CompletedDayNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldCompletedDay, v))
}

// CompletedDayIn applies the In predicate on the "completed_day" field.
func CompletedDayIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldCompletedDay, vs...))
}

// CompletedDayNotIn applies the NotIn predicate on the "completed_day" field.
func CompletedDayNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldCompletedDay, vs...))
}

// CompletedDayGT applies the GT predicate on the "completed_day" field.
func CompletedDayGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldCompletedDay, v))
}

// CompletedDayGTE applies the GTE predicate on the "completed_day" field.
func CompletedDayGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldCompletedDay, v))
}

// CompletedDayLT applies the LT predicate on the "completed_day" field.
func CompletedDayLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldCompletedDay, v))
}

// CompletedDayLTE applies the LTE predicate on the "completed_day" field.
func CompletedDayLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldCompletedDay, v))
}

// CompletedDayContains applies the Contains predicate on the "completed_day" field.
func CompletedDayContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldCompletedDay, v))
}

// CompletedDayHasPrefix applies the HasPrefix predicate on the "completed_day" field.
func CompletedDayHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldCompletedDay, v))
}

// CompletedDayHasSuffix applies the HasSuffix predicate on the "completed_day" field.
func CompletedDayHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldCompletedDay, v))
}

// CompletedDayIsNil applies the IsNil predicate on the "completed_day" field.
func CompletedDayIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldCompletedDay))
}

// CompletedDayNotNil applies the NotNil predicate on the "completed_day" field.
func CompletedDayNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldCompletedDay))
}

// CompletedDayEqualFold applies the EqualFold predicate on the "completed_day" field.
func CompletedDayEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldCompletedDay, v))
}

// CompletedDayContainsFold applies the ContainsFold predicate on the "completed_day" field.
func CompletedDayContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldCompletedDay, v))
}

// DelayMinutesEQ applies the EQ predicate on the "delay_minutes" field.
func DelayMinutesEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldDelayMinutes, v))
}

// DelayMinutesNEQ applies the NEQ predicate on the "delay_minutes" field.
func DelayMinutesNEQ(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldDelayMinutes, v))
}

// DelayMinutesIn applies the In predicate on the "delay_minutes" field.
func DelayMinutesIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldDelayMinutes, vs...))
}

// DelayMinutesNotIn applies the NotIn predicate on the "delay_minutes" field.
func DelayMinutesNotIn(vs ...int) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldDelayMinutes, vs...))
}

// DelayMinutesGT applies the GT predicate on the "delay_minutes" field.
func DelayMinutesGT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldDelayMinutes, v))
}

// DelayMinutesGTE applies the GTE predicate on the "delay_minutes" field.
func DelayMinutesGTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldDelayMinutes, v))
}

// DelayMinutesLT applies the LT predicate on the "delay_minutes" field.
func DelayMinutesLT(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldDelayMinutes, v))
}

// DelayMinutesLTE applies the LTE predicate on the "delay_minutes" field.
func DelayMinutesLTE(v int) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldDelayMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.NotPredicates(p))
}
