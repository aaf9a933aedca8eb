// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldClinicID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientName, v))
}

// PatientPhone applies equality check predicate on the "patient_phone" field. It's identical to PatientPhoneEQ.
func PatientPhone(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientPhone, v))
}

// PatientEmail applies equality check predicate on the "patient_email" field. It's identical to PatientEmailEQ.
func PatientEmail(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientEmail, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDay, v))
}

// SlotIndex applies equality check predicate on the "slot_index" field. It's identical to SlotIndexEQ.
func SlotIndex(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldSlotIndex, v))
}

// SessionIndex applies equality check predicate on the "session_index" field. It's identical to SessionIndexEQ.
func SessionIndex(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldSessionIndex, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// TokenNumber applies equality check predicate on the "token_number" field. It's identical to TokenNumberEQ.
func TokenNumber(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldTokenNumber, v))
}

// NumericToken applies equality check predicate on the "numeric_token" field. It's identical to NumericTokenEQ.
func NumericToken(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNumericToken, v))
}

// CutOffTime applies equality check predicate on the "cut_off_time" field. It's identical to CutOffTimeEQ.
func CutOffTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCutOffTime, v))
}

// NoShowTime applies equality check predicate on the "no_show_time" field. It's identical to NoShowTimeEQ.
func NoShowTime(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNoShowTime, v))
}

// DelayMinutes applies equality check predicate on the "delay_minutes" field. It's identical to DelayMinutesEQ.
func DelayMinutes(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDelayMinutes, v))
}

// ForceBooked applies equality check predicate on the "force_booked" field. It's identical to ForceBookedEQ.
func ForceBooked(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldForceBooked, v))
}

// Rejoined applies equality check predicate on the "rejoined" field. It's identical to RejoinedEQ.
func Rejoined(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRejoined, v))
}

// ConfirmedAt applies equality check predicate on the "confirmed_at" field. It's identical to ConfirmedAtEQ.
func ConfirmedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldConfirmedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCompletedAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldClinicID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDoctorID, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientPhoneEQ applies the EQ predicate on the "patient_phone" field.
func PatientPhoneEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientPhone, v))
}

// PatientPhoneNEQ applies the NEQ predicate on the "patient_phone" field.
func PatientPhoneNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientPhone, v))
}

// PatientPhoneIn applies the In predicate on the "patient_phone" field.
func PatientPhoneIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientPhone, vs...))
}

// PatientPhoneNotIn applies the NotIn predicate on the "patient_phone" field.
func PatientPhoneNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientPhone, vs...))
}

// PatientPhoneGT applies the GT predicate on the "patient_phone" field.
func PatientPhoneGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPatientPhone, v))
}

// PatientPhoneGTE applies the GTE predicate on the "patient_phone" field.
func PatientPhoneGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPatientPhone, v))
}

// PatientPhoneLT applies the LT predicate on the "patient_phone" field.
func PatientPhoneLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPatientPhone, v))
}

// PatientPhoneLTE applies the LTE predicate on the "patient_phone" field.
func PatientPhoneLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPatientPhone, v))
}

// PatientPhoneContains applies the Contains predicate on the "patient_phone" field.
func PatientPhoneContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPatientPhone, v))
}

// PatientPhoneHasPrefix applies the HasPrefix predicate on the "patient_phone" field.
func PatientPhoneHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPatientPhone, v))
}

// PatientPhoneHasSuffix applies the HasSuffix predicate on the "patient_phone" field.
func PatientPhoneHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPatientPhone, v))
}

// PatientPhoneEqualFold applies the EqualFold predicate on the "patient_phone" field.
func PatientPhoneEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPatientPhone, v))
}

// PatientPhoneContainsFold applies the ContainsFold predicate on the "patient_phone" field.
func PatientPhoneContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPatientPhone, v))
}

// PatientEmailEQ applies the EQ predicate on the "patient_email" field.
func PatientEmailEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldPatientEmail, v))
}

// PatientEmailNEQ applies the NEQ predicate on the "patient_email" field.
func PatientEmailNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldPatientEmail, v))
}

// PatientEmailIn applies the In predicate on the "patient_email" field.
func PatientEmailIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldPatientEmail, vs...))
}

// PatientEmailNotIn applies the NotIn predicate on the "patient_email" field.
func PatientEmailNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldPatientEmail, vs...))
}

// PatientEmailGT applies the GT predicate on the "patient_email" field.
func PatientEmailGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldPatientEmail, v))
}

// PatientEmailGTE applies the GTE predicate on the "patient_email" field.
func PatientEmailGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldPatientEmail, v))
}

// PatientEmailLT applies the LT predicate on the "patient_email" field.
func PatientEmailLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldPatientEmail, v))
}

// PatientEmailLTE applies the LTE predicate on the "patient_email" field.
func PatientEmailLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldPatientEmail, v))
}

// PatientEmailContains applies the Contains predicate on the "patient_email" field.
func PatientEmailContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldPatientEmail, v))
}

// PatientEmailHasPrefix applies the HasPrefix predicate on the "patient_email" field.
func PatientEmailHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldPatientEmail, v))
}

// PatientEmailHasSuffix applies the HasSuffix predicate on the "patient_email" field.
func PatientEmailHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldPatientEmail, v))
}

// PatientEmailIsNil applies the IsNil predicate on the "patient_email" field.
func PatientEmailIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldPatientEmail))
}

// PatientEmailNotNil applies the NotNil predicate on the "patient_email" field.
func PatientEmailNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldPatientEmail))
}

// PatientEmailEqualFold applies the EqualFold predicate on the "patient_email" field.
func PatientEmailEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldPatientEmail, v))
}

// PatientEmailContainsFold applies the ContainsFold predicate on the "patient_email" field.
func PatientEmailContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldPatientEmail, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldDay, v))
}

// SlotIndexEQ applies the EQ predicate on the "slot_index" field.
func SlotIndexEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldSlotIndex, v))
}

// SlotIndexNEQ applies the NEQ predicate on the "slot_index" field.
func SlotIndexNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldSlotIndex, v))
}

// SlotIndexIn applies the In predicate on the "slot_index" field.
func SlotIndexIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldSlotIndex, vs...))
}

// SlotIndexNotIn applies the NotIn predicate on the "slot_index" field.
func SlotIndexNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldSlotIndex, vs...))
}

// SlotIndexGT applies the GT predicate on the "slot_index" field.
func SlotIndexGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldSlotIndex, v))
}

// SlotIndexGTE applies the GTE predicate on the "slot_index" field.
func SlotIndexGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldSlotIndex, v))
}

// SlotIndexLT applies the LT predicate on the "slot_index" field.
func SlotIndexLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldSlotIndex, v))
}

// SlotIndexLTE applies the LTE predicate on the "slot_index" field.
func SlotIndexLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldSlotIndex, v))
}

// SessionIndexEQ applies the EQ predicate on the "session_index" field.
func SessionIndexEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldSessionIndex, v))
}

// SessionIndexNEQ applies the NEQ predicate on the "session_index" field.
func SessionIndexNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldSessionIndex, v))
}

// SessionIndexIn applies the In predicate on the "session_index" field.
func SessionIndexIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldSessionIndex, vs...))
}

// SessionIndexNotIn applies the NotIn predicate on the "session_index" field.
func SessionIndexNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldSessionIndex, vs...))
}

// SessionIndexGT applies the GT predicate on the "session_index" field.
func SessionIndexGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldSessionIndex, v))
}

// SessionIndexGTE applies the GTE predicate on the "session_index" field.
func SessionIndexGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldSessionIndex, v))
}

// SessionIndexLT applies the LT predicate on the "session_index" field.
func SessionIndexLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldSessionIndex, v))
}

// SessionIndexLTE applies the LTE predicate on the "session_index" field.
func SessionIndexLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldSessionIndex, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldStartTime, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldKind, vs...))
}

// TokenNumberEQ applies the EQ predicate on the "token_number" field.
func TokenNumberEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldTokenNumber, v))
}

// TokenNumberNEQ applies the NEQ predicate on the "token_number" field.
func TokenNumberNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldTokenNumber, v))
}

// TokenNumberIn applies the In predicate on the "token_number" field.
func TokenNumberIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldTokenNumber, vs...))
}

// TokenNumberNotIn applies the NotIn predicate on the "token_number" field.
func TokenNumberNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldTokenNumber, vs...))
}

// TokenNumberGT applies the GT predicate on the "token_number" field.
func TokenNumberGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldTokenNumber, v))
}

// TokenNumberGTE applies the GTE predicate on the "token_number" field.
func TokenNumberGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldTokenNumber, v))
}

// TokenNumberLT applies the LT predicate on the "token_number" field.
func TokenNumberLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldTokenNumber, v))
}

// TokenNumberLTE applies the LTE predicate on the "token_number" field.
func TokenNumberLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldTokenNumber, v))
}

// TokenNumberContains applies the Contains predicate on the "token_number" field.
func TokenNumberContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldTokenNumber, v))
}

// TokenNumberHasPrefix applies the HasPrefix predicate on the "token_number" field.
func TokenNumberHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldTokenNumber, v))
}

// TokenNumberHasSuffix applies the HasSuffix predicate on the "token_number" field.
func TokenNumberHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldTokenNumber, v))
}

// TokenNumberEqualFold applies the EqualFold predicate on the "token_number" field.
func TokenNumberEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldTokenNumber, v))
}

// TokenNumberContainsFold applies the ContainsFold predicate on the "token_number" field.
func TokenNumberContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldTokenNumber, v))
}

// NumericTokenEQ applies the EQ predicate on the "numeric_token" field.
func NumericTokenEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNumericToken, v))
}

// NumericTokenNEQ applies the NEQ predicate on the "numeric_token" field.
func NumericTokenNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldNumericToken, v))
}

// NumericTokenIn applies the In predicate on the "numeric_token" field.
func NumericTokenIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldNumericToken, vs...))
}

// NumericTokenNotIn applies the NotIn predicate on the "numeric_token" field.
func NumericTokenNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldNumericToken, vs...))
}

// NumericTokenGT applies the GT predicate on the "numeric_token" field.
func NumericTokenGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldNumericToken, v))
}

// NumericTokenGTE applies the GTE predicate on the "numeric_token" field.
func NumericTokenGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldNumericToken, v))
}

// NumericTokenLT applies the LT predicate on the "numeric_token" field.
func NumericTokenLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldNumericToken, v))
}

// NumericTokenLTE applies the LTE predicate on the "numeric_token" field.
func NumericTokenLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldNumericToken, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldStatus, vs...))
}

// CutOffTimeEQ applies the EQ predicate on the "cut_off_time" field.
func CutOffTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCutOffTime, v))
}

// CutOffTimeNEQ applies the NEQ predicate on the "cut_off_time" field.
func CutOffTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCutOffTime, v))
}

// CutOffTimeIn applies the In predicate on the "cut_off_time" field.
func CutOffTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCutOffTime, vs...))
}

// CutOffTimeNotIn applies the NotIn predicate on the "cut_off_time" field.
func CutOffTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCutOffTime, vs...))
}

// CutOffTimeGT applies the GT predicate on the "cut_off_time" field.
func CutOffTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCutOffTime, v))
}

// CutOffTimeGTE applies the GTE predicate on the "cut_off_time" field.
func CutOffTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCutOffTime, v))
}

// CutOffTimeLT applies the LT predicate on the "cut_off_time" field.
func CutOffTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCutOffTime, v))
}

// CutOffTimeLTE applies the LTE predicate on the "cut_off_time" field.
func CutOffTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCutOffTime, v))
}

// NoShowTimeEQ applies the EQ predicate on the "no_show_time" field.
func NoShowTimeEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldNoShowTime, v))
}

// NoShowTimeNEQ applies the NEQ predicate on the "no_show_time" field.
func NoShowTimeNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldNoShowTime, v))
}

// NoShowTimeIn applies the In predicate on the "no_show_time" field.
func NoShowTimeIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldNoShowTime, vs...))
}

// NoShowTimeNotIn applies the NotIn predicate on the "no_show_time" field.
func NoShowTimeNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldNoShowTime, vs...))
}

// NoShowTimeGT applies the GT predicate on the "no_show_time" field.
func NoShowTimeGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldNoShowTime, v))
}

// NoShowTimeGTE applies the GTE predicate on the "no_show_time" field.
func NoShowTimeGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldNoShowTime, v))
}

// NoShowTimeLT applies the LT predicate on the "no_show_time" field.
func NoShowTimeLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldNoShowTime, v))
}

// NoShowTimeLTE applies the LTE predicate on the "no_show_time" field.
func NoShowTimeLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldNoShowTime, v))
}

// DelayMinutesEQ applies the EQ predicate on the "delay_minutes" field.
func DelayMinutesEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldDelayMinutes, v))
}

// DelayMinutesNEQ applies the NEQ predicate on the "delay_minutes" field.
func DelayMinutesNEQ(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldDelayMinutes, v))
}

// DelayMinutesIn applies the In predicate on the "delay_minutes" field.
func DelayMinutesIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldDelayMinutes, vs...))
}

// DelayMinutesNotIn applies the NotIn predicate on the "delay_minutes" field.
func DelayMinutesNotIn(vs ...int) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldDelayMinutes, vs...))
}

// DelayMinutesGT applies the GT predicate on the "delay_minutes" field.
func DelayMinutesGT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldDelayMinutes, v))
}

// DelayMinutesGTE applies the GTE predicate on the "delay_minutes" field.
func DelayMinutesGTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldDelayMinutes, v))
}

// DelayMinutesLT applies the LT predicate on the "delay_minutes" field.
func DelayMinutesLT(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldDelayMinutes, v))
}

// DelayMinutesLTE applies the LTE predicate on the "delay_minutes" field.
func DelayMinutesLTE(v int) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldDelayMinutes, v))
}

// ForceBookedEQ applies the EQ predicate on the "force_booked" field.
func ForceBookedEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldForceBooked, v))
}

// ForceBookedNEQ applies the NEQ predicate on the "force_booked" field.
func ForceBookedNEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldForceBooked, v))
}

// RejoinedEQ applies the EQ predicate on the "rejoined" field.
func RejoinedEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldRejoined, v))
}

// RejoinedNEQ applies the NEQ predicate on the "rejoined" field.
func RejoinedNEQ(v bool) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldRejoined, v))
}

// ConfirmedAtEQ applies the EQ predicate on the "confirmed_at" field.
func ConfirmedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldConfirmedAt, v))
}

// ConfirmedAtNEQ applies the NEQ predicate on the "confirmed_at" field.
func ConfirmedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldConfirmedAt, v))
}

// ConfirmedAtIn applies the In predicate on the "confirmed_at" field.
func ConfirmedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtNotIn applies the NotIn predicate on the "confirmed_at" field.
func ConfirmedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldConfirmedAt, vs...))
}

// ConfirmedAtGT applies the GT predicate on the "confirmed_at" field.
func ConfirmedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldConfirmedAt, v))
}

// ConfirmedAtGTE applies the GTE predicate on the "confirmed_at" field.
func ConfirmedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldConfirmedAt, v))
}

// ConfirmedAtLT applies the LT predicate on the "confirmed_at" field.
func ConfirmedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldConfirmedAt, v))
}

// ConfirmedAtLTE applies the LTE predicate on the "confirmed_at" field.
func ConfirmedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldConfirmedAt, v))
}

// ConfirmedAtIsNil applies the IsNil predicate on the "confirmed_at" field.
func ConfirmedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldConfirmedAt))
}

// ConfirmedAtNotNil applies the NotNil predicate on the "confirmed_at" field.
func ConfirmedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldConfirmedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCompletedAt))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancelledAt))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.Appointment {
	return predicate.Appointment(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.Appointment {
	return predicate.Appointment(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.Appointment {
	return predicate.Appointment(sql.FieldContainsFold(FieldCancellationReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Appointment) predicate.Appointment {
	return predicate.Appointment(sql.NotPredicates(p))
}
