// Code generated by ent, DO NOT EDIT.

package appointment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the appointment type in the database.
	Label = "appointment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientPhone holds the string denoting the patient_phone field in the database.
	FieldPatientPhone = "patient_phone"
	// FieldPatientEmail holds the string denoting the patient_email field in the database.
	FieldPatientEmail = "patient_email"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldSlotIndex holds the string denoting the slot_index field in the database.
	FieldSlotIndex = "slot_index"
	// FieldSessionIndex holds the string denoting the session_index field in the database.
	FieldSessionIndex = "session_index"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTokenNumber holds the string denoting the token_number field in the database.
	FieldTokenNumber = "token_number"
	// FieldNumericToken holds the string denoting the numeric_token field in the database.
	FieldNumericToken = "numeric_token"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCutOffTime holds the string denoting the cut_off_time field in the database.
	FieldCutOffTime = "cut_off_time"
	// FieldNoShowTime holds the string denoting the no_show_time field in the database.
	FieldNoShowTime = "no_show_time"
	// FieldDelayMinutes holds the string denoting the delay_minutes field in the database.
	FieldDelayMinutes = "delay_minutes"
	// FieldForceBooked holds the string denoting the force_booked field in the database.
	FieldForceBooked = "force_booked"
	// FieldRejoined holds the string denoting the rejoined field in the database.
	FieldRejoined = "rejoined"
	// FieldConfirmedAt holds the string denoting the confirmed_at field in the database.
	FieldConfirmedAt = "confirmed_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCancellationReason holds the string denoting the cancellation_reason field in the database.
	FieldCancellationReason = "cancellation_reason"
	// Table holds the table name of the appointment in the database.
	Table = "appointments"
)

// Columns holds all SQL columns for appointment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldDoctorID,
	FieldPatientName,
	FieldPatientPhone,
	FieldPatientEmail,
	FieldDay,
	FieldSlotIndex,
	FieldSessionIndex,
	FieldStartTime,
	FieldKind,
	FieldTokenNumber,
	FieldNumericToken,
	FieldStatus,
	FieldCutOffTime,
	FieldNoShowTime,
	FieldDelayMinutes,
	FieldForceBooked,
	FieldRejoined,
	FieldConfirmedAt,
	FieldCompletedAt,
	FieldCancelledAt,
	FieldCancellationReason,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	PatientNameValidator func(string) error
	// PatientPhoneValidator is a validator for the "patient_phone" field. It is called by the builders before save.
	PatientPhoneValidator func(string) error
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(string) error
	// SlotIndexValidator is a validator for the "slot_index" field. It is called by the builders before save.
	SlotIndexValidator func(int) error
	// SessionIndexValidator is a validator for the "session_index" field. It is called by the builders before save.
	SessionIndexValidator func(int) error
	// TokenNumberValidator is a validator for the "token_number" field. It is called by the builders before save.
	TokenNumberValidator func(string) error
	// NumericTokenValidator is a validator for the "numeric_token" field. It is called by the builders before save.
	NumericTokenValidator func(int) error
	// DefaultDelayMinutes holds the default value on creation for the "delay_minutes" field.
	DefaultDelayMinutes int
	// DefaultForceBooked holds the default value on creation for the "force_booked" field.
	DefaultForceBooked bool
	// DefaultRejoined holds the default value on creation for the "rejoined" field.
	DefaultRejoined bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindWalkin  Kind = "walkin"
	KindAdvance Kind = "advance"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindWalkin, KindAdvance:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for kind field: %q", k)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusSkipped   Status = "skipped"
	StatusNoShow    Status = "no_show"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusConfirmed, StatusSkipped, StatusNoShow, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("appointment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Appointment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientPhone orders the results by the patient_phone field.
func ByPatientPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientPhone, opts...).ToFunc()
}

// ByPatientEmail orders the results by the patient_email field.
func ByPatientEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientEmail, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// BySlotIndex orders the results by the slot_index field.
func BySlotIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotIndex, opts...).ToFunc()
}

// BySessionIndex orders the results by the session_index field.
func BySessionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionIndex, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTokenNumber orders the results by the token_number field.
func ByTokenNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenNumber, opts...).ToFunc()
}

// ByNumericToken orders the results by the numeric_token field.
func ByNumericToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumericToken, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCutOffTime orders the results by the cut_off_time field.
func ByCutOffTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCutOffTime, opts...).ToFunc()
}

// ByNoShowTime orders the results by the no_show_time field.
func ByNoShowTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoShowTime, opts...).ToFunc()
}

// ByDelayMinutes orders the results by the delay_minutes field.
func ByDelayMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayMinutes, opts...).ToFunc()
}

// ByForceBooked orders the results by the force_booked field.
func ByForceBooked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForceBooked, opts...).ToFunc()
}

// ByRejoined orders the results by the rejoined field.
func ByRejoined(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejoined, opts...).ToFunc()
}

// ByConfirmedAt orders the results by the confirmed_at field.
func ByConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCancellationReason orders the results by the cancellation_reason field.
func ByCancellationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationReason, opts...).ToFunc()
}
