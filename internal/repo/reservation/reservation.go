// Code generated by ent, DO NOT EDIT.

package reservation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the reservation type in the database.
	Label = "reservation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldSlotIndex holds the string denoting the slot_index field in the database.
	FieldSlotIndex = "slot_index"
	// FieldSlotTime holds the string denoting the slot_time field in the database.
	FieldSlotTime = "slot_time"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldPatientPhone holds the string denoting the patient_phone field in the database.
	FieldPatientPhone = "patient_phone"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// Table holds the table name of the reservation in the database.
	Table = "reservations"
)

// Columns holds all SQL columns for reservation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDoctorID,
	FieldDay,
	FieldSlotIndex,
	FieldSlotTime,
	FieldStatus,
	FieldExpiresAt,
	FieldPatientName,
	FieldPatientPhone,
	FieldKind,
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
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(string) error
	// SlotIndexValidator is a validator for the "slot_index" field. It is called by the builders before save.
	SlotIndexValidator func(int) error
	// PatientNameValidator is a validator for the "patient_name" field. It is called by the builders before save.
	PatientNameValidator func(string) error
	// PatientPhoneValidator is a validator for the "patient_phone" field. It is called by the builders before save.
	PatientPhoneValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusHeld is the default value of the Status enum.
const DefaultStatus = StatusHeld

// Status values.
const (
	StatusHeld   Status = "held"
	StatusBooked Status = "booked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusHeld, StatusBooked:
		return nil
	default:
		return fmt.Errorf("reservation: invalid enum value for status field: %q", s)
	}
}

// Kind defines the type for the "kind" enum field.
type Kind string

// KindWalkin is the default value of the Kind enum.
const DefaultKind = KindWalkin

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
		return fmt.Errorf("reservation: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Reservation queries.
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

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// BySlotIndex orders the results by the slot_index field.
func BySlotIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotIndex, opts...).ToFunc()
}

// BySlotTime orders the results by the slot_time field.
func BySlotTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotTime, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByPatientPhone orders the results by the patient_phone field.
func ByPatientPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientPhone, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}
