// Code generated by ent, DO NOT EDIT.

package dayoverride

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dayoverride type in the database.
	Label = "day_override"
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
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldBreakStart holds the string denoting the break_start field in the database.
	FieldBreakStart = "break_start"
	// FieldBreakEnd holds the string denoting the break_end field in the database.
	FieldBreakEnd = "break_end"
	// FieldSessionIndex holds the string denoting the session_index field in the database.
	FieldSessionIndex = "session_index"
	// FieldOriginalEnd holds the string denoting the original_end field in the database.
	FieldOriginalEnd = "original_end"
	// FieldNewEnd holds the string denoting the new_end field in the database.
	FieldNewEnd = "new_end"
	// Table holds the table name of the dayoverride in the database.
	Table = "day_overrides"
)

// Columns holds all SQL columns for dayoverride fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDoctorID,
	FieldDay,
	FieldKind,
	FieldBreakStart,
	FieldBreakEnd,
	FieldSessionIndex,
	FieldOriginalEnd,
	FieldNewEnd,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindBreak     Kind = "break"
	KindLeave     Kind = "leave"
	KindExtension Kind = "extension"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindBreak, KindLeave, KindExtension:
		return nil
	default:
		return fmt.Errorf("dayoverride: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the DayOverride queries.
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

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByBreakStart orders the results by the break_start field.
func ByBreakStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakStart, opts...).ToFunc()
}

// ByBreakEnd orders the results by the break_end field.
func ByBreakEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakEnd, opts...).ToFunc()
}

// BySessionIndex orders the results by the session_index field.
func BySessionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionIndex, opts...).ToFunc()
}

// ByOriginalEnd orders the results by the original_end field.
func ByOriginalEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalEnd, opts...).ToFunc()
}

// ByNewEnd orders the results by the new_end field.
func ByNewEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewEnd, opts...).ToFunc()
}
