// Code generated by ent, DO NOT EDIT.

package clinic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the clinic type in the database.
	Label = "clinic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldClassicNumbering holds the string denoting the classic_numbering field in the database.
	FieldClassicNumbering = "classic_numbering"
	// FieldRejoinAfter holds the string denoting the rejoin_after field in the database.
	FieldRejoinAfter = "rejoin_after"
	// FieldCutOffMinutes holds the string denoting the cut_off_minutes field in the database.
	FieldCutOffMinutes = "cut_off_minutes"
	// FieldNoShowMinutes holds the string denoting the no_show_minutes field in the database.
	FieldNoShowMinutes = "no_show_minutes"
	// FieldContactEmail holds the string denoting the contact_email field in the database.
	FieldContactEmail = "contact_email"
	// FieldContactPhone holds the string denoting the contact_phone field in the database.
	FieldContactPhone = "contact_phone"
	// Table holds the table name of the clinic in the database.
	Table = "clinics"
)

// Columns holds all SQL columns for clinic fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldSlug,
	FieldTimezone,
	FieldClassicNumbering,
	FieldRejoinAfter,
	FieldCutOffMinutes,
	FieldNoShowMinutes,
	FieldContactEmail,
	FieldContactPhone,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultClassicNumbering holds the default value on creation for the "classic_numbering" field.
	DefaultClassicNumbering bool
	// DefaultRejoinAfter holds the default value on creation for the "rejoin_after" field.
	DefaultRejoinAfter int
	// DefaultCutOffMinutes holds the default value on creation for the "cut_off_minutes" field.
	DefaultCutOffMinutes int
	// DefaultNoShowMinutes holds the default value on creation for the "no_show_minutes" field.
	DefaultNoShowMinutes int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Clinic queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByClassicNumbering orders the results by the classic_numbering field.
func ByClassicNumbering(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassicNumbering, opts...).ToFunc()
}

// ByRejoinAfter orders the results by the rejoin_after field.
func ByRejoinAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejoinAfter, opts...).ToFunc()
}

// ByCutOffMinutes orders the results by the cut_off_minutes field.
func ByCutOffMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCutOffMinutes, opts...).ToFunc()
}

// ByNoShowMinutes orders the results by the no_show_minutes field.
func ByNoShowMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoShowMinutes, opts...).ToFunc()
}

// ByContactEmail orders the results by the contact_email field.
func ByContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactEmail, opts...).ToFunc()
}

// ByContactPhone orders the results by the contact_phone field.
func ByContactPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactPhone, opts...).ToFunc()
}
