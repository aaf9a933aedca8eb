// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the doctor type in the database.
	Label = "doctor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSpecialty holds the string denoting the specialty field in the database.
	FieldSpecialty = "specialty"
	// FieldTokenPrefix holds the string denoting the token_prefix field in the database.
	FieldTokenPrefix = "token_prefix"
	// FieldConsultMinutes holds the string denoting the consult_minutes field in the database.
	FieldConsultMinutes = "consult_minutes"
	// FieldAvgConsultMinutes holds the string denoting the avg_consult_minutes field in the database.
	FieldAvgConsultMinutes = "avg_consult_minutes"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldInConsultation holds the string denoting the in_consultation field in the database.
	FieldInConsultation = "in_consultation"
	// FieldConsultationStartedAt holds the string denoting the consultation_started_at field in the database.
	FieldConsultationStartedAt = "consultation_started_at"
	// FieldCompletedCount holds the string denoting the completed_count field in the database.
	FieldCompletedCount = "completed_count"
	// FieldCompletedDay holds the string denoting the completed_day field in the database.
	FieldCompletedDay = "completed_day"
	// FieldDelayMinutes holds the string denoting the delay_minutes field in the database.
	FieldDelayMinutes = "delay_minutes"
	// Table holds the table name of the doctor in the database.
	Table = "doctors"
)

// Columns holds all SQL columns for doctor fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldName,
	FieldSpecialty,
	FieldTokenPrefix,
	FieldConsultMinutes,
	FieldAvgConsultMinutes,
	FieldActive,
	FieldInConsultation,
	FieldConsultationStartedAt,
	FieldCompletedCount,
	FieldCompletedDay,
	FieldDelayMinutes,
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
	// DefaultTokenPrefix holds the default value on creation for the "token_prefix" field.
	DefaultTokenPrefix string
	// TokenPrefixValidator is a validator for the "token_prefix" field. It is called by the builders before save.
	TokenPrefixValidator func(string) error
	// DefaultConsultMinutes holds the default value on creation for the "consult_minutes" field.
	DefaultConsultMinutes int
	// DefaultAvgConsultMinutes holds the default value on creation for the "avg_consult_minutes" field.
	DefaultAvgConsultMinutes int
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultInConsultation holds the default value on creation for the "in_consultation" field.
	DefaultInConsultation bool
	// DefaultCompletedCount holds the default value on creation for the "completed_count" field.
	DefaultCompletedCount int
	// DefaultDelayMinutes holds the default value on creation for the "delay_minutes" field.
	DefaultDelayMinutes int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Doctor queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySpecialty orders the results by the specialty field.
func BySpecialty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialty, opts...).ToFunc()
}

// ByTokenPrefix orders the results by the token_prefix field.
func ByTokenPrefix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenPrefix, opts...).ToFunc()
}

// ByConsultMinutes orders the results by the consult_minutes field.
func ByConsultMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultMinutes, opts...).ToFunc()
}

// ByAvgConsultMinutes orders the results by the avg_consult_minutes field.
func ByAvgConsultMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgConsultMinutes, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByInConsultation orders the results by the in_consultation field.
func ByInConsultation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInConsultation, opts...).ToFunc()
}

// ByConsultationStartedAt orders the results by the consultation_started_at field.
func ByConsultationStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationStartedAt, opts...).ToFunc()
}

// ByCompletedCount orders the results by the completed_count field.
func ByCompletedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedCount, opts...).ToFunc()
}

// ByCompletedDay orders the results by the completed_day field.
func ByCompletedDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedDay, opts...).ToFunc()
}

// ByDelayMinutes orders the results by the delay_minutes field.
func ByDelayMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayMinutes, opts...).ToFunc()
}
