// Code generated by ent, DO NOT EDIT.

package dayoverride

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldDoctorID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldDay, v))
}

// BreakStart applies equality check predicate on the "break_start" field. It's identical to BreakStartEQ.
func BreakStart(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldBreakStart, v))
}

// BreakEnd applies equality check predicate on the "break_end" field. It's identical to BreakEndEQ.
func BreakEnd(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldBreakEnd, v))
}

// SessionIndex applies equality check predicate on the "session_index" field. It's identical to SessionIndexEQ.
func SessionIndex(v int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldSessionIndex, v))
}

// OriginalEnd applies equality check predicate on the "original_end" field. It's identical to OriginalEndEQ.
func OriginalEnd(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldOriginalEnd, v))
}

// NewEnd applies equality check predicate on the "new_end" field. It's identical to NewEndEQ.
func NewEnd(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldNewEnd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldDoctorID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldDay, v))
}

// DayContains applies the Contains predicate on the "day" field.
func DayContains(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldContains(FieldDay, v))
}

// DayHasPrefix applies the HasPrefix predicate on the "day" field.
func DayHasPrefix(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldHasPrefix(FieldDay, v))
}

// DayHasSuffix applies the HasSuffix predicate on the "day" field.
func DayHasSuffix(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldHasSuffix(FieldDay, v))
}

// DayEqualFold applies the EqualFold predicate on the "day" field.
func DayEqualFold(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEqualFold(FieldDay, v))
}

// DayContainsFold applies the ContainsFold predicate on the "day" field.
func DayContainsFold(v string) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldContainsFold(FieldDay, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldKind, vs...))
}

// BreakStartEQ applies the EQ predicate on the "break_start" field.
func BreakStartEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldBreakStart, v))
}

// BreakStartNEQ applies the NEQ predicate on the "break_start" field.
func BreakStartNEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldBreakStart, v))
}

// BreakStartIn applies the In predicate on the "break_start" field.
func BreakStartIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldBreakStart, vs...))
}

// BreakStartNotIn applies the NotIn predicate on the "break_start" field.
func BreakStartNotIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldBreakStart, vs...))
}

// BreakStartGT applies the GT predicate on the "break_start" field.
func BreakStartGT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldBreakStart, v))
}

// BreakStartGTE applies the GTE predicate on the "break_start" field.
func BreakStartGTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldBreakStart, v))
}

// BreakStartLT applies the LT predicate on the "break_start" field.
func BreakStartLT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldBreakStart, v))
}

// BreakStartLTE applies the LTE predicate on the "break_start" field.
func BreakStartLTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldBreakStart, v))
}

// BreakStartIsNil applies the IsNil predicate on the "break_start" field.
func BreakStartIsNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIsNull(FieldBreakStart))
}

// BreakStartNotNil applies the NotNil predicate on the "break_start" field.
func BreakStartNotNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotNull(FieldBreakStart))
}

// BreakEndEQ applies the EQ predicate on the "break_end" field.
func BreakEndEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldBreakEnd, v))
}

// BreakEndNEQ applies the NEQ predicate on the "break_end" field.
func BreakEndNEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldBreakEnd, v))
}

// BreakEndIn applies the In predicate on the "break_end" field.
func BreakEndIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldBreakEnd, vs...))
}

// BreakEndNotIn applies the NotIn predicate on the "break_end" field.
func BreakEndNotIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldBreakEnd, vs...))
}

// BreakEndGT applies the GT predicate on the "break_end" field.
func BreakEndGT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldBreakEnd, v))
}

// BreakEndGTE applies the GTE predicate on the "break_end" field.
func BreakEndGTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldBreakEnd, v))
}

// BreakEndLT applies the LT predicate on the "break_end" field.
func BreakEndLT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldBreakEnd, v))
}

// BreakEndLTE applies the LTE predicate on the "break_end" field.
func BreakEndLTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldBreakEnd, v))
}

// BreakEndIsNil applies the IsNil predicate on the "break_end" field.
func BreakEndIsNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIsNull(FieldBreakEnd))
}

// BreakEndNotNil applies the NotNil predicate on the "break_end" field.
func BreakEndNotNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotNull(FieldBreakEnd))
}

// SessionIndexEQ applies the EQ predicate on the "session_index" field.
func SessionIndexEQ(v int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldSessionIndex, v))
}

// SessionIndexNEQ applies the NEQ predicate on the "session_index" field.
func SessionIndexNEQ(v int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldSessionIndex, v))
}

// SessionIndexIn applies the In predicate on the "session_index" field.
func SessionIndexIn(vs ...int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldSessionIndex, vs...))
}

// SessionIndexNotIn applies the NotIn predicate on the "session_index" field.
func SessionIndexNotIn(vs ...int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldSessionIndex, vs...))
}

// SessionIndexGT applies the GT predicate on the "session_index" field.
func SessionIndexGT(v int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldSessionIndex, v))
}

// SessionIndexGTE applies the GTE predicate on the "session_index" field.
func SessionIndexGTE(v int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldSessionIndex, v))
}

// SessionIndexLT applies the LT predicate on the "session_index" field.
func SessionIndexLT(v int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldSessionIndex, v))
}

// SessionIndexLTE applies the LTE predicate on the "session_index" field.
func SessionIndexLTE(v int) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldSessionIndex, v))
}

// SessionIndexIsNil applies the IsNil predicate on the "session_index" field.
func SessionIndexIsNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIsNull(FieldSessionIndex))
}

// SessionIndexNotNil applies the NotNil predicate on the "session_index" field.
func SessionIndexNotNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotNull(FieldSessionIndex))
}

// OriginalEndEQ applies the EQ predicate on the "original_end" field.
func OriginalEndEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldOriginalEnd, v))
}

// OriginalEndNEQ applies the NEQ predicate on the "original_end" field.
func OriginalEndNEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldOriginalEnd, v))
}

// OriginalEndIn applies the In predicate on the "original_end" field.
func OriginalEndIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldOriginalEnd, vs...))
}

// OriginalEndNotIn applies the NotIn predicate on the "original_end" field.
func OriginalEndNotIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldOriginalEnd, vs...))
}

// OriginalEndGT applies the GT predicate on the "original_end" field.
func OriginalEndGT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldOriginalEnd, v))
}

// OriginalEndGTE applies the GTE predicate on the "original_end" field.
func OriginalEndGTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldOriginalEnd, v))
}

// OriginalEndLT applies the LT predicate on the "original_end" field.
func OriginalEndLT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldOriginalEnd, v))
}

// OriginalEndLTE applies the LTE predicate on the "original_end" field.
func OriginalEndLTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldOriginalEnd, v))
}

// OriginalEndIsNil applies the IsNil predicate on the "original_end" field.
func OriginalEndIsNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIsNull(FieldOriginalEnd))
}

// OriginalEndNotNil applies the NotNil predicate on the "original_end" field.
func OriginalEndNotNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotNull(FieldOriginalEnd))
}

// NewEndEQ applies the EQ predicate on the "new_end" field.
func NewEndEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldEQ(FieldNewEnd, v))
}

// NewEndNEQ applies the NEQ predicate on the "new_end" field.
func NewEndNEQ(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNEQ(FieldNewEnd, v))
}

// NewEndIn applies the In predicate on the "new_end" field.
func NewEndIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIn(FieldNewEnd, vs...))
}

// NewEndNotIn applies the NotIn predicate on the "new_end" field.
func NewEndNotIn(vs ...time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotIn(FieldNewEnd, vs...))
}

// NewEndGT applies the GT predicate on the "new_end" field.
func NewEndGT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGT(FieldNewEnd, v))
}

// NewEndGTE applies the GTE predicate on the "new_end" field.
func NewEndGTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldGTE(FieldNewEnd, v))
}

// NewEndLT applies the LT predicate on the "new_end" field.
func NewEndLT(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLT(FieldNewEnd, v))
}

// NewEndLTE applies the LTE predicate on the "new_end" field.
func NewEndLTE(v time.Time) predicate.DayOverride {
	return predicate.DayOverride(sql.FieldLTE(FieldNewEnd, v))
}

// NewEndIsNil applies the IsNil predicate on the "new_end" field.
func NewEndIsNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldIsNull(FieldNewEnd))
}

// NewEndNotNil applies the NotNil predicate on the "new_end" field.
func NewEndNotNil() predicate.DayOverride {
	return predicate.DayOverride(sql.FieldNotNull(FieldNewEnd))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DayOverride) predicate.DayOverride {
	return predicate.DayOverride(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DayOverride) predicate.DayOverride {
	return predicate.DayOverride(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DayOverride) predicate.DayOverride {
	return predicate.DayOverride(sql.NotPredicates(p))
}
