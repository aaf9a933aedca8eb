// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/appointment"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AppointmentUpdate) SetClinicID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableClinicID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdate) SetDoctorID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *AppointmentUpdate) SetPatientName(v string) *AppointmentUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientPhone sets the "patient_phone" field.
func (_u *AppointmentUpdate) SetPatientPhone(v string) *AppointmentUpdate {
	_u.mutation.SetPatientPhone(v)
	return _u
}

// SetNillablePatientPhone sets the "patient_phone" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientPhone(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientPhone(*v)
	}
	return _u
}

// SetPatientEmail sets the "patient_email" field.
func (_u *AppointmentUpdate) SetPatientEmail(v string) *AppointmentUpdate {
	_u.mutation.SetPatientEmail(v)
	return _u
}

// SetNillablePatientEmail sets the "patient_email" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientEmail(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientEmail(*v)
	}
	return _u
}

// ClearPatientEmail clears the value of the "patient_email" field.
func (_u *AppointmentUpdate) ClearPatientEmail() *AppointmentUpdate {
	_u.mutation.ClearPatientEmail()
	return _u
}

// SetDay sets the "day" field.
func (_u *AppointmentUpdate) SetDay(v string) *AppointmentUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDay(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetSlotIndex sets the "slot_index" field.
func (_u *AppointmentUpdate) SetSlotIndex(v int) *AppointmentUpdate {
	_u.mutation.ResetSlotIndex()
	_u.mutation.SetSlotIndex(v)
	return _u
}

// SetNillableSlotIndex sets the "slot_index" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableSlotIndex(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetSlotIndex(*v)
	}
	return _u
}

// AddSlotIndex adds value to the "slot_index" field.
func (_u *AppointmentUpdate) AddSlotIndex(v int) *AppointmentUpdate {
	_u.mutation.AddSlotIndex(v)
	return _u
}

// SetSessionIndex sets the "session_index" field.
func (_u *AppointmentUpdate) SetSessionIndex(v int) *AppointmentUpdate {
	_u.mutation.ResetSessionIndex()
	_u.mutation.SetSessionIndex(v)
	return _u
}

// SetNillableSessionIndex sets the "session_index" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableSessionIndex(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetSessionIndex(*v)
	}
	return _u
}

// AddSessionIndex adds value to the "session_index" field.
func (_u *AppointmentUpdate) AddSessionIndex(v int) *AppointmentUpdate {
	_u.mutation.AddSessionIndex(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdate) SetStartTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AppointmentUpdate) SetKind(v appointment.Kind) *AppointmentUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableKind(v *appointment.Kind) *AppointmentUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTokenNumber sets the "token_number" field.
func (_u *AppointmentUpdate) SetTokenNumber(v string) *AppointmentUpdate {
	_u.mutation.SetTokenNumber(v)
	return _u
}

// SetNillableTokenNumber sets the "token_number" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTokenNumber(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetTokenNumber(*v)
	}
	return _u
}

// SetNumericToken sets the "numeric_token" field.
func (_u *AppointmentUpdate) SetNumericToken(v int) *AppointmentUpdate {
	_u.mutation.ResetNumericToken()
	_u.mutation.SetNumericToken(v)
	return _u
}

// SetNillableNumericToken sets the "numeric_token" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNumericToken(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetNumericToken(*v)
	}
	return _u
}

// AddNumericToken adds value to the "numeric_token" field.
func (_u *AppointmentUpdate) AddNumericToken(v int) *AppointmentUpdate {
	_u.mutation.AddNumericToken(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCutOffTime sets the "cut_off_time" field.
func (_u *AppointmentUpdate) SetCutOffTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCutOffTime(v)
	return _u
}

// SetNillableCutOffTime sets the "cut_off_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCutOffTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCutOffTime(*v)
	}
	return _u
}

// SetNoShowTime sets the "no_show_time" field.
func (_u *AppointmentUpdate) SetNoShowTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetNoShowTime(v)
	return _u
}

// SetNillableNoShowTime sets the "no_show_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNoShowTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetNoShowTime(*v)
	}
	return _u
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_u *AppointmentUpdate) SetDelayMinutes(v int) *AppointmentUpdate {
	_u.mutation.ResetDelayMinutes()
	_u.mutation.SetDelayMinutes(v)
	return _u
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDelayMinutes(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetDelayMinutes(*v)
	}
	return _u
}

// AddDelayMinutes adds value to the "delay_minutes" field.
func (_u *AppointmentUpdate) AddDelayMinutes(v int) *AppointmentUpdate {
	_u.mutation.AddDelayMinutes(v)
	return _u
}

// SetForceBooked sets the "force_booked" field.
func (_u *AppointmentUpdate) SetForceBooked(v bool) *AppointmentUpdate {
	_u.mutation.SetForceBooked(v)
	return _u
}

// SetNillableForceBooked sets the "force_booked" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableForceBooked(v *bool) *AppointmentUpdate {
	if v != nil {
		_u.SetForceBooked(*v)
	}
	return _u
}

// SetRejoined sets the "rejoined" field.
func (_u *AppointmentUpdate) SetRejoined(v bool) *AppointmentUpdate {
	_u.mutation.SetRejoined(v)
	return _u
}

// SetNillableRejoined sets the "rejoined" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableRejoined(v *bool) *AppointmentUpdate {
	if v != nil {
		_u.SetRejoined(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *AppointmentUpdate) SetConfirmedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableConfirmedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *AppointmentUpdate) ClearConfirmedAt() *AppointmentUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdate) SetCompletedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCompletedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdate) ClearCompletedAt() *AppointmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdate) SetCancelledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdate) ClearCancelledAt() *AppointmentUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdate) SetCancellationReason(v string) *AppointmentUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancellationReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdate) ClearCancellationReason() *AppointmentUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := appointment.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientPhone(); ok {
		if err := appointment.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Appointment.patient_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := appointment.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "Appointment.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotIndex(); ok {
		if err := appointment.SlotIndexValidator(v); err != nil {
			return &ValidationError{Name: "slot_index", err: fmt.Errorf(`repo: validator failed for field "Appointment.slot_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionIndex(); ok {
		if err := appointment.SessionIndexValidator(v); err != nil {
			return &ValidationError{Name: "session_index", err: fmt.Errorf(`repo: validator failed for field "Appointment.session_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := appointment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Appointment.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokenNumber(); ok {
		if err := appointment.TokenNumberValidator(v); err != nil {
			return &ValidationError{Name: "token_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.token_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumericToken(); ok {
		if err := appointment.NumericTokenValidator(v); err != nil {
			return &ValidationError{Name: "numeric_token", err: fmt.Errorf(`repo: validator failed for field "Appointment.numeric_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(appointment.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientPhone(); ok {
		_spec.SetField(appointment.FieldPatientPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientEmail(); ok {
		_spec.SetField(appointment.FieldPatientEmail, field.TypeString, value)
	}
	if _u.mutation.PatientEmailCleared() {
		_spec.ClearField(appointment.FieldPatientEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(appointment.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotIndex(); ok {
		_spec.SetField(appointment.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotIndex(); ok {
		_spec.AddField(appointment.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionIndex(); ok {
		_spec.SetField(appointment.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionIndex(); ok {
		_spec.AddField(appointment.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(appointment.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TokenNumber(); ok {
		_spec.SetField(appointment.FieldTokenNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumericToken(); ok {
		_spec.SetField(appointment.FieldNumericToken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumericToken(); ok {
		_spec.AddField(appointment.FieldNumericToken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CutOffTime(); ok {
		_spec.SetField(appointment.FieldCutOffTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NoShowTime(); ok {
		_spec.SetField(appointment.FieldNoShowTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DelayMinutes(); ok {
		_spec.SetField(appointment.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayMinutes(); ok {
		_spec.AddField(appointment.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ForceBooked(); ok {
		_spec.SetField(appointment.FieldForceBooked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rejoined(); ok {
		_spec.SetField(appointment.FieldRejoined, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(appointment.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AppointmentUpdateOne) SetClinicID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableClinicID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdateOne) SetDoctorID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *AppointmentUpdateOne) SetPatientName(v string) *AppointmentUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientPhone sets the "patient_phone" field.
func (_u *AppointmentUpdateOne) SetPatientPhone(v string) *AppointmentUpdateOne {
	_u.mutation.SetPatientPhone(v)
	return _u
}

// SetNillablePatientPhone sets the "patient_phone" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientPhone(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientPhone(*v)
	}
	return _u
}

// SetPatientEmail sets the "patient_email" field.
func (_u *AppointmentUpdateOne) SetPatientEmail(v string) *AppointmentUpdateOne {
	_u.mutation.SetPatientEmail(v)
	return _u
}

// SetNillablePatientEmail sets the "patient_email" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientEmail(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientEmail(*v)
	}
	return _u
}

// ClearPatientEmail clears the value of the "patient_email" field.
func (_u *AppointmentUpdateOne) ClearPatientEmail() *AppointmentUpdateOne {
	_u.mutation.ClearPatientEmail()
	return _u
}

// SetDay sets the "day" field.
func (_u *AppointmentUpdateOne) SetDay(v string) *AppointmentUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDay(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetSlotIndex sets the "slot_index" field.
func (_u *AppointmentUpdateOne) SetSlotIndex(v int) *AppointmentUpdateOne {
	_u.mutation.ResetSlotIndex()
	_u.mutation.SetSlotIndex(v)
	return _u
}

// SetNillableSlotIndex sets the "slot_index" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableSlotIndex(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetSlotIndex(*v)
	}
	return _u
}

// AddSlotIndex adds value to the "slot_index" field.
func (_u *AppointmentUpdateOne) AddSlotIndex(v int) *AppointmentUpdateOne {
	_u.mutation.AddSlotIndex(v)
	return _u
}

// SetSessionIndex sets the "session_index" field.
func (_u *AppointmentUpdateOne) SetSessionIndex(v int) *AppointmentUpdateOne {
	_u.mutation.ResetSessionIndex()
	_u.mutation.SetSessionIndex(v)
	return _u
}

// SetNillableSessionIndex sets the "session_index" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableSessionIndex(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetSessionIndex(*v)
	}
	return _u
}

// AddSessionIndex adds value to the "session_index" field.
func (_u *AppointmentUpdateOne) AddSessionIndex(v int) *AppointmentUpdateOne {
	_u.mutation.AddSessionIndex(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdateOne) SetStartTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AppointmentUpdateOne) SetKind(v appointment.Kind) *AppointmentUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableKind(v *appointment.Kind) *AppointmentUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTokenNumber sets the "token_number" field.
func (_u *AppointmentUpdateOne) SetTokenNumber(v string) *AppointmentUpdateOne {
	_u.mutation.SetTokenNumber(v)
	return _u
}

// SetNillableTokenNumber sets the "token_number" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTokenNumber(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTokenNumber(*v)
	}
	return _u
}

// SetNumericToken sets the "numeric_token" field.
func (_u *AppointmentUpdateOne) SetNumericToken(v int) *AppointmentUpdateOne {
	_u.mutation.ResetNumericToken()
	_u.mutation.SetNumericToken(v)
	return _u
}

// SetNillableNumericToken sets the "numeric_token" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNumericToken(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNumericToken(*v)
	}
	return _u
}

// AddNumericToken adds value to the "numeric_token" field.
func (_u *AppointmentUpdateOne) AddNumericToken(v int) *AppointmentUpdateOne {
	_u.mutation.AddNumericToken(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCutOffTime sets the "cut_off_time" field.
func (_u *AppointmentUpdateOne) SetCutOffTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCutOffTime(v)
	return _u
}

// SetNillableCutOffTime sets the "cut_off_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCutOffTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCutOffTime(*v)
	}
	return _u
}

// SetNoShowTime sets the "no_show_time" field.
func (_u *AppointmentUpdateOne) SetNoShowTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetNoShowTime(v)
	return _u
}

// SetNillableNoShowTime sets the "no_show_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNoShowTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNoShowTime(*v)
	}
	return _u
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_u *AppointmentUpdateOne) SetDelayMinutes(v int) *AppointmentUpdateOne {
	_u.mutation.ResetDelayMinutes()
	_u.mutation.SetDelayMinutes(v)
	return _u
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDelayMinutes(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDelayMinutes(*v)
	}
	return _u
}

// AddDelayMinutes adds value to the "delay_minutes" field.
func (_u *AppointmentUpdateOne) AddDelayMinutes(v int) *AppointmentUpdateOne {
	_u.mutation.AddDelayMinutes(v)
	return _u
}

// SetForceBooked sets the "force_booked" field.
func (_u *AppointmentUpdateOne) SetForceBooked(v bool) *AppointmentUpdateOne {
	_u.mutation.SetForceBooked(v)
	return _u
}

// SetNillableForceBooked sets the "force_booked" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableForceBooked(v *bool) *AppointmentUpdateOne {
	if v != nil {
		_u.SetForceBooked(*v)
	}
	return _u
}

// SetRejoined sets the "rejoined" field.
func (_u *AppointmentUpdateOne) SetRejoined(v bool) *AppointmentUpdateOne {
	_u.mutation.SetRejoined(v)
	return _u
}

// SetNillableRejoined sets the "rejoined" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableRejoined(v *bool) *AppointmentUpdateOne {
	if v != nil {
		_u.SetRejoined(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *AppointmentUpdateOne) SetConfirmedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableConfirmedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *AppointmentUpdateOne) ClearConfirmedAt() *AppointmentUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdateOne) SetCompletedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCompletedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdateOne) ClearCompletedAt() *AppointmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdateOne) SetCancelledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdateOne) ClearCancelledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) SetCancellationReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancellationReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *AppointmentUpdateOne) ClearCancellationReason() *AppointmentUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.PatientName(); ok {
		if err := appointment.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientPhone(); ok {
		if err := appointment.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Appointment.patient_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := appointment.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "Appointment.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotIndex(); ok {
		if err := appointment.SlotIndexValidator(v); err != nil {
			return &ValidationError{Name: "slot_index", err: fmt.Errorf(`repo: validator failed for field "Appointment.slot_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionIndex(); ok {
		if err := appointment.SessionIndexValidator(v); err != nil {
			return &ValidationError{Name: "session_index", err: fmt.Errorf(`repo: validator failed for field "Appointment.session_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := appointment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Appointment.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokenNumber(); ok {
		if err := appointment.TokenNumberValidator(v); err != nil {
			return &ValidationError{Name: "token_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.token_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumericToken(); ok {
		if err := appointment.NumericTokenValidator(v); err != nil {
			return &ValidationError{Name: "numeric_token", err: fmt.Errorf(`repo: validator failed for field "Appointment.numeric_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(appointment.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientPhone(); ok {
		_spec.SetField(appointment.FieldPatientPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientEmail(); ok {
		_spec.SetField(appointment.FieldPatientEmail, field.TypeString, value)
	}
	if _u.mutation.PatientEmailCleared() {
		_spec.ClearField(appointment.FieldPatientEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(appointment.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotIndex(); ok {
		_spec.SetField(appointment.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotIndex(); ok {
		_spec.AddField(appointment.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionIndex(); ok {
		_spec.SetField(appointment.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionIndex(); ok {
		_spec.AddField(appointment.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(appointment.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TokenNumber(); ok {
		_spec.SetField(appointment.FieldTokenNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumericToken(); ok {
		_spec.SetField(appointment.FieldNumericToken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumericToken(); ok {
		_spec.AddField(appointment.FieldNumericToken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CutOffTime(); ok {
		_spec.SetField(appointment.FieldCutOffTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NoShowTime(); ok {
		_spec.SetField(appointment.FieldNoShowTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DelayMinutes(); ok {
		_spec.SetField(appointment.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayMinutes(); ok {
		_spec.AddField(appointment.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ForceBooked(); ok {
		_spec.SetField(appointment.FieldForceBooked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rejoined(); ok {
		_spec.SetField(appointment.FieldRejoined, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(appointment.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(appointment.FieldCancellationReason, field.TypeString)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
