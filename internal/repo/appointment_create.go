// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/appointment"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *AppointmentCreate) SetClinicID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *AppointmentCreate) SetDoctorID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *AppointmentCreate) SetPatientName(v string) *AppointmentCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetPatientPhone sets the "patient_phone" field.
func (_c *AppointmentCreate) SetPatientPhone(v string) *AppointmentCreate {
	_c.mutation.SetPatientPhone(v)
	return _c
}

// SetPatientEmail sets the "patient_email" field.
func (_c *AppointmentCreate) SetPatientEmail(v string) *AppointmentCreate {
	_c.mutation.SetPatientEmail(v)
	return _c
}

// SetNillablePatientEmail sets the "patient_email" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillablePatientEmail(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetPatientEmail(*v)
	}
	return _c
}

// SetDay sets the "day" field.
func (_c *AppointmentCreate) SetDay(v string) *AppointmentCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetSlotIndex sets the "slot_index" field.
func (_c *AppointmentCreate) SetSlotIndex(v int) *AppointmentCreate {
	_c.mutation.SetSlotIndex(v)
	return _c
}

// SetSessionIndex sets the "session_index" field.
func (_c *AppointmentCreate) SetSessionIndex(v int) *AppointmentCreate {
	_c.mutation.SetSessionIndex(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AppointmentCreate) SetStartTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AppointmentCreate) SetKind(v appointment.Kind) *AppointmentCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTokenNumber sets the "token_number" field.
func (_c *AppointmentCreate) SetTokenNumber(v string) *AppointmentCreate {
	_c.mutation.SetTokenNumber(v)
	return _c
}

// SetNumericToken sets the "numeric_token" field.
func (_c *AppointmentCreate) SetNumericToken(v int) *AppointmentCreate {
	_c.mutation.SetNumericToken(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCutOffTime sets the "cut_off_time" field.
func (_c *AppointmentCreate) SetCutOffTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetCutOffTime(v)
	return _c
}

// SetNoShowTime sets the "no_show_time" field.
func (_c *AppointmentCreate) SetNoShowTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetNoShowTime(v)
	return _c
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_c *AppointmentCreate) SetDelayMinutes(v int) *AppointmentCreate {
	_c.mutation.SetDelayMinutes(v)
	return _c
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableDelayMinutes(v *int) *AppointmentCreate {
	if v != nil {
		_c.SetDelayMinutes(*v)
	}
	return _c
}

// SetForceBooked sets the "force_booked" field.
func (_c *AppointmentCreate) SetForceBooked(v bool) *AppointmentCreate {
	_c.mutation.SetForceBooked(v)
	return _c
}

// SetNillableForceBooked sets the "force_booked" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableForceBooked(v *bool) *AppointmentCreate {
	if v != nil {
		_c.SetForceBooked(*v)
	}
	return _c
}

// SetRejoined sets the "rejoined" field.
func (_c *AppointmentCreate) SetRejoined(v bool) *AppointmentCreate {
	_c.mutation.SetRejoined(v)
	return _c
}

// SetNillableRejoined sets the "rejoined" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableRejoined(v *bool) *AppointmentCreate {
	if v != nil {
		_c.SetRejoined(*v)
	}
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *AppointmentCreate) SetConfirmedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableConfirmedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AppointmentCreate) SetCompletedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCompletedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *AppointmentCreate) SetCancelledAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancelledAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *AppointmentCreate) SetCancellationReason(v string) *AppointmentCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCancellationReason(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DelayMinutes(); !ok {
		v := appointment.DefaultDelayMinutes
		_c.mutation.SetDelayMinutes(v)
	}
	if _, ok := _c.mutation.ForceBooked(); !ok {
		v := appointment.DefaultForceBooked
		_c.mutation.SetForceBooked(v)
	}
	if _, ok := _c.mutation.Rejoined(); !ok {
		v := appointment.DefaultRejoined
		_c.mutation.SetRejoined(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Appointment.clinic_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Appointment.doctor_id"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "Appointment.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := appointment.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.patient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientPhone(); !ok {
		return &ValidationError{Name: "patient_phone", err: errors.New(`repo: missing required field "Appointment.patient_phone"`)}
	}
	if v, ok := _c.mutation.PatientPhone(); ok {
		if err := appointment.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Appointment.patient_phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`repo: missing required field "Appointment.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := appointment.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "Appointment.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlotIndex(); !ok {
		return &ValidationError{Name: "slot_index", err: errors.New(`repo: missing required field "Appointment.slot_index"`)}
	}
	if v, ok := _c.mutation.SlotIndex(); ok {
		if err := appointment.SlotIndexValidator(v); err != nil {
			return &ValidationError{Name: "slot_index", err: fmt.Errorf(`repo: validator failed for field "Appointment.slot_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionIndex(); !ok {
		return &ValidationError{Name: "session_index", err: errors.New(`repo: missing required field "Appointment.session_index"`)}
	}
	if v, ok := _c.mutation.SessionIndex(); ok {
		if err := appointment.SessionIndexValidator(v); err != nil {
			return &ValidationError{Name: "session_index", err: fmt.Errorf(`repo: validator failed for field "Appointment.session_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Appointment.start_time"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "Appointment.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := appointment.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Appointment.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokenNumber(); !ok {
		return &ValidationError{Name: "token_number", err: errors.New(`repo: missing required field "Appointment.token_number"`)}
	}
	if v, ok := _c.mutation.TokenNumber(); ok {
		if err := appointment.TokenNumberValidator(v); err != nil {
			return &ValidationError{Name: "token_number", err: fmt.Errorf(`repo: validator failed for field "Appointment.token_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumericToken(); !ok {
		return &ValidationError{Name: "numeric_token", err: errors.New(`repo: missing required field "Appointment.numeric_token"`)}
	}
	if v, ok := _c.mutation.NumericToken(); ok {
		if err := appointment.NumericTokenValidator(v); err != nil {
			return &ValidationError{Name: "numeric_token", err: fmt.Errorf(`repo: validator failed for field "Appointment.numeric_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CutOffTime(); !ok {
		return &ValidationError{Name: "cut_off_time", err: errors.New(`repo: missing required field "Appointment.cut_off_time"`)}
	}
	if _, ok := _c.mutation.NoShowTime(); !ok {
		return &ValidationError{Name: "no_show_time", err: errors.New(`repo: missing required field "Appointment.no_show_time"`)}
	}
	if _, ok := _c.mutation.DelayMinutes(); !ok {
		return &ValidationError{Name: "delay_minutes", err: errors.New(`repo: missing required field "Appointment.delay_minutes"`)}
	}
	if _, ok := _c.mutation.ForceBooked(); !ok {
		return &ValidationError{Name: "force_booked", err: errors.New(`repo: missing required field "Appointment.force_booked"`)}
	}
	if _, ok := _c.mutation.Rejoined(); !ok {
		return &ValidationError{Name: "rejoined", err: errors.New(`repo: missing required field "Appointment.rejoined"`)}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(appointment.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientPhone(); ok {
		_spec.SetField(appointment.FieldPatientPhone, field.TypeString, value)
		_node.PatientPhone = value
	}
	if value, ok := _c.mutation.PatientEmail(); ok {
		_spec.SetField(appointment.FieldPatientEmail, field.TypeString, value)
		_node.PatientEmail = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(appointment.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.SlotIndex(); ok {
		_spec.SetField(appointment.FieldSlotIndex, field.TypeInt, value)
		_node.SlotIndex = value
	}
	if value, ok := _c.mutation.SessionIndex(); ok {
		_spec.SetField(appointment.FieldSessionIndex, field.TypeInt, value)
		_node.SessionIndex = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(appointment.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.TokenNumber(); ok {
		_spec.SetField(appointment.FieldTokenNumber, field.TypeString, value)
		_node.TokenNumber = value
	}
	if value, ok := _c.mutation.NumericToken(); ok {
		_spec.SetField(appointment.FieldNumericToken, field.TypeInt, value)
		_node.NumericToken = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CutOffTime(); ok {
		_spec.SetField(appointment.FieldCutOffTime, field.TypeTime, value)
		_node.CutOffTime = value
	}
	if value, ok := _c.mutation.NoShowTime(); ok {
		_spec.SetField(appointment.FieldNoShowTime, field.TypeTime, value)
		_node.NoShowTime = value
	}
	if value, ok := _c.mutation.DelayMinutes(); ok {
		_spec.SetField(appointment.FieldDelayMinutes, field.TypeInt, value)
		_node.DelayMinutes = value
	}
	if value, ok := _c.mutation.ForceBooked(); ok {
		_spec.SetField(appointment.FieldForceBooked, field.TypeBool, value)
		_node.ForceBooked = value
	}
	if value, ok := _c.mutation.Rejoined(); ok {
		_spec.SetField(appointment.FieldRejoined, field.TypeBool, value)
		_node.Rejoined = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(appointment.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(appointment.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertOne {
	_c.conflict = opts
	return &AppointmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflictColumns(columns ...string) *AppointmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertOne{
		create: _c,
	}
}

type (
	// AppointmentUpsertOne is the builder for "upsert"-ing
	//  one Appointment node.
	AppointmentUpsertOne struct {
		create *AppointmentCreate
	}

	// AppointmentUpsert is the "OnConflict" setter.
	AppointmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsert) SetUpdatedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateUpdatedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *AppointmentUpsert) SetClinicID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateClinicID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldClinicID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *AppointmentUpsert) SetDoctorID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateDoctorID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldDoctorID)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *AppointmentUpsert) SetPatientName(v string) *AppointmentUpsert {
	u.Set(appointment.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdatePatientName() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldPatientName)
	return u
}

// SetPatientPhone sets the "patient_phone" field.
func (u *AppointmentUpsert) SetPatientPhone(v string) *AppointmentUpsert {
	u.Set(appointment.FieldPatientPhone, v)
	return u
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdatePatientPhone() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldPatientPhone)
	return u
}

// SetPatientEmail sets the "patient_email" field.
func (u *AppointmentUpsert) SetPatientEmail(v string) *AppointmentUpsert {
	u.Set(appointment.FieldPatientEmail, v)
	return u
}

// UpdatePatientEmail sets the "patient_email" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdatePatientEmail() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldPatientEmail)
	return u
}

// ClearPatientEmail clears the value of the "patient_email" field.
func (u *AppointmentUpsert) ClearPatientEmail() *AppointmentUpsert {
	u.SetNull(appointment.FieldPatientEmail)
	return u
}

// SetDay sets the "day" field.
func (u *AppointmentUpsert) SetDay(v string) *AppointmentUpsert {
	u.Set(appointment.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateDay() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldDay)
	return u
}

// SetSlotIndex sets the "slot_index" field.
func (u *AppointmentUpsert) SetSlotIndex(v int) *AppointmentUpsert {
	u.Set(appointment.FieldSlotIndex, v)
	return u
}

// UpdateSlotIndex sets the "slot_index" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateSlotIndex() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldSlotIndex)
	return u
}

// AddSlotIndex adds v to the "slot_index" field.
func (u *AppointmentUpsert) AddSlotIndex(v int) *AppointmentUpsert {
	u.Add(appointment.FieldSlotIndex, v)
	return u
}

// SetSessionIndex sets the "session_index" field.
func (u *AppointmentUpsert) SetSessionIndex(v int) *AppointmentUpsert {
	u.Set(appointment.FieldSessionIndex, v)
	return u
}

// UpdateSessionIndex sets the "session_index" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateSessionIndex() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldSessionIndex)
	return u
}

// AddSessionIndex adds v to the "session_index" field.
func (u *AppointmentUpsert) AddSessionIndex(v int) *AppointmentUpsert {
	u.Add(appointment.FieldSessionIndex, v)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsert) SetStartTime(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStartTime() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStartTime)
	return u
}

// SetKind sets the "kind" field.
func (u *AppointmentUpsert) SetKind(v appointment.Kind) *AppointmentUpsert {
	u.Set(appointment.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateKind() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldKind)
	return u
}

// SetTokenNumber sets the "token_number" field.
func (u *AppointmentUpsert) SetTokenNumber(v string) *AppointmentUpsert {
	u.Set(appointment.FieldTokenNumber, v)
	return u
}

// UpdateTokenNumber sets the "token_number" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateTokenNumber() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldTokenNumber)
	return u
}

// SetNumericToken sets the "numeric_token" field.
func (u *AppointmentUpsert) SetNumericToken(v int) *AppointmentUpsert {
	u.Set(appointment.FieldNumericToken, v)
	return u
}

// UpdateNumericToken sets the "numeric_token" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateNumericToken() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldNumericToken)
	return u
}

// AddNumericToken adds v to the "numeric_token" field.
func (u *AppointmentUpsert) AddNumericToken(v int) *AppointmentUpsert {
	u.Add(appointment.FieldNumericToken, v)
	return u
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsert) SetStatus(v appointment.Status) *AppointmentUpsert {
	u.Set(appointment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStatus() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStatus)
	return u
}

// SetCutOffTime sets the "cut_off_time" field.
func (u *AppointmentUpsert) SetCutOffTime(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldCutOffTime, v)
	return u
}

// UpdateCutOffTime sets the "cut_off_time" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCutOffTime() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCutOffTime)
	return u
}

// SetNoShowTime sets the "no_show_time" field.
func (u *AppointmentUpsert) SetNoShowTime(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldNoShowTime, v)
	return u
}

// UpdateNoShowTime sets the "no_show_time" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateNoShowTime() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldNoShowTime)
	return u
}

// SetDelayMinutes sets the "delay_minutes" field.
func (u *AppointmentUpsert) SetDelayMinutes(v int) *AppointmentUpsert {
	u.Set(appointment.FieldDelayMinutes, v)
	return u
}

// UpdateDelayMinutes sets the "delay_minutes" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateDelayMinutes() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldDelayMinutes)
	return u
}

// AddDelayMinutes adds v to the "delay_minutes" field.
func (u *AppointmentUpsert) AddDelayMinutes(v int) *AppointmentUpsert {
	u.Add(appointment.FieldDelayMinutes, v)
	return u
}

// SetForceBooked sets the "force_booked" field.
func (u *AppointmentUpsert) SetForceBooked(v bool) *AppointmentUpsert {
	u.Set(appointment.FieldForceBooked, v)
	return u
}

// UpdateForceBooked sets the "force_booked" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateForceBooked() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldForceBooked)
	return u
}

// SetRejoined sets the "rejoined" field.
func (u *AppointmentUpsert) SetRejoined(v bool) *AppointmentUpsert {
	u.Set(appointment.FieldRejoined, v)
	return u
}

// UpdateRejoined sets the "rejoined" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateRejoined() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldRejoined)
	return u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *AppointmentUpsert) SetConfirmedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldConfirmedAt, v)
	return u
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateConfirmedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldConfirmedAt)
	return u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *AppointmentUpsert) ClearConfirmedAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldConfirmedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsert) SetCompletedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCompletedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsert) ClearCompletedAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldCompletedAt)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsert) SetCancelledAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCancelledAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsert) ClearCancelledAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldCancelledAt)
	return u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *AppointmentUpsert) SetCancellationReason(v string) *AppointmentUpsert {
	u.Set(appointment.FieldCancellationReason, v)
	return u
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateCancellationReason() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldCancellationReason)
	return u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *AppointmentUpsert) ClearCancellationReason() *AppointmentUpsert {
	u.SetNull(appointment.FieldCancellationReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertOne) UpdateNewValues() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(appointment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(appointment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AppointmentUpsertOne) Ignore() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertOne) DoNothing() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreate.OnConflict
// documentation for more info.
func (u *AppointmentUpsertOne) Update(set func(*AppointmentUpsert)) *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertOne) SetUpdatedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateUpdatedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AppointmentUpsertOne) SetClinicID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateClinicID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateClinicID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *AppointmentUpsertOne) SetDoctorID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateDoctorID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDoctorID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *AppointmentUpsertOne) SetPatientName(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdatePatientName() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePatientName()
	})
}

// SetPatientPhone sets the "patient_phone" field.
func (u *AppointmentUpsertOne) SetPatientPhone(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPatientPhone(v)
	})
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdatePatientPhone() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePatientPhone()
	})
}

// SetPatientEmail sets the "patient_email" field.
func (u *AppointmentUpsertOne) SetPatientEmail(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPatientEmail(v)
	})
}

// UpdatePatientEmail sets the "patient_email" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdatePatientEmail() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePatientEmail()
	})
}

// ClearPatientEmail clears the value of the "patient_email" field.
func (u *AppointmentUpsertOne) ClearPatientEmail() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearPatientEmail()
	})
}

// SetDay sets the "day" field.
func (u *AppointmentUpsertOne) SetDay(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateDay() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDay()
	})
}

// SetSlotIndex sets the "slot_index" field.
func (u *AppointmentUpsertOne) SetSlotIndex(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetSlotIndex(v)
	})
}

// AddSlotIndex adds v to the "slot_index" field.
func (u *AppointmentUpsertOne) AddSlotIndex(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddSlotIndex(v)
	})
}

// UpdateSlotIndex sets the "slot_index" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateSlotIndex() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateSlotIndex()
	})
}

// SetSessionIndex sets the "session_index" field.
func (u *AppointmentUpsertOne) SetSessionIndex(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetSessionIndex(v)
	})
}

// AddSessionIndex adds v to the "session_index" field.
func (u *AppointmentUpsertOne) AddSessionIndex(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddSessionIndex(v)
	})
}

// UpdateSessionIndex sets the "session_index" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateSessionIndex() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateSessionIndex()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsertOne) SetStartTime(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStartTime() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStartTime()
	})
}

// SetKind sets the "kind" field.
func (u *AppointmentUpsertOne) SetKind(v appointment.Kind) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateKind() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateKind()
	})
}

// SetTokenNumber sets the "token_number" field.
func (u *AppointmentUpsertOne) SetTokenNumber(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetTokenNumber(v)
	})
}

// UpdateTokenNumber sets the "token_number" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateTokenNumber() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateTokenNumber()
	})
}

// SetNumericToken sets the "numeric_token" field.
func (u *AppointmentUpsertOne) SetNumericToken(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetNumericToken(v)
	})
}

// AddNumericToken adds v to the "numeric_token" field.
func (u *AppointmentUpsertOne) AddNumericToken(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddNumericToken(v)
	})
}

// UpdateNumericToken sets the "numeric_token" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateNumericToken() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateNumericToken()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertOne) SetStatus(v appointment.Status) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStatus() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetCutOffTime sets the "cut_off_time" field.
func (u *AppointmentUpsertOne) SetCutOffTime(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCutOffTime(v)
	})
}

// UpdateCutOffTime sets the "cut_off_time" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCutOffTime() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCutOffTime()
	})
}

// SetNoShowTime sets the "no_show_time" field.
func (u *AppointmentUpsertOne) SetNoShowTime(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetNoShowTime(v)
	})
}

// UpdateNoShowTime sets the "no_show_time" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateNoShowTime() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateNoShowTime()
	})
}

// SetDelayMinutes sets the "delay_minutes" field.
func (u *AppointmentUpsertOne) SetDelayMinutes(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDelayMinutes(v)
	})
}

// AddDelayMinutes adds v to the "delay_minutes" field.
func (u *AppointmentUpsertOne) AddDelayMinutes(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddDelayMinutes(v)
	})
}

// UpdateDelayMinutes sets the "delay_minutes" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateDelayMinutes() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDelayMinutes()
	})
}

// SetForceBooked sets the "force_booked" field.
func (u *AppointmentUpsertOne) SetForceBooked(v bool) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetForceBooked(v)
	})
}

// UpdateForceBooked sets the "force_booked" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateForceBooked() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateForceBooked()
	})
}

// SetRejoined sets the "rejoined" field.
func (u *AppointmentUpsertOne) SetRejoined(v bool) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetRejoined(v)
	})
}

// UpdateRejoined sets the "rejoined" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateRejoined() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateRejoined()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *AppointmentUpsertOne) SetConfirmedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateConfirmedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *AppointmentUpsertOne) ClearConfirmedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsertOne) SetCompletedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCompletedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsertOne) ClearCompletedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsertOne) SetCancelledAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCancelledAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsertOne) ClearCancelledAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *AppointmentUpsertOne) SetCancellationReason(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateCancellationReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *AppointmentUpsertOne) ClearCancellationReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancellationReason()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AppointmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AppointmentUpsertOne.ID is not supported by MySQL driver. Use AppointmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AppointmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertBulk {
	_c.conflict = opts
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflictColumns(columns ...string) *AppointmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// AppointmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Appointment nodes.
type AppointmentUpsertBulk struct {
	create *AppointmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) UpdateNewValues() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(appointment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(appointment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) Ignore() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertBulk) DoNothing() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreateBulk.OnConflict
// documentation for more info.
func (u *AppointmentUpsertBulk) Update(set func(*AppointmentUpsert)) *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertBulk) SetUpdatedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateUpdatedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AppointmentUpsertBulk) SetClinicID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateClinicID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateClinicID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *AppointmentUpsertBulk) SetDoctorID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateDoctorID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDoctorID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *AppointmentUpsertBulk) SetPatientName(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdatePatientName() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePatientName()
	})
}

// SetPatientPhone sets the "patient_phone" field.
func (u *AppointmentUpsertBulk) SetPatientPhone(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPatientPhone(v)
	})
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdatePatientPhone() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePatientPhone()
	})
}

// SetPatientEmail sets the "patient_email" field.
func (u *AppointmentUpsertBulk) SetPatientEmail(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetPatientEmail(v)
	})
}

// UpdatePatientEmail sets the "patient_email" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdatePatientEmail() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdatePatientEmail()
	})
}

// ClearPatientEmail clears the value of the "patient_email" field.
func (u *AppointmentUpsertBulk) ClearPatientEmail() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearPatientEmail()
	})
}

// SetDay sets the "day" field.
func (u *AppointmentUpsertBulk) SetDay(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateDay() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDay()
	})
}

// SetSlotIndex sets the "slot_index" field.
func (u *AppointmentUpsertBulk) SetSlotIndex(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetSlotIndex(v)
	})
}

// AddSlotIndex adds v to the "slot_index" field.
func (u *AppointmentUpsertBulk) AddSlotIndex(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddSlotIndex(v)
	})
}

// UpdateSlotIndex sets the "slot_index" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateSlotIndex() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateSlotIndex()
	})
}

// SetSessionIndex sets the "session_index" field.
func (u *AppointmentUpsertBulk) SetSessionIndex(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetSessionIndex(v)
	})
}

// AddSessionIndex adds v to the "session_index" field.
func (u *AppointmentUpsertBulk) AddSessionIndex(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddSessionIndex(v)
	})
}

// UpdateSessionIndex sets the "session_index" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateSessionIndex() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateSessionIndex()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AppointmentUpsertBulk) SetStartTime(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStartTime() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStartTime()
	})
}

// SetKind sets the "kind" field.
func (u *AppointmentUpsertBulk) SetKind(v appointment.Kind) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateKind() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateKind()
	})
}

// SetTokenNumber sets the "token_number" field.
func (u *AppointmentUpsertBulk) SetTokenNumber(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetTokenNumber(v)
	})
}

// UpdateTokenNumber sets the "token_number" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateTokenNumber() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateTokenNumber()
	})
}

// SetNumericToken sets the "numeric_token" field.
func (u *AppointmentUpsertBulk) SetNumericToken(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetNumericToken(v)
	})
}

// AddNumericToken adds v to the "numeric_token" field.
func (u *AppointmentUpsertBulk) AddNumericToken(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddNumericToken(v)
	})
}

// UpdateNumericToken sets the "numeric_token" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateNumericToken() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateNumericToken()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertBulk) SetStatus(v appointment.Status) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStatus() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetCutOffTime sets the "cut_off_time" field.
func (u *AppointmentUpsertBulk) SetCutOffTime(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCutOffTime(v)
	})
}

// UpdateCutOffTime sets the "cut_off_time" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCutOffTime() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCutOffTime()
	})
}

// SetNoShowTime sets the "no_show_time" field.
func (u *AppointmentUpsertBulk) SetNoShowTime(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetNoShowTime(v)
	})
}

// UpdateNoShowTime sets the "no_show_time" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateNoShowTime() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateNoShowTime()
	})
}

// SetDelayMinutes sets the "delay_minutes" field.
func (u *AppointmentUpsertBulk) SetDelayMinutes(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetDelayMinutes(v)
	})
}

// AddDelayMinutes adds v to the "delay_minutes" field.
func (u *AppointmentUpsertBulk) AddDelayMinutes(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddDelayMinutes(v)
	})
}

// UpdateDelayMinutes sets the "delay_minutes" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateDelayMinutes() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateDelayMinutes()
	})
}

// SetForceBooked sets the "force_booked" field.
func (u *AppointmentUpsertBulk) SetForceBooked(v bool) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetForceBooked(v)
	})
}

// UpdateForceBooked sets the "force_booked" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateForceBooked() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateForceBooked()
	})
}

// SetRejoined sets the "rejoined" field.
func (u *AppointmentUpsertBulk) SetRejoined(v bool) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetRejoined(v)
	})
}

// UpdateRejoined sets the "rejoined" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateRejoined() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateRejoined()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *AppointmentUpsertBulk) SetConfirmedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateConfirmedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *AppointmentUpsertBulk) ClearConfirmedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AppointmentUpsertBulk) SetCompletedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCompletedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AppointmentUpsertBulk) ClearCompletedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCompletedAt()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *AppointmentUpsertBulk) SetCancelledAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCancelledAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *AppointmentUpsertBulk) ClearCancelledAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *AppointmentUpsertBulk) SetCancellationReason(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateCancellationReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *AppointmentUpsertBulk) ClearCancellationReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearCancellationReason()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AppointmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
