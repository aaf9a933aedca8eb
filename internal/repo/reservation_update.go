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
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
	"github.com/nivaran/nivaran_backend/internal/repo/reservation"
)

// ReservationUpdate is the builder for updating Reservation entities.
type ReservationUpdate struct {
	config
	hooks    []Hook
	mutation *ReservationMutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdate) Where(ps ...predicate.Reservation) *ReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdate) SetUpdatedAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ReservationUpdate) SetDoctorID(v uuid.UUID) *ReservationUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableDoctorID(v *uuid.UUID) *ReservationUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ReservationUpdate) SetDay(v string) *ReservationUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableDay(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetSlotIndex sets the "slot_index" field.
func (_u *ReservationUpdate) SetSlotIndex(v int) *ReservationUpdate {
	_u.mutation.ResetSlotIndex()
	_u.mutation.SetSlotIndex(v)
	return _u
}

// SetNillableSlotIndex sets the "slot_index" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableSlotIndex(v *int) *ReservationUpdate {
	if v != nil {
		_u.SetSlotIndex(*v)
	}
	return _u
}

// AddSlotIndex adds value to the "slot_index" field.
func (_u *ReservationUpdate) AddSlotIndex(v int) *ReservationUpdate {
	_u.mutation.AddSlotIndex(v)
	return _u
}

// SetSlotTime sets the "slot_time" field.
func (_u *ReservationUpdate) SetSlotTime(v time.Time) *ReservationUpdate {
	_u.mutation.SetSlotTime(v)
	return _u
}

// SetNillableSlotTime sets the "slot_time" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableSlotTime(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetSlotTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationUpdate) SetStatus(v reservation.Status) *ReservationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableStatus(v *reservation.Status) *ReservationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReservationUpdate) SetExpiresAt(v time.Time) *ReservationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableExpiresAt(v *time.Time) *ReservationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *ReservationUpdate) SetPatientName(v string) *ReservationUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillablePatientName(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientPhone sets the "patient_phone" field.
func (_u *ReservationUpdate) SetPatientPhone(v string) *ReservationUpdate {
	_u.mutation.SetPatientPhone(v)
	return _u
}

// SetNillablePatientPhone sets the "patient_phone" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillablePatientPhone(v *string) *ReservationUpdate {
	if v != nil {
		_u.SetPatientPhone(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReservationUpdate) SetKind(v reservation.Kind) *ReservationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReservationUpdate) SetNillableKind(v *reservation.Kind) *ReservationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdate) Mutation() *ReservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReservationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := reservation.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "Reservation.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotIndex(); ok {
		if err := reservation.SlotIndexValidator(v); err != nil {
			return &ValidationError{Name: "slot_index", err: fmt.Errorf(`repo: validator failed for field "Reservation.slot_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientName(); ok {
		if err := reservation.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Reservation.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientPhone(); ok {
		if err := reservation.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Reservation.patient_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := reservation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Reservation.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(reservation.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(reservation.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotIndex(); ok {
		_spec.SetField(reservation.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotIndex(); ok {
		_spec.AddField(reservation.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SlotTime(); ok {
		_spec.SetField(reservation.FieldSlotTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(reservation.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientPhone(); ok {
		_spec.SetField(reservation.FieldPatientPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reservation.FieldKind, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReservationUpdateOne is the builder for updating a single Reservation entity.
type ReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReservationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReservationUpdateOne) SetUpdatedAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ReservationUpdateOne) SetDoctorID(v uuid.UUID) *ReservationUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableDoctorID(v *uuid.UUID) *ReservationUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *ReservationUpdateOne) SetDay(v string) *ReservationUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableDay(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetSlotIndex sets the "slot_index" field.
func (_u *ReservationUpdateOne) SetSlotIndex(v int) *ReservationUpdateOne {
	_u.mutation.ResetSlotIndex()
	_u.mutation.SetSlotIndex(v)
	return _u
}

// SetNillableSlotIndex sets the "slot_index" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableSlotIndex(v *int) *ReservationUpdateOne {
	if v != nil {
		_u.SetSlotIndex(*v)
	}
	return _u
}

// AddSlotIndex adds value to the "slot_index" field.
func (_u *ReservationUpdateOne) AddSlotIndex(v int) *ReservationUpdateOne {
	_u.mutation.AddSlotIndex(v)
	return _u
}

// SetSlotTime sets the "slot_time" field.
func (_u *ReservationUpdateOne) SetSlotTime(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetSlotTime(v)
	return _u
}

// SetNillableSlotTime sets the "slot_time" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableSlotTime(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetSlotTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReservationUpdateOne) SetStatus(v reservation.Status) *ReservationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableStatus(v *reservation.Status) *ReservationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ReservationUpdateOne) SetExpiresAt(v time.Time) *ReservationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableExpiresAt(v *time.Time) *ReservationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *ReservationUpdateOne) SetPatientName(v string) *ReservationUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillablePatientName(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientPhone sets the "patient_phone" field.
func (_u *ReservationUpdateOne) SetPatientPhone(v string) *ReservationUpdateOne {
	_u.mutation.SetPatientPhone(v)
	return _u
}

// SetNillablePatientPhone sets the "patient_phone" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillablePatientPhone(v *string) *ReservationUpdateOne {
	if v != nil {
		_u.SetPatientPhone(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ReservationUpdateOne) SetKind(v reservation.Kind) *ReservationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ReservationUpdateOne) SetNillableKind(v *reservation.Kind) *ReservationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the ReservationMutation object of the builder.
func (_u *ReservationUpdateOne) Mutation() *ReservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReservationUpdate builder.
func (_u *ReservationUpdateOne) Where(ps ...predicate.Reservation) *ReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReservationUpdateOne) Select(field string, fields ...string) *ReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reservation entity.
func (_u *ReservationUpdateOne) Save(ctx context.Context) (*Reservation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReservationUpdateOne) SaveX(ctx context.Context) *Reservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReservationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reservation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReservationUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := reservation.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "Reservation.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotIndex(); ok {
		if err := reservation.SlotIndexValidator(v); err != nil {
			return &ValidationError{Name: "slot_index", err: fmt.Errorf(`repo: validator failed for field "Reservation.slot_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientName(); ok {
		if err := reservation.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Reservation.patient_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatientPhone(); ok {
		if err := reservation.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Reservation.patient_phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := reservation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Reservation.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ReservationUpdateOne) sqlSave(ctx context.Context) (_node *Reservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reservation.Table, reservation.Columns, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Reservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reservation.FieldID)
		for _, f := range fields {
			if !reservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != reservation.FieldID {
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
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(reservation.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(reservation.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotIndex(); ok {
		_spec.SetField(reservation.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotIndex(); ok {
		_spec.AddField(reservation.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SlotTime(); ok {
		_spec.SetField(reservation.FieldSlotTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(reservation.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientPhone(); ok {
		_spec.SetField(reservation.FieldPatientPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(reservation.FieldKind, field.TypeEnum, value)
	}
	_node = &Reservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
