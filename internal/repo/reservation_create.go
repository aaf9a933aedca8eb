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
	"github.com/nivaran/nivaran_backend/internal/repo/reservation"
)

// ReservationCreate is the builder for creating a Reservation entity.
type ReservationCreate struct {
	config
	mutation *ReservationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReservationCreate) SetCreatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableCreatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReservationCreate) SetUpdatedAt(v time.Time) *ReservationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableUpdatedAt(v *time.Time) *ReservationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *ReservationCreate) SetDoctorID(v uuid.UUID) *ReservationCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *ReservationCreate) SetDay(v string) *ReservationCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetSlotIndex sets the "slot_index" field.
func (_c *ReservationCreate) SetSlotIndex(v int) *ReservationCreate {
	_c.mutation.SetSlotIndex(v)
	return _c
}

// SetSlotTime sets the "slot_time" field.
func (_c *ReservationCreate) SetSlotTime(v time.Time) *ReservationCreate {
	_c.mutation.SetSlotTime(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReservationCreate) SetStatus(v reservation.Status) *ReservationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableStatus(v *reservation.Status) *ReservationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ReservationCreate) SetExpiresAt(v time.Time) *ReservationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *ReservationCreate) SetPatientName(v string) *ReservationCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetPatientPhone sets the "patient_phone" field.
func (_c *ReservationCreate) SetPatientPhone(v string) *ReservationCreate {
	_c.mutation.SetPatientPhone(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ReservationCreate) SetKind(v reservation.Kind) *ReservationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableKind(v *reservation.Kind) *ReservationCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReservationCreate) SetID(v uuid.UUID) *ReservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReservationCreate) SetNillableID(v *uuid.UUID) *ReservationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReservationMutation object of the builder.
func (_c *ReservationCreate) Mutation() *ReservationMutation {
	return _c.mutation
}

// Save creates the Reservation in the database.
func (_c *ReservationCreate) Save(ctx context.Context) (*Reservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReservationCreate) SaveX(ctx context.Context) *Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReservationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reservation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reservation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reservation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := reservation.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reservation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReservationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Reservation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Reservation.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Reservation.doctor_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`repo: missing required field "Reservation.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := reservation.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "Reservation.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlotIndex(); !ok {
		return &ValidationError{Name: "slot_index", err: errors.New(`repo: missing required field "Reservation.slot_index"`)}
	}
	if v, ok := _c.mutation.SlotIndex(); ok {
		if err := reservation.SlotIndexValidator(v); err != nil {
			return &ValidationError{Name: "slot_index", err: fmt.Errorf(`repo: validator failed for field "Reservation.slot_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlotTime(); !ok {
		return &ValidationError{Name: "slot_time", err: errors.New(`repo: missing required field "Reservation.slot_time"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Reservation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reservation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Reservation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`repo: missing required field "Reservation.expires_at"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "Reservation.patient_name"`)}
	}
	if v, ok := _c.mutation.PatientName(); ok {
		if err := reservation.PatientNameValidator(v); err != nil {
			return &ValidationError{Name: "patient_name", err: fmt.Errorf(`repo: validator failed for field "Reservation.patient_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatientPhone(); !ok {
		return &ValidationError{Name: "patient_phone", err: errors.New(`repo: missing required field "Reservation.patient_phone"`)}
	}
	if v, ok := _c.mutation.PatientPhone(); ok {
		if err := reservation.PatientPhoneValidator(v); err != nil {
			return &ValidationError{Name: "patient_phone", err: fmt.Errorf(`repo: validator failed for field "Reservation.patient_phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "Reservation.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := reservation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "Reservation.kind": %w`, err)}
		}
	}
	return nil
}

func (_c *ReservationCreate) sqlSave(ctx context.Context) (*Reservation, error) {
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

func (_c *ReservationCreate) createSpec() (*Reservation, *sqlgraph.CreateSpec) {
	var (
		_node = &Reservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reservation.Table, sqlgraph.NewFieldSpec(reservation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reservation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reservation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(reservation.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(reservation.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.SlotIndex(); ok {
		_spec.SetField(reservation.FieldSlotIndex, field.TypeInt, value)
		_node.SlotIndex = value
	}
	if value, ok := _c.mutation.SlotTime(); ok {
		_spec.SetField(reservation.FieldSlotTime, field.TypeTime, value)
		_node.SlotTime = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reservation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(reservation.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(reservation.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientPhone(); ok {
		_spec.SetField(reservation.FieldPatientPhone, field.TypeString, value)
		_node.PatientPhone = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(reservation.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Reservation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReservationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReservationCreate) OnConflict(opts ...sql.ConflictOption) *ReservationUpsertOne {
	_c.conflict = opts
	return &ReservationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Reservation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReservationCreate) OnConflictColumns(columns ...string) *ReservationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReservationUpsertOne{
		create: _c,
	}
}

type (
	// ReservationUpsertOne is the builder for "upsert"-ing
	//  one Reservation node.
	ReservationUpsertOne struct {
		create *ReservationCreate
	}

	// ReservationUpsert is the "OnConflict" setter.
	ReservationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ReservationUpsert) SetUpdatedAt(v time.Time) *ReservationUpsert {
	u.Set(reservation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReservationUpsert) UpdateUpdatedAt() *ReservationUpsert {
	u.SetExcluded(reservation.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *ReservationUpsert) SetDoctorID(v uuid.UUID) *ReservationUpsert {
	u.Set(reservation.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ReservationUpsert) UpdateDoctorID() *ReservationUpsert {
	u.SetExcluded(reservation.FieldDoctorID)
	return u
}

// SetDay sets the "day" field.
func (u *ReservationUpsert) SetDay(v string) *ReservationUpsert {
	u.Set(reservation.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ReservationUpsert) UpdateDay() *ReservationUpsert {
	u.SetExcluded(reservation.FieldDay)
	return u
}

// SetSlotIndex sets the "slot_index" field.
func (u *ReservationUpsert) SetSlotIndex(v int) *ReservationUpsert {
	u.Set(reservation.FieldSlotIndex, v)
	return u
}

// UpdateSlotIndex sets the "slot_index" field to the value that was provided on create.
func (u *ReservationUpsert) UpdateSlotIndex() *ReservationUpsert {
	u.SetExcluded(reservation.FieldSlotIndex)
	return u
}

// AddSlotIndex adds v to the "slot_index" field.
func (u *ReservationUpsert) AddSlotIndex(v int) *ReservationUpsert {
	u.Add(reservation.FieldSlotIndex, v)
	return u
}

// SetSlotTime sets the "slot_time" field.
func (u *ReservationUpsert) SetSlotTime(v time.Time) *ReservationUpsert {
	u.Set(reservation.FieldSlotTime, v)
	return u
}

// UpdateSlotTime sets the "slot_time" field to the value that was provided on create.
func (u *ReservationUpsert) UpdateSlotTime() *ReservationUpsert {
	u.SetExcluded(reservation.FieldSlotTime)
	return u
}

// SetStatus sets the "status" field.
func (u *ReservationUpsert) SetStatus(v reservation.Status) *ReservationUpsert {
	u.Set(reservation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReservationUpsert) UpdateStatus() *ReservationUpsert {
	u.SetExcluded(reservation.FieldStatus)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ReservationUpsert) SetExpiresAt(v time.Time) *ReservationUpsert {
	u.Set(reservation.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ReservationUpsert) UpdateExpiresAt() *ReservationUpsert {
	u.SetExcluded(reservation.FieldExpiresAt)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *ReservationUpsert) SetPatientName(v string) *ReservationUpsert {
	u.Set(reservation.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *ReservationUpsert) UpdatePatientName() *ReservationUpsert {
	u.SetExcluded(reservation.FieldPatientName)
	return u
}

// SetPatientPhone sets the "patient_phone" field.
func (u *ReservationUpsert) SetPatientPhone(v string) *ReservationUpsert {
	u.Set(reservation.FieldPatientPhone, v)
	return u
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *ReservationUpsert) UpdatePatientPhone() *ReservationUpsert {
	u.SetExcluded(reservation.FieldPatientPhone)
	return u
}

// SetKind sets the "kind" field.
func (u *ReservationUpsert) SetKind(v reservation.Kind) *ReservationUpsert {
	u.Set(reservation.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ReservationUpsert) UpdateKind() *ReservationUpsert {
	u.SetExcluded(reservation.FieldKind)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Reservation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reservation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReservationUpsertOne) UpdateNewValues() *ReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reservation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(reservation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Reservation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReservationUpsertOne) Ignore() *ReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReservationUpsertOne) DoNothing() *ReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReservationCreate.OnConflict
// documentation for more info.
func (u *ReservationUpsertOne) Update(set func(*ReservationUpsert)) *ReservationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReservationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReservationUpsertOne) SetUpdatedAt(v time.Time) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdateUpdatedAt() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *ReservationUpsertOne) SetDoctorID(v uuid.UUID) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdateDoctorID() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDay sets the "day" field.
func (u *ReservationUpsertOne) SetDay(v string) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdateDay() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateDay()
	})
}

// SetSlotIndex sets the "slot_index" field.
func (u *ReservationUpsertOne) SetSlotIndex(v int) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetSlotIndex(v)
	})
}

// AddSlotIndex adds v to the "slot_index" field.
func (u *ReservationUpsertOne) AddSlotIndex(v int) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.AddSlotIndex(v)
	})
}

// UpdateSlotIndex sets the "slot_index" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdateSlotIndex() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateSlotIndex()
	})
}

// SetSlotTime sets the "slot_time" field.
func (u *ReservationUpsertOne) SetSlotTime(v time.Time) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetSlotTime(v)
	})
}

// UpdateSlotTime sets the "slot_time" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdateSlotTime() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateSlotTime()
	})
}

// SetStatus sets the "status" field.
func (u *ReservationUpsertOne) SetStatus(v reservation.Status) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdateStatus() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateStatus()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ReservationUpsertOne) SetExpiresAt(v time.Time) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdateExpiresAt() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *ReservationUpsertOne) SetPatientName(v string) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdatePatientName() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdatePatientName()
	})
}

// SetPatientPhone sets the "patient_phone" field.
func (u *ReservationUpsertOne) SetPatientPhone(v string) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetPatientPhone(v)
	})
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdatePatientPhone() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdatePatientPhone()
	})
}

// SetKind sets the "kind" field.
func (u *ReservationUpsertOne) SetKind(v reservation.Kind) *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ReservationUpsertOne) UpdateKind() *ReservationUpsertOne {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateKind()
	})
}

// Exec executes the query.
func (u *ReservationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReservationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReservationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReservationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ReservationUpsertOne.ID is not supported by MySQL driver. Use ReservationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReservationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReservationCreateBulk is the builder for creating many Reservation entities in bulk.
type ReservationCreateBulk struct {
	config
	err      error
	builders []*ReservationCreate
	conflict []sql.ConflictOption
}

// Save creates the Reservation entities in the database.
func (_c *ReservationCreateBulk) Save(ctx context.Context) ([]*Reservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReservationMutation)
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
func (_c *ReservationCreateBulk) SaveX(ctx context.Context) []*Reservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Reservation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReservationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReservationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReservationUpsertBulk {
	_c.conflict = opts
	return &ReservationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Reservation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReservationCreateBulk) OnConflictColumns(columns ...string) *ReservationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReservationUpsertBulk{
		create: _c,
	}
}

// ReservationUpsertBulk is the builder for "upsert"-ing
// a bulk of Reservation nodes.
type ReservationUpsertBulk struct {
	create *ReservationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Reservation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reservation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReservationUpsertBulk) UpdateNewValues() *ReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reservation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(reservation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Reservation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReservationUpsertBulk) Ignore() *ReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReservationUpsertBulk) DoNothing() *ReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReservationCreateBulk.OnConflict
// documentation for more info.
func (u *ReservationUpsertBulk) Update(set func(*ReservationUpsert)) *ReservationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReservationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReservationUpsertBulk) SetUpdatedAt(v time.Time) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdateUpdatedAt() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *ReservationUpsertBulk) SetDoctorID(v uuid.UUID) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdateDoctorID() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDay sets the "day" field.
func (u *ReservationUpsertBulk) SetDay(v string) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdateDay() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateDay()
	})
}

// SetSlotIndex sets the "slot_index" field.
func (u *ReservationUpsertBulk) SetSlotIndex(v int) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetSlotIndex(v)
	})
}

// AddSlotIndex adds v to the "slot_index" field.
func (u *ReservationUpsertBulk) AddSlotIndex(v int) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.AddSlotIndex(v)
	})
}

// UpdateSlotIndex sets the "slot_index" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdateSlotIndex() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateSlotIndex()
	})
}

// SetSlotTime sets the "slot_time" field.
func (u *ReservationUpsertBulk) SetSlotTime(v time.Time) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetSlotTime(v)
	})
}

// UpdateSlotTime sets the "slot_time" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdateSlotTime() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateSlotTime()
	})
}

// SetStatus sets the "status" field.
func (u *ReservationUpsertBulk) SetStatus(v reservation.Status) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdateStatus() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateStatus()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ReservationUpsertBulk) SetExpiresAt(v time.Time) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdateExpiresAt() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *ReservationUpsertBulk) SetPatientName(v string) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdatePatientName() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdatePatientName()
	})
}

// SetPatientPhone sets the "patient_phone" field.
func (u *ReservationUpsertBulk) SetPatientPhone(v string) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetPatientPhone(v)
	})
}

// UpdatePatientPhone sets the "patient_phone" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdatePatientPhone() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdatePatientPhone()
	})
}

// SetKind sets the "kind" field.
func (u *ReservationUpsertBulk) SetKind(v reservation.Kind) *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ReservationUpsertBulk) UpdateKind() *ReservationUpsertBulk {
	return u.Update(func(s *ReservationUpsert) {
		s.UpdateKind()
	})
}

// Exec executes the query.
func (u *ReservationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ReservationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReservationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReservationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
