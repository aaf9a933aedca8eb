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
	"github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
)

// ScheduleSessionCreate is the builder for creating a ScheduleSession entity.
type ScheduleSessionCreate struct {
	config
	mutation *ScheduleSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduleSessionCreate) SetCreatedAt(v time.Time) *ScheduleSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduleSessionCreate) SetNillableCreatedAt(v *time.Time) *ScheduleSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduleSessionCreate) SetUpdatedAt(v time.Time) *ScheduleSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduleSessionCreate) SetNillableUpdatedAt(v *time.Time) *ScheduleSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *ScheduleSessionCreate) SetDoctorID(v uuid.UUID) *ScheduleSessionCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetWeekday sets the "weekday" field.
func (_c *ScheduleSessionCreate) SetWeekday(v int) *ScheduleSessionCreate {
	_c.mutation.SetWeekday(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ScheduleSessionCreate) SetPosition(v int) *ScheduleSessionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetStartHour sets the "start_hour" field.
func (_c *ScheduleSessionCreate) SetStartHour(v int) *ScheduleSessionCreate {
	_c.mutation.SetStartHour(v)
	return _c
}

// SetStartMinute sets the "start_minute" field.
func (_c *ScheduleSessionCreate) SetStartMinute(v int) *ScheduleSessionCreate {
	_c.mutation.SetStartMinute(v)
	return _c
}

// SetEndHour sets the "end_hour" field.
func (_c *ScheduleSessionCreate) SetEndHour(v int) *ScheduleSessionCreate {
	_c.mutation.SetEndHour(v)
	return _c
}

// SetEndMinute sets the "end_minute" field.
func (_c *ScheduleSessionCreate) SetEndMinute(v int) *ScheduleSessionCreate {
	_c.mutation.SetEndMinute(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ScheduleSessionCreate) SetActive(v bool) *ScheduleSessionCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ScheduleSessionCreate) SetNillableActive(v *bool) *ScheduleSessionCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleSessionCreate) SetID(v uuid.UUID) *ScheduleSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScheduleSessionCreate) SetNillableID(v *uuid.UUID) *ScheduleSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ScheduleSessionMutation object of the builder.
func (_c *ScheduleSessionCreate) Mutation() *ScheduleSessionMutation {
	return _c.mutation
}

// Save creates the ScheduleSession in the database.
func (_c *ScheduleSessionCreate) Save(ctx context.Context) (*ScheduleSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleSessionCreate) SaveX(ctx context.Context) *ScheduleSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleSessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schedulesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := schedulesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := schedulesession.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := schedulesession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleSessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ScheduleSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ScheduleSession.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "ScheduleSession.doctor_id"`)}
	}
	if _, ok := _c.mutation.Weekday(); !ok {
		return &ValidationError{Name: "weekday", err: errors.New(`repo: missing required field "ScheduleSession.weekday"`)}
	}
	if v, ok := _c.mutation.Weekday(); ok {
		if err := schedulesession.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.weekday": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`repo: missing required field "ScheduleSession.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := schedulesession.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartHour(); !ok {
		return &ValidationError{Name: "start_hour", err: errors.New(`repo: missing required field "ScheduleSession.start_hour"`)}
	}
	if v, ok := _c.mutation.StartHour(); ok {
		if err := schedulesession.StartHourValidator(v); err != nil {
			return &ValidationError{Name: "start_hour", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.start_hour": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartMinute(); !ok {
		return &ValidationError{Name: "start_minute", err: errors.New(`repo: missing required field "ScheduleSession.start_minute"`)}
	}
	if v, ok := _c.mutation.StartMinute(); ok {
		if err := schedulesession.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.start_minute": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndHour(); !ok {
		return &ValidationError{Name: "end_hour", err: errors.New(`repo: missing required field "ScheduleSession.end_hour"`)}
	}
	if v, ok := _c.mutation.EndHour(); ok {
		if err := schedulesession.EndHourValidator(v); err != nil {
			return &ValidationError{Name: "end_hour", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.end_hour": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndMinute(); !ok {
		return &ValidationError{Name: "end_minute", err: errors.New(`repo: missing required field "ScheduleSession.end_minute"`)}
	}
	if v, ok := _c.mutation.EndMinute(); ok {
		if err := schedulesession.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.end_minute": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "ScheduleSession.active"`)}
	}
	return nil
}

func (_c *ScheduleSessionCreate) sqlSave(ctx context.Context) (*ScheduleSession, error) {
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

func (_c *ScheduleSessionCreate) createSpec() (*ScheduleSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedulesession.Table, sqlgraph.NewFieldSpec(schedulesession.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schedulesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(schedulesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(schedulesession.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Weekday(); ok {
		_spec.SetField(schedulesession.FieldWeekday, field.TypeInt, value)
		_node.Weekday = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(schedulesession.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.StartHour(); ok {
		_spec.SetField(schedulesession.FieldStartHour, field.TypeInt, value)
		_node.StartHour = value
	}
	if value, ok := _c.mutation.StartMinute(); ok {
		_spec.SetField(schedulesession.FieldStartMinute, field.TypeInt, value)
		_node.StartMinute = value
	}
	if value, ok := _c.mutation.EndHour(); ok {
		_spec.SetField(schedulesession.FieldEndHour, field.TypeInt, value)
		_node.EndHour = value
	}
	if value, ok := _c.mutation.EndMinute(); ok {
		_spec.SetField(schedulesession.FieldEndMinute, field.TypeInt, value)
		_node.EndMinute = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(schedulesession.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduleSession.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleSessionCreate) OnConflict(opts ...sql.ConflictOption) *ScheduleSessionUpsertOne {
	_c.conflict = opts
	return &ScheduleSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduleSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleSessionCreate) OnConflictColumns(columns ...string) *ScheduleSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleSessionUpsertOne{
		create: _c,
	}
}

type (
	// ScheduleSessionUpsertOne is the builder for "upsert"-ing
	//  one ScheduleSession node.
	ScheduleSessionUpsertOne struct {
		create *ScheduleSessionCreate
	}

	// ScheduleSessionUpsert is the "OnConflict" setter.
	ScheduleSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleSessionUpsert) SetUpdatedAt(v time.Time) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdateUpdatedAt() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *ScheduleSessionUpsert) SetDoctorID(v uuid.UUID) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdateDoctorID() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldDoctorID)
	return u
}

// SetWeekday sets the "weekday" field.
func (u *ScheduleSessionUpsert) SetWeekday(v int) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldWeekday, v)
	return u
}

// UpdateWeekday sets the "weekday" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdateWeekday() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldWeekday)
	return u
}

// AddWeekday adds v to the "weekday" field.
func (u *ScheduleSessionUpsert) AddWeekday(v int) *ScheduleSessionUpsert {
	u.Add(schedulesession.FieldWeekday, v)
	return u
}

// SetPosition sets the "position" field.
func (u *ScheduleSessionUpsert) SetPosition(v int) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdatePosition() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *ScheduleSessionUpsert) AddPosition(v int) *ScheduleSessionUpsert {
	u.Add(schedulesession.FieldPosition, v)
	return u
}

// SetStartHour sets the "start_hour" field.
func (u *ScheduleSessionUpsert) SetStartHour(v int) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldStartHour, v)
	return u
}

// UpdateStartHour sets the "start_hour" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdateStartHour() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldStartHour)
	return u
}

// AddStartHour adds v to the "start_hour" field.
func (u *ScheduleSessionUpsert) AddStartHour(v int) *ScheduleSessionUpsert {
	u.Add(schedulesession.FieldStartHour, v)
	return u
}

// SetStartMinute sets the "start_minute" field.
func (u *ScheduleSessionUpsert) SetStartMinute(v int) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldStartMinute, v)
	return u
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdateStartMinute() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldStartMinute)
	return u
}

// AddStartMinute adds v to the "start_minute" field.
func (u *ScheduleSessionUpsert) AddStartMinute(v int) *ScheduleSessionUpsert {
	u.Add(schedulesession.FieldStartMinute, v)
	return u
}

// SetEndHour sets the "end_hour" field.
func (u *ScheduleSessionUpsert) SetEndHour(v int) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldEndHour, v)
	return u
}

// UpdateEndHour sets the "end_hour" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdateEndHour() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldEndHour)
	return u
}

// AddEndHour adds v to the "end_hour" field.
func (u *ScheduleSessionUpsert) AddEndHour(v int) *ScheduleSessionUpsert {
	u.Add(schedulesession.FieldEndHour, v)
	return u
}

// SetEndMinute sets the "end_minute" field.
func (u *ScheduleSessionUpsert) SetEndMinute(v int) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldEndMinute, v)
	return u
}

// UpdateEndMinute sets the "end_minute" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdateEndMinute() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldEndMinute)
	return u
}

// AddEndMinute adds v to the "end_minute" field.
func (u *ScheduleSessionUpsert) AddEndMinute(v int) *ScheduleSessionUpsert {
	u.Add(schedulesession.FieldEndMinute, v)
	return u
}

// SetActive sets the "active" field.
func (u *ScheduleSessionUpsert) SetActive(v bool) *ScheduleSessionUpsert {
	u.Set(schedulesession.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ScheduleSessionUpsert) UpdateActive() *ScheduleSessionUpsert {
	u.SetExcluded(schedulesession.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScheduleSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedulesession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleSessionUpsertOne) UpdateNewValues() *ScheduleSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(schedulesession.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(schedulesession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduleSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduleSessionUpsertOne) Ignore() *ScheduleSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleSessionUpsertOne) DoNothing() *ScheduleSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleSessionCreate.OnConflict
// documentation for more info.
func (u *ScheduleSessionUpsertOne) Update(set func(*ScheduleSessionUpsert)) *ScheduleSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleSessionUpsertOne) SetUpdatedAt(v time.Time) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdateUpdatedAt() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *ScheduleSessionUpsertOne) SetDoctorID(v uuid.UUID) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdateDoctorID() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateDoctorID()
	})
}

// SetWeekday sets the "weekday" field.
func (u *ScheduleSessionUpsertOne) SetWeekday(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetWeekday(v)
	})
}

// AddWeekday adds v to the "weekday" field.
func (u *ScheduleSessionUpsertOne) AddWeekday(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddWeekday(v)
	})
}

// UpdateWeekday sets the "weekday" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdateWeekday() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateWeekday()
	})
}

// SetPosition sets the "position" field.
func (u *ScheduleSessionUpsertOne) SetPosition(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ScheduleSessionUpsertOne) AddPosition(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdatePosition() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdatePosition()
	})
}

// SetStartHour sets the "start_hour" field.
func (u *ScheduleSessionUpsertOne) SetStartHour(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetStartHour(v)
	})
}

// AddStartHour adds v to the "start_hour" field.
func (u *ScheduleSessionUpsertOne) AddStartHour(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddStartHour(v)
	})
}

// UpdateStartHour sets the "start_hour" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdateStartHour() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateStartHour()
	})
}

// SetStartMinute sets the "start_minute" field.
func (u *ScheduleSessionUpsertOne) SetStartMinute(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetStartMinute(v)
	})
}

// AddStartMinute adds v to the "start_minute" field.
func (u *ScheduleSessionUpsertOne) AddStartMinute(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddStartMinute(v)
	})
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdateStartMinute() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateStartMinute()
	})
}

// SetEndHour sets the "end_hour" field.
func (u *ScheduleSessionUpsertOne) SetEndHour(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetEndHour(v)
	})
}

// AddEndHour adds v to the "end_hour" field.
func (u *ScheduleSessionUpsertOne) AddEndHour(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddEndHour(v)
	})
}

// UpdateEndHour sets the "end_hour" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdateEndHour() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateEndHour()
	})
}

// SetEndMinute sets the "end_minute" field.
func (u *ScheduleSessionUpsertOne) SetEndMinute(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetEndMinute(v)
	})
}

// AddEndMinute adds v to the "end_minute" field.
func (u *ScheduleSessionUpsertOne) AddEndMinute(v int) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddEndMinute(v)
	})
}

// UpdateEndMinute sets the "end_minute" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdateEndMinute() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateEndMinute()
	})
}

// SetActive sets the "active" field.
func (u *ScheduleSessionUpsertOne) SetActive(v bool) *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ScheduleSessionUpsertOne) UpdateActive() *ScheduleSessionUpsertOne {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ScheduleSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ScheduleSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduleSessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ScheduleSessionUpsertOne.ID is not supported by MySQL driver. Use ScheduleSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduleSessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduleSessionCreateBulk is the builder for creating many ScheduleSession entities in bulk.
type ScheduleSessionCreateBulk struct {
	config
	err      error
	builders []*ScheduleSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the ScheduleSession entities in the database.
func (_c *ScheduleSessionCreateBulk) Save(ctx context.Context) ([]*ScheduleSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduleSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleSessionMutation)
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
func (_c *ScheduleSessionCreateBulk) SaveX(ctx context.Context) []*ScheduleSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduleSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleSessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduleSessionUpsertBulk {
	_c.conflict = opts
	return &ScheduleSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduleSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleSessionCreateBulk) OnConflictColumns(columns ...string) *ScheduleSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleSessionUpsertBulk{
		create: _c,
	}
}

// ScheduleSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of ScheduleSession nodes.
type ScheduleSessionUpsertBulk struct {
	create *ScheduleSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScheduleSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedulesession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleSessionUpsertBulk) UpdateNewValues() *ScheduleSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(schedulesession.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(schedulesession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduleSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduleSessionUpsertBulk) Ignore() *ScheduleSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleSessionUpsertBulk) DoNothing() *ScheduleSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleSessionCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduleSessionUpsertBulk) Update(set func(*ScheduleSessionUpsert)) *ScheduleSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleSessionUpsertBulk) SetUpdatedAt(v time.Time) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdateUpdatedAt() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *ScheduleSessionUpsertBulk) SetDoctorID(v uuid.UUID) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdateDoctorID() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateDoctorID()
	})
}

// SetWeekday sets the "weekday" field.
func (u *ScheduleSessionUpsertBulk) SetWeekday(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetWeekday(v)
	})
}

// AddWeekday adds v to the "weekday" field.
func (u *ScheduleSessionUpsertBulk) AddWeekday(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddWeekday(v)
	})
}

// UpdateWeekday sets the "weekday" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdateWeekday() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateWeekday()
	})
}

// SetPosition sets the "position" field.
func (u *ScheduleSessionUpsertBulk) SetPosition(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ScheduleSessionUpsertBulk) AddPosition(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdatePosition() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdatePosition()
	})
}

// SetStartHour sets the "start_hour" field.
func (u *ScheduleSessionUpsertBulk) SetStartHour(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetStartHour(v)
	})
}

// AddStartHour adds v to the "start_hour" field.
func (u *ScheduleSessionUpsertBulk) AddStartHour(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddStartHour(v)
	})
}

// UpdateStartHour sets the "start_hour" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdateStartHour() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateStartHour()
	})
}

// SetStartMinute sets the "start_minute" field.
func (u *ScheduleSessionUpsertBulk) SetStartMinute(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetStartMinute(v)
	})
}

// AddStartMinute adds v to the "start_minute" field.
func (u *ScheduleSessionUpsertBulk) AddStartMinute(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddStartMinute(v)
	})
}

// UpdateStartMinute sets the "start_minute" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdateStartMinute() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateStartMinute()
	})
}

// SetEndHour sets the "end_hour" field.
func (u *ScheduleSessionUpsertBulk) SetEndHour(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetEndHour(v)
	})
}

// AddEndHour adds v to the "end_hour" field.
func (u *ScheduleSessionUpsertBulk) AddEndHour(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddEndHour(v)
	})
}

// UpdateEndHour sets the "end_hour" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdateEndHour() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateEndHour()
	})
}

// SetEndMinute sets the "end_minute" field.
func (u *ScheduleSessionUpsertBulk) SetEndMinute(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetEndMinute(v)
	})
}

// AddEndMinute adds v to the "end_minute" field.
func (u *ScheduleSessionUpsertBulk) AddEndMinute(v int) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.AddEndMinute(v)
	})
}

// UpdateEndMinute sets the "end_minute" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdateEndMinute() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateEndMinute()
	})
}

// SetActive sets the "active" field.
func (u *ScheduleSessionUpsertBulk) SetActive(v bool) *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *ScheduleSessionUpsertBulk) UpdateActive() *ScheduleSessionUpsertBulk {
	return u.Update(func(s *ScheduleSessionUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *ScheduleSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ScheduleSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ScheduleSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
