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
	"github.com/nivaran/nivaran_backend/internal/repo/dayoverride"
)

// DayOverrideCreate is the builder for creating a DayOverride entity.
type DayOverrideCreate struct {
	config
	mutation *DayOverrideMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DayOverrideCreate) SetCreatedAt(v time.Time) *DayOverrideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DayOverrideCreate) SetNillableCreatedAt(v *time.Time) *DayOverrideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DayOverrideCreate) SetUpdatedAt(v time.Time) *DayOverrideCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DayOverrideCreate) SetNillableUpdatedAt(v *time.Time) *DayOverrideCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DayOverrideCreate) SetDoctorID(v uuid.UUID) *DayOverrideCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *DayOverrideCreate) SetDay(v string) *DayOverrideCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *DayOverrideCreate) SetKind(v dayoverride.Kind) *DayOverrideCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetBreakStart sets the "break_start" field.
func (_c *DayOverrideCreate) SetBreakStart(v time.Time) *DayOverrideCreate {
	_c.mutation.SetBreakStart(v)
	return _c
}

// SetNillableBreakStart sets the "break_start" field if the given value is not nil.
func (_c *DayOverrideCreate) SetNillableBreakStart(v *time.Time) *DayOverrideCreate {
	if v != nil {
		_c.SetBreakStart(*v)
	}
	return _c
}

// SetBreakEnd sets the "break_end" field.
func (_c *DayOverrideCreate) SetBreakEnd(v time.Time) *DayOverrideCreate {
	_c.mutation.SetBreakEnd(v)
	return _c
}

// SetNillableBreakEnd sets the "break_end" field if the given value is not nil.
func (_c *DayOverrideCreate) SetNillableBreakEnd(v *time.Time) *DayOverrideCreate {
	if v != nil {
		_c.SetBreakEnd(*v)
	}
	return _c
}

// SetSessionIndex sets the "session_index" field.
func (_c *DayOverrideCreate) SetSessionIndex(v int) *DayOverrideCreate {
	_c.mutation.SetSessionIndex(v)
	return _c
}

// SetNillableSessionIndex sets the "session_index" field if the given value is not nil.
func (_c *DayOverrideCreate) SetNillableSessionIndex(v *int) *DayOverrideCreate {
	if v != nil {
		_c.SetSessionIndex(*v)
	}
	return _c
}

// SetOriginalEnd sets the "original_end" field.
func (_c *DayOverrideCreate) SetOriginalEnd(v time.Time) *DayOverrideCreate {
	_c.mutation.SetOriginalEnd(v)
	return _c
}

// SetNillableOriginalEnd sets the "original_end" field if the given value is not nil.
func (_c *DayOverrideCreate) SetNillableOriginalEnd(v *time.Time) *DayOverrideCreate {
	if v != nil {
		_c.SetOriginalEnd(*v)
	}
	return _c
}

// SetNewEnd sets the "new_end" field.
func (_c *DayOverrideCreate) SetNewEnd(v time.Time) *DayOverrideCreate {
	_c.mutation.SetNewEnd(v)
	return _c
}

// SetNillableNewEnd sets the "new_end" field if the given value is not nil.
func (_c *DayOverrideCreate) SetNillableNewEnd(v *time.Time) *DayOverrideCreate {
	if v != nil {
		_c.SetNewEnd(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DayOverrideCreate) SetID(v uuid.UUID) *DayOverrideCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DayOverrideCreate) SetNillableID(v *uuid.UUID) *DayOverrideCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DayOverrideMutation object of the builder.
func (_c *DayOverrideCreate) Mutation() *DayOverrideMutation {
	return _c.mutation
}

// Save creates the DayOverride in the database.
func (_c *DayOverrideCreate) Save(ctx context.Context) (*DayOverride, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DayOverrideCreate) SaveX(ctx context.Context) *DayOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DayOverrideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DayOverrideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DayOverrideCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dayoverride.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dayoverride.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dayoverride.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DayOverrideCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DayOverride.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DayOverride.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DayOverride.doctor_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`repo: missing required field "DayOverride.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := dayoverride.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "DayOverride.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "DayOverride.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := dayoverride.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "DayOverride.kind": %w`, err)}
		}
	}
	return nil
}

func (_c *DayOverrideCreate) sqlSave(ctx context.Context) (*DayOverride, error) {
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

func (_c *DayOverrideCreate) createSpec() (*DayOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &DayOverride{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dayoverride.Table, sqlgraph.NewFieldSpec(dayoverride.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dayoverride.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dayoverride.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(dayoverride.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(dayoverride.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(dayoverride.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.BreakStart(); ok {
		_spec.SetField(dayoverride.FieldBreakStart, field.TypeTime, value)
		_node.BreakStart = &value
	}
	if value, ok := _c.mutation.BreakEnd(); ok {
		_spec.SetField(dayoverride.FieldBreakEnd, field.TypeTime, value)
		_node.BreakEnd = &value
	}
	if value, ok := _c.mutation.SessionIndex(); ok {
		_spec.SetField(dayoverride.FieldSessionIndex, field.TypeInt, value)
		_node.SessionIndex = &value
	}
	if value, ok := _c.mutation.OriginalEnd(); ok {
		_spec.SetField(dayoverride.FieldOriginalEnd, field.TypeTime, value)
		_node.OriginalEnd = &value
	}
	if value, ok := _c.mutation.NewEnd(); ok {
		_spec.SetField(dayoverride.FieldNewEnd, field.TypeTime, value)
		_node.NewEnd = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DayOverride.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DayOverrideUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DayOverrideCreate) OnConflict(opts ...sql.ConflictOption) *DayOverrideUpsertOne {
	_c.conflict = opts
	return &DayOverrideUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DayOverride.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DayOverrideCreate) OnConflictColumns(columns ...string) *DayOverrideUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DayOverrideUpsertOne{
		create: _c,
	}
}

type (
	// DayOverrideUpsertOne is the builder for "upsert"-ing
	//  one DayOverride node.
	DayOverrideUpsertOne struct {
		create *DayOverrideCreate
	}

	// DayOverrideUpsert is the "OnConflict" setter.
	DayOverrideUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DayOverrideUpsert) SetUpdatedAt(v time.Time) *DayOverrideUpsert {
	u.Set(dayoverride.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateUpdatedAt() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *DayOverrideUpsert) SetDoctorID(v uuid.UUID) *DayOverrideUpsert {
	u.Set(dayoverride.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateDoctorID() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldDoctorID)
	return u
}

// SetDay sets the "day" field.
func (u *DayOverrideUpsert) SetDay(v string) *DayOverrideUpsert {
	u.Set(dayoverride.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateDay() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldDay)
	return u
}

// SetKind sets the "kind" field.
func (u *DayOverrideUpsert) SetKind(v dayoverride.Kind) *DayOverrideUpsert {
	u.Set(dayoverride.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateKind() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldKind)
	return u
}

// SetBreakStart sets the "break_start" field.
func (u *DayOverrideUpsert) SetBreakStart(v time.Time) *DayOverrideUpsert {
	u.Set(dayoverride.FieldBreakStart, v)
	return u
}

// UpdateBreakStart sets the "break_start" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateBreakStart() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldBreakStart)
	return u
}

// ClearBreakStart clears the value of the "break_start" field.
func (u *DayOverrideUpsert) ClearBreakStart() *DayOverrideUpsert {
	u.SetNull(dayoverride.FieldBreakStart)
	return u
}

// SetBreakEnd sets the "break_end" field.
func (u *DayOverrideUpsert) SetBreakEnd(v time.Time) *DayOverrideUpsert {
	u.Set(dayoverride.FieldBreakEnd, v)
	return u
}

// UpdateBreakEnd sets the "break_end" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateBreakEnd() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldBreakEnd)
	return u
}

// ClearBreakEnd clears the value of the "break_end" field.
func (u *DayOverrideUpsert) ClearBreakEnd() *DayOverrideUpsert {
	u.SetNull(dayoverride.FieldBreakEnd)
	return u
}

// SetSessionIndex sets the "session_index" field.
func (u *DayOverrideUpsert) SetSessionIndex(v int) *DayOverrideUpsert {
	u.Set(dayoverride.FieldSessionIndex, v)
	return u
}

// UpdateSessionIndex sets the "session_index" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateSessionIndex() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldSessionIndex)
	return u
}

// AddSessionIndex adds v to the "session_index" field.
func (u *DayOverrideUpsert) AddSessionIndex(v int) *DayOverrideUpsert {
	u.Add(dayoverride.FieldSessionIndex, v)
	return u
}

// ClearSessionIndex clears the value of the "session_index" field.
func (u *DayOverrideUpsert) ClearSessionIndex() *DayOverrideUpsert {
	u.SetNull(dayoverride.FieldSessionIndex)
	return u
}

// SetOriginalEnd sets the "original_end" field.
func (u *DayOverrideUpsert) SetOriginalEnd(v time.Time) *DayOverrideUpsert {
	u.Set(dayoverride.FieldOriginalEnd, v)
	return u
}

// UpdateOriginalEnd sets the "original_end" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateOriginalEnd() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldOriginalEnd)
	return u
}

// ClearOriginalEnd clears the value of the "original_end" field.
func (u *DayOverrideUpsert) ClearOriginalEnd() *DayOverrideUpsert {
	u.SetNull(dayoverride.FieldOriginalEnd)
	return u
}

// SetNewEnd sets the "new_end" field.
func (u *DayOverrideUpsert) SetNewEnd(v time.Time) *DayOverrideUpsert {
	u.Set(dayoverride.FieldNewEnd, v)
	return u
}

// UpdateNewEnd sets the "new_end" field to the value that was provided on create.
func (u *DayOverrideUpsert) UpdateNewEnd() *DayOverrideUpsert {
	u.SetExcluded(dayoverride.FieldNewEnd)
	return u
}

// ClearNewEnd clears the value of the "new_end" field.
func (u *DayOverrideUpsert) ClearNewEnd() *DayOverrideUpsert {
	u.SetNull(dayoverride.FieldNewEnd)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DayOverride.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dayoverride.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DayOverrideUpsertOne) UpdateNewValues() *DayOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dayoverride.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dayoverride.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DayOverride.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DayOverrideUpsertOne) Ignore() *DayOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DayOverrideUpsertOne) DoNothing() *DayOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DayOverrideCreate.OnConflict
// documentation for more info.
func (u *DayOverrideUpsertOne) Update(set func(*DayOverrideUpsert)) *DayOverrideUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DayOverrideUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DayOverrideUpsertOne) SetUpdatedAt(v time.Time) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateUpdatedAt() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DayOverrideUpsertOne) SetDoctorID(v uuid.UUID) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateDoctorID() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDay sets the "day" field.
func (u *DayOverrideUpsertOne) SetDay(v string) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateDay() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateDay()
	})
}

// SetKind sets the "kind" field.
func (u *DayOverrideUpsertOne) SetKind(v dayoverride.Kind) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateKind() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateKind()
	})
}

// SetBreakStart sets the "break_start" field.
func (u *DayOverrideUpsertOne) SetBreakStart(v time.Time) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetBreakStart(v)
	})
}

// UpdateBreakStart sets the "break_start" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateBreakStart() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateBreakStart()
	})
}

// ClearBreakStart clears the value of the "break_start" field.
func (u *DayOverrideUpsertOne) ClearBreakStart() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearBreakStart()
	})
}

// SetBreakEnd sets the "break_end" field.
func (u *DayOverrideUpsertOne) SetBreakEnd(v time.Time) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetBreakEnd(v)
	})
}

// UpdateBreakEnd sets the "break_end" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateBreakEnd() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateBreakEnd()
	})
}

// ClearBreakEnd clears the value of the "break_end" field.
func (u *DayOverrideUpsertOne) ClearBreakEnd() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearBreakEnd()
	})
}

// SetSessionIndex sets the "session_index" field.
func (u *DayOverrideUpsertOne) SetSessionIndex(v int) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetSessionIndex(v)
	})
}

// AddSessionIndex adds v to the "session_index" field.
func (u *DayOverrideUpsertOne) AddSessionIndex(v int) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.AddSessionIndex(v)
	})
}

// UpdateSessionIndex sets the "session_index" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateSessionIndex() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateSessionIndex()
	})
}

// ClearSessionIndex clears the value of the "session_index" field.
func (u *DayOverrideUpsertOne) ClearSessionIndex() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearSessionIndex()
	})
}

// SetOriginalEnd sets the "original_end" field.
func (u *DayOverrideUpsertOne) SetOriginalEnd(v time.Time) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetOriginalEnd(v)
	})
}

// UpdateOriginalEnd sets the "original_end" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateOriginalEnd() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateOriginalEnd()
	})
}

// ClearOriginalEnd clears the value of the "original_end" field.
func (u *DayOverrideUpsertOne) ClearOriginalEnd() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearOriginalEnd()
	})
}

// SetNewEnd sets the "new_end" field.
func (u *DayOverrideUpsertOne) SetNewEnd(v time.Time) *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetNewEnd(v)
	})
}

// UpdateNewEnd sets the "new_end" field to the value that was provided on create.
func (u *DayOverrideUpsertOne) UpdateNewEnd() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateNewEnd()
	})
}

// ClearNewEnd clears the value of the "new_end" field.
func (u *DayOverrideUpsertOne) ClearNewEnd() *DayOverrideUpsertOne {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearNewEnd()
	})
}

// Exec executes the query.
func (u *DayOverrideUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DayOverrideCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DayOverrideUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DayOverrideUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DayOverrideUpsertOne.ID is not supported by MySQL driver. Use DayOverrideUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DayOverrideUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DayOverrideCreateBulk is the builder for creating many DayOverride entities in bulk.
type DayOverrideCreateBulk struct {
	config
	err      error
	builders []*DayOverrideCreate
	conflict []sql.ConflictOption
}

// Save creates the DayOverride entities in the database.
func (_c *DayOverrideCreateBulk) Save(ctx context.Context) ([]*DayOverride, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DayOverride, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DayOverrideMutation)
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
func (_c *DayOverrideCreateBulk) SaveX(ctx context.Context) []*DayOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DayOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DayOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DayOverride.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DayOverrideUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DayOverrideCreateBulk) OnConflict(opts ...sql.ConflictOption) *DayOverrideUpsertBulk {
	_c.conflict = opts
	return &DayOverrideUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DayOverride.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DayOverrideCreateBulk) OnConflictColumns(columns ...string) *DayOverrideUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DayOverrideUpsertBulk{
		create: _c,
	}
}

// DayOverrideUpsertBulk is the builder for "upsert"-ing
// a bulk of DayOverride nodes.
type DayOverrideUpsertBulk struct {
	create *DayOverrideCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DayOverride.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dayoverride.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DayOverrideUpsertBulk) UpdateNewValues() *DayOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dayoverride.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dayoverride.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DayOverride.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DayOverrideUpsertBulk) Ignore() *DayOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DayOverrideUpsertBulk) DoNothing() *DayOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DayOverrideCreateBulk.OnConflict
// documentation for more info.
func (u *DayOverrideUpsertBulk) Update(set func(*DayOverrideUpsert)) *DayOverrideUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DayOverrideUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DayOverrideUpsertBulk) SetUpdatedAt(v time.Time) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateUpdatedAt() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DayOverrideUpsertBulk) SetDoctorID(v uuid.UUID) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateDoctorID() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDay sets the "day" field.
func (u *DayOverrideUpsertBulk) SetDay(v string) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateDay() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateDay()
	})
}

// SetKind sets the "kind" field.
func (u *DayOverrideUpsertBulk) SetKind(v dayoverride.Kind) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateKind() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateKind()
	})
}

// SetBreakStart sets the "break_start" field.
func (u *DayOverrideUpsertBulk) SetBreakStart(v time.Time) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetBreakStart(v)
	})
}

// UpdateBreakStart sets the "break_start" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateBreakStart() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateBreakStart()
	})
}

// ClearBreakStart clears the value of the "break_start" field.
func (u *DayOverrideUpsertBulk) ClearBreakStart() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearBreakStart()
	})
}

// SetBreakEnd sets the "break_end" field.
func (u *DayOverrideUpsertBulk) SetBreakEnd(v time.Time) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetBreakEnd(v)
	})
}

// UpdateBreakEnd sets the "break_end" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateBreakEnd() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateBreakEnd()
	})
}

// ClearBreakEnd clears the value of the "break_end" field.
func (u *DayOverrideUpsertBulk) ClearBreakEnd() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearBreakEnd()
	})
}

// SetSessionIndex sets the "session_index" field.
func (u *DayOverrideUpsertBulk) SetSessionIndex(v int) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetSessionIndex(v)
	})
}

// AddSessionIndex adds v to the "session_index" field.
func (u *DayOverrideUpsertBulk) AddSessionIndex(v int) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.AddSessionIndex(v)
	})
}

// UpdateSessionIndex sets the "session_index" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateSessionIndex() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateSessionIndex()
	})
}

// ClearSessionIndex clears the value of the "session_index" field.
func (u *DayOverrideUpsertBulk) ClearSessionIndex() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearSessionIndex()
	})
}

// SetOriginalEnd sets the "original_end" field.
func (u *DayOverrideUpsertBulk) SetOriginalEnd(v time.Time) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetOriginalEnd(v)
	})
}

// UpdateOriginalEnd sets the "original_end" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateOriginalEnd() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateOriginalEnd()
	})
}

// ClearOriginalEnd clears the value of the "original_end" field.
func (u *DayOverrideUpsertBulk) ClearOriginalEnd() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearOriginalEnd()
	})
}

// SetNewEnd sets the "new_end" field.
func (u *DayOverrideUpsertBulk) SetNewEnd(v time.Time) *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.SetNewEnd(v)
	})
}

// UpdateNewEnd sets the "new_end" field to the value that was provided on create.
func (u *DayOverrideUpsertBulk) UpdateNewEnd() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.UpdateNewEnd()
	})
}

// ClearNewEnd clears the value of the "new_end" field.
func (u *DayOverrideUpsertBulk) ClearNewEnd() *DayOverrideUpsertBulk {
	return u.Update(func(s *DayOverrideUpsert) {
		s.ClearNewEnd()
	})
}

// Exec executes the query.
func (u *DayOverrideUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DayOverrideCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DayOverrideCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DayOverrideUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
