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
	"github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
)

// ScheduleSessionUpdate is the builder for updating ScheduleSession entities.
type ScheduleSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleSessionMutation
}

// Where appends a list predicates to the ScheduleSessionUpdate builder.
func (_u *ScheduleSessionUpdate) Where(ps ...predicate.ScheduleSession) *ScheduleSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleSessionUpdate) SetUpdatedAt(v time.Time) *ScheduleSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ScheduleSessionUpdate) SetDoctorID(v uuid.UUID) *ScheduleSessionUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ScheduleSessionUpdate) SetNillableDoctorID(v *uuid.UUID) *ScheduleSessionUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *ScheduleSessionUpdate) SetWeekday(v int) *ScheduleSessionUpdate {
	_u.mutation.ResetWeekday()
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *ScheduleSessionUpdate) SetNillableWeekday(v *int) *ScheduleSessionUpdate {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// AddWeekday adds value to the "weekday" field.
func (_u *ScheduleSessionUpdate) AddWeekday(v int) *ScheduleSessionUpdate {
	_u.mutation.AddWeekday(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ScheduleSessionUpdate) SetPosition(v int) *ScheduleSessionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ScheduleSessionUpdate) SetNillablePosition(v *int) *ScheduleSessionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ScheduleSessionUpdate) AddPosition(v int) *ScheduleSessionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *ScheduleSessionUpdate) SetStartHour(v int) *ScheduleSessionUpdate {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *ScheduleSessionUpdate) SetNillableStartHour(v *int) *ScheduleSessionUpdate {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *ScheduleSessionUpdate) AddStartHour(v int) *ScheduleSessionUpdate {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *ScheduleSessionUpdate) SetStartMinute(v int) *ScheduleSessionUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *ScheduleSessionUpdate) SetNillableStartMinute(v *int) *ScheduleSessionUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *ScheduleSessionUpdate) AddStartMinute(v int) *ScheduleSessionUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndHour sets the "end_hour" field.
func (_u *ScheduleSessionUpdate) SetEndHour(v int) *ScheduleSessionUpdate {
	_u.mutation.ResetEndHour()
	_u.mutation.SetEndHour(v)
	return _u
}

// SetNillableEndHour sets the "end_hour" field if the given value is not nil.
func (_u *ScheduleSessionUpdate) SetNillableEndHour(v *int) *ScheduleSessionUpdate {
	if v != nil {
		_u.SetEndHour(*v)
	}
	return _u
}

// AddEndHour adds value to the "end_hour" field.
func (_u *ScheduleSessionUpdate) AddEndHour(v int) *ScheduleSessionUpdate {
	_u.mutation.AddEndHour(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *ScheduleSessionUpdate) SetEndMinute(v int) *ScheduleSessionUpdate {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *ScheduleSessionUpdate) SetNillableEndMinute(v *int) *ScheduleSessionUpdate {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *ScheduleSessionUpdate) AddEndMinute(v int) *ScheduleSessionUpdate {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ScheduleSessionUpdate) SetActive(v bool) *ScheduleSessionUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ScheduleSessionUpdate) SetNillableActive(v *bool) *ScheduleSessionUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ScheduleSessionMutation object of the builder.
func (_u *ScheduleSessionUpdate) Mutation() *ScheduleSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedulesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleSessionUpdate) check() error {
	if v, ok := _u.mutation.Weekday(); ok {
		if err := schedulesession.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.weekday": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := schedulesession.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartHour(); ok {
		if err := schedulesession.StartHourValidator(v); err != nil {
			return &ValidationError{Name: "start_hour", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.start_hour": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartMinute(); ok {
		if err := schedulesession.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.start_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndHour(); ok {
		if err := schedulesession.EndHourValidator(v); err != nil {
			return &ValidationError{Name: "end_hour", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.end_hour": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndMinute(); ok {
		if err := schedulesession.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.end_minute": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedulesession.Table, schedulesession.Columns, sqlgraph.NewFieldSpec(schedulesession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedulesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(schedulesession.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(schedulesession.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekday(); ok {
		_spec.AddField(schedulesession.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(schedulesession.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(schedulesession.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(schedulesession.FieldStartHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(schedulesession.FieldStartHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(schedulesession.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(schedulesession.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndHour(); ok {
		_spec.SetField(schedulesession.FieldEndHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndHour(); ok {
		_spec.AddField(schedulesession.FieldEndHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(schedulesession.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(schedulesession.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(schedulesession.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleSessionUpdateOne is the builder for updating a single ScheduleSession entity.
type ScheduleSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleSessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleSessionUpdateOne) SetUpdatedAt(v time.Time) *ScheduleSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ScheduleSessionUpdateOne) SetDoctorID(v uuid.UUID) *ScheduleSessionUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ScheduleSessionUpdateOne) SetNillableDoctorID(v *uuid.UUID) *ScheduleSessionUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *ScheduleSessionUpdateOne) SetWeekday(v int) *ScheduleSessionUpdateOne {
	_u.mutation.ResetWeekday()
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *ScheduleSessionUpdateOne) SetNillableWeekday(v *int) *ScheduleSessionUpdateOne {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// AddWeekday adds value to the "weekday" field.
func (_u *ScheduleSessionUpdateOne) AddWeekday(v int) *ScheduleSessionUpdateOne {
	_u.mutation.AddWeekday(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ScheduleSessionUpdateOne) SetPosition(v int) *ScheduleSessionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ScheduleSessionUpdateOne) SetNillablePosition(v *int) *ScheduleSessionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ScheduleSessionUpdateOne) AddPosition(v int) *ScheduleSessionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *ScheduleSessionUpdateOne) SetStartHour(v int) *ScheduleSessionUpdateOne {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *ScheduleSessionUpdateOne) SetNillableStartHour(v *int) *ScheduleSessionUpdateOne {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *ScheduleSessionUpdateOne) AddStartHour(v int) *ScheduleSessionUpdateOne {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *ScheduleSessionUpdateOne) SetStartMinute(v int) *ScheduleSessionUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *ScheduleSessionUpdateOne) SetNillableStartMinute(v *int) *ScheduleSessionUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *ScheduleSessionUpdateOne) AddStartMinute(v int) *ScheduleSessionUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetEndHour sets the "end_hour" field.
func (_u *ScheduleSessionUpdateOne) SetEndHour(v int) *ScheduleSessionUpdateOne {
	_u.mutation.ResetEndHour()
	_u.mutation.SetEndHour(v)
	return _u
}

// SetNillableEndHour sets the "end_hour" field if the given value is not nil.
func (_u *ScheduleSessionUpdateOne) SetNillableEndHour(v *int) *ScheduleSessionUpdateOne {
	if v != nil {
		_u.SetEndHour(*v)
	}
	return _u
}

// AddEndHour adds value to the "end_hour" field.
func (_u *ScheduleSessionUpdateOne) AddEndHour(v int) *ScheduleSessionUpdateOne {
	_u.mutation.AddEndHour(v)
	return _u
}

// SetEndMinute sets the "end_minute" field.
func (_u *ScheduleSessionUpdateOne) SetEndMinute(v int) *ScheduleSessionUpdateOne {
	_u.mutation.ResetEndMinute()
	_u.mutation.SetEndMinute(v)
	return _u
}

// SetNillableEndMinute sets the "end_minute" field if the given value is not nil.
func (_u *ScheduleSessionUpdateOne) SetNillableEndMinute(v *int) *ScheduleSessionUpdateOne {
	if v != nil {
		_u.SetEndMinute(*v)
	}
	return _u
}

// AddEndMinute adds value to the "end_minute" field.
func (_u *ScheduleSessionUpdateOne) AddEndMinute(v int) *ScheduleSessionUpdateOne {
	_u.mutation.AddEndMinute(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ScheduleSessionUpdateOne) SetActive(v bool) *ScheduleSessionUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ScheduleSessionUpdateOne) SetNillableActive(v *bool) *ScheduleSessionUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the ScheduleSessionMutation object of the builder.
func (_u *ScheduleSessionUpdateOne) Mutation() *ScheduleSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleSessionUpdate builder.
func (_u *ScheduleSessionUpdateOne) Where(ps ...predicate.ScheduleSession) *ScheduleSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleSessionUpdateOne) Select(field string, fields ...string) *ScheduleSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduleSession entity.
func (_u *ScheduleSessionUpdateOne) Save(ctx context.Context) (*ScheduleSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleSessionUpdateOne) SaveX(ctx context.Context) *ScheduleSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedulesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Weekday(); ok {
		if err := schedulesession.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.weekday": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := schedulesession.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartHour(); ok {
		if err := schedulesession.StartHourValidator(v); err != nil {
			return &ValidationError{Name: "start_hour", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.start_hour": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartMinute(); ok {
		if err := schedulesession.StartMinuteValidator(v); err != nil {
			return &ValidationError{Name: "start_minute", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.start_minute": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndHour(); ok {
		if err := schedulesession.EndHourValidator(v); err != nil {
			return &ValidationError{Name: "end_hour", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.end_hour": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndMinute(); ok {
		if err := schedulesession.EndMinuteValidator(v); err != nil {
			return &ValidationError{Name: "end_minute", err: fmt.Errorf(`repo: validator failed for field "ScheduleSession.end_minute": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleSessionUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedulesession.Table, schedulesession.Columns, sqlgraph.NewFieldSpec(schedulesession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ScheduleSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedulesession.FieldID)
		for _, f := range fields {
			if !schedulesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != schedulesession.FieldID {
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
		_spec.SetField(schedulesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(schedulesession.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(schedulesession.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekday(); ok {
		_spec.AddField(schedulesession.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(schedulesession.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(schedulesession.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(schedulesession.FieldStartHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(schedulesession.FieldStartHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(schedulesession.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(schedulesession.FieldStartMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndHour(); ok {
		_spec.SetField(schedulesession.FieldEndHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndHour(); ok {
		_spec.AddField(schedulesession.FieldEndHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndMinute(); ok {
		_spec.SetField(schedulesession.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndMinute(); ok {
		_spec.AddField(schedulesession.FieldEndMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(schedulesession.FieldActive, field.TypeBool, value)
	}
	_node = &ScheduleSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedulesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
