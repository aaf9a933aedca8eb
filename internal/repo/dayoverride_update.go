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
	"github.com/nivaran/nivaran_backend/internal/repo/dayoverride"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// DayOverrideUpdate is the builder for updating DayOverride entities.
type DayOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *DayOverrideMutation
}

// Where appends a list predicates to the DayOverrideUpdate builder.
func (_u *DayOverrideUpdate) Where(ps ...predicate.DayOverride) *DayOverrideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DayOverrideUpdate) SetUpdatedAt(v time.Time) *DayOverrideUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DayOverrideUpdate) SetDoctorID(v uuid.UUID) *DayOverrideUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DayOverrideUpdate) SetNillableDoctorID(v *uuid.UUID) *DayOverrideUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *DayOverrideUpdate) SetDay(v string) *DayOverrideUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *DayOverrideUpdate) SetNillableDay(v *string) *DayOverrideUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DayOverrideUpdate) SetKind(v dayoverride.Kind) *DayOverrideUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DayOverrideUpdate) SetNillableKind(v *dayoverride.Kind) *DayOverrideUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBreakStart sets the "break_start" field.
func (_u *DayOverrideUpdate) SetBreakStart(v time.Time) *DayOverrideUpdate {
	_u.mutation.SetBreakStart(v)
	return _u
}

// SetNillableBreakStart sets the "break_start" field if the given value is not nil.
func (_u *DayOverrideUpdate) SetNillableBreakStart(v *time.Time) *DayOverrideUpdate {
	if v != nil {
		_u.SetBreakStart(*v)
	}
	return _u
}

// ClearBreakStart clears the value of the "break_start" field.
func (_u *DayOverrideUpdate) ClearBreakStart() *DayOverrideUpdate {
	_u.mutation.ClearBreakStart()
	return _u
}

// SetBreakEnd sets the "break_end" field.
func (_u *DayOverrideUpdate) SetBreakEnd(v time.Time) *DayOverrideUpdate {
	_u.mutation.SetBreakEnd(v)
	return _u
}

// SetNillableBreakEnd sets the "break_end" field if the given value is not nil.
func (_u *DayOverrideUpdate) SetNillableBreakEnd(v *time.Time) *DayOverrideUpdate {
	if v != nil {
		_u.SetBreakEnd(*v)
	}
	return _u
}

// ClearBreakEnd clears the value of the "break_end" field.
func (_u *DayOverrideUpdate) ClearBreakEnd() *DayOverrideUpdate {
	_u.mutation.ClearBreakEnd()
	return _u
}

// SetSessionIndex sets the "session_index" field.
func (_u *DayOverrideUpdate) SetSessionIndex(v int) *DayOverrideUpdate {
	_u.mutation.ResetSessionIndex()
	_u.mutation.SetSessionIndex(v)
	return _u
}

// SetNillableSessionIndex sets the "session_index" field if the given value is not nil.
func (_u *DayOverrideUpdate) SetNillableSessionIndex(v *int) *DayOverrideUpdate {
	if v != nil {
		_u.SetSessionIndex(*v)
	}
	return _u
}

// AddSessionIndex adds value to the "session_index" field.
func (_u *DayOverrideUpdate) AddSessionIndex(v int) *DayOverrideUpdate {
	_u.mutation.AddSessionIndex(v)
	return _u
}

// ClearSessionIndex clears the value of the "session_index" field.
func (_u *DayOverrideUpdate) ClearSessionIndex() *DayOverrideUpdate {
	_u.mutation.ClearSessionIndex()
	return _u
}

// SetOriginalEnd sets the "original_end" field.
func (_u *DayOverrideUpdate) SetOriginalEnd(v time.Time) *DayOverrideUpdate {
	_u.mutation.SetOriginalEnd(v)
	return _u
}

// SetNillableOriginalEnd sets the "original_end" field if the given value is not nil.
func (_u *DayOverrideUpdate) SetNillableOriginalEnd(v *time.Time) *DayOverrideUpdate {
	if v != nil {
		_u.SetOriginalEnd(*v)
	}
	return _u
}

// ClearOriginalEnd clears the value of the "original_end" field.
func (_u *DayOverrideUpdate) ClearOriginalEnd() *DayOverrideUpdate {
	_u.mutation.ClearOriginalEnd()
	return _u
}

// SetNewEnd sets the "new_end" field.
func (_u *DayOverrideUpdate) SetNewEnd(v time.Time) *DayOverrideUpdate {
	_u.mutation.SetNewEnd(v)
	return _u
}

// SetNillableNewEnd sets the "new_end" field if the given value is not nil.
func (_u *DayOverrideUpdate) SetNillableNewEnd(v *time.Time) *DayOverrideUpdate {
	if v != nil {
		_u.SetNewEnd(*v)
	}
	return _u
}

// ClearNewEnd clears the value of the "new_end" field.
func (_u *DayOverrideUpdate) ClearNewEnd() *DayOverrideUpdate {
	_u.mutation.ClearNewEnd()
	return _u
}

// Mutation returns the DayOverrideMutation object of the builder.
func (_u *DayOverrideUpdate) Mutation() *DayOverrideMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DayOverrideUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DayOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DayOverrideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DayOverrideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DayOverrideUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dayoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DayOverrideUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := dayoverride.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "DayOverride.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := dayoverride.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "DayOverride.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *DayOverrideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dayoverride.Table, dayoverride.Columns, sqlgraph.NewFieldSpec(dayoverride.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dayoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(dayoverride.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(dayoverride.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(dayoverride.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BreakStart(); ok {
		_spec.SetField(dayoverride.FieldBreakStart, field.TypeTime, value)
	}
	if _u.mutation.BreakStartCleared() {
		_spec.ClearField(dayoverride.FieldBreakStart, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakEnd(); ok {
		_spec.SetField(dayoverride.FieldBreakEnd, field.TypeTime, value)
	}
	if _u.mutation.BreakEndCleared() {
		_spec.ClearField(dayoverride.FieldBreakEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionIndex(); ok {
		_spec.SetField(dayoverride.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionIndex(); ok {
		_spec.AddField(dayoverride.FieldSessionIndex, field.TypeInt, value)
	}
	if _u.mutation.SessionIndexCleared() {
		_spec.ClearField(dayoverride.FieldSessionIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.OriginalEnd(); ok {
		_spec.SetField(dayoverride.FieldOriginalEnd, field.TypeTime, value)
	}
	if _u.mutation.OriginalEndCleared() {
		_spec.ClearField(dayoverride.FieldOriginalEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.NewEnd(); ok {
		_spec.SetField(dayoverride.FieldNewEnd, field.TypeTime, value)
	}
	if _u.mutation.NewEndCleared() {
		_spec.ClearField(dayoverride.FieldNewEnd, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dayoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DayOverrideUpdateOne is the builder for updating a single DayOverride entity.
type DayOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DayOverrideMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DayOverrideUpdateOne) SetUpdatedAt(v time.Time) *DayOverrideUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DayOverrideUpdateOne) SetDoctorID(v uuid.UUID) *DayOverrideUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DayOverrideUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DayOverrideUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *DayOverrideUpdateOne) SetDay(v string) *DayOverrideUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *DayOverrideUpdateOne) SetNillableDay(v *string) *DayOverrideUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DayOverrideUpdateOne) SetKind(v dayoverride.Kind) *DayOverrideUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DayOverrideUpdateOne) SetNillableKind(v *dayoverride.Kind) *DayOverrideUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBreakStart sets the "break_start" field.
func (_u *DayOverrideUpdateOne) SetBreakStart(v time.Time) *DayOverrideUpdateOne {
	_u.mutation.SetBreakStart(v)
	return _u
}

// SetNillableBreakStart sets the "break_start" field if the given value is not nil.
func (_u *DayOverrideUpdateOne) SetNillableBreakStart(v *time.Time) *DayOverrideUpdateOne {
	if v != nil {
		_u.SetBreakStart(*v)
	}
	return _u
}

// ClearBreakStart clears the value of the "break_start" field.
func (_u *DayOverrideUpdateOne) ClearBreakStart() *DayOverrideUpdateOne {
	_u.mutation.ClearBreakStart()
	return _u
}

// SetBreakEnd sets the "break_end" field.
func (_u *DayOverrideUpdateOne) SetBreakEnd(v time.Time) *DayOverrideUpdateOne {
	_u.mutation.SetBreakEnd(v)
	return _u
}

// SetNillableBreakEnd sets the "break_end" field if the given value is not nil.
func (_u *DayOverrideUpdateOne) SetNillableBreakEnd(v *time.Time) *DayOverrideUpdateOne {
	if v != nil {
		_u.SetBreakEnd(*v)
	}
	return _u
}

// ClearBreakEnd clears the value of the "break_end" field.
func (_u *DayOverrideUpdateOne) ClearBreakEnd() *DayOverrideUpdateOne {
	_u.mutation.ClearBreakEnd()
	return _u
}

// SetSessionIndex sets the "session_index" field.
func (_u *DayOverrideUpdateOne) SetSessionIndex(v int) *DayOverrideUpdateOne {
	_u.mutation.ResetSessionIndex()
	_u.mutation.SetSessionIndex(v)
	return _u
}

// SetNillableSessionIndex sets the "session_index" field if the given value is not nil.
func (_u *DayOverrideUpdateOne) SetNillableSessionIndex(v *int) *DayOverrideUpdateOne {
	if v != nil {
		_u.SetSessionIndex(*v)
	}
	return _u
}

// AddSessionIndex adds value to the "session_index" field.
func (_u *DayOverrideUpdateOne) AddSessionIndex(v int) *DayOverrideUpdateOne {
	_u.mutation.AddSessionIndex(v)
	return _u
}

// ClearSessionIndex clears the value of the "session_index" field.
func (_u *DayOverrideUpdateOne) ClearSessionIndex() *DayOverrideUpdateOne {
	_u.mutation.ClearSessionIndex()
	return _u
}

// SetOriginalEnd sets the "original_end" field.
func (_u *DayOverrideUpdateOne) SetOriginalEnd(v time.Time) *DayOverrideUpdateOne {
	_u.mutation.SetOriginalEnd(v)
	return _u
}

// SetNillableOriginalEnd sets the "original_end" field if the given value is not nil.
func (_u *DayOverrideUpdateOne) SetNillableOriginalEnd(v *time.Time) *DayOverrideUpdateOne {
	if v != nil {
		_u.SetOriginalEnd(*v)
	}
	return _u
}

// ClearOriginalEnd clears the value of the "original_end" field.
func (_u *DayOverrideUpdateOne) ClearOriginalEnd() *DayOverrideUpdateOne {
	_u.mutation.ClearOriginalEnd()
	return _u
}

// SetNewEnd sets the "new_end" field.
func (_u *DayOverrideUpdateOne) SetNewEnd(v time.Time) *DayOverrideUpdateOne {
	_u.mutation.SetNewEnd(v)
	return _u
}

// SetNillableNewEnd sets the "new_end" field if the given value is not nil.
func (_u *DayOverrideUpdateOne) SetNillableNewEnd(v *time.Time) *DayOverrideUpdateOne {
	if v != nil {
		_u.SetNewEnd(*v)
	}
	return _u
}

// ClearNewEnd clears the value of the "new_end" field.
func (_u *DayOverrideUpdateOne) ClearNewEnd() *DayOverrideUpdateOne {
	_u.mutation.ClearNewEnd()
	return _u
}

// Mutation returns the DayOverrideMutation object of the builder.
func (_u *DayOverrideUpdateOne) Mutation() *DayOverrideMutation {
	return _u.mutation
}

// Where appends a list predicates to the DayOverrideUpdate builder.
func (_u *DayOverrideUpdateOne) Where(ps ...predicate.DayOverride) *DayOverrideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DayOverrideUpdateOne) Select(field string, fields ...string) *DayOverrideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DayOverride entity.
func (_u *DayOverrideUpdateOne) Save(ctx context.Context) (*DayOverride, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DayOverrideUpdateOne) SaveX(ctx context.Context) *DayOverride {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DayOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DayOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DayOverrideUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dayoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DayOverrideUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := dayoverride.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "DayOverride.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := dayoverride.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "DayOverride.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *DayOverrideUpdateOne) sqlSave(ctx context.Context) (_node *DayOverride, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dayoverride.Table, dayoverride.Columns, sqlgraph.NewFieldSpec(dayoverride.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DayOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dayoverride.FieldID)
		for _, f := range fields {
			if !dayoverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != dayoverride.FieldID {
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
		_spec.SetField(dayoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(dayoverride.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(dayoverride.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(dayoverride.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BreakStart(); ok {
		_spec.SetField(dayoverride.FieldBreakStart, field.TypeTime, value)
	}
	if _u.mutation.BreakStartCleared() {
		_spec.ClearField(dayoverride.FieldBreakStart, field.TypeTime)
	}
	if value, ok := _u.mutation.BreakEnd(); ok {
		_spec.SetField(dayoverride.FieldBreakEnd, field.TypeTime, value)
	}
	if _u.mutation.BreakEndCleared() {
		_spec.ClearField(dayoverride.FieldBreakEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.SessionIndex(); ok {
		_spec.SetField(dayoverride.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionIndex(); ok {
		_spec.AddField(dayoverride.FieldSessionIndex, field.TypeInt, value)
	}
	if _u.mutation.SessionIndexCleared() {
		_spec.ClearField(dayoverride.FieldSessionIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.OriginalEnd(); ok {
		_spec.SetField(dayoverride.FieldOriginalEnd, field.TypeTime, value)
	}
	if _u.mutation.OriginalEndCleared() {
		_spec.ClearField(dayoverride.FieldOriginalEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.NewEnd(); ok {
		_spec.SetField(dayoverride.FieldNewEnd, field.TypeTime, value)
	}
	if _u.mutation.NewEndCleared() {
		_spec.ClearField(dayoverride.FieldNewEnd, field.TypeTime)
	}
	_node = &DayOverride{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dayoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
