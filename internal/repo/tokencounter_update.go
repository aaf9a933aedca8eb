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
	"github.com/nivaran/nivaran_backend/internal/repo/tokencounter"
)

// TokenCounterUpdate is the builder for updating TokenCounter entities.
type TokenCounterUpdate struct {
	config
	hooks    []Hook
	mutation *TokenCounterMutation
}

// Where appends a list predicates to the TokenCounterUpdate builder.
func (_u *TokenCounterUpdate) Where(ps ...predicate.TokenCounter) *TokenCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TokenCounterUpdate) SetUpdatedAt(v time.Time) *TokenCounterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *TokenCounterUpdate) SetClinicID(v uuid.UUID) *TokenCounterUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *TokenCounterUpdate) SetNillableClinicID(v *uuid.UUID) *TokenCounterUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TokenCounterUpdate) SetDoctorID(v uuid.UUID) *TokenCounterUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TokenCounterUpdate) SetNillableDoctorID(v *uuid.UUID) *TokenCounterUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *TokenCounterUpdate) SetDay(v string) *TokenCounterUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *TokenCounterUpdate) SetNillableDay(v *string) *TokenCounterUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetSessionIndex sets the "session_index" field.
func (_u *TokenCounterUpdate) SetSessionIndex(v int) *TokenCounterUpdate {
	_u.mutation.ResetSessionIndex()
	_u.mutation.SetSessionIndex(v)
	return _u
}

// SetNillableSessionIndex sets the "session_index" field if the given value is not nil.
func (_u *TokenCounterUpdate) SetNillableSessionIndex(v *int) *TokenCounterUpdate {
	if v != nil {
		_u.SetSessionIndex(*v)
	}
	return _u
}

// AddSessionIndex adds value to the "session_index" field.
func (_u *TokenCounterUpdate) AddSessionIndex(v int) *TokenCounterUpdate {
	_u.mutation.AddSessionIndex(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *TokenCounterUpdate) SetValue(v int) *TokenCounterUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *TokenCounterUpdate) SetNillableValue(v *int) *TokenCounterUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *TokenCounterUpdate) AddValue(v int) *TokenCounterUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// Mutation returns the TokenCounterMutation object of the builder.
func (_u *TokenCounterUpdate) Mutation() *TokenCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenCounterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TokenCounterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tokencounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenCounterUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := tokencounter.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "TokenCounter.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionIndex(); ok {
		if err := tokencounter.SessionIndexValidator(v); err != nil {
			return &ValidationError{Name: "session_index", err: fmt.Errorf(`repo: validator failed for field "TokenCounter.session_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := tokencounter.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`repo: validator failed for field "TokenCounter.value": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokencounter.Table, tokencounter.Columns, sqlgraph.NewFieldSpec(tokencounter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tokencounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(tokencounter.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(tokencounter.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(tokencounter.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionIndex(); ok {
		_spec.SetField(tokencounter.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionIndex(); ok {
		_spec.AddField(tokencounter.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(tokencounter.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(tokencounter.FieldValue, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokencounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenCounterUpdateOne is the builder for updating a single TokenCounter entity.
type TokenCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenCounterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TokenCounterUpdateOne) SetUpdatedAt(v time.Time) *TokenCounterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *TokenCounterUpdateOne) SetClinicID(v uuid.UUID) *TokenCounterUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *TokenCounterUpdateOne) SetNillableClinicID(v *uuid.UUID) *TokenCounterUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *TokenCounterUpdateOne) SetDoctorID(v uuid.UUID) *TokenCounterUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *TokenCounterUpdateOne) SetNillableDoctorID(v *uuid.UUID) *TokenCounterUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *TokenCounterUpdateOne) SetDay(v string) *TokenCounterUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *TokenCounterUpdateOne) SetNillableDay(v *string) *TokenCounterUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetSessionIndex sets the "session_index" field.
func (_u *TokenCounterUpdateOne) SetSessionIndex(v int) *TokenCounterUpdateOne {
	_u.mutation.ResetSessionIndex()
	_u.mutation.SetSessionIndex(v)
	return _u
}

// SetNillableSessionIndex sets the "session_index" field if the given value is not nil.
func (_u *TokenCounterUpdateOne) SetNillableSessionIndex(v *int) *TokenCounterUpdateOne {
	if v != nil {
		_u.SetSessionIndex(*v)
	}
	return _u
}

// AddSessionIndex adds value to the "session_index" field.
func (_u *TokenCounterUpdateOne) AddSessionIndex(v int) *TokenCounterUpdateOne {
	_u.mutation.AddSessionIndex(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *TokenCounterUpdateOne) SetValue(v int) *TokenCounterUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *TokenCounterUpdateOne) SetNillableValue(v *int) *TokenCounterUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *TokenCounterUpdateOne) AddValue(v int) *TokenCounterUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// Mutation returns the TokenCounterMutation object of the builder.
func (_u *TokenCounterUpdateOne) Mutation() *TokenCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenCounterUpdate builder.
func (_u *TokenCounterUpdateOne) Where(ps ...predicate.TokenCounter) *TokenCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenCounterUpdateOne) Select(field string, fields ...string) *TokenCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenCounter entity.
func (_u *TokenCounterUpdateOne) Save(ctx context.Context) (*TokenCounter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenCounterUpdateOne) SaveX(ctx context.Context) *TokenCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TokenCounterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tokencounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenCounterUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := tokencounter.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "TokenCounter.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionIndex(); ok {
		if err := tokencounter.SessionIndexValidator(v); err != nil {
			return &ValidationError{Name: "session_index", err: fmt.Errorf(`repo: validator failed for field "TokenCounter.session_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := tokencounter.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`repo: validator failed for field "TokenCounter.value": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenCounterUpdateOne) sqlSave(ctx context.Context) (_node *TokenCounter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokencounter.Table, tokencounter.Columns, sqlgraph.NewFieldSpec(tokencounter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TokenCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokencounter.FieldID)
		for _, f := range fields {
			if !tokencounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tokencounter.FieldID {
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
		_spec.SetField(tokencounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(tokencounter.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(tokencounter.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(tokencounter.FieldDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionIndex(); ok {
		_spec.SetField(tokencounter.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionIndex(); ok {
		_spec.AddField(tokencounter.FieldSessionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(tokencounter.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(tokencounter.FieldValue, field.TypeInt, value)
	}
	_node = &TokenCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokencounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
