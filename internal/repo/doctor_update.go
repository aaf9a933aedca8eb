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
	"github.com/nivaran/nivaran_backend/internal/repo/doctor"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *DoctorUpdate) SetClinicID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableClinicID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdate) SetName(v string) *DoctorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdate) SetSpecialty(v string) *DoctorUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialty(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorUpdate) ClearSpecialty() *DoctorUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetTokenPrefix sets the "token_prefix" field.
func (_u *DoctorUpdate) SetTokenPrefix(v string) *DoctorUpdate {
	_u.mutation.SetTokenPrefix(v)
	return _u
}

// SetNillableTokenPrefix sets the "token_prefix" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableTokenPrefix(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetTokenPrefix(*v)
	}
	return _u
}

// SetConsultMinutes sets the "consult_minutes" field.
func (_u *DoctorUpdate) SetConsultMinutes(v int) *DoctorUpdate {
	_u.mutation.ResetConsultMinutes()
	_u.mutation.SetConsultMinutes(v)
	return _u
}

// SetNillableConsultMinutes sets the "consult_minutes" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableConsultMinutes(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetConsultMinutes(*v)
	}
	return _u
}

// AddConsultMinutes adds value to the "consult_minutes" field.
func (_u *DoctorUpdate) AddConsultMinutes(v int) *DoctorUpdate {
	_u.mutation.AddConsultMinutes(v)
	return _u
}

// SetAvgConsultMinutes sets the "avg_consult_minutes" field.
func (_u *DoctorUpdate) SetAvgConsultMinutes(v int) *DoctorUpdate {
	_u.mutation.ResetAvgConsultMinutes()
	_u.mutation.SetAvgConsultMinutes(v)
	return _u
}

// SetNillableAvgConsultMinutes sets the "avg_consult_minutes" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableAvgConsultMinutes(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetAvgConsultMinutes(*v)
	}
	return _u
}

// AddAvgConsultMinutes adds value to the "avg_consult_minutes" field.
func (_u *DoctorUpdate) AddAvgConsultMinutes(v int) *DoctorUpdate {
	_u.mutation.AddAvgConsultMinutes(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *DoctorUpdate) SetActive(v bool) *DoctorUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableActive(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetInConsultation sets the "in_consultation" field.
func (_u *DoctorUpdate) SetInConsultation(v bool) *DoctorUpdate {
	_u.mutation.SetInConsultation(v)
	return _u
}

// SetNillableInConsultation sets the "in_consultation" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableInConsultation(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetInConsultation(*v)
	}
	return _u
}

// SetConsultationStartedAt sets the "consultation_started_at" field.
func (_u *DoctorUpdate) SetConsultationStartedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetConsultationStartedAt(v)
	return _u
}

// SetNillableConsultationStartedAt sets the "consultation_started_at" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableConsultationStartedAt(v *time.Time) *DoctorUpdate {
	if v != nil {
		_u.SetConsultationStartedAt(*v)
	}
	return _u
}

// ClearConsultationStartedAt clears the value of the "consultation_started_at" field.
func (_u *DoctorUpdate) ClearConsultationStartedAt() *DoctorUpdate {
	_u.mutation.ClearConsultationStartedAt()
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *DoctorUpdate) SetCompletedCount(v int) *DoctorUpdate {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableCompletedCount(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *DoctorUpdate) AddCompletedCount(v int) *DoctorUpdate {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetCompletedDay sets the "completed_day" field.
func (_u *DoctorUpdate) SetCompletedDay(v string) *DoctorUpdate {
	_u.mutation.SetCompletedDay(v)
	return _u
}

// SetNillableCompletedDay sets the "completed_day" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableCompletedDay(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetCompletedDay(*v)
	}
	return _u
}

// ClearCompletedDay clears the value of the "completed_day" field.
func (_u *DoctorUpdate) ClearCompletedDay() *DoctorUpdate {
	_u.mutation.ClearCompletedDay()
	return _u
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_u *DoctorUpdate) SetDelayMinutes(v int) *DoctorUpdate {
	_u.mutation.ResetDelayMinutes()
	_u.mutation.SetDelayMinutes(v)
	return _u
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableDelayMinutes(v *int) *DoctorUpdate {
	if v != nil {
		_u.SetDelayMinutes(*v)
	}
	return _u
}

// AddDelayMinutes adds value to the "delay_minutes" field.
func (_u *DoctorUpdate) AddDelayMinutes(v int) *DoctorUpdate {
	_u.mutation.AddDelayMinutes(v)
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokenPrefix(); ok {
		if err := doctor.TokenPrefixValidator(v); err != nil {
			return &ValidationError{Name: "token_prefix", err: fmt.Errorf(`repo: validator failed for field "Doctor.token_prefix": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(doctor.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctor.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.TokenPrefix(); ok {
		_spec.SetField(doctor.FieldTokenPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsultMinutes(); ok {
		_spec.SetField(doctor.FieldConsultMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsultMinutes(); ok {
		_spec.AddField(doctor.FieldConsultMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgConsultMinutes(); ok {
		_spec.SetField(doctor.FieldAvgConsultMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgConsultMinutes(); ok {
		_spec.AddField(doctor.FieldAvgConsultMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(doctor.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InConsultation(); ok {
		_spec.SetField(doctor.FieldInConsultation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsultationStartedAt(); ok {
		_spec.SetField(doctor.FieldConsultationStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsultationStartedAtCleared() {
		_spec.ClearField(doctor.FieldConsultationStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(doctor.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(doctor.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedDay(); ok {
		_spec.SetField(doctor.FieldCompletedDay, field.TypeString, value)
	}
	if _u.mutation.CompletedDayCleared() {
		_spec.ClearField(doctor.FieldCompletedDay, field.TypeString)
	}
	if value, ok := _u.mutation.DelayMinutes(); ok {
		_spec.SetField(doctor.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayMinutes(); ok {
		_spec.AddField(doctor.FieldDelayMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *DoctorUpdateOne) SetClinicID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableClinicID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DoctorUpdateOne) SetName(v string) *DoctorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdateOne) SetSpecialty(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialty(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorUpdateOne) ClearSpecialty() *DoctorUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetTokenPrefix sets the "token_prefix" field.
func (_u *DoctorUpdateOne) SetTokenPrefix(v string) *DoctorUpdateOne {
	_u.mutation.SetTokenPrefix(v)
	return _u
}

// SetNillableTokenPrefix sets the "token_prefix" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableTokenPrefix(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetTokenPrefix(*v)
	}
	return _u
}

// SetConsultMinutes sets the "consult_minutes" field.
func (_u *DoctorUpdateOne) SetConsultMinutes(v int) *DoctorUpdateOne {
	_u.mutation.ResetConsultMinutes()
	_u.mutation.SetConsultMinutes(v)
	return _u
}

// SetNillableConsultMinutes sets the "consult_minutes" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableConsultMinutes(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetConsultMinutes(*v)
	}
	return _u
}

// AddConsultMinutes adds value to the "consult_minutes" field.
func (_u *DoctorUpdateOne) AddConsultMinutes(v int) *DoctorUpdateOne {
	_u.mutation.AddConsultMinutes(v)
	return _u
}

// SetAvgConsultMinutes sets the "avg_consult_minutes" field.
func (_u *DoctorUpdateOne) SetAvgConsultMinutes(v int) *DoctorUpdateOne {
	_u.mutation.ResetAvgConsultMinutes()
	_u.mutation.SetAvgConsultMinutes(v)
	return _u
}

// SetNillableAvgConsultMinutes sets the "avg_consult_minutes" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableAvgConsultMinutes(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetAvgConsultMinutes(*v)
	}
	return _u
}

// AddAvgConsultMinutes adds value to the "avg_consult_minutes" field.
func (_u *DoctorUpdateOne) AddAvgConsultMinutes(v int) *DoctorUpdateOne {
	_u.mutation.AddAvgConsultMinutes(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *DoctorUpdateOne) SetActive(v bool) *DoctorUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableActive(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetInConsultation sets the "in_consultation" field.
func (_u *DoctorUpdateOne) SetInConsultation(v bool) *DoctorUpdateOne {
	_u.mutation.SetInConsultation(v)
	return _u
}

// SetNillableInConsultation sets the "in_consultation" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableInConsultation(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetInConsultation(*v)
	}
	return _u
}

// SetConsultationStartedAt sets the "consultation_started_at" field.
func (_u *DoctorUpdateOne) SetConsultationStartedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetConsultationStartedAt(v)
	return _u
}

// SetNillableConsultationStartedAt sets the "consultation_started_at" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableConsultationStartedAt(v *time.Time) *DoctorUpdateOne {
	if v != nil {
		_u.SetConsultationStartedAt(*v)
	}
	return _u
}

// ClearConsultationStartedAt clears the value of the "consultation_started_at" field.
func (_u *DoctorUpdateOne) ClearConsultationStartedAt() *DoctorUpdateOne {
	_u.mutation.ClearConsultationStartedAt()
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *DoctorUpdateOne) SetCompletedCount(v int) *DoctorUpdateOne {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableCompletedCount(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *DoctorUpdateOne) AddCompletedCount(v int) *DoctorUpdateOne {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetCompletedDay sets the "completed_day" field.
func (_u *DoctorUpdateOne) SetCompletedDay(v string) *DoctorUpdateOne {
	_u.mutation.SetCompletedDay(v)
	return _u
}

// SetNillableCompletedDay sets the "completed_day" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableCompletedDay(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetCompletedDay(*v)
	}
	return _u
}

// ClearCompletedDay clears the value of the "completed_day" field.
func (_u *DoctorUpdateOne) ClearCompletedDay() *DoctorUpdateOne {
	_u.mutation.ClearCompletedDay()
	return _u
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_u *DoctorUpdateOne) SetDelayMinutes(v int) *DoctorUpdateOne {
	_u.mutation.ResetDelayMinutes()
	_u.mutation.SetDelayMinutes(v)
	return _u
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableDelayMinutes(v *int) *DoctorUpdateOne {
	if v != nil {
		_u.SetDelayMinutes(*v)
	}
	return _u
}

// AddDelayMinutes adds value to the "delay_minutes" field.
func (_u *DoctorUpdateOne) AddDelayMinutes(v int) *DoctorUpdateOne {
	_u.mutation.AddDelayMinutes(v)
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokenPrefix(); ok {
		if err := doctor.TokenPrefixValidator(v); err != nil {
			return &ValidationError{Name: "token_prefix", err: fmt.Errorf(`repo: validator failed for field "Doctor.token_prefix": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(doctor.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctor.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.TokenPrefix(); ok {
		_spec.SetField(doctor.FieldTokenPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsultMinutes(); ok {
		_spec.SetField(doctor.FieldConsultMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsultMinutes(); ok {
		_spec.AddField(doctor.FieldConsultMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgConsultMinutes(); ok {
		_spec.SetField(doctor.FieldAvgConsultMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvgConsultMinutes(); ok {
		_spec.AddField(doctor.FieldAvgConsultMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(doctor.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InConsultation(); ok {
		_spec.SetField(doctor.FieldInConsultation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsultationStartedAt(); ok {
		_spec.SetField(doctor.FieldConsultationStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsultationStartedAtCleared() {
		_spec.ClearField(doctor.FieldConsultationStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(doctor.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(doctor.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedDay(); ok {
		_spec.SetField(doctor.FieldCompletedDay, field.TypeString, value)
	}
	if _u.mutation.CompletedDayCleared() {
		_spec.ClearField(doctor.FieldCompletedDay, field.TypeString)
	}
	if value, ok := _u.mutation.DelayMinutes(); ok {
		_spec.SetField(doctor.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayMinutes(); ok {
		_spec.AddField(doctor.FieldDelayMinutes, field.TypeInt, value)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
