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
	"github.com/nivaran/nivaran_backend/internal/repo/doctor"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *DoctorCreate) SetClinicID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DoctorCreate) SetName(v string) *DoctorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *DoctorCreate) SetSpecialty(v string) *DoctorCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableSpecialty(v *string) *DoctorCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetTokenPrefix sets the "token_prefix" field.
func (_c *DoctorCreate) SetTokenPrefix(v string) *DoctorCreate {
	_c.mutation.SetTokenPrefix(v)
	return _c
}

// SetNillableTokenPrefix sets the "token_prefix" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableTokenPrefix(v *string) *DoctorCreate {
	if v != nil {
		_c.SetTokenPrefix(*v)
	}
	return _c
}

// SetConsultMinutes sets the "consult_minutes" field.
func (_c *DoctorCreate) SetConsultMinutes(v int) *DoctorCreate {
	_c.mutation.SetConsultMinutes(v)
	return _c
}

// SetNillableConsultMinutes sets the "consult_minutes" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableConsultMinutes(v *int) *DoctorCreate {
	if v != nil {
		_c.SetConsultMinutes(*v)
	}
	return _c
}

// SetAvgConsultMinutes sets the "avg_consult_minutes" field.
func (_c *DoctorCreate) SetAvgConsultMinutes(v int) *DoctorCreate {
	_c.mutation.SetAvgConsultMinutes(v)
	return _c
}

// SetNillableAvgConsultMinutes sets the "avg_consult_minutes" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableAvgConsultMinutes(v *int) *DoctorCreate {
	if v != nil {
		_c.SetAvgConsultMinutes(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *DoctorCreate) SetActive(v bool) *DoctorCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableActive(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetInConsultation sets the "in_consultation" field.
func (_c *DoctorCreate) SetInConsultation(v bool) *DoctorCreate {
	_c.mutation.SetInConsultation(v)
	return _c
}

// SetNillableInConsultation sets the "in_consultation" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableInConsultation(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetInConsultation(*v)
	}
	return _c
}

// SetConsultationStartedAt sets the "consultation_started_at" field.
func (_c *DoctorCreate) SetConsultationStartedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetConsultationStartedAt(v)
	return _c
}

// SetNillableConsultationStartedAt sets the "consultation_started_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableConsultationStartedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetConsultationStartedAt(*v)
	}
	return _c
}

// SetCompletedCount sets the "completed_count" field.
func (_c *DoctorCreate) SetCompletedCount(v int) *DoctorCreate {
	_c.mutation.SetCompletedCount(v)
	return _c
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCompletedCount(v *int) *DoctorCreate {
	if v != nil {
		_c.SetCompletedCount(*v)
	}
	return _c
}

// SetCompletedDay sets the "completed_day" field.
func (_c *DoctorCreate) SetCompletedDay(v string) *DoctorCreate {
	_c.mutation.SetCompletedDay(v)
	return _c
}

// SetNillableCompletedDay sets the "completed_day" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCompletedDay(v *string) *DoctorCreate {
	if v != nil {
		_c.SetCompletedDay(*v)
	}
	return _c
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_c *DoctorCreate) SetDelayMinutes(v int) *DoctorCreate {
	_c.mutation.SetDelayMinutes(v)
	return _c
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableDelayMinutes(v *int) *DoctorCreate {
	if v != nil {
		_c.SetDelayMinutes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TokenPrefix(); !ok {
		v := doctor.DefaultTokenPrefix
		_c.mutation.SetTokenPrefix(v)
	}
	if _, ok := _c.mutation.ConsultMinutes(); !ok {
		v := doctor.DefaultConsultMinutes
		_c.mutation.SetConsultMinutes(v)
	}
	if _, ok := _c.mutation.AvgConsultMinutes(); !ok {
		v := doctor.DefaultAvgConsultMinutes
		_c.mutation.SetAvgConsultMinutes(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := doctor.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.InConsultation(); !ok {
		v := doctor.DefaultInConsultation
		_c.mutation.SetInConsultation(v)
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		v := doctor.DefaultCompletedCount
		_c.mutation.SetCompletedCount(v)
	}
	if _, ok := _c.mutation.DelayMinutes(); !ok {
		v := doctor.DefaultDelayMinutes
		_c.mutation.SetDelayMinutes(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Doctor.clinic_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Doctor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := doctor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Doctor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokenPrefix(); !ok {
		return &ValidationError{Name: "token_prefix", err: errors.New(`repo: missing required field "Doctor.token_prefix"`)}
	}
	if v, ok := _c.mutation.TokenPrefix(); ok {
		if err := doctor.TokenPrefixValidator(v); err != nil {
			return &ValidationError{Name: "token_prefix", err: fmt.Errorf(`repo: validator failed for field "Doctor.token_prefix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsultMinutes(); !ok {
		return &ValidationError{Name: "consult_minutes", err: errors.New(`repo: missing required field "Doctor.consult_minutes"`)}
	}
	if _, ok := _c.mutation.AvgConsultMinutes(); !ok {
		return &ValidationError{Name: "avg_consult_minutes", err: errors.New(`repo: missing required field "Doctor.avg_consult_minutes"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`repo: missing required field "Doctor.active"`)}
	}
	if _, ok := _c.mutation.InConsultation(); !ok {
		return &ValidationError{Name: "in_consultation", err: errors.New(`repo: missing required field "Doctor.in_consultation"`)}
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		return &ValidationError{Name: "completed_count", err: errors.New(`repo: missing required field "Doctor.completed_count"`)}
	}
	if _, ok := _c.mutation.DelayMinutes(); !ok {
		return &ValidationError{Name: "delay_minutes", err: errors.New(`repo: missing required field "Doctor.delay_minutes"`)}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
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

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(doctor.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(doctor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
		_node.Specialty = value
	}
	if value, ok := _c.mutation.TokenPrefix(); ok {
		_spec.SetField(doctor.FieldTokenPrefix, field.TypeString, value)
		_node.TokenPrefix = value
	}
	if value, ok := _c.mutation.ConsultMinutes(); ok {
		_spec.SetField(doctor.FieldConsultMinutes, field.TypeInt, value)
		_node.ConsultMinutes = value
	}
	if value, ok := _c.mutation.AvgConsultMinutes(); ok {
		_spec.SetField(doctor.FieldAvgConsultMinutes, field.TypeInt, value)
		_node.AvgConsultMinutes = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(doctor.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.InConsultation(); ok {
		_spec.SetField(doctor.FieldInConsultation, field.TypeBool, value)
		_node.InConsultation = value
	}
	if value, ok := _c.mutation.ConsultationStartedAt(); ok {
		_spec.SetField(doctor.FieldConsultationStartedAt, field.TypeTime, value)
		_node.ConsultationStartedAt = &value
	}
	if value, ok := _c.mutation.CompletedCount(); ok {
		_spec.SetField(doctor.FieldCompletedCount, field.TypeInt, value)
		_node.CompletedCount = value
	}
	if value, ok := _c.mutation.CompletedDay(); ok {
		_spec.SetField(doctor.FieldCompletedDay, field.TypeString, value)
		_node.CompletedDay = value
	}
	if value, ok := _c.mutation.DelayMinutes(); ok {
		_spec.SetField(doctor.FieldDelayMinutes, field.TypeInt, value)
		_node.DelayMinutes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertOne {
	_c.conflict = opts
	return &DoctorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflictColumns(columns ...string) *DoctorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertOne{
		create: _c,
	}
}

type (
	// DoctorUpsertOne is the builder for "upsert"-ing
	//  one Doctor node.
	DoctorUpsertOne struct {
		create *DoctorCreate
	}

	// DoctorUpsert is the "OnConflict" setter.
	DoctorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsert) SetUpdatedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUpdatedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *DoctorUpsert) SetClinicID(v uuid.UUID) *DoctorUpsert {
	u.Set(doctor.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateClinicID() *DoctorUpsert {
	u.SetExcluded(doctor.FieldClinicID)
	return u
}

// SetName sets the "name" field.
func (u *DoctorUpsert) SetName(v string) *DoctorUpsert {
	u.Set(doctor.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateName() *DoctorUpsert {
	u.SetExcluded(doctor.FieldName)
	return u
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsert) SetSpecialty(v string) *DoctorUpsert {
	u.Set(doctor.FieldSpecialty, v)
	return u
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateSpecialty() *DoctorUpsert {
	u.SetExcluded(doctor.FieldSpecialty)
	return u
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorUpsert) ClearSpecialty() *DoctorUpsert {
	u.SetNull(doctor.FieldSpecialty)
	return u
}

// SetTokenPrefix sets the "token_prefix" field.
func (u *DoctorUpsert) SetTokenPrefix(v string) *DoctorUpsert {
	u.Set(doctor.FieldTokenPrefix, v)
	return u
}

// UpdateTokenPrefix sets the "token_prefix" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateTokenPrefix() *DoctorUpsert {
	u.SetExcluded(doctor.FieldTokenPrefix)
	return u
}

// SetConsultMinutes sets the "consult_minutes" field.
func (u *DoctorUpsert) SetConsultMinutes(v int) *DoctorUpsert {
	u.Set(doctor.FieldConsultMinutes, v)
	return u
}

// UpdateConsultMinutes sets the "consult_minutes" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateConsultMinutes() *DoctorUpsert {
	u.SetExcluded(doctor.FieldConsultMinutes)
	return u
}

// AddConsultMinutes adds v to the "consult_minutes" field.
func (u *DoctorUpsert) AddConsultMinutes(v int) *DoctorUpsert {
	u.Add(doctor.FieldConsultMinutes, v)
	return u
}

// SetAvgConsultMinutes sets the "avg_consult_minutes" field.
func (u *DoctorUpsert) SetAvgConsultMinutes(v int) *DoctorUpsert {
	u.Set(doctor.FieldAvgConsultMinutes, v)
	return u
}

// UpdateAvgConsultMinutes sets the "avg_consult_minutes" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateAvgConsultMinutes() *DoctorUpsert {
	u.SetExcluded(doctor.FieldAvgConsultMinutes)
	return u
}

// AddAvgConsultMinutes adds v to the "avg_consult_minutes" field.
func (u *DoctorUpsert) AddAvgConsultMinutes(v int) *DoctorUpsert {
	u.Add(doctor.FieldAvgConsultMinutes, v)
	return u
}

// SetActive sets the "active" field.
func (u *DoctorUpsert) SetActive(v bool) *DoctorUpsert {
	u.Set(doctor.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateActive() *DoctorUpsert {
	u.SetExcluded(doctor.FieldActive)
	return u
}

// SetInConsultation sets the "in_consultation" field.
func (u *DoctorUpsert) SetInConsultation(v bool) *DoctorUpsert {
	u.Set(doctor.FieldInConsultation, v)
	return u
}

// UpdateInConsultation sets the "in_consultation" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateInConsultation() *DoctorUpsert {
	u.SetExcluded(doctor.FieldInConsultation)
	return u
}

// SetConsultationStartedAt sets the "consultation_started_at" field.
func (u *DoctorUpsert) SetConsultationStartedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldConsultationStartedAt, v)
	return u
}

// UpdateConsultationStartedAt sets the "consultation_started_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateConsultationStartedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldConsultationStartedAt)
	return u
}

// ClearConsultationStartedAt clears the value of the "consultation_started_at" field.
func (u *DoctorUpsert) ClearConsultationStartedAt() *DoctorUpsert {
	u.SetNull(doctor.FieldConsultationStartedAt)
	return u
}

// SetCompletedCount sets the "completed_count" field.
func (u *DoctorUpsert) SetCompletedCount(v int) *DoctorUpsert {
	u.Set(doctor.FieldCompletedCount, v)
	return u
}

// UpdateCompletedCount sets the "completed_count" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateCompletedCount() *DoctorUpsert {
	u.SetExcluded(doctor.FieldCompletedCount)
	return u
}

// AddCompletedCount adds v to the "completed_count" field.
func (u *DoctorUpsert) AddCompletedCount(v int) *DoctorUpsert {
	u.Add(doctor.FieldCompletedCount, v)
	return u
}

// SetCompletedDay sets the "completed_day" field.
func (u *DoctorUpsert) SetCompletedDay(v string) *DoctorUpsert {
	u.Set(doctor.FieldCompletedDay, v)
	return u
}

// UpdateCompletedDay sets the "completed_day" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateCompletedDay() *DoctorUpsert {
	u.SetExcluded(doctor.FieldCompletedDay)
	return u
}

// ClearCompletedDay clears the value of the "completed_day" field.
func (u *DoctorUpsert) ClearCompletedDay() *DoctorUpsert {
	u.SetNull(doctor.FieldCompletedDay)
	return u
}

// SetDelayMinutes sets the "delay_minutes" field.
func (u *DoctorUpsert) SetDelayMinutes(v int) *DoctorUpsert {
	u.Set(doctor.FieldDelayMinutes, v)
	return u
}

// UpdateDelayMinutes sets the "delay_minutes" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateDelayMinutes() *DoctorUpsert {
	u.SetExcluded(doctor.FieldDelayMinutes)
	return u
}

// AddDelayMinutes adds v to the "delay_minutes" field.
func (u *DoctorUpsert) AddDelayMinutes(v int) *DoctorUpsert {
	u.Add(doctor.FieldDelayMinutes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertOne) UpdateNewValues() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorUpsertOne) Ignore() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertOne) DoNothing() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreate.OnConflict
// documentation for more info.
func (u *DoctorUpsertOne) Update(set func(*DoctorUpsert)) *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertOne) SetUpdatedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUpdatedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *DoctorUpsertOne) SetClinicID(v uuid.UUID) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateClinicID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateClinicID()
	})
}

// SetName sets the "name" field.
func (u *DoctorUpsertOne) SetName(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateName() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateName()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsertOne) SetSpecialty(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateSpecialty() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorUpsertOne) ClearSpecialty() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearSpecialty()
	})
}

// SetTokenPrefix sets the "token_prefix" field.
func (u *DoctorUpsertOne) SetTokenPrefix(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTokenPrefix(v)
	})
}

// UpdateTokenPrefix sets the "token_prefix" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateTokenPrefix() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTokenPrefix()
	})
}

// SetConsultMinutes sets the "consult_minutes" field.
func (u *DoctorUpsertOne) SetConsultMinutes(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultMinutes(v)
	})
}

// AddConsultMinutes adds v to the "consult_minutes" field.
func (u *DoctorUpsertOne) AddConsultMinutes(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddConsultMinutes(v)
	})
}

// UpdateConsultMinutes sets the "consult_minutes" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateConsultMinutes() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultMinutes()
	})
}

// SetAvgConsultMinutes sets the "avg_consult_minutes" field.
func (u *DoctorUpsertOne) SetAvgConsultMinutes(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAvgConsultMinutes(v)
	})
}

// AddAvgConsultMinutes adds v to the "avg_consult_minutes" field.
func (u *DoctorUpsertOne) AddAvgConsultMinutes(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddAvgConsultMinutes(v)
	})
}

// UpdateAvgConsultMinutes sets the "avg_consult_minutes" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateAvgConsultMinutes() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAvgConsultMinutes()
	})
}

// SetActive sets the "active" field.
func (u *DoctorUpsertOne) SetActive(v bool) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateActive() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateActive()
	})
}

// SetInConsultation sets the "in_consultation" field.
func (u *DoctorUpsertOne) SetInConsultation(v bool) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetInConsultation(v)
	})
}

// UpdateInConsultation sets the "in_consultation" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateInConsultation() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateInConsultation()
	})
}

// SetConsultationStartedAt sets the "consultation_started_at" field.
func (u *DoctorUpsertOne) SetConsultationStartedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultationStartedAt(v)
	})
}

// UpdateConsultationStartedAt sets the "consultation_started_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateConsultationStartedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultationStartedAt()
	})
}

// ClearConsultationStartedAt clears the value of the "consultation_started_at" field.
func (u *DoctorUpsertOne) ClearConsultationStartedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearConsultationStartedAt()
	})
}

// SetCompletedCount sets the "completed_count" field.
func (u *DoctorUpsertOne) SetCompletedCount(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCompletedCount(v)
	})
}

// AddCompletedCount adds v to the "completed_count" field.
func (u *DoctorUpsertOne) AddCompletedCount(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddCompletedCount(v)
	})
}

// UpdateCompletedCount sets the "completed_count" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateCompletedCount() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCompletedCount()
	})
}

// SetCompletedDay sets the "completed_day" field.
func (u *DoctorUpsertOne) SetCompletedDay(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCompletedDay(v)
	})
}

// UpdateCompletedDay sets the "completed_day" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateCompletedDay() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCompletedDay()
	})
}

// ClearCompletedDay clears the value of the "completed_day" field.
func (u *DoctorUpsertOne) ClearCompletedDay() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearCompletedDay()
	})
}

// SetDelayMinutes sets the "delay_minutes" field.
func (u *DoctorUpsertOne) SetDelayMinutes(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetDelayMinutes(v)
	})
}

// AddDelayMinutes adds v to the "delay_minutes" field.
func (u *DoctorUpsertOne) AddDelayMinutes(v int) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.AddDelayMinutes(v)
	})
}

// UpdateDelayMinutes sets the "delay_minutes" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateDelayMinutes() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateDelayMinutes()
	})
}

// Exec executes the query.
func (u *DoctorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorUpsertOne.ID is not supported by MySQL driver. Use DoctorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
	conflict []sql.ConflictOption
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
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
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertBulk {
	_c.conflict = opts
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflictColumns(columns ...string) *DoctorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// DoctorUpsertBulk is the builder for "upsert"-ing
// a bulk of Doctor nodes.
type DoctorUpsertBulk struct {
	create *DoctorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertBulk) UpdateNewValues() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorUpsertBulk) Ignore() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertBulk) DoNothing() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorUpsertBulk) Update(set func(*DoctorUpsert)) *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertBulk) SetUpdatedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUpdatedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *DoctorUpsertBulk) SetClinicID(v uuid.UUID) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateClinicID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateClinicID()
	})
}

// SetName sets the "name" field.
func (u *DoctorUpsertBulk) SetName(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateName() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateName()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *DoctorUpsertBulk) SetSpecialty(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateSpecialty() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *DoctorUpsertBulk) ClearSpecialty() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearSpecialty()
	})
}

// SetTokenPrefix sets the "token_prefix" field.
func (u *DoctorUpsertBulk) SetTokenPrefix(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTokenPrefix(v)
	})
}

// UpdateTokenPrefix sets the "token_prefix" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateTokenPrefix() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTokenPrefix()
	})
}

// SetConsultMinutes sets the "consult_minutes" field.
func (u *DoctorUpsertBulk) SetConsultMinutes(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultMinutes(v)
	})
}

// AddConsultMinutes adds v to the "consult_minutes" field.
func (u *DoctorUpsertBulk) AddConsultMinutes(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddConsultMinutes(v)
	})
}

// UpdateConsultMinutes sets the "consult_minutes" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateConsultMinutes() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultMinutes()
	})
}

// SetAvgConsultMinutes sets the "avg_consult_minutes" field.
func (u *DoctorUpsertBulk) SetAvgConsultMinutes(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAvgConsultMinutes(v)
	})
}

// AddAvgConsultMinutes adds v to the "avg_consult_minutes" field.
func (u *DoctorUpsertBulk) AddAvgConsultMinutes(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddAvgConsultMinutes(v)
	})
}

// UpdateAvgConsultMinutes sets the "avg_consult_minutes" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateAvgConsultMinutes() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAvgConsultMinutes()
	})
}

// SetActive sets the "active" field.
func (u *DoctorUpsertBulk) SetActive(v bool) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateActive() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateActive()
	})
}

// SetInConsultation sets the "in_consultation" field.
func (u *DoctorUpsertBulk) SetInConsultation(v bool) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetInConsultation(v)
	})
}

// UpdateInConsultation sets the "in_consultation" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateInConsultation() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateInConsultation()
	})
}

// SetConsultationStartedAt sets the "consultation_started_at" field.
func (u *DoctorUpsertBulk) SetConsultationStartedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetConsultationStartedAt(v)
	})
}

// UpdateConsultationStartedAt sets the "consultation_started_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateConsultationStartedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateConsultationStartedAt()
	})
}

// ClearConsultationStartedAt clears the value of the "consultation_started_at" field.
func (u *DoctorUpsertBulk) ClearConsultationStartedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearConsultationStartedAt()
	})
}

// SetCompletedCount sets the "completed_count" field.
func (u *DoctorUpsertBulk) SetCompletedCount(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCompletedCount(v)
	})
}

// AddCompletedCount adds v to the "completed_count" field.
func (u *DoctorUpsertBulk) AddCompletedCount(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddCompletedCount(v)
	})
}

// UpdateCompletedCount sets the "completed_count" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateCompletedCount() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCompletedCount()
	})
}

// SetCompletedDay sets the "completed_day" field.
func (u *DoctorUpsertBulk) SetCompletedDay(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetCompletedDay(v)
	})
}

// UpdateCompletedDay sets the "completed_day" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateCompletedDay() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateCompletedDay()
	})
}

// ClearCompletedDay clears the value of the "completed_day" field.
func (u *DoctorUpsertBulk) ClearCompletedDay() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearCompletedDay()
	})
}

// SetDelayMinutes sets the "delay_minutes" field.
func (u *DoctorUpsertBulk) SetDelayMinutes(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetDelayMinutes(v)
	})
}

// AddDelayMinutes adds v to the "delay_minutes" field.
func (u *DoctorUpsertBulk) AddDelayMinutes(v int) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.AddDelayMinutes(v)
	})
}

// UpdateDelayMinutes sets the "delay_minutes" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateDelayMinutes() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateDelayMinutes()
	})
}

// Exec executes the query.
func (u *DoctorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
