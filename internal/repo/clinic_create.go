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
	"github.com/nivaran/nivaran_backend/internal/repo/clinic"
)

// ClinicCreate is the builder for creating a Clinic entity.
type ClinicCreate struct {
	config
	mutation *ClinicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicCreate) SetCreatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCreatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicCreate) SetUpdatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableUpdatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ClinicCreate) SetName(v string) *ClinicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ClinicCreate) SetSlug(v string) *ClinicCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ClinicCreate) SetTimezone(v string) *ClinicCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableTimezone(v *string) *ClinicCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetClassicNumbering sets the "classic_numbering" field.
func (_c *ClinicCreate) SetClassicNumbering(v bool) *ClinicCreate {
	_c.mutation.SetClassicNumbering(v)
	return _c
}

// SetNillableClassicNumbering sets the "classic_numbering" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableClassicNumbering(v *bool) *ClinicCreate {
	if v != nil {
		_c.SetClassicNumbering(*v)
	}
	return _c
}

// SetRejoinAfter sets the "rejoin_after" field.
func (_c *ClinicCreate) SetRejoinAfter(v int) *ClinicCreate {
	_c.mutation.SetRejoinAfter(v)
	return _c
}

// SetNillableRejoinAfter sets the "rejoin_after" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableRejoinAfter(v *int) *ClinicCreate {
	if v != nil {
		_c.SetRejoinAfter(*v)
	}
	return _c
}

// SetCutOffMinutes sets the "cut_off_minutes" field.
func (_c *ClinicCreate) SetCutOffMinutes(v int) *ClinicCreate {
	_c.mutation.SetCutOffMinutes(v)
	return _c
}

// SetNillableCutOffMinutes sets the "cut_off_minutes" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCutOffMinutes(v *int) *ClinicCreate {
	if v != nil {
		_c.SetCutOffMinutes(*v)
	}
	return _c
}

// SetNoShowMinutes sets the "no_show_minutes" field.
func (_c *ClinicCreate) SetNoShowMinutes(v int) *ClinicCreate {
	_c.mutation.SetNoShowMinutes(v)
	return _c
}

// SetNillableNoShowMinutes sets the "no_show_minutes" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableNoShowMinutes(v *int) *ClinicCreate {
	if v != nil {
		_c.SetNoShowMinutes(*v)
	}
	return _c
}

// SetContactEmail sets the "contact_email" field.
func (_c *ClinicCreate) SetContactEmail(v string) *ClinicCreate {
	_c.mutation.SetContactEmail(v)
	return _c
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableContactEmail(v *string) *ClinicCreate {
	if v != nil {
		_c.SetContactEmail(*v)
	}
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *ClinicCreate) SetContactPhone(v string) *ClinicCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableContactPhone(v *string) *ClinicCreate {
	if v != nil {
		_c.SetContactPhone(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicCreate) SetID(v uuid.UUID) *ClinicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableID(v *uuid.UUID) *ClinicCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ClinicMutation object of the builder.
func (_c *ClinicCreate) Mutation() *ClinicMutation {
	return _c.mutation
}

// Save creates the Clinic in the database.
func (_c *ClinicCreate) Save(ctx context.Context) (*Clinic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicCreate) SaveX(ctx context.Context) *Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := clinic.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.ClassicNumbering(); !ok {
		v := clinic.DefaultClassicNumbering
		_c.mutation.SetClassicNumbering(v)
	}
	if _, ok := _c.mutation.RejoinAfter(); !ok {
		v := clinic.DefaultRejoinAfter
		_c.mutation.SetRejoinAfter(v)
	}
	if _, ok := _c.mutation.CutOffMinutes(); !ok {
		v := clinic.DefaultCutOffMinutes
		_c.mutation.SetCutOffMinutes(v)
	}
	if _, ok := _c.mutation.NoShowMinutes(); !ok {
		v := clinic.DefaultNoShowMinutes
		_c.mutation.SetNoShowMinutes(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinic.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Clinic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Clinic.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Clinic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Clinic.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "Clinic.timezone"`)}
	}
	if _, ok := _c.mutation.ClassicNumbering(); !ok {
		return &ValidationError{Name: "classic_numbering", err: errors.New(`repo: missing required field "Clinic.classic_numbering"`)}
	}
	if _, ok := _c.mutation.RejoinAfter(); !ok {
		return &ValidationError{Name: "rejoin_after", err: errors.New(`repo: missing required field "Clinic.rejoin_after"`)}
	}
	if _, ok := _c.mutation.CutOffMinutes(); !ok {
		return &ValidationError{Name: "cut_off_minutes", err: errors.New(`repo: missing required field "Clinic.cut_off_minutes"`)}
	}
	if _, ok := _c.mutation.NoShowMinutes(); !ok {
		return &ValidationError{Name: "no_show_minutes", err: errors.New(`repo: missing required field "Clinic.no_show_minutes"`)}
	}
	return nil
}

func (_c *ClinicCreate) sqlSave(ctx context.Context) (*Clinic, error) {
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

func (_c *ClinicCreate) createSpec() (*Clinic, *sqlgraph.CreateSpec) {
	var (
		_node = &Clinic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinic.Table, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.ClassicNumbering(); ok {
		_spec.SetField(clinic.FieldClassicNumbering, field.TypeBool, value)
		_node.ClassicNumbering = value
	}
	if value, ok := _c.mutation.RejoinAfter(); ok {
		_spec.SetField(clinic.FieldRejoinAfter, field.TypeInt, value)
		_node.RejoinAfter = value
	}
	if value, ok := _c.mutation.CutOffMinutes(); ok {
		_spec.SetField(clinic.FieldCutOffMinutes, field.TypeInt, value)
		_node.CutOffMinutes = value
	}
	if value, ok := _c.mutation.NoShowMinutes(); ok {
		_spec.SetField(clinic.FieldNoShowMinutes, field.TypeInt, value)
		_node.NoShowMinutes = value
	}
	if value, ok := _c.mutation.ContactEmail(); ok {
		_spec.SetField(clinic.FieldContactEmail, field.TypeString, value)
		_node.ContactEmail = value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(clinic.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Clinic.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicCreate) OnConflict(opts ...sql.ConflictOption) *ClinicUpsertOne {
	_c.conflict = opts
	return &ClinicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicCreate) OnConflictColumns(columns ...string) *ClinicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicUpsertOne{
		create: _c,
	}
}

type (
	// ClinicUpsertOne is the builder for "upsert"-ing
	//  one Clinic node.
	ClinicUpsertOne struct {
		create *ClinicCreate
	}

	// ClinicUpsert is the "OnConflict" setter.
	ClinicUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsert) SetUpdatedAt(v time.Time) *ClinicUpsert {
	u.Set(clinic.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateUpdatedAt() *ClinicUpsert {
	u.SetExcluded(clinic.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *ClinicUpsert) SetName(v string) *ClinicUpsert {
	u.Set(clinic.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateName() *ClinicUpsert {
	u.SetExcluded(clinic.FieldName)
	return u
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsert) SetSlug(v string) *ClinicUpsert {
	u.Set(clinic.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateSlug() *ClinicUpsert {
	u.SetExcluded(clinic.FieldSlug)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *ClinicUpsert) SetTimezone(v string) *ClinicUpsert {
	u.Set(clinic.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateTimezone() *ClinicUpsert {
	u.SetExcluded(clinic.FieldTimezone)
	return u
}

// SetClassicNumbering sets the "classic_numbering" field.
func (u *ClinicUpsert) SetClassicNumbering(v bool) *ClinicUpsert {
	u.Set(clinic.FieldClassicNumbering, v)
	return u
}

// UpdateClassicNumbering sets the "classic_numbering" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateClassicNumbering() *ClinicUpsert {
	u.SetExcluded(clinic.FieldClassicNumbering)
	return u
}

// SetRejoinAfter sets the "rejoin_after" field.
func (u *ClinicUpsert) SetRejoinAfter(v int) *ClinicUpsert {
	u.Set(clinic.FieldRejoinAfter, v)
	return u
}

// UpdateRejoinAfter sets the "rejoin_after" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateRejoinAfter() *ClinicUpsert {
	u.SetExcluded(clinic.FieldRejoinAfter)
	return u
}

// AddRejoinAfter adds v to the "rejoin_after" field.
func (u *ClinicUpsert) AddRejoinAfter(v int) *ClinicUpsert {
	u.Add(clinic.FieldRejoinAfter, v)
	return u
}

// SetCutOffMinutes sets the "cut_off_minutes" field.
func (u *ClinicUpsert) SetCutOffMinutes(v int) *ClinicUpsert {
	u.Set(clinic.FieldCutOffMinutes, v)
	return u
}

// UpdateCutOffMinutes sets the "cut_off_minutes" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateCutOffMinutes() *ClinicUpsert {
	u.SetExcluded(clinic.FieldCutOffMinutes)
	return u
}

// AddCutOffMinutes adds v to the "cut_off_minutes" field.
func (u *ClinicUpsert) AddCutOffMinutes(v int) *ClinicUpsert {
	u.Add(clinic.FieldCutOffMinutes, v)
	return u
}

// SetNoShowMinutes sets the "no_show_minutes" field.
func (u *ClinicUpsert) SetNoShowMinutes(v int) *ClinicUpsert {
	u.Set(clinic.FieldNoShowMinutes, v)
	return u
}

// UpdateNoShowMinutes sets the "no_show_minutes" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateNoShowMinutes() *ClinicUpsert {
	u.SetExcluded(clinic.FieldNoShowMinutes)
	return u
}

// AddNoShowMinutes adds v to the "no_show_minutes" field.
func (u *ClinicUpsert) AddNoShowMinutes(v int) *ClinicUpsert {
	u.Add(clinic.FieldNoShowMinutes, v)
	return u
}

// SetContactEmail sets the "contact_email" field.
func (u *ClinicUpsert) SetContactEmail(v string) *ClinicUpsert {
	u.Set(clinic.FieldContactEmail, v)
	return u
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateContactEmail() *ClinicUpsert {
	u.SetExcluded(clinic.FieldContactEmail)
	return u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (u *ClinicUpsert) ClearContactEmail() *ClinicUpsert {
	u.SetNull(clinic.FieldContactEmail)
	return u
}

// SetContactPhone sets the "contact_phone" field.
func (u *ClinicUpsert) SetContactPhone(v string) *ClinicUpsert {
	u.Set(clinic.FieldContactPhone, v)
	return u
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateContactPhone() *ClinicUpsert {
	u.SetExcluded(clinic.FieldContactPhone)
	return u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ClinicUpsert) ClearContactPhone() *ClinicUpsert {
	u.SetNull(clinic.FieldContactPhone)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicUpsertOne) UpdateNewValues() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clinic.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clinic.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicUpsertOne) Ignore() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicUpsertOne) DoNothing() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicCreate.OnConflict
// documentation for more info.
func (u *ClinicUpsertOne) Update(set func(*ClinicUpsert)) *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsertOne) SetUpdatedAt(v time.Time) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateUpdatedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *ClinicUpsertOne) SetName(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateName() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsertOne) SetSlug(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateSlug() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateSlug()
	})
}

// SetTimezone sets the "timezone" field.
func (u *ClinicUpsertOne) SetTimezone(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateTimezone() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateTimezone()
	})
}

// SetClassicNumbering sets the "classic_numbering" field.
func (u *ClinicUpsertOne) SetClassicNumbering(v bool) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetClassicNumbering(v)
	})
}

// UpdateClassicNumbering sets the "classic_numbering" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateClassicNumbering() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateClassicNumbering()
	})
}

// SetRejoinAfter sets the "rejoin_after" field.
func (u *ClinicUpsertOne) SetRejoinAfter(v int) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetRejoinAfter(v)
	})
}

// AddRejoinAfter adds v to the "rejoin_after" field.
func (u *ClinicUpsertOne) AddRejoinAfter(v int) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.AddRejoinAfter(v)
	})
}

// UpdateRejoinAfter sets the "rejoin_after" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateRejoinAfter() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateRejoinAfter()
	})
}

// SetCutOffMinutes sets the "cut_off_minutes" field.
func (u *ClinicUpsertOne) SetCutOffMinutes(v int) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetCutOffMinutes(v)
	})
}

// AddCutOffMinutes adds v to the "cut_off_minutes" field.
func (u *ClinicUpsertOne) AddCutOffMinutes(v int) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.AddCutOffMinutes(v)
	})
}

// UpdateCutOffMinutes sets the "cut_off_minutes" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateCutOffMinutes() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateCutOffMinutes()
	})
}

// SetNoShowMinutes sets the "no_show_minutes" field.
func (u *ClinicUpsertOne) SetNoShowMinutes(v int) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetNoShowMinutes(v)
	})
}

// AddNoShowMinutes adds v to the "no_show_minutes" field.
func (u *ClinicUpsertOne) AddNoShowMinutes(v int) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.AddNoShowMinutes(v)
	})
}

// UpdateNoShowMinutes sets the "no_show_minutes" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateNoShowMinutes() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateNoShowMinutes()
	})
}

// SetContactEmail sets the "contact_email" field.
func (u *ClinicUpsertOne) SetContactEmail(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetContactEmail(v)
	})
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateContactEmail() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateContactEmail()
	})
}

// ClearContactEmail clears the value of the "contact_email" field.
func (u *ClinicUpsertOne) ClearContactEmail() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearContactEmail()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *ClinicUpsertOne) SetContactPhone(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateContactPhone() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ClinicUpsertOne) ClearContactPhone() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearContactPhone()
	})
}

// Exec executes the query.
func (u *ClinicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicUpsertOne.ID is not supported by MySQL driver. Use ClinicUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicCreateBulk is the builder for creating many Clinic entities in bulk.
type ClinicCreateBulk struct {
	config
	err      error
	builders []*ClinicCreate
	conflict []sql.ConflictOption
}

// Save creates the Clinic entities in the database.
func (_c *ClinicCreateBulk) Save(ctx context.Context) ([]*Clinic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Clinic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicMutation)
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
func (_c *ClinicCreateBulk) SaveX(ctx context.Context) []*Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Clinic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicUpsertBulk {
	_c.conflict = opts
	return &ClinicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicCreateBulk) OnConflictColumns(columns ...string) *ClinicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicUpsertBulk{
		create: _c,
	}
}

// ClinicUpsertBulk is the builder for "upsert"-ing
// a bulk of Clinic nodes.
type ClinicUpsertBulk struct {
	create *ClinicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicUpsertBulk) UpdateNewValues() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clinic.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clinic.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicUpsertBulk) Ignore() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicUpsertBulk) DoNothing() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicUpsertBulk) Update(set func(*ClinicUpsert)) *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsertBulk) SetUpdatedAt(v time.Time) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateUpdatedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *ClinicUpsertBulk) SetName(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateName() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsertBulk) SetSlug(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateSlug() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateSlug()
	})
}

// SetTimezone sets the "timezone" field.
func (u *ClinicUpsertBulk) SetTimezone(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateTimezone() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateTimezone()
	})
}

// SetClassicNumbering sets the "classic_numbering" field.
func (u *ClinicUpsertBulk) SetClassicNumbering(v bool) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetClassicNumbering(v)
	})
}

// UpdateClassicNumbering sets the "classic_numbering" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateClassicNumbering() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateClassicNumbering()
	})
}

// SetRejoinAfter sets the "rejoin_after" field.
func (u *ClinicUpsertBulk) SetRejoinAfter(v int) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetRejoinAfter(v)
	})
}

// AddRejoinAfter adds v to the "rejoin_after" field.
func (u *ClinicUpsertBulk) AddRejoinAfter(v int) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.AddRejoinAfter(v)
	})
}

// UpdateRejoinAfter sets the "rejoin_after" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateRejoinAfter() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateRejoinAfter()
	})
}

// SetCutOffMinutes sets the "cut_off_minutes" field.
func (u *ClinicUpsertBulk) SetCutOffMinutes(v int) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetCutOffMinutes(v)
	})
}

// AddCutOffMinutes adds v to the "cut_off_minutes" field.
func (u *ClinicUpsertBulk) AddCutOffMinutes(v int) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.AddCutOffMinutes(v)
	})
}

// UpdateCutOffMinutes sets the "cut_off_minutes" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateCutOffMinutes() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateCutOffMinutes()
	})
}

// SetNoShowMinutes sets the "no_show_minutes" field.
func (u *ClinicUpsertBulk) SetNoShowMinutes(v int) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetNoShowMinutes(v)
	})
}

// AddNoShowMinutes adds v to the "no_show_minutes" field.
func (u *ClinicUpsertBulk) AddNoShowMinutes(v int) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.AddNoShowMinutes(v)
	})
}

// UpdateNoShowMinutes sets the "no_show_minutes" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateNoShowMinutes() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateNoShowMinutes()
	})
}

// SetContactEmail sets the "contact_email" field.
func (u *ClinicUpsertBulk) SetContactEmail(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetContactEmail(v)
	})
}

// UpdateContactEmail sets the "contact_email" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateContactEmail() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateContactEmail()
	})
}

// ClearContactEmail clears the value of the "contact_email" field.
func (u *ClinicUpsertBulk) ClearContactEmail() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearContactEmail()
	})
}

// SetContactPhone sets the "contact_phone" field.
func (u *ClinicUpsertBulk) SetContactPhone(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetContactPhone(v)
	})
}

// UpdateContactPhone sets the "contact_phone" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateContactPhone() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateContactPhone()
	})
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (u *ClinicUpsertBulk) ClearContactPhone() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearContactPhone()
	})
}

// Exec executes the query.
func (u *ClinicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
