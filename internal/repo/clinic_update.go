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
	"github.com/nivaran/nivaran_backend/internal/repo/clinic"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
)

// ClinicUpdate is the builder for updating Clinic entities.
type ClinicUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicMutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdate) Where(ps ...predicate.Clinic) *ClinicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdate) SetUpdatedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdate) SetName(v string) *ClinicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableName(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ClinicUpdate) SetSlug(v string) *ClinicUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableSlug(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicUpdate) SetTimezone(v string) *ClinicUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableTimezone(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetClassicNumbering sets the "classic_numbering" field.
func (_u *ClinicUpdate) SetClassicNumbering(v bool) *ClinicUpdate {
	_u.mutation.SetClassicNumbering(v)
	return _u
}

// SetNillableClassicNumbering sets the "classic_numbering" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableClassicNumbering(v *bool) *ClinicUpdate {
	if v != nil {
		_u.SetClassicNumbering(*v)
	}
	return _u
}

// SetRejoinAfter sets the "rejoin_after" field.
func (_u *ClinicUpdate) SetRejoinAfter(v int) *ClinicUpdate {
	_u.mutation.ResetRejoinAfter()
	_u.mutation.SetRejoinAfter(v)
	return _u
}

// SetNillableRejoinAfter sets the "rejoin_after" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableRejoinAfter(v *int) *ClinicUpdate {
	if v != nil {
		_u.SetRejoinAfter(*v)
	}
	return _u
}

// AddRejoinAfter adds value to the "rejoin_after" field.
func (_u *ClinicUpdate) AddRejoinAfter(v int) *ClinicUpdate {
	_u.mutation.AddRejoinAfter(v)
	return _u
}

// SetCutOffMinutes sets the "cut_off_minutes" field.
func (_u *ClinicUpdate) SetCutOffMinutes(v int) *ClinicUpdate {
	_u.mutation.ResetCutOffMinutes()
	_u.mutation.SetCutOffMinutes(v)
	return _u
}

// SetNillableCutOffMinutes sets the "cut_off_minutes" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableCutOffMinutes(v *int) *ClinicUpdate {
	if v != nil {
		_u.SetCutOffMinutes(*v)
	}
	return _u
}

// AddCutOffMinutes adds value to the "cut_off_minutes" field.
func (_u *ClinicUpdate) AddCutOffMinutes(v int) *ClinicUpdate {
	_u.mutation.AddCutOffMinutes(v)
	return _u
}

// SetNoShowMinutes sets the "no_show_minutes" field.
func (_u *ClinicUpdate) SetNoShowMinutes(v int) *ClinicUpdate {
	_u.mutation.ResetNoShowMinutes()
	_u.mutation.SetNoShowMinutes(v)
	return _u
}

// SetNillableNoShowMinutes sets the "no_show_minutes" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableNoShowMinutes(v *int) *ClinicUpdate {
	if v != nil {
		_u.SetNoShowMinutes(*v)
	}
	return _u
}

// AddNoShowMinutes adds value to the "no_show_minutes" field.
func (_u *ClinicUpdate) AddNoShowMinutes(v int) *ClinicUpdate {
	_u.mutation.AddNoShowMinutes(v)
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *ClinicUpdate) SetContactEmail(v string) *ClinicUpdate {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableContactEmail(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *ClinicUpdate) ClearContactEmail() *ClinicUpdate {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *ClinicUpdate) SetContactPhone(v string) *ClinicUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableContactPhone(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *ClinicUpdate) ClearContactPhone() *ClinicUpdate {
	_u.mutation.ClearContactPhone()
	return _u
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdate) Mutation() *ClinicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassicNumbering(); ok {
		_spec.SetField(clinic.FieldClassicNumbering, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RejoinAfter(); ok {
		_spec.SetField(clinic.FieldRejoinAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejoinAfter(); ok {
		_spec.AddField(clinic.FieldRejoinAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CutOffMinutes(); ok {
		_spec.SetField(clinic.FieldCutOffMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCutOffMinutes(); ok {
		_spec.AddField(clinic.FieldCutOffMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NoShowMinutes(); ok {
		_spec.SetField(clinic.FieldNoShowMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoShowMinutes(); ok {
		_spec.AddField(clinic.FieldNoShowMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(clinic.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(clinic.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(clinic.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(clinic.FieldContactPhone, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicUpdateOne is the builder for updating a single Clinic entity.
type ClinicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdateOne) SetUpdatedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdateOne) SetName(v string) *ClinicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableName(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ClinicUpdateOne) SetSlug(v string) *ClinicUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableSlug(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicUpdateOne) SetTimezone(v string) *ClinicUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableTimezone(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetClassicNumbering sets the "classic_numbering" field.
func (_u *ClinicUpdateOne) SetClassicNumbering(v bool) *ClinicUpdateOne {
	_u.mutation.SetClassicNumbering(v)
	return _u
}

// SetNillableClassicNumbering sets the "classic_numbering" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableClassicNumbering(v *bool) *ClinicUpdateOne {
	if v != nil {
		_u.SetClassicNumbering(*v)
	}
	return _u
}

// SetRejoinAfter sets the "rejoin_after" field.
func (_u *ClinicUpdateOne) SetRejoinAfter(v int) *ClinicUpdateOne {
	_u.mutation.ResetRejoinAfter()
	_u.mutation.SetRejoinAfter(v)
	return _u
}

// SetNillableRejoinAfter sets the "rejoin_after" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableRejoinAfter(v *int) *ClinicUpdateOne {
	if v != nil {
		_u.SetRejoinAfter(*v)
	}
	return _u
}

// AddRejoinAfter adds value to the "rejoin_after" field.
func (_u *ClinicUpdateOne) AddRejoinAfter(v int) *ClinicUpdateOne {
	_u.mutation.AddRejoinAfter(v)
	return _u
}

// SetCutOffMinutes sets the "cut_off_minutes" field.
func (_u *ClinicUpdateOne) SetCutOffMinutes(v int) *ClinicUpdateOne {
	_u.mutation.ResetCutOffMinutes()
	_u.mutation.SetCutOffMinutes(v)
	return _u
}

// SetNillableCutOffMinutes sets the "cut_off_minutes" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableCutOffMinutes(v *int) *ClinicUpdateOne {
	if v != nil {
		_u.SetCutOffMinutes(*v)
	}
	return _u
}

// AddCutOffMinutes adds value to the "cut_off_minutes" field.
func (_u *ClinicUpdateOne) AddCutOffMinutes(v int) *ClinicUpdateOne {
	_u.mutation.AddCutOffMinutes(v)
	return _u
}

// SetNoShowMinutes sets the "no_show_minutes" field.
func (_u *ClinicUpdateOne) SetNoShowMinutes(v int) *ClinicUpdateOne {
	_u.mutation.ResetNoShowMinutes()
	_u.mutation.SetNoShowMinutes(v)
	return _u
}

// SetNillableNoShowMinutes sets the "no_show_minutes" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableNoShowMinutes(v *int) *ClinicUpdateOne {
	if v != nil {
		_u.SetNoShowMinutes(*v)
	}
	return _u
}

// AddNoShowMinutes adds value to the "no_show_minutes" field.
func (_u *ClinicUpdateOne) AddNoShowMinutes(v int) *ClinicUpdateOne {
	_u.mutation.AddNoShowMinutes(v)
	return _u
}

// SetContactEmail sets the "contact_email" field.
func (_u *ClinicUpdateOne) SetContactEmail(v string) *ClinicUpdateOne {
	_u.mutation.SetContactEmail(v)
	return _u
}

// SetNillableContactEmail sets the "contact_email" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableContactEmail(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetContactEmail(*v)
	}
	return _u
}

// ClearContactEmail clears the value of the "contact_email" field.
func (_u *ClinicUpdateOne) ClearContactEmail() *ClinicUpdateOne {
	_u.mutation.ClearContactEmail()
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *ClinicUpdateOne) SetContactPhone(v string) *ClinicUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableContactPhone(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *ClinicUpdateOne) ClearContactPhone() *ClinicUpdateOne {
	_u.mutation.ClearContactPhone()
	return _u
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdateOne) Mutation() *ClinicMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdateOne) Where(ps ...predicate.Clinic) *ClinicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicUpdateOne) Select(field string, fields ...string) *ClinicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Clinic entity.
func (_u *ClinicUpdateOne) Save(ctx context.Context) (*Clinic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdateOne) SaveX(ctx context.Context) *Clinic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdateOne) sqlSave(ctx context.Context) (_node *Clinic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Clinic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinic.FieldID)
		for _, f := range fields {
			if !clinic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinic.FieldID {
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
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassicNumbering(); ok {
		_spec.SetField(clinic.FieldClassicNumbering, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RejoinAfter(); ok {
		_spec.SetField(clinic.FieldRejoinAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRejoinAfter(); ok {
		_spec.AddField(clinic.FieldRejoinAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CutOffMinutes(); ok {
		_spec.SetField(clinic.FieldCutOffMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCutOffMinutes(); ok {
		_spec.AddField(clinic.FieldCutOffMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NoShowMinutes(); ok {
		_spec.SetField(clinic.FieldNoShowMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNoShowMinutes(); ok {
		_spec.AddField(clinic.FieldNoShowMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContactEmail(); ok {
		_spec.SetField(clinic.FieldContactEmail, field.TypeString, value)
	}
	if _u.mutation.ContactEmailCleared() {
		_spec.ClearField(clinic.FieldContactEmail, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(clinic.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(clinic.FieldContactPhone, field.TypeString)
	}
	_node = &Clinic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
