// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nivaran/nivaran_backend/internal/repo/appointment"
	"github.com/nivaran/nivaran_backend/internal/repo/clinic"
	"github.com/nivaran/nivaran_backend/internal/repo/dayoverride"
	"github.com/nivaran/nivaran_backend/internal/repo/doctor"
	"github.com/nivaran/nivaran_backend/internal/repo/predicate"
	"github.com/nivaran/nivaran_backend/internal/repo/reservation"
	"github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
	"github.com/nivaran/nivaran_backend/internal/repo/tokencounter"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment     = "Appointment"
	TypeClinic          = "Clinic"
	TypeDayOverride     = "DayOverride"
	TypeDoctor          = "Doctor"
	TypeReservation     = "Reservation"
	TypeScheduleSession = "ScheduleSession"
	TypeTokenCounter    = "TokenCounter"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	clinic_id           *uuid.UUID
	doctor_id           *uuid.UUID
	patient_name        *string
	patient_phone       *string
	patient_email       *string
	day                 *string
	slot_index          *int
	addslot_index       *int
	session_index       *int
	addsession_index    *int
	start_time          *time.Time
	kind                *appointment.Kind
	token_number        *string
	numeric_token       *int
	addnumeric_token    *int
	status              *appointment.Status
	cut_off_time        *time.Time
	no_show_time        *time.Time
	delay_minutes       *int
	adddelay_minutes    *int
	force_booked        *bool
	rejoined            *bool
	confirmed_at        *time.Time
	completed_at        *time.Time
	cancelled_at        *time.Time
	cancellation_reason *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Appointment, error)
	predicates          []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *AppointmentMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *AppointmentMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *AppointmentMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *AppointmentMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *AppointmentMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *AppointmentMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetPatientName sets the "patient_name" field.
func (m *AppointmentMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *AppointmentMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *AppointmentMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetPatientPhone sets the "patient_phone" field.
func (m *AppointmentMutation) SetPatientPhone(s string) {
	m.patient_phone = &s
}

// PatientPhone returns the value of the "patient_phone" field in the mutation.
func (m *AppointmentMutation) PatientPhone() (r string, exists bool) {
	v := m.patient_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientPhone returns the old "patient_phone" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPatientPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientPhone: %w", err)
	}
	return oldValue.PatientPhone, nil
}

// ResetPatientPhone resets all changes to the "patient_phone" field.
func (m *AppointmentMutation) ResetPatientPhone() {
	m.patient_phone = nil
}

// SetPatientEmail sets the "patient_email" field.
func (m *AppointmentMutation) SetPatientEmail(s string) {
	m.patient_email = &s
}

// PatientEmail returns the value of the "patient_email" field in the mutation.
func (m *AppointmentMutation) PatientEmail() (r string, exists bool) {
	v := m.patient_email
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientEmail returns the old "patient_email" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPatientEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientEmail: %w", err)
	}
	return oldValue.PatientEmail, nil
}

// ClearPatientEmail clears the value of the "patient_email" field.
func (m *AppointmentMutation) ClearPatientEmail() {
	m.patient_email = nil
	m.clearedFields[appointment.FieldPatientEmail] = struct{}{}
}

// PatientEmailCleared returns if the "patient_email" field was cleared in this mutation.
func (m *AppointmentMutation) PatientEmailCleared() bool {
	_, ok := m.clearedFields[appointment.FieldPatientEmail]
	return ok
}

// ResetPatientEmail resets all changes to the "patient_email" field.
func (m *AppointmentMutation) ResetPatientEmail() {
	m.patient_email = nil
	delete(m.clearedFields, appointment.FieldPatientEmail)
}

// SetDay sets the "day" field.
func (m *AppointmentMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *AppointmentMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *AppointmentMutation) ResetDay() {
	m.day = nil
}

// SetSlotIndex sets the "slot_index" field.
func (m *AppointmentMutation) SetSlotIndex(i int) {
	m.slot_index = &i
	m.addslot_index = nil
}

// SlotIndex returns the value of the "slot_index" field in the mutation.
func (m *AppointmentMutation) SlotIndex() (r int, exists bool) {
	v := m.slot_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotIndex returns the old "slot_index" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldSlotIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotIndex: %w", err)
	}
	return oldValue.SlotIndex, nil
}

// AddSlotIndex adds i to the "slot_index" field.
func (m *AppointmentMutation) AddSlotIndex(i int) {
	if m.addslot_index != nil {
		*m.addslot_index += i
	} else {
		m.addslot_index = &i
	}
}

// AddedSlotIndex returns the value that was added to the "slot_index" field in this mutation.
func (m *AppointmentMutation) AddedSlotIndex() (r int, exists bool) {
	v := m.addslot_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlotIndex resets all changes to the "slot_index" field.
func (m *AppointmentMutation) ResetSlotIndex() {
	m.slot_index = nil
	m.addslot_index = nil
}

// SetSessionIndex sets the "session_index" field.
func (m *AppointmentMutation) SetSessionIndex(i int) {
	m.session_index = &i
	m.addsession_index = nil
}

// SessionIndex returns the value of the "session_index" field in the mutation.
func (m *AppointmentMutation) SessionIndex() (r int, exists bool) {
	v := m.session_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionIndex returns the old "session_index" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldSessionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionIndex: %w", err)
	}
	return oldValue.SessionIndex, nil
}

// AddSessionIndex adds i to the "session_index" field.
func (m *AppointmentMutation) AddSessionIndex(i int) {
	if m.addsession_index != nil {
		*m.addsession_index += i
	} else {
		m.addsession_index = &i
	}
}

// AddedSessionIndex returns the value that was added to the "session_index" field in this mutation.
func (m *AppointmentMutation) AddedSessionIndex() (r int, exists bool) {
	v := m.addsession_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionIndex resets all changes to the "session_index" field.
func (m *AppointmentMutation) ResetSessionIndex() {
	m.session_index = nil
	m.addsession_index = nil
}

// SetStartTime sets the "start_time" field.
func (m *AppointmentMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AppointmentMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AppointmentMutation) ResetStartTime() {
	m.start_time = nil
}

// SetKind sets the "kind" field.
func (m *AppointmentMutation) SetKind(a appointment.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AppointmentMutation) Kind() (r appointment.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldKind(ctx context.Context) (v appointment.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AppointmentMutation) ResetKind() {
	m.kind = nil
}

// SetTokenNumber sets the "token_number" field.
func (m *AppointmentMutation) SetTokenNumber(s string) {
	m.token_number = &s
}

// TokenNumber returns the value of the "token_number" field in the mutation.
func (m *AppointmentMutation) TokenNumber() (r string, exists bool) {
	v := m.token_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenNumber returns the old "token_number" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldTokenNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenNumber: %w", err)
	}
	return oldValue.TokenNumber, nil
}

// ResetTokenNumber resets all changes to the "token_number" field.
func (m *AppointmentMutation) ResetTokenNumber() {
	m.token_number = nil
}

// SetNumericToken sets the "numeric_token" field.
func (m *AppointmentMutation) SetNumericToken(i int) {
	m.numeric_token = &i
	m.addnumeric_token = nil
}

// NumericToken returns the value of the "numeric_token" field in the mutation.
func (m *AppointmentMutation) NumericToken() (r int, exists bool) {
	v := m.numeric_token
	if v == nil {
		return
	}
	return *v, true
}

// OldNumericToken returns the old "numeric_token" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldNumericToken(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumericToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumericToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumericToken: %w", err)
	}
	return oldValue.NumericToken, nil
}

// AddNumericToken adds i to the "numeric_token" field.
func (m *AppointmentMutation) AddNumericToken(i int) {
	if m.addnumeric_token != nil {
		*m.addnumeric_token += i
	} else {
		m.addnumeric_token = &i
	}
}

// AddedNumericToken returns the value that was added to the "numeric_token" field in this mutation.
func (m *AppointmentMutation) AddedNumericToken() (r int, exists bool) {
	v := m.addnumeric_token
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumericToken resets all changes to the "numeric_token" field.
func (m *AppointmentMutation) ResetNumericToken() {
	m.numeric_token = nil
	m.addnumeric_token = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetCutOffTime sets the "cut_off_time" field.
func (m *AppointmentMutation) SetCutOffTime(t time.Time) {
	m.cut_off_time = &t
}

// CutOffTime returns the value of the "cut_off_time" field in the mutation.
func (m *AppointmentMutation) CutOffTime() (r time.Time, exists bool) {
	v := m.cut_off_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCutOffTime returns the old "cut_off_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCutOffTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCutOffTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCutOffTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCutOffTime: %w", err)
	}
	return oldValue.CutOffTime, nil
}

// ResetCutOffTime resets all changes to the "cut_off_time" field.
func (m *AppointmentMutation) ResetCutOffTime() {
	m.cut_off_time = nil
}

// SetNoShowTime sets the "no_show_time" field.
func (m *AppointmentMutation) SetNoShowTime(t time.Time) {
	m.no_show_time = &t
}

// NoShowTime returns the value of the "no_show_time" field in the mutation.
func (m *AppointmentMutation) NoShowTime() (r time.Time, exists bool) {
	v := m.no_show_time
	if v == nil {
		return
	}
	return *v, true
}

// OldNoShowTime returns the old "no_show_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldNoShowTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoShowTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoShowTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoShowTime: %w", err)
	}
	return oldValue.NoShowTime, nil
}

// ResetNoShowTime resets all changes to the "no_show_time" field.
func (m *AppointmentMutation) ResetNoShowTime() {
	m.no_show_time = nil
}

// SetDelayMinutes sets the "delay_minutes" field.
func (m *AppointmentMutation) SetDelayMinutes(i int) {
	m.delay_minutes = &i
	m.adddelay_minutes = nil
}

// DelayMinutes returns the value of the "delay_minutes" field in the mutation.
func (m *AppointmentMutation) DelayMinutes() (r int, exists bool) {
	v := m.delay_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayMinutes returns the old "delay_minutes" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDelayMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayMinutes: %w", err)
	}
	return oldValue.DelayMinutes, nil
}

// AddDelayMinutes adds i to the "delay_minutes" field.
func (m *AppointmentMutation) AddDelayMinutes(i int) {
	if m.adddelay_minutes != nil {
		*m.adddelay_minutes += i
	} else {
		m.adddelay_minutes = &i
	}
}

// AddedDelayMinutes returns the value that was added to the "delay_minutes" field in this mutation.
func (m *AppointmentMutation) AddedDelayMinutes() (r int, exists bool) {
	v := m.adddelay_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelayMinutes resets all changes to the "delay_minutes" field.
func (m *AppointmentMutation) ResetDelayMinutes() {
	m.delay_minutes = nil
	m.adddelay_minutes = nil
}

// SetForceBooked sets the "force_booked" field.
func (m *AppointmentMutation) SetForceBooked(b bool) {
	m.force_booked = &b
}

// ForceBooked returns the value of the "force_booked" field in the mutation.
func (m *AppointmentMutation) ForceBooked() (r bool, exists bool) {
	v := m.force_booked
	if v == nil {
		return
	}
	return *v, true
}

// OldForceBooked returns the old "force_booked" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldForceBooked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForceBooked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForceBooked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForceBooked: %w", err)
	}
	return oldValue.ForceBooked, nil
}

// ResetForceBooked resets all changes to the "force_booked" field.
func (m *AppointmentMutation) ResetForceBooked() {
	m.force_booked = nil
}

// SetRejoined sets the "rejoined" field.
func (m *AppointmentMutation) SetRejoined(b bool) {
	m.rejoined = &b
}

// Rejoined returns the value of the "rejoined" field in the mutation.
func (m *AppointmentMutation) Rejoined() (r bool, exists bool) {
	v := m.rejoined
	if v == nil {
		return
	}
	return *v, true
}

// OldRejoined returns the old "rejoined" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldRejoined(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejoined is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejoined requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejoined: %w", err)
	}
	return oldValue.Rejoined, nil
}

// ResetRejoined resets all changes to the "rejoined" field.
func (m *AppointmentMutation) ResetRejoined() {
	m.rejoined = nil
}

// SetConfirmedAt sets the "confirmed_at" field.
func (m *AppointmentMutation) SetConfirmedAt(t time.Time) {
	m.confirmed_at = &t
}

// ConfirmedAt returns the value of the "confirmed_at" field in the mutation.
func (m *AppointmentMutation) ConfirmedAt() (r time.Time, exists bool) {
	v := m.confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedAt returns the old "confirmed_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedAt: %w", err)
	}
	return oldValue.ConfirmedAt, nil
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (m *AppointmentMutation) ClearConfirmedAt() {
	m.confirmed_at = nil
	m.clearedFields[appointment.FieldConfirmedAt] = struct{}{}
}

// ConfirmedAtCleared returns if the "confirmed_at" field was cleared in this mutation.
func (m *AppointmentMutation) ConfirmedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldConfirmedAt]
	return ok
}

// ResetConfirmedAt resets all changes to the "confirmed_at" field.
func (m *AppointmentMutation) ResetConfirmedAt() {
	m.confirmed_at = nil
	delete(m.clearedFields, appointment.FieldConfirmedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AppointmentMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AppointmentMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AppointmentMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[appointment.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AppointmentMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AppointmentMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, appointment.FieldCompletedAt)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *AppointmentMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *AppointmentMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *AppointmentMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[appointment.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *AppointmentMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *AppointmentMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, appointment.FieldCancelledAt)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *AppointmentMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *AppointmentMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *AppointmentMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[appointment.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *AppointmentMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *AppointmentMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, appointment.FieldCancellationReason)
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.clinic_id != nil {
		fields = append(fields, appointment.FieldClinicID)
	}
	if m.doctor_id != nil {
		fields = append(fields, appointment.FieldDoctorID)
	}
	if m.patient_name != nil {
		fields = append(fields, appointment.FieldPatientName)
	}
	if m.patient_phone != nil {
		fields = append(fields, appointment.FieldPatientPhone)
	}
	if m.patient_email != nil {
		fields = append(fields, appointment.FieldPatientEmail)
	}
	if m.day != nil {
		fields = append(fields, appointment.FieldDay)
	}
	if m.slot_index != nil {
		fields = append(fields, appointment.FieldSlotIndex)
	}
	if m.session_index != nil {
		fields = append(fields, appointment.FieldSessionIndex)
	}
	if m.start_time != nil {
		fields = append(fields, appointment.FieldStartTime)
	}
	if m.kind != nil {
		fields = append(fields, appointment.FieldKind)
	}
	if m.token_number != nil {
		fields = append(fields, appointment.FieldTokenNumber)
	}
	if m.numeric_token != nil {
		fields = append(fields, appointment.FieldNumericToken)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.cut_off_time != nil {
		fields = append(fields, appointment.FieldCutOffTime)
	}
	if m.no_show_time != nil {
		fields = append(fields, appointment.FieldNoShowTime)
	}
	if m.delay_minutes != nil {
		fields = append(fields, appointment.FieldDelayMinutes)
	}
	if m.force_booked != nil {
		fields = append(fields, appointment.FieldForceBooked)
	}
	if m.rejoined != nil {
		fields = append(fields, appointment.FieldRejoined)
	}
	if m.confirmed_at != nil {
		fields = append(fields, appointment.FieldConfirmedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	if m.cancelled_at != nil {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldClinicID:
		return m.ClinicID()
	case appointment.FieldDoctorID:
		return m.DoctorID()
	case appointment.FieldPatientName:
		return m.PatientName()
	case appointment.FieldPatientPhone:
		return m.PatientPhone()
	case appointment.FieldPatientEmail:
		return m.PatientEmail()
	case appointment.FieldDay:
		return m.Day()
	case appointment.FieldSlotIndex:
		return m.SlotIndex()
	case appointment.FieldSessionIndex:
		return m.SessionIndex()
	case appointment.FieldStartTime:
		return m.StartTime()
	case appointment.FieldKind:
		return m.Kind()
	case appointment.FieldTokenNumber:
		return m.TokenNumber()
	case appointment.FieldNumericToken:
		return m.NumericToken()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldCutOffTime:
		return m.CutOffTime()
	case appointment.FieldNoShowTime:
		return m.NoShowTime()
	case appointment.FieldDelayMinutes:
		return m.DelayMinutes()
	case appointment.FieldForceBooked:
		return m.ForceBooked()
	case appointment.FieldRejoined:
		return m.Rejoined()
	case appointment.FieldConfirmedAt:
		return m.ConfirmedAt()
	case appointment.FieldCompletedAt:
		return m.CompletedAt()
	case appointment.FieldCancelledAt:
		return m.CancelledAt()
	case appointment.FieldCancellationReason:
		return m.CancellationReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldClinicID:
		return m.OldClinicID(ctx)
	case appointment.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case appointment.FieldPatientName:
		return m.OldPatientName(ctx)
	case appointment.FieldPatientPhone:
		return m.OldPatientPhone(ctx)
	case appointment.FieldPatientEmail:
		return m.OldPatientEmail(ctx)
	case appointment.FieldDay:
		return m.OldDay(ctx)
	case appointment.FieldSlotIndex:
		return m.OldSlotIndex(ctx)
	case appointment.FieldSessionIndex:
		return m.OldSessionIndex(ctx)
	case appointment.FieldStartTime:
		return m.OldStartTime(ctx)
	case appointment.FieldKind:
		return m.OldKind(ctx)
	case appointment.FieldTokenNumber:
		return m.OldTokenNumber(ctx)
	case appointment.FieldNumericToken:
		return m.OldNumericToken(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldCutOffTime:
		return m.OldCutOffTime(ctx)
	case appointment.FieldNoShowTime:
		return m.OldNoShowTime(ctx)
	case appointment.FieldDelayMinutes:
		return m.OldDelayMinutes(ctx)
	case appointment.FieldForceBooked:
		return m.OldForceBooked(ctx)
	case appointment.FieldRejoined:
		return m.OldRejoined(ctx)
	case appointment.FieldConfirmedAt:
		return m.OldConfirmedAt(ctx)
	case appointment.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case appointment.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case appointment.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case appointment.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case appointment.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case appointment.FieldPatientPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientPhone(v)
		return nil
	case appointment.FieldPatientEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientEmail(v)
		return nil
	case appointment.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case appointment.FieldSlotIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotIndex(v)
		return nil
	case appointment.FieldSessionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionIndex(v)
		return nil
	case appointment.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case appointment.FieldKind:
		v, ok := value.(appointment.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case appointment.FieldTokenNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenNumber(v)
		return nil
	case appointment.FieldNumericToken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumericToken(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldCutOffTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCutOffTime(v)
		return nil
	case appointment.FieldNoShowTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoShowTime(v)
		return nil
	case appointment.FieldDelayMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayMinutes(v)
		return nil
	case appointment.FieldForceBooked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForceBooked(v)
		return nil
	case appointment.FieldRejoined:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejoined(v)
		return nil
	case appointment.FieldConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedAt(v)
		return nil
	case appointment.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case appointment.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case appointment.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addslot_index != nil {
		fields = append(fields, appointment.FieldSlotIndex)
	}
	if m.addsession_index != nil {
		fields = append(fields, appointment.FieldSessionIndex)
	}
	if m.addnumeric_token != nil {
		fields = append(fields, appointment.FieldNumericToken)
	}
	if m.adddelay_minutes != nil {
		fields = append(fields, appointment.FieldDelayMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldSlotIndex:
		return m.AddedSlotIndex()
	case appointment.FieldSessionIndex:
		return m.AddedSessionIndex()
	case appointment.FieldNumericToken:
		return m.AddedNumericToken()
	case appointment.FieldDelayMinutes:
		return m.AddedDelayMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldSlotIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlotIndex(v)
		return nil
	case appointment.FieldSessionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionIndex(v)
		return nil
	case appointment.FieldNumericToken:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumericToken(v)
		return nil
	case appointment.FieldDelayMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelayMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldPatientEmail) {
		fields = append(fields, appointment.FieldPatientEmail)
	}
	if m.FieldCleared(appointment.FieldConfirmedAt) {
		fields = append(fields, appointment.FieldConfirmedAt)
	}
	if m.FieldCleared(appointment.FieldCompletedAt) {
		fields = append(fields, appointment.FieldCompletedAt)
	}
	if m.FieldCleared(appointment.FieldCancelledAt) {
		fields = append(fields, appointment.FieldCancelledAt)
	}
	if m.FieldCleared(appointment.FieldCancellationReason) {
		fields = append(fields, appointment.FieldCancellationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldPatientEmail:
		m.ClearPatientEmail()
		return nil
	case appointment.FieldConfirmedAt:
		m.ClearConfirmedAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case appointment.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case appointment.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldClinicID:
		m.ResetClinicID()
		return nil
	case appointment.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case appointment.FieldPatientName:
		m.ResetPatientName()
		return nil
	case appointment.FieldPatientPhone:
		m.ResetPatientPhone()
		return nil
	case appointment.FieldPatientEmail:
		m.ResetPatientEmail()
		return nil
	case appointment.FieldDay:
		m.ResetDay()
		return nil
	case appointment.FieldSlotIndex:
		m.ResetSlotIndex()
		return nil
	case appointment.FieldSessionIndex:
		m.ResetSessionIndex()
		return nil
	case appointment.FieldStartTime:
		m.ResetStartTime()
		return nil
	case appointment.FieldKind:
		m.ResetKind()
		return nil
	case appointment.FieldTokenNumber:
		m.ResetTokenNumber()
		return nil
	case appointment.FieldNumericToken:
		m.ResetNumericToken()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldCutOffTime:
		m.ResetCutOffTime()
		return nil
	case appointment.FieldNoShowTime:
		m.ResetNoShowTime()
		return nil
	case appointment.FieldDelayMinutes:
		m.ResetDelayMinutes()
		return nil
	case appointment.FieldForceBooked:
		m.ResetForceBooked()
		return nil
	case appointment.FieldRejoined:
		m.ResetRejoined()
		return nil
	case appointment.FieldConfirmedAt:
		m.ResetConfirmedAt()
		return nil
	case appointment.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case appointment.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case appointment.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// ClinicMutation represents an operation that mutates the Clinic nodes in the graph.
type ClinicMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	slug               *string
	timezone           *string
	classic_numbering  *bool
	rejoin_after       *int
	addrejoin_after    *int
	cut_off_minutes    *int
	addcut_off_minutes *int
	no_show_minutes    *int
	addno_show_minutes *int
	contact_email      *string
	contact_phone      *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Clinic, error)
	predicates         []predicate.Clinic
}

var _ ent.Mutation = (*ClinicMutation)(nil)

// clinicOption allows management of the mutation configuration using functional options.
type clinicOption func(*ClinicMutation)

// newClinicMutation creates new mutation for the Clinic entity.
func newClinicMutation(c config, op Op, opts ...clinicOption) *ClinicMutation {
	m := &ClinicMutation{
		config:        c,
		op:            op,
		typ:           TypeClinic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicID sets the ID field of the mutation.
func withClinicID(id uuid.UUID) clinicOption {
	return func(m *ClinicMutation) {
		var (
			err   error
			once  sync.Once
			value *Clinic
		)
		m.oldValue = func(ctx context.Context) (*Clinic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Clinic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinic sets the old Clinic of the mutation.
func withClinic(node *Clinic) clinicOption {
	return func(m *ClinicMutation) {
		m.oldValue = func(context.Context) (*Clinic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Clinic entities.
func (m *ClinicMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Clinic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ClinicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClinicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ClinicMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ClinicMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ClinicMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ClinicMutation) ResetSlug() {
	m.slug = nil
}

// SetTimezone sets the "timezone" field.
func (m *ClinicMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *ClinicMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *ClinicMutation) ResetTimezone() {
	m.timezone = nil
}

// SetClassicNumbering sets the "classic_numbering" field.
func (m *ClinicMutation) SetClassicNumbering(b bool) {
	m.classic_numbering = &b
}

// ClassicNumbering returns the value of the "classic_numbering" field in the mutation.
func (m *ClinicMutation) ClassicNumbering() (r bool, exists bool) {
	v := m.classic_numbering
	if v == nil {
		return
	}
	return *v, true
}

// OldClassicNumbering returns the old "classic_numbering" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldClassicNumbering(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassicNumbering is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassicNumbering requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassicNumbering: %w", err)
	}
	return oldValue.ClassicNumbering, nil
}

// ResetClassicNumbering resets all changes to the "classic_numbering" field.
func (m *ClinicMutation) ResetClassicNumbering() {
	m.classic_numbering = nil
}

// SetRejoinAfter sets the "rejoin_after" field.
func (m *ClinicMutation) SetRejoinAfter(i int) {
	m.rejoin_after = &i
	m.addrejoin_after = nil
}

// RejoinAfter returns the value of the "rejoin_after" field in the mutation.
func (m *ClinicMutation) RejoinAfter() (r int, exists bool) {
	v := m.rejoin_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRejoinAfter returns the old "rejoin_after" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldRejoinAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejoinAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejoinAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejoinAfter: %w", err)
	}
	return oldValue.RejoinAfter, nil
}

// AddRejoinAfter adds i to the "rejoin_after" field.
func (m *ClinicMutation) AddRejoinAfter(i int) {
	if m.addrejoin_after != nil {
		*m.addrejoin_after += i
	} else {
		m.addrejoin_after = &i
	}
}

// AddedRejoinAfter returns the value that was added to the "rejoin_after" field in this mutation.
func (m *ClinicMutation) AddedRejoinAfter() (r int, exists bool) {
	v := m.addrejoin_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejoinAfter resets all changes to the "rejoin_after" field.
func (m *ClinicMutation) ResetRejoinAfter() {
	m.rejoin_after = nil
	m.addrejoin_after = nil
}

// SetCutOffMinutes sets the "cut_off_minutes" field.
func (m *ClinicMutation) SetCutOffMinutes(i int) {
	m.cut_off_minutes = &i
	m.addcut_off_minutes = nil
}

// CutOffMinutes returns the value of the "cut_off_minutes" field in the mutation.
func (m *ClinicMutation) CutOffMinutes() (r int, exists bool) {
	v := m.cut_off_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldCutOffMinutes returns the old "cut_off_minutes" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCutOffMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCutOffMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCutOffMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCutOffMinutes: %w", err)
	}
	return oldValue.CutOffMinutes, nil
}

// AddCutOffMinutes adds i to the "cut_off_minutes" field.
func (m *ClinicMutation) AddCutOffMinutes(i int) {
	if m.addcut_off_minutes != nil {
		*m.addcut_off_minutes += i
	} else {
		m.addcut_off_minutes = &i
	}
}

// AddedCutOffMinutes returns the value that was added to the "cut_off_minutes" field in this mutation.
func (m *ClinicMutation) AddedCutOffMinutes() (r int, exists bool) {
	v := m.addcut_off_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetCutOffMinutes resets all changes to the "cut_off_minutes" field.
func (m *ClinicMutation) ResetCutOffMinutes() {
	m.cut_off_minutes = nil
	m.addcut_off_minutes = nil
}

// SetNoShowMinutes sets the "no_show_minutes" field.
func (m *ClinicMutation) SetNoShowMinutes(i int) {
	m.no_show_minutes = &i
	m.addno_show_minutes = nil
}

// NoShowMinutes returns the value of the "no_show_minutes" field in the mutation.
func (m *ClinicMutation) NoShowMinutes() (r int, exists bool) {
	v := m.no_show_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldNoShowMinutes returns the old "no_show_minutes" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldNoShowMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoShowMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoShowMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoShowMinutes: %w", err)
	}
	return oldValue.NoShowMinutes, nil
}

// AddNoShowMinutes adds i to the "no_show_minutes" field.
func (m *ClinicMutation) AddNoShowMinutes(i int) {
	if m.addno_show_minutes != nil {
		*m.addno_show_minutes += i
	} else {
		m.addno_show_minutes = &i
	}
}

// AddedNoShowMinutes returns the value that was added to the "no_show_minutes" field in this mutation.
func (m *ClinicMutation) AddedNoShowMinutes() (r int, exists bool) {
	v := m.addno_show_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetNoShowMinutes resets all changes to the "no_show_minutes" field.
func (m *ClinicMutation) ResetNoShowMinutes() {
	m.no_show_minutes = nil
	m.addno_show_minutes = nil
}

// SetContactEmail sets the "contact_email" field.
func (m *ClinicMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *ClinicMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldContactEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ClearContactEmail clears the value of the "contact_email" field.
func (m *ClinicMutation) ClearContactEmail() {
	m.contact_email = nil
	m.clearedFields[clinic.FieldContactEmail] = struct{}{}
}

// ContactEmailCleared returns if the "contact_email" field was cleared in this mutation.
func (m *ClinicMutation) ContactEmailCleared() bool {
	_, ok := m.clearedFields[clinic.FieldContactEmail]
	return ok
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *ClinicMutation) ResetContactEmail() {
	m.contact_email = nil
	delete(m.clearedFields, clinic.FieldContactEmail)
}

// SetContactPhone sets the "contact_phone" field.
func (m *ClinicMutation) SetContactPhone(s string) {
	m.contact_phone = &s
}

// ContactPhone returns the value of the "contact_phone" field in the mutation.
func (m *ClinicMutation) ContactPhone() (r string, exists bool) {
	v := m.contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldContactPhone returns the old "contact_phone" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldContactPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactPhone: %w", err)
	}
	return oldValue.ContactPhone, nil
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (m *ClinicMutation) ClearContactPhone() {
	m.contact_phone = nil
	m.clearedFields[clinic.FieldContactPhone] = struct{}{}
}

// ContactPhoneCleared returns if the "contact_phone" field was cleared in this mutation.
func (m *ClinicMutation) ContactPhoneCleared() bool {
	_, ok := m.clearedFields[clinic.FieldContactPhone]
	return ok
}

// ResetContactPhone resets all changes to the "contact_phone" field.
func (m *ClinicMutation) ResetContactPhone() {
	m.contact_phone = nil
	delete(m.clearedFields, clinic.FieldContactPhone)
}

// Where appends a list predicates to the ClinicMutation builder.
func (m *ClinicMutation) Where(ps ...predicate.Clinic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Clinic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Clinic).
func (m *ClinicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, clinic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinic.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, clinic.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, clinic.FieldSlug)
	}
	if m.timezone != nil {
		fields = append(fields, clinic.FieldTimezone)
	}
	if m.classic_numbering != nil {
		fields = append(fields, clinic.FieldClassicNumbering)
	}
	if m.rejoin_after != nil {
		fields = append(fields, clinic.FieldRejoinAfter)
	}
	if m.cut_off_minutes != nil {
		fields = append(fields, clinic.FieldCutOffMinutes)
	}
	if m.no_show_minutes != nil {
		fields = append(fields, clinic.FieldNoShowMinutes)
	}
	if m.contact_email != nil {
		fields = append(fields, clinic.FieldContactEmail)
	}
	if m.contact_phone != nil {
		fields = append(fields, clinic.FieldContactPhone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.CreatedAt()
	case clinic.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinic.FieldName:
		return m.Name()
	case clinic.FieldSlug:
		return m.Slug()
	case clinic.FieldTimezone:
		return m.Timezone()
	case clinic.FieldClassicNumbering:
		return m.ClassicNumbering()
	case clinic.FieldRejoinAfter:
		return m.RejoinAfter()
	case clinic.FieldCutOffMinutes:
		return m.CutOffMinutes()
	case clinic.FieldNoShowMinutes:
		return m.NoShowMinutes()
	case clinic.FieldContactEmail:
		return m.ContactEmail()
	case clinic.FieldContactPhone:
		return m.ContactPhone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinic.FieldName:
		return m.OldName(ctx)
	case clinic.FieldSlug:
		return m.OldSlug(ctx)
	case clinic.FieldTimezone:
		return m.OldTimezone(ctx)
	case clinic.FieldClassicNumbering:
		return m.OldClassicNumbering(ctx)
	case clinic.FieldRejoinAfter:
		return m.OldRejoinAfter(ctx)
	case clinic.FieldCutOffMinutes:
		return m.OldCutOffMinutes(ctx)
	case clinic.FieldNoShowMinutes:
		return m.OldNoShowMinutes(ctx)
	case clinic.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case clinic.FieldContactPhone:
		return m.OldContactPhone(ctx)
	}
	return nil, fmt.Errorf("unknown Clinic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case clinic.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case clinic.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case clinic.FieldClassicNumbering:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassicNumbering(v)
		return nil
	case clinic.FieldRejoinAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejoinAfter(v)
		return nil
	case clinic.FieldCutOffMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCutOffMinutes(v)
		return nil
	case clinic.FieldNoShowMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoShowMinutes(v)
		return nil
	case clinic.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case clinic.FieldContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactPhone(v)
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMutation) AddedFields() []string {
	var fields []string
	if m.addrejoin_after != nil {
		fields = append(fields, clinic.FieldRejoinAfter)
	}
	if m.addcut_off_minutes != nil {
		fields = append(fields, clinic.FieldCutOffMinutes)
	}
	if m.addno_show_minutes != nil {
		fields = append(fields, clinic.FieldNoShowMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clinic.FieldRejoinAfter:
		return m.AddedRejoinAfter()
	case clinic.FieldCutOffMinutes:
		return m.AddedCutOffMinutes()
	case clinic.FieldNoShowMinutes:
		return m.AddedNoShowMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clinic.FieldRejoinAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejoinAfter(v)
		return nil
	case clinic.FieldCutOffMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCutOffMinutes(v)
		return nil
	case clinic.FieldNoShowMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNoShowMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Clinic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinic.FieldContactEmail) {
		fields = append(fields, clinic.FieldContactEmail)
	}
	if m.FieldCleared(clinic.FieldContactPhone) {
		fields = append(fields, clinic.FieldContactPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMutation) ClearField(name string) error {
	switch name {
	case clinic.FieldContactEmail:
		m.ClearContactEmail()
		return nil
	case clinic.FieldContactPhone:
		m.ClearContactPhone()
		return nil
	}
	return fmt.Errorf("unknown Clinic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMutation) ResetField(name string) error {
	switch name {
	case clinic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinic.FieldName:
		m.ResetName()
		return nil
	case clinic.FieldSlug:
		m.ResetSlug()
		return nil
	case clinic.FieldTimezone:
		m.ResetTimezone()
		return nil
	case clinic.FieldClassicNumbering:
		m.ResetClassicNumbering()
		return nil
	case clinic.FieldRejoinAfter:
		m.ResetRejoinAfter()
		return nil
	case clinic.FieldCutOffMinutes:
		m.ResetCutOffMinutes()
		return nil
	case clinic.FieldNoShowMinutes:
		m.ResetNoShowMinutes()
		return nil
	case clinic.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case clinic.FieldContactPhone:
		m.ResetContactPhone()
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Clinic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Clinic edge %s", name)
}

// DayOverrideMutation represents an operation that mutates the DayOverride nodes in the graph.
type DayOverrideMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	doctor_id        *uuid.UUID
	day              *string
	kind             *dayoverride.Kind
	break_start      *time.Time
	break_end        *time.Time
	session_index    *int
	addsession_index *int
	original_end     *time.Time
	new_end          *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*DayOverride, error)
	predicates       []predicate.DayOverride
}

var _ ent.Mutation = (*DayOverrideMutation)(nil)

// dayoverrideOption allows management of the mutation configuration using functional options.
type dayoverrideOption func(*DayOverrideMutation)

// newDayOverrideMutation creates new mutation for the DayOverride entity.
func newDayOverrideMutation(c config, op Op, opts ...dayoverrideOption) *DayOverrideMutation {
	m := &DayOverrideMutation{
		config:        c,
		op:            op,
		typ:           TypeDayOverride,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDayOverrideID sets the ID field of the mutation.
func withDayOverrideID(id uuid.UUID) dayoverrideOption {
	return func(m *DayOverrideMutation) {
		var (
			err   error
			once  sync.Once
			value *DayOverride
		)
		m.oldValue = func(ctx context.Context) (*DayOverride, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DayOverride.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDayOverride sets the old DayOverride of the mutation.
func withDayOverride(node *DayOverride) dayoverrideOption {
	return func(m *DayOverrideMutation) {
		m.oldValue = func(context.Context) (*DayOverride, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DayOverrideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DayOverrideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DayOverride entities.
func (m *DayOverrideMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DayOverrideMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DayOverrideMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DayOverride.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DayOverrideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DayOverrideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DayOverrideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DayOverrideMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DayOverrideMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DayOverrideMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *DayOverrideMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *DayOverrideMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *DayOverrideMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetDay sets the "day" field.
func (m *DayOverrideMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *DayOverrideMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *DayOverrideMutation) ResetDay() {
	m.day = nil
}

// SetKind sets the "kind" field.
func (m *DayOverrideMutation) SetKind(d dayoverride.Kind) {
	m.kind = &d
}

// Kind returns the value of the "kind" field in the mutation.
func (m *DayOverrideMutation) Kind() (r dayoverride.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldKind(ctx context.Context) (v dayoverride.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *DayOverrideMutation) ResetKind() {
	m.kind = nil
}

// SetBreakStart sets the "break_start" field.
func (m *DayOverrideMutation) SetBreakStart(t time.Time) {
	m.break_start = &t
}

// BreakStart returns the value of the "break_start" field in the mutation.
func (m *DayOverrideMutation) BreakStart() (r time.Time, exists bool) {
	v := m.break_start
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakStart returns the old "break_start" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldBreakStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakStart: %w", err)
	}
	return oldValue.BreakStart, nil
}

// ClearBreakStart clears the value of the "break_start" field.
func (m *DayOverrideMutation) ClearBreakStart() {
	m.break_start = nil
	m.clearedFields[dayoverride.FieldBreakStart] = struct{}{}
}

// BreakStartCleared returns if the "break_start" field was cleared in this mutation.
func (m *DayOverrideMutation) BreakStartCleared() bool {
	_, ok := m.clearedFields[dayoverride.FieldBreakStart]
	return ok
}

// ResetBreakStart resets all changes to the "break_start" field.
func (m *DayOverrideMutation) ResetBreakStart() {
	m.break_start = nil
	delete(m.clearedFields, dayoverride.FieldBreakStart)
}

// SetBreakEnd sets the "break_end" field.
func (m *DayOverrideMutation) SetBreakEnd(t time.Time) {
	m.break_end = &t
}

// BreakEnd returns the value of the "break_end" field in the mutation.
func (m *DayOverrideMutation) BreakEnd() (r time.Time, exists bool) {
	v := m.break_end
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakEnd returns the old "break_end" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldBreakEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakEnd: %w", err)
	}
	return oldValue.BreakEnd, nil
}

// ClearBreakEnd clears the value of the "break_end" field.
func (m *DayOverrideMutation) ClearBreakEnd() {
	m.break_end = nil
	m.clearedFields[dayoverride.FieldBreakEnd] = struct{}{}
}

// BreakEndCleared returns if the "break_end" field was cleared in this mutation.
func (m *DayOverrideMutation) BreakEndCleared() bool {
	_, ok := m.clearedFields[dayoverride.FieldBreakEnd]
	return ok
}

// ResetBreakEnd resets all changes to the "break_end" field.
func (m *DayOverrideMutation) ResetBreakEnd() {
	m.break_end = nil
	delete(m.clearedFields, dayoverride.FieldBreakEnd)
}

// SetSessionIndex sets the "session_index" field.
func (m *DayOverrideMutation) SetSessionIndex(i int) {
	m.session_index = &i
	m.addsession_index = nil
}

// SessionIndex returns the value of the "session_index" field in the mutation.
func (m *DayOverrideMutation) SessionIndex() (r int, exists bool) {
	v := m.session_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionIndex returns the old "session_index" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldSessionIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionIndex: %w", err)
	}
	return oldValue.SessionIndex, nil
}

// AddSessionIndex adds i to the "session_index" field.
func (m *DayOverrideMutation) AddSessionIndex(i int) {
	if m.addsession_index != nil {
		*m.addsession_index += i
	} else {
		m.addsession_index = &i
	}
}

// AddedSessionIndex returns the value that was added to the "session_index" field in this mutation.
func (m *DayOverrideMutation) AddedSessionIndex() (r int, exists bool) {
	v := m.addsession_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearSessionIndex clears the value of the "session_index" field.
func (m *DayOverrideMutation) ClearSessionIndex() {
	m.session_index = nil
	m.addsession_index = nil
	m.clearedFields[dayoverride.FieldSessionIndex] = struct{}{}
}

// SessionIndexCleared returns if the "session_index" field was cleared in this mutation.
func (m *DayOverrideMutation) SessionIndexCleared() bool {
	_, ok := m.clearedFields[dayoverride.FieldSessionIndex]
	return ok
}

// ResetSessionIndex resets all changes to the "session_index" field.
func (m *DayOverrideMutation) ResetSessionIndex() {
	m.session_index = nil
	m.addsession_index = nil
	delete(m.clearedFields, dayoverride.FieldSessionIndex)
}

// SetOriginalEnd sets the "original_end" field.
func (m *DayOverrideMutation) SetOriginalEnd(t time.Time) {
	m.original_end = &t
}

// OriginalEnd returns the value of the "original_end" field in the mutation.
func (m *DayOverrideMutation) OriginalEnd() (r time.Time, exists bool) {
	v := m.original_end
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEnd returns the old "original_end" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldOriginalEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEnd: %w", err)
	}
	return oldValue.OriginalEnd, nil
}

// ClearOriginalEnd clears the value of the "original_end" field.
func (m *DayOverrideMutation) ClearOriginalEnd() {
	m.original_end = nil
	m.clearedFields[dayoverride.FieldOriginalEnd] = struct{}{}
}

// OriginalEndCleared returns if the "original_end" field was cleared in this mutation.
func (m *DayOverrideMutation) OriginalEndCleared() bool {
	_, ok := m.clearedFields[dayoverride.FieldOriginalEnd]
	return ok
}

// ResetOriginalEnd resets all changes to the "original_end" field.
func (m *DayOverrideMutation) ResetOriginalEnd() {
	m.original_end = nil
	delete(m.clearedFields, dayoverride.FieldOriginalEnd)
}

// SetNewEnd sets the "new_end" field.
func (m *DayOverrideMutation) SetNewEnd(t time.Time) {
	m.new_end = &t
}

// NewEnd returns the value of the "new_end" field in the mutation.
func (m *DayOverrideMutation) NewEnd() (r time.Time, exists bool) {
	v := m.new_end
	if v == nil {
		return
	}
	return *v, true
}

// OldNewEnd returns the old "new_end" field's value of the DayOverride entity.
// If the DayOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DayOverrideMutation) OldNewEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewEnd: %w", err)
	}
	return oldValue.NewEnd, nil
}

// ClearNewEnd clears the value of the "new_end" field.
func (m *DayOverrideMutation) ClearNewEnd() {
	m.new_end = nil
	m.clearedFields[dayoverride.FieldNewEnd] = struct{}{}
}

// NewEndCleared returns if the "new_end" field was cleared in this mutation.
func (m *DayOverrideMutation) NewEndCleared() bool {
	_, ok := m.clearedFields[dayoverride.FieldNewEnd]
	return ok
}

// ResetNewEnd resets all changes to the "new_end" field.
func (m *DayOverrideMutation) ResetNewEnd() {
	m.new_end = nil
	delete(m.clearedFields, dayoverride.FieldNewEnd)
}

// Where appends a list predicates to the DayOverrideMutation builder.
func (m *DayOverrideMutation) Where(ps ...predicate.DayOverride) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DayOverrideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DayOverrideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DayOverride, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DayOverrideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DayOverrideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DayOverride).
func (m *DayOverrideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DayOverrideMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, dayoverride.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dayoverride.FieldUpdatedAt)
	}
	if m.doctor_id != nil {
		fields = append(fields, dayoverride.FieldDoctorID)
	}
	if m.day != nil {
		fields = append(fields, dayoverride.FieldDay)
	}
	if m.kind != nil {
		fields = append(fields, dayoverride.FieldKind)
	}
	if m.break_start != nil {
		fields = append(fields, dayoverride.FieldBreakStart)
	}
	if m.break_end != nil {
		fields = append(fields, dayoverride.FieldBreakEnd)
	}
	if m.session_index != nil {
		fields = append(fields, dayoverride.FieldSessionIndex)
	}
	if m.original_end != nil {
		fields = append(fields, dayoverride.FieldOriginalEnd)
	}
	if m.new_end != nil {
		fields = append(fields, dayoverride.FieldNewEnd)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DayOverrideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dayoverride.FieldCreatedAt:
		return m.CreatedAt()
	case dayoverride.FieldUpdatedAt:
		return m.UpdatedAt()
	case dayoverride.FieldDoctorID:
		return m.DoctorID()
	case dayoverride.FieldDay:
		return m.Day()
	case dayoverride.FieldKind:
		return m.Kind()
	case dayoverride.FieldBreakStart:
		return m.BreakStart()
	case dayoverride.FieldBreakEnd:
		return m.BreakEnd()
	case dayoverride.FieldSessionIndex:
		return m.SessionIndex()
	case dayoverride.FieldOriginalEnd:
		return m.OriginalEnd()
	case dayoverride.FieldNewEnd:
		return m.NewEnd()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DayOverrideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dayoverride.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dayoverride.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case dayoverride.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case dayoverride.FieldDay:
		return m.OldDay(ctx)
	case dayoverride.FieldKind:
		return m.OldKind(ctx)
	case dayoverride.FieldBreakStart:
		return m.OldBreakStart(ctx)
	case dayoverride.FieldBreakEnd:
		return m.OldBreakEnd(ctx)
	case dayoverride.FieldSessionIndex:
		return m.OldSessionIndex(ctx)
	case dayoverride.FieldOriginalEnd:
		return m.OldOriginalEnd(ctx)
	case dayoverride.FieldNewEnd:
		return m.OldNewEnd(ctx)
	}
	return nil, fmt.Errorf("unknown DayOverride field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DayOverrideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dayoverride.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dayoverride.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case dayoverride.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case dayoverride.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case dayoverride.FieldKind:
		v, ok := value.(dayoverride.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case dayoverride.FieldBreakStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakStart(v)
		return nil
	case dayoverride.FieldBreakEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakEnd(v)
		return nil
	case dayoverride.FieldSessionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionIndex(v)
		return nil
	case dayoverride.FieldOriginalEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEnd(v)
		return nil
	case dayoverride.FieldNewEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewEnd(v)
		return nil
	}
	return fmt.Errorf("unknown DayOverride field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DayOverrideMutation) AddedFields() []string {
	var fields []string
	if m.addsession_index != nil {
		fields = append(fields, dayoverride.FieldSessionIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DayOverrideMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dayoverride.FieldSessionIndex:
		return m.AddedSessionIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DayOverrideMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dayoverride.FieldSessionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionIndex(v)
		return nil
	}
	return fmt.Errorf("unknown DayOverride numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DayOverrideMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dayoverride.FieldBreakStart) {
		fields = append(fields, dayoverride.FieldBreakStart)
	}
	if m.FieldCleared(dayoverride.FieldBreakEnd) {
		fields = append(fields, dayoverride.FieldBreakEnd)
	}
	if m.FieldCleared(dayoverride.FieldSessionIndex) {
		fields = append(fields, dayoverride.FieldSessionIndex)
	}
	if m.FieldCleared(dayoverride.FieldOriginalEnd) {
		fields = append(fields, dayoverride.FieldOriginalEnd)
	}
	if m.FieldCleared(dayoverride.FieldNewEnd) {
		fields = append(fields, dayoverride.FieldNewEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DayOverrideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DayOverrideMutation) ClearField(name string) error {
	switch name {
	case dayoverride.FieldBreakStart:
		m.ClearBreakStart()
		return nil
	case dayoverride.FieldBreakEnd:
		m.ClearBreakEnd()
		return nil
	case dayoverride.FieldSessionIndex:
		m.ClearSessionIndex()
		return nil
	case dayoverride.FieldOriginalEnd:
		m.ClearOriginalEnd()
		return nil
	case dayoverride.FieldNewEnd:
		m.ClearNewEnd()
		return nil
	}
	return fmt.Errorf("unknown DayOverride nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DayOverrideMutation) ResetField(name string) error {
	switch name {
	case dayoverride.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dayoverride.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case dayoverride.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case dayoverride.FieldDay:
		m.ResetDay()
		return nil
	case dayoverride.FieldKind:
		m.ResetKind()
		return nil
	case dayoverride.FieldBreakStart:
		m.ResetBreakStart()
		return nil
	case dayoverride.FieldBreakEnd:
		m.ResetBreakEnd()
		return nil
	case dayoverride.FieldSessionIndex:
		m.ResetSessionIndex()
		return nil
	case dayoverride.FieldOriginalEnd:
		m.ResetOriginalEnd()
		return nil
	case dayoverride.FieldNewEnd:
		m.ResetNewEnd()
		return nil
	}
	return fmt.Errorf("unknown DayOverride field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DayOverrideMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DayOverrideMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DayOverrideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DayOverrideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DayOverrideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DayOverrideMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DayOverrideMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DayOverride unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DayOverrideMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DayOverride edge %s", name)
}

// DoctorMutation represents an operation that mutates the Doctor nodes in the graph.
type DoctorMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	clinic_id               *uuid.UUID
	name                    *string
	specialty               *string
	token_prefix            *string
	consult_minutes         *int
	addconsult_minutes      *int
	avg_consult_minutes     *int
	addavg_consult_minutes  *int
	active                  *bool
	in_consultation         *bool
	consultation_started_at *time.Time
	completed_count         *int
	addcompleted_count      *int
	completed_day           *string
	delay_minutes           *int
	adddelay_minutes        *int
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Doctor, error)
	predicates              []predicate.Doctor
}

var _ ent.Mutation = (*DoctorMutation)(nil)

// doctorOption allows management of the mutation configuration using functional options.
type doctorOption func(*DoctorMutation)

// newDoctorMutation creates new mutation for the Doctor entity.
func newDoctorMutation(c config, op Op, opts ...doctorOption) *DoctorMutation {
	m := &DoctorMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorID sets the ID field of the mutation.
func withDoctorID(id uuid.UUID) doctorOption {
	return func(m *DoctorMutation) {
		var (
			err   error
			once  sync.Once
			value *Doctor
		)
		m.oldValue = func(ctx context.Context) (*Doctor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Doctor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctor sets the old Doctor of the mutation.
func withDoctor(node *Doctor) doctorOption {
	return func(m *DoctorMutation) {
		m.oldValue = func(context.Context) (*Doctor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Doctor entities.
func (m *DoctorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Doctor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DoctorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DoctorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DoctorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *DoctorMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *DoctorMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *DoctorMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetName sets the "name" field.
func (m *DoctorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DoctorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DoctorMutation) ResetName() {
	m.name = nil
}

// SetSpecialty sets the "specialty" field.
func (m *DoctorMutation) SetSpecialty(s string) {
	m.specialty = &s
}

// Specialty returns the value of the "specialty" field in the mutation.
func (m *DoctorMutation) Specialty() (r string, exists bool) {
	v := m.specialty
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialty returns the old "specialty" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldSpecialty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialty: %w", err)
	}
	return oldValue.Specialty, nil
}

// ClearSpecialty clears the value of the "specialty" field.
func (m *DoctorMutation) ClearSpecialty() {
	m.specialty = nil
	m.clearedFields[doctor.FieldSpecialty] = struct{}{}
}

// SpecialtyCleared returns if the "specialty" field was cleared in this mutation.
func (m *DoctorMutation) SpecialtyCleared() bool {
	_, ok := m.clearedFields[doctor.FieldSpecialty]
	return ok
}

// ResetSpecialty resets all changes to the "specialty" field.
func (m *DoctorMutation) ResetSpecialty() {
	m.specialty = nil
	delete(m.clearedFields, doctor.FieldSpecialty)
}

// SetTokenPrefix sets the "token_prefix" field.
func (m *DoctorMutation) SetTokenPrefix(s string) {
	m.token_prefix = &s
}

// TokenPrefix returns the value of the "token_prefix" field in the mutation.
func (m *DoctorMutation) TokenPrefix() (r string, exists bool) {
	v := m.token_prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenPrefix returns the old "token_prefix" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldTokenPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenPrefix: %w", err)
	}
	return oldValue.TokenPrefix, nil
}

// ResetTokenPrefix resets all changes to the "token_prefix" field.
func (m *DoctorMutation) ResetTokenPrefix() {
	m.token_prefix = nil
}

// SetConsultMinutes sets the "consult_minutes" field.
func (m *DoctorMutation) SetConsultMinutes(i int) {
	m.consult_minutes = &i
	m.addconsult_minutes = nil
}

// ConsultMinutes returns the value of the "consult_minutes" field in the mutation.
func (m *DoctorMutation) ConsultMinutes() (r int, exists bool) {
	v := m.consult_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultMinutes returns the old "consult_minutes" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldConsultMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultMinutes: %w", err)
	}
	return oldValue.ConsultMinutes, nil
}

// AddConsultMinutes adds i to the "consult_minutes" field.
func (m *DoctorMutation) AddConsultMinutes(i int) {
	if m.addconsult_minutes != nil {
		*m.addconsult_minutes += i
	} else {
		m.addconsult_minutes = &i
	}
}

// AddedConsultMinutes returns the value that was added to the "consult_minutes" field in this mutation.
func (m *DoctorMutation) AddedConsultMinutes() (r int, exists bool) {
	v := m.addconsult_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsultMinutes resets all changes to the "consult_minutes" field.
func (m *DoctorMutation) ResetConsultMinutes() {
	m.consult_minutes = nil
	m.addconsult_minutes = nil
}

// SetAvgConsultMinutes sets the "avg_consult_minutes" field.
func (m *DoctorMutation) SetAvgConsultMinutes(i int) {
	m.avg_consult_minutes = &i
	m.addavg_consult_minutes = nil
}

// AvgConsultMinutes returns the value of the "avg_consult_minutes" field in the mutation.
func (m *DoctorMutation) AvgConsultMinutes() (r int, exists bool) {
	v := m.avg_consult_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgConsultMinutes returns the old "avg_consult_minutes" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldAvgConsultMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgConsultMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgConsultMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgConsultMinutes: %w", err)
	}
	return oldValue.AvgConsultMinutes, nil
}

// AddAvgConsultMinutes adds i to the "avg_consult_minutes" field.
func (m *DoctorMutation) AddAvgConsultMinutes(i int) {
	if m.addavg_consult_minutes != nil {
		*m.addavg_consult_minutes += i
	} else {
		m.addavg_consult_minutes = &i
	}
}

// AddedAvgConsultMinutes returns the value that was added to the "avg_consult_minutes" field in this mutation.
func (m *DoctorMutation) AddedAvgConsultMinutes() (r int, exists bool) {
	v := m.addavg_consult_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgConsultMinutes resets all changes to the "avg_consult_minutes" field.
func (m *DoctorMutation) ResetAvgConsultMinutes() {
	m.avg_consult_minutes = nil
	m.addavg_consult_minutes = nil
}

// SetActive sets the "active" field.
func (m *DoctorMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *DoctorMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *DoctorMutation) ResetActive() {
	m.active = nil
}

// SetInConsultation sets the "in_consultation" field.
func (m *DoctorMutation) SetInConsultation(b bool) {
	m.in_consultation = &b
}

// InConsultation returns the value of the "in_consultation" field in the mutation.
func (m *DoctorMutation) InConsultation() (r bool, exists bool) {
	v := m.in_consultation
	if v == nil {
		return
	}
	return *v, true
}

// OldInConsultation returns the old "in_consultation" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldInConsultation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInConsultation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInConsultation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInConsultation: %w", err)
	}
	return oldValue.InConsultation, nil
}

// ResetInConsultation resets all changes to the "in_consultation" field.
func (m *DoctorMutation) ResetInConsultation() {
	m.in_consultation = nil
}

// SetConsultationStartedAt sets the "consultation_started_at" field.
func (m *DoctorMutation) SetConsultationStartedAt(t time.Time) {
	m.consultation_started_at = &t
}

// ConsultationStartedAt returns the value of the "consultation_started_at" field in the mutation.
func (m *DoctorMutation) ConsultationStartedAt() (r time.Time, exists bool) {
	v := m.consultation_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationStartedAt returns the old "consultation_started_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldConsultationStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationStartedAt: %w", err)
	}
	return oldValue.ConsultationStartedAt, nil
}

// ClearConsultationStartedAt clears the value of the "consultation_started_at" field.
func (m *DoctorMutation) ClearConsultationStartedAt() {
	m.consultation_started_at = nil
	m.clearedFields[doctor.FieldConsultationStartedAt] = struct{}{}
}

// ConsultationStartedAtCleared returns if the "consultation_started_at" field was cleared in this mutation.
func (m *DoctorMutation) ConsultationStartedAtCleared() bool {
	_, ok := m.clearedFields[doctor.FieldConsultationStartedAt]
	return ok
}

// ResetConsultationStartedAt resets all changes to the "consultation_started_at" field.
func (m *DoctorMutation) ResetConsultationStartedAt() {
	m.consultation_started_at = nil
	delete(m.clearedFields, doctor.FieldConsultationStartedAt)
}

// SetCompletedCount sets the "completed_count" field.
func (m *DoctorMutation) SetCompletedCount(i int) {
	m.completed_count = &i
	m.addcompleted_count = nil
}

// CompletedCount returns the value of the "completed_count" field in the mutation.
func (m *DoctorMutation) CompletedCount() (r int, exists bool) {
	v := m.completed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedCount returns the old "completed_count" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCompletedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedCount: %w", err)
	}
	return oldValue.CompletedCount, nil
}

// AddCompletedCount adds i to the "completed_count" field.
func (m *DoctorMutation) AddCompletedCount(i int) {
	if m.addcompleted_count != nil {
		*m.addcompleted_count += i
	} else {
		m.addcompleted_count = &i
	}
}

// AddedCompletedCount returns the value that was added to the "completed_count" field in this mutation.
func (m *DoctorMutation) AddedCompletedCount() (r int, exists bool) {
	v := m.addcompleted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedCount resets all changes to the "completed_count" field.
func (m *DoctorMutation) ResetCompletedCount() {
	m.completed_count = nil
	m.addcompleted_count = nil
}

// SetCompletedDay sets the "completed_day" field.
func (m *DoctorMutation) SetCompletedDay(s string) {
	m.completed_day = &s
}

// CompletedDay returns the value of the "completed_day" field in the mutation.
func (m *DoctorMutation) CompletedDay() (r string, exists bool) {
	v := m.completed_day
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedDay returns the old "completed_day" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCompletedDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedDay: %w", err)
	}
	return oldValue.CompletedDay, nil
}

// ClearCompletedDay clears the value of the "completed_day" field.
func (m *DoctorMutation) ClearCompletedDay() {
	m.completed_day = nil
	m.clearedFields[doctor.FieldCompletedDay] = struct{}{}
}

// CompletedDayCleared returns if the "completed_day" field was cleared in this mutation.
func (m *DoctorMutation) CompletedDayCleared() bool {
	_, ok := m.clearedFields[doctor.FieldCompletedDay]
	return ok
}

// ResetCompletedDay resets all changes to the "completed_day" field.
func (m *DoctorMutation) ResetCompletedDay() {
	m.completed_day = nil
	delete(m.clearedFields, doctor.FieldCompletedDay)
}

// SetDelayMinutes sets the "delay_minutes" field.
func (m *DoctorMutation) SetDelayMinutes(i int) {
	m.delay_minutes = &i
	m.adddelay_minutes = nil
}

// DelayMinutes returns the value of the "delay_minutes" field in the mutation.
func (m *DoctorMutation) DelayMinutes() (r int, exists bool) {
	v := m.delay_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayMinutes returns the old "delay_minutes" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldDelayMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayMinutes: %w", err)
	}
	return oldValue.DelayMinutes, nil
}

// AddDelayMinutes adds i to the "delay_minutes" field.
func (m *DoctorMutation) AddDelayMinutes(i int) {
	if m.adddelay_minutes != nil {
		*m.adddelay_minutes += i
	} else {
		m.adddelay_minutes = &i
	}
}

// AddedDelayMinutes returns the value that was added to the "delay_minutes" field in this mutation.
func (m *DoctorMutation) AddedDelayMinutes() (r int, exists bool) {
	v := m.adddelay_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelayMinutes resets all changes to the "delay_minutes" field.
func (m *DoctorMutation) ResetDelayMinutes() {
	m.delay_minutes = nil
	m.adddelay_minutes = nil
}

// Where appends a list predicates to the DoctorMutation builder.
func (m *DoctorMutation) Where(ps ...predicate.Doctor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Doctor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Doctor).
func (m *DoctorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, doctor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, doctor.FieldUpdatedAt)
	}
	if m.clinic_id != nil {
		fields = append(fields, doctor.FieldClinicID)
	}
	if m.name != nil {
		fields = append(fields, doctor.FieldName)
	}
	if m.specialty != nil {
		fields = append(fields, doctor.FieldSpecialty)
	}
	if m.token_prefix != nil {
		fields = append(fields, doctor.FieldTokenPrefix)
	}
	if m.consult_minutes != nil {
		fields = append(fields, doctor.FieldConsultMinutes)
	}
	if m.avg_consult_minutes != nil {
		fields = append(fields, doctor.FieldAvgConsultMinutes)
	}
	if m.active != nil {
		fields = append(fields, doctor.FieldActive)
	}
	if m.in_consultation != nil {
		fields = append(fields, doctor.FieldInConsultation)
	}
	if m.consultation_started_at != nil {
		fields = append(fields, doctor.FieldConsultationStartedAt)
	}
	if m.completed_count != nil {
		fields = append(fields, doctor.FieldCompletedCount)
	}
	if m.completed_day != nil {
		fields = append(fields, doctor.FieldCompletedDay)
	}
	if m.delay_minutes != nil {
		fields = append(fields, doctor.FieldDelayMinutes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.CreatedAt()
	case doctor.FieldUpdatedAt:
		return m.UpdatedAt()
	case doctor.FieldClinicID:
		return m.ClinicID()
	case doctor.FieldName:
		return m.Name()
	case doctor.FieldSpecialty:
		return m.Specialty()
	case doctor.FieldTokenPrefix:
		return m.TokenPrefix()
	case doctor.FieldConsultMinutes:
		return m.ConsultMinutes()
	case doctor.FieldAvgConsultMinutes:
		return m.AvgConsultMinutes()
	case doctor.FieldActive:
		return m.Active()
	case doctor.FieldInConsultation:
		return m.InConsultation()
	case doctor.FieldConsultationStartedAt:
		return m.ConsultationStartedAt()
	case doctor.FieldCompletedCount:
		return m.CompletedCount()
	case doctor.FieldCompletedDay:
		return m.CompletedDay()
	case doctor.FieldDelayMinutes:
		return m.DelayMinutes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case doctor.FieldClinicID:
		return m.OldClinicID(ctx)
	case doctor.FieldName:
		return m.OldName(ctx)
	case doctor.FieldSpecialty:
		return m.OldSpecialty(ctx)
	case doctor.FieldTokenPrefix:
		return m.OldTokenPrefix(ctx)
	case doctor.FieldConsultMinutes:
		return m.OldConsultMinutes(ctx)
	case doctor.FieldAvgConsultMinutes:
		return m.OldAvgConsultMinutes(ctx)
	case doctor.FieldActive:
		return m.OldActive(ctx)
	case doctor.FieldInConsultation:
		return m.OldInConsultation(ctx)
	case doctor.FieldConsultationStartedAt:
		return m.OldConsultationStartedAt(ctx)
	case doctor.FieldCompletedCount:
		return m.OldCompletedCount(ctx)
	case doctor.FieldCompletedDay:
		return m.OldCompletedDay(ctx)
	case doctor.FieldDelayMinutes:
		return m.OldDelayMinutes(ctx)
	}
	return nil, fmt.Errorf("unknown Doctor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case doctor.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case doctor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case doctor.FieldSpecialty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialty(v)
		return nil
	case doctor.FieldTokenPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenPrefix(v)
		return nil
	case doctor.FieldConsultMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultMinutes(v)
		return nil
	case doctor.FieldAvgConsultMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgConsultMinutes(v)
		return nil
	case doctor.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case doctor.FieldInConsultation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInConsultation(v)
		return nil
	case doctor.FieldConsultationStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationStartedAt(v)
		return nil
	case doctor.FieldCompletedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedCount(v)
		return nil
	case doctor.FieldCompletedDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedDay(v)
		return nil
	case doctor.FieldDelayMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorMutation) AddedFields() []string {
	var fields []string
	if m.addconsult_minutes != nil {
		fields = append(fields, doctor.FieldConsultMinutes)
	}
	if m.addavg_consult_minutes != nil {
		fields = append(fields, doctor.FieldAvgConsultMinutes)
	}
	if m.addcompleted_count != nil {
		fields = append(fields, doctor.FieldCompletedCount)
	}
	if m.adddelay_minutes != nil {
		fields = append(fields, doctor.FieldDelayMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldConsultMinutes:
		return m.AddedConsultMinutes()
	case doctor.FieldAvgConsultMinutes:
		return m.AddedAvgConsultMinutes()
	case doctor.FieldCompletedCount:
		return m.AddedCompletedCount()
	case doctor.FieldDelayMinutes:
		return m.AddedDelayMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldConsultMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsultMinutes(v)
		return nil
	case doctor.FieldAvgConsultMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgConsultMinutes(v)
		return nil
	case doctor.FieldCompletedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedCount(v)
		return nil
	case doctor.FieldDelayMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelayMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctor.FieldSpecialty) {
		fields = append(fields, doctor.FieldSpecialty)
	}
	if m.FieldCleared(doctor.FieldConsultationStartedAt) {
		fields = append(fields, doctor.FieldConsultationStartedAt)
	}
	if m.FieldCleared(doctor.FieldCompletedDay) {
		fields = append(fields, doctor.FieldCompletedDay)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorMutation) ClearField(name string) error {
	switch name {
	case doctor.FieldSpecialty:
		m.ClearSpecialty()
		return nil
	case doctor.FieldConsultationStartedAt:
		m.ClearConsultationStartedAt()
		return nil
	case doctor.FieldCompletedDay:
		m.ClearCompletedDay()
		return nil
	}
	return fmt.Errorf("unknown Doctor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorMutation) ResetField(name string) error {
	switch name {
	case doctor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case doctor.FieldClinicID:
		m.ResetClinicID()
		return nil
	case doctor.FieldName:
		m.ResetName()
		return nil
	case doctor.FieldSpecialty:
		m.ResetSpecialty()
		return nil
	case doctor.FieldTokenPrefix:
		m.ResetTokenPrefix()
		return nil
	case doctor.FieldConsultMinutes:
		m.ResetConsultMinutes()
		return nil
	case doctor.FieldAvgConsultMinutes:
		m.ResetAvgConsultMinutes()
		return nil
	case doctor.FieldActive:
		m.ResetActive()
		return nil
	case doctor.FieldInConsultation:
		m.ResetInConsultation()
		return nil
	case doctor.FieldConsultationStartedAt:
		m.ResetConsultationStartedAt()
		return nil
	case doctor.FieldCompletedCount:
		m.ResetCompletedCount()
		return nil
	case doctor.FieldCompletedDay:
		m.ResetCompletedDay()
		return nil
	case doctor.FieldDelayMinutes:
		m.ResetDelayMinutes()
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Doctor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Doctor edge %s", name)
}

// ReservationMutation represents an operation that mutates the Reservation nodes in the graph.
type ReservationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	doctor_id     *uuid.UUID
	day           *string
	slot_index    *int
	addslot_index *int
	slot_time     *time.Time
	status        *reservation.Status
	expires_at    *time.Time
	patient_name  *string
	patient_phone *string
	kind          *reservation.Kind
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Reservation, error)
	predicates    []predicate.Reservation
}

var _ ent.Mutation = (*ReservationMutation)(nil)

// reservationOption allows management of the mutation configuration using functional options.
type reservationOption func(*ReservationMutation)

// newReservationMutation creates new mutation for the Reservation entity.
func newReservationMutation(c config, op Op, opts ...reservationOption) *ReservationMutation {
	m := &ReservationMutation{
		config:        c,
		op:            op,
		typ:           TypeReservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReservationID sets the ID field of the mutation.
func withReservationID(id uuid.UUID) reservationOption {
	return func(m *ReservationMutation) {
		var (
			err   error
			once  sync.Once
			value *Reservation
		)
		m.oldValue = func(ctx context.Context) (*Reservation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reservation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReservation sets the old Reservation of the mutation.
func withReservation(node *Reservation) reservationOption {
	return func(m *ReservationMutation) {
		m.oldValue = func(context.Context) (*Reservation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Reservation entities.
func (m *ReservationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReservationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReservationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reservation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ReservationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReservationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReservationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReservationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReservationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReservationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *ReservationMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *ReservationMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *ReservationMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetDay sets the "day" field.
func (m *ReservationMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *ReservationMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *ReservationMutation) ResetDay() {
	m.day = nil
}

// SetSlotIndex sets the "slot_index" field.
func (m *ReservationMutation) SetSlotIndex(i int) {
	m.slot_index = &i
	m.addslot_index = nil
}

// SlotIndex returns the value of the "slot_index" field in the mutation.
func (m *ReservationMutation) SlotIndex() (r int, exists bool) {
	v := m.slot_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotIndex returns the old "slot_index" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldSlotIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotIndex: %w", err)
	}
	return oldValue.SlotIndex, nil
}

// AddSlotIndex adds i to the "slot_index" field.
func (m *ReservationMutation) AddSlotIndex(i int) {
	if m.addslot_index != nil {
		*m.addslot_index += i
	} else {
		m.addslot_index = &i
	}
}

// AddedSlotIndex returns the value that was added to the "slot_index" field in this mutation.
func (m *ReservationMutation) AddedSlotIndex() (r int, exists bool) {
	v := m.addslot_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlotIndex resets all changes to the "slot_index" field.
func (m *ReservationMutation) ResetSlotIndex() {
	m.slot_index = nil
	m.addslot_index = nil
}

// SetSlotTime sets the "slot_time" field.
func (m *ReservationMutation) SetSlotTime(t time.Time) {
	m.slot_time = &t
}

// SlotTime returns the value of the "slot_time" field in the mutation.
func (m *ReservationMutation) SlotTime() (r time.Time, exists bool) {
	v := m.slot_time
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotTime returns the old "slot_time" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldSlotTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotTime: %w", err)
	}
	return oldValue.SlotTime, nil
}

// ResetSlotTime resets all changes to the "slot_time" field.
func (m *ReservationMutation) ResetSlotTime() {
	m.slot_time = nil
}

// SetStatus sets the "status" field.
func (m *ReservationMutation) SetStatus(r reservation.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReservationMutation) Status() (r reservation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldStatus(ctx context.Context) (v reservation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReservationMutation) ResetStatus() {
	m.status = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ReservationMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ReservationMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ReservationMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetPatientName sets the "patient_name" field.
func (m *ReservationMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *ReservationMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *ReservationMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetPatientPhone sets the "patient_phone" field.
func (m *ReservationMutation) SetPatientPhone(s string) {
	m.patient_phone = &s
}

// PatientPhone returns the value of the "patient_phone" field in the mutation.
func (m *ReservationMutation) PatientPhone() (r string, exists bool) {
	v := m.patient_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientPhone returns the old "patient_phone" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldPatientPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientPhone: %w", err)
	}
	return oldValue.PatientPhone, nil
}

// ResetPatientPhone resets all changes to the "patient_phone" field.
func (m *ReservationMutation) ResetPatientPhone() {
	m.patient_phone = nil
}

// SetKind sets the "kind" field.
func (m *ReservationMutation) SetKind(r reservation.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ReservationMutation) Kind() (r reservation.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldKind(ctx context.Context) (v reservation.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ReservationMutation) ResetKind() {
	m.kind = nil
}

// Where appends a list predicates to the ReservationMutation builder.
func (m *ReservationMutation) Where(ps ...predicate.Reservation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reservation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reservation).
func (m *ReservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReservationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, reservation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reservation.FieldUpdatedAt)
	}
	if m.doctor_id != nil {
		fields = append(fields, reservation.FieldDoctorID)
	}
	if m.day != nil {
		fields = append(fields, reservation.FieldDay)
	}
	if m.slot_index != nil {
		fields = append(fields, reservation.FieldSlotIndex)
	}
	if m.slot_time != nil {
		fields = append(fields, reservation.FieldSlotTime)
	}
	if m.status != nil {
		fields = append(fields, reservation.FieldStatus)
	}
	if m.expires_at != nil {
		fields = append(fields, reservation.FieldExpiresAt)
	}
	if m.patient_name != nil {
		fields = append(fields, reservation.FieldPatientName)
	}
	if m.patient_phone != nil {
		fields = append(fields, reservation.FieldPatientPhone)
	}
	if m.kind != nil {
		fields = append(fields, reservation.FieldKind)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldCreatedAt:
		return m.CreatedAt()
	case reservation.FieldUpdatedAt:
		return m.UpdatedAt()
	case reservation.FieldDoctorID:
		return m.DoctorID()
	case reservation.FieldDay:
		return m.Day()
	case reservation.FieldSlotIndex:
		return m.SlotIndex()
	case reservation.FieldSlotTime:
		return m.SlotTime()
	case reservation.FieldStatus:
		return m.Status()
	case reservation.FieldExpiresAt:
		return m.ExpiresAt()
	case reservation.FieldPatientName:
		return m.PatientName()
	case reservation.FieldPatientPhone:
		return m.PatientPhone()
	case reservation.FieldKind:
		return m.Kind()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reservation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reservation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case reservation.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case reservation.FieldDay:
		return m.OldDay(ctx)
	case reservation.FieldSlotIndex:
		return m.OldSlotIndex(ctx)
	case reservation.FieldSlotTime:
		return m.OldSlotTime(ctx)
	case reservation.FieldStatus:
		return m.OldStatus(ctx)
	case reservation.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case reservation.FieldPatientName:
		return m.OldPatientName(ctx)
	case reservation.FieldPatientPhone:
		return m.OldPatientPhone(ctx)
	case reservation.FieldKind:
		return m.OldKind(ctx)
	}
	return nil, fmt.Errorf("unknown Reservation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reservation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case reservation.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case reservation.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case reservation.FieldSlotIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotIndex(v)
		return nil
	case reservation.FieldSlotTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotTime(v)
		return nil
	case reservation.FieldStatus:
		v, ok := value.(reservation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reservation.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case reservation.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case reservation.FieldPatientPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientPhone(v)
		return nil
	case reservation.FieldKind:
		v, ok := value.(reservation.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReservationMutation) AddedFields() []string {
	var fields []string
	if m.addslot_index != nil {
		fields = append(fields, reservation.FieldSlotIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReservationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldSlotIndex:
		return m.AddedSlotIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldSlotIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlotIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReservationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReservationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Reservation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReservationMutation) ResetField(name string) error {
	switch name {
	case reservation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reservation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case reservation.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case reservation.FieldDay:
		m.ResetDay()
		return nil
	case reservation.FieldSlotIndex:
		m.ResetSlotIndex()
		return nil
	case reservation.FieldSlotTime:
		m.ResetSlotTime()
		return nil
	case reservation.FieldStatus:
		m.ResetStatus()
		return nil
	case reservation.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case reservation.FieldPatientName:
		m.ResetPatientName()
		return nil
	case reservation.FieldPatientPhone:
		m.ResetPatientPhone()
		return nil
	case reservation.FieldKind:
		m.ResetKind()
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReservationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReservationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReservationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReservationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reservation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReservationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reservation edge %s", name)
}

// ScheduleSessionMutation represents an operation that mutates the ScheduleSession nodes in the graph.
type ScheduleSessionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	doctor_id       *uuid.UUID
	weekday         *int
	addweekday      *int
	position        *int
	addposition     *int
	start_hour      *int
	addstart_hour   *int
	start_minute    *int
	addstart_minute *int
	end_hour        *int
	addend_hour     *int
	end_minute      *int
	addend_minute   *int
	active          *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ScheduleSession, error)
	predicates      []predicate.ScheduleSession
}

var _ ent.Mutation = (*ScheduleSessionMutation)(nil)

// schedulesessionOption allows management of the mutation configuration using functional options.
type schedulesessionOption func(*ScheduleSessionMutation)

// newScheduleSessionMutation creates new mutation for the ScheduleSession entity.
func newScheduleSessionMutation(c config, op Op, opts ...schedulesessionOption) *ScheduleSessionMutation {
	m := &ScheduleSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduleSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleSessionID sets the ID field of the mutation.
func withScheduleSessionID(id uuid.UUID) schedulesessionOption {
	return func(m *ScheduleSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduleSession
		)
		m.oldValue = func(ctx context.Context) (*ScheduleSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduleSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduleSession sets the old ScheduleSession of the mutation.
func withScheduleSession(node *ScheduleSession) schedulesessionOption {
	return func(m *ScheduleSessionMutation) {
		m.oldValue = func(context.Context) (*ScheduleSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduleSession entities.
func (m *ScheduleSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduleSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduleSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduleSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduleSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduleSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduleSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduleSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *ScheduleSessionMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *ScheduleSessionMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *ScheduleSessionMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetWeekday sets the "weekday" field.
func (m *ScheduleSessionMutation) SetWeekday(i int) {
	m.weekday = &i
	m.addweekday = nil
}

// Weekday returns the value of the "weekday" field in the mutation.
func (m *ScheduleSessionMutation) Weekday() (r int, exists bool) {
	v := m.weekday
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekday returns the old "weekday" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldWeekday(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekday is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekday requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekday: %w", err)
	}
	return oldValue.Weekday, nil
}

// AddWeekday adds i to the "weekday" field.
func (m *ScheduleSessionMutation) AddWeekday(i int) {
	if m.addweekday != nil {
		*m.addweekday += i
	} else {
		m.addweekday = &i
	}
}

// AddedWeekday returns the value that was added to the "weekday" field in this mutation.
func (m *ScheduleSessionMutation) AddedWeekday() (r int, exists bool) {
	v := m.addweekday
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekday resets all changes to the "weekday" field.
func (m *ScheduleSessionMutation) ResetWeekday() {
	m.weekday = nil
	m.addweekday = nil
}

// SetPosition sets the "position" field.
func (m *ScheduleSessionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ScheduleSessionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ScheduleSessionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ScheduleSessionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ScheduleSessionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetStartHour sets the "start_hour" field.
func (m *ScheduleSessionMutation) SetStartHour(i int) {
	m.start_hour = &i
	m.addstart_hour = nil
}

// StartHour returns the value of the "start_hour" field in the mutation.
func (m *ScheduleSessionMutation) StartHour() (r int, exists bool) {
	v := m.start_hour
	if v == nil {
		return
	}
	return *v, true
}

// OldStartHour returns the old "start_hour" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldStartHour(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartHour: %w", err)
	}
	return oldValue.StartHour, nil
}

// AddStartHour adds i to the "start_hour" field.
func (m *ScheduleSessionMutation) AddStartHour(i int) {
	if m.addstart_hour != nil {
		*m.addstart_hour += i
	} else {
		m.addstart_hour = &i
	}
}

// AddedStartHour returns the value that was added to the "start_hour" field in this mutation.
func (m *ScheduleSessionMutation) AddedStartHour() (r int, exists bool) {
	v := m.addstart_hour
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartHour resets all changes to the "start_hour" field.
func (m *ScheduleSessionMutation) ResetStartHour() {
	m.start_hour = nil
	m.addstart_hour = nil
}

// SetStartMinute sets the "start_minute" field.
func (m *ScheduleSessionMutation) SetStartMinute(i int) {
	m.start_minute = &i
	m.addstart_minute = nil
}

// StartMinute returns the value of the "start_minute" field in the mutation.
func (m *ScheduleSessionMutation) StartMinute() (r int, exists bool) {
	v := m.start_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldStartMinute returns the old "start_minute" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldStartMinute(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartMinute: %w", err)
	}
	return oldValue.StartMinute, nil
}

// AddStartMinute adds i to the "start_minute" field.
func (m *ScheduleSessionMutation) AddStartMinute(i int) {
	if m.addstart_minute != nil {
		*m.addstart_minute += i
	} else {
		m.addstart_minute = &i
	}
}

// AddedStartMinute returns the value that was added to the "start_minute" field in this mutation.
func (m *ScheduleSessionMutation) AddedStartMinute() (r int, exists bool) {
	v := m.addstart_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartMinute resets all changes to the "start_minute" field.
func (m *ScheduleSessionMutation) ResetStartMinute() {
	m.start_minute = nil
	m.addstart_minute = nil
}

// SetEndHour sets the "end_hour" field.
func (m *ScheduleSessionMutation) SetEndHour(i int) {
	m.end_hour = &i
	m.addend_hour = nil
}

// EndHour returns the value of the "end_hour" field in the mutation.
func (m *ScheduleSessionMutation) EndHour() (r int, exists bool) {
	v := m.end_hour
	if v == nil {
		return
	}
	return *v, true
}

// OldEndHour returns the old "end_hour" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldEndHour(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndHour: %w", err)
	}
	return oldValue.EndHour, nil
}

// AddEndHour adds i to the "end_hour" field.
func (m *ScheduleSessionMutation) AddEndHour(i int) {
	if m.addend_hour != nil {
		*m.addend_hour += i
	} else {
		m.addend_hour = &i
	}
}

// AddedEndHour returns the value that was added to the "end_hour" field in this mutation.
func (m *ScheduleSessionMutation) AddedEndHour() (r int, exists bool) {
	v := m.addend_hour
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndHour resets all changes to the "end_hour" field.
func (m *ScheduleSessionMutation) ResetEndHour() {
	m.end_hour = nil
	m.addend_hour = nil
}

// SetEndMinute sets the "end_minute" field.
func (m *ScheduleSessionMutation) SetEndMinute(i int) {
	m.end_minute = &i
	m.addend_minute = nil
}

// EndMinute returns the value of the "end_minute" field in the mutation.
func (m *ScheduleSessionMutation) EndMinute() (r int, exists bool) {
	v := m.end_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldEndMinute returns the old "end_minute" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldEndMinute(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndMinute: %w", err)
	}
	return oldValue.EndMinute, nil
}

// AddEndMinute adds i to the "end_minute" field.
func (m *ScheduleSessionMutation) AddEndMinute(i int) {
	if m.addend_minute != nil {
		*m.addend_minute += i
	} else {
		m.addend_minute = &i
	}
}

// AddedEndMinute returns the value that was added to the "end_minute" field in this mutation.
func (m *ScheduleSessionMutation) AddedEndMinute() (r int, exists bool) {
	v := m.addend_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndMinute resets all changes to the "end_minute" field.
func (m *ScheduleSessionMutation) ResetEndMinute() {
	m.end_minute = nil
	m.addend_minute = nil
}

// SetActive sets the "active" field.
func (m *ScheduleSessionMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ScheduleSessionMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ScheduleSession entity.
// If the ScheduleSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleSessionMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ScheduleSessionMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the ScheduleSessionMutation builder.
func (m *ScheduleSessionMutation) Where(ps ...predicate.ScheduleSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduleSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduleSession).
func (m *ScheduleSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, schedulesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, schedulesession.FieldUpdatedAt)
	}
	if m.doctor_id != nil {
		fields = append(fields, schedulesession.FieldDoctorID)
	}
	if m.weekday != nil {
		fields = append(fields, schedulesession.FieldWeekday)
	}
	if m.position != nil {
		fields = append(fields, schedulesession.FieldPosition)
	}
	if m.start_hour != nil {
		fields = append(fields, schedulesession.FieldStartHour)
	}
	if m.start_minute != nil {
		fields = append(fields, schedulesession.FieldStartMinute)
	}
	if m.end_hour != nil {
		fields = append(fields, schedulesession.FieldEndHour)
	}
	if m.end_minute != nil {
		fields = append(fields, schedulesession.FieldEndMinute)
	}
	if m.active != nil {
		fields = append(fields, schedulesession.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedulesession.FieldCreatedAt:
		return m.CreatedAt()
	case schedulesession.FieldUpdatedAt:
		return m.UpdatedAt()
	case schedulesession.FieldDoctorID:
		return m.DoctorID()
	case schedulesession.FieldWeekday:
		return m.Weekday()
	case schedulesession.FieldPosition:
		return m.Position()
	case schedulesession.FieldStartHour:
		return m.StartHour()
	case schedulesession.FieldStartMinute:
		return m.StartMinute()
	case schedulesession.FieldEndHour:
		return m.EndHour()
	case schedulesession.FieldEndMinute:
		return m.EndMinute()
	case schedulesession.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedulesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case schedulesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case schedulesession.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case schedulesession.FieldWeekday:
		return m.OldWeekday(ctx)
	case schedulesession.FieldPosition:
		return m.OldPosition(ctx)
	case schedulesession.FieldStartHour:
		return m.OldStartHour(ctx)
	case schedulesession.FieldStartMinute:
		return m.OldStartMinute(ctx)
	case schedulesession.FieldEndHour:
		return m.OldEndHour(ctx)
	case schedulesession.FieldEndMinute:
		return m.OldEndMinute(ctx)
	case schedulesession.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduleSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedulesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case schedulesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case schedulesession.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case schedulesession.FieldWeekday:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekday(v)
		return nil
	case schedulesession.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case schedulesession.FieldStartHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartHour(v)
		return nil
	case schedulesession.FieldStartMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartMinute(v)
		return nil
	case schedulesession.FieldEndHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndHour(v)
		return nil
	case schedulesession.FieldEndMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndMinute(v)
		return nil
	case schedulesession.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleSessionMutation) AddedFields() []string {
	var fields []string
	if m.addweekday != nil {
		fields = append(fields, schedulesession.FieldWeekday)
	}
	if m.addposition != nil {
		fields = append(fields, schedulesession.FieldPosition)
	}
	if m.addstart_hour != nil {
		fields = append(fields, schedulesession.FieldStartHour)
	}
	if m.addstart_minute != nil {
		fields = append(fields, schedulesession.FieldStartMinute)
	}
	if m.addend_hour != nil {
		fields = append(fields, schedulesession.FieldEndHour)
	}
	if m.addend_minute != nil {
		fields = append(fields, schedulesession.FieldEndMinute)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schedulesession.FieldWeekday:
		return m.AddedWeekday()
	case schedulesession.FieldPosition:
		return m.AddedPosition()
	case schedulesession.FieldStartHour:
		return m.AddedStartHour()
	case schedulesession.FieldStartMinute:
		return m.AddedStartMinute()
	case schedulesession.FieldEndHour:
		return m.AddedEndHour()
	case schedulesession.FieldEndMinute:
		return m.AddedEndMinute()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schedulesession.FieldWeekday:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekday(v)
		return nil
	case schedulesession.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case schedulesession.FieldStartHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartHour(v)
		return nil
	case schedulesession.FieldStartMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartMinute(v)
		return nil
	case schedulesession.FieldEndHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndHour(v)
		return nil
	case schedulesession.FieldEndMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndMinute(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScheduleSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleSessionMutation) ResetField(name string) error {
	switch name {
	case schedulesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case schedulesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case schedulesession.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case schedulesession.FieldWeekday:
		m.ResetWeekday()
		return nil
	case schedulesession.FieldPosition:
		m.ResetPosition()
		return nil
	case schedulesession.FieldStartHour:
		m.ResetStartHour()
		return nil
	case schedulesession.FieldStartMinute:
		m.ResetStartMinute()
		return nil
	case schedulesession.FieldEndHour:
		m.ResetEndHour()
		return nil
	case schedulesession.FieldEndMinute:
		m.ResetEndMinute()
		return nil
	case schedulesession.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown ScheduleSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduleSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduleSession edge %s", name)
}

// TokenCounterMutation represents an operation that mutates the TokenCounter nodes in the graph.
type TokenCounterMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	clinic_id        *uuid.UUID
	doctor_id        *uuid.UUID
	day              *string
	session_index    *int
	addsession_index *int
	value            *int
	addvalue         *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TokenCounter, error)
	predicates       []predicate.TokenCounter
}

var _ ent.Mutation = (*TokenCounterMutation)(nil)

// tokencounterOption allows management of the mutation configuration using functional options.
type tokencounterOption func(*TokenCounterMutation)

// newTokenCounterMutation creates new mutation for the TokenCounter entity.
func newTokenCounterMutation(c config, op Op, opts ...tokencounterOption) *TokenCounterMutation {
	m := &TokenCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenCounterID sets the ID field of the mutation.
func withTokenCounterID(id uuid.UUID) tokencounterOption {
	return func(m *TokenCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenCounter
		)
		m.oldValue = func(ctx context.Context) (*TokenCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenCounter sets the old TokenCounter of the mutation.
func withTokenCounter(node *TokenCounter) tokencounterOption {
	return func(m *TokenCounterMutation) {
		m.oldValue = func(context.Context) (*TokenCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenCounter entities.
func (m *TokenCounterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenCounterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenCounterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenCounterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenCounterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenCounter entity.
// If the TokenCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenCounterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenCounterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TokenCounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TokenCounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TokenCounter entity.
// If the TokenCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenCounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TokenCounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *TokenCounterMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *TokenCounterMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the TokenCounter entity.
// If the TokenCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenCounterMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *TokenCounterMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *TokenCounterMutation) SetDoctorID(u uuid.UUID) {
	m.doctor_id = &u
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *TokenCounterMutation) DoctorID() (r uuid.UUID, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the TokenCounter entity.
// If the TokenCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenCounterMutation) OldDoctorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *TokenCounterMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetDay sets the "day" field.
func (m *TokenCounterMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *TokenCounterMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the TokenCounter entity.
// If the TokenCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenCounterMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *TokenCounterMutation) ResetDay() {
	m.day = nil
}

// SetSessionIndex sets the "session_index" field.
func (m *TokenCounterMutation) SetSessionIndex(i int) {
	m.session_index = &i
	m.addsession_index = nil
}

// SessionIndex returns the value of the "session_index" field in the mutation.
func (m *TokenCounterMutation) SessionIndex() (r int, exists bool) {
	v := m.session_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionIndex returns the old "session_index" field's value of the TokenCounter entity.
// If the TokenCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenCounterMutation) OldSessionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionIndex: %w", err)
	}
	return oldValue.SessionIndex, nil
}

// AddSessionIndex adds i to the "session_index" field.
func (m *TokenCounterMutation) AddSessionIndex(i int) {
	if m.addsession_index != nil {
		*m.addsession_index += i
	} else {
		m.addsession_index = &i
	}
}

// AddedSessionIndex returns the value that was added to the "session_index" field in this mutation.
func (m *TokenCounterMutation) AddedSessionIndex() (r int, exists bool) {
	v := m.addsession_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionIndex resets all changes to the "session_index" field.
func (m *TokenCounterMutation) ResetSessionIndex() {
	m.session_index = nil
	m.addsession_index = nil
}

// SetValue sets the "value" field.
func (m *TokenCounterMutation) SetValue(i int) {
	m.value = &i
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *TokenCounterMutation) Value() (r int, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the TokenCounter entity.
// If the TokenCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenCounterMutation) OldValue(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds i to the "value" field.
func (m *TokenCounterMutation) AddValue(i int) {
	if m.addvalue != nil {
		*m.addvalue += i
	} else {
		m.addvalue = &i
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *TokenCounterMutation) AddedValue() (r int, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *TokenCounterMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// Where appends a list predicates to the TokenCounterMutation builder.
func (m *TokenCounterMutation) Where(ps ...predicate.TokenCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenCounter).
func (m *TokenCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenCounterMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, tokencounter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tokencounter.FieldUpdatedAt)
	}
	if m.clinic_id != nil {
		fields = append(fields, tokencounter.FieldClinicID)
	}
	if m.doctor_id != nil {
		fields = append(fields, tokencounter.FieldDoctorID)
	}
	if m.day != nil {
		fields = append(fields, tokencounter.FieldDay)
	}
	if m.session_index != nil {
		fields = append(fields, tokencounter.FieldSessionIndex)
	}
	if m.value != nil {
		fields = append(fields, tokencounter.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokencounter.FieldCreatedAt:
		return m.CreatedAt()
	case tokencounter.FieldUpdatedAt:
		return m.UpdatedAt()
	case tokencounter.FieldClinicID:
		return m.ClinicID()
	case tokencounter.FieldDoctorID:
		return m.DoctorID()
	case tokencounter.FieldDay:
		return m.Day()
	case tokencounter.FieldSessionIndex:
		return m.SessionIndex()
	case tokencounter.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokencounter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tokencounter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tokencounter.FieldClinicID:
		return m.OldClinicID(ctx)
	case tokencounter.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case tokencounter.FieldDay:
		return m.OldDay(ctx)
	case tokencounter.FieldSessionIndex:
		return m.OldSessionIndex(ctx)
	case tokencounter.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown TokenCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokencounter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tokencounter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tokencounter.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case tokencounter.FieldDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case tokencounter.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case tokencounter.FieldSessionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionIndex(v)
		return nil
	case tokencounter.FieldValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown TokenCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenCounterMutation) AddedFields() []string {
	var fields []string
	if m.addsession_index != nil {
		fields = append(fields, tokencounter.FieldSessionIndex)
	}
	if m.addvalue != nil {
		fields = append(fields, tokencounter.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokencounter.FieldSessionIndex:
		return m.AddedSessionIndex()
	case tokencounter.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokencounter.FieldSessionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionIndex(v)
		return nil
	case tokencounter.FieldValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown TokenCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TokenCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenCounterMutation) ResetField(name string) error {
	switch name {
	case tokencounter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tokencounter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tokencounter.FieldClinicID:
		m.ResetClinicID()
		return nil
	case tokencounter.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case tokencounter.FieldDay:
		m.ResetDay()
		return nil
	case tokencounter.FieldSessionIndex:
		m.ResetSessionIndex()
		return nil
	case tokencounter.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown TokenCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TokenCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TokenCounter edge %s", name)
}
