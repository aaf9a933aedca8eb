package doctorsched

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/nivaran/nivaran_backend/internal/repo"
	entoverride "github.com/nivaran/nivaran_backend/internal/repo/dayoverride"
	entsession "github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
	"github.com/nivaran/nivaran_backend/pkg/clock"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SessionInput struct {
	Weekday     int
	Position    int
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

type BreakInput struct {
	Day   string // "2006-01-02", clinic-local
	Start time.Time
	End   time.Time
}

type ExtensionInput struct {
	Day          string
	SessionIndex int
	OriginalEnd  time.Time
	NewEnd       time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service is the staff-facing edit surface for a doctor's weekly template,
// day overrides, and live consultation state. Every mutation emits a
// doctor.updated event so the delay worker re-evaluates promptly.
type Service interface {
	ListSessions(ctx context.Context, doctorID uuid.UUID) ([]*repo.ScheduleSession, error)
	UpsertSession(ctx context.Context, doctorID uuid.UUID, in SessionInput) (*repo.ScheduleSession, error)
	DeleteSession(ctx context.Context, doctorID uuid.UUID, weekday, position int) error

	ListOverrides(ctx context.Context, doctorID uuid.UUID, day string) ([]*repo.DayOverride, error)
	AddBreak(ctx context.Context, doctorID uuid.UUID, in BreakInput) (*repo.DayOverride, error)
	AddLeave(ctx context.Context, doctorID uuid.UUID, day string) (*repo.DayOverride, error)
	ExtendSession(ctx context.Context, doctorID uuid.UUID, in ExtensionInput) (*repo.DayOverride, error)
	DeleteOverride(ctx context.Context, doctorID, overrideID uuid.UUID) error

	StartConsultation(ctx context.Context, doctorID uuid.UUID) error
	EndConsultation(ctx context.Context, doctorID uuid.UUID) error
}

type schedService struct {
	db  *repo.Client
	clk clock.Clock
	nc  *nats.Conn
}

func New(db *repo.Client, clk clock.Clock, nc *nats.Conn) Service {
	return &schedService{db: db, clk: clk, nc: nc}
}

// ---------------------------------------------------------------------------
// Weekly template
// ---------------------------------------------------------------------------

func (s *schedService) ListSessions(ctx context.Context, doctorID uuid.UUID) ([]*repo.ScheduleSession, error) {
	rows, err := s.db.ScheduleSession.Query().
		Where(entsession.DoctorID(doctorID), entsession.Active(true)).
		Order(entsession.ByWeekday(), entsession.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return rows, nil
}

func (s *schedService) UpsertSession(ctx context.Context, doctorID uuid.UUID, in SessionInput) (*repo.ScheduleSession, error) {
	if err := validateSession(in); err != nil {
		return nil, err
	}

	existing, err := s.db.ScheduleSession.Query().
		Where(
			entsession.DoctorID(doctorID),
			entsession.Weekday(in.Weekday),
			entsession.Position(in.Position),
		).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var row *repo.ScheduleSession
	if existing != nil {
		row, err = s.db.ScheduleSession.UpdateOne(existing).
			SetStartHour(in.StartHour).
			SetStartMinute(in.StartMinute).
			SetEndHour(in.EndHour).
			SetEndMinute(in.EndMinute).
			SetActive(true).
			Save(ctx)
	} else {
		row, err = s.db.ScheduleSession.Create().
			SetDoctorID(doctorID).
			SetWeekday(in.Weekday).
			SetPosition(in.Position).
			SetStartHour(in.StartHour).
			SetStartMinute(in.StartMinute).
			SetEndHour(in.EndHour).
			SetEndMinute(in.EndMinute).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.publishUpdated(doctorID)
	return row, nil
}

func (s *schedService) DeleteSession(ctx context.Context, doctorID uuid.UUID, weekday, position int) error {
	n, err := s.db.ScheduleSession.Delete().
		Where(
			entsession.DoctorID(doctorID),
			entsession.Weekday(weekday),
			entsession.Position(position),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}

	s.publishUpdated(doctorID)
	return nil
}

// ---------------------------------------------------------------------------
// Day overrides
// ---------------------------------------------------------------------------

func (s *schedService) ListOverrides(ctx context.Context, doctorID uuid.UUID, day string) ([]*repo.DayOverride, error) {
	rows, err := s.db.DayOverride.Query().
		Where(entoverride.DoctorID(doctorID), entoverride.Day(day)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	return rows, nil
}

func (s *schedService) AddBreak(ctx context.Context, doctorID uuid.UUID, in BreakInput) (*repo.DayOverride, error) {
	if !in.End.After(in.Start) {
		return nil, ErrInvalidInterval
	}

	row, err := s.db.DayOverride.Create().
		SetDoctorID(doctorID).
		SetDay(in.Day).
		SetKind(entoverride.KindBreak).
		SetBreakStart(in.Start).
		SetBreakEnd(in.End).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create break: %w", err)
	}

	s.publishUpdated(doctorID)
	return row, nil
}

func (s *schedService) AddLeave(ctx context.Context, doctorID uuid.UUID, day string) (*repo.DayOverride, error) {
	row, err := s.db.DayOverride.Create().
		SetDoctorID(doctorID).
		SetDay(day).
		SetKind(entoverride.KindLeave).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create leave: %w", err)
	}

	s.publishUpdated(doctorID)
	return row, nil
}

func (s *schedService) ExtendSession(ctx context.Context, doctorID uuid.UUID, in ExtensionInput) (*repo.DayOverride, error) {
	if !in.NewEnd.After(in.OriginalEnd) {
		return nil, ErrInvalidInterval
	}

	row, err := s.db.DayOverride.Create().
		SetDoctorID(doctorID).
		SetDay(in.Day).
		SetKind(entoverride.KindExtension).
		SetSessionIndex(in.SessionIndex).
		SetOriginalEnd(in.OriginalEnd).
		SetNewEnd(in.NewEnd).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create extension: %w", err)
	}

	s.publishUpdated(doctorID)
	return row, nil
}

func (s *schedService) DeleteOverride(ctx context.Context, doctorID, overrideID uuid.UUID) error {
	n, err := s.db.DayOverride.Delete().
		Where(entoverride.ID(overrideID), entoverride.DoctorID(doctorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	if n == 0 {
		return ErrOverrideNotFound
	}

	s.publishUpdated(doctorID)
	return nil
}

// ---------------------------------------------------------------------------
// Live consultation state
// ---------------------------------------------------------------------------

func (s *schedService) StartConsultation(ctx context.Context, doctorID uuid.UUID) error {
	now := s.clk.Now()
	err := s.db.Doctor.UpdateOneID(doctorID).
		SetInConsultation(true).
		SetConsultationStartedAt(now).
		Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("start consultation: %w", err)
	}

	s.publishUpdated(doctorID)
	return nil
}

func (s *schedService) EndConsultation(ctx context.Context, doctorID uuid.UUID) error {
	err := s.db.Doctor.UpdateOneID(doctorID).
		SetInConsultation(false).
		ClearConsultationStartedAt().
		Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("end consultation: %w", err)
	}

	s.publishUpdated(doctorID)
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func validateSession(in SessionInput) error {
	if in.Weekday < 0 || in.Weekday > 6 {
		return ErrInvalidSession
	}
	start := in.StartHour*60 + in.StartMinute
	end := in.EndHour*60 + in.EndMinute
	if end <= start {
		return ErrInvalidSession
	}
	return nil
}

func (s *schedService) publishUpdated(doctorID uuid.UUID) {
	if s.nc == nil {
		return
	}
	_ = s.nc.Publish("nivaran.doctor.updated."+doctorID.String(), []byte(doctorID.String()))
}
