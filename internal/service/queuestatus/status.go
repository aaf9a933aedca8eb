package queuestatus

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nivaran/nivaran_backend/internal/repo"
	entappt "github.com/nivaran/nivaran_backend/internal/repo/appointment"
	entdoctor "github.com/nivaran/nivaran_backend/internal/repo/doctor"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/booking"
	"github.com/nivaran/nivaran_backend/pkg/clock"
	"github.com/nivaran/nivaran_backend/pkg/observability"
	"github.com/nivaran/nivaran_backend/pkg/timefmt"
)

// Service is the appointment status state machine:
//
//	Pending   → Confirmed (arrival, before cut-off)
//	Pending   → Skipped   (sweep, at cut-off)
//	Skipped   → No-show   (sweep, at no-show time)
//	Skipped/No-show → Confirmed (explicit rejoin, repositioned)
//	Confirmed → Completed | Cancelled
//
// Sweep transitions compare against the stored, delay-adjusted windows only;
// nothing here recomputes cut-offs ad hoc.
type Service interface {
	// Sweep flips overdue Pending and Skipped rows for one doctor's day.
	// Idempotent: a second run at the same instant changes nothing.
	Sweep(ctx context.Context, doctorID uuid.UUID, day string) error

	// SweepAll sweeps today for every active doctor, isolating per-doctor
	// failures.
	SweepAll(ctx context.Context) error

	Confirm(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	Rejoin(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	Complete(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	Cancel(ctx context.Context, apptID uuid.UUID, reason *string) error

	// Get loads one appointment.
	Get(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)

	// Board returns the day's non-cancelled appointments ordered by slot
	// index, for the live queue display.
	Board(ctx context.Context, doctorID uuid.UUID, day string) ([]*repo.Appointment, error)
}

type statusService struct {
	db      *repo.Client
	avail   availability.Service
	clk     clock.Clock
	nc      *nats.Conn
	log     *slog.Logger
	metrics *observability.QueueMetrics
}

func New(db *repo.Client, avail availability.Service, clk clock.Clock, nc *nats.Conn, log *slog.Logger, metrics *observability.QueueMetrics) Service {
	return &statusService{db: db, avail: avail, clk: clk, nc: nc, log: log, metrics: metrics}
}

// ---------------------------------------------------------------------------
// Sweep
// ---------------------------------------------------------------------------

func (s *statusService) Sweep(ctx context.Context, doctorID uuid.UUID, day string) error {
	loc, err := s.avail.Location(ctx, doctorID)
	if err != nil {
		return err
	}
	now := s.clk.Now().In(loc)

	// Pending past cut-off first, then Skipped past no-show: a row that is
	// stale past both windows converges to No-show within one pass, the
	// same state continuous evaluation would have reached.
	skipped, err := s.db.Appointment.Update().
		Where(
			entappt.DoctorID(doctorID),
			entappt.Day(day),
			entappt.StatusEQ(entappt.StatusPending),
			entappt.CutOffTimeLTE(now),
		).
		SetStatus(entappt.StatusSkipped).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("sweep pending: %w", err)
	}

	noShows, err := s.db.Appointment.Update().
		Where(
			entappt.DoctorID(doctorID),
			entappt.Day(day),
			entappt.StatusEQ(entappt.StatusSkipped),
			entappt.NoShowTimeLTE(now),
		).
		SetStatus(entappt.StatusNoShow).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("sweep skipped: %w", err)
	}

	if skipped > 0 || noShows > 0 {
		s.countTransitions(ctx, "pending", "skipped", skipped)
		s.countTransitions(ctx, "skipped", "no_show", noShows)
		s.log.Info("status sweep applied",
			slog.String("doctor_id", doctorID.String()),
			slog.String("day", day),
			slog.Int("skipped", skipped),
			slog.Int("no_shows", noShows))
	}
	return nil
}

func (s *statusService) SweepAll(ctx context.Context) error {
	doctors, err := s.db.Doctor.Query().
		Where(entdoctor.Active(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list active doctors: %w", err)
	}

	for _, doc := range doctors {
		loc, err := s.avail.Location(ctx, doc.ID)
		if err != nil {
			s.log.Warn("sweep: clinic location unavailable",
				slog.String("doctor_id", doc.ID.String()), slog.Any("err", err))
			continue
		}
		day := timefmt.Day(s.clk.Now().In(loc))
		if err := s.Sweep(ctx, doc.ID, day); err != nil {
			s.log.Warn("sweep failed for doctor",
				slog.String("doctor_id", doc.ID.String()), slog.Any("err", err))
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Explicit transitions
// ---------------------------------------------------------------------------

func (s *statusService) Confirm(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.get(ctx, apptID)
	if err != nil {
		return nil, err
	}

	loc, err := s.avail.Location(ctx, appt.DoctorID)
	if err != nil {
		return nil, err
	}
	now := s.clk.Now().In(loc)

	// Conditional update so a concurrent sweep cannot confirm a row it has
	// already skipped.
	updated, err := s.db.Appointment.Update().
		Where(
			entappt.ID(apptID),
			entappt.StatusEQ(entappt.StatusPending),
			entappt.CutOffTimeGT(now),
		).
		SetStatus(entappt.StatusConfirmed).
		SetConfirmedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirm appointment: %w", err)
	}
	if updated == 0 {
		if appt.Status != entappt.StatusPending {
			return nil, ErrInvalidTransition
		}
		return nil, ErrCutoffPassed
	}

	s.countTransitions(ctx, "pending", "confirmed", 1)
	s.publishStatus(apptID, string(entappt.StatusConfirmed))
	return s.get(ctx, apptID)
}

func (s *statusService) Rejoin(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.get(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status != entappt.StatusSkipped && appt.Status != entappt.StatusNoShow {
		return nil, ErrInvalidTransition
	}

	day, doc, err := s.avail.Resolve(ctx, appt.DoctorID, appt.Day)
	if err != nil {
		return nil, err
	}
	clinic, err := s.db.Clinic.Get(ctx, doc.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("load clinic: %w", err)
	}
	now := s.clk.Now().In(day.Slots[0].StartTime.Location())

	confirmed, err := s.confirmedUpcomingSlots(ctx, appt.DoctorID, appt.Day, now)
	if err != nil {
		return nil, err
	}

	target := appt.SlotIndex
	if idx, ok := RejoinSlot(confirmed, clinic.RejoinAfter); ok {
		target = idx
	}

	// Never displace a live visit.
	occupied, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(appt.DoctorID),
			entappt.Day(appt.Day),
			entappt.SlotIndex(target),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check rejoin target: %w", err)
	}
	if occupied {
		return nil, ErrRejoinConflict
	}

	newStart := slotTimeAt(day, doc.ConsultMinutes, target)
	delay := time.Duration(appt.DelayMinutes) * time.Minute
	cutOff := newStart.Add(-time.Duration(clinic.CutOffMinutes) * time.Minute).Add(delay)
	noShow := newStart.Add(time.Duration(clinic.NoShowMinutes) * time.Minute).Add(delay)

	from := string(appt.Status)
	err = s.db.Appointment.UpdateOne(appt).
		SetSlotIndex(target).
		SetStartTime(newStart).
		SetStatus(entappt.StatusConfirmed).
		SetRejoined(true).
		SetConfirmedAt(now).
		SetCutOffTime(cutOff).
		SetNoShowTime(noShow).
		Exec(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrRejoinConflict
		}
		return nil, fmt.Errorf("rejoin appointment: %w", err)
	}

	s.countTransitions(ctx, from, "confirmed", 1)
	s.publishStatus(apptID, string(entappt.StatusConfirmed))
	return s.get(ctx, apptID)
}

func (s *statusService) Complete(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.get(ctx, apptID)
	if err != nil {
		return nil, err
	}

	loc, err := s.avail.Location(ctx, appt.DoctorID)
	if err != nil {
		return nil, err
	}
	now := s.clk.Now().In(loc)

	updated, err := s.db.Appointment.Update().
		Where(
			entappt.ID(apptID),
			entappt.StatusEQ(entappt.StatusConfirmed),
		).
		SetStatus(entappt.StatusCompleted).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete appointment: %w", err)
	}
	if updated == 0 {
		return nil, ErrInvalidTransition
	}

	if err := s.bumpCompletedCount(ctx, appt.DoctorID, appt.Day); err != nil {
		s.log.Warn("completed count bump failed",
			slog.String("doctor_id", appt.DoctorID.String()), slog.Any("err", err))
	}

	s.countTransitions(ctx, "confirmed", "completed", 1)
	s.publishStatus(apptID, string(entappt.StatusCompleted))
	return s.get(ctx, apptID)
}

func (s *statusService) Cancel(ctx context.Context, apptID uuid.UUID, reason *string) error {
	appt, err := s.get(ctx, apptID)
	if err != nil {
		return err
	}
	if appt.Status == entappt.StatusCompleted || appt.Status == entappt.StatusCancelled {
		return ErrInvalidTransition
	}

	now := s.clk.Now()
	upd := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCancelled).
		SetCancelledAt(now)
	if reason != nil {
		upd = upd.SetCancellationReason(*reason)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	s.countTransitions(ctx, string(appt.Status), "cancelled", 1)
	s.publishStatus(apptID, string(entappt.StatusCancelled))
	return nil
}

func (s *statusService) Get(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	return s.get(ctx, apptID)
}

func (s *statusService) Board(ctx context.Context, doctorID uuid.UUID, day string) ([]*repo.Appointment, error) {
	rows, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.Day(day),
			entappt.StatusNEQ(entappt.StatusCancelled),
		).
		Order(entappt.BySlotIndex()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load queue board: %w", err)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *statusService) get(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, apptID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load appointment: %w", err)
	}
	return appt, nil
}

func (s *statusService) confirmedUpcomingSlots(ctx context.Context, doctorID uuid.UUID, day string, now time.Time) ([]int, error) {
	rows, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.Day(day),
			entappt.StatusEQ(entappt.StatusConfirmed),
			entappt.StartTimeGTE(now),
		).
		Select(entappt.FieldSlotIndex).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load confirmed slots: %w", err)
	}

	slots := make([]int, 0, len(rows))
	for _, r := range rows {
		slots = append(slots, r.SlotIndex)
	}
	sort.Ints(slots)
	return slots, nil
}

// slotTimeAt maps a slot index back to its start instant, extrapolating past
// the grid for overflow positions.
func slotTimeAt(day availability.Day, consultMinutes, index int) time.Time {
	for _, s := range day.Slots {
		if s.GlobalIndex == index {
			return s.StartTime
		}
	}
	slot, err := booking.OverflowSlot(day, consultMinutes, index-1)
	if err != nil {
		return time.Time{}
	}
	return slot.StartTime
}

func (s *statusService) bumpCompletedCount(ctx context.Context, doctorID uuid.UUID, day string) error {
	doc, err := s.db.Doctor.Get(ctx, doctorID)
	if err != nil {
		return err
	}
	upd := s.db.Doctor.UpdateOne(doc)
	if doc.CompletedDay == day {
		upd = upd.SetCompletedCount(doc.CompletedCount + 1)
	} else {
		upd = upd.SetCompletedDay(day).SetCompletedCount(1)
	}
	return upd.Exec(ctx)
}

func (s *statusService) countTransitions(ctx context.Context, from, to string, n int) {
	if s.metrics == nil || n == 0 {
		return
	}
	s.metrics.StatusTransitions.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

func (s *statusService) publishStatus(apptID uuid.UUID, status string) {
	if s.nc == nil {
		return
	}
	_ = s.nc.Publish("nivaran.appointment.status."+apptID.String(), []byte(status))
}
