package delay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nivaran/nivaran_backend/internal/repo"
	entappt "github.com/nivaran/nivaran_backend/internal/repo/appointment"
	entdoctor "github.com/nivaran/nivaran_backend/internal/repo/doctor"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/pkg/clock"
	"github.com/nivaran/nivaran_backend/pkg/observability"
	"github.com/nivaran/nivaran_backend/pkg/timefmt"
)

// Service recomputes doctor delay and propagates it into every live
// appointment's cut-off and no-show window. Writes go through the hysteresis
// gate in ShouldPublish, so a quiet tick costs no appointment updates.
type Service interface {
	// RunOnce recomputes and, if warranted, republishes one doctor's delay.
	RunOnce(ctx context.Context, doctorID uuid.UUID) error

	// RunAll sweeps every active doctor. A failure on one doctor is logged
	// and never aborts the rest of the pass.
	RunAll(ctx context.Context) error
}

type delayService struct {
	db      *repo.Client
	avail   availability.Service
	clk     clock.Clock
	log     *slog.Logger
	metrics *observability.QueueMetrics
}

func New(db *repo.Client, avail availability.Service, clk clock.Clock, log *slog.Logger, metrics *observability.QueueMetrics) Service {
	return &delayService{db: db, avail: avail, clk: clk, log: log, metrics: metrics}
}

func (s *delayService) RunOnce(ctx context.Context, doctorID uuid.UUID) error {
	loc, err := s.avail.Location(ctx, doctorID)
	if err != nil {
		return err
	}
	now := s.clk.Now().In(loc)
	dayKey := timefmt.Day(now)

	day, doc, err := s.avail.Resolve(ctx, doctorID, dayKey)
	if err != nil {
		if errors.Is(err, availability.ErrNoAvailability) {
			return nil // off day, nothing to republish
		}
		return err
	}

	sessIdx := day.SessionContaining(now)
	if sessIdx < 0 {
		// Before the first session, yesterday's closing delay is stale and
		// would leak into the windows of freshly committed bookings.
		if doc.DelayMinutes != 0 && now.Before(day.SessionStart(0)) {
			return s.clearDelay(ctx, doc)
		}
		return nil // between sessions
	}

	completed := doc.CompletedCount
	if doc.CompletedDay != dayKey {
		completed = 0
	}

	newDelay := Compute(Input{
		Now:               now,
		SessionStart:      day.SessionStart(sessIdx),
		Breaks:            day.Breaks,
		InConsultation:    doc.InConsultation,
		CompletedCount:    completed,
		AvgConsultMinutes: doc.AvgConsultMinutes,
	})

	if s.metrics != nil {
		s.metrics.DoctorDelay.Record(ctx, int64(newDelay), metric.WithAttributes(
			attribute.String("doctor_id", doctorID.String()),
		))
	}

	if !ShouldPublish(doc.DelayMinutes, newDelay) {
		return nil
	}

	return s.publish(ctx, doc, dayKey, sessIdx, newDelay)
}

// clearDelay zeroes the stored doctor delay without touching appointment
// windows; rows carrying an old delay self-correct on the next in-session
// publish via their per-row diff.
func (s *delayService) clearDelay(ctx context.Context, doc *repo.Doctor) error {
	if err := s.db.Doctor.UpdateOne(doc).
		SetDelayMinutes(0).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear doctor delay: %w", err)
	}
	if s.metrics != nil {
		s.metrics.DoctorDelay.Record(ctx, 0, metric.WithAttributes(
			attribute.String("doctor_id", doc.ID.String()),
		))
	}
	s.log.Info("doctor delay cleared before first session",
		slog.String("doctor_id", doc.ID.String()),
		slog.Int("old_delay", doc.DelayMinutes))
	return nil
}

// publish writes the new delay to the doctor and shifts the windows of every
// live appointment in the session. The batch is deliberately not atomic:
// partial application self-heals on the next tick because the computation is
// idempotent with respect to current time.
func (s *delayService) publish(ctx context.Context, doc *repo.Doctor, dayKey string, sessIdx, newDelay int) error {
	if err := s.db.Doctor.UpdateOne(doc).
		SetDelayMinutes(newDelay).
		Exec(ctx); err != nil {
		return fmt.Errorf("store doctor delay: %w", err)
	}

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doc.ID),
			entappt.Day(dayKey),
			entappt.SessionIndex(sessIdx),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed, entappt.StatusSkipped),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load session appointments: %w", err)
	}

	for _, a := range appts {
		// Each row folds in its own previously applied delay, so the shift
		// is the difference, never the absolute value again.
		diff := time.Duration(newDelay-a.DelayMinutes) * time.Minute
		if diff == 0 {
			continue
		}
		err := s.db.Appointment.UpdateOne(a).
			SetCutOffTime(a.CutOffTime.Add(diff)).
			SetNoShowTime(a.NoShowTime.Add(diff)).
			SetDelayMinutes(newDelay).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("shift appointment %s: %w", a.ID, err)
		}
	}

	s.log.Info("doctor delay republished",
		slog.String("doctor_id", doc.ID.String()),
		slog.Int("old_delay", doc.DelayMinutes),
		slog.Int("new_delay", newDelay),
		slog.Int("appointments", len(appts)))
	return nil
}

func (s *delayService) RunAll(ctx context.Context) error {
	ids, err := s.db.Doctor.Query().
		Where(entdoctor.Active(true)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("list active doctors: %w", err)
	}

	for _, id := range ids {
		if err := s.RunOnce(ctx, id); err != nil {
			s.log.Warn("delay recompute failed for doctor",
				slog.String("doctor_id", id.String()),
				slog.Any("err", err))
		}
	}
	return nil
}
