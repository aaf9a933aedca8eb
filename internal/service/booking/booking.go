package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nyaruka/phonenumbers"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nivaran/nivaran_backend/config"
	"github.com/nivaran/nivaran_backend/internal/repo"
	entappt "github.com/nivaran/nivaran_backend/internal/repo/appointment"
	entresv "github.com/nivaran/nivaran_backend/internal/repo/reservation"
	enttoken "github.com/nivaran/nivaran_backend/internal/repo/tokencounter"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/capacity"
	"github.com/nivaran/nivaran_backend/pkg/clock"
	"github.com/nivaran/nivaran_backend/pkg/observability"
)

const defaultPhoneRegion = "IN"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ReserveRequest struct {
	DoctorID      uuid.UUID
	Day           string // "2006-01-02", clinic-local
	Kind          Kind
	RequestedSlot *int
	Force         bool
	PatientName   string
	PatientPhone  string
}

type ReserveResult struct {
	ReservationID uuid.UUID
	SlotIndex     int
	SessionIndex  int
	SlotTime      time.Time
	TokenNumber   string // provisional; classic numbering finalizes at commit
	Forced        bool
}

type CommitRequest struct {
	DoctorID     uuid.UUID
	Day          string
	SlotIndex    int
	SessionIndex int
	Force        bool
	PatientEmail string
}

type BookRequest struct {
	DoctorID      uuid.UUID
	Day           string
	Kind          Kind
	RequestedSlot *int
	Force         bool
	PatientName   string
	PatientPhone  string
	PatientEmail  string
}

type BookResult struct {
	Appointment *repo.Appointment
	Attempts    int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service is the token/reservation protocol. Reserve and Commit are the two
// transactional halves; Book wraps them in the bounded retry loop the HTTP
// layer calls.
type Service interface {
	Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error)
	Commit(ctx context.Context, reservationID uuid.UUID, req CommitRequest) (*repo.Appointment, error)
	Release(ctx context.Context, reservationID uuid.UUID) error
	Book(ctx context.Context, req BookRequest) (*BookResult, error)
}

type bookingService struct {
	db      *repo.Client
	avail   availability.Service
	clk     clock.Clock
	cfg     config.QueueConfig
	nc      *nats.Conn
	log     *slog.Logger
	metrics *observability.QueueMetrics
}

func New(
	db *repo.Client,
	avail availability.Service,
	clk clock.Clock,
	cfg config.QueueConfig,
	nc *nats.Conn,
	log *slog.Logger,
	metrics *observability.QueueMetrics,
) Service {
	return &bookingService{
		db:      db,
		avail:   avail,
		clk:     clk,
		cfg:     cfg,
		nc:      nc,
		log:     log,
		metrics: metrics,
	}
}

// ---------------------------------------------------------------------------
// Reserve
// ---------------------------------------------------------------------------

func (s *bookingService) Reserve(ctx context.Context, req ReserveRequest) (*ReserveResult, error) {
	day, doc, err := s.avail.Resolve(ctx, req.DoctorID, req.Day)
	if err != nil {
		return nil, err
	}

	// Every "now" below is clinic-local.
	now := s.clk.Now().In(day.Slots[0].StartTime.Location())
	part := capacity.Compute(day, now, s.cfg.AdvanceLead())

	occupied, maxUsed, err := s.occupiedSlots(ctx, req.DoctorID, req.Day)
	if err != nil {
		return nil, err
	}
	held, err := s.heldSlots(ctx, req.DoctorID, req.Day, now)
	if err != nil {
		return nil, err
	}

	var slot availability.Slot
	if req.Force {
		slot, err = OverflowSlot(day, doc.ConsultMinutes, maxBlockedIndex(maxUsed, held))
		if err != nil {
			return nil, err
		}
	} else {
		if req.Kind == KindAdvance {
			active, err := s.activeAdvanceCount(ctx, req.DoctorID, req.Day)
			if err != nil {
				return nil, err
			}
			if part.IsAdvanceCapacityReached(active) {
				return nil, ErrAdvanceCapacityReached
			}
		}

		slot, err = PickSlot(PickInput{
			Day:       day,
			Partition: part,
			Occupied:  occupied,
			Held:      held,
			Kind:      req.Kind,
			Requested: req.RequestedSlot,
		})
		if err != nil {
			return nil, err
		}
	}

	resv, err := s.claimSlot(ctx, req, slot, now)
	if err != nil {
		return nil, err
	}

	return &ReserveResult{
		ReservationID: resv.ID,
		SlotIndex:     slot.GlobalIndex,
		SessionIndex:  slot.SessionIndex,
		SlotTime:      slot.StartTime,
		TokenNumber:   FormatToken(s.tokenPrefix(doc, req.Kind), slot.GlobalIndex+1),
		Forced:        req.Force,
	}, nil
}

// claimSlot creates the held reservation. The partial unique index on
// (doctor, day, slot_index) WHERE status='held' makes this the single point
// where concurrent bookers are serialized: the loser gets a constraint error.
func (s *bookingService) claimSlot(ctx context.Context, req ReserveRequest, slot availability.Slot, now time.Time) (*repo.Reservation, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reserve tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Re-verify no live appointment sits on the slot.
	exists, err := tx.Appointment.Query().
		Where(
			entappt.DoctorID(req.DoctorID),
			entappt.Day(req.Day),
			entappt.SlotIndex(slot.GlobalIndex),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if exists {
		s.countConflict(ctx, req.Kind)
		return nil, ErrSlotOccupied
	}

	// An expired hold that the reaper has not collected yet must not
	// blockade the slot.
	_, err = tx.Reservation.Delete().
		Where(
			entresv.DoctorID(req.DoctorID),
			entresv.Day(req.Day),
			entresv.SlotIndex(slot.GlobalIndex),
			entresv.StatusEQ(entresv.StatusHeld),
			entresv.ExpiresAtLTE(now),
		).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("clear expired hold: %w", err)
	}

	resv, err := tx.Reservation.Create().
		SetDoctorID(req.DoctorID).
		SetDay(req.Day).
		SetSlotIndex(slot.GlobalIndex).
		SetSlotTime(slot.StartTime).
		SetExpiresAt(now.Add(s.cfg.ReservationTTL())).
		SetPatientName(req.PatientName).
		SetPatientPhone(req.PatientPhone).
		SetKind(entresv.Kind(req.Kind)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			s.countConflict(ctx, req.Kind)
			return nil, ErrSlotOccupied
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reserve tx: %w", err)
	}
	return resv, nil
}

// ---------------------------------------------------------------------------
// Commit
// ---------------------------------------------------------------------------

func (s *bookingService) Commit(ctx context.Context, reservationID uuid.UUID, req CommitRequest) (*repo.Appointment, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin commit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	resv, err := tx.Reservation.Get(ctx, reservationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrReservationMismatch
		}
		return nil, fmt.Errorf("load reservation: %w", err)
	}

	if resv.DoctorID != req.DoctorID || resv.Day != req.Day || resv.SlotIndex != req.SlotIndex {
		return nil, ErrReservationMismatch
	}

	// Consume the hold. Zero affected rows means someone else already
	// consumed or released it.
	consumed, err := tx.Reservation.Update().
		Where(
			entresv.ID(reservationID),
			entresv.StatusEQ(entresv.StatusHeld),
		).
		SetStatus(entresv.StatusBooked).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("consume reservation: %w", err)
	}
	if consumed == 0 {
		return nil, ErrReservationMismatch
	}

	// Defend against an appointment written between reserve and commit.
	exists, err := tx.Appointment.Query().
		Where(
			entappt.DoctorID(req.DoctorID),
			entappt.Day(req.Day),
			entappt.SlotIndex(req.SlotIndex),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("recheck slot: %w", err)
	}
	if exists {
		return nil, ErrSlotAlreadyBooked
	}

	doc, err := tx.Doctor.Get(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("load doctor: %w", err)
	}
	clinic, err := tx.Clinic.Get(ctx, doc.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("load clinic: %w", err)
	}

	numeric := req.SlotIndex + 1
	if clinic.ClassicNumbering {
		numeric, err = s.nextClassicNumber(ctx, tx, clinic.ID, req)
		if err != nil {
			return nil, err
		}
	}

	// Cut-off and no-show windows carry the doctor's current delay from
	// birth; the delay engine adjusts them later as the delay moves.
	delay := time.Duration(doc.DelayMinutes) * time.Minute
	cutOff := resv.SlotTime.Add(-time.Duration(clinic.CutOffMinutes) * time.Minute).Add(delay)
	noShow := resv.SlotTime.Add(time.Duration(clinic.NoShowMinutes) * time.Minute).Add(delay)

	create := tx.Appointment.Create().
		SetClinicID(clinic.ID).
		SetDoctorID(req.DoctorID).
		SetPatientName(resv.PatientName).
		SetPatientPhone(resv.PatientPhone).
		SetDay(req.Day).
		SetSlotIndex(req.SlotIndex).
		SetSessionIndex(req.SessionIndex).
		SetStartTime(resv.SlotTime).
		SetKind(entappt.Kind(resv.Kind)).
		SetTokenNumber(FormatToken(s.tokenPrefix(doc, Kind(resv.Kind)), numeric)).
		SetNumericToken(numeric).
		SetCutOffTime(cutOff).
		SetNoShowTime(noShow).
		SetDelayMinutes(doc.DelayMinutes).
		SetForceBooked(req.Force)
	if req.PatientEmail != "" {
		create = create.SetPatientEmail(req.PatientEmail)
	}

	appt, err := create.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking tx: %w", err)
	}

	if s.nc != nil {
		_ = s.nc.Publish("nivaran.appointment.created."+appt.ID.String(), []byte(appt.ID.String()))
	}
	if s.metrics != nil {
		s.metrics.BookingsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("kind", string(resv.Kind)),
			attribute.Bool("forced", req.Force),
		))
	}

	return appt, nil
}

// nextClassicNumber bumps the per-session counter inside the commit
// transaction, so classic numbers stay gapless.
func (s *bookingService) nextClassicNumber(ctx context.Context, tx *repo.Tx, clinicID uuid.UUID, req CommitRequest) (int, error) {
	counter, err := tx.TokenCounter.Query().
		Where(
			enttoken.DoctorID(req.DoctorID),
			enttoken.Day(req.Day),
			enttoken.SessionIndex(req.SessionIndex),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if !repo.IsNotFound(err) {
			return 0, fmt.Errorf("load token counter: %w", err)
		}
		created, err := tx.TokenCounter.Create().
			SetClinicID(clinicID).
			SetDoctorID(req.DoctorID).
			SetDay(req.Day).
			SetSessionIndex(req.SessionIndex).
			SetValue(1).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create token counter: %w", err)
		}
		return created.Value, nil
	}

	updated, err := tx.TokenCounter.UpdateOne(counter).
		SetValue(counter.Value + 1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("bump token counter: %w", err)
	}
	return updated.Value, nil
}

// ---------------------------------------------------------------------------
// Release
// ---------------------------------------------------------------------------

func (s *bookingService) Release(ctx context.Context, reservationID uuid.UUID) error {
	_, err := s.db.Reservation.Delete().
		Where(
			entresv.ID(reservationID),
			entresv.StatusEQ(entresv.StatusHeld),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("release reservation: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Book: the bounded retry loop
// ---------------------------------------------------------------------------

func (s *bookingService) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	phone, err := normalizePhone(req.PatientPhone)
	if err != nil {
		return nil, err
	}

	attempts := s.cfg.BookingRetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	requested := req.RequestedSlot
	for attempt := 1; attempt <= attempts; attempt++ {
		res, err := s.Reserve(ctx, ReserveRequest{
			DoctorID:      req.DoctorID,
			Day:           req.Day,
			Kind:          req.Kind,
			RequestedSlot: requested,
			Force:         req.Force,
			PatientName:   req.PatientName,
			PatientPhone:  phone,
		})
		if err != nil {
			if isConflict(err) {
				requested = nil // retry with auto-selection
				continue
			}
			return nil, err
		}

		appt, err := s.Commit(ctx, res.ReservationID, CommitRequest{
			DoctorID:     req.DoctorID,
			Day:          req.Day,
			SlotIndex:    res.SlotIndex,
			SessionIndex: res.SessionIndex,
			Force:        res.Forced,
			PatientEmail: req.PatientEmail,
		})
		if err != nil {
			// The hold must never be left behind on a failed commit.
			_ = s.Release(ctx, res.ReservationID)
			if isConflict(err) {
				requested = nil
				continue
			}
			return nil, err
		}

		return &BookResult{Appointment: appt, Attempts: attempt}, nil
	}

	if s.metrics != nil {
		s.metrics.RetriesExhausted.Add(ctx, 1)
	}
	s.log.Warn("booking retries exhausted",
		slog.String("doctor_id", req.DoctorID.String()),
		slog.String("day", req.Day),
		slog.Int("attempts", attempts))
	return nil, ErrRetryExhausted
}

func isConflict(err error) bool {
	switch err {
	case ErrSlotOccupied, ErrSlotAlreadyBooked, ErrReservationMismatch:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *bookingService) tokenPrefix(doc *repo.Doctor, kind Kind) string {
	if kind == KindWalkIn {
		return "W"
	}
	if doc.TokenPrefix != "" {
		return doc.TokenPrefix
	}
	return "A"
}

func (s *bookingService) occupiedSlots(ctx context.Context, doctorID uuid.UUID, day string) (map[int]bool, int, error) {
	rows, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.Day(day),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Select(entappt.FieldSlotIndex).
		All(ctx)
	if err != nil {
		return nil, -1, fmt.Errorf("load occupied slots: %w", err)
	}

	occupied := make(map[int]bool, len(rows))
	maxUsed := -1
	for _, r := range rows {
		occupied[r.SlotIndex] = true
		if r.SlotIndex > maxUsed {
			maxUsed = r.SlotIndex
		}
	}
	return occupied, maxUsed, nil
}

func (s *bookingService) heldSlots(ctx context.Context, doctorID uuid.UUID, day string, now time.Time) (map[int]bool, error) {
	rows, err := s.db.Reservation.Query().
		Where(
			entresv.DoctorID(doctorID),
			entresv.Day(day),
			entresv.StatusEQ(entresv.StatusHeld),
			entresv.ExpiresAtGT(now),
		).
		Select(entresv.FieldSlotIndex).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load held slots: %w", err)
	}

	held := make(map[int]bool, len(rows))
	for _, r := range rows {
		held[r.SlotIndex] = true
	}
	return held, nil
}

func (s *bookingService) activeAdvanceCount(ctx context.Context, doctorID uuid.UUID, day string) (int, error) {
	n, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.Day(day),
			entappt.KindEQ(entappt.KindAdvance),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusConfirmed),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count advance bookings: %w", err)
	}
	return n, nil
}

func (s *bookingService) countConflict(ctx context.Context, kind Kind) {
	if s.metrics != nil {
		s.metrics.SlotConflicts.Add(ctx, 1, metric.WithAttributes(
			attribute.String("kind", string(kind)),
		))
	}
}

func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("invalid phone number %q: %w", raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number %q", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
