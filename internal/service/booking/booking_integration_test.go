//go:build integration

package booking

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/nivaran/nivaran_backend/config"
	"github.com/nivaran/nivaran_backend/internal/repo"
	entappt "github.com/nivaran/nivaran_backend/internal/repo/appointment"
	entresv "github.com/nivaran/nivaran_backend/internal/repo/reservation"
	entsession "github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/pkg/clock"
)

// The tests below run against a real database because they exercise the
// transactional claim path and the partial unique index behind it.
// Set TEST_DATABASE_DSN to a scratch Postgres DSN to enable them.

const testDay = "2025-03-05" // a Wednesday

func openTestClient(t *testing.T) *repo.Client {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	client, err := repo.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open ent client: %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

// seedDoctor creates a clinic and doctor with a single Wednesday session
// 09:00-12:00, and cleans everything up afterwards.
func seedDoctor(t *testing.T, client *repo.Client) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	clinic, err := client.Clinic.Create().
		SetName("Integration Clinic").
		SetSlug("it-" + uuid.NewString()).
		Save(ctx)
	if err != nil {
		t.Fatalf("create clinic: %v", err)
	}
	doctor, err := client.Doctor.Create().
		SetClinicID(clinic.ID).
		SetName("Dr. Test").
		Save(ctx)
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	_, err = client.ScheduleSession.Create().
		SetDoctorID(doctor.ID).
		SetWeekday(3).
		SetPosition(0).
		SetStartHour(9).
		SetStartMinute(0).
		SetEndHour(12).
		SetEndMinute(0).
		Save(ctx)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		client.Appointment.Delete().Where(entappt.DoctorID(doctor.ID)).Exec(ctx)
		client.Reservation.Delete().Where(entresv.DoctorID(doctor.ID)).Exec(ctx)
		client.ScheduleSession.Delete().Where(entsession.DoctorID(doctor.ID)).Exec(ctx)
		client.Doctor.DeleteOne(doctor).Exec(ctx)
		client.Clinic.DeleteOne(clinic).Exec(ctx)
	})
	return doctor.ID
}

func newTestBookingService(client *repo.Client, clk clock.Clock) Service {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	avail := availability.New(client, log)
	cfg := config.QueueConfig{
		CutOffMinutes:         15,
		NoShowMinutes:         15,
		AdvanceLeadMinutes:    60,
		ReservationTTLSeconds: 120,
		BookingRetryAttempts:  3,
	}
	return New(client, avail, clk, cfg, nil, log, nil)
}

func testClock(t *testing.T) clock.Clock {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// 09:05 on the test day, five minutes into the session.
	return clock.Fixed{T: time.Date(2025, 3, 5, 9, 5, 0, 0, loc)}
}

func TestReleasedSlotIsReclaimable(t *testing.T) {
	client := openTestClient(t)
	doctorID := seedDoctor(t, client)
	svc := newTestBookingService(client, testClock(t))
	ctx := context.Background()

	req := ReserveRequest{
		DoctorID:      doctorID,
		Day:           testDay,
		Kind:          KindWalkIn,
		RequestedSlot: intp(3),
		PatientName:   "Asha",
		PatientPhone:  "+919876543210",
	}

	first, err := svc.Reserve(ctx, req)
	if err != nil {
		t.Fatalf("first Reserve: %v", err)
	}
	if first.SlotIndex != 3 {
		t.Fatalf("first reserve slot %d, want 3", first.SlotIndex)
	}

	// The hold blocks the requested slot, so a rival falls back to auto.
	rival, err := svc.Reserve(ctx, req)
	if err != nil {
		t.Fatalf("rival Reserve: %v", err)
	}
	if rival.SlotIndex == 3 {
		t.Fatalf("rival got the held slot 3")
	}

	if err := svc.Release(ctx, first.ReservationID); err != nil {
		t.Fatalf("Release: %v", err)
	}

	// Immediately after release the slot is free again.
	again, err := svc.Reserve(ctx, req)
	if err != nil {
		t.Fatalf("Reserve after release: %v", err)
	}
	if again.SlotIndex != 3 {
		t.Errorf("reserve after release slot %d, want 3", again.SlotIndex)
	}
}

func TestConcurrentForceReservesGetDistinctSlots(t *testing.T) {
	client := openTestClient(t)
	doctorID := seedDoctor(t, client)
	svc := newTestBookingService(client, testClock(t))
	ctx := context.Background()

	req := ReserveRequest{
		DoctorID:     doctorID,
		Day:          testDay,
		Kind:         KindWalkIn,
		Force:        true,
		PatientName:  "Asha",
		PatientPhone: "+919876543210",
	}

	first, err := svc.Reserve(ctx, req)
	if err != nil {
		t.Fatalf("first force Reserve: %v", err)
	}
	if first.SlotIndex != 12 {
		t.Fatalf("first overflow slot %d, want 12", first.SlotIndex)
	}

	// The first hold is uncommitted; the second force attempt must stack
	// past it rather than collide.
	second, err := svc.Reserve(ctx, req)
	if err != nil {
		t.Fatalf("second force Reserve: %v", err)
	}
	if second.SlotIndex != 13 {
		t.Errorf("second overflow slot %d, want 13", second.SlotIndex)
	}
}
