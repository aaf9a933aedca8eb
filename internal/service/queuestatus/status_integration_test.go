//go:build integration

package queuestatus

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/nivaran/nivaran_backend/internal/repo"
	entappt "github.com/nivaran/nivaran_backend/internal/repo/appointment"
	entsession "github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/pkg/clock"
)

// Store-backed state machine tests. Set TEST_DATABASE_DSN to a scratch
// Postgres DSN to enable them.

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

func seedDoctor(t *testing.T, client *repo.Client) (clinicID, doctorID uuid.UUID) {
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
		client.ScheduleSession.Delete().Where(entsession.DoctorID(doctor.ID)).Exec(ctx)
		client.Doctor.DeleteOne(doctor).Exec(ctx)
		client.Clinic.DeleteOne(clinic).Exec(ctx)
	})
	return clinic.ID, doctor.ID
}

// A sweep started from a stale checkpoint must converge in one pass: a
// Pending row already past both its cut-off and no-show windows ends the
// pass as No-show, not parked at Skipped until the next tick.
func TestSweepConvergesRowPastBothWindows(t *testing.T) {
	client := openTestClient(t)
	clinicID, doctorID := seedDoctor(t, client)
	ctx := context.Background()

	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	now := time.Date(2025, 3, 5, 11, 0, 0, 0, loc)
	slotTime := now.Add(-90 * time.Minute)

	appt, err := client.Appointment.Create().
		SetClinicID(clinicID).
		SetDoctorID(doctorID).
		SetPatientName("Asha").
		SetPatientPhone("+919876543210").
		SetDay(testDay).
		SetSlotIndex(2).
		SetSessionIndex(0).
		SetStartTime(slotTime).
		SetKind(entappt.KindWalkin).
		SetTokenNumber("W003").
		SetNumericToken(3).
		SetStatus(entappt.StatusPending).
		SetCutOffTime(slotTime.Add(-15 * time.Minute)).
		SetNoShowTime(slotTime.Add(15 * time.Minute)).
		Save(ctx)
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	avail := availability.New(client, log)
	svc := New(client, avail, clock.Fixed{T: now}, nil, log, nil)

	if err := svc.Sweep(ctx, doctorID, testDay); err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	got, err := client.Appointment.Get(ctx, appt.ID)
	if err != nil {
		t.Fatalf("reload appointment: %v", err)
	}
	if got.Status != entappt.StatusNoShow {
		t.Errorf("status after sweep = %s, want %s", got.Status, entappt.StatusNoShow)
	}

	// A second pass at the same instant changes nothing.
	if err := svc.Sweep(ctx, doctorID, testDay); err != nil {
		t.Fatalf("second Sweep: %v", err)
	}
	got, err = client.Appointment.Get(ctx, appt.ID)
	if err != nil {
		t.Fatalf("reload appointment: %v", err)
	}
	if got.Status != entappt.StatusNoShow {
		t.Errorf("status after replay = %s, want %s", got.Status, entappt.StatusNoShow)
	}
}
