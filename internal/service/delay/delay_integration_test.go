//go:build integration

package delay

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/nivaran/nivaran_backend/internal/repo"
	entsession "github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/pkg/clock"
)

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

// Yesterday's closing delay must not survive into a new day's bookings: a
// tick before the first session clears the stored doctor delay.
func TestRunOnceClearsStaleDelayBeforeFirstSession(t *testing.T) {
	client := openTestClient(t)
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
		SetDelayMinutes(25). // left over from the previous day
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
		client.ScheduleSession.Delete().Where(entsession.DoctorID(doctor.ID)).Exec(ctx)
		client.Doctor.DeleteOne(doctor).Exec(ctx)
		client.Clinic.DeleteOne(clinic).Exec(ctx)
	})

	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Wednesday 2025-03-05, half an hour before the 09:00 session.
	clk := clock.Fixed{T: time.Date(2025, 3, 5, 8, 30, 0, 0, loc)}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	svc := New(client, availability.New(client, log), clk, log, nil)

	if err := svc.RunOnce(ctx, doctor.ID); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	got, err := client.Doctor.Get(ctx, doctor.ID)
	if err != nil {
		t.Fatalf("reload doctor: %v", err)
	}
	if got.DelayMinutes != 0 {
		t.Errorf("delay after pre-session tick = %d, want 0", got.DelayMinutes)
	}
}
