package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nivaran/nivaran_backend/config"
	"github.com/nivaran/nivaran_backend/internal/repo"
	entappt "github.com/nivaran/nivaran_backend/internal/repo/appointment"
	entresv "github.com/nivaran/nivaran_backend/internal/repo/reservation"
	"github.com/nivaran/nivaran_backend/internal/service/delay"
	"github.com/nivaran/nivaran_backend/internal/service/queuestatus"
	"github.com/nivaran/nivaran_backend/pkg/clock"
	"github.com/nivaran/nivaran_backend/pkg/email"
	"github.com/nivaran/nivaran_backend/pkg/observability"
	"github.com/nivaran/nivaran_backend/pkg/sms"
	"github.com/nivaran/nivaran_backend/pkg/timefmt"
)

// WorkerModule registers the background tickers and NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	NC        *nats.Conn
	DB        *repo.Client
	Redis     *redis.Client
	Clk       clock.Clock
	DelaySvc  delay.Service
	StatusSvc queuestatus.Service
	SMS       *sms.Client
	Email     *email.Client
	Metrics   *observability.QueueMetrics
}

func RegisterWorkers(p WorkerParams) {
	stop := make(chan struct{})

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startDelayWorker(p, stop)
			startSweepWorker(p, stop)
			startReservationReaper(p, stop)
			startNotificationWorker(p)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// NATS drain handled by ProvideNatsClient.
			close(stop)
			return nil
		},
	})
}

func tickSeconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}

// ---------------------------------------------------------------------------
// delay_worker
// ---------------------------------------------------------------------------

// The periodic sweep keeps published delays honest even when no events fire;
// the event subscriptions tighten the loop when a schedule changes or a
// booking lands.
func startDelayWorker(p WorkerParams, stop <-chan struct{}) {
	go func() {
		t := time.NewTicker(tickSeconds(p.Cfg.Queue.DelayTickSeconds, 60))
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				if err := p.DelaySvc.RunAll(context.Background()); err != nil {
					slog.Warn("delay_worker: sweep failed", "err", err)
				}
			}
		}
	}()

	_, err := p.NC.Subscribe("nivaran.doctor.updated.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		doctorID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}
		if err := p.DelaySvc.RunOnce(context.Background(), doctorID); err != nil {
			slog.Warn("delay_worker: recompute failed", "doctor_id", doctorID, "err", err)
		}
	})
	if err != nil {
		slog.Error("delay_worker: subscribe doctor.updated failed", "err", err)
	}

	_, err = p.NC.Subscribe("nivaran.appointment.created.*", func(msg *nats.Msg) {
		appt := loadAppointment(p.DB, msg)
		if appt == nil {
			return
		}
		if err := p.DelaySvc.RunOnce(context.Background(), appt.DoctorID); err != nil {
			slog.Warn("delay_worker: recompute failed", "doctor_id", appt.DoctorID, "err", err)
		}
	})
	if err != nil {
		slog.Error("delay_worker: subscribe appointment.created failed", "err", err)
	}

	slog.Info("delay_worker: started")
}

// ---------------------------------------------------------------------------
// sweep_worker
// ---------------------------------------------------------------------------

func startSweepWorker(p WorkerParams, stop <-chan struct{}) {
	go func() {
		t := time.NewTicker(tickSeconds(p.Cfg.Queue.SweepTickSeconds, 60))
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				if err := p.StatusSvc.SweepAll(context.Background()); err != nil {
					slog.Warn("sweep_worker: sweep failed", "err", err)
				}
			}
		}
	}()

	slog.Info("sweep_worker: started")
}

// ---------------------------------------------------------------------------
// reservation_reaper
// ---------------------------------------------------------------------------

func startReservationReaper(p WorkerParams, stop <-chan struct{}) {
	go func() {
		t := time.NewTicker(tickSeconds(p.Cfg.Queue.ReaperTickSeconds, 30))
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				ctx := context.Background()
				n, err := p.DB.Reservation.Delete().
					Where(
						entresv.StatusEQ(entresv.StatusHeld),
						entresv.ExpiresAtLTE(p.Clk.Now()),
					).
					Exec(ctx)
				if err != nil {
					slog.Warn("reservation_reaper: delete failed", "err", err)
					continue
				}
				if n > 0 {
					p.Metrics.ReservationsSwept.Add(ctx, int64(n))
					slog.Debug("reservation_reaper: expired holds removed", "count", n)
				}
			}
		}
	}()

	slog.Info("reservation_reaper: started")
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(p WorkerParams) {
	_, err := p.NC.Subscribe("nivaran.appointment.created.*", func(msg *nats.Msg) {
		appt := loadAppointment(p.DB, msg)
		if appt == nil {
			return
		}
		ctx := context.Background()

		bumpQueueVersion(ctx, p.Redis, appt.DoctorID, appt.Day)

		if p.SMS.IsEnabled() {
			err := p.SMS.SendTokenIssued(ctx, appt.PatientPhone, appt.TokenNumber, timefmt.Clock(appt.StartTime))
			if err != nil {
				slog.Warn("notification_worker: token SMS failed", "appointment_id", appt.ID, "err", err)
			}
		}

		if p.Cfg.Email.Enabled && appt.PatientEmail != "" {
			sendBookingEmail(ctx, p.DB, p.Email, appt)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.created failed", "err", err)
	}

	_, err = p.NC.Subscribe("nivaran.appointment.status.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		apptID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}
		status := strings.TrimSpace(string(msg.Data))
		ctx := context.Background()

		appt, err := p.DB.Appointment.Query().
			Where(entappt.ID(apptID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: appointment not found", "id", apptID, "err", err)
			return
		}

		bumpQueueVersion(ctx, p.Redis, appt.DoctorID, appt.Day)

		if status == "skipped" && p.SMS.IsEnabled() {
			err := p.SMS.SendSkipped(ctx, appt.PatientPhone, appt.TokenNumber, timefmt.Clock(appt.NoShowTime))
			if err != nil {
				slog.Warn("notification_worker: skipped SMS failed", "appointment_id", appt.ID, "err", err)
			}
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.status failed", "err", err)
	}

	slog.Info("notification_worker: started")
}

func loadAppointment(db *repo.Client, msg *nats.Msg) *repo.Appointment {
	apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	if err != nil {
		return nil
	}
	appt, err := db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(context.Background())
	if err != nil {
		slog.Warn("worker: appointment not found", "id", apptID, "err", err)
		return nil
	}
	return appt
}

func sendBookingEmail(ctx context.Context, db *repo.Client, cli *email.Client, appt *repo.Appointment) {
	doctor, err := db.Doctor.Get(ctx, appt.DoctorID)
	if err != nil {
		slog.Warn("notification_worker: doctor not found", "id", appt.DoctorID, "err", err)
		return
	}
	clinic, err := db.Clinic.Get(ctx, appt.ClinicID)
	if err != nil {
		slog.Warn("notification_worker: clinic not found", "id", appt.ClinicID, "err", err)
		return
	}

	m := email.BuildBookingConfirmationEmail(email.BookingEmailData{
		PatientName: appt.PatientName,
		Email:       appt.PatientEmail,
		ClinicName:  clinic.Name,
		DoctorName:  doctor.Name,
		TokenNumber: appt.TokenNumber,
		Date:        timefmt.Date(appt.StartTime),
		SlotTime:    timefmt.Clock(appt.StartTime),
		AppName:     "Nivaran",
	})
	if err := cli.Send(ctx, m); err != nil {
		slog.Warn("notification_worker: confirmation email failed", "appointment_id", appt.ID, "err", err)
	}
}

// bumpQueueVersion invalidates cached queue boards for the doctor's day.
func bumpQueueVersion(ctx context.Context, rdb *redis.Client, doctorID uuid.UUID, day string) {
	key := fmt.Sprintf("queue:ver:%s:%s", doctorID, day)
	if err := rdb.Incr(ctx, key).Err(); err != nil {
		slog.Debug("worker: queue version bump failed", "key", key, "err", err)
	}
}
