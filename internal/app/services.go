package app

import (
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/nivaran/nivaran_backend/config"
	"github.com/nivaran/nivaran_backend/internal/repo"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/booking"
	"github.com/nivaran/nivaran_backend/internal/service/delay"
	"github.com/nivaran/nivaran_backend/internal/service/doctorsched"
	"github.com/nivaran/nivaran_backend/internal/service/queuestatus"
	"github.com/nivaran/nivaran_backend/pkg/clock"
	"github.com/nivaran/nivaran_backend/pkg/observability"
	pasetotoken "github.com/nivaran/nivaran_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAvailabilityService,
		ProvideBookingService,
		ProvideDelayService,
		ProvideStatusService,
		ProvideScheduleService,
		ProvidePasetoManager,
	),
)

func ProvideAvailabilityService(db *repo.Client, log *slog.Logger) availability.Service {
	return availability.New(db, log)
}

func ProvideBookingService(
	db *repo.Client,
	avail availability.Service,
	clk clock.Clock,
	cfg *config.Config,
	nc *nats.Conn,
	log *slog.Logger,
	metrics *observability.QueueMetrics,
) booking.Service {
	return booking.New(db, avail, clk, cfg.Queue, nc, log, metrics)
}

func ProvideDelayService(
	db *repo.Client,
	avail availability.Service,
	clk clock.Clock,
	log *slog.Logger,
	metrics *observability.QueueMetrics,
) delay.Service {
	return delay.New(db, avail, clk, log, metrics)
}

func ProvideStatusService(
	db *repo.Client,
	avail availability.Service,
	clk clock.Clock,
	nc *nats.Conn,
	log *slog.Logger,
	metrics *observability.QueueMetrics,
) queuestatus.Service {
	return queuestatus.New(db, avail, clk, nc, log, metrics)
}

func ProvideScheduleService(db *repo.Client, clk clock.Clock, nc *nats.Conn) doctorsched.Service {
	return doctorsched.New(db, clk, nc)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
