package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nivaran/nivaran_backend/config"
	"github.com/nivaran/nivaran_backend/internal/api/http/handler"
	"github.com/nivaran/nivaran_backend/internal/api/http/middleware"
	"github.com/nivaran/nivaran_backend/internal/repo"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/booking"
	"github.com/nivaran/nivaran_backend/internal/service/doctorsched"
	"github.com/nivaran/nivaran_backend/internal/service/queuestatus"
	"github.com/nivaran/nivaran_backend/pkg/clock"
	pasetotoken "github.com/nivaran/nivaran_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg       *config.Config
	Redis     *redis.Client
	DB        *repo.Client
	Clk       clock.Clock
	AvailSvc  availability.Service
	BookSvc   booking.Service
	StatusSvc queuestatus.Service
	SchedSvc  doctorsched.Service
	PasetoMgr *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr)
	clinicHeader := middleware.ClinicHeader(r.p.DB)

	bookingH := handler.NewBookingHandler(r.p.BookSvc, r.p.StatusSvc)
	queueH := handler.NewQueueHandler(r.p.AvailSvc, r.p.StatusSvc, r.p.Clk, r.p.Cfg.Queue)
	scheduleH := handler.NewScheduleHandler(r.p.SchedSvc, r.p.AvailSvc)

	api := app.Group("/api/v1")

	r.registerBookingRoutes(api, bookingH, clinicHeader)
	r.registerQueueRoutes(api, queueH, clinicHeader)
	r.registerScheduleRoutes(api, scheduleH, authRequired, clinicHeader)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.p.Redis.Ping(c.Context()).Err() == nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
