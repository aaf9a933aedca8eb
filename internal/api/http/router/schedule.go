package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nivaran/nivaran_backend/internal/api/http/handler"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
) {
	// Staff-only edit surface.
	doctors := api.Group("/doctors", authRequired, clinicHeader)

	d := doctors.Group("/:id")
	d.Get("/schedule", sh.ListSessions)
	d.Put("/schedule", sh.UpsertSession)
	d.Delete("/schedule", sh.DeleteSession)

	d.Get("/overrides", sh.ListOverrides)
	d.Post("/overrides/break", sh.AddBreak)
	d.Post("/overrides/leave", sh.AddLeave)
	d.Post("/overrides/extension", sh.ExtendSession)
	d.Delete("/overrides/:overrideID", sh.DeleteOverride)

	d.Patch("/status", sh.UpdateLiveStatus)
}
