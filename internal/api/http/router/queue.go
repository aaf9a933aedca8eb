package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nivaran/nivaran_backend/internal/api/http/handler"
)

func (r *Router) registerQueueRoutes(
	api fiber.Router,
	qh *handler.QueueHandler,
	clinicHeader fiber.Handler,
) {
	doctors := api.Group("/doctors", clinicHeader)

	d := doctors.Group("/:id")
	d.Get("/day", qh.Day)
	d.Get("/queue", qh.Board)
}
