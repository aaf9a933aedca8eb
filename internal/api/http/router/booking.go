package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nivaran/nivaran_backend/internal/api/http/handler"
)

func (r *Router) registerBookingRoutes(
	api fiber.Router,
	bh *handler.BookingHandler,
	clinicHeader fiber.Handler,
) {
	bookings := api.Group("/bookings", clinicHeader)

	bookings.Post("/", bh.Book)

	b := bookings.Group("/:id")
	b.Get("/", bh.GetByID)
	b.Post("/confirm", bh.Confirm)
	b.Post("/rejoin", bh.Rejoin)
	b.Patch("/cancel", bh.Cancel)
	b.Patch("/complete", bh.Complete)
}
