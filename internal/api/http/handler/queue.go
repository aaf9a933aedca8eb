package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nivaran/nivaran_backend/config"
	"github.com/nivaran/nivaran_backend/internal/repo"
	entappt "github.com/nivaran/nivaran_backend/internal/repo/appointment"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/capacity"
	"github.com/nivaran/nivaran_backend/internal/service/queuestatus"
	"github.com/nivaran/nivaran_backend/pkg/clock"
	"github.com/nivaran/nivaran_backend/pkg/timefmt"
)

type QueueHandler struct {
	avail     availability.Service
	statusSvc queuestatus.Service
	clk       clock.Clock
	cfg       config.QueueConfig
}

func NewQueueHandler(avail availability.Service, statusSvc queuestatus.Service, clk clock.Clock, cfg config.QueueConfig) *QueueHandler {
	return &QueueHandler{avail: avail, statusSvc: statusSvc, clk: clk, cfg: cfg}
}

// GET /doctors/:id/day?date=2025-03-05
//
// Returns the resolved slot grid for the day with the advance/walk-in
// partition evaluated at "now", plus current occupancy.
func (h *QueueHandler) Day(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	date := c.Query("date")
	if date == "" {
		return badRequest(c, "date query parameter is required")
	}

	day, doc, err := h.avail.Resolve(c.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrDoctorNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, availability.ErrNoAvailability):
			return ok(c, fiber.Map{
				"doctor_id": doctorID,
				"day":       date,
				"slots":     []any{},
			})
		default:
			return internalError(c)
		}
	}

	now := h.clk.Now().In(day.Slots[0].StartTime.Location())
	part := capacity.Compute(day, now, h.cfg.AdvanceLead())

	appts, err := h.statusSvc.Board(c.Context(), doctorID, date)
	if err != nil {
		return internalError(c)
	}
	bySlot := make(map[int]*repo.Appointment, len(appts))
	for _, a := range appts {
		if a.Status == entappt.StatusPending || a.Status == entappt.StatusConfirmed {
			bySlot[a.SlotIndex] = a
		}
	}

	slots := make([]fiber.Map, 0, len(day.Slots))
	for _, s := range day.Slots {
		entry := fiber.Map{
			"index":            s.GlobalIndex,
			"session":          s.SessionIndex,
			"time":             timefmt.Clock(s.StartTime),
			"walkin_reserved":  part.IsWalkInReserved(s.GlobalIndex),
			"advance_eligible": part.AdvanceEligible(s),
		}
		if a, taken := bySlot[s.GlobalIndex]; taken {
			entry["booked"] = true
			entry["token_number"] = a.TokenNumber
		} else {
			entry["booked"] = false
		}
		slots = append(slots, entry)
	}

	return ok(c, fiber.Map{
		"doctor_id":        doctorID,
		"doctor_name":      doc.Name,
		"day":              date,
		"date":             timefmt.Date(day.Slots[0].StartTime),
		"delay_minutes":    doc.DelayMinutes,
		"slots":            slots,
		"advance_capacity": part.AdvanceCapacity(),
	})
}

// GET /doctors/:id/queue?date=2025-03-05
//
// The live queue board: every non-cancelled visit for the day in slot order.
func (h *QueueHandler) Board(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	date := c.Query("date")
	if date == "" {
		return badRequest(c, "date query parameter is required")
	}

	appts, err := h.statusSvc.Board(c.Context(), doctorID, date)
	if err != nil {
		return internalError(c)
	}

	entries := make([]fiber.Map, 0, len(appts))
	for _, a := range appts {
		entries = append(entries, appointmentJSON(a))
	}
	return ok(c, fiber.Map{
		"doctor_id": doctorID,
		"day":       date,
		"queue":     entries,
	})
}
