package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nivaran/nivaran_backend/internal/repo"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/booking"
	"github.com/nivaran/nivaran_backend/internal/service/queuestatus"
	"github.com/nivaran/nivaran_backend/pkg/timefmt"
)

type BookingHandler struct {
	bookSvc   booking.Service
	statusSvc queuestatus.Service
}

func NewBookingHandler(bookSvc booking.Service, statusSvc queuestatus.Service) *BookingHandler {
	return &BookingHandler{bookSvc: bookSvc, statusSvc: statusSvc}
}

// appointmentJSON is the wire shape of one appointment. Times cross the
// boundary as "09:15 AM" / "5 March 2025" strings.
func appointmentJSON(a *repo.Appointment) fiber.Map {
	return fiber.Map{
		"id":            a.ID,
		"doctor_id":     a.DoctorID,
		"patient_name":  a.PatientName,
		"patient_phone": a.PatientPhone,
		"day":           a.Day,
		"date":          timefmt.Date(a.StartTime),
		"slot_index":    a.SlotIndex,
		"session_index": a.SessionIndex,
		"time":          timefmt.Clock(a.StartTime),
		"kind":          a.Kind,
		"token_number":  a.TokenNumber,
		"numeric_token": a.NumericToken,
		"status":        a.Status,
		"cut_off_time":  timefmt.Clock(a.CutOffTime),
		"no_show_time":  timefmt.Clock(a.NoShowTime),
		"delay_minutes": a.DelayMinutes,
		"force_booked":  a.ForceBooked,
		"rejoined":      a.Rejoined,
	}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrNoAvailability):
		return unprocessable(c, err.Error())
	case errors.Is(err, booking.ErrAdvanceCapacityReached):
		return unprocessable(c, err.Error())
	case errors.Is(err, booking.ErrNoSlotFree):
		return unprocessable(c, err.Error())
	case errors.Is(err, booking.ErrSlotOccupied),
		errors.Is(err, booking.ErrSlotAlreadyBooked),
		errors.Is(err, booking.ErrReservationMismatch),
		errors.Is(err, booking.ErrRetryExhausted):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func mapStatusError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, queuestatus.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, queuestatus.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, queuestatus.ErrCutoffPassed):
		return conflict(c, err.Error())
	case errors.Is(err, queuestatus.ErrRejoinConflict):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /bookings
func (h *BookingHandler) Book(c fiber.Ctx) error {
	var body struct {
		DoctorID      string `json:"doctor_id"`
		Day           string `json:"day"`
		Kind          string `json:"kind"`
		RequestedSlot *int   `json:"requested_slot"`
		Force         bool   `json:"force"`
		PatientName   string `json:"patient_name"`
		PatientPhone  string `json:"patient_phone"`
		PatientEmail  string `json:"patient_email"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	if body.Day == "" || body.PatientName == "" || body.PatientPhone == "" {
		return badRequest(c, "day, patient_name and patient_phone are required")
	}

	kind := booking.Kind(body.Kind)
	if kind != booking.KindWalkIn && kind != booking.KindAdvance {
		return badRequest(c, "kind must be walkin or advance")
	}

	res, err := h.bookSvc.Book(c.Context(), booking.BookRequest{
		DoctorID:      doctorID,
		Day:           body.Day,
		Kind:          kind,
		RequestedSlot: body.RequestedSlot,
		Force:         body.Force,
		PatientName:   body.PatientName,
		PatientPhone:  body.PatientPhone,
		PatientEmail:  body.PatientEmail,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	out := appointmentJSON(res.Appointment)
	out["attempts"] = res.Attempts
	return created(c, out)
}

// GET /bookings/:id
func (h *BookingHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.statusSvc.Get(c.Context(), apptID)
	if err != nil {
		return mapStatusError(c, err)
	}
	return ok(c, appointmentJSON(appt))
}

// POST /bookings/:id/confirm
func (h *BookingHandler) Confirm(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.statusSvc.Confirm(c.Context(), apptID)
	if err != nil {
		return mapStatusError(c, err)
	}
	return ok(c, appointmentJSON(appt))
}

// POST /bookings/:id/rejoin
func (h *BookingHandler) Rejoin(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.statusSvc.Rejoin(c.Context(), apptID)
	if err != nil {
		return mapStatusError(c, err)
	}
	return ok(c, appointmentJSON(appt))
}

// PATCH /bookings/:id/complete
func (h *BookingHandler) Complete(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.statusSvc.Complete(c.Context(), apptID)
	if err != nil {
		return mapStatusError(c, err)
	}
	return ok(c, appointmentJSON(appt))
}

// PATCH /bookings/:id/cancel
func (h *BookingHandler) Cancel(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().Body(&body)

	if err := h.statusSvc.Cancel(c.Context(), apptID, body.Reason); err != nil {
		return mapStatusError(c, err)
	}
	return noContent(c)
}
