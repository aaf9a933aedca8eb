package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nivaran/nivaran_backend/internal/repo"
	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/doctorsched"
	"github.com/nivaran/nivaran_backend/pkg/timefmt"
)

type ScheduleHandler struct {
	svc   doctorsched.Service
	avail availability.Service
}

func NewScheduleHandler(svc doctorsched.Service, avail availability.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, avail: avail}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctorsched.ErrDoctorNotFound),
		errors.Is(err, doctorsched.ErrSessionNotFound),
		errors.Is(err, doctorsched.ErrOverrideNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctorsched.ErrInvalidSession),
		errors.Is(err, doctorsched.ErrInvalidInterval):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

func sessionJSON(s *repo.ScheduleSession) fiber.Map {
	return fiber.Map{
		"id":           s.ID,
		"weekday":      s.Weekday,
		"position":     s.Position,
		"start_hour":   s.StartHour,
		"start_minute": s.StartMinute,
		"end_hour":     s.EndHour,
		"end_minute":   s.EndMinute,
	}
}

func overrideJSON(o *repo.DayOverride) fiber.Map {
	out := fiber.Map{
		"id":   o.ID,
		"day":  o.Day,
		"kind": o.Kind,
	}
	if o.BreakStart != nil {
		out["break_start"] = timefmt.Clock(*o.BreakStart)
	}
	if o.BreakEnd != nil {
		out["break_end"] = timefmt.Clock(*o.BreakEnd)
	}
	if o.SessionIndex != nil {
		out["session_index"] = *o.SessionIndex
	}
	if o.OriginalEnd != nil {
		out["original_end"] = timefmt.Clock(*o.OriginalEnd)
	}
	if o.NewEnd != nil {
		out["new_end"] = timefmt.Clock(*o.NewEnd)
	}
	return out
}

func (h *ScheduleHandler) doctorID(c fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// GET /doctors/:id/schedule
func (h *ScheduleHandler) ListSessions(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	rows, err := h.svc.ListSessions(c.Context(), doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, s := range rows {
		out = append(out, sessionJSON(s))
	}
	return ok(c, out)
}

// PUT /doctors/:id/schedule
func (h *ScheduleHandler) UpsertSession(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Weekday     int `json:"weekday"`
		Position    int `json:"position"`
		StartHour   int `json:"start_hour"`
		StartMinute int `json:"start_minute"`
		EndHour     int `json:"end_hour"`
		EndMinute   int `json:"end_minute"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	row, err := h.svc.UpsertSession(c.Context(), doctorID, doctorsched.SessionInput{
		Weekday:     body.Weekday,
		Position:    body.Position,
		StartHour:   body.StartHour,
		StartMinute: body.StartMinute,
		EndHour:     body.EndHour,
		EndMinute:   body.EndMinute,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, sessionJSON(row))
}

// DELETE /doctors/:id/schedule?weekday=&position=
func (h *ScheduleHandler) DeleteSession(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	weekday := fiber.Query[int](c, "weekday", -1)
	position := fiber.Query[int](c, "position", -1)
	if weekday < 0 || position < 0 {
		return badRequest(c, "weekday and position query parameters are required")
	}

	if err := h.svc.DeleteSession(c.Context(), doctorID, weekday, position); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// GET /doctors/:id/overrides?date=
func (h *ScheduleHandler) ListOverrides(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	date := c.Query("date")
	if date == "" {
		return badRequest(c, "date query parameter is required")
	}

	rows, err := h.svc.ListOverrides(c.Context(), doctorID, date)
	if err != nil {
		return mapScheduleError(c, err)
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, o := range rows {
		out = append(out, overrideJSON(o))
	}
	return ok(c, out)
}

// POST /doctors/:id/overrides/break
func (h *ScheduleHandler) AddBreak(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Day   string `json:"day"`
		Start string `json:"start"` // "01:00 PM"
		End   string `json:"end"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	loc, err := h.avail.Location(c.Context(), doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	midnight, err := timefmt.ParseDay(body.Day, loc)
	if err != nil {
		return badRequest(c, "invalid day")
	}
	start, err := timefmt.ParseClock(body.Start, midnight)
	if err != nil {
		return badRequest(c, "invalid start time")
	}
	end, err := timefmt.ParseClock(body.End, midnight)
	if err != nil {
		return badRequest(c, "invalid end time")
	}

	row, err := h.svc.AddBreak(c.Context(), doctorID, doctorsched.BreakInput{
		Day:   body.Day,
		Start: start,
		End:   end,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, overrideJSON(row))
}

// POST /doctors/:id/overrides/leave
func (h *ScheduleHandler) AddLeave(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Day string `json:"day"`
	}
	if err := c.Bind().Body(&body); err != nil || body.Day == "" {
		return badRequest(c, "day is required")
	}

	row, err := h.svc.AddLeave(c.Context(), doctorID, body.Day)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, overrideJSON(row))
}

// POST /doctors/:id/overrides/extension
func (h *ScheduleHandler) ExtendSession(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		Day          string `json:"day"`
		SessionIndex int    `json:"session_index"`
		OriginalEnd  string `json:"original_end"` // "12:00 PM"
		NewEnd       string `json:"new_end"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	loc, err := h.avail.Location(c.Context(), doctorID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	midnight, err := timefmt.ParseDay(body.Day, loc)
	if err != nil {
		return badRequest(c, "invalid day")
	}
	originalEnd, err := timefmt.ParseClock(body.OriginalEnd, midnight)
	if err != nil {
		return badRequest(c, "invalid original_end")
	}
	newEnd, err := timefmt.ParseClock(body.NewEnd, midnight)
	if err != nil {
		return badRequest(c, "invalid new_end")
	}

	row, err := h.svc.ExtendSession(c.Context(), doctorID, doctorsched.ExtensionInput{
		Day:          body.Day,
		SessionIndex: body.SessionIndex,
		OriginalEnd:  originalEnd,
		NewEnd:       newEnd,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}
	return created(c, overrideJSON(row))
}

// DELETE /doctors/:id/overrides/:overrideID
func (h *ScheduleHandler) DeleteOverride(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}
	overrideID, err := uuid.Parse(c.Params("overrideID"))
	if err != nil {
		return badRequest(c, "invalid override id")
	}

	if err := h.svc.DeleteOverride(c.Context(), doctorID, overrideID); err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}

// PATCH /doctors/:id/status
func (h *ScheduleHandler) UpdateLiveStatus(c fiber.Ctx) error {
	doctorID, err := h.doctorID(c)
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	var body struct {
		InConsultation *bool `json:"in_consultation"`
	}
	if err := c.Bind().Body(&body); err != nil || body.InConsultation == nil {
		return badRequest(c, "in_consultation is required")
	}

	if *body.InConsultation {
		err = h.svc.StartConsultation(c.Context(), doctorID)
	} else {
		err = h.svc.EndConsultation(c.Context(), doctorID)
	}
	if err != nil {
		return mapScheduleError(c, err)
	}
	return noContent(c)
}
