package availability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nivaran/nivaran_backend/internal/repo"
	entoverride "github.com/nivaran/nivaran_backend/internal/repo/dayoverride"
	entsession "github.com/nivaran/nivaran_backend/internal/repo/schedulesession"
	"github.com/nivaran/nivaran_backend/pkg/timefmt"
)

// Service loads a doctor's template and overrides from the store and
// resolves them into the day's slot grid.
type Service interface {
	// Resolve returns the slot grid for one doctor and day key ("2006-01-02").
	// The doctor row is returned alongside so callers don't re-fetch it.
	Resolve(ctx context.Context, doctorID uuid.UUID, day string) (Day, *repo.Doctor, error)

	// Location returns the clinic-local location for a doctor.
	Location(ctx context.Context, doctorID uuid.UUID) (*time.Location, error)
}

type availabilityService struct {
	db  *repo.Client
	log *slog.Logger
}

func New(db *repo.Client, log *slog.Logger) Service {
	return &availabilityService{db: db, log: log}
}

func (s *availabilityService) Resolve(ctx context.Context, doctorID uuid.UUID, day string) (Day, *repo.Doctor, error) {
	doc, err := s.db.Doctor.Get(ctx, doctorID)
	if err != nil {
		if repo.IsNotFound(err) {
			return Day{}, nil, ErrDoctorNotFound
		}
		return Day{}, nil, fmt.Errorf("load doctor: %w", err)
	}

	clinic, err := s.db.Clinic.Get(ctx, doc.ClinicID)
	if err != nil {
		return Day{}, nil, fmt.Errorf("load clinic: %w", err)
	}

	loc, err := time.LoadLocation(clinic.Timezone)
	if err != nil {
		return Day{}, nil, fmt.Errorf("clinic timezone %q: %w", clinic.Timezone, err)
	}

	midnight, err := timefmt.ParseDay(day, loc)
	if err != nil {
		return Day{}, nil, err
	}

	sessions, err := s.loadSessions(ctx, doctorID, midnight)
	if err != nil {
		return Day{}, nil, err
	}
	if len(sessions) == 0 {
		return Day{}, doc, ErrNoAvailability
	}

	ov, err := s.loadOverrides(ctx, doctorID, day)
	if err != nil {
		return Day{}, nil, err
	}

	resolved := ResolveDay(sessions, ov, doc.ConsultMinutes, s.log)
	if len(resolved.Slots) == 0 {
		return resolved, doc, ErrNoAvailability
	}
	return resolved, doc, nil
}

func (s *availabilityService) Location(ctx context.Context, doctorID uuid.UUID) (*time.Location, error) {
	doc, err := s.db.Doctor.Get(ctx, doctorID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("load doctor: %w", err)
	}
	clinic, err := s.db.Clinic.Get(ctx, doc.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("load clinic: %w", err)
	}
	loc, err := time.LoadLocation(clinic.Timezone)
	if err != nil {
		return nil, fmt.Errorf("clinic timezone %q: %w", clinic.Timezone, err)
	}
	return loc, nil
}

// loadSessions anchors the weekday template rows onto concrete instants of
// the target day.
func (s *availabilityService) loadSessions(ctx context.Context, doctorID uuid.UUID, midnight time.Time) ([]Session, error) {
	rows, err := s.db.ScheduleSession.Query().
		Where(
			entsession.DoctorID(doctorID),
			entsession.Weekday(int(midnight.Weekday())),
			entsession.Active(true),
		).
		Order(entsession.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedule sessions: %w", err)
	}

	sessions := make([]Session, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, Session{
			Index: r.Position,
			Start: midnight.Add(time.Duration(r.StartHour)*time.Hour + time.Duration(r.StartMinute)*time.Minute),
			End:   midnight.Add(time.Duration(r.EndHour)*time.Hour + time.Duration(r.EndMinute)*time.Minute),
		})
	}
	return sessions, nil
}

func (s *availabilityService) loadOverrides(ctx context.Context, doctorID uuid.UUID, day string) (Overrides, error) {
	rows, err := s.db.DayOverride.Query().
		Where(
			entoverride.DoctorID(doctorID),
			entoverride.Day(day),
		).
		All(ctx)
	if err != nil {
		return Overrides{}, fmt.Errorf("load day overrides: %w", err)
	}

	var ov Overrides
	for _, r := range rows {
		switch r.Kind {
		case entoverride.KindLeave:
			ov.Leave = true

		case entoverride.KindBreak:
			if r.BreakStart == nil || r.BreakEnd == nil {
				s.log.Warn("break override missing interval, ignored",
					slog.String("override_id", r.ID.String()))
				continue
			}
			ov.Breaks = append(ov.Breaks, Interval{Start: *r.BreakStart, End: *r.BreakEnd})

		case entoverride.KindExtension:
			if r.SessionIndex == nil || r.OriginalEnd == nil || r.NewEnd == nil {
				s.log.Warn("extension override missing fields, ignored",
					slog.String("override_id", r.ID.String()))
				continue
			}
			ov.Extensions = append(ov.Extensions, Extension{
				SessionIndex: *r.SessionIndex,
				OriginalEnd:  *r.OriginalEnd,
				NewEnd:       *r.NewEnd,
			})
		}
	}
	return ov, nil
}
