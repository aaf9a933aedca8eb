package availability

import (
	"log/slog"
	"time"
)

// Slot is one bookable consultation opportunity, derived and never persisted.
// GlobalIndex is unique and strictly increasing across the whole day.
type Slot struct {
	SessionIndex int
	GlobalIndex  int
	StartTime    time.Time
}

// Session is one contiguous consulting window on the target day, with the
// template times already anchored to concrete clinic-local instants.
type Session struct {
	Index int
	Start time.Time
	End   time.Time
}

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Extension moves one session's end later in the day. OriginalEnd is the
// nominal end the extension was written against; if the template has since
// changed, the extension is stale and ignored.
type Extension struct {
	SessionIndex int
	OriginalEnd  time.Time
	NewEnd       time.Time
}

// Overrides carries the day-specific deviations applied on top of the weekly
// template.
type Overrides struct {
	Leave      bool
	Breaks     []Interval
	Extensions []Extension
}

// Day is the resolved slot grid for one doctor and date.
type Day struct {
	Slots []Slot

	// Breaks are the day's valid break intervals, kept for the delay engine.
	Breaks []Interval

	sessionStarts map[int]time.Time
	sessionEnds   map[int]time.Time
}

// SessionStart returns the nominal start of the given session, before any
// break shifting. The zero time is returned for an unknown index.
func (d Day) SessionStart(sessionIndex int) time.Time {
	return d.sessionStarts[sessionIndex]
}

// SessionContaining returns the index of the session whose
// [start, effective end) window covers t, or -1.
func (d Day) SessionContaining(t time.Time) int {
	for idx, start := range d.sessionStarts {
		if !t.Before(start) && t.Before(d.sessionEnds[idx]) {
			return idx
		}
	}
	return -1
}

// SessionEnd returns the effective end of the given session with any valid
// extension folded in. The zero time is returned for an unknown index.
func (d Day) SessionEnd(sessionIndex int) time.Time {
	return d.sessionEnds[sessionIndex]
}

// SessionSlots returns the subset of the day's slots belonging to one session.
func (d Day) SessionSlots(sessionIndex int) []Slot {
	var out []Slot
	for _, s := range d.Slots {
		if s.SessionIndex == sessionIndex {
			out = append(out, s)
		}
	}
	return out
}

// ResolveDay cuts the day's sessions into consultMinutes-sized slots.
//
// A slot whose start falls inside a break is omitted, it does not shift the
// slots after it; break time is absorbed. A full-day leave yields no slots.
// Malformed overrides are skipped with a warning and the nominal schedule is
// used; resolution never hard-fails on override data.
func ResolveDay(sessions []Session, ov Overrides, consultMinutes int, log *slog.Logger) Day {
	day := Day{
		sessionStarts: make(map[int]time.Time, len(sessions)),
		sessionEnds:   make(map[int]time.Time, len(sessions)),
	}

	if consultMinutes <= 0 {
		consultMinutes = 15
	}
	step := time.Duration(consultMinutes) * time.Minute

	if ov.Leave {
		return day
	}

	breaks := validBreaks(ov.Breaks, log)
	day.Breaks = breaks

	globalIndex := 0
	for _, sess := range sessions {
		end := effectiveEnd(sess, ov.Extensions, log)
		day.sessionStarts[sess.Index] = sess.Start
		day.sessionEnds[sess.Index] = end

		for t := sess.Start; t.Before(end); t = t.Add(step) {
			if insideAny(t, breaks) {
				continue
			}
			day.Slots = append(day.Slots, Slot{
				SessionIndex: sess.Index,
				GlobalIndex:  globalIndex,
				StartTime:    t,
			})
			globalIndex++
		}
	}

	return day
}

func effectiveEnd(sess Session, exts []Extension, log *slog.Logger) time.Time {
	for _, ext := range exts {
		if ext.SessionIndex != sess.Index {
			continue
		}
		if !ext.OriginalEnd.Equal(sess.End) {
			logWarn(log, "stale session extension ignored",
				slog.Int("session", sess.Index),
				slog.Time("recorded_end", ext.OriginalEnd),
				slog.Time("nominal_end", sess.End))
			continue
		}
		if !ext.NewEnd.After(ext.OriginalEnd) {
			logWarn(log, "non-forward session extension ignored",
				slog.Int("session", sess.Index),
				slog.Time("new_end", ext.NewEnd))
			continue
		}
		return ext.NewEnd
	}
	return sess.End
}

func validBreaks(in []Interval, log *slog.Logger) []Interval {
	out := in[:0:0]
	for _, b := range in {
		if b.Start.IsZero() || b.End.IsZero() || !b.End.After(b.Start) {
			logWarn(log, "malformed break interval ignored",
				slog.Time("start", b.Start),
				slog.Time("end", b.End))
			continue
		}
		out = append(out, b)
	}
	return out
}

func insideAny(t time.Time, intervals []Interval) bool {
	for _, iv := range intervals {
		if !t.Before(iv.Start) && t.Before(iv.End) {
			return true
		}
	}
	return false
}

func logWarn(log *slog.Logger, msg string, attrs ...any) {
	if log == nil {
		return
	}
	log.Warn(msg, attrs...)
}
