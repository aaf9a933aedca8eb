package delay

import (
	"time"

	"github.com/nivaran/nivaran_backend/internal/service/availability"
)

// hysteresisStep is the minimum movement (minutes) worth republishing.
const hysteresisStep = 5

// Input is a snapshot of everything the delay formula reads.
type Input struct {
	Now          time.Time
	SessionStart time.Time
	Breaks       []availability.Interval

	InConsultation    bool
	CompletedCount    int
	AvgConsultMinutes int
}

// OnBreak reports whether the instant falls inside any break interval.
// While on break, delay propagation is suspended and the stored delay is
// cleared.
func OnBreak(now time.Time, breaks []availability.Interval) bool {
	for _, b := range breaks {
		if !now.Before(b.Start) && now.Before(b.End) {
			return true
		}
	}
	return false
}

// Compute returns how many whole minutes the doctor is running behind.
//
// Before the first consultation the doctor is simply late by wall-clock time
// against the session's effective start (the nominal start pushed past any
// break covering it). Once consulting, the doctor is behind only if elapsed
// time exceeds their own pace times the patients actually completed, net of
// elapsed break time.
func Compute(in Input) int {
	if OnBreak(in.Now, in.Breaks) {
		return 0
	}

	start := effectiveStart(in.SessionStart, in.Breaks)
	if !in.Now.After(start) {
		return 0
	}

	elapsed := in.Now.Sub(start)

	if !in.InConsultation {
		return int(elapsed.Minutes())
	}

	avg := in.AvgConsultMinutes
	if avg <= 0 {
		avg = 15
	}
	pace := time.Duration(in.CompletedCount*avg) * time.Minute
	behind := elapsed - pace - breakElapsed(start, in.Now, in.Breaks)
	if behind < 0 {
		return 0
	}
	return int(behind.Minutes())
}

// ShouldPublish is the hysteresis gate: push an update only when the delay
// first becomes meaningful, fully recovers, or moves by a full step.
func ShouldPublish(old, new int) bool {
	switch {
	case old == 0 && new >= hysteresisStep:
		return true
	case old > 0 && new == 0:
		return true
	default:
		return abs(new-old) >= hysteresisStep
	}
}

// effectiveStart pushes the nominal start past any break covering it.
// Breaks may chain (one ends exactly where the next begins).
func effectiveStart(start time.Time, breaks []availability.Interval) time.Time {
	for moved := true; moved; {
		moved = false
		for _, b := range breaks {
			if !start.Before(b.Start) && start.Before(b.End) {
				start = b.End
				moved = true
			}
		}
	}
	return start
}

// breakElapsed sums break time that has already passed within [start, now].
func breakElapsed(start, now time.Time, breaks []availability.Interval) time.Duration {
	var total time.Duration
	for _, b := range breaks {
		from := maxTime(start, b.Start)
		to := minTime(now, b.End)
		if to.After(from) {
			total += to.Sub(from)
		}
	}
	return total
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
