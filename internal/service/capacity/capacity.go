// Package capacity splits a resolved day grid between the two token classes.
// Everything here is a pure function of (slots, now); the walk-in boundary is
// recomputed on every evaluation and never stored, so it slides forward as
// the day progresses.
package capacity

import (
	"math"
	"time"

	"github.com/nivaran/nivaran_backend/internal/service/availability"
)

// SessionPartition is the per-session view of remaining capacity.
type SessionPartition struct {
	Index int

	// FutureSlots are the session's slots starting at or after now.
	FutureSlots []availability.Slot

	// WalkInReserve is ceil(0.15 × len(FutureSlots)). The trailing
	// WalkInReserve future slots are held back from advance booking.
	WalkInReserve int
}

// Partition is the day-level result. Valid only for the instant it was
// computed at; do not cache across ticks.
type Partition struct {
	Now  time.Time
	Lead time.Duration

	Sessions []SessionPartition

	advanceCapacity int
	walkInReserved  map[int]struct{}
}

// Compute partitions the day's slots at the given instant. lead is the
// minimum head start an advance booking needs (slots starting sooner are
// implicitly left to walk-ins).
func Compute(day availability.Day, now time.Time, lead time.Duration) Partition {
	p := Partition{
		Now:            now,
		Lead:           lead,
		walkInReserved: make(map[int]struct{}),
	}

	bySession := map[int][]availability.Slot{}
	seen := map[int]bool{}
	var order []int
	for _, s := range day.Slots {
		if !seen[s.SessionIndex] {
			seen[s.SessionIndex] = true
			order = append(order, s.SessionIndex)
		}
		if !s.StartTime.Before(now) {
			bySession[s.SessionIndex] = append(bySession[s.SessionIndex], s)
		}
	}

	for _, idx := range order {
		future := bySession[idx]
		reserve := int(math.Ceil(0.15 * float64(len(future))))

		sp := SessionPartition{
			Index:         idx,
			FutureSlots:   future,
			WalkInReserve: reserve,
		}
		p.Sessions = append(p.Sessions, sp)
		p.advanceCapacity += len(future) - reserve

		// Trailing reserve slots of this session.
		for i := len(future) - reserve; i < len(future); i++ {
			p.walkInReserved[future[i].GlobalIndex] = struct{}{}
		}
	}

	return p
}

// AdvanceCapacity is the number of future slots open to advance booking,
// summed across sessions.
func (p Partition) AdvanceCapacity() int {
	return p.advanceCapacity
}

// IsAdvanceCapacityReached reports whether the given count of live advance
// bookings has used up the day's advance capacity.
func (p Partition) IsAdvanceCapacityReached(activeAdvanceCount int) bool {
	return activeAdvanceCount >= p.advanceCapacity
}

// IsWalkInReserved reports whether the slot is inside the trailing walk-in
// reserve of its session.
func (p Partition) IsWalkInReserved(globalIndex int) bool {
	_, ok := p.walkInReserved[globalIndex]
	return ok
}

// AdvanceEligible reports whether an advance booking may take this slot:
// it must be in the future, outside the walk-in reserve, and at least the
// lead duration away.
func (p Partition) AdvanceEligible(s availability.Slot) bool {
	if s.StartTime.Before(p.Now) {
		return false
	}
	if p.IsWalkInReserved(s.GlobalIndex) {
		return false
	}
	return !s.StartTime.Before(p.Now.Add(p.Lead))
}

// WalkInEligible reports whether a walk-in may take this slot. Walk-ins only
// need the slot to still be in the future.
func (p Partition) WalkInEligible(s availability.Slot) bool {
	return !s.StartTime.Before(p.Now)
}
