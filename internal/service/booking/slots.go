package booking

import (
	"fmt"
	"time"

	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/capacity"
)

// Kind is the token class a booking request competes in.
type Kind string

const (
	KindWalkIn  Kind = "walkin"
	KindAdvance Kind = "advance"
)

// FormatToken renders a display token like "A007".
func FormatToken(prefix string, n int) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// PickInput is everything the slot picker needs, snapshotted at one instant.
// Occupied holds slot indices with a live (pending/confirmed) appointment,
// Held holds indices with a live reservation.
type PickInput struct {
	Day       availability.Day
	Partition capacity.Partition
	Occupied  map[int]bool
	Held      map[int]bool
	Kind      Kind
	Requested *int
}

// PickSlot chooses the slot a booking attempt should claim. A requested
// index is honoured when it is valid; otherwise the lowest eligible free
// index wins. The caller still has to claim the slot transactionally, this
// is only the optimistic choice.
func PickSlot(in PickInput) (availability.Slot, error) {
	if in.Requested != nil {
		if s, ok := in.slotAt(*in.Requested); ok && in.eligible(s) && !in.taken(s.GlobalIndex) {
			return s, nil
		}
		// Fall through to auto-selection, mirroring a retry-with-auto call.
	}

	for _, s := range in.Day.Slots {
		if in.taken(s.GlobalIndex) {
			continue
		}
		if in.eligible(s) {
			return s, nil
		}
	}

	return availability.Slot{}, ErrNoSlotFree
}

func (in PickInput) slotAt(globalIndex int) (availability.Slot, bool) {
	for _, s := range in.Day.Slots {
		if s.GlobalIndex == globalIndex {
			return s, true
		}
	}
	return availability.Slot{}, false
}

func (in PickInput) taken(globalIndex int) bool {
	return in.Occupied[globalIndex] || in.Held[globalIndex]
}

func (in PickInput) eligible(s availability.Slot) bool {
	if in.Kind == KindAdvance {
		return in.Partition.AdvanceEligible(s)
	}
	return in.Partition.WalkInEligible(s)
}

// maxBlockedIndex widens the occupied high-water mark with held reservation
// indices, so a force retry advances past a rival's uncommitted hold instead
// of recomputing the same overflow index.
func maxBlockedIndex(maxUsed int, held map[int]bool) int {
	for idx := range held {
		if idx > maxUsed {
			maxUsed = idx
		}
	}
	return maxUsed
}

// OverflowSlot builds the synthetic slot a force booking appends past the end
// of the day. maxUsedIndex is the highest slot index any live appointment
// already holds (-1 when none), so repeated force bookings keep stacking.
func OverflowSlot(day availability.Day, consultMinutes int, maxUsedIndex int) (availability.Slot, error) {
	if len(day.Slots) == 0 {
		return availability.Slot{}, ErrNoSlotFree
	}
	if consultMinutes <= 0 {
		consultMinutes = 15
	}

	last := day.Slots[len(day.Slots)-1]
	index := last.GlobalIndex + 1
	if maxUsedIndex >= index {
		index = maxUsedIndex + 1
	}

	offset := time.Duration(index-last.GlobalIndex) * time.Duration(consultMinutes) * time.Minute
	return availability.Slot{
		SessionIndex: last.SessionIndex,
		GlobalIndex:  index,
		StartTime:    last.StartTime.Add(offset),
	}, nil
}
