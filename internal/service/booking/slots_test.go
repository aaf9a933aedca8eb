package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/nivaran/nivaran_backend/internal/service/availability"
	"github.com/nivaran/nivaran_backend/internal/service/capacity"
)

var day = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

// grid: one session 09:00-12:00, 15-minute slots (12 slots, reserve 2).
func grid() availability.Day {
	var d availability.Day
	for i := 0; i < 12; i++ {
		d.Slots = append(d.Slots, availability.Slot{
			SessionIndex: 0,
			GlobalIndex:  i,
			StartTime:    at(9, 0).Add(time.Duration(i) * 15 * time.Minute),
		})
	}
	return d
}

func intp(i int) *int { return &i }

func TestFormatToken(t *testing.T) {
	tests := []struct {
		prefix string
		n      int
		want   string
	}{
		{"A", 7, "A007"},
		{"W", 3, "W003"},
		{"A", 123, "A123"},
		{"B", 1000, "B1000"},
	}
	for _, tt := range tests {
		if got := FormatToken(tt.prefix, tt.n); got != tt.want {
			t.Errorf("FormatToken(%q, %d) = %q, want %q", tt.prefix, tt.n, got, tt.want)
		}
	}
}

func TestPickSlot_AutoLowestEligible(t *testing.T) {
	d := grid()
	part := capacity.Compute(d, at(9, 0), time.Hour)

	got, err := PickSlot(PickInput{
		Day:       d,
		Partition: part,
		Occupied:  map[int]bool{},
		Held:      map[int]bool{},
		Kind:      KindAdvance,
	})
	if err != nil {
		t.Fatalf("PickSlot: %v", err)
	}
	// Slots 0-3 are inside the 60-minute lead; 4 (10:00) is the first open.
	if got.GlobalIndex != 4 {
		t.Errorf("picked slot %d, want 4", got.GlobalIndex)
	}
}

func TestPickSlot_WalkInTakesNearSlot(t *testing.T) {
	d := grid()
	part := capacity.Compute(d, at(9, 0), time.Hour)

	got, err := PickSlot(PickInput{
		Day:       d,
		Partition: part,
		Occupied:  map[int]bool{},
		Held:      map[int]bool{},
		Kind:      KindWalkIn,
	})
	if err != nil {
		t.Fatalf("PickSlot: %v", err)
	}
	if got.GlobalIndex != 0 {
		t.Errorf("picked slot %d, want 0", got.GlobalIndex)
	}
}

func TestPickSlot_RequestedHonoured(t *testing.T) {
	d := grid()
	part := capacity.Compute(d, at(9, 0), time.Hour)

	got, err := PickSlot(PickInput{
		Day:       d,
		Partition: part,
		Occupied:  map[int]bool{},
		Held:      map[int]bool{},
		Kind:      KindAdvance,
		Requested: intp(7),
	})
	if err != nil {
		t.Fatalf("PickSlot: %v", err)
	}
	if got.GlobalIndex != 7 {
		t.Errorf("picked slot %d, want requested 7", got.GlobalIndex)
	}
}

func TestPickSlot_RequestedTakenFallsBackToAuto(t *testing.T) {
	d := grid()
	part := capacity.Compute(d, at(9, 0), time.Hour)

	tests := []struct {
		name     string
		occupied map[int]bool
		held     map[int]bool
		want     int
	}{
		{"occupied by appointment", map[int]bool{4: true}, map[int]bool{}, 5},
		{"claimed by live hold", map[int]bool{}, map[int]bool{4: true}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PickSlot(PickInput{
				Day:       d,
				Partition: part,
				Occupied:  tt.occupied,
				Held:      tt.held,
				Kind:      KindAdvance,
				Requested: intp(4),
			})
			if err != nil {
				t.Fatalf("PickSlot: %v", err)
			}
			if got.GlobalIndex != tt.want {
				t.Errorf("picked slot %d, want %d", got.GlobalIndex, tt.want)
			}
		})
	}
}

func TestPickSlot_AdvanceNeverEntersReserve(t *testing.T) {
	d := grid()
	part := capacity.Compute(d, at(9, 0), time.Hour)

	// Everything open to advance (4..9) is taken; only the reserve (10, 11)
	// is free. Advance must fail, walk-in must get 10.
	occupied := map[int]bool{}
	for i := 0; i < 10; i++ {
		occupied[i] = true
	}

	_, err := PickSlot(PickInput{
		Day: d, Partition: part, Occupied: occupied, Held: map[int]bool{}, Kind: KindAdvance,
	})
	if !errors.Is(err, ErrNoSlotFree) {
		t.Errorf("advance into reserve: err = %v, want ErrNoSlotFree", err)
	}

	got, err := PickSlot(PickInput{
		Day: d, Partition: part, Occupied: occupied, Held: map[int]bool{}, Kind: KindWalkIn,
	})
	if err != nil {
		t.Fatalf("walk-in PickSlot: %v", err)
	}
	if got.GlobalIndex != 10 {
		t.Errorf("walk-in picked %d, want reserve slot 10", got.GlobalIndex)
	}
}

func TestPickSlot_AllTaken(t *testing.T) {
	d := grid()
	part := capacity.Compute(d, at(9, 0), time.Hour)

	occupied := map[int]bool{}
	for i := 0; i < 12; i++ {
		occupied[i] = true
	}
	_, err := PickSlot(PickInput{
		Day: d, Partition: part, Occupied: occupied, Held: map[int]bool{}, Kind: KindWalkIn,
	})
	if !errors.Is(err, ErrNoSlotFree) {
		t.Errorf("err = %v, want ErrNoSlotFree", err)
	}
}

func TestOverflowSlot(t *testing.T) {
	d := grid() // last slot index 11 at 11:45

	t.Run("appends after the grid", func(t *testing.T) {
		got, err := OverflowSlot(d, 15, -1)
		if err != nil {
			t.Fatalf("OverflowSlot: %v", err)
		}
		if got.GlobalIndex != 12 {
			t.Errorf("index %d, want 12", got.GlobalIndex)
		}
		if !got.StartTime.Equal(at(12, 0)) {
			t.Errorf("time %v, want 12:00", got.StartTime)
		}
	})

	t.Run("stacks past earlier overflows", func(t *testing.T) {
		got, err := OverflowSlot(d, 15, 13)
		if err != nil {
			t.Fatalf("OverflowSlot: %v", err)
		}
		if got.GlobalIndex != 14 {
			t.Errorf("index %d, want 14", got.GlobalIndex)
		}
		if !got.StartTime.Equal(at(12, 30)) {
			t.Errorf("time %v, want 12:30", got.StartTime)
		}
	})

	t.Run("advances past a rival hold", func(t *testing.T) {
		// A committed overflow at 12 plus an uncommitted hold at 13: the
		// next force attempt must not collide with the hold.
		got, err := OverflowSlot(d, 15, maxBlockedIndex(12, map[int]bool{13: true}))
		if err != nil {
			t.Fatalf("OverflowSlot: %v", err)
		}
		if got.GlobalIndex != 14 {
			t.Errorf("index %d, want 14", got.GlobalIndex)
		}
	})

	t.Run("empty day fails", func(t *testing.T) {
		if _, err := OverflowSlot(availability.Day{}, 15, -1); !errors.Is(err, ErrNoSlotFree) {
			t.Errorf("err = %v, want ErrNoSlotFree", err)
		}
	})
}
