package capacity

import (
	"testing"
	"time"

	"github.com/nivaran/nivaran_backend/internal/service/availability"
)

var day = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

// grid builds a single-session day, 15-minute slots from 09:00.
func grid(n int) availability.Day {
	var d availability.Day
	for i := 0; i < n; i++ {
		d.Slots = append(d.Slots, availability.Slot{
			SessionIndex: 0,
			GlobalIndex:  i,
			StartTime:    at(9, 0).Add(time.Duration(i) * 15 * time.Minute),
		})
	}
	return d
}

func TestCompute_TwelveSlotSession(t *testing.T) {
	// 09:00-12:00 in 15-minute slots: 12 slots, reserve ceil(0.15*12)=2,
	// advance capacity 10.
	p := Compute(grid(12), at(9, 0), time.Hour)

	if got := p.Sessions[0].WalkInReserve; got != 2 {
		t.Errorf("walk-in reserve = %d, want 2", got)
	}
	if got := p.AdvanceCapacity(); got != 10 {
		t.Errorf("advance capacity = %d, want 10", got)
	}
	if p.IsAdvanceCapacityReached(9) {
		t.Error("capacity reached at 9 of 10")
	}
	if !p.IsAdvanceCapacityReached(10) {
		t.Error("capacity not reached at 10 of 10")
	}
	if !p.IsAdvanceCapacityReached(11) {
		t.Error("capacity must stay reached past the boundary")
	}

	// Reserve is the trailing two slots.
	for idx, want := range map[int]bool{0: false, 9: false, 10: true, 11: true} {
		if got := p.IsWalkInReserved(idx); got != want {
			t.Errorf("IsWalkInReserved(%d) = %v, want %v", idx, got, want)
		}
	}
}

func TestCompute_BoundarySlidesForward(t *testing.T) {
	// At 10:00 four slots have passed; 8 future slots, reserve ceil(1.2)=2.
	p := Compute(grid(12), at(10, 0), time.Hour)

	if got := len(p.Sessions[0].FutureSlots); got != 8 {
		t.Fatalf("future slots = %d, want 8", got)
	}
	if got := p.Sessions[0].WalkInReserve; got != 2 {
		t.Errorf("walk-in reserve = %d, want 2", got)
	}
	if got := p.AdvanceCapacity(); got != 6 {
		t.Errorf("advance capacity = %d, want 6", got)
	}
	// A slot that is now in the past is never reserved or eligible.
	past := availability.Slot{SessionIndex: 0, GlobalIndex: 2, StartTime: at(9, 30)}
	if p.AdvanceEligible(past) || p.WalkInEligible(past) {
		t.Error("past slot must not be eligible")
	}
}

func TestCompute_Idempotent(t *testing.T) {
	d := grid(12)
	now := at(10, 7)
	a := Compute(d, now, time.Hour)
	b := Compute(d, now, time.Hour)

	if a.AdvanceCapacity() != b.AdvanceCapacity() {
		t.Error("advance capacity changed between identical evaluations")
	}
	for i := 0; i < 12; i++ {
		if a.IsWalkInReserved(i) != b.IsWalkInReserved(i) {
			t.Errorf("reserve flag for slot %d changed between evaluations", i)
		}
	}
}

func TestAdvanceEligible_LeadWindow(t *testing.T) {
	p := Compute(grid(12), at(9, 0), time.Hour)

	tests := []struct {
		name string
		slot availability.Slot
		want bool
	}{
		{"inside 60-minute lead", availability.Slot{GlobalIndex: 1, StartTime: at(9, 15)}, false},
		{"exactly at lead boundary", availability.Slot{GlobalIndex: 4, StartTime: at(10, 0)}, true},
		{"past lead, open", availability.Slot{GlobalIndex: 8, StartTime: at(11, 0)}, true},
		{"past lead but reserved", availability.Slot{GlobalIndex: 11, StartTime: at(11, 45)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.AdvanceEligible(tt.slot); got != tt.want {
				t.Errorf("AdvanceEligible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompute_WalkInUnaffectedByLead(t *testing.T) {
	p := Compute(grid(12), at(9, 0), time.Hour)

	near := availability.Slot{GlobalIndex: 0, StartTime: at(9, 0)}
	if !p.WalkInEligible(near) {
		t.Error("walk-in must be allowed into the lead window")
	}
}

func TestCompute_SmallSessions(t *testing.T) {
	tests := []struct {
		name        string
		slots       int
		wantReserve int
		wantAdvance int
	}{
		{"empty day", 0, 0, 0},
		{"single slot", 1, 1, 0},
		{"three slots", 3, 1, 2},
		{"seven slots", 7, 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compute(grid(tt.slots), at(9, 0), time.Hour)
			if got := p.AdvanceCapacity(); got != tt.wantAdvance {
				t.Errorf("advance capacity = %d, want %d", got, tt.wantAdvance)
			}
			if tt.slots > 0 {
				if got := p.Sessions[0].WalkInReserve; got != tt.wantReserve {
					t.Errorf("reserve = %d, want %d", got, tt.wantReserve)
				}
			}
		})
	}
}

func TestCompute_TwoSessions(t *testing.T) {
	var d availability.Day
	// Morning 4 slots, evening 8 slots, 30-minute grid.
	for i := 0; i < 4; i++ {
		d.Slots = append(d.Slots, availability.Slot{
			SessionIndex: 0, GlobalIndex: i,
			StartTime: at(9, 0).Add(time.Duration(i) * 30 * time.Minute),
		})
	}
	for i := 0; i < 8; i++ {
		d.Slots = append(d.Slots, availability.Slot{
			SessionIndex: 1, GlobalIndex: 4 + i,
			StartTime: at(17, 0).Add(time.Duration(i) * 30 * time.Minute),
		})
	}

	p := Compute(d, at(8, 0), time.Hour)

	// Reserves: ceil(0.6)=1 and ceil(1.2)=2; capacity (4-1)+(8-2)=9.
	if got := p.AdvanceCapacity(); got != 9 {
		t.Errorf("advance capacity = %d, want 9", got)
	}
	if !p.IsWalkInReserved(3) {
		t.Error("morning trailing slot not reserved")
	}
	if !p.IsWalkInReserved(10) || !p.IsWalkInReserved(11) {
		t.Error("evening trailing slots not reserved")
	}
	if p.IsWalkInReserved(4) {
		t.Error("evening head slot wrongly reserved")
	}
}
