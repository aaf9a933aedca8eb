package availability

import (
	"testing"
	"time"
)

var day = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func morning() []Session {
	return []Session{{Index: 0, Start: at(9, 0), End: at(12, 0)}}
}

func TestResolveDay_CutsSessionIntoSlots(t *testing.T) {
	got := ResolveDay(morning(), Overrides{}, 15, nil)

	if len(got.Slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(got.Slots))
	}
	if !got.Slots[0].StartTime.Equal(at(9, 0)) {
		t.Errorf("first slot at %v, want 09:00", got.Slots[0].StartTime)
	}
	if !got.Slots[11].StartTime.Equal(at(11, 45)) {
		t.Errorf("last slot at %v, want 11:45", got.Slots[11].StartTime)
	}
	for i, s := range got.Slots {
		if s.GlobalIndex != i {
			t.Fatalf("slot %d has global index %d", i, s.GlobalIndex)
		}
	}
}

func TestResolveDay_BreakOmitsSlotsWithoutShifting(t *testing.T) {
	ov := Overrides{
		Breaks: []Interval{{Start: at(10, 0), End: at(10, 30)}},
	}
	got := ResolveDay(morning(), ov, 15, nil)

	// 10:00 and 10:15 fall inside the break; 10:30 survives at its own time.
	if len(got.Slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(got.Slots))
	}
	for _, s := range got.Slots {
		if s.StartTime.Equal(at(10, 0)) || s.StartTime.Equal(at(10, 15)) {
			t.Errorf("slot emitted inside break at %v", s.StartTime)
		}
	}
	if !got.Slots[4].StartTime.Equal(at(10, 30)) {
		t.Errorf("slot after break at %v, want 10:30 (not shifted)", got.Slots[4].StartTime)
	}
	// Indices stay dense even though times have a gap.
	if got.Slots[4].GlobalIndex != 4 {
		t.Errorf("slot after break has index %d, want 4", got.Slots[4].GlobalIndex)
	}
}

func TestResolveDay_FullDayLeave(t *testing.T) {
	got := ResolveDay(morning(), Overrides{Leave: true}, 15, nil)
	if len(got.Slots) != 0 {
		t.Fatalf("expected no slots on leave day, got %d", len(got.Slots))
	}
}

func TestResolveDay_NoSessions(t *testing.T) {
	got := ResolveDay(nil, Overrides{}, 15, nil)
	if len(got.Slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(got.Slots))
	}
}

func TestResolveDay_Extension(t *testing.T) {
	tests := []struct {
		name      string
		ext       Extension
		wantSlots int
		wantEnd   time.Time
	}{
		{
			name:      "valid extension adds slots",
			ext:       Extension{SessionIndex: 0, OriginalEnd: at(12, 0), NewEnd: at(13, 0)},
			wantSlots: 16,
			wantEnd:   at(13, 0),
		},
		{
			name:      "stale original end is ignored",
			ext:       Extension{SessionIndex: 0, OriginalEnd: at(11, 30), NewEnd: at(13, 0)},
			wantSlots: 12,
			wantEnd:   at(12, 0),
		},
		{
			name:      "backwards extension is ignored",
			ext:       Extension{SessionIndex: 0, OriginalEnd: at(12, 0), NewEnd: at(11, 0)},
			wantSlots: 12,
			wantEnd:   at(12, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDay(morning(), Overrides{Extensions: []Extension{tt.ext}}, 15, nil)
			if len(got.Slots) != tt.wantSlots {
				t.Errorf("got %d slots, want %d", len(got.Slots), tt.wantSlots)
			}
			if !got.SessionEnd(0).Equal(tt.wantEnd) {
				t.Errorf("session end %v, want %v", got.SessionEnd(0), tt.wantEnd)
			}
		})
	}
}

func TestResolveDay_MalformedBreakIgnored(t *testing.T) {
	ov := Overrides{
		Breaks: []Interval{{Start: at(11, 0), End: at(10, 0)}}, // end before start
	}
	got := ResolveDay(morning(), ov, 15, nil)
	if len(got.Slots) != 12 {
		t.Fatalf("malformed break must not change the grid, got %d slots", len(got.Slots))
	}
}

func TestResolveDay_MultipleSessionsGlobalIndex(t *testing.T) {
	sessions := []Session{
		{Index: 0, Start: at(9, 0), End: at(11, 0)},
		{Index: 1, Start: at(17, 0), End: at(19, 0)},
	}
	got := ResolveDay(sessions, Overrides{}, 30, nil)

	if len(got.Slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(got.Slots))
	}
	for i, s := range got.Slots {
		if s.GlobalIndex != i {
			t.Fatalf("global index not dense at %d", i)
		}
	}
	if got.Slots[3].SessionIndex != 0 || got.Slots[4].SessionIndex != 1 {
		t.Errorf("session boundary wrong: %d/%d", got.Slots[3].SessionIndex, got.Slots[4].SessionIndex)
	}
	if !got.Slots[4].StartTime.Equal(at(17, 0)) {
		t.Errorf("evening session starts at %v, want 17:00", got.Slots[4].StartTime)
	}
}
