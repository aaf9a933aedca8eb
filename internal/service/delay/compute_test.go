package delay

import (
	"testing"
	"time"

	"github.com/nivaran/nivaran_backend/internal/service/availability"
)

var day = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestCompute_NotInConsultation(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before session start", at(8, 50), 0},
		{"exactly on time", at(9, 0), 0},
		{"ten minutes late", at(9, 10), 10},
		{"forty minutes late", at(9, 40), 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(Input{
				Now:          tt.now,
				SessionStart: at(9, 0),
			})
			if got != tt.want {
				t.Errorf("Compute = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompute_InConsultation(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		completed int
		want      int
	}{
		// 60 elapsed, 4 done at 15-minute pace: exactly on schedule.
		{"on pace", at(10, 0), 4, 0},
		// 60 elapsed, 3 done: one slot behind.
		{"one patient behind", at(10, 0), 3, 15},
		// 60 elapsed, 5 done: ahead of schedule, clamps to zero.
		{"ahead of pace", at(10, 0), 5, 0},
		{"90 elapsed, 4 done", at(10, 30), 4, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(Input{
				Now:               tt.now,
				SessionStart:      at(9, 0),
				InConsultation:    true,
				CompletedCount:    tt.completed,
				AvgConsultMinutes: 15,
			})
			if got != tt.want {
				t.Errorf("Compute = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompute_BreakNetsOut(t *testing.T) {
	breaks := []availability.Interval{{Start: at(9, 30), End: at(10, 0)}}

	// 10:15: 75 minutes elapsed, 30 on break, 3 completed at 15-minute
	// pace → 75 − 45 − 30 = 0.
	got := Compute(Input{
		Now:               at(10, 15),
		SessionStart:      at(9, 0),
		Breaks:            breaks,
		InConsultation:    true,
		CompletedCount:    3,
		AvgConsultMinutes: 15,
	})
	if got != 0 {
		t.Errorf("Compute = %d, want 0 (break time is legitimate)", got)
	}

	// Same instant, only 2 completed → 15 behind.
	got = Compute(Input{
		Now:               at(10, 15),
		SessionStart:      at(9, 0),
		Breaks:            breaks,
		InConsultation:    true,
		CompletedCount:    2,
		AvgConsultMinutes: 15,
	})
	if got != 15 {
		t.Errorf("Compute = %d, want 15", got)
	}
}

func TestCompute_DuringBreakSuspends(t *testing.T) {
	got := Compute(Input{
		Now:          at(9, 45),
		SessionStart: at(9, 0),
		Breaks:       []availability.Interval{{Start: at(9, 30), End: at(10, 0)}},
	})
	if got != 0 {
		t.Errorf("Compute = %d, want 0 while on break", got)
	}
}

func TestCompute_BreakCoveringStartShiftsIt(t *testing.T) {
	// Break covers 09:00-09:20; doctor is measured against 09:20, not 09:00.
	breaks := []availability.Interval{{Start: at(9, 0), End: at(9, 20)}}

	got := Compute(Input{
		Now:          at(9, 25),
		SessionStart: at(9, 0),
		Breaks:       breaks,
	})
	if got != 5 {
		t.Errorf("Compute = %d, want 5 (start shifted past break)", got)
	}
}

func TestCompute_ChainedBreaksShiftStart(t *testing.T) {
	breaks := []availability.Interval{
		{Start: at(9, 0), End: at(9, 10)},
		{Start: at(9, 10), End: at(9, 20)},
	}
	got := Compute(Input{
		Now:          at(9, 30),
		SessionStart: at(9, 0),
		Breaks:       breaks,
	})
	if got != 10 {
		t.Errorf("Compute = %d, want 10 (start shifted past both breaks)", got)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := Input{
		Now:               at(10, 37),
		SessionStart:      at(9, 0),
		Breaks:            []availability.Interval{{Start: at(9, 30), End: at(9, 45)}},
		InConsultation:    true,
		CompletedCount:    3,
		AvgConsultMinutes: 12,
	}
	if a, b := Compute(in), Compute(in); a != b {
		t.Errorf("Compute not idempotent: %d then %d", a, b)
	}
}

func TestShouldPublish(t *testing.T) {
	tests := []struct {
		name     string
		old, new int
		want     bool
	}{
		{"zero to below threshold", 0, 4, false},
		{"zero to threshold", 0, 5, true},
		{"recovery to zero", 7, 0, true},
		{"small wobble", 10, 12, false},
		{"full step up", 10, 15, true},
		{"full step down", 15, 10, true},
		{"no change", 8, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldPublish(tt.old, tt.new); got != tt.want {
				t.Errorf("ShouldPublish(%d, %d) = %v, want %v", tt.old, tt.new, got, tt.want)
			}
		})
	}
}
