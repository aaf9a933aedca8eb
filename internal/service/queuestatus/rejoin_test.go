package queuestatus

import "testing"

func TestRejoinSlot(t *testing.T) {
	tests := []struct {
		name      string
		confirmed []int
		n         int
		want      int
		wantOK    bool
	}{
		{"no confirmed visits", nil, 2, 0, false},
		{"after second of many", []int{3, 5, 8, 9}, 2, 6, true},
		{"fewer than N, after last", []int{4}, 3, 5, true},
		{"exactly N confirmed", []int{2, 6}, 2, 7, true},
		{"n below one treated as one", []int{3, 5}, 0, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RejoinSlot(tt.confirmed, tt.n)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("RejoinSlot = %d, want %d", got, tt.want)
			}
		})
	}
}
