package doctorsched

import (
	"errors"
	"testing"
)

func TestValidateSession(t *testing.T) {
	tests := []struct {
		name    string
		in      SessionInput
		wantErr bool
	}{
		{
			name: "morning session",
			in:   SessionInput{Weekday: 1, StartHour: 9, EndHour: 12},
		},
		{
			name: "evening session with minutes",
			in:   SessionInput{Weekday: 6, StartHour: 17, StartMinute: 30, EndHour: 20, EndMinute: 15},
		},
		{
			name:    "weekday out of range",
			in:      SessionInput{Weekday: 7, StartHour: 9, EndHour: 12},
			wantErr: true,
		},
		{
			name:    "negative weekday",
			in:      SessionInput{Weekday: -1, StartHour: 9, EndHour: 12},
			wantErr: true,
		},
		{
			name:    "end before start",
			in:      SessionInput{Weekday: 2, StartHour: 12, EndHour: 9},
			wantErr: true,
		},
		{
			name:    "zero-length session",
			in:      SessionInput{Weekday: 2, StartHour: 9, EndHour: 9},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSession(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSession) {
					t.Fatalf("validateSession() = %v, want ErrInvalidSession", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateSession() = %v, want nil", err)
			}
		})
	}
}
