package models

import (
	"strings"
	"testing"
)

func validInput() SessionInput {
	return SessionInput{SportID: 1, Date: "2025-03-03", DurationMinutes: 60, IntensityRPE: 7}
}

func TestSessionInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SessionInput)
		wantErr string
	}{
		{"valid", func(in *SessionInput) {}, ""},
		{"rpe floor", func(in *SessionInput) { in.IntensityRPE = 1 }, ""},
		{"rpe ceiling", func(in *SessionInput) { in.IntensityRPE = 10 }, ""},
		{"missing sport", func(in *SessionInput) { in.SportID = 0 }, "sport_id"},
		{"bad date", func(in *SessionInput) { in.Date = "03/03/2025" }, "invalid"},
		{"zero duration", func(in *SessionInput) { in.DurationMinutes = 0 }, "duration_minutes"},
		{"negative duration", func(in *SessionInput) { in.DurationMinutes = -30 }, "duration_minutes"},
		{"rpe too low", func(in *SessionInput) { in.IntensityRPE = 0 }, "intensity_rpe"},
		{"rpe too high", func(in *SessionInput) { in.IntensityRPE = 11 }, "intensity_rpe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestSessionInputDay(t *testing.T) {
	in := validInput()
	if got := in.Day().Format("2006-01-02"); got != "2025-03-03" {
		t.Errorf("Day() = %s, want 2025-03-03", got)
	}
}
