package models

import (
	"fmt"
	"time"
)

// SessionInput is the payload accepted when logging or updating a session.
type SessionInput struct {
	SportID         int     `json:"sport_id"`
	Date            string  `json:"date"`
	DurationMinutes int     `json:"duration_minutes"`
	IntensityRPE    int     `json:"intensity_rpe"`
	Notes           *string `json:"notes,omitempty"`
	Focus           *string `json:"focus,omitempty"`
}

// Validate rejects invalid session input with a descriptive reason.
// Values are never clamped; the load pipeline assumes validated input.
func (in SessionInput) Validate() error {
	if in.SportID <= 0 {
		return fmt.Errorf("sport_id is required")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("date %q is invalid, expected YYYY-MM-DD", in.Date)
	}
	if in.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive, got %d", in.DurationMinutes)
	}
	if in.IntensityRPE < 1 || in.IntensityRPE > 10 {
		return fmt.Errorf("intensity_rpe must be between 1 and 10, got %d", in.IntensityRPE)
	}
	return nil
}

// Day returns the parsed calendar day. Call only after Validate.
func (in SessionInput) Day() time.Time {
	d, _ := time.Parse("2006-01-02", in.Date)
	return d
}
