package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one logged training session. Sessions are immutable once
// computed over; readers always work from snapshots returned by storage.
type Session struct {
	ID              uuid.UUID `json:"id"`
	UserID          int       `json:"user_id"`
	SportID         int       `json:"sport_id"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	IntensityRPE    int       `json:"intensity_rpe"`
	Notes           *string   `json:"notes,omitempty"`
	Focus           *string   `json:"focus,omitempty"`
}

// Sport is a sport definition with its selectable focuses.
type Sport struct {
	SportID               int          `json:"sport_id"`
	Name                  string       `json:"name"`
	DefaultIntensityScale *float64     `json:"default_intensity_scale,omitempty"`
	Focuses               []SportFocus `json:"focuses,omitempty"`
}

// SportFocus is one focus label belonging to a sport.
type SportFocus struct {
	FocusID int    `json:"focus_id"`
	SportID int    `json:"sport_id"`
	Name    string `json:"name"`
}

// MuscleGroup is one tracked muscle with its sensitivity tier (A/B/C).
type MuscleGroup struct {
	MuscleID int    `json:"muscle_id"`
	Name     string `json:"name"`
	Tier     string `json:"tier"`
}

// SportMuscleCoefficient maps (sport, muscle) to a base load per minute.
// IsUnilateral and HasEmphasis are informational unless modifier weighting
// is enabled on the load engine.
type SportMuscleCoefficient struct {
	SportID           int     `json:"sport_id"`
	MuscleID          int     `json:"muscle_id"`
	BaseLoadPerMinute float64 `json:"base_load_per_minute"`
	IsUnilateral      bool    `json:"is_unilateral"`
	HasEmphasis       bool    `json:"has_emphasis"`
}

// MuscleDailyLoad is one row of the materialized per-day load cache.
// Rows are never mutated in place; a date range is deleted and rebuilt
// whenever its source sessions change.
type MuscleDailyLoad struct {
	UserID    int       `json:"user_id"`
	MuscleID  int       `json:"muscle_id"`
	Day       time.Time `json:"day"`
	LoadScore float64   `json:"load_score"`
}

// SportBreakdown aggregates minutes and counts for one sport in a period.
type SportBreakdown struct {
	SportID              int    `json:"sport_id"`
	SportName            string `json:"sport_name"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
	SessionCount         int    `json:"session_count"`
}

// WeekStats holds the aggregate metrics for a week or arbitrary period.
type WeekStats struct {
	TotalDurationMinutes int              `json:"total_duration_minutes"`
	SessionCount         int              `json:"session_count"`
	AverageRPE           float64          `json:"average_rpe"`
	SportBreakdown       []SportBreakdown `json:"sport_breakdown"`
}

// WeekSummary is the full response for a calendar-week query.
type WeekSummary struct {
	WeekStartDate time.Time `json:"week_start_date"`
	WeekEndDate   time.Time `json:"week_end_date"`
	Label         *string   `json:"label,omitempty"`
	Stats         WeekStats `json:"stats"`
	Activities    []Session `json:"activities"`
}

// PeriodSummary is the response for an arbitrary or lifetime period query.
type PeriodSummary struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Lifetime  bool       `json:"lifetime"`
	Stats     WeekStats  `json:"stats"`
}

// MuscleLoadResult carries both classifier readings for one muscle.
type MuscleLoadResult struct {
	MuscleID        int     `json:"muscle_id"`
	MuscleName      string  `json:"muscle_name"`
	LoadScore       float64 `json:"load_score"`
	LoadCategory    string  `json:"load_category"`
	FatigueScore    float64 `json:"fatigue_score"`
	FatigueCategory string  `json:"fatigue_category"`
}

// MuscleLoadResponse is the response for a muscle-load week query.
type MuscleLoadResponse struct {
	WeekStartDate time.Time          `json:"week_start_date"`
	WeekEndDate   time.Time          `json:"week_end_date"`
	Muscles       []MuscleLoadResult `json:"muscles"`
}
