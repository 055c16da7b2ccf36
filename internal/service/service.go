package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/hybrid/internal/load"
	"github.com/meltforce/hybrid/internal/models"
	"github.com/meltforce/hybrid/internal/storage"
)

// Store abstracts the data layer the dashboard computes over. *storage.DB
// satisfies it; tests use an in-memory fake.
type Store interface {
	SessionsInRange(ctx context.Context, userID int, start, end time.Time) ([]models.Session, error)
	CoefficientTable(ctx context.Context) ([]models.SportMuscleCoefficient, error)
	MuscleGroups(ctx context.Context) ([]models.MuscleGroup, error)
	ListSports(ctx context.Context) ([]models.Sport, error)
	InsertSession(ctx context.Context, s models.Session) error
	UpdateSession(ctx context.Context, s models.Session) error
	DeleteSession(ctx context.Context, id uuid.UUID, userID int) error
	GetSession(ctx context.Context, id uuid.UUID, userID int) (*models.Session, error)
	UpsertWeek(ctx context.Context, userID int, weekStart time.Time) (*string, error)
	ReplaceDailyLoads(ctx context.Context, userID int, start, end time.Time, rows []models.MuscleDailyLoad) (int64, error)
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Service orchestrates store reads and the load pipeline. Every query is a
// self-contained read-then-compute pass; nothing is shared or mutated
// between calls, so concurrent queries never interfere.
type Service struct {
	store Store
	log   *slog.Logger

	// WeighModifiers forwards the coefficient metadata weighting toggle to
	// the load engine.
	WeighModifiers bool
}

// New creates a Service.
func New(store Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// aggregator builds a fresh load aggregator from the current coefficient and
// muscle tables. Unknown muscle tiers are reported once per call as a
// data-quality warning, never as a failure.
func (s *Service) aggregator(ctx context.Context) (*load.Aggregator, error) {
	coeffs, err := s.store.CoefficientTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading coefficient table: %w", err)
	}
	muscles, err := s.store.MuscleGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading muscle groups: %w", err)
	}

	for _, m := range muscles {
		if _, ok := load.TierOf(m); !ok {
			s.log.Warn("muscle has no tier entry, using default",
				"muscle", m.Name, "tier", string(load.DefaultTier))
		}
	}

	engine := load.NewEngine(coeffs)
	engine.WeighModifiers = s.WeighModifiers
	return load.NewAggregator(engine, muscles), nil
}

// ComputeWeekSummary returns activities plus aggregate stats for the Monday
// week containing weekStart.
func (s *Service) ComputeWeekSummary(ctx context.Context, userID int, weekStart time.Time) (*models.WeekSummary, error) {
	week := load.WeekOf(weekStart)

	sessions, err := s.store.SessionsInRange(ctx, userID, week.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("querying week sessions: %w", err)
	}
	sports, err := s.store.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sports: %w", err)
	}
	label, err := s.store.UpsertWeek(ctx, userID, week.Start)
	if err != nil {
		return nil, fmt.Errorf("resolving week: %w", err)
	}

	if sessions == nil {
		sessions = []models.Session{}
	}
	return &models.WeekSummary{
		WeekStartDate: week.Start,
		WeekEndDate:   week.End,
		Label:         label,
		Stats:         load.Summarize(sessions, sports),
		Activities:    sessions,
	}, nil
}

// ComputePeriodSummary returns aggregate stats for an arbitrary inclusive
// period, or the user's whole history when lifetime is set.
func (s *Service) ComputePeriodSummary(ctx context.Context, userID int, start, end time.Time, lifetime bool) (*models.PeriodSummary, error) {
	var r load.Range
	if !lifetime {
		r = load.Range{Start: load.Day(start), End: load.Day(end)}
	}

	sessions, err := s.store.SessionsInRange(ctx, userID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("querying period sessions: %w", err)
	}
	sports, err := s.store.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sports: %w", err)
	}

	out := &models.PeriodSummary{
		Lifetime: lifetime,
		Stats:    load.Summarize(sessions, sports),
	}
	if !lifetime {
		out.StartDate = &r.Start
		out.EndDate = &r.End
	}
	return out, nil
}

// ComputeMuscleLoad runs the ACWR and fatigue classifiers for every tracked
// muscle over the Monday week containing weekStart. Source sessions are
// replayed from scratch on every call; the daily load cache is a separate,
// optional read path.
func (s *Service) ComputeMuscleLoad(ctx context.Context, userID int, weekStart time.Time) (*models.MuscleLoadResponse, error) {
	week := load.WeekOf(weekStart)

	agg, err := s.aggregator(ctx)
	if err != nil {
		return nil, err
	}

	// One fetch covers both windows: 4 chronic weeks plus the acute week.
	chronic := load.ChronicWindow(week.Start)
	sessions, err := s.store.SessionsInRange(ctx, userID, chronic.Start, week.End)
	if err != nil {
		return nil, fmt.Errorf("querying load sessions: %w", err)
	}

	return &models.MuscleLoadResponse{
		WeekStartDate: week.Start,
		WeekEndDate:   week.End,
		Muscles:       agg.EvaluateWeek(sessions, week.Start),
	}, nil
}

// LogSession validates and persists a new session, then refreshes the daily
// load cache for the touched day.
func (s *Service) LogSession(ctx context.Context, userID int, in models.SessionInput) (*models.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	day := in.Day()
	if _, err := s.store.UpsertWeek(ctx, userID, load.StartOfWeek(day)); err != nil {
		return nil, fmt.Errorf("resolving week: %w", err)
	}

	session := models.Session{
		ID:              uuid.New(),
		UserID:          userID,
		SportID:         in.SportID,
		Date:            day,
		DurationMinutes: in.DurationMinutes,
		IntensityRPE:    in.IntensityRPE,
		Notes:           in.Notes,
		Focus:           in.Focus,
	}
	if err := s.store.InsertSession(ctx, session); err != nil {
		return nil, err
	}

	if _, err := s.RebuildDailyLoads(ctx, userID, day, day); err != nil {
		s.log.Warn("daily load refresh failed", "day", day.Format("2006-01-02"), "error", err)
	}
	return &session, nil
}

// UpdateSession validates and replaces an existing session, refreshing the
// daily load cache for both the old and new day.
func (s *Service) UpdateSession(ctx context.Context, userID int, id uuid.UUID, in models.SessionInput) (*models.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	existing, err := s.store.GetSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	day := in.Day()
	if _, err := s.store.UpsertWeek(ctx, userID, load.StartOfWeek(day)); err != nil {
		return nil, fmt.Errorf("resolving week: %w", err)
	}

	session := models.Session{
		ID:              id,
		UserID:          userID,
		SportID:         in.SportID,
		Date:            day,
		DurationMinutes: in.DurationMinutes,
		IntensityRPE:    in.IntensityRPE,
		Notes:           in.Notes,
		Focus:           in.Focus,
	}
	if err := s.store.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	for _, touched := range []time.Time{load.Day(existing.Date), day} {
		if _, err := s.RebuildDailyLoads(ctx, userID, touched, touched); err != nil {
			s.log.Warn("daily load refresh failed", "day", touched.Format("2006-01-02"), "error", err)
		}
	}
	return &session, nil
}

// DeleteSession removes a session and refreshes the touched day's cache.
func (s *Service) DeleteSession(ctx context.Context, userID int, id uuid.UUID) error {
	existing, err := s.store.GetSession(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteSession(ctx, id, userID); err != nil {
		return err
	}

	day := load.Day(existing.Date)
	if _, err := s.RebuildDailyLoads(ctx, userID, day, day); err != nil {
		s.log.Warn("daily load refresh failed", "day", day.Format("2006-01-02"), "error", err)
	}
	return nil
}

// RebuildDailyLoads replays every session in the inclusive [start, end]
// range through the load engine and replaces the materialized
// daily_muscle_loads rows for that range. Returns the number of rows
// written. Safe to re-run: recomputation from raw sessions is always
// correct.
func (s *Service) RebuildDailyLoads(ctx context.Context, userID int, start, end time.Time) (int64, error) {
	r := load.Range{Start: load.Day(start), End: load.Day(end)}

	agg, err := s.aggregator(ctx)
	if err != nil {
		return 0, err
	}
	sessions, err := s.store.SessionsInRange(ctx, userID, r.Start, r.End)
	if err != nil {
		return 0, fmt.Errorf("querying sessions for rebuild: %w", err)
	}

	days := agg.DailyLoads(sessions, r)
	rows := make([]models.MuscleDailyLoad, 0, len(days))
	for day, byMuscle := range days {
		for muscleID, score := range byMuscle {
			rows = append(rows, models.MuscleDailyLoad{
				UserID:    userID,
				MuscleID:  muscleID,
				Day:       day,
				LoadScore: score,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Day.Equal(rows[j].Day) {
			return rows[i].Day.Before(rows[j].Day)
		}
		return rows[i].MuscleID < rows[j].MuscleID
	})

	return s.store.ReplaceDailyLoads(ctx, userID, r.Start, r.End, rows)
}

// ListSports exposes the sport catalog.
func (s *Service) ListSports(ctx context.Context) ([]models.Sport, error) {
	return s.store.ListSports(ctx)
}

// MuscleGroups exposes the muscle catalog.
func (s *Service) MuscleGroups(ctx context.Context) ([]models.MuscleGroup, error) {
	return s.store.MuscleGroups(ctx)
}
