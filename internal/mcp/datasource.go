package mcp

import (
	"context"
	"time"

	"github.com/meltforce/hybrid/internal/models"
	"github.com/meltforce/hybrid/internal/service"
)

// DataSource abstracts the dashboard operations exposed to MCP tools.
// *service.Service satisfies it; tests use a fake.
type DataSource interface {
	ComputeWeekSummary(ctx context.Context, userID int, weekStart time.Time) (*models.WeekSummary, error)
	ComputePeriodSummary(ctx context.Context, userID int, start, end time.Time, lifetime bool) (*models.PeriodSummary, error)
	ComputeMuscleLoad(ctx context.Context, userID int, weekStart time.Time) (*models.MuscleLoadResponse, error)
	LogSession(ctx context.Context, userID int, in models.SessionInput) (*models.Session, error)
	RebuildDailyLoads(ctx context.Context, userID int, start, end time.Time) (int64, error)
	ListSports(ctx context.Context) ([]models.Sport, error)
	MuscleGroups(ctx context.Context) ([]models.MuscleGroup, error)
}

// Compile-time check: *service.Service satisfies DataSource.
var _ DataSource = (*service.Service)(nil)
