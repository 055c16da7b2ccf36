package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/hybrid/internal/models"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

// TestWeekStartOrToday verifies parsing an explicit date and the default to now.
func TestWeekStartOrToday(t *testing.T) {
	got, err := weekStartOrToday("2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2025 || got.Month() != 3 || got.Day() != 10 {
		t.Errorf("weekStartOrToday = %v, want 2025-03-10", got)
	}

	got, err = weekStartOrToday("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(got) > time.Minute {
		t.Errorf("default week = %v, want roughly now", got)
	}

	if _, err := weekStartOrToday("not-a-date"); err == nil {
		t.Error("expected error for invalid date")
	}
}

// fakeDataSource implements DataSource with canned responses.
type fakeDataSource struct {
	weekSummary *models.WeekSummary
	muscleLoad  *models.MuscleLoadResponse
	logged      []models.SessionInput
	rebuilds    int64
}

func (f *fakeDataSource) ComputeWeekSummary(_ context.Context, _ int, _ time.Time) (*models.WeekSummary, error) {
	return f.weekSummary, nil
}

func (f *fakeDataSource) ComputePeriodSummary(_ context.Context, _ int, start, end time.Time, lifetime bool) (*models.PeriodSummary, error) {
	return &models.PeriodSummary{Lifetime: lifetime}, nil
}

func (f *fakeDataSource) ComputeMuscleLoad(_ context.Context, _ int, _ time.Time) (*models.MuscleLoadResponse, error) {
	return f.muscleLoad, nil
}

func (f *fakeDataSource) LogSession(_ context.Context, userID int, in models.SessionInput) (*models.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	f.logged = append(f.logged, in)
	return &models.Session{UserID: userID, SportID: in.SportID, Date: in.Day(), DurationMinutes: in.DurationMinutes, IntensityRPE: in.IntensityRPE}, nil
}

func (f *fakeDataSource) RebuildDailyLoads(_ context.Context, _ int, _, _ time.Time) (int64, error) {
	return f.rebuilds, nil
}

func (f *fakeDataSource) ListSports(_ context.Context) ([]models.Sport, error) {
	return []models.Sport{{SportID: 1, Name: "Running"}}, nil
}

func (f *fakeDataSource) MuscleGroups(_ context.Context) ([]models.MuscleGroup, error) {
	return []models.MuscleGroup{{MuscleID: 10, Name: "quads", Tier: "B"}}, nil
}

func testHandlers(ds DataSource) *handlers {
	return &handlers{ds: ds, log: slog.Default()}
}

func callToolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return tc.Text
}

// TestLogSessionTool verifies the log_session tool validates input and
// forwards valid sessions to the data source.
func TestLogSessionTool(t *testing.T) {
	ds := &fakeDataSource{}
	h := testHandlers(ds)

	res, err := h.logSession(context.Background(), callToolRequest(map[string]any{
		"sport_id":         float64(1),
		"date":             "2025-03-12",
		"duration_minutes": float64(60),
		"intensity_rpe":    float64(7),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool returned error: %s", resultText(t, res))
	}
	if len(ds.logged) != 1 {
		t.Fatalf("logged %d sessions, want 1", len(ds.logged))
	}
	if ds.logged[0].DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", ds.logged[0].DurationMinutes)
	}
}

// TestLogSessionToolRejectsInvalid verifies out-of-range RPE is rejected
// without reaching the data source.
func TestLogSessionToolRejectsInvalid(t *testing.T) {
	ds := &fakeDataSource{}
	h := testHandlers(ds)

	res, err := h.logSession(context.Background(), callToolRequest(map[string]any{
		"sport_id":         float64(1),
		"date":             "2025-03-12",
		"duration_minutes": float64(60),
		"intensity_rpe":    float64(11),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result for RPE 11")
	}
	if len(ds.logged) != 0 {
		t.Errorf("logged %d sessions, want 0", len(ds.logged))
	}
}

// TestGetMuscleLoadTool verifies muscle load results round-trip through the
// tool as JSON.
func TestGetMuscleLoadTool(t *testing.T) {
	ds := &fakeDataSource{
		muscleLoad: &models.MuscleLoadResponse{
			WeekStartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			WeekEndDate:   time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
			Muscles: []models.MuscleLoadResult{
				{MuscleID: 10, MuscleName: "quads", LoadScore: 2.0, LoadCategory: "red", FatigueScore: 320, FatigueCategory: "red"},
			},
		},
	}
	h := testHandlers(ds)

	res, err := h.getMuscleLoad(context.Background(), callToolRequest(map[string]any{"week": "2025-03-10"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool returned error: %s", resultText(t, res))
	}

	var got models.MuscleLoadResponse
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("invalid JSON result: %v", err)
	}
	if len(got.Muscles) != 1 || got.Muscles[0].LoadCategory != "red" {
		t.Errorf("unexpected muscle load result: %+v", got)
	}
}

// TestGetWeekSummaryToolBadDate verifies an unparseable week parameter is an
// error result, not a transport error.
func TestGetWeekSummaryToolBadDate(t *testing.T) {
	h := testHandlers(&fakeDataSource{})

	res, err := h.getWeekSummary(context.Background(), callToolRequest(map[string]any{"week": "12/03/2025"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result for bad date")
	}
	if !strings.Contains(resultText(t, res), "invalid date") {
		t.Errorf("unexpected error text: %s", resultText(t, res))
	}
}

// TestRebuildDailyLoadsTool verifies the rebuild tool reports rows written.
func TestRebuildDailyLoadsTool(t *testing.T) {
	ds := &fakeDataSource{rebuilds: 12}
	h := testHandlers(ds)

	res, err := h.rebuildDailyLoads(context.Background(), callToolRequest(map[string]any{
		"start": "2025-03-10",
		"end":   "2025-03-16",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool returned error: %s", resultText(t, res))
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("invalid JSON result: %v", err)
	}
	if got["rows_written"] != float64(12) {
		t.Errorf("rows_written = %v, want 12", got["rows_written"])
	}
}
