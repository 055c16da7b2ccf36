package load

import (
	"math"
	"reflect"
	"testing"

	"github.com/meltforce/hybrid/internal/models"
)

func testAggregator() *Aggregator {
	coeffs := []models.SportMuscleCoefficient{
		{SportID: 1, MuscleID: 10, BaseLoadPerMinute: 0.5},
		{SportID: 1, MuscleID: 11, BaseLoadPerMinute: 0.25},
		{SportID: 2, MuscleID: 11, BaseLoadPerMinute: 1.0},
	}
	muscles := []models.MuscleGroup{
		{MuscleID: 10, Name: "quads", Tier: "B"},
		{MuscleID: 11, Name: "core", Tier: "A"},
		{MuscleID: 12, Name: "chest", Tier: "C"},
	}
	return NewAggregator(NewEngine(coeffs), muscles)
}

func TestSumRangeZeroFill(t *testing.T) {
	a := testAggregator()
	totals := a.SumRange(nil, WeekOf(day("2025-03-03")))

	if len(totals) != 3 {
		t.Fatalf("totals has %d muscles, want 3 (every known muscle zero-filled)", len(totals))
	}
	for id, v := range totals {
		if v != 0 {
			t.Errorf("muscle %d = %.2f, want 0 for empty range", id, v)
		}
	}
}

func TestSumRangeOrderIndependent(t *testing.T) {
	a := testAggregator()
	sessions := []models.Session{
		testSession(1, "2025-03-03", 60, 5),
		testSession(2, "2025-03-05", 30, 8),
		testSession(1, "2025-03-09", 45, 10),
		testSession(1, "2025-03-10", 90, 9), // next week, excluded
	}
	week := WeekOf(day("2025-03-03"))

	forward := a.SumRange(sessions, week)
	reversed := a.SumRange([]models.Session{sessions[3], sessions[2], sessions[1], sessions[0]}, week)
	if !reflect.DeepEqual(forward, reversed) {
		t.Errorf("aggregation depends on session order: %v vs %v", forward, reversed)
	}

	// Recomputation from identical sources is byte-identical.
	again := a.SumRange(sessions, week)
	if !reflect.DeepEqual(forward, again) {
		t.Errorf("recomputation differs: %v vs %v", forward, again)
	}

	// RPE 5 → 0.9556, RPE 8 → 1.2222, RPE 10 → 1.4
	wantQuads := 60*0.5*IntensityFactor(5) + 45*0.5*IntensityFactor(10)
	if math.Abs(forward[10]-wantQuads) > 1e-9 {
		t.Errorf("quads = %.4f, want %.4f", forward[10], wantQuads)
	}
	if forward[12] != 0 {
		t.Errorf("chest = %.4f, want 0 (no contributing sport)", forward[12])
	}
}

// TestSumRangeAdditivity verifies two same-day same-sport sessions sum to the
// total of their individual contributions.
func TestSumRangeAdditivity(t *testing.T) {
	a := testAggregator()
	s1 := testSession(1, "2025-03-04", 30, 6)
	s2 := testSession(1, "2025-03-04", 50, 3)
	week := WeekOf(day("2025-03-04"))

	both := a.SumRange([]models.Session{s1, s2}, week)
	only1 := a.SumRange([]models.Session{s1}, week)
	only2 := a.SumRange([]models.Session{s2}, week)

	for _, id := range []int{10, 11, 12} {
		if math.Abs(both[id]-(only1[id]+only2[id])) > 1e-9 {
			t.Errorf("muscle %d: %.6f != %.6f + %.6f", id, both[id], only1[id], only2[id])
		}
	}
}

func TestDailyLoads(t *testing.T) {
	a := testAggregator()
	sessions := []models.Session{
		testSession(1, "2025-03-03", 60, 5),
		testSession(1, "2025-03-03", 20, 5),
		testSession(2, "2025-03-04", 30, 8),
	}

	days := a.DailyLoads(sessions, WeekOf(day("2025-03-03")))
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}

	monday := days[day("2025-03-03")]
	want := 80 * 0.5 * IntensityFactor(5)
	if math.Abs(monday[10]-want) > 1e-9 {
		t.Errorf("monday quads = %.4f, want %.4f (two sessions summed)", monday[10], want)
	}
	if _, ok := days[day("2025-03-05")]; ok {
		t.Error("days with no sessions must not appear in daily loads")
	}
}

func TestEvaluateWeek(t *testing.T) {
	a := testAggregator()

	// 4 prior weeks: one steady session per week for sport 1.
	// Each gives quads 60*0.5*IntensityFactor(5) ≈ 28.67.
	sessions := []models.Session{
		testSession(1, "2025-02-03", 60, 5),
		testSession(1, "2025-02-10", 60, 5),
		testSession(1, "2025-02-17", 60, 5),
		testSession(1, "2025-02-24", 60, 5),
		// Query week: double the usual dose.
		testSession(1, "2025-03-03", 120, 5),
	}

	results := a.EvaluateWeek(sessions, day("2025-03-03"))
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	byName := make(map[string]models.MuscleLoadResult)
	for _, r := range results {
		byName[r.MuscleName] = r
	}

	quads := byName["quads"]
	if math.Abs(quads.LoadScore-2.0) > 1e-9 {
		t.Errorf("quads acwr = %.4f, want 2.0 (doubled load)", quads.LoadScore)
	}
	if quads.LoadCategory != string(CategoryRed) {
		t.Errorf("quads category = %s, want red (tier B, ratio 2.0)", quads.LoadCategory)
	}
	weekLoad := 120 * 0.5 * IntensityFactor(5)
	if math.Abs(quads.FatigueScore-weekLoad) > 1e-9 {
		t.Errorf("quads fatigue score = %.4f, want %.4f", quads.FatigueScore, weekLoad)
	}
	if quads.FatigueCategory != string(CategoryGreen) {
		t.Errorf("quads fatigue = %s, want green (%.1f in (45,135])", quads.FatigueCategory, weekLoad)
	}

	// Core is tier A: ratio 2.0 lands in orange (≤2.3).
	if core := byName["core"]; core.LoadCategory != string(CategoryOrange) {
		t.Errorf("core category = %s, want orange (tier A, ratio 2.0)", core.LoadCategory)
	}

	// Chest saw no load at all: white on both signals, score 0.
	chest := byName["chest"]
	if chest.LoadCategory != string(CategoryWhite) || chest.FatigueCategory != string(CategoryWhite) {
		t.Errorf("chest categories = %s/%s, want white/white", chest.LoadCategory, chest.FatigueCategory)
	}
	if chest.LoadScore != 0 || chest.FatigueScore != 0 {
		t.Errorf("chest scores = %.2f/%.2f, want 0/0", chest.LoadScore, chest.FatigueScore)
	}

	// Sorted by acwr score descending, white muscles last.
	if results[len(results)-1].MuscleName != "chest" {
		t.Errorf("expected chest (white) last, got %s", results[len(results)-1].MuscleName)
	}
}

// TestEvaluateWeekNoHistory verifies a muscle trained this week with no
// chronic history reads neutral green, never infinity.
func TestEvaluateWeekNoHistory(t *testing.T) {
	a := testAggregator()
	sessions := []models.Session{testSession(1, "2025-03-04", 60, 5)}

	results := a.EvaluateWeek(sessions, day("2025-03-03"))
	for _, r := range results {
		if r.MuscleName == "quads" || r.MuscleName == "core" {
			if r.LoadScore != 1.0 {
				t.Errorf("%s acwr = %.4f, want neutral 1.0", r.MuscleName, r.LoadScore)
			}
			if r.LoadCategory != string(CategoryGreen) {
				t.Errorf("%s category = %s, want green", r.MuscleName, r.LoadCategory)
			}
		}
	}
}
