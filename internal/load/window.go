package load

import (
	"sort"
	"time"

	"github.com/meltforce/hybrid/internal/models"
)

// Aggregator sums per-muscle load contributions over date ranges. Every call
// recomputes from the supplied sessions and returns a fresh result; no state
// is carried between calls, so replaying a range is always safe and
// concurrent queries cannot interfere.
type Aggregator struct {
	engine  *Engine
	muscles []models.MuscleGroup
}

// NewAggregator builds an aggregator over the known muscle groups.
func NewAggregator(engine *Engine, muscles []models.MuscleGroup) *Aggregator {
	return &Aggregator{engine: engine, muscles: muscles}
}

// SumRange totals per-muscle load over the inclusive range. Every known
// muscle appears in the result, zero when nothing contributed, so downstream
// classifiers can render "no data" muscles. Session order does not matter.
func (a *Aggregator) SumRange(sessions []models.Session, r Range) map[int]float64 {
	totals := make(map[int]float64, len(a.muscles))
	for _, m := range a.muscles {
		totals[m.MuscleID] = 0
	}
	for _, s := range sessions {
		if !r.Contains(s.Date) {
			continue
		}
		for muscleID, score := range a.engine.Contributions(s) {
			totals[muscleID] += score
		}
	}
	return totals
}

// DailyLoads totals per-(muscle, day) load over the inclusive range. Used to
// materialize the daily load cache; the cache is rebuilt wholesale for a
// touched range, never patched in place.
func (a *Aggregator) DailyLoads(sessions []models.Session, r Range) map[time.Time]map[int]float64 {
	days := make(map[time.Time]map[int]float64)
	for _, s := range sessions {
		if !r.Contains(s.Date) {
			continue
		}
		day := Day(s.Date)
		byMuscle := days[day]
		if byMuscle == nil {
			byMuscle = make(map[int]float64)
			days[day] = byMuscle
		}
		for muscleID, score := range a.engine.Contributions(s) {
			byMuscle[muscleID] += score
		}
	}
	return days
}

// EvaluateWeek runs both classifiers for the Monday week starting at
// weekStart. A muscle with zero load for the whole week reads white with
// score 0 on both signals; otherwise the ACWR ratio is classified per tier
// and the raw weekly total per the fixed fatigue ladder.
func (a *Aggregator) EvaluateWeek(sessions []models.Session, weekStart time.Time) []models.MuscleLoadResult {
	acute := a.SumRange(sessions, AcuteWindow(weekStart))
	chronic := a.SumRange(sessions, ChronicWindow(weekStart))

	results := make([]models.MuscleLoadResult, 0, len(a.muscles))
	for _, m := range a.muscles {
		week := acute[m.MuscleID]
		res := models.MuscleLoadResult{
			MuscleID:     m.MuscleID,
			MuscleName:   m.Name,
			FatigueScore: week,
		}
		if week == 0 {
			res.LoadCategory = string(CategoryWhite)
			res.FatigueCategory = string(CategoryWhite)
		} else {
			tier, _ := TierOf(m)
			ratio := Ratio(week, chronic[m.MuscleID]/4)
			res.LoadScore = ratio
			res.LoadCategory = string(ClassifyACWR(tier, ratio))
			res.FatigueCategory = string(ClassifyFatigue(week))
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].LoadScore != results[j].LoadScore {
			return results[i].LoadScore > results[j].LoadScore
		}
		return results[i].MuscleName < results[j].MuscleName
	})
	return results
}
