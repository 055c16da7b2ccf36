package load

import (
	"sort"

	"github.com/meltforce/hybrid/internal/models"
)

// Summarize computes aggregate stats for a set of sessions: total minutes,
// session count, mean RPE (0 when empty) and a per-sport breakdown sorted by
// total duration descending, ties broken by sport ID. Independent of the
// muscle pipeline; operates on session rows only.
func Summarize(sessions []models.Session, sports []models.Sport) models.WeekStats {
	stats := models.WeekStats{SportBreakdown: []models.SportBreakdown{}}
	if len(sessions) == 0 {
		return stats
	}

	names := make(map[int]string, len(sports))
	for _, s := range sports {
		names[s.SportID] = s.Name
	}

	var rpeSum int
	bySport := make(map[int]*models.SportBreakdown)
	for _, s := range sessions {
		stats.TotalDurationMinutes += s.DurationMinutes
		stats.SessionCount++
		rpeSum += s.IntensityRPE

		b := bySport[s.SportID]
		if b == nil {
			b = &models.SportBreakdown{SportID: s.SportID, SportName: names[s.SportID]}
			bySport[s.SportID] = b
		}
		b.TotalDurationMinutes += s.DurationMinutes
		b.SessionCount++
	}
	stats.AverageRPE = float64(rpeSum) / float64(stats.SessionCount)

	for _, b := range bySport {
		stats.SportBreakdown = append(stats.SportBreakdown, *b)
	}
	sort.Slice(stats.SportBreakdown, func(i, j int) bool {
		bi, bj := stats.SportBreakdown[i], stats.SportBreakdown[j]
		if bi.TotalDurationMinutes != bj.TotalDurationMinutes {
			return bi.TotalDurationMinutes > bj.TotalDurationMinutes
		}
		return bi.SportID < bj.SportID
	})
	return stats
}
