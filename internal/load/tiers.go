package load

import (
	"strings"

	"github.com/meltforce/hybrid/internal/models"
)

// Category is a color bucket rendered by the dashboard heat map, ordered
// blue < green < yellow < orange < red. White is reserved for muscles with
// zero recorded load across the whole week.
type Category string

const (
	CategoryWhite  Category = "white"
	CategoryBlue   Category = "blue"
	CategoryGreen  Category = "green"
	CategoryYellow Category = "yellow"
	CategoryOrange Category = "orange"
	CategoryRed    Category = "red"
)

// Tier is a muscle sensitivity classification. Tier A muscles tolerate the
// widest ACWR band, tier C the narrowest.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// DefaultTier is assigned to muscles without an explicit tier entry.
// Callers log a data-quality warning for the fallback; it is never an error.
const DefaultTier = TierB

var muscleTiers = map[string]Tier{
	"core":        TierA,
	"balance":     TierA,
	"mental":      TierA,
	"calves":      TierA,
	"glutes":      TierA,
	"upper back":  TierA,
	"lats":        TierA,
	"quads":       TierB,
	"hamstrings":  TierB,
	"hip flexors": TierB,
	"adductors":   TierB,
	"shoulders":   TierB,
	"lower back":  TierB,
	"forearms":    TierB,
	"chest":       TierC,
	"biceps":      TierC,
	"triceps":     TierC,
	"tendons":     TierC,
}

// NormalizeMuscleName canonicalizes a muscle name for tier lookup.
func NormalizeMuscleName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TierFor returns the sensitivity tier for a muscle name, falling back to
// DefaultTier for unknown muscles. The ok result reports whether the muscle
// had an explicit entry.
func TierFor(name string) (Tier, bool) {
	t, ok := muscleTiers[NormalizeMuscleName(name)]
	if !ok {
		return DefaultTier, false
	}
	return t, true
}

// TierOf resolves a muscle group's tier: an explicit A/B/C value on the row
// wins, then the static name table, then DefaultTier.
func TierOf(m models.MuscleGroup) (Tier, bool) {
	switch Tier(strings.ToUpper(strings.TrimSpace(m.Tier))) {
	case TierA:
		return TierA, true
	case TierB:
		return TierB, true
	case TierC:
		return TierC, true
	}
	return TierFor(m.Name)
}

// threshold is one rung of a classification ladder. A value below the
// cutoff (at or below when inclusive) lands in the rung's category; values
// past every rung are red.
type threshold struct {
	cutoff    float64
	inclusive bool
	category  Category
}

// Per-tier ACWR ladders. Kept as data rather than branching so the
// classification is auditable next to the tier table.
var acwrThresholds = map[Tier][]threshold{
	TierA: {
		{cutoff: 0.7, category: CategoryBlue},
		{cutoff: 1.4, inclusive: true, category: CategoryGreen},
		{cutoff: 1.8, inclusive: true, category: CategoryYellow},
		{cutoff: 2.3, inclusive: true, category: CategoryOrange},
	},
	TierB: {
		{cutoff: 0.8, category: CategoryBlue},
		{cutoff: 1.3, inclusive: true, category: CategoryGreen},
		{cutoff: 1.5, inclusive: true, category: CategoryYellow},
		{cutoff: 1.8, inclusive: true, category: CategoryOrange},
	},
	TierC: {
		{cutoff: 0.9, category: CategoryBlue},
		{cutoff: 1.2, inclusive: true, category: CategoryGreen},
		{cutoff: 1.4, inclusive: true, category: CategoryYellow},
		{cutoff: 1.6, inclusive: true, category: CategoryOrange},
	},
}

// The linear fatigue model uses one absolute ladder for every tier.
var fatigueThresholds = []threshold{
	{cutoff: 45, category: CategoryBlue},
	{cutoff: 135, inclusive: true, category: CategoryGreen},
	{cutoff: 225, inclusive: true, category: CategoryYellow},
	{cutoff: 315, inclusive: true, category: CategoryOrange},
}

func classify(ladder []threshold, v float64) Category {
	if v <= 0 {
		return CategoryWhite
	}
	for _, t := range ladder {
		if t.inclusive && v <= t.cutoff {
			return t.category
		}
		if !t.inclusive && v < t.cutoff {
			return t.category
		}
	}
	return CategoryRed
}
