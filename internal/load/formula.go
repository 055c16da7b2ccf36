package load

import "github.com/meltforce/hybrid/internal/models"

// Modifier factors applied only when the engine is configured to weigh
// coefficient metadata. Otherwise is_unilateral/has_emphasis are
// informational and do not change the score.
const (
	unilateralFactor = 0.75
	emphasisFactor   = 1.2
)

// IntensityFactor maps RPE 1-10 linearly onto [0.6, 1.4].
// Callers validate RPE before it reaches the load pipeline; out-of-range
// values are a boundary error, not corrected here.
func IntensityFactor(rpe float64) float64 {
	return 0.6 + (rpe-1)/9*0.8
}

// Engine converts one session into per-muscle load contributions using the
// sport→muscle coefficient table. It is a pure function of its inputs and
// holds no mutable state.
type Engine struct {
	bySport map[int][]models.SportMuscleCoefficient

	// WeighModifiers applies the unilateral (0.75) and emphasis (1.2)
	// factors from coefficient metadata. Off by default.
	WeighModifiers bool
}

// NewEngine builds an engine from the full coefficient table.
func NewEngine(coeffs []models.SportMuscleCoefficient) *Engine {
	bySport := make(map[int][]models.SportMuscleCoefficient)
	for _, c := range coeffs {
		bySport[c.SportID] = append(bySport[c.SportID], c)
	}
	return &Engine{bySport: bySport}
}

// Contributions returns the incremental load each muscle receives from one
// session, keyed by muscle ID. Sports with no coefficient rows contribute
// nothing; that is valid data, not an error.
func (e *Engine) Contributions(s models.Session) map[int]float64 {
	coeffs := e.bySport[s.SportID]
	if len(coeffs) == 0 {
		return nil
	}

	intensity := IntensityFactor(float64(s.IntensityRPE))
	out := make(map[int]float64, len(coeffs))
	for _, c := range coeffs {
		score := float64(s.DurationMinutes) * c.BaseLoadPerMinute * intensity
		if e.WeighModifiers {
			if c.IsUnilateral {
				score *= unilateralFactor
			}
			if c.HasEmphasis {
				score *= emphasisFactor
			}
		}
		out[c.MuscleID] += score
	}
	return out
}
