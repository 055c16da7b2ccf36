package load

// ClassifyFatigue maps a raw weekly load score to its color bucket. Unlike
// ACWR the fatigue ladder is the same for every tier.
func ClassifyFatigue(score float64) Category {
	return classify(fatigueThresholds, score)
}
