package load

// Ratio computes the Acute:Chronic Workload Ratio. A muscle with no chronic
// history reads as neutral 1.0 rather than infinity, so untrained muscles
// never produce spurious extreme readings.
func Ratio(acute, chronicAvg float64) float64 {
	if chronicAvg == 0 {
		return 1.0
	}
	return acute / chronicAvg
}

// ClassifyACWR maps an ACWR reading to its color bucket using the muscle
// tier's ladder.
func ClassifyACWR(tier Tier, ratio float64) Category {
	ladder, ok := acwrThresholds[tier]
	if !ok {
		ladder = acwrThresholds[DefaultTier]
	}
	return classify(ladder, ratio)
}
