package pairs

// Window policy shared by the analyzer and the correlation service.
// These caps are fixed policy.
const (
	minHistory              = 30
	maxStabilityWindow      = 30
	correlationZScoreWindow = 20
)

// MinDataPoints max(lookback, 30)
func MinDataPoints(lookbackWindow int) int {
	if lookbackWindow > minHistory {
		return lookbackWindow
	}
	return minHistory
}

// EffectiveZScoreWindow min(requested, floor(lookback/3))
func EffectiveZScoreWindow(requested, lookbackWindow int) int {
	capped := lookbackWindow / 3
	if requested < capped {
		return requested
	}
	return capped
}

// CorrelationZScoreWindow single-pair z-score window: min(20, floor(lookback/3))
func CorrelationZScoreWindow(lookbackWindow int) int {
	return EffectiveZScoreWindow(correlationZScoreWindow, lookbackWindow)
}

// StabilityWindow min(30, floor(lookback/2))
func StabilityWindow(lookbackWindow int) int {
	half := lookbackWindow / 2
	if half < maxStabilityWindow {
		return half
	}
	return maxStabilityWindow
}
