package progression

// Params defines the tunable thresholds of the progression engine.
type Params struct {
	// AccuracyIncreaseThreshold raises difficulty when accuracy reaches it.
	AccuracyIncreaseThreshold float64
	// AccuracyDecreaseThreshold lowers difficulty when accuracy falls below it.
	AccuracyDecreaseThreshold float64
	// StreakForIncrease raises difficulty when the current streak reaches it.
	StreakForIncrease int
	// MinAttemptsForAdjustment gates any difficulty change until enough data
	// has accumulated.
	MinAttemptsForAdjustment int
	// MinAttemptsForRecommendation gates accuracy-based topic recommendation.
	MinAttemptsForRecommendation int
}

// NewDefaultParams returns the standard thresholds: adjust after 5 attempts,
// raise at 80% accuracy or a streak of 5, lower below 50%, recommend by
// accuracy after 3 attempts.
func NewDefaultParams() *Params {
	return &Params{
		AccuracyIncreaseThreshold:    80,
		AccuracyDecreaseThreshold:    50,
		StreakForIncrease:            5,
		MinAttemptsForAdjustment:     5,
		MinAttemptsForRecommendation: 3,
	}
}
