package recommendation

// Level is the absolute performance tier used by the all-sections table.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelFair      Level = "fair"
	LevelPoor      Level = "poor"
)

// WeaknessTier is the tier used by the weaknesses-only table. It has no
// excellent tier: weakness advice only fires for below-average sections.
type WeaknessTier string

const (
	TierSignificant WeaknessTier = "significant"
	TierDeveloping  WeaknessTier = "developing"
	TierClose       WeaknessTier = "close"
)

const (
	AboveAverage = "above average"
	BelowAverage = "below average"
	AtAverage    = "at the class average"

	relationMargin = 5.0
)

// PerformanceLevel buckets a score percentage.
func PerformanceLevel(score float64) Level {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelPoor
	}
}

// RelationToAverage describes a diff from the cohort average.
func RelationToAverage(diff float64) string {
	switch {
	case diff > relationMargin:
		return AboveAverage
	case diff < -relationMargin:
		return BelowAverage
	default:
		return AtAverage
	}
}

// WeaknessTierFor buckets a weak section's score.
func WeaknessTierFor(score float64) WeaknessTier {
	switch {
	case score < 40:
		return TierSignificant
	case score < 60:
		return TierDeveloping
	default:
		return TierClose
	}
}
