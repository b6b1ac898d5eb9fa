package scoring

import "github.com/dshills/privacyscore/internal/schema"

// MaxScore is the upper bound of every score.
const MaxScore = 100

// weights holds the points each enabled feature contributes.
var weights = map[schema.Feature]int{
	schema.FeatureZK:         30,
	schema.FeatureFHE:        30,
	schema.FeatureOpenSource: 15,
	schema.FeatureAudited:    15,
	schema.FeatureSoundness:  10,
}

// Weight returns the points feature f contributes when enabled.
func Weight(f schema.Feature) int {
	return weights[f]
}

// Score computes the deterministic privacy-strength score for p.
// Start: 0, +30 zk, +30 fhe, +15 open source, +15 audited, +10 soundness,
// clamped at MaxScore.
func Score(p schema.Profile) int {
	score := 0
	for _, f := range schema.Features {
		if p.Has(f) {
			score += weights[f]
		}
	}
	return clamp(score)
}

// clamp caps score at MaxScore. The current weights sum to exactly
// MaxScore, so this only matters if they change.
func clamp(score int) int {
	if score > MaxScore {
		return MaxScore
	}
	return score
}
