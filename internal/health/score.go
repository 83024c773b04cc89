package health

// Category weights for the composite score. Constant configuration data;
// never mutated at runtime. Categories not listed here weigh 0.1.
var categoryWeights = map[string]float64{
	"Sleep":          0.3,
	"Cardiovascular": 0.3,
	"Activity":       0.4,
}

// DefaultCategoryWeight applies to categories absent from the weight table.
const DefaultCategoryWeight = 0.1

// CategoryWeight returns the scoring weight for a category.
func CategoryWeight(category string) float64 {
	if w, ok := categoryWeights[category]; ok {
		return w
	}
	return DefaultCategoryWeight
}

// MetricScore returns the normalized 0-1 contribution of a single metric.
// Unflagged metrics in a proper range score their clamped position within
// the range. Flagged metrics collapse to a coarse 0.3 or 0.7 regardless of
// how far outside the range they sit. A degenerate range (upper <= lower)
// scores 1.0 unflagged, 0.5 flagged.
func MetricScore(metric Metric) float64 {
	if metric.Upper > metric.Lower {
		normalized := (metric.Value - metric.Lower) / (metric.Upper - metric.Lower)
		if normalized < 0 {
			normalized = 0
		} else if normalized > 1 {
			normalized = 1
		}
		if metric.Flagged {
			if normalized < 0.5 {
				return 0.3
			}
			return 0.7
		}
		return normalized
	}
	if metric.Flagged {
		return 0.5
	}
	return 1.0
}

// HealthScore derives the 0-100 composite score over all stored metrics: a
// category-weighted average of per-metric scores. An empty store scores a
// vacuous 100.0.
func (m *Model) HealthScore() float64 {
	if len(m.metrics) == 0 {
		return 100.0
	}

	weightedSum := 0.0
	weightTotal := 0.0
	for _, metric := range m.metrics {
		w := CategoryWeight(metric.Category)
		weightedSum += MetricScore(metric) * w
		weightTotal += w
	}

	// Unreachable once a metric exists, since every weight is positive.
	if weightTotal == 0 {
		return 100.0
	}
	return (weightedSum / weightTotal) * 100.0
}
