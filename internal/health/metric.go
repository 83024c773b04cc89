// Package health implements the in-memory evaluation engine behind wearsum
// reports: threshold flagging of metrics, the sleep ledger with cumulative
// debt accumulation, and the category-weighted composite score.
package health

import "errors"

// ErrInvalidRange is returned in strict mode when a metric's lower threshold
// exceeds its upper threshold.
var ErrInvalidRange = errors.New("lower threshold exceeds upper threshold")

// Metric is a single health metric with its acceptable range. Flagged is
// derived from the other fields at construction time via Outside; metrics
// are stored and snapshotted by value, so a stored flag can never go stale.
type Metric struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Lower    float64 `json:"lower_threshold"`
	Upper    float64 `json:"upper_threshold"`
	Category string  `json:"category"`
	Flagged  bool    `json:"flagged"`
}

// Outside reports whether value falls outside [lower, upper]. The comparison
// is taken literally: if lower > upper every value is outside, which is the
// caller's responsibility to avoid (or enable strict mode to reject).
func Outside(value, lower, upper float64) bool {
	return value < lower || value > upper
}

// NewMetric constructs a Metric with its flag evaluated.
func NewMetric(name string, value, lower, upper float64, category string) Metric {
	return Metric{
		Name:     name,
		Value:    value,
		Lower:    lower,
		Upper:    upper,
		Category: category,
		Flagged:  Outside(value, lower, upper),
	}
}
