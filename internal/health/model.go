package health

// DefaultTargetSleepHours is the nightly sleep target used when the caller
// does not supply one.
const DefaultTargetSleepHours = 8.0

// Model owns the metric store and the sleep ledger for one report-generation
// flow. It is not safe for concurrent use; each report flow must own its
// Model exclusively.
type Model struct {
	TargetSleepHours float64

	metrics []Metric
	sleep   []SleepRecord
	strict  bool
}

// NewModel returns a Model with the given nightly sleep target. A target of
// zero or less falls back to DefaultTargetSleepHours.
func NewModel(targetSleepHours float64) *Model {
	if targetSleepHours <= 0 {
		targetSleepHours = DefaultTargetSleepHours
	}
	return &Model{TargetSleepHours: targetSleepHours}
}

// SetStrict toggles strict validation. When enabled, AddMetric rejects
// inverted threshold ranges instead of evaluating them literally.
func (m *Model) SetStrict(strict bool) { m.strict = strict }

// Strict reports whether strict validation is enabled.
func (m *Model) Strict() bool { return m.strict }

// AddMetric constructs a metric, evaluates its flag, and appends it to the
// store. The returned pointer refers to the stored element and stays valid
// until the next mutation of the store.
func (m *Model) AddMetric(name string, value, lower, upper float64, category string) (*Metric, error) {
	if m.strict && lower > upper {
		return nil, ErrInvalidRange
	}
	m.metrics = append(m.metrics, NewMetric(name, value, lower, upper, category))
	return &m.metrics[len(m.metrics)-1], nil
}

// UpsertMetric replaces the first stored metric with the same name, keeping
// its position so category grouping order is stable across regeneration.
// If no metric with that name exists, the metric is appended.
func (m *Model) UpsertMetric(metric Metric) {
	for i := range m.metrics {
		if m.metrics[i].Name == metric.Name {
			m.metrics[i] = metric
			return
		}
	}
	m.metrics = append(m.metrics, metric)
}

// FlaggedByCategory returns all flagged metrics grouped by category, along
// with the categories in first-seen order. A category appears only when it
// has at least one flagged metric; within a category, metrics keep their
// insertion order.
func (m *Model) FlaggedByCategory() (map[string][]Metric, []string) {
	grouped := make(map[string][]Metric)
	var order []string
	for _, metric := range m.metrics {
		if !metric.Flagged {
			continue
		}
		if _, seen := grouped[metric.Category]; !seen {
			order = append(order, metric.Category)
		}
		grouped[metric.Category] = append(grouped[metric.Category], metric)
	}
	return grouped, order
}

// TotalFlagged counts flagged metrics, recomputed on every call.
func (m *Model) TotalFlagged() int {
	n := 0
	for _, metric := range m.metrics {
		if metric.Flagged {
			n++
		}
	}
	return n
}

// Metrics returns a copy of the metric store in insertion order.
func (m *Model) Metrics() []Metric {
	out := make([]Metric, len(m.metrics))
	copy(out, m.metrics)
	return out
}

// Len returns the number of stored metrics.
func (m *Model) Len() int { return len(m.metrics) }

// Reset clears all metrics and sleep records. Intended for reuse between
// unrelated evaluations, not part of the normal report flow.
func (m *Model) Reset() {
	m.metrics = nil
	m.sleep = nil
}
