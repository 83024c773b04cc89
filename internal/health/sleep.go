package health

import (
	"sort"
	"time"
)

// Default quality and efficiency values applied when a sleep record does not
// carry its own.
const (
	DefaultSleepQuality    = 70.0
	DefaultSleepEfficiency = 85.0
)

// SleepDebtMetricName is the reserved metric name used when sleep debt is
// folded into the metric store.
const SleepDebtMetricName = "Sleep Debt"

// DefaultMaxAcceptableDebt is the upper threshold for the sleep-debt metric.
// It sits just under one hour so a debt of exactly 1.0 is flagged even when
// the accumulated sum lands a rounding error below it. Do not round this up.
const DefaultMaxAcceptableDebt = 0.99

// SleepRecord is one night of sleep. Quality and Efficiency are 0-100.
type SleepRecord struct {
	Date          time.Time `json:"date"`
	DurationHours float64   `json:"duration_hours"`
	Quality       float64   `json:"quality_score"`
	Efficiency    float64   `json:"efficiency"`
}

// AddSleepRecord appends a record and restores ascending date order.
// Duplicate dates are allowed; both nights count toward debt.
func (m *Model) AddSleepRecord(date time.Time, durationHours, quality, efficiency float64) {
	m.sleep = append(m.sleep, SleepRecord{
		Date:          date,
		DurationHours: durationHours,
		Quality:       quality,
		Efficiency:    efficiency,
	})
	sort.SliceStable(m.sleep, func(i, j int) bool {
		return m.sleep[i].Date.Before(m.sleep[j].Date)
	})
}

// SleepRecords returns a copy of the ledger in ascending date order.
func (m *Model) SleepRecords() []SleepRecord {
	out := make([]SleepRecord, len(m.sleep))
	copy(out, m.sleep)
	return out
}

// SleepRecordsIn returns the records whose dates fall within [start, end].
func (m *Model) SleepRecordsIn(start, end time.Time) []SleepRecord {
	var out []SleepRecord
	for _, rec := range m.sleep {
		if inRange(rec.Date, start, end) {
			out = append(out, rec)
		}
	}
	return out
}

// SleepDebt sums the positive nightly deficits against the target over the
// inclusive date range. Nights at or above target contribute zero, never a
// credit. Returns 0.0 when no records fall in range.
func (m *Model) SleepDebt(start, end time.Time) float64 {
	total := 0.0
	for _, rec := range m.sleep {
		if !inRange(rec.Date, start, end) {
			continue
		}
		if deficit := m.TargetSleepHours - rec.DurationHours; deficit > 0 {
			total += deficit
		}
	}
	return total
}

// SleepDebtMetric wraps the cumulative debt for the range as a Metric in the
// Sleep category, flagged when the debt exceeds maxAcceptableDebt hours.
func (m *Model) SleepDebtMetric(start, end time.Time, maxAcceptableDebt float64) Metric {
	return NewMetric(SleepDebtMetricName, m.SleepDebt(start, end), 0.0, maxAcceptableDebt, "Sleep")
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
