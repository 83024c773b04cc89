// Package report assembles immutable report snapshots from a health.Model.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dotcommander/wearsum/internal/health"
)

// ErrInvalidPeriod is returned in strict mode when a period's end date
// precedes its start date.
var ErrInvalidPeriod = errors.New("period end precedes start")

// Period is an inclusive date range with its day count.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

// CategoryGroup holds the flagged metrics of one category, in insertion
// order. Groups appear in the order their category was first seen.
type CategoryGroup struct {
	Category string          `json:"category"`
	Metrics  []health.Metric `json:"metrics"`
}

// SleepDebtSummary carries the sleep-debt figure into rendering.
type SleepDebtSummary struct {
	Value   float64 `json:"value"`
	Flagged bool    `json:"flagged"`
	Target  float64 `json:"target"`
}

// Report is an immutable snapshot built once per generation call. All metric
// data is copied by value; mutating the model afterwards does not alter a
// previously generated report.
type Report struct {
	ID           string           `json:"id"`
	PatientID    string           `json:"patient_id"`
	ReportDate   time.Time        `json:"report_date"`
	Period       Period           `json:"period"`
	Reference    *Period          `json:"reference_period,omitempty"`
	TotalFlagged int              `json:"total_flagged"`
	Categories   []CategoryGroup  `json:"flagged_by_category"`
	HealthScore  float64          `json:"health_score"`
	SleepDebt    SleepDebtSummary `json:"sleep_debt"`
}

// FlaggedByCategory returns the category groups as a map view.
func (r *Report) FlaggedByCategory() map[string][]health.Metric {
	out := make(map[string][]health.Metric, len(r.Categories))
	for _, g := range r.Categories {
		out[g.Category] = g.Metrics
	}
	return out
}

// Assembler generates report snapshots from a single model. The model is
// mutated during generation (the sleep-debt metric is upserted into the
// store), so an Assembler must not be shared across concurrent callers.
type Assembler struct {
	Model *health.Model
}

// NewAssembler returns an Assembler over the given model.
func NewAssembler(m *health.Model) *Assembler {
	return &Assembler{Model: m}
}

// Generate builds a report for the period. The sleep-debt metric is folded
// into the metric store first (replacing any previous one by name), so it
// participates in both the flagged breakdown and the composite score.
// refStart and refEnd are optional; the reference period is present only
// when both are supplied.
func (a *Assembler) Generate(patientID string, reportDate, periodStart, periodEnd time.Time, refStart, refEnd *time.Time) (*Report, error) {
	if a.Model.Strict() {
		if periodEnd.Before(periodStart) {
			return nil, fmt.Errorf("report period: %w", ErrInvalidPeriod)
		}
		if refStart != nil && refEnd != nil && refEnd.Before(*refStart) {
			return nil, fmt.Errorf("reference period: %w", ErrInvalidPeriod)
		}
	}

	debtMetric := a.Model.SleepDebtMetric(periodStart, periodEnd, health.DefaultMaxAcceptableDebt)
	a.Model.UpsertMetric(debtMetric)

	grouped, order := a.Model.FlaggedByCategory()
	categories := make([]CategoryGroup, 0, len(order))
	for _, cat := range order {
		metrics := make([]health.Metric, len(grouped[cat]))
		copy(metrics, grouped[cat])
		categories = append(categories, CategoryGroup{Category: cat, Metrics: metrics})
	}

	var reference *Period
	if refStart != nil && refEnd != nil {
		reference = &Period{
			Start: *refStart,
			End:   *refEnd,
			Days:  inclusiveDays(*refStart, *refEnd),
		}
	}

	return &Report{
		ID:         uuid.NewString(),
		PatientID:  patientID,
		ReportDate: reportDate,
		Period: Period{
			Start: periodStart,
			End:   periodEnd,
			Days:  inclusiveDays(periodStart, periodEnd),
		},
		Reference:    reference,
		TotalFlagged: a.Model.TotalFlagged(),
		Categories:   categories,
		HealthScore:  a.Model.HealthScore(),
		SleepDebt: SleepDebtSummary{
			Value:   debtMetric.Value,
			Flagged: debtMetric.Flagged,
			Target:  a.Model.TargetSleepHours,
		},
	}, nil
}

// inclusiveDays counts calendar days in [start, end], both ends included.
// A reversed range yields a non-positive count, preserved as-is outside
// strict mode.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
