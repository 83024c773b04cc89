package report

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/dotcommander/wearsum/internal/health"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

// buildModel mirrors the canonical demo data set: seven short nights plus a
// spread of metrics across all three weighted categories.
func buildModel(t *testing.T) *health.Model {
	t.Helper()
	m := health.NewModel(8.0)

	day := mustDate(t, "2026-01-01")
	for i := 0; i < 7; i++ {
		m.AddSleepRecord(day.AddDate(0, 0, i), 7.857, 70.0+float64(i%2)*10, 85.0)
	}

	m.AddMetric("Resting Heart Rate", 72, 60, 100, "Cardiovascular")
	m.AddMetric("Steps", 8500, 10000, 20000, "Activity")
	m.AddMetric("Sleep Duration", 6.8, 7.0, 9.0, "Sleep")
	return m
}

func TestGenerate(t *testing.T) {
	m := buildModel(t)
	a := NewAssembler(m)

	refStart := mustDate(t, "2025-12-02")
	refEnd := mustDate(t, "2026-01-01")
	rep, err := a.Generate("example@email.com", mustDate(t, "2026-01-17"),
		mustDate(t, "2026-01-01"), mustDate(t, "2026-01-07"), &refStart, &refEnd)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if rep.PatientID != "example@email.com" {
		t.Errorf("PatientID = %q", rep.PatientID)
	}
	if rep.ID == "" {
		t.Error("report ID is empty")
	}
	if rep.Period.Days != 7 {
		t.Errorf("Period.Days = %d, want 7 (inclusive)", rep.Period.Days)
	}
	if rep.Reference == nil || rep.Reference.Days != 31 {
		t.Errorf("Reference = %+v, want 31 inclusive days", rep.Reference)
	}

	// Sleep debt participates in the flag breakdown: Sleep Duration,
	// Steps, and the folded-in Sleep Debt metric are flagged.
	if rep.TotalFlagged != 3 {
		t.Errorf("TotalFlagged = %d, want 3", rep.TotalFlagged)
	}
	if !rep.SleepDebt.Flagged {
		t.Error("~1.0h sleep debt should be flagged")
	}
	if math.Abs(rep.SleepDebt.Value-1.0) > 0.01 {
		t.Errorf("SleepDebt.Value = %v, want ~1.0", rep.SleepDebt.Value)
	}
	if rep.SleepDebt.Target != 8.0 {
		t.Errorf("SleepDebt.Target = %v, want 8.0", rep.SleepDebt.Target)
	}

	sleepGroup, ok := rep.FlaggedByCategory()["Sleep"]
	if !ok {
		t.Fatal("Sleep category missing from flag breakdown")
	}
	found := false
	for _, metric := range sleepGroup {
		if metric.Name == health.SleepDebtMetricName {
			found = true
		}
	}
	if !found {
		t.Error("Sleep Debt metric missing from the Sleep group")
	}
}

func TestGenerateWithoutReferencePeriod(t *testing.T) {
	m := buildModel(t)
	a := NewAssembler(m)

	rep, err := a.Generate("p", mustDate(t, "2026-01-17"),
		mustDate(t, "2026-01-01"), mustDate(t, "2026-01-07"), nil, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if rep.Reference != nil {
		t.Errorf("Reference = %+v, want absent", rep.Reference)
	}
}

func TestGenerateTwiceKeepsSingleSleepDebtMetric(t *testing.T) {
	m := buildModel(t)
	a := NewAssembler(m)

	start, end := mustDate(t, "2026-01-01"), mustDate(t, "2026-01-07")
	if _, err := a.Generate("p", end, start, end, nil, nil); err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}

	// Narrow the period; the debt metric must be replaced, not duplicated.
	rep, err := a.Generate("p", end, start, mustDate(t, "2026-01-03"), nil, nil)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}

	count := 0
	var value float64
	for _, metric := range m.Metrics() {
		if metric.Name == health.SleepDebtMetricName {
			count++
			value = metric.Value
		}
	}
	if count != 1 {
		t.Fatalf("store holds %d Sleep Debt metrics, want 1", count)
	}
	if math.Abs(value-rep.SleepDebt.Value) > 1e-9 {
		t.Errorf("stored debt %v differs from report %v", value, rep.SleepDebt.Value)
	}
	if math.Abs(value-3*0.143) > 0.01 {
		t.Errorf("debt = %v, want ~0.43 over the narrowed 3-day period", value)
	}
}

func TestGenerateScoreIncludesSleepDebt(t *testing.T) {
	m := health.NewModel(8.0)
	day := mustDate(t, "2026-01-01")
	for i := 0; i < 7; i++ {
		m.AddSleepRecord(day.AddDate(0, 0, i), 4.0, 70, 85) // heavy debt
	}
	m.AddMetric("Steps", 15000, 10000, 20000, "Activity")

	a := NewAssembler(m)
	rep, err := a.Generate("p", day, day, mustDate(t, "2026-01-07"), nil, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Steps alone scores 0.5*0.4; the flagged debt metric adds 0.7*0.3
	// (28h debt normalizes above the 0.99 range, clamps to 1, collapses).
	want := ((0.5*0.4 + 0.7*0.3) / 0.7) * 100.0
	if math.Abs(rep.HealthScore-want) > 1e-9 {
		t.Errorf("HealthScore = %v, want %v (sleep debt must participate)", rep.HealthScore, want)
	}
}

func TestGenerateSnapshotIsImmutable(t *testing.T) {
	m := buildModel(t)
	a := NewAssembler(m)

	start, end := mustDate(t, "2026-01-01"), mustDate(t, "2026-01-07")
	rep, err := a.Generate("p", end, start, end, nil, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	before := rep.TotalFlagged
	groupsBefore := len(rep.Categories)

	// Mutating the model afterwards must not alter the snapshot.
	m.AddMetric("Calories Burned", 500, 2000, 3000, "Activity")
	m.UpsertMetric(health.NewMetric(health.SleepDebtMetricName, 99, 0, 0.99, "Sleep"))

	if rep.TotalFlagged != before {
		t.Errorf("TotalFlagged changed from %d to %d after model mutation", before, rep.TotalFlagged)
	}
	if len(rep.Categories) != groupsBefore {
		t.Errorf("Categories changed after model mutation")
	}
	for _, g := range rep.Categories {
		for _, metric := range g.Metrics {
			if metric.Name == health.SleepDebtMetricName && metric.Value == 99 {
				t.Error("snapshot metric aliased model storage")
			}
		}
	}
}

func TestGenerateStrictRejectsReversedPeriod(t *testing.T) {
	m := buildModel(t)
	m.SetStrict(true)
	a := NewAssembler(m)

	_, err := a.Generate("p", mustDate(t, "2026-01-17"),
		mustDate(t, "2026-01-07"), mustDate(t, "2026-01-01"), nil, nil)
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("Generate() error = %v, want ErrInvalidPeriod", err)
	}
}

func TestGeneratePermissiveAllowsReversedPeriod(t *testing.T) {
	m := buildModel(t)
	a := NewAssembler(m)

	rep, err := a.Generate("p", mustDate(t, "2026-01-17"),
		mustDate(t, "2026-01-07"), mustDate(t, "2026-01-01"), nil, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if rep.Period.Days >= 0 {
		t.Errorf("reversed period Days = %d, want negative (literal arithmetic)", rep.Period.Days)
	}
	if rep.SleepDebt.Value != 0.0 {
		t.Errorf("reversed period debt = %v, want 0.0 (empty range)", rep.SleepDebt.Value)
	}
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  int
	}{
		{"2026-01-01", "2026-01-01", 1},
		{"2026-01-01", "2026-01-07", 7},
		{"2025-12-02", "2026-01-01", 31},
		{"2026-01-07", "2026-01-01", -5},
	}
	for _, tt := range tests {
		got := inclusiveDays(mustDate(t, tt.start), mustDate(t, tt.end))
		if got != tt.want {
			t.Errorf("inclusiveDays(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}
