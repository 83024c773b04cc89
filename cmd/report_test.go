package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func resetDateFlags() {
	periodStart, periodEnd = "", ""
	referenceStart, referenceEnd = "", ""
	reportDate = ""
}

func TestResolveDatesDefaults(t *testing.T) {
	resetDateFlags()
	t.Cleanup(resetDateFlags)

	dates, err := resolveDates()
	if err != nil {
		t.Fatalf("resolveDates() error = %v", err)
	}
	if dates.refStart != nil || dates.refEnd != nil {
		t.Error("reference period should be absent by default")
	}
	if got := dates.periodEnd.Sub(dates.periodStart); got != 6*24*time.Hour {
		t.Errorf("default period spans %v, want 6 days (7 inclusive)", got)
	}
}

func TestResolveDatesExplicit(t *testing.T) {
	resetDateFlags()
	t.Cleanup(resetDateFlags)

	periodStart, periodEnd = "2026-01-01", "2026-01-07"
	referenceStart, referenceEnd = "2025-12-02", "2026-01-01"
	reportDate = "2026-01-17"

	dates, err := resolveDates()
	if err != nil {
		t.Fatalf("resolveDates() error = %v", err)
	}
	if dates.periodStart.Format(dateLayout) != "2026-01-01" {
		t.Errorf("periodStart = %v", dates.periodStart)
	}
	if dates.refStart == nil || dates.refEnd == nil {
		t.Fatal("reference period missing")
	}
	if dates.report.Format(dateLayout) != "2026-01-17" {
		t.Errorf("report date = %v", dates.report)
	}
}

func TestResolveDatesRejectsHalfReference(t *testing.T) {
	resetDateFlags()
	t.Cleanup(resetDateFlags)

	referenceStart = "2025-12-02"
	if _, err := resolveDates(); err == nil {
		t.Error("resolveDates() accepted a reference start without an end")
	}
}

func TestResolveDatesRejectsMalformed(t *testing.T) {
	resetDateFlags()
	t.Cleanup(resetDateFlags)

	periodStart = "01/02/2026"
	if _, err := resolveDates(); err == nil {
		t.Error("resolveDates() accepted a malformed date")
	}
}

func TestRunReportNoArgs(t *testing.T) {
	if err := runReport(nil); err == nil {
		t.Error("runReport() with no data files returned nil error")
	}
}

func TestRunReportJSONEndToEnd(t *testing.T) {
	resetDateFlags()
	t.Cleanup(resetDateFlags)

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "patient.yaml")
	doc := `patient: example@email.com
metrics:
  - name: Steps
    value: 8500
    lower: 10000
    upper: 20000
    category: Activity
sleep:
  - date: 2026-01-01
    duration_hours: 6.0
`
	if err := os.WriteFile(dataFile, []byte(doc), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	outFile := filepath.Join(dir, "report.json")
	viper.Set("format", "json")
	viper.Set("output", outFile)
	t.Cleanup(func() {
		viper.Set("format", "console")
		viper.Set("output", "")
	})

	periodStart, periodEnd = "2026-01-01", "2026-01-07"
	reportDate = "2026-01-17"

	if err := runReport([]string{dataFile}); err != nil {
		t.Fatalf("runReport() error = %v", err)
	}

	raw, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	var rep map[string]any
	if err := json.Unmarshal(raw, &rep); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if rep["patient_id"] != "example@email.com" {
		t.Errorf("patient_id = %v", rep["patient_id"])
	}
	if rep["total_flagged"] != float64(2) {
		t.Errorf("total_flagged = %v, want Steps plus Sleep Debt", rep["total_flagged"])
	}
}
