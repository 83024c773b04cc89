package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONFormatter_Format(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	f := NewJSONFormatter(true, out)

	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading rendered report: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc["patient_id"] != "example@email.com" {
		t.Errorf("patient_id = %v", doc["patient_id"])
	}
	if doc["total_flagged"] != float64(2) {
		t.Errorf("total_flagged = %v", doc["total_flagged"])
	}
	if doc["health_score"] != 48.25 {
		t.Errorf("health_score = %v", doc["health_score"])
	}

	debt, ok := doc["sleep_debt"].(map[string]any)
	if !ok {
		t.Fatal("sleep_debt missing")
	}
	if debt["flagged"] != true || debt["target"] != 8.0 {
		t.Errorf("sleep_debt = %v", debt)
	}

	groups, ok := doc["flagged_by_category"].([]any)
	if !ok || len(groups) != 2 {
		t.Fatalf("flagged_by_category = %v", doc["flagged_by_category"])
	}
	first, _ := groups[0].(map[string]any)
	if first["category"] != "Sleep" {
		t.Errorf("first category = %v, want Sleep (first-seen order)", first["category"])
	}
}
