package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("patient: p\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestIsDataFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"patient.yaml", true},
		{"patient.yml", true},
		{"PATIENT.YAML", true},
		{"patient.json", false},
		{"patient", false},
	}
	for _, tt := range tests {
		if got := IsDataFile(tt.path); got != tt.want {
			t.Errorf("IsDataFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestResolvePlainFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.yaml")
	writeFile(t, file)

	got, err := Resolve([]string{file})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 || got[0] != file {
		t.Errorf("Resolve() = %v, want [%s]", got, file)
	}
}

func TestResolveDirectoryWalksForDataFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.yaml"))
	writeFile(t, filepath.Join(dir, "nested", "b.yml"))
	writeFile(t, filepath.Join(dir, "nested", "notes.txt"))

	got, err := Resolve([]string{dir})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Resolve() = %v, want the two data files", got)
	}
}

func TestResolveGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one", "a.yaml"))
	writeFile(t, filepath.Join(dir, "two", "deep", "b.yaml"))

	got, err := Resolve([]string{filepath.Join(dir, "**", "*.yaml")})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Resolve() = %v, want 2 matches", got)
	}
}

func TestResolveDeduplicates(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.yaml")
	writeFile(t, file)

	got, err := Resolve([]string{file, file, filepath.Join(dir, "*.yaml")})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Resolve() = %v, want a single de-duplicated entry", got)
	}
}

func TestResolveMissingPath(t *testing.T) {
	if _, err := Resolve([]string{filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Error("Resolve() on a missing path returned nil error")
	}
}
