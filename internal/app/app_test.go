package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/estate-finder/internal/logging"
)

func TestLoadDatasetMissingFileYieldsEmpty(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	t.Cleanup(func() { logging.Configure("") })

	ds, err := LoadDataset(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("expected missing file to be tolerated, got %v", err)
	}
	if ds.Len() != 0 {
		t.Fatalf("expected empty dataset, got %d districts", ds.Len())
	}
}

func TestLoadDatasetMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{\"A\": ["), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadDataset(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewModelUsesConfiguredDistrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	contents := "A:\n  - name: P1\n    estates: [Lakeview]\nB:\n  - name: Q1\n    estates: [Hilltop]\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewModel(Config{District: "B", Width: 80, Height: 24}, ds)
	if got := m.Controller().State().District; got != "B" {
		t.Fatalf("expected district B, got %q", got)
	}
	m = NewModel(Config{District: "罗湖区"}, ds)
	if got := m.Controller().State().District; got != "A" {
		t.Fatalf("expected fallback to first district, got %q", got)
	}
}

func TestDataUpdatedUsesFileModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	stamp := time.Date(2023, time.November, 1, 12, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if got := DataUpdated(path); got != "data updated: 2023-11-01" {
		t.Fatalf("unexpected subtitle %q", got)
	}
	if got := DataUpdated(filepath.Join(t.TempDir(), "absent.json")); got != "" {
		t.Fatalf("expected no subtitle for a missing file, got %q", got)
	}
	if got := DataUpdated(""); got != "" {
		t.Fatalf("expected no subtitle without a path, got %q", got)
	}
}

func TestNewModelShowsDataUpdatedAndSeedsSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"A": [{"name": "P1", "estates": ["Lakeview"]}]}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewModel(Config{DataPath: path, InitialWidth: 100, InitialHeight: 30}, ds)
	view := m.View()
	if !strings.Contains(view, "data updated: ") || !strings.Contains(view, "1 district") {
		t.Fatalf("expected data-updated subtitle, got:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines > 30 {
		t.Fatalf("expected seeded height to bound the view, got %d lines", lines)
	}
}
