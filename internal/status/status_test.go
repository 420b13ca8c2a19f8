package status

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestReporterWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	reporter := NewReporter(path)

	reporter.Update(func(s *Status) {
		s.State = "running"
		s.Total = 10
		s.Processed = 3
		s.GenreSources["beatport"] = 2
	})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("status file not written: %v", err)
	}
	var got Status
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("status file not valid JSON: %v", err)
	}
	if got.State != "running" || got.Total != 10 || got.Processed != 3 {
		t.Errorf("unexpected status: %+v", got)
	}
	if got.GenreSources["beatport"] != 2 {
		t.Errorf("unexpected sources: %v", got.GenreSources)
	}
	if got.Started == "" || got.Updated == "" {
		t.Error("expected started and updated timestamps")
	}
}

func TestReporterDisabled(t *testing.T) {
	reporter := NewReporter("")
	// Must not panic or create anything.
	reporter.Update(func(s *Status) {
		s.State = "running"
	})
}

func TestReporterUnwritablePath(t *testing.T) {
	reporter := NewReporter(filepath.Join(t.TempDir(), "no", "such", "dir", "status.json"))
	reporter.Update(func(s *Status) {
		s.State = "running"
	})
}
