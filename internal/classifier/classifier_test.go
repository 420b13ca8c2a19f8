package classifier

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPairForm(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "track.mp3")
	sidecar := `{
		"genres": [["Progressive House", 0.62], ["Trance", 0.21]],
		"moods": {"happy": 0.4, "sad": 0.1, "aggressive": 0.2, "relaxed": 0.7},
		"valence": 0.55,
		"energy": 0.8,
		"raw_energy": 0.0132,
		"duration": 421.5
	}`
	if err := os.WriteFile(SidecarPath(audioPath), []byte(sidecar), 0644); err != nil {
		t.Fatal(err)
	}

	analysis, err := LoadForAudio(audioPath)
	if err != nil {
		t.Fatalf("LoadForAudio failed: %v", err)
	}
	if len(analysis.Genres) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(analysis.Genres))
	}
	if analysis.Genres[0].Label != "Progressive House" || analysis.Genres[0].Probability != 0.62 {
		t.Errorf("unexpected first prediction: %+v", analysis.Genres[0])
	}
	if analysis.Moods.Relaxed != 0.7 {
		t.Errorf("unexpected relaxed mood: %v", analysis.Moods.Relaxed)
	}
	if analysis.Energy != 0.8 || analysis.Valence != 0.55 {
		t.Errorf("unexpected energy/valence: %v/%v", analysis.Energy, analysis.Valence)
	}
}

func TestLoadObjectForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.json")
	sidecar := `{"genres": [{"label": "Techno", "probability": 0.9}], "energy": 0.6}`
	if err := os.WriteFile(path, []byte(sidecar), 0644); err != nil {
		t.Fatal(err)
	}

	analysis, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(analysis.Genres) != 1 || analysis.Genres[0].Label != "Techno" {
		t.Errorf("unexpected predictions: %+v", analysis.Genres)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadForAudio(filepath.Join(t.TempDir(), "absent.mp3")); err == nil {
		t.Error("expected an error for a missing sidecar")
	}
}

func TestLoadMalformedPair(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"genres": [["only-label"]]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a malformed prediction pair")
	}
}
