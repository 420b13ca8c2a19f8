package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsAudioFile(t *testing.T) {
	yes := []string{"a.mp3", "b.FLAC", "/dir/c.Mp3"}
	for _, path := range yes {
		if !IsAudioFile(path) {
			t.Errorf("IsAudioFile(%q) = false, want true", path)
		}
	}
	no := []string{"a.wav", "b.json", "a.mp3.analysis.json", "noext"}
	for _, path := range no {
		if IsAudioFile(path) {
			t.Errorf("IsAudioFile(%q) = true, want false", path)
		}
	}
}

func TestFindAudioFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.mp3"))
	touch(t, filepath.Join(dir, "a.flac"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "c.mp3"))
	touch(t, filepath.Join(dir, "sub", "c.mp3.analysis.json"))

	files, err := FindAudioFiles(dir)
	if err != nil {
		t.Fatalf("FindAudioFiles failed: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.flac"),
		filepath.Join(dir, "b.mp3"),
		filepath.Join(dir, "sub", "c.mp3"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFindAudioFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.mp3")
	touch(t, path)

	files, err := FindAudioFiles(path)
	if err != nil {
		t.Fatalf("FindAudioFiles failed: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("files = %v, want just %q", files, path)
	}

	other := filepath.Join(dir, "notes.txt")
	touch(t, other)
	if _, err := FindAudioFiles(other); err == nil {
		t.Error("expected an error for a non-audio file")
	}
}

func TestFindAudioFilesMissingRoot(t *testing.T) {
	if _, err := FindAudioFiles(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected an error for a missing root")
	}
}

func TestFilterUntagged(t *testing.T) {
	dir := t.TempDir()
	// Plain files carry no tags, so everything needs processing.
	a := filepath.Join(dir, "a.mp3")
	b := filepath.Join(dir, "b.mp3")
	touch(t, a)
	touch(t, b)

	toProcess, skipped := FilterUntagged([]string{a, b})
	if len(toProcess) != 2 || len(skipped) != 0 {
		t.Errorf("toProcess = %v, skipped = %v", toProcess, skipped)
	}
}
