// Package scanner finds audio files on disk and filters out ones a
// previous run already tagged.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"djtagger/internal/tagger"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
}

// IsAudioFile reports whether a path has a supported audio extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// FindAudioFiles returns all supported audio files under root in lexical
// walk order. A root that is itself an audio file yields just that file.
func FindAudioFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		if !IsAudioFile(root) {
			return nil, fmt.Errorf("not a supported audio file: %s", root)
		}
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && IsAudioFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return files, nil
}

// FilterUntagged splits files into ones still needing processing and ones
// already tagged.
func FilterUntagged(files []string) (toProcess, skipped []string) {
	for _, file := range files {
		if tagger.IsAlreadyTagged(file) {
			skipped = append(skipped, file)
		} else {
			toProcess = append(toProcess, file)
		}
	}
	return toProcess, skipped
}
