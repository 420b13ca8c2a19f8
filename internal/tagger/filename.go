package tagger

import (
	"path/filepath"
	"regexp"
	"strings"
)

var countrySuffixRe = regexp.MustCompile(`\s*\([A-Z]{2}\)\s*$`)

// ParseFilename derives artist and title from an "Artist - Title.ext"
// filename. The cleaned artist drops a trailing two-letter country suffix
// like "(UK)". A filename without the separator yields an empty artist
// and the whole stem as title.
func ParseFilename(path string) (artist, artistClean, title string) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	before, after, found := strings.Cut(stem, " - ")
	if !found {
		return "", "", strings.TrimSpace(stem)
	}
	artist = strings.TrimSpace(before)
	title = strings.TrimSpace(after)
	artistClean = strings.TrimSpace(countrySuffixRe.ReplaceAllString(artist, ""))
	return artist, artistClean, title
}
