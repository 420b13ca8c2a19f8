// Package tagger reads and writes DJ metadata on MP3 and FLAC files:
// the genre frame, namespaced analysis fields, and human-readable
// comments derived from energy and valence.
package tagger

import (
	"fmt"
	"path/filepath"
	"strings"

	"djtagger/internal/classifier"
	"djtagger/internal/config"
)

const (
	commentDescription = "djtagger"
	maxPersistedGenres = 4
)

// Namespaced field keys written alongside the genre.
const (
	keyEnergy         = "ENERGY"
	keyValence        = "VALENCE"
	keyMoodHappy      = "MOOD_HAPPY"
	keyMoodSad        = "MOOD_SAD"
	keyMoodAggressive = "MOOD_AGGRESSIVE"
	keyMoodRelaxed    = "MOOD_RELAXED"
	keyGenreSource    = "GENRE_SOURCE"
	keyGenreDetected  = "GENRE_DETECTED"
	keyTaggerVersion  = "TAGGER_VERSION"
)

// genericGenres are existing genre values worth overwriting.
var genericGenres = map[string]bool{
	"":        true,
	"other":   true,
	"unknown": true,
	"misc":    true,
	"music":   true,
}

// TrackTags is everything the tagger knows about one file.
type TrackTags struct {
	Genre          string
	Energy         string
	Valence        string
	MoodHappy      string
	MoodSad        string
	MoodAggressive string
	MoodRelaxed    string
	GenreSource    string
	GenreDetected  string
	TaggerVersion  string
	Comment        string
	CommentDetail  string
}

// ReadTags reads all tagger-related fields from a file. Missing fields
// come back as empty strings.
func ReadTags(path string) (TrackTags, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return readID3(path)
	case ".flac":
		return readFLAC(path)
	default:
		return TrackTags{}, fmt.Errorf("unsupported file type: %s", path)
	}
}

// IsAlreadyTagged reports whether a file carries a genre source marker,
// meaning a previous run already processed it. Unreadable files count as
// untagged so they get retried.
func IsAlreadyTagged(path string) bool {
	tags, err := ReadTags(path)
	if err != nil {
		return false
	}
	return tags.GenreSource != ""
}

// WriteTags persists an analysis result onto a file and returns a short
// description of what happened to the genre frame.
func WriteTags(path string, analysis *classifier.Analysis, genres []string, source string) (string, error) {
	fields := analysisFields(analysis, genres, source)
	comment, detail := BuildComment(analysis.Energy, analysis.Valence)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return writeID3(path, fields, genres, comment, detail)
	case ".flac":
		return writeFLAC(path, fields, genres, comment, detail)
	default:
		return "", fmt.Errorf("unsupported file type: %s", path)
	}
}

// FixComments rebuilds the comment fields from the energy and valence
// already stored on a file. Returns false when the file was never tagged
// by this tool or lacks the needed fields.
func FixComments(path string) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return fixID3Comments(path)
	case ".flac":
		return fixFLACComments(path)
	default:
		return false, fmt.Errorf("unsupported file type: %s", path)
	}
}

// BuildComment renders energy and valence into the short comment and the
// detail comment.
func BuildComment(energy, valence float64) (comment, detail string) {
	energyLabel := "High"
	if energy < 0.4 {
		energyLabel = "Low"
	} else if energy < 0.7 {
		energyLabel = "Mid"
	}
	moodLabel := "Bright"
	if valence < 0.33 {
		moodLabel = "Dark"
	} else if valence < 0.66 {
		moodLabel = "Neutral"
	}
	comment = fmt.Sprintf("Energy: %s | Mood: %s", energyLabel, moodLabel)
	detail = fmt.Sprintf("Energy:%s Mood:%s | E:%v V:%v", energyLabel, moodLabel, energy, valence)
	return comment, detail
}

// analysisFields flattens an analysis into ordered key/value pairs.
func analysisFields(analysis *classifier.Analysis, genres []string, source string) [][2]string {
	return [][2]string{
		{keyEnergy, fmt.Sprintf("%v", analysis.Energy)},
		{keyValence, fmt.Sprintf("%v", analysis.Valence)},
		{keyMoodHappy, fmt.Sprintf("%v", analysis.Moods.Happy)},
		{keyMoodSad, fmt.Sprintf("%v", analysis.Moods.Sad)},
		{keyMoodAggressive, fmt.Sprintf("%v", analysis.Moods.Aggressive)},
		{keyMoodRelaxed, fmt.Sprintf("%v", analysis.Moods.Relaxed)},
		{keyGenreSource, source},
		{keyGenreDetected, joinGenres(genres)},
		{keyTaggerVersion, config.TaggerVersion},
	}
}

func joinGenres(genres []string) string {
	if len(genres) > maxPersistedGenres {
		genres = genres[:maxPersistedGenres]
	}
	return strings.Join(genres, "; ")
}

// genreAction decides whether the genre frame should be rewritten.
// Existing non-generic genres are kept so manual curation survives.
func genreAction(existing string, genres []string) (newGenre, action string, write bool) {
	if len(genres) == 0 {
		return "", "no genre", false
	}
	genreStr := joinGenres(genres)
	existing = strings.TrimSpace(existing)
	if genericGenres[strings.ToLower(existing)] {
		return genreStr, "replaced", true
	}
	if !strings.EqualFold(existing, genreStr) {
		return "", fmt.Sprintf("kept '%s'", existing), false
	}
	return "", "matches", false
}
