package tagger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// Vorbis comment fields for the two comment levels. FLAC has no COMM
// description axis, so the detail comment gets its own field.
const (
	fieldComment       = "COMMENT"
	fieldCommentDetail = "COMMENT_DETAIL"
)

func readFLAC(path string) (TrackTags, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return TrackTags{}, fmt.Errorf("failed to parse FLAC file: %w", err)
	}
	cmts := findVorbisComment(f)
	if cmts == nil {
		return TrackTags{}, nil
	}

	return TrackTags{
		Genre:          firstField(cmts, flacvorbis.FIELD_GENRE),
		Energy:         firstField(cmts, keyEnergy),
		Valence:        firstField(cmts, keyValence),
		MoodHappy:      firstField(cmts, keyMoodHappy),
		MoodSad:        firstField(cmts, keyMoodSad),
		MoodAggressive: firstField(cmts, keyMoodAggressive),
		MoodRelaxed:    firstField(cmts, keyMoodRelaxed),
		GenreSource:    firstField(cmts, keyGenreSource),
		GenreDetected:  firstField(cmts, keyGenreDetected),
		TaggerVersion:  firstField(cmts, keyTaggerVersion),
		Comment:        firstField(cmts, fieldComment),
		CommentDetail:  firstField(cmts, fieldCommentDetail),
	}, nil
}

func writeFLAC(path string, fields [][2]string, genres []string, comment, detail string) (string, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse FLAC file: %w", err)
	}
	cmts := findVorbisComment(f)
	if cmts == nil {
		cmts = flacvorbis.New()
	}

	newGenre, action, write := genreAction(firstField(cmts, flacvorbis.FIELD_GENRE), genres)
	if write {
		setField(cmts, flacvorbis.FIELD_GENRE, newGenre)
	}

	for _, field := range fields {
		setField(cmts, field[0], field[1])
	}
	setField(cmts, fieldComment, comment)
	setField(cmts, fieldCommentDetail, detail)

	if err := saveVorbisComment(f, cmts, path); err != nil {
		return "", err
	}
	return action, nil
}

func fixFLACComments(path string) (bool, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to parse FLAC file: %w", err)
	}
	cmts := findVorbisComment(f)
	if cmts == nil || firstField(cmts, keyTaggerVersion) == "" {
		return false, nil
	}
	energy, err := strconv.ParseFloat(firstField(cmts, keyEnergy), 64)
	if err != nil {
		return false, nil
	}
	valence, err := strconv.ParseFloat(firstField(cmts, keyValence), 64)
	if err != nil {
		return false, nil
	}

	comment, detail := BuildComment(energy, valence)
	setField(cmts, fieldComment, comment)
	setField(cmts, fieldCommentDetail, detail)
	if err := saveVorbisComment(f, cmts, path); err != nil {
		return false, err
	}
	return true, nil
}

func findVorbisComment(f *flac.File) *flacvorbis.MetaDataBlockVorbisComment {
	for _, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
			if err == nil {
				return cmts
			}
		}
	}
	return nil
}

func firstField(cmts *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := cmts.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}

// setField replaces all values of a field, keeping every other comment.
func setField(cmts *flacvorbis.MetaDataBlockVorbisComment, field, value string) {
	prefix := strings.ToUpper(field) + "="
	var kept []string
	for _, entry := range cmts.Comments {
		if strings.HasPrefix(strings.ToUpper(entry), prefix) {
			continue
		}
		kept = append(kept, entry)
	}
	cmts.Comments = append(kept, field+"="+value)
}

// saveVorbisComment swaps the file's vorbis block for the updated one and
// writes the file back out.
func saveVorbisComment(f *flac.File, cmts *flacvorbis.MetaDataBlockVorbisComment, path string) error {
	block := cmts.Marshal()
	var kept []*flac.MetaDataBlock
	for _, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			kept = append(kept, meta)
		}
	}
	f.Meta = append(kept, &block)
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save FLAC file: %w", err)
	}
	return nil
}
