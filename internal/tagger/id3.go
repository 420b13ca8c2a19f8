package tagger

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2"
)

func readID3(path string) (TrackTags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return TrackTags{}, fmt.Errorf("failed to open ID3 tags: %w", err)
	}
	defer tag.Close()

	tags := TrackTags{Genre: tag.Genre()}

	fieldMap := map[string]*string{
		keyEnergy:         &tags.Energy,
		keyValence:        &tags.Valence,
		keyMoodHappy:      &tags.MoodHappy,
		keyMoodSad:        &tags.MoodSad,
		keyMoodAggressive: &tags.MoodAggressive,
		keyMoodRelaxed:    &tags.MoodRelaxed,
		keyGenreSource:    &tags.GenreSource,
		keyGenreDetected:  &tags.GenreDetected,
		keyTaggerVersion:  &tags.TaggerVersion,
	}
	for _, frame := range tag.GetFrames(tag.CommonID("User defined text information frame")) {
		udt, ok := frame.(id3v2.UserDefinedTextFrame)
		if !ok {
			continue
		}
		if dest, ok := fieldMap[udt.Description]; ok {
			*dest = udt.Value
		}
	}

	for _, frame := range tag.GetFrames(tag.CommonID("Comments")) {
		comment, ok := frame.(id3v2.CommentFrame)
		if !ok {
			continue
		}
		switch comment.Description {
		case "":
			tags.Comment = comment.Text
		case commentDescription:
			tags.CommentDetail = comment.Text
		}
	}

	return tags, nil
}

func writeID3(path string, fields [][2]string, genres []string, comment, detail string) (string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", fmt.Errorf("failed to open ID3 tags: %w", err)
	}
	defer tag.Close()

	newGenre, action, write := genreAction(tag.Genre(), genres)
	if write {
		tag.SetGenre(newGenre)
	}

	for _, field := range fields {
		setUserText(tag, field[0], field[1])
	}
	setComment(tag, "", comment)
	setComment(tag, commentDescription, detail)

	if err := tag.Save(); err != nil {
		return "", fmt.Errorf("failed to save ID3 tags: %w", err)
	}
	return action, nil
}

func fixID3Comments(path string) (bool, error) {
	tags, err := readID3(path)
	if err != nil {
		return false, err
	}
	if tags.TaggerVersion == "" || tags.Energy == "" || tags.Valence == "" {
		return false, nil
	}
	energy, err := strconv.ParseFloat(tags.Energy, 64)
	if err != nil {
		return false, nil
	}
	valence, err := strconv.ParseFloat(tags.Valence, 64)
	if err != nil {
		return false, nil
	}
	comment, detail := BuildComment(energy, valence)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return false, fmt.Errorf("failed to open ID3 tags: %w", err)
	}
	defer tag.Close()

	setComment(tag, "", comment)
	setComment(tag, commentDescription, detail)
	if err := tag.Save(); err != nil {
		return false, fmt.Errorf("failed to save ID3 tags: %w", err)
	}
	return true, nil
}

// setUserText replaces the TXXX frame with the given description, leaving
// frames under other descriptions untouched.
func setUserText(tag *id3v2.Tag, description, value string) {
	id := tag.CommonID("User defined text information frame")
	var kept []id3v2.Framer
	for _, frame := range tag.GetFrames(id) {
		if udt, ok := frame.(id3v2.UserDefinedTextFrame); ok && udt.Description == description {
			continue
		}
		kept = append(kept, frame)
	}
	tag.DeleteFrames(id)
	for _, frame := range kept {
		tag.AddFrame(id, frame)
	}
	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: description,
		Value:       value,
	})
}

// setComment replaces the English comment frame with the given
// description, mirroring setUserText.
func setComment(tag *id3v2.Tag, description, text string) {
	id := tag.CommonID("Comments")
	var kept []id3v2.Framer
	for _, frame := range tag.GetFrames(id) {
		if comment, ok := frame.(id3v2.CommentFrame); ok && comment.Description == description {
			continue
		}
		kept = append(kept, frame)
	}
	tag.DeleteFrames(id)
	for _, frame := range kept {
		tag.AddFrame(id, frame)
	}
	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: description,
		Text:        text,
	})
}
