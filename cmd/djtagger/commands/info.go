package commands

import (
	"fmt"
	"strconv"
	"strings"

	"djtagger/internal/shared"
	"djtagger/internal/tagger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Show DJ Tagger tags for a single file.",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfoCommand,
	}
}

func runInfoCommand(cmd *cobra.Command, args []string) error {
	path := args[0]
	artist, _, title := tagger.ParseFilename(path)
	tags, err := tagger.ReadTags(path)
	if err != nil {
		return err
	}

	label := title
	if artist != "" {
		label = artist + " - " + title
	}
	fmt.Println()
	shared.ColorInfo.Printf("🎵 %s\n", label)
	shared.ColorDim.Println(path)
	fmt.Println()

	if tags.TaggerVersion == "" {
		shared.ColorWarning.Println("⚠ Not tagged by DJ Tagger")
		fmt.Println()
	}

	sourceColor := sourceColorFor(tags.GenreSource)
	genreDisplay := tags.Genre
	if genreDisplay == "" {
		genreDisplay = "(none)"
	}
	fmt.Printf("  %-16s %s\n", "Genre", sourceColor.Sprint(genreDisplay))
	if tags.GenreSource != "" {
		fmt.Printf("  %-16s %s\n", "Genre source", sourceColor.Sprint(tags.GenreSource))
	}
	if tags.GenreDetected != "" && tags.GenreDetected != tags.Genre {
		fmt.Printf("  %-16s %s\n", "Genre (detected)", shared.ColorDim.Sprint(tags.GenreDetected))
	}
	fmt.Println()

	printBarRow("Energy", tags.Energy, 20)
	printBarRow("Valence", tags.Valence, 20)
	fmt.Println()
	printBarRow("😊 Happy", tags.MoodHappy, 15)
	printBarRow("😢 Sad", tags.MoodSad, 15)
	printBarRow("🔥 Aggressive", tags.MoodAggressive, 15)
	printBarRow("😌 Relaxed", tags.MoodRelaxed, 15)
	fmt.Println()

	if tags.Comment != "" {
		fmt.Printf("  %-16s %s\n", "Comment", tags.Comment)
	}
	if tags.TaggerVersion != "" {
		fmt.Printf("  %-16s %s\n", "Tagger version", shared.ColorDim.Sprint(tags.TaggerVersion))
	}
	fmt.Println()
	return nil
}

func sourceColorFor(source string) *color.Color {
	switch source {
	case "beatport":
		return shared.ColorBeatport
	case "lastfm+ml":
		return shared.ColorLastfm
	case "ml":
		return shared.ColorML
	default:
		return shared.ColorDim
	}
}

// printBarRow renders a 0-1 value as a text bar; blank values are skipped.
func printBarRow(label, raw string, width int) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	fmt.Printf("  %-16s %s  %.3f\n", label, textBar(value, width), value)
}

func textBar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
