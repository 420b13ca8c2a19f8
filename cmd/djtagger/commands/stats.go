package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"djtagger/internal/scanner"
	"djtagger/internal/shared"
	"djtagger/internal/tagger"
	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [path]",
		Short: "Show library statistics: coverage, genres, energy.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStatsCommand,
	}
}

func runStatsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := cfg.MusicPath
	if len(args) > 0 {
		root = args[0]
	}

	fmt.Println()
	shared.ColorInfo.Println("📊 Library Statistics")
	shared.ColorDim.Println(root)
	fmt.Println()

	files, err := scanner.FindAudioFiles(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		shared.ColorWarning.Println("⚠️ No audio files found.")
		return nil
	}

	var (
		tagged, untagged   int
		genreCounts        = map[string]int{}
		sourceCounts       = map[string]int{}
		versionCounts      = map[string]int{}
		energies, valences []float64
	)

	bar := pb.StartNew(len(files))
	for _, file := range files {
		tags, err := tagger.ReadTags(file)
		bar.Increment()
		if err != nil || tags.TaggerVersion == "" {
			untagged++
			continue
		}
		tagged++
		for _, g := range strings.Split(tags.Genre, ";") {
			if g = strings.TrimSpace(g); g != "" {
				genreCounts[g]++
			}
		}
		source := tags.GenreSource
		if source == "" {
			source = "unknown"
		}
		sourceCounts[source]++
		versionCounts[tags.TaggerVersion]++
		if e, err := strconv.ParseFloat(tags.Energy, 64); err == nil {
			energies = append(energies, e)
		}
		if v, err := strconv.ParseFloat(tags.Valence, 64); err == nil {
			valences = append(valences, v)
		}
	}
	bar.Finish()
	fmt.Println()

	shared.ColorInfo.Println("Overview")
	fmt.Printf("  %-14s %d\n", "Total files", len(files))
	shared.ColorSuccess.Printf("  %-14s %d\n", "Tagged", tagged)
	shared.ColorWarning.Printf("  %-14s %d\n", "Untagged", untagged)
	fmt.Printf("  %-14s %.1f%%\n", "Coverage", float64(tagged)/float64(len(files))*100)
	fmt.Println()

	if len(sourceCounts) > 0 {
		shared.ColorInfo.Println("Genre Sources")
		for _, entry := range sortedCounts(sourceCounts) {
			sourceColorFor(entry.key).Printf("  %-14s %d\n", entry.key, entry.count)
		}
		fmt.Println()
	}

	if len(genreCounts) > 0 {
		shared.ColorInfo.Println("Top 20 Genres")
		top := sortedCounts(genreCounts)
		if len(top) > 20 {
			top = top[:20]
		}
		maxCount := top[0].count
		for _, entry := range top {
			barLen := entry.count * 30 / maxCount
			fmt.Printf("  %-28s %4d  %s\n", entry.key, entry.count, strings.Repeat("█", barLen))
		}
		fmt.Println()
	}

	if len(energies) > 0 {
		shared.ColorInfo.Println("Energy & Mood")
		printRange("Energy", energies)
		printRange("Valence", valences)
		fmt.Println()
	}

	if len(versionCounts) > 0 {
		for _, entry := range sortedCounts(versionCounts) {
			shared.ColorDim.Printf("  %s: %d tracks\n", entry.key, entry.count)
		}
	}
	return nil
}

type countEntry struct {
	key   string
	count int
}

// sortedCounts orders entries by descending count, ties alphabetically.
func sortedCounts(counts map[string]int) []countEntry {
	entries := make([]countEntry, 0, len(counts))
	for key, count := range counts {
		entries = append(entries, countEntry{key, count})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].count != entries[b].count {
			return entries[a].count > entries[b].count
		}
		return entries[a].key < entries[b].key
	})
	return entries
}

func printRange(label string, values []float64) {
	if len(values) == 0 {
		return
	}
	minV, maxV, sum := values[0], values[0], 0.0
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		sum += v
	}
	fmt.Printf("  %-10s min %.2f  avg %.2f  max %.2f\n", label, minV, sum/float64(len(values)), maxV)
}
