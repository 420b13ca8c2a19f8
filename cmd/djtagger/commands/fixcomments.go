package commands

import (
	"djtagger/internal/scanner"
	"djtagger/internal/shared"
	"djtagger/internal/tagger"
	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
)

// NewFixCommentsCommand creates the fix-comments command
func NewFixCommentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fix-comments [path]",
		Short: "Rebuild comment fields from stored energy and valence tags.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFixCommentsCommand,
	}
}

func runFixCommentsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	root := cfg.MusicPath
	if len(args) > 0 {
		root = args[0]
	}

	files, err := scanner.FindAudioFiles(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		shared.ColorWarning.Println("⚠️ No audio files found.")
		return nil
	}

	shared.ColorInfo.Printf("🔧 Fixing comments on %d files...\n", len(files))
	bar := pb.StartNew(len(files))
	fixed, skipped, failed := 0, 0, 0
	for _, file := range files {
		updated, err := tagger.FixComments(file)
		bar.Increment()
		switch {
		case err != nil:
			failed++
		case updated:
			fixed++
		default:
			skipped++
		}
	}
	bar.Finish()

	shared.ColorSuccess.Printf("✅ Fixed: %d files\n", fixed)
	if skipped > 0 {
		shared.ColorWarning.Printf("⏭️  Skipped (not tagged): %d files\n", skipped)
	}
	if failed > 0 {
		shared.ColorError.Printf("❌ Failed: %d files\n", failed)
	}
	return nil
}
