package commands

import (
	"fmt"
	"os"

	"djtagger/internal/config"
	"djtagger/internal/shared"
	"github.com/spf13/cobra"
)

const toolVersion = "4.0.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "djtagger",
	Version: toolVersion,
	Short:   "Genre and mood tagger for DJ music libraries.",
	Long: fmt.Sprintf(`DJ Tagger (v%s)

Tags MP3 and FLAC libraries with genres and mood metadata. Genres are
resolved by cascading three sources: the Beatport catalog, Last.fm crowd
tags, and local classifier output, in that order of trust. Energy and
valence land in the comment field so they show up in DJ software.`, toolVersion),
}

// Execute runs the root command.
func Execute() error {
	shared.InitializeColors()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewTagCommand())
	rootCmd.AddCommand(NewInfoCommand())
	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewFixCommentsCommand())

	if err := rootCmd.Execute(); err != nil {
		shared.ColorError.Printf("❌ %v\n", err)
		return err
	}
	return nil
}

// loadConfig builds the effective configuration: defaults, then the
// config file when present, then environment overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := config.LoadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		cfg.ApplyDefaults()
	}
	if err := config.ApplyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return cfg, nil
}
