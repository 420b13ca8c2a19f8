package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const (
	// TaggerVersion is stamped into every tagged file so stale libraries can
	// be re-tagged after scoring or tagging changes.
	TaggerVersion = "v4"

	// UserAgent is sent on Beatport searches; requests without a browser-like
	// agent get rejected outright.
	UserAgent = "Mozilla/5.0"
)

// Configuration structure
type Config struct {
	MusicPath string `json:"MusicPath" envconfig:"DJTAGGER_MUSIC_PATH"`

	BeatportURL            string `json:"BeatportURL" envconfig:"DJTAGGER_BEATPORT_URL"`
	BeatportTimeoutSeconds int    `json:"BeatportTimeoutSeconds" envconfig:"DJTAGGER_BEATPORT_TIMEOUT"`

	LastfmURL            string `json:"LastfmURL" envconfig:"DJTAGGER_LASTFM_URL"`
	LastfmAPIKey         string `json:"LastfmAPIKey" envconfig:"LASTFM_API_KEY"`
	LastfmTimeoutSeconds int    `json:"LastfmTimeoutSeconds" envconfig:"DJTAGGER_LASTFM_TIMEOUT"`
	LastfmMinCount       int    `json:"LastfmMinCount" envconfig:"DJTAGGER_LASTFM_MIN_COUNT"`

	GenreKeepProb float64 `json:"GenreKeepProb" envconfig:"DJTAGGER_GENRE_KEEP_PROB"`

	Parallelism int `json:"Parallelism" envconfig:"DJTAGGER_PARALLELISM"`

	StatusFile string `json:"StatusFile" envconfig:"DJTAGGER_STATUS_FILE"`
	LogFile    string `json:"LogFile" envconfig:"DJTAGGER_LOG_FILE"`
	ErrorFile  string `json:"ErrorFile" envconfig:"DJTAGGER_ERROR_FILE"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		MusicPath:              ".",
		BeatportURL:            "https://www.beatport.com",
		BeatportTimeoutSeconds: 8,
		LastfmURL:              "http://ws.audioscrobbler.com/2.0/",
		LastfmTimeoutSeconds:   5,
		LastfmMinCount:         20,
		GenreKeepProb:          0.10,
		Parallelism:            1,
		StatusFile:             "/tmp/dj-tagger-status.json",
		LogFile:                "/tmp/dj-tagger.log",
		ErrorFile:              "/tmp/dj-tagger-errors.log",
	}
}

// ApplyDefaults fills any zero-valued field from the defaults, so partial
// config files stay usable.
func (cfg *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if cfg.MusicPath == "" {
		cfg.MusicPath = defaults.MusicPath
	}
	if cfg.BeatportURL == "" {
		cfg.BeatportURL = defaults.BeatportURL
	}
	if cfg.BeatportTimeoutSeconds <= 0 {
		cfg.BeatportTimeoutSeconds = defaults.BeatportTimeoutSeconds
	}
	if cfg.LastfmURL == "" {
		cfg.LastfmURL = defaults.LastfmURL
	}
	if cfg.LastfmTimeoutSeconds <= 0 {
		cfg.LastfmTimeoutSeconds = defaults.LastfmTimeoutSeconds
	}
	if cfg.LastfmMinCount <= 0 {
		cfg.LastfmMinCount = defaults.LastfmMinCount
	}
	if cfg.GenreKeepProb <= 0 {
		cfg.GenreKeepProb = defaults.GenreKeepProb
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = defaults.Parallelism
	}
	if cfg.StatusFile == "" {
		cfg.StatusFile = defaults.StatusFile
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaults.LogFile
	}
	if cfg.ErrorFile == "" {
		cfg.ErrorFile = defaults.ErrorFile
	}
}

// ApplyEnvOverrides lets environment variables override config file values.
// Only variables that are actually set are applied.
func ApplyEnvOverrides(cfg *Config) error {
	return envconfig.Process("", cfg)
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(dir, "djtagger", "config.json")
}

// CreateDirIfNotExists creates a directory if it does not exist
func CreateDirIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a JSON file
func SaveConfig(filePath string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	dir := filepath.Dir(filePath)
	if err := CreateDirIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
