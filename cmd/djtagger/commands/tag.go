package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"djtagger/internal/api/beatport"
	"djtagger/internal/api/lastfm"
	"djtagger/internal/classifier"
	"djtagger/internal/config"
	"djtagger/internal/genre"
	"djtagger/internal/scanner"
	"djtagger/internal/shared"
	"djtagger/internal/status"
	"djtagger/internal/tagger"
	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"
)

// NewTagCommand creates the tag command
func NewTagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag [path]",
		Short: "Tag audio files with genres and mood metadata.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTagCommand,
	}

	cmd.Flags().Bool("dry-run", false, "Resolve genres without writing tags")
	cmd.Flags().Bool("force", false, "Re-tag files that were already tagged")
	cmd.Flags().Bool("no-beatport", false, "Skip Beatport lookups")
	cmd.Flags().Int("parallel", 0, "Number of files to process in parallel")
	cmd.Flags().Float64("keep-prob", 0, "Minimum classifier probability to keep a genre")

	return cmd
}

func runTagCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	force, _ := cmd.Flags().GetBool("force")
	noBeatport, _ := cmd.Flags().GetBool("no-beatport")
	parallel, _ := cmd.Flags().GetInt("parallel")
	keepProb, _ := cmd.Flags().GetFloat64("keep-prob")
	debug, _ := cmd.Flags().GetBool("debug")
	debug = debug || shared.IsDebugMode()

	root := cfg.MusicPath
	if len(args) > 0 {
		root = args[0]
	}
	if parallel <= 0 {
		parallel = cfg.Parallelism
	}
	if keepProb <= 0 {
		keepProb = cfg.GenreKeepProb
	}

	shared.ColorInfo.Printf("🔍 Scanning %s for audio files...\n", root)
	files, err := scanner.FindAudioFiles(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		shared.ColorWarning.Println("⚠️ No audio files found.")
		return nil
	}

	toProcess := files
	var skipped []string
	if !force {
		toProcess, skipped = scanner.FilterUntagged(files)
	}
	shared.ColorInfo.Printf("🎵 Found %d files, %d to process, %d already tagged\n",
		len(files), len(toProcess), len(skipped))

	reporter := status.NewReporter(cfg.StatusFile)
	mode := "tag"
	if dryRun {
		mode = "dry-run"
	}
	reporter.Update(func(s *status.Status) {
		s.State = "running"
		s.Mode = mode
		s.Version = config.TaggerVersion
		s.Total = len(files)
		s.ToProcess = len(toProcess)
		s.Skipped = len(skipped)
		s.GenreSources = map[string]int{"beatport": 0, "lastfm+ml": 0, "ml": 0}
	})
	if len(toProcess) == 0 {
		reporter.Update(func(s *status.Status) { s.State = "done" })
		shared.ColorSuccess.Println("✅ Nothing to do.")
		return nil
	}

	runLog, errLog, closeLogs := openLogFiles(cfg)
	defer closeLogs()

	resolver := genre.NewResolver(
		beatport.NewClientWithConfig(beatport.Config{
			BaseURL:   cfg.BeatportURL,
			UserAgent: config.UserAgent,
			Timeout:   time.Duration(cfg.BeatportTimeoutSeconds) * time.Second,
			Debug:     debug,
		}),
		lastfm.NewClientWithConfig(lastfm.Config{
			BaseURL: cfg.LastfmURL,
			APIKey:  cfg.LastfmAPIKey,
			Timeout: time.Duration(cfg.LastfmTimeoutSeconds) * time.Second,
			Debug:   debug,
		}),
		genre.Options{LastfmMinCount: cfg.LastfmMinCount},
	)

	bar := pb.StartNew(len(toProcess))
	started := time.Now()

	var (
		mu        sync.Mutex
		processed int
		failed    int
		sources   = map[string]int{"beatport": 0, "lastfm+ml": 0, "ml": 0}
		energySum float64
	)

	ctx := context.Background()
	sem := semaphore.NewWeighted(int64(parallel))
	var wg sync.WaitGroup
	for i, file := range toProcess {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()
			defer sem.Release(1)
			defer bar.Increment()

			artist, artistClean, title := tagger.ParseFilename(path)
			runLog.Printf("[%d/%d] 🎵 %s - %s", index+1, len(toProcess), artist, title)

			analysis, err := classifier.LoadForAudio(path)
			if err != nil {
				runLog.Printf("  ⚠ Analysis missing: %v", err)
				errLog.Printf("%s: analysis: %v", path, err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			resolution := resolver.Resolve(ctx, genre.TrackIdentity{
				Artist:      artist,
				ArtistClean: artistClean,
				Title:       title,
			}, analysis.Genres, !noBeatport, keepProb)
			runLog.Printf("  🎧 %v (%s)", resolution.Genres, resolution.Source)

			action := "dry-run"
			if !dryRun {
				action, err = tagger.WriteTags(path, analysis, resolution.Genres, string(resolution.Source))
				if err != nil {
					runLog.Printf("  ⚠ Tag write failed: %v", err)
					errLog.Printf("%s: write: %v", path, err)
					mu.Lock()
					failed++
					mu.Unlock()
					return
				}
			}
			runLog.Printf("  ✅ Tagged (genre: %s)", action)

			mu.Lock()
			processed++
			sources[string(resolution.Source)]++
			energySum += analysis.Energy
			processedNow, failedNow := processed, failed
			sourcesNow := map[string]int{}
			for k, v := range sources {
				sourcesNow[k] = v
			}
			mu.Unlock()

			elapsed := time.Since(started)
			avg := elapsed.Seconds() / float64(processedNow+failedNow)
			remaining := len(toProcess) - processedNow - failedNow
			reporter.Update(func(s *status.Status) {
				s.Processed = processedNow
				s.Failed = failedNow
				s.Current = filepath.Base(path)
				s.CurrentFolder = filepath.Base(filepath.Dir(path))
				s.GenreSources = sourcesNow
				s.AvgSeconds = avg
				s.EtaHours = avg * float64(remaining) / 3600
				s.ElapsedHours = elapsed.Hours()
			})
		}(i, file)
	}
	wg.Wait()
	bar.Finish()

	reporter.Update(func(s *status.Status) {
		s.State = "done"
		s.Processed = processed
		s.Failed = failed
		s.Current = ""
		s.Finished = time.Now().Format("2006-01-02 15:04:05")
		s.ElapsedHours = time.Since(started).Hours()
	})

	fmt.Println()
	shared.ColorInfo.Printf("📊 Summary for %s:\n", root)
	shared.ColorSuccess.Printf("✅ Tagged: %d files\n", processed)
	if len(skipped) > 0 {
		shared.ColorWarning.Printf("⏭️  Skipped (already tagged): %d files\n", len(skipped))
	}
	if failed > 0 {
		shared.ColorError.Printf("❌ Failed: %d files (see %s)\n", failed, cfg.ErrorFile)
	}
	shared.ColorBeatport.Printf("   Beatport: %d\n", sources["beatport"])
	shared.ColorLastfm.Printf("   Last.fm+ML: %d\n", sources["lastfm+ml"])
	shared.ColorML.Printf("   ML only: %d\n", sources["ml"])
	if processed > 0 {
		shared.ColorDim.Printf("   Avg energy: %.2f\n", energySum/float64(processed))
	}
	return nil
}

// openLogFiles opens the run and error logs. Failures fall back to
// stderr so logging never blocks tagging.
func openLogFiles(cfg *config.Config) (runLog, errLog *log.Logger, closeFn func()) {
	var closers []*os.File
	open := func(path string, flags int) *log.Logger {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|flags, 0644)
		if err != nil {
			return log.New(os.Stderr, "", log.Ltime)
		}
		closers = append(closers, f)
		return log.New(f, "", log.Ltime)
	}
	runLog = open(cfg.LogFile, os.O_TRUNC)
	errLog = open(cfg.ErrorFile, os.O_APPEND)
	errLog.SetFlags(log.LstdFlags)
	return runLog, errLog, func() {
		for _, f := range closers {
			f.Close()
		}
	}
}
