// Command variantmix plans and compiles combinatorial video-mixing
// variants from a directory of input clips. It parses flags, validates
// settings, and either runs system diagnostics (--check) or drives the
// variant pipeline end to end.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/variantforge/variantmix/internal/check"
	"github.com/variantforge/variantmix/internal/clip"
	"github.com/variantforge/variantmix/internal/config"
	"github.com/variantforge/variantmix/internal/discover"
	"github.com/variantforge/variantmix/internal/display"
	"github.com/variantforge/variantmix/internal/ffmpeg"
	"github.com/variantforge/variantmix/internal/job"
	"github.com/variantforge/variantmix/internal/logging"
	"github.com/variantforge/variantmix/internal/outputname"
	"github.com/variantforge/variantmix/internal/probe"
)

// version is injected at build time via -ldflags.
var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	settings := config.Default()
	runOpts := config.DefaultRunOptions()
	if err := config.ParseFlags(&settings, &runOpts, version); err != nil {
		fmt.Fprintf(os.Stderr, "variantmix: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(runOpts.ColorMode, runOpts.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "variantmix: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if runOpts.CheckOnly {
		check.RunCheck(log)
		return 0
	}

	warnings, err := settings.Validate()
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	for _, w := range warnings {
		log.Warn("%s", w.String())
	}

	inputAbs, err := absPath(runOpts.InputDir)
	if err != nil {
		log.Error("Input not found: %s", runOpts.InputDir)
		return 1
	}
	if err := os.MkdirAll(runOpts.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", runOpts.OutputDir)
		return 1
	}

	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	clips, err := loadClips(inputAbs)
	if err != nil {
		log.Error("Discovering clips: %v", err)
		return 1
	}
	if len(clips) < 2 {
		log.Error("Need at least 2 clips in %s, found %d", inputAbs, len(clips))
		return 1
	}
	log.Info("Discovered %d clips in %s", len(clips), inputAbs)

	// Phase 3: Signal handling — on SIGINT/SIGTERM, cancel the job and the
	// context so the driver terminates the in-flight encoder and produces
	// no further outputs.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	d := job.NewDriver(
		newStatusSink(log, runOpts.JobSlug),
		newOutputSink(log),
		&ffmpeg.ProcessLauncher{StderrTailBytes: 4096},
		ffmpeg.FixedAttemptPolicy{MaxAttempts: 3},
		outputname.New(),
	)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping current output…")
		d.Cancel(runOpts.JobSlug)
		cancel()
	}()

	// Phase 4: Plan, compile, and encode every variant.
	j := job.Job{
		ID:        runOpts.JobSlug,
		Slug:      runOpts.JobSlug,
		Clips:     clips,
		Settings:  settings,
		OutputDir: runOpts.OutputDir,
		Seed:      runOpts.Seed,
	}

	results := d.RunMany(ctx, []job.Job{j}, runOpts.Concurrency)
	stats := results[0]

	log.Info("Done: %d completed, %d failed, %d total", stats.Completed, stats.Failed, stats.Total)
	if stats.Failed > 0 || stats.Cancelled {
		return 1
	}
	return 0
}

// loadClips discovers media files under inputDir and probes each one's
// duration to build the clip list the driver consumes. This convenience
// lives entirely outside the core: the core only ever sees a
// pre-populated []clip.Clip.
func loadClips(inputDir string) ([]clip.Clip, error) {
	paths, err := discover.Clips(inputDir)
	if err != nil {
		return nil, err
	}
	clips := make([]clip.Clip, 0, len(paths))
	for i, p := range paths {
		d, err := probe.Duration(context.Background(), p)
		if err != nil {
			return nil, fmt.Errorf("probe %s: %w", p, err)
		}
		clips = append(clips, clip.Clip{
			ID:           fmt.Sprintf("clip%d", i),
			Path:         p,
			Duration:     d,
			OriginalName: filepath.Base(p),
		})
	}
	return clips, nil
}

// absPath returns the absolute, symlink-resolved path for the given dir.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
