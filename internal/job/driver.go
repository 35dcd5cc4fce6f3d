package job

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/variantforge/variantmix/internal/clip"
	"github.com/variantforge/variantmix/internal/compile"
	"github.com/variantforge/variantmix/internal/ffmpeg"
	"github.com/variantforge/variantmix/internal/outputname"
	"github.com/variantforge/variantmix/internal/rng"
	"github.com/variantforge/variantmix/internal/variant"
)

const maxRetryAttempts = 3

// Driver runs each job single-threaded through planning and compiling;
// RunMany may run several jobs concurrently. It holds no shared
// mutable state beyond the two registries cancellation needs:
// {job_id -> cancelled?} and {job_id -> live encoder cancel func}.
type Driver struct {
	Status      StatusSink
	Outputs     OutputRecordSink
	Launcher    ffmpeg.Launcher
	RetryPolicy ffmpeg.RetryPolicy
	Names       *outputname.Generator

	mu        sync.Mutex
	cancelled map[string]bool
	live      map[string]context.CancelFunc
}

// NewDriver returns a ready-to-use Driver.
func NewDriver(status StatusSink, outputs OutputRecordSink, launcher ffmpeg.Launcher, retry ffmpeg.RetryPolicy, names *outputname.Generator) *Driver {
	return &Driver{
		Status:      status,
		Outputs:     outputs,
		Launcher:    launcher,
		RetryPolicy: retry,
		Names:       names,
		cancelled:   make(map[string]bool),
		live:        make(map[string]context.CancelFunc),
	}
}

// Cancel marks jobID cancelled and, if an encode is currently in flight
// for it, terminates the live encoder process via its context.
func (d *Driver) Cancel(jobID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelled[jobID] = true
	if cancel, ok := d.live[jobID]; ok {
		cancel()
	}
}

func (d *Driver) isCancelled(jobID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelled[jobID]
}

func (d *Driver) registerLive(jobID string, cancel context.CancelFunc) {
	d.mu.Lock()
	d.live[jobID] = cancel
	d.mu.Unlock()
}

func (d *Driver) clearLive(jobID string) {
	d.mu.Lock()
	delete(d.live, jobID)
	d.mu.Unlock()
}

// Run executes j: it plans all outputs up front, then compiles and
// encodes them in strict plan-index order, reporting progress
// monotonically and recording every produced file.
func (d *Driver) Run(ctx context.Context, j Job) RunStats {
	stats := RunStats{JobID: j.ID}
	d.update(j.ID, StatusProcessing, 0, "planning", nil)

	planner := variant.New(rng.New(j.Seed))
	plans, err := planner.Plan(j.Clips, j.Groups, j.Settings)
	if err != nil {
		d.update(j.ID, StatusFailed, 0, "planning failed", err)
		return stats
	}
	stats.Total = len(plans)

	inv := clip.NewInventory(j.Clips)
	compiler := compile.New(inv)

	for i, plan := range plans {
		if d.isCancelled(j.ID) {
			stats.Cancelled = true
			d.update(j.ID, StatusCancelled, progressFor(i, stats.Total), "cancelled", nil)
			return stats
		}

		outPath := d.Names.Resolve(j.ID, plan.ID, j.OutputDir, outputname.Base(j.Slug, i, plan.ID, "mp4"))

		cmd, err := compiler.Compile(plan, outPath)
		if err != nil {
			stats.Failed++
			d.update(j.ID, StatusFailed, progressFor(i, stats.Total), fmt.Sprintf("compile failed for output %d", i), err)
			continue
		}

		if d.isCancelled(j.ID) {
			stats.Cancelled = true
			d.update(j.ID, StatusCancelled, progressFor(i, stats.Total), "cancelled", nil)
			return stats
		}

		result, encodeErr := d.encodeWithRetry(ctx, j.ID, cmd.Args)
		if encodeErr != nil {
			stats.Failed++
			family := ffmpeg.Classify(result.StderrTail)
			d.update(j.ID, StatusFailed, progressFor(i, stats.Total), ffmpeg.UserMessage(family), encodeErr)
			continue
		}

		stats.Completed++
		d.recordOutput(j.ID, cmd, outPath)
		d.update(j.ID, StatusProcessing, progressFor(i, stats.Total), fmt.Sprintf("completed output %d", i), nil)
	}

	final := StatusCompleted
	if stats.Failed > 0 && stats.Completed == 0 {
		final = StatusFailed
	}
	d.update(j.ID, final, 100, "finished", nil)
	return stats
}

// encodeWithRetry launches cmd, consulting RetryPolicy after each
// failure, up to maxRetryAttempts attempts.
func (d *Driver) encodeWithRetry(ctx context.Context, jobID string, args []string) (ffmpeg.Result, error) {
	var result ffmpeg.Result
	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		runCtx, cancel := context.WithCancel(ctx)
		d.registerLive(jobID, cancel)
		result = d.Launcher.Launch(runCtx, args)
		cancel()
		d.clearLive(jobID)

		if result.Err == nil {
			return result, nil
		}

		family := ffmpeg.Classify(result.StderrTail)
		if d.RetryPolicy == nil || !d.RetryPolicy.ShouldRetry(family, attempt) {
			return result, result.Err
		}
	}
	return result, result.Err
}

func (d *Driver) recordOutput(jobID string, cmd compile.Command, outPath string) {
	if d.Outputs == nil {
		return
	}
	info, err := os.Stat(outPath)
	var size int64
	if err == nil {
		size = info.Size()
	}
	d.Outputs.Record(OutputRecord{
		JobID:        jobID,
		Filename:     filepath.Base(outPath),
		Bytes:        size,
		Duration:     cmd.Duration,
		Width:        cmd.Width,
		Height:       cmd.Height,
		FPS:          cmd.FPS,
		Bitrate:      cmd.Bitrate,
		SettingsJSON: cmd.SettingsJSON,
	})
}

func (d *Driver) update(jobID string, status Status, progress int, message string, err error) {
	if d.Status == nil {
		return
	}
	d.Status.Update(jobID, status, progress, message, err)
}

// progressFor implements step 6: floor((i/outputCount)*80),
// 20% reserved for finalization.
func progressFor(i, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(i) / float64(total) * 80))
}
