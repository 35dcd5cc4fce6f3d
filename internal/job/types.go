// Package job is the thin driver that, for each planned output, calls the
// compiler, hands the result to the encoder launcher, and reports progress
// and produced files through the two sink interfaces below.
package job

import (
	"github.com/variantforge/variantmix/internal/clip"
	"github.com/variantforge/variantmix/internal/config"
)

// Status is one of the five terminal/non-terminal job states.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// StatusSink is the job status sink external collaborator (produced-to):
// update(job_id, status, progress_percent, message?, error?).
type StatusSink interface {
	Update(jobID string, status Status, progressPercent int, message string, err error)
}

// OutputRecord is one emitted file's metadata, matching the output record
// sink's shape.
type OutputRecord struct {
	JobID        string
	Filename     string
	Bytes        int64
	Duration     float64
	Width        int
	Height       int
	FPS          int
	Bitrate      string
	SettingsJSON string
}

// OutputRecordSink is the output record sink external collaborator
// (produced-to).
type OutputRecordSink interface {
	Record(rec OutputRecord)
}

// Job bundles everything one planner+compile+encode run needs: the clip
// inventory, the settings, and where outputs should land.
type Job struct {
	ID        string
	Slug      string
	Clips     []clip.Clip
	Groups    []clip.Group
	Settings  config.MixingSettings
	OutputDir string
	Seed      int64
}

// RunStats summarizes one job's outcome.
type RunStats struct {
	JobID     string
	Total     int
	Completed int
	Failed    int
	Cancelled bool
}
