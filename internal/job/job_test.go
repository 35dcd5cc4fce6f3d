package job

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/variantforge/variantmix/internal/clip"
	"github.com/variantforge/variantmix/internal/config"
	"github.com/variantforge/variantmix/internal/ffmpeg"
	"github.com/variantforge/variantmix/internal/outputname"
)

type recordingStatusSink struct {
	updates []string
}

func (s *recordingStatusSink) Update(jobID string, status Status, progress int, message string, err error) {
	s.updates = append(s.updates, string(status))
}

type recordingOutputSink struct {
	records []OutputRecord
}

func (s *recordingOutputSink) Record(rec OutputRecord) {
	s.records = append(s.records, rec)
}

func writeDummyClip(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDriver_Run_CompletesAllOutputs(t *testing.T) {
	dir := t.TempDir()
	pathA := writeDummyClip(t, dir, "a.mp4")
	pathB := writeDummyClip(t, dir, "b.mp4")

	statusSink := &recordingStatusSink{}
	outputSink := &recordingOutputSink{}
	launcher := &ffmpeg.RecordingLauncher{}

	d := NewDriver(statusSink, outputSink, launcher, ffmpeg.FixedAttemptPolicy{MaxAttempts: 2}, outputname.New())

	settings := config.Default()
	settings.OutputCount = 2

	j := Job{
		ID:   "job1",
		Slug: "promo",
		Clips: []clip.Clip{
			{ID: "A", Path: pathA, Duration: 10},
			{ID: "B", Path: pathB, Duration: 10},
		},
		OutputDir: dir,
		Seed:      1,
	}
	j.Settings = settings

	stats := d.Run(context.Background(), j)
	if stats.Completed != 2 {
		t.Fatalf("expected 2 completed outputs, got %d (failed=%d)", stats.Completed, stats.Failed)
	}
	if len(launcher.Calls) != 2 {
		t.Fatalf("expected 2 launcher calls, got %d", len(launcher.Calls))
	}
	if len(outputSink.records) != 2 {
		t.Fatalf("expected 2 recorded outputs, got %d", len(outputSink.records))
	}
	for _, rec := range outputSink.records {
		if rec.Width == 0 || rec.Height == 0 {
			t.Fatalf("expected resolved canvas dimensions, got %+v", rec)
		}
		if rec.FPS == 0 {
			t.Fatalf("expected resolved fps, got %+v", rec)
		}
		if rec.Bitrate == "" {
			t.Fatalf("expected resolved bitrate, got %+v", rec)
		}
		if rec.Duration <= 0 {
			t.Fatalf("expected positive estimated duration, got %+v", rec)
		}
		if rec.SettingsJSON == "" {
			t.Fatalf("expected non-empty settings JSON, got %+v", rec)
		}
	}
	if statusSink.updates[len(statusSink.updates)-1] != string(StatusCompleted) {
		t.Fatalf("expected final status completed, got %s", statusSink.updates[len(statusSink.updates)-1])
	}
}

func TestDriver_Run_InsufficientInputsFailsImmediately(t *testing.T) {
	dir := t.TempDir()
	pathA := writeDummyClip(t, dir, "a.mp4")

	statusSink := &recordingStatusSink{}
	launcher := &ffmpeg.RecordingLauncher{}
	d := NewDriver(statusSink, nil, launcher, nil, outputname.New())

	j := Job{
		ID:        "job1",
		Slug:      "promo",
		Clips:     []clip.Clip{{ID: "A", Path: pathA, Duration: 10}},
		OutputDir: dir,
		Settings:  config.Default(),
	}

	stats := d.Run(context.Background(), j)
	if stats.Total != 0 {
		t.Fatalf("expected no plans for insufficient inputs, got %d", stats.Total)
	}
	if len(launcher.Calls) != 0 {
		t.Fatalf("expected no launcher calls, got %d", len(launcher.Calls))
	}
}

func TestDriver_Cancel_StopsBeforeFurtherOutputs(t *testing.T) {
	dir := t.TempDir()
	pathA := writeDummyClip(t, dir, "a.mp4")
	pathB := writeDummyClip(t, dir, "b.mp4")

	statusSink := &recordingStatusSink{}
	launcher := &ffmpeg.RecordingLauncher{}
	d := NewDriver(statusSink, nil, launcher, nil, outputname.New())

	settings := config.Default()
	settings.OutputCount = 5
	settings.OrderMixing = true

	j := Job{
		ID:   "job1",
		Slug: "promo",
		Clips: []clip.Clip{
			{ID: "A", Path: pathA, Duration: 10},
			{ID: "B", Path: pathB, Duration: 10},
		},
		OutputDir: dir,
		Settings:  settings,
	}

	d.Cancel("job1")
	stats := d.Run(context.Background(), j)
	if !stats.Cancelled {
		t.Fatalf("expected job to report cancelled")
	}
	if len(launcher.Calls) != 0 {
		t.Fatalf("expected no encodes once cancelled before run, got %d", len(launcher.Calls))
	}
}

func TestRunMany_RunsAllJobsIndexedByInput(t *testing.T) {
	dir := t.TempDir()
	pathA := writeDummyClip(t, dir, "a.mp4")
	pathB := writeDummyClip(t, dir, "b.mp4")

	statusSink := &recordingStatusSink{}
	launcher := &ffmpeg.RecordingLauncher{}
	d := NewDriver(statusSink, nil, launcher, nil, outputname.New())

	settings := config.Default()
	settings.OutputCount = 1

	jobs := []Job{
		{ID: "j1", Slug: "a", Clips: []clip.Clip{{ID: "A", Path: pathA, Duration: 10}, {ID: "B", Path: pathB, Duration: 10}}, OutputDir: dir, Settings: settings},
		{ID: "j2", Slug: "b", Clips: []clip.Clip{{ID: "A", Path: pathA, Duration: 10}, {ID: "B", Path: pathB, Duration: 10}}, OutputDir: dir, Settings: settings},
	}

	results := d.RunMany(context.Background(), jobs, 2)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].JobID != "j1" || results[1].JobID != "j2" {
		t.Fatalf("expected results indexed by input order, got %v", results)
	}
}
