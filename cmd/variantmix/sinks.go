package main

import (
	"github.com/schollz/progressbar/v3"

	"github.com/variantforge/variantmix/internal/display"
	"github.com/variantforge/variantmix/internal/job"
	"github.com/variantforge/variantmix/internal/logging"
)

// loggingStatusSink adapts job.StatusSink onto the logger and a
// per-job terminal progress bar.
type loggingStatusSink struct {
	log *logging.Logger
	bar *progressbar.ProgressBar
}

func newStatusSink(log *logging.Logger, jobLabel string) *loggingStatusSink {
	return &loggingStatusSink{log: log, bar: display.NewJobBar(jobLabel)}
}

func (s *loggingStatusSink) Update(jobID string, status job.Status, progress int, message string, err error) {
	_ = s.bar.Set(progress)
	if err != nil {
		s.log.Error("[%s] %s: %v", jobID, message, err)
		return
	}
	switch status {
	case job.StatusCompleted:
		_ = s.bar.Finish()
		s.log.Success("[%s] %s", jobID, message)
	case job.StatusCancelled:
		_ = s.bar.Finish()
		s.log.Warn("[%s] %s", jobID, message)
	case job.StatusFailed:
		s.log.Error("[%s] %s", jobID, message)
	default:
		s.log.Debug(true, "[%s] %s", jobID, message)
	}
}

// loggingOutputSink adapts job.OutputRecordSink onto the logger.
type loggingOutputSink struct {
	log *logging.Logger
}

func newOutputSink(log *logging.Logger) *loggingOutputSink {
	return &loggingOutputSink{log: log}
}

func (s *loggingOutputSink) Record(rec job.OutputRecord) {
	s.log.Plan("%s (%s, %dx%d@%dfps, %s, %.1fs)", rec.Filename, display.FormatBytes(rec.Bytes), rec.Width, rec.Height, rec.FPS, rec.Bitrate, rec.Duration)
}
