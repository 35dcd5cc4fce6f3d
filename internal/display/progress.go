package display

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// NewJobBar returns a terminal progress bar scaled 0-100, one per job,
// used by the driver's StatusSink adapter to render progressFor updates.
func NewJobBar(jobLabel string) *progressbar.ProgressBar {
	return progressbar.NewOptions(100,
		progressbar.OptionSetDescription(jobLabel),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)
}
