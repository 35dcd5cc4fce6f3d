// Package compile turns one variant.Plan, a clip inventory, and an output
// path into the ordered encoder argument vector and filter-graph string.
// It performs the last validation gate the plan passes through: every
// clip id must resolve and every resolved file must exist, or compilation
// aborts with a structured error naming every offender.
package compile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/variantforge/variantmix/internal/clip"
	"github.com/variantforge/variantmix/internal/config"
	"github.com/variantforge/variantmix/internal/duration"
	"github.com/variantforge/variantmix/internal/variant"
)

// Command is the compiled result of one plan. Width, Height, FPS,
// Bitrate, Duration, and SettingsJSON mirror the resolved encode
// parameters so the driver can populate an output record without
// re-deriving them (and without re-probing the produced file).
type Command struct {
	Args        []string
	FilterGraph string

	Width        int
	Height       int
	FPS          int
	Bitrate      string
	Duration     float64
	SettingsJSON string
}

// ErrInsufficientInputs is returned when fewer than 2 clips survive the
// validation gate.
var ErrInsufficientInputs = fmt.Errorf("compile: fewer than 2 clips survived validation")

// ErrConsistency is returned by the post-assembly sanity check: a
// mismatch here is a fatal compiler bug, never a retriable condition.
type ErrConsistency struct {
	InputCount int
	ClipCount  int
	LabelCount int
}

func (e *ErrConsistency) Error() string {
	return fmt.Sprintf("compile: consistency check failed: inputs=%d clips=%d labels=%d", e.InputCount, e.ClipCount, e.LabelCount)
}

// Compiler compiles Plans against a clip inventory.
type Compiler struct {
	Inventory *clip.Inventory
}

// New returns a Compiler backed by inv.
func New(inv *clip.Inventory) *Compiler {
	return &Compiler{Inventory: inv}
}

// Compile produces the Command for plan, writing output to outputPath.
func (c *Compiler) Compile(plan variant.Plan, outputPath string) (Command, error) {
	if err := c.Inventory.Validate(plan.Order); err != nil {
		return Command{}, err
	}
	if len(plan.Order) < 2 {
		return Command{}, ErrInsufficientInputs
	}

	clips := make([]clip.Clip, len(plan.Order))
	for i, id := range plan.Order {
		cl, _ := c.Inventory.Get(id)
		clips[i] = cl
	}

	settings := plan.Settings.MixingSettings
	canvas := canvasFor(settings.Resolution, settings.AspectRatio)

	trimWindows := map[string]duration.TrimWindow{}
	if settings.SmartTrimming && settings.DurationType == config.DurationFixed {
		durClips := make([]duration.Clip, len(clips))
		for i, cl := range clips {
			durClips[i] = duration.Clip{ID: cl.ID, Duration: cl.Duration, Speed: plan.Speeds[cl.ID]}
		}
		windows, err := duration.Solve(durClips, settings.FixedDuration, duration.Distribution(settings.DurationDistributionMode))
		if err != nil {
			return Command{}, fmt.Errorf("compile: duration solve: %w", err)
		}
		for _, w := range windows {
			trimWindows[w.ClipID] = w
		}
	}

	keepAudio := settings.AudioMode == config.AudioKeep

	args := make([]string, 0, 64)
	args = append(args, "ffmpeg", "-hide_banner", "-y", "-loglevel", "error")

	for _, cl := range clips {
		args = append(args, "-i", cl.Path)
	}

	var videoLabels []string
	var audioLabels []string
	var filterParts []string

	for i, cl := range clips {
		speed := plan.Speeds[cl.ID]
		if speed <= 0 {
			speed = 1.0
		}
		var trim *duration.TrimWindow
		if w, ok := trimWindows[cl.ID]; ok {
			w = clampTrim(w, cl.Duration)
			trim = &w
		}

		vLabel := fmt.Sprintf("v%d", i)
		filterParts = append(filterParts, fmt.Sprintf("[%d:v]%s[%s]", i, videoChain(speed, trim, canvas, string(settings.FrameRate)), vLabel))
		videoLabels = append(videoLabels, vLabel)

		if keepAudio {
			aLabel := fmt.Sprintf("a%d", i)
			// The "?" marks the audio stream optional: a clip with no
			// audio track must not abort the whole filter graph.
			filterParts = append(filterParts, fmt.Sprintf("[%d:a?]%s[%s]", i, audioChain(speed), aLabel))
			audioLabels = append(audioLabels, aLabel)
		}
	}

	filterParts = append(filterParts, concatExpr(videoLabels, audioLabels, keepAudio))
	filterGraph := strings.Join(filterParts, ";")

	args = append(args, "-filter_complex", filterGraph)
	args = append(args, "-map", "[outv]")
	if keepAudio {
		args = append(args, "-map", "[outa]")
	}

	if settings.DurationType == config.DurationFixed && !settings.SmartTrimming {
		args = append(args, "-t", formatSeconds(settings.FixedDuration))
	}

	bp := bitratePresets[settings.Bitrate]
	args = append(args,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-preset", bp.Preset,
		"-crf", strconv.Itoa(bp.CRF),
		"-b:v", bp.Bitrate,
		"-g", strconv.Itoa(gopSize),
		"-keyint_min", strconv.Itoa(minKeyframeGap),
		"-movflags", "+faststart",
	)

	if keepAudio {
		args = append(args,
			"-c:a", "aac",
			"-b:a", audioBitrate,
			"-ar", strconv.Itoa(audioSampleRate),
			"-ac", strconv.Itoa(audioChannels),
		)
	} else {
		args = append(args, "-an")
	}

	for k, v := range metadataPresets[settings.MetadataSource] {
		args = append(args, "-metadata", fmt.Sprintf("%s=%s", k, v))
	}

	args = append(args, "-threads", "0", outputPath)

	if err := checkConsistency(args, len(clips), videoLabels); err != nil {
		return Command{}, err
	}

	fps, _ := strconv.Atoi(string(settings.FrameRate))
	settingsJSON, _ := json.Marshal(plan.Settings)

	return Command{
		Args:         args,
		FilterGraph:  filterGraph,
		Width:        canvas.Width,
		Height:       canvas.Height,
		FPS:          fps,
		Bitrate:      bp.Bitrate,
		Duration:     outputDuration(clips, plan.Speeds, trimWindows, settings),
		SettingsJSON: string(settingsJSON),
	}, nil
}

// outputDuration estimates the produced file's duration from the same
// per-clip trim/speed inputs used to build the filter graph, without
// re-probing the encoded output. Each clip contributes either its
// (clamped) trim window or its full duration, divided by its speed; a
// fixed duration without smart trimming is enforced by the "-t" cap
// appended above, so the estimate is capped to match.
func outputDuration(clips []clip.Clip, speeds map[string]float64, trimWindows map[string]duration.TrimWindow, settings config.MixingSettings) float64 {
	var total float64
	for _, cl := range clips {
		speed := speeds[cl.ID]
		if speed <= 0 {
			speed = 1.0
		}
		if w, ok := trimWindows[cl.ID]; ok {
			w = clampTrim(w, cl.Duration)
			total += (w.TrimEndSrc - w.TrimStartSrc) / speed
			continue
		}
		total += cl.Duration / speed
	}
	if settings.DurationType == config.DurationFixed && !settings.SmartTrimming && total > settings.FixedDuration {
		total = settings.FixedDuration
	}
	return total
}

// videoChain builds the per-input video filter expression (without its
// surrounding stream labels), assembled in a fixed stage order: trim,
// speed, scale+pad, fps.
func videoChain(speed float64, trim *duration.TrimWindow, canvas dimensions, frameRate string) string {
	var stages []string

	if trim != nil {
		stages = append(stages,
			fmt.Sprintf("trim=%s:%s", formatSeconds(trim.TrimStartSrc), formatSeconds(trim.TrimEndSrc)),
			"setpts=PTS-STARTPTS",
		)
	}

	if speed != 1.0 {
		stages = append(stages, fmt.Sprintf("setpts=(1/%s)*PTS", formatSeconds(speed)))
	}

	stages = append(stages,
		fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=decrease", canvas.Width, canvas.Height),
		fmt.Sprintf("pad=%d:%d:(ow-iw)/2:(oh-ih)/2:black", canvas.Width, canvas.Height),
		fmt.Sprintf("fps=%s", frameRate),
	)

	return strings.Join(stages, ",")
}

// audioChain builds the per-input audio filter expression: normalisation
// followed by a tempo chain whenever speed differs from 1.0.
func audioChain(speed float64) string {
	stages := []string{
		"aresample=48000",
		"aformat=sample_fmts=fltp:sample_rates=48000:channel_layouts=stereo",
	}
	if speed != 1.0 {
		stages = append(stages, AtempoChain(speed)...)
	}
	return strings.Join(stages, ",")
}

// concatExpr assembles the final concat filter, in its mute or
// keep-audio form depending on keepAudio.
func concatExpr(videoLabels, audioLabels []string, keepAudio bool) string {
	var refs strings.Builder
	for i, v := range videoLabels {
		refs.WriteString("[" + v + "]")
		if keepAudio {
			refs.WriteString("[" + audioLabels[i] + "]")
		}
	}
	k := len(videoLabels)
	if keepAudio {
		return fmt.Sprintf("%sconcat=n=%d:v=1:a=1[outv][outa]", refs.String(), k)
	}
	return fmt.Sprintf("%sconcat=n=%d:v=1:a=0[outv]", refs.String(), k)
}

// clampTrim re-applies the trim-window clamps defensively, even though
// internal/duration already produces a window respecting them.
func clampTrim(w duration.TrimWindow, clipDuration float64) duration.TrimWindow {
	start := w.TrimStartSrc
	end := w.TrimEndSrc
	if start < 0 {
		start = 0
	}
	if start > clipDuration-0.1 {
		start = clipDuration - 0.1
	}
	if start < 0 {
		start = 0
	}
	if end > clipDuration {
		end = clipDuration
	}
	if end < start+0.1 {
		end = start + 0.1
	}
	if end > clipDuration {
		end = clipDuration
	}
	w.TrimStartSrc = start
	w.TrimEndSrc = end
	return w
}

// checkConsistency implements the compiler's own sanity assertion: input
// specifier count, validated clip count, and [vN] label count must all
// agree.
func checkConsistency(args []string, clipCount int, videoLabels []string) error {
	inputCount := 0
	for _, a := range args {
		if a == "-i" {
			inputCount++
		}
	}
	if inputCount != clipCount || len(videoLabels) != clipCount {
		return &ErrConsistency{InputCount: inputCount, ClipCount: clipCount, LabelCount: len(videoLabels)}
	}
	return nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
