package config

// This file implements CLI flag parsing for MixingSettings plus the
// run-level flags (seed, directories, check/verbose/log) the core itself
// does not know about. Flags are grouped into mixing, output, and utility.

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RunOptions holds the flags the CLI needs beyond MixingSettings: input
// locations, a job slug, the RNG seed, and display/diagnostics toggles.
type RunOptions struct {
	InputDir  string
	OutputDir string
	JobSlug   string
	Seed      int64

	CheckOnly bool
	Verbose   bool
	LogFile   string
	ColorMode ColorMode

	Concurrency int
}

// DefaultRunOptions returns the run-level defaults.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		JobSlug:     "variant",
		Seed:        0,
		ColorMode:   ColorAuto,
		Concurrency: 1,
	}
}

// ParseFlags parses os.Args into settings and run, registering a flag for
// every MixingSettings field plus the run-level flags above. On --help or
// --version it prints and exits; on error it returns non-nil.
func ParseFlags(settings *MixingSettings, run *RunOptions, version string) error {
	fs := flag.NewFlagSet("variantmix", flag.ContinueOnError)

	var negated negatedFlags
	var allowedSpeedsRaw string

	defineMixingFlags(fs, settings, &allowedSpeedsRaw)
	defineOutputFlags(fs, settings, run, &negated)
	defineUtilityFlags(fs, run, &negated)

	fs.Usage = func() { printUsage(fs, version) }

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(run, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "variantmix v"+version)
		os.Exit(0)
	}

	if allowedSpeedsRaw != "" {
		speeds, err := parseSpeedList(allowedSpeedsRaw)
		if err != nil {
			return err
		}
		settings.AllowedSpeeds = speeds
	}

	return parsePositionalArgs(fs, run)
}

type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineMixingFlags registers one flag per MixingSettings field.
func defineMixingFlags(fs *flag.FlagSet, s *MixingSettings, allowedSpeedsRaw *string) {
	fs.BoolVar(&s.OrderMixing, "order-mixing", s.OrderMixing, "Enumerate full clip-order permutations")
	fs.BoolVar(&s.SpeedMixing, "speed-mixing", s.SpeedMixing, "Enumerate the Cartesian product of allowed speeds")
	fs.BoolVar(&s.DifferentStartingVideo, "different-starting-video", s.DifferentStartingVideo, "Guarantee a distinct first clip per output")
	fs.StringVar(allowedSpeedsRaw, "allowed-speeds", "", "Comma-separated playback speeds, e.g. 0.95,1.0,1.05")

	fs.BoolVar(&s.GroupMixing, "group-mixing", s.GroupMixing, "Draw one clip per group instead of a flat clip list")
	fs.Var(&groupMixingModeValue{&s.GroupMixingMode}, "group-mixing-mode", "Group order: strict | random")

	fs.Var(&metadataSourceValue{&s.MetadataSource}, "metadata-source", "Container metadata preset: normal | capcut | vn | inshot")
	fs.Var(&bitrateValue{&s.Bitrate}, "bitrate", "Video bitrate tier: low | medium | high")
	fs.Var(&resolutionValue{&s.Resolution}, "resolution", "Base canvas: sd | hd | fullhd")
	fs.Var(&frameRateValue{&s.FrameRate}, "frame-rate", "Output frame rate: 24 | 30 | 60")
	fs.Var(&aspectRatioValue{&s.AspectRatio}, "aspect-ratio", "Aspect override: original | tiktok | instagram_reels | instagram_square | youtube | youtube_shorts")

	fs.Var(&durationTypeValue{&s.DurationType}, "duration-type", "Output length source: original | fixed")
	fs.Float64Var(&s.FixedDuration, "fixed-duration", s.FixedDuration, "Target duration in seconds when duration-type=fixed")
	fs.Var(&distributionValue{&s.DurationDistributionMode}, "distribution", "Fixed-duration apportionment: proportional | equal | weighted")
	fs.BoolVar(&s.SmartTrimming, "smart-trimming", s.SmartTrimming, "Trim in the adjusted (post-speed) timeline instead of appending a hard cap")

	fs.Var(&audioModeValue{&s.AudioMode}, "audio-mode", "Output audio: keep | mute")

	fs.IntVar(&s.OutputCount, "output-count", s.OutputCount, "Number of variant outputs to produce")
}

func defineOutputFlags(fs *flag.FlagSet, s *MixingSettings, run *RunOptions, n *negatedFlags) {
	fs.StringVar(&run.JobSlug, "slug", run.JobSlug, "Base name used in output filenames")
	fs.Int64Var(&run.Seed, "seed", run.Seed, "RNG seed for deterministic plan generation")
	fs.IntVar(&run.Concurrency, "concurrency", run.Concurrency, "Maximum number of jobs encoded concurrently")

	fs.BoolVar(&run.Verbose, "verbose", run.Verbose, "Verbose output (accepted; status debug lines are always logged)")
	fs.BoolVar(&run.Verbose, "v", run.Verbose, "Same as --verbose")
	fs.StringVar(&run.LogFile, "log", run.LogFile, "Append logs to file")
	fs.StringVar(&run.LogFile, "l", run.LogFile, "Same as --log")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")

	fs.BoolVar(&run.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&run.CheckOnly, "c", false, "Same as --check")
}

func defineUtilityFlags(fs *flag.FlagSet, _ *RunOptions, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

func applyNegatedFlags(run *RunOptions, n *negatedFlags) {
	if n.noColor {
		run.ColorMode = ColorNever
	} else if n.forceColor {
		run.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputDir/OutputDir from the two positional
// arguments when not in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, run *RunOptions) error {
	if run.CheckOnly {
		return nil
	}
	args := fs.Args()
	if len(args) != 2 {
		return fmt.Errorf("need exactly input_dir and output_dir")
	}
	run.InputDir = args[0]
	run.OutputDir = args[1]
	return nil
}

func parseSpeedList(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	speeds := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("allowed-speeds: %q is not a number", p)
		}
		speeds = append(speeds, v)
	}
	if len(speeds) == 0 {
		return nil, fmt.Errorf("allowed-speeds: at least one speed is required")
	}
	return speeds, nil
}

// printUsage writes the help text to stderr.
func printUsage(_ *flag.FlagSet, version string) {
	const col1 = 32
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "variantmix v" + version + " — combinatorial variant planner and filter-graph compiler"},
		{"", ""},
		{"  variantmix [OPTIONS] <input_dir> <output_dir>", ""},
		{"", ""},
		{"Mixing", ""},
		{"  --order-mixing", "Enumerate full clip-order permutations"},
		{"  --speed-mixing", "Enumerate the Cartesian product of allowed speeds"},
		{"  --different-starting-video", "Guarantee a distinct first clip per output"},
		{"  --allowed-speeds <list>", "Comma-separated playback speeds (default: 1.0)"},
		{"  --group-mixing", "Draw one clip per group"},
		{"  --group-mixing-mode <strict|random>", "Group order handling"},
		{"", ""},
		{"Output format", ""},
		{"  --metadata-source <preset>", "Container metadata preset (default: normal)"},
		{"  --bitrate <low|medium|high>", "Video bitrate tier (default: medium)"},
		{"  --resolution <sd|hd|fullhd>", "Base canvas (default: hd)"},
		{"  --frame-rate <24|30|60>", "Output frame rate (default: 30)"},
		{"  --aspect-ratio <name>", "Aspect override (default: original)"},
		{"  --audio-mode <keep|mute>", "Output audio (default: keep)"},
		{"", ""},
		{"Duration", ""},
		{"  --duration-type <original|fixed>", "Output length source (default: original)"},
		{"  --fixed-duration <seconds>", "Target duration when duration-type=fixed"},
		{"  --distribution <mode>", "Apportionment across clips (default: proportional)"},
		{"  --smart-trimming", "Trim in the adjusted timeline instead of a hard cap"},
		{"", ""},
		{"Run", ""},
		{"  --output-count <n>", "Number of variant outputs (default: 1)"},
		{"  --slug <name>", "Base name used in output filenames"},
		{"  --seed <n>", "RNG seed for deterministic plan generation"},
		{"  --concurrency <n>", "Maximum concurrent jobs (default: 1)"},
		{"", ""},
		{"Display", ""},
		{"  -v, --verbose", "Verbose output (accepted; status debug lines are always logged)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"", ""},
		{"Utility", ""},
		{"  -c, --check", "Run system diagnostics and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		switch {
		case l.flags == "" && l.desc == "":
			fmt.Fprintln(os.Stderr)
		case l.desc == "":
			fmt.Fprintln(os.Stderr, l.flags)
		case l.flags == "":
			fmt.Fprintln(os.Stderr, l.desc)
		default:
			padding := col1 - len(l.flags)
			if padding < 1 {
				padding = 1
			}
			fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
		}
	}
}

// flag.Value adapters for each MixingSettings enum type.

type metadataSourceValue struct{ p *MetadataSource }

func (v *metadataSourceValue) String() string { return string(*v.p) }
func (v *metadataSourceValue) Set(s string) error {
	*v.p = MetadataSource(strings.ToLower(s))
	return nil
}

type bitrateValue struct{ p *Bitrate }

func (v *bitrateValue) String() string { return string(*v.p) }
func (v *bitrateValue) Set(s string) error {
	*v.p = Bitrate(strings.ToLower(s))
	return nil
}

type resolutionValue struct{ p *Resolution }

func (v *resolutionValue) String() string { return string(*v.p) }
func (v *resolutionValue) Set(s string) error {
	*v.p = Resolution(strings.ToLower(s))
	return nil
}

type frameRateValue struct{ p *FrameRate }

func (v *frameRateValue) String() string { return string(*v.p) }
func (v *frameRateValue) Set(s string) error {
	*v.p = FrameRate(s)
	return nil
}

type aspectRatioValue struct{ p *AspectRatio }

func (v *aspectRatioValue) String() string { return string(*v.p) }
func (v *aspectRatioValue) Set(s string) error {
	*v.p = AspectRatio(strings.ToLower(s))
	return nil
}

type groupMixingModeValue struct{ p *GroupMixingMode }

func (v *groupMixingModeValue) String() string { return string(*v.p) }
func (v *groupMixingModeValue) Set(s string) error {
	*v.p = GroupMixingMode(strings.ToLower(s))
	return nil
}

type durationTypeValue struct{ p *DurationType }

func (v *durationTypeValue) String() string { return string(*v.p) }
func (v *durationTypeValue) Set(s string) error {
	*v.p = DurationType(strings.ToLower(s))
	return nil
}

type distributionValue struct{ p *DurationDistribution }

func (v *distributionValue) String() string { return string(*v.p) }
func (v *distributionValue) Set(s string) error {
	*v.p = DurationDistribution(strings.ToLower(s))
	return nil
}

type audioModeValue struct{ p *AudioMode }

func (v *audioModeValue) String() string { return string(*v.p) }
func (v *audioModeValue) Set(s string) error {
	*v.p = AudioMode(strings.ToLower(s))
	return nil
}
