// Package config holds the closed MixingSettings option set the core
// consumes, its defaults, enum validation, and CLI flag parsing.
// Unrecognized enum tokens fall back to a documented default with
// a warning rather than failing the job — see Validate.
package config

import "fmt"

// --- Enum types for validated string fields ---

// MetadataSource selects the constant metadata key/value set injected into
// the output container.
type MetadataSource string

const (
	MetadataNormal MetadataSource = "normal"
	MetadataCapcut MetadataSource = "capcut"
	MetadataVN     MetadataSource = "vn"
	MetadataInshot MetadataSource = "inshot"
)

// Bitrate selects the target video bitrate/preset/CRF tier.
type Bitrate string

const (
	BitrateLow    Bitrate = "low"
	BitrateMedium Bitrate = "medium"
	BitrateHigh   Bitrate = "high"
)

// Resolution selects the base output canvas before aspect-ratio override.
type Resolution string

const (
	ResolutionSD     Resolution = "sd"
	ResolutionHD     Resolution = "hd"
	ResolutionFullHD Resolution = "fullhd"
)

// FrameRate selects the output frames-per-second.
type FrameRate string

const (
	FrameRate24 FrameRate = "24"
	FrameRate30 FrameRate = "30"
	FrameRate60 FrameRate = "60"
)

// AspectRatio overrides canvas dimensions; "original" keeps the base
// resolution untouched.
type AspectRatio string

const (
	AspectOriginal        AspectRatio = "original"
	AspectTikTok          AspectRatio = "tiktok"
	AspectInstagramReels  AspectRatio = "instagram_reels"
	AspectInstagramSquare AspectRatio = "instagram_square"
	AspectYouTube         AspectRatio = "youtube"
	AspectYouTubeShorts   AspectRatio = "youtube_shorts"
)

// GroupMixingMode controls whether group order is preserved or shuffled.
type GroupMixingMode string

const (
	GroupMixingStrict GroupMixingMode = "strict"
	GroupMixingRandom GroupMixingMode = "random"
)

// DurationType selects whether output length is driven by source or by a
// fixed target.
type DurationType string

const (
	DurationOriginal DurationType = "original"
	DurationFixed    DurationType = "fixed"
)

// DurationDistribution selects how a fixed target duration is apportioned
// across clips.
type DurationDistribution string

const (
	DistributionProportional DurationDistribution = "proportional"
	DistributionEqual        DurationDistribution = "equal"
	DistributionWeighted     DurationDistribution = "weighted"
)

// AudioMode selects whether the filter graph produces an audio stream.
type AudioMode string

const (
	AudioKeep AudioMode = "keep"
	AudioMute AudioMode = "mute"
)

// ColorMode controls terminal color output. It sits outside MixingSettings
// since it governs CLI presentation, not variant generation.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// MixingSettings is the closed set of knobs that controls variant
// generation. It is consumed by value throughout the planner and
// compiler; the planner never mutates a caller's settings (see
// EffectiveSettings in internal/variant).
type MixingSettings struct {
	OrderMixing            bool
	SpeedMixing            bool
	DifferentStartingVideo bool
	AllowedSpeeds          []float64 // must include 1.0

	GroupMixing     bool
	GroupMixingMode GroupMixingMode

	MetadataSource MetadataSource
	Bitrate        Bitrate
	Resolution     Resolution
	FrameRate      FrameRate
	AspectRatio    AspectRatio

	DurationType             DurationType
	FixedDuration            float64
	DurationDistributionMode DurationDistribution
	SmartTrimming            bool

	AudioMode AudioMode

	OutputCount int
}

// Default documents the fallback value used by Validate for each
// enum-valued field.
func Default() MixingSettings {
	return MixingSettings{
		OrderMixing:              false,
		SpeedMixing:              false,
		DifferentStartingVideo:   false,
		AllowedSpeeds:            []float64{1.0},
		GroupMixing:              false,
		GroupMixingMode:          GroupMixingStrict,
		MetadataSource:           MetadataNormal,
		Bitrate:                  BitrateMedium,
		Resolution:               ResolutionHD,
		FrameRate:                FrameRate30,
		AspectRatio:              AspectOriginal,
		DurationType:             DurationOriginal,
		DurationDistributionMode: DistributionProportional,
		SmartTrimming:            false,
		AudioMode:                AudioKeep,
		OutputCount:              1,
	}
}

// ValidationWarning records one enum field that fell back to its default.
type ValidationWarning struct {
	Field       string
	Got         string
	UsedDefault string
}

func (w ValidationWarning) String() string {
	return fmt.Sprintf("%s: unrecognized value %q, using default %q", w.Field, w.Got, w.UsedDefault)
}

// Validate checks every enum field against its closed set, substituting the
// documented default and recording a warning for each substitution. It
// also checks the planner-arithmetic invariants that must be fatal before
// any output is produced: OutputCount > 0, and FixedDuration > 0 whenever
// DurationType is "fixed".
func (s *MixingSettings) Validate() ([]ValidationWarning, error) {
	var warnings []ValidationWarning
	def := Default()

	switch s.MetadataSource {
	case MetadataNormal, MetadataCapcut, MetadataVN, MetadataInshot:
	default:
		warnings = append(warnings, ValidationWarning{"metadata_source", string(s.MetadataSource), string(def.MetadataSource)})
		s.MetadataSource = def.MetadataSource
	}

	switch s.Bitrate {
	case BitrateLow, BitrateMedium, BitrateHigh:
	default:
		warnings = append(warnings, ValidationWarning{"bitrate", string(s.Bitrate), string(def.Bitrate)})
		s.Bitrate = def.Bitrate
	}

	switch s.Resolution {
	case ResolutionSD, ResolutionHD, ResolutionFullHD:
	default:
		warnings = append(warnings, ValidationWarning{"resolution", string(s.Resolution), string(def.Resolution)})
		s.Resolution = def.Resolution
	}

	switch s.FrameRate {
	case FrameRate24, FrameRate30, FrameRate60:
	default:
		warnings = append(warnings, ValidationWarning{"frame_rate", string(s.FrameRate), string(def.FrameRate)})
		s.FrameRate = def.FrameRate
	}

	switch s.AspectRatio {
	case AspectOriginal, AspectTikTok, AspectInstagramReels, AspectInstagramSquare, AspectYouTube, AspectYouTubeShorts:
	default:
		warnings = append(warnings, ValidationWarning{"aspect_ratio", string(s.AspectRatio), string(def.AspectRatio)})
		s.AspectRatio = def.AspectRatio
	}

	switch s.DurationType {
	case DurationOriginal, DurationFixed:
	default:
		warnings = append(warnings, ValidationWarning{"duration_type", string(s.DurationType), string(def.DurationType)})
		s.DurationType = def.DurationType
	}

	switch s.DurationDistributionMode {
	case DistributionProportional, DistributionEqual, DistributionWeighted:
	default:
		warnings = append(warnings, ValidationWarning{"duration_distribution_mode", string(s.DurationDistributionMode), string(def.DurationDistributionMode)})
		s.DurationDistributionMode = def.DurationDistributionMode
	}

	switch s.AudioMode {
	case AudioKeep, AudioMute:
	default:
		warnings = append(warnings, ValidationWarning{"audio_mode", string(s.AudioMode), string(def.AudioMode)})
		s.AudioMode = def.AudioMode
	}

	switch s.GroupMixingMode {
	case GroupMixingStrict, GroupMixingRandom:
	default:
		warnings = append(warnings, ValidationWarning{"group_mixing_mode", string(s.GroupMixingMode), string(def.GroupMixingMode)})
		s.GroupMixingMode = def.GroupMixingMode
	}

	if s.OutputCount <= 0 {
		return warnings, fmt.Errorf("output_count must be positive (got %d)", s.OutputCount)
	}
	if s.DurationType == DurationFixed && s.FixedDuration <= 0 {
		return warnings, fmt.Errorf("fixed_duration must be positive when duration_type=fixed (got %v)", s.FixedDuration)
	}

	hasUnity := false
	for _, sp := range s.AllowedSpeeds {
		if sp == 1.0 {
			hasUnity = true
			break
		}
	}
	if len(s.AllowedSpeeds) == 0 {
		s.AllowedSpeeds = []float64{1.0}
	} else if !hasUnity {
		s.AllowedSpeeds = append(append([]float64{}, s.AllowedSpeeds...), 1.0)
	}

	return warnings, nil
}
