package compile

import "github.com/variantforge/variantmix/internal/config"

type dimensions struct {
	Width  int
	Height int
}

// baseCanvas maps settings.Resolution to its base canvas.
var baseCanvas = map[config.Resolution]dimensions{
	config.ResolutionSD:     {854, 480},
	config.ResolutionHD:     {1280, 720},
	config.ResolutionFullHD: {1920, 1080},
}

// aspectOverride maps a non-"original" aspect ratio preset to the canvas
// it forces, overriding baseCanvas entirely.
var aspectOverride = map[config.AspectRatio]dimensions{
	config.AspectTikTok:          {1080, 1920},
	config.AspectInstagramReels:  {1080, 1920},
	config.AspectYouTubeShorts:   {1080, 1920},
	config.AspectInstagramSquare: {1080, 1080},
	config.AspectYouTube:         {1920, 1080},
}

// canvasFor resolves the output width/height for the given resolution and
// aspect ratio selection.
func canvasFor(res config.Resolution, aspect config.AspectRatio) dimensions {
	if d, ok := aspectOverride[aspect]; ok {
		return d
	}
	if d, ok := baseCanvas[res]; ok {
		return d
	}
	return baseCanvas[config.ResolutionHD]
}

type bitrateSpec struct {
	Preset  string
	CRF     int
	Bitrate string
}

// bitratePresets maps settings.Bitrate to the encoder preset/CRF/target
// bitrate triple.
var bitratePresets = map[config.Bitrate]bitrateSpec{
	config.BitrateLow:    {Preset: "faster", CRF: 28, Bitrate: "1M"},
	config.BitrateMedium: {Preset: "medium", CRF: 23, Bitrate: "4M"},
	config.BitrateHigh:   {Preset: "slow", CRF: 18, Bitrate: "8M"},
}

// metadataPresets maps settings.MetadataSource to the fixed key/value set
// injected into the output container. "normal" injects nothing.
var metadataPresets = map[config.MetadataSource]map[string]string{
	config.MetadataNormal: {},
	config.MetadataCapcut: {
		"encoder":      "Lavf58.76.100",
		"software":     "CapCut",
		"comment":      "Exported by CapCut",
		"handler_name": "CapCut",
	},
	config.MetadataVN: {
		"encoder":      "Lavf58.76.100",
		"software":     "VN Video Editor",
		"comment":      "Exported by VN",
		"handler_name": "VN",
	},
	config.MetadataInshot: {
		"encoder":      "Lavf58.76.100",
		"software":     "InShot",
		"comment":      "Exported by InShot",
		"handler_name": "InShot",
	},
}

const (
	gopSize         = 250
	minKeyframeGap  = 25
	audioSampleRate = 48000
	audioBitrate    = "128k"
	audioChannels   = 2
)
