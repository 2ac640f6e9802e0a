package proxy

import "strings"

// EncodeRecipe is the fully resolved parameter set for one encode. Fields
// are populated per codec; empty fields are omitted from the transcoder
// invocation. Recipes are derived fresh per run and never persisted.
type EncodeRecipe struct {
	Container    string
	VideoEncoder string
	ScaleWidth   string
	PixelFormat  string
	CRF          string
	Preset       string
	Tune         string
	VideoBitrate string
	Profile      string
	AudioCodec   string
	AudioBitrate string
	AudioRate    string
	FastStart    bool
}

const pcmAudioRate = "48000"

// proresProfiles maps named ProRes profile tokens to prores_ks numeric
// profiles. Unrecognized tokens fall back to LT.
var proresProfiles = map[string]string{
	"proxy":    "0",
	"lt":       "1",
	"standard": "2",
	"hq":       "3",
}

// ResolveContainer returns the container for a profile: the explicit
// override when set, otherwise the codec default.
func ResolveContainer(profile QualityProfile) string {
	if custom := strings.TrimSpace(profile.Container); custom != "" {
		return custom
	}
	switch profile.Codec {
	case CodecProRes:
		return "mov"
	case CodecDNxHD:
		return "mxf"
	default:
		return "mp4"
	}
}

// ResolveRecipe derives the concrete encode parameters for a profile.
// advancedRateControl selects CRF-based H.264 encoding when the active
// FFmpeg carries libx264; without it H.264 falls back to constrained
// bitrate via libopenh264. Unknown codecs always take the constrained
// bitrate path, regardless of the capability flag.
func ResolveRecipe(profile QualityProfile, advancedRateControl bool) EncodeRecipe {
	recipe := EncodeRecipe{
		Container:  ResolveContainer(profile),
		ScaleWidth: profile.Scale,
	}

	switch profile.Codec {
	case CodecProRes:
		value, ok := proresProfiles[strings.ToLower(strings.TrimSpace(profile.CodecProfile))]
		if !ok {
			value = proresProfiles["lt"]
		}
		recipe.VideoEncoder = "prores_ks"
		recipe.Profile = value
		recipe.AudioCodec = "pcm_s16le"
		recipe.AudioRate = pcmAudioRate

	case CodecDNxHD:
		value := strings.TrimSpace(profile.CodecProfile)
		if value == "" {
			value = "dnxhr_sq"
		}
		recipe.VideoEncoder = "dnxhd"
		recipe.Profile = value
		recipe.PixelFormat = "yuv422p"
		recipe.AudioCodec = "pcm_s16le"
		recipe.AudioRate = pcmAudioRate

	case CodecH264:
		recipe.PixelFormat = "yuv420p"
		if advancedRateControl {
			recipe.VideoEncoder = "libx264"
			recipe.CRF = profile.CRF
			recipe.Preset = profile.Preset
			recipe.Tune = profile.Tune
		} else {
			recipe.VideoEncoder = "libopenh264"
			recipe.VideoBitrate = profile.VideoBitrate
		}
		recipe.AudioCodec = "aac"
		recipe.AudioBitrate = profile.AudioBitrate
		recipe.FastStart = true

	default:
		// Unknown codec token: constrained-bitrate H.264, never CRF.
		recipe.PixelFormat = "yuv420p"
		recipe.VideoEncoder = "libopenh264"
		recipe.VideoBitrate = profile.VideoBitrate
		recipe.AudioCodec = "aac"
		recipe.AudioBitrate = profile.AudioBitrate
		recipe.FastStart = true
	}

	return recipe
}
