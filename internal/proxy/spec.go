package proxy

import "strings"

// Tier identifies one of the two quality levels a proxy can be encoded at.
type Tier int

const (
	TierPreview Tier = iota
	TierWorkflow
)

// String returns the configuration token for the tier.
func (t Tier) String() string {
	if t == TierWorkflow {
		return "workflow"
	}
	return "preview"
}

// ParseTier maps a configuration token to a Tier. The second return value
// reports whether the token was recognized.
func ParseTier(value string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "preview":
		return TierPreview, true
	case "workflow":
		return TierWorkflow, true
	default:
		return TierPreview, false
	}
}

// Codec is the closed set of video codecs the generator knows how to
// resolve parameters for. CodecUnknown is a deliberate member: tokens that
// do not match a supported codec resolve to the constrained-bitrate H.264
// recipe rather than failing.
type Codec int

const (
	CodecH264 Codec = iota
	CodecProRes
	CodecDNxHD
	CodecUnknown
)

// String returns the configuration token for the codec.
func (c Codec) String() string {
	switch c {
	case CodecH264:
		return "h264"
	case CodecProRes:
		return "prores"
	case CodecDNxHD:
		return "dnxhd"
	default:
		return "unknown"
	}
}

// ParseCodec maps a configuration token to a Codec. Unrecognized tokens
// yield CodecUnknown.
func ParseCodec(value string) Codec {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "h264":
		return CodecH264
	case "prores":
		return CodecProRes
	case "dnxhd":
		return CodecDNxHD
	default:
		return CodecUnknown
	}
}

// OutputSpec describes one of the two consumers of generated proxies. The
// source tier is independent of the output's own name so a single encode
// can serve both outputs.
type OutputSpec struct {
	Enabled bool
	Source  Tier
}

// QualityProfile holds the encode settings for one tier. Values are read
// from configuration once at startup and never mutated.
type QualityProfile struct {
	Scale        string
	VideoBitrate string
	AudioBitrate string
	Codec        Codec
	CodecProfile string
	Container    string // explicit container override; empty selects by codec
	CRF          string
	Preset       string
	Tune         string
}

// RenditionSet tracks the transient artifacts produced during one run.
// Every member is either returned to the caller, copied to the workflow
// destination, or deleted before the process exits.
type RenditionSet struct {
	PreviewPath  string
	WorkflowPath string
}

// Path returns the artifact path recorded for the given tier.
func (r RenditionSet) Path(t Tier) string {
	if t == TierWorkflow {
		return r.WorkflowPath
	}
	return r.PreviewPath
}
