package config

const (
	defaultPreviewScale        = "320"
	defaultPreviewVideoBitrate = "256k"
	defaultPreviewAudioBitrate = "64k"
	defaultPreviewCRF          = "28"
	defaultPreviewPreset       = "veryfast"
	defaultPreviewTune         = "fastdecode"

	defaultWorkflowScale        = "1920"
	defaultWorkflowVideoBitrate = "5000k"
	defaultWorkflowAudioBitrate = "128k"
	defaultWorkflowCRF          = "18"
	defaultWorkflowPreset       = "medium"

	defaultCodec        = "h264"
	defaultRemoveLevels = 1
	defaultAppendFolder = "proxies"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
)

// Default returns a Config populated with repository defaults. They match
// the stock P5 proxy generator: both outputs enabled, each sourced from
// its own tier, H.264 for both, and workflow proxies stored in a
// "proxies" folder beside the source footage.
func Default() Config {
	return Config{
		Outputs: Outputs{
			Preview:  Output{Enabled: true, Source: "preview"},
			Workflow: Output{Enabled: true, Source: "workflow"},
		},
		Quality: Qualities{
			Preview: Quality{
				Scale:        defaultPreviewScale,
				VideoBitrate: defaultPreviewVideoBitrate,
				AudioBitrate: defaultPreviewAudioBitrate,
				Codec:        defaultCodec,
				CRF:          defaultPreviewCRF,
				Preset:       defaultPreviewPreset,
				Tune:         defaultPreviewTune,
			},
			Workflow: Quality{
				Scale:        defaultWorkflowScale,
				VideoBitrate: defaultWorkflowVideoBitrate,
				AudioBitrate: defaultWorkflowAudioBitrate,
				Codec:        defaultCodec,
				CRF:          defaultWorkflowCRF,
				Preset:       defaultWorkflowPreset,
			},
		},
		Mapping: Mapping{
			RemoveLevels: defaultRemoveLevels,
			AppendFolder: defaultAppendFolder,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
