package ffmpeg

import "prevgen/internal/proxy"

// BuildArgs converts a transcode request into the FFmpeg argument list.
// Recipe fields left empty by the resolver are omitted.
func BuildArgs(req proxy.TranscodeRequest) []string {
	r := req.Recipe
	args := []string{"-i", req.Input}

	if r.ScaleWidth != "" {
		// -2 rounds the auto height to the nearest even value, required
		// by yuv420p/yuv422p subsampling.
		args = append(args, "-vf", "scale="+r.ScaleWidth+":-2")
	}
	if r.PixelFormat != "" {
		args = append(args, "-pix_fmt", r.PixelFormat)
	}

	args = append(args, "-c:v", r.VideoEncoder)
	if r.CRF != "" {
		args = append(args, "-crf", r.CRF, "-preset", r.Preset)
		if r.Tune != "" {
			args = append(args, "-tune", r.Tune)
		}
	}
	if r.VideoBitrate != "" {
		args = append(args, "-b:v", r.VideoBitrate)
	}
	if r.Profile != "" {
		args = append(args, "-profile:v", r.Profile)
	}

	args = append(args, "-c:a", r.AudioCodec)
	if r.AudioBitrate != "" {
		args = append(args, "-b:a", r.AudioBitrate)
	}
	if r.AudioRate != "" {
		args = append(args, "-ar", r.AudioRate)
	}
	if r.FastStart {
		args = append(args, "-movflags", "+faststart")
	}

	args = append(args, "-f", r.Container, "-loglevel", "error", "-y", req.Output)
	return args
}

// PlaceholderArgs builds the argument list for the single-frame gray
// still image returned when the preview output is disabled.
func PlaceholderArgs(output string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=c=gray:s=64x64:d=1",
		"-frames:v", "1", "-y", output,
	}
}
