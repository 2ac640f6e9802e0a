package proxy

import "context"

// TranscodeRequest carries everything one encode needs: the source file,
// the destination path, and the resolved recipe.
type TranscodeRequest struct {
	Input  string
	Output string
	Recipe EncodeRecipe
}

// Transcoder executes encode jobs. The production implementation spawns
// FFmpeg; tests substitute a fake so the decision logic runs without
// processes. Each call blocks until the job finishes.
type Transcoder interface {
	// Transcode produces req.Output from req.Input using req.Recipe.
	Transcode(ctx context.Context, req TranscodeRequest) error

	// Placeholder writes a minimal single-frame still image to output,
	// used as the return artifact when the preview output is disabled.
	Placeholder(ctx context.Context, output string) error
}
