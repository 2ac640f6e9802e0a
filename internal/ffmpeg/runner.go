package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"prevgen/internal/logging"
	"prevgen/internal/proxy"
)

// Runner executes FFmpeg jobs. It implements proxy.Transcoder.
type Runner struct {
	binary string
	logger *slog.Logger
}

// NewRunner returns a runner for the given FFmpeg binary.
func NewRunner(binary string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{binary: binary, logger: logger}
}

// Transcode runs one encode job and blocks until completion. FFmpeg
// diagnostics arrive on stderr and are forwarded to the log sink whether
// or not the job succeeds.
func (r *Runner) Transcode(ctx context.Context, req proxy.TranscodeRequest) error {
	if err := os.MkdirAll(filepath.Dir(req.Output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return r.run(ctx, BuildArgs(req))
}

// Placeholder synthesizes the single-frame still image.
func (r *Runner) Placeholder(ctx context.Context, output string) error {
	return r.run(ctx, PlaceholderArgs(output))
}

func (r *Runner) run(ctx context.Context, args []string) error {
	r.logger.Debug("invoking ffmpeg",
		logging.String("binary", r.binary),
		logging.String("args", strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, r.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if diag := strings.TrimSpace(stderr.String()); diag != "" {
		r.logger.Info("ffmpeg diagnostics", logging.String("stderr", diag))
	}
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
