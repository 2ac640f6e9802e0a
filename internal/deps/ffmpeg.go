package deps

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"prevgen/internal/logging"
	"prevgen/internal/platform"
)

// Resolution describes the FFmpeg binary chosen for this run and the
// rate-control capability discovered by probing it.
type Resolution struct {
	Binary string
	// AdvancedRateControl is true when the binary carries libx264,
	// enabling CRF/preset rate control instead of constrained bitrate.
	AdvancedRateControl bool
	// BuiltIn reports whether the P5-bundled FFmpeg was selected.
	BuiltIn bool
}

// queryEncoders runs "<binary> -encoders" and returns its output. A test
// hook so capability probing works without an FFmpeg install.
var queryEncoders = func(ctx context.Context, binary string) (string, error) {
	out, err := exec.CommandContext(ctx, binary, "-encoders").CombinedOutput()
	return string(out), err
}

// ResolveFFmpeg selects the FFmpeg binary for this run. A configured
// custom path wins when it exists and carries libx264; otherwise the
// P5 built-in binary is used, falling back to PATH lookup when the
// install does not bundle one. The capability probe runs once here; the
// result is treated as given for the rest of the run.
func ResolveFFmpeg(ctx context.Context, customPath string, env platform.Env, logger *slog.Logger) (Resolution, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	if custom := strings.TrimSpace(customPath); custom != "" {
		if fileExists(custom) {
			if out, err := queryEncoders(ctx, custom); err == nil && HasAdvancedRateControl(out) {
				logger.Info("using custom FFmpeg with libx264", logging.String("binary", custom))
				return Resolution{Binary: custom, AdvancedRateControl: true}, nil
			}
		}
		logger.Warn("custom FFmpeg invalid or lacks libx264, using P5 built-in",
			logging.String("binary", custom))
	}

	builtin := filepath.Join(env.BinDir, platform.FFmpegName())
	if fileExists(builtin) {
		return Resolution{Binary: builtin, BuiltIn: true}, nil
	}

	if resolved, err := exec.LookPath("ffmpeg"); err == nil {
		advanced := false
		if out, err := queryEncoders(ctx, resolved); err == nil {
			advanced = HasAdvancedRateControl(out)
		}
		logger.Info("P5 built-in FFmpeg not found, using PATH",
			logging.String("binary", resolved))
		return Resolution{Binary: resolved, AdvancedRateControl: advanced}, nil
	}

	return Resolution{}, fmt.Errorf("no FFmpeg binary found (looked for %s and ffmpeg on PATH)", builtin)
}

// HasAdvancedRateControl reports whether an "ffmpeg -encoders" listing
// includes the libx264 encoder.
func HasAdvancedRateControl(encodersOutput string) bool {
	return strings.Contains(encodersOutput, "libx264")
}
