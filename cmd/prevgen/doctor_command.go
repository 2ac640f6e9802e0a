package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"prevgen/internal/deps"
	"prevgen/internal/platform"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external dependencies and encoder capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			env := ctx.environment()
			logger := newLogger(cfg, env, false)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "P5 install root: %s\n", env.Root)
			fmt.Fprintf(out, "Temp directory:  %s\n", env.TempDir)

			resolution, resolveErr := deps.ResolveFFmpeg(cmd.Context(), cfg.Transcoder.FFmpegPath, env, logger)

			rows := make([][]string, 0, 3)
			statuses := deps.CheckBinaries([]deps.Requirement{
				{
					Name:        "FFmpeg (custom)",
					Command:     cfg.Transcoder.FFmpegPath,
					Description: "Custom build with libx264",
					Optional:    true,
				},
				{
					Name:        "FFmpeg (P5 built-in)",
					Command:     builtinFFmpegPath(env),
					Description: "Bundled with P5, libopenh264 only",
				},
			})
			for _, status := range statuses {
				rows = append(rows, []string{status.Name, status.Command, availabilityLabel(status), status.Detail})
			}

			rateControl := "constrained bitrate"
			if resolveErr == nil && resolution.AdvancedRateControl {
				rateControl = "CRF (libx264)"
			}
			selected := "none"
			if resolveErr == nil {
				selected = resolution.Binary
			}
			rows = append(rows, []string{"Active transcoder", selected, rateControl, ""})

			fmt.Fprintln(out, renderTable([]string{"Dependency", "Command", "Status", "Detail"}, rows))

			if resolveErr != nil {
				return fmt.Errorf("no usable FFmpeg: %w", resolveErr)
			}
			return nil
		},
	}
}

func builtinFFmpegPath(env platform.Env) string {
	return filepath.Join(env.BinDir, platform.FFmpegName())
}

func availabilityLabel(status deps.Status) string {
	if status.Available {
		return "ok"
	}
	if status.Optional {
		return "skipped"
	}
	return "missing"
}
