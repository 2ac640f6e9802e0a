package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prevgen/internal/deps"
	"prevgen/internal/ffmpeg"
	"prevgen/internal/logging"
	"prevgen/internal/proxy"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate proxies for a source file",
		Long: "Generates the configured proxy renditions for one source file and\n" +
			"prints the path of the artifact returned to P5 as the only line on\n" +
			"standard output. All diagnostics go to the log file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(ctx, cmd, args[0])
		},
	}
}

func runGenerate(ctx *commandContext, cmd *cobra.Command, sourceFile string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	env := ctx.environment()

	// Standard output is the machine-readable result channel P5 parses,
	// so the generate path logs to the file sink only.
	logger := newLogger(cfg, env, true)

	resolution, err := deps.ResolveFFmpeg(cmd.Context(), cfg.Transcoder.FFmpegPath, env, logger)
	if err != nil {
		logger.Error("ffmpeg resolution failed", logging.Error(err))
		return err
	}

	runner := ffmpeg.NewRunner(resolution.Binary, logger)
	generator := proxy.New(buildProxyOptions(cfg, env, resolution), runner, logger)

	returnPath, err := generator.Generate(cmd.Context(), sourceFile)
	if err != nil {
		logger.Error("proxy generation failed",
			logging.String("source", sourceFile), logging.Error(err))
		return err
	}

	// The single line P5 consumes.
	fmt.Fprintln(cmd.OutOrStdout(), returnPath)
	return nil
}
