package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prevgen/internal/proxy"
)

func newMapCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "map <file>",
		Short: "Show the workflow destination a source file would map to",
		Long: "Dry-runs the workflow path mapping rules against a source file\n" +
			"without encoding anything. Useful for verifying marker folder and\n" +
			"level settings before enabling the workflow store.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			env := ctx.environment()
			logger := newLogger(cfg, env, false)

			quality := cfg.Quality.Workflow
			if source, _ := proxy.ParseTier(cfg.Outputs.Workflow.Source); source == proxy.TierPreview {
				quality = cfg.Quality.Preview
			}
			container := proxy.ResolveContainer(qualityProfile(quality))
			dest := proxy.MapPath(args[0], container, mappingRule(cfg.Mapping), logger)
			fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}
}
