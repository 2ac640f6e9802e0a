package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"prevgen/internal/config"
	"prevgen/internal/proxy"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if dir := filepath.Dir(target); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create config directory %q: %w", dir, err)
				}
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if ctx.configFlag != nil {
				path = strings.TrimSpace(*ctx.configFlag)
			}
			_, resolved, exists, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", resolved)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

// newConfigShowCommand summarizes the effective rendition decision: which
// tiers will actually be encoded and where each output lands.
func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective rendition plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			preview := outputSpec(cfg.Outputs.Preview)
			workflow := outputSpec(cfg.Outputs.Workflow)
			needs := proxy.NeededTiers(preview, workflow)

			rows := [][]string{
				outputRow("P5 preview", preview, cfg),
				outputRow("Workflow store", workflow, cfg),
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Output", "Enabled", "Source tier", "Codec", "Container"}, rows))

			encodes := 0
			for _, needed := range []bool{needs.Preview, needs.Workflow} {
				if needed {
					encodes++
				}
			}
			fmt.Fprintf(out, "Encodes per source file: %d\n", encodes)
			if needs.Empty() {
				fmt.Fprintln(out, "Both outputs disabled; P5 would receive a placeholder image")
			}
			return nil
		},
	}
}

func outputRow(name string, spec proxy.OutputSpec, cfg *config.Config) []string {
	quality := cfg.Quality.Preview
	if spec.Source == proxy.TierWorkflow {
		quality = cfg.Quality.Workflow
	}
	profile := qualityProfile(quality)
	return []string{
		name,
		fmt.Sprintf("%t", spec.Enabled),
		spec.Source.String(),
		profile.Codec.String(),
		proxy.ResolveContainer(profile),
	}
}
