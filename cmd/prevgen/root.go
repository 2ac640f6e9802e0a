package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "prevgen [file]",
		Short: "P5 proxy generator",
		Long: "prevgen derives preview and workflow proxy renditions of a source\n" +
			"video file for the P5 Archive preview hook. Invoked with a file\n" +
			"argument it behaves exactly like 'prevgen generate'.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// P5 calls the binary with the source file as the sole
			// positional argument.
			if len(args) == 1 {
				return runGenerate(ctx, cmd, args[0])
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newGenerateCommand(ctx))
	rootCmd.AddCommand(newMapCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
