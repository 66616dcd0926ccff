package cmd

import (
	"github.com/Natali-13/cpp-preprocessor/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the base command with all subcommands attached.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}

	rootCmd := &cobra.Command{
		Use:   "incl",
		Short: "incl is a CLI tool for inlining #include directives",
		Long: `incl expands every #include "name" and #include <name> line of a source file
with the contents of the named file, recursively, producing one flattened output
file suitable for single-unit compilation or bundling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(config.FlagConfig, "", "config file (default is ./"+config.DefaultConfigFile+" when present)")
	rootCmd.PersistentFlags().Bool(config.FlagDebug, false, "enable development logging")

	rootCmd.AddCommand(newPreprocessCmd(logger))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
