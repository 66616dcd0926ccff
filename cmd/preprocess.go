package cmd

import (
	"errors"
	"fmt"

	"github.com/Natali-13/cpp-preprocessor/pkg/config"
	"github.com/Natali-13/cpp-preprocessor/pkg/inliner"
	"github.com/Natali-13/cpp-preprocessor/pkg/logging"
	"github.com/Natali-13/cpp-preprocessor/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNoOutput is returned when neither a flag, the environment nor the config
// file names an output file.
var errNoOutput = errors.New("no output file given (use --output, INCL_OUTPUT or the config file)")

// newDebugLogger builds the logger used when debug output is requested.
var newDebugLogger = func() (*zap.Logger, error) {
	return logging.New(true, version.AppName, version.Version)
}

func newPreprocessCmd(logger *zap.Logger) *cobra.Command {
	preprocessCmd := &cobra.Command{
		Use:     "preprocess <input>",
		Aliases: []string{"pp"},
		Short:   "Inline #include directives of a file into one output file",
		Long: `Expand the #include directives of <input> recursively and write the result to --output.

Quoted includes are looked up next to the including file first, then in the
--include-dir directories in the order given. Angled includes only use the
--include-dir directories. Each file is expanded at most once.`,
		Example: `  incl preprocess src/main.cpp -o build/main.cpp -I include -I third_party
  incl pp a.cpp -o a.in --tree a.tree --deps a.deps.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := cmd.Flags().GetString(config.FlagConfig)
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}
			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.Output == "" {
				return errNoOutput
			}

			log := logger
			if cfg.Debug {
				debugLogger, err := newDebugLogger()
				if err != nil {
					logger.Warn("Failed to build debug logger, keeping default logger", zap.Error(err))
				} else {
					log = debugLogger
					defer func() { _ = debugLogger.Sync() }()
				}
			}
			if cfg.File != "" {
				log.Debug("Loaded configuration file", zap.String("file", cfg.File))
			}

			return runPreprocess(cmd, args[0], cfg, log)
		},
	}

	flags := preprocessCmd.Flags()
	flags.StringSliceP(config.FlagIncludeDir, "I", nil, "search directory for includes (repeatable, searched in order)")
	flags.StringP(config.FlagOutput, "o", "", "output file to create or overwrite")
	flags.String(config.FlagTree, "", "write the include tree to this file")
	flags.String(config.FlagDeps, "", "write a YAML dependency manifest to this file")
	return preprocessCmd
}

// runPreprocess expands input and writes the optional tree and manifest files.
func runPreprocess(cmd *cobra.Command, input string, cfg *config.Config, logger *zap.Logger) error {
	opts := inliner.Options{
		Input:       input,
		Output:      cfg.Output,
		SearchDirs:  cfg.IncludeDirs,
		Diagnostics: cmd.OutOrStdout(),
		Logger:      logger,
	}

	result, err := inliner.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to preprocess %s: %w", input, err)
	}

	if cfg.Tree != "" {
		if err := inliner.WriteTree(cfg.Tree, result, logger); err != nil {
			return err
		}
	}
	if cfg.Deps != "" {
		if err := inliner.WriteManifest(cfg.Deps, inliner.NewManifest(opts, result), logger); err != nil {
			return err
		}
	}

	logger.Info("Successfully preprocessed file",
		zap.String("input", input),
		zap.String("outputFile", cfg.Output),
		zap.Int("totalFiles", len(result.Files)),
		zap.Int("totalLines", result.Lines),
	)
	return nil
}
