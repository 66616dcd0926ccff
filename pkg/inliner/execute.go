// File: pkg/inliner/execute.go
package inliner

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Preprocess expands inputPath into outputPath, resolving includes against
// searchDirs. It reports whether the whole include closure was expanded.
// An unresolved include is reported on standard output.
func Preprocess(inputPath, outputPath string, searchDirs []string) bool {
	_, err := Run(Options{
		Input:       inputPath,
		Output:      outputPath,
		SearchDirs:  searchDirs,
		Diagnostics: os.Stdout,
	})
	return err == nil
}

// Run creates the output file and writes the expansion of the input into it.
// On failure the output keeps whatever was written before the failure.
func Run(opts Options) (result *Result, err error) {
	startTime := time.Now()
	logger := loggerOrNop(opts.Logger)
	logger.Debug("Starting preprocess",
		zap.String("input", opts.Input),
		zap.String("output", opts.Output),
		zap.Strings("searchDirs", opts.SearchDirs))

	outFile, err := os.Create(opts.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", opts.Output), zap.Error(err))
		return nil, fmt.Errorf("%w %s: %w", ErrCreateOutput, opts.Output, err)
	}
	defer func() {
		err = multierr.Append(err, outFile.Close())
	}()

	writer := bufio.NewWriter(outFile)
	defer func() {
		if flushErr := writer.Flush(); flushErr != nil {
			logger.Error("Failed to flush output file", zap.String("file", opts.Output), zap.Error(flushErr))
			err = multierr.Append(err, fmt.Errorf("failed to flush output: %w", flushErr))
		}
	}()

	result, err = Expand(opts.Input, writer, opts)
	if err != nil {
		return result, err
	}

	logger.Debug("Preprocess completed",
		zap.String("output", opts.Output),
		zap.Int("files", len(result.Files)),
		zap.Int("lines", result.Lines),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
