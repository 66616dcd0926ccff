package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/Natali-13/cpp-preprocessor/cmd"
	"github.com/Natali-13/cpp-preprocessor/pkg/inliner"
	"github.com/Natali-13/cpp-preprocessor/pkg/logging"
	"github.com/Natali-13/cpp-preprocessor/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := logging.New(false, version.AppName, version.Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		// The unresolved include diagnostic has already been printed.
		if !errors.Is(err, inliner.ErrUnresolvedInclude) {
			logger.Error("incl execution failed", zap.Error(err))
		}
		syncLogger(logger)
		os.Exit(1)
	}
	syncLogger(logger)
}

// syncLogger flushes the logger when stderr can be synced.
func syncLogger(logger *zap.Logger) {
	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
