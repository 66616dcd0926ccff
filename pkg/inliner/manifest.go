// File: pkg/inliner/manifest.go
package inliner

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Manifest lists the include closure of a run so build tools can track
// which files the output depends on.
type Manifest struct {
	Input      string   `yaml:"input"`
	Output     string   `yaml:"output"`
	SearchDirs []string `yaml:"search_dirs,omitempty"`
	Files      []string `yaml:"files"`
}

// NewManifest builds the manifest of a finished run.
func NewManifest(opts Options, result *Result) Manifest {
	m := Manifest{
		Input:      opts.Input,
		Output:     opts.Output,
		SearchDirs: opts.SearchDirs,
	}
	if result != nil {
		m.Files = result.Files
	}
	return m
}

// WriteManifest encodes m as YAML into path.
func WriteManifest(path string, m Manifest, logger *zap.Logger) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := writeToFile(path, data, 0644, loggerOrNop(logger)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
