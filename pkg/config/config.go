// Package config resolves incl settings from command-line flags, INCL_*
// environment variables and an optional YAML config file, in that order of
// precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read, e.g. INCL_INCLUDE_DIRS.
	EnvPrefix = "INCL"
	// DefaultConfigFile is read from the working directory when no --config is given.
	DefaultConfigFile = ".incl.yaml"
)

// Config keys.
const (
	KeyIncludeDirs = "include_dirs"
	KeyOutput      = "output"
	KeyTree        = "tree"
	KeyDeps        = "deps"
	KeyDebug       = "debug"
)

// Flag names bound to the keys above.
const (
	FlagIncludeDir = "include-dir"
	FlagOutput     = "output"
	FlagTree       = "tree"
	FlagDeps       = "deps"
	FlagDebug      = "debug"
	FlagConfig     = "config"
)

var flagKeys = map[string]string{
	FlagIncludeDir: KeyIncludeDirs,
	FlagOutput:     KeyOutput,
	FlagTree:       KeyTree,
	FlagDeps:       KeyDeps,
	FlagDebug:      KeyDebug,
}

// Config is the resolved configuration of one invocation.
type Config struct {
	IncludeDirs []string // Ordered search directories.
	Output      string   // Expanded output file.
	Tree        string   // Optional include tree file.
	Deps        string   // Optional YAML dependency manifest file.
	Debug       bool     // Development logging.
	File        string   // Config file that was read, if any.
}

// Load resolves the configuration. flags may be nil. configFile, when set,
// must exist; otherwise DefaultConfigFile is read if present.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyIncludeDirs, []string{})
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyTree, "")
	v.SetDefault(KeyDeps, "")
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	resolvedFile := ""
	if configFile != "" {
		if !fileExists(configFile) {
			return nil, fmt.Errorf("config file not found: %s", configFile)
		}
		resolvedFile = configFile
	} else if fileExists(DefaultConfigFile) {
		resolvedFile = DefaultConfigFile
	}
	if resolvedFile != "" {
		v.SetConfigFile(resolvedFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", resolvedFile, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	return &Config{
		IncludeDirs: includeDirs(v),
		Output:      v.GetString(KeyOutput),
		Tree:        v.GetString(KeyTree),
		Deps:        v.GetString(KeyDeps),
		Debug:       v.GetBool(KeyDebug),
		File:        resolvedFile,
	}, nil
}

// includeDirs reads the search directories. A plain string, as set through
// INCL_INCLUDE_DIRS, is split on the OS path list separator.
func includeDirs(v *viper.Viper) []string {
	if raw, ok := v.Get(KeyIncludeDirs).(string); ok {
		var dirs []string
		for _, dir := range filepath.SplitList(raw) {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
		return dirs
	}
	return v.GetStringSlice(KeyIncludeDirs)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
