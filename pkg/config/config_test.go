package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringSliceP(FlagIncludeDir, "I", nil, "")
	flags.StringP(FlagOutput, "o", "", "")
	flags.String(FlagTree, "", "")
	flags.String(FlagDeps, "", "")
	flags.Bool(FlagDebug, false, "")
	return flags
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "incl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.IncludeDirs) != 0 || cfg.Output != "" || cfg.Tree != "" || cfg.Deps != "" || cfg.Debug {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFlags(t *testing.T) {
	flags := newFlags()
	if err := flags.Parse([]string{"-I", "inc1", "--include-dir", "inc2", "-o", "out.txt", "--debug"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load(flags, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.IncludeDirs, []string{"inc1", "inc2"}) {
		t.Errorf("IncludeDirs = %v", cfg.IncludeDirs)
	}
	if cfg.Output != "out.txt" || !cfg.Debug {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "include_dirs:\n  - a\n  - b\noutput: merged.cpp\ntree: tree.txt\n")

	cfg, err := Load(newFlags(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.IncludeDirs, []string{"a", "b"}) {
		t.Errorf("IncludeDirs = %v", cfg.IncludeDirs)
	}
	if cfg.Output != "merged.cpp" || cfg.Tree != "tree.txt" || cfg.File != path {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "include_dirs: [from-file]\noutput: file.out\ndeps: file.yaml\n")
	t.Setenv("INCL_OUTPUT", "env.out")
	t.Setenv("INCL_INCLUDE_DIRS", strings.Join([]string{"env1", "env2"}, string(os.PathListSeparator)))

	flags := newFlags()
	if err := flags.Parse([]string{"-I", "flag-dir"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load(flags, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.IncludeDirs, []string{"flag-dir"}) {
		t.Errorf("flag should win, IncludeDirs = %v", cfg.IncludeDirs)
	}
	if cfg.Output != "env.out" {
		t.Errorf("env should beat config file, Output = %q", cfg.Output)
	}
	if cfg.Deps != "file.yaml" {
		t.Errorf("config file should beat default, Deps = %q", cfg.Deps)
	}
}

func TestLoadIncludeDirsFromEnv(t *testing.T) {
	t.Setenv("INCL_INCLUDE_DIRS", strings.Join([]string{"one", "", "two"}, string(os.PathListSeparator)))

	cfg, err := Load(newFlags(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.IncludeDirs, []string{"one", "two"}) {
		t.Errorf("IncludeDirs = %v", cfg.IncludeDirs)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(nil, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadInvalidConfigFile(t *testing.T) {
	path := writeConfig(t, "include_dirs: [unterminated\n")
	if _, err := Load(nil, path); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadDefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("output: default.out\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != "default.out" || cfg.File != DefaultConfigFile {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
