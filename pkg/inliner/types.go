// File: pkg/inliner/types.go
package inliner

import (
	"io"

	"go.uber.org/zap"
)

// Options holds the configuration for one preprocessing run.
type Options struct {
	Input       string      // Root file to expand.
	Output      string      // Destination file, created or truncated.
	SearchDirs  []string    // Ordered fallback directories for include resolution.
	Diagnostics io.Writer   // Receives the unresolved-include message; nil discards it.
	Logger      *zap.Logger // Debug tracing of the expansion; nil disables logging.
}

// Directive is a recognised include line.
type Directive struct {
	Name   string // Text between the delimiters.
	Angled bool   // True for <name>, false for "name".
}

// Node is one file in the include tree of a run.
type Node struct {
	Name     string  // Directive text that pulled this file in; empty for the root.
	Angled   bool    // Delimiter kind of that directive.
	From     string  // Path of the including file; empty for the root.
	Line     int     // 1-based directive line in From; zero for the root.
	Path     string  // Resolved path as opened.
	Skipped  bool    // Already visited earlier in the run, contributed no text.
	Children []*Node // Includes of this file, in document order.
}

// Result summarises a completed or aborted expansion.
type Result struct {
	Root  string   // Root input path as given.
	Files []string // Canonical paths of every file entered, in visit order.
	Lines int      // Lines written to the output.
	Tree  *Node    // Include tree rooted at the input file.
}
