// File: pkg/inliner/expand.go
package inliner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// run carries the state of a single top-level expansion.
type run struct {
	out        io.Writer
	searchDirs []string
	visited    map[string]struct{}
	diag       io.Writer
	logger     *zap.Logger
	result     *Result
}

// Expand writes the expansion of input to w.
// The returned Result is populated up to the point of failure when err is non-nil.
func Expand(input string, w io.Writer, opts Options) (*Result, error) {
	r := newRun(w, opts)
	r.result.Root = input
	r.result.Tree = &Node{Path: input}

	err := r.expand(input, parentDir(input), r.result.Tree)
	return r.result, err
}

func newRun(w io.Writer, opts Options) *run {
	diag := opts.Diagnostics
	if diag == nil {
		diag = io.Discard
	}
	return &run{
		out:        w,
		searchDirs: opts.SearchDirs,
		visited:    make(map[string]struct{}),
		diag:       diag,
		logger:     loggerOrNop(opts.Logger),
		result:     &Result{},
	}
}

// expand copies path to the output line by line, replacing every include
// directive with the expansion of its target. dir is the directory quoted
// includes are resolved against.
func (r *run) expand(path, dir string, node *Node) (err error) {
	canonical, err := canonicalPath(path)
	if err != nil {
		r.logger.Debug("Failed to canonicalize file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%w %s: %w", ErrReadInput, path, err)
	}
	if _, seen := r.visited[canonical]; seen {
		node.Skipped = true
		r.logger.Debug("Skipping already included file", zap.String("file", path), zap.String("canonical", canonical))
		return nil
	}
	r.visited[canonical] = struct{}{}
	r.result.Files = append(r.result.Files, canonical)

	file, err := os.Open(path)
	if err != nil {
		r.logger.Debug("Failed to open file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%w %s: %w", ErrReadInput, path, err)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	r.logger.Debug("Expanding file", zap.String("file", path), zap.String("dir", dir))

	reader := bufio.NewReader(file)
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			r.logger.Debug("Failed to read file", zap.String("file", path), zap.Error(readErr))
			return fmt.Errorf("%w %s: %w", ErrReadInput, path, readErr)
		}
		if line == "" && readErr != nil {
			return nil
		}

		lineNo++
		line = strings.TrimSuffix(line, "\n")
		if directive, ok := ParseDirective(line); ok {
			if err := r.include(directive, path, dir, lineNo, node); err != nil {
				return err
			}
		} else if err := r.writeLine(line); err != nil {
			return err
		}

		if readErr != nil {
			return nil
		}
	}
}

// include resolves a directive found at line lineNo of from and expands its target.
func (r *run) include(d Directive, from, dir string, lineNo int, parent *Node) error {
	target, ok := Resolve(d.Name, d.Angled, dir, r.searchDirs)
	if !ok {
		unresolved := &UnresolvedIncludeError{Name: d.Name, File: from, Line: lineNo}
		fmt.Fprintln(r.diag, unresolved.Error())
		r.logger.Error("Unresolved include",
			zap.String("name", d.Name),
			zap.Bool("angled", d.Angled),
			zap.String("file", from),
			zap.Int("line", lineNo))
		return unresolved
	}

	child := &Node{
		Name:   d.Name,
		Angled: d.Angled,
		From:   from,
		Line:   lineNo,
		Path:   target,
	}
	parent.Children = append(parent.Children, child)
	r.logger.Debug("Resolved include",
		zap.String("name", d.Name),
		zap.String("file", from),
		zap.Int("line", lineNo),
		zap.String("target", target))

	return r.expand(target, parentDir(target), child)
}

func (r *run) writeLine(line string) error {
	if _, err := io.WriteString(r.out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := io.WriteString(r.out, "\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	r.result.Lines++
	return nil
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
