// File: pkg/inliner/errors.go
package inliner

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedInclude matches any *UnresolvedIncludeError.
	ErrUnresolvedInclude = errors.New("unresolved include")
	// ErrReadInput is returned when the root or an included file cannot be read.
	ErrReadInput = errors.New("cannot read input file")
	// ErrCreateOutput is returned when the output destination cannot be created.
	ErrCreateOutput = errors.New("cannot create output file")
)

// UnresolvedIncludeError reports an include directive whose target was not
// found relative to the including file or in any search directory.
type UnresolvedIncludeError struct {
	Name string // Raw text between the delimiters.
	File string // Path of the file holding the directive.
	Line int    // 1-based line of the directive in File.
}

// Error returns the diagnostic line printed for the failure.
func (e *UnresolvedIncludeError) Error() string {
	return fmt.Sprintf("unknown include file %s at file %s at line %d", e.Name, e.File, e.Line)
}

// Is lets errors.Is match ErrUnresolvedInclude.
func (e *UnresolvedIncludeError) Is(target error) bool {
	return target == ErrUnresolvedInclude
}
