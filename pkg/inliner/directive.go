// File: pkg/inliner/directive.go
package inliner

import "regexp"

// Both patterns are anchored so that only a line consisting solely of the
// directive is recognised. RE2's \s has no vertical tab, hence [\s\v].
var (
	quotedIncludePattern = regexp.MustCompile(`^[\s\v]*#[\s\v]*include[\s\v]*"([^>"]*)"[\s\v]*$`)
	angledIncludePattern = regexp.MustCompile(`^[\s\v]*#[\s\v]*include[\s\v]*<([^>"]*)>[\s\v]*$`)
)

// ParseDirective reports whether line is an include directive and, if so,
// returns the included name and its delimiter kind.
func ParseDirective(line string) (Directive, bool) {
	if m := quotedIncludePattern.FindStringSubmatch(line); m != nil {
		return Directive{Name: m[1]}, true
	}
	if m := angledIncludePattern.FindStringSubmatch(line); m != nil {
		return Directive{Name: m[1], Angled: true}, true
	}
	return Directive{}, false
}
