// Package inliner flattens a text file by recursively replacing every
// `#include "name"` and `#include <name>` line with the contents of the file
// it names.
//
// Quoted names are looked up next to the including file first and then in the
// search directories; angled names only in the search directories. A file is
// expanded at most once per run, which also breaks include cycles. Include
// lines produce no output of their own and no markers are inserted.
package inliner
