// File: pkg/inliner/tree.go
package inliner

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// RenderTree formats the include tree rooted at root, one file per line.
func RenderTree(root *Node) string {
	if root == nil {
		return ""
	}
	var treeBuilder strings.Builder
	treeBuilder.WriteString(root.Path + "\n")
	renderChildren(&treeBuilder, root.Children, "")
	return treeBuilder.String()
}

func renderChildren(treeBuilder *strings.Builder, children []*Node, prefix string) {
	for i, child := range children {
		connector := "├── "
		extension := "│   "
		if i == len(children)-1 {
			connector = "└── "
			extension = "    "
		}

		treeBuilder.WriteString(prefix + connector + child.label() + "\n")
		renderChildren(treeBuilder, child.Children, prefix+extension)
	}
}

func (n *Node) label() string {
	spelled := `"` + n.Name + `"`
	if n.Angled {
		spelled = "<" + n.Name + ">"
	}
	label := fmt.Sprintf("%s -> %s (line %d)", spelled, n.Path, n.Line)
	if n.Skipped {
		label += " [already included]"
	}
	return label
}

// WriteTree renders the include tree of result into path.
func WriteTree(path string, result *Result, logger *zap.Logger) error {
	if result == nil {
		return fmt.Errorf("no result to render")
	}
	if err := writeToFile(path, []byte(RenderTree(result.Tree)), 0644, loggerOrNop(logger)); err != nil {
		return fmt.Errorf("failed to write include tree: %w", err)
	}
	return nil
}
