package base

import (
	"fmt"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/coggle/pkg/coggle"
)

// PrintNodes writes each tree as an indented outline, one node per line.
func PrintNodes(ui cli.Ui, nodes []*coggle.Node) {
	for _, root := range nodes {
		root.Walk(func(node *coggle.Node, depth int) bool {
			ui.Output(fmt.Sprintf("%s- %s [%s] %s",
				strings.Repeat("  ", depth), firstLine(node.Text), node.ID, node.Offset))
			return true
		})
	}
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i] + "..."
	}
	return text
}
