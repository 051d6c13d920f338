package nodes

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/pkg/coggle"
)

type Command struct {
	*base.Command

	flagRoot string
}

func (c *Command) Synopsis() string {
	return "Print the node tree of a diagram"
}

func (c *Command) Help() string {
	return `Usage: coggle nodes [options] <diagram-id>

  This command prints every node of a diagram as an outline with node ids
  and offsets.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("nodes", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.StringVar(
		&c.flagRoot, "root", "",
		"Only print the subtree under this node id",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one diagram id is required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	nodes, err := client.Diagram(f.Arg(0)).Nodes(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching nodes: %v", err))
		return 1
	}

	if c.flagRoot != "" {
		root := coggle.FindNode(nodes, c.flagRoot)
		if root == nil {
			c.UI.Error(fmt.Sprintf("node %s not found in diagram %s", c.flagRoot, f.Arg(0)))
			return 1
		}
		nodes = []*coggle.Node{root}
	}

	base.PrintNodes(c.UI, nodes)
	return 0
}
