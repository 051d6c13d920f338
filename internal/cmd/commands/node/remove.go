package node

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
)

type RemoveCommand struct {
	*base.Command
}

func (c *RemoveCommand) Synopsis() string {
	return "Delete a node"
}

func (c *RemoveCommand) Help() string {
	return `Usage: coggle remove-node [options] <diagram-id> <node-id>

  This command deletes a node from a diagram.` + c.Flags().Help()
}

func (c *RemoveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("remove-node", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *RemoveCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 2 {
		c.UI.Error("a diagram id and a node id are required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := client.Diagram(f.Arg(0)).Node(f.Arg(1)).Remove(ctx); err != nil {
		c.UI.Error(fmt.Sprintf("error removing node: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Removed node %s", f.Arg(1)))
	return 0
}
