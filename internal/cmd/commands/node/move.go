package node

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/pkg/coggle"
)

type MoveCommand struct {
	*base.Command
}

func (c *MoveCommand) Synopsis() string {
	return "Set the offset of a node"
}

func (c *MoveCommand) Help() string {
	return `Usage: coggle move-node [options] <diagram-id> <node-id> <x> <y>

  This command sets the offset of a node relative to its parent.` +
		c.Flags().Help()
}

func (c *MoveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("move-node", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *MoveCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 4 {
		c.UI.Error("a diagram id, a node id, x and y are required")
		return 1
	}

	x, err := strconv.ParseInt(f.Arg(2), 10, 32)
	if err != nil {
		c.UI.Error(fmt.Sprintf("invalid x offset %q", f.Arg(2)))
		return 1
	}
	y, err := strconv.ParseInt(f.Arg(3), 10, 32)
	if err != nil {
		c.UI.Error(fmt.Sprintf("invalid y offset %q", f.Arg(3)))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	node := client.Diagram(f.Arg(0)).Node(f.Arg(1))
	moved, err := node.Move(ctx, coggle.Offset{X: int32(x), Y: int32(y)})
	if err != nil {
		c.UI.Error(fmt.Sprintf("error moving node: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Moved node %s to %s", moved.ID, moved.Offset))
	return 0
}
