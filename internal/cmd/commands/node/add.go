package node

import (
	"flag"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/pkg/coggle"
)

type AddCommand struct {
	*base.Command

	flagX int
	flagY int
}

func (c *AddCommand) Synopsis() string {
	return "Add a child node"
}

func (c *AddCommand) Help() string {
	return `Usage: coggle add-node [options] <diagram-id> <parent-node-id> <text>

  This command adds a child node under an existing node. Without -x and -y
  the server chooses the position.` + c.Flags().Help()
}

func (c *AddCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("add-node", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.IntVar(&c.flagX, "x", 0, "Horizontal offset from the parent")
	f.IntVar(&c.flagY, "y", 0, "Vertical offset from the parent")

	return f
}

func (c *AddCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() < 3 {
		c.UI.Error("a diagram id, a parent node id and text are required")
		return 1
	}

	var offset *coggle.Offset
	if f.IsSet("x") || f.IsSet("y") {
		if !fitsInt32(c.flagX) || !fitsInt32(c.flagY) {
			c.UI.Error(fmt.Sprintf("offset (%d, %d) is out of range", c.flagX, c.flagY))
			return 1
		}
		offset = &coggle.Offset{X: int32(c.flagX), Y: int32(c.flagY)}
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	parent := client.Diagram(f.Arg(0)).Node(f.Arg(1))
	child, err := parent.AddChild(ctx, strings.Join(f.Args()[2:], " "), offset)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error adding node: %v", err))
		return 1
	}

	c.UI.Output(child.ID)
	return 0
}

func fitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
