package node

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
)

type SetTextCommand struct {
	*base.Command
}

func (c *SetTextCommand) Synopsis() string {
	return "Replace the text of a node"
}

func (c *SetTextCommand) Help() string {
	return `Usage: coggle set-text [options] <diagram-id> <node-id> <text>

  This command replaces the text of a node.` + c.Flags().Help()
}

func (c *SetTextCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("set-text", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *SetTextCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() < 3 {
		c.UI.Error("a diagram id, a node id and text are required")
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
	updated, err := node.SetText(ctx, strings.Join(f.Args()[2:], " "))
	if err != nil {
		c.UI.Error(fmt.Sprintf("error setting text: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Updated node %s", updated.ID))
	return 0
}
