package arrange

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagQuiet bool
}

func (c *Command) Synopsis() string {
	return "Re-layout the nodes of a diagram"
}

func (c *Command) Help() string {
	return `Usage: coggle arrange [options] <diagram-id>

  This command asks the server to arrange the nodes of a diagram and prints
  the resulting tree.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("arrange", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.BoolVar(
		&c.flagQuiet, "quiet", false,
		"Do not print the arranged tree.",
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

	nodes, err := client.Diagram(f.Arg(0)).Arrange(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error arranging diagram: %v", err))
		return 1
	}

	if !c.flagQuiet {
		base.PrintNodes(c.UI, nodes)
	}
	return 0
}
