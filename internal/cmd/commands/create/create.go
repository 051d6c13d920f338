package create

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Create a diagram"
}

func (c *Command) Help() string {
	return `Usage: coggle create [options] <title>

  This command creates a new diagram and prints its id and web URL.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() == 0 {
		c.UI.Error("a diagram title is required")
		return 1
	}
	title := strings.Join(f.Args(), " ")

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	diagram, err := client.CreateDiagram(ctx, title)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating diagram: %v", err))
		return 1
	}

	c.Log.Debug("created diagram", "id", diagram.ID, "title", diagram.Title)
	c.UI.Output(fmt.Sprintf("%s\t%s", diagram.ID, diagram.WebURL()))
	return 0
}
