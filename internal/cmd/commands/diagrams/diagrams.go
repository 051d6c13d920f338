package diagrams

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/pkg/coggle"
)

type Command struct {
	*base.Command

	flagOrganization string
}

func (c *Command) Synopsis() string {
	return "List diagrams"
}

func (c *Command) Help() string {
	return `Usage: coggle diagrams [options]

  This command lists the diagrams the token can access, or the diagrams of an
  organization when -org is set.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("diagrams", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.StringVar(
		&c.flagOrganization, "org", "",
		"Organization name to list diagrams for",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 0 {
		c.UI.Error("this command takes no arguments")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	var diagrams []*coggle.Diagram
	if f.IsSet("org") {
		diagrams, err = client.ListOrganizationDiagrams(ctx, c.flagOrganization)
	} else {
		diagrams, err = client.ListDiagrams(ctx)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing diagrams: %v", err))
		return 1
	}

	if len(diagrams) == 0 {
		c.UI.Info("No diagrams found")
		return 0
	}

	for _, d := range diagrams {
		line := []string{d.ID, d.Title}
		if d.Modified != nil {
			line = append(line, d.Modified.Format(time.RFC3339))
		}
		c.UI.Output(strings.Join(line, "\t"))
	}

	return 0
}
