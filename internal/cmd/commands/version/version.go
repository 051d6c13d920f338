package version

import (
	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: coggle version

  This command prints the version of the coggle CLI.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.HumanVersion())
	return 0
}
