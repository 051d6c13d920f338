package open

import (
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
)

type Command struct {
	*base.Command

	// OpenURL launches a URL. Defaults to the system browser.
	OpenURL func(url string) error

	flagPrint bool
}

func (c *Command) Synopsis() string {
	return "Open a diagram in the browser"
}

func (c *Command) Help() string {
	return `Usage: coggle open [options] <diagram-id>

  This command opens the web page of a diagram in the default browser.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("open", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.BoolVar(
		&c.flagPrint, "print", false,
		"Print the URL instead of opening it.",
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

	webURL := client.Diagram(f.Arg(0)).WebURL()
	if c.flagPrint {
		c.UI.Output(webURL)
		return 0
	}

	openURL := c.OpenURL
	if openURL == nil {
		openURL = browser.OpenURL
	}

	c.Log.Debug("opening diagram", "url", webURL)
	if err := openURL(webURL); err != nil {
		c.UI.Error(fmt.Sprintf("error opening browser: %v", err))
		c.UI.Output(webURL)
		return 1
	}
	return 0
}
