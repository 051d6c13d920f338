package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/internal/cmd/commands/arrange"
	"github.com/hashicorp-forge/coggle/internal/cmd/commands/create"
	"github.com/hashicorp-forge/coggle/internal/cmd/commands/diagrams"
	"github.com/hashicorp-forge/coggle/internal/cmd/commands/node"
	"github.com/hashicorp-forge/coggle/internal/cmd/commands/nodes"
	"github.com/hashicorp-forge/coggle/internal/cmd/commands/open"
	"github.com/hashicorp-forge/coggle/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"diagrams": func() (cli.Command, error) {
			return &diagrams.Command{Command: b}, nil
		},
		"create": func() (cli.Command, error) {
			return &create.Command{Command: b}, nil
		},
		"nodes": func() (cli.Command, error) {
			return &nodes.Command{Command: b}, nil
		},
		"arrange": func() (cli.Command, error) {
			return &arrange.Command{Command: b}, nil
		},
		"add-node": func() (cli.Command, error) {
			return &node.AddCommand{Command: b}, nil
		},
		"set-text": func() (cli.Command, error) {
			return &node.SetTextCommand{Command: b}, nil
		},
		"move-node": func() (cli.Command, error) {
			return &node.MoveCommand{Command: b}, nil
		},
		"remove-node": func() (cli.Command, error) {
			return &node.RemoveCommand{Command: b}, nil
		},
		"open": func() (cli.Command, error) {
			return &open.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
