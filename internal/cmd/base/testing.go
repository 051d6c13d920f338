package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// NewTestCommand returns a Command with a null logger, an in-memory file
// system and env as the only environment.
func NewTestCommand(ui cli.Ui, env map[string]string) *Command {
	return &Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		Fs:  afero.NewMemMapFs(),
		LookupEnv: func(key string) (string, bool) {
			val, ok := env[key]
			return val, ok
		},
	}
}
