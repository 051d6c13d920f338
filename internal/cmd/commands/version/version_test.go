package version

import (
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/internal/version"
)

func TestCommand_Run(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &Command{Command: base.NewTestCommand(ui, nil)}

	assert.Equal(t, 0, cmd.Run(nil))
	assert.Equal(t, version.HumanVersion()+"\n", ui.OutputWriter.String())
}
