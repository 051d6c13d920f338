package open

import (
	"errors"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/internal/config"
)

func newCommand(openURL func(string) error) (*Command, *cli.MockUi) {
	ui := cli.NewMockUi()
	cmd := &Command{
		Command: base.NewTestCommand(ui, map[string]string{
			config.EnvBaseURL: "https://coggle.example.com/",
			config.EnvToken:   "T",
		}),
		OpenURL: openURL,
	}
	return cmd, ui
}

func TestCommand_Run(t *testing.T) {
	var opened []string
	cmd, ui := newCommand(func(url string) error {
		opened = append(opened, url)
		return nil
	})

	code := cmd.Run([]string{"d1"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, []string{"https://coggle.example.com/diagram/d1"}, opened)
}

func TestCommand_RunPrint(t *testing.T) {
	cmd, ui := newCommand(func(string) error {
		t.Fatal("browser should not be opened")
		return nil
	})

	code := cmd.Run([]string{"-print", "d1"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "https://coggle.example.com/diagram/d1\n", ui.OutputWriter.String())
}

func TestCommand_RunBrowserFailure(t *testing.T) {
	cmd, ui := newCommand(func(string) error {
		return errors.New("no display")
	})

	assert.Equal(t, 1, cmd.Run([]string{"d1"}))
	assert.Contains(t, ui.ErrorWriter.String(), "no display")
	assert.Contains(t, ui.OutputWriter.String(), "https://coggle.example.com/diagram/d1")
}
