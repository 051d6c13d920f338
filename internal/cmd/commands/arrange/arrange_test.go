package arrange

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/coggle/internal/cmd/base"
	"github.com/hashicorp-forge/coggle/internal/config"
)

func newCommand(t *testing.T, status int) (*Command, *cli.MockUi) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/1/diagrams/d1/nodes", r.URL.Path)
		assert.Equal(t, "arrange", r.URL.Query().Get("action"))
		assert.JSONEq(t, `{}`, string(body))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(`[{"_id":"1","text":"root","offset":{"x":0,"y":0},
			"children":[{"_id":"2","text":"child","offset":{"x":120,"y":0}}]}]`))
	}))
	t.Cleanup(server.Close)

	ui := cli.NewMockUi()
	cmd := &Command{Command: base.NewTestCommand(ui, map[string]string{
		config.EnvBaseURL: server.URL,
		config.EnvToken:   "T",
	})}
	return cmd, ui
}

func TestCommand_Run(t *testing.T) {
	cmd, ui := newCommand(t, http.StatusOK)

	code := cmd.Run([]string{"d1"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "- root [1] (0, 0)\n  - child [2] (120, 0)\n", ui.OutputWriter.String())
}

func TestCommand_RunQuiet(t *testing.T) {
	cmd, ui := newCommand(t, http.StatusOK)

	code := cmd.Run([]string{"-quiet", "d1"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Empty(t, ui.OutputWriter.String())
}

func TestCommand_RunServerError(t *testing.T) {
	cmd, ui := newCommand(t, http.StatusInternalServerError)

	assert.Equal(t, 1, cmd.Run([]string{"d1"}))
	assert.Contains(t, ui.ErrorWriter.String(), "error arranging diagram")
}
