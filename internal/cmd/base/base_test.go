package base

import (
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/coggle/internal/config"
	"github.com/hashicorp-forge/coggle/pkg/coggle"
)

// tokenServer records the access_token of each request.
func tokenServer(t *testing.T) (*httptest.Server, func() []string) {
	t.Helper()

	var mu sync.Mutex
	var tokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		tokens = append(tokens, r.URL.Query().Get("access_token"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	return server, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), tokens...)
	}
}

func parseClientFlags(t *testing.T, c *Command, args ...string) {
	t.Helper()
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	c.AddClientFlags(f)
	require.NoError(t, f.Parse(args))
}

func TestCommand_ClientPrecedence(t *testing.T) {
	server, tokens := tokenServer(t)

	c := NewTestCommand(cli.NewMockUi(), map[string]string{
		config.EnvConfigPath: "/coggle.hcl",
		config.EnvToken:      "env-token",
	})
	require.NoError(t, afero.WriteFile(c.Fs, "/coggle.hcl", []byte(`
coggle {
  base_url = "`+server.URL+`"
  token    = "file-token"
}
`), 0o644))

	client, err := c.Client()
	require.NoError(t, err)
	assert.Equal(t, server.URL, client.BaseURL())

	_, err = client.ListDiagrams(context.Background())
	require.NoError(t, err)

	parseClientFlags(t, c, "-token", "flag-token")
	client, err = c.Client()
	require.NoError(t, err)
	_, err = client.ListDiagrams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"env-token", "flag-token"}, tokens())
}

func TestCommand_ClientDefaults(t *testing.T) {
	c := NewTestCommand(cli.NewMockUi(), map[string]string{config.EnvToken: "T"})

	client, err := c.Client()
	require.NoError(t, err)
	assert.Equal(t, coggle.DefaultBaseURL, client.BaseURL())
}

func TestCommand_ClientErrors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		args     []string
		errorMsg string
	}{
		{
			name:     "missing token",
			errorMsg: "token is required",
		},
		{
			name:     "invalid log level",
			env:      map[string]string{config.EnvToken: "T", config.EnvLogLevel: "loud"},
			errorMsg: `invalid log level "loud"`,
		},
		{
			name:     "invalid log level flag",
			args:     []string{"-token", "T", "-log-level", "chatty"},
			errorMsg: `invalid log level "chatty"`,
		},
		{
			name:     "missing config file",
			env:      map[string]string{config.EnvToken: "T"},
			args:     []string{"-config", "/nope.hcl"},
			errorMsg: "failed to read configuration file",
		},
		{
			name:     "bad base url",
			args:     []string{"-token", "T", "-base-url", "ftp://coggle.it"},
			errorMsg: "base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewTestCommand(cli.NewMockUi(), tt.env)
			parseClientFlags(t, c, tt.args...)

			_, err := c.Client()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestFlagSet_Help(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	assert.Empty(t, f.Help())

	var quiet bool
	var org string
	f.BoolVar(&quiet, "quiet", false, "Be quiet.")
	f.StringVar(&org, "org", "acme", "Organization name")

	help := f.Help()
	assert.True(t, strings.HasPrefix(help, "\n\nOptions:\n"))
	assert.Contains(t, help, "-org=acme\n      Organization name")
	assert.Contains(t, help, "-quiet\n      Be quiet.")
	assert.Less(t, strings.Index(help, "-org"), strings.Index(help, "-quiet"))
}

func TestFlagSet_IsSet(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	var org, other string
	f.StringVar(&org, "org", "", "Organization name")
	f.StringVar(&other, "other", "", "Other")

	require.NoError(t, f.Parse([]string{"-org", ""}))
	assert.True(t, f.IsSet("org"))
	assert.False(t, f.IsSet("other"))
	assert.False(t, f.IsSet("missing"))
}
