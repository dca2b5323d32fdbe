package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "portfolio dev\n", out.String())
}

func TestCheckConfigFromEnvFile(t *testing.T) {
	for _, key := range []string{"RELAY_PROVIDER", "EMAILJS_SERVICE_ID", "EMAILJS_TEMPLATE_ID", "EMAILJS_PUBLIC_KEY", "PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"EMAILJS_SERVICE_ID=svc\nEMAILJS_TEMPLATE_ID=tpl\nEMAILJS_PUBLIC_KEY=pub\nPORT=8181\n"), 0o600))

	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--env-file", path, "check-config"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "configuration OK (relay: emailjs, port: 8181)")
}

func TestCheckConfigReportsMissingCredentials(t *testing.T) {
	for _, key := range []string{"RELAY_PROVIDER", "EMAILJS_SERVICE_ID", "EMAILJS_TEMPLATE_ID", "EMAILJS_PUBLIC_KEY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"check-config"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAILJS_SERVICE_ID is required")
}
