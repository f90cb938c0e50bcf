package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// setupConfigWithoutSeed creates a config file with a database in tmpDir and no seed file.
func setupConfigWithoutSeed(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	content := fmt.Sprintf("database:\n  path: %s\n", filepath.Join(tmpDir, "leitner.db"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

// execute runs the root command with args and input, and returns what it wrote.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	oldConfigFile := configFile
	t.Cleanup(func() { configFile = oldConfigFile })

	var stdout bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	err := cmd.Execute()
	return stdout.String(), err
}
