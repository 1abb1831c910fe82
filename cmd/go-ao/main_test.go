package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
port: 3000
projects:
  my-app:
    name: My App
    repo: org/my-app
    path: /src/my-app
    defaultBranch: main
    sessionPrefix: myapp
    reactions:
      ci-failed:
        auto: true
        action: send-to-agent
        retries: 3
        escalateAfter: 2h
`

// executeCommand runs the root command with args and returns its stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"AO_CONFIG_PATH", "AO_PORT", "AO_TERMINAL_PORT", "AO_DIRECT_TERMINAL_PORT"} {
		t.Setenv(key, "")
	}
	t.Cleanup(func() {
		_ = promptCmd.Flags().Set("port", "0")
		_ = promptCmd.Flags().Set("output", "")
		_ = projectsCmd.Flags().Set("output", "text")
		_ = dashboardEnvCmd.Flags().Set("port", "0")
		_ = docsCmd.Flags().Set("output", "./docs")
		_ = docsCmd.Flags().Set("format", "markdown")
		configPath = ""
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent-orchestrator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	return path
}

func TestPromptCommand(t *testing.T) {
	path := writeTestConfig(t)

	out, err := executeCommand(t, "--config", path, "prompt", "my-app")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# My App Orchestrator"))
	assert.Contains(t, out, "http://localhost:3000")
	assert.Contains(t, out, "retries: 3, escalates after: 2h")
}

func TestPromptCommandPortOverride(t *testing.T) {
	path := writeTestConfig(t)

	out, err := executeCommand(t, "--config", path, "prompt", "my-app", "--port", "8080")
	require.NoError(t, err)
	assert.Contains(t, out, "http://localhost:8080")
	assert.NotContains(t, out, "localhost:3000")
}

func TestPromptCommandUnknownProject(t *testing.T) {
	path := writeTestConfig(t)

	_, err := executeCommand(t, "--config", path, "prompt", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown project "nope"`)
}

func TestPromptCommandOutputFile(t *testing.T) {
	path := writeTestConfig(t)
	target := filepath.Join(t.TempDir(), "prompts", "my-app.md")

	out, err := executeCommand(t, "--config", path, "prompt", "my-app", "--output", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Automated Reactions")
}

func TestProjectsCommand(t *testing.T) {
	path := writeTestConfig(t)

	out, err := executeCommand(t, "--config", path, "projects")
	require.NoError(t, err)
	assert.Contains(t, out, "my-app - My App (org/my-app, branch main, sessions myapp-N)")
}

func TestProjectsCommandYAML(t *testing.T) {
	path := writeTestConfig(t)

	out, err := executeCommand(t, "--config", path, "projects", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "sessionPrefix: myapp")
	assert.Contains(t, out, "escalateAfter: 2h")
}

func TestProjectsCommandInvalidFormat(t *testing.T) {
	path := writeTestConfig(t)

	_, err := executeCommand(t, "--config", path, "projects", "--output", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestDashboardEnvCommand(t *testing.T) {
	path := writeTestConfig(t)

	out, err := executeCommand(t, "--config", path, "dashboard-env", "--port", "4000")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"AO_CONFIG_PATH=" + path,
		"DIRECT_TERMINAL_PORT=14801",
		"PORT=4000",
		"TERMINAL_PORT=14800",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestMissingConfig(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "projects")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "go-ao version dev")
}

func TestDocsCommand(t *testing.T) {
	outputDir := t.TempDir()

	_, err := executeCommand(t, "docs", "-o", outputDir)
	require.NoError(t, err)

	readme, err := os.ReadFile(filepath.Join(outputDir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "go-ao")
	assert.NoFileExists(t, filepath.Join(outputDir, "go-ao.md"))
	assert.FileExists(t, filepath.Join(outputDir, "go-ao_prompt.md"))
}

func TestDocsCommandYAML(t *testing.T) {
	outputDir := t.TempDir()

	_, err := executeCommand(t, "docs", "-o", outputDir, "--format", "yaml")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outputDir, "go-ao.yaml"))
	assert.FileExists(t, filepath.Join(outputDir, "go-ao_prompt.yaml"))
	assert.NoFileExists(t, filepath.Join(outputDir, "README.md"))
}

func TestDocsCommandInvalidFormat(t *testing.T) {
	_, err := executeCommand(t, "docs", "-o", t.TempDir(), "--format", "html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid docs format")
}
