package ao

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem(t *testing.T) {
	fs := NewOSFileSystem()
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "prompts", "my-app.md")

	require.NoError(t, fs.WriteFile(path, []byte("# My App Orchestrator")))

	assert.True(t, fs.FileExists(path))
	assert.False(t, fs.FileExists(filepath.Join(tempDir, "prompts")))
	assert.True(t, fs.DirectoryExists(filepath.Join(tempDir, "prompts")))
	assert.False(t, fs.DirectoryExists(path))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# My App Orchestrator", string(data))
}

func TestWebDirLocatorOnDisk(t *testing.T) {
	fs := NewOSFileSystem()
	root := t.TempDir()
	pkgDir := filepath.Join(root, "node_modules", "@composio", "ao-web")
	require.NoError(t, fs.WriteFile(filepath.Join(pkgDir, "package.json"), []byte(`{"name":"@composio/ao-web"}`)))

	locator := NewWebDirLocator(fs)
	assert.Equal(t, pkgDir, locator.Locate(filepath.Join(root, "src"), filepath.Join(root, "bin")))
}
