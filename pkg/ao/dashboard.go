package ao

import (
	"path/filepath"
	"sort"
	"strconv"

	"github.com/bryankaraffa/go-ao/internal/log"
)

// WebPackage is the npm package that ships the dashboard
const WebPackage = "@composio/ao-web"

// BuildDashboardEnv returns the environment variables the dashboard process
// needs. A zero terminal port falls back to its default. AO_CONFIG_PATH is
// only set when configPath is not empty.
func BuildDashboardEnv(port int, configPath string, terminalPort, directTerminalPort int) map[string]string {
	if terminalPort == 0 {
		terminalPort = DefaultTerminalPort
	}
	if directTerminalPort == 0 {
		directTerminalPort = DefaultDirectTerminalPort
	}

	env := map[string]string{
		"PORT":                 strconv.Itoa(port),
		"TERMINAL_PORT":        strconv.Itoa(terminalPort),
		"DIRECT_TERMINAL_PORT": strconv.Itoa(directTerminalPort),
	}
	if configPath != "" {
		env["AO_CONFIG_PATH"] = configPath
	}
	return env
}

// Environ renders env as sorted KEY=VALUE pairs, the form exec.Cmd.Env takes
func Environ(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// WebDirLocator finds the installed dashboard package
type WebDirLocator struct {
	fs FileSystem
}

// NewWebDirLocator creates a locator backed by the given file system.
//
// Example:
//
//	locator := NewWebDirLocator(NewOSFileSystem())
//	dir := locator.Locate(cwd, filepath.Dir(exe))
func NewWebDirLocator(fs FileSystem) *WebDirLocator {
	return &WebDirLocator{fs: fs}
}

// Locate returns the dashboard package directory.
//
// It first resolves the package the way Node does, walking up from startDir
// through node_modules directories. It then tries the sibling checkouts
// exeDir/../../web and exeDir/../../../web. The first directory holding a
// package.json wins; if none does, the first sibling candidate is returned.
func (l *WebDirLocator) Locate(startDir, exeDir string) string {
	if dir, ok := l.resolvePackage(startDir); ok {
		return dir
	}

	candidates := WebDirCandidates(exeDir)
	for _, dir := range candidates {
		if l.fs.FileExists(filepath.Join(dir, "package.json")) {
			return dir
		}
		log.Debug("web dir candidate has no package.json", "dir", dir)
	}
	return candidates[0]
}

// WebDirCandidates returns the sibling directories checked for the dashboard
func WebDirCandidates(exeDir string) []string {
	return []string{
		filepath.Join(exeDir, "..", "..", "web"),
		filepath.Join(exeDir, "..", "..", "..", "web"),
	}
}

func (l *WebDirLocator) resolvePackage(startDir string) (string, bool) {
	if startDir == "" {
		return "", false
	}
	dir := filepath.Clean(startDir)
	for {
		modules := filepath.Join(dir, "node_modules")
		if l.fs.DirectoryExists(modules) {
			pkgDir := filepath.Join(modules, filepath.FromSlash(WebPackage))
			if l.fs.FileExists(filepath.Join(pkgDir, "package.json")) {
				return pkgDir, true
			}
			log.Debug("node_modules has no dashboard package", "dir", modules)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
