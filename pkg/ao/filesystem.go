package ao

import (
	"os"
	"path/filepath"
)

// FileSystem provides the file system operations go-ao needs.
// Implementations can use the OS file system or an in-memory fake.
type FileSystem interface {
	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories as needed.
	// The file is created if it doesn't exist, and truncated if it does.
	WriteFile(path string, data []byte) error

	// FileExists checks if a file exists and is accessible.
	FileExists(path string) bool

	// DirectoryExists checks if a directory exists and is accessible.
	DirectoryExists(path string) bool
}

// OSFileSystem implements FileSystem using the OS file system
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS file system instance.
//
// Example:
//
//	fs := NewOSFileSystem()
//	data, err := fs.ReadFile("agent-orchestrator.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the contents of a file.
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file with permissions 0644 (rw-r--r--).
// Missing parent directories are created with 0755.
func (fs *OSFileSystem) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FileExists checks if a file exists and is accessible.
// Returns false if the path is a directory or doesn't exist.
func (fs *OSFileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirectoryExists checks if a directory exists and is accessible.
// Returns false if the path is a file or doesn't exist.
func (fs *OSFileSystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
