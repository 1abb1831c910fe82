package ao

import (
	"os"
	"path/filepath"
)

// MockFileSystem is an in-memory implementation of FileSystem for testing
type MockFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool
}

func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (fs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if content, exists := fs.files[filepath.Clean(path)]; exists {
		return content, nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (fs *MockFileSystem) WriteFile(path string, content []byte) error {
	path = filepath.Clean(path)
	fs.files[path] = content
	for dir := filepath.Dir(path); !fs.dirs[dir]; dir = filepath.Dir(dir) {
		fs.dirs[dir] = true
	}
	return nil
}

func (fs *MockFileSystem) FileExists(path string) bool {
	_, exists := fs.files[filepath.Clean(path)]
	return exists
}

func (fs *MockFileSystem) DirectoryExists(path string) bool {
	return fs.dirs[filepath.Clean(path)]
}
