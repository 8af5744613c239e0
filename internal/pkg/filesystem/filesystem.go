// nolint: forbidigo
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Fs - filesystem abstraction, so all file operations are testable in memory.
type Fs interface {
	Name() string // name of the used implementation, for example local, memory, ...
	BasePath() string
	WorkingDir() string
	SetLogger(logger *zap.SugaredLogger)
	Walk(root string, walkFn filepath.WalkFunc) error
	Stat(path string) (os.FileInfo, error)
	Exists(path string) bool
	IsFile(path string) bool
	IsDir(path string) bool
	Mkdir(path string) error
	Remove(path string) error
	ReadFile(path, desc string) (*File, error)
	WriteFile(file *File) error
}

// Rel returns relative path.
func Rel(base, path string) string {
	relPath, err := filepath.Rel(base, path)
	if err != nil {
		panic(fmt.Errorf(`cannot get relative path, base="%s", path="%s"`, base, path))
	}
	return relPath
}

// Join joins any number of path elements into a single path.
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Dir returns all but the last element of path, typically the path's directory.
func Dir(path string) string {
	return filepath.Dir(path)
}

// Base returns the last element of path.
func Base(path string) string {
	return filepath.Base(path)
}

// FromSlash returns the result of replacing each slash character with the OS separator.
func FromSlash(path string) string {
	return filepath.FromSlash(path)
}

// ToSlash returns the result of replacing each OS separator with a slash character.
func ToSlash(path string) string {
	return filepath.ToSlash(path)
}
