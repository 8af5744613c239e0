// nolint: forbidigo
package aferofs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gochart/exportgen/internal/pkg/filesystem"
	"github.com/gochart/exportgen/internal/pkg/filesystem/localfs"
	"github.com/gochart/exportgen/internal/pkg/filesystem/memoryfs"
)

// Backend is a filesystem implementation used by the Fs abstraction.
type Backend interface {
	afero.Fs
	Name() string
	BasePath() string
	Walk(root string, walkFn filepath.WalkFunc) error
}

// Fs implements the filesystem.Fs abstraction over an Afero backend.
type Fs struct {
	backend    Backend
	utils      *afero.Afero
	logger     *zap.SugaredLogger
	workingDir string
}

func New(logger *zap.SugaredLogger, backend Backend, workingDir string) *Fs {
	return &Fs{
		backend:    backend,
		utils:      &afero.Afero{Fs: backend},
		logger:     logger,
		workingDir: filesystem.FromSlash(workingDir),
	}
}

func NewLocalFs(logger *zap.SugaredLogger, basePath string, workingDirRel string) (*Fs, error) {
	if !filepath.IsAbs(basePath) {
		return nil, fmt.Errorf(`base path "%s" must be absolute`, basePath)
	}
	return New(logger, localfs.New(basePath), workingDirRel), nil
}

func NewMemoryFs(logger *zap.SugaredLogger, workingDir string) (*Fs, error) {
	return New(logger, memoryfs.New(), workingDir), nil
}

func (fs *Fs) Backend() afero.Fs {
	return fs.backend
}

func (fs *Fs) Name() string {
	return fs.backend.Name()
}

func (fs *Fs) BasePath() string {
	return fs.backend.BasePath()
}

func (fs *Fs) WorkingDir() string {
	return fs.workingDir
}

func (fs *Fs) SetLogger(logger *zap.SugaredLogger) {
	fs.logger = logger
}

func (fs *Fs) Walk(root string, walkFn filepath.WalkFunc) error {
	return fs.backend.Walk(root, walkFn)
}

func (fs *Fs) Stat(path string) (os.FileInfo, error) {
	return fs.backend.Stat(path)
}

func (fs *Fs) Exists(path string) bool {
	if _, err := fs.backend.Stat(path); err == nil {
		return true
	}
	return false
}

func (fs *Fs) IsFile(path string) bool {
	if s, err := fs.backend.Stat(path); err == nil {
		return s.Mode().IsRegular()
	}
	return false
}

func (fs *Fs) IsDir(path string) bool {
	if s, err := fs.backend.Stat(path); err == nil {
		return s.IsDir()
	}
	return false
}

func (fs *Fs) Mkdir(path string) error {
	if err := fs.utils.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf(`cannot create directory "%s": %w`, path, err)
	}
	fs.logger.Debugf(`Created directory "%s"`, path)
	return nil
}

func (fs *Fs) Remove(path string) error {
	if err := fs.utils.RemoveAll(path); err != nil {
		return fmt.Errorf(`cannot remove "%s": %w`, path, err)
	}
	fs.logger.Debugf(`Removed "%s"`, path)
	return nil
}

func (fs *Fs) ReadFile(path, desc string) (*filesystem.File, error) {
	content, err := fs.utils.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`cannot read %s "%s": %w`, desc, path, err)
	}
	fs.logger.Debugf(`Loaded "%s"`, path)
	return filesystem.NewFile(path, string(content)).SetDescription(desc), nil
}

func (fs *Fs) WriteFile(file *filesystem.File) error {
	// Create directory
	if dir := filesystem.Dir(file.Path()); !fs.Exists(dir) {
		if err := fs.Mkdir(dir); err != nil {
			return err
		}
	}

	if err := fs.utils.WriteFile(file.Path(), []byte(file.Content), 0o644); err != nil {
		return fmt.Errorf(`cannot write %s "%s": %w`, file.Description(), file.Path(), err)
	}
	fs.logger.Debugf(`Saved "%s"`, file.Path())
	return nil
}
