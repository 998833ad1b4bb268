package fileops

import (
	serr "aetherfm/internal/errors"
	"aetherfm/internal/log"
)

// Executor runs operations against a provider and reports failures as
// classified file errors.
type Executor struct {
	fs FS
}

// NewExecutor wraps provider. A nil provider means the host filesystem.
func NewExecutor(provider FS) *Executor {
	if provider == nil {
		provider = OSFS{}
	}
	return &Executor{fs: provider}
}

// Copy copies a regular file to dst.
func (e *Executor) Copy(src, dst string) error {
	logger := log.LogWithFields(log.F("source", src), log.F("destination", dst))
	if err := e.fs.Copy(src, dst); err != nil {
		logger.Debugf("copy failed: %v", err)
		return serr.FromOS("failed to copy", src, err)
	}
	logger.Debug("copied")
	return nil
}

// Move renames src to dst.
func (e *Executor) Move(src, dst string) error {
	logger := log.LogWithFields(log.F("source", src), log.F("destination", dst))
	if err := e.fs.Move(src, dst); err != nil {
		logger.Debugf("move failed: %v", err)
		return serr.FromOS("failed to move", src, err)
	}
	logger.Debug("moved")
	return nil
}

// Delete removes a file or an empty directory.
func (e *Executor) Delete(path string) error {
	return e.run("delete", path, e.fs.Delete)
}

// CreateFile creates an empty file.
func (e *Executor) CreateFile(path string) error {
	return e.run("create file", path, e.fs.CreateFile)
}

// CreateDirectory creates a directory.
func (e *Executor) CreateDirectory(path string) error {
	return e.run("create directory", path, e.fs.CreateDirectory)
}

func (e *Executor) run(op, path string, fn func(string) error) error {
	logger := log.LogWithFields(log.F("op", op), log.F("path", path))
	if err := fn(path); err != nil {
		logger.Debugf("failed: %v", err)
		return serr.FromOS("failed to "+op, path, err)
	}
	logger.Debug("done")
	return nil
}
