// Package fileops performs the primitive filesystem changes behind every
// file manager operation. Each call maps to a single provider request; there
// are no retries and nothing is rolled back.
package fileops

import (
	"io/fs"
	"os"

	serr "aetherfm/internal/errors"

	"github.com/otiai10/copy"
)

// FS is the filesystem provider the executor drives.
type FS interface {
	// Copy copies the regular file src to dst. dst must not exist.
	Copy(src, dst string) error
	// Move renames src to dst, replacing a file at dst.
	Move(src, dst string) error
	// Delete removes a file or an empty directory.
	Delete(path string) error
	// CreateFile creates an empty file. path must not exist.
	CreateFile(path string) error
	// CreateDirectory creates a single directory. path must not exist.
	CreateDirectory(path string) error
}

// OSFS is the host filesystem.
type OSFS struct{}

var _ FS = OSFS{}

func (OSFS) Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: errIsDir}
	}
	if _, err := os.Lstat(dst); err == nil {
		return &fs.PathError{Op: "copy", Path: dst, Err: fs.ErrExist}
	}

	return copy.Copy(src, dst, copy.Options{
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Deep
		},
		Sync:          true,
		PreserveTimes: true,
	})
}

func (OSFS) Move(src, dst string) error {
	return os.Rename(src, dst)
}

func (OSFS) Delete(path string) error {
	return os.Remove(path)
}

func (OSFS) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

func (OSFS) CreateDirectory(path string) error {
	return os.Mkdir(path, 0755)
}

var errIsDir = serr.New(serr.IsADirectory, "directories cannot be copied")
