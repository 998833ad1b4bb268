// Package session holds the state of one file manager view: the directory
// being shown and the path last copied. Every file operation is expressed
// relative to that state.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	serr "aetherfm/internal/errors"
	"aetherfm/internal/fileops"
	"aetherfm/internal/listing"
	"aetherfm/internal/log"
	"aetherfm/pkg/types"
)

// Session owns CurrentLocation and ClipboardPath.
type Session struct {
	mu        sync.RWMutex
	location  string
	clipboard string

	lister *listing.Lister
	exec   *fileops.Executor
	opener Opener
}

// Option configures a Session.
type Option func(*Session)

// WithLister replaces the default directory lister.
func WithLister(l *listing.Lister) Option {
	return func(s *Session) {
		s.lister = l
	}
}

// WithFS runs file operations against provider instead of the host filesystem.
func WithFS(provider fileops.FS) Option {
	return func(s *Session) {
		s.exec = fileops.NewExecutor(provider)
	}
}

// WithOpener sets how non-directory entries are opened.
func WithOpener(o Opener) Option {
	return func(s *Session) {
		s.opener = o
	}
}

// New creates a session showing start, which must be a directory.
func New(start string, opts ...Option) (*Session, error) {
	dir, err := checkDirectory(start)
	if err != nil {
		return nil, err
	}

	s := &Session{
		location: dir,
		exec:     fileops.NewExecutor(nil),
		opener:   CommandOpener{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.lister == nil {
		s.lister, err = listing.New()
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetOpener replaces the opener after construction.
func (s *Session) SetOpener(o Opener) {
	s.mu.Lock()
	s.opener = o
	s.mu.Unlock()
}

// Location returns CurrentLocation.
func (s *Session) Location() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// Clipboard returns ClipboardPath and whether anything has been copied.
func (s *Session) Clipboard() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clipboard, s.clipboard != ""
}

// List returns the visible entries of CurrentLocation.
func (s *Session) List() []types.Entry {
	return s.lister.List(s.Location())
}

// Activate navigates into a directory entry or opens any other entry with
// the default application. It reports whether the location changed.
func (s *Session) Activate(name string) (bool, error) {
	path, err := s.entryPath(name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, serr.FromOS("cannot activate", path, err)
	}
	if info.IsDir() {
		s.setLocation(path)
		return true, nil
	}

	return false, s.open(path)
}

func (s *Session) open(path string) error {
	s.mu.RLock()
	opener := s.opener
	s.mu.RUnlock()

	logger := log.LogWithFields(log.F("path", path))
	err := opener.Open(path)
	if err == nil {
		return nil
	}
	logger.Debugf("open failed, trying URI: %v", err)

	uri := FileURI(path)
	if uriErr := opener.Open(uri); uriErr != nil {
		logger.Debugf("open by URI failed: %v", uriErr)
		return serr.NewFileError("cannot open", path, serr.FileOperationFailed, uriErr)
	}
	return nil
}

// NavigateUp moves to the parent directory. At the filesystem root the
// location is left alone and false is returned.
func (s *Session) NavigateUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent := filepath.Dir(s.location)
	if parent == s.location {
		return false
	}
	s.location = parent
	return true
}

// JumpTo sets CurrentLocation to dir. Relative paths are resolved against
// the process working directory.
func (s *Session) JumpTo(dir string) error {
	abs, err := checkDirectory(dir)
	if err != nil {
		return err
	}
	s.setLocation(abs)
	return nil
}

// CopyEntry records Location/name as ClipboardPath.
func (s *Session) CopyEntry(name string) error {
	path, err := s.entryPath(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.clipboard = path
	s.mu.Unlock()
	return nil
}

// Paste copies ClipboardPath into CurrentLocation under its base name.
// ClipboardPath is kept so the same file can be pasted again elsewhere.
func (s *Session) Paste() error {
	src, ok := s.Clipboard()
	if !ok {
		return serr.ErrClipboardEmpty
	}
	dst := filepath.Join(s.Location(), filepath.Base(src))
	return s.exec.Copy(src, dst)
}

// Delete removes Location/name. Nothing happens until confirmed is true.
// Directories must be empty.
func (s *Session) Delete(name string, confirmed bool) error {
	path, err := s.entryPath(name)
	if err != nil {
		return err
	}
	if !confirmed {
		return serr.ErrNotConfirmed
	}
	return s.exec.Delete(path)
}

// Rename moves Location/oldName to Location/newName, replacing an existing
// file of that name.
func (s *Session) Rename(oldName, newName string) error {
	src, err := s.entryPath(oldName)
	if err != nil {
		return err
	}
	if err := validateName(newName); err != nil {
		return err
	}
	return s.exec.Move(src, filepath.Join(s.Location(), newName))
}

// CreateFile creates an empty file in CurrentLocation.
func (s *Session) CreateFile(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.exec.CreateFile(filepath.Join(s.Location(), name))
}

// CreateFolder creates a directory in CurrentLocation.
func (s *Session) CreateFolder(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return s.exec.CreateDirectory(filepath.Join(s.Location(), name))
}

func (s *Session) setLocation(dir string) {
	s.mu.Lock()
	s.location = dir
	s.mu.Unlock()
	log.LogWithFields(log.F("directory", dir)).Debug("location changed")
}

// entryPath resolves a selected entry name.
func (s *Session) entryPath(name string) (string, error) {
	if name == "" {
		return "", serr.ErrNothingSelected
	}
	if err := validateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.Location(), name), nil
}

// validateName accepts a single path element.
func validateName(name string) error {
	switch {
	case name == "":
		return serr.New(serr.InvalidPath, "name is empty")
	case name == "." || name == "..":
		return serr.New(serr.InvalidPath, fmt.Sprintf("name %q is reserved", name))
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return serr.New(serr.InvalidPath, "name must not contain a path separator: "+name)
	}
	return nil
}

func checkDirectory(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", serr.NewFileError("invalid directory", dir, serr.InvalidPath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", serr.FromOS("cannot open directory", abs, err)
	}
	if !info.IsDir() {
		return "", serr.NewFileError("not a directory", abs, serr.NotADirectory, nil)
	}
	return abs, nil
}
