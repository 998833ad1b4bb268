// Package errors provides standardized error handling for AetherFM.
// It defines the error kinds a file operation can end in, a file error type
// carrying the affected path, and helpers to classify errors coming back
// from the operating system.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	FileExists
	DirectoryNotEmpty
	NotADirectory
	IsADirectory
	FileOperationFailed
	InvalidOperation
	// Session error kinds
	NothingSelected
	ClipboardEmpty
	NotConfirmed
	// Config error kinds
	InvalidConfig
)

var kindNames = map[ErrorKind]string{
	Unknown:             "unknown",
	FileNotFound:        "not found",
	FileAccessDenied:    "access denied",
	InvalidPath:         "invalid path",
	FileExists:          "already exists",
	DirectoryNotEmpty:   "directory not empty",
	NotADirectory:       "not a directory",
	IsADirectory:        "is a directory",
	FileOperationFailed: "operation failed",
	InvalidOperation:    "invalid operation",
	NothingSelected:     "nothing selected",
	ClipboardEmpty:      "clipboard empty",
	NotConfirmed:        "not confirmed",
	InvalidConfig:       "invalid configuration",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Common error constants for frequently occurring errors
var (
	ErrNothingSelected = New(NothingSelected, "no entry selected")
	ErrClipboardEmpty  = New(ClipboardEmpty, "nothing has been copied")
	ErrNotConfirmed    = New(NotConfirmed, "operation was not confirmed")
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates an error of the given kind.
func New(kind ErrorKind, msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: kind,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: KindOf(err),
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: KindOf(err),
	}
}

// FromOS converts an error returned by the os package into a FileError
// whose kind reflects the underlying cause. A nil err yields nil.
func FromOS(msg, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewFileError(msg, path, classify(err), err)
}

func classify(err error) ErrorKind {
	// ENOTEMPTY also satisfies fs.ErrExist, so it is checked first.
	switch {
	case errors.Is(err, syscall.ENOTEMPTY):
		return DirectoryNotEmpty
	case errors.Is(err, fs.ErrNotExist):
		return FileNotFound
	case errors.Is(err, fs.ErrExist):
		return FileExists
	case errors.Is(err, fs.ErrPermission):
		return FileAccessDenied
	case errors.Is(err, syscall.ENOTDIR):
		return NotADirectory
	case errors.Is(err, syscall.EISDIR):
		return IsADirectory
	case errors.Is(err, syscall.EINVAL), errors.Is(err, syscall.ENAMETOOLONG):
		return InvalidPath
	}
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return FileOperationFailed
}

// KindOf returns the kind of the first application error in err's chain,
// or Unknown.
func KindOf(err error) ErrorKind {
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return Unknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	return IsKind(err, FileNotFound)
}

// IsFileAccessDenied checks if the error is a file access denied error
func IsFileAccessDenied(err error) bool {
	return IsKind(err, FileAccessDenied)
}

// IsFileExists checks if the error reports an existing destination
func IsFileExists(err error) bool {
	return IsKind(err, FileExists)
}

// IsDirectoryNotEmpty checks if a delete failed on a populated directory
func IsDirectoryNotEmpty(err error) bool {
	return IsKind(err, DirectoryNotEmpty)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
