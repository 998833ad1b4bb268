package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ClipboardEmpty, "nothing to paste")
	assert.Equal(t, "nothing to paste", err.Error())
	assert.Equal(t, ClipboardEmpty, KindOf(err))

	err = Newf("formatted %s", "error")
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	require.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New(FileExists, "original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))
	assert.True(t, IsFileExists(wrappedErr), "wrapping keeps the kind")

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot access", "/path/to/file", FileAccessDenied, nil)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.True(t, IsFileAccessDenied(fileErr))

	cause := fmt.Errorf("disk on fire")
	fileErr = NewFileError("cannot write", "/tmp/x", FileOperationFailed, cause)
	assert.Equal(t, "cannot write: /tmp/x: disk on fire", fileErr.Error())
	assert.True(t, Is(fileErr, cause))

	fileErr = NewFileError("no path", "", FileNotFound, nil)
	assert.Equal(t, "no path", fileErr.Error())
}

func TestConfigError(t *testing.T) {
	cfgErr := NewConfigError("bad value", "window.width", InvalidConfig, nil)
	assert.Equal(t, "bad value: window.width", cfgErr.Error())
	assert.Equal(t, "window.width", cfgErr.Param())
	assert.True(t, IsInvalidConfig(cfgErr))
	assert.True(t, IsInvalidConfig(fmt.Errorf("load: %w", cfgErr)))
	assert.False(t, IsInvalidConfig(New(InvalidPath, "nope")))
}

func TestFromOS(t *testing.T) {
	dir := t.TempDir()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, FromOS("stat", dir, nil))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(dir, "missing"))
		ferr := FromOS("stat failed", filepath.Join(dir, "missing"), err)
		assert.True(t, IsFileNotFound(ferr))
		assert.True(t, errors.Is(ferr, fs.ErrNotExist))
	})

	t.Run("existing directory", func(t *testing.T) {
		err := os.Mkdir(dir, 0o755)
		assert.True(t, IsFileExists(FromOS("mkdir failed", dir, err)))
	})

	t.Run("non-empty directory", func(t *testing.T) {
		full := filepath.Join(dir, "full")
		require.NoError(t, os.Mkdir(full, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(full, "a"), nil, 0o644))
		err := os.Remove(full)
		require.Error(t, err)
		assert.True(t, IsDirectoryNotEmpty(FromOS("remove failed", full, err)))
	})

	t.Run("already classified", func(t *testing.T) {
		err := FromOS("paste failed", "/x", ErrClipboardEmpty)
		assert.Equal(t, ClipboardEmpty, KindOf(err))
	})

	t.Run("unclassified", func(t *testing.T) {
		err := FromOS("copy failed", "/x", fmt.Errorf("short write"))
		assert.Equal(t, FileOperationFailed, KindOf(err))
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "directory not empty", DirectoryNotEmpty.String())
	assert.Equal(t, "kind(999)", ErrorKind(999).String())
}
