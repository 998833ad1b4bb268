package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content.
// Names may contain slashes; parent directories are created.
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// CreateTestFilesWithDefault creates a small mixed directory: two visible
// files, one hidden file and one sub-directory.
func CreateTestFilesWithDefault(t *testing.T, dir string) {
	t.Helper()
	CreateTestFilesWithContent(t, dir, map[string]string{
		"notes.txt":  "test content 1",
		"report.pdf": "%PDF-1.4\n%test\n",
		".hidden":    "secret",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "photos"), 0755))
}

// Exists reports whether path can be stat'ed.
func Exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
