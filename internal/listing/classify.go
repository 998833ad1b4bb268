package listing

import (
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Content types for entries that are not regular files.
const (
	TypeDirectory   = "inode/directory"
	TypeSymlink     = "inode/symlink"
	TypeFIFO        = "inode/fifo"
	TypeSocket      = "inode/socket"
	TypeCharDevice  = "inode/chardevice"
	TypeBlockDevice = "inode/blockdevice"
	TypeUnknown     = "application/octet-stream"
)

// Classifier guesses the content type of a directory entry.
type Classifier interface {
	Classify(path string, d fs.DirEntry) string
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(path string, d fs.DirEntry) string

func (f ClassifierFunc) Classify(path string, d fs.DirEntry) string {
	return f(path, d)
}

// SniffClassifier sniffs regular files with mimetype and falls back to
// the extension table when the file cannot be read.
type SniffClassifier struct{}

// Classify returns a MIME type without parameters.
func (SniffClassifier) Classify(path string, d fs.DirEntry) string {
	mode := d.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return TypeSymlink
		}
		mode = info.Mode().Type()
	}

	switch {
	case mode.IsDir():
		return TypeDirectory
	case mode&fs.ModeNamedPipe != 0:
		return TypeFIFO
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return TypeBlockDevice
	}

	if mt, err := mimetype.DetectFile(path); err == nil {
		return stripParams(mt.String())
	}
	return ByExtension(path)
}

// ByExtension guesses from the file name alone.
func ByExtension(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return stripParams(t)
	}
	return TypeUnknown
}

func stripParams(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(contentType)
}

var archiveTypes = map[string]bool{
	"application/zip":              true,
	"application/gzip":             true,
	"application/x-tar":            true,
	"application/x-bzip2":          true,
	"application/x-xz":             true,
	"application/x-7z-compressed":  true,
	"application/vnd.rar":          true,
	"application/x-rar-compressed": true,
	"application/zstd":             true,
}

var executableTypes = map[string]bool{
	"application/x-executable":                      true,
	"application/x-elf":                             true,
	"application/x-sharedlib":                       true,
	"application/x-mach-binary":                     true,
	"application/vnd.microsoft.portable-executable": true,
}

// IconName maps a content type to a freedesktop icon name.
func IconName(contentType string) string {
	switch {
	case contentType == TypeDirectory:
		return "folder"
	case strings.HasPrefix(contentType, "inode/"):
		return "inode-x-generic"
	case contentType == "application/pdf":
		return "application-pdf"
	case archiveTypes[contentType]:
		return "package-x-generic"
	case executableTypes[contentType]:
		return "application-x-executable"
	case strings.HasPrefix(contentType, "image/"):
		return "image-x-generic"
	case strings.HasPrefix(contentType, "audio/"):
		return "audio-x-generic"
	case strings.HasPrefix(contentType, "video/"):
		return "video-x-generic"
	case strings.HasPrefix(contentType, "text/"),
		contentType == "application/json",
		contentType == "application/xml",
		contentType == "application/yaml":
		return "text-x-generic"
	}
	return "application-x-generic"
}
