// Package listing enumerates the visible entries of a directory.
//
// Entries come back in the order the operating system reports them; no
// sorting is applied. Names starting with a dot are hidden. A directory
// that cannot be opened lists as empty. Entry paths are always absolute.
package listing

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	serr "aetherfm/internal/errors"
	"aetherfm/internal/log"
	"aetherfm/pkg/types"

	"github.com/gobwas/glob"
)

// batchSize is how many directory entries are read per syscall round.
const batchSize = 64

// Lister enumerates directories.
type Lister struct {
	classifier Classifier
	match      glob.Glob
	pattern    string
}

// Option configures a Lister.
type Option func(*Lister) error

// WithClassifier replaces the content type heuristic.
func WithClassifier(c Classifier) Option {
	return func(l *Lister) error {
		l.classifier = c
		return nil
	}
}

// WithMatch keeps only entries whose name matches the glob pattern.
// Braces and character classes are supported ("*.{jpg,png}").
func WithMatch(pattern string) Option {
	return func(l *Lister) error {
		if pattern == "" {
			return nil
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return serr.Wrapf(err, "invalid match pattern %q", pattern)
		}
		l.match = g
		l.pattern = pattern
		return nil
	}
}

// New creates a Lister.
func New(opts ...Option) (*Lister, error) {
	l := &Lister{classifier: SniffClassifier{}}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// IsHidden reports whether a name follows the dot-file convention.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Entries returns a one-shot sequence over the visible entries of dir.
// The directory is opened when iteration starts and closed when it ends or
// the consumer stops early.
func (l *Lister) Entries(dir string) iter.Seq[types.Entry] {
	return func(yield func(types.Entry) bool) {
		_ = l.walk(dir, yield)
	}
}

// List collects Entries(dir).
func (l *Lister) List(dir string) []types.Entry {
	entries := []types.Entry{}
	for e := range l.Entries(dir) {
		entries = append(entries, e)
	}
	return entries
}

// Read is List with the open error reported instead of swallowed.
func (l *Lister) Read(dir string) ([]types.Entry, error) {
	entries := []types.Entry{}
	err := l.walk(dir, func(e types.Entry) bool {
		entries = append(entries, e)
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (l *Lister) walk(dir string, yield func(types.Entry) bool) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return serr.NewFileError("invalid directory", dir, serr.InvalidPath, err)
	}
	dir = abs
	logger := log.LogWithFields(log.F("directory", dir))

	f, err := os.Open(dir)
	if err != nil {
		logger.Debugf("cannot open directory: %v", err)
		return serr.FromOS("failed to open directory", dir, err)
	}
	defer f.Close()

	for {
		batch, err := f.ReadDir(batchSize)
		for _, d := range batch {
			name := d.Name()
			if IsHidden(name) {
				continue
			}
			if l.match != nil && !l.match.Match(name) {
				continue
			}
			path := filepath.Join(dir, name)
			contentType := l.classifier.Classify(path, d)
			entry := types.Entry{
				Name:        name,
				Path:        path,
				IsDir:       contentType == TypeDirectory,
				ContentType: contentType,
				Icon:        IconName(contentType),
			}
			if !yield(entry) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			// A directory that opened but cannot be read keeps what was
			// already yielded.
			logger.Debugf("directory read stopped: %v", err)
			return serr.FromOS("failed to read directory", dir, err)
		}
		if len(batch) == 0 {
			return nil
		}
	}
}
