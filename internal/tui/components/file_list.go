package components

import (
	"fmt"
	"os"
	"strings"

	"aetherfm/internal/tui/styles"
	"aetherfm/pkg/types"

	"github.com/dustin/go-humanize"
)

// FileList renders directory entries with a cursor. Rows beyond height are
// scrolled so the cursor stays visible.
type FileList struct {
	entries    []types.Entry
	cursor     int
	height     int
	currentDir string
}

func NewFileList() *FileList {
	return &FileList{}
}

func (fl *FileList) SetEntries(entries []types.Entry) {
	fl.entries = entries
}

func (fl *FileList) SetCursor(cursor int) {
	fl.cursor = cursor
}

func (fl *FileList) SetHeight(height int) {
	fl.height = height
}

func (fl *FileList) SetCurrentDir(dir string) {
	fl.currentDir = dir
}

func (fl *FileList) View() string {
	var s strings.Builder

	s.WriteString(styles.Theme.Help.Render("Location: "+fl.currentDir) + "\n\n")

	if len(fl.entries) == 0 {
		s.WriteString("No files found\n")
		return s.String()
	}

	start, end := fl.window()
	for i := start; i < end; i++ {
		e := fl.entries[i]

		style := styles.Theme.Unselected
		name := e.Name
		if e.IsDir {
			style = styles.Theme.Directory
			name += "/"
		}
		cursor := " "
		if i == fl.cursor {
			cursor = ">"
			style = styles.Theme.Selected
		}

		s.WriteString(fmt.Sprintf("%s %-40s %s\n", cursor, style.Render(name), styles.Theme.Help.Render(details(e))))
	}

	return s.String()
}

func (fl *FileList) window() (int, int) {
	n := len(fl.entries)
	if fl.height <= 0 || n <= fl.height {
		return 0, n
	}
	start := fl.cursor - fl.height/2
	if start < 0 {
		start = 0
	}
	if start+fl.height > n {
		start = n - fl.height
	}
	return start, start + fl.height
}

// details shows size and age; entries that vanished since listing show the
// content type only.
func details(e types.Entry) string {
	info, err := os.Lstat(e.Path)
	if err != nil {
		return e.ContentType
	}
	if e.IsDir {
		return fmt.Sprintf("%8s  %s", "-", humanize.Time(info.ModTime()))
	}
	return fmt.Sprintf("%8s  %s", humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
}
