// Package places builds the sidebar: the user's home folders, configured
// bookmarks, the filesystem root and mounted volumes.
package places

import (
	"os"
	"path/filepath"
	"strings"

	"aetherfm/internal/log"

	"github.com/shirou/gopsutil/v3/disk"
)

// Kind groups places in the sidebar.
type Kind string

const (
	KindHome     Kind = "home"
	KindFolder   Kind = "folder"
	KindBookmark Kind = "bookmark"
	KindRoot     Kind = "root"
	KindVolume   Kind = "volume"
)

// Place is one sidebar row.
type Place struct {
	Name string
	Path string
	Icon string
	Kind Kind
}

// PartitionLister reports mounted partitions.
type PartitionLister func() ([]disk.PartitionStat, error)

// Options controls Discover.
type Options struct {
	Home        string
	Bookmarks   []string
	ShowVolumes bool
	Partitions  PartitionLister
}

var standardFolders = []struct {
	name string
	icon string
}{
	{"Desktop", "user-desktop"},
	{"Documents", "folder-documents"},
	{"Downloads", "folder-download"},
	{"Music", "folder-music"},
	{"Pictures", "folder-pictures"},
	{"Videos", "folder-videos"},
}

// Filesystems that never hold user files.
var pseudoFS = map[string]bool{
	"autofs": true, "binfmt_misc": true, "bpf": true, "cgroup": true,
	"cgroup2": true, "configfs": true, "debugfs": true, "devpts": true,
	"devtmpfs": true, "efivarfs": true, "fusectl": true, "hugetlbfs": true,
	"mqueue": true, "nsfs": true, "overlay": true, "proc": true,
	"pstore": true, "securityfs": true, "squashfs": true, "sysfs": true,
	"tmpfs": true, "tracefs": true,
}

// Discover returns the sidebar places in display order. A missing home
// directory drops the home rows, and a failing partition query drops the
// volumes; neither is an error.
func Discover(opts Options) []Place {
	var out []Place

	home := opts.Home
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	if isDir(home) {
		out = append(out, Place{Name: "Home", Path: home, Icon: "user-home", Kind: KindHome})
		for _, f := range standardFolders {
			path := filepath.Join(home, f.name)
			if isDir(path) {
				out = append(out, Place{Name: f.name, Path: path, Icon: f.icon, Kind: KindFolder})
			}
		}
	}

	for _, b := range opts.Bookmarks {
		out = append(out, Place{Name: filepath.Base(b), Path: b, Icon: "folder", Kind: KindBookmark})
	}

	root := rootDir()
	out = append(out, Place{Name: "Computer", Path: root, Icon: "computer", Kind: KindRoot})

	if opts.ShowVolumes {
		out = append(out, volumes(opts.Partitions, root)...)
	}
	return out
}

func volumes(list PartitionLister, root string) []Place {
	if list == nil {
		list = func() ([]disk.PartitionStat, error) {
			return disk.Partitions(false)
		}
	}
	parts, err := list()
	if err != nil {
		log.LogWithFields(log.F("error", err)).Debug("cannot list partitions")
		return nil
	}

	seen := map[string]bool{root: true}
	var out []Place
	for _, p := range parts {
		if p.Mountpoint == "" || seen[p.Mountpoint] || pseudoFS[p.Fstype] {
			continue
		}
		if strings.HasPrefix(p.Mountpoint, "/proc") || strings.HasPrefix(p.Mountpoint, "/sys") ||
			strings.HasPrefix(p.Mountpoint, "/dev") || strings.HasPrefix(p.Mountpoint, "/boot") {
			continue
		}
		seen[p.Mountpoint] = true
		out = append(out, Place{
			Name: filepath.Base(p.Mountpoint),
			Path: p.Mountpoint,
			Icon: "drive-harddisk",
			Kind: KindVolume,
		})
	}
	return out
}

func rootDir() string {
	if wd, err := os.Getwd(); err == nil {
		if vol := filepath.VolumeName(wd); vol != "" {
			return vol + string(filepath.Separator)
		}
	}
	return string(filepath.Separator)
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
