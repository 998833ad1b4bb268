package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	serr "aetherfm/internal/errors"
	"aetherfm/internal/listing"
	"aetherfm/internal/places"
	"aetherfm/internal/session"
	"aetherfm/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func lsCmd(opts *options) *cobra.Command {
	var (
		match  string
		long   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ls [directory]",
		Short: "List the visible entries of a directory",
		Long: `List the entries of a directory in the order the filesystem reports
them. Names starting with a dot are hidden.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			lister, err := listing.New(listing.WithMatch(match))
			if err != nil {
				return err
			}
			entries, err := lister.Read(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				for _, e := range entries {
					line, err := e.ToJSON()
					if err != nil {
						return err
					}
					fmt.Fprintln(out, line)
				}
			case long:
				renderEntries(out, entries)
			default:
				for _, e := range entries {
					fmt.Fprintln(out, e.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", `Only list names matching a glob, e.g. "*.{jpg,png}"`)
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show type, size and modification time")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per entry")
	cmd.MarkFlagsMutuallyExclusive("long", "json")

	return cmd
}

func renderEntries(w io.Writer, entries []types.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Type", "Size", "Modified"})

	for _, e := range entries {
		size, modified := "-", "-"
		if info, err := os.Lstat(e.Path); err == nil {
			if !e.IsDir {
				size = humanize.Bytes(uint64(info.Size()))
			}
			modified = humanize.Time(info.ModTime())
		}
		name := e.Name
		if e.IsDir {
			name += string(filepath.Separator)
		}
		t.AppendRow(table.Row{name, e.ContentType, size, modified})
	}

	t.Render()
}

func placesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "places",
		Short: "Show the sidebar places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := places.Discover(places.Options{
				Bookmarks:   opts.cfg.Bookmarks,
				ShowVolumes: opts.cfg.Places.ShowVolumes,
			})

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Kind", "Path"})
			for _, p := range list {
				t.AppendRow(table.Row{p.Name, string(p.Kind), p.Path})
			}
			t.Render()
			return nil
		},
	}
}

// sessionFor opens a session on the parent of path and returns the entry
// name inside it.
func sessionFor(path string) (*session.Session, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	s, err := session.New(filepath.Dir(abs))
	if err != nil {
		return nil, "", err
	}
	return s, filepath.Base(abs), nil
}

// dispatchEach runs action once per path argument and stops at the first
// failure.
func dispatchEach(action session.Action, paths []string, req func(name string) session.Request) error {
	for _, p := range paths {
		s, name, err := sessionFor(p)
		if err != nil {
			return err
		}
		if res := s.Dispatch(action, req(name)); res.Err != nil {
			return res.Err
		}
	}
	return nil
}

func mkdirCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir PATH...",
		Short: "Create directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchEach(session.ActionCreateFolder, args, func(name string) session.Request {
				return session.Request{Name: name}
			})
		},
	}
}

func touchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "touch PATH...",
		Short: "Create empty files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatchEach(session.ActionCreateFile, args, func(name string) session.Request {
				return session.Request{Name: name}
			})
		},
	}
}

func rmCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm PATH...",
		Short: "Delete files and empty directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed := yes || !opts.cfg.ConfirmDelete
			err := dispatchEach(session.ActionDelete, args, func(name string) session.Request {
				return session.Request{Name: name, Confirmed: confirmed}
			})
			if serr.IsKind(err, serr.NotConfirmed) {
				return fmt.Errorf("%w: pass --yes to delete", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")

	return cmd
}

func mvCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mv PATH NEW_NAME",
		Short: "Rename an entry inside its directory",
		Long: `Rename an entry inside its directory. An existing file called NEW_NAME is
replaced.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, name, err := sessionFor(args[0])
			if err != nil {
				return err
			}
			return s.Dispatch(session.ActionRename, session.Request{Name: name, NewName: args[1]}).Err
		},
	}
}

func cpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cp FILE DEST_DIR",
		Short: "Copy a file into a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, name, err := sessionFor(args[0])
			if err != nil {
				return err
			}
			if res := s.Dispatch(session.ActionCopy, session.Request{Name: name}); res.Err != nil {
				return res.Err
			}
			if res := s.Dispatch(session.ActionJump, session.Request{Path: args[1]}); res.Err != nil {
				return res.Err
			}
			return s.Dispatch(session.ActionPaste, session.Request{}).Err
		},
	}
}
