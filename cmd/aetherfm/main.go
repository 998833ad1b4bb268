package main

import (
	"fmt"
	"os"

	"aetherfm/internal/config"
	"aetherfm/internal/gui"
	"aetherfm/internal/log"
	"aetherfm/internal/session"
	"aetherfm/internal/tui"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

// options shared by every command
type options struct {
	configPath string
	debug      bool
	cfg        *config.Config
}

// Entry point for the application
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "aetherfm [directory]",
		Short: "A minimal file manager",
		Long: `AetherFM browses directories and copies, pastes, renames, deletes and creates
files. Without a subcommand it opens the desktop window, or the terminal
interface when built without GUI support.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				log.Debug("GUI not available in this build, starting the terminal interface")
				return runTUI(opts, args)
			}
			return runGUI(opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default ~/.config/aetherfm/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(guiCmd(opts))
	rootCmd.AddCommand(tuiCmd(opts))
	rootCmd.AddCommand(lsCmd(opts))
	rootCmd.AddCommand(placesCmd(opts))
	rootCmd.AddCommand(mkdirCmd(opts))
	rootCmd.AddCommand(touchCmd(opts))
	rootCmd.AddCommand(rmCmd(opts))
	rootCmd.AddCommand(mvCmd(opts))
	rootCmd.AddCommand(cpCmd(opts))
	rootCmd.AddCommand(configCmd(opts))

	return rootCmd
}

func (o *options) load() error {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadConfigFile(o.configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	o.cfg = cfg
	if cfg.Log.JSON {
		log.Configure(log.WithJSON())
	}
	log.SetDebug(o.debug || cfg.Log.Debug)
	return nil
}

// startSession opens a session on the directory argument or the configured
// start directory.
func (o *options) startSession(args []string) (*session.Session, error) {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		var err error
		dir, err = o.cfg.ResolveStartDirectory()
		if err != nil {
			return nil, fmt.Errorf("error getting start directory: %w", err)
		}
	}
	return session.New(dir, session.WithOpener(session.CommandOpener{Command: o.cfg.OpenCommand}))
}

func runGUI(opts *options, args []string) error {
	s, err := opts.startSession(args)
	if err != nil {
		return err
	}
	return gui.Start(opts.cfg, s)
}

// guiCmd creates the GUI command for the CLI
func guiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [directory]",
		Short: "Open the desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts, args)
		},
	}
}

// tuiCmd represents the TUI command
func tuiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [directory]",
		Short: "Start the terminal user interface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts, args)
		},
	}
}

func runTUI(opts *options, args []string) error {
	s, err := opts.startSession(args)
	if err != nil {
		return err
	}
	if err := tui.Run(opts.cfg, s); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
