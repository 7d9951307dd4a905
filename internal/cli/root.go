// Package cli wires the xtal commands together.
//
// The root command opens the interactive site editor; subcommands
// query and manage the site library without entering the TUI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"xtal/internal/config"
	"xtal/internal/crystal"
	"xtal/internal/elements"
	"xtal/internal/library"
	"xtal/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	dbPath     string
}

// Execute runs the CLI.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "xtal [site]",
		Short:        "xtal — crystallographic site editor",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			name := "default"
			if len(args) > 0 {
				name = args[0]
			}
			return runEditor(opts, name)
		},
	}

	defaultConfig := ""
	if homeDir, err := os.UserHomeDir(); err == nil {
		defaultConfig = filepath.Join(homeDir, ".xtal", "config.yaml")
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfig, "Path to config file")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to site library (overrides config)")

	cmd.AddCommand(newSitesCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig resolves the effective configuration, applying the --db
// override on top of the file.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.dbPath != "" {
		cfg.LibraryPath = opts.dbPath
	}
	return cfg, nil
}

func openStore(cfg config.Config) (library.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LibraryPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}
	return library.NewDBService(cfg.LibraryPath)
}

// runEditor opens the TUI on the named site, creating a fresh
// single-atom site if the library doesn't know the name yet.
func runEditor(opts *rootOptions, name string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var site *crystal.Site
	rec, err := store.GetSite(name)
	switch {
	case err == nil:
		site = &rec.Site
	case errors.Is(err, library.ErrSiteNotFound):
		site = crystal.NewSite("Si", cfg.DefaultU)
	default:
		return err
	}

	elems, err := elements.Load()
	if err != nil {
		return err
	}

	model := tui.NewModel(store, name, site, cfg, elems)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
