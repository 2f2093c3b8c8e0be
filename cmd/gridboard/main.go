// Package main implements GRIDBOARD, a terminal dashboard with a
// draggable card grid. Cards are placed on a fixed-column grid, can be
// dragged and resized with the mouse or keyboard, and layouts persist
// across runs with undo history and aspect-ratio-aware profiles.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/spf13/cobra"

	"github.com/dodorz/gridboard/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	asciiOnly    bool
	themeName    string
	listThemes   bool
	borderStyle  string
	dockPosition string
	hideDock     bool
	columns      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridboard",
		Short: "Terminal dashboard with a draggable card grid",
		Long: `GRIDBOARD - a terminal dashboard built from cards on a grid

Cards snap to a fixed-column grid and can be dragged, resized, hidden,
and locked with the mouse or keyboard. Every change is undoable, and
layouts persist across runs. Save named profiles per window shape and
GRIDBOARD switches to the best-matching one when the terminal resizes.`,
		Example: `  # Run GRIDBOARD
  gridboard

  # Run with a specific theme
  gridboard --theme dracula

  # List all available themes
  gridboard --list-themes

  # Run with ASCII-only borders
  gridboard --ascii-only

  # Run on a wider grid
  gridboard --columns 32

  # Edit configuration
  gridboard config edit

  # Inspect saved profiles
  gridboard profiles list`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listThemes {
				if err := theme.Initialize("default"); err != nil {
					return fmt.Errorf("failed to initialize themes: %w", err)
				}
				for _, t := range tint.TintIDs() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters for card borders and glyphs")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Card border style: rounded, normal, thick, double, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&dockPosition, "dock-position", "", "Status dock position: bottom, top, hidden (default: from config or bottom)")
	rootCmd.PersistentFlags().BoolVar(&hideDock, "hide-dock", false, "Hide the status dock")
	rootCmd.PersistentFlags().IntVar(&columns, "columns", 0, "Number of grid columns, 4-48 (default: from config or 24)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage GRIDBOARD configuration",
		Long:  `Manage GRIDBOARD configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the GRIDBOARD configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the GRIDBOARD configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the GRIDBOARD configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect saved layout profiles",
		Long:  `List, show, and delete layout profiles from the saved workspace`,
	}

	profilesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Long:  `Display all saved profiles with their aspect ratio ranges`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listProfiles()
		},
	}

	profilesShowCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a profile's cards",
		Long:  `Display the card placements stored in a profile`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return showProfile(args[0])
		},
	}

	profilesDeleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved profile",
		Long:  `Remove a profile from the saved workspace`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return deleteProfile(args[0])
		},
	}

	profilesExportCmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a profile as JSON",
		Long:  `Print a profile's layout as JSON on stdout`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return exportProfile(args[0])
		},
	}

	profilesCmd.AddCommand(profilesListCmd, profilesShowCmd, profilesDeleteCmd, profilesExportCmd)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the saved workspace",
		Long: `Validate the saved workspace file

Reports duplicate card IDs, out-of-bounds placements, size violations,
and overlaps between unlocked cards. Exits non-zero when issues are found.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return checkWorkspace()
		},
	}

	rootCmd.AddCommand(configCmd, profilesCmd, checkCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
