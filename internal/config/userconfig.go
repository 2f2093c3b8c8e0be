package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Grid        GridConfig        `toml:"grid"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// GridConfig holds grid geometry settings
type GridConfig struct {
	Columns     int    `toml:"columns"`      // Number of grid columns (default: 24, range: 4-48)
	RowHeight   int    `toml:"row_height"`   // Pixel height of one grid row (default: 40, min: 24)
	Gap         int    `toml:"gap"`          // Pixel gap between cards (default: 8, min: 4)
	CompactMode string `toml:"compact_mode"` // Compaction after drops: none, vertical (default: vertical)
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme        string `toml:"theme"`         // Color theme name (e.g., dracula, nord)
	BorderStyle  string `toml:"border_style"`  // Card border style: rounded, normal, thick, double, ascii
	DockPosition string `toml:"dock_position"` // Status dock position: bottom, top, hidden
	HideClock    bool   `toml:"hide_clock"`    // Hide the dock clock (default: false)
	AsciiOnly    bool   `toml:"ascii_only"`    // Disable unicode glyphs in card chrome
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Navigation map[string][]string `toml:"navigation"`
	Cards      map[string][]string `toml:"cards"`
	History    map[string][]string `toml:"history"`
	Profiles   map[string][]string `toml:"profiles"`
	System     map[string][]string `toml:"system"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Grid: GridConfig{
			Columns:     DefaultColumns,
			RowHeight:   DefaultRowHeight,
			Gap:         DefaultGap,
			CompactMode: "vertical",
		},
		Appearance: AppearanceConfig{
			Theme:        "",
			BorderStyle:  "rounded",
			DockPosition: "bottom",
		},
		Keybindings: KeybindingsConfig{
			Navigation: map[string][]string{
				"focus_next":    {"tab"},
				"focus_prev":    {"shift+tab"},
				"move_up":       {"up", "k"},
				"move_down":     {"down", "j"},
				"move_left":     {"left", "h"},
				"move_right":    {"right", "l"},
				"grow_width":    {">", "shift+."},
				"shrink_width":  {"<", "shift+,"},
				"grow_height":   {"}", "shift+]"},
				"shrink_height": {"{", "shift+["},
			},
			Cards: map[string][]string{
				"add_card":    {"n"},
				"remove_card": {"x"},
				"hide_card":   {"m"},
				"show_hidden": {"M"},
				"reset_card":  {"0"},
				"rename_card": {"r"},
				"lock_card":   {"L"},
				"lock_all":    {"ctrl+l"},
				"aspect_lock": {"a"},
			},
			History: map[string][]string{
				"undo": {"u", "ctrl+z"},
				"redo": {"ctrl+r", "ctrl+y"},
			},
			Profiles: map[string][]string{
				"save_profile":   {"s"},
				"next_profile":   {"p"},
				"profile_picker": {"P"},
			},
			System: map[string][]string{
				"toggle_compact": {"c"},
				"normalize_gaps": {"g"},
				"recover":        {"ctrl+s"},
				"toggle_help":    {"?"},
				"show_logs":      {"D"},
				"quit":           {"q", "ctrl+c"},
			},
		},
	}
}

// LoadUserConfig loads the user configuration from the XDG config
// directory, creating a commented default file on first run.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile("gridboard/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseUserConfig(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseUserConfig parses raw TOML, fills missing settings with defaults
// and clamps out-of-range values.
func ParseUserConfig(data []byte) (*UserConfig, error) {
	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingGrid(&cfg, defaultCfg)
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	if errs := validateConfig(&cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "Config error: %s\n", e)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(errs))
	}
	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile("gridboard/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	// Build config file with header comments and marshaled data
	var sb strings.Builder
	sb.WriteString("# GRIDBOARD Configuration File\n")
	sb.WriteString("# This file allows you to customize the grid, appearance and keybindings\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# GRID SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# columns: Number of grid columns cards snap to\n")
	sb.WriteString("#   Range: 4 to 48\n")
	sb.WriteString("#   Default: 24\n")
	sb.WriteString("#\n")
	sb.WriteString("# row_height: Pixel height of one grid row\n")
	sb.WriteString("#   Minimum: 24\n")
	sb.WriteString("#   Default: 40\n")
	sb.WriteString("#\n")
	sb.WriteString("# compact_mode: Pull cards upward after every drop\n")
	sb.WriteString("#   Options: none, vertical\n")
	sb.WriteString("#   Default: vertical\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this.\n")
	sb.WriteString("#   Default: (empty - no theme)\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissingGrid fills in any missing grid settings with defaults and
// clamps values into their supported ranges.
func fillMissingGrid(cfg, defaultCfg *UserConfig) {
	if cfg.Grid.Columns <= 0 {
		cfg.Grid.Columns = defaultCfg.Grid.Columns
	} else if cfg.Grid.Columns < MinColumns {
		cfg.Grid.Columns = MinColumns
	} else if cfg.Grid.Columns > MaxColumns {
		cfg.Grid.Columns = MaxColumns
	}

	if cfg.Grid.RowHeight <= 0 {
		cfg.Grid.RowHeight = defaultCfg.Grid.RowHeight
	} else if cfg.Grid.RowHeight < MinRowHeight {
		cfg.Grid.RowHeight = MinRowHeight
	}

	if cfg.Grid.Gap <= 0 {
		cfg.Grid.Gap = defaultCfg.Grid.Gap
	} else if cfg.Grid.Gap < MinGap {
		cfg.Grid.Gap = MinGap
	}

	if cfg.Grid.CompactMode == "" {
		cfg.Grid.CompactMode = defaultCfg.Grid.CompactMode
	}
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.DockPosition == "" {
		cfg.Appearance.DockPosition = defaultCfg.Appearance.DockPosition
	}

	if cfg.Appearance.DockPosition == "hidden" {
		HideDock = true
	}
	if cfg.Appearance.AsciiOnly {
		AsciiOnly = true
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.Navigation == nil {
		cfg.Keybindings.Navigation = make(map[string][]string)
	}
	if cfg.Keybindings.Cards == nil {
		cfg.Keybindings.Cards = make(map[string][]string)
	}
	if cfg.Keybindings.History == nil {
		cfg.Keybindings.History = make(map[string][]string)
	}
	if cfg.Keybindings.Profiles == nil {
		cfg.Keybindings.Profiles = make(map[string][]string)
	}
	if cfg.Keybindings.System == nil {
		cfg.Keybindings.System = make(map[string][]string)
	}

	fillMapDefaults(cfg.Keybindings.Navigation, defaultCfg.Keybindings.Navigation)
	fillMapDefaults(cfg.Keybindings.Cards, defaultCfg.Keybindings.Cards)
	fillMapDefaults(cfg.Keybindings.History, defaultCfg.Keybindings.History)
	fillMapDefaults(cfg.Keybindings.Profiles, defaultCfg.Keybindings.Profiles)
	fillMapDefaults(cfg.Keybindings.System, defaultCfg.Keybindings.System)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// validateConfig checks settings that cannot be silently clamped.
func validateConfig(cfg *UserConfig) []string {
	var errs []string

	switch cfg.Grid.CompactMode {
	case "none", "vertical":
	default:
		errs = append(errs, fmt.Sprintf("[grid] compact_mode: unknown mode %q (options: none, vertical)", cfg.Grid.CompactMode))
	}

	switch cfg.Appearance.BorderStyle {
	case "rounded", "normal", "thick", "double", "ascii":
	default:
		errs = append(errs, fmt.Sprintf("[appearance] border_style: unknown style %q (options: rounded, normal, thick, double, ascii)", cfg.Appearance.BorderStyle))
	}

	switch cfg.Appearance.DockPosition {
	case "bottom", "top", "hidden":
	default:
		errs = append(errs, fmt.Sprintf("[appearance] dock_position: unknown position %q (options: bottom, top, hidden)", cfg.Appearance.DockPosition))
	}

	return errs
}

// Binding reports the keys bound to an action across all sections.
func (c *UserConfig) Binding(action string) []string {
	for _, section := range []map[string][]string{
		c.Keybindings.Navigation,
		c.Keybindings.Cards,
		c.Keybindings.History,
		c.Keybindings.Profiles,
		c.Keybindings.System,
	} {
		if keys, ok := section[action]; ok {
			return keys
		}
	}
	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("gridboard/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("gridboard/config.toml")
	}
	return path, nil
}
