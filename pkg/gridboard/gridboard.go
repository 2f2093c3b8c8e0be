// Package gridboard provides a reusable grid dashboard that can be
// embedded in other Bubble Tea applications or used as a standalone TUI.
//
// GRIDBOARD arranges cards on a fixed-column grid with mouse drag and
// resize, undo history, and aspect-ratio-aware layout profiles.
//
// # Basic Usage
//
// Create a new dashboard with default options:
//
//	model := gridboard.New()
//	p := tea.NewProgram(model, gridboard.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize behavior:
//
//	model := gridboard.New(
//		gridboard.WithTheme("dracula"),
//		gridboard.WithColumns(32),
//		gridboard.WithSavePath("/tmp/board.json"),
//	)
package gridboard

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/gridboard/internal/app"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/input"
	"github.com/dodorz/gridboard/internal/store"
	"github.com/dodorz/gridboard/internal/theme"
)

// Model is the main dashboard model that implements tea.Model.
// It wraps the internal Dashboard struct and provides a clean public API.
type Model = app.Dashboard

// Mode represents the current interaction mode of the dashboard.
type Mode = app.Mode

// Mode constants
const (
	// BoardMode is normal card manipulation and navigation.
	BoardMode = app.BoardMode
	// HelpMode shows the keybinding overlay.
	HelpMode = app.HelpMode
)

// Options configures a dashboard instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters for card borders and glyphs.
	ASCIIOnly bool

	// BorderStyle sets the card border style.
	// Valid values: "rounded", "normal", "thick", "double", "ascii"
	BorderStyle string

	// DockPosition sets where the status dock appears.
	// Valid values: "bottom", "top", "hidden"
	DockPosition string

	// Columns is the grid column count (4-48). Default is 24.
	Columns int

	// SavePath is where the workspace persists. Empty disables
	// persistence; use DefaultSavePath for the standard location.
	SavePath string

	// UserConfig is a custom user configuration. If nil, the user's
	// config file is loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring the dashboard.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only borders and glyphs.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the card border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithDockPosition sets the status dock position.
func WithDockPosition(position string) Option {
	return func(o *Options) {
		o.DockPosition = position
	}
}

// WithColumns sets the grid column count (4-48).
func WithColumns(n int) Option {
	return func(o *Options) {
		if n < config.MinColumns {
			n = config.MinColumns
		} else if n > config.MaxColumns {
			n = config.MaxColumns
		}
		o.Columns = n
	}
}

// WithSavePath sets the workspace persistence location.
func WithSavePath(path string) Option {
	return func(o *Options) {
		o.SavePath = path
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultSavePath returns the standard workspace file location under
// the XDG data directory.
func DefaultSavePath() (string, error) {
	return store.DefaultPath()
}

// New creates a new dashboard model with the given options.
// This is the main entry point for using GRIDBOARD as a library.
func New(opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

// newModel creates the internal model with applied options.
func newModel(options Options) *Model {
	app.SetInputHandler(input.HandleInput)

	var userConfig *config.UserConfig
	if options.UserConfig != nil {
		userConfig = options.UserConfig
	} else {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:    options.ASCIIOnly,
		BorderStyle:  options.BorderStyle,
		DockPosition: options.DockPosition,
		ThemeName:    options.Theme,
		Columns:      options.Columns,
	}, userConfig)

	if userConfig.Appearance.Theme != "" {
		_ = theme.Initialize(userConfig.Appearance.Theme)
	}

	return app.NewDashboard(app.Options{
		Config:   userConfig,
		SavePath: options.SavePath,
	})
}

// ProgramOptions returns recommended tea.ProgramOption values for
// running the dashboard:
//
//	model := gridboard.New()
//	p := tea.NewProgram(model, gridboard.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that reduces CPU usage
// by dropping mouse motion events outside an active drag or resize
// gesture.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*app.Dashboard)
	if !ok {
		return msg
	}
	if d.Session.Active() {
		return msg
	}
	return nil
}
