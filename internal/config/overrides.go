package config

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user
// config default.
type Overrides struct {
	// ASCIIOnly draws card chrome with plain ASCII characters
	ASCIIOnly bool

	// BorderStyle overrides the card border style
	BorderStyle string

	// DockPosition overrides the status dock position
	DockPosition string

	// HideDock hides the status dock entirely
	HideDock bool

	// ThemeName is the color theme to load
	ThemeName string

	// Columns overrides the grid column count (0 means use config)
	Columns int
}

// ApplyOverrides applies CLI flag overrides to global config, falling
// back to user config defaults. Call after LoadUserConfig so flags win.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	if overrides.ASCIIOnly {
		AsciiOnly = true
		if userConfig != nil {
			userConfig.Appearance.AsciiOnly = true
		}
	}

	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
		if userConfig != nil {
			userConfig.Appearance.BorderStyle = overrides.BorderStyle
		}
	}

	if overrides.DockPosition != "" {
		if userConfig != nil {
			userConfig.Appearance.DockPosition = overrides.DockPosition
		}
		HideDock = overrides.DockPosition == "hidden"
	}

	if overrides.HideDock {
		HideDock = true
	}

	if overrides.ThemeName != "" && userConfig != nil {
		userConfig.Appearance.Theme = overrides.ThemeName
	}

	if overrides.Columns > 0 && userConfig != nil {
		cols := overrides.Columns
		if cols < MinColumns {
			cols = MinColumns
		}
		if cols > MaxColumns {
			cols = MaxColumns
		}
		userConfig.Grid.Columns = cols
	}
}
