package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/gridboard/internal/app"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/input"
	"github.com/dodorz/gridboard/internal/store"
	"github.com/dodorz/gridboard/internal/theme"
)

// filterMouseMotion drops mouse motion events outside an active drag or
// resize gesture. Motion floods the update loop under MouseModeAllMotion
// and only matters while a card follows the pointer.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
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

func runLocal() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:    asciiOnly,
		BorderStyle:  borderStyle,
		DockPosition: dockPosition,
		HideDock:     hideDock,
		ThemeName:    themeName,
		Columns:      columns,
	}, userConfig)

	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		log.Printf("Warning: Failed to initialize theme: %v", err)
	}

	app.SetInputHandler(input.HandleInput)

	savePath, err := store.DefaultPath()
	if err != nil {
		return fmt.Errorf("could not resolve workspace path: %w", err)
	}

	dashboard := app.NewDashboard(app.Options{
		Config:   userConfig,
		SavePath: savePath,
	})

	p := tea.NewProgram(
		dashboard,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
