package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/ui"
)

// TickerMsg represents a periodic tick event for updating the UI.
// This is exported so it can be used by the input package.
type TickerMsg time.Time

// TelemetryMsg delivers freshly collected system stats.
type TelemetryMsg ui.Telemetry

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package
// without creating a circular dependency.
type InputHandler func(msg tea.Msg, d *Dashboard) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
var inputHandler InputHandler

// SetInputHandler registers the input handler. Called once at startup.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// TickCmd drives clocks, notification expiry and telemetry refresh.
func TickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// CollectTelemetryCmd gathers system stats off the update loop so the
// render path never blocks on procfs reads.
func CollectTelemetryCmd() tea.Cmd {
	return func() tea.Msg {
		var tel ui.Telemetry
		if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
			tel.CPUPercent = percents[0]
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			tel.RAMPercent = vm.UsedPercent
		}
		if up, err := host.Uptime(); err == nil {
			tel.Uptime = time.Duration(up) * time.Second
		}
		return TelemetryMsg(tel)
	}
}

// Init initializes the dashboard and starts the tick loop.
func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(TickCmd(), CollectTelemetryCmd())
}

// Update routes messages: lifecycle and timing are handled here, all
// key/mouse input is delegated to the input package.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		d.AutoSelectProfile()
		return d, nil

	case TickerMsg:
		now := time.Time(msg)
		d.ExpireNotifications(now)
		cmds := []tea.Cmd{TickCmd()}
		if now.Sub(d.lastTelemetry) >= 2*time.Second {
			d.lastTelemetry = now
			cmds = append(cmds, CollectTelemetryCmd())
		}
		return d, tea.Batch(cmds...)

	case TelemetryMsg:
		d.Telemetry = ui.Telemetry(msg)
		return d, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler != nil {
			return inputHandler(msg, d)
		}
		return d, nil
	}
	return d, nil
}
