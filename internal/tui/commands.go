package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/idswatch/internal/alert"
	"github.com/rusenback/idswatch/internal/api"
)

// waitForTick waits for the next tick of the poll timer. A stopped timer closes
// its channel, which ends the wait without a message.
func waitForTick(ticks <-chan time.Time, gen int) tea.Cmd {
	if ticks == nil {
		return nil
	}
	return func() tea.Msg {
		at, ok := <-ticks
		if !ok {
			return nil
		}
		return tickMsg{gen: gen, at: at}
	}
}

// fetchInterfaces creates a command to load the interface catalog
func fetchInterfaces(ctx context.Context, client api.Backend) tea.Cmd {
	return func() tea.Msg {
		names, err := client.GetInterfaces(ctx)
		return interfacesMsg{names: names, err: err}
	}
}

// startCapture creates a command to start capturing on iface
func startCapture(ctx context.Context, client api.Backend, iface string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.StartCapture(ctx, iface)
		return startMsg{iface: iface, result: res, err: err}
	}
}

// stopCapture creates a command to stop the capture
func stopCapture(ctx context.Context, client api.Backend) tea.Cmd {
	return func() tea.Msg {
		res, err := client.StopCapture(ctx)
		return stopMsg{result: res, err: err}
	}
}

// clearStats creates a command to reset the backend statistics
func clearStats(ctx context.Context, client api.Backend) tea.Cmd {
	return func() tea.Msg {
		res, err := client.ClearStats(ctx)
		return clearMsg{result: res, err: err}
	}
}

func fetchPackets(ctx context.Context, client api.Backend) tea.Cmd {
	return func() tea.Msg {
		snap, err := client.GetPackets(ctx)
		return packetsMsg{snapshot: snap, err: err}
	}
}

func fetchSystemStats(ctx context.Context, client api.Backend) tea.Cmd {
	return func() tea.Msg {
		snap, err := client.GetSystemStats(ctx)
		return systemMsg{snapshot: snap, err: err}
	}
}

// sendAlert creates a command to dispatch a test alert
func sendAlert(ctx context.Context, client api.Backend) tea.Cmd {
	return func() tea.Msg {
		return alertMsg{notice: alert.Send(ctx, client)}
	}
}

// fetchAttackHistory creates a command to load the full attack log
func fetchAttackHistory(ctx context.Context, client api.Backend) tea.Cmd {
	return func() tea.Msg {
		attacks, err := client.GetAttackLog(ctx)
		return historyMsg{attacks: attacks, err: err}
	}
}
