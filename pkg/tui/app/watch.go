package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/trainer/pkg/store"
	"tableflip.dev/trainer/pkg/tui/events"
)

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, prefs store.Preferences) tea.Cmd {
	if prefs == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := prefs.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent applies a preference written by another process, such as
// `trainer theme set`, without writing it back.
func (m *Model) handleWatchEvent(ev store.Event) tea.Cmd {
	if ev.Key != store.DarkModeKey || m.prefs == nil {
		return nil
	}
	dark, ok, err := m.prefs.LoadDark()
	if err != nil {
		m.logger.Warn("tui: reload theme", "error", err)
		return nil
	}
	if !ok || !m.theme.Sync(dark) {
		return nil
	}
	return requestCmd(events.ThemeChangedMsg{Dark: dark, External: true})
}
