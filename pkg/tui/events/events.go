// Package events defines the messages exchanged between trainer TUI
// components. Every message can describe itself for the event viewer.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/trainer/pkg/nav"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// Describer is implemented by every message in this package.
type Describer interface {
	Describe() string
}

// NavigateRequestMsg asks the root model to open a page.
type NavigateRequestMsg struct {
	Component ComponentID
	Request   nav.Request
}

// Describe renders the request in a human-friendly format for logs.
func (m NavigateRequestMsg) Describe() string {
	return fmt.Sprintf(`target:%q direction:%q mode:%q`, m.Request.Target, m.Request.Direction, m.Request.Mode)
}

// NavigateCmd wraps a navigation request in a command.
func NavigateCmd(component ComponentID, req nav.Request) tea.Cmd {
	return func() tea.Msg {
		return NavigateRequestMsg{Component: component, Request: req}
	}
}

// BackRequestMsg asks the root model to pop the history.
type BackRequestMsg struct {
	Component ComponentID
}

// Describe renders the request in a human-friendly format for logs.
func (m BackRequestMsg) Describe() string {
	return fmt.Sprintf(`from:%q`, m.Component)
}

// TabRequestMsg asks the root model to switch to a top-level tab.
type TabRequestMsg struct {
	Component ComponentID
	Tab       string
}

// Describe renders the request in a human-friendly format for logs.
func (m TabRequestMsg) Describe() string {
	return fmt.Sprintf(`tab:%q`, m.Tab)
}

// TabCmd wraps a tab switch in a command.
func TabCmd(component ComponentID, tab string) tea.Cmd {
	return func() tea.Msg {
		return TabRequestMsg{Component: component, Tab: tab}
	}
}

// ThemeToggleMsg asks for the light/dark theme to flip.
type ThemeToggleMsg struct {
	Component ComponentID
}

// Describe renders the request in a human-friendly format for logs.
func (m ThemeToggleMsg) Describe() string {
	return fmt.Sprintf(`from:%q`, m.Component)
}

// TransitionMsg reports a navigation the engine completed.
type TransitionMsg struct {
	Transition nav.Transition
}

// Describe renders the transition in a human-friendly format for logs.
func (m TransitionMsg) Describe() string {
	t := m.Transition
	return fmt.Sprintf(`kind:%q from:%q to:%q direction:%q mode:%q`, t.Kind, t.From, t.To, t.Direction, t.Mode)
}

// SwipeMsg reports a drag that was classified by the gesture router.
type SwipeMsg struct {
	DX, DY float64
	Intent string
	Taken  bool
}

// Describe renders the swipe in a human-friendly format for logs.
func (m SwipeMsg) Describe() string {
	return fmt.Sprintf(`dx:%.0f dy:%.0f intent:%q taken:%t`, m.DX, m.DY, m.Intent, m.Taken)
}

// ThemeChangedMsg announces that the theme changed, locally or on disk.
type ThemeChangedMsg struct {
	Dark     bool
	External bool
}

// Describe renders the change in a human-friendly format for logs.
func (m ThemeChangedMsg) Describe() string {
	mode := "light"
	if m.Dark {
		mode = "dark"
	}
	origin := "local"
	if m.External {
		origin = "watch"
	}
	return fmt.Sprintf(`mode:%q origin:%q`, mode, origin)
}
