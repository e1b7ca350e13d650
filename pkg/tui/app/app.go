// Package teaui hosts the Bubble Tea program for the trainer page viewer.
package teaui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"tableflip.dev/trainer/pkg/catalog"
	"tableflip.dev/trainer/pkg/gesture"
	"tableflip.dev/trainer/pkg/nav"
	"tableflip.dev/trainer/pkg/store"
	"tableflip.dev/trainer/pkg/theme"
	"tableflip.dev/trainer/pkg/tui/components/eventviewer"
	"tableflip.dev/trainer/pkg/tui/events"
	"tableflip.dev/trainer/pkg/view"
)

const componentID events.ComponentID = "app"

// Options wires the model to its collaborators.
type Options struct {
	Catalog     *catalog.Catalog
	Theme       *theme.Controller
	Preferences store.Preferences
	Gesture     store.GestureConfig
	Logger      *slog.Logger
	// Motion enables the slide between pages.
	Motion bool
	// Open is shown instead of the home tab on start.
	Open string
}

// Model contains UI state
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	catalog *catalog.Catalog
	theme   *theme.Controller
	nav     *nav.Navigator
	swipe   *gesture.Router
	prefs   store.Preferences
	logger  *slog.Logger
	zones   *zone.Manager

	keys   keyMap
	help   help.Model
	styles theme.Styles
	body   viewport.Model
	events *eventviewer.Model

	showEvents bool
	showHelp   bool
	selected   int
	linkLine   int
	status     string
	pending    []nav.Transition
	markdown   map[string]string

	cellW, cellH float64
	press        *tea.MouseMsg

	motion   bool
	slide    *slide
	slideSeq int

	termWidth  int
	termHeight int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds the root model. The navigator is created here so the model can
// observe every transition, including those fired from page controls.
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	th := opts.Theme
	if th == nil {
		th = theme.NewController(opts.Preferences, nil, theme.WithLogger(logger))
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		ctx:      ctx,
		cancel:   cancel,
		catalog:  opts.Catalog,
		theme:    th,
		prefs:    opts.Preferences,
		logger:   logger,
		zones:    zone.New(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   theme.For(th.IsDark()),
		body:     viewport.New(1, 1),
		events:   eventviewer.NewModel(200),
		markdown: make(map[string]string),
		motion:   opts.Motion,
		cellW:    opts.Gesture.CellWidth,
		cellH:    opts.Gesture.CellHeight,
	}
	if m.cellW <= 0 {
		m.cellW = 8
	}
	if m.cellH <= 0 {
		m.cellH = 16
	}
	m.events.WithStyles(eventviewer.StylesFor(th.IsDark()))
	m.nav = nav.New(opts.Catalog, th,
		nav.WithLogger(logger),
		nav.WithObserver(func(tr nav.Transition) { m.pending = append(m.pending, tr) }),
	)
	m.swipe = gesture.NewRouter(opts.Catalog, m.nav, gesture.Thresholds{
		Horizontal: opts.Gesture.Horizontal,
		Vertical:   opts.Gesture.Vertical,
	})
	if opts.Open != "" {
		m.open(opts.Open)
	}
	m.pending = nil
	m.syncPage()
	return m
}

// Run launches the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.shutdown()
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Navigator exposes the transition engine.
func (m *Model) Navigator() *nav.Navigator { return m.nav }

// open jumps straight to id, pushing its section first so back leads home
// through the section.
func (m *Model) open(id string) {
	if !m.catalog.Has(id) {
		m.status = m.unknownStatus(id)
		return
	}
	if m.catalog.IsTab(id) {
		m.nav.SwitchTab(id)
		return
	}
	if parent, ok := m.catalog.ParentOf(id); ok && m.catalog.IsDetail(id) {
		m.nav.NavigateTo(nav.Request{Target: parent, Direction: nav.Forward, Mode: nav.Push})
	}
	m.nav.NavigateTo(nav.Request{Target: id, Direction: nav.Forward, Mode: nav.Push})
}

func (m *Model) unknownStatus(id string) string {
	if s, ok := m.catalog.Suggest(id); ok {
		return fmt.Sprintf("unknown page %q (did you mean %q?)", id, s)
	}
	return fmt.Sprintf("unknown page %q", id)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.prefs)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(events.Describer); ok {
		m.events.Update(msg)
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.shutdown()
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case events.NavigateRequestMsg:
		req := msg.Request
		cmds = append(cmds, m.perform(func() {
			if _, ok := m.nav.NavigateTo(req); !ok {
				m.status = m.unknownStatus(req.Target)
			}
		}))

	case events.BackRequestMsg:
		cmds = append(cmds, m.perform(func() {
			if c := m.activeChrome(); c != nil && c.ShowBack && c.OnBack != nil {
				c.OnBack()
			}
		}))

	case events.TabRequestMsg:
		tab := msg.Tab
		cmds = append(cmds, m.perform(func() { m.nav.SwitchTab(tab) }))

	case events.ThemeToggleMsg:
		cmds = append(cmds, m.toggleTheme())

	case events.ThemeChangedMsg:
		m.restyle()

	case events.TransitionMsg:
		m.logger.Debug("tui: transition", "to", msg.Transition.To, "kind", msg.Transition.Kind.String())

	case slideFrameMsg:
		cmds = append(cmds, m.advanceSlide(msg))

	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Warn("tui: watch preferences", "error", msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())

	case watchEventMsg:
		cmds = append(cmds, m.handleWatchEvent(msg.event))
		cmds = append(cmds, m.waitForWatch())

	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.prefs))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""
	if m.showHelp {
		// The modal holds focus until dismissed.
		if key.Matches(msg, m.keys.Back, m.keys.Help) {
			m.showHelp = false
		}
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Events):
		m.showEvents = !m.showEvents
		m.applySizes()
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.PageUp):
		m.body.PageUp()
		m.saveScroll()
	case key.Matches(msg, m.keys.PageDown):
		m.body.PageDown()
		m.saveScroll()
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Back):
		return requestCmd(events.BackRequestMsg{Component: componentID})
	case key.Matches(msg, m.keys.Prev):
		return m.sibling(false)
	case key.Matches(msg, m.keys.Next):
		return m.sibling(true)
	case key.Matches(msg, m.keys.NextTab):
		return m.cycleTab()
	case key.Matches(msg, m.keys.Tab):
		idx := int(msg.String()[0] - '1')
		if tabs := m.catalog.Tabs(); idx >= 0 && idx < len(tabs) {
			return events.TabCmd(componentID, tabs[idx])
		}
	case key.Matches(msg, m.keys.Theme):
		return requestCmd(events.ThemeToggleMsg{Component: componentID})
	}
	return nil
}

func requestCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *Model) openSelected() tea.Cmd {
	links := m.catalog.Links(m.nav.Active())
	if m.selected < 0 || m.selected >= len(links) {
		return nil
	}
	l := links[m.selected]
	return events.NavigateCmd(componentID, nav.Request{Target: l.Target, Title: l.Title, Direction: nav.Forward, Mode: nav.Push})
}

// sibling fires the detail bar's prev or next control.
func (m *Model) sibling(next bool) tea.Cmd {
	p := m.nav.Document().Page(m.nav.Active())
	if p == nil {
		return nil
	}
	bar := p.DetailNav()
	if bar == nil {
		return nil
	}
	if next {
		if bar.NextHidden {
			return nil
		}
		return m.perform(bar.OnNext)
	}
	if bar.PrevHidden {
		return nil
	}
	return m.perform(bar.OnPrev)
}

func (m *Model) cycleTab() tea.Cmd {
	tabs := m.catalog.Tabs()
	if len(tabs) == 0 {
		return nil
	}
	root := m.nav.History()[0]
	next := tabs[0]
	for i, id := range tabs {
		if id == root {
			next = tabs[(i+1)%len(tabs)]
			break
		}
	}
	return events.TabCmd(componentID, next)
}

func (m *Model) toggleTheme() tea.Cmd {
	before := m.theme.IsDark()
	if c := m.activeChrome(); c != nil && c.OnTheme != nil {
		c.OnTheme()
	} else if err := m.theme.Toggle(); err != nil {
		m.logger.Warn("tui: toggle theme", "error", err)
	}
	dark := m.theme.IsDark()
	if dark == before {
		return nil
	}
	m.restyle()
	return requestCmd(events.ThemeChangedMsg{Dark: dark})
}

func (m *Model) activeChrome() *view.Chrome {
	p := m.nav.Document().Page(m.nav.Active())
	if p == nil {
		return nil
	}
	return p.Chrome()
}

// perform runs fn against the engine and turns the transitions it produced
// into messages, starting a slide from the frame shown before fn ran.
func (m *Model) perform(fn func()) tea.Cmd {
	before := m.renderPage()
	fn()
	if len(m.pending) == 0 {
		return nil
	}
	pending := m.pending
	m.pending = nil

	cmds := make([]tea.Cmd, 0, len(pending)+1)
	for _, tr := range pending {
		cmds = append(cmds, requestCmd(events.TransitionMsg{Transition: tr}))
	}
	last := pending[len(pending)-1]
	if last.From != last.To {
		m.selected = 0
	}
	m.syncPage()
	cmds = append(cmds, m.startSlide(before, last))
	return tea.Batch(cmds...)
}

func (m *Model) restyle() {
	dark := m.theme.IsDark()
	m.styles = theme.For(dark)
	m.events.WithStyles(eventviewer.StylesFor(dark))
	m.syncBody()
}

func (m *Model) shutdown() {
	m.stopWatch()
	if m.ctx.Err() != nil {
		return
	}
	m.cancel()
	m.zones.Close()
}
