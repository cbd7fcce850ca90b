package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/cohortline/dialogs"
	"github.com/andareed/cohortline/drag"
	"github.com/andareed/cohortline/logging"
	"github.com/andareed/cohortline/markers"
	"github.com/andareed/cohortline/stats"
)

type probeDoneMsg struct {
	report stats.Report
}

type model struct {
	app  *app
	drag *drag.Controller

	ui   uiState
	data dataState

	viewport       viewport.Model
	ready          bool
	terminalWidth  int
	terminalHeight int

	activeDialog dialogs.Dialog
	unsubscribe  func()
}

func newModel(a *app, rawQuery string) *model {
	m := &model{
		app:  a,
		drag: drag.NewController(a.store, a.store.Bounds()),
	}
	m.data.pending = a.restore(rawQuery)
	m.unsubscribe = a.store.Subscribe(m.onStoreChange)
	if list := a.store.List(); len(list) > 0 {
		m.ui.selectedID = list[0].ID
	}
	m.syncQuery()
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("cohortline: initialised with %d markers", m.app.store.Len())
	return m.probeCmd(false)
}

func (m *model) probeCmd(again bool) tea.Cmd {
	m.data.loading = true
	mgr := m.app.manager
	timeout := m.app.settings.DataTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if again {
			return probeDoneMsg{report: mgr.Reprobe(ctx)}
		}
		return probeDoneMsg{report: mgr.Probe(ctx)}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.layout()
		m.ready = true
		m.refreshView("resize")
		return m, nil

	case probeDoneMsg:
		return m, m.handleProbeDone(msg.report)

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case tea.MouseMsg:
		if m.activeDialog != nil {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.activeDialog != nil {
			return m.updateDialog(msg)
		}
		return m.updateKey(msg)
	}

	if m.activeDialog != nil {
		return m.updateDialog(msg)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeGrab:
		return m, m.handleGrabKey(msg)
	case modeDrag:
		if key.Matches(msg, Keys.Cancel) {
			m.cancelDrag()
		}
		return m, nil
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		return m, tea.Quit
	case key.Matches(msg, Keys.AddMarker):
		return m, m.openDialog(dialogs.NewAddDialog(m.app.store.Bounds().Min, m.app.store.Bounds().Max))
	case key.Matches(msg, Keys.NextMarker):
		m.selectRelative(1)
	case key.Matches(msg, Keys.PrevMarker):
		m.selectRelative(-1)
	case key.Matches(msg, Keys.RemoveMarker):
		return m, m.removeSelected()
	case key.Matches(msg, Keys.Grab):
		return m, m.grabSelected()
	case key.Matches(msg, Keys.Settings):
		return m, m.openSettings()
	case key.Matches(msg, Keys.Share):
		return m, m.openDialog(dialogs.NewShareDialog(m.app.shareURL(), m.ui.query))
	case key.Matches(msg, Keys.ShowData):
		return m, m.openDialog(dialogs.NewDataDialog(m.dataPages()))
	case key.Matches(msg, Keys.ToggleChart):
		m.ui.showChart = !m.ui.showChart
		m.layout()
		m.refreshView("chart")
	case key.Matches(msg, Keys.NextChart):
		m.ui.chartIdx++
		m.refreshView("chart")
	case key.Matches(msg, Keys.Reprobe):
		if m.data.loading {
			return m, nil
		}
		return m, tea.Batch(m.probeCmd(true), m.startNotice("Reloading data…", noticeInfo, noticeDuration))
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
	case key.Matches(msg, Keys.ScrollUp), key.Matches(msg, Keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleProbeDone(r stats.Report) tea.Cmd {
	first := !m.data.probed
	m.data.probe = r
	m.data.probed = true
	m.data.loading = false

	m.app.applyAvailability(r, m.data.pending.Stats, first)
	m.data.pending.Stats = nil
	m.syncQuery()
	m.refreshView("probe")

	if r.NoData() {
		return m.startNotice("No statistics could be loaded", noticeError, longNoticeDuration)
	}
	if failed := len(r.Results) - len(r.Available); failed > 0 {
		return m.startNotice(fmt.Sprintf("Loaded %d of %d statistics", len(r.Available), len(r.Results)), noticeWarn, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Loaded %d statistics", len(r.Available)), noticeSuccess, noticeDuration)
}

// onStoreChange runs after every store mutation.
func (m *model) onStoreChange(c markers.Change) {
	logging.Debugf("store change %s %s", c.Kind, c.Marker.ID)
	switch c.Kind {
	case markers.Removed:
		m.drag.Forget(c.Marker.ID)
		if !m.drag.Active() && (m.ui.mode == modeDrag || m.ui.mode == modeGrab) {
			m.ui.mode = modeView
		}
		if m.ui.selectedID == c.Marker.ID {
			m.ui.selectedID = ""
		}
	case markers.Added:
		m.ui.selectedID = c.Marker.ID
	}
	if m.ui.selectedID == "" {
		if list := m.app.store.List(); len(list) > 0 {
			m.ui.selectedID = list[0].ID
		}
	}
	m.syncQuery()
	m.refreshView("store-" + c.Kind.String())
}

// syncQuery re-derives the shareable query from the store and selection.
func (m *model) syncQuery() {
	m.ui.query = m.app.query()
}

// --- Markers ---

func (m *model) addMarker(year int) tea.Cmd {
	mk, err := m.app.store.Add(year)
	switch {
	case errors.Is(err, markers.ErrDuplicateYear):
		return m.startNotice(fmt.Sprintf("Marker for %d already exists", year), noticeWarn, noticeDuration)
	case errors.Is(err, markers.ErrOutOfRange):
		b := m.app.store.Bounds()
		return m.startNotice(fmt.Sprintf("Year must be between %d and %d", b.Min, b.Max), noticeWarn, noticeDuration)
	case err != nil:
		return m.startNotice(err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Added %d", mk.Year), noticeSuccess, noticeDuration)
}

func (m *model) selectRelative(step int) {
	list := m.app.store.List()
	if len(list) == 0 {
		return
	}
	idx := m.app.store.IndexOf(m.ui.selectedID)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + step + len(list)) % len(list)
	}
	m.ui.selectedID = list[idx].ID
	m.refreshView("select")
}

func (m *model) removeSelected() tea.Cmd {
	mk, ok := m.app.store.Get(m.ui.selectedID)
	if !ok {
		return m.startNotice("No marker selected", noticeInfo, noticeDuration)
	}
	m.app.store.Remove(mk.ID)
	return m.startNotice(fmt.Sprintf("Removed %d", mk.Year), noticeSuccess, noticeDuration)
}

func (m *model) selectedMarker() (markers.Marker, bool) {
	return m.app.store.Get(m.ui.selectedID)
}
