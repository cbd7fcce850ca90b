package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/cohortline/drag"
	"github.com/andareed/cohortline/logging"
)

// handleMouse turns pointer events on the track into adds and drags.
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	g := m.ui.track
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
				m.viewport, _ = m.viewport.Update(msg)
			}
			return nil
		}
		if m.drag.Active() {
			return nil
		}
		if !g.contains(msg.X, msg.Y) {
			return nil
		}
		if mk, ok := m.handleAt(msg.X); ok {
			m.ui.selectedID = mk.ID
			if m.drag.Begin(mk.ID, mk.Year, g.dragTrack()) {
				m.ui.mode = modeDrag
				m.refreshView("drag-begin")
			}
			return nil
		}
		year := drag.YearAt(m.app.store.Bounds(), m.percentAtCell(msg.X))
		logging.Debugf("mouse: click on empty track at x=%d year=%d", msg.X, year)
		return m.addMarker(year)

	case tea.MouseActionMotion:
		if !m.drag.Active() {
			return nil
		}
		if _, ok := m.drag.Move(float64(msg.X)); ok {
			m.refreshView("drag-move")
		}
		return nil

	case tea.MouseActionRelease:
		if !m.drag.Active() || m.ui.mode != modeDrag {
			return nil
		}
		return m.finishDrag()
	}
	return nil
}

// handleAt finds the marker whose handle is drawn at cell x. Handles are one
// cell wide; a neighbouring cell also counts so small terminals stay usable.
func (m *model) handleAt(x int) (mk markerHit, ok bool) {
	best := -1
	for _, c := range m.app.store.List() {
		d := abs(m.cellFor(c.Year) - x)
		if d > 1 {
			continue
		}
		if best < 0 || d < best {
			best = d
			mk = markerHit{ID: c.ID, Year: c.Year}
			ok = true
		}
	}
	return mk, ok
}

type markerHit struct {
	ID   string
	Year int
}

func (m *model) cellFor(year int) int {
	g := m.ui.track
	pct := drag.PercentOf(m.app.store.Bounds(), year)
	return g.left + int(pct/100*float64(max(1, g.width-1))+0.5)
}

func (m *model) percentAtCell(x int) float64 {
	t := m.ui.track.dragTrack()
	return (float64(x) - t.Left) / t.Width * 100
}

// --- Keyboard moves ---

func (m *model) grabSelected() tea.Cmd {
	mk, ok := m.selectedMarker()
	if !ok {
		return m.startNotice("No marker selected", noticeInfo, noticeDuration)
	}
	if !m.drag.Begin(mk.ID, mk.Year, m.ui.track.dragTrack()) {
		return nil
	}
	m.ui.mode = modeGrab
	m.refreshView("grab")
	return nil
}

func (m *model) handleGrabKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, Keys.Cancel):
		m.cancelDrag()
	case key.Matches(msg, Keys.Drop):
		return m.finishDrag()
	case key.Matches(msg, Keys.NudgeLeft):
		m.nudge(-1)
	case key.Matches(msg, Keys.NudgeRight):
		m.nudge(1)
	case key.Matches(msg, Keys.JumpLeft):
		m.nudge(-5)
	case key.Matches(msg, Keys.JumpRight):
		m.nudge(5)
	}
	return nil
}

func (m *model) nudge(delta int) {
	if _, ok := m.drag.Nudge(delta); ok {
		m.refreshView("nudge")
	}
}

func (m *model) finishDrag() tea.Cmd {
	m.ui.mode = modeView
	out := m.drag.End()
	m.refreshView("drag-end")
	switch out.Kind {
	case drag.Committed:
		return m.startNotice(fmt.Sprintf("Moved to %d", out.Marker.Year), noticeSuccess, noticeDuration)
	case drag.Aborted:
		return m.startNotice("Marker was removed while moving", noticeWarn, noticeDuration)
	}
	return nil
}

func (m *model) cancelDrag() {
	m.drag.Cancel()
	m.ui.mode = modeView
	m.refreshView("drag-cancel")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
