package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/cohortline/chart"
	"github.com/andareed/cohortline/clipboard"
	"github.com/andareed/cohortline/dialogs"
	"github.com/andareed/cohortline/logging"
)

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	if m.drag.Active() {
		m.cancelDrag()
	}
	m.activeDialog = d
	m.ui.mode = modeDialog
	d.Show()
	return tea.Batch(d.Init(), d.Focus())
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Blur()
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.ui.mode = modeView
}

// updateDialog routes msg to the open dialog and handles the messages
// dialogs send back.
func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dialogs.AddConfirmedMsg:
		m.closeDialog()
		return m, m.addMarker(msg.Year)

	case dialogs.SettingsConfirmedMsg:
		m.closeDialog()
		return m, m.applySettings(msg.Names)

	case dialogs.ShareCopyRequestedMsg:
		method, err := clipboard.Copy(msg.URL)
		status := fmt.Sprintf("Copied to clipboard (%s)", method)
		if err != nil {
			logging.Warnf("share: copy failed: %v", err)
			status = "Copy failed: " + err.Error()
		}
		if d, ok := m.activeDialog.(*dialogs.Share); ok {
			d.SetStatus(status)
		}
		return m, nil

	case dialogs.AddCanceledMsg, dialogs.SettingsCanceledMsg, dialogs.ShareClosedMsg,
		dialogs.DataClosedMsg, dialogs.HelpClosedMsg:
		m.closeDialog()
		return m, nil
	}

	if m.activeDialog == nil {
		return m, nil
	}
	d, cmd := m.activeDialog.Update(msg)
	m.activeDialog = d
	return m, cmd
}

func (m *model) openSettings() tea.Cmd {
	sel := m.app.selection
	opts := make([]dialogs.StatOption, 0, len(m.app.catalog))
	for _, info := range m.app.catalog {
		opts = append(opts, dialogs.StatOption{
			Key:         info.Key,
			Name:        info.Name,
			Description: info.Description,
			Available:   sel.IsAvailable(info.Key),
			Checked:     sel.Contains(info.Key),
		})
	}
	return m.openDialog(dialogs.NewSettingsDialog(opts))
}

// applySettings replaces the selection with the checked statistics. An
// empty choice is allowed and shows the no-selection message.
func (m *model) applySettings(names []string) tea.Cmd {
	sel := m.app.selection
	if len(names) == 0 {
		for _, n := range sel.Names() {
			sel.Toggle(n)
		}
	} else {
		sel.Replace(names)
	}
	m.syncQuery()
	m.refreshView("settings")
	return m.startNotice(fmt.Sprintf("%d statistics selected", sel.Len()), noticeInfo, noticeDuration)
}

func (m *model) dataPages() []dialogs.DataPage {
	var pages []dialogs.DataPage
	for _, info := range m.app.catalog {
		s, ok := m.app.manager.Series(info.Key)
		if !ok {
			continue
		}
		p := dialogs.DataPage{
			Title:       info.Name,
			Description: info.Description,
			Source:      s.Source,
			Chart:       chart.Sparkline(chart.FromSeries(s), 48),
		}
		if s.Description != "" {
			p.Description = s.Description
		}
		for _, d := range s.Data {
			p.Points = append(p.Points, dialogs.DataPoint{Year: d.Year, Value: fmt.Sprintf("%.2f", d.Value)})
		}
		pages = append(pages, p)
	}
	return pages
}
