package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/andareed/cohortline/chart"
	"github.com/andareed/cohortline/cohort"
	"github.com/andareed/cohortline/compare"
	"github.com/andareed/cohortline/logging"
)

// layout sizes the track and the tables viewport from the terminal size.
func (m *model) layout() {
	contentW := max(0, m.terminalWidth-appstyle.GetHorizontalMargins())
	m.ui.track = trackGeometry{
		left:  appstyle.GetMarginLeft(),
		width: contentW,
		// below the top margin, the header and the labels row
		row: appstyle.GetMarginTop() + headerHeight + 1,
	}

	used := appstyle.GetVerticalMargins() + headerHeight + timelineHeight + footerHeight + tableStyle.GetVerticalFrameSize()
	if m.ui.showChart {
		used += chartHeight + chartArea.GetVerticalFrameSize()
	}
	w := max(0, contentW-tableStyle.GetHorizontalFrameSize())
	h := max(1, m.terminalHeight-used)
	m.viewport.Width = w
	m.viewport.Height = h
}

// refreshView rebuilds the comparison report and the viewport content.
func (m *model) refreshView(reason string) {
	logging.Debugf("refreshView: %s", reason)
	m.data.report = compare.Build(
		m.app.store.List(),
		m.app.selection.Names(),
		len(m.data.probe.Available),
		m.lookup,
		m.app.resolver,
		m.app.now(),
	)
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.tablesView())
}

func (m *model) lookup(name string) (*cohort.Series, bool) {
	return m.app.manager.Series(name)
}

func (m *model) tablesView() string {
	if !m.data.probed {
		return mutedStyle.Render("Loading statistics…")
	}
	return compare.Render(m.data.report, m.app.statName, compareStyles())
}

const noDataBanner = "No data available. Check data.url or data.dir and press r to retry."

func (m *model) headerView(width int) string {
	if m.data.probed && m.data.probe.NoData() {
		// one line only; the track row below is computed from headerHeight
		inner := max(0, width-warningStyle.GetHorizontalFrameSize())
		return warningStyle.Width(width).Render(runewidth.Truncate(noDataBanner, inner, "…"))
	}
	names := m.app.selection.Names()
	label := make([]string, len(names))
	for i, n := range names {
		label[i] = m.app.statName(n)
	}
	stats := "no statistics selected"
	if len(label) > 0 {
		stats = strings.Join(label, ", ")
	}
	if m.data.loading {
		stats = "loading…"
	}
	line := titleStyle.Render("cohortline") + headerStyle.Render(" · "+stats)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func (m *model) chartView(width int) string {
	names := m.app.selection.Names()
	if len(names) == 0 {
		return chartArea.Width(width - chartArea.GetHorizontalBorderSize()).Height(chartHeight).Render(mutedStyle.Render("Select a statistic to chart"))
	}
	name := names[m.ui.chartIdx%len(names)]
	inner := width - chartArea.GetHorizontalFrameSize()
	body := "No data points"
	if s, ok := m.app.manager.Series(name); ok {
		st := chart.StyleFor(m.app.catalog.Index(name), m.app.statName(name))
		body = chart.Render(chart.FromSeries(s), inner, st)
	}
	return chartArea.Width(width - chartArea.GetHorizontalBorderSize()).Height(chartHeight).Render(body)
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	styles := DefaultFooterStyles()

	st := FooterState{
		Mode:      modeLabel(m.ui.mode),
		Query:     m.ui.query,
		Markers:   m.app.store.Len(),
		Selected:  m.app.selection.Len(),
		Available: len(m.data.probe.Available),
		Legend:    m.modeHints(),
	}
	if mk, ok := m.selectedMarker(); ok {
		st.Current = fmt.Sprintf("%d", mk.Year)
	}
	if pv, ok := m.drag.Preview(); ok {
		st.Current = fmt.Sprintf("%d → %d", m.yearOf(pv.MarkerID), pv.Year)
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d track=%d+%d@%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.ui.track.left, m.ui.track.width, m.ui.track.row)
	}
	return RenderFooter(width, st, styles)
}

func (m *model) yearOf(id string) int {
	mk, _ := m.app.store.Get(id)
	return mk.Year
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	contentW := m.ui.track.width
	parts := []string{
		m.headerView(contentW),
		m.timelineView(),
		tableStyle.Render(m.viewport.View()),
	}
	if m.ui.showChart {
		parts = append(parts, m.chartView(contentW))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
