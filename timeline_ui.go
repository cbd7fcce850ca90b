package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/cohortline/chart"
	"github.com/andareed/cohortline/drag"
	"github.com/andareed/cohortline/generation"
)

const (
	timelineHeight = 4 // labels, track, axis, legend
	headerHeight   = 1
	footerHeight   = 2
	chartHeight    = 5
)

// handle is a marker as drawn on the track, at its preview year while it is
// being moved.
type handle struct {
	id       string
	year     int
	cell     int
	index    int
	selected bool
	moving   bool
}

func (m *model) handles() []handle {
	pv, dragging := m.drag.Preview()
	list := m.app.store.List()
	out := make([]handle, 0, len(list))
	for i, mk := range list {
		h := handle{id: mk.ID, year: mk.Year, index: i, selected: mk.ID == m.ui.selectedID}
		if dragging && pv.MarkerID == mk.ID {
			h.year = pv.Year
			h.moving = true
		}
		h.cell = m.cellFor(h.year) - m.ui.track.left
		out = append(out, h)
	}
	return out
}

// yearAtCell is the year the track cell i stands for.
func (m *model) yearAtCell(i int) int {
	w := max(1, m.ui.track.width-1)
	return drag.YearAt(m.app.store.Bounds(), float64(i)/float64(w)*100)
}

// timelineView draws the labels row, the track and its axis.
func (m *model) timelineView() string {
	width := m.ui.track.width
	if width < 2 {
		return ""
	}
	hs := m.handles()

	track := make([]string, width)
	for i := range track {
		tag := generation.Classify(m.yearAtCell(i)).Tag
		track[i] = generationStyle(tag).Render(trackGlyph)
	}
	labels := []rune(strings.Repeat(" ", width))
	for _, h := range hs {
		if h.cell < 0 || h.cell >= width {
			continue
		}
		glyph := handleGlyph
		if h.moving {
			glyph = grabGlyph
		}
		st := lipgloss.NewStyle().Foreground(chart.MarkerColor(h.index))
		if h.selected {
			st = st.Bold(true).Background(lipgloss.Color("237"))
		}
		track[h.cell] = st.Render(glyph)
		placeLabel(labels, h.cell, fmt.Sprintf("%d", h.year))
	}

	return strings.Join([]string{
		string(labels),
		strings.Join(track, ""),
		axisStyle.Render(m.axisLine(width)),
		m.generationLegend(),
	}, "\n")
}

// placeLabel centres text over cell unless it would overwrite another label.
func placeLabel(row []rune, cell int, text string) {
	t := []rune(text)
	start := cell - len(t)/2
	start = max(0, min(start, len(row)-len(t)))
	if start < 0 {
		return
	}
	from, to := max(0, start-1), min(len(row), start+len(t)+1)
	for _, r := range row[from:to] {
		if r != ' ' {
			return
		}
	}
	copy(row[start:], t)
}

// axisLine puts a year label under every decade that fits.
func (m *model) axisLine(width int) string {
	row := []rune(strings.Repeat(" ", width))
	b := m.app.store.Bounds()
	placeLabel(row, 0, fmt.Sprintf("%d", b.Min))
	placeLabel(row, width-1, fmt.Sprintf("%d", b.Max))
	first := b.Min + (10-b.Min%10)%10
	for y := first; y < b.Max; y += 10 {
		placeLabel(row, m.cellFor(y)-m.ui.track.left, fmt.Sprintf("%d", y))
	}
	return string(row)
}

func (m *model) generationLegend() string {
	var parts []string
	for _, band := range generation.Bands(m.app.store.Bounds().Max) {
		parts = append(parts, generationStyle(band.Label.Tag).Render(trackGlyph+" "+band.Label.Name))
	}
	return strings.Join(parts, "  ")
}
