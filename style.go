package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/cohortline/compare"
	"github.com/andareed/cohortline/generation"
)

const (
	warningBGColor = "#7a1f1f"
	warningFGColor = "#ffffff"
)

var (
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tableStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	chartArea   = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(warningBGColor)).
			Foreground(lipgloss.Color(warningFGColor)).
			Bold(true).
			Padding(0, 1)

	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	handleGlyph = "◆"
	grabGlyph   = "◇"
	trackGlyph  = "━"

	// generationColors follow the tag of each generation band.
	generationColors = map[string]lipgloss.Color{
		generation.BabyBoomer.Tag: lipgloss.Color("#8a6d3b"),
		generation.GenX.Tag:       lipgloss.Color("#31708f"),
		generation.Millennial.Tag: lipgloss.Color("#3c763d"),
		generation.GenZ.Tag:       lipgloss.Color("#6f42c1"),
		generation.GenAlpha.Tag:   lipgloss.Color("#c77c02"),
		generation.Other.Tag:      lipgloss.Color("#555555"),
	}
)

func generationStyle(tag string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(generationColors[tag])
}

func compareStyles() compare.Styles {
	gen := make(map[string]lipgloss.Style, len(generationColors))
	for tag, c := range generationColors {
		gen[tag] = lipgloss.NewStyle().Bold(true).Foreground(c)
	}
	return compare.Styles{
		Title:      titleStyle,
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Cell:       lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c0c0")),
		Muted:      mutedStyle,
		Border:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Generation: gen,
	}
}
