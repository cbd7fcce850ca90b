package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
)

type DataClosedMsg struct{}

// DataPoint is one row of the series table.
type DataPoint struct {
	Year  int
	Value string
}

// DataPage is the raw series behind one statistic.
type DataPage struct {
	Title       string
	Description string
	Source      string
	Chart       string
	Points      []DataPoint
}

const dataViewportHeight = 12

// Data browses the loaded series, one page per statistic.
type Data struct {
	visible bool
	pages   []DataPage
	page    int
	port    viewport.Model
}

func NewDataDialog(pages []DataPage) *Data {
	d := &Data{visible: true, pages: pages, port: viewport.New(boxWidth-6, dataViewportHeight)}
	d.load()
	return d
}

func (d Data) Init() tea.Cmd { return nil }

func (d *Data) load() {
	if len(d.pages) == 0 {
		d.port.SetContent("No series loaded")
		return
	}
	p := d.pages[d.page]
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Year", "Value").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
		})
	for _, pt := range p.Points {
		t.Row(fmt.Sprintf("%d", pt.Year), pt.Value)
	}
	d.port.SetContent(t.Render())
	d.port.GotoTop()
}

// Page returns the index of the page on show.
func (d *Data) Page() int { return d.page }

func (d *Data) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "tab", "right", "l":
			if len(d.pages) > 0 {
				d.page = (d.page + 1) % len(d.pages)
				d.load()
			}
			return d, nil
		case "shift+tab", "left", "h":
			if len(d.pages) > 0 {
				d.page = (d.page + len(d.pages) - 1) % len(d.pages)
				d.load()
			}
			return d, nil
		case "enter", "esc":
			return d, emit(DataClosedMsg{})
		}
	}
	var cmd tea.Cmd
	d.port, cmd = d.port.Update(msg)
	return d, cmd
}

func (d Data) View() string {
	if !d.visible {
		return ""
	}
	var parts []string
	if len(d.pages) == 0 {
		parts = append(parts, titleStyle.Render("Data"), "", d.port.View())
	} else {
		p := d.pages[d.page]
		header := fmt.Sprintf("%s  (%d/%d)", p.Title, d.page+1, len(d.pages))
		parts = append(parts, titleStyle.Render(header))
		if p.Description != "" {
			parts = append(parts, wordwrap.String(p.Description, boxWidth-6))
		}
		if p.Chart != "" {
			parts = append(parts, "", p.Chart)
		}
		parts = append(parts, "", d.port.View())
		if p.Source != "" {
			parts = append(parts, hintStyle.Render("Source: "+p.Source))
		}
	}
	parts = append(parts, "", hintStyle.Render("tab next · ↑/↓ scroll · enter/esc close"))
	return box().Render(strings.Join(parts, "\n"))
}

func (d *Data) Show()          { d.visible = true }
func (d *Data) Hide()          { d.visible = false }
func (d *Data) Focus() tea.Cmd { return nil }
func (d *Data) Blur()          {}
func (d Data) IsVisible() bool { return d.visible }
