package compare

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles controls how entry tables are drawn.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
	// Generation colours the title per generation tag.
	Generation map[string]lipgloss.Style
}

// PlainStyles renders without colour, for piped output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Title: plain, Header: plain, Cell: plain, Muted: plain, Border: plain}
}

// Namer maps a statistic key to its display name.
type Namer func(key string) string

// RenderEntry draws one marker's block: a title line and a table with one
// row per selected statistic.
func RenderEntry(e Entry, name Namer, st Styles) string {
	title := fmt.Sprintf("%d · %s · %s", e.Marker.Year, e.Generation.Name, FormatAge(e.Age))
	ts := st.Title
	if gs, ok := st.Generation[e.Generation.Tag]; ok {
		ts = gs
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers("Statistic", "Year", "Value", "Source").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Header.Padding(0, 1)
			}
			return st.Cell.Padding(0, 1)
		})
	for _, c := range e.Cells {
		src := c.Source
		if src == "" {
			src = "-"
		}
		t.Row(name(c.Stat), fmt.Sprintf("%d", c.TargetYear), FormatValue(c), src)
	}
	return ts.Render(title) + "\n" + t.Render()
}

// Render draws the whole report, or its placeholder message.
func Render(r Report, name Namer, st Styles) string {
	if msg := r.Message(); msg != "" {
		return st.Muted.Render(msg)
	}
	blocks := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		blocks[i] = RenderEntry(e, name, st)
	}
	return strings.Join(blocks, "\n\n")
}
