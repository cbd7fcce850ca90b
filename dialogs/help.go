package dialogs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type HelpClosedMsg struct{}

// Help lists key bindings in columns.
type Help struct {
	visible bool
	groups  [][]key.Binding
	model   help.Model
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog shows the given binding groups, one column per group.
func NewHelpDialog(groups [][]key.Binding) *Help {
	h := help.New()
	h.ShowAll = true
	h.Width = boxWidth - 6
	return &Help{visible: true, groups: groups, model: h}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?":
			d.visible = false
			return d, emit(HelpClosedMsg{})
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}
	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render("Keys"),
		d.model.FullHelpView(d.groups),
		hintStyle.Render("mouse: click the track to add · drag a handle to move\nenter/esc to return"),
	)
	return box().Render(content)
}

func (d *Help) Show()          { d.visible = true }
func (d *Help) Hide()          { d.visible = false }
func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
