package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/cohortline/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	AddConfirmedMsg struct{ Year int }
	AddCanceledMsg  struct{}
)

// --- Add year dialog (modal) ------------------------------------------------

type Add struct {
	input    textinput.Model
	visible  bool
	from, to int
	errMsg   string
}

func (d Add) Init() tea.Cmd { return d.input.Focus() }

// NewAddDialog asks for a birth year between from and to.
func NewAddDialog(from, to int) *Add {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", from, to)
	ti.Prompt = "Birth year: "
	ti.CharLimit = 4
	ti.Width = 10
	ti.Focus()
	return &Add{input: ti, visible: true, from: from, to: to}
}

func (d *Add) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			val := strings.TrimSpace(d.input.Value())
			year, err := strconv.Atoi(val)
			if err != nil {
				d.errMsg = "Please enter a valid year"
				return d, nil
			}
			logging.Debugf("AddDialog: confirmed %d", year)
			// range and duplicate checks belong to the store
			return d, emit(AddConfirmedMsg{Year: year})
		case "esc":
			return d, emit(AddCanceledMsg{})
		}
	}
	d.errMsg = ""
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// Value is the text typed so far.
func (d *Add) Value() string { return d.input.Value() }

func (d Add) View() string {
	if !d.visible {
		return ""
	}
	lines := []string{
		titleStyle.Render("Add cohort marker"),
		"",
		d.input.View(),
	}
	if d.errMsg != "" {
		lines = append(lines, errStyle.Render(d.errMsg))
	}
	lines = append(lines, "", hintStyle.Render(fmt.Sprintf("%d to %d · enter to add · esc to cancel", d.from, d.to)))
	return box().Render(strings.Join(lines, "\n"))
}

func (d *Add) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Add) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Add) Focus() tea.Cmd { return d.input.Focus() }
func (d *Add) Blur()          { d.input.Blur() }
func (d Add) IsVisible() bool { return d.visible }
