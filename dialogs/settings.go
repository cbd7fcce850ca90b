package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

type (
	SettingsConfirmedMsg struct{ Names []string }
	SettingsCanceledMsg  struct{}
)

// StatOption is one row of the settings list.
type StatOption struct {
	Key         string
	Name        string
	Description string
	Available   bool
	Checked     bool
}

type settingsKeys struct {
	up, down, toggle, confirm, cancel key.Binding
}

var settingsKeymap = settingsKeys{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	toggle:  key.NewBinding(key.WithKeys(" ", "x")),
	confirm: key.NewBinding(key.WithKeys("enter")),
	cancel:  key.NewBinding(key.WithKeys("esc")),
}

// Settings lets the user pick which statistics appear in the tables.
// Unavailable statistics are listed but cannot be checked.
type Settings struct {
	visible bool
	options []StatOption
	cursor  int
}

func NewSettingsDialog(options []StatOption) *Settings {
	opts := append([]StatOption(nil), options...)
	d := &Settings{visible: true, options: opts}
	d.cursor = d.nextAvailable(-1, 1)
	if d.cursor < 0 {
		d.cursor = 0
	}
	return d
}

func (d Settings) Init() tea.Cmd { return nil }

func (d *Settings) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(m, settingsKeymap.up):
		if i := d.nextAvailable(d.cursor, -1); i >= 0 {
			d.cursor = i
		}
	case key.Matches(m, settingsKeymap.down):
		if i := d.nextAvailable(d.cursor, 1); i >= 0 {
			d.cursor = i
		}
	case key.Matches(m, settingsKeymap.toggle):
		if d.cursor < len(d.options) && d.options[d.cursor].Available {
			d.options[d.cursor].Checked = !d.options[d.cursor].Checked
		}
	case key.Matches(m, settingsKeymap.confirm):
		return d, emit(SettingsConfirmedMsg{Names: d.Checked()})
	case key.Matches(m, settingsKeymap.cancel):
		return d, emit(SettingsCanceledMsg{})
	}
	return d, nil
}

func (d *Settings) nextAvailable(from, step int) int {
	for i := from + step; i >= 0 && i < len(d.options); i += step {
		if d.options[i].Available {
			return i
		}
	}
	return -1
}

// Checked lists the checked keys in list order.
func (d *Settings) Checked() []string {
	var out []string
	for _, o := range d.options {
		if o.Checked && o.Available {
			out = append(out, o.Key)
		}
	}
	return out
}

func (d Settings) View() string {
	if !d.visible {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteString("\n\n")
	for i, o := range d.options {
		cursor := "  "
		if i == d.cursor {
			cursor = "> "
		}
		check := "[ ]"
		if o.Checked {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, check, o.Name)
		desc := wordwrap.String(o.Description, boxWidth-14)
		desc = "      " + strings.ReplaceAll(desc, "\n", "\n      ")
		if !o.Available {
			line = hintStyle.Render(line + " (no data)")
		}
		b.WriteString(line + "\n" + hintStyle.Render(desc) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("space toggle · enter apply · esc cancel"))
	return box().Render(b.String())
}

func (d *Settings) Show()          { d.visible = true }
func (d *Settings) Hide()          { d.visible = false }
func (d *Settings) Focus() tea.Cmd { return nil }
func (d *Settings) Blur()          {}
func (d Settings) IsVisible() bool { return d.visible }
