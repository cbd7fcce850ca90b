package dialogs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

type (
	ShareCopyRequestedMsg struct{ URL string }
	ShareClosedMsg        struct{}
)

// Share shows the link that restores the current markers and selection.
type Share struct {
	visible bool
	url     string
	query   string
	status  string
}

func NewShareDialog(url, query string) *Share {
	return &Share{visible: true, url: url, query: query}
}

func (d Share) Init() tea.Cmd { return nil }

func (d *Share) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "c", "y":
			return d, emit(ShareCopyRequestedMsg{URL: d.url})
		case "enter", "esc":
			return d, emit(ShareClosedMsg{})
		}
	}
	return d, nil
}

// SetStatus shows the result of the last copy attempt.
func (d *Share) SetStatus(s string) { d.status = s }

func (d *Share) URL() string { return d.url }

func (d Share) View() string {
	if !d.visible {
		return ""
	}
	query := d.query
	if query == "" {
		query = "(empty: add markers to share them)"
	}
	content := fmt.Sprintf("%s\n\n%s\n\n%s %s",
		titleStyle.Render("Share this view"),
		termenv.Hyperlink(d.url, d.url),
		hintStyle.Render("query:"),
		query,
	)
	if d.status != "" {
		content += "\n\n" + d.status
	}
	content += "\n\n" + hintStyle.Render("c copy link · enter/esc close")
	return box().Render(content)
}

func (d *Share) Show()          { d.visible = true }
func (d *Share) Hide()          { d.visible = false }
func (d *Share) Focus() tea.Cmd { return nil }
func (d *Share) Blur()          {}
func (d Share) IsVisible() bool { return d.visible }
