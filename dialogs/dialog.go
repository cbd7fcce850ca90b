package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is the common interface all dialogs (Add, Settings, Share, Data,
// Help) implement so the model can route keys to whichever one is open.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}

const (
	overlayBG = lipgloss.Color("236")
	boxWidth  = 64
)

// box is the frame every dialog draws into. The border background matches
// the overlay the model places dialogs on.
func box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(overlayBG).
		Padding(1, 2).
		Width(boxWidth)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
