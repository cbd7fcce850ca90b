package dialogs

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestAdd_ConfirmsYear(t *testing.T) {
	d := NewAddDialog(1950, 2020)
	for _, r := range "1984" {
		d.Update(keyRunes(string(r)))
	}
	assert.Equal(t, "1984", d.Value())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, AddConfirmedMsg{Year: 1984}, run(t, cmd))
}

func TestAdd_RejectsGarbage(t *testing.T) {
	d := NewAddDialog(1950, 2020)
	d.Update(keyRunes("ab"))

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, d.View(), "Please enter a valid year")

	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, AddCanceledMsg{}, run(t, cmd))
}

func TestSettings_ToggleAndConfirm(t *testing.T) {
	d := NewSettingsDialog([]StatOption{
		{Key: "literacy", Name: "Literacy Rate", Available: true, Checked: true},
		{Key: "attainment", Name: "Bachelor's+", Available: false},
		{Key: "graduation", Name: "HS Graduation", Available: true},
	})

	// cursor skips the unavailable row
	d.Update(tea.KeyMsg{Type: tea.KeyDown})
	d.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	d.Update(tea.KeyMsg{Type: tea.KeyUp})
	d.Update(keyRunes("x"))

	assert.Equal(t, []string{"graduation"}, d.Checked())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SettingsConfirmedMsg{Names: []string{"graduation"}}, run(t, cmd))

	view := d.View()
	assert.Contains(t, view, "(no data)")
	assert.Contains(t, view, "[x] HS Graduation")
}

func TestSettings_Cancel(t *testing.T) {
	d := NewSettingsDialog(nil)
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, SettingsCanceledMsg{}, run(t, cmd))
	assert.Empty(t, d.Checked())
}

func TestShare(t *testing.T) {
	url := "http://localhost:1313/timeline/?cohorts=1970"
	d := NewShareDialog(url, "cohorts=1970")
	assert.Contains(t, d.View(), url)

	_, cmd := d.Update(keyRunes("c"))
	assert.Equal(t, ShareCopyRequestedMsg{URL: url}, run(t, cmd))

	d.SetStatus("Copied")
	assert.Contains(t, d.View(), "Copied")

	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ShareClosedMsg{}, run(t, cmd))
}

func TestData_Pages(t *testing.T) {
	d := NewDataDialog([]DataPage{
		{Title: "Literacy Rate", Source: "PIAAC", Points: []DataPoint{{Year: 2012, Value: "88.00"}}},
		{Title: "Enrollment", Points: []DataPoint{{Year: 2001, Value: "91.20"}}},
	})
	assert.Contains(t, d.View(), "Literacy Rate  (1/2)")
	assert.Contains(t, d.View(), "88.00")
	assert.Contains(t, d.View(), "Source: PIAAC")

	d.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, d.Page())
	assert.Contains(t, d.View(), "91.20")

	d.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, d.Page())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, DataClosedMsg{}, run(t, cmd))

	empty := NewDataDialog(nil)
	assert.Contains(t, empty.View(), "No series loaded")
}

func TestHelp(t *testing.T) {
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	d := NewHelpDialog([][]key.Binding{{quit}})
	assert.Contains(t, d.View(), "quit")

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, HelpClosedMsg{}, run(t, cmd))
	assert.False(t, d.IsVisible())
}
