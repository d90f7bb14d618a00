package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/vitrine/internal/tui/styles"
)

// TargetModalEvent reports what a key press did to the modal
type TargetModalEvent int

const (
	TargetModalNone TargetModalEvent = iota
	TargetModalChanged
	TargetModalSubmitted
	TargetModalClosed
)

// TargetModal is the "Select rows" popover: a single numeric input whose raw
// text is forwarded on every change
type TargetModal struct {
	visible   bool
	title     string
	input     textinput.Model
	canCommit bool
}

// NewTargetModal creates a hidden target modal
func NewTargetModal() TargetModal {
	ti := textinput.New()
	ti.Placeholder = "number of rows..."
	ti.CharLimit = 9
	ti.Width = 20
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return TargetModal{
		title: "Select rows",
		input: ti,
	}
}

// Show displays the modal prefilled with the current target
func (m *TargetModal) Show(target int) {
	m.visible = true
	m.input.SetValue("")
	if target > 0 {
		m.input.SetValue(strconv.Itoa(target))
	}
	m.input.CursorEnd()
	m.canCommit = target > 0
	m.input.Focus()
}

// Hide dismisses the modal
func (m *TargetModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m TargetModal) IsVisible() bool {
	return m.visible
}

// Value returns the raw input text
func (m TargetModal) Value() string {
	return m.input.Value()
}

// SetCanCommit toggles the commit hint; the owner decides from the target
func (m *TargetModal) SetCanCommit(ok bool) {
	m.canCommit = ok
}

// Update handles input events
func (m TargetModal) Update(msg tea.Msg) (TargetModal, tea.Cmd, TargetModalEvent) {
	if !m.visible {
		return m, nil, TargetModalNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, TargetModalKeys.Commit):
			return m, nil, TargetModalSubmitted
		case key.Matches(keyMsg, TargetModalKeys.Close):
			m.Hide()
			return m, nil, TargetModalClosed
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, cmd, TargetModalChanged
	}
	return m, cmd, TargetModalNone
}

// View renders the modal
func (m TargetModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 36

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	inputStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	hintStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	spacer := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark).
		Render("")

	hint := styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" select · ") +
		styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" close")
	if !m.canCommit {
		hint = styles.DimStyle.Render("enter a positive number")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		spacer,
		inputStyle.Render(m.input.View()),
		spacer,
		hintStyle.Render(hint),
	)

	return styles.ModalStyle.Render(content)
}
