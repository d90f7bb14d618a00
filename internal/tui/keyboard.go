package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State == StateHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Route to the modal if it is open
	if m.TargetModal.IsVisible() {
		return m.handleTargetModalKey(msg)
	}

	p := m.Session.Pagination()

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Toggle):
		rec, ok := m.Table.SelectedRecord()
		if !ok {
			return m, nil
		}
		m.Session.RowToggled(rec)
		m.updateInspector()
		return m, nil

	case key.Matches(msg, Keys.NextPage):
		if !p.HasNext() {
			return m, nil
		}
		return m, m.requestOffset(p.NextOffset())

	case key.Matches(msg, Keys.PrevPage):
		if !p.HasPrev() {
			return m, nil
		}
		return m, m.requestOffset(p.PrevOffset())

	case key.Matches(msg, Keys.FirstPage):
		if p.Offset == 0 {
			return m, nil
		}
		return m, m.requestOffset(0)

	case key.Matches(msg, Keys.LastPage):
		if p.PageCount() == 0 || p.LastOffset() == p.Offset {
			return m, nil
		}
		return m, m.requestOffset(p.LastOffset())

	case key.Matches(msg, Keys.Refresh):
		return m, m.requestOffset(p.Offset)

	case key.Matches(msg, Keys.SelectRows):
		m.TargetModal.Show(m.Session.Target())
		return m, nil

	case key.Matches(msg, Keys.ToggleInspector):
		m.ShowInspector = !m.ShowInspector
		m.updateLayout()
		m.updateInspector()
		return m, nil
	}

	// Everything else moves the cursor
	m.Table, _ = m.Table.Update(msg)
	m.updateInspector()
	return m, nil
}

// handleTargetModalKey feeds the modal and forwards its events to the session
func (m Model) handleTargetModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var event components.TargetModalEvent
	m.TargetModal, cmd, event = m.TargetModal.Update(msg)

	switch event {
	case components.TargetModalChanged:
		// Invalid input leaves the previous target in place
		m.Session.TargetCountChanged(m.TargetModal.Value())
		m.TargetModal.SetCanCommit(m.Session.Target() > 0)

	case components.TargetModalSubmitted:
		if m.Session.Target() <= 0 {
			m.TargetModal.SetCanCommit(false)
			return m, cmd
		}
		m.TargetModal.Hide()

		target := m.Session.Target()
		page, fetch := m.Session.CommitTarget()
		m.logger.Info("target committed", "target", target, "refetch", fetch)
		status := StatusMsg{Message: fmt.Sprintf("Selecting first %d rows", target)}
		if fetch {
			m.startLoading()
			return m, tea.Batch(
				FetchPageCmd(m.Repo, page, m.fetchTimeout),
				statusCmd(status),
			)
		}
		m.updateInspector()
		return m, statusCmd(status)
	}

	return m, cmd
}

func statusCmd(s StatusMsg) tea.Cmd {
	return func() tea.Msg { return s }
}
