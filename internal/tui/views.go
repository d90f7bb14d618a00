package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/tui/styles"
)

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	if m.TargetModal.IsVisible() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.TargetModal.View())
	}

	layout := m.calculateColumnLayout(m.Width)

	content := m.Table.View()
	if layout.inspectorWidth > 0 {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.Inspector.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())
}

// renderFooter renders the status line: status on the left, paginator and
// selection in the middle, help hint on the right
func (m Model) renderFooter() string {
	var left string
	if m.Loading {
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading...")
	} else if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	center := m.renderPosition() + "  " + m.renderSelection()

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		gap := max(m.Width-centerWidth-rightWidth, 0)
		return center + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderPosition shows the page position through the paginator widget
func (m Model) renderPosition() string {
	p := m.Session.Pagination()
	if p.PageCount() == 0 {
		return styles.DimBadgeStyle.Render(fmt.Sprintf("page %d", p.PageIndex()))
	}
	return styles.DimBadgeStyle.Render("page " + m.Paginator.View())
}

func (m Model) renderSelection() string {
	text := fmt.Sprintf("%d selected", m.Session.SelectedCount())
	if t := m.Session.Target(); t > 0 {
		text += fmt.Sprintf(" / target %d", t)
	}
	if m.Session.SelectedCount() == 0 {
		return styles.DimBadgeStyle.Render(text)
	}
	return styles.BadgeStyle.Render(text)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	title := styles.ModalTitleStyle.Render("Keys")
	body := m.Help.FullHelpView(Keys.FullHelp())
	footer := styles.DimStyle.Render("Press ? or esc to return")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, "", footer)))
}

// RenderSpinner renders a spinner frame
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}

// describeError turns a fetch error into a short status line
func describeError(err error) string {
	var statusErr *domain.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("server answered %d", statusErr.StatusCode)
	case errors.Is(err, domain.ErrServerOffline):
		return "catalog unreachable"
	case errors.Is(err, domain.ErrMalformedPayload):
		return "unreadable response"
	default:
		return err.Error()
	}
}
