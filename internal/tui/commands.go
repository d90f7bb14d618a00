package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/domain"
)

// Command factories for async operations

// DefaultFetchTimeout bounds a single page request when none is configured
const DefaultFetchTimeout = 15 * time.Second

// FetchPageCmd fetches one page. The result is tagged with the requested
// index so late responses can be recognised and dropped.
func FetchPageCmd(repo domain.PageRepository, page int, timeout time.Duration) tea.Cmd {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		p, err := repo.Fetch(ctx, page)
		if err != nil {
			return PageErrorMsg{Requested: page, Err: err}
		}
		return PageLoadedMsg{Requested: page, Page: p}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
