package tui

import (
	"github.com/mmcdole/vitrine/internal/domain"
)

// Message types for the TUI

// PageLoadedMsg carries a fetched page and the index it was requested for
type PageLoadedMsg struct {
	Requested int
	Page      *domain.Page
}

// PageErrorMsg reports a failed fetch for the requested index
type PageErrorMsg struct {
	Requested int
	Err       error
}

// Error implements the error interface
func (e PageErrorMsg) Error() string {
	return e.Err.Error()
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
