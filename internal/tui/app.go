// Package tui is the interactive terminal front end: a record table over one
// catalog page, a paginator footer, a details inspector and the "Select rows"
// modal. All state changes go through a browse.Session.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/browse"
	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Layout proportions
const (
	TableColumnPercent = 65 // Table width when the inspector is visible
	MinColumnWidth     = 30

	// Vertical layout: single footer line
	ChromeHeight = 1

	tickInterval  = 100 * time.Millisecond
	statusTimeout = 3 * time.Second
)

// Options configures a Model
type Options struct {
	PageSize      int
	StartPage     int // 1-based; values below 1 start at page 1
	ShowInspector bool
	FetchTimeout  time.Duration
	Logger        *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Data source
	Repo    domain.PageRepository
	Session *browse.Session

	// UI Components
	Table       *components.RecordTable
	Inspector   components.Inspector
	TargetModal components.TargetModal
	Paginator   paginator.Model
	Help        help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg     string
	StatusIsErr   bool
	Loading       bool
	SpinnerFrame  int
	ShowInspector bool

	fetchTimeout time.Duration
	logger       *slog.Logger
}

// NewModel creates a new application model. The first page request is
// registered with the session here and issued by Init.
func NewModel(repo domain.PageRepository, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	session := browse.NewSession(opts.PageSize, logger)

	table := components.NewRecordTable("Artworks")
	table.SetSelectionFunc(session.IsSelected)

	pg := paginator.New()
	pg.Type = paginator.Arabic
	pg.PerPage = session.Pagination().PageSize

	m := Model{
		State:         StateBrowsing,
		Repo:          repo,
		Session:       session,
		Table:         table,
		Inspector:     components.NewInspector(),
		TargetModal:   components.NewTargetModal(),
		Paginator:     pg,
		Help:          help.New(),
		ShowInspector: opts.ShowInspector,
		fetchTimeout:  opts.FetchTimeout,
		logger:        logger,
	}

	start := max(opts.StartPage, 1)
	if _, ok := m.Session.PageChanged(m.Session.Pagination().OffsetForPage(start)); ok {
		m.Loading = true
		m.Table.SetLoading(true)
	}
	m.syncPaginator()

	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		FetchPageCmd(m.Repo, m.Session.Pagination().PageIndex(), m.fetchTimeout),
		TickCmd(tickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.Table.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(tickInterval)

	case PageLoadedMsg:
		if !m.Session.ApplyPage(msg.Requested, msg.Page) {
			return m, nil
		}
		m.Loading = false
		m.Table.SetRecords(m.Session.Records())
		m.syncPaginator()
		m.updateInspector()
		if m.StatusIsErr {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil

	case PageErrorMsg:
		if !m.Session.ApplyError(msg.Requested, msg.Err) {
			return m, nil
		}
		m.Loading = false
		m.Table.SetLoading(false)
		m.StatusMsg = fmt.Sprintf("Page %d failed: %s", msg.Requested, describeError(msg.Err))
		m.StatusIsErr = true
		return m, nil

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(statusTimeout)

	case ClearStatusMsg:
		if !m.StatusIsErr {
			m.StatusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// requestOffset moves the session to offset and returns the fetch for it
func (m *Model) requestOffset(offset int) tea.Cmd {
	page, ok := m.Session.PageChanged(offset)
	if !ok {
		return nil
	}
	m.startLoading()
	return FetchPageCmd(m.Repo, page, m.fetchTimeout)
}

func (m *Model) startLoading() {
	m.Loading = true
	m.Table.SetLoading(true)
	m.StatusMsg = ""
	m.StatusIsErr = false
	m.syncPaginator()
}

// syncPaginator mirrors the session pagination into the paginator widget
func (m *Model) syncPaginator() {
	p := m.Session.Pagination()
	m.Paginator.PerPage = p.PageSize
	if p.Total > 0 {
		m.Paginator.SetTotalPages(p.Total)
	}
	m.Paginator.Page = p.PageIndex() - 1
}

// updateInspector shows the record under the cursor
func (m *Model) updateInspector() {
	rec, ok := m.Table.SelectedRecord()
	if !ok {
		m.Inspector.SetItem(nil, false)
		return
	}
	m.Inspector.SetItem(&rec, m.Session.IsSelected(rec.ID))
}
