package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/vitrine/internal/domain"
)

// fakeRepo serves numbered pages of a fixed-size collection
type fakeRepo struct {
	pageSize int
	total    int
	err      error
	calls    []int
}

func (r *fakeRepo) Fetch(_ context.Context, page int) (*domain.Page, error) {
	r.calls = append(r.calls, page)
	if r.err != nil {
		return nil, r.err
	}
	return r.page(page), nil
}

func (r *fakeRepo) page(page int) *domain.Page {
	var recs []domain.Artwork
	for i := (page - 1) * r.pageSize; i < page*r.pageSize && i < r.total; i++ {
		recs = append(recs, domain.Artwork{ID: i + 1, Title: fmt.Sprintf("Artwork %d", i+1)})
	}
	return &domain.Page{Number: page, Records: recs, Total: r.total}
}

func newTestModel(t *testing.T) (Model, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{pageSize: 3, total: 9}
	m := NewModel(repo, Options{PageSize: 3})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m = update(t, m, PageLoadedMsg{Requested: 1, Page: repo.page(1)})
	return m, repo
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

// firstFetch runs the fetch command out of a (possibly batched) command
func firstFetch(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.NotEmpty(t, batch)
		return batch[0]()
	}
	return msg
}

func TestModel_InitRequestsStartPage(t *testing.T) {
	repo := &fakeRepo{pageSize: 3, total: 9}
	m := NewModel(repo, Options{PageSize: 3, StartPage: 2})

	assert.True(t, m.Loading)
	assert.Equal(t, 2, m.Session.Pagination().PageIndex())

	msg := firstFetch(t, m.Init())
	loaded, ok := msg.(PageLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 2, loaded.Requested)
	assert.Equal(t, []int{2}, repo.calls)
}

func TestModel_PageLoadedFillsTable(t *testing.T) {
	m, _ := newTestModel(t)

	assert.False(t, m.Loading)
	assert.Equal(t, 3, m.Table.ItemCount())
	assert.Equal(t, "1/3", m.Paginator.View())

	view := m.View()
	assert.Contains(t, view, "Artworks")
	assert.Contains(t, view, "Artwork 1")
	assert.Contains(t, view, "page 1/3")
}

func TestModel_ToggleRow(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("j"))
	m = update(t, m, spaceKey)

	assert.True(t, m.Session.IsSelected(2))
	assert.Equal(t, 1, m.Session.SelectedCount())

	m = update(t, m, spaceKey)
	assert.Zero(t, m.Session.SelectedCount())
}

func TestModel_CommitTargetOnFirstPage(t *testing.T) {
	m, repo := newTestModel(t)
	m = update(t, m, spaceKey) // unrelated prior selection

	m = update(t, m, runes("#"))
	require.True(t, m.TargetModal.IsVisible())

	m = update(t, m, runes("2"))
	assert.Equal(t, 2, m.Session.Target())

	m, _ = updateCmd(t, m, enterKey)

	assert.False(t, m.TargetModal.IsVisible())
	assert.Empty(t, repo.calls, "no refetch on page 1")
	assert.True(t, m.Session.IsSelected(1))
	assert.True(t, m.Session.IsSelected(2))
	assert.Equal(t, 2, m.Session.SelectedCount())
}

func TestModel_CommitTargetFromLaterPageFillsAcrossPages(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := updateCmd(t, m, runes("n"))
	m = update(t, m, firstFetch(t, cmd))
	require.Equal(t, 2, m.Session.Pagination().PageIndex())

	m = update(t, m, runes("#"))
	m = update(t, m, runes("4"))
	m, cmd = updateCmd(t, m, enterKey)

	require.True(t, m.Loading)
	assert.Equal(t, 1, m.Session.Pagination().PageIndex())
	assert.Zero(t, m.Session.SelectedCount())

	m = update(t, m, firstFetch(t, cmd))
	assert.Equal(t, 3, m.Session.SelectedCount())

	m, cmd = updateCmd(t, m, runes("n"))
	m = update(t, m, firstFetch(t, cmd))
	assert.Equal(t, 4, m.Session.SelectedCount())
	assert.True(t, m.Session.IsSelected(4))
	assert.False(t, m.Session.IsSelected(5))
}

func TestModel_CommitTargetWhileFirstPageLoading(t *testing.T) {
	m, repo := newTestModel(t)

	m = update(t, m, runes("G"))
	m = update(t, m, PageLoadedMsg{Requested: 3, Page: repo.page(3)})
	require.Equal(t, 3, m.Session.Page().Number)

	// Jump back; page 1 has not arrived when the target is committed.
	m = update(t, m, runes("g"))
	require.True(t, m.Loading)
	m = update(t, m, runes("#"))
	m = update(t, m, runes("2"))
	m, cmd := updateCmd(t, m, enterKey)

	assert.Zero(t, m.Session.SelectedCount())

	msg := firstFetch(t, cmd)
	loaded, ok := msg.(PageLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, loaded.Requested)

	m = update(t, m, loaded)
	assert.True(t, m.Session.IsSelected(1))
	assert.True(t, m.Session.IsSelected(2))
	assert.False(t, m.Session.IsSelected(7))
	assert.Equal(t, 2, m.Session.SelectedCount())
}

func TestModel_InvalidTargetKeepsModalOpen(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("#"))
	m = update(t, m, runes("x"))
	m = update(t, m, enterKey)

	assert.True(t, m.TargetModal.IsVisible())
	assert.Zero(t, m.Session.Target())
	assert.Zero(t, m.Session.SelectedCount())

	m = update(t, m, escKey)
	assert.False(t, m.TargetModal.IsVisible())
}

func TestModel_StaleResponseIgnored(t *testing.T) {
	m, repo := newTestModel(t)

	m = update(t, m, runes("n")) // page 2
	m = update(t, m, runes("n")) // page 3

	m = update(t, m, PageLoadedMsg{Requested: 2, Page: repo.page(2)})
	assert.True(t, m.Loading, "still waiting for page 3")
	assert.Equal(t, 1, m.Session.Page().Number)

	m = update(t, m, PageLoadedMsg{Requested: 3, Page: repo.page(3)})
	assert.False(t, m.Loading)
	assert.Equal(t, 3, m.Session.Page().Number)
	rec, ok := m.Table.SelectedRecord()
	require.True(t, ok)
	assert.Equal(t, 7, rec.ID)
}

func TestModel_FetchErrorShowsStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, spaceKey)

	m = update(t, m, runes("n"))
	m = update(t, m, PageErrorMsg{Requested: 2, Err: &domain.StatusError{StatusCode: 503}})

	assert.False(t, m.Loading)
	assert.True(t, m.StatusIsErr)
	assert.Contains(t, m.StatusMsg, "503")
	assert.Equal(t, 3, m.Table.ItemCount(), "previous rows stay")
	assert.Equal(t, 1, m.Session.SelectedCount())
}

func TestModel_PageNavigationBounds(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := updateCmd(t, m, runes("p"))
	assert.Nil(t, cmd, "no previous page")

	m, cmd = updateCmd(t, m, runes("G"))
	require.NotNil(t, cmd)
	assert.Equal(t, 3, m.Session.Pagination().PageIndex())
	m = update(t, m, firstFetch(t, cmd))

	_, cmd = updateCmd(t, m, runes("n"))
	assert.Nil(t, cmd, "no next page")

	m, cmd = updateCmd(t, m, runes("g"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.Session.Pagination().PageIndex())
}

func TestModel_ToggleInspector(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("i"))

	assert.True(t, m.ShowInspector)
	assert.Contains(t, m.View(), "Details")
}

func TestModel_HelpScreen(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runes("?"))
	assert.Equal(t, StateHelp, m.State)
	assert.Contains(t, m.View(), "select first N rows")

	m = update(t, m, escKey)
	assert.Equal(t, StateBrowsing, m.State)
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "server answered 404", describeError(&domain.StatusError{StatusCode: 404}))
	assert.Equal(t, "catalog unreachable", describeError(fmt.Errorf("%w: dial", domain.ErrServerOffline)))
	assert.Equal(t, "unreadable response", describeError(domain.ErrMalformedPayload))
	assert.Equal(t, "boom", describeError(errors.New("boom")))
}

func TestFetchPageCmd_TagsResults(t *testing.T) {
	repo := &fakeRepo{pageSize: 3, total: 9}

	msg := FetchPageCmd(repo, 3, 0)()
	loaded, ok := msg.(PageLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 3, loaded.Requested)
	assert.Len(t, loaded.Page.Records, 3)

	repo.err = domain.ErrServerOffline
	msg = FetchPageCmd(repo, 4, 0)()
	failed, ok := msg.(PageErrorMsg)
	require.True(t, ok)
	assert.Equal(t, 4, failed.Requested)
	assert.ErrorIs(t, failed.Err, domain.ErrServerOffline)
}
