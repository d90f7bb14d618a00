package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/vitrine/internal/domain"
)

func records(n int) []domain.Artwork {
	recs := make([]domain.Artwork, n)
	for i := range recs {
		recs[i] = domain.Artwork{ID: 100 + i, Title: "Title"}
	}
	return recs
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRecordTable_CursorMovement(t *testing.T) {
	tbl := NewRecordTable("Artworks")
	tbl.SetSize(100, 10) // 10 - 2 border - 2 indicators - 2 chrome = 4 visible
	tbl.SetRecords(records(8))

	tbl, _ = tbl.Update(runeKey("j"))
	tbl, _ = tbl.Update(runeKey("j"))
	assert.Equal(t, 2, tbl.SelectedIndex())

	tbl, _ = tbl.Update(runeKey("k"))
	assert.Equal(t, 1, tbl.SelectedIndex())

	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 7, tbl.SelectedIndex())
	assert.Equal(t, 4, tbl.offset, "cursor kept in view")

	tbl, _ = tbl.Update(runeKey("j"))
	assert.Equal(t, 7, tbl.SelectedIndex(), "clamped at last row")

	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, tbl.SelectedIndex())
	assert.Equal(t, 0, tbl.offset)
}

func TestRecordTable_PageKeysAreNotCursorKeys(t *testing.T) {
	tbl := NewRecordTable("Artworks")
	tbl.SetSize(100, 20)
	tbl.SetRecords(records(5))
	tbl.SetSelectedIndex(2)

	tbl, _ = tbl.Update(runeKey("g"))
	tbl, _ = tbl.Update(runeKey("G"))

	assert.Equal(t, 2, tbl.SelectedIndex())
}

func TestRecordTable_SetRecordsResetsCursor(t *testing.T) {
	tbl := NewRecordTable("Artworks")
	tbl.SetSize(100, 20)
	tbl.SetRecords(records(5))
	tbl.SetSelectedIndex(4)

	tbl.SetRecords(records(2))

	rec, ok := tbl.SelectedRecord()
	require.True(t, ok)
	assert.Equal(t, 100, rec.ID)
}

func TestRecordTable_EmptySelection(t *testing.T) {
	tbl := NewRecordTable("Artworks")

	_, ok := tbl.SelectedRecord()
	assert.False(t, ok)
	assert.True(t, tbl.IsEmpty())
	assert.Contains(t, tbl.renderContent(), "No records")
}

func TestRecordTable_CheckboxFollowsSelection(t *testing.T) {
	tbl := NewRecordTable("Artworks")
	tbl.SetSize(100, 20)
	tbl.SetRecords(records(3))
	tbl.SetSelectionFunc(func(id int) bool { return id == 101 })

	out := tbl.View()

	assert.Equal(t, 1, strings.Count(out, "[x]"))
	assert.Equal(t, 2, strings.Count(out, "[ ]"))
	assert.Contains(t, out, "Inscriptions")
}

func TestColumnWidths_FillRow(t *testing.T) {
	for _, w := range []int{60, 98, 160} {
		c := columnWidths(w)
		used := checkboxColWidth + c.id + c.title + c.origin + c.artist + c.inscriptions + c.start + c.end + 7*columnGap + 2
		assert.Equal(t, w, used, "width %d", w)
	}
}
