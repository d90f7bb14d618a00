package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/tui/styles"
)

// Layout constants for the record table
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Title line and column header line
	tableChromeLines = 2
)

// Fixed column widths; the text columns share what is left
const (
	checkboxColWidth = 3
	idColWidth       = 7
	yearColWidth     = 6
	columnGap        = 1
)

// tableColumns holds the computed width of every column
type tableColumns struct {
	id, title, origin, artist, inscriptions, start, end int
}

// columnWidths splits the row width between the columns
func columnWidths(width int) tableColumns {
	// 8 columns, 7 gaps, 2 margin chars
	fixed := checkboxColWidth + idColWidth + 2*yearColWidth + 7*columnGap + 2
	flex := width - fixed
	if flex < 20 {
		flex = 20
	}

	cols := tableColumns{
		id:     idColWidth,
		start:  yearColWidth,
		end:    yearColWidth,
		title:  flex * 35 / 100,
		origin: flex * 15 / 100,
		artist: flex * 25 / 100,
	}
	cols.inscriptions = flex - cols.title - cols.origin - cols.artist
	return cols
}

// RecordTable is a scrollable table of artworks with a selection checkbox
// column. The cursor row is highlighted; checked rows are the accumulated
// selection, supplied through SetSelectionFunc.
type RecordTable struct {
	records    []domain.Artwork
	isSelected func(id int) bool

	// Cursor
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width  int
	height int

	title string

	// Loading state
	loading      bool
	spinnerFrame int
}

// NewRecordTable creates an empty record table
func NewRecordTable(title string) *RecordTable {
	return &RecordTable{
		title:      title,
		isSelected: func(int) bool { return false },
	}
}

// SetRecords replaces the rows. The cursor returns to the top.
func (t *RecordTable) SetRecords(records []domain.Artwork) {
	t.loading = false
	t.records = records
	t.cursor = 0
	t.offset = 0
}

// SetSelectionFunc sets the lookup used to draw the checkbox column
func (t *RecordTable) SetSelectionFunc(fn func(id int) bool) {
	if fn == nil {
		fn = func(int) bool { return false }
	}
	t.isSelected = fn
}

// Update moves the cursor in response to key presses
func (t *RecordTable) Update(msg tea.Msg) (*RecordTable, tea.Cmd) {
	count := t.ItemCount()
	if count == 0 {
		return t, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch {
	case key.Matches(keyMsg, RecordTableKeys.Down):
		if t.cursor < count-1 {
			t.cursor++
			t.ensureVisible()
		}
	case key.Matches(keyMsg, RecordTableKeys.Up):
		if t.cursor > 0 {
			t.cursor--
			t.ensureVisible()
		}
	case key.Matches(keyMsg, RecordTableKeys.Top):
		t.cursor = 0
		t.offset = 0
	case key.Matches(keyMsg, RecordTableKeys.Bottom):
		t.cursor = count - 1
		t.ensureVisible()
	case key.Matches(keyMsg, RecordTableKeys.HalfDown):
		t.cursor = min(t.cursor+max(t.maxVisible/2, 1), count-1)
		t.ensureVisible()
	case key.Matches(keyMsg, RecordTableKeys.HalfUp):
		t.cursor = max(t.cursor-max(t.maxVisible/2, 1), 0)
		t.ensureVisible()
	}

	return t, nil
}

// View renders the table inside a border sized to the component
func (t *RecordTable) View() string {
	style := styles.ActiveBorder
	content := t.renderContent()

	frameW, frameH := style.GetFrameSize()

	return style.
		Width(t.width - frameW).
		Height(t.height - frameH).
		Render(content)
}

// SetSize updates the component dimensions
func (t *RecordTable) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.recalcMaxVisible()
	t.ensureVisible()
}

// SelectedRecord returns the record under the cursor
func (t *RecordTable) SelectedRecord() (domain.Artwork, bool) {
	if t.cursor < 0 || t.cursor >= len(t.records) {
		return domain.Artwork{}, false
	}
	return t.records[t.cursor], true
}

// SelectedIndex returns the cursor row
func (t *RecordTable) SelectedIndex() int {
	return t.cursor
}

// SetSelectedIndex moves the cursor, clamped to the rows
func (t *RecordTable) SetSelectedIndex(idx int) {
	last := t.ItemCount() - 1
	if last < 0 {
		t.cursor = 0
		return
	}
	t.cursor = max(0, min(idx, last))
	t.ensureVisible()
}

// ItemCount returns the number of rows
func (t *RecordTable) ItemCount() int {
	return len(t.records)
}

// IsEmpty reports whether the table has no rows
func (t *RecordTable) IsEmpty() bool {
	return len(t.records) == 0
}

// SetLoading shows the spinner in place of an empty table
func (t *RecordTable) SetLoading(loading bool) { t.loading = loading }

// SetSpinnerFrame updates the spinner animation frame
func (t *RecordTable) SetSpinnerFrame(frame int) {
	t.spinnerFrame = frame
}

// Internal methods

func (t *RecordTable) recalcMaxVisible() {
	interiorHeight := t.height - BorderHeight
	t.maxVisible = interiorHeight - ScrollIndicatorLines - tableChromeLines
	if t.maxVisible < 1 {
		t.maxVisible = 1
	}
}

func (t *RecordTable) ensureVisible() {
	if t.maxVisible <= 0 {
		return
	}
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+t.maxVisible {
		t.offset = t.cursor - t.maxVisible + 1
	}
}

// Rendering

func (t *RecordTable) renderContent() string {
	itemWidth := t.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	titleLine := styles.AccentStyle.Render(styles.Truncate(t.title, itemWidth))
	cols := columnWidths(itemWidth)
	headerLine := renderHeader(cols)

	// Rows of the previous page stay visible while the next one loads
	if t.loading && len(t.records) == 0 {
		spinner := styles.SpinnerFrames[t.spinnerFrame%len(styles.SpinnerFrames)]
		loadingLine := styles.DimStyle.Render(spinner + " Loading...")
		return titleLine + "\n" + headerLine + "\n" + " " + "\n" + loadingLine + "\n" + " "
	}

	count := t.ItemCount()
	if count == 0 {
		emptyMsg := styles.DimStyle.Render("No records")
		return titleLine + "\n" + headerLine + "\n" + " " + "\n" + emptyMsg + "\n" + " "
	}

	end := min(t.offset+t.maxVisible, count)

	lines := make([]string, 0, end-t.offset)
	for i := t.offset; i < end; i++ {
		lines = append(lines, t.renderRow(t.records[i], i == t.cursor, cols, itemWidth))
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if t.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	return titleLine + "\n" + headerLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
}

func renderHeader(cols tableColumns) string {
	cells := []string{
		styles.Pad("", checkboxColWidth),
		styles.Pad("ID", cols.id),
		styles.Pad("Title", cols.title),
		styles.Pad("Origin", cols.origin),
		styles.Pad("Artist", cols.artist),
		styles.Pad("Inscriptions", cols.inscriptions),
		styles.Pad("Start", cols.start),
		styles.Pad("End", cols.end),
	}
	return " " + styles.HeaderStyle.Render(strings.Join(cells, " "))
}

func (t *RecordTable) renderRow(rec domain.Artwork, cursor bool, cols tableColumns, width int) string {
	checked := t.isSelected(rec.ID)

	checkFg := styles.DimGray
	if checked {
		checkFg = styles.Green
	}

	cell := func(s string, w int) string {
		return styles.Pad(styles.Truncate(styles.SingleLine(s), w), w)
	}

	text := strings.Join([]string{
		cell(strconv.Itoa(rec.ID), cols.id),
		cell(rec.Title, cols.title),
		cell(rec.PlaceOfOrigin, cols.origin),
		cell(rec.ArtistName(), cols.artist),
		cell(rec.Inscriptions, cols.inscriptions),
		cell(formatYear(rec.DateStart), cols.start),
		cell(formatYear(rec.DateEnd), cols.end),
	}, " ")

	parts := []styles.RowPart{
		{Text: styles.Checkbox(checked), Foreground: &checkFg},
		{Text: " " + text, Foreground: nil},
	}

	return styles.RenderListRow(parts, cursor, width)
}

func formatYear(y int) string {
	if y == 0 {
		return ""
	}
	return fmt.Sprintf("%d", y)
}
