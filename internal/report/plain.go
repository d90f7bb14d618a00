// Package report renders a catalog page as plain text for non-interactive
// output.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mmcdole/vitrine/internal/browse"
	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/tui/styles"
)

// Columns shown for every record, after the selection mark
var Columns = []string{"ID", "Title", "Origin", "Artist", "Inscriptions", "Start", "End"}

const cellWidth = 40

// Row returns the cells of one record in Columns order
func Row(rec domain.Artwork) []string {
	return []string{
		strconv.Itoa(rec.ID),
		cell(rec.Title),
		cell(rec.PlaceOfOrigin),
		cell(rec.ArtistName()),
		cell(rec.Inscriptions),
		year(rec.DateStart),
		year(rec.DateEnd),
	}
}

func cell(s string) string {
	return styles.Truncate(styles.SingleLine(s), cellWidth)
}

func year(y int) string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y)
}

// RenderPage writes the session's current page as a table followed by a
// one-line summary
func RenderPage(w io.Writer, s *browse.Session) error {
	headers := append([]string{" "}, Columns...)

	rows := make([][]string, 0, len(s.Records()))
	for _, rec := range s.Records() {
		rows = append(rows, append([]string{styles.Checkbox(s.IsSelected(rec.ID))}, Row(rec)...))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, Summary(s))
	return err
}

// Summary describes the position and selection state in one line
func Summary(s *browse.Session) string {
	p := s.Pagination()

	pages := "?"
	if n := p.PageCount(); n > 0 {
		pages = strconv.Itoa(n)
	}

	line := fmt.Sprintf("page %d/%s · %d records · %d selected", p.PageIndex(), pages, p.Total, s.SelectedCount())
	if t := s.Target(); t > 0 {
		line += fmt.Sprintf(" (target %d)", t)
	}
	return line
}
