package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/vitrine/internal/browse"
	"github.com/mmcdole/vitrine/internal/domain"
)

func samplePage() *domain.Page {
	return &domain.Page{
		Number: 1,
		Total:  30,
		Records: []domain.Artwork{
			{ID: 111628, Title: "Nighthawks", PlaceOfOrigin: "United States", ArtistDisplay: "Edward Hopper\nAmerican, 1882-1967", DateStart: 1942, DateEnd: 1942},
			{ID: 27992, Title: "A Sunday on La Grande Jatte", PlaceOfOrigin: "France", ArtistDisplay: "Georges Seurat", DateStart: 1884, DateEnd: 1886},
			{ID: 6565, Title: "American Gothic"},
		},
	}
}

func TestRow(t *testing.T) {
	row := Row(samplePage().Records[0])

	require.Len(t, row, len(Columns))
	assert.Equal(t, []string{"111628", "Nighthawks", "United States", "Edward Hopper", "", "1942", "1942"}, row)
}

func TestRow_BlankYears(t *testing.T) {
	row := Row(domain.Artwork{ID: 1})
	assert.Equal(t, "", row[5])
	assert.Equal(t, "", row[6])
}

func TestRenderPage_MarksSelection(t *testing.T) {
	s := browse.NewSession(10, nil)
	require.True(t, s.TargetCountChanged("2"))
	require.True(t, s.ApplyPage(1, samplePage()))

	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, s))
	out := buf.String()

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Nighthawks")
	assert.Contains(t, out, "American Gothic")
	assert.Equal(t, 2, strings.Count(out, "[x]"))
	assert.Equal(t, 1, strings.Count(out, "[ ]"))
	assert.Contains(t, out, "page 1/3 · 30 records · 2 selected (target 2)")
}

func TestSummary_UnknownTotal(t *testing.T) {
	s := browse.NewSession(10, nil)
	assert.Equal(t, "page 1/? · 0 records · 0 selected", Summary(s))
}
