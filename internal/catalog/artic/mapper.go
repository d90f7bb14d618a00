package artic

import (
	"html"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mmcdole/vitrine/internal/domain"
)

// textCleaner turns catalog markup into terminal-safe text
type textCleaner struct {
	strict *bluemonday.Policy
	md     *converter.Converter
}

func newTextCleaner() *textCleaner {
	return &textCleaner{
		strict: bluemonday.StrictPolicy(),
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// plain strips all markup and decodes entities
func (c *textCleaner) plain(s *string) string {
	if s == nil || *s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(c.strict.Sanitize(*s)))
}

// markdown converts an HTML fragment to markdown, falling back to plain text
func (c *textCleaner) markdown(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return ""
	}
	out, err := c.md.ConvertString(*s)
	if err != nil || strings.TrimSpace(out) == "" {
		return c.plain(s)
	}
	return strings.TrimSpace(out)
}

// MapArtworks converts API DTOs to domain records, preserving order
func (c *textCleaner) MapArtworks(dtos []artworkDTO) []domain.Artwork {
	out := make([]domain.Artwork, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, c.mapArtwork(d))
	}
	return out
}

func (c *textCleaner) mapArtwork(d artworkDTO) domain.Artwork {
	return domain.Artwork{
		ID:            d.ID,
		Title:         c.plain(d.Title),
		PlaceOfOrigin: c.plain(d.PlaceOfOrigin),
		ArtistDisplay: c.plain(d.ArtistDisplay),
		Inscriptions:  c.plain(d.Inscriptions),
		DateStart:     intOrZero(d.DateStart),
		DateEnd:       intOrZero(d.DateEnd),
		Description:   c.markdown(d.Description),
	}
}

// MapPage builds a domain page from a decoded response
func (c *textCleaner) MapPage(number int, resp *artworksResponse) *domain.Page {
	var records []domain.Artwork
	if resp.Data != nil {
		records = c.MapArtworks(*resp.Data)
	}
	return &domain.Page{
		Number:     number,
		Records:    records,
		Total:      resp.Pagination.Total,
		Limit:      resp.Pagination.Limit,
		TotalPages: resp.Pagination.TotalPages,
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
