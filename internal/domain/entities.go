package domain

import (
	"fmt"
	"strings"
)

// Artwork represents a single catalog record
type Artwork struct {
	ID            int    // Catalog identifier; identity is by ID alone
	Title         string // Display title
	PlaceOfOrigin string // e.g. "France"
	ArtistDisplay string // Artist name with nationality and life dates
	Inscriptions  string // Inscription text, often empty
	DateStart     int    // Earliest year of creation (negative = BCE)
	DateEnd       int    // Latest year of creation
	Description   string // Markdown rendering of the catalog description
}

// DateRange returns the creation years formatted for display
func (a Artwork) DateRange() string {
	switch {
	case a.DateStart == 0 && a.DateEnd == 0:
		return ""
	case a.DateStart == a.DateEnd || a.DateEnd == 0:
		return formatYear(a.DateStart)
	case a.DateStart == 0:
		return formatYear(a.DateEnd)
	default:
		return formatYear(a.DateStart) + "–" + formatYear(a.DateEnd)
	}
}

// ArtistName returns the first line of the artist display string
func (a Artwork) ArtistName() string {
	name, _, _ := strings.Cut(a.ArtistDisplay, "\n")
	return strings.TrimSpace(name)
}

func formatYear(y int) string {
	if y < 0 {
		return fmt.Sprintf("%d BCE", -y)
	}
	return fmt.Sprintf("%d", y)
}

// Page is one fetched batch of records plus the remote collection size
type Page struct {
	Number     int       // 1-based page index this batch was fetched for
	Records    []Artwork // Records visible at this page, in server order
	Total      int       // Size of the full remote collection
	Limit      int       // Page length reported by the server
	TotalPages int       // Page count reported by the server
}

// IsEmpty returns true if the page carries no records
func (p *Page) IsEmpty() bool {
	return p == nil || len(p.Records) == 0
}
