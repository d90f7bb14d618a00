package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/vitrine/internal/domain"
	"github.com/mmcdole/vitrine/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// inspectorContent holds the three-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// Inspector displays the details of the artwork under the cursor
type Inspector struct {
	item       *domain.Artwork
	selected   bool
	width      int
	height     int
	offset     int // scroll offset
	maxVisible int // max visible lines
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{}
}

// SetItem sets the record to display; nil clears it
func (i *Inspector) SetItem(item *domain.Artwork, selected bool) {
	if item == nil || i.item == nil || item.ID != i.item.ID {
		i.offset = 0
	}
	i.item = item
	i.selected = selected
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	// -1 for title, -1 for blank line
	i.maxVisible = height - InspectorBorderHeight - InspectorScrollIndicators - 2
	if i.maxVisible < 1 {
		i.maxVisible = 1
	}
}

// HasItem returns true if there is an item to display
func (i Inspector) HasItem() bool {
	return i.item != nil
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder

	// Border takes 2 chars, leave 1 char safety margin
	contentWidth := max(i.width-3, 10)
	content := i.renderInspector(contentWidth)

	titleLine := styles.AccentStyle.Render(styles.Truncate("Details", contentWidth))

	headerLines := splitLines(content.header)
	footerLines := splitLines(content.footer)
	bodyLines := splitLines(content.body)

	availableForBody := max(i.maxVisible-len(headerLines)-len(footerLines), 1)

	totalBodyLines := len(bodyLines)
	maxOffset := max(totalBodyLines-availableForBody, 0)
	offset := min(i.offset, maxOffset)

	end := min(offset+availableForBody, totalBodyLines)
	visibleBody := bodyLines[offset:end]

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < totalBodyLines {
		down = styles.DimStyle.Render("↓ more")
	}

	parts := []string{titleLine, ""}
	if content.header != "" {
		parts = append(parts, strings.Join(headerLines, "\n"))
	}
	parts = append(parts, up)
	if len(visibleBody) > 0 {
		parts = append(parts, strings.Join(visibleBody, "\n"))
	}
	for j := len(visibleBody); j < availableForBody; j++ {
		parts = append(parts, "")
	}
	parts = append(parts, down)
	if content.footer != "" {
		parts = append(parts, strings.Join(footerLines, "\n"))
	}

	rendered := strings.Join(parts, "\n")

	frameW, frameH := style.GetFrameSize()

	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(rendered)
}

// renderInspector renders the inspector panel content as three zones
func (i Inspector) renderInspector(width int) inspectorContent {
	if i.item == nil {
		return inspectorContent{body: styles.DimStyle.Render("No record selected")}
	}
	return inspectorContent{
		header: renderArtworkHeader(*i.item, width),
		body:   renderArtworkBody(*i.item, width),
		footer: renderArtworkFooter(*i.item, i.selected, width),
	}
}

func renderArtworkHeader(a domain.Artwork, width int) string {
	var b strings.Builder

	title := a.Title
	if title == "" {
		title = "Untitled"
	}
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(title, width)))
	b.WriteString("\n")

	for _, line := range splitLines(a.ArtistDisplay) {
		b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(line, width)))
		b.WriteString("\n")
	}

	// Meta line: dates · origin
	var meta []string
	if dr := a.DateRange(); dr != "" {
		meta = append(meta, dr)
	}
	if a.PlaceOfOrigin != "" {
		meta = append(meta, a.PlaceOfOrigin)
	}
	if len(meta) > 0 {
		b.WriteString(styles.DimStyle.Render(styles.Truncate(strings.Join(meta, " · "), width)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderArtworkBody(a domain.Artwork, width int) string {
	bodyWidth := min(width-2, 80)

	var sections []string
	if a.Description != "" {
		sections = append(sections, styles.SubtitleStyle.Render(wrapParagraphs(a.Description, bodyWidth)))
	}
	if a.Inscriptions != "" {
		sections = append(sections,
			styles.AccentStyle.Render("Inscriptions")+"\n"+
				styles.SubtitleStyle.Render(wrapParagraphs(a.Inscriptions, bodyWidth)))
	}
	return strings.Join(sections, "\n\n")
}

func renderArtworkFooter(a domain.Artwork, selected bool, width int) string {
	var b strings.Builder
	b.WriteString(styles.DimStyle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	id := styles.DimStyle.Render(fmt.Sprintf("#%d", a.ID))
	if selected {
		b.WriteString(styles.SuccessStyle.Render(styles.CheckedChar+" selected") + "   " + id)
	} else {
		b.WriteString(styles.DimStyle.Render(styles.UncheckedChar+" not selected") + "   " + id)
	}
	return b.String()
}

// splitLines splits a string into lines, returning empty slice for empty string
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// wrapParagraphs word-wraps each paragraph and keeps blank lines between them
func wrapParagraphs(text string, width int) string {
	paras := strings.Split(text, "\n\n")
	for i, p := range paras {
		paras[i] = wordWrap(p, width)
	}
	return strings.Join(paras, "\n\n")
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := len([]rune(word))

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
