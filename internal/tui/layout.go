package tui

// columnLayout holds calculated column widths for the View
type columnLayout struct {
	tableWidth     int
	inspectorWidth int // 0 if not shown
}

// calculateColumnLayout computes column widths based on inspector visibility
func (m Model) calculateColumnLayout(availableWidth int) columnLayout {
	if !m.ShowInspector {
		return columnLayout{tableWidth: availableWidth}
	}

	layout := columnLayout{
		tableWidth: max(availableWidth*TableColumnPercent/100, MinColumnWidth),
	}
	layout.inspectorWidth = availableWidth - layout.tableWidth
	if layout.inspectorWidth < MinColumnWidth/2 {
		// Too narrow for details; give everything to the table
		return columnLayout{tableWidth: availableWidth}
	}
	return layout
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := m.Height - ChromeHeight
	layout := m.calculateColumnLayout(m.Width)

	m.Table.SetSize(layout.tableWidth, contentHeight)
	if layout.inspectorWidth > 0 {
		m.Inspector.SetSize(layout.inspectorWidth, contentHeight)
	}
	m.Help.Width = m.Width
}
