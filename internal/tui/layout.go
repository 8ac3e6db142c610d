package tui

// updateLayout updates component sizes based on window size. The table
// takes whatever height the search bar and its dropdown leave.
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := m.Height - ChromeHeight
	m.Search.SetWidth(m.Width)
	m.Table.SetSize(m.Width, max(contentHeight-m.Search.Height(), 3))
	m.Detail.SetSize(m.Width, contentHeight)
}
