package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	// Help overlay swallows keys until dismissed
	if m.ShowHelp {
		if key.Matches(msg, Keys.Help, Keys.Escape, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	if m.State == StateDetail {
		return m.handleDetailKeys(msg)
	}
	if m.focus == focusSearch {
		return m.handleSearchKeys(msg)
	}
	return m.handleTableKeys(msg)
}

// handleSearchKeys routes keys while the search input has focus
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.History) {
		return m, LoadHistoryCmd(m.Viewer)
	}

	if !m.Search.DropdownVisible() {
		switch {
		case key.Matches(msg, Keys.FocusTable), key.Matches(msg, Keys.Enter):
			m.focusTable()
			return m, nil
		case key.Matches(msg, Keys.Escape):
			m.focusTable()
			return m, nil
		}
	}

	var cmd tea.Cmd
	var selected bool
	m.Search, cmd, selected = m.Search.Update(msg)

	if selected {
		if name, ok := m.Search.Selected(); ok {
			cmd = m.selectPackage(name)
			return m, cmd
		}
	}

	// Real-time filtering: the table and dropdown follow every keystroke
	if m.Search.QueryChanged() {
		m.applyQuery()
	} else {
		m.updateLayout()
	}
	return m, cmd
}

// handleTableKeys routes keys while the table has focus
func (m Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Search), key.Matches(msg, Keys.Escape):
		cmd := m.focusSearch()
		return m, cmd

	case key.Matches(msg, Keys.History):
		// The loaded message moves focus to the search bar
		return m, LoadHistoryCmd(m.Viewer)

	case key.Matches(msg, Keys.Enter):
		if row := m.Table.SelectedRow(); row != nil {
			return m, OpenPackageCmd(m.Viewer, row.Name)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// handleDetailKeys routes keys in the detail view
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// The function filter owns the keyboard while typing, and esc while applied
	if m.Detail.IsFilterTyping() || (m.Detail.IsFiltering() && key.Matches(msg, Keys.Escape)) {
		m.Detail, cmd = m.Detail.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Back):
		m.showList()
		return m, nil

	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.OpenDocs):
		return m, OpenDocsCmd(m.Opener, m.Detail.Detail().DocURL)
	}

	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}

// handleMouseMsg handles clicks and wheel events
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Nothing behind the help overlay is clickable
	if m.ShowHelp {
		return m, nil
	}

	var cmd tea.Cmd

	if m.State == StateDetail {
		m.Detail, cmd = m.Detail.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	searchHeight := m.Search.Height()
	if m.Search.Contains(msg.Y) {
		if name, ok := m.Search.EntryAt(msg.Y); ok {
			cmd = m.selectPackage(name)
			return m, cmd
		}
		cmd = m.focusSearch()
		return m, cmd
	}

	// Hit-test against the layout the click was made on
	row, ok := m.Table.SelectAt(msg.Y - searchHeight)

	// Any click outside the search zone dismisses the dropdown
	m.Search.Hide()
	m.updateLayout()

	if ok {
		m.focusTable()
		return m, OpenPackageCmd(m.Viewer, row.Name)
	}
	return m, nil
}
