package browse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case PageLoadedMsg:
		return m.handlePageLoaded(msg)
	case SourcesLoadedMsg:
		return m.handleSourcesLoaded(msg)
	case RefreshStartedMsg:
		return m.handleRefreshStarted(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.Searching = true
		m.SearchInput = m.Query
		return m, nil
	case "left", "h":
		if m.Page > 1 {
			m.Page--
			return m.reload()
		}
	case "right", "l":
		if m.Page < m.TotalPages {
			m.Page++
			return m.reload()
		}
	case "g":
		if m.Page != 1 {
			m.Page = 1
			return m.reload()
		}
	case "tab":
		// Cycle region filter: all -> region1 -> ... -> all
		m.RegionIdx = (m.RegionIdx + 1) % (len(m.Regions) + 1)
		m.Page = 1
		return m.reload()
	case "r":
		m.Status = "Refreshing sources..."
		return m, triggerRefresh(m.Client)
	}
	return m, nil
}

// handleSearchKey edits the query buffer while in search mode
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.Searching = false
		m.Query = m.SearchInput
		m.Page = 1
		return m.reload()
	case "esc":
		m.Searching = false
		m.SearchInput = ""
		return m, nil
	case "backspace":
		if len(m.SearchInput) > 0 {
			runes := []rune(m.SearchInput)
			m.SearchInput = string(runes[:len(runes)-1])
		}
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.SearchInput += string(msg.Runes)
		}
		return m, nil
	}
}

func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.Err = nil
	m.Articles = msg.Page.Articles
	m.Total = msg.Page.Total
	m.TotalPages = msg.Page.TotalPages
	m.Page = msg.Page.State.Page
	return m, nil
}

func (m Model) handleSourcesLoaded(msg SourcesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Region cycling degrades gracefully without the registry
		return m, nil
	}
	m.Regions = msg.Sources.Regions
	return m, nil
}

func (m Model) handleRefreshStarted(msg RefreshStartedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Err = msg.Err
		m.Status = ""
		return m, nil
	}
	m.Status = "Refresh started; press 'g' to reload"
	return m, nil
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.Loading = true
	m.Status = ""
	return m, loadPage(m.Client, m.Page, m.Query, m.region())
}
