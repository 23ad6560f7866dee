package browse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// loadPage creates a command to fetch one article page
func loadPage(client *Client, page int, query, region string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.ListArticles(page, query, region)
		return PageLoadedMsg{Page: resp, Err: err}
	}
}

// loadSources creates a command to fetch the registry metadata
func loadSources(client *Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.GetSources()
		return SourcesLoadedMsg{Sources: resp, Err: err}
	}
}

// triggerRefresh creates a command to rebuild the server-side cache
func triggerRefresh(client *Client) tea.Cmd {
	return func() tea.Msg {
		return RefreshStartedMsg{Err: client.Refresh()}
	}
}
