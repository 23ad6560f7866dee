package browse

import (
	"github.com/arthuhr-heslault/ai-newsletter/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the article browser state (thin client over the API)
type Model struct {
	Client *Client

	// Current page of the filtered collection
	Articles   []types.Article
	Total      int
	TotalPages int
	Page       int

	// Filter state
	Query     string
	Regions   []string
	RegionIdx int // 0 means all regions

	// Search input mode
	Searching   bool
	SearchInput string

	Loading bool
	Status  string
	Err     error
}

// NewModel creates a new browser model
func NewModel(apiURL string) Model {
	return Model{
		Client:  NewClient(apiURL),
		Page:    1,
		Loading: true,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadSources(m.Client),
		loadPage(m.Client, m.Page, m.Query, m.region()),
	)
}

// region returns the active region filter, empty for all.
func (m Model) region() string {
	if m.RegionIdx == 0 || m.RegionIdx > len(m.Regions) {
		return ""
	}
	return m.Regions[m.RegionIdx-1]
}
