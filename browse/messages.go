package browse

// Messages for the tea program

// PageLoadedMsg is sent when an article page arrives from the API
type PageLoadedMsg struct {
	Page *ArticlesPage
	Err  error
}

// SourcesLoadedMsg is sent when the registry metadata arrives
type SourcesLoadedMsg struct {
	Sources *SourcesResponse
	Err     error
}

// RefreshStartedMsg is sent after asking the server to refetch sources
type RefreshStartedMsg struct {
	Err error
}
